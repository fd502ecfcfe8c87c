package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a lookup failure.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	// KindInvalidArgument is malformed or missing caller input.
	KindInvalidArgument
	// KindRemote is a non-2xx response; StatusCode carries the status.
	KindRemote
	// KindDecode is a 2xx body that does not match the expected shape.
	KindDecode
	// KindTimeout is a call deadline that expired.
	KindTimeout
	// KindCancelled is a caller-initiated abort.
	KindCancelled
	// KindTransport is a connectivity failure.
	KindTransport
)

// String returns a short, stable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindRemote:
		return "remote"
	case KindDecode:
		return "decode"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by every lookup operation.
type Error struct {
	Kind ErrorKind
	// Op is the catalog operation that failed, e.g. "breachedaccount".
	Op string
	// StatusCode is set for KindRemote.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Kind == KindRemote && e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind. A sentinel
// carrying a StatusCode only matches that status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrRemote          = &Error{Kind: KindRemote}
	ErrDecode          = &Error{Kind: KindDecode}
	ErrTimeout         = &Error{Kind: KindTimeout}
	ErrCancelled       = &Error{Kind: KindCancelled}
	ErrTransport       = &Error{Kind: KindTransport}
)

// InvalidArgument builds a KindInvalidArgument error for op.
func InvalidArgument(op, format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status of a KindRemote error, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRemote {
		return e.StatusCode
	}
	return 0
}
