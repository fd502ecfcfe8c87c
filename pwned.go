package pwned

import (
	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/lookup"
	"pwned/internal/validation"
)

type (
	Account               = domain.Account
	BreachName            = domain.BreachName
	Breach                = domain.Breach
	BreachFilter          = domain.BreachFilter
	PasteAccount          = domain.PasteAccount
	PasswordResult        = domain.PasswordResult
	Outcome               = domain.Outcome
	Verdict               = domain.Verdict
	PasswordRejectedError = domain.PasswordRejectedError
	ErrorKind             = domain.ErrorKind
	Error                 = domain.Error

	BreachService     = domain.BreachService
	PasswordService   = domain.PasswordService
	PasswordValidator = domain.PasswordValidator

	Config         = lookup.Config
	Option         = lookup.Option
	BreachClient   = lookup.BreachClient
	PasswordClient = lookup.PasswordClient
	Validator      = validation.Validator
)

const (
	KindInvalidArgument = domain.KindInvalidArgument
	KindRemote          = domain.KindRemote
	KindDecode          = domain.KindDecode
	KindTimeout         = domain.KindTimeout
	KindCancelled       = domain.KindCancelled
	KindTransport       = domain.KindTransport

	OutcomeUnknown  = domain.OutcomeUnknown
	OutcomeAccepted = domain.OutcomeAccepted
	OutcomeRejected = domain.OutcomeRejected

	RejectionCode = domain.RejectionCode
)

var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrRemote          = domain.ErrRemote
	ErrDecode          = domain.ErrDecode
	ErrTimeout         = domain.ErrTimeout
	ErrCancelled       = domain.ErrCancelled
	ErrTransport       = domain.ErrTransport

	KindOf     = domain.KindOf
	StatusCode = domain.StatusCode

	WithHTTPClient = lookup.WithHTTPClient
	WithLogger     = lookup.WithLogger
)

// DefaultConfig returns the production endpoints, timeouts and retry counts.
func DefaultConfig() Config { return lookup.DefaultConfig() }

// NewBreachClient returns a client for the breach and paste lookups.
func NewBreachClient(cfg Config, opts ...Option) (*BreachClient, error) {
	return lookup.NewBreachClient(cfg, opts...)
}

// NewPasswordClient returns a client for password lookups.
func NewPasswordClient(cfg Config, opts ...Option) (*PasswordClient, error) {
	return lookup.NewPasswordClient(cfg, opts...)
}

// NewValidator returns the password validation hook backed by passwords.
func NewValidator(passwords PasswordService, logger *zap.Logger) *Validator {
	return validation.New(passwords, logger)
}
