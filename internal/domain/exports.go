package domain

import (
	interfaces "pwned/internal/domain/interfaces"
	types "pwned/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Account               = types.Account
	BreachName            = types.BreachName
	Breach                = types.Breach
	BreachFilter          = types.BreachFilter
	PasteAccount          = types.PasteAccount
	PasswordResult        = types.PasswordResult
	Outcome               = types.Outcome
	Verdict               = types.Verdict
	PasswordRejectedError = types.PasswordRejectedError
	ErrorKind             = types.ErrorKind
	Error                 = types.Error
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	BreachService     = interfaces.BreachService
	PasswordService   = interfaces.PasswordService
	PasswordValidator = interfaces.PasswordValidator
)

// Constants re-exported from the types subpackage.
const (
	KindUnknown         = types.KindUnknown
	KindInvalidArgument = types.KindInvalidArgument
	KindRemote          = types.KindRemote
	KindDecode          = types.KindDecode
	KindTimeout         = types.KindTimeout
	KindCancelled       = types.KindCancelled
	KindTransport       = types.KindTransport

	OutcomeUnknown  = types.OutcomeUnknown
	OutcomeAccepted = types.OutcomeAccepted
	OutcomeRejected = types.OutcomeRejected

	RejectionCode = types.RejectionCode
)

// Error sentinels and helpers re-exported from the types subpackage.
var (
	ErrInvalidArgument = types.ErrInvalidArgument
	ErrRemote          = types.ErrRemote
	ErrDecode          = types.ErrDecode
	ErrTimeout         = types.ErrTimeout
	ErrCancelled       = types.ErrCancelled
	ErrTransport       = types.ErrTransport

	InvalidArgument   = types.InvalidArgument
	KindOf            = types.KindOf
	StatusCode        = types.StatusCode
	NewPasswordResult = types.NewPasswordResult
)
