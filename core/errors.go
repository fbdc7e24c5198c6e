package core

import "errors"

// Error categories. Every error below unwraps to exactly one of these so the
// HTTP layer can classify it with errors.Is.
var (
	ErrValidation  = errors.New("validation error")     // 400
	ErrConflict    = errors.New("conflict")             // 400
	ErrAuth        = errors.New("authentication error") // 400 on sign-in, 401 on protected routes
	ErrTokenDecode = errors.New("token decode error")   // 400
)

type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

func newError(category error, msg string) error {
	return &categorized{msg: msg, category: category}
}

// User errors
var (
	ErrUserExists         = newError(ErrConflict, "an account with this email already exists")
	ErrGoogleIDTaken      = newError(ErrConflict, "this Google account is linked to another user")
	ErrGoogleIDMismatch   = newError(ErrConflict, "account is already linked to a different Google identity")
	ErrInvalidCredentials = newError(ErrAuth, "invalid credentials")
	ErrEmailNotVerified   = newError(ErrAuth, "Google has not verified this email address")
	ErrUserNotFound       = errors.New("user not found")
)

// Session errors
var (
	ErrUnauthorized    = newError(ErrAuth, "Unauthorized")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Validation errors (client input)
var (
	ErrMissingFields     = newError(ErrValidation, "missing required fields")
	ErrEmailRequired     = newError(ErrValidation, "email is required")
	ErrPasswordRequired  = newError(ErrValidation, "password is required")
	ErrInvalidEmail      = newError(ErrValidation, "invalid email format")
	ErrPasswordTooShort  = newError(ErrValidation, "password must be at least 8 characters")
	ErrPasswordTooLong   = newError(ErrValidation, "password is too long")
	ErrInvalidBody       = newError(ErrValidation, "invalid request body")
	ErrFiguresOutOfRange = newError(ErrValidation, "figures are out of range")
)

// Identity token errors
var (
	ErrCredentialRequired     = newError(ErrTokenDecode, "credential is required")
	ErrMalformedIdentityToken = newError(ErrTokenDecode, "malformed identity token")
	ErrIdentityTokenRejected  = newError(ErrTokenDecode, "identity token rejected")
)

// Config errors (server-side configuration)
var (
	ErrDBAdapterRequired   = errors.New("database adapter is required") // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required")     // 500
)

// IsClientError reports whether err is caused by caller input rather than a
// server fault.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrTokenDecode)
}
