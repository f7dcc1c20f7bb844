package authhandler

import "github.com/pkg/errors"

// Login failures on purpose share one message: the caller must not learn
// whether the email or the password was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrSetupIncomplete    = errors.New("account setup is not complete")
	ErrAlreadyExists      = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
)
