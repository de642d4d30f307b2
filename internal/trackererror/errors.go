// Package trackererror defines the error taxonomy of the tracker core. Every error is
// recoverable: front ends report it and return to the previous menu or exit non-zero.
package trackererror

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned by session-scoped operations when no user is logged in.
var ErrNotLoggedIn = errors.New("no user is logged in")

// ParseError represents invalid numeric or enum text input.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a referenced transaction id does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction with ID %d not found", e.ID)
}

// DuplicateUsernameError is returned when registration collides with an existing profile.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("username '%s' already taken", e.Username)
}

// InvalidCredentialsError is returned on login failure. It deliberately does not say
// whether the username or the password was wrong.
type InvalidCredentialsError struct {
	Username string
}

func (e *InvalidCredentialsError) Error() string {
	return "invalid username or password"
}

// ValidationError represents text input that would corrupt the storage format.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
