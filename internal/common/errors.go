// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Load errors.
	ErrLoadFailed    = errors.New("load failed")
	ErrDuplicateID   = errors.New("duplicate transaction id")
	ErrInvalidRecord = errors.New("invalid transaction record")

	// Input errors.
	ErrInvalidDate = errors.New("invalid date")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// LoadFailedMessage is shown in the dashboard when the source load fails.
const LoadFailedMessage = "Failed to fetch the transaction array"

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the message meant for the user, falling back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
