// Package errors provides the standardized error taxonomy for the scheduler.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeConfigInvalid covers bad or missing environment values. Detected
	// at startup, before any network call.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// ErrCodeFetchFailed covers non-2xx or empty responses from the waste
	// collection API.
	ErrCodeFetchFailed ErrorCode = "FETCH_FAILED"

	// ErrCodeValidationFailed covers malformed domain object construction.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// ErrCodeSenderFailed covers provider failures during dispatch. The only
	// non-fatal code: dispatch logs it and moves on to the next sender.
	ErrCodeSenderFailed ErrorCode = "SENDER_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigError creates a non-retryable configuration error.
func NewConfigError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFetchError creates a waste-API fetch error. Retryable only in the sense
// that the next scheduled run is the retry; the current run aborts.
func NewFetchError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeFetchFailed,
		Message:   message,
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError creates a non-retryable domain validation error.
func NewValidationError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSenderError creates a per-send delivery error for the named provider.
func NewSenderError(sender string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeSenderFailed,
		Message:   fmt.Sprintf("sender '%s' delivery failed", sender),
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}
