package errors

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
)

// Error codes for categorizing errors
const (
	ErrConfig  = "CONFIG"
	ErrSource  = "SOURCE"  // metrics source unavailable for a tick
	ErrProcess = "PROCESS" // process enumeration failed as a whole
	ErrKill    = "KILL"
	ErrInput   = "INPUT"
	ErrServer  = "SERVER"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrSource code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrSource,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Short returns the message and cause on a single line, for status bars and JSON.
func (e *Error) Short() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error, or any error combined into it, is a structured Error
// with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	for _, e := range errors.GetErrors(err) {
		var pdErr *Error
		if errors.As(e, &pdErr) && pdErr.Code == code {
			return true
		}
	}
	return false
}

// Combine merges errors into one, dropping nils. Returns nil when all are nil.
func Combine(errs ...error) error {
	return errors.Combine(errs...)
}

// Summary renders err on one line. Structured errors use Short; combined errors are
// joined with "; ".
func Summary(err error) string {
	if err == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, e := range errors.GetErrors(err) {
		var pdErr *Error
		if errors.As(e, &pdErr) {
			parts = append(parts, pdErr.Short())
			continue
		}
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Render formats err for the terminal. Structured errors keep their own layout;
// anything else gets the same failure marker.
func Render(err error) string {
	if err == nil {
		return ""
	}
	var pdErr *Error
	if errors.As(err, &pdErr) {
		return pdErr.Error()
	}
	return fmt.Sprintf("✗ %s\n", err.Error())
}
