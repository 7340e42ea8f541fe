package gesture

import (
	"fmt"
)

// ErrorCategory groups gesture errors by failure domain.
type ErrorCategory string

// Error categories.
const (
	ErrCategoryConfig    ErrorCategory = "config"
	ErrCategoryViewport  ErrorCategory = "viewport"
	ErrCategoryElement   ErrorCategory = "element"
	ErrCategorySeek      ErrorCategory = "seek"
	ErrCategoryTransport ErrorCategory = "transport"
)

// GestureError is a structured error with category and machine-readable
// code. Transport errors from the driver are attached as Cause and never
// reinterpreted.
type GestureError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *GestureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *GestureError) Unwrap() error {
	return e.Cause
}

// Is matches by code, so copies produced by WithCause/WithMessage still
// compare equal to the predefined errors.
func (e *GestureError) Is(target error) bool {
	t, ok := target.(*GestureError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *GestureError) WithCause(cause error) *GestureError {
	return &GestureError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e *GestureError) WithMessage(msg string) *GestureError {
	return &GestureError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Cause:    e.Cause,
	}
}

// Predefined errors.
var (
	// ErrInvalidConfig covers degenerate crop factors or viewport
	// (non-positive scrollable area). Fatal to construction, never
	// retried.
	ErrInvalidConfig = &GestureError{
		Category: ErrCategoryConfig,
		Code:     "invalid_config",
		Message:  "invalid crop factors or viewport",
	}

	// ErrViewport means the driver could not report a usable window
	// size. Fatal to construction.
	ErrViewport = &GestureError{
		Category: ErrCategoryViewport,
		Code:     "viewport_unavailable",
		Message:  "could not retrieve viewport dimensions",
	}

	// ErrInvalidElement covers zero or negative element dimensions,
	// usually a stale or hidden element. Fatal to the single call.
	ErrInvalidElement = &GestureError{
		Category: ErrCategoryElement,
		Code:     "invalid_element",
		Message:  "invalid element dimensions",
	}

	// ErrElementNotInView means the seek loop exhausted its attempt
	// budget. Surfaced to the caller, not retried internally.
	ErrElementNotInView = &GestureError{
		Category: ErrCategorySeek,
		Code:     "element_not_in_view",
		Message:  "element not found within attempt budget",
	}

	// ErrInvalidGesture covers unsupported directions or out-of-range
	// gesture parameters.
	ErrInvalidGesture = &GestureError{
		Category: ErrCategoryElement,
		Code:     "invalid_gesture",
		Message:  "invalid gesture parameters",
	}
)

// transportError wraps a driver failure with the operation that hit it.
func transportError(op string, cause error) *GestureError {
	return &GestureError{
		Category: ErrCategoryTransport,
		Code:     "transport_failure",
		Message:  fmt.Sprintf("%s failed", op),
		Cause:    cause,
	}
}
