package gesture

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGestureErrorMessage(t *testing.T) {
	if got := ErrElementNotInView.Error(); got != "element not found within attempt budget" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("connection refused")
	err := ErrViewport.WithCause(cause)
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestGestureErrorUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := transportError("swipe", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is did not reach the cause")
	}
	if err.Category != ErrCategoryTransport {
		t.Errorf("category = %q", err.Category)
	}
}

func TestGestureErrorIsMatchesByCode(t *testing.T) {
	// Copies made by WithCause/WithMessage still compare equal to the
	// predefined error.
	err := ErrElementNotInView.WithMessage("element not found after 5 attempts")
	if !errors.Is(err, ErrElementNotInView) {
		t.Errorf("WithMessage copy did not match")
	}

	err = ErrInvalidConfig.WithCause(errors.New("boom"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("WithCause copy did not match")
	}
	if errors.Is(err, ErrViewport) {
		t.Errorf("distinct codes compared equal")
	}
}

func TestGestureErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("seek failed: %w", ErrElementNotInView.WithMessage("gone"))

	var gerr *GestureError
	if !errors.As(wrapped, &gerr) {
		t.Fatal("errors.As failed")
	}
	if gerr.Code != "element_not_in_view" {
		t.Errorf("code = %q", gerr.Code)
	}
}

func TestWithCauseDoesNotMutate(t *testing.T) {
	_ = ErrViewport.WithCause(errors.New("transient"))
	if ErrViewport.Cause != nil {
		t.Error("predefined error mutated")
	}
}
