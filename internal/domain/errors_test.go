package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"title": "must not be empty",
		"email": "must be a valid email address",
	}}

	want := "validation error: email: must be a valid email address; title: must not be empty"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q (fields sorted)", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := Validationf("title", "must not be empty")
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true, want false")
	}
}

func TestValidationf(t *testing.T) {
	t.Parallel()

	err := Validationf("name", "must be at least %d characters", 3)
	if got := err.Fields["name"]; got != "must be at least 3 characters" {
		t.Errorf("Fields[name] = %q", got)
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := &NotFoundError{Kind: "Todo", ID: "abc"}
	if got, want := err.Error(), "Todo not found: abc"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	var nferr *NotFoundError
	if !errors.As(wrapped, &nferr) {
		t.Fatal("errors.As(wrapped, *NotFoundError) = false, want true")
	}
	if nferr.Kind != "Todo" {
		t.Errorf("Kind = %q, want Todo", nferr.Kind)
	}
}
