package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := Validation("task title", "must not be empty")

	if !IsValidation(err) {
		t.Error("IsValidation() = false, want true")
	}
	if IsStore(err) {
		t.Error("IsStore() = true for a validation error")
	}
	if got, want := err.Error(), "invalid task title: must not be empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStoreError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Store("save tasks", cause)

	if !IsStore(err) {
		t.Error("IsStore() = false, want true")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !IsStore(wrapped) {
		t.Error("IsStore() = false for a wrapped store error")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q, want %q", got, "Error: boom")
	}
	if got := Formatf("no task %q", "x"); got != `Error: no task "x"` {
		t.Errorf("Formatf() = %q", got)
	}
}
