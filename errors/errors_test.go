package errors

import (
	"fmt"
	"testing"
)

func TestErrorCreation(t *testing.T) {
	err := New(ErrCodeUnknownCompound, "compound 'CsI' is not in the reference table")
	if err.Code != ErrCodeUnknownCompound {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownCompound, err.Code)
	}
	if err.Error() != "UNKNOWN_COMPOUND: compound 'CsI' is not in the reference table" {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := Wrap(cause, ErrCodeConfigInvalid, "failed to parse config")

	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
	if !Is(err, ErrCodeConfigInvalid) {
		t.Error("expected Is to match the wrapped code")
	}
	if Is(err, ErrCodeUnknownCompound) {
		t.Error("expected Is to reject a different code")
	}
}

func TestWithDetail(t *testing.T) {
	err := UnknownCompound("CsI")
	if err.Details["compound"] != "CsI" {
		t.Errorf("expected compound detail, got %v", err.Details)
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("expected empty code for nil error")
	}
	if GetCode(ConfigNotFound("latticelab.yml")) != ErrCodeConfigNotFound {
		t.Error("expected CONFIG_NOT_FOUND")
	}
	wrapped := fmt.Errorf("outer: %w", UnknownPage("Seventh Page"))
	if GetCode(wrapped) != ErrCodeUnknownPage {
		t.Error("expected code extraction through wrapping")
	}
}
