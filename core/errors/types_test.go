package errors

import (
	"errors"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "workflow",
		ID:       "123",
	}

	expected := "workflow not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "privacy",
		Message: "must be private, team or public",
	}

	expected := "validation error on field 'privacy': must be private, team or public"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "openrouter",
	}

	expected := "external API error from openrouter: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestStaleRunError_Error(t *testing.T) {
	err := &StaleRunError{Got: 2, Latest: 3}

	expected := "stale generation run: got sequence 2, latest is 3"
	if err.Error() != expected {
		t.Errorf("StaleRunError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsNotFound_True(t *testing.T) {
	err := &NotFoundError{
		Resource: "template",
		ID:       "abc",
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestIsNotFound_False(t *testing.T) {
	err := errors.New("some other error")

	if IsNotFound(err) {
		t.Error("IsNotFound should return false for generic error")
	}
}

func TestIsNotFound_Wrapped(t *testing.T) {
	inner := &NotFoundError{Resource: "workflow", ID: "xyz"}
	err := WrapError(inner, "loading state")

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{Field: "size", Message: "unknown size"}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsStaleRun_True(t *testing.T) {
	err := &StaleRunError{Got: 1, Latest: 2}

	if !IsStaleRun(err) {
		t.Error("IsStaleRun should return true for StaleRunError")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestWrapError_Message(t *testing.T) {
	err := WrapError(errors.New("boom"), "saving workflow")

	expected := "saving workflow: boom"
	if err.Error() != expected {
		t.Errorf("WrapError message = %v, want %v", err.Error(), expected)
	}
}
