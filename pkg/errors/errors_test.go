package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	msg := "test validation error"
	err := NewValidationError(msg)

	if err == nil {
		t.Fatal("NewValidationError returned nil")
	}

	if err.Error() != "validation error: "+msg {
		t.Errorf("Expected error message to contain %q, got %q", msg, err.Error())
	}

	var typed *EpctlError
	if !errors.As(err, &typed) {
		t.Error("Error is not of type EpctlError")
	}

	if typed.Type != ErrTypeValidation {
		t.Errorf("Expected error type %q, got %q", ErrTypeValidation, typed.Type)
	}
}

func TestNewARNError(t *testing.T) {
	msg := "test arn error"
	wrappedErr := errors.New("wrapped error")
	err := NewARNError(msg, wrappedErr)

	if err == nil {
		t.Fatal("NewARNError returned nil")
	}

	if !strings.Contains(err.Error(), msg) {
		t.Errorf("Error message should contain %q, got %q", msg, err.Error())
	}

	var typed *EpctlError
	if !errors.As(err, &typed) {
		t.Error("Error is not of type EpctlError")
	}

	if typed.Type != ErrTypeARN {
		t.Errorf("Expected error type %q, got %q", ErrTypeARN, typed.Type)
	}

	if !errors.Is(err, wrappedErr) {
		t.Error("Error should wrap the original error")
	}

	// Without an underlying error the constructor still works
	plain := NewARNError(msg, nil)
	if plain.Underlying != nil {
		t.Error("Expected no underlying error")
	}
}

func TestNewCatalogError(t *testing.T) {
	msg := "test catalog error"
	wrappedErr := errors.New("wrapped error")
	err := NewCatalogError(msg, wrappedErr)

	var typed *EpctlError
	if !errors.As(err, &typed) {
		t.Fatal("Error is not of type EpctlError")
	}
	if typed.Type != ErrTypeCatalog {
		t.Errorf("Expected error type %q, got %q", ErrTypeCatalog, typed.Type)
	}
	if !errors.Is(err, wrappedErr) {
		t.Error("Error should wrap the original error")
	}
}

func TestNewConfigError(t *testing.T) {
	msg := "test config error"
	wrappedErr := errors.New("wrapped error")
	err := NewConfigError(msg, wrappedErr)

	var typed *EpctlError
	if !errors.As(err, &typed) {
		t.Fatal("Error is not of type EpctlError")
	}
	if typed.Type != ErrTypeConfig {
		t.Errorf("Expected error type %q, got %q", ErrTypeConfig, typed.Type)
	}
}

func TestNewIOError(t *testing.T) {
	err := NewIOError("read failed", errors.New("disk on fire"))

	var typed *EpctlError
	if !errors.As(err, &typed) {
		t.Fatal("Error is not of type EpctlError")
	}
	if typed.Type != ErrTypeIO {
		t.Errorf("Expected error type %q, got %q", ErrTypeIO, typed.Type)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Error message should include the cause, got %q", err.Error())
	}
}

func TestErrorMessageFormat(t *testing.T) {
	plain := New(ErrTypeValidation, "bad input")
	if plain.Error() != "validation error: bad input" {
		t.Errorf("Unexpected message: %q", plain.Error())
	}

	wrapped := Wrap(ErrTypeIO, "write failed", errors.New("boom"))
	if wrapped.Error() != "io error: write failed (caused by: boom)" {
		t.Errorf("Unexpected message: %q", wrapped.Error())
	}
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad region").
		WithContext("region", "mars-west-1").
		WithContext("attempt", 2)

	val, ok := err.GetContext("region")
	if !ok || val != "mars-west-1" {
		t.Errorf("GetContext(region) = %v, %v", val, ok)
	}

	if _, ok := err.GetContext("missing"); ok {
		t.Error("GetContext should report missing keys")
	}
}
