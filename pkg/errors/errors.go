package errors

import (
	"fmt"
)

// ErrType represents different types of errors
type ErrType string

const (
	// ErrTypeARN represents malformed resource identifier errors
	ErrTypeARN ErrType = "arn"
	// ErrTypeCatalog represents invalid endpoint catalog data
	ErrTypeCatalog ErrType = "catalog"
	// ErrTypeConfig represents configuration errors
	ErrTypeConfig ErrType = "config"
	// ErrTypeValidation represents validation errors
	ErrTypeValidation ErrType = "validation"
	// ErrTypeIO represents file and stream I/O errors
	ErrTypeIO ErrType = "io"
)

// EpctlError represents a custom error with context
type EpctlError struct {
	Type       ErrType
	Message    string
	Underlying error
	Context    map[string]interface{}
}

// Error implements the error interface
func (e *EpctlError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s error: %s (caused by: %v)", e.Type, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *EpctlError) Unwrap() error {
	return e.Underlying
}

// New creates a new EpctlError
func New(errType ErrType, message string) *EpctlError {
	return &EpctlError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EpctlError
func Wrap(errType ErrType, message string, err error) *EpctlError {
	return &EpctlError{
		Type:       errType,
		Message:    message,
		Underlying: err,
		Context:    make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *EpctlError) WithContext(key string, value interface{}) *EpctlError {
	e.Context[key] = value
	return e
}

// GetContext returns context value
func (e *EpctlError) GetContext(key string) (interface{}, bool) {
	val, exists := e.Context[key]
	return val, exists
}

// Common error constructors

// NewARNError reports a resource identifier that does not parse.
func NewARNError(message string, err error) *EpctlError {
	if err != nil {
		return Wrap(ErrTypeARN, message, err)
	}
	return New(ErrTypeARN, message)
}

// NewCatalogError reports structurally invalid endpoint catalog data.
// The catalog is compiled-in, so this only fires at initialization.
func NewCatalogError(message string, err error) *EpctlError {
	if err != nil {
		return Wrap(ErrTypeCatalog, message, err)
	}
	return New(ErrTypeCatalog, message)
}

func NewConfigError(message string, err error) *EpctlError {
	if err != nil {
		return Wrap(ErrTypeConfig, message, err)
	}
	return New(ErrTypeConfig, message)
}

func NewIOError(message string, err error) *EpctlError {
	if err != nil {
		return Wrap(ErrTypeIO, message, err)
	}
	return New(ErrTypeIO, message)
}

func NewValidationError(message string) *EpctlError {
	return New(ErrTypeValidation, message)
}
