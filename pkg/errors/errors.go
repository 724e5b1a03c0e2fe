// Package errors provides the error types used across the firmware
// mirror. Typed errors keep failure handling programmatic: a missing
// index marker and a malformed release record are different failures
// with different recovery paths.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the firmware mirror.
var (
	// ErrMarkerMissing indicates the index start or end marker is
	// absent from the document being updated.
	ErrMarkerMissing = errors.New("index marker missing")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
)

// MarkerError reports a missing or misordered index marker in a
// document. The renderer never fabricates a marker location, so the
// caller keeps the original text untouched.
type MarkerError struct {
	Marker  string
	Message string
}

// Error implements the error interface.
func (e *MarkerError) Error() string {
	if e.Marker != "" {
		return fmt.Sprintf("marker %q: %s", e.Marker, e.Message)
	}
	return fmt.Sprintf("marker error: %s", e.Message)
}

// Is implements errors.Is support.
func (e *MarkerError) Is(target error) bool {
	return target == ErrMarkerMissing
}

// NewMarkerError creates a new MarkerError.
func NewMarkerError(marker, message string) *MarkerError {
	return &MarkerError{Marker: marker, Message: message}
}

// ValidationError represents a validation failure, e.g. a release
// record missing a required field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NotFoundError represents an error when a resource is not found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ParseError represents an error when parsing data formats.
type ParseError struct {
	Format  string // "yaml", "json", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create", "delete"
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsMarkerMissing checks if an error is a missing marker error.
func IsMarkerMissing(err error) bool {
	return errors.Is(err, ErrMarkerMissing)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
