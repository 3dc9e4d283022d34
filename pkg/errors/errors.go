// Package errors provides custom error types for the confyg system.
// These errors enable programmatic error checking with errors.Is and
// carry enough context to pinpoint the schema section, document, or
// file that caused a failure.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the confyg system
var (
	// ErrNotFound indicates that a requested document was not found
	ErrNotFound = errors.New("not found")

	// ErrMissingLocation indicates that a schema declares no configuration location
	ErrMissingLocation = errors.New("missing configuration location")

	// ErrOwnershipConflict indicates that a schema section is mapped to more than one document
	ErrOwnershipConflict = errors.New("ownership conflict")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError represents a schema configuration error such as a missing
// location or a malformed mapping table.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// OwnershipConflictError indicates that a schema section name appears in
// the destination lists of more than one document in a mapping table.
type OwnershipConflictError struct {
	Section   string
	Documents []string
}

// Error implements the error interface
func (e *OwnershipConflictError) Error() string {
	if len(e.Documents) > 0 {
		return fmt.Sprintf("section %s is mapped to more than one document: %v", e.Section, e.Documents)
	}
	return fmt.Sprintf("section %s is mapped to more than one document", e.Section)
}

// Is implements errors.Is support
func (e *OwnershipConflictError) Is(target error) bool {
	return target == ErrOwnershipConflict
}

// NewOwnershipConflictError creates a new OwnershipConflictError
func NewOwnershipConflictError(section string, documents []string) *OwnershipConflictError {
	return &OwnershipConflictError{Section: section, Documents: documents}
}

// NotFoundError represents an error when a document is not found
type NotFoundError struct {
	Resource string
	Path     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s at %s not found", e.Resource, e.Path)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, path string) *NotFoundError {
	return &NotFoundError{Resource: resource, Path: path}
}

// ValidationError represents a validation failure for a schema section
// or one of its fields
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing a persisted document
type ParseError struct {
	Format  string // "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsOwnershipConflict checks if an error is an ownership conflict error
func IsOwnershipConflict(err error) bool {
	return errors.Is(err, ErrOwnershipConflict)
}

// IsMissingLocation checks if an error reports an undeclared configuration location
func IsMissingLocation(err error) bool {
	return errors.Is(err, ErrMissingLocation)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
