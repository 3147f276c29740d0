package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
//
// This type distinguishes between different validation contexts to enable
// appropriate formatting and handling of validation failures.
type ValidationCategory string

const (
	// ValidationCategoryConfig indicates a configuration file validation error.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryPreflight indicates a preflight check failure (missing command).
	ValidationCategoryPreflight ValidationCategory = "preflight"
)

// ValidationError represents a configuration or preflight validation failure.
//
// The Category field distinguishes whether the failure came from the config
// file schema or from resolving the package manager commands.
//
// Fields:
//   - Category: Source of validation ("config", "preflight")
//   - Field: Name of the invalid field or setting
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - Command: For preflight errors, the command that could not be resolved
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Category: ValidationCategoryConfig,
//	    Field:    "manager.info",
//	    Message:  "missing {{package}} placeholder",
//	    Expected: "a command template containing {{package}}",
//	}
type ValidationError struct {
	// Category identifies the validation source.
	// Values: "config", "preflight"
	Category ValidationCategory

	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// Command is the system command that could not be resolved (preflight only).
	Command string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string
}

// Error implements the error interface.
//
// Formats the error message based on the Category. For preflight errors,
// includes command and resolution. For config errors, includes field and message.
//
// Returns:
//   - string: Formatted error message appropriate for the validation category
func (e *ValidationError) Error() string {
	var sb strings.Builder

	switch e.Category {
	case ValidationCategoryPreflight:
		if e.Command != "" {
			sb.WriteString(fmt.Sprintf("command not found: %s", e.Command))
			if e.Hint != "" {
				sb.WriteString(fmt.Sprintf("\n  Resolution: %s", e.Hint))
			} else {
				sb.WriteString(fmt.Sprintf("\n  Resolution: Ensure '%s' is installed and available in your PATH.", e.Command))
			}
			return sb.String()
		}
	case ValidationCategoryConfig:
		if e.Field != "" {
			sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
		} else {
			sb.WriteString(e.Message)
		}
		return sb.String()
	}

	// Default format
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	} else if e.Message != "" {
		sb.WriteString(e.Message)
	} else if e.Command != "" {
		sb.WriteString(fmt.Sprintf("command not found: %s", e.Command))
	}

	return sb.String()
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: Detailed error with expected values and resolution hints
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder

	sb.WriteString(e.Error())

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}

	if e.Hint != "" && e.Category != ValidationCategoryPreflight {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError creates a ValidationError for configuration issues.
//
// Parameters:
//   - field: The field name that failed validation
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error with config category
//
// Example:
//
//	err := errors.NewConfigValidationError("manager.list", "command template is empty")
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryConfig,
		Field:    field,
		Message:  message,
	}
}

// NewPreflightValidationError creates a ValidationError for preflight check failures.
//
// Parameters:
//   - command: The command that was not found
//   - hint: Resolution hint for installing the command
//
// Returns:
//   - *ValidationError: New validation error with preflight category
//
// Example:
//
//	err := errors.NewPreflightValidationError("brew", "Install Homebrew: https://brew.sh/")
func NewPreflightValidationError(command, hint string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryPreflight,
		Command:  command,
		Hint:     hint,
	}
}
