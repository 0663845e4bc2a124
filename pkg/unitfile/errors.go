// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDefinition is the sentinel error wrapped by InvalidDefinitionError.
	ErrInvalidDefinition = errors.New("invalid unit definition")
	// ErrUnknownReference is returned when a definition refers to an undefined name.
	ErrUnknownReference = errors.New("unknown reference")
	// ErrDuplicateName is returned when a name or key is defined twice.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrCyclicDefinition is returned when derived units form a cycle.
	ErrCyclicDefinition = errors.New("cyclic unit definition")
	// ErrFileTooLarge is returned when the input exceeds the maximum file size.
	ErrFileTooLarge = errors.New("unitfile too large")
	// ErrSchemaViolation is the sentinel error wrapped by SchemaError.
	ErrSchemaViolation = errors.New("unitfile does not match schema")
)

type (
	// SchemaError reports CUE syntax or schema validation failure, located by
	// the JSON path of the offending value (e.g. "units[1].scalar"). Path is
	// empty for errors CUE does not attach to a value.
	SchemaError struct {
		File    string
		Path    string
		Message string
	}

	// SchemaErrors collects the SchemaError values of a unitfile that fails
	// in more than one place.
	SchemaErrors []*SchemaError

	// InvalidDefinitionError reports a structural rule that the CUE schema
	// cannot express, located by its JSON path (e.g. "units[3]").
	InvalidDefinitionError struct {
		Path   string
		Reason string
	}

	// ValidationErrors collects every InvalidDefinitionError of a unitfile.
	ValidationErrors []error

	// ResolveError is returned when a definition cannot be turned into a
	// catalog entry. It wraps ErrUnknownReference, ErrDuplicateName,
	// ErrCyclicDefinition or a measures error.
	ResolveError struct {
		File string
		Path string
		Err  error
	}
)

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	return e.File + ": " + e.detail()
}

func (e *SchemaError) detail() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Unwrap returns ErrSchemaViolation for errors.Is() compatibility.
func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }

// Error implements the error interface for SchemaErrors.
func (s SchemaErrors) Error() string {
	if len(s) == 0 {
		return ErrSchemaViolation.Error()
	}
	lines := make([]string, len(s))
	for i, e := range s {
		lines[i] = e.detail()
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", s[0].File, strings.Join(lines, "\n  "))
}

// Unwrap returns the collected errors.
func (s SchemaErrors) Unwrap() []error {
	errs := make([]error, len(s))
	for i, e := range s {
		errs[i] = e
	}
	return errs
}

// Error implements the error interface for InvalidDefinitionError.
func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidDefinition for errors.Is() compatibility.
func (e *InvalidDefinitionError) Unwrap() error { return ErrInvalidDefinition }

// Error implements the error interface for ValidationErrors.
func (v ValidationErrors) Error() string {
	lines := make([]string, len(v))
	for i, err := range v {
		lines[i] = err.Error()
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return fmt.Sprintf("%d invalid definitions:\n  %s", len(lines), strings.Join(lines, "\n  "))
}

// Unwrap returns the collected errors.
func (v ValidationErrors) Unwrap() []error { return v }

// Error implements the error interface for ResolveError.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.File, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResolveError) Unwrap() error { return e.Err }
