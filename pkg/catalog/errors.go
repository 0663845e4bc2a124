// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
)

const (
	// KindUnitType identifies unit type entries.
	KindUnitType Kind = "unit type"
	// KindUnit identifies unit entries.
	KindUnit Kind = "unit"
	// KindComposite identifies composed unit entries.
	KindComposite Kind = "composite"
	// KindConstant identifies constant entries.
	KindConstant Kind = "constant"
)

var (
	// ErrNotFound is the sentinel error wrapped by LookupError for missing entries.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrDuplicate is the sentinel error wrapped by LookupError for names already in use.
	ErrDuplicate = errors.New("catalog entry already defined")
	// ErrMalformed is the sentinel error wrapped by ParseError.
	ErrMalformed = errors.New("malformed unit text")
)

type (
	// Kind names the category of a catalog entry.
	Kind string

	// LookupError is returned when a name is missing from the catalog or is
	// already taken. It wraps ErrNotFound or ErrDuplicate.
	LookupError struct {
		Kind Kind
		Name string
		err  error
	}

	// ParseError is returned when label or quantity text cannot be parsed.
	// It wraps ErrMalformed and, when present, the underlying cause.
	ParseError struct {
		Input  string
		Reason string
		Cause  error
	}
)

func notFound(kind Kind, name string) *LookupError {
	return &LookupError{Kind: kind, Name: name, err: ErrNotFound}
}

func duplicate(kind Kind, name string) *LookupError {
	return &LookupError{Kind: kind, Name: name, err: ErrDuplicate}
}

// Error implements the error interface for LookupError.
func (e *LookupError) Error() string {
	if errors.Is(e.err, ErrDuplicate) {
		return fmt.Sprintf("%s %q is already defined", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Unwrap returns ErrNotFound or ErrDuplicate for errors.Is() compatibility.
func (e *LookupError) Unwrap() error { return e.err }

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("malformed %q: %s", e.Input, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns ErrMalformed and the cause, if any.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Cause}
}
