// SPDX-License-Identifier: MPL-2.0

package distribution

import "fmt"

// ErrorCode enumerates the ways distribution data can be invalid. Each code
// is a sentinel error for use with errors.Is.
type ErrorCode int

const (
	// NonPositiveParameter is reported when a parameter that must be
	// positive is <= 0.
	NonPositiveParameter ErrorCode = iota + 1
	// MissingParameter is reported by Build when a parameter was never set.
	MissingParameter
	// UnknownParameter is reported when a parameter does not belong to the
	// distribution kind.
	UnknownParameter
	// InvalidRange is reported when min, mode and max are out of order.
	InvalidRange
	// UnknownDistributionType is reported for an unknown Kind.
	UnknownDistributionType
	// NonFiniteParameter is reported for NaN or infinite parameters.
	NonFiniteParameter
	// MalformedString is reported when FromString cannot parse its input.
	MalformedString
	// NullRandomSource is reported when NewSampler gets a nil source.
	NullRandomSource
)

var errorDescriptions = map[ErrorCode]string{
	NonPositiveParameter:    "parameter must be greater than zero",
	MissingParameter:        "parameter is required",
	UnknownParameter:        "parameter is not used by this distribution",
	InvalidRange:            "parameters must satisfy min <= mode <= max and min < max",
	UnknownDistributionType: "unknown distribution type",
	NonFiniteParameter:      "parameter must be finite",
	MalformedString:         "malformed distribution string",
	NullRandomSource:        "random source must be set",
}

var errorNames = map[ErrorCode]string{
	NonPositiveParameter:    "NON_POSITIVE_PARAMETER",
	MissingParameter:        "MISSING_PARAMETER",
	UnknownParameter:        "UNKNOWN_PARAMETER",
	InvalidRange:            "INVALID_RANGE",
	UnknownDistributionType: "UNKNOWN_DISTRIBUTION_TYPE",
	NonFiniteParameter:      "NON_FINITE_PARAMETER",
	MalformedString:         "MALFORMED_STRING",
	NullRandomSource:        "NULL_RANDOM_SOURCE",
}

// Error is returned by failing distribution operations. It unwraps to its
// ErrorCode.
type Error struct {
	Code   ErrorCode
	Op     string
	Detail string
}

// AllErrorCodes returns every defined ErrorCode in declaration order.
func AllErrorCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorDescriptions))
	for c := NonPositiveParameter; c <= NullRandomSource; c++ {
		codes = append(codes, c)
	}
	return codes
}

// Description returns the fixed human-readable description of the code.
func (c ErrorCode) Description() string { return errorDescriptions[c] }

// String returns the upper-snake-case name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error implements the error interface so codes can be used as sentinels.
func (c ErrorCode) Error() string { return c.Description() }

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code.Description()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the ErrorCode for errors.Is() compatibility.
func (e *Error) Unwrap() error { return e.Code }

func newErrorf(code ErrorCode, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Detail: fmt.Sprintf(format, args...)}
}
