// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"fmt"
)

// ErrorCode enumerates every precondition violation the measures package can
// report. Each code is itself a sentinel error, so callers can match with
// errors.Is(err, measures.IncompatibleUnitTypes).
type ErrorCode int

const (
	// NullUnitTypeName is reported for an empty unit type name.
	NullUnitTypeName ErrorCode = iota + 1
	// BlankUnitTypeName is reported for a whitespace-only unit type name.
	BlankUnitTypeName
	// NullUnitType is reported when the zero UnitType is passed.
	NullUnitType
	// NullUnitName is reported for an empty unit long or short name.
	NullUnitName
	// BlankUnitName is reported for a whitespace-only unit long or short name.
	BlankUnitName
	// NullUnit is reported when the zero Unit is passed.
	NullUnit
	// NonPositiveScalarValue is reported when a derived unit scalar is <= 0 or NaN.
	NonPositiveScalarValue
	// NullComposite is reported when a nil *ComposedUnit is passed.
	NullComposite
	// NullQuantity is reported when the zero Quantity is passed.
	NullQuantity
	// IncompatibleUnitTypes is reported when two composites have different
	// dimension to power mappings.
	IncompatibleUnitTypes
	// NonPositiveRoot is reported for a root degree <= 0.
	NonPositiveRoot
	// PowerIsNotRootCompatible is reported when an exponent is not divisible
	// by the root degree.
	PowerIsNotRootCompatible
	// InvalidTolerance is reported for a tolerance outside [0, 1).
	InvalidTolerance
	// ValueCannotBeCastToInt is reported when a value is NaN or outside the int32 range.
	ValueCannotBeCastToInt
	// ValueCannotBeCastToLong is reported when a value is NaN or outside the int64 range.
	ValueCannotBeCastToLong
	// NullConstantName is reported for an empty constant long or short name.
	NullConstantName
	// BlankConstantName is reported for a whitespace-only constant long or short name.
	BlankConstantName
	// InvalidRoundingRule is reported for an unknown RoundingRule.
	InvalidRoundingRule
	// InvalidTemperatureScale is reported for an unknown TemperatureScale.
	InvalidTemperatureScale
)

var errorDescriptions = map[ErrorCode]string{
	NullUnitTypeName:         "unit type name must not be empty",
	BlankUnitTypeName:        "unit type name must not be whitespace-only",
	NullUnitType:             "unit type must be set",
	NullUnitName:             "unit name must not be empty",
	BlankUnitName:            "unit name must not be whitespace-only",
	NullUnit:                 "unit must be set",
	NonPositiveScalarValue:   "unit scalar must be greater than zero",
	NullComposite:            "composed unit must be set",
	NullQuantity:             "quantity must be set",
	IncompatibleUnitTypes:    "unit types are not compatible",
	NonPositiveRoot:          "root must be greater than zero",
	PowerIsNotRootCompatible: "unit powers are not divisible by the root",
	InvalidTolerance:         "tolerance must be in the range [0, 1)",
	ValueCannotBeCastToInt:   "value cannot be represented as a 32-bit integer",
	ValueCannotBeCastToLong:  "value cannot be represented as a 64-bit integer",
	NullConstantName:         "constant name must not be empty",
	BlankConstantName:        "constant name must not be whitespace-only",
	InvalidRoundingRule:      "unknown rounding rule",
	InvalidTemperatureScale:  "unknown temperature scale",
}

var errorNames = map[ErrorCode]string{
	NullUnitTypeName:         "NULL_UNIT_TYPE_NAME",
	BlankUnitTypeName:        "BLANK_UNIT_TYPE_NAME",
	NullUnitType:             "NULL_UNIT_TYPE",
	NullUnitName:             "NULL_UNIT_NAME",
	BlankUnitName:            "BLANK_UNIT_NAME",
	NullUnit:                 "NULL_UNIT",
	NonPositiveScalarValue:   "NON_POSITIVE_SCALAR_VALUE",
	NullComposite:            "NULL_COMPOSITE",
	NullQuantity:             "NULL_QUANTITY",
	IncompatibleUnitTypes:    "INCOMPATIBLE_UNIT_TYPES",
	NonPositiveRoot:          "NON_POSITIVE_ROOT",
	PowerIsNotRootCompatible: "POWER_IS_NOT_ROOT_COMPATIBLE",
	InvalidTolerance:         "INVALID_TOLERANCE",
	ValueCannotBeCastToInt:   "VALUE_CANNOT_BE_CAST_TO_INT",
	ValueCannotBeCastToLong:  "VALUE_CANNOT_BE_CAST_TO_LONG",
	NullConstantName:         "NULL_CONSTANT_NAME",
	BlankConstantName:        "BLANK_CONSTANT_NAME",
	InvalidRoundingRule:      "INVALID_ROUNDING_RULE",
	InvalidTemperatureScale:  "INVALID_TEMPERATURE_SCALE",
}

type (
	// Error is returned by every failing measures operation. It carries the
	// failing operation and an optional detail, and unwraps to its ErrorCode.
	Error struct {
		Code   ErrorCode
		Op     string
		Detail string
	}
)

// AllErrorCodes returns every defined ErrorCode in declaration order.
func AllErrorCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorDescriptions))
	for c := NullUnitTypeName; c <= InvalidTemperatureScale; c++ {
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

func newError(code ErrorCode, op string) *Error {
	return &Error{Code: code, Op: op}
}

func newErrorf(code ErrorCode, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Detail: fmt.Sprintf(format, args...)}
}
