// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"strings"
)

// UnitType identifies a physical dimension such as "length" or "time".
// Two unit types are equal when their names are equal (case-sensitive).
// The zero value is not a valid unit type.
type UnitType struct {
	name string
}

// NewUnitType returns the unit type with the given name.
func NewUnitType(name string) (UnitType, error) {
	if err := validateName(name, NullUnitTypeName, BlankUnitTypeName, "new unit type"); err != nil {
		return UnitType{}, err
	}
	return UnitType{name: name}, nil
}

// Name returns the name of the unit type.
func (t UnitType) Name() string { return t.name }

// String returns the name of the unit type.
func (t UnitType) String() string { return t.name }

// IsZero reports whether t is the zero UnitType.
func (t UnitType) IsZero() bool { return t.name == "" }

func validateName(name string, nullCode, blankCode ErrorCode, op string) error {
	if name == "" {
		return newError(nullCode, op)
	}
	if strings.TrimSpace(name) == "" {
		return newErrorf(blankCode, op, "got %q", name)
	}
	return nil
}
