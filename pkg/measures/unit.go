// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"math"
)

// Unit is a named scalar multiplier for a single UnitType. A root unit has
// value 1; a derived unit has the value of its base unit times a positive
// scalar. Only the flattened value is kept, so two units reached through
// different derivation chains are equal when all their fields match.
//
// Unit is comparable and may be used as a map key. The zero value is not a
// valid unit.
type Unit struct {
	unitType  UnitType
	value     float64
	longName  string
	shortName string
}

// NewRootUnit returns a base unit of the given dimension with value 1.
func NewRootUnit(unitType UnitType, longName, shortName string) (Unit, error) {
	const op = "new root unit"
	if unitType.IsZero() {
		return Unit{}, newError(NullUnitType, op)
	}
	if err := validateUnitNames(longName, shortName, op); err != nil {
		return Unit{}, err
	}
	return Unit{unitType: unitType, value: 1, longName: longName, shortName: shortName}, nil
}

// NewDerivedUnit returns a unit of the same dimension as base whose value is
// scalar times the value of base.
func NewDerivedUnit(base Unit, scalar float64, longName, shortName string) (Unit, error) {
	const op = "new derived unit"
	if base.IsZero() {
		return Unit{}, newError(NullUnit, op)
	}
	if err := validateUnitNames(longName, shortName, op); err != nil {
		return Unit{}, err
	}
	// !(scalar > 0) also rejects NaN.
	if !(scalar > 0) {
		return Unit{}, newErrorf(NonPositiveScalarValue, op, "got %v", scalar)
	}
	return Unit{
		unitType:  base.unitType,
		value:     scalar * base.value,
		longName:  longName,
		shortName: shortName,
	}, nil
}

func validateUnitNames(longName, shortName, op string) error {
	if err := validateName(longName, NullUnitName, BlankUnitName, op); err != nil {
		return err
	}
	return validateName(shortName, NullUnitName, BlankUnitName, op)
}

// UnitType returns the dimension of the unit.
func (u Unit) UnitType() UnitType { return u.unitType }

// Value returns the scalar of the unit relative to the root unit of its dimension.
func (u Unit) Value() float64 { return u.value }

// LongName returns the long name of the unit, e.g. "meter".
func (u Unit) LongName() string { return u.longName }

// ShortName returns the short name of the unit, e.g. "m".
func (u Unit) ShortName() string { return u.shortName }

// String returns the short name of the unit.
func (u Unit) String() string { return u.shortName }

// IsZero reports whether u is the zero Unit.
func (u Unit) IsZero() bool { return u.value == 0 && u.unitType.IsZero() }

// AsComposite returns a ComposedUnit holding only u at power 1, with no
// display names.
func (u Unit) AsComposite() (*ComposedUnit, error) {
	if u.IsZero() {
		return nil, newError(NullUnit, "as composite")
	}
	return NewBuilder().SetUnit(u, 1).Build()
}

// ratio returns (u.value / to.value)^power, exactly 1 when u == to.
func (u Unit) ratio(to Unit, power int) float64 {
	if u == to {
		return 1
	}
	return math.Pow(u.value/to.value, float64(power))
}
