// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"math"
	"strconv"
)

// Quantity is a float64 value tagged with a ComposedUnit. Every operation
// returns a new Quantity. The zero value is not a valid quantity.
//
// Two quantities are Equal only when both the composite and the value are
// identical: 1 ft and 12 in are not Equal, though Eq reports them equal.
type Quantity struct {
	unit  *ComposedUnit
	value float64
}

const nilQuantity = "<nil quantity>"

// NewQuantity returns value expressed in unit.
func NewQuantity(unit *ComposedUnit, value float64) (Quantity, error) {
	if unit == nil {
		return Quantity{}, newError(NullComposite, "new quantity")
	}
	return Quantity{unit: unit, value: value}, nil
}

// NewUnitQuantity returns value expressed in a single unit at power 1.
func NewUnitQuantity(unit Unit, value float64) (Quantity, error) {
	if unit.IsZero() {
		return Quantity{}, newError(NullUnit, "new quantity")
	}
	composite, err := unit.AsComposite()
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{unit: composite, value: value}, nil
}

// ComposedUnit returns the unit of the quantity.
func (q Quantity) ComposedUnit() *ComposedUnit { return q.unit }

// Value returns the numeric value of the quantity in its own unit.
func (q Quantity) Value() float64 { return q.value }

// NormalizedValue returns the value multiplied by the composite's value,
// the dimension-canonical number used for cross-unit comparison. It is NaN
// for the zero Quantity.
func (q Quantity) NormalizedValue() float64 {
	if q.unit == nil {
		return math.NaN()
	}
	return q.value * q.unit.value
}

// IsZeroQuantity reports whether q is the zero Quantity.
func (q Quantity) IsZeroQuantity() bool { return q.unit == nil }

// Equal reports whether other has an Equal composite and the identical value.
func (q Quantity) Equal(other Quantity) bool {
	if !q.unit.Equal(other.unit) {
		return false
	}
	return q.value == other.value || (math.IsNaN(q.value) && math.IsNaN(other.value))
}

func checkQuantities(op string, qs ...Quantity) error {
	for _, q := range qs {
		if q.unit == nil {
			return newError(NullQuantity, op)
		}
	}
	return nil
}

func checkCompatible(op string, q, other Quantity) error {
	if err := checkQuantities(op, q, other); err != nil {
		return err
	}
	if !q.unit.compatible(other.unit) {
		return newErrorf(IncompatibleUnitTypes, op, "%q and %q", q.unit.ShortLabel(), other.unit.ShortLabel())
	}
	return nil
}

// Add returns q + other expressed in q's unit. other is converted first.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := checkCompatible("add", q, other); err != nil {
		return Quantity{}, err
	}
	return Quantity{unit: q.unit, value: q.value + other.value*other.unit.conversionFactor(q.unit)}, nil
}

// Sub returns q - other expressed in q's unit. other is converted first.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if err := checkCompatible("sub", q, other); err != nil {
		return Quantity{}, err
	}
	return Quantity{unit: q.unit, value: q.value - other.value*other.unit.conversionFactor(q.unit)}, nil
}

// Mult returns q * other. Exponents are added per dimension; a dimension in
// both operands keeps q's unit, other dimensions keep other's unit.
func (q Quantity) Mult(other Quantity) (Quantity, error) {
	if err := checkQuantities("mult", q, other); err != nil {
		return Quantity{}, err
	}
	unit, factor := q.unit.combine(other.unit, 1)
	return Quantity{unit: unit, value: q.value * other.value * factor}, nil
}

// Div returns q / other. Exponents of other are negated, then combined as in Mult.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	if err := checkQuantities("div", q, other); err != nil {
		return Quantity{}, err
	}
	unit, factor := q.unit.combine(other.unit, -1)
	return Quantity{unit: unit, value: q.value / other.value * factor}, nil
}

// Pow raises q to the integer power n, multiplying every exponent by n.
func (q Quantity) Pow(n int) (Quantity, error) {
	if err := checkQuantities("pow", q); err != nil {
		return Quantity{}, err
	}
	return Quantity{unit: q.unit.scaled(n), value: math.Pow(q.value, float64(n))}, nil
}

// Root returns the n-th real root of q, dividing every exponent by n.
// Negative values only have a real root for odd n; even roots of negative
// values are NaN.
func (q Quantity) Root(n int) (Quantity, error) {
	const op = "root"
	if err := checkQuantities(op, q); err != nil {
		return Quantity{}, err
	}
	if n <= 0 {
		return Quantity{}, newErrorf(NonPositiveRoot, op, "got %d", n)
	}
	for _, e := range q.unit.entries {
		if e.power%n != 0 {
			return Quantity{}, newErrorf(PowerIsNotRootCompatible, op,
				"%s^%d is not divisible by %d", e.unit.shortName, e.power, n)
		}
	}
	return Quantity{unit: q.unit.divided(n), value: realRoot(q.value, n)}, nil
}

func realRoot(v float64, n int) float64 {
	switch {
	case n == 1:
		return v
	case n == 2:
		return math.Sqrt(v)
	case n == 3:
		return math.Cbrt(v)
	case v < 0 && n%2 == 1:
		return -math.Pow(-v, 1/float64(n))
	case v < 0:
		return math.NaN()
	default:
		return math.Pow(v, 1/float64(n))
	}
}

// Invert returns 1/q, negating every exponent.
func (q Quantity) Invert() (Quantity, error) {
	if err := checkQuantities("invert", q); err != nil {
		return Quantity{}, err
	}
	return Quantity{unit: q.unit.scaled(-1), value: 1 / q.value}, nil
}

// Rebase returns q expressed in target, which must be compatible with q's unit.
func (q Quantity) Rebase(target *ComposedUnit) (Quantity, error) {
	const op = "rebase"
	if err := checkQuantities(op, q); err != nil {
		return Quantity{}, err
	}
	if target == nil {
		return Quantity{}, newError(NullComposite, op)
	}
	if !q.unit.compatible(target) {
		return Quantity{}, newErrorf(IncompatibleUnitTypes, op, "%q and %q", q.unit.ShortLabel(), target.ShortLabel())
	}
	return Quantity{unit: target, value: q.value * q.unit.conversionFactor(target)}, nil
}

// Scale returns q with its value multiplied by factor.
func (q Quantity) Scale(factor float64) Quantity { return Quantity{unit: q.unit, value: q.value * factor} }

// SetValue returns a quantity with the same unit and the given value.
func (q Quantity) SetValue(value float64) Quantity { return Quantity{unit: q.unit, value: value} }

// Inc returns q with its value increased by 1.
func (q Quantity) Inc() Quantity { return q.IncBy(1) }

// IncBy returns q with its value increased by amount.
func (q Quantity) IncBy(amount float64) Quantity { return Quantity{unit: q.unit, value: q.value + amount} }

// Dec returns q with its value decreased by 1.
func (q Quantity) Dec() Quantity { return q.DecBy(1) }

// DecBy returns q with its value decreased by amount.
func (q Quantity) DecBy(amount float64) Quantity { return Quantity{unit: q.unit, value: q.value - amount} }

// Round returns q with its value rounded to a whole number according to rule.
func (q Quantity) Round(rule RoundingRule) (Quantity, error) {
	if err := checkQuantities("round", q); err != nil {
		return Quantity{}, err
	}
	v, err := rule.Round(q.value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{unit: q.unit, value: v}, nil
}

func (q Quantity) normalizedPair(op string, other Quantity) (float64, float64, error) {
	if err := checkCompatible(op, q, other); err != nil {
		return 0, 0, err
	}
	return q.NormalizedValue(), other.NormalizedValue(), nil
}

// Eq reports whether the normalized values of q and other are identical.
// It is false when either value is NaN.
func (q Quantity) Eq(other Quantity) (bool, error) {
	a, b, err := q.normalizedPair("eq", other)
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// EqWithin reports whether |1 - a/b| <= tolerance for the normalized values
// a and b of q and other. tolerance must be in [0, 1). It is false when
// either value is NaN.
func (q Quantity) EqWithin(other Quantity, tolerance float64) (bool, error) {
	const op = "eq"
	if !(tolerance >= 0 && tolerance < 1) {
		return false, newErrorf(InvalidTolerance, op, "got %v", tolerance)
	}
	a, b, err := q.normalizedPair(op, other)
	if err != nil {
		return false, err
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false, nil
	}
	if a == b {
		return true, nil
	}
	return math.Abs(1-a/b) <= tolerance, nil
}

// Gt reports whether the normalized value of q is greater than other's.
func (q Quantity) Gt(other Quantity) (bool, error) {
	a, b, err := q.normalizedPair("gt", other)
	return err == nil && a > b, err
}

// Gte reports whether the normalized value of q is greater than or equal to other's.
func (q Quantity) Gte(other Quantity) (bool, error) {
	a, b, err := q.normalizedPair("gte", other)
	return err == nil && a >= b, err
}

// Lt reports whether the normalized value of q is less than other's.
func (q Quantity) Lt(other Quantity) (bool, error) {
	a, b, err := q.normalizedPair("lt", other)
	return err == nil && a < b, err
}

// Lte reports whether the normalized value of q is less than or equal to other's.
func (q Quantity) Lte(other Quantity) (bool, error) {
	a, b, err := q.normalizedPair("lte", other)
	return err == nil && a <= b, err
}

// IsFinite reports whether the value is neither NaN nor infinite.
func (q Quantity) IsFinite() bool { return !math.IsNaN(q.value) && !math.IsInf(q.value, 0) }

// IsNaN reports whether the value is NaN.
func (q Quantity) IsNaN() bool { return math.IsNaN(q.value) }

// IsInfinite reports whether the value is positive or negative infinity.
func (q Quantity) IsInfinite() bool { return math.IsInf(q.value, 0) }

// IsZero reports whether the value is +0 or -0.
func (q Quantity) IsZero() bool { return q.value == 0 }

// IsNegative reports whether the value is below zero. NaN is not negative.
func (q Quantity) IsNegative() bool { return q.value < 0 }

// IsPositive reports whether the value is above zero. NaN is not positive.
func (q Quantity) IsPositive() bool { return q.value > 0 }

// IsNonNegative reports whether the value is zero or above. NaN is not non-negative.
func (q Quantity) IsNonNegative() bool { return q.value >= 0 }

// IsNonPositive reports whether the value is zero or below. NaN is not non-positive.
func (q Quantity) IsNonPositive() bool { return q.value <= 0 }

// IsUnitLess reports whether the quantity's composite has no dimensions.
// The zero Quantity has no composite and is not unitless.
func (q Quantity) IsUnitLess() bool { return q.unit != nil && q.unit.IsUnitLess() }

// IsIntValue reports whether the value is a whole number within the int32 range.
func (q Quantity) IsIntValue() bool { return IsIntValue(q.value) }

// IsLongValue reports whether the value is a whole number within the int64 range.
func (q Quantity) IsLongValue() bool { return IsLongValue(q.value) }

// Int32 returns the value truncated toward zero. It fails when the value is
// NaN or outside the int32 range.
func (q Quantity) Int32() (int32, error) {
	t := math.Trunc(q.value)
	if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
		return 0, newErrorf(ValueCannotBeCastToInt, "int32", "got %v", q.value)
	}
	return int32(t), nil
}

// Int64 returns the value truncated toward zero. It fails when the value is
// NaN or outside the int64 range.
func (q Quantity) Int64() (int64, error) {
	t := math.Trunc(q.value)
	// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
	if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, newErrorf(ValueCannotBeCastToLong, "int64", "got %v", q.value)
	}
	return int64(t), nil
}

// LongName formats the quantity as "<value> <composite long name>".
func (q Quantity) LongName() string { return q.describe((*ComposedUnit).LongName) }

// ShortName formats the quantity as "<value> <composite short name>".
func (q Quantity) ShortName() string { return q.describe((*ComposedUnit).ShortName) }

// LongLabel formats the quantity as "<value> <composite long label>".
func (q Quantity) LongLabel() string { return q.describe((*ComposedUnit).LongLabel) }

// ShortLabel formats the quantity as "<value> <composite short label>".
func (q Quantity) ShortLabel() string { return q.describe((*ComposedUnit).ShortLabel) }

// String returns ShortName.
func (q Quantity) String() string { return q.ShortName() }

// describe formats q with the composite text picked by name. The zero
// Quantity prints as nilQuantity.
func (q Quantity) describe(name func(*ComposedUnit) string) string {
	if q.unit == nil {
		return nilQuantity
	}
	return q.format(name(q.unit))
}

func (q Quantity) format(name string) string {
	v := FormatValue(q.value)
	if name == "" {
		return v
	}
	return v + " " + name
}

// FormatValue formats v with the shortest representation that round-trips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
