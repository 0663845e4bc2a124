// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"math"
	"testing"
)

var (
	length = mustUnitType("length")
	timeT  = mustUnitType("time")
	mass   = mustUnitType("mass")

	meter      = mustRoot(length, "meter", "m")
	centimeter = mustDerived(meter, 0.01, "centimeter", "cm")
	inch       = mustDerived(centimeter, 2.54, "inch", "in")
	foot       = mustDerived(inch, 12, "foot", "ft")
	mile       = mustDerived(foot, 5280, "mile", "mi")
	kilometer  = mustDerived(meter, 1000, "kilometer", "km")

	second = mustRoot(timeT, "second", "s")
	minute = mustDerived(second, 60, "minute", "min")
	hour   = mustDerived(minute, 60, "hour", "h")

	kilogram = mustRoot(mass, "kilogram", "kg")
	pound    = mustDerived(kilogram, 0.45359237, "pound", "lb")
)

func mustUnitType(name string) UnitType {
	t, err := NewUnitType(name)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRoot(t UnitType, long, short string) Unit {
	u, err := NewRootUnit(t, long, short)
	if err != nil {
		panic(err)
	}
	return u
}

func mustDerived(base Unit, scalar float64, long, short string) Unit {
	u, err := NewDerivedUnit(base, scalar, long, short)
	if err != nil {
		panic(err)
	}
	return u
}

func mustBuild(t *testing.T, b *Builder) *ComposedUnit {
	t.Helper()
	cu, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return cu
}

func mustQuantity(t *testing.T, cu *ComposedUnit, v float64) Quantity {
	t.Helper()
	q, err := NewQuantity(cu, v)
	if err != nil {
		t.Fatalf("NewQuantity() error = %v", err)
	}
	return q
}

func mustUnitQuantity(t *testing.T, u Unit, v float64) Quantity {
	t.Helper()
	q, err := NewUnitQuantity(u, v)
	if err != nil {
		t.Fatalf("NewUnitQuantity() error = %v", err)
	}
	return q
}

func mps(t *testing.T) *ComposedUnit {
	t.Helper()
	return mustBuild(t, NewBuilder().SetUnit(meter, 1).SetUnit(second, -1))
}

func mph(t *testing.T) *ComposedUnit {
	t.Helper()
	return mustBuild(t, NewBuilder().SetUnit(mile, 1).SetUnit(hour, -1).SetNames("miles per hour", "mph"))
}

func approxEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tolerance*math.Max(math.Abs(a), math.Abs(b))
}
