// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"errors"
	"math"
	"testing"
)

func TestNewUnitType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typeName string
		wantErr  error
	}{
		{"simple", "length", nil},
		{"with spaces inside", "electric current", nil},
		{"empty", "", NullUnitTypeName},
		{"whitespace only", "   ", BlankUnitTypeName},
		{"tab only", "\t", BlankUnitTypeName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ut, err := NewUnitType(tt.typeName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewUnitType(%q) error = %v, want %v", tt.typeName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewUnitType(%q) unexpected error: %v", tt.typeName, err)
			}
			if ut.Name() != tt.typeName {
				t.Errorf("Name() = %q, want %q", ut.Name(), tt.typeName)
			}
		})
	}
}

func TestUnitType_Equality(t *testing.T) {
	t.Parallel()

	if mustUnitType("length") != length {
		t.Error("unit types with the same name should be equal")
	}
	if mustUnitType("Length") == length {
		t.Error("unit type equality should be case-sensitive")
	}
	set := map[UnitType]bool{length: true}
	if !set[mustUnitType("length")] {
		t.Error("equal unit types should hash to the same map key")
	}
}

func TestNewRootUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		unitType  UnitType
		longName  string
		shortName string
		wantErr   error
	}{
		{"valid", length, "meter", "m", nil},
		{"zero unit type", UnitType{}, "meter", "m", NullUnitType},
		{"empty long name", length, "", "m", NullUnitName},
		{"empty short name", length, "meter", "", NullUnitName},
		{"blank long name", length, " ", "m", BlankUnitName},
		{"blank short name", length, "meter", "\n", BlankUnitName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u, err := NewRootUnit(tt.unitType, tt.longName, tt.shortName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewRootUnit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRootUnit() unexpected error: %v", err)
			}
			if u.Value() != 1 {
				t.Errorf("Value() = %v, want 1", u.Value())
			}
			if u.UnitType() != tt.unitType || u.LongName() != tt.longName || u.ShortName() != tt.shortName {
				t.Errorf("NewRootUnit() = %+v, fields not preserved", u)
			}
		})
	}
}

func TestNewDerivedUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    Unit
		scalar  float64
		wantErr error
	}{
		{"valid", meter, 1000, nil},
		{"fractional", meter, 0.001, nil},
		{"zero base", Unit{}, 2, NullUnit},
		{"zero scalar", meter, 0, NonPositiveScalarValue},
		{"negative scalar", meter, -1, NonPositiveScalarValue},
		{"NaN scalar", meter, math.NaN(), NonPositiveScalarValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u, err := NewDerivedUnit(tt.base, tt.scalar, "derived", "d")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewDerivedUnit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDerivedUnit() unexpected error: %v", err)
			}
			if u.UnitType() != tt.base.UnitType() {
				t.Errorf("UnitType() = %v, want %v", u.UnitType(), tt.base.UnitType())
			}
			if u.Value() != tt.scalar*tt.base.Value() {
				t.Errorf("Value() = %v, want %v", u.Value(), tt.scalar*tt.base.Value())
			}
		})
	}
}

func TestUnit_DerivationChain(t *testing.T) {
	t.Parallel()

	if !approxEqual(foot.Value(), 0.3048, 1e-12) {
		t.Errorf("foot.Value() = %v, want 0.3048", foot.Value())
	}
	if !approxEqual(mile.Value(), 1609.344, 1e-12) {
		t.Errorf("mile.Value() = %v, want 1609.344", mile.Value())
	}
	if hour.Value() != 3600 {
		t.Errorf("hour.Value() = %v, want 3600", hour.Value())
	}
}

func TestUnit_EqualityIgnoresChain(t *testing.T) {
	t.Parallel()

	direct := mustDerived(meter, 1000, "kilometer", "km")
	viaCm := mustDerived(mustDerived(meter, 10, "decimeter", "dm"), 100, "kilometer", "km")
	if direct != viaCm {
		t.Errorf("units with equal fields should be equal: %+v vs %+v", direct, viaCm)
	}
	if direct == mustDerived(meter, 1000, "kilometre", "km") {
		t.Error("units with different names should not be equal")
	}
}

func TestUnit_AsComposite(t *testing.T) {
	t.Parallel()

	cu, err := meter.AsComposite()
	if err != nil {
		t.Fatalf("AsComposite() error = %v", err)
	}
	power, ok, err := cu.Power(length)
	if err != nil || !ok || power != 1 {
		t.Errorf("Power(length) = %d, %v, %v; want 1, true, nil", power, ok, err)
	}
	if cu.LongName() != "meter^1" {
		t.Errorf("LongName() = %q, want %q", cu.LongName(), "meter^1")
	}

	if _, err := (Unit{}).AsComposite(); !errors.Is(err, NullUnit) {
		t.Errorf("Unit{}.AsComposite() error = %v, want NullUnit", err)
	}
}
