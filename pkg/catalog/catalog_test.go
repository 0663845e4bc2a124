// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/measures/pkg/measures"
)

type fixture struct {
	cat    *Catalog
	length measures.UnitType
	timeT  measures.UnitType
	meter  measures.Unit
	km     measures.Unit
	second measures.Unit
	hour   measures.Unit
	kph    *measures.ComposedUnit
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	var f fixture
	var err error
	f.length, err = measures.NewUnitType("length")
	must(err)
	f.timeT, err = measures.NewUnitType("time")
	must(err)
	f.meter, err = measures.NewRootUnit(f.length, "meter", "m")
	must(err)
	f.km, err = measures.NewDerivedUnit(f.meter, 1000, "kilometer", "km")
	must(err)
	f.second, err = measures.NewRootUnit(f.timeT, "second", "s")
	must(err)
	f.hour, err = measures.NewDerivedUnit(f.second, 3600, "hour", "h")
	must(err)
	f.kph, err = measures.NewBuilder().SetUnit(f.km, 1).SetUnit(f.hour, -1).SetNames("kilometers per hour", "km/h").Build()
	must(err)

	f.cat = New()
	must(f.cat.AddUnitType(f.length))
	for _, u := range []measures.Unit{f.meter, f.km, f.second, f.hour} {
		must(f.cat.AddUnit(u))
	}
	must(f.cat.AddComposite("kph", f.kph))
	return f
}

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	for _, name := range []string{"kilometer", "km"} {
		u, err := f.cat.Unit(name)
		if err != nil || u != f.km {
			t.Errorf("Unit(%q) = %v, %v; want km", name, u, err)
		}
	}
	if ut, err := f.cat.UnitType("time"); err != nil || ut != f.timeT {
		t.Errorf("UnitType(time) = %v, %v; want implicit registration", ut, err)
	}
	if cu, err := f.cat.Composite("kph"); err != nil || !cu.Equal(f.kph) {
		t.Errorf("Composite(kph) = %v, %v", cu, err)
	}

	_, err := f.cat.Unit("furlong")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Unit(furlong) error = %v, want ErrNotFound", err)
	}
	var lErr *LookupError
	if !errors.As(err, &lErr) || lErr.Kind != KindUnit || lErr.Name != "furlong" {
		t.Errorf("error should be *LookupError for unit furlong, got %#v", err)
	}
	if _, err := f.cat.Constant("c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Constant(c) error = %v, want ErrNotFound", err)
	}
	if _, err := f.cat.Composite("mph"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Composite(mph) error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_Duplicates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	clash, err := measures.NewDerivedUnit(f.meter, 0.001, "millimeter", "m")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.cat.AddUnit(clash); !errors.Is(err, ErrDuplicate) {
		t.Errorf("AddUnit(short name clash) error = %v, want ErrDuplicate", err)
	}
	if _, err := f.cat.Unit("millimeter"); !errors.Is(err, ErrNotFound) {
		t.Error("a rejected unit must not be partially registered")
	}
	if err := f.cat.AddUnitType(f.length); !errors.Is(err, ErrDuplicate) {
		t.Errorf("AddUnitType(duplicate) error = %v, want ErrDuplicate", err)
	}
	if err := f.cat.AddComposite("kph", f.kph); !errors.Is(err, ErrDuplicate) {
		t.Errorf("AddComposite(duplicate) error = %v, want ErrDuplicate", err)
	}
}

func TestCatalog_Snapshots(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	types := f.cat.UnitTypes()
	if len(types) != 2 || types[0] != f.length || types[1] != f.timeT {
		t.Errorf("UnitTypes() = %v, want [length time]", types)
	}
	if got := f.cat.Units(); !slices.Equal(got, []measures.Unit{f.meter, f.km, f.second, f.hour}) {
		t.Errorf("Units() = %v", got)
	}
	if got := f.cat.UnitsOf(f.timeT); !slices.Equal(got, []measures.Unit{f.second, f.hour}) {
		t.Errorf("UnitsOf(time) = %v", got)
	}

	units := f.cat.Units()
	units[0] = f.hour
	if f.cat.Units()[0] != f.meter {
		t.Error("Units() must return a copy")
	}
}

func TestCatalog_CloneAndMerge(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	clone := f.cat.Clone()
	mile, err := measures.NewDerivedUnit(f.meter, 1609.344, "mile", "mi")
	if err != nil {
		t.Fatal(err)
	}
	if err := clone.AddUnit(mile); err != nil {
		t.Fatalf("AddUnit(mile) error = %v", err)
	}
	if _, err := f.cat.Unit("mile"); !errors.Is(err, ErrNotFound) {
		t.Error("Clone() must not share maps with the original")
	}

	var shadowed []string
	f.cat.Merge(clone, func(s Skipped) {
		shadowed = append(shadowed, string(s.Kind)+":"+s.Name)
	})
	if _, err := f.cat.Unit("mi"); err != nil {
		t.Errorf("Merge() did not add mile: %v", err)
	}
	want := []string{"unit:meter", "unit:kilometer", "unit:second", "unit:hour", "composite:kph"}
	if !slices.Equal(shadowed, want) {
		t.Errorf("shadowed = %v, want %v", shadowed, want)
	}
}

func TestCatalog_MergeSkipsEntriesOnShadowedUnits(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	walk, err := measures.NewQuantity(f.kph, 5)
	if err != nil {
		t.Fatal(err)
	}
	pace, err := measures.NewConstant(walk, "walking pace", "wp")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.cat.AddConstant(pace); err != nil {
		t.Fatal(err)
	}
	metersPerSecond, err := measures.NewBuilder().SetUnit(f.meter, 1).SetUnit(f.second, -1).Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := f.cat.AddComposite("mps", metersPerSecond); err != nil {
		t.Fatal(err)
	}

	target := New()
	longHour, err := measures.NewDerivedUnit(f.second, 3601, "hour", "hr")
	if err != nil {
		t.Fatal(err)
	}
	if err := target.AddUnit(longHour); err != nil {
		t.Fatal(err)
	}

	var skipped []Skipped
	target.Merge(f.cat, func(s Skipped) { skipped = append(skipped, s) })

	want := []Skipped{
		{Kind: KindUnit, Name: "hour"},
		{Kind: KindComposite, Name: "kph", DependsOn: "hour"},
		{Kind: KindConstant, Name: "walking pace", DependsOn: "hour"},
	}
	if !slices.Equal(skipped, want) {
		t.Errorf("skipped = %+v, want %+v", skipped, want)
	}
	if _, err := target.Composite("kph"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Composite(kph) error = %v, want ErrNotFound", err)
	}
	if _, err := target.Constant("wp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Constant(wp) error = %v, want ErrNotFound", err)
	}
	if _, err := target.Composite("mps"); err != nil {
		t.Errorf("Composite(mps) error = %v, want independent composite merged", err)
	}
	if u, err := target.Unit("hour"); err != nil || u != longHour {
		t.Errorf("Unit(hour) = %v, %v, want the target's own hour", u, err)
	}
}

func TestCatalog_ResolveComposite(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tests := []struct {
		ref       string
		wantLabel string
		wantErr   error
	}{
		{"kph", "km^1 h^-1", nil},
		{"meter", "m^1", nil},
		{"km^1 s^-1", "km^1 s^-1", nil},
		{"", "", ErrNotFound},
		{"parsec", "", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()
			cu, err := f.cat.ResolveComposite(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveComposite(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveComposite(%q) error = %v", tt.ref, err)
			}
			if cu.ShortLabel() != tt.wantLabel {
				t.Errorf("ShortLabel() = %q, want %q", cu.ShortLabel(), tt.wantLabel)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	out := RenderTable(f.cat)
	for _, want := range []string{"TYPE", "SYMBOL", "kilometer", "km", "1000", "hour", "3600"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTable() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "kilometer") > strings.Index(out, "second") {
		t.Errorf("length rows should precede time rows:\n%s", out)
	}
}
