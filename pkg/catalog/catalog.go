// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"strings"

	"github.com/invowk/measures/pkg/measures"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Catalog indexes unit types by name, units and constants by long and short
// name, and composed units by key.
type Catalog struct {
	types      map[string]measures.UnitType
	units      map[string]measures.Unit
	unitOrder  []measures.Unit
	composites map[string]*measures.ComposedUnit
	constants  map[string]measures.Constant
	constOrder []measures.Constant
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{
		types:      make(map[string]measures.UnitType),
		units:      make(map[string]measures.Unit),
		composites: make(map[string]*measures.ComposedUnit),
		constants:  make(map[string]measures.Constant),
	}
}

// Clone returns an independent copy of c. The entries themselves are
// immutable and shared.
func (c *Catalog) Clone() *Catalog {
	return &Catalog{
		types:      maps.Clone(c.types),
		units:      maps.Clone(c.units),
		unitOrder:  slices.Clone(c.unitOrder),
		composites: maps.Clone(c.composites),
		constants:  maps.Clone(c.constants),
		constOrder: slices.Clone(c.constOrder),
	}
}

// AddUnitType registers t. Registering the same unit type twice fails.
func (c *Catalog) AddUnitType(t measures.UnitType) error {
	if _, ok := c.types[t.Name()]; ok {
		return duplicate(KindUnitType, t.Name())
	}
	c.types[t.Name()] = t
	return nil
}

// AddUnit registers u under its long and short names, registering its unit
// type if needed. Either name already in use fails.
func (c *Catalog) AddUnit(u measures.Unit) error {
	for _, name := range unitNames(u.LongName(), u.ShortName()) {
		if _, ok := c.units[name]; ok {
			return duplicate(KindUnit, name)
		}
	}
	if _, ok := c.types[u.UnitType().Name()]; !ok {
		c.types[u.UnitType().Name()] = u.UnitType()
	}
	for _, name := range unitNames(u.LongName(), u.ShortName()) {
		c.units[name] = u
	}
	c.unitOrder = append(c.unitOrder, u)
	return nil
}

// AddComposite registers cu under key.
func (c *Catalog) AddComposite(key string, cu *measures.ComposedUnit) error {
	if _, ok := c.composites[key]; ok {
		return duplicate(KindComposite, key)
	}
	c.composites[key] = cu
	return nil
}

// AddConstant registers k under its long and short names.
func (c *Catalog) AddConstant(k measures.Constant) error {
	for _, name := range unitNames(k.LongName(), k.ShortName()) {
		if _, ok := c.constants[name]; ok {
			return duplicate(KindConstant, name)
		}
	}
	for _, name := range unitNames(k.LongName(), k.ShortName()) {
		c.constants[name] = k
	}
	c.constOrder = append(c.constOrder, k)
	return nil
}

func unitNames(long, short string) []string {
	if long == short {
		return []string{long}
	}
	return []string{long, short}
}

// UnitType returns the unit type called name.
func (c *Catalog) UnitType(name string) (measures.UnitType, error) {
	t, ok := c.types[name]
	if !ok {
		return measures.UnitType{}, notFound(KindUnitType, name)
	}
	return t, nil
}

// Unit returns the unit whose long or short name is name.
func (c *Catalog) Unit(name string) (measures.Unit, error) {
	u, ok := c.units[name]
	if !ok {
		return measures.Unit{}, notFound(KindUnit, name)
	}
	return u, nil
}

// Composite returns the composed unit registered under key.
func (c *Catalog) Composite(key string) (*measures.ComposedUnit, error) {
	cu, ok := c.composites[key]
	if !ok {
		return nil, notFound(KindComposite, key)
	}
	return cu, nil
}

// Constant returns the constant whose long or short name is name.
func (c *Catalog) Constant(name string) (measures.Constant, error) {
	k, ok := c.constants[name]
	if !ok {
		return measures.Constant{}, notFound(KindConstant, name)
	}
	return k, nil
}

// ResolveComposite returns the composite for ref, which may be a composite
// key, a unit name, or a label such as "km^1 h^-1".
func (c *Catalog) ResolveComposite(ref string) (*measures.ComposedUnit, error) {
	if cu, ok := c.composites[ref]; ok {
		return cu, nil
	}
	if u, ok := c.units[ref]; ok {
		return u.AsComposite()
	}
	if strings.TrimSpace(ref) == "" {
		return nil, notFound(KindComposite, ref)
	}
	return c.ParseComposedUnit(ref)
}

// UnitTypes returns every unit type sorted by name.
func (c *Catalog) UnitTypes() []measures.UnitType {
	types := make([]measures.UnitType, 0, len(c.types))
	for _, t := range c.types {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b measures.UnitType) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return types
}

// Units returns every unit in registration order.
func (c *Catalog) Units() []measures.Unit {
	return slices.Clone(c.unitOrder)
}

// UnitsOf returns the units of dimension t in registration order.
func (c *Catalog) UnitsOf(t measures.UnitType) []measures.Unit {
	var units []measures.Unit
	for _, u := range c.unitOrder {
		if u.UnitType() == t {
			units = append(units, u)
		}
	}
	return units
}

// CompositeKeys returns every composite key sorted.
func (c *Catalog) CompositeKeys() []string {
	keys := make([]string, 0, len(c.composites))
	for k := range c.composites {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Constants returns every constant in registration order.
func (c *Catalog) Constants() []measures.Constant {
	return slices.Clone(c.constOrder)
}

// Skipped describes an entry of another catalog that Merge left out.
type Skipped struct {
	Kind Kind
	Name string
	// DependsOn names the shadowed unit the entry is built on. It is empty
	// when the entry's own name is taken.
	DependsOn string
}

// Merge adds every entry of other to c. Entries whose names are already in
// use are skipped, as are composites and constants built on a unit of other
// whose name c binds to a different unit. Each skipped entry is reported
// through skipped.
func (c *Catalog) Merge(other *Catalog, skipped func(Skipped)) {
	report := func(s Skipped) {
		if skipped != nil {
			skipped(s)
		}
	}
	for _, t := range other.UnitTypes() {
		if _, ok := c.types[t.Name()]; !ok {
			c.types[t.Name()] = t
		}
	}
	stale := make(map[measures.Unit]bool)
	for _, u := range other.unitOrder {
		if err := c.AddUnit(u); err != nil {
			report(Skipped{Kind: KindUnit, Name: u.LongName()})
		}
		if c.units[u.LongName()] != u || c.units[u.ShortName()] != u {
			stale[u] = true
		}
	}
	staleIn := func(units []measures.Unit) string {
		for _, u := range units {
			if stale[u] {
				return u.LongName()
			}
		}
		return ""
	}
	for _, key := range other.CompositeKeys() {
		cu := other.composites[key]
		if _, ok := c.composites[key]; ok {
			report(Skipped{Kind: KindComposite, Name: key})
		} else if dep := staleIn(cu.Units()); dep != "" {
			report(Skipped{Kind: KindComposite, Name: key, DependsOn: dep})
		} else {
			c.composites[key] = cu
		}
	}
	for _, k := range other.constOrder {
		if dep := staleIn(k.Quantity().ComposedUnit().Units()); dep != "" && !c.hasConstantName(k) {
			report(Skipped{Kind: KindConstant, Name: k.LongName(), DependsOn: dep})
		} else if err := c.AddConstant(k); err != nil {
			report(Skipped{Kind: KindConstant, Name: k.LongName()})
		}
	}
}

func (c *Catalog) hasConstantName(k measures.Constant) bool {
	_, long := c.constants[k.LongName()]
	_, short := c.constants[k.ShortName()]
	return long || short
}
