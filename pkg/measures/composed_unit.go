// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type (
	// ComposedUnit is an immutable product of units raised to non-zero integer
	// powers, holding at most one unit per UnitType. Build one with NewBuilder.
	//
	// Entries keep the order in which their dimension was first set on the
	// builder. Labels and Units() follow that order.
	//
	// Equality (Equal, Key) considers only the unit and power of each
	// dimension; display names are ignored.
	ComposedUnit struct {
		entries   []entry
		value     float64
		longName  string
		shortName string
	}

	// Builder accumulates (Unit, power) pairs for a ComposedUnit. The first
	// invalid argument is remembered and returned by Build.
	Builder struct {
		entries   []entry
		longName  string
		shortName string
		err       error
	}

	entry struct {
		unit  Unit
		power int
	}
)

// NewBuilder returns an empty Builder. Building it unchanged yields a unitless
// composite with value 1.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetUnit sets the power of unit's dimension, replacing any unit and power
// previously set for that dimension. A power of 0 removes the dimension.
func (b *Builder) SetUnit(unit Unit, power int) *Builder {
	if b.err != nil {
		return b
	}
	if unit.IsZero() {
		b.err = newError(NullUnit, "set unit")
		return b
	}
	b.entries = setEntry(b.entries, unit, power)
	return b
}

// SetLongName overrides the long name of the composite. An empty name clears
// the override so LongName falls back to LongLabel.
func (b *Builder) SetLongName(name string) *Builder {
	b.longName = b.checkDisplayName(name)
	return b
}

// SetShortName overrides the short name of the composite. An empty name
// clears the override so ShortName falls back to ShortLabel.
func (b *Builder) SetShortName(name string) *Builder {
	b.shortName = b.checkDisplayName(name)
	return b
}

// SetNames sets both display names.
func (b *Builder) SetNames(longName, shortName string) *Builder {
	return b.SetLongName(longName).SetShortName(shortName)
}

func (b *Builder) checkDisplayName(name string) string {
	if name != "" && strings.TrimSpace(name) == "" && b.err == nil {
		b.err = newErrorf(BlankUnitName, "set composite name", "got %q", name)
	}
	return name
}

// Build returns the immutable ComposedUnit. The builder may be reused
// afterwards; later changes do not affect built composites.
func (b *Builder) Build() (*ComposedUnit, error) {
	if b.err != nil {
		return nil, b.err
	}
	entries := make([]entry, len(b.entries))
	copy(entries, b.entries)
	return newComposedUnit(entries, b.longName, b.shortName), nil
}

func setEntry(entries []entry, unit Unit, power int) []entry {
	for i := range entries {
		if entries[i].unit.unitType != unit.unitType {
			continue
		}
		if power == 0 {
			return append(entries[:i], entries[i+1:]...)
		}
		entries[i] = entry{unit: unit, power: power}
		return entries
	}
	if power == 0 {
		return entries
	}
	return append(entries, entry{unit: unit, power: power})
}

func newComposedUnit(entries []entry, longName, shortName string) *ComposedUnit {
	value := 1.0
	for _, e := range entries {
		value *= math.Pow(e.unit.value, float64(e.power))
	}
	return &ComposedUnit{entries: entries, value: value, longName: longName, shortName: shortName}
}

// Value returns the product of every unit's value raised to its power.
func (c *ComposedUnit) Value() float64 { return c.value }

// IsUnitLess reports whether the composite has no dimensions.
func (c *ComposedUnit) IsUnitLess() bool { return len(c.entries) == 0 }

// Unit returns the unit used for unitType, if the dimension is present.
func (c *ComposedUnit) Unit(unitType UnitType) (Unit, bool, error) {
	if unitType.IsZero() {
		return Unit{}, false, newError(NullUnitType, "get unit")
	}
	if e, ok := c.find(unitType); ok {
		return e.unit, true, nil
	}
	return Unit{}, false, nil
}

// Power returns the power of unitType, if the dimension is present.
func (c *ComposedUnit) Power(unitType UnitType) (int, bool, error) {
	if unitType.IsZero() {
		return 0, false, newError(NullUnitType, "get power")
	}
	if e, ok := c.find(unitType); ok {
		return e.power, true, nil
	}
	return 0, false, nil
}

// Units returns the units of the composite in entry order.
func (c *ComposedUnit) Units() []Unit {
	units := make([]Unit, len(c.entries))
	for i, e := range c.entries {
		units[i] = e.unit
	}
	return units
}

// UnitTypes returns the dimensions of the composite in entry order.
func (c *ComposedUnit) UnitTypes() []UnitType {
	types := make([]UnitType, len(c.entries))
	for i, e := range c.entries {
		types[i] = e.unit.unitType
	}
	return types
}

// LongLabel joins "<long name>^<power>" for every entry with single spaces.
func (c *ComposedUnit) LongLabel() string {
	return c.label(Unit.LongName)
}

// ShortLabel joins "<short name>^<power>" for every entry with single spaces.
func (c *ComposedUnit) ShortLabel() string {
	return c.label(Unit.ShortName)
}

func (c *ComposedUnit) label(name func(Unit) string) string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = name(e.unit) + "^" + strconv.Itoa(e.power)
	}
	return strings.Join(parts, " ")
}

// LongName returns the long name set on the builder, or LongLabel.
func (c *ComposedUnit) LongName() string {
	if c.longName != "" {
		return c.longName
	}
	return c.LongLabel()
}

// ShortName returns the short name set on the builder, or ShortLabel.
func (c *ComposedUnit) ShortName() string {
	if c.shortName != "" {
		return c.shortName
	}
	return c.ShortLabel()
}

// String returns the short name of the composite.
func (c *ComposedUnit) String() string { return c.ShortName() }

// IsCompatible reports whether other has exactly the same dimensions raised
// to the same powers, regardless of the unit chosen for each dimension.
func (c *ComposedUnit) IsCompatible(other *ComposedUnit) (bool, error) {
	if other == nil {
		return false, newError(NullComposite, "is compatible")
	}
	return c.compatible(other), nil
}

func (c *ComposedUnit) compatible(other *ComposedUnit) bool {
	if len(c.entries) != len(other.entries) {
		return false
	}
	for _, e := range c.entries {
		o, ok := other.find(e.unit.unitType)
		if !ok || o.power != e.power {
			return false
		}
	}
	return true
}

// Equal reports whether other has the same unit and power for every
// dimension. Display names and entry order are ignored.
func (c *ComposedUnit) Equal(other *ComposedUnit) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.entries) != len(other.entries) {
		return false
	}
	for _, e := range c.entries {
		o, ok := other.find(e.unit.unitType)
		if !ok || o != e {
			return false
		}
	}
	return true
}

// Key returns a canonical string of the composite's entries, equal for two
// composites exactly when Equal reports true. It is suitable as a map key.
func (c *ComposedUnit) Key() string {
	sorted := make([]entry, len(c.entries))
	copy(sorted, c.entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].unit.unitType.name < sorted[j].unit.unitType.name
	})
	var sb strings.Builder
	for i, e := range sorted {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Quote(e.unit.unitType.name))
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(e.unit.longName))
		sb.WriteByte(',')
		sb.WriteString(strconv.Quote(e.unit.shortName))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(e.unit.value, 'g', -1, 64))
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(e.power))
	}
	return sb.String()
}

func (c *ComposedUnit) find(unitType UnitType) (entry, bool) {
	for _, e := range c.entries {
		if e.unit.unitType == unitType {
			return e, true
		}
	}
	return entry{}, false
}

// scaled returns the composite with every power multiplied by n. Display
// names are dropped.
func (c *ComposedUnit) scaled(n int) *ComposedUnit {
	var entries []entry
	for _, e := range c.entries {
		entries = setEntry(entries, e.unit, e.power*n)
	}
	return newComposedUnit(entries, "", "")
}

// divided returns the composite with every power divided by n. The caller
// has checked divisibility.
func (c *ComposedUnit) divided(n int) *ComposedUnit {
	entries := make([]entry, len(c.entries))
	for i, e := range c.entries {
		entries[i] = entry{unit: e.unit, power: e.power / n}
	}
	return newComposedUnit(entries, "", "")
}

// combine multiplies c by other raised to sign (1 or -1). Shared dimensions
// keep c's unit; the returned factor converts other's contribution for those
// dimensions into c's units.
func (c *ComposedUnit) combine(other *ComposedUnit, sign int) (*ComposedUnit, float64) {
	entries := make([]entry, len(c.entries), len(c.entries)+len(other.entries))
	copy(entries, c.entries)
	factor := 1.0
	for _, o := range other.entries {
		power := o.power * sign
		mine, ok := c.find(o.unit.unitType)
		if !ok {
			entries = append(entries, entry{unit: o.unit, power: power})
			continue
		}
		factor *= o.unit.ratio(mine.unit, power)
		for i := range entries {
			if entries[i].unit.unitType == o.unit.unitType {
				entries[i].power += power
				if entries[i].power == 0 {
					entries = append(entries[:i], entries[i+1:]...)
				}
				break
			}
		}
	}
	return newComposedUnit(entries, "", ""), factor
}

// conversionFactor returns the multiplier taking a value expressed in c into
// the compatible composite to. Dimensions using the same unit contribute
// exactly 1.
func (c *ComposedUnit) conversionFactor(to *ComposedUnit) float64 {
	factor := 1.0
	for _, e := range c.entries {
		target, _ := to.find(e.unit.unitType)
		factor *= e.unit.ratio(target.unit, e.power)
	}
	return factor
}
