// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/invowk/measures/pkg/measures"
)

const (
	fieldSeparator = "|"
	keySeparator   = "::"

	typeKey   = "type"
	valueKey  = "value"
	unitKey   = "unit"
	typeValue = "quantity"
)

// ParseComposedUnit parses a label of space-separated "<name>^<power>"
// factors, the format of ComposedUnit.ShortLabel and LongLabel. A factor
// without "^" has power 1. Names are resolved as unit long or short names
// and may themselves contain spaces ("nautical mile^1"); the longest known
// name wins. The empty label is the unitless composite.
func (c *Catalog) ParseComposedUnit(label string) (*measures.ComposedUnit, error) {
	b := measures.NewBuilder()
	seen := make(map[measures.UnitType]bool)
	words := strings.Fields(label)
	for len(words) > 0 {
		u, power, n, err := c.nextFactor(label, words)
		if err != nil {
			return nil, err
		}
		if seen[u.UnitType()] {
			return nil, &ParseError{Input: label, Reason: fmt.Sprintf("dimension %q appears twice", u.UnitType())}
		}
		seen[u.UnitType()] = true
		b.SetUnit(u, power)
		words = words[n:]
	}
	return b.Build()
}

// nextFactor matches the longest run of leading words that names a unit,
// optionally followed by "^<power>" on its last word, and returns the number
// of words consumed.
func (c *Catalog) nextFactor(label string, words []string) (measures.Unit, int, int, error) {
	for n := len(words); n > 0; n-- {
		name, powerText, hasPower := cutPower(strings.Join(words[:n], " "))
		u, ok := c.units[name]
		if !ok {
			continue
		}
		if !hasPower {
			return u, 1, n, nil
		}
		power, err := strconv.Atoi(powerText)
		if err != nil {
			return measures.Unit{}, 0, 0, &ParseError{Input: label, Reason: fmt.Sprintf("invalid power in %q", words[n-1]), Cause: err}
		}
		return u, power, n, nil
	}

	name, _, _ := cutPower(words[0])
	_, err := c.Unit(name)
	return measures.Unit{}, 0, 0, &ParseError{Input: label, Reason: "unknown unit", Cause: err}
}

// cutPower splits "<name>^<power>" at the last "^".
func cutPower(factor string) (name, power string, ok bool) {
	i := strings.LastIndex(factor, "^")
	if i < 0 {
		return factor, "", false
	}
	return factor[:i], factor[i+1:], true
}

// ParseQuantity parses "<number> <label>", the format of Quantity.ShortLabel
// and LongLabel. Any run of whitespace may separate the number from the label.
func (c *Catalog) ParseQuantity(s string) (measures.Quantity, error) {
	s = strings.TrimSpace(s)
	numText, label := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		numText, label = s[:i], s[i:]
	}
	value, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return measures.Quantity{}, &ParseError{Input: s, Reason: "invalid number", Cause: err}
	}
	cu, err := c.ParseComposedUnit(label)
	if err != nil {
		return measures.Quantity{}, err
	}
	return measures.NewQuantity(cu, value)
}

// FormatQuantity writes q in the pipe grammar:
//
//	type::quantity|value::<number>|unit::<short label>
func FormatQuantity(q measures.Quantity) string {
	fields := []string{
		typeKey + keySeparator + typeValue,
		valueKey + keySeparator + measures.FormatValue(q.Value()),
		unitKey + keySeparator + q.ComposedUnit().ShortLabel(),
	}
	return strings.Join(fields, fieldSeparator)
}

// ParseQuantityString reads a quantity written by FormatQuantity. Fields may
// appear in any order; the unit field may be omitted for unitless values.
func (c *Catalog) ParseQuantityString(s string) (measures.Quantity, error) {
	fields, err := splitFields(s)
	if err != nil {
		return measures.Quantity{}, err
	}
	if fields[typeKey] != typeValue {
		return measures.Quantity{}, &ParseError{Input: s, Reason: fmt.Sprintf("type must be %q", typeValue)}
	}
	valueText, ok := fields[valueKey]
	if !ok {
		return measures.Quantity{}, &ParseError{Input: s, Reason: "missing value"}
	}
	value, err := strconv.ParseFloat(valueText, 64)
	if err != nil {
		return measures.Quantity{}, &ParseError{Input: s, Reason: "invalid value", Cause: err}
	}
	cu, err := c.ParseComposedUnit(fields[unitKey])
	if err != nil {
		return measures.Quantity{}, err
	}
	return measures.NewQuantity(cu, value)
}

func splitFields(s string) (map[string]string, error) {
	fields := make(map[string]string)
	for _, field := range strings.Split(s, fieldSeparator) {
		key, value, ok := strings.Cut(field, keySeparator)
		if !ok {
			return nil, &ParseError{Input: s, Reason: fmt.Sprintf("field %q has no %q", field, keySeparator)}
		}
		switch key {
		case typeKey, valueKey, unitKey:
		default:
			return nil, &ParseError{Input: s, Reason: fmt.Sprintf("unknown key %q", key)}
		}
		if _, dup := fields[key]; dup {
			return nil, &ParseError{Input: s, Reason: fmt.Sprintf("key %q repeated", key)}
		}
		fields[key] = value
	}
	return fields, nil
}
