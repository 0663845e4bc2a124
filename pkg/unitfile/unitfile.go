// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	_ "embed"
	"fmt"

	"github.com/invowk/measures/pkg/catalog"
)

var (
	//go:embed unitfile_schema.cue
	unitfileSchema string

	//go:embed builtin.cue
	builtinSource []byte
)

type (
	// Unitfile is the decoded form of a unitfile.cue document.
	Unitfile struct {
		Types      []string       `json:"types,omitempty"`
		Units      []UnitDef      `json:"units,omitempty"`
		Composites []CompositeDef `json:"composites,omitempty"`
		Constants  []ConstantDef  `json:"constants,omitempty"`
	}

	// UnitDef defines a root unit (Type set) or a derived unit (Base and
	// Scalar set).
	UnitDef struct {
		Name   string  `json:"name"`
		Short  string  `json:"short"`
		Type   string  `json:"type,omitempty"`
		Base   string  `json:"base,omitempty"`
		Scalar float64 `json:"scalar,omitempty"`
	}

	// FactorDef is one unit of a composite raised to a non-zero power.
	FactorDef struct {
		Unit  string `json:"unit"`
		Power int    `json:"power"`
	}

	// CompositeDef defines a composed unit registered under Key.
	CompositeDef struct {
		Key     string      `json:"key"`
		Name    string      `json:"name,omitempty"`
		Short   string      `json:"short,omitempty"`
		Factors []FactorDef `json:"factors"`
	}

	// ConstantDef defines a named constant. Unit is resolved like
	// catalog.Catalog.ResolveComposite.
	ConstantDef struct {
		Name  string  `json:"name"`
		Short string  `json:"short"`
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
)

// IsRoot reports whether d defines a root unit.
func (d UnitDef) IsRoot() bool { return d.Type != "" }

// ParseBytes validates data against the unitfile schema and decodes it.
// Rules the schema cannot express are checked afterwards and reported
// together as ValidationErrors.
func ParseBytes(data []byte, opts ...Option) (*Unitfile, error) {
	o := applyOptions(opts)

	uf, err := decode(unitfileSchema, data, o)
	if err != nil {
		return nil, err
	}

	if err := uf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", o.filename, err)
	}
	return uf, nil
}

// Load parses data and resolves it into a catalog.
func Load(data []byte, opts ...Option) (*catalog.Catalog, error) {
	uf, err := ParseBytes(data, opts...)
	if err != nil {
		return nil, err
	}
	return uf.Resolve(opts...)
}
