// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/measures/internal/dag"
	"github.com/invowk/measures/pkg/catalog"
	"github.com/invowk/measures/pkg/measures"
)

type resolver struct {
	uf    *Unitfile
	o     options
	out   *catalog.Catalog
	scope *catalog.Catalog

	unitIndex map[string]int
	units     []measures.Unit
}

// Resolve turns the definitions into a catalog. Derived units may refer to
// units declared later in the file or, with WithBase, to units of the base
// catalog. Entries of the base catalog are merged into the result unless a
// definition of the file shadows them. Base composites and constants built on
// a shadowed unit are dropped.
func (uf *Unitfile) Resolve(opts ...Option) (*catalog.Catalog, error) {
	r := &resolver{
		uf:        uf,
		o:         applyOptions(opts),
		out:       catalog.New(),
		unitIndex: make(map[string]int),
		units:     make([]measures.Unit, len(uf.Units)),
	}

	steps := []func() error{r.resolveTypes, r.resolveUnits, r.resolveComposites, r.resolveConstants}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	if r.o.base != nil {
		r.out.Merge(r.o.base, func(s catalog.Skipped) {
			if s.DependsOn != "" {
				r.o.logger.Warn("dropping base catalog entry built on shadowed unit",
					"file", r.o.filename, "kind", s.Kind, "name", s.Name, "unit", s.DependsOn)
				return
			}
			r.o.logger.Warn("definition shadows base catalog entry", "file", r.o.filename, "kind", s.Kind, "name", s.Name)
		})
	}
	return r.out, nil
}

func (r *resolver) fail(path string, err error) error {
	return &ResolveError{File: r.o.filename, Path: path, Err: err}
}

func (r *resolver) resolveTypes() error {
	for i, name := range r.uf.Types {
		t, err := measures.NewUnitType(name)
		if err != nil {
			return r.fail(fmt.Sprintf("types[%d]", i), err)
		}
		if err := r.out.AddUnitType(t); err != nil {
			return r.fail(fmt.Sprintf("types[%d]", i), fmt.Errorf("%w: %w", ErrDuplicateName, err))
		}
		r.o.logger.Debug("resolved unit type", "name", name)
	}
	return nil
}

func (r *resolver) resolveUnits() error {
	for i, def := range r.uf.Units {
		for _, name := range []string{def.Name, def.Short} {
			if j, ok := r.unitIndex[name]; ok && j != i {
				return r.fail(fmt.Sprintf("units[%d]", i), fmt.Errorf("%w: unit %q already defined by units[%d]", ErrDuplicateName, name, j))
			}
			r.unitIndex[name] = i
		}
	}

	order, err := r.unitOrder()
	if err != nil {
		return err
	}
	for _, i := range order {
		if err := r.resolveUnit(i); err != nil {
			return err
		}
	}
	for i, u := range r.units {
		if err := r.out.AddUnit(u); err != nil {
			return r.fail(fmt.Sprintf("units[%d]", i), fmt.Errorf("%w: %w", ErrDuplicateName, err))
		}
	}

	r.scope = r.newScope()
	return nil
}

// unitOrder sorts unit indices so that every derived unit follows the file
// unit it is based on.
func (r *resolver) unitOrder() ([]int, error) {
	g := dag.New[int]()
	for i, def := range r.uf.Units {
		g.AddNode(i)
		if j, ok := r.unitIndex[def.Base]; ok && !def.IsRoot() {
			g.AddEdge(j, i)
		}
	}

	order, err := g.TopologicalSort()
	var cycle *dag.CycleError[int]
	if errors.As(err, &cycle) {
		names := make([]string, len(cycle.Nodes))
		for k, i := range cycle.Nodes {
			names[k] = r.uf.Units[i].Name
		}
		return nil, r.fail(fmt.Sprintf("units[%d]", cycle.Nodes[0]),
			fmt.Errorf("%w: %s", ErrCyclicDefinition, strings.Join(names, ", ")))
	}
	return order, err
}

// newScope returns the file's entries so far, with base entries filling in
// names the file does not define.
func (r *resolver) newScope() *catalog.Catalog {
	scope := r.out.Clone()
	if r.o.base != nil {
		scope.Merge(r.o.base, nil)
	}
	return scope
}

// resolveUnit builds units[i]. Units it is based on are already built.
func (r *resolver) resolveUnit(i int) error {
	def := r.uf.Units[i]
	path := fmt.Sprintf("units[%d]", i)

	var (
		u   measures.Unit
		err error
	)
	if def.IsRoot() {
		var t measures.UnitType
		t, err = r.unitType(def.Type)
		if err != nil {
			return r.fail(path+".type", err)
		}
		u, err = measures.NewRootUnit(t, def.Name, def.Short)
	} else {
		var base measures.Unit
		base, err = r.baseUnit(def.Base)
		if err != nil {
			return r.fail(path+".base", err)
		}
		u, err = measures.NewDerivedUnit(base, def.Scalar, def.Name, def.Short)
	}
	if err != nil {
		return r.fail(path, err)
	}

	r.units[i] = u
	r.o.logger.Debug("resolved unit", "name", u.LongName(), "short", u.ShortName(), "type", u.UnitType(), "value", u.Value())
	return nil
}

func (r *resolver) unitType(name string) (measures.UnitType, error) {
	if t, err := r.out.UnitType(name); err == nil {
		return t, nil
	}
	if r.o.base != nil {
		if t, err := r.o.base.UnitType(name); err == nil {
			return t, nil
		}
	}
	return measures.UnitType{}, fmt.Errorf("%w: unit type %q", ErrUnknownReference, name)
}

func (r *resolver) baseUnit(ref string) (measures.Unit, error) {
	if j, ok := r.unitIndex[ref]; ok {
		return r.units[j], nil
	}
	if r.o.base != nil {
		if u, err := r.o.base.Unit(ref); err == nil {
			return u, nil
		}
	}
	return measures.Unit{}, fmt.Errorf("%w: unit %q", ErrUnknownReference, ref)
}

func (r *resolver) resolveComposites() error {
	for i, def := range r.uf.Composites {
		path := fmt.Sprintf("composites[%d]", i)
		b := measures.NewBuilder()
		seen := make(map[measures.UnitType]string, len(def.Factors))
		for j, f := range def.Factors {
			u, err := r.scope.Unit(f.Unit)
			if err != nil {
				return r.fail(fmt.Sprintf("%s.factors[%d].unit", path, j), fmt.Errorf("%w: unit %q", ErrUnknownReference, f.Unit))
			}
			if prev, ok := seen[u.UnitType()]; ok {
				return r.fail(fmt.Sprintf("%s.factors[%d]", path, j), &InvalidDefinitionError{
					Path:   fmt.Sprintf("%s.factors[%d]", path, j),
					Reason: fmt.Sprintf("unit %q repeats dimension %q of unit %q", f.Unit, u.UnitType(), prev),
				})
			}
			seen[u.UnitType()] = f.Unit
			b.SetUnit(u, f.Power)
		}
		cu, err := b.SetNames(def.Name, def.Short).Build()
		if err != nil {
			return r.fail(path, err)
		}
		if err := r.out.AddComposite(def.Key, cu); err != nil {
			return r.fail(path+".key", fmt.Errorf("%w: %w", ErrDuplicateName, err))
		}
		r.o.logger.Debug("resolved composite", "key", def.Key, "label", cu.ShortLabel(), "value", cu.Value())
	}
	return nil
}

func (r *resolver) resolveConstants() error {
	r.scope = r.newScope()
	for i, def := range r.uf.Constants {
		path := fmt.Sprintf("constants[%d]", i)
		cu, err := r.scope.ResolveComposite(def.Unit)
		if err != nil {
			return r.fail(path+".unit", fmt.Errorf("%w: %w", ErrUnknownReference, err))
		}
		q, err := measures.NewQuantity(cu, def.Value)
		if err != nil {
			return r.fail(path, err)
		}
		k, err := measures.NewConstant(q, def.Name, def.Short)
		if err != nil {
			return r.fail(path, err)
		}
		if err := r.out.AddConstant(k); err != nil {
			return r.fail(path, fmt.Errorf("%w: %w", ErrDuplicateName, err))
		}
		r.o.logger.Debug("resolved constant", "name", def.Name, "quantity", q.ShortLabel())
	}
	return nil
}
