// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// These tests verify that Go struct JSON tags match the CUE schema field
// names, so a renamed field cannot silently decode to its zero value.

// extractCUEFields returns the top-level fields of a CUE struct definition,
// mapped to whether each field is optional.
func extractCUEFields(t *testing.T, val cue.Value) map[string]bool {
	t.Helper()

	fields := make(map[string]bool)
	iter, err := val.Fields(cue.Definitions(false), cue.Optional(true))
	if err != nil {
		t.Fatalf("failed to iterate CUE fields: %v", err)
	}
	for iter.Next() {
		sel := iter.Selector()
		if sel.LabelType().IsHidden() || sel.IsDefinition() {
			continue
		}
		fields[strings.TrimSuffix(sel.String(), "?")] = iter.IsOptional()
	}
	return fields
}

// extractGoJSONTags returns the JSON names of typ's exported fields, mapped
// to whether each tag has omitempty.
func extractGoJSONTags(t *testing.T, typ reflect.Type) map[string]bool {
	t.Helper()

	if typ.Kind() != reflect.Struct {
		t.Fatalf("expected struct type, got %s", typ.Kind())
	}

	fields := make(map[string]bool)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		parts := strings.Split(field.Tag.Get("json"), ",")
		if parts[0] == "" || parts[0] == "-" {
			continue
		}
		fields[parts[0]] = slices.Contains(parts[1:], "omitempty")
	}
	return fields
}

func TestSchemaSync(t *testing.T) {
	t.Parallel()

	schema := cuecontext.New().CompileString(unitfileSchema)
	if schema.Err() != nil {
		t.Fatalf("failed to compile CUE schema: %v", schema.Err())
	}

	tests := []struct {
		def string
		typ reflect.Type
	}{
		{"#Unitfile", reflect.TypeFor[Unitfile]()},
		{"#Unit", reflect.TypeFor[UnitDef]()},
		{"#Factor", reflect.TypeFor[FactorDef]()},
		{"#Composite", reflect.TypeFor[CompositeDef]()},
		{"#Constant", reflect.TypeFor[ConstantDef]()},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			t.Parallel()

			def := schema.LookupPath(cue.ParsePath(tt.def))
			if def.Err() != nil {
				t.Fatalf("failed to lookup CUE definition %s: %v", tt.def, def.Err())
			}

			cueFields := extractCUEFields(t, def)
			goFields := extractGoJSONTags(t, tt.typ)

			for field, optional := range cueFields {
				omitempty, ok := goFields[field]
				if !ok {
					t.Errorf("CUE field %q not found in Go struct %s", field, tt.typ.Name())
					continue
				}
				if optional != omitempty {
					t.Errorf("field %q: CUE optional = %v, Go omitempty = %v", field, optional, omitempty)
				}
			}
			for field := range goFields {
				if _, ok := cueFields[field]; !ok {
					t.Errorf("Go JSON tag %q not found in CUE definition %s", field, tt.def)
				}
			}
		})
	}
}
