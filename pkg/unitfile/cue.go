// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

const schemaRoot = "#Unitfile"

// decode compiles schema, unifies data with its root definition, validates
// concreteness and decodes into a Unitfile.
func decode(schema string, data []byte, o options) (*Unitfile, error) {
	if int64(len(data)) > o.maxFileSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds maximum %d bytes",
			o.filename, ErrFileTooLarge, len(data), o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema, cue.Filename("unitfile_schema.cue"))
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if userValue.Err() != nil {
		return nil, formatError(userValue.Err(), o.filename)
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaRoot))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaRoot, root.Err())
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatError(err, o.filename)
	}

	var uf Unitfile
	if err := unified.Decode(&uf); err != nil {
		return nil, formatError(err, o.filename)
	}
	return &uf, nil
}

// formatError converts CUE errors into a *SchemaError, or SchemaErrors when
// CUE reports more than one, located by JSON path.
func formatError(err error, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &SchemaError{File: filename, Message: err.Error()}
	}

	out := make(SchemaErrors, 0, len(errs))
	for _, e := range errs {
		path := jsonPath(cueerrors.Path(e))
		msg := e.Error()
		if path != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		out = append(out, &SchemaError{File: filename, Path: path, Message: msg})
	}

	if len(out) == 1 {
		return out[0]
	}
	return out
}

// jsonPath turns ["units", "2", "scalar"] into "units[2].scalar".
func jsonPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
