// SPDX-License-Identifier: MPL-2.0

package distribution

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	fieldSeparator = "|"
	keySeparator   = "::"
	typeKey        = "type"
)

type (
	// Data is an immutable, validated description of a distribution. The
	// zero Data has no kind and cannot be sampled.
	Data struct {
		kind   Kind
		values []float64
	}

	// Param is a named parameter value.
	Param struct {
		Name  string
		Value float64
	}

	// Builder collects parameters for a Data of one Kind. The first invalid
	// argument is remembered and returned by Build.
	Builder struct {
		kind   Kind
		values []float64
		set    []bool
		err    error
	}
)

// NewBuilder returns a Builder for kind. An unknown kind is reported by Build.
func NewBuilder(kind Kind) *Builder {
	b := &Builder{kind: kind}
	if err := kind.Validate(); err != nil {
		b.err = err
		return b
	}
	n := len(kindParams[kind])
	b.values = make([]float64, n)
	b.set = make([]bool, n)
	return b
}

// Set assigns the named parameter. Setting a parameter twice keeps the last
// value.
func (b *Builder) Set(name string, value float64) *Builder {
	if b.err != nil {
		return b
	}
	i := b.kind.paramIndex(name)
	switch {
	case i < 0:
		b.err = newErrorf(UnknownParameter, "set parameter", "%s has no parameter %q", b.kind, name)
	case math.IsNaN(value) || math.IsInf(value, 0):
		b.err = newErrorf(NonFiniteParameter, "set parameter", "%s = %v", name, value)
	case mustBePositive(name) && value <= 0:
		b.err = newErrorf(NonPositiveParameter, "set parameter", "%s = %v", name, value)
	default:
		b.values[i] = value
		b.set[i] = true
	}
	return b
}

// SetAlpha sets the alpha shape of a beta distribution.
func (b *Builder) SetAlpha(v float64) *Builder { return b.Set(ParamAlpha, v) }

// SetBeta sets the beta shape of a beta distribution.
func (b *Builder) SetBeta(v float64) *Builder { return b.Set(ParamBeta, v) }

// SetRate sets the rate of an exponential or gamma distribution.
func (b *Builder) SetRate(v float64) *Builder { return b.Set(ParamRate, v) }

// SetShape sets the shape of a gamma or Weibull distribution.
func (b *Builder) SetShape(v float64) *Builder { return b.Set(ParamShape, v) }

// SetScale sets the scale of a Weibull distribution.
func (b *Builder) SetScale(v float64) *Builder { return b.Set(ParamScale, v) }

// SetMu sets the log-scale location of a lognormal distribution.
func (b *Builder) SetMu(v float64) *Builder { return b.Set(ParamMu, v) }

// SetSigma sets the log-scale spread of a lognormal distribution.
func (b *Builder) SetSigma(v float64) *Builder { return b.Set(ParamSigma, v) }

// SetMean sets the mean of a normal distribution.
func (b *Builder) SetMean(v float64) *Builder { return b.Set(ParamMean, v) }

// SetStdDev sets the standard deviation of a normal distribution.
func (b *Builder) SetStdDev(v float64) *Builder { return b.Set(ParamStdDev, v) }

// SetMin sets the lower bound of a triangular or uniform distribution.
func (b *Builder) SetMin(v float64) *Builder { return b.Set(ParamMin, v) }

// SetMode sets the peak of a triangular distribution.
func (b *Builder) SetMode(v float64) *Builder { return b.Set(ParamMode, v) }

// SetMax sets the upper bound of a triangular or uniform distribution.
func (b *Builder) SetMax(v float64) *Builder { return b.Set(ParamMax, v) }

// Build returns the Data, or the first error recorded by the builder.
func (b *Builder) Build() (Data, error) {
	if b.err != nil {
		return Data{}, b.err
	}
	names := kindParams[b.kind]
	for i, ok := range b.set {
		if !ok {
			return Data{}, newErrorf(MissingParameter, "build", "%s needs %q", b.kind, names[i])
		}
	}
	d := Data{kind: b.kind, values: slices.Clone(b.values)}
	if err := d.checkRange(); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (d Data) checkRange() error {
	minimum, hasMin := d.Param(ParamMin)
	maximum, hasMax := d.Param(ParamMax)
	if !hasMin || !hasMax {
		return nil
	}
	if !(minimum < maximum) {
		return newErrorf(InvalidRange, "build", "min %v must be below max %v", minimum, maximum)
	}
	if mode, ok := d.Param(ParamMode); ok && (mode < minimum || mode > maximum) {
		return newErrorf(InvalidRange, "build", "mode %v must be within [%v, %v]", mode, minimum, maximum)
	}
	return nil
}

// Kind returns the distribution family, or "" for the zero Data.
func (d Data) Kind() Kind { return d.kind }

// IsZero reports whether d is the zero Data.
func (d Data) IsZero() bool { return d.kind == "" }

// Param returns the value of the named parameter.
func (d Data) Param(name string) (float64, bool) {
	i := d.kind.paramIndex(name)
	if i < 0 {
		return 0, false
	}
	return d.values[i], true
}

// Params returns every parameter in the kind's canonical order.
func (d Data) Params() []Param {
	names := kindParams[d.kind]
	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = Param{Name: name, Value: d.values[i]}
	}
	return params
}

// Equal reports whether d and other have the same kind and parameters.
func (d Data) Equal(other Data) bool {
	return d.kind == other.kind && slices.Equal(d.values, other.values)
}

// String returns the pipe-delimited form, e.g. "type::beta|alpha::2|beta::5".
func (d Data) String() string {
	if d.IsZero() {
		return "<nil distribution>"
	}
	var sb strings.Builder
	sb.WriteString(typeKey + keySeparator + string(d.kind))
	for _, p := range d.Params() {
		sb.WriteString(fieldSeparator + p.Name + keySeparator)
		sb.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
	}
	return sb.String()
}

// FromString parses the form produced by Data.String. Parameters may appear
// in any order after the leading type field; each must appear once.
func FromString(s string) (Data, error) {
	const op = "from string"

	fields := strings.Split(s, fieldSeparator)
	key, value, ok := strings.Cut(fields[0], keySeparator)
	if !ok || key != typeKey {
		return Data{}, newErrorf(MalformedString, op, "%q must start with %s%s", s, typeKey, keySeparator)
	}

	b := NewBuilder(Kind(value))
	seen := make(map[string]bool, len(fields)-1)
	for _, field := range fields[1:] {
		name, raw, ok := strings.Cut(field, keySeparator)
		if !ok || name == "" {
			return Data{}, newErrorf(MalformedString, op, "field %q is not key%svalue", field, keySeparator)
		}
		if seen[name] {
			return Data{}, newErrorf(MalformedString, op, "parameter %q repeated", name)
		}
		seen[name] = true
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Data{}, newErrorf(MalformedString, op, "parameter %q: %v", name, err)
		}
		b.Set(name, v)
	}
	return b.Build()
}
