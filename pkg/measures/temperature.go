// SPDX-License-Identifier: MPL-2.0

package measures

const (
	// Celsius is the Celsius scale.
	Celsius TemperatureScale = "celsius"
	// Delisle is the Delisle scale, which runs backwards from boiling water.
	Delisle TemperatureScale = "delisle"
	// Fahrenheit is the Fahrenheit scale.
	Fahrenheit TemperatureScale = "fahrenheit"
	// Kelvin is the absolute Kelvin scale.
	Kelvin TemperatureScale = "kelvin"
	// Newton is the Newton scale.
	Newton TemperatureScale = "newton"
	// Rankine is the absolute Rankine scale.
	Rankine TemperatureScale = "rankine"
	// Reaumur is the Réaumur scale.
	Reaumur TemperatureScale = "reaumur"
	// Romer is the Rømer scale.
	Romer TemperatureScale = "romer"
)

// TemperatureScale converts temperatures between scales through Kelvin.
// A reading r on a scale is r*relative + offset kelvin.
type TemperatureScale string

type affine struct {
	relative float64
	offset   float64
}

var temperatureScales = map[TemperatureScale]affine{
	Celsius:    {relative: 1, offset: 273.15},
	Delisle:    {relative: -2.0 / 3.0, offset: 373.15},
	Fahrenheit: {relative: 5.0 / 9.0, offset: 273.15 - 32*5.0/9.0},
	Kelvin:     {relative: 1, offset: 0},
	Newton:     {relative: 100.0 / 33.0, offset: 273.15},
	Rankine:    {relative: 5.0 / 9.0, offset: 0},
	Reaumur:    {relative: 5.0 / 4.0, offset: 273.15},
	Romer:      {relative: 40.0 / 21.0, offset: 273.15 - 7.5*40.0/21.0},
}

// AllTemperatureScales returns every temperature scale in canonical order.
func AllTemperatureScales() []TemperatureScale {
	return []TemperatureScale{Celsius, Delisle, Fahrenheit, Kelvin, Newton, Rankine, Reaumur, Romer}
}

// String returns the string representation of the TemperatureScale.
func (s TemperatureScale) String() string { return string(s) }

// Validate returns an error if s is not one of the defined scales.
func (s TemperatureScale) Validate() error {
	if _, ok := temperatureScales[s]; !ok {
		return newErrorf(InvalidTemperatureScale, "validate temperature scale", "got %q", string(s))
	}
	return nil
}

// RelativeToKelvin returns the size of one degree of s in kelvin.
func (s TemperatureScale) RelativeToKelvin() float64 { return temperatureScales[s].relative }

// OffsetFromKelvin returns the kelvin value of the zero point of s.
func (s TemperatureScale) OffsetFromKelvin() float64 { return temperatureScales[s].offset }

// FromAbsolute converts a reading on from into a reading on s.
func (s TemperatureScale) FromAbsolute(value float64, from TemperatureScale) (float64, error) {
	to, src, err := s.pair(from)
	if err != nil {
		return 0, err
	}
	return (value*src.relative + src.offset - to.offset) / to.relative, nil
}

// FromRelative converts a temperature difference on from into a difference on s.
func (s TemperatureScale) FromRelative(value float64, from TemperatureScale) (float64, error) {
	to, src, err := s.pair(from)
	if err != nil {
		return 0, err
	}
	return value * src.relative / to.relative, nil
}

func (s TemperatureScale) pair(from TemperatureScale) (affine, affine, error) {
	if err := s.Validate(); err != nil {
		return affine{}, affine{}, err
	}
	if err := from.Validate(); err != nil {
		return affine{}, affine{}, err
	}
	return temperatureScales[s], temperatureScales[from], nil
}
