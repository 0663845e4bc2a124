// SPDX-License-Identifier: MPL-2.0

package measures

// Constant is a named, fixed Quantity such as the speed of light.
type Constant struct {
	quantity  Quantity
	longName  string
	shortName string
}

// NewConstant returns a constant wrapping quantity.
func NewConstant(quantity Quantity, longName, shortName string) (Constant, error) {
	const op = "new constant"
	if quantity.IsZeroQuantity() {
		return Constant{}, newError(NullQuantity, op)
	}
	if err := validateName(longName, NullConstantName, BlankConstantName, op); err != nil {
		return Constant{}, err
	}
	if err := validateName(shortName, NullConstantName, BlankConstantName, op); err != nil {
		return Constant{}, err
	}
	return Constant{quantity: quantity, longName: longName, shortName: shortName}, nil
}

// Quantity returns the value of the constant.
func (c Constant) Quantity() Quantity { return c.quantity }

// LongName returns the long name, e.g. "speed of light".
func (c Constant) LongName() string { return c.longName }

// ShortName returns the short name, e.g. "c".
func (c Constant) ShortName() string { return c.shortName }

// String returns the short name.
func (c Constant) String() string { return c.shortName }

// Equal reports whether other has an Equal quantity and the same names.
func (c Constant) Equal(other Constant) bool {
	return c.longName == other.longName && c.shortName == other.shortName && c.quantity.Equal(other.quantity)
}

// ConvertedValue expresses q as a multiple of the constant.
func (c Constant) ConvertedValue(q Quantity) (float64, error) {
	rebased, err := q.Rebase(c.quantity.unit)
	if err != nil {
		return 0, err
	}
	return rebased.value / c.quantity.value, nil
}

// LongString formats q as "<multiple> <long name>".
func (c Constant) LongString(q Quantity) (string, error) {
	return c.formatMultiple(q, c.longName)
}

// ShortString formats q as "<multiple> <short name>".
func (c Constant) ShortString(q Quantity) (string, error) {
	return c.formatMultiple(q, c.shortName)
}

func (c Constant) formatMultiple(q Quantity, name string) (string, error) {
	if err := checkCompatible("format constant", q, c.quantity); err != nil {
		return "", err
	}
	ratio := q.NormalizedValue() / c.quantity.NormalizedValue()
	return FormatValue(ratio) + " " + name, nil
}
