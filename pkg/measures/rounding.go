// SPDX-License-Identifier: MPL-2.0

package measures

import (
	"math"
)

const (
	// RoundUp rounds toward positive infinity.
	RoundUp RoundingRule = "up"
	// RoundDown rounds toward negative infinity.
	RoundDown RoundingRule = "down"
	// RoundAwayFromZero rounds toward the larger magnitude.
	RoundAwayFromZero RoundingRule = "away_from_zero"
	// RoundTowardZero truncates.
	RoundTowardZero RoundingRule = "toward_zero"
	// RoundNearest rounds half up: floor(v + 0.5).
	RoundNearest RoundingRule = "nearest"
)

// RoundingRule selects how Round maps a value to a whole number.
type RoundingRule string

// AllRoundingRules returns every rounding rule in canonical order.
func AllRoundingRules() []RoundingRule {
	return []RoundingRule{RoundUp, RoundDown, RoundAwayFromZero, RoundTowardZero, RoundNearest}
}

// String returns the string representation of the RoundingRule.
func (r RoundingRule) String() string { return string(r) }

// Validate returns an error if r is not one of the defined rules.
func (r RoundingRule) Validate() error {
	switch r {
	case RoundUp, RoundDown, RoundAwayFromZero, RoundTowardZero, RoundNearest:
		return nil
	default:
		return newErrorf(InvalidRoundingRule, "validate rounding rule", "got %q", string(r))
	}
}

// Round rounds value to a whole number according to r.
func (r RoundingRule) Round(value float64) (float64, error) {
	switch r {
	case RoundUp:
		return math.Ceil(value), nil
	case RoundDown:
		return math.Floor(value), nil
	case RoundAwayFromZero:
		if value >= 0 {
			return math.Ceil(value), nil
		}
		return math.Floor(value), nil
	case RoundTowardZero:
		if value >= 0 {
			return math.Floor(value), nil
		}
		return math.Ceil(value), nil
	case RoundNearest:
		return math.Floor(value + 0.5), nil
	default:
		return 0, r.Validate()
	}
}

// IsIntValue reports whether v is a whole number within the int32 range.
// NaN and infinities are not.
func IsIntValue(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32 && v == math.Trunc(v)
}

// IsLongValue reports whether v is a whole number within the int64 range.
// NaN and infinities are not.
func IsLongValue(v float64) bool {
	// float64(math.MaxInt64) is 2^63, one past the range.
	return v >= math.MinInt64 && v < math.MaxInt64 && v == math.Trunc(v)
}
