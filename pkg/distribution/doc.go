// SPDX-License-Identifier: MPL-2.0

// Package distribution describes univariate sample distributions as
// validated, immutable Data values and draws samples from them.
//
// Data is built with a Builder, which checks parameter domains as they are
// set and reports the first violation from Build:
//
//	data, err := distribution.NewBuilder(distribution.Beta).
//		SetAlpha(2).
//		SetBeta(5).
//		Build()
//
// Data has a pipe-delimited text form, "type::beta|alpha::2|beta::5", read
// back by FromString.
//
// A Sampler adapts Data to a gonum stat/distuv distribution driven by a
// caller-supplied math/rand/v2 Source, so seeded sources give reproducible
// sequences. The package does not depend on the measures package.
package distribution
