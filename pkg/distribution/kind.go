// SPDX-License-Identifier: MPL-2.0

package distribution

import (
	"golang.org/x/exp/slices"
)

// Parameter names.
const (
	ParamAlpha  = "alpha"
	ParamBeta   = "beta"
	ParamRate   = "rate"
	ParamShape  = "shape"
	ParamScale  = "scale"
	ParamMu     = "mu"
	ParamSigma  = "sigma"
	ParamMean   = "mean"
	ParamStdDev = "stddev"
	ParamMin    = "min"
	ParamMode   = "mode"
	ParamMax    = "max"
)

const (
	// Beta is the beta distribution on (0, 1) with shapes alpha and beta.
	Beta Kind = "beta"
	// Exponential is the exponential distribution with the given rate.
	Exponential Kind = "exponential"
	// Gamma is the gamma distribution with the given shape and rate.
	Gamma Kind = "gamma"
	// LogNormal is the distribution of exp(X) for X normal with mu and sigma.
	LogNormal Kind = "lognormal"
	// Normal is the normal distribution with the given mean and stddev.
	Normal Kind = "normal"
	// Triangular is the triangular distribution on [min, max] peaking at mode.
	Triangular Kind = "triangular"
	// Uniform is the continuous uniform distribution on [min, max).
	Uniform Kind = "uniform"
	// Weibull is the Weibull distribution with the given shape and scale.
	Weibull Kind = "weibull"
)

// Kind names a distribution family.
type Kind string

var (
	kindParams = map[Kind][]string{
		Beta:        {ParamAlpha, ParamBeta},
		Exponential: {ParamRate},
		Gamma:       {ParamShape, ParamRate},
		LogNormal:   {ParamMu, ParamSigma},
		Normal:      {ParamMean, ParamStdDev},
		Triangular:  {ParamMin, ParamMode, ParamMax},
		Uniform:     {ParamMin, ParamMax},
		Weibull:     {ParamShape, ParamScale},
	}

	positiveParams = []string{ParamAlpha, ParamBeta, ParamRate, ParamShape, ParamScale, ParamSigma, ParamStdDev}
)

// AllKinds returns every supported Kind.
func AllKinds() []Kind {
	return []Kind{Beta, Exponential, Gamma, LogNormal, Normal, Triangular, Uniform, Weibull}
}

// Validate returns an error when k is not a supported Kind.
func (k Kind) Validate() error {
	if _, ok := kindParams[k]; !ok {
		return newErrorf(UnknownDistributionType, "validate kind", "got %q", string(k))
	}
	return nil
}

// Params returns the parameter names of k in canonical order, or nil for an
// unknown kind.
func (k Kind) Params() []string {
	return slices.Clone(kindParams[k])
}

func (k Kind) paramIndex(name string) int {
	return slices.Index(kindParams[k], name)
}

func mustBePositive(name string) bool {
	return slices.Contains(positiveParams, name)
}
