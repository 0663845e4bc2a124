// SPDX-License-Identifier: MPL-2.0

package distribution

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

type (
	// Sampler draws values from a distribution described by Data.
	Sampler struct {
		data Data
		dist distribution
	}

	distribution interface {
		Rand() float64
		Mean() float64
		Variance() float64
	}
)

// NewSampler returns a Sampler for data drawing from src. Samplers are not
// safe for concurrent use unless src is.
func NewSampler(data Data, src rand.Source) (*Sampler, error) {
	const op = "new sampler"

	if src == nil {
		return nil, newErrorf(NullRandomSource, op, "%s", data.kind)
	}
	if err := data.kind.Validate(); err != nil {
		return nil, err
	}

	p := func(name string) float64 {
		v, _ := data.Param(name)
		return v
	}

	var dist distribution
	switch data.kind {
	case Beta:
		dist = distuv.Beta{Alpha: p(ParamAlpha), Beta: p(ParamBeta), Src: src}
	case Exponential:
		dist = distuv.Exponential{Rate: p(ParamRate), Src: src}
	case Gamma:
		dist = distuv.Gamma{Alpha: p(ParamShape), Beta: p(ParamRate), Src: src}
	case LogNormal:
		dist = distuv.LogNormal{Mu: p(ParamMu), Sigma: p(ParamSigma), Src: src}
	case Normal:
		dist = distuv.Normal{Mu: p(ParamMean), Sigma: p(ParamStdDev), Src: src}
	case Triangular:
		dist = distuv.NewTriangle(p(ParamMin), p(ParamMax), p(ParamMode), src)
	case Uniform:
		dist = distuv.Uniform{Min: p(ParamMin), Max: p(ParamMax), Src: src}
	case Weibull:
		dist = distuv.Weibull{K: p(ParamShape), Lambda: p(ParamScale), Src: src}
	}
	return &Sampler{data: data, dist: dist}, nil
}

// Sample draws the next value.
func (s *Sampler) Sample() float64 { return s.dist.Rand() }

// Data returns the distribution the sampler draws from.
func (s *Sampler) Data() Data { return s.data }

// Mean returns the mean of the distribution.
func (s *Sampler) Mean() float64 { return s.dist.Mean() }

// Variance returns the variance of the distribution.
func (s *Sampler) Variance() float64 { return s.dist.Variance() }
