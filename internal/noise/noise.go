// Package noise perturbs generated curves according to the output regime.
//
// The clean model adds measurement-level jitter only. The realistic model
// composes a cumulative drift (random walk), point jitter and a handful of
// multiplicative outliers. Both models modify the curve in place and never
// change its length.
package noise

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/orbitset/internal/orbit"
)

type CleanParams struct {
	Sigma float64 `yaml:"sigma"`
}

type RealisticParams struct {
	DriftSigma  float64 `yaml:"drift_sigma"`
	JitterSigma float64 `yaml:"jitter_sigma"`
	OutliersMin int     `yaml:"outliers_min"`
	OutliersMax int     `yaml:"outliers_max"`
	FactorMin   float64 `yaml:"factor_min"`
	FactorMax   float64 `yaml:"factor_max"`
	// EdgeMargin excludes the first and last points from outlier injection.
	EdgeMargin int `yaml:"edge_margin"`
}

type Params struct {
	Clean     CleanParams     `yaml:"clean"`
	Realistic RealisticParams `yaml:"realistic"`
}

func DefaultParams() Params {
	return Params{
		Clean: CleanParams{Sigma: 0.003},
		Realistic: RealisticParams{
			DriftSigma:  0.010,
			JitterSigma: 0.015,
			OutliersMin: 2,
			OutliersMax: 5,
			FactorMin:   1.4,
			FactorMax:   2.4,
			EdgeMargin:  20,
		},
	}
}

// Validate reports parameter combinations the models cannot honor.
func (p Params) Validate() error {
	r := p.Realistic
	switch {
	case p.Clean.Sigma < 0, r.DriftSigma < 0, r.JitterSigma < 0:
		return fmt.Errorf("noise: negative standard deviation")
	case r.OutliersMin < 0 || r.OutliersMax < r.OutliersMin:
		return fmt.Errorf("noise: invalid outlier count range [%d, %d]", r.OutliersMin, r.OutliersMax)
	case r.FactorMax < r.FactorMin:
		return fmt.Errorf("noise: invalid outlier factor range [%g, %g]", r.FactorMin, r.FactorMax)
	case r.EdgeMargin < 0:
		return fmt.Errorf("noise: negative edge margin")
	}
	return nil
}

// Apply runs the noise model of regime on c. It panics on an invalid regime.
func Apply(rng *rand.Rand, regime orbit.Regime, c orbit.Curve, p Params) orbit.Curve {
	switch regime {
	case orbit.Clean:
		return Clean(rng, c, p.Clean)
	case orbit.Realistic:
		return Realistic(rng, c, p.Realistic)
	}
	panic(fmt.Sprintf("%v: %d", orbit.ErrUnknownRegime, int(regime)))
}

// Clean adds independent gaussian jitter to every coordinate.
func Clean(rng *rand.Rand, c orbit.Curve, p CleanParams) orbit.Curve {
	jitter(rng, c, p.Sigma)
	return c
}

// Realistic applies drift, then jitter, then outliers.
func Realistic(rng *rand.Rand, c orbit.Curve, p RealisticParams) orbit.Curve {
	n := len(c)
	dx := Drift(rng, n, p.DriftSigma)
	dy := Drift(rng, n, p.DriftSigma)
	for i := range c {
		c[i].X += dx[i]
		c[i].Y += dy[i]
	}

	jitter(rng, c, p.JitterSigma)

	count := orbit.RandInt(rng, p.OutliersMin, p.OutliersMax)
	for _, i := range orbit.InteriorIndices(rng, n, p.EdgeMargin, count) {
		c[i] = c[i].Scale(orbit.Uniform(rng, p.FactorMin, p.FactorMax))
	}
	return c
}

// Drift returns the running sum of n gaussian increments with deviation sd.
// The variance at index i is (i+1)·sd².
func Drift(rng *rand.Rand, n int, sd float64) []float64 {
	walk := make([]float64, n)
	sum := 0.0
	for i := range walk {
		sum += rng.NormFloat64() * sd
		walk[i] = sum
	}
	return walk
}

func jitter(rng *rand.Rand, c orbit.Curve, sd float64) {
	for i := range c {
		c[i].X += rng.NormFloat64() * sd
		c[i].Y += rng.NormFloat64() * sd
	}
}
