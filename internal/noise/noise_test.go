package noise_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitset/internal/noise"
	"github.com/san-kum/orbitset/internal/orbit"
)

var _ = Describe("Clean", func() {
	var (
		rng  *rand.Rand
		base orbit.Curve
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(11))
		base = orbit.Generate(rng, orbit.Class3).Curve
	})

	It("preserves the curve length", func() {
		out := noise.Clean(rng, base.Clone(), noise.DefaultParams().Clean)
		Expect(out).To(HaveLen(orbit.Points))
	})

	It("keeps every coordinate within a few deviations of the input", func() {
		sigma := noise.DefaultParams().Clean.Sigma
		out := noise.Clean(rng, base.Clone(), noise.CleanParams{Sigma: sigma})
		for i := range out {
			Expect(out[i].X).To(BeNumerically("~", base[i].X, 6*sigma))
			Expect(out[i].Y).To(BeNumerically("~", base[i].Y, 6*sigma))
		}
	})

	It("actually moves points", func() {
		out := noise.Clean(rng, base.Clone(), noise.DefaultParams().Clean)
		moved := 0
		for i := range out {
			if out[i] != base[i] {
				moved++
			}
		}
		Expect(moved).To(Equal(len(base)))
	})
})

var _ = Describe("Realistic", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(12))
	})

	It("preserves the curve length for every family", func() {
		for _, f := range orbit.Families() {
			c := orbit.Generate(rng, f).Curve
			n := len(c)
			Expect(noise.Realistic(rng, c, noise.DefaultParams().Realistic)).To(HaveLen(n))
		}
	})

	It("injects 2 to 5 outliers away from the edges", func() {
		p := noise.DefaultParams().Realistic
		p.DriftSigma, p.JitterSigma = 0, 0

		for i := 0; i < 50; i++ {
			c := noise.Realistic(rng, orbit.Generate(rng, orbit.Class3).Curve, p)
			var hits []int
			for j, pt := range c {
				if pt.Norm() > 1.39 {
					hits = append(hits, j)
				}
			}
			Expect(len(hits)).To(BeNumerically(">=", 2))
			Expect(len(hits)).To(BeNumerically("<=", 5))
			for _, j := range hits {
				Expect(j).To(BeNumerically(">=", p.EdgeMargin))
				Expect(j).To(BeNumerically("<=", len(c)-p.EdgeMargin))
			}
		}
	})

	It("tolerates curves shorter than the edge margin", func() {
		c := orbit.Curve{{X: 1}, {Y: 1}, {X: -1}}
		Expect(noise.Realistic(rng, c, noise.DefaultParams().Realistic)).To(HaveLen(3))
	})
})

var _ = Describe("Drift", func() {
	It("grows in variance linearly with position", func() {
		rng := rand.New(rand.NewSource(13))
		const (
			walks = 2000
			n     = 400
			sd    = 0.01
		)
		probes := []int{49, 149, 249, 349}
		sums := make([]float64, len(probes))
		for w := 0; w < walks; w++ {
			d := noise.Drift(rng, n, sd)
			for k, i := range probes {
				sums[k] += d[i] * d[i]
			}
		}

		prev := 0.0
		for k, i := range probes {
			variance := sums[k] / walks
			expected := float64(i+1) * sd * sd
			Expect(variance).To(BeNumerically("~", expected, 0.2*expected))
			Expect(variance).To(BeNumerically(">", prev))
			prev = variance
		}
	})

	It("returns an empty walk for zero length", func() {
		Expect(noise.Drift(rand.New(rand.NewSource(1)), 0, 0.01)).To(BeEmpty())
	})
})

var _ = Describe("Apply", func() {
	It("dispatches on regime", func() {
		p := noise.DefaultParams()
		c := orbit.Curve{{X: 0.5, Y: 0.5}}

		out := noise.Apply(rand.New(rand.NewSource(1)), orbit.Clean, c.Clone(), p)
		Expect(math.Abs(out[0].X - 0.5)).To(BeNumerically("<", 0.05))
	})

	It("panics on an unknown regime", func() {
		Expect(func() {
			noise.Apply(rand.New(rand.NewSource(1)), orbit.Regime(7), orbit.Curve{{}}, noise.DefaultParams())
		}).To(Panic())
	})
})

var _ = Describe("Params", func() {
	It("accepts the defaults", func() {
		Expect(noise.DefaultParams().Validate()).To(Succeed())
	})

	It("rejects an inverted outlier range", func() {
		p := noise.DefaultParams()
		p.Realistic.OutliersMin, p.Realistic.OutliersMax = 5, 2
		Expect(p.Validate()).To(MatchError(ContainSubstring("outlier count")))
	})

	It("rejects negative deviations", func() {
		p := noise.DefaultParams()
		p.Clean.Sigma = -1
		Expect(p.Validate()).NotTo(Succeed())
	})
})
