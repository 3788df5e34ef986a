package orbit

import (
	"math"
	"math/rand"
)

const (
	ellipseRatio = 0.7
	bananaCap    = 0.2
	petalDepth   = 0.3
	loopRadius   = 0.4

	// spikeMargin keeps spikes away from the seam of the closed curve.
	spikeMargin = 20
)

// Generate produces one instance of f. It panics if f is not a valid family.
func Generate(rng *rand.Rand, f Family) Sample {
	mustFamily(f)

	s := Sample{Family: f, Params: map[string]float64{}}
	switch f.Shape() {
	case ShapeEllipse:
		s.Curve = ellipse(Points)
	case ShapeCircle:
		s.Curve = circle(Points)
	case ShapeSpikes:
		s.Curve = spikes(rng, Points, s.Params)
	case ShapeDots:
		s.Curve = ellipse(Points)
		s.Markers = ellipseMarkers(rng)
	case ShapeDotsLoop:
		s.Curve = append(ellipse(Points), lissajousLoop(Points)...)
		s.Markers = ellipseMarkers(rng)
	case ShapeBanana:
		s.Curve = banana(Points)
	case ShapeInner8:
		s.Curve = parametric(Points, func(t float64) Point {
			return Point{math.Sin(2 * t), math.Sin(t)}
		})
	case ShapeOuter8:
		s.Curve = parametric(Points, func(t float64) Point {
			return Point{math.Sin(t), math.Sin(2 * t)}
		})
	case ShapePetal:
		s.Curve = petal(rng, Points, s.Params)
	}
	if s.Markers != nil {
		s.Params["markers"] = float64(len(s.Markers))
	}
	return s
}

// Linspace returns n evenly spaced angles over [0, 2π], both ends included.
func Linspace(n int) []float64 {
	t := make([]float64, n)
	if n == 1 {
		return t
	}
	step := 2 * math.Pi / float64(n-1)
	for i := range t {
		t[i] = float64(i) * step
	}
	t[n-1] = 2 * math.Pi
	return t
}

func parametric(n int, fn func(t float64) Point) Curve {
	c := make(Curve, n)
	for i, t := range Linspace(n) {
		c[i] = fn(t)
	}
	return c
}

func ellipse(n int) Curve {
	return parametric(n, ellipsePoint)
}

func ellipsePoint(t float64) Point {
	return Point{math.Cos(t), ellipseRatio * math.Sin(t)}
}

func circle(n int) Curve {
	return parametric(n, func(t float64) Point {
		return Point{math.Cos(t), math.Sin(t)}
	})
}

func banana(n int) Curve {
	c := circle(n)
	for i := range c {
		if c[i].Y > bananaCap {
			c[i].Y = bananaCap
		}
	}
	return c
}

func petal(rng *rand.Rand, n int, params map[string]float64) Curve {
	k := RandInt(rng, 3, 6)
	params["petals"] = float64(k)
	return parametric(n, func(t float64) Point {
		r := 1 + petalDepth*math.Cos(float64(k)*t)
		return Point{r * math.Cos(t), r * math.Sin(t)}
	})
}

func spikes(rng *rand.Rand, n int, params map[string]float64) Curve {
	c := circle(n)
	idx := InteriorIndices(rng, n, spikeMargin, RandInt(rng, 2, 5))
	for _, i := range idx {
		c[i] = c[i].Scale(Uniform(rng, 1.6, 2.6))
	}
	params["spikes"] = float64(len(idx))
	return c
}

func lissajousLoop(n int) Curve {
	return parametric(n, func(t float64) Point {
		return Point{loopRadius * math.Cos(3*t), loopRadius * math.Sin(2*t)}
	})
}

func ellipseMarkers(rng *rand.Rand) Markers {
	m := make(Markers, RandInt(rng, 2, 4))
	for i := range m {
		m[i] = ellipsePoint(Uniform(rng, 0, 2*math.Pi))
	}
	return m
}

// RandInt returns a uniform integer in [lo, hi].
func RandInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// InteriorIndices draws up to k distinct indices from [margin, n-margin].
// Fewer are returned when the interior holds fewer than k indices.
func InteriorIndices(rng *rand.Rand, n, margin, k int) []int {
	lo, hi := margin, n-margin
	if hi > n-1 {
		hi = n - 1
	}
	if lo < 0 {
		lo = 0
	}
	span := hi - lo + 1
	if span <= 0 || k <= 0 {
		return nil
	}
	if k > span {
		k = span
	}
	perm := rng.Perm(span)[:k]
	for i := range perm {
		perm[i] += lo
	}
	return perm
}
