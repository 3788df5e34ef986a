// Package shape measures structural features of generated curves.
//
// The measurements recover the random draws a generator made: the petal
// count from radial maxima or the dominant harmonic of the radius profile,
// and the spike count from points beyond a radius threshold.
//
//	r := shape.Radii(shape.Revolution(s.Curve))
//	k := shape.CountMaxima(r)
//	if k != shape.DominantHarmonic(r) {
//	    // not a clean petal
//	}
package shape

import (
	"image"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/orbitset/internal/orbit"
)

const closeTol = 1e-9

// Revolution drops the closing sample when it repeats the first one, so the
// result covers one revolution exactly once.
func Revolution(c orbit.Curve) orbit.Curve {
	if len(c) < 2 {
		return c
	}
	first, last := c[0], c[len(c)-1]
	if math.Abs(first.X-last.X) < closeTol && math.Abs(first.Y-last.Y) < closeTol {
		return c[:len(c)-1]
	}
	return c
}

func Radii(c orbit.Curve) []float64 {
	r := make([]float64, len(c))
	for i, p := range c {
		r[i] = p.Norm()
	}
	return r
}

// CountMaxima counts the local maxima of a cyclic profile. Plateaus count once.
func CountMaxima(r []float64) int {
	n := len(r)
	if n < 3 {
		return 0
	}
	count := 0
	for i := range r {
		prev := r[(i-1+n)%n]
		next := r[(i+1)%n]
		if r[i] > prev && r[i] >= next {
			count++
		}
	}
	return count
}

// DominantHarmonic returns the non-constant frequency bin with the largest
// magnitude in the profile's spectrum.
func DominantHarmonic(r []float64) int {
	ps := PowerSpectrum(r)
	best, bestIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best, bestIdx = ps[i], i
		}
	}
	return bestIdx
}

// PowerSpectrum returns the magnitudes of the first half of the spectrum.
func PowerSpectrum(r []float64) []float64 {
	if len(r) == 0 {
		return nil
	}
	spec := fft.FFTReal(r)
	ps := make([]float64, len(spec)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// CountAbove counts points whose distance from the origin exceeds threshold.
func CountAbove(c orbit.Curve, threshold float64) int {
	n := 0
	for _, p := range c {
		if p.Norm() > threshold {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing every pixel in pts.
func Bounds(pts []image.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: pts[0], Max: pts[0].Add(image.Pt(1, 1))}
	for _, p := range pts[1:] {
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return b
}
