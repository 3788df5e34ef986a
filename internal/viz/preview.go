package viz

import (
	"math/rand"

	"github.com/san-kum/orbitset/internal/orbit"
	"github.com/san-kum/orbitset/internal/render"
	"github.com/san-kum/orbitset/internal/shape"
)

// Preview is one sample rendered onto a braille canvas.
type Preview struct {
	Family orbit.Family
	Regime orbit.Regime
	// Ideal is the curve before noise; Sample.Curve holds the perturbed one.
	Ideal  orbit.Curve
	Sample orbit.Sample
	Frame  render.Frame
	Canvas *Canvas
}

// Render draws a fresh sample of f under regime on a w×h cell canvas.
func Render(rng *rand.Rand, r *render.Renderer, f orbit.Family, regime orbit.Regime, w, h int) Preview {
	s := orbit.Generate(rng, f)
	p := Preview{
		Family: f,
		Regime: regime,
		Ideal:  s.Curve.Clone(),
		Sample: s,
		Canvas: NewCanvas(w, h),
	}
	p.Frame = r.Render(rng, s.Curve, regime, s.Markers, p.Canvas)
	return p
}

// Profile is the radius of the ideal curve over one revolution.
func (p Preview) Profile() []float64 {
	return shape.Radii(shape.Revolution(p.Ideal))
}
