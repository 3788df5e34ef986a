package render

import (
	"image"
	"math"

	"github.com/san-kum/orbitset/internal/orbit"
)

const (
	Size   = 512
	Center = Size / 2
	Scale  = 200
)

// Projection maps normalized coordinates to pixels:
//
//	px = Center + x·Scale
//	py = Center - y·Scale
type Projection struct {
	Center float64
	Scale  float64
}

func DefaultProjection() Projection {
	return Projection{Center: Center, Scale: Scale}
}

// Project rounds the mapped point to the nearest pixel.
func (p Projection) Project(pt orbit.Point) image.Point {
	return image.Pt(
		int(math.Round(p.Center+pt.X*p.Scale)),
		int(math.Round(p.Center-pt.Y*p.Scale)),
	)
}

func (p Projection) Unproject(px image.Point) orbit.Point {
	return orbit.Point{
		X: (float64(px.X) - p.Center) / p.Scale,
		Y: (p.Center - float64(px.Y)) / p.Scale,
	}
}

func (p Projection) ProjectAll(pts []orbit.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, pt := range pts {
		out[i] = p.Project(pt)
	}
	return out
}
