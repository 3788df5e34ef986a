package render

import (
	"image"
	"math/rand"

	"github.com/san-kum/orbitset/internal/noise"
	"github.com/san-kum/orbitset/internal/orbit"
)

type Renderer struct {
	Projection Projection
	Noise      noise.Params
	GridStep   int
	DotRadius  int
}

func NewRenderer(params noise.Params) *Renderer {
	return &Renderer{
		Projection: DefaultProjection(),
		Noise:      params,
		GridStep:   GridStep,
		DotRadius:  DotRadius,
	}
}

// Frame describes what a render call drew, in pixel space.
type Frame struct {
	Path    []image.Point
	Markers []image.Point
	// Keypoint is the highlighted curve index, or -1 when none was drawn.
	Keypoint      int
	KeypointPixel image.Point
}

// Render perturbs c in place with the regime's noise model and draws it onto
// dst. Markers are drawn unperturbed. It panics on an empty curve or an
// invalid regime.
func (r *Renderer) Render(rng *rand.Rand, c orbit.Curve, regime orbit.Regime, markers orbit.Markers, dst Target) Frame {
	if len(c) == 0 {
		panic("render: empty curve")
	}
	style := StyleFor(regime)
	noise.Apply(rng, regime, c, r.Noise)

	if style.Grid {
		dst.Grid(r.GridStep, ColorGrid)
	}

	f := Frame{Path: r.Projection.ProjectAll(c), Keypoint: -1}
	dst.Polyline(f.Path, ColorLine, style.LineWidth)

	if style.Markers && len(markers) > 0 {
		f.Markers = r.Projection.ProjectAll(markers)
		for _, m := range f.Markers {
			dst.Disk(m, r.DotRadius, ColorMarker)
		}
	}

	if style.Highlight {
		f.Keypoint = pickKeypoint(rng, len(f.Path))
		f.KeypointPixel = f.Path[f.Keypoint]
		dst.Disk(f.KeypointPixel, r.DotRadius, ColorKeypoint)
	}
	return f
}

// pickKeypoint draws an index at least KeypointMargin points from either
// end, shrinking the margin for short curves.
func pickKeypoint(rng *rand.Rand, n int) int {
	margin := KeypointMargin
	if m := (n - 1) / 2; m < margin {
		margin = m
	}
	return orbit.InteriorIndices(rng, n, margin, 1)[0]
}
