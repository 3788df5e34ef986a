package render

import (
	"fmt"
	"image/color"

	"github.com/san-kum/orbitset/internal/orbit"
)

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorGrid       = color.RGBA{200, 200, 200, 255}
	ColorLine       = color.RGBA{0, 0, 200, 255}
	ColorMarker     = color.RGBA{0, 0, 0, 255}
	ColorKeypoint   = color.RGBA{255, 0, 0, 255}
)

const (
	GridStep  = 32
	DotRadius = 6
	// KeypointMargin keeps the highlighted point away from the curve ends.
	KeypointMargin = 50
)

// Style holds the regime dependent drawing switches.
type Style struct {
	Grid      bool
	Markers   bool
	Highlight bool
	LineWidth int
}

// StyleFor returns the style of regime. It panics on an invalid regime.
func StyleFor(regime orbit.Regime) Style {
	switch regime {
	case orbit.Clean:
		return Style{LineWidth: 1}
	case orbit.Realistic:
		return Style{Grid: true, Markers: true, Highlight: true, LineWidth: 2}
	}
	panic(fmt.Sprintf("%v: %d", orbit.ErrUnknownRegime, int(regime)))
}
