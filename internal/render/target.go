package render

import (
	"image"
	"image/color"
)

// Target receives drawing primitives in pixel coordinates.
type Target interface {
	// Grid draws full-length horizontal and vertical lines every step pixels.
	Grid(step int, c color.RGBA)
	Polyline(pts []image.Point, c color.RGBA, width int)
	Disk(center image.Point, radius int, c color.RGBA)
}
