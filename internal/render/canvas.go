package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Canvas is a square RGBA raster with a white background.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(size int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Set colors one pixel; points outside the canvas are dropped.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

func (c *Canvas) Grid(step int, col color.RGBA) {
	if step <= 0 {
		return
	}
	b := c.img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c.Set(x, y, col)
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.Set(x, y, col)
		}
	}
}

func (c *Canvas) Polyline(pts []image.Point, col color.RGBA, width int) {
	if len(pts) == 1 {
		c.stamp(pts[0].X, pts[0].Y, col, width)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.DrawLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col, width)
	}
}

// DrawLine draws a line using Bresenham's algorithm with a square brush of
// the given width.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA, width int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.stamp(x0, y0, col, width)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Disk(center image.Point, radius int, col color.RGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.Set(center.X+dx, center.Y+dy, col)
			}
		}
	}
}

// stamp paints a width×width block whose top-left half sits on (x, y).
func (c *Canvas) stamp(x, y int, col color.RGBA, width int) {
	if width <= 1 {
		c.Set(x, y, col)
		return
	}
	lo := -(width - 1) / 2
	for oy := lo; oy < lo+width; oy++ {
		for ox := lo; ox < lo+width; ox++ {
			c.Set(x+ox, y+oy, col)
		}
	}
}

// Resize returns a size×size copy scaled with Catmull-Rom interpolation.
func (c *Canvas) Resize(size int) *Canvas {
	if size == c.img.Bounds().Dx() {
		return c
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return &Canvas{img: dst}
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
