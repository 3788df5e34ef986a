package viz

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitset/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank rune = 0x2800

// layer orders what a cell shows when several primitives share it.
type layer int

const (
	layerNone layer = iota
	layerGrid
	layerLine
	layerMarker
	layerKeypoint
)

// Canvas is a braille render.Target. Pixel coordinates in a Source×Source
// frame are scaled onto Width*2 × Height*4 sub-pixels.
type Canvas struct {
	Width, Height int
	Source        int
	Cells         [][]rune
	layers        [][]layer
	colors        [][]color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Source: render.Size,
		Cells:  make([][]rune, h),
		layers: make([][]layer, h),
		colors: make([][]color.RGBA, h),
	}
	for i := range c.Cells {
		c.Cells[i] = make([]rune, w)
		c.layers[i] = make([]layer, w)
		c.colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
	return c
}

// Set sets a sub-pixel. The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.set(x, y, layerLine, render.ColorLine)
}

func (c *Canvas) set(x, y int, l layer, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	row, cell := y/4, x/2
	if cell >= c.Width || row >= c.Height {
		return
	}
	c.Cells[row][cell] |= rune(pixelMap[y%4][x%2])
	if l >= c.layers[row][cell] {
		c.layers[row][cell] = l
		c.colors[row][cell] = col
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Cells {
		for j := range c.Cells[i] {
			c.Cells[i][j] = blank
			c.layers[i][j] = layerNone
		}
	}
}

// sub maps a source pixel onto the sub-pixel grid.
func (c *Canvas) sub(p image.Point) (int, int) {
	return p.X * c.Width * 2 / c.Source, p.Y * c.Height * 4 / c.Source
}

// Grid draws dotted grid lines so they stay distinguishable from the curve.
func (c *Canvas) Grid(step int, col color.RGBA) {
	for v := 0; v < c.Source; v += step {
		x, y := c.sub(image.Pt(v, v))
		for i := 0; i < c.Height*4; i += 2 {
			c.set(x, i, layerGrid, col)
		}
		for i := 0; i < c.Width*2; i += 2 {
			c.set(i, y, layerGrid, col)
		}
	}
}

// Polyline ignores width; a braille dot is already coarser than two pixels.
func (c *Canvas) Polyline(pts []image.Point, col color.RGBA, width int) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := c.sub(pts[i-1])
		x1, y1 := c.sub(pts[i])
		c.drawLine(x0, y0, x1, y1, col)
	}
	if len(pts) == 1 {
		x, y := c.sub(pts[0])
		c.set(x, y, layerLine, col)
	}
}

func (c *Canvas) Disk(center image.Point, radius int, col color.RGBA) {
	l := layerMarker
	if col == render.ColorKeypoint {
		l = layerKeypoint
	}
	cx, cy := c.sub(center)
	r := radius * c.Width * 2 / c.Source
	if r < 1 {
		r = 1
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.set(cx+dx, cy+dy, l, col)
			}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.drawLine(x0, y0, x1, y1, render.ColorLine)
}

func (c *Canvas) drawLine(x0, y0, x1, y1 int, col color.RGBA) {
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
		c.set(x0, y0, layerLine, col)
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

// Lit reports whether any sub-pixel of the cell at (col, row) is set.
func (c *Canvas) Lit(col, row int) bool {
	return c.Cells[row][col] != blank
}

// Layer reports which primitive owns a cell: grid, line, marker or keypoint.
func (c *Canvas) Layer(col, row int) string {
	switch c.layers[row][col] {
	case layerGrid:
		return "grid"
	case layerLine:
		return "line"
	case layerMarker:
		return "marker"
	case layerKeypoint:
		return "keypoint"
	}
	return ""
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Cells {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with each cell colored after its top layer.
func (c *Canvas) Styled() string {
	styles := make(map[color.RGBA]lipgloss.Style)
	var b strings.Builder
	for i, row := range c.Cells {
		for j, r := range row {
			if c.layers[i][j] == layerNone {
				b.WriteRune(r)
				continue
			}
			col := c.colors[i][j]
			st, ok := styles[col]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(col)))
				styles[col] = st
			}
			b.WriteString(st.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ render.Target = (*Canvas)(nil)
