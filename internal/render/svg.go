package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

// SVG records drawing primitives as an SVG document of a fixed pixel size.
type SVG struct {
	size int
	body strings.Builder
}

func NewSVG(size int) *SVG {
	return &SVG{size: size}
}

func (s *SVG) Grid(step int, c color.RGBA) {
	if step <= 0 {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">`+"\n", hex(c)))
	for v := 0; v < s.size; v += step {
		s.body.WriteString(fmt.Sprintf(`<line x1="%d" y1="0" x2="%d" y2="%d"/>`+"\n", v, v, s.size))
		s.body.WriteString(fmt.Sprintf(`<line x1="0" y1="%d" x2="%d" y2="%d"/>`+"\n", v, s.size, v))
	}
	s.body.WriteString("</g>\n")
}

func (s *SVG) Polyline(pts []image.Point, c color.RGBA, width int) {
	if len(pts) == 0 {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%d" d="M`, hex(c), width))
	for i, p := range pts {
		if i == 0 {
			s.body.WriteString(fmt.Sprintf("%d,%d", p.X, p.Y))
		} else {
			s.body.WriteString(fmt.Sprintf(" L%d,%d", p.X, p.Y))
		}
	}
	s.body.WriteString(`"/>` + "\n")
}

func (s *SVG) Disk(center image.Point, radius int, c color.RGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n",
		center.X, center.Y, radius, hex(c)))
}

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.size, s.size, s.size, s.size, hex(ColorBackground)))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
