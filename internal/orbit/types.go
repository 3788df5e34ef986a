package orbit

import (
	"fmt"
	"math"
)

// Points is the sample count of every base curve.
const Points = 1200

type Point struct {
	X, Y float64
}

// Norm returns the distance of p from the origin.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// Curve is an ordered, visually closed trajectory in normalized coordinates.
type Curve []Point

func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Markers are points of interest drawn separately from the trajectory.
type Markers []Point

// Regime selects the noise model and the rendering style.
type Regime int

const (
	Clean Regime = iota
	Realistic
)

var regimeNames = [...]string{
	Clean:     "clean",
	Realistic: "realistic",
}

func (r Regime) String() string {
	if r.Valid() {
		return regimeNames[r]
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

func (r Regime) Valid() bool {
	return r >= Clean && r <= Realistic
}

// Regimes returns clean then realistic.
func Regimes() []Regime {
	return []Regime{Clean, Realistic}
}

func ParseRegime(name string) (Regime, error) {
	for r, n := range regimeNames {
		if n == name {
			return Regime(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegime, name)
}

// Sample is one generated instance of a family.
type Sample struct {
	Family  Family
	Curve   Curve
	Markers Markers
	// Params records the structural draws made for this instance
	// ("petals", "spikes", "markers").
	Params map[string]float64
}
