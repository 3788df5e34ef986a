package orbit

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestGeneratePointCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, f := range Families() {
		t.Run(f.String(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				s := Generate(rng, f)

				want := Points
				if f == Class5B {
					want = 2 * Points
				}
				if len(s.Curve) != want {
					t.Fatalf("expected %d points, got %d", want, len(s.Curve))
				}

				if f.HasMarkers() {
					if len(s.Markers) < 2 || len(s.Markers) > 4 {
						t.Errorf("expected 2..4 markers, got %d", len(s.Markers))
					}
					if s.Params["markers"] != float64(len(s.Markers)) {
						t.Errorf("markers param %v does not match %d", s.Params["markers"], len(s.Markers))
					}
				} else if s.Markers != nil {
					t.Errorf("expected no markers, got %d", len(s.Markers))
				}
			}
		})
	}
}

func TestMarkersLieOnEllipse(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 50; i++ {
		s := Generate(rng, Class5A)
		for _, m := range s.Markers {
			v := m.X*m.X + (m.Y/ellipseRatio)*(m.Y/ellipseRatio)
			if math.Abs(v-1) > 1e-9 {
				t.Errorf("marker %v is off the ellipse (%.6f)", m, v)
			}
		}
	}
}

func TestDeterministicShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		family Family
		check  func(p Point) bool
	}{
		{Class1, func(p Point) bool { return math.Abs(p.X*p.X+p.Y*p.Y/0.49-1) < 1e-9 }},
		{Class3, func(p Point) bool { return math.Abs(p.Norm()-1) < 1e-9 }},
		{Class6, func(p Point) bool { return p.Y <= bananaCap && p.Norm() <= 1+1e-9 }},
		{Class7, func(p Point) bool { return math.Abs(p.X) <= 1 && math.Abs(p.Y) <= 1 }},
		{Class8, func(p Point) bool { return math.Abs(p.X) <= 1 && math.Abs(p.Y) <= 1 }},
	}

	for _, tt := range tests {
		s := Generate(rng, tt.family)
		for i, p := range s.Curve {
			if !tt.check(p) {
				t.Errorf("%s: point %d %v violates the shape rule", tt.family, i, p)
				break
			}
		}
	}
}

func TestFigureEightEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	inner := Generate(rng, Class7).Curve
	outer := Generate(rng, Class8).Curve

	// t = π/2 sits a quarter of the way round
	q := (Points - 1) / 4
	if math.Abs(inner[q].Y-1) > 1e-3 {
		t.Errorf("inner eight: expected y≈1 at t=π/2, got %v", inner[q])
	}
	if math.Abs(outer[q].X-1) > 1e-3 {
		t.Errorf("outer eight: expected x≈1 at t=π/2, got %v", outer[q])
	}
}

func TestSpikesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		s := Generate(rng, Class4)
		n := 0
		for _, p := range s.Curve {
			if p.Norm() > 1.5 {
				n++
			}
		}
		if n < 2 || n > 5 {
			t.Fatalf("expected 2..5 spikes, got %d", n)
		}
		if float64(n) != s.Params["spikes"] {
			t.Errorf("spikes param %v, counted %d", s.Params["spikes"], n)
		}
		for _, j := range []int{0, 19, Points - 19, Points - 1} {
			if s.Curve[j].Norm() > 1.5 {
				t.Errorf("spike at edge index %d", j)
			}
		}
	}
}

func TestPetalCountRange(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	seen := map[float64]bool{}

	for i := 0; i < 200; i++ {
		k := Generate(rng, Class9).Params["petals"]
		if k < 3 || k > 6 {
			t.Fatalf("petal count %v out of range", k)
		}
		seen[k] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all of 3..6 to appear, saw %v", seen)
	}
}

func TestDotsLoopSecondHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := Generate(rng, Class5B)

	for _, p := range s.Curve[Points:] {
		if math.Abs(p.X) > loopRadius+1e-9 || math.Abs(p.Y) > loopRadius+1e-9 {
			t.Fatalf("loop point %v outside radius %.1f", p, loopRadius)
		}
	}
	first := s.Curve[Points]
	if math.Abs(first.X-loopRadius) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("loop should start at (0.4, 0), got %v", first)
	}
}

func TestLinspace(t *testing.T) {
	ts := Linspace(Points)
	if len(ts) != Points {
		t.Fatalf("expected %d samples, got %d", Points, len(ts))
	}
	if ts[0] != 0 || ts[len(ts)-1] != 2*math.Pi {
		t.Errorf("endpoints: got %v, %v", ts[0], ts[len(ts)-1])
	}
	step := ts[1] - ts[0]
	for i := 2; i < len(ts); i++ {
		if math.Abs(ts[i]-ts[i-1]-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d", i)
		}
	}
}

func TestInteriorIndices(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	tests := []struct {
		name       string
		n, margin  int
		k, wantLen int
	}{
		{"normal", 1200, 20, 5, 5},
		{"narrow", 44, 20, 5, 5},
		{"tiny", 41, 20, 5, 2},
		{"empty", 10, 20, 5, 0},
		{"no margin", 3, 0, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := InteriorIndices(rng, tt.n, tt.margin, tt.k)
			if len(idx) != tt.wantLen {
				t.Fatalf("expected %d indices, got %v", tt.wantLen, idx)
			}
			seen := map[int]bool{}
			for _, i := range idx {
				if i < tt.margin || i > tt.n-tt.margin || i >= tt.n {
					t.Errorf("index %d out of range", i)
				}
				if seen[i] {
					t.Errorf("duplicate index %d", i)
				}
				seen[i] = true
			}
		})
	}
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families() {
		got, err := ParseFamily(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFamily(%q) = %v, %v", f.String(), got, err)
		}
	}

	if _, err := ParseFamily("class10"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("expected ErrUnknownFamily, got %v", err)
	}
}

func TestParseRegime(t *testing.T) {
	for _, r := range Regimes() {
		got, err := ParseRegime(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRegime(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseRegime("noisy"); !errors.Is(err, ErrUnknownRegime) {
		t.Errorf("expected ErrUnknownRegime, got %v", err)
	}
}

func TestGenerateInvalidFamilyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid family")
		}
	}()
	Generate(rand.New(rand.NewSource(1)), Family(42))
}

func TestFamilyShapes(t *testing.T) {
	if Class1.Shape() != Class2.Shape() {
		t.Error("class1 and class2 should share the ellipse rule")
	}
	if len(Families()) != 10 {
		t.Errorf("expected 10 families, got %d", len(Families()))
	}
	if Class5B.Shape().String() != "dots+loop" {
		t.Errorf("unexpected shape name %q", Class5B.Shape())
	}
}
