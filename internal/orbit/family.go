package orbit

import "fmt"

// Family is a dataset class label.
type Family int

const (
	Class1 Family = iota
	Class2
	Class3
	Class4
	Class5A
	Class5B
	Class6
	Class7
	Class8
	Class9

	numFamilies
)

// Shape is the geometric rule behind a family.
type Shape int

const (
	ShapeEllipse Shape = iota
	ShapeCircle
	ShapeSpikes
	ShapeDots
	ShapeDotsLoop
	ShapeBanana
	ShapeInner8
	ShapeOuter8
	ShapePetal
)

var familyNames = [numFamilies]string{
	Class1:  "class1",
	Class2:  "class2",
	Class3:  "class3",
	Class4:  "class4",
	Class5A: "class5A",
	Class5B: "class5B",
	Class6:  "class6",
	Class7:  "class7",
	Class8:  "class8",
	Class9:  "class9",
}

var familyShapes = [numFamilies]Shape{
	Class1:  ShapeEllipse,
	Class2:  ShapeEllipse,
	Class3:  ShapeCircle,
	Class4:  ShapeSpikes,
	Class5A: ShapeDots,
	Class5B: ShapeDotsLoop,
	Class6:  ShapeBanana,
	Class7:  ShapeInner8,
	Class8:  ShapeOuter8,
	Class9:  ShapePetal,
}

var shapeNames = map[Shape]string{
	ShapeEllipse:  "ellipse",
	ShapeCircle:   "circle",
	ShapeSpikes:   "spikes",
	ShapeDots:     "dots",
	ShapeDotsLoop: "dots+loop",
	ShapeBanana:   "banana",
	ShapeInner8:   "inner-figure-eight",
	ShapeOuter8:   "outer-figure-eight",
	ShapePetal:    "petal",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func (f Family) Valid() bool {
	return f >= Class1 && f < numFamilies
}

func (f Family) String() string {
	if f.Valid() {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Shape returns the geometric rule of f. It panics if f is not a valid family.
func (f Family) Shape() Shape {
	mustFamily(f)
	return familyShapes[f]
}

// HasMarkers reports whether samples of f carry a marker set.
func (f Family) HasMarkers() bool {
	return f == Class5A || f == Class5B
}

// Families returns every family in label order, class1 first.
func Families() []Family {
	out := make([]Family, 0, numFamilies)
	for f := Class1; f < numFamilies; f++ {
		out = append(out, f)
	}
	return out
}

func ParseFamily(name string) (Family, error) {
	for f, n := range familyNames {
		if n == name {
			return Family(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

func mustFamily(f Family) {
	if !f.Valid() {
		panic(fmt.Sprintf("%v: %d", ErrUnknownFamily, int(f)))
	}
}
