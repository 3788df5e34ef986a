// Package orbit provides the closed-trajectory families of the dataset.
//
// Each [Family] is a class label bound to exactly one geometric rule:
//
//   - [Class1], [Class2]: ellipse
//   - [Class3]: unit circle
//   - [Class4]: circle with random radial spikes
//   - [Class5A]: ellipse plus marker dots
//   - [Class5B]: ellipse, a small Lissajous loop and marker dots
//   - [Class6]: circle flattened from above ("banana")
//   - [Class7], [Class8]: inner and outer figure-eight
//   - [Class9]: petal curve with 3 to 6 lobes
//
// Generators draw from an explicitly passed random source so callers can
// seed them per sample:
//
//	rng := rand.New(rand.NewSource(42))
//	s := orbit.Generate(rng, orbit.Class9)
//	fmt.Println(len(s.Curve), s.Params["petals"])
package orbit
