package config

import (
	"sort"

	"github.com/san-kum/orbitset/internal/noise"
	"github.com/san-kum/orbitset/internal/orbit"
)

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"smoke": {
		Output: "orbit_smoke", Count: 5, Workers: 1, Format: "png", Size: DefaultSize,
		Regimes:  regimeNames(orbit.Regimes()),
		Families: familyNames(orbit.Families()),
		Noise:    noise.DefaultParams(),
	},
	"large": {
		Output: DefaultOutput, Count: 1000, Workers: 8, Format: "png", Size: DefaultSize,
		Regimes:  regimeNames(orbit.Regimes()),
		Families: familyNames(orbit.Families()),
		Noise:    noise.DefaultParams(),
	},
	"clean-only": {
		Output: "orbit_clean", Count: DefaultCount, Workers: 4, Format: "png", Size: DefaultSize,
		Regimes:  []string{orbit.Clean.String()},
		Families: familyNames(orbit.Families()),
		Noise:    noise.DefaultParams(),
	},
	"thumbnails": {
		Output: "orbit_224", Count: DefaultCount, Workers: 4, Format: "png", Size: 224,
		Regimes:  regimeNames(orbit.Regimes()),
		Families: familyNames(orbit.Families()),
		Noise:    noise.DefaultParams(),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	cp.Regimes = append([]string(nil), cfg.Regimes...)
	cp.Families = append([]string(nil), cfg.Families...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
