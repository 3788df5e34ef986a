package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitset/internal/noise"
	"github.com/san-kum/orbitset/internal/orbit"
)

const (
	DefaultOutput = "orbit_dataset"
	DefaultCount  = 100
	DefaultSize   = 512
	DefaultFormat = "png"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Formats lists the supported image encodings.
var Formats = []string{"png", "svg"}

type Config struct {
	Output string `yaml:"output"`
	// Count is the number of samples per (regime, family) pair.
	Count int `yaml:"count"`
	// Seed fixes every sample's random stream; 0 picks a time based seed.
	Seed     int64        `yaml:"seed"`
	Workers  int          `yaml:"workers"`
	Format   string       `yaml:"format"`
	Size     int          `yaml:"size"`
	Regimes  []string     `yaml:"regimes"`
	Families []string     `yaml:"families"`
	Noise    noise.Params `yaml:"noise"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:   DefaultOutput,
		Count:    DefaultCount,
		Workers:  1,
		Format:   DefaultFormat,
		Size:     DefaultSize,
		Regimes:  regimeNames(orbit.Regimes()),
		Families: familyNames(orbit.Families()),
		Noise:    noise.DefaultParams(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the config and resolves its regime and family names.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Count)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if !validFormat(c.Format) {
		return fmt.Errorf("%w: unknown format %q (available: %v)", ErrInvalidConfig, c.Format, Formats)
	}
	if _, err := c.ParsedRegimes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ParsedFamilies(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Noise.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) ParsedRegimes() ([]orbit.Regime, error) {
	if len(c.Regimes) == 0 {
		return nil, errors.New("no regimes selected")
	}
	out := make([]orbit.Regime, 0, len(c.Regimes))
	for _, name := range c.Regimes {
		r, err := orbit.ParseRegime(name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (c *Config) ParsedFamilies() ([]orbit.Family, error) {
	if len(c.Families) == 0 {
		return nil, errors.New("no families selected")
	}
	out := make([]orbit.Family, 0, len(c.Families))
	for _, name := range c.Families {
		f, err := orbit.ParseFamily(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func validFormat(f string) bool {
	for _, name := range Formats {
		if name == f {
			return true
		}
	}
	return false
}

func regimeNames(rs []orbit.Regime) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}

func familyNames(fs []orbit.Family) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}
