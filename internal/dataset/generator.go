// Package dataset drives the orbit pipeline over every (regime, family)
// pair and persists images, labels and a run manifest.
package dataset

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/orbitset/internal/config"
	"github.com/san-kum/orbitset/internal/orbit"
	"github.com/san-kum/orbitset/internal/render"
)

type Generator struct {
	cfg      config.Config
	store    *Store
	renderer *render.Renderer
	logger   *zap.Logger
}

type Option func(*Generator)

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New validates cfg and prepares a generator writing under cfg.Output.
func New(cfg config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g := &Generator{
		cfg:      cfg,
		store:    NewStore(cfg.Output),
		renderer: render.NewRenderer(cfg.Noise),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Generator) Store() *Store { return g.store }

// Run renders every planned sample and writes labels.csv and metadata.json.
// Samples are independent, so they are spread over cfg.Workers goroutines.
func (g *Generator) Run(ctx context.Context) (*Manifest, error) {
	regimes, _ := g.cfg.ParsedRegimes()
	families, _ := g.cfg.ParsedFamilies()
	jobs := Plan(regimes, families, g.cfg.Count)

	if err := g.store.Init(); err != nil {
		return nil, err
	}

	start := time.Now()
	labels := make([]Label, len(jobs))
	done := make(map[[2]int]*atomic.Int64, len(regimes)*len(families))
	for _, r := range regimes {
		for _, f := range families {
			done[[2]int{int(r), int(f)}] = new(atomic.Int64)
		}
	}

	g.logger.Info("generating dataset",
		zap.String("output", g.cfg.Output),
		zap.Int("samples", len(jobs)),
		zap.Int("workers", g.cfg.Workers),
		zap.Int64("seed", g.cfg.Seed))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, job := range jobs {
		if egCtx.Err() != nil {
			break
		}
		i, job := i, job
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			label, err := g.produce(job)
			if err != nil {
				return fmt.Errorf("%s: %w", job.RelPath(g.ext()), err)
			}
			labels[i] = label

			if done[[2]int{int(job.Regime), int(job.Family)}].Add(1) == int64(g.cfg.Count) {
				g.logger.Info("generated",
					zap.String("regime", job.Regime.String()),
					zap.String("class", job.Family.String()))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.store.SaveLabels(labels); err != nil {
		return nil, err
	}
	m := &Manifest{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Seed:      g.cfg.Seed,
		Samples:   len(jobs),
		Elapsed:   time.Since(start).Seconds(),
		Config:    g.cfg,
	}
	if err := g.store.SaveManifest(m); err != nil {
		return nil, err
	}

	g.logger.Info("dataset ready", zap.String("id", m.ID), zap.Duration("elapsed", time.Since(start)))
	return m, nil
}

// produce generates, renders and writes a single sample.
func (g *Generator) produce(job Job) (Label, error) {
	seed := job.Seed(g.cfg.Seed)
	rng := rand.New(rand.NewSource(seed))
	sample := orbit.Generate(rng, job.Family)

	rel := job.RelPath(g.ext())
	path := filepath.Join(g.store.Dir(), rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Label{}, err
	}

	var (
		frame render.Frame
		err   error
	)
	switch g.cfg.Format {
	case "svg":
		doc := render.NewSVG(render.Size)
		frame = g.renderer.Render(rng, sample.Curve, job.Regime, sample.Markers, doc)
		err = writeFile(path, func(w io.Writer) error {
			_, err := doc.WriteTo(w)
			return err
		})
	default:
		canvas := render.NewCanvas(render.Size)
		frame = g.renderer.Render(rng, sample.Curve, job.Regime, sample.Markers, canvas)
		err = writeFile(path, canvas.Resize(g.cfg.Size).EncodePNG)
	}
	if err != nil {
		return Label{}, err
	}

	label := Label{
		Path:      filepath.ToSlash(rel),
		Regime:    job.Regime.String(),
		Class:     job.Family.String(),
		Index:     job.Index,
		Shape:     job.Family.Shape().String(),
		Seed:      seed,
		Markers:   len(frame.Markers),
		Petals:    int(sample.Params["petals"]),
		Spikes:    int(sample.Params["spikes"]),
		Keypoint:  frame.Keypoint,
		KeypointX: -1,
		KeypointY: -1,
	}
	if frame.Keypoint >= 0 {
		scale := float64(g.cfg.Size) / render.Size
		if g.cfg.Format == "svg" {
			scale = 1
		}
		label.KeypointX = int(float64(frame.KeypointPixel.X) * scale)
		label.KeypointY = int(float64(frame.KeypointPixel.Y) * scale)
	}
	return label, nil
}

func (g *Generator) ext() string {
	return g.cfg.Format
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
