package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/orbitset/internal/config"
	"github.com/san-kum/orbitset/internal/dataset"
	"github.com/san-kum/orbitset/internal/noise"
	"github.com/san-kum/orbitset/internal/orbit"
	"github.com/san-kum/orbitset/internal/render"
	"github.com/san-kum/orbitset/internal/shape"
	"github.com/san-kum/orbitset/internal/viz"
)

// spikeThreshold separates spike tips from the unit circle.
const spikeThreshold = 1.5

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("regimes") {
		cfg.Regimes = regimes
	}
	if flags.Changed("families") {
		cfg.Families = families
	}
	return cfg, cfg.Validate()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	g, err := dataset.New(*cfg, dataset.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	m, err := g.Run(ctx)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "completed in %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "dataset id: %s\n", m.ID)
	fmt.Fprintf(out, "samples: %d\n", m.Samples)
	fmt.Fprintf(out, "seed: %d\n", m.Seed)
	fmt.Fprintf(out, "output: %s\n", g.Store().Dir())
	return nil
}

func listFamilies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tSHAPE\tPOINTS\tMARKERS")
	for _, f := range orbit.Families() {
		points := orbit.Points
		if f == orbit.Class5B {
			points *= 2
		}
		markers := "-"
		if f.HasMarkers() {
			markers = "2-4"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", f, f.Shape(), points, markers)
	}
	return w.Flush()
}

func seededRand() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func previewFamily(cmd *cobra.Command, args []string) error {
	f, err := orbit.ParseFamily(args[0])
	if err != nil {
		return err
	}
	r, err := orbit.ParseRegime(regime)
	if err != nil {
		return err
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("canvas must be at least 1x1 cells, got %dx%d", width, height)
	}

	p := viz.Render(seededRand(), render.NewRenderer(noise.DefaultParams()), f, r, width, height)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(f.String())+"  "+viz.Subtle.Render(f.Shape().String()+" / "+r.String()))
	fmt.Fprint(out, viz.Panel.Render(strings.TrimSuffix(p.Canvas.Styled(), "\n")))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Metric("points", len(p.Sample.Curve))+"  "+viz.Metric("markers", len(p.Frame.Markers))+"  "+viz.Metric("keypoint", p.Frame.Keypoint))
	return nil
}

func inspectFamily(cmd *cobra.Command, args []string) error {
	f, err := orbit.ParseFamily(args[0])
	if err != nil {
		return err
	}

	s := orbit.Generate(seededRand(), f)
	radii := shape.Radii(shape.Revolution(s.Curve))
	ps := shape.PowerSpectrum(radii)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "class: %s\n", f)
	fmt.Fprintf(out, "shape: %s\n", f.Shape())
	fmt.Fprintf(out, "points: %d\n\n", len(s.Curve))

	fmt.Fprintln(out, asciigraph.Plot(radii,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("radius over one revolution"),
	))
	fmt.Fprintln(out)

	if len(ps) > 1 {
		bins := ps[1:]
		if len(bins) > 16 {
			bins = bins[:16]
		}
		fmt.Fprintln(out, asciigraph.Plot(bins,
			asciigraph.Height(8),
			asciigraph.Width(64),
			asciigraph.Caption("radius spectrum (harmonics 1-16)"),
		))
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "radial maxima: %d\n", shape.CountMaxima(radii))
	fmt.Fprintf(out, "dominant harmonic: %d\n", shape.DominantHarmonic(radii))
	fmt.Fprintf(out, "points beyond r=%.1f: %d\n", spikeThreshold, shape.CountAbove(s.Curve, spikeThreshold))
	for _, k := range []string{"petals", "spikes", "markers"} {
		if v, ok := s.Params[k]; ok {
			fmt.Fprintf(out, "%s: %d\n", k, int(v))
		}
	}
	return nil
}

func browse(cmd *cobra.Command, args []string) error {
	fs := make([]orbit.Family, 0, len(families))
	for _, name := range families {
		f, err := orbit.ParseFamily(name)
		if err != nil {
			return err
		}
		fs = append(fs, f)
	}
	b := viz.NewBrowser(seededRand(), render.NewRenderer(noise.DefaultParams()), fs)
	return viz.RunBrowser(b)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tOUTPUT\tCOUNT\tWORKERS\tSIZE\tREGIMES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			name, p.Output, p.Count, p.Workers, p.Size, strings.Join(p.Regimes, ","))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := dataset.List(dataDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no datasets found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOUTPUT\tTIME\tSAMPLES\tSEED\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2fs\n",
			run.ID,
			run.Config.Output,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Seed,
			run.Elapsed,
		)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "orbitset.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Debug("wrote config", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
