package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	output     string
	count      int
	seed       int64
	workers    int
	format     string
	size       int
	regimes    []string
	families   []string
	regime     string
	width      int
	height     int

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "orbitset",
		Short:        "synthetic orbit image datasets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".", "directory holding datasets (list)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "render a dataset to disk",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
	generateCmd.Flags().IntVarP(&count, "count", "n", 0, "samples per regime and class")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (0 = time based)")
	generateCmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers")
	generateCmd.Flags().StringVar(&format, "format", "", "image format (png, svg)")
	generateCmd.Flags().IntVar(&size, "size", 0, "png side length in pixels")
	generateCmd.Flags().StringSliceVar(&regimes, "regimes", nil, "regimes to render")
	generateCmd.Flags().StringSliceVar(&families, "families", nil, "classes to render")

	familiesCmd := &cobra.Command{
		Use:   "families",
		Short: "list curve families",
		Args:  cobra.NoArgs,
		RunE:  listFamilies,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [family]",
		Short: "render one sample in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  previewFamily,
	}
	previewCmd.Flags().StringVar(&regime, "regime", "realistic", "noise regime (clean, realistic)")
	previewCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	previewCmd.Flags().IntVar(&width, "width", 64, "canvas width in cells")
	previewCmd.Flags().IntVar(&height, "height", 32, "canvas height in cells")

	inspectCmd := &cobra.Command{
		Use:   "inspect [family]",
		Short: "plot the radius profile and structural counts of a sample",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectFamily,
	}
	inspectCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "page through the families interactively",
		Args:  cobra.NoArgs,
		RunE:  browse,
	}
	browseCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	browseCmd.Flags().StringSliceVar(&families, "families", nil, "classes to browse")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list dataset presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list datasets under --data",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file to start from",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset instead of the defaults")

	rootCmd.AddCommand(generateCmd, familiesCmd, previewCmd, inspectCmd, browseCmd, presetsCmd, listCmd, initCmd)
	return rootCmd
}
