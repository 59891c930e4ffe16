package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/njgolf/golfrank/internal/projectconfig"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	debug      bool
	configPath string
	sets       []string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "golfrank",
		Short: "golfrank - rank public golf courses by quality and value",
		Long: `golfrank ranks golf courses from a hand-curated ratings table and a
price-to-value calibration curve.

Each course gets a golf quality score from its layout, difficulty and
conditions ratings, a value score from its Saturday noon green fee, and a
composite score that blends the two. Courses are ranked by composite score.

Settings are read from .golfrank.yaml (searched upward from the working
directory), GOLFRANK_* environment variables, a .env file and --set flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the config file (default: search for "+projectconfig.FileName+")")
	cmd.PersistentFlags().StringArrayVar(&opts.sets, "set", nil, "Override a config value, e.g. --set curve.policy=nearest (can be repeated)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if opts.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRankCommand(opts))
	cmd.AddCommand(newSummaryCommand(opts))
	cmd.AddCommand(newReportCommand(opts))
	cmd.AddCommand(newValidateCommand(opts))
	cmd.AddCommand(newCurveCommand(opts))
	cmd.AddCommand(newAddCommand(opts))

	return cmd
}

func execute(ctx context.Context) error {
	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves the effective configuration: defaults, then the config
// file, then the environment (including .env), then --set overrides.
func loadConfig(opts *globalOptions) (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	if err := projectconfig.LoadDotEnv(wd); err != nil {
		return nil, err
	}

	var cfg *projectconfig.ProjectConfig
	if opts.configPath != "" {
		cfg, err = projectconfig.LoadFile(opts.configPath)
	} else {
		cfg, err = projectconfig.Load(wd)
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.ApplyOverrides(opts.sets); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Debug("configuration loaded",
		"file", cfg.File,
		"ratings", cfg.Paths.Ratings,
		"curve", cfg.Paths.Curve,
		"policy", cfg.Curve.Policy,
		"golf_quality_weight", cfg.Weights().GolfQuality,
		"composite_golf_weight", cfg.Weights().Composite)
	return cfg, nil
}

// rankCourses loads both tables named by cfg and runs the scoring pipeline.
func rankCourses(cfg *projectconfig.ProjectConfig) ([]ranking.CourseRecord, error) {
	pipeline, err := ranking.NewPipeline(cfg.RankingOptions())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	records, curve, err := ranking.LoadFiles(cfg.Paths.Ratings, cfg.Paths.Curve)
	if err != nil {
		return nil, err
	}

	ranked, err := pipeline.Run(records, curve)
	if err != nil {
		return nil, err
	}
	slog.Debug("ranked courses", "count", len(ranked))
	return ranked, nil
}
