package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/njgolf/golfrank/internal/dataset"
	"github.com/njgolf/golfrank/internal/projectconfig"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/njgolf/golfrank/internal/reporting"
	"github.com/njgolf/golfrank/internal/watch"
	"github.com/spf13/cobra"
)

type rankOptions struct {
	output string
	format string
	watch  bool
}

func newRankCommand(global *globalOptions) *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score and rank every course",
		Long: `Score every course in the ratings table and write the ranked table.

Derived columns in the input (value_score, golf_quality, value_quality,
composite_score, rank_position) are ignored and recomputed. If any row is
invalid, every problem is reported and nothing is written.

Formats:
  csv   the ratings table with derived columns, ordered by rank (default)
  json  an array of course records
  prom  Prometheus text exposition, for a node exporter textfile collector

With --watch, the table is rebuilt whenever either input file or the config
file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, - for stdout (default: paths.output from config)")
	cmd.Flags().StringVar(&opts.format, "format", "csv", "Output format: csv | json | prom")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Re-rank when the inputs or config change")
	return cmd
}

func runRank(cmd *cobra.Command, global *globalOptions, opts *rankOptions) error {
	switch opts.format {
	case "csv", "json", "prom":
	default:
		return fmt.Errorf("unsupported format %q: use csv, json, or prom", opts.format)
	}

	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}

	if !opts.watch {
		return rankOnce(cmd, cfg, opts)
	}

	if err := rankOnce(cmd, cfg, opts); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "rank failed: %v\n", err) //nolint:errcheck
	}

	paths := []string{cfg.Paths.Ratings, cfg.Paths.Curve}
	configFile := ""
	if cfg.File != "" {
		configFile, err = filepath.Abs(cfg.File)
		if err != nil {
			return err
		}
		paths = append(paths, configFile)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes, press Ctrl+C to stop.") //nolint:errcheck
	return watch.Watch(cmd.Context(), paths, watch.DefaultDebounce, func(changed string) {
		if changed == configFile {
			reloaded, err := loadConfig(global)
			if err != nil {
				slog.Error("config reload failed, keeping previous config", "path", changed, "err", err)
				return
			}
			cfg = reloaded
		}
		if err := rankOnce(cmd, cfg, opts); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "rank failed: %v\n", err) //nolint:errcheck
		}
	})
}

func rankOnce(cmd *cobra.Command, cfg *projectconfig.ProjectConfig, opts *rankOptions) error {
	ranked, err := rankCourses(cfg)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = cfg.Paths.Output
	}

	err = withOutput(cmd, output, func(w io.Writer) error {
		return writeRanked(w, opts.format, ranked, cfg.Precision())
	})
	if err != nil {
		return err
	}

	if output != projectconfig.StdoutPath {
		fmt.Fprintf(cmd.ErrOrStderr(), "Ranked %d courses → %s\n", len(ranked), output) //nolint:errcheck
	}
	return nil
}

func writeRanked(w io.Writer, format string, ranked []ranking.CourseRecord, precision int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ranking.RoundScores(ranked, precision)); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		return nil
	case "prom":
		return reporting.WritePrometheus(w, ranking.RoundScores(ranked, precision))
	default:
		if err := dataset.WriteCourses(w, ranking.ToRows(ranked, precision)); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		return nil
	}
}
