package main

import (
	"fmt"
	"io"

	"github.com/njgolf/golfrank/internal/reporting"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	format string
	output string
	title  string
	top    int
}

func newReportCommand(global *globalOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the ranking as a Markdown or HTML report",
		Long: `Rank every course and render a shareable report with summary statistics,
the full ranking table and the most undervalued and overpriced courses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "md", "Report format: md | html")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&opts.title, "title", reporting.DefaultTitle, "Report title")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Rows in the undervalued and overpriced lists (default: output.top from config)")
	return cmd
}

func runReport(cmd *cobra.Command, global *globalOptions, opts *reportOptions) error {
	var render func(io.Writer, reporting.ReportData) error
	switch opts.format {
	case "md", "markdown":
		render = reporting.RenderMarkdown
	case "html":
		render = reporting.RenderHTML
	default:
		return fmt.Errorf("unsupported format %q: use md or html", opts.format)
	}

	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}
	ranked, err := rankCourses(cfg)
	if err != nil {
		return err
	}

	n := opts.top
	if n <= 0 {
		n = cfg.Output.Top
	}
	data := reporting.NewReportData(opts.title, cfg.RankingOptions(), ranked, n)
	return withOutput(cmd, opts.output, func(w io.Writer) error {
		return render(w, data)
	})
}
