package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/njgolf/golfrank/internal/insights"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/njgolf/golfrank/internal/reporting"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	top    int
	format string
}

func newSummaryCommand(global *globalOptions) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print summary statistics and the best and worst values",
		Long: `Rank every course and print an overview: price and score statistics, the
top courses by composite score, the most undervalued courses (highest value
score) and the most overpriced ones (lowest value score).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, global, opts)
		},
	}

	cmd.Flags().IntVar(&opts.top, "top", 0, "Rows per list (default: output.top from config)")
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table | json")
	return cmd
}

func runSummary(cmd *cobra.Command, global *globalOptions, opts *summaryOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q: use table or json", opts.format)
	}
	if opts.top < 0 {
		return fmt.Errorf("--top must not be negative")
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
	if n == 0 {
		n = cfg.Output.Top
	}
	view := insights.Build(ranking.RoundScores(ranked, cfg.Precision()), n)

	w := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Fprint(w, reporting.FormatSummaryReport(view)) //nolint:errcheck
	if view.Summary.Courses == 0 {
		return nil
	}

	maxName := 40
	if width := terminalWidth(w); width > 0 {
		// Leave room for the numeric columns.
		maxName = max(12, width-summaryFixedWidth)
	}
	printCourseTable(w, fmt.Sprintf("Top %d by composite score", len(view.Top)), view.Top, maxName)
	printCourseTable(w, "Most undervalued", view.Undervalued, maxName)
	printCourseTable(w, "Most overpriced", view.Overpriced, maxName)
	return nil
}

// Fixed column widths (display columns).
const (
	colRank   = 4
	colCounty = 12
	colPrice  = 10
	colScore  = 9

	summaryFixedWidth = colRank + colCounty + colPrice + 3*colScore + 12 // 12 = 6 gaps × 2 spaces
)

func printCourseTable(w io.Writer, title string, rows []ranking.CourseRecord, maxName int) {
	if len(rows) == 0 {
		return
	}

	nameWidth := runewidth.StringWidth("Course")
	for _, r := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Course))
	}
	nameWidth = min(nameWidth, maxName)
	totalWidth := nameWidth + summaryFixedWidth

	fmt.Fprintf(w, "\n%s\n", title)                        //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck
	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s  %s\n",          //nolint:errcheck
		padLeft("Rank", colRank),
		padRight("Course", nameWidth),
		padRight("County", colCounty),
		padLeft("Price", colPrice),
		padLeft("Golf", colScore),
		padLeft("Value", colScore),
		padLeft("Composite", colScore))

	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s  %s\n", //nolint:errcheck
			padLeft(strconv.Itoa(r.RankPosition), colRank),
			padRight(truncateName(r.Course, nameWidth), nameWidth),
			padRight(truncateName(r.County, colCounty), colCounty),
			padLeft(reporting.FormatPrice(r.Price), colPrice),
			padLeft(fmt.Sprintf("%.2f", r.GolfQuality), colScore),
			padLeft(fmt.Sprintf("%.2f", r.ValueScore), colScore),
			padLeft(fmt.Sprintf("%.2f", r.CompositeScore), colScore))
	}
}
