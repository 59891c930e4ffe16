// Package insights derives the summary views shown by the summary and report
// commands: distribution statistics, the top courses, and the courses whose
// price looks most and least justified.
package insights

import (
	"cmp"
	"slices"
	"strings"

	"github.com/njgolf/golfrank/internal/metrics"
	"github.com/njgolf/golfrank/internal/ranking"
)

// DefaultTopN is the number of rows in each list view.
const DefaultTopN = 10

// Summary holds distribution statistics over the ranked table.
type Summary struct {
	Courses     int             `json:"courses"`
	Price       metrics.Summary `json:"sat_noon_price"`
	GolfQuality metrics.Summary `json:"golf_quality"`
	ValueScore  metrics.Summary `json:"value_score"`
	Composite   metrics.Summary `json:"composite_score"`
}

// Insights bundles the summary with the three list views.
type Insights struct {
	Summary     Summary                `json:"summary"`
	Top         []ranking.CourseRecord `json:"top"`
	Undervalued []ranking.CourseRecord `json:"undervalued"`
	Overpriced  []ranking.CourseRecord `json:"overpriced"`
}

// Build computes every view over records, taking n rows per list.
func Build(records []ranking.CourseRecord, n int) Insights {
	return Insights{
		Summary:     Summarize(records),
		Top:         TopN(records, n),
		Undervalued: Undervalued(records, n),
		Overpriced:  Overpriced(records, n),
	}
}

// Summarize computes distribution statistics for price and the scores.
func Summarize(records []ranking.CourseRecord) Summary {
	column := func(f func(ranking.CourseRecord) float64) []float64 {
		out := make([]float64, len(records))
		for i, r := range records {
			out[i] = f(r)
		}
		return out
	}
	return Summary{
		Courses:     len(records),
		Price:       metrics.Summarize(column(func(r ranking.CourseRecord) float64 { return r.Price })),
		GolfQuality: metrics.Summarize(column(func(r ranking.CourseRecord) float64 { return r.GolfQuality })),
		ValueScore:  metrics.Summarize(column(func(r ranking.CourseRecord) float64 { return r.ValueScore })),
		Composite:   metrics.Summarize(column(func(r ranking.CourseRecord) float64 { return r.CompositeScore })),
	}
}

// TopN returns the n best courses by composite score.
func TopN(records []ranking.CourseRecord, n int) []ranking.CourseRecord {
	return take(records, n, func(a, b ranking.CourseRecord) int {
		return cmp.Compare(b.CompositeScore, a.CompositeScore)
	})
}

// Undervalued returns the n courses with the highest value score, breaking
// ties by composite score.
func Undervalued(records []ranking.CourseRecord, n int) []ranking.CourseRecord {
	return take(records, n, func(a, b ranking.CourseRecord) int {
		if c := cmp.Compare(b.ValueScore, a.ValueScore); c != 0 {
			return c
		}
		return cmp.Compare(b.CompositeScore, a.CompositeScore)
	})
}

// Overpriced returns the n courses with the lowest value score, breaking ties
// by the higher price.
func Overpriced(records []ranking.CourseRecord, n int) []ranking.CourseRecord {
	return take(records, n, func(a, b ranking.CourseRecord) int {
		if c := cmp.Compare(a.ValueScore, b.ValueScore); c != 0 {
			return c
		}
		return cmp.Compare(b.Price, a.Price)
	})
}

// take sorts a copy of records by order, falling back to course name, and
// returns at most n rows. A non-positive n returns every row.
func take(records []ranking.CourseRecord, n int, order func(a, b ranking.CourseRecord) int) []ranking.CourseRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b ranking.CourseRecord) int {
		if c := order(a, b); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Course), strings.ToLower(b.Course))
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
