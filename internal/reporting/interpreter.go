package reporting

import (
	"fmt"
	"strings"

	"github.com/njgolf/golfrank/internal/insights"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders a price in dollars with thousands separators.
func FormatPrice(price float64) string {
	return printer.Sprintf("$%.2f", price)
}

// InterpretScore returns a plain-language label for a 1-10 score.
func InterpretScore(score float64) string {
	switch {
	case score >= 8.5:
		return "Excellent (8.5+)"
	case score >= 7:
		return "Good (7-8.5)"
	case score >= 5:
		return "Fair (5-7)"
	default:
		return "Poor (<5)"
	}
}

// InterpretValue explains what a value score says about a course's price.
func InterpretValue(valueScore float64) string {
	switch {
	case valueScore >= 8:
		return "bargain for the price"
	case valueScore >= 5:
		return "fairly priced"
	default:
		return "expensive for what you get"
	}
}

// FormatSummaryReport produces a plain-language overview of the ranking.
func FormatSummaryReport(in insights.Insights) string {
	var b strings.Builder
	s := in.Summary

	b.WriteString("=== Summary ===\n\n")
	b.WriteString(fmt.Sprintf("Courses ranked:          %d\n", s.Courses))
	if s.Courses == 0 {
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Average Saturday price:  %s (median %s, %s to %s)\n",
		FormatPrice(s.Price.Mean), FormatPrice(s.Price.Median), FormatPrice(s.Price.Min), FormatPrice(s.Price.Max)))
	b.WriteString(fmt.Sprintf("Average golf quality:    %.2f — %s\n", s.GolfQuality.Mean, InterpretScore(s.GolfQuality.Mean)))
	b.WriteString(fmt.Sprintf("Average composite score: %.2f — %s\n", s.Composite.Mean, InterpretScore(s.Composite.Mean)))

	if len(in.Top) > 0 {
		best := in.Top[0]
		b.WriteString(fmt.Sprintf("\nBest overall: %s (%.2f, %s, %s)\n",
			best.Course, best.CompositeScore, FormatPrice(best.Price), InterpretValue(best.ValueScore)))
	}
	return b.String()
}
