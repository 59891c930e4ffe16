package reporting

import (
	"testing"

	"github.com/njgolf/golfrank/internal/insights"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/stretchr/testify/assert"
)

func TestInterpretScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent high", 9.8, "Excellent (8.5+)"},
		{"excellent boundary", 8.5, "Excellent (8.5+)"},
		{"good high", 8.49, "Good (7-8.5)"},
		{"good low", 7.0, "Good (7-8.5)"},
		{"fair high", 6.99, "Fair (5-7)"},
		{"fair low", 5.0, "Fair (5-7)"},
		{"poor high", 4.99, "Poor (<5)"},
		{"poor floor", 1.0, "Poor (<5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretScore(tt.score)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretValue(t *testing.T) {
	assert.Equal(t, "bargain for the price", InterpretValue(9))
	assert.Equal(t, "fairly priced", InterpretValue(6.5))
	assert.Equal(t, "expensive for what you get", InterpretValue(3))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$65.00", FormatPrice(65))
	assert.Equal(t, "$1,234.50", FormatPrice(1234.5))
	assert.Equal(t, "$0.00", FormatPrice(0))
}

func TestFormatSummaryReport(t *testing.T) {
	records := []ranking.CourseRecord{
		{Course: "Cedar Ridge", Price: 30, GolfQuality: 9, ValueScore: 10, CompositeScore: 9.5, RankPosition: 1},
		{Course: "Pine Hollow", Price: 60, GolfQuality: 7, ValueScore: 7, CompositeScore: 7, RankPosition: 2},
	}

	got := FormatSummaryReport(insights.Build(records, 5))
	assert.Contains(t, got, "=== Summary ===")
	assert.Contains(t, got, "Courses ranked:          2")
	assert.Contains(t, got, "Average Saturday price:  $45.00 (median $45.00, $30.00 to $60.00)")
	assert.Contains(t, got, "Average golf quality:    8.00 — Good (7-8.5)")
	assert.Contains(t, got, "Average composite score: 8.25 — Good (7-8.5)")
	assert.Contains(t, got, "Best overall: Cedar Ridge (9.50, $30.00, bargain for the price)")
}

func TestFormatSummaryReport_Empty(t *testing.T) {
	got := FormatSummaryReport(insights.Build(nil, 5))
	assert.Contains(t, got, "Courses ranked:          0")
	assert.NotContains(t, got, "Average")
}
