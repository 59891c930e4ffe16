package ranking

import (
	"strconv"

	"github.com/njgolf/golfrank/internal/dataset"
)

// DefaultPrecision is the number of decimals derived scores are written with.
const DefaultPrecision = 3

// ToRows converts records to table rows, rounding derived scores to precision
// decimals. Manual ratings and prices are written as parsed.
func ToRows(records []CourseRecord, precision int) []dataset.CourseRow {
	rounded := RoundScores(records, precision)
	rows := make([]dataset.CourseRow, len(rounded))
	for i, r := range rounded {
		rows[i] = dataset.CourseRow{
			Course:          r.Course,
			County:          r.County,
			LayoutScore:     formatNumber(r.Layout),
			DifficultyScore: formatNumber(r.Difficulty),
			ConditionsScore: formatNumber(r.Conditions),
			SatNoonPrice:    formatNumber(r.Price),
			ValueScore:      formatNumber(r.ValueScore),
			GolfQuality:     formatNumber(r.GolfQuality),
			ValueQuality:    formatNumber(r.ValueQuality),
			CompositeScore:  formatNumber(r.CompositeScore),
			RankPosition:    strconv.Itoa(r.RankPosition),
			Notes:           r.Notes,
			Line:            r.Line,
		}
	}
	return rows
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
