// Package ranking implements the course scoring pipeline: parsing the ratings
// and price curve tables, deriving golf_quality, value_score, value_quality and
// composite_score for every course, and ranking courses by composite_score.
package ranking

import (
	"math"
	"slices"
)

// Rating bounds shared by the three manual ratings, the curve value scores and
// every derived score.
const (
	MinScore = 1.0
	MaxScore = 10.0
)

// CourseRecord is one course with its manual ratings and derived scores.
type CourseRecord struct {
	Course     string  `json:"course"`
	County     string  `json:"county"`
	Layout     float64 `json:"layout_score"`
	Difficulty float64 `json:"difficulty_score"`
	Conditions float64 `json:"conditions_score"`
	Price      float64 `json:"sat_noon_price"`

	ValueScore     float64 `json:"value_score"`
	GolfQuality    float64 `json:"golf_quality"`
	ValueQuality   float64 `json:"value_quality"`
	CompositeScore float64 `json:"composite_score"`
	RankPosition   int     `json:"rank_position"`

	Notes string `json:"notes"`

	// Line is the 1-based line of the record in its source table.
	Line int `json:"-"`
}

// PricePoint is one calibration point of the price-to-value curve.
type PricePoint struct {
	Price      float64 `json:"sat_noon_price_usd"`
	ValueScore float64 `json:"value_score"`
}

// RoundScores returns a copy of records with the derived scores rounded to
// precision decimal places. A negative precision returns an unrounded copy.
func RoundScores(records []CourseRecord, precision int) []CourseRecord {
	out := slices.Clone(records)
	if precision < 0 {
		return out
	}
	for i := range out {
		out[i].ValueScore = Round(out[i].ValueScore, precision)
		out[i].GolfQuality = Round(out[i].GolfQuality, precision)
		out[i].ValueQuality = Round(out[i].ValueQuality, precision)
		out[i].CompositeScore = Round(out[i].CompositeScore, precision)
	}
	return out
}

// Round rounds v half away from zero to precision decimal places.
func Round(v float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(v*p) / p
}
