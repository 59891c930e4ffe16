package ranking

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// scoreResolution is the granularity at which composite scores are compared.
// Scores closer than this are ties and fall through to the name tie-break, so
// float noise from summing ratings in different orders cannot reorder courses.
const scoreResolution = 1e9

// Rank returns a copy of records sorted by composite_score descending with
// rank_position assigned 1..N. Ties are broken by course name (case-insensitive),
// then county, then source line, so the order is fully deterministic.
func Rank(records []CourseRecord) []CourseRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, compareForRank)
	for i := range out {
		out[i].RankPosition = i + 1
	}
	return out
}

func compareForRank(a, b CourseRecord) int {
	if c := cmp.Compare(rankKey(b.CompositeScore), rankKey(a.CompositeScore)); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Course), strings.ToLower(b.Course)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Course, b.Course); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.County), strings.ToLower(b.County)); c != 0 {
		return c
	}
	return cmp.Compare(a.Line, b.Line)
}

func rankKey(score float64) float64 {
	return math.Round(score*scoreResolution) / scoreResolution
}
