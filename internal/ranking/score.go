package ranking

import "fmt"

// Default blend weights. DefaultGolfQualityWeight comes from the original
// spreadsheet (70% golf quality, 30% value). DefaultCompositeGolfWeight makes
// composite_score the simple average of golf_quality and value_quality.
const (
	DefaultGolfQualityWeight   = 0.7
	DefaultCompositeGolfWeight = 0.5
)

// Weights holds the two convex blend weights used by the pipeline.
type Weights struct {
	// GolfQuality is the share of golf_quality in value_quality; value_score
	// gets the remaining 1-GolfQuality.
	GolfQuality float64 `json:"golf_quality_weight"`

	// Composite is the share of golf_quality in composite_score;
	// value_quality gets the remaining 1-Composite. Zero makes
	// composite_score equal to value_quality.
	Composite float64 `json:"composite_golf_weight"`
}

// DefaultWeights returns the weights used when nothing is configured.
func DefaultWeights() Weights {
	return Weights{
		GolfQuality: DefaultGolfQualityWeight,
		Composite:   DefaultCompositeGolfWeight,
	}
}

// Validate checks that both weights lie in [0, 1].
func (w Weights) Validate() error {
	if w.GolfQuality < 0 || w.GolfQuality > 1 {
		return fmt.Errorf("golf quality weight %g must be between 0 and 1", w.GolfQuality)
	}
	if w.Composite < 0 || w.Composite > 1 {
		return fmt.Errorf("composite golf weight %g must be between 0 and 1", w.Composite)
	}
	return nil
}

// GolfQuality returns the arithmetic mean of the three manual ratings.
func GolfQuality(rec CourseRecord) float64 {
	return (rec.Layout + rec.Difficulty + rec.Conditions) / 3
}

// ValueQuality blends golf quality with the price-derived value score:
//
//	value_quality = w*golf_quality + (1-w)*value_score
func ValueQuality(golfQuality, valueScore float64, w Weights) float64 {
	return blend(golfQuality, valueScore, w.GolfQuality)
}

// Composite combines golf quality and value quality into the ranking key:
//
//	composite_score = c*golf_quality + (1-c)*value_quality
func Composite(golfQuality, valueQuality float64, w Weights) float64 {
	return blend(golfQuality, valueQuality, w.Composite)
}

// blend returns w*a + (1-w)*b, written as b + w*(a-b) so equal inputs come
// back unchanged, then clamped to the score range.
func blend(a, b, w float64) float64 {
	return clampScore(b + w*(a-b))
}

func clampScore(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
