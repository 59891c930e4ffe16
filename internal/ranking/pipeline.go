package ranking

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Options configures a Pipeline.
type Options struct {
	Weights Weights
	Policy  Policy
}

// DefaultOptions returns the default weights with the interpolate policy.
func DefaultOptions() Options {
	return Options{Weights: DefaultWeights(), Policy: DefaultPolicy}
}

// Pipeline scores and ranks courses. It holds no state besides its options,
// so the same inputs always produce the same output.
type Pipeline struct {
	opts Options
}

// NewPipeline validates opts and returns a Pipeline.
func NewPipeline(opts Options) (*Pipeline, error) {
	if err := opts.Weights.Validate(); err != nil {
		return nil, err
	}
	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}
	opts.Policy = policy
	return &Pipeline{opts: opts}, nil
}

// Options returns the options the pipeline runs with.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Score recomputes every derived field of rec except rank_position.
func (p *Pipeline) Score(rec CourseRecord, curve Curve) (CourseRecord, error) {
	vs, err := curve.Value(rec.Price, p.opts.Policy)
	if err != nil {
		var unmapped *UnmappedPriceError
		if errors.As(err, &unmapped) {
			unmapped.Course = rec.Course
		}
		return rec, err
	}

	rec.GolfQuality = GolfQuality(rec)
	rec.ValueScore = vs
	rec.ValueQuality = ValueQuality(rec.GolfQuality, vs, p.opts.Weights)
	rec.CompositeScore = Composite(rec.GolfQuality, rec.ValueQuality, p.opts.Weights)
	rec.RankPosition = 0
	return rec, nil
}

// Run scores every record against curve and ranks the result. The input slice
// is not modified. If any price cannot be mapped the run aborts and the error
// lists every unmapped course.
func (p *Pipeline) Run(records []CourseRecord, curve Curve) ([]CourseRecord, error) {
	scored := make([]CourseRecord, 0, len(records))
	var errs []error

	slog.Debug("scoring courses", "courses", len(records), "policy", p.opts.Policy,
		"golf_quality_weight", p.opts.Weights.GolfQuality, "composite_golf_weight", p.opts.Weights.Composite)

	for _, rec := range slices.Clone(records) {
		s, err := p.Score(rec, curve)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scored = append(scored, s)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("scoring courses: %w", errors.Join(errs...))
	}

	ranked := Rank(scored)
	if len(ranked) > 0 {
		slog.Debug("ranked courses", "top", ranked[0].Course, "top_composite", ranked[0].CompositeScore)
	}
	return ranked, nil
}
