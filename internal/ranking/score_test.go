package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGolfQuality_IsExactMean(t *testing.T) {
	tests := []struct{ l, d, c float64 }{
		{8, 7, 9},
		{7, 7, 8},
		{1, 1, 1},
		{10, 10, 10},
		{6.5, 4, 9.25},
		{3, 10, 7},
	}
	for _, tt := range tests {
		rec := CourseRecord{Layout: tt.l, Difficulty: tt.d, Conditions: tt.c}
		assert.Equal(t, (tt.l+tt.d+tt.c)/3, GolfQuality(rec))
	}
}

func TestValueQuality(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 0.7*8+0.3*6, ValueQuality(8, 6, w), 1e-12)
	assert.Equal(t, 8.0, ValueQuality(8, 8, w))

	assert.Equal(t, 6.0, ValueQuality(8, 6, Weights{GolfQuality: 0}))
	assert.Equal(t, 8.0, ValueQuality(8, 6, Weights{GolfQuality: 1}))
}

func TestComposite(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 8.5, Composite(8, 9, w))

	assert.Equal(t, 9.0, Composite(8, 9, Weights{Composite: 0}), "zero weight reproduces composite = value_quality")
	assert.Equal(t, 8.0, Composite(8, 9, Weights{Composite: 1}))
}

func TestBlendStaysInRange(t *testing.T) {
	values := []float64{1, 1.5, 3.3333333333333335, 7.1, 9.999, 10}
	weights := []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1}
	for _, a := range values {
		for _, b := range values {
			for _, w := range weights {
				v := blend(a, b, w)
				assert.GreaterOrEqual(t, v, MinScore)
				assert.LessOrEqual(t, v, MaxScore)
			}
		}
	}
}

func TestWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
	require.NoError(t, Weights{GolfQuality: 0, Composite: 1}.Validate())

	err := Weights{GolfQuality: 1.2, Composite: 0.5}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "golf quality weight 1.2")

	err = Weights{GolfQuality: 0.5, Composite: -0.1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "composite golf weight -0.1")
}

func TestRoundScores(t *testing.T) {
	in := []CourseRecord{{Course: "A", GolfQuality: 22.0 / 3, ValueScore: 6.66666, ValueQuality: 7.00049, CompositeScore: 7.1675}}
	out := RoundScores(in, 3)

	assert.Equal(t, 7.333, out[0].GolfQuality)
	assert.Equal(t, 6.667, out[0].ValueScore)
	assert.Equal(t, 7.0, out[0].ValueQuality)
	assert.Equal(t, 22.0/3, in[0].GolfQuality, "input must not be modified")

	assert.Equal(t, in, RoundScores(in, -1))
}
