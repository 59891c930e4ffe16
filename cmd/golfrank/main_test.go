package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/stretchr/testify/assert"
)

func TestIssuesError(t *testing.T) {
	err := &IssuesError{Count: 3}
	assert.Equal(t, "validation found 3 issue(s)", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"validate issues", &IssuesError{Count: 1}, ExitValidation},
		{"range violation", &ranking.RangeViolationError{Field: "layout_score", Value: 11, Min: 1, Max: 10}, ExitValidation},
		{"joined data errors", errors.Join(&ranking.DataFormatError{Field: "course", Reason: "course name is required"}, errors.New("other")), ExitValidation},
		{"wrapped unmapped price", fmt.Errorf("scoring courses: %w", &ranking.UnmappedPriceError{Price: 500}), ExitValidation},
		{"config error", errors.New("invalid configuration"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
