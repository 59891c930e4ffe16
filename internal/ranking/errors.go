package ranking

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrValidation is matched by every data validation error produced while
// loading or scoring. Use errors.Is(err, ErrValidation) to tell bad input
// data apart from I/O failures.
var ErrValidation = errors.New("data validation failed")

// DataFormatError reports a missing column or a value that cannot be parsed.
type DataFormatError struct {
	Source string // file name or table label
	Line   int    // 1-based line in Source, 0 when the problem is table-wide
	Course string
	Field  string
	Value  string
	Reason string
}

func (e *DataFormatError) Error() string {
	var b strings.Builder
	b.WriteString(location(e.Source, e.Line, e.Course))
	if e.Field != "" {
		fmt.Fprintf(&b, "field %q", e.Field)
		if e.Value != "" {
			fmt.Fprintf(&b, " value %q", e.Value)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	return b.String()
}

func (e *DataFormatError) Is(target error) bool { return target == ErrValidation }

// RangeViolationError reports a numeric value outside its declared range.
// An unbounded Max is +Inf.
type RangeViolationError struct {
	Source string
	Line   int
	Course string
	Field  string
	Value  float64
	Min    float64
	Max    float64
}

func (e *RangeViolationError) Error() string {
	bound := fmt.Sprintf("must be between %g and %g", e.Min, e.Max)
	if math.IsInf(e.Max, 1) {
		bound = fmt.Sprintf("must be at least %g", e.Min)
	}
	return fmt.Sprintf("%sfield %q value %g %s", location(e.Source, e.Line, e.Course), e.Field, e.Value, bound)
}

func (e *RangeViolationError) Is(target error) bool { return target == ErrValidation }

// UnmappedPriceError is returned when the curve policy cannot map a price.
type UnmappedPriceError struct {
	Course string
	Price  float64
	Min    float64
	Max    float64
	Policy Policy
}

func (e *UnmappedPriceError) Error() string {
	course := ""
	if e.Course != "" {
		course = fmt.Sprintf("course %q: ", e.Course)
	}
	return fmt.Sprintf("%sprice %g has no curve coverage under policy %q (curve spans %g..%g)",
		course, e.Price, e.Policy, e.Min, e.Max)
}

func (e *UnmappedPriceError) Is(target error) bool { return target == ErrValidation }

func location(source string, line int, course string) string {
	var parts []string
	if source != "" {
		if line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", source, line))
		} else {
			parts = append(parts, source)
		}
	} else if line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", line))
	}
	if course != "" {
		parts = append(parts, fmt.Sprintf("course %q", course))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + ": "
}
