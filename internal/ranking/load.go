package ranking

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/njgolf/golfrank/internal/dataset"
)

// Table labels used in error messages when no file name is known.
const (
	RatingsSource = "ratings"
	CurveSource   = "price curve"
)

// Load parses the ratings table and the price curve. Every invalid row is
// reported: the returned error joins one DataFormatError or
// RangeViolationError per offending field. Nothing is returned unless both
// tables are entirely valid.
func Load(ratings, curve io.Reader) ([]CourseRecord, Curve, error) {
	return load(RatingsSource, ratings, CurveSource, curve)
}

// LoadFiles opens both tables from disk and parses them with Load semantics.
// Errors name the files instead of the generic table labels.
func LoadFiles(ratingsPath, curvePath string) ([]CourseRecord, Curve, error) {
	rf, err := os.Open(ratingsPath)
	if err != nil {
		return nil, Curve{}, fmt.Errorf("opening ratings table: %w", err)
	}
	defer rf.Close() //nolint:errcheck

	cf, err := os.Open(curvePath)
	if err != nil {
		return nil, Curve{}, fmt.Errorf("opening price curve: %w", err)
	}
	defer cf.Close() //nolint:errcheck

	return load(filepath.Base(ratingsPath), rf, filepath.Base(curvePath), cf)
}

// LoadCurveFile reads and validates only the price curve at path.
func LoadCurveFile(path string) (Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return Curve{}, fmt.Errorf("opening price curve: %w", err)
	}
	defer f.Close() //nolint:errcheck

	name := filepath.Base(path)
	rows, err := dataset.ReadCurve(f)
	if err != nil {
		return Curve{}, tableError(name, err)
	}
	return ParseCurve(name, rows)
}

func load(ratingsName string, ratings io.Reader, curveName string, curve io.Reader) ([]CourseRecord, Curve, error) {
	courseRows, err := dataset.ReadCourses(ratings)
	if err != nil {
		return nil, Curve{}, tableError(ratingsName, err)
	}
	curveRows, err := dataset.ReadCurve(curve)
	if err != nil {
		return nil, Curve{}, tableError(curveName, err)
	}

	records, recErr := ParseCourses(ratingsName, courseRows)
	c, curveErr := ParseCurve(curveName, curveRows)
	if err := errors.Join(recErr, curveErr); err != nil {
		return nil, Curve{}, err
	}

	slog.Debug("loaded tables", "courses", len(records), "curve_points", c.Len())
	return records, c, nil
}

// tableError turns table-level codec failures into DataFormatErrors. Other
// failures (I/O, CSV syntax) are wrapped unchanged.
func tableError(source string, err error) error {
	var missing *dataset.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		return &DataFormatError{
			Source: source,
			Field:  strings.Join(missing.Columns, ", "),
			Reason: "missing required column",
		}
	case errors.Is(err, dataset.ErrEmpty):
		return &DataFormatError{Source: source, Reason: "table is empty (no header row)"}
	default:
		return fmt.Errorf("%s: %w", source, err)
	}
}

// ParseCourses validates raw rows and converts them to CourseRecords.
// Derived columns are ignored; they are always recomputed.
func ParseCourses(source string, rows []dataset.CourseRow) ([]CourseRecord, error) {
	records := make([]CourseRecord, 0, len(rows))
	var errs []error

	for _, row := range rows {
		p := fieldParser{source: source, line: row.Line, course: strings.TrimSpace(row.Course)}
		if p.course == "" {
			p.fail(&DataFormatError{Source: source, Line: row.Line, Field: "course", Reason: "course name is required"})
		}

		rec := CourseRecord{
			Course:     p.course,
			County:     strings.TrimSpace(row.County),
			Layout:     p.rating("layout_score", row.LayoutScore),
			Difficulty: p.rating("difficulty_score", row.DifficultyScore),
			Conditions: p.rating("conditions_score", row.ConditionsScore),
			Price:      p.price("sat_noon_price", row.SatNoonPrice),
			Notes:      strings.TrimSpace(row.Notes),
			Line:       row.Line,
		}

		if len(p.errs) > 0 {
			errs = append(errs, p.errs...)
			continue
		}
		records = append(records, rec)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return records, nil
}

// ParseCurve validates raw curve rows and builds a Curve.
func ParseCurve(source string, rows []dataset.CurveRow) (Curve, error) {
	points := make([]PricePoint, 0, len(rows))
	var errs []error

	for _, row := range rows {
		p := fieldParser{source: source, line: row.Line}
		pt := PricePoint{
			Price:      p.price("sat_noon_price_usd", row.Price),
			ValueScore: p.rating("value_score", row.ValueScore),
		}
		if len(p.errs) > 0 {
			errs = append(errs, p.errs...)
			continue
		}
		points = append(points, pt)
	}

	if len(errs) > 0 {
		return Curve{}, errors.Join(errs...)
	}

	c, err := NewCurve(points)
	if err != nil {
		var dfe *DataFormatError
		if errors.As(err, &dfe) {
			dfe.Source = source
		}
		return Curve{}, err
	}
	return c, nil
}

// fieldParser accumulates every field error of one row.
type fieldParser struct {
	source string
	line   int
	course string
	errs   []error
}

func (p *fieldParser) fail(err error) {
	p.errs = append(p.errs, err)
}

func (p *fieldParser) number(field, raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		p.fail(&DataFormatError{Source: p.source, Line: p.line, Course: p.course, Field: field, Reason: "value is required"})
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(&DataFormatError{Source: p.source, Line: p.line, Course: p.course, Field: field, Value: raw, Reason: "not a number"})
		return 0, false
	}
	return v, true
}

// rating parses a 1-10 score.
func (p *fieldParser) rating(field, raw string) float64 {
	v, ok := p.number(field, raw)
	if !ok {
		return 0
	}
	if v < MinScore || v > MaxScore {
		p.fail(&RangeViolationError{Source: p.source, Line: p.line, Course: p.course, Field: field, Value: v, Min: MinScore, Max: MaxScore})
	}
	return v
}

// price parses a non-negative currency amount. A leading "$" and thousands
// separators are accepted since spreadsheet exports often keep them.
func (p *fieldParser) price(field, raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(raw), "$"), ",", "")
	v, ok := p.number(field, cleaned)
	if !ok {
		if dfe, isDFE := p.errs[len(p.errs)-1].(*DataFormatError); isDFE && dfe.Value != "" {
			dfe.Value = raw
		}
		return 0
	}
	if v < 0 {
		p.fail(&RangeViolationError{Source: p.source, Line: p.line, Course: p.course, Field: field, Value: v, Min: 0, Max: math.Inf(1)})
	}
	return v
}

// ParseRating validates a single 1-10 rating cell outside of a table.
func ParseRating(field, raw string) (float64, error) {
	var p fieldParser
	v := p.rating(field, raw)
	return v, errors.Join(p.errs...)
}

// ParsePrice validates a single price cell outside of a table.
func ParsePrice(field, raw string) (float64, error) {
	var p fieldParser
	v := p.price(field, raw)
	return v, errors.Join(p.errs...)
}
