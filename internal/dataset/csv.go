package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jszwec/csvutil"
)

// CourseRow is one row of the course ratings table exactly as stored on disk.
// Values stay as text so the caller can report the offending cell verbatim.
type CourseRow struct {
	Course          string `csv:"course"`
	County          string `csv:"county"`
	LayoutScore     string `csv:"layout_score"`
	DifficultyScore string `csv:"difficulty_score"`
	ConditionsScore string `csv:"conditions_score"`
	SatNoonPrice    string `csv:"sat_noon_price"`
	ValueScore      string `csv:"value_score"`
	GolfQuality     string `csv:"golf_quality"`
	ValueQuality    string `csv:"value_quality"`
	CompositeScore  string `csv:"composite_score"`
	RankPosition    string `csv:"rank_position"`
	Notes           string `csv:"notes"`

	Line int `csv:"-"`
}

// CurveRow is one row of the price to value curve table.
type CurveRow struct {
	Price      string `csv:"sat_noon_price_usd"`
	ValueScore string `csv:"value_score"`

	Line int `csv:"-"`
}

// Required input columns. The derived columns of the ratings table are
// optional on input and always written on output.
var (
	CourseColumns = []string{"course", "layout_score", "difficulty_score", "conditions_score", "sat_noon_price"}
	CurveColumns  = []string{"sat_noon_price_usd", "value_score"}
)

// ErrEmpty is returned for a table without a header row.
var ErrEmpty = errors.New("csv: no header row")

// MissingColumnsError lists required columns absent from a table header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("csv: missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ReadCourses decodes a ratings table. Unknown columns are ignored.
func ReadCourses(r io.Reader) ([]CourseRow, error) {
	return decodeAll(r, CourseColumns, func(row *CourseRow, line int) { row.Line = line })
}

// ReadCurve decodes a price curve table.
func ReadCurve(r io.Reader) ([]CurveRow, error) {
	return decodeAll(r, CurveColumns, func(row *CurveRow, line int) { row.Line = line })
}

// decodeAll reads and normalizes the header, checks the required columns and
// decodes every remaining record into a T, stamping its source line.
func decodeAll[T any](r io.Reader, required []string, setLine func(*T, int)) ([]T, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	header = normalizeHeader(header)

	var missing []string
	for _, col := range required {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}

	rows := []T{}
	for {
		var row T
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		setLine(&row, line)
		rows = append(rows, row)
	}
}

// normalizeHeader strips a UTF-8 byte order mark, surrounding blanks and case
// differences that spreadsheet exports tend to introduce.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// WriteCourses encodes rows as a ratings table with the full column set.
func WriteCourses(w io.Writer, rows []CourseRow) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(CourseRow{}); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("csv: write row for %q: %w", row.Course, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// LoadCourses reads a ratings table from path.
func LoadCourses(path string) ([]CourseRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	rows, err := ReadCourses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// SaveCourses writes rows to path, replacing its contents.
func SaveCourses(path string, rows []CourseRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}
	if err := WriteCourses(f, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
