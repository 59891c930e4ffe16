package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/njgolf/golfrank/internal/dataset"
	"github.com/njgolf/golfrank/internal/ranking"
	"golang.org/x/term"
)

// CourseEntry holds all fields collected during the interactive wizard.
type CourseEntry struct {
	Course     string
	County     string
	Layout     float64
	Difficulty float64
	Conditions float64
	Price      float64
	Notes      string
}

// RunCourseWizard runs an interactive huh form to collect a new course row.
// If initialName is non-empty, it pre-populates the name field.
func RunCourseWizard(in io.Reader, out io.Writer, initialName string) (*CourseEntry, error) {
	var (
		name          = initialName
		county        string
		layoutRaw     string
		difficultyRaw string
		conditionsRaw string
		priceRaw      string
		notes         string
	)

	ratingInput := func(title, field string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Description("Score from 1 (worst) to 10 (best)").
			Placeholder("7.5").
			Value(value).
			Validate(func(s string) error {
				_, err := ranking.ParseRating(field, s)
				return err
			})
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course name").
				Placeholder("Pine Hollow Golf Club").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("course name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("County").
				Placeholder("Ocean").
				Value(&county),
			ratingInput("Layout score", "layout_score", &layoutRaw),
			ratingInput("Difficulty score", "difficulty_score", &difficultyRaw),
			ratingInput("Conditions score", "conditions_score", &conditionsRaw),
			huh.NewInput().
				Title("Saturday noon price (USD)").
				Description("Green fee for a Saturday tee time around noon").
				Placeholder("65").
				Value(&priceRaw).
				Validate(func(s string) error {
					_, err := ranking.ParsePrice("sat_noon_price", s)
					return err
				}),
			huh.NewInput().
				Title("Notes").
				Description("Optional").
				Value(&notes),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	// The form validated each field already; parsing again only converts.
	entry := &CourseEntry{
		Course: strings.TrimSpace(name),
		County: strings.TrimSpace(county),
		Notes:  strings.TrimSpace(notes),
	}
	var errs []error
	var err error
	entry.Layout, err = ranking.ParseRating("layout_score", layoutRaw)
	errs = append(errs, err)
	entry.Difficulty, err = ranking.ParseRating("difficulty_score", difficultyRaw)
	errs = append(errs, err)
	entry.Conditions, err = ranking.ParseRating("conditions_score", conditionsRaw)
	errs = append(errs, err)
	entry.Price, err = ranking.ParsePrice("sat_noon_price", priceRaw)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return entry, nil
}

// Row converts the entry to a ratings table row with empty derived columns.
func (e *CourseEntry) Row() dataset.CourseRow {
	return dataset.CourseRow{
		Course:          e.Course,
		County:          e.County,
		LayoutScore:     formatNumber(e.Layout),
		DifficultyScore: formatNumber(e.Difficulty),
		ConditionsScore: formatNumber(e.Conditions),
		SatNoonPrice:    formatNumber(e.Price),
		Notes:           e.Notes,
	}
}

// AppendCourse validates entry and appends it to the ratings table at path,
// creating the file if needed. Existing rows are written back unchanged.
// A course with the same name and county as an existing row is rejected.
func AppendCourse(path string, entry *CourseEntry) error {
	rows, err := dataset.LoadCourses(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	for _, r := range rows {
		if strings.EqualFold(strings.TrimSpace(r.Course), entry.Course) &&
			strings.EqualFold(strings.TrimSpace(r.County), entry.County) {
			return fmt.Errorf("course %q (%s) already exists at line %d", entry.Course, displayCounty(entry.County), r.Line)
		}
	}

	row := entry.Row()
	row.Line = len(rows) + 2
	if _, err := ranking.ParseCourses(filepath.Base(path), []dataset.CourseRow{row}); err != nil {
		return err
	}

	return dataset.SaveCourses(path, append(rows, row))
}

func displayCounty(county string) string {
	if county == "" {
		return "no county"
	}
	return county
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
