package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const ratingsHeader = "course,county,layout_score,difficulty_score,conditions_score,sat_noon_price,value_score,golf_quality,value_quality,composite_score,rank_position,notes\n"

func TestReadCourses(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		wantRows int
		wantErr  string
	}{
		{
			name:     "full column set",
			csv:      ratingsHeader + "Pine Hollow,Ocean,8,7,9,65,,,,,,walkable\nBlue Heron,Morris,6,5,7,40,,,,,,\n",
			wantRows: 2,
		},
		{
			name:     "required columns only",
			csv:      "course,layout_score,difficulty_score,conditions_score,sat_noon_price\nPine Hollow,8,7,9,65\n",
			wantRows: 1,
		},
		{
			name:     "header only",
			csv:      ratingsHeader,
			wantRows: 0,
		},
		{
			name:    "empty input",
			csv:     "",
			wantErr: "no header row",
		},
		{
			name:    "missing required columns",
			csv:     "course,layout_score\nPine Hollow,8\n",
			wantErr: "missing required columns: difficulty_score, conditions_score, sat_noon_price",
		},
		{
			name:    "mismatched column count",
			csv:     "course,layout_score,difficulty_score,conditions_score,sat_noon_price\nok,1,2,3,4\nbad\n",
			wantErr: "wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadCourses(strings.NewReader(tt.csv))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestReadCourses_Values(t *testing.T) {
	csv := "\ufeff Course , County,Layout_Score,difficulty_score,conditions_score,sat_noon_price,notes\n" +
		"Pine Hollow,Ocean,8,7,9,65,\"walkable, flat\"\n" +
		"Blue Heron,Morris,6,5.5,7,40,\n"

	rows, err := ReadCourses(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Pine Hollow", rows[0].Course)
	assert.Equal(t, "Ocean", rows[0].County)
	assert.Equal(t, "8", rows[0].LayoutScore)
	assert.Equal(t, "65", rows[0].SatNoonPrice)
	assert.Equal(t, "walkable, flat", rows[0].Notes)
	assert.Equal(t, 2, rows[0].Line)

	assert.Equal(t, "Blue Heron", rows[1].Course)
	assert.Equal(t, "5.5", rows[1].DifficultyScore)
	assert.Equal(t, 3, rows[1].Line)
}

func TestReadCurve(t *testing.T) {
	rows, err := ReadCurve(strings.NewReader("value_score,sat_noon_price_usd\n9,30\n7,60\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, CurveRow{Price: "30", ValueScore: "9", Line: 2}, rows[0])
	assert.Equal(t, CurveRow{Price: "60", ValueScore: "7", Line: 3}, rows[1])

	_, err = ReadCurve(strings.NewReader("price,value\n30,9\n"))
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"sat_noon_price_usd", "value_score"}, missing.Columns)
}

func TestWriteCourses(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCourses(&buf, []CourseRow{
		{Course: "Pine Hollow", County: "Ocean", LayoutScore: "8", DifficultyScore: "7", ConditionsScore: "9",
			SatNoonPrice: "65", ValueScore: "6.5", GolfQuality: "8", ValueQuality: "7.55",
			CompositeScore: "7.775", RankPosition: "1", Notes: "walkable, flat", Line: 7},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.TrimSpace(ratingsHeader), lines[0])
	assert.Equal(t, `Pine Hollow,Ocean,8,7,9,65,6.5,8,7.55,7.775,1,"walkable, flat"`, lines[1])
}

func TestWriteCourses_EmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCourses(&buf, nil))
	assert.Equal(t, ratingsHeader, buf.String())
}

func TestSaveAndLoadCourses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ratings.csv")

	in := []CourseRow{{Course: "Pine Hollow", LayoutScore: "8", DifficultyScore: "7", ConditionsScore: "9", SatNoonPrice: "65"}}
	require.NoError(t, SaveCourses(path, in))

	out, err := LoadCourses(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pine Hollow", out[0].Course)
	assert.Equal(t, 2, out[0].Line)
}

func TestLoadCourses_MissingFile(t *testing.T) {
	_, err := LoadCourses("/nonexistent/path/data.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv: open")
}

func TestLoadCourses_ErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "ratings.csv", "course\nPine Hollow\n")

	_, err := LoadCourses(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "layout_score")
}
