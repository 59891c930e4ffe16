package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfigYAML = `paths:
  ratings: data/nj_public_courses_ratings.csv
  curve: data/price_lookup_curve.csv
  output: "-"
scoring:
  golf_quality_weight: 0.7
  composite_golf_weight: 0.5
curve:
  policy: interpolate
output:
  precision: 3
  top: 10
`

const invalidConfigYAML = `paths:
  ratings: ""
scoring:
  golf_quality_weight: 1.5
curve:
  policy: cubic
output:
  precision: 2.5
  colour: green
`

func TestValidateConfigBytes_Valid(t *testing.T) {
	errs := ValidateConfigBytes([]byte(validConfigYAML))
	require.Empty(t, errs, "valid config should have no errors")
}

func TestValidateConfigBytes_Empty(t *testing.T) {
	require.Empty(t, ValidateConfigBytes(nil))
	require.Empty(t, ValidateConfigBytes([]byte("# just a comment\n")))
}

func TestValidateConfigBytes_Invalid(t *testing.T) {
	errs := ValidateConfigBytes([]byte(invalidConfigYAML))
	require.NotEmpty(t, errs, "invalid config should have errors")

	joined := strings.Join(errs, "\n")
	require.Contains(t, joined, "/paths/ratings")
	require.Contains(t, joined, "/scoring/golf_quality_weight")
	require.Contains(t, joined, "/curve/policy")
	require.Contains(t, joined, "/output/precision")
	require.Contains(t, joined, "colour")
}

func TestValidateConfigBytes_ParseError(t *testing.T) {
	errs := ValidateConfigBytes([]byte("scoring: [broken"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "YAML parse error")
}

func TestValidateConfigBytes_NotAMapping(t *testing.T) {
	errs := ValidateConfigBytes([]byte("- just\n- a list\n"))
	require.NotEmpty(t, errs)
	require.True(t, strings.HasPrefix(errs[0], "/: "))
}

func TestValidateConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".golfrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfigYAML), 0o644))

	errs, err := ValidateConfigFile(path)
	require.NoError(t, err)
	require.Empty(t, errs)

	require.NoError(t, os.WriteFile(path, []byte(invalidConfigYAML), 0o644))
	errs, err = ValidateConfigFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, errs)
}

func TestValidateConfigFile_NotFound(t *testing.T) {
	_, err := ValidateConfigFile("/nonexistent/.golfrank.yaml")
	require.Error(t, err)
}
