// Package projectconfig provides the ProjectConfig struct and loader for
// .golfrank.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/njgolf/golfrank/internal/utils"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".golfrank.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultRatingsPath = "data/nj_public_courses_ratings.csv"
	DefaultCurvePath   = "data/price_lookup_curve.csv"
	DefaultOutputPath  = "data/nj_public_courses_ranked.csv"

	DefaultCurvePolicy = string(ranking.PolicyInterpolate)
	DefaultPrecision   = ranking.DefaultPrecision
	DefaultTop         = 10

	maxSearchDepth = 10
)

// Environment variables that override file values.
const (
	EnvRatings     = "GOLFRANK_RATINGS"
	EnvCurve       = "GOLFRANK_CURVE"
	EnvOutput      = "GOLFRANK_OUTPUT"
	EnvCurvePolicy = "GOLFRANK_CURVE_POLICY"
)

// PathsConfig holds the input and output table locations.
type PathsConfig struct {
	Ratings string `yaml:"ratings,omitempty"`
	Curve   string `yaml:"curve,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// ScoringConfig holds the blend weights. Pointers distinguish an explicit
// 0 from an absent key.
type ScoringConfig struct {
	GolfQualityWeight   *float64 `yaml:"golf_quality_weight,omitempty"`
	CompositeGolfWeight *float64 `yaml:"composite_golf_weight,omitempty"`
}

// CurveConfig holds price curve lookup settings.
type CurveConfig struct {
	Policy string `yaml:"policy,omitempty"`
}

// OutputConfig holds formatting settings for written results.
type OutputConfig struct {
	Precision *int `yaml:"precision,omitempty"`
	Top       int  `yaml:"top,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .golfrank.yaml.
type ProjectConfig struct {
	Paths   PathsConfig   `yaml:"paths,omitempty"`
	Scoring ScoringConfig `yaml:"scoring,omitempty"`
	Curve   CurveConfig   `yaml:"curve,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`

	// File is the config file that was loaded, empty when running on defaults.
	File string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	w := ranking.DefaultWeights()
	return &ProjectConfig{
		Paths: PathsConfig{
			Ratings: DefaultRatingsPath,
			Curve:   DefaultCurvePath,
			Output:  DefaultOutputPath,
		},
		Scoring: ScoringConfig{
			GolfQualityWeight:   utils.Ptr(w.GolfQuality),
			CompositeGolfWeight: utils.Ptr(w.Composite),
		},
		Curve: CurveConfig{
			Policy: DefaultCurvePolicy,
		},
		Output: OutputConfig{
			Precision: utils.Ptr(DefaultPrecision),
			Top:       DefaultTop,
		},
	}
}

// Load finds .golfrank.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults. Relative paths
// resolve against the directory holding the file, or startDir when no file
// is found. If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := New()
			cfg.resolvePaths(startDir)
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path. Unlike Load, a missing file is an
// error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := New()
	mergeConfig(cfg, &fileCfg)
	cfg.File = path
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// FindConfigFile walks up from dir looking for .golfrank.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Real I/O
// errors (e.g. permission denied) are propagated.
func FindConfigFile(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxSearchDepth; i++ {
		p := filepath.Join(dir, FileName)
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadDotEnv loads a .env file from dir into the process environment.
// Variables already set take precedence. A missing file is not an error.
func LoadDotEnv(dir string) error {
	p := filepath.Join(dir, ".env")
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %q: %w", p, err)
	}
	if err := godotenv.Load(p); err != nil {
		return fmt.Errorf("loading %q: %w", p, err)
	}
	return nil
}

// ApplyEnv overlays the GOLFRANK_* variables found by lookup. Paths taken
// from the environment are used as given.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) {
	overlay := ProjectConfig{}
	if v, ok := lookup(EnvRatings); ok {
		overlay.Paths.Ratings = v
	}
	if v, ok := lookup(EnvCurve); ok {
		overlay.Paths.Curve = v
	}
	if v, ok := lookup(EnvOutput); ok {
		overlay.Paths.Output = v
	}
	if v, ok := lookup(EnvCurvePolicy); ok {
		overlay.Curve.Policy = v
	}
	mergeConfig(c, &overlay)
}

// ApplyOverrides applies dotted key=value pairs such as
// "scoring.golf_quality_weight=0.6", decoding values with the same keys and
// types as the config file.
func (c *ProjectConfig) ApplyOverrides(sets []string) error {
	if len(sets) == 0 {
		return nil
	}

	tree := map[string]any{}
	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid override %q: expected key=value", set)
		}

		node := tree
		parts := strings.Split(key, ".")
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = strings.TrimSpace(value)
	}

	var overlay ProjectConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &overlay,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(tree); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}

	mergeConfig(c, &overlay)
	return nil
}

// Weights returns the configured blend weights.
func (c *ProjectConfig) Weights() ranking.Weights {
	w := ranking.DefaultWeights()
	if c.Scoring.GolfQualityWeight != nil {
		w.GolfQuality = *c.Scoring.GolfQualityWeight
	}
	if c.Scoring.CompositeGolfWeight != nil {
		w.Composite = *c.Scoring.CompositeGolfWeight
	}
	return w
}

// RankingOptions returns the pipeline options described by the config. The
// policy is normalized when it parses and passed through as-is otherwise, so
// that the pipeline reports it.
func (c *ProjectConfig) RankingOptions() ranking.Options {
	policy := ranking.Policy(c.Curve.Policy)
	if p, err := ranking.ParsePolicy(c.Curve.Policy); err == nil {
		policy = p
	}
	return ranking.Options{
		Weights: c.Weights(),
		Policy:  policy,
	}
}

// Precision returns the number of decimals used for written scores.
func (c *ProjectConfig) Precision() int {
	if c.Output.Precision == nil {
		return DefaultPrecision
	}
	return *c.Output.Precision
}

// Validate reports settings that would make a run fail.
func (c *ProjectConfig) Validate() error {
	var errs []error
	if err := c.Weights().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ranking.ParsePolicy(c.Curve.Policy); err != nil {
		errs = append(errs, err)
	}
	if p := c.Precision(); p < 0 || p > 12 {
		errs = append(errs, fmt.Errorf("output.precision %d must be between 0 and 12", p))
	}
	if c.Output.Top < 0 {
		errs = append(errs, fmt.Errorf("output.top %d must not be negative", c.Output.Top))
	}
	for name, p := range map[string]string{"ratings": c.Paths.Ratings, "curve": c.Paths.Curve} {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("paths.%s is required", name))
		}
	}
	return errors.Join(errs...)
}

// StdoutPath as paths.output writes results to standard output.
const StdoutPath = "-"

func (c *ProjectConfig) resolvePaths(baseDir string) {
	resolved := utils.ResolvePaths([]string{c.Paths.Ratings, c.Paths.Curve}, baseDir)
	c.Paths.Ratings, c.Paths.Curve = resolved[0], resolved[1]
	if c.Paths.Output != StdoutPath {
		c.Paths.Output = utils.ResolvePath(c.Paths.Output, baseDir)
	}
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Ratings != "" {
		dst.Paths.Ratings = src.Paths.Ratings
	}
	if src.Paths.Curve != "" {
		dst.Paths.Curve = src.Paths.Curve
	}
	if src.Paths.Output != "" {
		dst.Paths.Output = src.Paths.Output
	}

	// Scoring
	if src.Scoring.GolfQualityWeight != nil {
		dst.Scoring.GolfQualityWeight = src.Scoring.GolfQualityWeight
	}
	if src.Scoring.CompositeGolfWeight != nil {
		dst.Scoring.CompositeGolfWeight = src.Scoring.CompositeGolfWeight
	}

	// Curve
	if src.Curve.Policy != "" {
		dst.Curve.Policy = src.Curve.Policy
	}

	// Output
	if src.Output.Precision != nil {
		dst.Output.Precision = src.Output.Precision
	}
	if src.Output.Top != 0 {
		dst.Output.Top = src.Output.Top
	}
}
