package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
	"github.com/BarthPaleologue/cloc-graph/internal/git"
	"github.com/BarthPaleologue/cloc-graph/internal/logging"
	"github.com/BarthPaleologue/cloc-graph/internal/output"
	"github.com/BarthPaleologue/cloc-graph/internal/period"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
	"github.com/BarthPaleologue/cloc-graph/internal/ranking"
)

// FileBaseName is the base name of the configuration files searched for.
const FileBaseName = ".cloc-graph"

// Config is the root configuration structure.
type Config struct {
	Repository RepositoryConfig `koanf:"repository" json:"repository"`
	Sampling   SamplingConfig   `koanf:"sampling" json:"sampling"`
	Range      RangeConfig      `koanf:"range" json:"range"`
	Languages  LanguagesConfig  `koanf:"languages" json:"languages"`
	Scanner    ScannerConfig    `koanf:"scanner" json:"scanner"`
	Output     OutputConfig     `koanf:"output" json:"output"`
	Log        LogConfig        `koanf:"log" json:"log"`

	// Source is the file the configuration was loaded from, if any.
	Source string `koanf:"-" json:"-"`
}

// RepositoryConfig selects the repository and how its history is read.
type RepositoryConfig struct {
	Path    string `koanf:"path" json:"path"`
	Branch  string `koanf:"branch" json:"branch"`
	Backend string `koanf:"backend" json:"backend"` // gogit or gitcli
}

// SamplingConfig controls which commits are scanned.
type SamplingConfig struct {
	Granularity   string `koanf:"granularity" json:"granularity"`
	Step          int    `koanf:"step" json:"step"`
	MaxSamples    int    `koanf:"max_samples" json:"max_samples"`
	SmartSampling bool   `koanf:"smart_sampling" json:"smart_sampling"`
}

// RangeConfig bounds the commit dates, inclusive, as YYYY-MM-DD.
type RangeConfig struct {
	From string `koanf:"from" json:"from"`
	To   string `koanf:"to" json:"to"`
}

// LanguagesConfig selects the reported languages.
type LanguagesConfig struct {
	Top     int      `koanf:"top" json:"top"` // 0 keeps every language
	Include []string `koanf:"include" json:"include"`
	Exclude []string `koanf:"exclude" json:"exclude"`
}

// ScannerConfig selects the line counter.
type ScannerConfig struct {
	Kind         string   `koanf:"kind" json:"kind"` // cloc or gocloc
	ClocBinary   string   `koanf:"cloc_binary" json:"cloc_binary"`
	PathInclude  []string `koanf:"path_include" json:"path_include"`
	PathExclude  []string `koanf:"path_exclude" json:"path_exclude"`
	SkipVendored bool     `koanf:"skip_vendored" json:"skip_vendored"`
	Cache        string   `koanf:"cache" json:"cache"` // empty disables the cache
}

// OutputConfig controls the written files.
type OutputConfig struct {
	Format     string `koanf:"format" json:"format"`
	Path       string `koanf:"path" json:"path"`
	Chart      string `koanf:"chart" json:"chart"`
	NoChart    bool   `koanf:"no_chart" json:"no_chart"`
	WriteEmpty bool   `koanf:"write_empty" json:"write_empty"`
}

// LogConfig controls console diagnostics.
type LogConfig struct {
	Level      string `koanf:"level" json:"level"`
	NoColor    bool   `koanf:"no_color" json:"no_color"`
	NoProgress bool   `koanf:"no_progress" json:"no_progress"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			Path:    ".",
			Backend: git.BackendGoGit.String(),
		},
		Sampling: SamplingConfig{
			Granularity: string(period.Commit),
			Step:        1,
			MaxSamples:  pipeline.DefaultMaxSamples,
		},
		Languages: LanguagesConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Scanner: ScannerConfig{
			Kind:        string(cloc.KindCLI),
			ClocBinary:  cloc.DefaultBinary,
			PathInclude: []string{},
			PathExclude: []string{},
		},
		Output: OutputConfig{
			Format: string(output.FormatCSV),
			Path:   output.DefaultPath(output.FormatCSV),
			Chart:  output.DefaultChartPath,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Candidates returns the configuration files searched when no path is
// given: the working directory first, then the home directory.
func Candidates() []string {
	exts := []string{".json", ".yaml", ".yml", ".toml"}
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	var candidates []string
	for _, dir := range dirs {
		for _, ext := range exts {
			candidates = append(candidates, filepath.Join(dir, FileBaseName+ext))
		}
	}
	return candidates
}

// LoadConfig loads configuration from a file, merging with defaults. With
// an empty path the first existing file of Candidates is used, and defaults
// are returned when none exists.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		for _, p := range Candidates() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return cfg, nil
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Source = path

	return cfg, nil
}

// SaveConfig saves configuration to a file. The format follows the file
// extension.
func SaveConfig(cfg *Config, path string) error {
	data, err := Marshal(cfg, filepath.Ext(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes cfg as JSON, YAML or TOML according to ext.
func Marshal(cfg *Config, ext string) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(ext) {
	case ".json", "json", "":
		return append(data, '\n'), nil
	}

	parser, err := parserFor("config" + "." + strings.TrimPrefix(strings.ToLower(ext), "."))
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return parser.Marshal(normalizeNumbers(m).(map[string]any))
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file type %q (expected .json, .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// normalizeNumbers turns integral float64 values decoded from JSON back
// into int64 so they are written as integers.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return int64(val)
		}
		return val
	default:
		return v
	}
}

// Validate checks every value that can be checked before the repository is
// opened and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.PipelineOptions(); err != nil {
		errs = append(errs, err)
	}
	if c.Languages.Top < 0 {
		errs = append(errs, fmt.Errorf("--top must be a non-negative integer (got %d)", c.Languages.Top))
	}
	if _, err := git.ParseBackend(c.Repository.Backend); err != nil {
		errs = append(errs, err)
	}
	if _, err := cloc.ParseKind(c.Scanner.Kind); err != nil {
		errs = append(errs, err)
	}
	if err := c.PathFilter().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// PipelineOptions converts the sampling and range sections.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	var errs []error

	g, err := period.ParseGranularity(c.Sampling.Granularity)
	if err != nil {
		errs = append(errs, err)
	}
	rng, err := period.NewRange(c.Range.From, c.Range.To)
	if err != nil {
		errs = append(errs, err)
	}

	opts := pipeline.Options{
		Granularity:   g,
		Step:          c.Sampling.Step,
		MaxSamples:    c.Sampling.MaxSamples,
		SmartSampling: c.Sampling.SmartSampling,
		Range:         rng,
	}
	if g != "" {
		if err := opts.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return opts, errors.Join(errs...)
}

// RankingOptions converts the languages section.
func (c *Config) RankingOptions() ranking.Options {
	return ranking.Options{
		Top:     c.Languages.Top,
		Include: c.Languages.Include,
		Exclude: c.Languages.Exclude,
	}
}

// PathFilter converts the scanner path filters.
func (c *Config) PathFilter() cloc.PathFilter {
	return cloc.PathFilter{
		Include:      c.Scanner.PathInclude,
		Exclude:      c.Scanner.PathExclude,
		SkipVendored: c.Scanner.SkipVendored,
	}
}
