package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/BarthPaleologue/cloc-graph/config"
	"github.com/BarthPaleologue/cloc-graph/internal/apperr"
	"github.com/BarthPaleologue/cloc-graph/internal/cache"
	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
	"github.com/BarthPaleologue/cloc-graph/internal/git"
	"github.com/BarthPaleologue/cloc-graph/internal/logging"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across the run commands.
type CommandContext struct {
	Config  *config.Config
	Options pipeline.Options
	Logger  *slog.Logger
	Commits []git.Commit
}

// NewCommandContext loads the configuration, applies flag overrides,
// validates the result and reads the repository history.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	color.NoColor = color.NoColor || cfg.Log.NoColor
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger := logging.New(logging.Options{Level: level, NoColor: cfg.Log.NoColor})
	if cfg.Source != "" {
		logger.Debug("loaded configuration", "file", cfg.Source)
	}

	opts, err := cfg.PipelineOptions()
	if err != nil {
		return nil, apperr.New(apperr.InvalidArguments, err)
	}

	commits, err := readHistory(c.Context, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("read history", "commits", len(commits), "path", cfg.Repository.Path)

	return &CommandContext{
		Config:  cfg,
		Options: opts,
		Logger:  logger,
		Commits: commits,
	}, nil
}

// loadConfig loads the configuration file and applies the flags the user
// set explicitly on top of it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, apperr.New(apperr.InvalidArguments, fmt.Errorf("failed to load config: %w", err))
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, apperr.New(apperr.InvalidArguments, err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(c *cli.Context, cfg *config.Config) {
	setString := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	setInt := func(name string, dst *int) {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}
	setBool := func(name string, dst *bool) {
		if c.IsSet(name) {
			*dst = c.Bool(name)
		}
	}
	setList := func(name string, dst *[]string) {
		if c.IsSet(name) {
			*dst = splitList(c.StringSlice(name))
		}
	}

	setString("path", &cfg.Repository.Path)
	setString("branch", &cfg.Repository.Branch)
	setString("backend", &cfg.Repository.Backend)

	setString("granularity", &cfg.Sampling.Granularity)
	setInt("step", &cfg.Sampling.Step)
	setInt("max-samples", &cfg.Sampling.MaxSamples)
	setBool("smart-sampling", &cfg.Sampling.SmartSampling)

	setString("from", &cfg.Range.From)
	setString("to", &cfg.Range.To)

	setInt("top", &cfg.Languages.Top)
	setList("include", &cfg.Languages.Include)
	setList("exclude", &cfg.Languages.Exclude)

	setString("scanner", &cfg.Scanner.Kind)
	setString("cloc-binary", &cfg.Scanner.ClocBinary)
	setList("path-include", &cfg.Scanner.PathInclude)
	setList("path-exclude", &cfg.Scanner.PathExclude)
	setBool("skip-vendored", &cfg.Scanner.SkipVendored)
	setString("cache", &cfg.Scanner.Cache)

	setString("format", &cfg.Output.Format)
	setString("output", &cfg.Output.Path)
	setString("chart", &cfg.Output.Chart)
	setBool("no-chart", &cfg.Output.NoChart)
	setBool("write-empty", &cfg.Output.WriteEmpty)

	setString("log-level", &cfg.Log.Level)
	setBool("no-color", &cfg.Log.NoColor)
	setBool("no-progress", &cfg.Log.NoProgress)
}

// splitList accepts both repeated flags and comma separated values and
// drops empty entries.
func splitList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func readHistory(ctx context.Context, cfg *config.Config) ([]git.Commit, error) {
	backend, _ := git.ParseBackend(cfg.Repository.Backend)
	source, err := git.NewHistorySource(git.ReadOptions{
		RepoPath: cfg.Repository.Path,
		Branch:   cfg.Repository.Branch,
		Backend:  backend,
	})
	if err != nil {
		return nil, apperr.New(apperr.Repository, fmt.Errorf("failed to open repository: %w", err))
	}

	commits, err := source.ReadCommits(ctx)
	if err != nil {
		return nil, apperr.New(apperr.Repository, fmt.Errorf("failed to read history: %w", err))
	}
	return commits, nil
}

// Scanner builds the line counter selected by the configuration, wrapped
// in the cache when one is configured. The returned cleanup closes the
// cache and must always be called.
func (ctx *CommandContext) Scanner() (cloc.Scanner, func(), error) {
	cfg := ctx.Config
	kind, _ := cloc.ParseKind(cfg.Scanner.Kind)
	filter := cfg.PathFilter()
	noop := func() {}

	var scanner cloc.Scanner
	switch kind {
	case cloc.KindCLI:
		cliScanner := cloc.NewCLIScanner(cfg.Repository.Path, cfg.Scanner.ClocBinary, ctx.Logger)
		if err := cliScanner.CheckAvailable(); err != nil {
			if cfg.Scanner.ClocBinary != cloc.DefaultBinary {
				return nil, noop, apperr.New(apperr.Cloc, err)
			}
			ctx.Logger.Warn("cloc is not installed, counting lines with the builtin scanner",
				"hint", "install cloc from https://github.com/AlDanial/cloc")
			kind = cloc.KindGocloc
			break
		}
		if !filter.IsZero() {
			ctx.Logger.Warn("path filters only apply to the gocloc scanner and are ignored")
			filter = cloc.PathFilter{}
		}
		scanner = cliScanner
	}
	if kind == cloc.KindGocloc {
		treeScanner, err := cloc.NewTreeScanner(cfg.Repository.Path, filter)
		if err != nil {
			if errors.Is(err, git.ErrNotRepository) {
				return nil, noop, apperr.New(apperr.Repository, err)
			}
			return nil, noop, apperr.New(apperr.Cloc, err)
		}
		scanner = treeScanner
	}

	if cfg.Scanner.Cache == "" {
		return scanner, noop, nil
	}
	store, err := cache.Open(cfg.Scanner.Cache)
	if err != nil {
		return nil, noop, apperr.New(apperr.FileSystem, fmt.Errorf("failed to open cache: %w", err))
	}
	cached := cache.NewCachingScanner(scanner, store, cache.Scope(kind, filter), ctx.Logger)
	cleanup := func() {
		ctx.Logger.Debug("cache usage", "hits", cached.Hits(), "misses", cached.Misses(), "file", store.Path())
		if err := store.Close(); err != nil {
			ctx.Logger.Warn("failed to close cache", "error", err)
		}
	}
	return cached, cleanup, nil
}
