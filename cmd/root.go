package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/BarthPaleologue/cloc-graph/internal/apperr"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "cloc-graph",
		Usage:     "Track lines of code per language over a repository's history",
		UsageText: "cloc-graph [options]\ncloc-graph plan [options]\ncloc-graph config init|show",
		Version:   "1.0.0",
		Flags:     append(runFlags(), outputFlags()...),
		Action:    trackAction,
		Commands: []*cli.Command{
			PlanCmd(),
			ConfigCmd(),
		},
	}
}

// runFlags are the flags that select and scan commits, shared by the root
// command and plan.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (.json, .yaml, .yml or .toml)",
		},
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to walk (default: HEAD)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (gogit, gitcli)",
			Value: "gogit",
		},
		&cli.StringFlag{
			Name:    "granularity",
			Aliases: []string{"g"},
			Usage:   "Sampling granularity (commits, daily, weekly, monthly)",
			Value:   "commits",
		},
		&cli.IntFlag{
			Name:    "step",
			Aliases: []string{"s"},
			Usage:   "Keep every Nth commit (commits granularity only)",
			Value:   1,
		},
		&cli.IntFlag{
			Name:    "max-samples",
			Aliases: []string{"m"},
			Usage:   "Maximum number of data points",
			Value:   100,
		},
		&cli.BoolFlag{
			Name:  "smart-sampling",
			Usage: "Spread at most --max-samples commits evenly over the history",
		},
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   "Only include commits on or after this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:    "to",
			Aliases: []string{"u"},
			Usage:   "Only include commits on or before this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
			Value: "info",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// outputFlags configure scanning and the written files.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"t"},
			Usage:   "Only report the N languages with the most lines (0 for all)",
		},
		&cli.StringSliceFlag{
			Name:    "include",
			Aliases: []string{"i"},
			Usage:   "Languages to report (can be specified multiple times or comma separated)",
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"e"},
			Usage:   "Languages to leave out (can be specified multiple times or comma separated)",
		},
		&cli.StringFlag{
			Name:  "scanner",
			Usage: "Line counter (cloc, gocloc)",
			Value: "cloc",
		},
		&cli.StringFlag{
			Name:  "cloc-binary",
			Usage: "cloc executable to run",
			Value: "cloc",
		},
		&cli.StringSliceFlag{
			Name:  "path-include",
			Usage: "Glob patterns of files to count (gocloc scanner)",
		},
		&cli.StringSliceFlag{
			Name:  "path-exclude",
			Usage: "Glob patterns of files to skip (gocloc scanner)",
		},
		&cli.BoolFlag{
			Name:  "skip-vendored",
			Usage: "Skip vendored and generated files (gocloc scanner)",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Path of a SQLite file caching line counts per commit",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Report format (csv, json, markdown, console, ndjson)",
			Value: "csv",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report file path (default depends on --format)",
		},
		&cli.StringFlag{
			Name:  "chart",
			Usage: "HTML chart file path",
			Value: "loc_chart.html",
		},
		&cli.BoolFlag{
			Name:  "no-chart",
			Usage: "Do not write the HTML chart",
		},
		&cli.BoolFlag{
			Name:  "write-empty",
			Usage: "Write a header-only report when no commit matched",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "Disable the progress bar",
		},
	}
}

// Run executes the CLI application and returns the process exit code.
func Run(args []string) int {
	return run(App(), args)
}

func run(app *cli.App, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := app.RunContext(ctx, args)
	if err == nil {
		return 0
	}
	kind := apperr.KindOf(err)
	if kind == apperr.General && isUsageError(err) {
		kind = apperr.InvalidArguments
	}
	errWriter := app.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	color.New(color.FgRed).Fprintf(errWriter, "Error [%s]: %v\n", kind, err)
	return kind.ExitCode()
}

// isUsageError recognizes flag parsing failures, which urfave/cli reports
// as plain errors.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"flag provided but not defined", "invalid value", "flag needs an argument"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
