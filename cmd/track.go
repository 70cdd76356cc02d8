package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/BarthPaleologue/cloc-graph/config"
	"github.com/BarthPaleologue/cloc-graph/internal/apperr"
	"github.com/BarthPaleologue/cloc-graph/internal/output"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
	"github.com/BarthPaleologue/cloc-graph/internal/progress"
	"github.com/BarthPaleologue/cloc-graph/internal/ranking"
)

// trackAction counts lines per language over the history and writes the
// report and the chart.
func trackAction(c *cli.Context) error {
	if c.NArg() > 0 {
		return apperr.Errorf(apperr.InvalidArguments,
			"unexpected argument %q (use --path to select the repository)", c.Args().First())
	}

	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	cfg := cc.Config

	scanner, cleanup, err := cc.Scanner()
	if err != nil {
		return err
	}
	defer cleanup()

	reporter := progress.New("Counting lines", cfg.Log.NoProgress)
	runner := pipeline.NewRunner(scanner, cc.Logger, reporter)
	result, err := runner.Run(c.Context, cc.Commits, cc.Options)
	if err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}
	if result.Stats.ScanFailures > 0 {
		cc.Logger.Warn("some commits could not be counted",
			"failed", result.Stats.ScanFailures, "scanned", result.Stats.Scanned)
	}

	languages := ranking.Finalize(result.Universe, result.Records, cfg.RankingOptions())
	report := output.NewLOCReport(cfg.Repository.Path, cc.Options, result, languages)
	report.Branch = cfg.Repository.Branch

	out := c.App.Writer
	if result.Empty() {
		color.New(color.FgYellow).Fprintf(out, "No commits matched the selection (%d commits in history, period: %s).\n",
			result.Stats.TotalCommits, cc.Options.Range)
		if !cfg.Output.WriteEmpty {
			return nil
		}
	}

	format, _ := output.ParseFormat(cfg.Output.Format)
	path := resolveOutputPath(cfg, format)
	if err := writeReport(report, format, path); err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintln(out, output.Summary(path, report))
	}

	if cfg.Output.NoChart || result.Empty() {
		return nil
	}
	if err := writeChart(report, cfg.Output.Chart); err != nil {
		return err
	}
	fmt.Fprintf(out, "Chart saved to %s\n", cfg.Output.Chart)
	return nil
}

// resolveOutputPath returns the report path. When the path was left at the
// CSV default, the default of the chosen format is used instead; the console
// format then prints to stdout.
func resolveOutputPath(cfg *config.Config, format output.OutputFormat) string {
	if cfg.Output.Path == output.DefaultPath(output.FormatCSV) {
		return output.DefaultPath(format)
	}
	return cfg.Output.Path
}
