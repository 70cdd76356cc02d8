package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/BarthPaleologue/cloc-graph/internal/apperr"
	"github.com/BarthPaleologue/cloc-graph/internal/output"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
)

// PlanCmd returns the plan command.
func PlanCmd() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "List the commits a run would count, without counting anything",
		Flags: runFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return apperr.Errorf(apperr.InvalidArguments,
					"unexpected argument %q (use --path to select the repository)", c.Args().First())
			}

			cc, err := NewCommandContext(c)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(nil, cc.Logger, nil)
			planned, stats := runner.Plan(cc.Commits, cc.Options)

			return output.WritePlan(c.App.Writer, &output.PlanReport{
				RepoPath: cc.Config.Repository.Path,
				Options:  cc.Options,
				Planned:  planned,
				Stats:    stats,
			})
		},
	}
}
