package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
)

const maxSubjectWidth = 60

// PlanReport lists the commits a run would scan.
type PlanReport struct {
	RepoPath string
	Options  pipeline.Options
	Planned  []pipeline.Planned
	Stats    pipeline.Stats
}

// WritePlan prints the plan as a table followed by the selection counters.
func WritePlan(out io.Writer, report *PlanReport) error {
	color.New(color.FgGreen).Fprintln(out, "Scan Plan")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Granularity: %s\n", report.Options.Granularity)
	fmt.Fprintf(out, "Period: %s\n\n", report.Options.Range)

	if len(report.Planned) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No commits matched the selection.")
		return nil
	}

	table := tablewriter.NewTable(out,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header([]string{"#", "Commit", "Date", "Period", "Author", "Subject"})
	for _, p := range report.Planned {
		if err := table.Append([]string{
			itoa(p.Ordinal + 1),
			p.Commit.ShortHash(),
			p.Date,
			string(p.Key),
			p.Commit.Author.Name,
			truncate(firstLine(p.Commit.Message), maxSubjectWidth),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := report.Stats
	fmt.Fprintf(out, "\n%d of %d commits would be scanned", len(report.Planned), s.TotalCommits)
	fmt.Fprintf(out, " (step: %d skipped, range: %d skipped, same period: %d skipped)\n",
		s.SkippedByStep, s.SkippedByRange, s.SkippedDuplicate)
	if s.Capped {
		color.New(color.FgYellow).Fprintf(out, "Stopped at the limit of %d samples.\n", report.Options.MaxSamples)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
