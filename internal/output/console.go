package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ConsoleWriter prints a per-language summary table of the report.
type ConsoleWriter struct{}

// Write outputs the report to the console.
func (w *ConsoleWriter) Write(report *LOCReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintln(out, "Lines of Code by Language")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Granularity: %s\n", report.Granularity)
	fmt.Fprintf(out, "Period: %s\n", report.Range)
	fmt.Fprintf(out, "Rows: %d (from %d commits)\n\n", len(report.Records), report.Stats.TotalCommits)

	if len(report.Records) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No commits matched the selection.")
		return nil
	}

	first := report.Records[0]
	latest, _ := report.Latest()

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

	table.Header([]string{"#", "Language", first.Period, latest.Period, "Change", "Peak"})
	for i, lang := range report.Languages {
		start, end := first.Get(lang), latest.Get(lang)
		if err := table.Append([]string{
			itoa(i + 1),
			lang,
			humanize.Comma(int64(start)),
			humanize.Comma(int64(end)),
			signedComma(end - start),
			humanize.Comma(int64(report.Peak(lang))),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if report.Stats.ScanFailures > 0 {
		color.New(color.FgYellow).Fprintf(out, "\n%d commit(s) could not be counted and contribute no data.\n", report.Stats.ScanFailures)
	}
	return nil
}

func signedComma(n int) string {
	if n > 0 {
		return "+" + humanize.Comma(int64(n))
	}
	return humanize.Comma(int64(n))
}
