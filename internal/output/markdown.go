package output

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// MarkdownWriter writes LOC reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the report as Markdown.
func (w *MarkdownWriter) Write(report *LOCReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Lines of Code Over Time by Language")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Granularity:** %s\n\n", report.Granularity)
	if !report.Range.IsZero() {
		fmt.Fprintf(out, "**Period:** %s\n\n", report.Range)
	}
	fmt.Fprintf(out, "**Rows:** %d\n\n", len(report.Records))

	if len(report.Records) == 0 {
		fmt.Fprintln(out, "_No commits matched the selection._")
		return nil
	}

	headers := make([]string, 0, len(report.Languages)+1)
	headers = append(headers, "Date")
	for _, lang := range report.Languages {
		headers = append(headers, escapeMarkdown(lang))
	}
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	for i := 1; i < len(seps); i++ {
		seps[i] = "---:"
	}

	fmt.Fprintln(out, "## Time Series")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(out, "| %s |\n", strings.Join(seps, " | "))
	for _, rec := range report.Records {
		cells := make([]string, 0, len(headers))
		cells = append(cells, rec.Period)
		for _, n := range report.Row(rec) {
			cells = append(cells, humanize.Comma(int64(n)))
		}
		fmt.Fprintf(out, "| %s |\n", strings.Join(cells, " | "))
	}

	if len(report.Languages) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "## Languages")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "| # | Language | Latest | Peak |")
		fmt.Fprintln(out, "|---|----------|-------:|-----:|")
		latest, _ := report.Latest()
		for i, lang := range report.Languages {
			fmt.Fprintf(out, "| %d | %s | %s | %s |\n",
				i+1, escapeMarkdown(lang),
				humanize.Comma(int64(latest.Get(lang))),
				humanize.Comma(int64(report.Peak(lang))))
		}
	}

	return nil
}
