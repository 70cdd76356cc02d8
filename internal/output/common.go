package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BarthPaleologue/cloc-graph/internal/aggregation"
	"github.com/BarthPaleologue/cloc-graph/internal/period"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
	"github.com/BarthPaleologue/cloc-graph/internal/ranking"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

// LOCReport holds the time series of a run and the columns to report.
type LOCReport struct {
	RepoPath    string
	Branch      string
	Granularity period.Granularity
	Range       period.Range
	GeneratedAt time.Time
	// Languages is the ordered column set. Every writer uses this order.
	Languages []string
	Records   []aggregation.Record
	// Totals holds the code lines of each reported language summed over
	// all records.
	Totals map[string]int
	Stats  pipeline.Stats
}

// NewLOCReport builds a report from a finished run and its final columns.
func NewLOCReport(repoPath string, opts pipeline.Options, result *pipeline.Result, languages []string) *LOCReport {
	totals := ranking.Totals(result.Universe, result.Records)
	reported := make(map[string]int, len(languages))
	for _, lang := range languages {
		reported[lang] = totals[lang]
	}

	return &LOCReport{
		RepoPath:    repoPath,
		Granularity: opts.Granularity,
		Range:       opts.Range,
		GeneratedAt: time.Now(),
		Languages:   languages,
		Records:     result.Records,
		Totals:      reported,
		Stats:       result.Stats,
	}
}

// Row returns the code lines of each reported language for rec, in column
// order. Languages the record lacks are 0.
func (r *LOCReport) Row(rec aggregation.Record) []int {
	row := make([]int, len(r.Languages))
	for i, lang := range r.Languages {
		row[i] = rec.Get(lang)
	}
	return row
}

// Latest returns the last record, if any.
func (r *LOCReport) Latest() (aggregation.Record, bool) {
	if len(r.Records) == 0 {
		return aggregation.Record{}, false
	}
	return r.Records[len(r.Records)-1], true
}

// Peak returns the highest code line count lang reached in any record.
func (r *LOCReport) Peak(lang string) int {
	peak := 0
	for _, rec := range r.Records {
		if n := rec.Get(lang); n > peak {
			peak = n
		}
	}
	return peak
}

// Summary is the one-line description printed after the CSV is written.
func Summary(path string, report *LOCReport) string {
	return fmt.Sprintf("Wrote %s (%d rows, top %d langs) from '%s'",
		path, len(report.Records), len(report.Languages), report.RepoPath)
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// escapeMarkdown escapes characters that break Markdown table cells.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
