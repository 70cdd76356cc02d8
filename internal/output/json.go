package output

import (
	"encoding/json"
	"fmt"
)

// JSONWriter writes LOC reports as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure.
type JSONReport struct {
	RepoPath    string         `json:"repo"`
	Granularity string         `json:"granularity"`
	From        string         `json:"from,omitempty"`
	To          string         `json:"to,omitempty"`
	GeneratedAt string         `json:"generatedAt"`
	Languages   []string       `json:"languages"`
	Totals      map[string]int `json:"totals"`
	Records     []JSONRecord   `json:"records"`
	Stats       JSONStats      `json:"stats"`
}

// JSONRecord is one row of the time series. Code holds every reported
// language, with 0 for languages the commit lacked.
type JSONRecord struct {
	Date   string         `json:"date"`
	Commit string         `json:"commit"`
	Code   map[string]int `json:"code"`
}

// JSONStats mirrors the run statistics.
type JSONStats struct {
	TotalCommits       int  `json:"totalCommits"`
	Selected           int  `json:"selected"`
	SkippedByStep      int  `json:"skippedByStep"`
	SkippedByRange     int  `json:"skippedByRange"`
	SkippedDuplicate   int  `json:"skippedDuplicate"`
	Scanned            int  `json:"scanned"`
	ScanFailures       int  `json:"scanFailures"`
	TimestampFallbacks int  `json:"timestampFallbacks"`
	Capped             bool `json:"capped"`
}

// Write outputs the report as JSON.
func (w *JSONWriter) Write(report *LOCReport, options OutputOptions) error {
	records := make([]JSONRecord, len(report.Records))
	for i, rec := range report.Records {
		code := make(map[string]int, len(report.Languages))
		for j, n := range report.Row(rec) {
			code[report.Languages[j]] = n
		}
		records[i] = JSONRecord{Date: rec.Period, Commit: rec.Commit, Code: code}
	}

	s := report.Stats
	output := JSONReport{
		RepoPath:    report.RepoPath,
		Granularity: string(report.Granularity),
		From:        report.Range.From,
		To:          report.Range.To,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		Languages:   report.Languages,
		Totals:      report.Totals,
		Records:     records,
		Stats: JSONStats{
			TotalCommits:       s.TotalCommits,
			Selected:           s.Selected,
			SkippedByStep:      s.SkippedByStep,
			SkippedByRange:     s.SkippedByRange,
			SkippedDuplicate:   s.SkippedDuplicate,
			Scanned:            s.Scanned,
			ScanFailures:       s.ScanFailures,
			TimestampFallbacks: s.TimestampFallbacks,
			Capped:             s.Capped,
		},
	}
	if output.Languages == nil {
		output.Languages = []string{}
	}
	if output.Totals == nil {
		output.Totals = map[string]int{}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
