package output

import (
	"encoding/json"
)

// NDJSONWriter writes one JSON object per line for CI pipelines: a summary
// line followed by one line per record.
type NDJSONWriter struct{}

// NDJSONSummary is the first line of NDJSON output.
type NDJSONSummary struct {
	Type        string         `json:"type"`
	Repo        string         `json:"repo"`
	Granularity string         `json:"granularity"`
	Rows        int            `json:"rows"`
	Languages   []string       `json:"languages"`
	Totals      map[string]int `json:"totals"`
	Failures    int            `json:"scanFailures"`
}

// NDJSONRecord is a record line of NDJSON output.
type NDJSONRecord struct {
	Type   string         `json:"type"`
	Date   string         `json:"date"`
	Commit string         `json:"commit"`
	Code   map[string]int `json:"code"`
	Total  int            `json:"total"`
}

// Write outputs the report as NDJSON.
func (w *NDJSONWriter) Write(report *LOCReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)

	languages := report.Languages
	if languages == nil {
		languages = []string{}
	}
	if err := enc.Encode(NDJSONSummary{
		Type:        "summary",
		Repo:        report.RepoPath,
		Granularity: string(report.Granularity),
		Rows:        len(report.Records),
		Languages:   languages,
		Totals:      report.Totals,
		Failures:    report.Stats.ScanFailures,
	}); err != nil {
		return err
	}

	for _, rec := range report.Records {
		code := make(map[string]int, len(report.Languages))
		total := 0
		for i, n := range report.Row(rec) {
			code[report.Languages[i]] = n
			total += n
		}
		if err := enc.Encode(NDJSONRecord{
			Type:   "record",
			Date:   rec.Period,
			Commit: rec.Commit,
			Code:   code,
			Total:  total,
		}); err != nil {
			return err
		}
	}

	return nil
}
