package output

import (
	"reflect"
	"testing"

	"github.com/BarthPaleologue/cloc-graph/internal/aggregation"
	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
	"github.com/BarthPaleologue/cloc-graph/internal/period"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
)

func TestLOCReport_Row(t *testing.T) {
	report := sampleReport()

	tests := []struct {
		index    int
		expected []int
	}{
		{index: 0, expected: []int{1200, 0}},
		{index: 1, expected: []int{1500, 40}},
		{index: 2, expected: []int{0, 0}},
	}
	for _, tt := range tests {
		if got := report.Row(report.Records[tt.index]); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Row(%d) = %v, expected %v", tt.index, got, tt.expected)
		}
	}
}

func TestLOCReport_PeakAndLatest(t *testing.T) {
	report := sampleReport()

	if got := report.Peak("Go"); got != 1500 {
		t.Errorf("Peak(Go) = %d, expected 1500", got)
	}
	if got := report.Peak("Rust"); got != 0 {
		t.Errorf("Peak(Rust) = %d, expected 0", got)
	}
	latest, ok := report.Latest()
	if !ok || latest.Commit != "ccc" {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
	if _, ok := emptyReport().Latest(); ok {
		t.Error("Latest() on an empty report should report false")
	}
}

func TestNewLOCReport(t *testing.T) {
	agg := aggregation.NewAggregator()
	agg.Fold(cloc.Result{"Go": {Code: 10}, "C": {Code: 5}}, "2025-01-01", "a")
	agg.Fold(cloc.Result{"Go": {Code: 20}}, "2025-01-02", "b")
	result := &pipeline.Result{Records: agg.Records(), Universe: agg.Universe(), Stats: pipeline.Stats{Scanned: 2}}

	opts := pipeline.DefaultOptions()
	opts.Granularity = period.Daily
	report := NewLOCReport("/repo", opts, result, []string{"Go"})

	if report.Granularity != period.Daily || report.RepoPath != "/repo" {
		t.Errorf("report = %+v", report)
	}
	if !reflect.DeepEqual(report.Totals, map[string]int{"Go": 30}) {
		t.Errorf("Totals = %v, expected only reported languages", report.Totals)
	}
	if report.Stats.Scanned != 2 {
		t.Errorf("Stats = %+v", report.Stats)
	}
}

func TestSummary(t *testing.T) {
	got := Summary("loc_over_time_by_lang.csv", sampleReport())
	expected := "Wrote loc_over_time_by_lang.csv (3 rows, top 2 langs) from '/repo'"
	if got != expected {
		t.Errorf("Summary() = %q, expected %q", got, expected)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Pipe", input: "a|b", expected: "a\\|b"},
		{name: "Asterisk", input: "C*", expected: "C\\*"},
		{name: "Underscore", input: "Visual_Basic", expected: "Visual\\_Basic"},
		{name: "No specials", input: "C++", expected: "C++"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.input); got != tt.expected {
				t.Errorf("escapeMarkdown(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
