package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BarthPaleologue/cloc-graph/internal/aggregation"
	"github.com/BarthPaleologue/cloc-graph/internal/period"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
)

func sampleReport() *LOCReport {
	return &LOCReport{
		RepoPath:    "/repo",
		Granularity: period.Daily,
		GeneratedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Languages:   []string{"Go", "Python"},
		Records: []aggregation.Record{
			{Period: "2025-05-20", Commit: "aaa", Code: map[string]int{"Go": 1200}},
			{Period: "2025-05-21", Commit: "bbb", Code: map[string]int{"Go": 1500, "Python": 40, "Shell": 9}},
			{Period: "2025-05-22", Commit: "ccc", Code: map[string]int{}},
		},
		Totals: map[string]int{"Go": 2700, "Python": 40},
		Stats:  pipeline.Stats{TotalCommits: 5, Selected: 5, Scanned: 3, ScanFailures: 1, SkippedDuplicate: 2},
	}
}

func emptyReport() *LOCReport {
	return &LOCReport{
		RepoPath:    "/repo",
		Granularity: period.Weekly,
		Languages:   []string{},
		Totals:      map[string]int{},
	}
}

func writeToTemp(t *testing.T, w ReportWriter, report *LOCReport, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := w.Write(report, OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}
