package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/BarthPaleologue/cloc-graph/internal/git"
	"github.com/BarthPaleologue/cloc-graph/internal/pipeline"
)

func TestWritePlan(t *testing.T) {
	when := time.Date(2025, 5, 23, 12, 0, 0, 0, time.UTC)
	report := &PlanReport{
		RepoPath: "/repo",
		Options:  pipeline.DefaultOptions(),
		Planned: []pipeline.Planned{
			{
				Candidate: pipeline.Candidate{Ordinal: 4, Commit: git.Commit{
					Hash:    "0123456789abcdef",
					When:    when,
					Author:  git.AuthorInfo{Name: "Ada"},
					Message: "Add parser\n\nLonger body",
				}},
				Key:  "2025-05-23",
				Date: "2025-05-23",
				When: when,
			},
		},
		Stats: pipeline.Stats{TotalCommits: 7, SkippedDuplicate: 6, Capped: true},
	}

	var buf bytes.Buffer
	if err := WritePlan(&buf, report); err != nil {
		t.Fatalf("WritePlan() error = %v", err)
	}
	got := buf.String()

	for _, want := range []string{"01234567", "2025-05-23", "Ada", "Add parser", "1 of 7 commits", "same period: 6 skipped", "limit of 100 samples"} {
		if !strings.Contains(got, want) {
			t.Errorf("plan output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Longer body") {
		t.Errorf("only the subject line should be printed:\n%s", got)
	}
}

func TestWritePlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlan(&buf, &PlanReport{RepoPath: "/repo", Options: pipeline.DefaultOptions()}); err != nil {
		t.Fatalf("WritePlan() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No commits matched") {
		t.Errorf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.expected)
		}
	}
}
