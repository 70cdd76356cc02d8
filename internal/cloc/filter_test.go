package cloc

import "testing"

func TestPathFilter_Keep(t *testing.T) {
	tests := []struct {
		name     string
		filter   PathFilter
		path     string
		expected bool
	}{
		{name: "Zero filter keeps all", filter: PathFilter{}, path: "src/main.go", expected: true},
		{name: "Include match", filter: PathFilter{Include: []string{"src/**"}}, path: "src/a/b.go", expected: true},
		{name: "Include miss", filter: PathFilter{Include: []string{"src/**"}}, path: "docs/readme.md", expected: false},
		{name: "Exclude match", filter: PathFilter{Exclude: []string{"**/*_test.go"}}, path: "pkg/x_test.go", expected: false},
		{name: "Exclude wins over include", filter: PathFilter{Include: []string{"**/*.go"}, Exclude: []string{"gen/**"}}, path: "gen/a.go", expected: false},
		{name: "Backslashes normalized", filter: PathFilter{Exclude: []string{"vendor/**"}}, path: "vendor\\lib\\a.go", expected: false},
		{name: "Vendored skipped", filter: PathFilter{SkipVendored: true}, path: "vendor/github.com/x/y.go", expected: false},
		{name: "node_modules skipped", filter: PathFilter{SkipVendored: true}, path: "web/node_modules/lib/index.js", expected: false},
		{name: "Third party skipped", filter: PathFilter{SkipVendored: true}, path: "third_party/lib/a.c", expected: false},
		{name: "Regular file with vendor skip", filter: PathFilter{SkipVendored: true}, path: "cmd/main.go", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Keep(tt.path); got != tt.expected {
				t.Errorf("Keep(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestPathFilter_Validate(t *testing.T) {
	if err := (PathFilter{Include: []string{"src/**/*.go"}, Exclude: []string{"{a,b}/*"}}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (PathFilter{Exclude: []string{"src/[a-"}}).Validate(); err == nil {
		t.Error("Validate() expected error for unterminated class")
	}
}

func TestPathFilter_IsZero(t *testing.T) {
	if !(PathFilter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (PathFilter{SkipVendored: true}).IsZero() {
		t.Error("vendored skip should not be zero")
	}
}
