package output

import "testing"

func TestNewReportWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		check  func(ReportWriter) bool
	}{
		{name: "CSV", format: FormatCSV, check: func(w ReportWriter) bool { _, ok := w.(*CSVWriter); return ok }},
		{name: "JSON", format: FormatJSON, check: func(w ReportWriter) bool { _, ok := w.(*JSONWriter); return ok }},
		{name: "Markdown", format: FormatMarkdown, check: func(w ReportWriter) bool { _, ok := w.(*MarkdownWriter); return ok }},
		{name: "Console", format: FormatConsole, check: func(w ReportWriter) bool { _, ok := w.(*ConsoleWriter); return ok }},
		{name: "NDJSON", format: FormatNDJSON, check: func(w ReportWriter) bool { _, ok := w.(*NDJSONWriter); return ok }},
		{name: "Unknown defaults to CSV", format: "unknown", check: func(w ReportWriter) bool { _, ok := w.(*CSVWriter); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewReportWriter(tt.format)
			if w == nil || !tt.check(w) {
				t.Errorf("NewReportWriter(%q) returned %T", tt.format, w)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{input: "", expected: FormatCSV},
		{input: "CSV", expected: FormatCSV},
		{input: "json", expected: FormatJSON},
		{input: "md", expected: FormatMarkdown},
		{input: "table", expected: FormatConsole},
		{input: "ci", expected: FormatNDJSON},
		{input: "png", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath(FormatCSV); got != "loc_over_time_by_lang.csv" {
		t.Errorf("DefaultPath(csv) = %q", got)
	}
	if got := DefaultPath(FormatConsole); got != "" {
		t.Errorf("DefaultPath(console) = %q, expected stdout", got)
	}
	for _, f := range Formats() {
		if f != FormatConsole && DefaultPath(f) == "" {
			t.Errorf("DefaultPath(%q) is empty", f)
		}
	}
}
