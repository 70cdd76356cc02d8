package output

import (
	"fmt"
	"strconv"
	"strings"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*CSVWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*NDJSONWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatNDJSON   OutputFormat = "ndjson"
)

// Formats lists the supported formats.
func Formats() []OutputFormat {
	return []OutputFormat{FormatCSV, FormatJSON, FormatMarkdown, FormatConsole, FormatNDJSON}
}

// ParseFormat parses a format name. "md" is accepted for markdown.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "console", "table":
		return FormatConsole, nil
	case "ndjson", "ci":
		return FormatNDJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected csv, json, markdown, console or ndjson)", s)
	}
}

// DefaultPath returns the default output file for a format. Console output
// goes to stdout.
func DefaultPath(format OutputFormat) string {
	switch format {
	case FormatJSON:
		return "loc_over_time_by_lang.json"
	case FormatMarkdown:
		return "loc_over_time_by_lang.md"
	case FormatNDJSON:
		return "loc_over_time_by_lang.ndjson"
	case FormatConsole:
		return ""
	default:
		return "loc_over_time_by_lang.csv"
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// ReportWriter writes LOC reports.
type ReportWriter interface {
	Write(report *LOCReport, options OutputOptions) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	case FormatConsole:
		return &ConsoleWriter{}
	case FormatNDJSON:
		return &NDJSONWriter{}
	default:
		return &CSVWriter{}
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
