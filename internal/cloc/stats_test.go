package cloc

import (
	"reflect"
	"testing"
)

const sampleOutput = `{
  "header": {"cloc_url": "github.com/AlDanial/cloc", "cloc_version": "2.02", "n_files": 3, "n_lines": 120},
  "Go": {"nFiles": 2, "blank": 10, "comment": 5, "code": 80},
  "Markdown": {"nFiles": 1, "blank": 4, "comment": 0, "code": 21},
  "SUM": {"blank": 14, "comment": 5, "code": 101, "nFiles": 3}
}`

func TestDecodeJSON(t *testing.T) {
	result, ignored, err := DecodeJSON([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}

	expected := Result{
		"Go":       {Files: 2, Blank: 10, Comment: 5, Code: 80},
		"Markdown": {Files: 1, Blank: 4, Comment: 0, Code: 21},
		SumKey:     {Files: 3, Blank: 14, Comment: 5, Code: 101},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("result = %#v, expected %#v", result, expected)
	}
	if !reflect.DeepEqual(ignored, []string{"header"}) {
		t.Errorf("ignored = %v, expected [header]", ignored)
	}
}

func TestDecodeJSON_RejectsMalformedEntries(t *testing.T) {
	input := `{
  "Go": {"code": 10},
  "NoCode": {"blank": 3},
  "Negative": {"code": -1},
  "Fraction": {"code": 1.5},
  "Text": {"code": "lots"},
  "Scalar": 42,
  "List": [1, 2],
  "BadBlank": {"code": 7, "blank": "x"}
}`
	result, ignored, err := DecodeJSON([]byte(input))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}

	expected := Result{
		"Go":       {Code: 10},
		"BadBlank": {Code: 7},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("result = %#v, expected %#v", result, expected)
	}
	expectedIgnored := []string{"Fraction", "List", "Negative", "NoCode", "Scalar", "Text"}
	if !reflect.DeepEqual(ignored, expectedIgnored) {
		t.Errorf("ignored = %v, expected %v", ignored, expectedIgnored)
	}
}

func TestDecodeJSON_InvalidDocument(t *testing.T) {
	tests := []string{"", "not json", "[1,2,3]", `{"Go": `}
	for _, input := range tests {
		if _, _, err := DecodeJSON([]byte(input)); err == nil {
			t.Errorf("DecodeJSON(%q) expected error", input)
		}
	}
}

func TestResult_LanguagesAndSum(t *testing.T) {
	r := Result{
		"Python": {Files: 1, Code: 5, Blank: 1},
		"Go":     {Files: 2, Code: 10, Comment: 3},
		SumKey:   {Files: 99, Code: 999},
	}

	if got := r.Languages(); !reflect.DeepEqual(got, []string{"Go", "Python"}) {
		t.Errorf("Languages() = %v", got)
	}

	sum := r.Sum()
	expected := LanguageStats{Files: 3, Blank: 1, Comment: 3, Code: 15}
	if sum != expected {
		t.Errorf("Sum() = %+v, expected %+v", sum, expected)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{input: "", expected: KindCLI},
		{input: "cloc", expected: KindCLI},
		{input: "gocloc", expected: KindGocloc},
		{input: "builtin", expected: KindGocloc},
		{input: "tokei", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseKind(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
