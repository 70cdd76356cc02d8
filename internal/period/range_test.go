package period

import "testing"

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		date     string
		expected bool
	}{
		{name: "Open range", r: Range{}, date: "2025-01-01", expected: true},
		{name: "Lower bound inclusive", r: Range{From: "2025-01-01"}, date: "2025-01-01", expected: true},
		{name: "Before lower bound", r: Range{From: "2025-01-01"}, date: "2024-12-31", expected: false},
		{name: "Upper bound inclusive", r: Range{To: "2025-01-31"}, date: "2025-01-31", expected: true},
		{name: "After upper bound", r: Range{To: "2025-01-31"}, date: "2025-02-01", expected: false},
		{name: "Inside closed range", r: Range{From: "2025-01-01", To: "2025-01-31"}, date: "2025-01-15", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.date); got != tt.expected {
				t.Errorf("Contains(%q) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestNewRange(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{name: "Empty", from: "", to: ""},
		{name: "Valid", from: "2025-01-01", to: "2025-02-01"},
		{name: "Same day", from: "2025-01-01", to: "2025-01-01"},
		{name: "Bad from", from: "2025/01/01", wantErr: true},
		{name: "Bad to", to: "yesterday", wantErr: true},
		{name: "Inverted", from: "2025-02-01", to: "2025-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRange(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRange(%q, %q) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestRange_String(t *testing.T) {
	if got := (Range{}).String(); got != "all time" {
		t.Errorf("String() = %q", got)
	}
	if got := (Range{From: "2025-01-01", To: "2025-02-01"}).String(); got != "2025-01-01 to 2025-02-01" {
		t.Errorf("String() = %q", got)
	}
}
