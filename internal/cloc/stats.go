// Package cloc counts lines of code per language for a single commit.
package cloc

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SumKey is the reserved aggregate entry that cloc emits next to the
// per-language entries. It is never treated as a language.
const SumKey = "SUM"

// LanguageStats holds the counts reported for one language.
type LanguageStats struct {
	Files   int `json:"nFiles"`
	Blank   int `json:"blank"`
	Comment int `json:"comment"`
	Code    int `json:"code"`
}

// Result maps a language name to its counts. It may contain SumKey.
type Result map[string]LanguageStats

// Languages returns the language names in the result, sorted, without SumKey.
func (r Result) Languages() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		if name == SumKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum totals the per-language entries, ignoring any SumKey entry.
func (r Result) Sum() LanguageStats {
	var total LanguageStats
	for name, s := range r {
		if name == SumKey {
			continue
		}
		total.Files += s.Files
		total.Blank += s.Blank
		total.Comment += s.Comment
		total.Code += s.Code
	}
	return total
}

// rawStats mirrors LanguageStats with pointers so that missing fields can
// be told apart from zeros.
type rawStats struct {
	Files   *json.Number `json:"nFiles"`
	Blank   *json.Number `json:"blank"`
	Comment *json.Number `json:"comment"`
	Code    *json.Number `json:"code"`
}

// DecodeJSON decodes the output of `cloc --json`. Each top-level key is
// decoded on its own; keys whose value is not an object carrying a
// non-negative integer "code" field (cloc's "header", for instance) are left
// out of the result and returned as ignored, sorted.
func DecodeJSON(data []byte) (Result, []string, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, nil, fmt.Errorf("decode cloc output: %w", err)
	}

	result := make(Result, len(top))
	var ignored []string
	for name, raw := range top {
		stats, ok := decodeStats(raw)
		if !ok {
			ignored = append(ignored, name)
			continue
		}
		result[name] = stats
	}
	sort.Strings(ignored)

	return result, ignored, nil
}

func decodeStats(raw json.RawMessage) (LanguageStats, bool) {
	var rs rawStats
	if err := json.Unmarshal(raw, &rs); err != nil {
		return LanguageStats{}, false
	}
	if rs.Code == nil {
		return LanguageStats{}, false
	}
	code, ok := count(rs.Code)
	if !ok {
		return LanguageStats{}, false
	}

	stats := LanguageStats{Code: code}
	// Optional fields that do not parse are dropped to zero.
	stats.Files, _ = count(rs.Files)
	stats.Blank, _ = count(rs.Blank)
	stats.Comment, _ = count(rs.Comment)
	return stats, true
}

func count(n *json.Number) (int, bool) {
	if n == nil {
		return 0, false
	}
	v, err := n.Int64()
	if err != nil || v < 0 {
		return 0, false
	}
	return int(v), true
}
