// Package period maps commits onto reporting periods and enforces
// first-wins deduplication within a run.
package period

import (
	"fmt"
	"strings"
)

// Granularity is the time resolution at which commits are grouped.
type Granularity string

const (
	Commit  Granularity = "commits"
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Granularities lists the accepted granularity values in display order.
func Granularities() []Granularity {
	return []Granularity{Commit, Daily, Weekly, Monthly}
}

// ParseGranularity parses a granularity name. "commit" is accepted as an
// alias of "commits".
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "commits", "commit":
		return Commit, nil
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		names := make([]string, 0, 4)
		for _, g := range Granularities() {
			names = append(names, string(g))
		}
		return "", fmt.Errorf("--granularity must be one of: %s (got %q)", strings.Join(names, ", "), s)
	}
}
