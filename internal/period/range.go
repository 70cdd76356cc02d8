package period

import (
	"fmt"
	"time"
)

// Range is an inclusive date range on YYYY-MM-DD labels. Empty bounds are open.
type Range struct {
	From string
	To   string
}

// NewRange validates both bounds and returns the range.
func NewRange(from, to string) (Range, error) {
	for _, v := range []struct{ name, value string }{{"--from", from}, {"--to", to}} {
		if v.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, v.value); err != nil {
			return Range{}, fmt.Errorf("invalid %s date: %s (expected YYYY-MM-DD)", v.name, v.value)
		}
	}
	if from != "" && to != "" && from > to {
		return Range{}, fmt.Errorf("--from %s is after --to %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.From == "" && r.To == ""
}

// Contains reports whether the date label lies within the range.
// YYYY-MM-DD labels order lexicographically like the dates they denote.
func (r Range) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// String returns a human-readable form of the range.
func (r Range) String() string {
	switch {
	case r.IsZero():
		return "all time"
	case r.From == "":
		return "until " + r.To
	case r.To == "":
		return "since " + r.From
	default:
		return r.From + " to " + r.To
	}
}
