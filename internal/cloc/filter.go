package cloc

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"
)

// PathFilter decides which files of a commit tree are counted.
type PathFilter struct {
	Include      []string
	Exclude      []string
	SkipVendored bool
}

// Validate checks that every glob pattern is well formed.
func (f PathFilter) Validate() error {
	for _, p := range append(append([]string{}, f.Include...), f.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid path pattern %q", p)
		}
	}
	return nil
}

// IsZero reports whether the filter keeps every file.
func (f PathFilter) IsZero() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0 && !f.SkipVendored
}

// Keep reports whether the slash-separated path should be counted.
func (f PathFilter) Keep(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	// Exclude patterns win over include patterns.
	for _, pattern := range f.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if f.SkipVendored && (enry.IsVendor(path) || enry.IsGenerated(path, nil)) {
		return false
	}

	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
