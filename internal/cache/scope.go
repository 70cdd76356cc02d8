package cache

import (
	"strings"

	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
)

// Scope builds the cache scope for a scanner configuration. Results from
// different scanners or path filters never share entries.
func Scope(kind cloc.Kind, filter cloc.PathFilter) string {
	var b strings.Builder
	b.WriteString(string(kind))
	if len(filter.Include) > 0 {
		b.WriteString("|include=")
		b.WriteString(strings.Join(filter.Include, ","))
	}
	if len(filter.Exclude) > 0 {
		b.WriteString("|exclude=")
		b.WriteString(strings.Join(filter.Exclude, ","))
	}
	if filter.SkipVendored {
		b.WriteString("|skip-vendored")
	}
	return b.String()
}
