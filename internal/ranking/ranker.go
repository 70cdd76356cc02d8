// Package ranking derives the final, ordered language columns of a report.
package ranking

import (
	"sort"

	set "github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/BarthPaleologue/cloc-graph/internal/aggregation"
)

// Options controls truncation and filtering of the language set.
type Options struct {
	// Top keeps the Top highest-ranked languages. 0 keeps all of them.
	Top     int
	Include []string
	Exclude []string
}

// Ranked is a language together with its total over all records.
type Ranked struct {
	Language string
	Total    int
}

// Totals sums the code lines of every universe language over records.
// Languages a record lacks count as zero.
func Totals(universe *aggregation.Universe, records []aggregation.Record) map[string]int {
	totals := make(map[string]int, universe.Len())
	for _, lang := range universe.Sorted() {
		totals[lang] = lo.SumBy(records, func(r aggregation.Record) int {
			return r.Get(lang)
		})
	}
	return totals
}

// Rank orders languages by total descending. Equal totals are ordered by
// name so the ranking is deterministic.
func Rank(totals map[string]int) []Ranked {
	ranked := lo.MapToSlice(totals, func(lang string, total int) Ranked {
		return Ranked{Language: lang, Total: total}
	})
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Language < ranked[j].Language
	})
	return ranked
}

// Finalize returns the report's language columns.
//
// With Top > 0 the Top highest-ranked languages are kept in ranked order.
// With Top == 0 every language is kept, sorted by name, so the two modes
// order columns differently. Exclude is applied next, then Include; a
// language removed by Exclude is never restored by Include.
func Finalize(universe *aggregation.Universe, records []aggregation.Record, opts Options) []string {
	var langs []string
	if opts.Top > 0 {
		ranked := Rank(Totals(universe, records))
		if len(ranked) > opts.Top {
			ranked = ranked[:opts.Top]
		}
		langs = lo.Map(ranked, func(r Ranked, _ int) string { return r.Language })
	} else {
		langs = universe.Sorted()
	}

	if len(opts.Exclude) > 0 {
		exclude := set.From(opts.Exclude)
		langs = lo.Reject(langs, func(lang string, _ int) bool { return exclude.Contains(lang) })
	}
	if len(opts.Include) > 0 {
		include := set.From(opts.Include)
		langs = lo.Filter(langs, func(lang string, _ int) bool { return include.Contains(lang) })
	}

	if langs == nil {
		langs = []string{}
	}
	return langs
}
