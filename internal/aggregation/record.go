// Package aggregation folds per-commit line counts into report records and
// tracks the set of languages observed during a run.
package aggregation

import (
	"sort"

	set "github.com/hashicorp/go-set/v2"
)

// Record is one report row: the lines of code per language of the commit
// that won its period.
type Record struct {
	Period string
	Commit string
	Code   map[string]int
}

// Get returns the code lines of lang, or 0 when the record has none.
func (r Record) Get(lang string) int {
	return r.Code[lang]
}

// Total returns the code lines summed over every language in the record.
func (r Record) Total() int {
	total := 0
	for _, n := range r.Code {
		total += n
	}
	return total
}

// Universe is the set of language names observed during a run.
type Universe struct {
	langs *set.Set[string]
}

// NewUniverse creates an empty universe.
func NewUniverse() *Universe {
	return &Universe{langs: set.New[string](16)}
}

// Add inserts lang. Adding a known language is a no-op.
func (u *Universe) Add(lang string) {
	u.langs.Insert(lang)
}

// Contains reports whether lang was observed.
func (u *Universe) Contains(lang string) bool {
	return u.langs.Contains(lang)
}

// Len returns the number of observed languages.
func (u *Universe) Len() int {
	return u.langs.Size()
}

// Sorted returns the observed languages in lexicographic order.
func (u *Universe) Sorted() []string {
	names := u.langs.Slice()
	sort.Strings(names)
	return names
}
