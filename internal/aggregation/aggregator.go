package aggregation

import "github.com/BarthPaleologue/cloc-graph/internal/cloc"

// Aggregator builds records from scan results in processing order and owns
// the language universe of one run.
type Aggregator struct {
	universe *Universe
	records  []Record
}

// NewAggregator creates an aggregator with an empty universe.
func NewAggregator() *Aggregator {
	return &Aggregator{universe: NewUniverse()}
}

// Fold turns the scan result of one commit into a new record and appends it.
// The reserved cloc.SumKey entry is skipped. A nil or empty result yields a
// record with no language entries.
func (a *Aggregator) Fold(raw cloc.Result, period, hash string) Record {
	rec := Record{
		Period: period,
		Commit: hash,
		Code:   make(map[string]int, len(raw)),
	}
	for lang, stats := range raw {
		if lang == cloc.SumKey {
			continue
		}
		a.universe.Add(lang)
		rec.Code[lang] = stats.Code
	}

	a.records = append(a.records, rec)
	return rec
}

// Len returns the number of records folded so far.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Records returns the records in processing order.
func (a *Aggregator) Records() []Record {
	return a.records
}

// Universe returns the languages observed so far.
func (a *Aggregator) Universe() *Universe {
	return a.universe
}
