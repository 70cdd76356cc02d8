// Package pipeline drives a run: it selects commits, assigns them to
// periods, keeps the first commit of each period, scans it and folds the
// counts into records, strictly in history order.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/BarthPaleologue/cloc-graph/internal/period"
)

// DefaultMaxSamples bounds the number of records of a run.
const DefaultMaxSamples = 100

// Options configures commit selection for a run.
type Options struct {
	Granularity period.Granularity
	// Step keeps every Step-th commit. Only applies to commit granularity
	// without smart sampling.
	Step int
	// MaxSamples caps the number of records and, with SmartSampling, the
	// size of the sampled commit set.
	MaxSamples    int
	SmartSampling bool
	Range         period.Range
}

// DefaultOptions returns the options of a plain run.
func DefaultOptions() Options {
	return Options{
		Granularity: period.Commit,
		Step:        1,
		MaxSamples:  DefaultMaxSamples,
	}
}

// Validate checks the numeric options and the granularity.
func (o Options) Validate() error {
	var errs []error
	if _, err := period.ParseGranularity(string(o.Granularity)); err != nil {
		errs = append(errs, err)
	}
	if o.Step < 1 {
		errs = append(errs, fmt.Errorf("--step must be a positive integer (got %d)", o.Step))
	}
	if o.MaxSamples < 1 {
		errs = append(errs, fmt.Errorf("--max-samples must be a positive integer (got %d)", o.MaxSamples))
	}
	if o.Step > 1 && o.SmartSampling {
		errs = append(errs, errors.New("--step and --smart-sampling cannot be combined"))
	}
	return errors.Join(errs...)
}

// stepApplies reports whether step filtering is active.
func (o Options) stepApplies() bool {
	return o.Granularity == period.Commit && !o.SmartSampling && o.Step > 1
}
