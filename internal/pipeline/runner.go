package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/BarthPaleologue/cloc-graph/internal/aggregation"
	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
	"github.com/BarthPaleologue/cloc-graph/internal/git"
	"github.com/BarthPaleologue/cloc-graph/internal/logging"
	"github.com/BarthPaleologue/cloc-graph/internal/period"
	"github.com/BarthPaleologue/cloc-graph/internal/progress"
	"github.com/BarthPaleologue/cloc-graph/internal/sampling"
)

// Candidate is a commit together with its position in the full history.
type Candidate struct {
	Ordinal int
	Commit  git.Commit
}

// Planned is a commit that won its period and will be scanned.
type Planned struct {
	Candidate
	Key  period.Key
	Date string
	When time.Time
}

// Result is the outcome of a run.
type Result struct {
	Records  []aggregation.Record
	Universe *aggregation.Universe
	Stats    Stats
}

// Empty reports whether the run produced no records.
func (r *Result) Empty() bool {
	return len(r.Records) == 0
}

// Runner executes runs against a scanner. A Runner holds no per-run state.
type Runner struct {
	scanner  cloc.Scanner
	logger   *slog.Logger
	progress progress.Reporter
	now      func() time.Time
}

// NewRunner creates a runner. A nil logger discards warnings and a nil
// reporter disables progress.
func NewRunner(scanner cloc.Scanner, logger *slog.Logger, reporter progress.Reporter) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	if reporter == nil {
		reporter = progress.Noop{}
	}
	return &Runner{scanner: scanner, logger: logger, progress: reporter, now: time.Now}
}

// Plan selects the commits a run would scan, in processing order, without
// scanning anything. commits must be ordered oldest first.
func (r *Runner) Plan(commits []git.Commit, opts Options) ([]Planned, Stats) {
	stats := Stats{TotalCommits: len(commits)}

	candidates := make([]Candidate, len(commits))
	for i, c := range commits {
		candidates[i] = Candidate{Ordinal: i, Commit: c}
	}
	if opts.SmartSampling {
		if len(candidates) > opts.MaxSamples {
			r.logger.Info("using smart sampling",
				"commits", len(candidates),
				"samples", opts.MaxSamples,
				"interval", sampling.Interval(len(candidates), opts.MaxSamples))
		}
		candidates = sampling.SmartSample(candidates, opts.MaxSamples)
	}
	stats.Selected = len(candidates)

	assigner := period.NewAssigner(opts.Granularity, r.now)
	tracker := period.NewSeenTracker()
	planned := make([]Planned, 0, min(len(candidates), opts.MaxSamples))

	for _, cand := range candidates {
		if len(planned) >= opts.MaxSamples {
			stats.Capped = true
			break
		}

		if opts.stepApplies() && !sampling.KeepStep(cand.Ordinal, opts.Step) {
			stats.SkippedByStep++
			continue
		}

		when, ok := assigner.ResolveTime(cand.Commit)
		if !ok {
			stats.TimestampFallbacks++
			r.logger.Warn("commit has no usable timestamp, using current time", "commit", cand.Commit.ShortHash())
		}

		date := period.DateLabel(when)
		if !opts.Range.Contains(date) {
			stats.SkippedByRange++
			continue
		}

		key := assigner.Assign(when, cand.Ordinal)
		if !tracker.Accept(key) {
			stats.SkippedDuplicate++
			continue
		}

		planned = append(planned, Planned{Candidate: cand, Key: key, Date: date, When: when})
	}

	return planned, stats
}

// Run scans the planned commits one at a time and folds their counts into
// records. A failed scan is logged and yields a record without language
// entries. Run only returns an error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, commits []git.Commit, opts Options) (*Result, error) {
	planned, stats := r.Plan(commits, opts)
	agg := aggregation.NewAggregator()

	r.progress.Start(len(planned))
	defer r.progress.Finish()

	for _, p := range planned {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := r.scanner.Scan(ctx, p.Commit.Hash)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			stats.ScanFailures++
			r.logger.Warn("failed to count lines", "commit", p.Commit.ShortHash(), "error", err)
			raw = cloc.Result{}
		}
		stats.Scanned++

		agg.Fold(raw, p.Date, p.Commit.Hash)
		r.progress.Tick()
	}

	return &Result{
		Records:  agg.Records(),
		Universe: agg.Universe(),
		Stats:    stats,
	}, nil
}
