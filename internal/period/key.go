package period

import (
	"fmt"
	"strconv"
	"time"

	"github.com/BarthPaleologue/cloc-graph/internal/git"
)

const dateLayout = "2006-01-02"

// Key identifies a reporting period. Keys are only compared for equality.
type Key string

// DateLabel formats t as YYYY-MM-DD in UTC.
func DateLabel(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// DayKey returns the UTC calendar date of t.
func DayKey(t time.Time) Key {
	return Key(DateLabel(t))
}

// MonthKey returns YYYY-MM of t in UTC.
func MonthKey(t time.Time) Key {
	return Key(t.UTC().Format("2006-01"))
}

// WeekKey returns the ISO-8601 week of t (UTC) as YYYY-WW. Weeks start on
// Monday and week 1 contains the year's first Thursday, so the year part is
// the ISO year: Dec 29-31 may belong to week 01 of the next year and
// Jan 1-3 to the last week of the previous one.
func WeekKey(t time.Time) Key {
	year, week := t.UTC().ISOWeek()
	return Key(fmt.Sprintf("%04d-%02d", year, week))
}

// CommitKey returns the key of the commit at zero-based ordinal.
func CommitKey(ordinal int) Key {
	return Key("commit_" + strconv.Itoa(ordinal+1))
}

// Assigner computes period keys for commits under one granularity.
type Assigner struct {
	granularity Granularity
	now         func() time.Time
}

// NewAssigner creates an assigner. now supplies the processing time used
// for commits without a timestamp; nil means time.Now.
func NewAssigner(g Granularity, now func() time.Time) *Assigner {
	if now == nil {
		now = time.Now
	}
	return &Assigner{granularity: g, now: now}
}

// Granularity returns the assigner's granularity.
func (a *Assigner) Granularity() Granularity {
	return a.granularity
}

// ResolveTime returns the commit timestamp, or the current processing time
// when the commit has none. The boolean is false when the fallback was used.
func (a *Assigner) ResolveTime(c git.Commit) (time.Time, bool) {
	if c.HasTime() {
		return c.When, true
	}
	return a.now(), false
}

// Assign returns the period key for a commit whose timestamp has already
// been resolved to when.
func (a *Assigner) Assign(when time.Time, ordinal int) Key {
	switch a.granularity {
	case Daily:
		return DayKey(when)
	case Weekly:
		return WeekKey(when)
	case Monthly:
		return MonthKey(when)
	default:
		return CommitKey(ordinal)
	}
}
