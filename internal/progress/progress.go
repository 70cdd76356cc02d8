// Package progress reports per-commit scan progress on the terminal.
package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// minTotal is the smallest run for which a bar is drawn.
const minTotal = 3

// Reporter receives progress events from a pipeline run.
type Reporter interface {
	Start(total int)
	Tick()
	Finish()
}

// Noop discards progress events.
type Noop struct{}

func (Noop) Start(int) {}
func (Noop) Tick()     {}
func (Noop) Finish()   {}

// Tracker wraps a progress bar for commit scanning.
type Tracker struct {
	w     io.Writer
	label string
	bar   *progressbar.ProgressBar
}

// NewTracker creates a tracker drawing to w with the given label.
func NewTracker(w io.Writer, label string) *Tracker {
	return &Tracker{w: w, label: label}
}

// New returns a Tracker on stderr when stderr is a terminal and progress
// was not disabled, and a Noop otherwise.
func New(label string, disabled bool) Reporter {
	if disabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		return Noop{}
	}
	return NewTracker(os.Stderr, label)
}

// Start creates the bar. Runs shorter than three commits draw nothing.
func (t *Tracker) Start(total int) {
	if total < minTotal {
		t.bar = nil
		return
	}
	t.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(t.w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(t.label),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}

// Tick advances the bar by one commit.
func (t *Tracker) Tick() {
	if t.bar != nil {
		_ = t.bar.Add(1)
	}
}

// Finish clears the bar.
func (t *Tracker) Finish() {
	if t.bar == nil {
		return
	}
	_ = t.bar.Finish()
	_ = t.bar.Clear()
	t.bar = nil
}

// Active reports whether a bar is currently drawn.
func (t *Tracker) Active() bool {
	return t.bar != nil
}
