package stopwatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/jonboulle/clockwork"

	"github.com/roach88/stopwatch/internal/terminal"
)

const (
	// DefaultInterval is the time between redraws.
	DefaultInterval = time.Second

	// BlinkFrames alternates label and blank: four on, four off.
	BlinkFrames = 8

	// BlinkInterval is the time each blink frame stays up.
	BlinkInterval = 150 * time.Millisecond

	// StoppedLabel is shown by the blink animation.
	StoppedLabel = "stopped"
)

// Runner draws the live reading on a Terminal.
type Runner struct {
	Clock    clockwork.Clock
	Terminal terminal.Terminal
	Color    color.Color
	Interval time.Duration

	cols int
}

// NewRunner creates a runner with the default interval and pink readings.
// A nil clock uses the real clock.
func NewRunner(clock clockwork.Clock, term terminal.Terminal) *Runner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Runner{
		Clock:    clock,
		Terminal: term,
		Color:    terminal.Pink,
		Interval: DefaultInterval,
	}
}

// Run hides the cursor and redraws the elapsed time every Interval until
// ctx is cancelled, then returns the last reading drawn.
//
// The terminal width is read once before anything is drawn; if that fails
// Run returns the error with the cursor untouched. On a draw error Run shows
// the cursor again before returning. On cancellation the cursor is left
// hidden for the caller to restore after its own cleanup.
func (r *Runner) Run(ctx context.Context) (last string, err error) {
	cols, err := r.Terminal.Width()
	if err != nil {
		return "", err
	}
	r.cols = cols

	if err := r.Terminal.HideCursor(); err != nil {
		return "", fmt.Errorf("hide cursor: %w", err)
	}
	defer func() {
		if err != nil {
			_ = r.Terminal.ShowCursor()
		}
	}()

	start := r.Clock.Now()
	slog.Debug("stopwatch started", "cols", cols, "interval", r.Interval)

	for {
		last = Format(r.Clock.Now().Sub(start))
		line := terminal.Colorize(r.Color, terminal.Center(last, cols))
		if err := r.Terminal.Redraw(line); err != nil {
			return last, fmt.Errorf("draw reading: %w", err)
		}

		if wait(ctx, r.Clock, r.Interval) != nil {
			slog.Debug("stopwatch stopped", "reading", last)
			return last, nil
		}
	}
}

// Blink alternates label and a blank of the same width, BlinkFrames times,
// BlinkInterval apart. The last frame drawn is the blank one. Cancelling
// ctx ends the animation early without error.
//
// The label is centered on the width captured by the preceding Run.
func (r *Runner) Blink(ctx context.Context, label string) error {
	shown := terminal.Center(label, r.cols)
	blank := terminal.Blank(label, r.cols)

	for i := 0; i < BlinkFrames; i++ {
		if ctx.Err() != nil {
			return nil
		}

		line := shown
		if i%2 == 1 {
			line = blank
		}
		if err := r.Terminal.Redraw(line); err != nil {
			return fmt.Errorf("draw blink frame: %w", err)
		}

		if wait(ctx, r.Clock, BlinkInterval) != nil {
			return nil
		}
	}
	return nil
}
