package stopwatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stopwatch/internal/terminal"
	"github.com/roach88/stopwatch/internal/testutil"
)

var epoch = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

type runResult struct {
	reading string
	err     error
}

func startRunner(ctx context.Context, r *Runner) <-chan runResult {
	done := make(chan runResult, 1)
	go func() {
		reading, err := r.Run(ctx)
		done <- runResult{reading, err}
	}()
	return done
}

func TestRunner_RunReportsElapsed(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	term := testutil.NewTerminalRecorder(20)
	r := NewRunner(clock, term)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := startRunner(ctx, r)

	for i := 0; i < 5; i++ {
		testutil.BlockUntil(t, clock, 1)
		clock.Advance(time.Second)
	}
	testutil.BlockUntil(t, clock, 1)
	cancel()

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "00:00:05", res.reading)

	pad := strings.Repeat(" ", 6)
	want := []string{
		terminal.Colorize(terminal.Pink, pad+"00:00:00"),
		terminal.Colorize(terminal.Pink, pad+"00:00:01"),
		terminal.Colorize(terminal.Pink, pad+"00:00:02"),
		terminal.Colorize(terminal.Pink, pad+"00:00:03"),
		terminal.Colorize(terminal.Pink, pad+"00:00:04"),
		terminal.Colorize(terminal.Pink, pad+"00:00:05"),
	}
	assert.Equal(t, want, term.Redraws())

	events := term.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, testutil.EventHide, events[0].Kind)
	assert.NotContains(t, term.Kinds(), testutil.EventShow, "cursor stays hidden until the caller restores it")
	assert.NotContains(t, term.Kinds(), testutil.EventNewline, "readings are redrawn in place")
}

func TestRunner_RunCancelledBeforeFirstTick(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	term := testutil.NewTerminalRecorder(80)
	r := NewRunner(clock, term)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reading, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", reading)
	assert.Len(t, term.Redraws(), 1)
}

func TestRunner_RunWidthFailure(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	term := testutil.NewTerminalRecorder(0)
	term.WidthErr = terminal.ErrNotTerminal
	r := NewRunner(clock, term)

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, terminal.ErrNotTerminal)
	assert.Empty(t, term.Events(), "nothing is drawn or hidden without a width")
}

type failingTerminal struct {
	*testutil.TerminalRecorder
}

func (f failingTerminal) Redraw(string) error {
	return errors.New("broken pipe")
}

func TestRunner_RunDrawFailureRestoresCursor(t *testing.T) {
	rec := testutil.NewTerminalRecorder(80)
	r := NewRunner(clockwork.NewFakeClockAt(epoch), failingTerminal{rec})

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Equal(t, "hide show", rec.Kinds())
}

func TestRunner_RunLongRunWraps(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	term := testutil.NewTerminalRecorder(8)
	r := NewRunner(clock, term)
	r.Interval = 25 * time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := startRunner(ctx, r)

	testutil.BlockUntil(t, clock, 1)
	clock.Advance(25*time.Hour + 3*time.Second)
	testutil.BlockUntil(t, clock, 1)
	cancel()

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "01:00:03", res.reading)
}

func TestRunner_BlinkFullAnimation(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	term := testutil.NewTerminalRecorder(21)
	r := NewRunner(clock, term)
	r.cols = 21

	done := make(chan error, 1)
	go func() { done <- r.Blink(context.Background(), StoppedLabel) }()

	for i := 0; i < BlinkFrames; i++ {
		testutil.BlockUntil(t, clock, 1)
		clock.Advance(BlinkInterval)
	}
	require.NoError(t, <-done)

	shown := strings.Repeat(" ", 7) + "stopped"
	blank := strings.Repeat(" ", 14)
	assert.Equal(t, []string{shown, blank, shown, blank, shown, blank, shown, blank}, term.Redraws())
	assert.Equal(t, blank, term.Last().Line)
}

func TestRunner_BlinkCancelledMidway(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	term := testutil.NewTerminalRecorder(21)
	r := NewRunner(clock, term)
	r.cols = 21

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Blink(ctx, StoppedLabel) }()

	testutil.BlockUntil(t, clock, 1)
	clock.Advance(BlinkInterval)
	testutil.BlockUntil(t, clock, 1)
	cancel()

	require.NoError(t, <-done)
	assert.Len(t, term.Redraws(), 2)
}

func TestRunner_BlinkAlreadyCancelled(t *testing.T) {
	term := testutil.NewTerminalRecorder(80)
	r := NewRunner(clockwork.NewFakeClockAt(epoch), term)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.Blink(ctx, StoppedLabel))
	assert.Empty(t, term.Events())
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(nil, testutil.NewTerminalRecorder(80))
	assert.NotNil(t, r.Clock)
	assert.Equal(t, DefaultInterval, r.Interval)
	assert.Equal(t, terminal.Pink, r.Color)
}
