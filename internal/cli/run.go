package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/stopwatch/internal/history"
	"github.com/roach88/stopwatch/internal/stopwatch"
	"github.com/roach88/stopwatch/internal/terminal"
)

// runStopwatch times until the first interrupt, records the reading, and
// plays the stopped animation until it ends or a second interrupt arrives.
func runStopwatch(opts *RootOptions, st *history.Store, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	// Loaded up front; nothing is written back unless a run completes.
	entries, err := loadHistory(st, formatter)
	if err != nil {
		return err
	}
	slog.Debug("history loaded", "entries", len(entries))

	out := cmd.OutOrStdout()
	term := opts.Terminal
	if term == nil {
		term = terminal.NewANSI(out, os.Stdin)
	}
	runner := stopwatch.NewRunner(opts.Clock, term)

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	runCtx, stopRun := context.WithCancel(parentCtx)
	defer stopRun()
	blinkCtx, stopBlink := context.WithCancel(parentCtx)
	defer stopBlink()

	interrupts := opts.Interrupts
	if interrupts == nil {
		sigChan := make(chan os.Signal, 2)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan) // Prevent signal handler leak
		interrupts = sigChan
	}
	done := make(chan struct{})
	defer close(done)
	go relayInterrupts(interrupts, done, stopRun, stopBlink)

	reading, err := runner.Run(runCtx)
	if err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			return WrapExitError(ExitCommandError, "cannot start stopwatch", err)
		}
		return WrapExitError(ExitFailure, "stopwatch failed", err)
	}
	// The cursor is hidden from here on; make sure it comes back.
	defer showCursor(term)

	entries = append(entries, reading)
	if err := term.Newline(); err != nil {
		slog.Debug("terminal write failed", "error", err)
	}
	persistReading(out, st, entries)

	showCursor(term)
	if err := runner.Blink(blinkCtx, stopwatch.StoppedLabel); err != nil {
		slog.Debug("blink interrupted", "error", err)
	}
	if err := term.Newline(); err != nil {
		slog.Debug("terminal write failed", "error", err)
	}

	slog.Debug("run recorded", "reading", reading, "entries", len(entries))
	return nil
}

// relayInterrupts calls each cancel in turn, one per signal received.
// It returns once every cancel has fired or done is closed.
func relayInterrupts(interrupts <-chan os.Signal, done <-chan struct{}, cancels ...context.CancelFunc) {
	for _, cancel := range cancels {
		select {
		case sig := <-interrupts:
			slog.Debug("received signal", "signal", sig)
			cancel()
		case <-done:
			return
		}
	}
}

// persistReading saves the updated history. Failures are reported on w and
// never abort the shutdown sequence.
func persistReading(w io.Writer, st *history.Store, entries []string) {
	err := st.Save(entries)
	if err == nil {
		slog.Debug("history saved", "path", st.Path, "entries", len(entries))
		return
	}

	if errors.Is(err, fs.ErrPermission) {
		fmt.Fprintf(w, "permission denied could not write to %s: %v\n", st.Path, err)
		return
	}
	fmt.Fprintf(w, "could not write to %s: %v\n", st.Path, err)
}

func showCursor(term terminal.Terminal) {
	if err := term.ShowCursor(); err != nil {
		slog.Debug("terminal write failed", "error", err)
	}
}
