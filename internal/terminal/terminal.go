// Package terminal draws single-line output on an ANSI terminal.
//
// Callers redraw one line in place with a carriage return, so the cursor
// never leaves the line while the stopwatch runs. The Terminal interface
// keeps those side effects behind one seam; ANSI is the real implementation.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creack/pty"
	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
)

// Cursor visibility escape sequences.
const (
	HideCursorSeq = "\x1b[?25l"
	ShowCursorSeq = "\x1b[?25h"
)

// Pink is the foreground color of the running time.
const Pink = color.FgLightMagenta

// ErrNotTerminal is returned by Width when no interactive terminal is attached.
var ErrNotTerminal = errors.New("stopwatch needs an interactive terminal")

// Terminal is the set of terminal side effects the stopwatch needs.
type Terminal interface {
	// Width returns the number of columns.
	Width() (int, error)
	HideCursor() error
	ShowCursor() error
	// Redraw returns to column zero and writes line without a newline.
	Redraw(line string) error
	// Newline moves to a fresh line.
	Newline() error
}

// ANSI writes escape sequences to Out and queries the size of TTY.
type ANSI struct {
	Out io.Writer
	TTY *os.File
}

var _ Terminal = (*ANSI)(nil)

// NewANSI returns an ANSI terminal writing to out and sizing from tty.
func NewANSI(out io.Writer, tty *os.File) *ANSI {
	return &ANSI{Out: out, TTY: tty}
}

// Width asks the controlling terminal for its column count.
func (a *ANSI) Width() (int, error) {
	if a.TTY == nil {
		return 0, ErrNotTerminal
	}
	fd := a.TTY.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, ErrNotTerminal
	}

	_, cols, err := pty.Getsize(a.TTY)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}
	if cols <= 0 {
		return 0, fmt.Errorf("%w: reported width %d", ErrNotTerminal, cols)
	}
	return cols, nil
}

func (a *ANSI) HideCursor() error {
	_, err := io.WriteString(a.Out, HideCursorSeq)
	return err
}

func (a *ANSI) ShowCursor() error {
	_, err := io.WriteString(a.Out, ShowCursorSeq)
	return err
}

func (a *ANSI) Redraw(line string) error {
	_, err := io.WriteString(a.Out, "\r"+line)
	return err
}

func (a *ANSI) Newline() error {
	_, err := io.WriteString(a.Out, "\n")
	return err
}
