package testutil

import (
	"strings"
	"sync"
)

// Terminal event kinds recorded by TerminalRecorder.
const (
	EventHide    = "hide"
	EventShow    = "show"
	EventRedraw  = "redraw"
	EventNewline = "newline"
)

// TerminalEvent is one call made against a TerminalRecorder.
type TerminalEvent struct {
	Kind string
	Line string // set for EventRedraw
}

// TerminalRecorder is an in-memory terminal that records every call.
//
// Width returns Cols, or WidthErr when set. Calls are appended to an event
// list that tests inspect with Events, Redraws, and Last.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type TerminalRecorder struct {
	Cols     int
	WidthErr error

	mu     sync.Mutex
	events []TerminalEvent
}

// NewTerminalRecorder creates a recorder reporting cols columns.
func NewTerminalRecorder(cols int) *TerminalRecorder {
	return &TerminalRecorder{Cols: cols}
}

func (r *TerminalRecorder) Width() (int, error) {
	if r.WidthErr != nil {
		return 0, r.WidthErr
	}
	return r.Cols, nil
}

func (r *TerminalRecorder) HideCursor() error {
	r.record(TerminalEvent{Kind: EventHide})
	return nil
}

func (r *TerminalRecorder) ShowCursor() error {
	r.record(TerminalEvent{Kind: EventShow})
	return nil
}

func (r *TerminalRecorder) Redraw(line string) error {
	r.record(TerminalEvent{Kind: EventRedraw, Line: line})
	return nil
}

func (r *TerminalRecorder) Newline() error {
	r.record(TerminalEvent{Kind: EventNewline})
	return nil
}

// Events returns a copy of everything recorded so far.
func (r *TerminalRecorder) Events() []TerminalEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TerminalEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Redraws returns the lines passed to Redraw, in order.
func (r *TerminalRecorder) Redraws() []string {
	var lines []string
	for _, e := range r.Events() {
		if e.Kind == EventRedraw {
			lines = append(lines, e.Line)
		}
	}
	return lines
}

// Kinds returns the event kinds joined by spaces, e.g. "hide redraw show".
func (r *TerminalRecorder) Kinds() string {
	events := r.Events()
	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return strings.Join(kinds, " ")
}

// Last returns the most recent event, or the zero event if none.
func (r *TerminalRecorder) Last() TerminalEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return TerminalEvent{}
	}
	return r.events[len(r.events)-1]
}

func (r *TerminalRecorder) record(e TerminalEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}
