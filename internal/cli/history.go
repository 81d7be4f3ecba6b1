package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/stopwatch/internal/history"
)

// User-facing messages.
const (
	msgHistoryHeader = "stopwatch history"
	msgNoHistory     = "no history available"
	msgCleared       = "byeeee"
)

// historyView is the --history payload.
type historyView struct {
	Entries []string `json:"entries"`
}

// String renders the numbered text listing.
func (v historyView) String() string {
	if len(v.Entries) == 0 {
		return msgNoHistory
	}
	var b strings.Builder
	b.WriteString(msgHistoryHeader)
	for i, entry := range v.Entries {
		fmt.Fprintf(&b, "\n%d. %s", i+1, entry)
	}
	return b.String()
}

// clearResult is the --clear payload.
type clearResult struct {
	Cleared bool   `json:"cleared"`
	Path    string `json:"path"`
}

func (clearResult) String() string {
	return msgCleared
}

func showHistory(opts *RootOptions, st *history.Store, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	entries, err := loadHistory(st, formatter)
	if err != nil {
		return err
	}
	slog.Debug("history loaded", "entries", len(entries))

	return formatter.Success(historyView{Entries: entries})
}

// clearHistory never fails the command: a write error is reported on stdout
// and the command still exits normally.
func clearHistory(opts *RootOptions, st *history.Store, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if err := st.Clear(); err != nil {
		slog.Debug("clear failed", "path", st.Path, "error", err)
		if opts.Format == "json" {
			return formatter.Error(CodeHistoryWrite, "failed to clear history", err.Error())
		}
		_, werr := fmt.Fprintf(formatter.Writer, "failed to clear history %v\n", err)
		return werr
	}

	return formatter.Success(clearResult{Cleared: true, Path: st.Path})
}

// loadHistory reads the store, mapping failures to command errors.
func loadHistory(st *history.Store, formatter *OutputFormatter) ([]string, error) {
	entries, err := st.Load()
	if err == nil {
		return entries, nil
	}

	code := CodeHistoryRead
	if errors.Is(err, history.ErrCorrupt) {
		code = CodeHistoryCorrupt
	}
	_ = formatter.Error(code, "failed to load history", map[string]string{
		"path":   st.Path,
		"reason": err.Error(),
	})
	return nil, WrapExitError(ExitCommandError, "failed to load history", err)
}
