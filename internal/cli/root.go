package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/roach88/stopwatch/internal/history"
	"github.com/roach88/stopwatch/internal/terminal"
)

// RootOptions holds the flags and collaborators shared by every mode.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	History bool
	Clear   bool
	File    string // history file; empty means history.DefaultPath()

	// Clock, Terminal and Interrupts replace the wall clock, the ANSI
	// terminal on stdout, and OS signal delivery (for testing).
	// If nil, the real implementations are used.
	Clock      clockwork.Clock
	Terminal   terminal.Terminal
	Interrupts <-chan os.Signal
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the stopwatch command.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the stopwatch command bound to opts.
// Tests use it to inject a clock, terminal and interrupt channel.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "a cli stopwatch",
		Long: `Display elapsed time centered in the terminal until interrupted.

Press Ctrl-C to stop. The final reading is appended to the history file
(~/documents/stopwatch_history.yaml unless --file is given).

Example:
  stopwatch
  stopwatch --history
  stopwatch --clear`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(cmd, opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts, cmd)
			if err != nil {
				return err
			}

			switch {
			case opts.Clear:
				return clearHistory(opts, st, cmd)
			case opts.History:
				return showHistory(opts, st, cmd)
			default:
				return runStopwatch(opts, st, cmd)
			}
		},
	}

	cmd.Flags().BoolVar(&opts.History, "history", false, "show stopwatch history")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "clear stopwatch history")
	cmd.MarkFlagsMutuallyExclusive("history", "clear")

	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "history file (default ~/documents/stopwatch_history.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
}

// configureLogging sends diagnostics to stderr, keeping stdout for the display.
func configureLogging(cmd *cobra.Command, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// openStore resolves the history location from --file or the home directory.
func openStore(opts *RootOptions, cmd *cobra.Command) (*history.Store, error) {
	path := opts.File
	if path == "" {
		p, err := history.DefaultPath()
		if err != nil {
			formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			_ = formatter.Error(CodeHistoryPath, "failed to locate history", err.Error())
			return nil, WrapExitError(ExitCommandError, "failed to locate history", err)
		}
		path = p
	}

	st, err := history.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open history", err)
	}
	slog.Debug("history store", "path", st.Path)
	return st, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
