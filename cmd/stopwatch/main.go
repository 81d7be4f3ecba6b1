package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/roach88/stopwatch/internal/cli"
)

// main is the entrypoint for the stopwatch command.
func main() {
	// Use a minimal logger until the command configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
