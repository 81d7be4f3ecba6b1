package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/stopwatch/internal/history"
)

// historyPath returns a history file location inside a fresh temp home.
func historyPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), history.DefaultDir, history.DefaultFile)
}

func writeHistory(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func loadHistoryFile(t *testing.T, path string) []string {
	t.Helper()
	st, err := history.Open(path)
	require.NoError(t, err)
	entries, err := st.Load()
	require.NoError(t, err)
	return entries
}

func mustStore(t *testing.T, path string) *history.Store {
	t.Helper()
	st, err := history.Open(path)
	require.NoError(t, err)
	return st
}
