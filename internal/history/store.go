package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir and DefaultFile name the history location under the user's home.
const (
	DefaultDir  = "documents"
	DefaultFile = "stopwatch_history.yaml"
)

// ErrCorrupt is returned when the history file exists but does not hold a
// sequence of strings.
var ErrCorrupt = errors.New("history file is not a list of strings")

// Store reads and writes the history file at Path.
type Store struct {
	Path string
}

// Open returns a Store for path. The file is not touched until Load or Save.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history path is empty")
	}
	return &Store{Path: path}, nil
}

// DefaultPath resolves <home>/documents/stopwatch_history.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultDir, DefaultFile), nil
}
