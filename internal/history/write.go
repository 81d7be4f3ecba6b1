package history

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save overwrites the history file with entries.
// A nil or empty slice is written as an empty sequence.
// The parent directory is created when missing.
func (s *Store) Save(entries []string) error {
	if entries == nil {
		entries = []string{}
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write history %s: %w", s.Path, err)
	}
	return nil
}

// Clear replaces the history with an empty list regardless of what was there.
func (s *Store) Clear() error {
	return s.Save(nil)
}
