package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the stored entries in chronological order.
//
// A missing file, an empty file, or a YAML null all load as an empty history.
// Content that is not a sequence of strings yields an error wrapping ErrCorrupt.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read history %s: %w", s.Path, err)
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.Path, err)
	}
	if entries == nil {
		entries = []string{}
	}
	return entries, nil
}
