package history

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

// FileStore persists the history as a TOML file, written atomically
// (write temp + rename).
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the TOML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the history file. A missing file yields an empty history.
func (s *FileStore) Load(_ context.Context) (*History, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var h History
	if err := toml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing history file: %w", err)
	}
	return &h, nil
}

// Save writes the history file atomically.
func (s *FileStore) Save(_ context.Context, h *History) error {
	data, err := toml.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp history file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming history file: %w", err)
	}
	return nil
}

// Reset replaces the history with an empty one stamped with a fresh ID.
func (s *FileStore) Reset(ctx context.Context) error {
	return s.Save(ctx, &History{ID: uuid.NewString()})
}
