package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Record names inside the key-value store.
const (
	CustomizationRecord = "ava-customization-settings"
	ThemeRecord         = "ava-theme"
)

// Storage is a durable key-value store for small string records.
type Storage interface {
	// Get returns the stored value and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage keeps one file per key inside a directory.
type FileStorage struct {
	fs  afero.Afero
	dir string
}

// NewFileStorage returns a store rooted at dir on the given filesystem.
func NewFileStorage(fs afero.Fs, dir string) *FileStorage {
	return &FileStorage{fs: afero.Afero{Fs: fs}, dir: dir}
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get implements Storage.
func (s *FileStorage) Get(key string) (string, bool, error) {
	data, err := s.fs.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Storage. The value is written to a sibling file and renamed into place.
func (s *FileStorage) Set(key, value string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := s.fs.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete implements Storage. Deleting a missing record is not an error.
func (s *FileStorage) Delete(key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
