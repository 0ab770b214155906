package filesystem

import (
	"io"
	"os"
	"path/filepath"
)

// GacheFs lets gache persist the vibe history through the swappable backend.
type GacheFs struct{}

// OpenFile opens name on the current backend. When the file may be created,
// missing parent directories are created first so a fresh storage directory
// needs no preparation.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	if flag&os.O_CREATE != 0 {
		if err := API().MkdirAll(filepath.Dir(name), os.ModePerm); err != nil {
			return nil, err
		}
	}
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates path on the current backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
