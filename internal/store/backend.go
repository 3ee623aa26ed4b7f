package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend is a synchronous single-key durable store. Reads signal absence
// via the boolean, not an error.
type Backend interface {
	Write(key string, value []byte) error
	Read(key string) ([]byte, bool, error)
	Delete(key string) error
}

// FileBackend persists keys as JSON files inside a directory. It is the
// local, synchronous analog of the browser's localStorage: one well-known
// key, last writer wins, no locking.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed and returns a backend
// rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Write stores the value under the key, replacing any previous value.
func (b *FileBackend) Write(key string, value []byte) error {
	if err := os.WriteFile(b.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Read returns the stored value and whether the key existed.
func (b *FileBackend) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (b *FileBackend) Delete(key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
