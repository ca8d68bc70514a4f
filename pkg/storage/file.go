package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements StateStore with one file per key inside a directory
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore, creating dir if it doesn't exist
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the state files
func (fs *FileStore) Dir() string {
	return fs.dir
}

func (fs *FileStore) GetState(_ context.Context, key string) (string, bool) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// SetState writes through a temporary file so a crash never leaves a truncated value behind
func (fs *FileStore) SetState(_ context.Context, key, val string) error {
	tmp, err := os.CreateTemp(fs.dir, "."+sanitizeKey(key)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(val); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err := os.Rename(tmpName, fs.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}

func (fs *FileStore) DeleteState(_ context.Context, key string) error {
	if err := os.Remove(fs.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, sanitizeKey(key)+".json")
}

// sanitizeKey keeps keys from escaping the state directory
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key)
}
