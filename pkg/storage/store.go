package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// StateStore handles small pieces of persistent application state stored under fixed keys.
// A missing key and an unreadable key look the same to GetState callers.
type StateStore interface {
	GetState(ctx context.Context, key string) (string, bool)
	SetState(ctx context.Context, key, val string) error
	DeleteState(ctx context.Context, key string) error
}

// Backend names a StateStore implementation
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend parses a backend name, case-insensitively
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case BackendFile, BackendSQLite, BackendMemory:
		return b, nil
	case "":
		return BackendFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// DefaultDataDir returns the directory used when no data directory is configured
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".planner-tuning"), nil
}

// Open creates the StateStore for a backend rooted at dataDir.
// Callers should Close the result when it implements io.Closer.
func Open(backend Backend, dataDir string) (StateStore, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(filepath.Join(dataDir, "state"))
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, "planner.db"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
