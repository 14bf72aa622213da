// Package store provides string key-value stores for persisted UI state.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Keys used by the task manager.
const (
	KeyTasks    = "tasks"
	KeyDarkMode = "darkMode"
)

// ErrUnknownKind is returned by Open for an unsupported backend name.
var ErrUnknownKind = errors.New("unknown store kind")

// Store is a string key-value store. Get reports ok=false for absent keys.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Kind names a store backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Default file names inside the data directory.
const (
	FileName   = "store.json"
	SQLiteName = "store.db"
)

// ParseKind parses a backend name case-insensitively. Empty means file.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "file", "json":
		return KindFile, nil
	case "sqlite", "sqlite3", "db":
		return KindSQLite, nil
	case "memory", "mem":
		return KindMemory, nil
	default:
		return "", fmt.Errorf("%w %q (expected file|sqlite|memory)", ErrUnknownKind, s)
	}
}

// Path returns where a backend of kind keeps its data under dir.
// Memory stores have no path.
func Path(kind Kind, dir string) string {
	switch kind {
	case KindFile:
		return filepath.Join(dir, FileName)
	case KindSQLite:
		return filepath.Join(dir, SQLiteName)
	default:
		return ""
	}
}

// Open opens the backend of kind rooted at dir.
func Open(kind Kind, dir string) (Store, error) {
	switch kind {
	case KindFile:
		s, err := OpenFile(Path(kind, dir))
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindSQLite:
		s, err := OpenSQLite(Path(kind, dir))
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}
