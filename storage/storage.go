package storage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Namespace used for favorites unless configured otherwise.
const DefaultNamespace = "busapp:favorites:v1"

// A small key-value store holding ordered lists of strings, one per
// namespace. Used to persist favorites across sessions.
type Storage interface {
	// Retrieves the list stored under namespace. A namespace that
	// was never written yields an empty list. Corrupt data yields
	// an error.
	LoadFavorites(namespace string) ([]string, error)

	// Replaces the list stored under namespace.
	SaveFavorites(namespace string, keys []string) error

	Close() error
}

// Opens a Storage from a DSN:
//
//   - "memory" (or "")
//   - "file:<path>"
//   - "sqlite:<path>", in memory if path is empty
//   - "postgres://..." or "postgresql://..."
func Open(dsn string) (Storage, error) {
	switch {
	case dsn == "" || dsn == "memory":
		return NewMemoryStorage(), nil
	case strings.HasPrefix(dsn, "file:"):
		return NewFileStorage(strings.TrimPrefix(dsn, "file:"))
	case strings.HasPrefix(dsn, "sqlite:"):
		path := strings.TrimPrefix(dsn, "sqlite:")
		return NewSQLiteStorage(SQLiteConfig{OnDisk: path != "", Path: path})
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewPSQLStorage(dsn, false)
	}
	return nil, fmt.Errorf("unsupported storage: '%s'", dsn)
}

func encodeKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	buf, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("marshalling: %w", err)
	}
	return string(buf), nil
}

func decodeKeys(value string) ([]string, error) {
	keys := []string{}
	if err := json.Unmarshal([]byte(value), &keys); err != nil {
		return nil, fmt.Errorf("unmarshalling: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
