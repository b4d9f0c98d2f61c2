package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteConfig struct {
	OnDisk bool
	Path   string
}

type SQLiteStorage struct {
	SQLiteConfig

	db *sql.DB
}

func NewSQLiteStorage(cfg ...SQLiteConfig) (*SQLiteStorage, error) {
	onDisk := false
	path := ""
	if len(cfg) > 0 {
		onDisk = cfg[0].OnDisk
		path = cfg[0].Path
	}

	sourceName := ":memory:"
	if onDisk {
		if path == "" {
			path = "busboard.db"
		}
		sourceName = path
	}

	db, err := sql.Open("sqlite3", sourceName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
    namespace TEXT NOT NULL,
    value TEXT NOT NULL,
PRIMARY KEY (namespace)
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteStorage{
		SQLiteConfig: SQLiteConfig{
			OnDisk: onDisk,
			Path:   path,
		},
		db: db,
	}, nil
}

func (s *SQLiteStorage) LoadFavorites(namespace string) ([]string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE namespace = ?`, namespace).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying kv: %w", err)
	}

	return decodeKeys(value)
}

func (s *SQLiteStorage) SaveFavorites(namespace string, keys []string) error {
	value, err := encodeKeys(keys)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
INSERT INTO kv (namespace, value) VALUES (?, ?)
ON CONFLICT (namespace) DO UPDATE SET value = excluded.value`,
		namespace, value,
	)
	if err != nil {
		return fmt.Errorf("writing kv: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
