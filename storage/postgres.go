package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PSQLStorage struct {
	db *sql.DB
}

// Creates a new Postgres Storage using the provided connection string.
//
// If clearDB is true, the favorites table will be dropped on
// startup. You probably only want this for testing.
func NewPSQLStorage(connStr string, clearDB bool) (*PSQLStorage, error) {

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if clearDB {
		_, err = db.Exec(`DROP TABLE IF EXISTS favorites;`)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("clearing db: %w", err)
		}
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS favorites (
    namespace TEXT NOT NULL,
    keys TEXT[] NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (namespace)
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating favorites table: %w", err)
	}

	return &PSQLStorage{
		db: db,
	}, nil
}

func (s *PSQLStorage) LoadFavorites(namespace string) ([]string, error) {
	keys := []string{}
	err := s.db.QueryRow(
		`SELECT keys FROM favorites WHERE namespace = $1`,
		namespace,
	).Scan(pq.Array(&keys))
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}

	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func (s *PSQLStorage) SaveFavorites(namespace string, keys []string) error {
	if keys == nil {
		keys = []string{}
	}

	_, err := s.db.Exec(`
INSERT INTO favorites (namespace, keys, updated_at) VALUES ($1, $2, now())
ON CONFLICT (namespace) DO UPDATE SET keys = EXCLUDED.keys, updated_at = now()`,
		namespace, pq.Array(keys),
	)
	if err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}

	return nil
}

func (s *PSQLStorage) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}
