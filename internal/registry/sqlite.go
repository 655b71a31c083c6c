package registry

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS names (
			name TEXT PRIMARY KEY,
			id INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_names_id
			ON names(id);
	`)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func (s *sqliteStore) Put(name string, id uint32) error {
	_, err := s.db.Exec(
		`INSERT INTO names (name, id) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET id = excluded.id`,
		name, int64(id),
	)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (s *sqliteStore) Get(name string) (uint32, bool, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM names WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query: %w", err)
	}
	return uint32(id), true, nil
}

func (s *sqliteStore) NameForID(id uint32) (string, bool, error) {
	var name string
	err := s.db.QueryRow(`SELECT name FROM names WHERE id = ?`, int64(id)).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query: %w", err)
	}
	return name, true, nil
}

func (s *sqliteStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM names`).Scan(&count); err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return count, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
