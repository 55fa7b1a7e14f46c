package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         TEXT NOT NULL UNIQUE,
    username   TEXT NOT NULL UNIQUE,
    created_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS exercises (
    seq         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    description TEXT NOT NULL,
    duration    REAL NOT NULL,
    date        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exercises_user ON exercises(user_id, seq);
`

// OpenSQLite opens (or creates) the SQLite database at path and makes sure
// the schema exists.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = "exercise.db"
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps writers serialized, including shared-cache memory databases
	d.SetMaxOpenConns(1)
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	// journal_mode may not be supported for in-memory databases
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(sqliteSchema); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("Database initialized successfully")
	return d, nil
}
