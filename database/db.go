package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the single storage handle of the process. The connection never leaves this
// package and every statement holds mu, so at most one statement runs at a time.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &InitError{Op: "create database directory", Err: err}
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, &InitError{Op: "open database", Err: err}
	}

	// One connection, one writer
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	// sql.Open is lazy; this is the first real touch of the file
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, &InitError{Op: "open database", Err: err}
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, &InitError{Op: "enable WAL mode", Err: err}
	}

	return &DB{conn: conn}, nil
}

// Migrate ensures the schema exists. Safe to run on every startup.
func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			priority INTEGER NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0
		)`,
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	for _, query := range queries {
		if _, err := db.conn.Exec(query); err != nil {
			return &InitError{Op: "migrate", Err: err}
		}
	}

	return nil
}

// Close releases the connection. Later statements fail with a StorageError.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
