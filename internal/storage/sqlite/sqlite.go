package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knmedan/showcase-backend/config"
	_ "modernc.org/sqlite"
)

// NewConnection opens the SQLite database file, creating its parent
// directory if needed.
func NewConnection(cfg *config.StorageConfig) (*sql.DB, error) {
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := filepath.Clean(cfg.DatabasePath) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids SQLITE_BUSY
	// on concurrent handlers.
	db.SetMaxOpenConns(1)

	return db, nil
}

// Init idempotently creates the projects and admins tables.
func Init(ctx context.Context, db *sql.DB) error {
	const projectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_name TEXT NOT NULL,
	project_link TEXT,
	student_name TEXT,
	teacher_name TEXT,
	module_name TEXT NOT NULL,
	screenshots TEXT,
	status TEXT DEFAULT 'pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	const adminsTable = `
CREATE TABLE IF NOT EXISTS admins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	if _, err := db.ExecContext(ctx, projectsTable); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	if _, err := db.ExecContext(ctx, adminsTable); err != nil {
		return fmt.Errorf("create admins table: %w", err)
	}

	return nil
}
