package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/knmedan/showcase-backend/internal/admin/domain"
)

const timeFormat = "2006-01-02 15:04:05"

// AdminRepository provides persistence operations for admin accounts.
type AdminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername returns the matching admin or domain.ErrNotFound.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	const q = `
SELECT id, username, password, created_at
FROM admins
WHERE username = ?;
`
	var (
		a         domain.Admin
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, q, username).
		Scan(&a.ID, &a.Username, &a.Password, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if t, err := time.Parse(timeFormat, createdAt); err == nil {
		a.CreatedAt = t
	}
	return &a, nil
}

// Seed inserts the configured admin account if it does not exist yet.
// The password is stored as a bcrypt hash. Safe to call on every startup.
func (r *AdminRepository) Seed(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("admin credentials are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	const q = `
INSERT OR IGNORE INTO admins (username, password, created_at)
VALUES (?, ?, ?);
`
	if _, err := r.db.ExecContext(ctx, q, username, string(hash), time.Now().UTC().Format(timeFormat)); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
