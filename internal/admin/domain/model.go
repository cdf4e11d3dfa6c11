package domain

import (
	"errors"
	"time"
)

// Admin is a moderator account. Exactly one row is seeded at startup from
// configuration; there is no self-registration path.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	CreatedAt time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("admin not found")
