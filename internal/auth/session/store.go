package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "showcase:session:" // Key for session data: showcase:session:{session_id}

	// TTL is the sliding expiry window for admin sessions. Every
	// authenticated request pushes the deadline out by this much.
	TTL = 24 * time.Hour
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind an admin's cookie.
type Session struct {
	AdminID    int64     `json:"admin_id"`
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Store keeps admin sessions in Redis, keyed by an opaque cookie ID.
type Store struct {
	client *redis.Client
}

// NewStore creates a new session store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Create persists a new session and returns its ID for the cookie.
func (s *Store) Create(ctx context.Context, adminID int64, username string) (string, error) {
	sess := Session{
		AdminID:    adminID,
		Username:   username,
		LoggedInAt: time.Now().UTC(),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	id := uuid.New().String()
	if err := s.client.Set(ctx, s.sessionKey(id), data, TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Get retrieves a session by ID.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Refresh pushes the session's expiry out by the full TTL window.
func (s *Store) Refresh(ctx context.Context, id string) error {
	ok, err := s.client.Expire(ctx, s.sessionKey(id), TTL).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Destroy removes a session. Destroying an unknown ID is not an error.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *Store) sessionKey(id string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, id)
}
