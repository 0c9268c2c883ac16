// Package session provides the server-side session store backing the admin
// authentication gate. Sessions are opaque: the client only ever holds the
// random session ID in a cookie.
package session

import (
	"context"
	"time"
)

// Session is the state established at login and checked on every gated request.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store abstracts the key-value backing store so the gate can be tested
// against an in-memory implementation.
type Store interface {
	// Create persists the session under a fresh ID and returns it.
	Create(ctx context.Context, userID int64, isAdmin bool) (*Session, error)
	// Get returns the session for the given ID, or apperrors.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Delete removes the session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
