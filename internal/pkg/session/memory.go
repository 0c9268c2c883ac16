package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

// MemoryStore is an in-process Store used in tests and single-node
// development setups where redis is not available.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create persists a new session
func (s *MemoryStore) Create(ctx context.Context, userID int64, isAdmin bool) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get loads a session by ID, expiring it lazily
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}

	if s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl {
		_ = s.Delete(ctx, id)
		return nil, apperrors.ErrSessionNotFound
	}

	return sess, nil
}

// Delete removes a session by ID
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
