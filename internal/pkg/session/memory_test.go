package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	sess, err := store.Create(ctx, 42, true)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(42), sess.UserID)
	assert.True(t, sess.IsAdmin)

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, loaded.UserID)

	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Nanosecond)

	sess, err := store.Create(ctx, 7, false)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
