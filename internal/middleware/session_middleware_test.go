package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beartshare/admin-api/internal/pkg/session"
)

const testCookieName = "admin_session"

func newGatedRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gate := NewSessionMiddleware(store, testCookieName)

	router := gin.New()
	protected := router.Group("")
	protected.Use(gate.RequireAdmin())
	protected.POST("/blog-posts", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user id missing from context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestRequireAdminRejectsMissingCookie(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blog-posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsUnknownSession(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blog-posts", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale-session-id"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsNonAdminSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	sess, err := store.Create(context.Background(), 5, false)
	require.NoError(t, err)

	router := newGatedRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blog-posts", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: sess.ID})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAllowsAdminSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	sess, err := store.Create(context.Background(), 5, true)
	require.NoError(t, err)

	router := newGatedRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blog-posts", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: sess.ID})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":5`)
}
