package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/pkg/session"
)

// Context keys set by the session gate for downstream handlers.
const (
	ContextUserIDKey  = "userID"
	ContextIsAdminKey = "isAdmin"
)

// SessionMiddleware gates mutating routes behind an authenticated admin
// session. The session store is injected so the gate can be tested against
// the in-memory implementation.
type SessionMiddleware struct {
	store      session.Store
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(store session.Store, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookieName: cookieName,
	}
}

// CookieName returns the configured session cookie name
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// RequireAdmin passes the request through only when it carries a session
// with both a resolved user ID and the admin flag. Anything else is a 401;
// the response never says which condition failed.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.resolve(c)
		if sess == nil || sess.UserID == 0 || !sess.IsAdmin {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserIDKey, sess.UserID)
		c.Set(ContextIsAdminKey, sess.IsAdmin)

		c.Next()
	}
}

// resolve loads the session referenced by the request cookie, or nil
func (m *SessionMiddleware) resolve(c *gin.Context) *session.Session {
	sessionID, err := c.Cookie(m.cookieName)
	if err != nil || sessionID == "" {
		return nil
	}

	sess, err := m.store.Get(c.Request.Context(), sessionID)
	if err != nil {
		return nil
	}

	return sess
}

// CurrentSession exposes the resolved session for non-gated handlers like
// the auth-check endpoint. Returns nil when the request carries no valid
// session.
func (m *SessionMiddleware) CurrentSession(c *gin.Context) *session.Session {
	return m.resolve(c)
}

// GetUserID returns the authenticated user ID set by RequireAdmin
func GetUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
