package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/middleware"
	"github.com/beartshare/admin-api/internal/pkg/helpers"
	"github.com/beartshare/admin-api/internal/pkg/session"
)

// AuthController handles admin login, logout and session checks
type AuthController struct {
	authService services.AuthService
	store       session.Store
	gate        *middleware.SessionMiddleware
	cookieName  string
	sessionTTL  string
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, store session.Store, gate *middleware.SessionMiddleware, cookieName, sessionTTL string) *AuthController {
	return &AuthController{
		authService: authService,
		store:       store,
		gate:        gate,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
	}
}

// Login handles admin authentication
// @Summary Admin login
// @Description Verifies admin credentials and establishes a server-side session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Authenticated"
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or not an admin"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username and password required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sess, err := c.store.Create(ctx, user.ID, user.IsAdmin())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ttl := helpers.ParseDuration(c.sessionTTL, 24*time.Hour)
	ctx.SetCookie(c.cookieName, sess.ID, int(ttl.Seconds()), "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User: dto.LoginUser{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Email:    user.Email,
		},
	})
}

// Logout destroys the current session
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Session destroyed"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie(c.cookieName); err == nil && sessionID != "" {
		if err := c.store.Delete(ctx, sessionID); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	// Expire the cookie regardless of whether a session existed
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}

// AuthCheck reports whether the request carries an authenticated admin session
// @Summary Session check
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthCheckResponse "Session state"
// @Router /auth-check [get]
func (c *AuthController) AuthCheck(ctx *gin.Context) {
	sess := c.gate.CurrentSession(ctx)
	if sess == nil || !sess.IsAdmin {
		ctx.JSON(http.StatusOK, dto.AuthCheckResponse{Authenticated: false})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthCheckResponse{
		Authenticated: true,
		UserID:        &sess.UserID,
	})
}
