package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

type stubUserService struct {
	user *models.User
	err  error
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return nil, s.err
}

func (s *stubUserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) GetUserPoints(ctx context.Context, userID int64) ([]*models.Point, error) {
	return nil, s.err
}

func (s *stubUserService) GetUserPointsSummary(ctx context.Context, userID int64) (*models.PointsSummary, error) {
	return nil, s.err
}

func (s *stubUserService) GetUserCashOuts(ctx context.Context, userID int64) ([]*models.RefPointCashOut, error) {
	return nil, s.err
}

func (s *stubUserService) AwardPoints(ctx context.Context, userID, points int64, description string) (*models.Point, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Point{UserID: userID, Points: points, Description: description}, nil
}

func newUserRouter(svc *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUserController(svc)

	router := gin.New()
	router.GET("/users/:id", controller.GetUser)
	router.POST("/users/:id/points", controller.AwardPoints)
	return router
}

func TestGetUserRejectsNonNumericID(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"VAL_001"`)
	assert.Contains(t, w.Body.String(), `"field":"id"`)
	assert.Contains(t, w.Body.String(), "id: must be a positive integer")
}

func TestGetUserNotFound(t *testing.T) {
	router := newUserRouter(&stubUserService{err: apperrors.ErrUserNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"RES_001"`)
}

func TestAwardPointsRejectsMalformedPayload(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/1/points",
		strings.NewReader(`{"points":"not-a-number"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"VAL_001"`)
	assert.Contains(t, w.Body.String(), `"details"`)
}

func TestAwardPointsAccepted(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/1/points",
		strings.NewReader(`{"points":100,"description":"Referral bonus"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"points":100`)
}
