package services

import (
	"context"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/repositories"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
	"github.com/beartshare/admin-api/internal/pkg/helpers"
)

// UserService handles read-only user browsing and loyalty point tracking
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserPoints(ctx context.Context, userID int64) ([]*models.Point, error)
	GetUserPointsSummary(ctx context.Context, userID int64) (*models.PointsSummary, error)
	GetUserCashOuts(ctx context.Context, userID int64) ([]*models.RefPointCashOut, error)
	AwardPoints(ctx context.Context, userID, points int64, description string) (*models.Point, error)
}

// userService implements UserService
type userService struct {
	userRepo  *repositories.UserRepository
	pointRepo *repositories.PointRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository, pointRepo *repositories.PointRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		pointRepo: pointRepo,
	}
}

// GetAllUsers lists all users
func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUserByID retrieves a single user
func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("user ID must be positive")
	}
	return s.userRepo.GetByID(ctx, id)
}

// GetUserPoints lists a user's point awards
func (s *userService) GetUserPoints(ctx context.Context, userID int64) ([]*models.Point, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.pointRepo.GetByUserID(ctx, userID)
}

// GetUserPointsSummary aggregates a user's earned/spent/total points
func (s *userService) GetUserPointsSummary(ctx context.Context, userID int64) (*models.PointsSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.pointRepo.GetSummaryByUserID(ctx, userID)
}

// GetUserCashOuts lists a user's point redemptions
func (s *userService) GetUserCashOuts(ctx context.Context, userID int64) ([]*models.RefPointCashOut, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.pointRepo.GetCashOutsByUserID(ctx, userID)
}

// AwardPoints records a point award for a user
func (s *userService) AwardPoints(ctx context.Context, userID, points int64, description string) (*models.Point, error) {
	if points == 0 {
		return nil, apperrors.NewValidationError("points must be non-zero")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	point := &models.Point{
		UserID:      userID,
		Points:      points,
		Description: description,
		CreatedAt:   helpers.NowDBDateTime(),
	}
	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}

	return point, nil
}
