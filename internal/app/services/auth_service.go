package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/repositories"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

// AuthService verifies admin credentials against the legacy user table
type AuthService interface {
	// Login returns the matched admin user or apperrors.ErrInvalidCredentials.
	// The error never distinguishes unknown user, wrong password or missing
	// admin flag.
	Login(ctx context.Context, login, password string) (*models.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repositories.UserRepository, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// HashPassword returns the SHA1 hex digest the legacy schema stores.
// The digest choice is fixed by the pre-existing consumer platform database;
// this service cannot migrate it unilaterally.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login verifies admin credentials in a single lookup
func (s *authService) Login(ctx context.Context, login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindAdminByCredentials(ctx, login, HashPassword(password))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Info().Str("login", login).Msg("Admin authentication failed")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Admin authenticated")
	return user, nil
}
