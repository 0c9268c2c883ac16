// Package seed guarantees that a default admin account exists so the panel
// is reachable on a fresh database.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/repositories"
	"github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
	"github.com/beartshare/admin-api/internal/pkg/helpers"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@beartshare.com"
)

// EnsureDefaultAdmin creates the default admin user when absent. If the
// username exists but lost its admin flag, the flag is restored.
func EnsureDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	existing, err := userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err == nil {
		if existing.Admin != 1 {
			lgr.Warn().Int64("userId", existing.ID).Msg("Default admin user lost its admin flag, restoring")
			return userRepo.SetAdminFlag(ctx, existing.ID, 1)
		}
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	admin := &models.User{
		Username:   defaultAdminUsername,
		Password:   services.HashPassword(defaultAdminPassword),
		Name:       "Admin",
		Email:      defaultAdminEmail,
		Admin:      1,
		Level:      1,
		MailVerify: 1,
		CreatedAt:  helpers.NowDBDateTime(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Int64("userId", admin.ID).Msg("Default admin user created")
	return nil
}
