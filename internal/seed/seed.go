package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/hamzak/maktab/internal/app/models"
	appRepos "github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@maktab.app"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData creates the default super admin account if none exists,
// so a fresh deployment has a way in. The password comes from
// SEED_ADMIN_PASSWORD when set.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	_, err := userRepo.GetFirstUserByRole(ctx, appModels.RoleSuperAdmin)
	if err == nil {
		lgr.Debug().Msg("Super admin account already present, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for existing super admin")
		return err
	}

	password := defaultAdminPassword
	if fromEnv := os.Getenv("SEED_ADMIN_PASSWORD"); fromEnv != "" {
		password = fromEnv
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: hashed,
		UserRole: appModels.RoleSuperAdmin,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default super admin")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default super admin created")
	return nil
}
