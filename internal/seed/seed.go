package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminAccount describes the moderator account created at startup
type AdminAccount struct {
	Email    string
	Password string
	Username string
}

// EnsureAdmin creates the admin account if no user with its email exists yet.
// An empty email disables seeding. Existing accounts are never modified.
func EnsureAdmin(ctx context.Context, users repositories.UserRepository, account AdminAccount, bcryptCost int, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if email == "" {
		lgr.Debug().Msg("Admin seeding disabled")
		return nil
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.UserType != models.UserTypeAdmin {
			lgr.Warn().Str("email", email).Msg("Seed admin email belongs to a non-admin account, leaving it untouched")
		}
		return nil
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := auth.HashPasswordWithCost(account.Password, bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := account.Username
	if username == "" {
		username = "admin"
	}

	admin := &models.User{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      &hash,
		Username:          username,
		FullName:          "Administrator",
		UserType:          models.UserTypeAdmin,
		IsVerified:        true,
		PreferredLanguage: "ar",
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", email).Str("userID", admin.ID).Msg("Admin account created")
	return nil
}
