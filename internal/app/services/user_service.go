package services

import (
	"context"

	appauth "github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/rs/zerolog"
)

// UserService defines the profile operations
type UserService interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate, actor models.Identity) (*models.User, error)
}

type userServiceImpl struct {
	userRepo repositories.UserRepository
	authz    *appauth.AuthorizationService
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, authz *appauth.AuthorizationService, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		authz:    authz,
		logger:   logger,
	}
}

func (s *userServiceImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser patches the caller's own profile
func (s *userServiceImpl) UpdateUser(ctx context.Context, id string, upd models.UserUpdate, actor models.Identity) (*models.User, error) {
	current, err := s.authz.ValidateSelf(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return current, nil
	}

	user, err := s.userRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", id).Msg("User profile updated")
	return user, nil
}
