package services

import (
	"context"

	appauth "github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CvService defines the resume operations. Every CV is private to its owner.
type CvService interface {
	ListCvs(ctx context.Context, actor models.Identity) ([]*models.Cv, error)
	GetCv(ctx context.Context, id string, actor models.Identity) (*models.Cv, error)
	CreateCv(ctx context.Context, cv *models.Cv, actor models.Identity) (*models.Cv, error)
	UpdateCv(ctx context.Context, id string, upd models.CvUpdate, actor models.Identity) (*models.Cv, error)
	DeleteCv(ctx context.Context, id string, actor models.Identity) error
}

type cvServiceImpl struct {
	cvRepo repositories.CvRepository
	authz  *appauth.AuthorizationService
	logger zerolog.Logger
}

// NewCvService creates a new CvService
func NewCvService(cvRepo repositories.CvRepository, authz *appauth.AuthorizationService, logger zerolog.Logger) CvService {
	return &cvServiceImpl{
		cvRepo: cvRepo,
		authz:  authz,
		logger: logger,
	}
}

func (s *cvServiceImpl) ListCvs(ctx context.Context, actor models.Identity) ([]*models.Cv, error) {
	return s.cvRepo.ListByUser(ctx, actor.ID)
}

func (s *cvServiceImpl) GetCv(ctx context.Context, id string, actor models.Identity) (*models.Cv, error) {
	return s.authz.ValidateCvOwnership(ctx, id, actor)
}

func (s *cvServiceImpl) CreateCv(ctx context.Context, cv *models.Cv, actor models.Identity) (*models.Cv, error) {
	cv.ID = uuid.NewString()
	cv.UserID = actor.ID

	if err := s.cvRepo.Create(ctx, cv); err != nil {
		return nil, err
	}
	return cv, nil
}

func (s *cvServiceImpl) UpdateCv(ctx context.Context, id string, upd models.CvUpdate, actor models.Identity) (*models.Cv, error) {
	if _, err := s.authz.ValidateCvOwnership(ctx, id, actor); err != nil {
		return nil, err
	}
	return s.cvRepo.Update(ctx, id, upd)
}

// DeleteCv removes a CV. Applications that referenced it keep existing without one.
func (s *cvServiceImpl) DeleteCv(ctx context.Context, id string, actor models.Identity) error {
	if _, err := s.authz.ValidateCvOwnership(ctx, id, actor); err != nil {
		return err
	}
	if err := s.cvRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("cvID", id).Str("userID", actor.ID).Msg("CV deleted")
	return nil
}
