package services

import (
	"context"

	appauth "github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CompanyService defines the employer profile operations
type CompanyService interface {
	ListCompanies(ctx context.Context, userID string) ([]*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	CreateCompany(ctx context.Context, company *models.Company, actor models.Identity) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, upd models.CompanyUpdate, actor models.Identity) (*models.Company, error)
}

type companyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repositories.CompanyRepository, authz *appauth.AuthorizationService, logger zerolog.Logger) CompanyService {
	return &companyServiceImpl{
		companyRepo: companyRepo,
		authz:       authz,
		logger:      logger,
	}
}

// ListCompanies returns the companies owned by userID. Without a user the list is empty.
func (s *companyServiceImpl) ListCompanies(ctx context.Context, userID string) ([]*models.Company, error) {
	if userID == "" {
		return []*models.Company{}, nil
	}
	return s.companyRepo.ListByUser(ctx, userID)
}

func (s *companyServiceImpl) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// CreateCompany stores a company owned by the caller
func (s *companyServiceImpl) CreateCompany(ctx context.Context, company *models.Company, actor models.Identity) (*models.Company, error) {
	company.ID = uuid.NewString()
	company.UserID = actor.ID
	company.IsVerified = false

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info().Str("companyID", company.ID).Str("userID", actor.ID).Msg("Company created")
	return company, nil
}

// UpdateCompany patches a company owned by the caller
func (s *companyServiceImpl) UpdateCompany(ctx context.Context, id string, upd models.CompanyUpdate, actor models.Identity) (*models.Company, error) {
	if _, err := s.authz.ValidateCompanyOwnership(ctx, id, actor); err != nil {
		return nil, err
	}
	return s.companyRepo.Update(ctx, id, upd)
}
