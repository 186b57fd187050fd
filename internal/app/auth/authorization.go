package auth

import (
	"context"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/logger"
)

// Ownership failure messages returned to clients
const (
	msgNotYourAccount     = "You can only modify your own account"
	msgNotCompanyOwner    = "You do not own this company"
	msgNotListingOwner    = "You do not own this opportunity"
	msgNoApplicationRead  = "You do not have access to this application"
	msgNoApplicationWrite = "Only the hiring company can update this application"
	msgNotCvOwner         = "You do not own this CV"
	msgAdminOnly          = "Admin access required"
)

// AuthorizationService resolves a resource and checks that the actor may act on it.
// Every check loads the resource first so a missing resource reports not-found
// even when the actor would also be forbidden.
type AuthorizationService struct {
	users         repositories.UserRepository
	companies     repositories.CompanyRepository
	opportunities repositories.OpportunityRepository
	applications  repositories.ApplicationRepository
	cvs           repositories.CvRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(repos *repositories.Repositories) *AuthorizationService {
	return &AuthorizationService{
		users:         repos.Users,
		companies:     repos.Companies,
		opportunities: repos.Opportunities,
		applications:  repos.Applications,
		cvs:           repos.Cvs,
	}
}

// ValidateSelf allows the user to act on their own account only
func (s *AuthorizationService) ValidateSelf(ctx context.Context, userID string, actor models.Identity) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ID != actor.ID {
		logger.Warn().Str("userID", userID).Str("actorID", actor.ID).Msg("Denied account modification")
		return nil, apperrors.NewForbiddenError(msgNotYourAccount)
	}
	return user, nil
}

// ValidateCompanyOwnership returns the company if actor owns it
func (s *AuthorizationService) ValidateCompanyOwnership(ctx context.Context, companyID string, actor models.Identity) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.UserID != actor.ID {
		logger.Warn().Str("companyID", companyID).Str("actorID", actor.ID).Msg("Denied company access")
		return nil, apperrors.NewForbiddenError(msgNotCompanyOwner)
	}
	return company, nil
}

// ownsOpportunity reports whether actor owns the company that posted opp
func (s *AuthorizationService) ownsOpportunity(ctx context.Context, opp *models.Opportunity, actor models.Identity) (bool, error) {
	company, err := s.companies.GetByID(ctx, opp.CompanyID)
	if err != nil {
		return false, err
	}
	return company.UserID == actor.ID, nil
}

// ValidateOpportunityOwnership returns the opportunity if actor owns its company
func (s *AuthorizationService) ValidateOpportunityOwnership(ctx context.Context, opportunityID string, actor models.Identity) (*models.Opportunity, error) {
	opp, err := s.opportunities.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	owns, err := s.ownsOpportunity(ctx, opp, actor)
	if err != nil {
		return nil, err
	}
	if !owns {
		logger.Warn().Str("opportunityID", opportunityID).Str("actorID", actor.ID).Msg("Denied opportunity access")
		return nil, apperrors.NewForbiddenError(msgNotListingOwner)
	}
	return opp, nil
}

// ValidateApplicationAccess allows the applicant and the hiring company's owner
func (s *AuthorizationService) ValidateApplicationAccess(ctx context.Context, applicationID string, actor models.Identity) (*models.Application, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID == actor.ID {
		return app, nil
	}

	opp, err := s.opportunities.GetByID(ctx, app.OpportunityID)
	if err != nil {
		return nil, err
	}
	owns, err := s.ownsOpportunity(ctx, opp, actor)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperrors.NewForbiddenError(msgNoApplicationRead)
	}
	return app, nil
}

// ValidateApplicationManagement allows only the hiring company's owner
func (s *AuthorizationService) ValidateApplicationManagement(ctx context.Context, applicationID string, actor models.Identity) (*models.Application, *models.Opportunity, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}

	opp, err := s.opportunities.GetByID(ctx, app.OpportunityID)
	if err != nil {
		return nil, nil, err
	}
	owns, err := s.ownsOpportunity(ctx, opp, actor)
	if err != nil {
		return nil, nil, err
	}
	if !owns {
		logger.Warn().Str("applicationID", applicationID).Str("actorID", actor.ID).Msg("Denied application status change")
		return nil, nil, apperrors.NewForbiddenError(msgNoApplicationWrite)
	}
	return app, opp, nil
}

// ValidateCvOwnership returns the CV if actor owns it
func (s *AuthorizationService) ValidateCvOwnership(ctx context.Context, cvID string, actor models.Identity) (*models.Cv, error) {
	cv, err := s.cvs.GetByID(ctx, cvID)
	if err != nil {
		return nil, err
	}
	if cv.UserID != actor.ID {
		return nil, apperrors.NewForbiddenError(msgNotCvOwner)
	}
	return cv, nil
}

// RequireAdmin rejects every non-admin actor
func (s *AuthorizationService) RequireAdmin(actor models.Identity) error {
	if !actor.IsAdmin() {
		return apperrors.NewForbiddenError(msgAdminOnly)
	}
	return nil
}
