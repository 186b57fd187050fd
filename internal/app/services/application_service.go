package services

import (
	"context"
	"fmt"

	appauth "github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/events"
	"github.com/findjobsyria/api/internal/pkg/helpers"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ApplicationService defines the apply and review operations
type ApplicationService interface {
	ListApplications(ctx context.Context, query dto.ApplicationListQuery, actor models.Identity) ([]*models.Application, error)
	GetApplication(ctx context.Context, id string, actor models.Identity) (*models.Application, error)
	CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest, actor models.Identity) (*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, actor models.Identity) (*models.Application, error)
}

type applicationServiceImpl struct {
	appRepo       repositories.ApplicationRepository
	oppRepo       repositories.OpportunityRepository
	companyRepo   repositories.CompanyRepository
	authz         *appauth.AuthorizationService
	notifications NotificationService
	events        events.Publisher
	logger        zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	repos *repositories.Repositories,
	authz *appauth.AuthorizationService,
	notifications NotificationService,
	publisher events.Publisher,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		appRepo:       repos.Applications,
		oppRepo:       repos.Opportunities,
		companyRepo:   repos.Companies,
		authz:         authz,
		notifications: notifications,
		events:        publisher,
		logger:        logger,
	}
}

type applicationEvent struct {
	ApplicationID string                   `json:"applicationId"`
	OpportunityID string                   `json:"opportunityId"`
	UserID        string                   `json:"userId"`
	Status        models.ApplicationStatus `json:"status"`
}

// ListApplications lists the applications of one opportunity (for its owner)
// or of one applicant (for themselves). opportunityId wins when both are given.
func (s *applicationServiceImpl) ListApplications(ctx context.Context, query dto.ApplicationListQuery, actor models.Identity) ([]*models.Application, error) {
	switch {
	case query.OpportunityID != "":
		if _, err := s.authz.ValidateOpportunityOwnership(ctx, query.OpportunityID, actor); err != nil {
			return nil, err
		}
		return s.appRepo.ListByOpportunity(ctx, query.OpportunityID)

	case query.UserID != "":
		if query.UserID != actor.ID {
			return nil, apperrors.NewForbiddenError("You can only list your own applications")
		}
		return s.appRepo.ListByUser(ctx, query.UserID)
	}

	return nil, apperrors.NewBadRequestError("userId or opportunityId required")
}

func (s *applicationServiceImpl) GetApplication(ctx context.Context, id string, actor models.Identity) (*models.Application, error) {
	return s.authz.ValidateApplicationAccess(ctx, id, actor)
}

// CreateApplication applies the caller to an opportunity
func (s *applicationServiceImpl) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest, actor models.Identity) (*models.Application, error) {
	opp, err := s.oppRepo.GetByID(ctx, req.OpportunityID)
	if err != nil {
		return nil, err
	}

	cvID := helpers.NormalizeOptional(req.CvID)
	if cvID != nil {
		if _, err := s.authz.ValidateCvOwnership(ctx, *cvID, actor); err != nil {
			return nil, err
		}
	}

	app := &models.Application{
		ID:            uuid.NewString(),
		OpportunityID: opp.ID,
		UserID:        actor.ID,
		CvID:          cvID,
		CoverLetter:   helpers.NormalizeOptional(req.CoverLetter),
		Status:        models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("applicationID", app.ID).
		Str("opportunityID", opp.ID).
		Str("userID", actor.ID).
		Msg("Application submitted")

	if company, err := s.companyRepo.GetByID(ctx, opp.CompanyID); err != nil {
		s.logger.Warn().Err(err).Str("opportunityID", opp.ID).Msg("Could not resolve listing owner for notification")
	} else {
		link := "/dashboard/applications/" + app.ID
		s.notifications.Notify(ctx, &models.Notification{
			UserID:  company.UserID,
			Title:   "New application",
			Content: fmt.Sprintf("%s applied to %q", actor.FullName, opp.Title),
			Type:    models.NotificationTypeApplication,
			Link:    &link,
		})
	}

	publishEvent(ctx, s.events, s.logger, events.SubjectApplicationCreated, applicationEvent{
		ApplicationID: app.ID,
		OpportunityID: app.OpportunityID,
		UserID:        app.UserID,
		Status:        app.Status,
	})
	return app, nil
}

// UpdateApplicationStatus lets the hiring company review an application
func (s *applicationServiceImpl) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, actor models.Identity) (*models.Application, error) {
	current, opp, err := s.authz.ValidateApplicationManagement(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}

	app, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	link := "/applications/" + app.ID
	s.notifications.Notify(ctx, &models.Notification{
		UserID:  app.UserID,
		Title:   "Application update",
		Content: fmt.Sprintf("Your application to %q is now %s", opp.Title, app.Status),
		Type:    models.NotificationTypeApplicationStatus,
		Link:    &link,
	})

	publishEvent(ctx, s.events, s.logger, events.SubjectApplicationStatusChanged, applicationEvent{
		ApplicationID: app.ID,
		OpportunityID: app.OpportunityID,
		UserID:        app.UserID,
		Status:        app.Status,
	})
	return app, nil
}
