package services

import (
	"context"
	"fmt"

	appauth "github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OpportunityService defines the listing operations
type OpportunityService interface {
	ListOpportunities(ctx context.Context, filter models.OpportunityFilter) ([]*models.Opportunity, error)
	GetOpportunity(ctx context.Context, id string) (*models.Opportunity, error)
	CreateOpportunity(ctx context.Context, opp *models.Opportunity, actor models.Identity) (*models.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id string, upd models.OpportunityUpdate, actor models.Identity) (*models.Opportunity, error)
	ModerateOpportunity(ctx context.Context, id string, status models.OpportunityStatus, actor models.Identity) (*models.Opportunity, error)
}

type opportunityServiceImpl struct {
	oppRepo       repositories.OpportunityRepository
	companyRepo   repositories.CompanyRepository
	authz         *appauth.AuthorizationService
	stats         StatsService
	notifications NotificationService
	events        events.Publisher
	logger        zerolog.Logger
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(
	oppRepo repositories.OpportunityRepository,
	companyRepo repositories.CompanyRepository,
	authz *appauth.AuthorizationService,
	stats StatsService,
	notifications NotificationService,
	publisher events.Publisher,
	logger zerolog.Logger,
) OpportunityService {
	return &opportunityServiceImpl{
		oppRepo:       oppRepo,
		companyRepo:   companyRepo,
		authz:         authz,
		stats:         stats,
		notifications: notifications,
		events:        publisher,
		logger:        logger,
	}
}

type opportunityEvent struct {
	OpportunityID string                   `json:"opportunityId"`
	CompanyID     string                   `json:"companyId"`
	Type          models.OpportunityType   `json:"type"`
	Province      models.Province          `json:"province"`
	Status        models.OpportunityStatus `json:"status"`
	PrevStatus    models.OpportunityStatus `json:"previousStatus,omitempty"`
}

func (s *opportunityServiceImpl) ListOpportunities(ctx context.Context, filter models.OpportunityFilter) ([]*models.Opportunity, error) {
	return s.oppRepo.List(ctx, filter)
}

// GetOpportunity returns a listing and counts the view. The returned record
// carries the count as it was read.
func (s *opportunityServiceImpl) GetOpportunity(ctx context.Context, id string) (*models.Opportunity, error) {
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.oppRepo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("opportunityID", id).Msg("Failed to increment view count")
	}
	return opp, nil
}

// CreateOpportunity stores a pending listing for a company the caller owns
func (s *opportunityServiceImpl) CreateOpportunity(ctx context.Context, opp *models.Opportunity, actor models.Identity) (*models.Opportunity, error) {
	if _, err := s.authz.ValidateCompanyOwnership(ctx, opp.CompanyID, actor); err != nil {
		return nil, err
	}

	opp.ID = uuid.NewString()
	opp.Status = models.OpportunityStatusPending
	opp.ViewCount = 0
	opp.ApplicationCount = 0
	opp.AIMatchScore = nil
	if opp.Currency == "" {
		opp.Currency = "USD"
	}

	if err := s.oppRepo.Create(ctx, opp); err != nil {
		return nil, err
	}

	s.logger.Info().Str("opportunityID", opp.ID).Str("companyID", opp.CompanyID).Msg("Opportunity created")
	publishEvent(ctx, s.events, s.logger, events.SubjectOpportunityCreated, opportunityEvent{
		OpportunityID: opp.ID,
		CompanyID:     opp.CompanyID,
		Type:          opp.Type,
		Province:      opp.Province,
		Status:        opp.Status,
	})
	return opp, nil
}

// UpdateOpportunity patches a listing owned by the caller. Owners may only
// change the status to close an approved listing.
func (s *opportunityServiceImpl) UpdateOpportunity(ctx context.Context, id string, upd models.OpportunityUpdate, actor models.Identity) (*models.Opportunity, error) {
	current, err := s.authz.ValidateOpportunityOwnership(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		switch {
		case *upd.Status == current.Status:
			upd.Status = nil
		case current.Status == models.OpportunityStatusApproved && *upd.Status == models.OpportunityStatusExpired:
		default:
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition,
				"Owners can only close an approved opportunity")
		}
	}

	updated, err := s.oppRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if updated.Status != current.Status {
		s.statusChanged(ctx, updated, current.Status)
	} else if current.Status == models.OpportunityStatusApproved {
		// type or province edits move an approved listing between counters
		s.stats.Invalidate(ctx)
	}
	return updated, nil
}

// ModerateOpportunity applies an admin status change
func (s *opportunityServiceImpl) ModerateOpportunity(ctx context.Context, id string, status models.OpportunityStatus, actor models.Identity) (*models.Opportunity, error) {
	if err := s.authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	current, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition,
			fmt.Sprintf("Cannot change status from %s to %s", current.Status, status))
	}

	updated, err := s.oppRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("opportunityID", id).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Str("adminID", actor.ID).
		Msg("Opportunity moderated")

	s.statusChanged(ctx, updated, current.Status)
	s.notifyOwner(ctx, updated)
	return updated, nil
}

func (s *opportunityServiceImpl) statusChanged(ctx context.Context, opp *models.Opportunity, prev models.OpportunityStatus) {
	s.stats.Invalidate(ctx)
	publishEvent(ctx, s.events, s.logger, events.SubjectOpportunityStatusChanged, opportunityEvent{
		OpportunityID: opp.ID,
		CompanyID:     opp.CompanyID,
		Type:          opp.Type,
		Province:      opp.Province,
		Status:        opp.Status,
		PrevStatus:    prev,
	})
}

func (s *opportunityServiceImpl) notifyOwner(ctx context.Context, opp *models.Opportunity) {
	company, err := s.companyRepo.GetByID(ctx, opp.CompanyID)
	if err != nil {
		s.logger.Warn().Err(err).Str("opportunityID", opp.ID).Msg("Could not resolve listing owner for notification")
		return
	}

	link := "/opportunities/" + opp.ID
	s.notifications.Notify(ctx, &models.Notification{
		UserID:  company.UserID,
		Title:   "Opportunity " + string(opp.Status),
		Content: fmt.Sprintf("Your listing %q is now %s", opp.Title, opp.Status),
		Type:    models.NotificationTypeModeration,
		Link:    &link,
	})
}
