package services

import (
	"context"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/rs/zerolog"
)

// SavedOpportunityService defines the bookmark operations of the caller
type SavedOpportunityService interface {
	ListSaved(ctx context.Context, actor models.Identity) ([]*models.SavedOpportunity, error)
	IsSaved(ctx context.Context, opportunityID string, actor models.Identity) (bool, error)
	Save(ctx context.Context, opportunityID string, actor models.Identity) (*models.SavedOpportunity, error)
	Unsave(ctx context.Context, opportunityID string, actor models.Identity) error
}

type savedOpportunityServiceImpl struct {
	savedRepo repositories.SavedOpportunityRepository
	logger    zerolog.Logger
}

// NewSavedOpportunityService creates a new SavedOpportunityService
func NewSavedOpportunityService(savedRepo repositories.SavedOpportunityRepository, logger zerolog.Logger) SavedOpportunityService {
	return &savedOpportunityServiceImpl{
		savedRepo: savedRepo,
		logger:    logger,
	}
}

func (s *savedOpportunityServiceImpl) ListSaved(ctx context.Context, actor models.Identity) ([]*models.SavedOpportunity, error) {
	return s.savedRepo.ListByUser(ctx, actor.ID)
}

func (s *savedOpportunityServiceImpl) IsSaved(ctx context.Context, opportunityID string, actor models.Identity) (bool, error) {
	return s.savedRepo.Exists(ctx, actor.ID, opportunityID)
}

// Save bookmarks an opportunity. Saving twice returns the existing bookmark.
func (s *savedOpportunityServiceImpl) Save(ctx context.Context, opportunityID string, actor models.Identity) (*models.SavedOpportunity, error) {
	return s.savedRepo.Save(ctx, actor.ID, opportunityID)
}

// Unsave removes a bookmark. Removing a missing bookmark is not an error.
func (s *savedOpportunityServiceImpl) Unsave(ctx context.Context, opportunityID string, actor models.Identity) error {
	return s.savedRepo.Delete(ctx, actor.ID, opportunityID)
}
