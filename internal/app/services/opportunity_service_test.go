package services_test

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListing(companyID string) *models.Opportunity {
	return &models.Opportunity{
		CompanyID:        companyID,
		Title:            "محاسب",
		Description:      "Accountant for a Homs office",
		Type:             models.OpportunityTypeJob,
		Province:         models.ProvinceHoms,
		Status:           models.OpportunityStatusApproved,
		ViewCount:        40,
		ApplicationCount: 7,
	}
}

func TestCreateOpportunityIsAlwaysPending(t *testing.T) {
	e := newEnv(t)

	opp, err := e.svc.Opportunity.CreateOpportunity(context.Background(), newListing(e.company.ID), e.employer.Identity())
	require.NoError(t, err)
	assert.Equal(t, models.OpportunityStatusPending, opp.Status)
	assert.Zero(t, opp.ViewCount)
	assert.Zero(t, opp.ApplicationCount)
	assert.Equal(t, "USD", opp.Currency)
	assert.Contains(t, e.events.Subjects(), events.SubjectOpportunityCreated)

	stored, err := e.store.Repositories().Opportunities.GetByID(context.Background(), opp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OpportunityStatusPending, stored.Status)
}

func TestCreateOpportunityOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.Opportunity.CreateOpportunity(ctx, newListing(e.company.ID), e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = e.svc.Opportunity.CreateOpportunity(ctx, newListing("missing-company"), e.employer.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestGetOpportunityCountsViews(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.svc.Opportunity.GetOpportunity(ctx, e.listing.ID)
	require.NoError(t, err)
	second, err := e.svc.Opportunity.GetOpportunity(ctx, e.listing.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ViewCount+1, second.ViewCount)

	stored, err := e.store.Repositories().Opportunities.GetByID(ctx, e.listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ViewCount)

	_, err = e.svc.Opportunity.GetOpportunity(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListOpportunitiesFilters(t *testing.T) {
	e := newEnv(t)
	e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeTraining, models.ProvinceDamascus, models.OpportunityStatusApproved)
	e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeJob, models.ProvinceAleppo, models.OpportunityStatusApproved)

	typ := models.OpportunityTypeJob
	province := models.ProvinceDamascus
	list, err := e.svc.Opportunity.ListOpportunities(context.Background(), models.OpportunityFilter{Type: &typ, Province: &province})
	require.NoError(t, err)
	require.Len(t, list, 1)
	for _, o := range list {
		assert.Equal(t, typ, o.Type)
		assert.Equal(t, province, o.Province)
	}
}

func TestListOpportunitiesSearchesTitleAndDescriptionOnly(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	listing := newListing(e.company.ID)
	titleEn := "Golang engineer"
	descriptionEn := "Remote golang position"
	listing.TitleEn = &titleEn
	listing.DescriptionEn = &descriptionEn
	require.NoError(t, e.store.Repositories().Opportunities.Create(ctx, listing))

	term := "GOLANG"
	list, err := e.svc.Opportunity.ListOpportunities(ctx, models.OpportunityFilter{Search: &term})
	require.NoError(t, err)
	assert.Empty(t, list)

	term = "accountant FOR a homs"
	list, err = e.svc.Opportunity.ListOpportunities(ctx, models.OpportunityFilter{Search: &term})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, listing.ID, list[0].ID)
}

func TestUpdateOpportunityByStrangerLeavesRecord(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	title := "hijacked"
	_, err := e.svc.Opportunity.UpdateOpportunity(ctx, e.listing.ID, models.OpportunityUpdate{Title: &title}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	stored, err := e.store.Repositories().Opportunities.GetByID(ctx, e.listing.ID)
	require.NoError(t, err)
	assert.Equal(t, e.listing.Title, stored.Title)
}

func TestOwnerMayOnlyCloseListing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	approve := models.OpportunityStatusApproved
	pending := e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeJob, models.ProvinceHama, models.OpportunityStatusPending)
	_, err := e.svc.Opportunity.UpdateOpportunity(ctx, pending.ID, models.OpportunityUpdate{Status: &approve}, e.employer.Identity())
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	expire := models.OpportunityStatusExpired
	closed, err := e.svc.Opportunity.UpdateOpportunity(ctx, e.listing.ID, models.OpportunityUpdate{Status: &expire}, e.employer.Identity())
	require.NoError(t, err)
	assert.Equal(t, models.OpportunityStatusExpired, closed.Status)
	assert.Contains(t, e.events.Subjects(), events.SubjectOpportunityStatusChanged)
}

func TestModerateOpportunity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	pending := e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeVolunteer, models.ProvinceLatakia, models.OpportunityStatusPending)

	_, err := e.svc.Opportunity.ModerateOpportunity(ctx, pending.ID, models.OpportunityStatusApproved, e.employer.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = e.svc.Opportunity.ModerateOpportunity(ctx, pending.ID, models.OpportunityStatusExpired, e.admin.Identity())
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	approved, err := e.svc.Opportunity.ModerateOpportunity(ctx, pending.ID, models.OpportunityStatusApproved, e.admin.Identity())
	require.NoError(t, err)
	assert.Equal(t, models.OpportunityStatusApproved, approved.Status)

	notes := e.notificationsOf(t, e.employer)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationTypeModeration, notes[0].Type)

	_, err = e.svc.Opportunity.ModerateOpportunity(ctx, "missing", models.OpportunityStatusApproved, e.admin.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
