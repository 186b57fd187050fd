package auth_test

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *testutil.MemoryStore
	authz    *auth.AuthorizationService
	employer *models.User
	seeker   *models.User
	stranger *models.User
	company  *models.Company
	listing  *models.Opportunity
	app      *models.Application
	seekerCv *models.Cv
}

func newFixture(t *testing.T) *fixture {
	store := testutil.NewMemoryStore()
	f := &fixture{store: store, authz: auth.NewAuthorizationService(store.Repositories())}

	f.employer = store.SeedUser(t, "employer", models.UserTypeEmployer)
	f.seeker = store.SeedUser(t, "seeker", models.UserTypeIndividual)
	f.stranger = store.SeedUser(t, "stranger", models.UserTypeEmployer)
	f.company = store.SeedCompany(t, f.employer.ID, "Acme")
	f.listing = store.SeedOpportunity(t, f.company.ID, models.OpportunityTypeJob, models.ProvinceDamascus, models.OpportunityStatusApproved)
	f.seekerCv = store.SeedCv(t, f.seeker.ID, "My CV")

	f.app = &models.Application{ID: uuid.NewString(), OpportunityID: f.listing.ID, UserID: f.seeker.ID}
	require.NoError(t, store.Repositories().Applications.Create(context.Background(), f.app))
	return f
}

func TestValidateSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.authz.ValidateSelf(ctx, f.seeker.ID, f.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, f.seeker.ID, user.ID)

	_, err = f.authz.ValidateSelf(ctx, f.seeker.ID, f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.authz.ValidateSelf(ctx, "missing", f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestValidateCompanyOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authz.ValidateCompanyOwnership(ctx, f.company.ID, f.employer.Identity())
	assert.NoError(t, err)

	_, err = f.authz.ValidateCompanyOwnership(ctx, f.company.ID, f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.authz.ValidateCompanyOwnership(ctx, "missing", f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestValidateOpportunityOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	opp, err := f.authz.ValidateOpportunityOwnership(ctx, f.listing.ID, f.employer.Identity())
	require.NoError(t, err)
	assert.Equal(t, f.listing.ID, opp.ID)

	_, err = f.authz.ValidateOpportunityOwnership(ctx, f.listing.ID, f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.authz.ValidateOpportunityOwnership(ctx, "missing", f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestValidateApplicationAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authz.ValidateApplicationAccess(ctx, f.app.ID, f.seeker.Identity())
	assert.NoError(t, err, "applicant can read")

	_, err = f.authz.ValidateApplicationAccess(ctx, f.app.ID, f.employer.Identity())
	assert.NoError(t, err, "hiring company can read")

	_, err = f.authz.ValidateApplicationAccess(ctx, f.app.ID, f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.authz.ValidateApplicationAccess(ctx, "missing", f.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestValidateApplicationManagement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, opp, err := f.authz.ValidateApplicationManagement(ctx, f.app.ID, f.employer.Identity())
	require.NoError(t, err)
	assert.Equal(t, f.app.ID, app.ID)
	assert.Equal(t, f.listing.ID, opp.ID)

	_, _, err = f.authz.ValidateApplicationManagement(ctx, f.app.ID, f.seeker.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, "applicant cannot change status")
}

func TestValidateCvOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authz.ValidateCvOwnership(ctx, f.seekerCv.ID, f.seeker.Identity())
	assert.NoError(t, err)

	_, err = f.authz.ValidateCvOwnership(ctx, f.seekerCv.ID, f.employer.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.authz.ValidateCvOwnership(ctx, "missing", f.employer.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestRequireAdmin(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.authz.RequireAdmin(f.employer.Identity()), apperrors.ErrPermissionDenied)
	assert.NoError(t, f.authz.RequireAdmin(models.Identity{ID: "a", UserType: models.UserTypeAdmin}))
}
