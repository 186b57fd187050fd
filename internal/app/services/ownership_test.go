package services_test

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCvLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cv, err := e.svc.Cv.CreateCv(ctx, &models.Cv{UserID: e.stranger.ID, Title: "Backend CV"}, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, e.seeker.ID, cv.UserID)

	title := "stolen"
	_, err = e.svc.Cv.UpdateCv(ctx, cv.ID, models.CvUpdate{Title: &title}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	_, err = e.svc.Cv.GetCv(ctx, cv.ID, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	stored, err := e.svc.Cv.GetCv(ctx, cv.ID, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, "Backend CV", stored.Title)

	title = "Senior backend CV"
	updated, err := e.svc.Cv.UpdateCv(ctx, cv.ID, models.CvUpdate{Title: &title}, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	assert.ErrorIs(t, e.svc.Cv.DeleteCv(ctx, cv.ID, e.stranger.Identity()), apperrors.ErrPermissionDenied)
	require.NoError(t, e.svc.Cv.DeleteCv(ctx, cv.ID, e.seeker.Identity()))
	assert.ErrorIs(t, e.svc.Cv.DeleteCv(ctx, cv.ID, e.seeker.Identity()), apperrors.ErrResourceNotFound)

	list, err := e.svc.Cv.ListCvs(ctx, e.seeker.Identity())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCompanyOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	empty, err := e.svc.Company.ListCompanies(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	created, err := e.svc.Company.CreateCompany(ctx, &models.Company{Name: "Barada Labs", IsVerified: true}, e.stranger.Identity())
	require.NoError(t, err)
	assert.Equal(t, e.stranger.ID, created.UserID)
	assert.False(t, created.IsVerified)

	name := "Renamed"
	_, err = e.svc.Company.UpdateCompany(ctx, e.company.ID, models.CompanyUpdate{Name: &name}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	unchanged, err := e.svc.Company.GetCompany(ctx, e.company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Qasioun Tech", unchanged.Name)

	_, err = e.svc.Company.UpdateCompany(ctx, "missing", models.CompanyUpdate{Name: &name}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	mine, err := e.svc.Company.ListCompanies(ctx, e.employer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, e.company.ID, mine[0].ID)
}

func TestUpdateUserOnlySelf(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	bio := "Looking for remote work"
	_, err := e.svc.User.UpdateUser(ctx, e.seeker.ID, models.UserUpdate{Bio: &bio}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = e.svc.User.UpdateUser(ctx, "missing", models.UserUpdate{Bio: &bio}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	updated, err := e.svc.User.UpdateUser(ctx, e.seeker.ID, models.UserUpdate{Bio: &bio}, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, bio, *updated.Bio)

	_, err = e.svc.User.UpdateUser(ctx, e.seeker.ID, models.UserUpdate{}, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	unchanged, err := e.svc.User.UpdateUser(ctx, e.seeker.ID, models.UserUpdate{}, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, bio, *unchanged.Bio)
}
