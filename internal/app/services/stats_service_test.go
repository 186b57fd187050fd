package services_test

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountApprovedOnly(t *testing.T) {
	e := newEnv(t)
	e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeTraining, models.ProvinceAleppo, models.OpportunityStatusApproved)
	e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeVolunteer, models.ProvinceAleppo, models.OpportunityStatusPending)

	stats, err := e.svc.Stats.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Jobs)
	assert.Equal(t, int64(1), stats.Training)
	assert.Equal(t, int64(0), stats.Volunteer)
	assert.Equal(t, int64(2), stats.Total)
}

func TestProvinceStatsAreZeroFilled(t *testing.T) {
	e := newEnv(t)

	stats, err := e.svc.Stats.GetProvinceStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, len(models.Provinces))
	for i, s := range stats {
		assert.Equal(t, models.Provinces[i], s.Province)
		if s.Province == models.ProvinceDamascus {
			assert.Equal(t, int64(1), s.Count)
		} else {
			assert.Zero(t, s.Count)
		}
	}
}

func TestStatsCacheIsInvalidatedByModeration(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	pending := e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeJob, models.ProvinceIdlib, models.OpportunityStatusPending)

	before, err := e.svc.Stats.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), before.Jobs)

	// seeded directly, so the cached value is stale until something invalidates it
	e.store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeJob, models.ProvinceIdlib, models.OpportunityStatusApproved)
	cached, err := e.svc.Stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.Jobs)

	_, err = e.svc.Opportunity.ModerateOpportunity(ctx, pending.ID, models.OpportunityStatusApproved, e.admin.Identity())
	require.NoError(t, err)

	fresh, err := e.svc.Stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fresh.Jobs)
}
