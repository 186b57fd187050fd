package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedRoutesRequireSession(t *testing.T) {
	env := newAPIEnv(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/companies"},
		{http.MethodPost, "/api/opportunities"},
		{http.MethodGet, "/api/applications?userId=x"},
		{http.MethodGet, "/api/cvs"},
		{http.MethodGet, "/api/messages/conversations"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodGet, "/api/saved"},
		{http.MethodPost, "/api/uploads"},
	} {
		w := env.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.path)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Code, tc.path)
	}
}

func TestNonOwnerPatchIsForbiddenAndChangesNothing(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()
	owner := env.store.SeedUser(t, "owner", models.UserTypeEmployer)
	stranger := env.store.SeedUser(t, "stranger", models.UserTypeEmployer)
	company := env.store.SeedCompany(t, owner.ID, "Qasioun Tech")
	opp := env.store.SeedOpportunity(t, company.ID, models.OpportunityTypeJob, models.ProvinceDamascus, models.OpportunityStatusApproved)
	cv := env.store.SeedCv(t, owner.ID, "My CV")
	token := env.login(t, stranger)

	w := env.do(t, http.MethodPatch, "/api/companies/"+company.ID, token, gin.H{"name": "Taken over"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodPatch, "/api/opportunities/"+opp.ID, token, gin.H{"title": "Taken over"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodPatch, "/api/cvs/"+cv.ID, token, gin.H{"title": "Taken over"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodDelete, "/api/cvs/"+cv.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	storedCompany, err := env.store.Repositories().Companies.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Qasioun Tech", storedCompany.Name)
	storedOpp, err := env.store.Repositories().Opportunities.GetByID(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, opp.Title, storedOpp.Title)
	storedCv, err := env.store.Repositories().Cvs.GetByID(ctx, cv.ID)
	require.NoError(t, err)
	assert.Equal(t, "My CV", storedCv.Title)
}

func TestNotFoundBeatsForbidden(t *testing.T) {
	env := newAPIEnv(t)
	token := env.login(t, env.store.SeedUser(t, "stranger", models.UserTypeEmployer))

	for _, path := range []string{"/api/companies/missing", "/api/opportunities/missing", "/api/cvs/missing"} {
		w := env.do(t, http.MethodPatch, path, token, gin.H{"title": "x", "name": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, decodeError(t, w).Code, path)
	}
}

func TestEmployerPublishesAndAdminModerates(t *testing.T) {
	env := newAPIEnv(t)
	employer := env.store.SeedUser(t, "owner", models.UserTypeEmployer)
	admin := env.store.SeedUser(t, "root", models.UserTypeAdmin)
	employerToken := env.login(t, employer)

	w := env.do(t, http.MethodPost, "/api/companies", employerToken, gin.H{"name": "Qasioun Tech", "province": "damascus"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var company models.Company
	decode(t, w, &company)
	assert.Equal(t, employer.ID, company.UserID)

	w = env.do(t, http.MethodPost, "/api/opportunities", employerToken, gin.H{
		"companyId":   company.ID,
		"title":       "مطور واجهات",
		"description": "React developer",
		"type":        "job",
		"province":    "aleppo",
		"status":      "approved",
		"viewCount":   99,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var opp models.Opportunity
	decode(t, w, &opp)
	assert.Equal(t, models.OpportunityStatusPending, opp.Status)
	assert.Zero(t, opp.ViewCount)
	assert.Equal(t, "USD", opp.Currency)

	// Pending listings are not counted
	w = env.do(t, http.MethodGet, "/api/stats", "", nil)
	var stats dto.StatsResponse
	decode(t, w, &stats)
	assert.Zero(t, stats.Total)

	w = env.do(t, http.MethodPatch, "/api/opportunities/"+opp.ID+"/status", employerToken, gin.H{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := env.login(t, admin)
	w = env.do(t, http.MethodPatch, "/api/opportunities/"+opp.ID+"/status", adminToken, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPatch, "/api/opportunities/"+opp.ID+"/status", adminToken, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Code)

	w = env.do(t, http.MethodGet, "/api/stats", "", nil)
	decode(t, w, &stats)
	assert.Equal(t, dto.StatsResponse{Jobs: 1, Total: 1}, stats)

	w = env.do(t, http.MethodGet, "/api/stats/provinces", "", nil)
	var provinces []dto.ProvinceStat
	decode(t, w, &provinces)
	require.Len(t, provinces, len(models.Provinces))
	for _, p := range provinces {
		if p.Province == models.ProvinceAleppo {
			assert.Equal(t, int64(1), p.Count)
		} else {
			assert.Zero(t, p.Count, p.Province)
		}
	}

	w = env.do(t, http.MethodGet, "/api/opportunities?type=job&province=aleppo", "", nil)
	var listed []models.Opportunity
	decode(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, opp.ID, listed[0].ID)

	w = env.do(t, http.MethodGet, "/api/opportunities?province=atlantis", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpportunityDetailCountsViews(t *testing.T) {
	env := newAPIEnv(t)
	owner := env.store.SeedUser(t, "owner", models.UserTypeEmployer)
	company := env.store.SeedCompany(t, owner.ID, "Qasioun Tech")
	opp := env.store.SeedOpportunity(t, company.ID, models.OpportunityTypeTraining, models.ProvinceHoms, models.OpportunityStatusApproved)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/opportunities/"+opp.ID, "", nil).Code)
	}

	stored, err := env.store.Repositories().Opportunities.GetByID(context.Background(), opp.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.ViewCount)
}

func TestOpportunitySearchIgnoresEnglishColumns(t *testing.T) {
	env := newAPIEnv(t)
	owner := env.store.SeedUser(t, "owner", models.UserTypeEmployer)
	company := env.store.SeedCompany(t, owner.ID, "Qasioun Tech")
	opp := env.store.SeedOpportunity(t, company.ID, models.OpportunityTypeJob, models.ProvinceDamascus, models.OpportunityStatusApproved)
	titleEn := "Golang engineer"
	_, err := env.store.Repositories().Opportunities.Update(context.Background(), opp.ID, models.OpportunityUpdate{TitleEn: &titleEn})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/opportunities?search=golang", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Opportunity
	decode(t, w, &listed)
	assert.Empty(t, listed)

	w = env.do(t, http.MethodGet, "/api/opportunities?search=BACKEND", "", nil)
	decode(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, opp.ID, listed[0].ID)
}

func TestApplicationFlow(t *testing.T) {
	env := newAPIEnv(t)
	owner := env.store.SeedUser(t, "owner", models.UserTypeEmployer)
	seeker := env.store.SeedUser(t, "seeker", models.UserTypeIndividual)
	company := env.store.SeedCompany(t, owner.ID, "Qasioun Tech")
	opp := env.store.SeedOpportunity(t, company.ID, models.OpportunityTypeJob, models.ProvinceDamascus, models.OpportunityStatusApproved)
	cv := env.store.SeedCv(t, seeker.ID, "Seeker CV")
	seekerToken, ownerToken := env.login(t, seeker), env.login(t, owner)

	w := env.do(t, http.MethodPost, "/api/applications", seekerToken, gin.H{"opportunityId": opp.ID, "cvId": cv.ID, "coverLetter": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var app models.Application
	decode(t, w, &app)
	assert.Equal(t, seeker.ID, app.UserID)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	w = env.do(t, http.MethodGet, "/api/applications", seekerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/applications?userId="+owner.ID, seekerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/applications?opportunityId="+opp.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var received []models.Application
	decode(t, w, &received)
	require.Len(t, received, 1)

	w = env.do(t, http.MethodPatch, "/api/applications/"+app.ID, seekerToken, gin.H{"status": "accepted"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPatch, "/api/applications/"+app.ID, ownerToken, gin.H{"status": "shortlisted"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The applicant is told about the review, the owner about the application
	w = env.do(t, http.MethodGet, "/api/notifications", seekerToken, nil)
	var notes []models.Notification
	decode(t, w, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "application_status", notes[0].Type)

	w = env.do(t, http.MethodPatch, "/api/notifications/read-all", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"updated":1}`, w.Body.String())

	stored, err := env.store.Repositories().Opportunities.GetByID(context.Background(), opp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ApplicationCount)
}

func TestMessagingRoutes(t *testing.T) {
	env := newAPIEnv(t)
	rana := env.store.SeedUser(t, "rana", models.UserTypeIndividual)
	omar := env.store.SeedUser(t, "omar", models.UserTypeEmployer)
	ranaToken, omarToken := env.login(t, rana), env.login(t, omar)

	w := env.do(t, http.MethodPost, "/api/messages", ranaToken, gin.H{"receiverId": omar.ID, "content": "مرحبا"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var msg models.Message
	decode(t, w, &msg)
	assert.Equal(t, rana.ID, msg.SenderID)

	w = env.do(t, http.MethodPost, "/api/messages", ranaToken, gin.H{"receiverId": rana.ID, "content": "me"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPatch, "/api/messages/"+msg.ID+"/read", ranaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodPatch, "/api/messages/"+msg.ID+"/read", omarToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/messages/conversations", omarToken, nil)
	var conversations []models.Conversation
	decode(t, w, &conversations)
	require.Len(t, conversations, 1)

	w = env.do(t, http.MethodGet, "/api/messages/"+rana.ID, omarToken, nil)
	var history []models.Message
	decode(t, w, &history)
	require.Len(t, history, 1)
	assert.True(t, history[0].IsRead)
}

func TestSavedRoutes(t *testing.T) {
	env := newAPIEnv(t)
	owner := env.store.SeedUser(t, "owner", models.UserTypeEmployer)
	seeker := env.store.SeedUser(t, "seeker", models.UserTypeIndividual)
	company := env.store.SeedCompany(t, owner.ID, "Qasioun Tech")
	opp := env.store.SeedOpportunity(t, company.ID, models.OpportunityTypeVolunteer, models.ProvinceLatakia, models.OpportunityStatusApproved)
	token := env.login(t, seeker)

	isSaved := func() bool {
		w := env.do(t, http.MethodGet, "/api/saved/"+opp.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SavedStatusResponse
		decode(t, w, &resp)
		return resp.IsSaved
	}

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/saved", token, gin.H{"opportunityId": opp.ID}).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/saved", token, gin.H{"opportunityId": opp.ID}).Code)
	assert.True(t, isSaved())

	w := env.do(t, http.MethodGet, "/api/saved", token, nil)
	var bookmarks []models.SavedOpportunity
	decode(t, w, &bookmarks)
	assert.Len(t, bookmarks, 1)

	w = env.do(t, http.MethodDelete, "/api/saved/"+opp.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, isSaved())
}

func TestListProvinces(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodGet, "/api/provinces", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var provinces []models.Province
	decode(t, w, &provinces)
	assert.Equal(t, models.Provinces, provinces)
}
