package testutil

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text password of every seeded user
const TestPassword = "s3cret-pass"

// SeedUser stores a user with TestPassword as password
func (s *MemoryStore) SeedUser(t testing.TB, username string, userType models.UserType) *models.User {
	t.Helper()

	hash, err := auth.HashPasswordWithCost(TestPassword, 4)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        username + "@example.sy",
		PasswordHash: &hash,
		Username:     username,
		FullName:     username,
		UserType:     userType,
	}
	require.NoError(t, s.Repositories().Users.Create(context.Background(), user))
	return user
}

// SeedCompany stores a company owned by ownerID
func (s *MemoryStore) SeedCompany(t testing.TB, ownerID, name string) *models.Company {
	t.Helper()

	company := &models.Company{ID: uuid.NewString(), UserID: ownerID, Name: name}
	require.NoError(t, s.Repositories().Companies.Create(context.Background(), company))
	return company
}

// SeedOpportunity stores an opportunity with the given status
func (s *MemoryStore) SeedOpportunity(t testing.TB, companyID string, typ models.OpportunityType, province models.Province, status models.OpportunityStatus) *models.Opportunity {
	t.Helper()

	opp := &models.Opportunity{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Title:       "مطور برمجيات",
		Description: "Backend developer",
		Type:        typ,
		Province:    province,
		Status:      status,
	}
	require.NoError(t, s.Repositories().Opportunities.Create(context.Background(), opp))
	return opp
}

// SeedCv stores a CV owned by userID
func (s *MemoryStore) SeedCv(t testing.TB, userID, title string) *models.Cv {
	t.Helper()

	cv := &models.Cv{ID: uuid.NewString(), UserID: userID, Title: title}
	require.NoError(t, s.Repositories().Cvs.Create(context.Background(), cv))
	return cv
}

// Identity returns the request identity of user
func Identity(user *models.User) models.Identity {
	return user.Identity()
}
