package dto

import (
	"encoding/json"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserResponseHasNoPassword(t *testing.T) {
	hash := "$2a$12$hash"
	resp := NewUserResponse(&models.User{ID: "u-1", Email: "a@b.sy", PasswordHash: &hash, Username: "a"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), hash)
	assert.Nil(t, NewUserResponse(nil))
}

func TestOpportunityListQueryToFilter(t *testing.T) {
	q := OpportunityListQuery{Type: "job", Province: "homs", Search: "  dev ", CompanyID: "c-1"}
	f := q.ToFilter()

	require.NotNil(t, f.Type)
	assert.Equal(t, models.OpportunityTypeJob, *f.Type)
	require.NotNil(t, f.Province)
	assert.Equal(t, models.ProvinceHoms, *f.Province)
	require.NotNil(t, f.Search)
	assert.Equal(t, "dev", *f.Search)
	assert.Nil(t, f.Category)
	assert.Nil(t, f.Status)
	assert.Equal(t, "c-1", *f.CompanyID)
}

func TestCreateOpportunityRequestToModel(t *testing.T) {
	req := CreateOpportunityRequest{CompanyID: "c-1", Title: "t", Description: "d", Type: models.OpportunityTypeJob, Province: models.ProvinceIdlib, Currency: "syp"}
	opp := req.ToModel()

	assert.Equal(t, models.OpportunityStatusPending, opp.Status)
	assert.Equal(t, "SYP", opp.Currency)
	assert.Zero(t, opp.ViewCount)

	req.Currency = ""
	assert.Equal(t, "USD", req.ToModel().Currency)
}

func TestHandleValidationErrorListsIssues(t *testing.T) {
	type body struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}
	err := validator.New().Struct(body{Email: "nope"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)

	issues, ok := detail.Details.([]FieldIssue)
	require.True(t, ok)
	require.Len(t, issues, 2)
	assert.Equal(t, "email", issues[0].Field)
	assert.Equal(t, "email must be a valid email address", issues[0].Message)
	assert.Equal(t, "name is required", issues[1].Message)
}

func TestHandleValidationErrorMalformedJSON(t *testing.T) {
	var v map[string]interface{}
	err := json.Unmarshal([]byte("{"), &v)
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
}
