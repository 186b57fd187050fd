package repositories

import (
	"testing"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOpportunityListQuery_NoFilter(t *testing.T) {
	sql, args, err := buildOpportunityListQuery(models.OpportunityFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "FROM opportunities ORDER BY created_at DESC")
	assert.Empty(t, args)
}

func TestBuildOpportunityListQuery_TypeAndProvince(t *testing.T) {
	typ := models.OpportunityTypeJob
	province := models.ProvinceAleppo

	sql, args, err := buildOpportunityListQuery(models.OpportunityFilter{Type: &typ, Province: &province}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE type = $1 AND province = $2")
	assert.Equal(t, []interface{}{typ, province}, args)
}

func TestBuildOpportunityListQuery_AllFilters(t *testing.T) {
	typ := models.OpportunityTypeTraining
	province := models.ProvinceHoms
	status := models.OpportunityStatusApproved
	filter := models.OpportunityFilter{
		Type:      &typ,
		Province:  &province,
		Category:  helpers.StringPtr("it"),
		Status:    &status,
		CompanyID: helpers.StringPtr("c-1"),
		Search:    helpers.StringPtr("dev"),
	}

	sql, args, err := buildOpportunityListQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "type = $1 AND province = $2 AND category = $3 AND status = $4 AND company_id = $5")
	assert.Contains(t, sql, "(title ILIKE $6 OR description ILIKE $7)")
	assert.NotContains(t, sql, "title_en ILIKE")
	assert.NotContains(t, sql, "description_en ILIKE")
	require.Len(t, args, 7)
	assert.Equal(t, "%dev%", args[5])
	assert.Equal(t, "%dev%", args[6])
}

func TestBuildOpportunityListQuery_EmptySearchIgnored(t *testing.T) {
	sql, args, err := buildOpportunityListQuery(models.OpportunityFilter{Search: helpers.StringPtr("")}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "ILIKE")
	assert.Empty(t, args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
	assert.Equal(t, "مطور", escapeLike("مطور"))
}

func TestPatch(t *testing.T) {
	p := newPatch("users")
	setIf[string](p, "bio", nil)
	assert.False(t, p.changed)

	setIf(p, "bio", helpers.StringPtr("hello"))
	require.True(t, p.changed)

	sql, args, err := p.b.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET bio = $1", sql)
	assert.Equal(t, []interface{}{"hello"}, args)
}

func TestGroupConversations(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := func(id, from, to string, minutes int) *models.Message {
		return &models.Message{ID: id, SenderID: from, ReceiverID: to, CreatedAt: base.Add(time.Duration(minutes) * time.Minute)}
	}

	// newest first
	msgs := []*models.Message{
		msg("m5", "carol", "u", 50),
		msg("m4", "u", "bob", 40),
		msg("m3", "bob", "u", 30),
		msg("m2", "u", "carol", 20),
		msg("m1", "bob", "u", 10),
	}

	conversations := GroupConversations("u", msgs)
	require.Len(t, conversations, 2)

	assert.Equal(t, "carol", conversations[0].PartnerID)
	assert.Equal(t, "m5", conversations[0].LastMessage.ID)
	assert.Equal(t, "bob", conversations[1].PartnerID)
	assert.Equal(t, "m4", conversations[1].LastMessage.ID)
}

func TestGroupConversations_Empty(t *testing.T) {
	conversations := GroupConversations("u", nil)
	assert.NotNil(t, conversations)
	assert.Empty(t, conversations)
}

func TestBuildMessagesBetweenQuery(t *testing.T) {
	sql, args, err := buildMessagesBetweenQuery("a", "b").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY created_at ASC")
	assert.Equal(t, []interface{}{"b", "a", "a", "b"}, args)
}
