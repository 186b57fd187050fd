package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvinces(t *testing.T) {
	assert.Len(t, Provinces, 14)
	assert.True(t, Province("rif_dimashq").IsValid())
	assert.False(t, Province("beirut").IsValid())
}

func TestOpportunityStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OpportunityStatus
		allowed  bool
	}{
		{OpportunityStatusPending, OpportunityStatusApproved, true},
		{OpportunityStatusPending, OpportunityStatusRejected, true},
		{OpportunityStatusPending, OpportunityStatusExpired, false},
		{OpportunityStatusApproved, OpportunityStatusExpired, true},
		{OpportunityStatusApproved, OpportunityStatusPending, false},
		{OpportunityStatusRejected, OpportunityStatusPending, true},
		{OpportunityStatusExpired, OpportunityStatusApproved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestUserJSONNeverContainsPassword(t *testing.T) {
	hash := "$2a$12$abcdefghijklmnopqrstuv"
	u := &User{ID: "u-1", Email: "a@b.sy", PasswordHash: &hash, Username: "a", FullName: "A", UserType: UserTypeIndividual}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), hash)
	assert.True(t, u.HasPassword())
}

func TestUserIdentity(t *testing.T) {
	u := &User{ID: "u-1", Email: "a@b.sy", Username: "a", FullName: "A", UserType: UserTypeAdmin}
	id := u.Identity()

	assert.Equal(t, "u-1", id.ID)
	assert.True(t, id.IsAdmin())
}

func TestMessageCounterpart(t *testing.T) {
	m := &Message{SenderID: "a", ReceiverID: "b"}
	assert.Equal(t, "b", m.Counterpart("a"))
	assert.Equal(t, "a", m.Counterpart("b"))
}

func TestSessionExpiry(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Minute)))
}

func TestUserUpdateIsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())
	bio := "hi"
	assert.False(t, UserUpdate{Bio: &bio}.IsEmpty())
}
