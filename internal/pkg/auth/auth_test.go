package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret-pass"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewSessionTokenService(SessionTokenConfig{SecretKey: "test-secret", Issuer: "findjobsyria"})
	now := time.Now()

	token, err := svc.Issue("session-1", "user-1", now, now.Add(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID())
	assert.Equal(t, "user-1", claims.UserID())
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	svc := NewSessionTokenService(SessionTokenConfig{SecretKey: "test-secret"})
	other := NewSessionTokenService(SessionTokenConfig{SecretKey: "other-secret"})
	now := time.Now()

	token, err := other.Issue("session-1", "user-1", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	svc := NewSessionTokenService(SessionTokenConfig{SecretKey: "test-secret"})
	past := time.Now().Add(-2 * time.Hour)

	token, err := svc.Issue("session-1", "user-1", past, past.Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestIssueRequiresIdentifiers(t *testing.T) {
	svc := NewSessionTokenService(SessionTokenConfig{SecretKey: "test-secret"})
	_, err := svc.Issue("", "user-1", time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
