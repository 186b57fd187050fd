package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// SessionTokenConfig defines the signing settings for session cookies
type SessionTokenConfig struct {
	SecretKey string
	Issuer    string
}

// SessionTokenService signs and verifies the value stored in the session cookie.
// The token only references a server side session row; it is never trusted on
// its own.
type SessionTokenService struct {
	config SessionTokenConfig
}

// NewSessionTokenService creates a new session token service
func NewSessionTokenService(config SessionTokenConfig) *SessionTokenService {
	return &SessionTokenService{config: config}
}

// SessionClaims is the cookie payload. ID carries the session id, Subject the user id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionID returns the referenced session row id
func (c *SessionClaims) SessionID() string {
	return c.ID
}

// UserID returns the session owner
func (c *SessionClaims) UserID() string {
	return c.Subject
}

// Issue signs a token for the given session that expires with it
func (s *SessionTokenService) Issue(sessionID, userID string, issuedAt, expiresAt time.Time) (string, error) {
	if sessionID == "" || userID == "" {
		return "", ErrInvalidToken
	}

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a session token
func (s *SessionTokenService) Validate(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.SecretKey), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
