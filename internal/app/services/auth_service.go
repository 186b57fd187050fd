package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/findjobsyria/api/internal/pkg/helpers"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultSessionTTL is used when no session lifetime is configured
const DefaultSessionTTL = 30 * 24 * time.Hour

// ClientMeta describes the client that opened a session
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// IssuedSession is the signed cookie value for a new session
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService handles registration, login and session resolution
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, meta ClientMeta) (*models.User, *IssuedSession, error)
	Login(ctx context.Context, req *dto.LoginRequest, meta ClientMeta) (*models.User, *IssuedSession, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Identity, error)
}

type authServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	tokens      *auth.SessionTokenService
	sessionTTL  time.Duration
	bcryptCost  int
	logger      zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
	now       func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	tokens *auth.SessionTokenService,
	sessionTTL time.Duration,
	bcryptCost int,
	logger zerolog.Logger,
) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &authServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		bcryptCost:  bcryptCost,
		logger:      logger,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and opens a session for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, meta ClientMeta) (*models.User, *IssuedSession, error) {
	email := normalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email already exists")
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrUsernameAlreadyExists, "Username already exists")
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, nil, err
	}

	hash, err := auth.HashPasswordWithCost(req.Password, s.bcryptCost)
	if err != nil {
		if auth.IsHashTooLong(err) {
			return nil, nil, apperrors.NewValidationError("Password is too long")
		}
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeIndividual
	}

	user := &models.User{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      &hash,
		Username:          username,
		FullName:          strings.TrimSpace(req.FullName),
		UserType:          userType,
		Phone:             req.Phone,
		Province:          req.Province,
		PreferredLanguage: req.PreferredLanguage,
	}

	// The unique constraints still guard against a concurrent registration
	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			return nil, nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email already exists")
		case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
			return nil, nil, apperrors.NewCustomError(apperrors.ErrUsernameAlreadyExists, "Username already exists")
		}
		return nil, nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("userType", string(user.UserType)).Msg("User registered")

	issued, err := s.openSession(ctx, user.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, issued, nil
}

// Login verifies credentials and opens a new session. Every credential
// failure returns the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, meta ClientMeta) (*models.User, *IssuedSession, error) {
	invalid := apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			auth.CheckPassword(s.dummyPasswordHash(), req.Password)
			return nil, nil, invalid
		}
		return nil, nil, err
	}

	if !user.HasPassword() {
		auth.CheckPassword(s.dummyPasswordHash(), req.Password)
		return nil, nil, invalid
	}
	if !auth.CheckPassword(*user.PasswordHash, req.Password) {
		s.logger.Debug().Str("userID", user.ID).Msg("Password mismatch on login")
		return nil, nil, invalid
	}

	if n, err := s.sessionRepo.DeleteExpired(ctx, s.now()); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to purge expired sessions")
	} else if n > 0 {
		s.logger.Debug().Int64("count", n).Msg("Purged expired sessions")
	}

	issued, err := s.openSession(ctx, user.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, issued, nil
}

// Logout deletes the session referenced by token. Unknown or invalid
// tokens are ignored.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, claims.SessionID()); err != nil {
		return err
	}
	s.logger.Info().Str("userID", claims.UserID()).Msg("Session closed")
	return nil
}

// Authenticate resolves a cookie token to the identity of a live session
func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	session, err := s.sessionRepo.GetActive(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID() {
		return nil, apperrors.ErrSessionInvalid
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrSessionInvalid
		}
		return nil, err
	}

	identity := user.Identity()
	return &identity, nil
}

func (s *authServiceImpl) openSession(ctx context.Context, userID string, meta ClientMeta) (*IssuedSession, error) {
	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserAgent: helpers.NormalizeOptional(&meta.UserAgent),
		IPAddress: helpers.NormalizeOptional(&meta.IPAddress),
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(session.ID, userID, now, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &IssuedSession{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// dummyPasswordHash keeps unknown-email logins as slow as real ones
func (s *authServiceImpl) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := auth.HashPasswordWithCost("not-a-real-password", s.bcryptCost)
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
