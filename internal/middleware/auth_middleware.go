package middleware

import (
	"net/http"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const identityKey = "identity"

// SessionCookie describes the cookie that carries the session token
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set writes the session cookie. It is HttpOnly, SameSite=Lax and expires with the session.
func (sc SessionCookie) Set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, maxAge, "/", "", sc.Secure, true)
}

// Clear removes the session cookie from the client
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// Read returns the raw cookie value, or "" when absent
func (sc SessionCookie) Read(c *gin.Context) string {
	value, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return value
}

// AuthMiddleware resolves the session cookie into a request identity
type AuthMiddleware struct {
	authService services.AuthService
	cookie      SessionCookie
	logger      zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, cookie SessionCookie, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Cookie returns the session cookie settings
func (m *AuthMiddleware) Cookie() SessionCookie {
	return m.cookie
}

// LoadSession attaches the identity of a valid session to the request.
// Requests without a usable session continue anonymously.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.cookie.Read(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrSessionInvalid, apperrors.ErrSessionExpired, apperrors.ErrSessionNotFound) {
				m.cookie.Clear(c)
			} else {
				m.logger.Error().Err(err).Msg("Failed to resolve session")
			}
			c.Next()
			return
		}

		SetIdentity(c, *identity)
		c.Next()
	}
}

// RequireAuth rejects requests without a session identity
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireRole allows only the given user types. It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		for _, role := range allowed {
			if identity.UserType == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation"),
		))
	}
}

// SetIdentity attaches identity to the gin context
func SetIdentity(c *gin.Context, identity models.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the authenticated caller of the request
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

// MustIdentity returns the caller or writes a 401. Handlers behind RequireAuth never see the 401.
func MustIdentity(c *gin.Context) (models.Identity, bool) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		abortUnauthorized(c)
	}
	return identity, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
	))
}
