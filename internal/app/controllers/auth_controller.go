// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	cookie      middleware.SessionCookie
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookie middleware.SessionCookie, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

func clientMeta(ctx *gin.Context) services.ClientMeta {
	return services.ClientMeta{
		UserAgent: ctx.Request.UserAgent(),
		IPAddress: ctx.ClientIP(),
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates an individual or employer account and opens a session. The session cookie is set on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "User registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request, email or username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, session, err := c.authService.Register(ctx.Request.Context(), &req, clientMeta(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.cookie.Set(ctx, session.Token, session.ExpiresAt)
	c.logger.Info().Str("userID", user.ID).Str("userType", string(user.UserType)).Msg("User registered")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{User: dto.NewUserResponse(user)}))
}

// Login handles user login
// @Summary Log in
// @Description Verifies the credentials and sets a session cookie valid for 30 days
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, session, err := c.authService.Login(ctx.Request.Context(), &req, clientMeta(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.cookie.Set(ctx, session.Token, session.ExpiresAt)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{User: dto.NewUserResponse(user)}))
}

// Logout ends the current session
// @Summary Log out
// @Description Deletes the session referenced by the cookie and clears it. Succeeds without a session.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Logged out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token := c.cookie.Read(ctx); token != "" {
		if err := c.authService.Logout(ctx.Request.Context(), token); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	c.cookie.Clear(ctx)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Logged out"})
}

// Me returns the current session identity
// @Summary Current user
// @Description Returns the identity of the session, or a null user when anonymous
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse} "Session identity"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	var resp dto.MeResponse
	if identity, ok := middleware.CurrentIdentity(ctx); ok {
		resp.User = &identity
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
