package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/findjobsyria/api/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"not found", apperrors.NewResourceNotFoundError("company not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "company not found"},
		{"wrapped not found", errors.Join(errors.New("ctx"), apperrors.ErrResourceNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
		{"forbidden", apperrors.NewForbiddenError("You do not own this CV"), http.StatusForbidden, dto.ErrorCodeForbidden, "You do not own this CV"},
		{"credentials", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials"), http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"duplicate email", apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email already exists"), http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
		{"transition", apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition, "nope"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "nope"},
		{"bad request", apperrors.NewBadRequestError("userId or opportunityId required"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "userId or opportunityId required"},
		{"conflict", apperrors.NewConflictError("busy"), http.StatusConflict, dto.ErrorCodeConflict, "busy"},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

type sessionFixture struct {
	store  *testutil.MemoryStore
	auth   services.AuthService
	mw     *AuthMiddleware
	router *gin.Engine
}

func newSessionFixture(t *testing.T) *sessionFixture {
	store := testutil.NewMemoryStore()
	tokens := auth.NewSessionTokenService(auth.SessionTokenConfig{SecretKey: "mw-secret"})
	authService := services.NewAuthService(store.Repositories().Users, store.Repositories().Sessions, tokens, time.Hour, 4, zerolog.Nop())
	mw := NewAuthMiddleware(authService, SessionCookie{Name: "fjs_session"}, zerolog.Nop())

	r := gin.New()
	r.Use(mw.LoadSession())
	r.GET("/open", func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "id": identity.ID})
	})
	r.GET("/private", mw.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/admin", mw.RequireAuth(), mw.RequireRole(models.UserTypeAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	return &sessionFixture{store: store, auth: authService, mw: mw, router: r}
}

func (f *sessionFixture) login(t *testing.T, user *models.User) string {
	_, issued, err := f.auth.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: testutil.TestPassword}, services.ClientMeta{})
	require.NoError(t, err)
	return issued.Token
}

func (f *sessionFixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "fjs_session", Value: token})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestLoadSessionAttachesIdentity(t *testing.T) {
	f := newSessionFixture(t)
	user := f.store.SeedUser(t, "rana", models.UserTypeIndividual)

	w := f.get("/open", f.login(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, user.ID, body["id"])
}

func TestLoadSessionClearsBadCookie(t *testing.T) {
	f := newSessionFixture(t)

	w := f.get("/open", "forged.token.value")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
	assert.True(t, strings.Contains(w.Header().Get("Set-Cookie"), "fjs_session=;"))
}

func TestRequireAuth(t *testing.T) {
	f := newSessionFixture(t)
	user := f.store.SeedUser(t, "rana", models.UserTypeIndividual)

	w := f.get("/private", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", decodeError(t, w).Error.Message)

	assert.Equal(t, http.StatusNoContent, f.get("/private", f.login(t, user)).Code)
}

func TestRequireRole(t *testing.T) {
	f := newSessionFixture(t)
	user := f.store.SeedUser(t, "rana", models.UserTypeEmployer)
	admin := f.store.SeedUser(t, "root", models.UserTypeAdmin)

	assert.Equal(t, http.StatusForbidden, f.get("/admin", f.login(t, user)).Code)
	assert.Equal(t, http.StatusNoContent, f.get("/admin", f.login(t, admin)).Code)
}

func TestRegisterValidatorsReportsFailures(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())

	err := installValidations(validator.New(), map[string]validator.Func{"province": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"province"`)

	v := validator.New()
	require.NoError(t, installValidations(v, customValidations))
	assert.Error(t, v.Var("beirut", "province"))
	assert.NoError(t, v.Var("aleppo", "province"))
}

func TestBindJSONReportsProvince(t *testing.T) {
	type body struct {
		Province models.Province `json:"province" binding:"required,province"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"province":"beirut"}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "province", resp.Error.Field)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"province":"aleppo"}`)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
