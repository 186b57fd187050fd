package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/findjobsyria/api/internal/app/controllers"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/routes"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/findjobsyria/api/internal/pkg/filestorage"
	"github.com/findjobsyria/api/internal/pkg/websocket"
	"github.com/findjobsyria/api/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const cookieName = "fjs_session"

type apiEnv struct {
	store      *testutil.MemoryStore
	router     *gin.Engine
	storageDir string
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	store := testutil.NewMemoryStore()
	lgr := zerolog.Nop()
	hub := websocket.NewHub(lgr)
	go hub.Run()
	t.Cleanup(hub.Close)

	svc := services.NewServices(services.Dependencies{
		Repos:      store.Repositories(),
		Tokens:     auth.NewSessionTokenService(auth.SessionTokenConfig{SecretKey: "controller-secret", Issuer: "findjobsyria"}),
		Realtime:   hub,
		SessionTTL: time.Hour,
		BcryptCost: 4,
		Logger:     lgr,
	})

	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "http://localhost:8080/uploads", 0)
	require.NoError(t, err)

	cookie := middleware.SessionCookie{Name: cookieName}
	authMiddleware := middleware.NewAuthMiddleware(svc.Auth, cookie, lgr)

	router := gin.New()
	routes.SetupRouter(router, routes.Handlers{
		Auth:         controllers.NewAuthController(svc.Auth, cookie, lgr),
		User:         controllers.NewUserController(svc.User),
		Company:      controllers.NewCompanyController(svc.Company),
		Opportunity:  controllers.NewOpportunityController(svc.Opportunity),
		Application:  controllers.NewApplicationController(svc.Application),
		Cv:           controllers.NewCvController(svc.Cv),
		Message:      controllers.NewMessageController(svc.Message),
		Notification: controllers.NewNotificationController(svc.Notification),
		Saved:        controllers.NewSavedOpportunityController(svc.Saved),
		Stats:        controllers.NewStatsController(svc.Stats),
		Upload:       controllers.NewUploadController(storage, lgr),
		Realtime:     websocket.NewHandler(hub, middleware.CurrentIdentity, lgr),
	}, authMiddleware)

	return &apiEnv{store: store, router: router, storageDir: dir}
}

func (e *apiEnv) request(t *testing.T, method, path, token string, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		return e.request(t, method, path, token, "", nil)
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return e.request(t, method, path, token, "application/json", bytes.NewReader(raw))
}

// login returns the session cookie value of user
func (e *apiEnv) login(t *testing.T, user *models.User) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": user.Email, "password": testutil.TestPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := sessionCookie(w)
	require.NotEmpty(t, token)
	return token
}

func sessionCookie(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	return ""
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) {
	t.Helper()
	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.True(t, envelope.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, data))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}
