package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelnuansa/faculty-backend/internal/auth"
	"github.com/rafaelnuansa/faculty-backend/internal/config"
	"github.com/rafaelnuansa/faculty-backend/internal/handler"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
)

type stubDashboard struct{}

func (stubDashboard) Summary(context.Context) (*model.DashboardSummary, error) {
	return &model.DashboardSummary{Posts: 3}, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", UploadDir: t.TempDir()}
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	// A nil cache client reads every token as live.
	authService := service.NewAuthService(nil, jwtService, auth.NewTokenStore(nil))

	e := echo.New()
	Register(e, cfg, Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(stubDashboard{}),
		User:      handler.NewUserHandler(nil),
		Faculty:   handler.NewFacultyHandler(nil),
		Category:  handler.NewCategoryHandler(nil),
		Post:      handler.NewPostHandler(nil),
	}, authService)
	return e, jwtService
}

func TestRegister_Healthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRegister_AdminRequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	for _, target := range []string{"/api/admin/dashboard", "/api/admin/categories", "/api/admin/faculties/all"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Unauthenticated.", body["message"])
		assert.Equal(t, false, body["success"])
	}
}

func TestRegister_AdminAcceptsBearerToken(t *testing.T) {
	e, jwtService := newTestServer(t)
	_, token, err := jwtService.GenerateAccessToken(uuid.New(), "bdkm@unida.ac.id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"posts":3`)
}

func TestRegister_ForeignSignatureRejected(t *testing.T) {
	e, _ := newTestServer(t)
	_, token, err := auth.NewJWTService("other-secret").GenerateAccessToken(uuid.New(), "x@unida.ac.id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_RefreshTokenIsNotABearerToken(t *testing.T) {
	e, jwtService := newTestServer(t)
	_, refresh, err := jwtService.GenerateRefreshToken(uuid.New(), "bdkm@unida.ac.id")
	require.NoError(t, err)

	for _, route := range []struct{ method, target string }{
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodPost, "/api/logout"},
	} {
		req := httptest.NewRequest(route.method, route.target, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+refresh)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.target)
		assert.Contains(t, rec.Body.String(), "Unauthenticated.", route.target)
	}
}
