package cmd

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"site-cms/core/auth"
	"site-cms/core/config"
	"site-cms/core/database/testdb"
	"site-cms/core/response"
	"site-cms/core/storage/mocks"
	"site-cms/feature/admins"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*application, *fiber.App) {
	t.Helper()

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.Auth.JWTSecret = "test-secret"

	a := &application{
		cfg:    cfg,
		logger: zap.NewNop(),
		db:     testdb.New(t),
		store:  &mocks.Client{},
		tokens: auth.NewTokenService(cfg.Auth),
	}
	a.register()
	require.NoError(t, a.db.AutoMigrate(a.mgr.Models()...))

	app, err := newServer(a)
	require.NoError(t, err)
	return a, app
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) (int, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestServer_RegistersEveryFeature(t *testing.T) {
	a, _ := newTestServer(t)

	var names []string
	for _, f := range a.mgr.Features() {
		names = append(names, f.Name())
	}
	assert.ElementsMatch(t, []string{
		"health", "admins", "theme", "navigation", "hero", "services", "testimonials",
		"stats", "sections", "footer", "pages", "leads", "uploads",
	}, names)
}

func TestServer_PublicAndAdminRoutes(t *testing.T) {
	a, app := newTestServer(t)

	status, env := call(t, app, "GET", "/api/health", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)

	status, _ = call(t, app, "GET", "/api/navigation", "", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, env = call(t, app, "POST", "/api/consultation", `{"fullName":"Ada Lovelace","email":"ADA@example.com"}`, "")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Consultation request submitted successfully", env.Message)

	status, env = call(t, app, "GET", "/api/admin/leads", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = call(t, app, "GET", "/api/admin/leads", "", "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	_, err := a.admins.Service().Create(context.Background(), admins.CreateRequest{
		Email: "owner@example.com", Name: "Owner", Password: "secret123",
	})
	require.NoError(t, err)

	status, env = call(t, app, "POST", "/api/auth/login", `{"email":"owner@example.com","password":"secret123"}`, "")
	require.Equal(t, fiber.StatusOK, status)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	status, env = call(t, app, "GET", "/api/admin/leads", "", token)
	assert.Equal(t, fiber.StatusOK, status)
	leads, ok := env.Data.([]any)
	require.True(t, ok)
	assert.Len(t, leads, 1)
}

func TestServer_UnknownRoute(t *testing.T) {
	_, app := newTestServer(t)

	status, env := call(t, app, "GET", "/api/nope", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Success)
}
