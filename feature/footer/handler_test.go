package footer_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/loader"
	"site-cms/feature/footer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	db := testdb.New(t, &footer.Section{}, &footer.Link{}, &footer.ContactInfo{}, &footer.SocialLink{})
	app := fiber.New()
	require.NoError(t, footer.NewFeature(db, zap.NewNop()).Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))
	return app
}

func put(t *testing.T, app *fiber.App, path, body string) int {
	req := httptest.NewRequest("PUT", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestFooterRoutes(t *testing.T) {
	app := setupApp(t)

	assert.Equal(t, fiber.StatusOK, put(t, app, "/api/admin/footer",
		`{"sections":[{"title":"Company","position":1,"links":[{"name":"About","href":"/about","position":1}]}]}`))
	assert.Equal(t, fiber.StatusOK, put(t, app, "/api/admin/contact-info",
		`{"contactInfo":[{"type":"email","label":"Email","value":"hi@example.com","position":1}]}`))
	assert.Equal(t, fiber.StatusOK, put(t, app, "/api/admin/social-links",
		`{"socialLinks":[{"name":"X","icon":"twitter","href":"https://x.com","position":1}]}`))
	assert.Equal(t, fiber.StatusBadRequest, put(t, app, "/api/admin/social-links",
		`{"socialLinks":[{"name":"X"}]}`))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/footer", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env struct {
		Success bool
		Data    footer.PublicFooter
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
	require.Len(t, env.Data.Sections, 1)
	assert.Len(t, env.Data.Sections[0].Links, 1)
	assert.Len(t, env.Data.ContactInfo, 1)
	assert.Len(t, env.Data.SocialLinks, 1)

	for _, path := range []string{"/api/contact-info", "/api/social-links", "/api/admin/footer"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}
