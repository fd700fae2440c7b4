package services_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/loader"
	"site-cms/feature/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceRoutes(t *testing.T) {
	db := testdb.New(t, &services.Offering{})
	app := fiber.New()
	require.NoError(t, services.NewFeature(db, zap.NewNop()).Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))

	body := `{"services":[
		{"title":"Payroll","slug":"payroll","description":"d","icon":"i","color":"c","category":"Operations","features":[],"processSteps":[{"step":1}],"metadata":{"seo":"x"}},
		{"title":"Recruitment","slug":"recruitment","description":"d","icon":"i","color":"c","features":[],"onQuote":false}
	]}`
	req := httptest.NewRequest("PUT", "/api/admin/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cases := []struct {
		path  string
		count int
	}{
		{"/api/services", 2},
		{"/api/services?onQuote=true", 1},
		{"/api/services/quote-options", 1},
		{"/api/services/categories", 1},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			var env struct{ Data []any }
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.Len(t, env.Data, tc.count)
		})
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/services/payroll", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detail struct{ Data services.Offering }
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.JSONEq(t, `[{"step":1}]`, string(detail.Data.ProcessSteps))
	assert.Equal(t, "x", detail.Data.Metadata["seo"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/services/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
