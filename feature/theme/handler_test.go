package theme_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/loader"
	"site-cms/feature/theme"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleUpdate(t *testing.T) {
	db := testdb.New(t, &theme.Config{})
	app := fiber.New()
	require.NoError(t, theme.NewFeature(db, zap.NewNop()).Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"primaryColor":"#3b82f6","accentColor":"#f97316"}`, fiber.StatusOK},
		{"short hex", `{"primaryColor":"#fff","accentColor":"#f97316"}`, fiber.StatusBadRequest},
		{"not a color", `{"primaryColor":"blue","accentColor":"#f97316"}`, fiber.StatusBadRequest},
		{"missing accent", `{"primaryColor":"#3b82f6"}`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/admin/theme", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
