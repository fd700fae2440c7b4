package testimonials_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"site-cms/core/database/testdb"
	"site-cms/core/loader"
	"site-cms/feature/testimonials"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleUpdate_ReturnsCounts(t *testing.T) {
	db := testdb.New(t, &testimonials.Testimonial{})
	app := fiber.New()
	require.NoError(t, testimonials.NewFeature(db, zap.NewNop()).Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))

	body := `{"testimonials":[
		{"id":"temp-1","name":"Alice","role":"HR Lead","company":"Acme","content":"Great","avatar":"/a.png","results":["x"]},
		{"name":"Bob","role":"CFO","company":"Beta","content":"Solid","avatar":"/b.png","results":[],"rating":4}
	]}`
	req := httptest.NewRequest("PUT", "/api/admin/testimonials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env struct {
		Success bool
		Message string
		Data    map[string]int
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
	assert.Equal(t, map[string]int{"createdCount": 2, "updatedCount": 0, "deletedCount": 0}, env.Data)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/testimonials?rating=4&limit=1", nil))
	require.NoError(t, err)
	var list struct{ Data []testimonials.Testimonial }
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Alice", list.Data[0].Name)
}

func TestHandleUpdate_RejectsBadRating(t *testing.T) {
	db := testdb.New(t, &testimonials.Testimonial{})
	app := fiber.New()
	require.NoError(t, testimonials.NewFeature(db, zap.NewNop()).Load(loader.Routers{Public: app.Group("/api"), Admin: app.Group("/api/admin")}))

	body := `{"testimonials":[{"name":"A","role":"R","company":"C","content":"x","avatar":"/a.png","rating":9}]}`
	req := httptest.NewRequest("PUT", "/api/admin/testimonials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
