package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"Validation", Validation("title is required"), 400, "title is required"},
		{"NotFound", NotFound("Stat not found"), 404, "Stat not found"},
		{"Conflict", Conflict("Duplicate testimonial detected", errors.New("UNIQUE constraint failed")), 409, "Duplicate testimonial detected"},
		{"Unauthorized", Unauthorized("Invalid credentials"), 401, "Invalid credentials"},
		{"Internal hides cause", Internal("Failed to update stats", errors.New("dial tcp: refused")), 500, "Failed to update stats"},
		{"Plain error", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return Fail(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body Envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Nil(t, body.Data)
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := Internal("Failed to update footer", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Failed to update footer")
	assert.Contains(t, err.Error(), "bad connection")
}

func TestSuccessEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error { return OK(c, fiber.Map{"n": 1}) })
	app.Get("/msg", func(c *fiber.Ctx) error { return Message(c, "Stats updated successfully", nil) })
	app.Get("/created", func(c *fiber.Ctx) error { return Created(c, "Created", fiber.Map{"id": "x"}) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "message")

	resp, err = app.Test(httptest.NewRequest("GET", "/msg", nil))
	require.NoError(t, err)
	body = map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Stats updated successfully", body["message"])
	assert.NotContains(t, body, "data")

	resp, err = app.Test(httptest.NewRequest("GET", "/created", nil))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return NotFound("Page content not found for: home") })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	var body Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Cannot GET /missing", body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Page content not found for: home", body.Message)
}
