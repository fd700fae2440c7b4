package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"site-cms/core/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tokens := auth.NewTokenService(auth.Config{JWTSecret: "secret", JWTExpiresIn: time.Hour})

	app := fiber.New()
	app.Use(New(Config{Verifier: tokens}))
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.SendString(Claims(c).Email)
	})

	valid, _, err := tokens.Issue("admin-1", "admin@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"Missing", "", 401},
		{"Wrong scheme", "Basic abc", 401},
		{"Empty token", "Bearer ", 401},
		{"Invalid token", "Bearer nope", 401},
		{"Valid", "Bearer " + valid, 200},
		{"Lowercase scheme", "bearer " + valid, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
