package loader

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	models  []any
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Models() []any   { return f.models }
func (f *fakeFeature) Load(r Routers) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = true
	r.Public.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	on := &fakeFeature{name: "stats", enabled: true, models: []any{"stat"}}
	off := &fakeFeature{name: "hidden", enabled: false, models: []any{"hidden"}}

	m := NewManager(nil)
	m.Register(on)
	m.Register(off)

	require.NoError(t, m.LoadAll(Routers{Public: app, Admin: app.Group("/admin")}))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Equal(t, []any{"stat"}, m.Models())
	assert.Len(t, m.Features(), 2)

	resp, err := app.Test(httptest.NewRequest("GET", "/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestManager_LoadAllErrors(t *testing.T) {
	app := fiber.New()

	t.Run("Load failure", func(t *testing.T) {
		m := NewManager(nil)
		m.Register(&fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")})
		err := m.LoadAll(Routers{Public: app, Admin: app})
		assert.EqualError(t, err, "failed to load feature broken: boom")
	})

	t.Run("Duplicate name", func(t *testing.T) {
		m := NewManager(nil)
		m.Register(&fakeFeature{name: "stats", enabled: true})
		m.Register(&fakeFeature{name: "stats", enabled: true})
		err := m.LoadAll(Routers{Public: app.Group("/a"), Admin: app.Group("/b")})
		assert.EqualError(t, err, "feature stats registered twice")
	})
}
