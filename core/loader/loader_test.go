package loader

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
}

func (s stubFeature) Name() string    { return s.name }
func (s stubFeature) IsEnabled() bool { return s.enabled }
func (s stubFeature) Load(app fiber.Router) error {
	if s.err != nil {
		return s.err
	}
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		app := fiber.New()
		mgr := NewManager()
		mgr.Register(stubFeature{name: "objects", enabled: true})
		mgr.Register(stubFeature{name: "journal", enabled: false})

		loaded, err := mgr.LoadAll(app)
		require.NoError(t, err)
		assert.Equal(t, []string{"objects"}, loaded)

		resp, err := app.Test(httptest.NewRequest("GET", "/objects", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/journal", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(stubFeature{name: "objects", enabled: true, err: errors.New("boom")})
		mgr.Register(stubFeature{name: "journal", enabled: true})

		loaded, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "objects")
		assert.Empty(t, loaded)
	})
}
