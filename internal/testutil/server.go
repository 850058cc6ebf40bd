// Shared test server setup utilities, which simplify all API tests.

package testutil

import (
	"testing"

	"github.com/shelftag/shelftag/internal/api"
	"github.com/shelftag/shelftag/internal/config"
	"github.com/shelftag/shelftag/internal/core"
	"github.com/shelftag/shelftag/internal/websocket"
)

// SetupTestApp builds an App backed by an in-memory database and a
// temporary library directory.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()
	database := SetupTestDB(t)

	cfg := &config.Config{}
	cfg.Library.Path = t.TempDir()
	cfg.Library.DefaultShelf = "Standard"

	hub := websocket.NewHub()
	go hub.Run()

	app := core.NewForTesting(cfg, database, hub)
	return app
}

// SetupTestServer builds an API server on top of a fresh test app.
func SetupTestServer(t *testing.T) *api.Server {
	t.Helper()
	return api.NewServer(SetupTestApp(t))
}
