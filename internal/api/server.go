// This file defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shelftag/shelftag/internal/core"
	"github.com/shelftag/shelftag/internal/history"
	"github.com/shelftag/shelftag/internal/store"
	"github.com/shelftag/shelftag/internal/websocket"
)

// Server holds the dependencies for our API.
type Server struct {
	app   *core.App
	db    *sql.DB
	store *store.Store

	// Per-field undo stacks for the cleaner settings editor.
	patternHist   *history.Stack[[]string]
	whitelistHist *history.Stack[string]
}

// Store returns the store instance.
func (s *Server) Store() *store.Store {
	return s.store
}

// App returns the core application the server was built on.
func (s *Server) App() *core.App {
	return s.app
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{
		app:           app,
		db:            app.DB(),
		store:         store.New(app.DB()),
		patternHist:   history.New[[]string](history.DefaultCapacity),
		whitelistHist: history.New[string](history.DefaultCapacity),
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	// API routes
	r.Post("/api/users/login", s.handleLogin)
	r.Get("/api/version", s.handleGetVersion)
	r.Get("/api/config", s.handleGetConfig)

	r.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware)

		r.Post("/api/users/logout", s.handleLogout)
		r.Get("/api/users/me", s.handleGetMe)

		r.Route("/api", func(r chi.Router) {
			// Title cleaner settings
			r.Get("/cleaner/settings", s.handleGetCleanerSettings)
			r.Put("/cleaner/settings", s.handleUpdateCleanerSettings)
			r.Post("/cleaner/settings/undo", s.handleUndoCleanerSettings)
			r.Post("/cleaner/preview", s.handlePreviewClean)

			// Shelf management
			r.Get("/shelves", s.handleListShelves)
			r.Post("/shelves", s.handleAddShelf)
			r.Delete("/shelves/{shelfName}", s.handleRemoveShelf)
			r.Post("/shelves/scan", s.handleScanShelves)
			r.Post("/shelves/detect", s.handleDetectShelf)

			// Rename script and workflow
			r.Get("/rename-script", s.handleGetRenameScript)
			r.Get("/rename-workflow", s.handleGetWorkflow)
			r.Put("/rename-workflow", s.handleUpdateWorkflow)

			// Tracks
			r.Get("/tracks", s.handleListTracks)
			r.Post("/tracks/{trackID}/shelf", s.handleAssignTrackShelf)

			// Admin Job Triggers
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)

				r.Get("/jobs/status", s.handleGetAdminJobsStatus)
				r.Post("/jobs/run", s.handleRunAdminJob)
			})
		})
	})

	// WebSocket route
	r.Get("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
		websocket.ServeWs(s.app.WsHub(), w, r)
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.db.Ping(); err != nil {
			RespondWithError(w, http.StatusServiceUnavailable, "Database connection failed")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
