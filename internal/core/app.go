package core

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/shelftag/shelftag/internal/config"
	"github.com/shelftag/shelftag/internal/db"
	"github.com/shelftag/shelftag/internal/jobs"
	"github.com/shelftag/shelftag/internal/websocket"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// App holds the core components of the application that are shared
// between the server and the CLI. It implements jobs.JobContext.
type App struct {
	config     *config.Config
	database   *sql.DB
	wsHub      *websocket.Hub
	jobManager *jobs.JobManager
	version    string
}

// New sets up and returns a new App instance. It handles loading the
// configuration, initializing the database connection, and running migrations.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(database); err != nil {
		// We can't proceed without a valid database schema.
		// Close the DB connection before failing.
		database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	app := &App{
		config:   cfg,
		database: database,
		wsHub:    hub,
		version:  Version,
	}
	app.jobManager = jobs.NewManager(app)

	log.Println("Core application setup complete.")
	return app, nil
}

// NewForTesting assembles an App from pre-built components.
func NewForTesting(cfg *config.Config, database *sql.DB, hub *websocket.Hub) *App {
	app := &App{
		config:   cfg,
		database: database,
		wsHub:    hub,
		version:  "test",
	}
	app.jobManager = jobs.NewManager(app)
	return app
}

// DB returns the database handle.
func (a *App) DB() *sql.DB { return a.database }

// Config returns the loaded configuration.
func (a *App) Config() *config.Config { return a.config }

// WsHub returns the websocket hub.
func (a *App) WsHub() *websocket.Hub { return a.wsHub }

// JobManager returns the job manager.
func (a *App) JobManager() *jobs.JobManager { return a.jobManager }

// Version returns the build version string.
func (a *App) Version() string { return a.version }

// Close gracefully closes the application's resources, like the DB connection.
func (a *App) Close() {
	if a.database != nil {
		a.database.Close()
	}
}
