// Package ui is the transport shell around the profiling engine: upload
// intake, the demo dataset, and JSON responses the frontend renders.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"datascope/internal"
	"datascope/internal/config"
	"datascope/internal/profiling"
)

// App represents the web application
type App struct {
	router *chi.Mux
	engine *profiling.Engine
	cfg    *config.Config
	log    *internal.Logger
}

// NewApp creates the application and mounts its routes
func NewApp(cfg *config.Config) *App {
	app := &App{
		router: chi.NewRouter(),
		engine: profiling.NewEngine(),
		cfg:    cfg,
		log:    internal.DefaultLogger,
	}
	app.setupRoutes()
	return app
}

// Router returns the mounted HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/upload", a.handleUpload)
	a.router.Get("/demo", a.handleDemo)
}
