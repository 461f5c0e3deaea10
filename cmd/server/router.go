package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luachapp/luach-api/internal/api"
	apiMiddleware "github.com/luachapp/luach-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	calendarHandler := api.NewCalendarHandler(app.logger)
	zmanimHandler := api.NewZmanimHandler(app.zmanimDefaults(), app.defaultLoc, app.logger)
	siddurHandler := api.NewSiddurHandler(app.builder, app.catalog, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/calendar/hebrew-date", calendarHandler.HebrewDate)
		r.Get("/calendar/parasha", calendarHandler.Parasha)

		r.Get("/zmanim", zmanimHandler.Zmanim)

		r.Get("/siddur/context", siddurHandler.Context)
		r.Get("/siddur/navigation", siddurHandler.Navigation)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
