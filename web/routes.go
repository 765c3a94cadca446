package web

import (
	"net/http"

	"langfilter/models"
	"langfilter/web/api"
	"langfilter/web/pages"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, catalog models.Catalog) {
	lf := api.NewLanguageFilter(catalog, pages.LanguageFilterEndpoint)

	// Page routes - HTML responses
	s.Get("/", func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")

		// Every page load mounts a fresh widget with default state
		home, err := pages.NewHomePage(catalog)
		if err != nil {
			logger.LogErr(err, "failed to build home page")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}
		return ctx.WriteHTML(home.Render())
	})

	// Partial endpoint - returns the re-rendered widget fragment
	s.Post(pages.LanguageFilterEndpoint, lf.HandleEvent)

	// API v1 routes - JSON responses
	s.Get("/api/v1/languages", lf.ListLanguages) // Filtered catalog (?q=)

	// Health check endpoint
	s.Get("/health", api.HealthCheck)
}
