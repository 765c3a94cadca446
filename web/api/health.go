package api

import (
	"net/http"

	"github.com/rohanthewiz/rweb"
)

// HealthCheck returns the health status of the application
func HealthCheck(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "langfilter",
	})
}
