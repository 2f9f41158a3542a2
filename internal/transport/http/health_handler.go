package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"nordquant/internal/registry"
)

// HealthHandler reports service liveness and data coverage.
type HealthHandler struct {
	registry *registry.Registry
	started  time.Time
	version  string
}

// NewHealthHandler creates the health endpoint handler.
func NewHealthHandler(reg *registry.Registry, version string) *HealthHandler {
	return &HealthHandler{
		registry: reg,
		started:  time.Now(),
		version:  version,
	}
}

// Health returns service status and how many instruments have data.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":             "ok",
		"version":            h.version,
		"uptime":             time.Since(h.started).String(),
		"instruments":        len(h.registry.Symbols()),
		"instruments_loaded": len(h.registry.Loaded()),
	})
}
