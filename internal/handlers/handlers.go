// Package handlers implements the HTTP handlers of the Stremio addon API.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/facuparedes/streaming-catalogs-addon/internal/middleware"
	"github.com/facuparedes/streaming-catalogs-addon/internal/services"
)

// Handler handles HTTP requests for the Stremio addon.
type Handler struct {
	services *services.Container
}

// New creates a Handler over the service container.
func New(container *services.Container) *Handler {
	return &Handler{services: container}
}

// Seconds intermediaries may cache manifest and catalog responses.
const responseMaxAge = 4 * 3600

// RegisterRoutes registers all addon routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	cached := middleware.CacheControl(responseMaxAge)

	r.GET("/", h.handleHome)

	r.GET("/manifest.json", cached, h.handleManifest)
	r.GET("/:configuration/manifest.json", cached, h.handleConfiguredManifest)

	// Catalog routes; extra is unused but part of the addon protocol.
	r.GET("/:configuration/catalog/:type/:id", cached, h.handleCatalog)
	r.GET("/:configuration/catalog/:type/:id/*extra", cached, h.handleCatalog)

	r.GET("/clear-cache", h.handleClearCache)
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "Streaming Catalogs addon. Install via /manifest.json.")
}

func (h *Handler) handleClearCache(c *gin.Context) {
	if err := h.services.Catalog.ClearCaches(); err != nil {
		h.services.Logger.Errorf("[Handler] cache clear failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared successfully"})
}

// stripJSONSuffix removes a trailing .json from a path parameter.
func stripJSONSuffix(s string) string {
	return strings.TrimSuffix(s, ".json")
}
