// Package handlers implements HTTP request handlers for the torrent search API.
package handlers

import (
	"net/http"

	"github.com/amaumene/streamy/internal/config"
	"github.com/amaumene/streamy/internal/models"
	"github.com/amaumene/streamy/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes of the API.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Utility routes
	r.GET("/", h.handleDocs)
	r.GET("/health", h.handleHealth)
	r.GET("/metrics", gin.WrapH(h.services.Metrics.Handler()))

	// Catalog search routes
	r.GET("/search/:query", h.handleSearchMulti)
	r.GET("/movies/:query", h.handleSearchMovies)
	r.GET("/tv-shows/:query", h.handleSearchTV)

	// Details routes with ranked torrents
	details := r.Group("/details/:kind/:id")
	{
		details.GET("", h.handleDetails)
		details.GET("/season/:season", h.handleSeason)
		details.GET("/season/:season/episode/:episode", h.handleEpisode)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Status: models.StatusError, Message: "Not found"})
	})
}
