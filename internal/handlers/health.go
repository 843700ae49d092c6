package handlers

import (
	"net/http"

	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:     models.StatusHealthy,
		APIVersion: constants.APIVersion,
		Services: models.HealthServices{
			TorrentScraping: constants.ServiceActive,
			TMDBIntegration: h.tmdbStatus(c),
		},
		Features: models.HealthFeatures{
			IntelligentScoring:   constants.ServiceActive,
			QualityFiltering:     constants.ServiceActive,
			AdvancedSearch:       constants.ServiceActive,
			IntegratedCredits:    constants.ServiceActive,
			StreamlinedResponses: constants.ServiceActive,
			DuplicateRemoval:     constants.ServiceActive,
		},
		Timestamp: "live",
	})
}

func (h *Handler) tmdbStatus(c *gin.Context) string {
	if h.services.TMDB == nil {
		return constants.ServiceDisabled
	}
	if err := h.services.TMDB.Ping(c.Request.Context()); err != nil {
		h.services.Logger.Warnf("[HealthHandler] TMDB ping failed: %v", err)
		return constants.ServiceError
	}
	return constants.ServiceConnected
}
