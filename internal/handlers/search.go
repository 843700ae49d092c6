package handlers

import (
	"context"
	"net/http"

	"github.com/amaumene/streamy/internal/models"
	"github.com/gin-gonic/gin"
)

type searchFunc func(ctx context.Context, query string) ([]models.SearchResult, error)

func (h *Handler) handleSearchMulti(c *gin.Context) {
	if !h.catalogAvailable(c) {
		return
	}
	h.handleSearch(c, h.services.TMDB.SearchMulti)
}

func (h *Handler) handleSearchMovies(c *gin.Context) {
	if !h.catalogAvailable(c) {
		return
	}
	h.handleSearch(c, h.services.TMDB.SearchMovies)
}

func (h *Handler) handleSearchTV(c *gin.Context) {
	if !h.catalogAvailable(c) {
		return
	}
	h.handleSearch(c, h.services.TMDB.SearchTV)
}

func (h *Handler) handleSearch(c *gin.Context, search searchFunc) {
	query := c.Param("query")

	results, err := search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	formatted := h.services.Formatter.SearchResults(results)
	h.services.Logger.Debugf("[SearchHandler] %q: %d results", query, len(formatted))

	c.JSON(http.StatusOK, models.SearchResponse{
		Status:  models.StatusSuccess,
		Query:   query,
		Count:   len(formatted),
		Results: formatted,
	})
}
