package handlers

import (
	"context"
	"strconv"

	apierrors "github.com/amaumene/streamy/internal/errors"
	"github.com/amaumene/streamy/internal/models"
	tsmodels "github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/gin-gonic/gin"
)

const tmdbServiceName = "TMDB"

// respondError writes the error envelope. Internal failures are logged and
// reported with a generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := apierrors.HTTPStatus(err)
	if apierrors.Kind(err) == apierrors.ErrorTypeUnexpected || apierrors.Kind(err) == apierrors.ErrorTypeParseFailure {
		h.services.Logger.Errorf("[Handler] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, models.ErrorResponse{
		Status:  models.StatusError,
		Message: apierrors.PublicMessage(err),
	})
}

// catalogAvailable writes a 503 and returns false when no catalog client is configured.
func (h *Handler) catalogAvailable(c *gin.Context) bool {
	if h.services.TMDB != nil {
		return true
	}
	h.respondError(c, apierrors.NewUnavailableError(tmdbServiceName, nil))
	return false
}

// intParam parses a non-negative integer path parameter.
func intParam(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value < 0 {
		return 0, apierrors.NewInvalidRequestError("Invalid " + name + ": must be a non-negative integer")
	}
	return value, nil
}

// notFoundAs renames a catalog not-found error for the client.
func notFoundAs(err error, what string) error {
	if apierrors.IsKind(err, apierrors.ErrorTypeNotFound) {
		return apierrors.NewNotFoundError(what)
	}
	return err
}

// findTorrents returns the ranked torrents for target, or an empty list when
// there is no title to search for.
func (h *Handler) findTorrents(ctx context.Context, target tsmodels.Target) []tsmodels.TorrentResult {
	if target.Title == "" || h.services.TorrentSearch == nil {
		return []tsmodels.TorrentResult{}
	}
	results := h.services.TorrentSearch.Search(ctx, target)
	if results == nil {
		return []tsmodels.TorrentResult{}
	}
	return results
}
