package handlers

import (
	"net/http"

	apierrors "github.com/amaumene/streamy/internal/errors"
	"github.com/amaumene/streamy/internal/models"
	tsmodels "github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/gin-gonic/gin"
)

const (
	kindMovie = "movie"
	kindTV    = "tv"
)

func (h *Handler) handleDetails(c *gin.Context) {
	if !h.catalogAvailable(c) {
		return
	}

	kind := c.Param("kind")
	if kind != kindMovie && kind != kindTV {
		h.respondError(c, apierrors.NewInvalidRequestError(`Content type must be "movie" or "tv"`))
		return
	}

	id, err := intParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	var (
		details *models.Details
		credits *models.MovieCredits
		target  tsmodels.Target
	)

	if kind == kindMovie {
		details, err = h.services.TMDB.MovieDetails(ctx, id)
		if err == nil {
			target = tsmodels.MovieTarget(details.Title)
			credits, err = h.services.TMDB.MovieCredits(ctx, id)
			if err != nil {
				h.services.Logger.Warnf("[DetailsHandler] credits for movie %d unavailable: %v", id, err)
				credits, err = nil, nil
			}
		}
	} else {
		details, err = h.services.TMDB.TVDetails(ctx, id)
		if err == nil {
			target = tsmodels.ShowTarget(details.Name)
		}
	}
	if err != nil {
		h.respondError(c, notFoundAs(err, "Content"))
		return
	}

	torrents := h.findTorrents(ctx, target)

	c.JSON(http.StatusOK, models.DetailsResponse{
		Status:         models.StatusSuccess,
		TMDBDetails:    h.services.Formatter.Details(details, credits),
		TorrentCount:   len(torrents),
		TorrentResults: torrents,
	})
}

func (h *Handler) handleSeason(c *gin.Context) {
	if !h.catalogAvailable(c) {
		return
	}

	req, ok := h.loadShow(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	details, err := h.services.TMDB.SeasonDetails(ctx, req.id, req.season)
	if err != nil {
		h.respondError(c, notFoundAs(err, "Season"))
		return
	}

	torrents := h.findTorrents(ctx, tsmodels.SeasonTarget(req.show.Name, req.season))

	c.JSON(http.StatusOK, models.SeasonResponse{
		Status:         models.StatusSuccess,
		TVShowName:     req.show.Name,
		SeasonDetails:  h.services.Formatter.Details(details, nil),
		TorrentCount:   len(torrents),
		TorrentResults: torrents,
	})
}

func (h *Handler) handleEpisode(c *gin.Context) {
	if !h.catalogAvailable(c) {
		return
	}

	req, ok := h.loadShow(c)
	if !ok {
		return
	}

	episode, err := intParam(c, "episode")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	details, err := h.services.TMDB.EpisodeDetails(ctx, req.id, req.season, episode)
	if err != nil {
		h.respondError(c, notFoundAs(err, "Episode"))
		return
	}

	torrents := h.findTorrents(ctx, tsmodels.EpisodeTarget(req.show.Name, req.season, episode))

	c.JSON(http.StatusOK, models.EpisodeResponse{
		Status:         models.StatusSuccess,
		TVShowName:     req.show.Name,
		EpisodeDetails: h.services.Formatter.Details(details, nil),
		TorrentCount:   len(torrents),
		TorrentResults: torrents,
	})
}

type showRequest struct {
	id     int
	season int
	show   *models.Details
}

// loadShow validates the show and season parameters and fetches the show.
// It writes the error response itself and returns false on failure.
func (h *Handler) loadShow(c *gin.Context) (showRequest, bool) {
	if c.Param("kind") != kindTV {
		h.respondError(c, apierrors.NewNotFoundError("TV show"))
		return showRequest{}, false
	}

	id, err := intParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return showRequest{}, false
	}

	season, err := intParam(c, "season")
	if err != nil {
		h.respondError(c, err)
		return showRequest{}, false
	}

	show, err := h.services.TMDB.TVDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, notFoundAs(err, "TV show"))
		return showRequest{}, false
	}
	return showRequest{id: id, season: season, show: show}, true
}
