package handlers

import (
	"net/http"

	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/internal/models"
	"github.com/amaumene/streamy/pkg/torrentsearch/sorter"
	"github.com/gin-gonic/gin"
)

var apiDocs = models.DocsResponse{
	APIName:     constants.APIName,
	Version:     constants.APIVersion,
	Description: constants.APIDescription,
	Features: []string{
		"TMDB metadata integration with essential fields only",
		"Integrated credits within tmdb_details (cast + crew combined)",
		"Direct torrent scraping",
		"Size and seeder aware scoring",
		"Quality detection",
		"Season and episode support for TV shows",
		"Multiple search patterns with deduplication",
		"0-seeder filtering",
	},
	Endpoints: models.DocsEndpoints{
		Search: map[string]string{
			"GET /search/<query>":   "General search (movies + TV shows) - Returns top 5 TMDB results",
			"GET /movies/<query>":   "Movie search only - Returns top 5 TMDB results",
			"GET /tv-shows/<query>": "TV show search only - Returns top 5 TMDB results",
		},
		Details: map[string]string{
			"GET /details/movie/<tmdb_id>":                                            "Movie details with torrents and credits (cast/crew)",
			"GET /details/tv/<tmdb_id>":                                               "TV show details with torrents",
			"GET /details/tv/<tv_id>/season/<season_number>":                          "Season details with season pack torrents",
			"GET /details/tv/<tv_id>/season/<season_number>/episode/<episode_number>": "Episode details with torrents",
		},
		Utility: map[string]string{
			"GET /":        "API documentation",
			"GET /health":  "Health check",
			"GET /metrics": "Prometheus metrics",
		},
	},
	Scoring: models.DocsScoring{
		Description: "Torrents are ranked by a score combining seeder availability and file size",
		Factors: []string{
			"Seeders: piecewise scale, logarithmic above 50",
			"Size: preferred range widens as seeders grow, very large files decay exponentially",
			"Swarm health and popularity multipliers for larger swarms",
			"Size/seeder synergy and a small bonus for rare large releases",
			"Torrents without seeders are removed",
		},
		Quality: sorter.QualityLabels,
	},
	AdvancedSearch: models.DocsAdvancedSearch{
		SeasonSearch: []string{
			`Uses multiple patterns: "Show Name S01" + "Show Name Season 1"`,
			"Filters out individual episodes (removes S01E01 patterns)",
		},
		EpisodeSearch: []string{
			`Uses targeted patterns: "Show Name S01E01" + "Show Name Season 1 Episode 1"`,
		},
	},
	Status: "Production Ready",
}

func (h *Handler) handleDocs(c *gin.Context) {
	c.JSON(http.StatusOK, apiDocs)
}
