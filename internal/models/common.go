package models

import (
	tsmodels "github.com/amaumene/streamy/pkg/torrentsearch/models"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SearchResponse is returned by the catalog search routes
type SearchResponse struct {
	Status  string         `json:"status"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// DetailsResponse pairs a movie or show with its ranked torrents
type DetailsResponse struct {
	Status         string                   `json:"status"`
	TMDBDetails    *Details                 `json:"tmdb_details"`
	TorrentCount   int                      `json:"torrent_count"`
	TorrentResults []tsmodels.TorrentResult `json:"torrent_results"`
}

// SeasonResponse pairs a season with its ranked season packs
type SeasonResponse struct {
	Status         string                   `json:"status"`
	TVShowName     string                   `json:"tv_show_name"`
	SeasonDetails  *Details                 `json:"season_details"`
	TorrentCount   int                      `json:"torrent_count"`
	TorrentResults []tsmodels.TorrentResult `json:"torrent_results"`
}

// EpisodeResponse pairs an episode with its ranked torrents
type EpisodeResponse struct {
	Status         string                   `json:"status"`
	TVShowName     string                   `json:"tv_show_name"`
	EpisodeDetails *Details                 `json:"episode_details"`
	TorrentCount   int                      `json:"torrent_count"`
	TorrentResults []tsmodels.TorrentResult `json:"torrent_results"`
}

type HealthServices struct {
	TorrentScraping string `json:"torrent_scraping"`
	TMDBIntegration string `json:"tmdb_integration"`
}

type HealthFeatures struct {
	IntelligentScoring   string `json:"intelligent_scoring"`
	QualityFiltering     string `json:"quality_filtering"`
	AdvancedSearch       string `json:"advanced_search"`
	IntegratedCredits    string `json:"integrated_credits"`
	StreamlinedResponses string `json:"streamlined_responses"`
	DuplicateRemoval     string `json:"duplicate_removal"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status     string         `json:"status"`
	APIVersion string         `json:"api_version"`
	Services   HealthServices `json:"services"`
	Features   HealthFeatures `json:"features"`
	Timestamp  string         `json:"timestamp"`
}
