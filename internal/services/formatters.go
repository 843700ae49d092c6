package services

import (
	"sort"

	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/internal/models"
)

const (
	castJob        = "Actor"
	castDepartment = "Acting"
)

// Formatter shapes catalog records for API responses.
type Formatter struct {
	imageBaseURL string
}

func NewFormatter(imageBaseURL string) *Formatter {
	if imageBaseURL == "" {
		imageBaseURL = constants.DefaultTMDBImageBaseURL
	}
	return &Formatter{imageBaseURL: imageBaseURL}
}

// ImageURL expands a relative image path. Empty paths stay empty.
func (f *Formatter) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return f.imageBaseURL + path
}

// SearchResults returns copies of results with full image URLs.
func (f *Formatter) SearchResults(results []models.SearchResult) []models.SearchResult {
	formatted := make([]models.SearchResult, 0, len(results))
	for _, r := range results {
		r.PosterPath = f.ImageURL(r.PosterPath)
		r.BackdropPath = f.ImageURL(r.BackdropPath)
		r.ProfilePath = f.ImageURL(r.ProfilePath)
		formatted = append(formatted, r)
	}
	return formatted
}

// Details returns a copy of d with full image URLs, trimmed seasons and
// episodes, and the merged credits when credits is not nil.
func (f *Formatter) Details(d *models.Details, credits *models.MovieCredits) *models.Details {
	if d == nil {
		return nil
	}

	formatted := *d
	formatted.PosterPath = f.ImageURL(d.PosterPath)
	formatted.BackdropPath = f.ImageURL(d.BackdropPath)
	formatted.StillPath = f.ImageURL(d.StillPath)

	if len(d.Seasons) > 0 {
		formatted.Seasons = make([]models.SeasonSummary, len(d.Seasons))
		for i, season := range d.Seasons {
			season.PosterPath = f.ImageURL(season.PosterPath)
			formatted.Seasons[i] = season
		}
	}

	if len(d.Episodes) > 0 {
		formatted.Episodes = make([]models.EpisodeSummary, len(d.Episodes))
		for i, episode := range d.Episodes {
			episode.StillPath = f.ImageURL(episode.StillPath)
			formatted.Episodes[i] = episode
		}
	}

	formatted.Credits = nil
	if credits != nil {
		formatted.Credits = f.Credits(credits)
	}

	return &formatted
}

// Credits merges cast and crew into one list sorted by popularity.
// Cast entries get job "Actor"; crew entries get no character and order 999.
func (f *Formatter) Credits(credits *models.MovieCredits) []models.Credit {
	merged := make([]models.Credit, 0, len(credits.Cast)+len(credits.Crew))

	for _, member := range credits.Cast {
		character := member.Character
		merged = append(merged, models.Credit{
			ID:          member.ID,
			Name:        member.Name,
			Character:   &character,
			Job:         castJob,
			Department:  castDepartment,
			Popularity:  member.Popularity,
			Order:       member.Order,
			ProfilePath: f.ImageURL(member.ProfilePath),
		})
	}

	for _, member := range credits.Crew {
		merged = append(merged, models.Credit{
			ID:          member.ID,
			Name:        member.Name,
			Job:         member.Job,
			Department:  member.Department,
			Popularity:  member.Popularity,
			Order:       constants.CrewCreditOrder,
			ProfilePath: f.ImageURL(member.ProfilePath),
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Popularity > merged[j].Popularity
	})
	if len(merged) > constants.MaxMergedCredits {
		merged = merged[:constants.MaxMergedCredits]
	}
	return merged
}
