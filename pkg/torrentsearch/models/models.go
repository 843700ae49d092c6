// Package models defines data structures for torrent search operations.
package models

// ContentKind selects which query variants are issued for a target.
type ContentKind string

const (
	KindMovie     ContentKind = "movie"
	KindTVGeneral ContentKind = "tv-general"
	KindTVSeason  ContentKind = "tv-season"
	KindTVEpisode ContentKind = "tv-episode"
	// KindAny searches every category with the bare title.
	KindAny ContentKind = "any"
)

// Target describes what the caller is looking for.
// Season is used by KindTVSeason and KindTVEpisode, Episode by KindTVEpisode only.
type Target struct {
	Title   string
	Kind    ContentKind
	Season  int
	Episode int
}

// MovieTarget builds a movie search target.
func MovieTarget(title string) Target {
	return Target{Title: title, Kind: KindMovie}
}

// ShowTarget builds a whole-show search target.
func ShowTarget(title string) Target {
	return Target{Title: title, Kind: KindTVGeneral}
}

// SeasonTarget builds a season pack search target.
func SeasonTarget(title string, season int) Target {
	return Target{Title: title, Kind: KindTVSeason, Season: season}
}

// EpisodeTarget builds a single episode search target.
func EpisodeTarget(title string, season, episode int) Target {
	return Target{Title: title, Kind: KindTVEpisode, Season: season, Episode: episode}
}

// Category is a logical index category. Sources map it to their own codes.
type Category int

const (
	CategoryAll Category = iota
	CategoryMovies
	CategoryHDMovies
	CategoryTVShows
	CategoryHDTVShows
)

func (c Category) String() string {
	switch c {
	case CategoryMovies:
		return "movies"
	case CategoryHDMovies:
		return "hd-movies"
	case CategoryTVShows:
		return "tv"
	case CategoryHDTVShows:
		return "hd-tv"
	default:
		return "all"
	}
}

// QueryPair is one query string issued against one category.
type QueryPair struct {
	Query    string
	Category Category
}

// QueryPlan is the ordered set of pairs issued for one target.
// It is never modified after it has been built.
type QueryPlan []QueryPair

// RawListing is a torrent row as scraped, before any normalisation.
// Seeders and Leechers keep their raw text so parsing stays in one place.
type RawListing struct {
	Title    string
	Magnet   string
	Size     string
	Seeders  string
	Leechers string
}

// ScoredListing is a listing that survived filtering, ready for ranking.
type ScoredListing struct {
	Title     string
	Magnet    string
	Size      string
	Seeders   int
	Leechers  int
	SizeBytes int64
	Quality   string
	Score     float64
}

// TorrentResult is the public shape of a ranked listing.
type TorrentResult struct {
	Title    string `json:"title"`
	Magnet   string `json:"magnet"`
	Size     string `json:"size"`
	Seeders  int    `json:"seeders"`
	Leechers int    `json:"leechers"`
	Quality  string `json:"quality,omitempty"`
}
