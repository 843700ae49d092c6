// Package models defines data structures for TMDB API responses and API envelopes.
package models

// SearchResult is one hit of a movie, tv or multi search.
type SearchResult struct {
	ID               int      `json:"id"`
	MediaType        string   `json:"media_type,omitempty"`
	Title            string   `json:"title,omitempty"`
	OriginalTitle    string   `json:"original_title,omitempty"`
	Name             string   `json:"name,omitempty"`
	OriginalName     string   `json:"original_name,omitempty"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path,omitempty"`
	BackdropPath     string   `json:"backdrop_path,omitempty"`
	ProfilePath      string   `json:"profile_path,omitempty"`
	ReleaseDate      string   `json:"release_date,omitempty"`
	FirstAirDate     string   `json:"first_air_date,omitempty"`
	GenreIDs         []int    `json:"genre_ids,omitempty"`
	OriginalLanguage string   `json:"original_language,omitempty"`
	OriginCountry    []string `json:"origin_country,omitempty"`
	Popularity       float64  `json:"popularity"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Adult            bool     `json:"adult"`
}

type TMDBSearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SpokenLanguage struct {
	ISO  string `json:"iso_639_1"`
	Name string `json:"name"`
}

// SeasonSummary is a season as listed inside a show's details.
type SeasonSummary struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	SeasonNumber int     `json:"season_number"`
	EpisodeCount int     `json:"episode_count"`
	AirDate      *string `json:"air_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path,omitempty"`
}

// EpisodeSummary is an episode as listed inside a season's details.
type EpisodeSummary struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	AirDate       *string `json:"air_date"`
	Overview      string  `json:"overview"`
	VoteAverage   float64 `json:"vote_average"`
	Runtime       *int    `json:"runtime"`
	StillPath     string  `json:"still_path,omitempty"`
}

// Details covers movie, show, season and episode records.
// Fields a record kind does not carry stay empty and are omitted.
type Details struct {
	ID               int              `json:"id"`
	Title            string           `json:"title,omitempty"`
	Name             string           `json:"name,omitempty"`
	Overview         string           `json:"overview"`
	ReleaseDate      string           `json:"release_date,omitempty"`
	FirstAirDate     string           `json:"first_air_date,omitempty"`
	VoteAverage      float64          `json:"vote_average"`
	VoteCount        int              `json:"vote_count"`
	Popularity       float64          `json:"popularity,omitempty"`
	Adult            *bool            `json:"adult,omitempty"`
	OriginalLanguage string           `json:"original_language,omitempty"`
	OriginalTitle    string           `json:"original_title,omitempty"`
	OriginalName     string           `json:"original_name,omitempty"`
	Runtime          *int             `json:"runtime,omitempty"`
	Status           string           `json:"status,omitempty"`
	Tagline          string           `json:"tagline,omitempty"`
	Genres           []Genre          `json:"genres,omitempty"`
	SpokenLanguages  []SpokenLanguage `json:"spoken_languages,omitempty"`
	Homepage         string           `json:"homepage,omitempty"`
	IMDBID           string           `json:"imdb_id,omitempty"`

	// TV
	NumberOfEpisodes *int            `json:"number_of_episodes,omitempty"`
	NumberOfSeasons  *int            `json:"number_of_seasons,omitempty"`
	EpisodeRunTime   []int           `json:"episode_run_time,omitempty"`
	InProduction     *bool           `json:"in_production,omitempty"`
	LastAirDate      string          `json:"last_air_date,omitempty"`
	Type             string          `json:"type,omitempty"`
	Seasons          []SeasonSummary `json:"seasons,omitempty"`

	// Season and episode
	SeasonNumber  *int             `json:"season_number,omitempty"`
	EpisodeNumber *int             `json:"episode_number,omitempty"`
	AirDate       string           `json:"air_date,omitempty"`
	StillPath     string           `json:"still_path,omitempty"`
	EpisodeCount  *int             `json:"episode_count,omitempty"`
	Episodes      []EpisodeSummary `json:"episodes,omitempty"`

	PosterPath   string `json:"poster_path,omitempty"`
	BackdropPath string `json:"backdrop_path,omitempty"`

	Credits []Credit `json:"credits,omitempty"`
}

type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	Popularity  float64 `json:"popularity"`
	ProfilePath string  `json:"profile_path"`
}

type CrewMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Job         string  `json:"job"`
	Popularity  float64 `json:"popularity"`
	ProfilePath string  `json:"profile_path"`
}

// MovieCredits holds the most popular cast and crew of a movie.
type MovieCredits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Credit is one entry of the merged cast and crew list.
// Character is null for crew.
type Credit struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   *string `json:"character"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	Popularity  float64 `json:"popularity"`
	Order       int     `json:"order"`
	ProfilePath string  `json:"profile_path,omitempty"`
}
