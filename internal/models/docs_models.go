package models

// DocsResponse is the API overview served at the root path.
type DocsResponse struct {
	APIName        string             `json:"api_name"`
	Version        string             `json:"version"`
	Description    string             `json:"description"`
	Features       []string           `json:"features"`
	Endpoints      DocsEndpoints      `json:"endpoints"`
	Scoring        DocsScoring        `json:"intelligent_scoring"`
	AdvancedSearch DocsAdvancedSearch `json:"advanced_search"`
	Status         string             `json:"status"`
}

type DocsEndpoints struct {
	Search  map[string]string `json:"search"`
	Details map[string]string `json:"details"`
	Utility map[string]string `json:"utility"`
}

type DocsScoring struct {
	Description string   `json:"description"`
	Factors     []string `json:"factors"`
	Quality     []string `json:"quality_labels"`
}

type DocsAdvancedSearch struct {
	SeasonSearch  []string `json:"season_search"`
	EpisodeSearch []string `json:"episode_search"`
}
