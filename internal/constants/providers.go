package constants

// Provider names used in logs and metric labels
const (
	ProviderPirateBay = "piratebay"
	ProviderTMDB      = "tmdb"
)
