package security

import (
	"regexp"
	"strings"
)

// PlaceholderTMDBKey is the value shipped in the sample .env file.
const PlaceholderTMDBKey = "your_tmdb_api_key_here"

var (
	validKeyPattern   = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	invalidKeyPattern = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
	hexPattern        = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
)

// APIKeyValidator provides secure validation and handling of API keys
type APIKeyValidator struct {
	minLength int
	maxLength int
}

// NewAPIKeyValidator creates a new API key validator with reasonable defaults
func NewAPIKeyValidator() *APIKeyValidator {
	return &APIKeyValidator{
		minLength: 8,
		maxLength: 1024,
	}
}

// ValidateAPIKey validates API key format and length
func (v *APIKeyValidator) ValidateAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	if len(apiKey) < v.minLength || len(apiKey) > v.maxLength {
		return false
	}

	return validKeyPattern.MatchString(apiKey)
}

// SanitizeAPIKey trims whitespace and removes characters that could break a header.
// Dots are kept because TMDB read access tokens are JWTs.
func (v *APIKeyValidator) SanitizeAPIKey(apiKey string) string {
	apiKey = strings.TrimSpace(apiKey)
	return invalidKeyPattern.ReplaceAllString(apiKey, "")
}

// MaskAPIKey creates a masked version for logging (shows only first/last few chars)
func (v *APIKeyValidator) MaskAPIKey(apiKey string) string {
	if len(apiKey) == 0 {
		return "[empty]"
	}

	if len(apiKey) <= 8 {
		return "[***]"
	}

	return apiKey[:3] + "..." + apiKey[len(apiKey)-3:]
}


// IsConfiguredTMDBKey reports whether a TMDB credential was actually provided.
func (v *APIKeyValidator) IsConfiguredTMDBKey(apiKey string) bool {
	apiKey = strings.TrimSpace(apiKey)
	return apiKey != "" && apiKey != PlaceholderTMDBKey
}

// IsValidTMDBKey accepts both v3 API keys (32 hex chars) and v4 read access tokens.
func (v *APIKeyValidator) IsValidTMDBKey(apiKey string) bool {
	if !v.ValidateAPIKey(apiKey) {
		return false
	}

	if hexPattern.MatchString(apiKey) {
		return true
	}

	// v4 tokens are JWTs: three dot separated segments
	return strings.Count(apiKey, ".") == 2
}
