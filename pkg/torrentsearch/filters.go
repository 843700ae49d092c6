package torrentsearch

import (
	"regexp"

	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/amaumene/streamy/pkg/torrentsearch/utils"
)

var episodePattern = regexp.MustCompile(`(?i)S\d{2}E\d{2}`)

// Deduplicate keeps the first listing for every magnet link and drops
// listings that have no magnet at all.
func Deduplicate(listings []models.RawListing) []models.RawListing {
	seen := make(map[string]struct{}, len(listings))
	unique := make([]models.RawListing, 0, len(listings))

	for _, l := range listings {
		if l.Magnet == "" {
			continue
		}
		if _, ok := seen[l.Magnet]; ok {
			continue
		}
		seen[l.Magnet] = struct{}{}
		unique = append(unique, l)
	}
	return unique
}

// FilterSeasonPacks removes single episode releases (SxxEyy in the title).
func FilterSeasonPacks(listings []models.RawListing) []models.RawListing {
	packs := make([]models.RawListing, 0, len(listings))
	for _, l := range listings {
		if episodePattern.MatchString(l.Title) {
			continue
		}
		packs = append(packs, l)
	}
	return packs
}

// FilterUsable drops listings without a title, magnet or seeders and
// normalises the remaining counts and size text.
func FilterUsable(listings []models.RawListing) []models.ScoredListing {
	usable := make([]models.ScoredListing, 0, len(listings))
	for _, l := range listings {
		if l.Title == "" || l.Magnet == "" {
			continue
		}

		seeders := utils.ParseCount(l.Seeders)
		if seeders == 0 {
			continue
		}

		size := l.Size
		if size == "" {
			size = utils.UnknownSize
		}

		usable = append(usable, models.ScoredListing{
			Title:    l.Title,
			Magnet:   l.Magnet,
			Size:     size,
			Seeders:  seeders,
			Leechers: utils.ParseCount(l.Leechers),
		})
	}
	return usable
}
