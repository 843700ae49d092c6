package sorter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/amaumene/streamy/pkg/torrentsearch/utils"
	"github.com/cehbz/torrentname"
)

// QualityLabels is checked in order; the first case-insensitive match wins.
var QualityLabels = []string{"4K", "2160p", "1080p", "720p", "480p", "HDRip", "BluRay", "WEBRip", "DVDRip"}

const tinySizeGB = 0.05

type TorrentSorter struct{}

func NewTorrentSorter() *TorrentSorter {
	return &TorrentSorter{}
}

// DetectQuality returns the first quality label found in title, or "".
func DetectQuality(title string) string {
	lower := strings.ToLower(title)
	for _, label := range QualityLabels {
		if strings.Contains(lower, strings.ToLower(label)) {
			return label
		}
	}
	return ""
}

// Score rates a listing from its size and seeder count. Higher is better.
// A listing without seeders scores 0.
func Score(sizeBytes int64, seeders int) float64 {
	if seeders <= 0 {
		return 0
	}

	s := float64(seeders)
	sizeGB := float64(sizeBytes) / utils.BytesPerGiB

	base := seederBase(seeders)

	tol := math.Min(2.0, math.Log10(s+1)*0.8)
	size := sizeScore(sizeGB, tol)

	expected := math.Max(1, sizeGB*2)
	ratio := math.Min(s/expected, expected/s)
	synergy := 0.9 + ratio*0.2

	rarity := 1.0
	if seeders <= 3 && sizeGB >= 0.5 {
		rarity = 1.1
	}

	return math.Max(0.1, base*size*healthMultiplier(seeders)*momentumBonus(seeders)*synergy*rarity)
}

func seederBase(seeders int) float64 {
	s := float64(seeders)
	switch {
	case seeders <= 2:
		return s * 25
	case seeders <= 10:
		return 50 + (s-2)*15
	case seeders <= 50:
		return 170 + (s-10)*8
	default:
		return 490 + math.Log10(s-49)*25
	}
}

// sizeScore prefers mid-sized releases; the sweet spot widens with tol.
func sizeScore(sizeGB, tol float64) float64 {
	smallThresh := 0.3 + tol*0.2
	optMin := 0.7 + tol*0.3
	optMax := 2.5 + tol*1.5
	largeThresh := 6.0 + tol*2.0

	switch {
	case sizeGB < tinySizeGB:
		return 0.15
	case sizeGB < smallThresh:
		return 0.4 + (sizeGB/smallThresh)*0.3
	case sizeGB <= optMin:
		return 0.7 + (sizeGB-smallThresh)/(optMin-smallThresh)*0.25
	case sizeGB <= optMax:
		return 0.95 + 0.05*math.Sin((sizeGB-optMin)/(optMax-optMin)*math.Pi)
	case sizeGB <= largeThresh:
		return 0.95 * (1 - ((sizeGB-optMax)/(largeThresh-optMax))*0.25)
	default:
		return 0.7 * math.Exp(-(sizeGB-largeThresh)/10)
	}
}

func healthMultiplier(seeders int) float64 {
	switch {
	case seeders == 1:
		return 0.8
	case seeders <= 3:
		return 0.9
	case seeders <= 8:
		return 1.0
	case seeders <= 25:
		return 1.1
	default:
		return 1.1 + math.Min(0.3, float64(seeders-25)/100)
	}
}

func momentumBonus(seeders int) float64 {
	switch {
	case seeders >= 20:
		return 1.15
	case seeders >= 10:
		return 1.08
	case seeders >= 5:
		return 1.03
	default:
		return 1.0
	}
}

// Rank scores listings, sorts them best first and strips the scoring state.
// Listings with equal scores keep their input order.
func (ts *TorrentSorter) Rank(listings []models.ScoredListing) []models.TorrentResult {
	scored := make([]models.ScoredListing, len(listings))
	copy(scored, listings)

	for i := range scored {
		scored[i].SizeBytes = utils.ParseSize(scored[i].Size)
		scored[i].Score = Score(scored[i].SizeBytes, scored[i].Seeders)
		scored[i].Quality = DetectQuality(scored[i].Title)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	results := make([]models.TorrentResult, 0, len(scored))
	for _, l := range scored {
		results = append(results, models.TorrentResult{
			Title:    l.Title,
			Magnet:   l.Magnet,
			Size:     l.Size,
			Seeders:  l.Seeders,
			Leechers: l.Leechers,
			Quality:  l.Quality,
		})
	}
	return results
}

// DebugInfo describes the first limit ranked results with their parsed release details.
func (ts *TorrentSorter) DebugInfo(results []models.TorrentResult, limit int) []string {
	if limit > len(results) {
		limit = len(results)
	}
	if limit < 0 {
		limit = 0
	}

	debugInfo := make([]string, 0, limit)
	for i, r := range results[:limit] {
		var details string
		if parsed := torrentname.Parse(r.Title); parsed != nil {
			details = fmt.Sprintf(" [%v, %v, %v, %v, %v]",
				parsed.Title,
				parsed.Year,
				parsed.Resolution,
				parsed.Source,
				parsed.Codec)
		}
		debugInfo = append(debugInfo, fmt.Sprintf("%d. %s (%s, %d seeders)%s",
			i+1,
			r.Title,
			r.Size,
			r.Seeders,
			details))
	}
	return debugInfo
}
