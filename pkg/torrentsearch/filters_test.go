package torrentsearch

import (
	"testing"

	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicateKeepsFirstOccurrence(t *testing.T) {
	listings := []models.RawListing{
		{Title: "A 720p", Magnet: "magnet:a", Seeders: "5"},
		{Title: "B", Magnet: "magnet:b", Seeders: "3"},
		{Title: "A 720p (HD category)", Magnet: "magnet:a", Seeders: "9"},
		{Title: "no magnet", Magnet: "", Seeders: "100"},
		{Title: "C", Magnet: "magnet:c", Seeders: "1"},
	}

	unique := Deduplicate(listings)
	require.Len(t, unique, 3)
	assert.Equal(t, "A 720p", unique[0].Title)
	assert.Equal(t, "B", unique[1].Title)
	assert.Equal(t, "C", unique[2].Title)
}

func TestDeduplicateIsIdempotent(t *testing.T) {
	listings := []models.RawListing{
		{Title: "1", Magnet: "magnet:x"},
		{Title: "2", Magnet: "magnet:y"},
		{Title: "3", Magnet: "magnet:x"},
		{Title: "4", Magnet: "magnet:z"},
		{Title: "5", Magnet: "magnet:y"},
	}

	once := Deduplicate(listings)
	twice := Deduplicate(once)
	assert.Equal(t, once, twice)
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}

func TestFilterSeasonPacks(t *testing.T) {
	listings := []models.RawListing{
		{Title: "Show S01E01.mkv", Magnet: "magnet:1"},
		{Title: "Show.S01.COMPLETE.1080p", Magnet: "magnet:2"},
		{Title: "show s01e02", Magnet: "magnet:3"},
		{Title: "Show Season 1 Complete", Magnet: "magnet:4"},
	}

	packs := FilterSeasonPacks(listings)
	require.Len(t, packs, 2)
	assert.Equal(t, "Show.S01.COMPLETE.1080p", packs[0].Title)
	assert.Equal(t, "Show Season 1 Complete", packs[1].Title)
}

func TestFilterUsableDropsZeroSeeders(t *testing.T) {
	listings := []models.RawListing{
		{Title: "zero", Magnet: "magnet:0", Seeders: "0"},
		{Title: "missing", Magnet: "magnet:1", Seeders: ""},
		{Title: "garbage", Magnet: "magnet:2", Seeders: "lots"},
		{Title: "ok", Magnet: "magnet:3", Seeders: "12", Leechers: "n/a", Size: "1.4 GiB"},
		{Title: "", Magnet: "magnet:4", Seeders: "10"},
		{Title: "no magnet", Magnet: "", Seeders: "10"},
	}

	usable := FilterUsable(listings)
	require.Len(t, usable, 1)
	assert.Equal(t, "ok", usable[0].Title)
	assert.Equal(t, 12, usable[0].Seeders)
	assert.Equal(t, 0, usable[0].Leechers)
	assert.Equal(t, "1.4 GiB", usable[0].Size)
}

func TestFilterUsableDefaultsSize(t *testing.T) {
	usable := FilterUsable([]models.RawListing{{Title: "t", Magnet: "magnet:t", Seeders: "1", Leechers: "4"}})
	require.Len(t, usable, 1)
	assert.Equal(t, "Unknown", usable[0].Size)
	assert.Equal(t, 4, usable[0].Leechers)
}
