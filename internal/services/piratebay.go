package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/amaumene/streamy/internal/constants"
	apierrors "github.com/amaumene/streamy/internal/errors"
	"github.com/amaumene/streamy/internal/metrics"
	"github.com/amaumene/streamy/pkg/httputil"
	"github.com/amaumene/streamy/pkg/logger"
	"github.com/amaumene/streamy/pkg/ratelimiter"
	"github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/amaumene/streamy/pkg/torrentsearch/utils"
	"github.com/avast/retry-go/v4"
)

const (
	magnetSelector = `a[title="Download this torrent using magnet"]`
	titleSelector  = "a.detLink"
	titlePrefix    = "Details for "
)

var sizePattern = regexp.MustCompile(`Size ([^,]*),`)

// categoryCodes maps categories to the index's numeric browse codes.
var categoryCodes = map[models.Category]int{
	models.CategoryAll:       0,
	models.CategoryMovies:    201,
	models.CategoryHDMovies:  207,
	models.CategoryTVShows:   205,
	models.CategoryHDTVShows: 208,
}

// CategoryCode returns the index code for a category.
func CategoryCode(category models.Category) (int, bool) {
	code, ok := categoryCodes[category]
	return code, ok
}

// PirateBay scrapes search result pages of a Pirate Bay style index.
type PirateBay struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter ratelimiter.RateLimiter
	metrics     *metrics.Manager
	logger      logger.Logger
	attempts    uint
	retryDelay  time.Duration
}

// NewPirateBay creates a scraper for https://{domain}.
func NewPirateBay(domain string, m *metrics.Manager, log logger.Logger) *PirateBay {
	return NewPirateBayWithBaseURL("https://"+strings.TrimSuffix(domain, "/"), m, log)
}

// NewPirateBayWithBaseURL creates a scraper for an explicit scheme and host.
func NewPirateBayWithBaseURL(baseURL string, m *metrics.Manager, log logger.Logger) *PirateBay {
	if log == nil {
		log = logger.Nop()
	}
	return &PirateBay{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  httputil.NewHTTPClient(constants.FetchTimeout),
		rateLimiter: ratelimiter.NewTokenBucket(constants.TorrentRateBurst, constants.TorrentRateLimit),
		metrics:     m,
		logger:      log,
		attempts:    constants.MaxFetchAttempts,
		retryDelay:  constants.RetryBaseDelay,
	}
}

// SearchURL builds the result page URL for a query and category.
func (p *PirateBay) SearchURL(query string, category models.Category) (string, error) {
	code, ok := CategoryCode(category)
	if !ok {
		return "", fmt.Errorf("unknown category %d", category)
	}
	return fmt.Sprintf("%s/search/%s/1/99/%d", p.baseURL, url.PathEscape(query), code), nil
}

// FetchRawListings fetches and parses one result page. Transient failures are retried.
func (p *PirateBay) FetchRawListings(ctx context.Context, query string, category models.Category) ([]models.RawListing, error) {
	start := time.Now()

	searchURL, err := p.SearchURL(query, category)
	if err != nil {
		return nil, apierrors.NewFetchError(query, err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.FetchTimeout)
	defer cancel()

	listings, err := retry.DoWithData(
		func() ([]models.RawListing, error) {
			return p.fetchPage(ctx, searchURL)
		},
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(p.retryDelay),
		retry.MaxDelay(constants.RetryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Debugf("[PirateBay] retry %d for %q (%s): %v", n+1, query, category, err)
		}),
	)
	if err != nil {
		p.metrics.ObserveListingFetch(category.String(), metrics.OutcomeError, time.Since(start))
		return nil, apierrors.NewFetchError(searchURL, err)
	}

	p.metrics.ObserveListingFetch(category.String(), metrics.OutcomeSuccess, time.Since(start))
	p.logger.Debugf("[PirateBay] %d listings for %q (%s)", len(listings), query, category)
	return listings, nil
}

func (p *PirateBay) fetchPage(ctx context.Context, searchURL string) ([]models.RawListing, error) {
	if err := p.rateLimiter.Wait(ctx); err != nil {
		return nil, retry.Unrecoverable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("User-Agent", httputil.BrowserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &httputil.StatusError{URL: searchURL, StatusCode: resp.StatusCode}
	}

	listings, err := ParseListings(resp.Body)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	return listings, nil
}

// ParseListings extracts listings from a search result page.
// Rows without a magnet link or title are skipped.
func ParseListings(r io.Reader) ([]models.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apierrors.NewParseError("result page", err)
	}

	var listings []models.RawListing
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= 1 {
			return
		}

		info := cells.Eq(1)
		magnet, _ := info.Find(magnetSelector).First().Attr("href")
		title, _ := info.Find(titleSelector).First().Attr("title")
		title = strings.TrimPrefix(utils.NormalizeSpaces(title), titlePrefix)
		magnet = strings.TrimSpace(magnet)
		if magnet == "" || title == "" {
			return
		}

		listing := models.RawListing{
			Title:  title,
			Magnet: magnet,
		}
		if m := sizePattern.FindStringSubmatch(utils.NormalizeSpaces(info.Text())); m != nil {
			listing.Size = strings.TrimSpace(m[1])
		}
		if cells.Length() > 2 {
			listing.Seeders = utils.NormalizeSpaces(cells.Eq(2).Text())
		}
		if cells.Length() > 3 {
			listing.Leechers = utils.NormalizeSpaces(cells.Eq(3).Text())
		}

		listings = append(listings, listing)
	})

	return listings, nil
}
