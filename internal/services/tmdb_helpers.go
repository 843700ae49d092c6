package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/amaumene/streamy/internal/constants"
	apierrors "github.com/amaumene/streamy/internal/errors"
	"github.com/amaumene/streamy/internal/metrics"
	"github.com/amaumene/streamy/pkg/httputil"
	"github.com/avast/retry-go/v4"
)

func (t *TMDB) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("language") == "" && path != "/configuration" {
		params.Set("language", constants.TMDBLanguage)
	}

	apiURL := t.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		apiURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func cacheKey(path string, params url.Values) string {
	key := "tmdb:" + path
	if len(params) > 0 {
		key += "?" + params.Encode()
	}
	return key
}

// getJSON decodes the response of path into out, reading through the memory
// cache and, when persist is set, the on-disk cache.
func (t *TMDB) getJSON(ctx context.Context, operation, path string, params url.Values, persist bool, out interface{}) error {
	key := cacheKey(path, params)

	if body := t.checkCache(key, persist); body != nil {
		if err := json.Unmarshal(body, out); err == nil {
			t.metrics.ObserveCatalogRequest(operation, metrics.OutcomeCached)
			return nil
		}
		if t.cache != nil {
			t.cache.Delete(key)
		}
	}

	body, err := t.fetch(ctx, path, params)
	if err != nil {
		t.metrics.ObserveCatalogRequest(operation, metrics.OutcomeError)
		if apierrors.IsKind(err, apierrors.ErrorTypeNotFound) {
			t.logger.Debugf("[TMDB] %s %s: not found", operation, path)
			return err
		}
		t.logger.Errorf("[TMDB] %s %s failed: %v", operation, path, err)
		return apierrors.NewUnavailableError(tmdbServiceName, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		t.metrics.ObserveCatalogRequest(operation, metrics.OutcomeError)
		return apierrors.NewParseError(operation+" response", err)
	}

	t.metrics.ObserveCatalogRequest(operation, metrics.OutcomeSuccess)
	t.storeCache(key, body, persist)
	return nil
}

func (t *TMDB) checkCache(key string, persist bool) []byte {
	if t.cache != nil {
		if data, found := t.cache.Get(key); found {
			return data.([]byte)
		}
	}

	if !persist || t.db == nil {
		return nil
	}

	entry, err := t.db.GetCatalogEntry(key)
	if err != nil {
		t.logger.Warnf("[TMDB] failed to read cache entry %s: %v", key, err)
		return nil
	}
	if entry == nil {
		return nil
	}
	if t.cache != nil {
		t.cache.Set(key, entry.Data)
	}
	return entry.Data
}

func (t *TMDB) storeCache(key string, body []byte, persist bool) {
	if t.cache != nil {
		t.cache.Set(key, body)
	}
	if persist && t.db != nil {
		if err := t.db.StoreCatalogEntry(key, body); err != nil {
			t.logger.Errorf("[TMDB] failed to store cache: %v", err)
		}
	}
}

func (t *TMDB) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			return t.fetchOnce(ctx, path, params)
		},
		retry.Context(ctx),
		retry.Attempts(t.attempts),
		retry.Delay(t.retryDelay),
		retry.MaxDelay(constants.RetryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			t.logger.Debugf("[TMDB] retry %d for %s: %v", n+1, path, err)
		}),
	)
}

func (t *TMDB) fetchOnce(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := t.rateLimiter.Wait(ctx); err != nil {
		return nil, retry.Unrecoverable(err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, constants.TMDBRequestTimeout)
	defer cancel()

	req, err := t.newRequest(reqCtx, path, cloneValues(params))
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, retry.Unrecoverable(apierrors.NewNotFoundError(path))
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, &httputil.StatusError{URL: path, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

func cloneValues(params url.Values) url.Values {
	clone := url.Values{}
	for k, v := range params {
		clone[k] = append([]string(nil), v...)
	}
	return clone
}

// isRetryable reports whether a failed request may succeed on another attempt.
func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *httputil.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}
