// Package source fetches the published spreadsheet export the directory is
// built from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JonMunkholm/resourcehub/internal/logging"
)

// DefaultURL is the resource hub's published sheet.
const DefaultURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSTxUNASxygD_MAh9zIzdYeRqISiBKM0NXD7tuB6GNix6VNjeHbeQLmiHCVXfw0icCUrKy7VMQnSoNp/pub?output=csv"

// maxRedirects covers the published-sheet hop to googleusercontent.
const maxRedirects = 5

var (
	// ErrUnexpectedStatus wraps any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrBodyTooLarge is returned when the export exceeds the byte limit.
	ErrBodyTooLarge = errors.New("body too large")
)

// Config configures a Fetcher.
type Config struct {
	URL       string
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
	CacheTTL  time.Duration // 0 disables caching
}

// Fetcher performs the GET for one sheet URL and caches the body.
type Fetcher struct {
	httpClient *http.Client
	url        string
	userAgent  string
	maxBytes   int64
	cache      *BodyCache
	cacheTTL   time.Duration
}

// NewFetcher creates a Fetcher. A nil client gets one with cfg.Timeout.
func NewFetcher(cfg Config, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		}
	}

	f := &Fetcher{
		httpClient: client,
		url:        cfg.URL,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBytes,
		cacheTTL:   cfg.CacheTTL,
	}
	if cfg.CacheTTL > 0 {
		// One key per fetcher, overwritten on every miss: no janitor needed.
		f.cache = NewBodyCache(cfg.CacheTTL, 0)
	}
	return f
}

// Fetch returns the CSV body, from cache when fresh.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	logger := logging.WithFields(ctx, "component", "source")

	if f.cache != nil {
		if body, ok := f.cache.Get(f.url); ok {
			logger.Debug("source cache hit", "bytes", len(body))
			return body, nil
		}
	}

	start := time.Now()
	body, err := f.get(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("source fetched",
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if f.cache != nil {
		f.cache.Set(f.url, body, f.cacheTTL)
	}
	return body, nil
}

// Invalidate drops the cached body so the next Fetch goes to the network.
func (f *Fetcher) Invalidate() {
	if f.cache != nil {
		f.cache.Delete(f.url)
	}
}

func (f *Fetcher) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	reader := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		// One extra byte tells an exact fit from an overflow.
		reader = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if f.maxBytes > 0 && int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, f.maxBytes)
	}
	return body, nil
}
