// Package crawler fetches and parses the legacy site's pages.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"geoscraper/internal/config"
	"geoscraper/pkg/utils"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Scraper fetches pages with rate limiting and config-driven retries.
type Scraper struct {
	client      *http.Client
	limiter     *rate.Limiter
	retryPolicy *config.RetryPolicy
	userAgent   string
}

// NewScraper creates a scraper from the crawl configuration.
func NewScraper(cfg *config.CrawlConfig) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Retry.GetTimeout(),
		},
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
		retryPolicy: &cfg.Retry,
		userAgent:   cfg.UserAgent,
	}
}

// FetchDocument fetches url and parses the response body as HTML. Transient
// failures are retried with exponential backoff.
func (s *Scraper) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	var lastErr error

	for attempt := 1; attempt <= s.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := s.retryPolicy.GetRetryDelay(attempt)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter interrupted: %w", err)
		}

		doc, retryable, err := s.fetchOnce(ctx, url)
		if err == nil {
			return doc, nil
		}

		lastErr = fmt.Errorf("fetch %s (attempt %d/%d): %w", url, attempt, s.retryPolicy.MaxAttempts, err)

		if !retryable {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

func (s *Scraper) fetchOnce(ctx context.Context, url string) (*goquery.Document, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = utils.BuildHeaders(s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, isRetryableStatus(resp.StatusCode), fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, false, nil
}

// isRetryableStatus reports whether a status code marks a temporary failure.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}
