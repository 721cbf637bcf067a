package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"tftladder/ingestion/internal/metrics"

	"github.com/rs/zerolog/log"
)

// Client talks to the three upstream surfaces: the Riot API (league, match,
// account endpoints, API-key header), the community profile API
// (unauthenticated) and the Data Dragon CDN (unauthenticated, versioned JSON).
type Client struct {
	riotBaseURL    string
	profileBaseURL string
	ddragonBaseURL string
	apiKey         string
	httpClient     *http.Client
	rateLimiter    chan struct{} // Rate limiting semaphore
	maxRetries     int
	retryDelay     time.Duration
}

// Options configures a Client
type Options struct {
	RiotBaseURL    string
	ProfileBaseURL string
	DDragonBaseURL string
	APIKey         string
	Timeout        time.Duration
}

// NewClient creates a new API client
func NewClient(opts Options) *Client {
	// Rate limiter (max 10 concurrent requests); the Riot dev key budget is
	// small, so stay conservative
	rateLimiter := make(chan struct{}, 10)
	for i := 0; i < 10; i++ {
		rateLimiter <- struct{}{}
	}

	return &Client{
		riotBaseURL:    opts.RiotBaseURL,
		profileBaseURL: opts.ProfileBaseURL,
		ddragonBaseURL: opts.DDragonBaseURL,
		apiKey:         opts.APIKey,
		rateLimiter:    rateLimiter,
		maxRetries:     3,
		retryDelay:     1 * time.Second,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a GET request with retry logic and rate limiting.
// endpoint is a short label for logging and metrics; authed controls the
// Riot API key header.
func (c *Client) get(ctx context.Context, endpoint, url string, params map[string]string, authed bool) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.APICallDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s
			backoff := c.retryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().
				Str("endpoint", endpoint).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Retrying API request after backoff")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		// Rate limiting: acquire semaphore
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.rateLimiter:
		}

		body, retryable, err := c.doOnce(ctx, endpoint, url, params, authed)
		c.rateLimiter <- struct{}{}

		if err == nil {
			metrics.APICallsTotal.WithLabelValues(endpoint, "ok").Inc()
			return body, nil
		}

		lastErr = err
		if !retryable || attempt == c.maxRetries {
			metrics.APICallsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, lastErr
		}

		log.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Int("attempt", attempt+1).
			Msg("Received retryable error, will retry")
	}

	metrics.APICallsTotal.WithLabelValues(endpoint, "error").Inc()
	return nil, lastErr
}

// doOnce issues a single request and classifies the outcome
func (c *Client) doOnce(ctx context.Context, endpoint, url string, params map[string]string, authed bool) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tftladder-ingestion/1.0")
	if authed {
		req.Header.Set("X-Riot-Token", c.apiKey)
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	log.Debug().
		Str("endpoint", endpoint).
		Str("url", req.URL.Redacted()).
		Msg("Making API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors are retryable
		return nil, true, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		log.Debug().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Int("size", len(body)).
			Msg("API request successful")
		return body, false, nil

	case http.StatusNotFound:
		return nil, false, fmt.Errorf("%s: %w", endpoint, ErrNotFound)

	case http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("%s: %w", endpoint, ErrRateLimited)

	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return nil, true, fmt.Errorf("%s returned retryable status %d", endpoint, resp.StatusCode)

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, false, fmt.Errorf("%s (status %d): %w", endpoint, resp.StatusCode, ErrUnauthorized)

	default:
		return nil, false, fmt.Errorf("%s returned status %d: %s", endpoint, resp.StatusCode, string(body))
	}
}
