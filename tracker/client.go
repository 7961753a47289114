package tracker

import (
	"net/http"
	"strings"
	"time"

	"github.com/frotalab/fleet-snapshot/config"
	"github.com/frotalab/fleet-snapshot/credstore"
)

// Client is a stateful HTTP client for the tracking API. It owns the rate
// limiter, so every outbound call is counted against the upstream ceiling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credstore.Store
	limiter    *RateLimiter

	retryAttempts int
	retryBackoff  time.Duration
}

// NewClient creates a client for the configured API endpoint.
func NewClient(cfg config.APIConfig, creds credstore.Store) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.Timeout()},
		creds:         creds,
		limiter:       NewRateLimiter(cfg.RateLimitCalls, cfg.RateLimitPause()),
		retryAttempts: cfg.FetchRetries,
		retryBackoff:  cfg.RetryBackoff(),
	}
}
