package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/frotalab/fleet-snapshot/position"
)

const (
	// embeddedErrorKey marks an error payload disguised as a result row.
	embeddedErrorKey = "ErroProcessamento"
	// rateLimitCode is the upstream "too many calls" error code.
	rateLimitCode = "3S.1040"
)

// FetchAllPositions retrieves the last known position of every vehicle in a
// single bulk call (vehicle selector 0 = all).
//
// Transport failures are retried with a fixed backoff; exhausting the retries
// returns an error so the caller keeps the previous snapshot. An embedded
// rate-limit error pauses, resets the call counter and retries the same
// logical attempt without consuming the transport-retry budget. Any other
// embedded error is terminal for the call.
func (c *Client) FetchAllPositions(ctx context.Context, token string) ([]position.Record, error) {
	endpoint := c.baseURL + "/ListaUltimaPosicaoVeiculos/0"
	var lastErr error
	rateLimitBudget := c.retryAttempts
	for attempt := 0; attempt < c.retryAttempts; {
		records, err := c.fetchOnce(ctx, endpoint, token)
		if err != nil {
			lastErr = err
			attempt++
			log.Printf("fetch attempt failed: %v", err)
			if attempt < c.retryAttempts {
				log.Printf("retrying (%d/%d) in %s", attempt+1, c.retryAttempts, c.retryBackoff)
				time.Sleep(c.retryBackoff)
			}
			continue
		}
		if code, ok := embeddedError(records); ok {
			if strings.Contains(code, rateLimitCode) {
				if rateLimitBudget == 0 {
					return nil, fmt.Errorf("upstream still rate limited after %d pauses", c.retryAttempts)
				}
				rateLimitBudget--
				c.limiter.Pause()
				continue
			}
			return nil, fmt.Errorf("API error: %s", code)
		}
		log.Printf("fetched %d positions", len(records))
		return records, nil
	}
	return nil, fmt.Errorf("fetch failed after %d attempts: %w", c.retryAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, endpoint, token string) ([]position.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, endpoint)
	}
	c.limiter.Tick()

	var records []position.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return records, nil
}

// embeddedError reports the API-level error code smuggled into the first row
// of an otherwise successful response.
func embeddedError(records []position.Record) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	v, ok := records[0][embeddedErrorKey]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}
