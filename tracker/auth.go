package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// ErrAuthFailed is returned when every login payload shape was rejected.
var ErrAuthFailed = errors.New("all login attempts failed")

// tokenKeys are the spellings the login response may use for the token field.
var tokenKeys = []string{"token", "Token", "access_token", "AccessToken"}

// EnsureToken returns a bearer token usable for subsequent API calls. A
// persisted token is probed first and reused when the API still accepts it;
// otherwise it is cleared and a fresh login is attempted.
func (c *Client) EnsureToken(ctx context.Context) (string, error) {
	if tok := c.creds.Token(); tok != "" && c.probeToken(ctx, tok) {
		log.Printf("persisted token still valid, reusing")
		return tok, nil
	}
	log.Printf("token missing or expired, logging in")
	if err := c.creds.SetToken(""); err != nil {
		return "", fmt.Errorf("clear stale token: %w", err)
	}
	return c.login(ctx)
}

// probeToken issues a lightweight authenticated request. Any transport error
// counts as an invalid token.
func (c *Client) probeToken(ctx context.Context, token string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ListaVeiculos", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

// login tries each candidate payload shape in priority order, first as JSON
// and then form-encoded, stopping at the first response that yields a token.
// The new token is persisted before it is returned.
func (c *Client) login(ctx context.Context) (string, error) {
	shapes := []map[string]string{
		{"username": c.creds.Username(), "password": c.creds.Password()},
		{"Usuario": c.creds.Username(), "Senha": c.creds.Password()},
		{"user": c.creds.Username(), "pass": c.creds.Password()},
	}
	for i, shape := range shapes {
		log.Printf("login attempt %d/%d", i+1, len(shapes))
		for _, asForm := range []bool{false, true} {
			tok := c.tryLogin(ctx, shape, asForm)
			if tok == "" {
				continue
			}
			if err := c.creds.SetToken(tok); err != nil {
				return "", fmt.Errorf("persist token: %w", err)
			}
			log.Printf("login succeeded")
			return tok, nil
		}
	}
	return "", ErrAuthFailed
}

// tryLogin posts one payload shape and extracts a token-like field from the
// response, returning "" on any failure.
func (c *Client) tryLogin(ctx context.Context, shape map[string]string, asForm bool) string {
	endpoint := c.baseURL + "/ValidaLogin"
	var req *http.Request
	var err error
	if asForm {
		form := url.Values{}
		for k, v := range shape {
			form.Set(k, v)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return ""
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		body, merr := json.Marshal(shape)
		if merr != nil {
			return ""
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return ""
		}
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	for _, k := range tokenKeys {
		if v, ok := payload[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
