// Package session connects the externally managed identity session to
// the store. A Client fetches the current session from the identity
// provider, claims are mapped onto the application user, and a Watcher
// keeps the store's currentUser/isAuthenticated in step, last writer
// wins.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ErrSignedOut is returned by FetchSession when the provider reports no
// active session. It is a normal outcome, not a transport failure.
var ErrSignedOut = errors.New("no active session")

// Session is the provider's session document. The access token carries
// the identity claims.
type Session struct {
	AccessToken string `json:"access_token"`
}

// Client fetches the session from the identity provider. Requests go
// through a circuit breaker so a dead provider does not hang every
// poll.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient builds a session client for the provider at baseURL. The
// anon key is sent on every request as the provider expects.
func NewClient(baseURL, anonKey string) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "AuthProviderCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})

	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		breaker:    breaker,
	}
}

// FetchSession returns the current session, ErrSignedOut when the
// provider reports none, or an error when the provider is unreachable
// or the breaker is open.
func (c *Client) FetchSession(ctx context.Context) (*Session, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/session", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("apikey", c.anonKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			var session Session
			if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
				return nil, fmt.Errorf("failed to decode session response: %v", err)
			}
			return &session, nil
		case http.StatusUnauthorized, http.StatusNoContent:
			return (*Session)(nil), nil
		default:
			return nil, fmt.Errorf("unexpected session response status: %d", resp.StatusCode)
		}
	})
	if err != nil {
		return nil, err
	}

	session := result.(*Session)
	if session == nil {
		return nil, ErrSignedOut
	}
	return session, nil
}
