// Package livescore provides a client for the LiveScore fixture API
// and the normalizer that turns its payload into canonical matches.
package livescore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// ErrBudgetExhausted is returned once the per-run request ceiling is
// reached. No upstream call is made after that point.
var ErrBudgetExhausted = errors.New("livescore: fetch budget exhausted")

// Client provides access to the LiveScore API with a hard per-run
// request budget. Create one client per run; the counter is not reset.
type Client struct {
	http   *resty.Client
	budget int
	used   int
}

// NewClient creates a new LiveScore client with the given request budget.
func NewClient(apiKey, host string, budget int) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL("https://" + host).
			SetTimeout(30 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(1 * time.Second).
			SetHeader("X-RapidAPI-Key", apiKey).
			SetHeader("X-RapidAPI-Host", host),
		budget: budget,
	}
}

// MatchesByDate fetches the fixture list for a date (YYYYMMDD, GMT).
func (c *Client) MatchesByDate(ctx context.Context, date string) (*Response, error) {
	return c.get(ctx, "/matches/v2/list-by-date", map[string]string{
		"Category": "soccer",
		"Date":     date,
		"Timezone": "0",
	})
}

// LiveMatches fetches the fixtures currently in play.
func (c *Client) LiveMatches(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/matches/v2/list-live", map[string]string{
		"Category": "soccer",
		"Timezone": "0",
	})
}

// get performs one budget-guarded call. The budget counts attempts,
// not successes: a failed call still consumes its slot, so a flaky
// upstream cannot cause more paid requests than the ceiling allows.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) (*Response, error) {
	if c.used >= c.budget {
		log.Warn().
			Int("budget", c.budget).
			Msg("Fetch budget exhausted, skipping upstream call")
		return nil, ErrBudgetExhausted
	}
	c.used++

	log.Debug().
		Str("endpoint", endpoint).
		Msg("Fetching fixtures from LiveScore")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fixtures API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var payload Response
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	log.Debug().
		Int("stages", len(payload.Stages)).
		Msg("Fetched fixtures")

	return &payload, nil
}

// RequestsUsed reports how many upstream calls this client has made.
func (c *Client) RequestsUsed() int {
	return c.used
}
