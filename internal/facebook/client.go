// Package facebook posts rendered payloads to a Facebook page via the
// Graph API.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const graphAPIBase = "https://graph.facebook.com/v18.0"

// Client posts to a single Facebook page feed.
type Client struct {
	http        *resty.Client
	pageID      string
	accessToken string
}

// NewClient creates a new Facebook page client.
func NewClient(pageID, accessToken string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(graphAPIBase).
			SetTimeout(30 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(1 * time.Second),
		pageID:      pageID,
		accessToken: accessToken,
	}
}

// PostMessage publishes a text post to the page feed.
func (c *Client) PostMessage(ctx context.Context, message string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"message":      message,
			"access_token": c.accessToken,
		}).
		Post("/" + c.pageID + "/feed")

	if err != nil {
		return fmt.Errorf("failed to post to facebook: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("facebook API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("failed to parse facebook response: %w", err)
	}
	if result.ID == "" {
		return fmt.Errorf("facebook post not created: %s", resp.String())
	}

	log.Info().Str("post_id", result.ID).Msg("Facebook post created")
	return nil
}
