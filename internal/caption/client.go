// Package caption generates social captions for match cards through an
// OpenAI-compatible chat endpoint.
package caption

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchsignals/pitchsignals/internal/content"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI SDK for caption generation.
type Client struct {
	client *openai.Client
	model  string
}

// Config holds the configuration for the caption client.
type Config struct {
	APIKey   string
	Endpoint string
	Model    string
}

// NewClient creates a new caption client. Endpoint may point at any
// OpenAI-compatible service; empty keeps the SDK default.
func NewClient(cfg Config) *Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		config.BaseURL = cfg.Endpoint
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}
}

// Generate produces a short social caption from the structured match
// facts. Callers fall back to content.FallbackCaption on error.
func (c *Client) Generate(ctx context.Context, facts content.Facts) (string, error) {
	systemPrompt := `You are a social media editor for a football tips channel.
Write punchy, confident captions. Max 280 characters. Use at most two
emoji. Never promise guaranteed wins. Respond with the caption text only.`

	priorWinLine := ""
	if facts.PriorWin != "" {
		priorWinLine = fmt.Sprintf("Recently verified pick (mention as social proof): %s\n", facts.PriorWin)
	}

	userPrompt := fmt.Sprintf(`Write a caption for this match card.

Match: %s vs %s
Competition: %s
Odds (home/draw/away): %.2f / %.2f / %.2f
Angle: %s
Pick: %s
%s`,
		facts.HomeTeam,
		facts.AwayTeam,
		facts.Competition,
		facts.Odds.Home,
		facts.Odds.Draw,
		facts.Odds.Away,
		facts.Insight,
		facts.MainPick,
		priorWinLine,
	)

	log.Debug().
		Str("model", c.model).
		Str("fixture", facts.HomeTeam+" vs "+facts.AwayTeam).
		Msg("Requesting caption")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil {
		return "", fmt.Errorf("caption generation failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in caption response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
