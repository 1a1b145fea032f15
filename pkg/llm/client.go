// Package llm wraps the Anthropic API for the two model calls the pipeline
// makes: scoring a call transcript against a position's qualification
// criteria, and extracting contact details from CV text.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/recruitflow/recruitflow/pkg/config"
)

// Client is the Anthropic-backed LLM client.
type Client struct {
	api    anthropic.Client
	cfg    config.AnthropicConfig
	logger *slog.Logger
}

// NewClient creates a client from configuration.
func NewClient(cfg config.AnthropicConfig, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Client{
		api:    anthropic.NewClient(opts...),
		cfg:    cfg,
		logger: slog.Default().With("component", "llm"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// complete sends one system+user exchange and returns the concatenated text
// blocks of the response. A response cut off at the token limit is an error:
// a truncated JSON document must never be repaired into a plausible verdict.
func (c *Client) complete(ctx context.Context, model string, system, user string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(c.cfg.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	if string(msg.StopReason) == "max_tokens" {
		return "", fmt.Errorf("response truncated at %d tokens", c.cfg.MaxTokens)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()
	if text == "" {
		return "", fmt.Errorf("response carries no text content")
	}

	c.logger.Debug("completion received",
		"model", model,
		"stop_reason", string(msg.StopReason),
		"length", len(text),
	)
	return text, nil
}
