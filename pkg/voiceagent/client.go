// Package voiceagent talks to the outbound-calling provider: starting
// single calls, submitting batches, and polling conversation state. It also
// houses the reducer that applies call-completion payloads, shared by the
// webhook ingress and the stuck-call reconciler.
package voiceagent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/recruitflow/recruitflow/pkg/config"
)

// BatchChunkSize is the maximum number of recipients per batch submission.
const BatchChunkSize = 50

// conversationIDKeys are the identifier names used across provider API
// versions, tried in order.
var conversationIDKeys = []string{"conversation_id", "call_id", "id", "call_sid"}

// pollEndpoints are the candidate conversation-detail endpoints, tried in
// order until one returns a 2xx JSON body.
var pollEndpoints = []string{
	"/v1/convai/conversations/%s",
	"/v1/convai/calls/%s",
	"/v1/conversations/%s",
	"/v1/calls/%s",
}

// AgentOverride carries the per-call prompt configuration.
type AgentOverride struct {
	Prompt       string
	FirstMessage string
}

// CallRequest describes a single outbound call.
type CallRequest struct {
	ToNumber string
	Override AgentOverride
}

// BatchRecipient is one entry of a batch submission. ApplicationID is
// embedded as user_id for late-binding of the eventual webhook.
type BatchRecipient struct {
	PhoneNumber   string
	ApplicationID int
	Override      AgentOverride
}

// Client is the HTTP client for the voice-agent provider.
type Client struct {
	httpClient *http.Client
	cfg        config.VoiceAgentConfig
	logger     *slog.Logger
}

// NewClient creates a voice-agent client from configuration.
func NewClient(cfg config.VoiceAgentConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     slog.Default().With("component", "voiceagent"),
	}
}

// Configured reports whether outbound calling credentials are present.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// OverrideHTTPClientForTest replaces the internal HTTP client. For testing only.
func (c *Client) OverrideHTTPClientForTest(httpClient *http.Client) {
	c.httpClient = httpClient
}

func overrideBlock(o AgentOverride) map[string]interface{} {
	return map[string]interface{}{
		"agent": map[string]interface{}{
			"prompt":        map[string]interface{}{"prompt": o.Prompt},
			"first_message": o.FirstMessage,
		},
	}
}

// StartCall places a single outbound call and returns the provider's
// conversation id.
func (c *Client) StartCall(ctx context.Context, req CallRequest) (string, error) {
	body := map[string]interface{}{
		"agent_id":              c.cfg.AgentID,
		"agent_phone_number_id": c.cfg.PhoneNumberID,
		"to_number":             req.ToNumber,
		"conversation_initiation_client_data": map[string]interface{}{
			"conversation_config_override": overrideBlock(req.Override),
		},
	}

	payload, err := c.post(ctx, "/v1/convai/twilio/outbound-call", body)
	if err != nil {
		return "", err
	}

	id := ExtractConversationID(payload)
	if id == "" {
		return "", fmt.Errorf("outbound-call response carries no conversation identifier")
	}
	return id, nil
}

// SubmitBatch submits up to BatchChunkSize recipients in one bulk request
// and returns the provider's batch id. Each recipient carries its
// application id as user_id so the webhook can late-bind.
func (c *Client) SubmitBatch(ctx context.Context, callName string, recipients []BatchRecipient) (string, error) {
	if len(recipients) == 0 {
		return "", fmt.Errorf("empty recipient list")
	}
	if len(recipients) > BatchChunkSize {
		return "", fmt.Errorf("recipient list exceeds chunk size %d", BatchChunkSize)
	}

	items := make([]map[string]interface{}, 0, len(recipients))
	for _, r := range recipients {
		items = append(items, map[string]interface{}{
			"phone_number": r.PhoneNumber,
			"conversation_initiation_client_data": map[string]interface{}{
				"user_id":                      strconv.Itoa(r.ApplicationID),
				"conversation_config_override": overrideBlock(r.Override),
			},
		})
	}
	body := map[string]interface{}{
		"call_name":             callName,
		"agent_id":              c.cfg.AgentID,
		"agent_phone_number_id": c.cfg.PhoneNumberID,
		"recipients":            items,
	}

	payload, err := c.post(ctx, "/v1/convai/batch-calling/submit", body)
	if err != nil {
		return "", err
	}

	for _, key := range []string{"batch_id", "id"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("batch-submit response carries no batch identifier")
}

// GetConversation fetches the current state of a conversation, trying each
// known endpoint shape in order. A 404 moves on to the next candidate; the
// first 2xx JSON body wins.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (map[string]interface{}, error) {
	var lastErr error
	for _, pattern := range pollEndpoints {
		url := c.cfg.BaseURL + fmt.Sprintf(pattern, conversationID)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("xi-api-key", c.cfg.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("poll %s: %w", url, err)
			continue
		}
		raw, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			lastErr = fmt.Errorf("poll %s: HTTP %d", url, resp.StatusCode)
			continue
		}
		if readErr != nil {
			lastErr = fmt.Errorf("poll %s: read body: %w", url, readErr)
			continue
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(raw, &payload); err != nil {
			lastErr = fmt.Errorf("poll %s: decode body: %w", url, err)
			continue
		}
		return payload, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("conversation %s not found on any endpoint", conversationID)
}

// ExtractConversationID pulls the conversation identifier out of a provider
// payload, checking the known key variants at the root and inside "data".
func ExtractConversationID(payload map[string]interface{}) string {
	for _, key := range conversationIDKeys {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	if data, ok := payload["data"].(map[string]interface{}); ok {
		for _, key := range conversationIDKeys {
			if v, ok := data[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}

func (c *Client) post(ctx context.Context, path string, body map[string]interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("POST %s: read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("POST %s: HTTP %d: %s", path, resp.StatusCode, truncateBody(respBody))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("POST %s: decode body: %w", path, err)
	}
	return payload, nil
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
