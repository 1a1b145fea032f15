// Package messaging sends outbound WhatsApp and email messages, resolves the
// editable message templates, and records every send as a Message row. The
// CV-request entry point doubles as the post-verdict side effect of the
// evaluation adapter.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

const downloadTimeout = 30 * time.Second

// WhapiClient talks to the WhatsApp gateway.
type WhapiClient struct {
	sendClient     *http.Client
	downloadClient *http.Client
	cfg            config.WhapiConfig
	logger         *slog.Logger
}

// NewWhapiClient creates a gateway client from configuration.
func NewWhapiClient(cfg config.WhapiConfig) *WhapiClient {
	return &WhapiClient{
		sendClient:     &http.Client{Timeout: cfg.Timeout},
		downloadClient: &http.Client{Timeout: downloadTimeout},
		cfg:            cfg,
		logger:         slog.Default().With("component", "whapi"),
	}
}

// Configured reports whether an outbound token is present.
func (c *WhapiClient) Configured() bool {
	return c.cfg.Token != ""
}

// SendText sends a plain-text message and returns the gateway message id.
func (c *WhapiClient) SendText(ctx context.Context, phone, body string) (string, error) {
	digits := textutil.PhoneDigits(phone)
	if digits == "" {
		return "", fmt.Errorf("no digits in recipient phone %q", phone)
	}

	payload, err := json.Marshal(map[string]string{
		"to":   digits + "@s.whatsapp.net",
		"body": body,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/messages/text", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.sendClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whatsapp send: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whatsapp send: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("whatsapp send: HTTP %d: %s", resp.StatusCode, textutil.Truncate(string(raw), 300))
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("whatsapp send: decode body: %w", err)
	}
	if msg, ok := decoded["message"].(map[string]interface{}); ok {
		if id, ok := msg["id"].(string); ok && id != "" {
			return id, nil
		}
	}
	if id, ok := decoded["id"].(string); ok && id != "" {
		return id, nil
	}
	return "", nil
}

// DownloadMedia fetches an inbound attachment. The gateway only serves media
// over HTTPS; anything else is rejected before a request goes out.
func (c *WhapiClient) DownloadMedia(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("media URL must be HTTPS, got %q", textutil.Truncate(url, 100))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("media download: HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("media download: read body: %w", err)
	}
	return data, nil
}
