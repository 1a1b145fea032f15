package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/pkg/config"
)

func testWhapi(t *testing.T, handler http.Handler) *WhapiClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWhapiClient(config.WhapiConfig{
		BaseURL: srv.URL,
		Token:   "token",
		Timeout: 5 * time.Second,
	})
}

func TestSendText(t *testing.T) {
	var got map[string]string
	c := testWhapi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/text", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sent":    true,
			"message": map[string]string{"id": "wamid.1"},
		})
	}))

	id, err := c.SendText(context.Background(), "+49 151 2345678", "Hello!")
	require.NoError(t, err)
	assert.Equal(t, "wamid.1", id)
	assert.Equal(t, "491512345678@s.whatsapp.net", got["to"])
	assert.Equal(t, "Hello!", got["body"])
}

func TestSendText_NoDigits(t *testing.T) {
	c := testWhapi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	_, err := c.SendText(context.Background(), "not-a-phone", "x")
	assert.Error(t, err)
}

func TestSendText_GatewayError(t *testing.T) {
	c := testWhapi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))
	_, err := c.SendText(context.Background(), "+49151", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestDownloadMedia_RequiresHTTPS(t *testing.T) {
	c := NewWhapiClient(config.WhapiConfig{Token: "token", Timeout: time.Second})
	_, err := c.DownloadMedia(context.Background(), "http://insecure.example.com/file.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTPS")
}

func TestDownloadMedia(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	t.Cleanup(srv.Close)

	c := NewWhapiClient(config.WhapiConfig{Token: "token", Timeout: time.Second})
	c.downloadClient = srv.Client()

	data, err := c.DownloadMedia(context.Background(), srv.URL+"/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}
