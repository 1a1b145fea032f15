package voiceagent

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

func testClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.VoiceAgentConfig{
		BaseURL:       srv.URL,
		APIKey:        "key",
		AgentID:       "agent_1",
		PhoneNumberID: "phone_1",
		Timeout:       5 * time.Second,
	})
}

func TestStartCall(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/convai/twilio/outbound-call", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("xi-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"call_sid": "CA123"})
	}))

	id, err := c.StartCall(context.Background(), CallRequest{
		ToNumber: "+491512345678",
		Override: AgentOverride{Prompt: "You are calling Ada", FirstMessage: "Hello Ada"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CA123", id)

	assert.Equal(t, "agent_1", got["agent_id"])
	assert.Equal(t, "phone_1", got["agent_phone_number_id"])
	assert.Equal(t, "+491512345678", got["to_number"])
	override := got["conversation_initiation_client_data"].(map[string]interface{})["conversation_config_override"].(map[string]interface{})
	agent := override["agent"].(map[string]interface{})
	assert.Equal(t, "Hello Ada", agent["first_message"])
	assert.Equal(t, "You are calling Ada", agent["prompt"].(map[string]interface{})["prompt"])
}

func TestSubmitBatch(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/convai/batch-calling/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"batch_id": "batch_9"})
	}))

	id, err := c.SubmitBatch(context.Background(), "run-1", []BatchRecipient{
		{PhoneNumber: "+491512345678", ApplicationID: 42, Override: AgentOverride{Prompt: "p"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "batch_9", id)

	recipients := got["recipients"].([]interface{})
	require.Len(t, recipients, 1)
	first := recipients[0].(map[string]interface{})
	clientData := first["conversation_initiation_client_data"].(map[string]interface{})
	assert.Equal(t, "42", clientData["user_id"])
}

func TestSubmitBatch_SizeLimits(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := c.SubmitBatch(context.Background(), "run", nil)
	assert.Error(t, err)

	big := make([]BatchRecipient, BatchChunkSize+1)
	_, err = c.SubmitBatch(context.Background(), "run", big)
	assert.Error(t, err)
}

func TestGetConversation_EndpointFallback(t *testing.T) {
	var paths []string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/v1/conversations/conv_1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "done"})
	}))

	payload, err := c.GetConversation(context.Background(), "conv_1")
	require.NoError(t, err)
	assert.Equal(t, "done", payload["status"])
	assert.Equal(t, []string{
		"/v1/convai/conversations/conv_1",
		"/v1/convai/calls/conv_1",
		"/v1/conversations/conv_1",
	}, paths)
}

func TestExtractConversationID(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]interface{}
		expected string
	}{
		{"root conversation_id", map[string]interface{}{"conversation_id": "c1"}, "c1"},
		{"key priority", map[string]interface{}{"id": "x", "conversation_id": "c1"}, "c1"},
		{"nested in data", map[string]interface{}{"data": map[string]interface{}{"call_id": "c2"}}, "c2"},
		{"missing", map[string]interface{}{"foo": "bar"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractConversationID(tt.payload))
		})
	}
}

func TestExtractUserID(t *testing.T) {
	t.Run("string with prefix", func(t *testing.T) {
		id, ok := ExtractUserID(map[string]interface{}{
			"data": map[string]interface{}{
				"conversation_initiation_client_data": map[string]interface{}{"user_id": "app-317"},
			},
		})
		require.True(t, ok)
		assert.Equal(t, 317, id)
	})

	t.Run("numeric", func(t *testing.T) {
		id, ok := ExtractUserID(map[string]interface{}{
			"conversation_initiation_client_data": map[string]interface{}{"user_id": float64(12)},
		})
		require.True(t, ok)
		assert.Equal(t, 12, id)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := ExtractUserID(map[string]interface{}{})
		assert.False(t, ok)
	})
}

func TestMapStatus(t *testing.T) {
	assert.Equal(t, "completed", string(MapStatus("done")))
	assert.Equal(t, "completed", string(MapStatus("COMPLETED")))
	assert.Equal(t, "failed", string(MapStatus("failed")))
	assert.Equal(t, "no_answer", string(MapStatus("no_answer")))
	assert.Equal(t, "busy", string(MapStatus("busy")))
	assert.Equal(t, "in_progress", string(MapStatus("processing")))
	assert.Equal(t, "in_progress", string(MapStatus("something_new")))
}

func TestFormatTranscript(t *testing.T) {
	turns := []interface{}{
		map[string]interface{}{"role": "agent", "message": "Hello, am I speaking with Ada?"},
		map[string]interface{}{"role": "user", "content": "Yes, speaking."},
		map[string]interface{}{"role": "agent", "text": "Great."},
	}
	expected := "Agent: Hello, am I speaking with Ada?\n\nUser: Yes, speaking.\n\nAgent: Great."
	assert.Equal(t, expected, FormatTranscript(turns))
}
