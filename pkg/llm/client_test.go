package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/pkg/config"
)

func messagesResponse(text, stopReason string) map[string]interface{} {
	return map[string]interface{}{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-sonnet-4-5",
		"content":     []map[string]interface{}{{"type": "text", "text": text}},
		"stop_reason": stopReason,
		"usage":       map[string]int{"input_tokens": 10, "output_tokens": 20},
	}
}

func testLLM(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(config.AnthropicConfig{
		APIKey:    "key",
		Model:     "claude-sonnet-4-5",
		FastModel: "claude-haiku-4-5",
		MaxTokens: 2048,
	}, option.WithBaseURL(srv.URL))
}

func TestEvaluateTranscript(t *testing.T) {
	var reqBody map[string]interface{}
	c := testLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		_ = json.NewEncoder(w).Encode(messagesResponse(goodVerdict, "end_turn"))
	}))

	result, err := c.EvaluateTranscript(context.Background(), EvaluationInput{
		CandidateName:         "Ada Lovelace",
		PositionTitle:         "Backend Engineer",
		QualificationCriteria: "3+ years of Go",
		Transcript:            "Agent: Hello\n\nUser: Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeQualified, result.Outcome)
	assert.Equal(t, "claude-sonnet-4-5", result.Model)

	assert.Equal(t, "claude-sonnet-4-5", reqBody["model"])
	assert.EqualValues(t, 2048, reqBody["max_tokens"])
}

func TestEvaluateTranscript_TruncatedResponse(t *testing.T) {
	c := testLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(messagesResponse(`{"outcome": "QUAL`, "max_tokens"))
	}))

	_, err := c.EvaluateTranscript(context.Background(), EvaluationInput{Transcript: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
}

func TestExtractContact_UsesFastModel(t *testing.T) {
	var reqBody map[string]interface{}
	c := testLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		_ = json.NewEncoder(w).Encode(messagesResponse(`{"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com", "phone": null}`, "end_turn"))
	}))

	contact, err := c.ExtractContact(context.Background(), "Ada Lovelace\nada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Equal(t, "claude-haiku-4-5", reqBody["model"])
}
