package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
	testdb "github.com/recruitflow/recruitflow/test/database"
)

const testWebhookSecret = "whsec_test"

type fakeAPIEvaluator struct {
	callIDs []int
}

func (f *fakeAPIEvaluator) EvaluateCall(_ context.Context, callID int) (*ent.Evaluation, error) {
	f.callIDs = append(f.callIDs, callID)
	return nil, nil
}

type apiFixture struct {
	router    *gin.Engine
	client    *ent.Client
	evaluator *fakeAPIEvaluator
}

func newVoiceFixture(t *testing.T, cfg *config.Config) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbc := testdb.NewTestClient(t)
	client := dbc.Client
	apps := services.NewApplicationService(client, nil)
	evaluator := &fakeAPIEvaluator{}
	srv := NewServer(
		dbc,
		cfg,
		voiceagent.NewReducer(client, apps),
		evaluator,
		nil,
		services.NewReplyService(client),
		nil,
	)
	return &apiFixture{router: srv.Routes(), client: client, evaluator: evaluator}
}

func devConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		VoiceAgent:  config.VoiceAgentConfig{WebhookSecret: testWebhookSecret},
	}
}

// seedVoiceCall creates a candidate/position/application chain with one call.
func seedVoiceCall(t *testing.T, client *ent.Client, mutate func(*ent.CallCreate)) (*ent.Application, *ent.Call) {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetPhone("+491512345678").
		Save(ctx)
	require.NoError(t, err)
	pos, err := client.Position.Create().SetTitle("Backend Engineer").Save(ctx)
	require.NoError(t, err)
	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(application.StatusCallInProgress).
		Save(ctx)
	require.NoError(t, err)

	create := client.Call.Create().SetApplicationID(app.ID)
	if mutate != nil {
		mutate(create)
	}
	call, err := create.Save(ctx)
	require.NoError(t, err)
	return app, call
}

func signBody(secret string, body []byte, at time.Time) string {
	ts := fmt.Sprintf("%d", at.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + "."))
	mac.Write(body)
	return fmt.Sprintf("t=%s,v0=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func postVoice(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/voice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func completionBody(conversationID string) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"status": "done",
		"data": map[string]interface{}{
			"conversation_id": conversationID,
			"transcript": []interface{}{
				map[string]interface{}{"role": "agent", "message": "Hello"},
				map[string]interface{}{"role": "user", "message": "Hi"},
			},
			"summary": "Short call",
		},
	})
	return raw
}

func TestVoiceWebhook_CompletionFlow(t *testing.T) {
	f := newVoiceFixture(t, devConfig())
	app, call := seedVoiceCall(t, f.client, func(c *ent.CallCreate) {
		c.SetExternalConversationID("conv_1")
	})

	body := completionBody("conv_1")
	w := postVoice(f.router, body, signBody(testWebhookSecret, body, time.Now()))

	require.Equal(t, http.StatusOK, w.Code)

	refreshed, err := f.client.Call.Get(context.Background(), call.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusCompleted, refreshed.Status)
	assert.Equal(t, []int{call.ID}, f.evaluator.callIDs)

	updated, err := f.client.Application.Get(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusScoring, updated.Status)
}

func TestVoiceWebhook_InvalidSignature(t *testing.T) {
	f := newVoiceFixture(t, devConfig())
	body := completionBody("conv_1")

	w := postVoice(f.router, body, signBody("wrong-secret", body, time.Now()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postVoice(f.router, body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVoiceWebhook_StaleTimestamp(t *testing.T) {
	f := newVoiceFixture(t, devConfig())
	body := completionBody("conv_1")

	w := postVoice(f.router, body, signBody(testWebhookSecret, body, time.Now().Add(-10*time.Minute)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVoiceWebhook_MissingSecret(t *testing.T) {
	// Development skips the check with a warning.
	f := newVoiceFixture(t, &config.Config{Environment: "development"})
	_, call := seedVoiceCall(t, f.client, func(c *ent.CallCreate) {
		c.SetExternalConversationID("conv_1")
	})

	w := postVoice(f.router, completionBody("conv_1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	refreshed, err := f.client.Call.Get(context.Background(), call.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusCompleted, refreshed.Status)

	// Production refuses to process anything unsigned.
	prod := newVoiceFixture(t, &config.Config{Environment: "production"})
	w = postVoice(prod.router, completionBody("conv_1"), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVoiceWebhook_MalformedBody(t *testing.T) {
	f := newVoiceFixture(t, devConfig())
	body := []byte("{not json")

	w := postVoice(f.router, body, signBody(testWebhookSecret, body, time.Now()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoiceWebhook_CallNotFound(t *testing.T) {
	f := newVoiceFixture(t, devConfig())

	body := completionBody("conv_unknown")
	w := postVoice(f.router, body, signBody(testWebhookSecret, body, time.Now()))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "call_not_found")
	assert.Empty(t, f.evaluator.callIDs)
}

func TestVoiceWebhook_LateBinding(t *testing.T) {
	f := newVoiceFixture(t, devConfig())
	app, call := seedVoiceCall(t, f.client, func(c *ent.CallCreate) {
		c.SetExternalBatchID("batch_7")
	})

	raw, err := json.Marshal(map[string]interface{}{
		"status": "done",
		"conversation_initiation_client_data": map[string]interface{}{
			"user_id": fmt.Sprintf("%d", app.ID),
		},
		"data": map[string]interface{}{
			"conversation_id": "conv_batch",
			"transcript": []interface{}{
				map[string]interface{}{"role": "agent", "message": "Hello"},
			},
		},
	})
	require.NoError(t, err)

	w := postVoice(f.router, raw, signBody(testWebhookSecret, raw, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)

	bound, err := f.client.Call.Get(context.Background(), call.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.ExternalConversationID)
	assert.Equal(t, "conv_batch", *bound.ExternalConversationID)
	assert.Equal(t, entcall.StatusCompleted, bound.Status)
}
