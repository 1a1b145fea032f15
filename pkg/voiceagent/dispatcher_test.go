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

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/test/util"
)

// withinWindow falls inside the default 9-18 calling hours.
var withinWindow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func testDispatcher(t *testing.T, client *ent.Client, handler http.Handler) *Dispatcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	va := NewClient(config.VoiceAgentConfig{
		BaseURL:       srv.URL,
		APIKey:        "key",
		AgentID:       "agent_1",
		PhoneNumberID: "phone_1",
		Timeout:       5 * time.Second,
	})
	apps := services.NewApplicationService(client, nil)
	return NewDispatcher(client, apps, va, time.UTC)
}

func seedQueued(t *testing.T, client *ent.Client, status application.Status) *ent.Application {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Grace").
		SetLastName("Hopper").
		SetPhone("+4915110000001").
		SetEmail("grace@example.com").
		Save(ctx)
	require.NoError(t, err)

	pos, err := client.Position.Create().
		SetTitle("Platform Engineer").
		SetAgentPrompt("You are screening {candidate_name} for {position_title}.").
		SetAgentFirstMessage("Hi {candidate_first_name}!").
		Save(ctx)
	require.NoError(t, err)

	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return app
}

func TestDispatchBatch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	var got map[string]interface{}
	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/convai/batch-calling/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"batch_id": "batch_42"})
	}))

	app := seedQueued(t, client, application.StatusCallQueued)

	require.NoError(t, d.dispatchBatch(ctx, withinWindow))

	recipients := got["recipients"].([]interface{})
	require.Len(t, recipients, 1)
	first := recipients[0].(map[string]interface{})
	assert.Equal(t, "+4915110000001", first["phone_number"])
	override := first["conversation_initiation_client_data"].(map[string]interface{})["conversation_config_override"].(map[string]interface{})
	prompt := override["agent"].(map[string]interface{})["prompt"].(map[string]interface{})["prompt"]
	assert.Equal(t, "You are screening Grace Hopper for Platform Engineer.", prompt)

	call, err := client.Call.Query().Where(entcall.ApplicationIDEQ(app.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, call.ExternalBatchID)
	assert.Equal(t, "batch_42", *call.ExternalBatchID)
	assert.Nil(t, call.ExternalConversationID)
	assert.Equal(t, entcall.StatusInitiated, call.Status)
	assert.Equal(t, 1, call.AttemptNumber)

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallInProgress, refreshed.Status)
}

func TestDispatchBatch_SubmissionFailure(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	app := seedQueued(t, client, application.StatusCallQueued)

	require.NoError(t, d.dispatchBatch(ctx, withinWindow))

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallFailed, refreshed.Status)

	audit, err := client.StatusChange.Query().
		Where(statuschange.ApplicationIDEQ(app.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Batch call submission failed", audit.Note)

	n, err := client.Call.Query().Where(entcall.ApplicationIDEQ(app.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDispatchBatch_OutsideCallingHours(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no submission expected outside calling hours")
	}))

	app := seedQueued(t, client, application.StatusCallQueued)

	night := time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC)
	require.NoError(t, d.dispatchBatch(ctx, night))

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallQueued, refreshed.Status)
}

func TestDispatchBatch_MisconfiguredCallingWindow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no submission expected for a misconfigured calling window")
	}))

	// An inverted window never opens, whatever the current hour.
	app := seedQueued(t, client, application.StatusCallQueued)
	loaded, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	_, err = client.Position.UpdateOneID(loaded.PositionID).
		SetCallingHoursStart(18).
		SetCallingHoursEnd(9).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, d.dispatchBatch(ctx, withinWindow))

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallQueued, refreshed.Status)

	n, err := client.Call.Query().Where(entcall.ApplicationIDEQ(app.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// A zero-width window is equally misconfigured.
	_, err = client.Position.UpdateOneID(loaded.PositionID).
		SetCallingHoursStart(10).
		SetCallingHoursEnd(10).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, d.dispatchBatch(ctx, withinWindow))
	refreshed, err = client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallQueued, refreshed.Status)
}

func TestDispatchBatch_SkipsMissingPhone(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no submission expected for a candidate without a phone")
	}))

	app := seedQueued(t, client, application.StatusCallQueued)
	cand, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	_, err = client.Candidate.UpdateOneID(cand.CandidateID).SetPhone("").Save(ctx)
	require.NoError(t, err)

	require.NoError(t, d.dispatchBatch(ctx, withinWindow))

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallQueued, refreshed.Status)
}

func TestDispatchCallbacks(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/convai/twilio/outbound-call", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"conversation_id": "conv_cb"})
	}))

	app := seedQueued(t, client, application.StatusCallbackScheduled)
	_, err := client.Application.UpdateOneID(app.ID).
		SetCallbackScheduledAt(withinWindow.Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, d.dispatchCallbacks(ctx, withinWindow))

	call, err := client.Call.Query().Where(entcall.ApplicationIDEQ(app.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, call.ExternalConversationID)
	assert.Equal(t, "conv_cb", *call.ExternalConversationID)

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallInProgress, refreshed.Status)

	audit, err := client.StatusChange.Query().
		Where(statuschange.ApplicationIDEQ(app.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Scheduled callback dispatched", audit.Note)
}

func TestDispatchCallbacks_NotDueYet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	d := testDispatcher(t, client, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no call expected before the scheduled time")
	}))

	app := seedQueued(t, client, application.StatusCallbackScheduled)
	_, err := client.Application.UpdateOneID(app.ID).
		SetCallbackScheduledAt(withinWindow.Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, d.dispatchCallbacks(ctx, withinWindow))

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallbackScheduled, refreshed.Status)
}
