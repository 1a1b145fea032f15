package voiceagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/test/util"
)

func seedCall(t *testing.T, client *ent.Client, appStatus application.Status) (*ent.Application, *ent.Call) {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetPhone("+491512345678").
		Save(ctx)
	require.NoError(t, err)

	pos, err := client.Position.Create().
		SetTitle("Backend Engineer").
		Save(ctx)
	require.NoError(t, err)

	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(appStatus).
		Save(ctx)
	require.NoError(t, err)

	call, err := client.Call.Create().
		SetApplicationID(app.ID).
		SetExternalBatchID("batch_1").
		Save(ctx)
	require.NoError(t, err)
	return app, call
}

func completionPayload(conversationID string) map[string]interface{} {
	return map[string]interface{}{
		"status": "done",
		"data": map[string]interface{}{
			"conversation_id": conversationID,
			"transcript": []interface{}{
				map[string]interface{}{"role": "agent", "message": "Hello"},
				map[string]interface{}{"role": "user", "message": "Hi"},
			},
			"summary":          "Short friendly call",
			"recording_url":    "https://example.com/rec.mp3",
			"duration_seconds": float64(95),
		},
	}
}

func TestReducerApply_Completion(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	apps := services.NewApplicationService(client, nil)
	r := NewReducer(client, apps)
	ctx := context.Background()

	app, call := seedCall(t, client, application.StatusCallInProgress)

	res, err := r.Apply(ctx, call.ID, completionPayload("conv_X"))
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, entcall.StatusCompleted, res.Call.Status)
	assert.Equal(t, "Agent: Hello\n\nUser: Hi", res.Call.Transcript)
	assert.Equal(t, "Short friendly call", res.Call.Summary)
	assert.Equal(t, "https://example.com/rec.mp3", res.Call.RecordingURL)
	require.NotNil(t, res.Call.DurationSeconds)
	assert.Equal(t, 95, *res.Call.DurationSeconds)
	assert.NotNil(t, res.Call.EndedAt)

	got, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusScoring, got.Status)

	// Two audit entries: in_progress -> call_completed -> scoring
	n, err := client.StatusChange.Query().
		Where(statuschange.ApplicationIDEQ(app.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReducerApply_Idempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	apps := services.NewApplicationService(client, nil)
	r := NewReducer(client, apps)
	ctx := context.Background()

	app, call := seedCall(t, client, application.StatusCallInProgress)

	first, err := r.Apply(ctx, call.ID, completionPayload("conv_X"))
	require.NoError(t, err)

	second, err := r.Apply(ctx, call.ID, completionPayload("conv_X"))
	require.NoError(t, err)
	assert.True(t, second.Completed)
	assert.Equal(t, first.Call.Status, second.Call.Status)
	assert.Equal(t, first.Call.Transcript, second.Call.Transcript)
	assert.Equal(t, first.Call.EndedAt.Unix(), second.Call.EndedAt.Unix())

	// No additional audit entries from the duplicate delivery
	n, err := client.StatusChange.Query().
		Where(statuschange.ApplicationIDEQ(app.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReducerApply_Failure(t *testing.T) {
	tests := []struct {
		raw string
	}{
		{"failed"},
		{"no_answer"},
		{"busy"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			client, _ := util.SetupTestDatabase(t)
			apps := services.NewApplicationService(client, nil)
			r := NewReducer(client, apps)
			ctx := context.Background()

			app, call := seedCall(t, client, application.StatusCallInProgress)

			res, err := r.Apply(ctx, call.ID, map[string]interface{}{"status": tt.raw})
			require.NoError(t, err)
			assert.False(t, res.Completed)
			assert.NotNil(t, res.Call.EndedAt)

			got, err := client.Application.Get(ctx, app.ID)
			require.NoError(t, err)
			assert.Equal(t, application.StatusCallFailed, got.Status)
		})
	}
}

func TestReducerApply_UnknownCall(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewReducer(client, services.NewApplicationService(client, nil))

	_, err := r.Apply(context.Background(), 99999, map[string]interface{}{"status": "done"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestLateBind(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewReducer(client, services.NewApplicationService(client, nil))
	ctx := context.Background()

	app, call := seedCall(t, client, application.StatusCallInProgress)

	bound, err := r.LateBind(ctx, app.ID, "conv_X")
	require.NoError(t, err)
	assert.Equal(t, call.ID, bound.ID)
	require.NotNil(t, bound.ExternalConversationID)
	assert.Equal(t, "conv_X", *bound.ExternalConversationID)

	// A second binding attempt finds no bindable call left.
	_, err = r.LateBind(ctx, app.ID, "conv_Y")
	assert.ErrorIs(t, err, services.ErrNotFound)

	found, err := r.FindCallByConversationID(ctx, "conv_X")
	require.NoError(t, err)
	assert.Equal(t, call.ID, found.ID)
}
