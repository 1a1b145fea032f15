package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	entevaluation "github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/pkg/llm"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/test/util"
)

type fakeEvaluator struct {
	result *llm.EvaluationResult
	err    error
	calls  int
	lastIn llm.EvaluationInput
	// onCall runs while the model call is in flight, between the cheap
	// pre-check and persistence.
	onCall func()
}

func (f *fakeEvaluator) EvaluateTranscript(_ context.Context, in llm.EvaluationInput) (*llm.EvaluationResult, error) {
	f.calls++
	f.lastIn = in
	if f.onCall != nil {
		f.onCall()
	}
	return f.result, f.err
}

type fakeCVRequester struct {
	applicationIDs []int
	rejected       []bool
}

func (f *fakeCVRequester) SendCVRequest(_ context.Context, applicationID int, rejected bool) error {
	f.applicationIDs = append(f.applicationIDs, applicationID)
	f.rejected = append(f.rejected, rejected)
	return nil
}

func seedScoredCall(t *testing.T, client *ent.Client) (*ent.Application, *ent.Call) {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetPhone("+491512345678").
		SetEmail("ada@example.com").
		SetFormAnswers(map[string]interface{}{"years_of_go": 5}).
		Save(ctx)
	require.NoError(t, err)

	pos, err := client.Position.Create().
		SetTitle("Backend Engineer").
		SetQualificationCriteria("3+ years of Go").
		Save(ctx)
	require.NoError(t, err)

	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(application.StatusScoring).
		Save(ctx)
	require.NoError(t, err)

	call, err := client.Call.Create().
		SetApplicationID(app.ID).
		SetStatus(entcall.StatusCompleted).
		SetTranscript("Agent: Hello\n\nUser: I have five years of Go.").
		Save(ctx)
	require.NoError(t, err)
	return app, call
}

func qualifiedResult() *llm.EvaluationResult {
	return &llm.EvaluationResult{
		Outcome:   llm.OutcomeQualified,
		Qualified: true,
		Score:     85,
		Reasoning: "Strong Go background.",
		Criteria:  []llm.CriterionResult{{Name: "3+ years Go", Passed: true}},
		Raw:       `{"outcome":"qualified"}`,
		Model:     "claude-sonnet-4-5",
	}
}

func TestEvaluateCall_Qualified(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	evaluator := &fakeEvaluator{result: qualifiedResult()}
	cv := &fakeCVRequester{}
	apps := services.NewApplicationService(client, nil)
	a := NewAdapter(client, apps, evaluator, cv)

	app, call := seedScoredCall(t, client)

	eval, err := a.EvaluateCall(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, entevaluation.OutcomeQualified, eval.Outcome)
	assert.Equal(t, float64(85), eval.Score)
	assert.Equal(t, "claude-sonnet-4-5", eval.Model)

	assert.Equal(t, "Backend Engineer", evaluator.lastIn.PositionTitle)
	assert.Equal(t, "Ada Lovelace", evaluator.lastIn.CandidateName)
	assert.Contains(t, evaluator.lastIn.Transcript, "five years of Go")

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusQualified, refreshed.Status)
	require.NotNil(t, refreshed.Qualified)
	assert.True(t, *refreshed.Qualified)
	require.NotNil(t, refreshed.Score)
	assert.Equal(t, float64(85), *refreshed.Score)
	assert.Equal(t, "Strong Go background.", refreshed.ScoreNotes)

	require.Len(t, cv.applicationIDs, 1)
	assert.Equal(t, app.ID, cv.applicationIDs[0])
	assert.False(t, cv.rejected[0])
}

func TestEvaluateCall_NotQualified(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	evaluator := &fakeEvaluator{result: &llm.EvaluationResult{
		Outcome:             llm.OutcomeNotQualified,
		Qualified:           false,
		Score:               20,
		Reasoning:           "No Go experience.",
		DisqualifyingFactor: "missing core skill",
	}}
	cv := &fakeCVRequester{}
	a := NewAdapter(client, services.NewApplicationService(client, nil), evaluator, cv)

	app, call := seedScoredCall(t, client)

	eval, err := a.EvaluateCall(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, "missing core skill", eval.DisqualifyingFactor)

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusNotQualified, refreshed.Status)
	require.NotNil(t, refreshed.Qualified)
	assert.False(t, *refreshed.Qualified)

	require.Len(t, cv.rejected, 1)
	assert.True(t, cv.rejected[0])
}

func TestEvaluateCall_CallbackRequested(t *testing.T) {
	tests := []struct {
		name       string
		callbackAt string
		wantTime   bool
	}{
		{"timezone-aware", "2026-09-01T18:00:00+02:00", true},
		{"naive becomes null", "2026-09-01T18:00:00", false},
		{"absent", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := util.SetupTestDatabase(t)
			ctx := context.Background()

			evaluator := &fakeEvaluator{result: &llm.EvaluationResult{
				Outcome:           llm.OutcomeCallbackRequested,
				Qualified:         false,
				Score:             0,
				Reasoning:         "Asked to call back.",
				CallbackRequested: true,
				CallbackNotes:     "prefers evenings",
				CallbackAt:        tt.callbackAt,
			}}
			a := NewAdapter(client, services.NewApplicationService(client, nil), evaluator, nil)

			app, call := seedScoredCall(t, client)

			eval, err := a.EvaluateCall(ctx, call.ID)
			require.NoError(t, err)
			assert.True(t, eval.CallbackRequested)

			refreshed, err := client.Application.Get(ctx, app.ID)
			require.NoError(t, err)
			assert.Equal(t, application.StatusCallbackScheduled, refreshed.Status)
			if tt.wantTime {
				require.NotNil(t, refreshed.CallbackScheduledAt)
				assert.Equal(t, time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC), refreshed.CallbackScheduledAt.UTC())
			} else {
				assert.Nil(t, refreshed.CallbackScheduledAt)
			}
		})
	}
}

func TestEvaluateCall_NeedsHuman(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	evaluator := &fakeEvaluator{result: &llm.EvaluationResult{
		Outcome:         llm.OutcomeNeedsHuman,
		Qualified:       false,
		Score:           0,
		Reasoning:       "Wrong person answered.",
		NeedsHuman:      true,
		NeedsHumanNotes: "reached a family member",
	}}
	a := NewAdapter(client, services.NewApplicationService(client, nil), evaluator, nil)

	app, call := seedScoredCall(t, client)

	_, err := a.EvaluateCall(ctx, call.ID)
	require.NoError(t, err)

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusNeedsHuman, refreshed.Status)
	assert.Equal(t, "reached a family member", refreshed.NeedsHumanReason)
}

func TestEvaluateCall_Idempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	evaluator := &fakeEvaluator{result: qualifiedResult()}
	cv := &fakeCVRequester{}
	a := NewAdapter(client, services.NewApplicationService(client, nil), evaluator, cv)

	_, call := seedScoredCall(t, client)

	first, err := a.EvaluateCall(ctx, call.ID)
	require.NoError(t, err)
	second, err := a.EvaluateCall(ctx, call.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, evaluator.calls)
	// The side effect fires only on the first pass.
	assert.Len(t, cv.applicationIDs, 1)

	n, err := client.Evaluation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEvaluateCall_LosingRaceSendsNoCVRequest(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	evaluator := &fakeEvaluator{result: qualifiedResult()}
	cv := &fakeCVRequester{}
	a := NewAdapter(client, services.NewApplicationService(client, nil), evaluator, cv)

	app, call := seedScoredCall(t, client)

	// A concurrent attempt lands its verdict while our model call is in
	// flight, after the pre-check already came back empty.
	var winner *ent.Evaluation
	evaluator.onCall = func() {
		var err error
		winner, err = client.Evaluation.Create().
			SetApplicationID(app.ID).
			SetCallID(call.ID).
			SetOutcome(entevaluation.OutcomeQualified).
			SetQualified(true).
			SetScore(85).
			SetReasoning("Strong Go background.").
			Save(ctx)
		require.NoError(t, err)
	}

	eval, err := a.EvaluateCall(ctx, call.ID)
	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.Equal(t, winner.ID, eval.ID)

	// The losing attempt converges on the winner's row, with no second
	// evaluation and no second CV request to the candidate.
	assert.Empty(t, cv.applicationIDs)
	n, err := client.Evaluation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEvaluateCall_NoTranscript(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	a := NewAdapter(client, services.NewApplicationService(client, nil), &fakeEvaluator{}, nil)

	app, _ := seedScoredCall(t, client)
	bare, err := client.Call.Create().
		SetApplicationID(app.ID).
		SetStatus(entcall.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	_, err = a.EvaluateCall(ctx, bare.ID)
	assert.True(t, services.IsValidationError(err))
}

func TestEvaluateCall_UnknownCall(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	a := NewAdapter(client, services.NewApplicationService(client, nil), &fakeEvaluator{}, nil)

	_, err := a.EvaluateCall(context.Background(), 99999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
