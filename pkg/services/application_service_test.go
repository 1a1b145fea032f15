package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/test/util"
)

func seedApplication(t *testing.T, client *ent.Client, status application.Status) *ent.Application {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetEmail("ada@example.com").
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
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return app
}

func TestTransition_WritesAudit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusPendingCall)

	updated, err := svc.Transition(ctx, app.ID, application.StatusCallQueued, TransitionOptions{Note: "queued by dispatcher"})
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallQueued, updated.Status)

	changes, err := client.StatusChange.Query().
		Where(statuschange.ApplicationIDEQ(app.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "pending_call", changes[0].FromStatus)
	assert.Equal(t, "call_queued", changes[0].ToStatus)
	assert.Equal(t, "queued by dispatcher", changes[0].Note)
	assert.Equal(t, "system", changes[0].ChangedBy)
}

func TestTransition_SameStatusIsNoOp(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusPendingCall)

	_, err := svc.Transition(ctx, app.ID, application.StatusPendingCall, TransitionOptions{})
	require.NoError(t, err)

	n, err := client.StatusChange.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransition_UnknownApplication(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)

	_, err := svc.Transition(context.Background(), 99999, application.StatusClosed, TransitionOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkCVReceived(t *testing.T) {
	tests := []struct {
		name     string
		from     application.Status
		expected application.Status
	}{
		{"awaiting cv", application.StatusAwaitingCv, application.StatusCvReceived},
		{"followup 1", application.StatusCvFollowup1, application.StatusCvReceived},
		{"overdue", application.StatusCvOverdue, application.StatusCvReceived},
		{"rejected branch", application.StatusAwaitingCvRejected, application.StatusCvReceivedRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := util.SetupTestDatabase(t)
			svc := NewApplicationService(client, nil)
			ctx := context.Background()

			app := seedApplication(t, client, tt.from)
			now := time.Now().UTC().Truncate(time.Second)

			updated, err := svc.MarkCVReceived(ctx, app.ID, now, "cv matched")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, updated.Status)
			require.NotNil(t, updated.CvReceivedAt)
			assert.WithinDuration(t, now, *updated.CvReceivedAt, time.Second)
		})
	}
}

func TestScheduleCallback(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusScoring)
	at := time.Now().Add(2 * time.Hour).UTC()

	updated, err := svc.ScheduleCallback(ctx, app.ID, &at, "candidate asked for afternoon")
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallbackScheduled, updated.Status)
	require.NotNil(t, updated.CallbackScheduledAt)
	assert.WithinDuration(t, at, *updated.CallbackScheduledAt, time.Second)
}

func TestMarkNeedsHuman(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusScoring)

	updated, err := svc.MarkNeedsHuman(ctx, app.ID, "ambiguous salary expectations")
	require.NoError(t, err)
	assert.Equal(t, application.StatusNeedsHuman, updated.Status)
	assert.Equal(t, "ambiguous salary expectations", updated.NeedsHumanReason)
}

func TestAddNote_ExcludedFromTransitionCount(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusPendingCall)

	_, err := svc.Transition(ctx, app.ID, application.StatusCallQueued, TransitionOptions{})
	require.NoError(t, err)
	require.NoError(t, svc.AddNote(ctx, app.ID, "spoke to candidate on side channel", "recruiter"))

	// The note shares the unified timeline...
	all, err := client.StatusChange.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all)

	// ...but does not count as a transition.
	n, err := svc.TransitionCount(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLatestTransitionInto(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusQualified)

	none, err := svc.LatestTransitionInto(ctx, app.ID, application.StatusAwaitingCv)
	require.NoError(t, err)
	assert.Nil(t, none)

	before := time.Now().Add(-time.Second)
	_, err = svc.Transition(ctx, app.ID, application.StatusAwaitingCv, TransitionOptions{})
	require.NoError(t, err)

	ts, err := svc.LatestTransitionInto(ctx, app.ID, application.StatusAwaitingCv)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.True(t, ts.After(before))
}

func TestSidebarCounts(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewApplicationService(client, nil)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusPendingCall)

	counts, err := svc.SidebarCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["pending_call"])

	_, err = svc.Transition(ctx, app.ID, application.StatusCallQueued, TransitionOptions{})
	require.NoError(t, err)

	counts, err = svc.SidebarCounts(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts["pending_call"])
	assert.Equal(t, 1, counts["call_queued"])
}
