package scheduler

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
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/cvmatch"
	"github.com/recruitflow/recruitflow/pkg/messaging"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
	"github.com/recruitflow/recruitflow/test/util"
)

type fakeJobEvaluator struct {
	callIDs []int
}

func (f *fakeJobEvaluator) EvaluateCall(_ context.Context, callID int) (*ent.Evaluation, error) {
	f.callIDs = append(f.callIDs, callID)
	return nil, nil
}

type fakeJobWhatsApp struct {
	sent []string
}

func (f *fakeJobWhatsApp) SendText(_ context.Context, _, body string) (string, error) {
	f.sent = append(f.sent, body)
	return "wamid.1", nil
}

func (f *fakeJobWhatsApp) Configured() bool { return true }

type fakeJobEmail struct {
	sent []string
}

func (f *fakeJobEmail) Send(_ context.Context, _, _, body string) (string, error) {
	f.sent = append(f.sent, body)
	return "msg_1", nil
}

func (f *fakeJobEmail) Configured() bool { return true }

type fakeMailbox struct {
	emails     []messaging.InboundEmail
	listCalls  int
	processed  []string
	configured bool
}

func (f *fakeMailbox) ListUnread(_ context.Context) ([]messaging.InboundEmail, error) {
	f.listCalls++
	return f.emails, nil
}

func (f *fakeMailbox) MarkProcessed(_ context.Context, messageID string) error {
	f.processed = append(f.processed, messageID)
	return nil
}

func (f *fakeMailbox) Configured() bool { return f.configured }

func testSchedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		StuckCallThreshold: 15 * time.Minute,
		OrphanThreshold:    time.Hour,
	}
}

// seedPipelineApp creates a candidate and one application in the given
// status against a fresh position.
func seedPipelineApp(t *testing.T, client *ent.Client, status application.Status, mutate func(*ent.PositionCreate)) *ent.Application {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetEmail("ada@example.com").
		SetPhone("+491512345678").
		Save(ctx)
	require.NoError(t, err)

	create := client.Position.Create().SetTitle("Backend Engineer")
	if mutate != nil {
		mutate(create)
	}
	pos, err := create.Save(ctx)
	require.NoError(t, err)

	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return app
}

func TestReconcileStuckCalls_PollsAndEvaluates(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	polls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "done",
			"data": map[string]interface{}{
				"conversation_id": "conv_stuck",
				"transcript": []interface{}{
					map[string]interface{}{"role": "agent", "message": "Hello"},
					map[string]interface{}{"role": "user", "message": "Hi"},
				},
				"summary": "Recovered by polling",
			},
		})
	}))
	defer srv.Close()

	apps := services.NewApplicationService(client, nil)
	va := voiceagent.NewClient(config.VoiceAgentConfig{
		BaseURL:       srv.URL,
		APIKey:        "key",
		AgentID:       "agent",
		PhoneNumberID: "phone",
		Timeout:       5 * time.Second,
	})
	evaluator := &fakeJobEvaluator{}
	j := NewJobs(client, apps, nil, nil, nil, nil, nil, voiceagent.NewReducer(client, apps), va, evaluator, nil, testSchedulerConfig())

	app := seedPipelineApp(t, client, application.StatusCallInProgress, nil)
	call, err := client.Call.Create().
		SetApplicationID(app.ID).
		SetExternalConversationID("conv_stuck").
		SetStatus(entcall.StatusInProgress).
		SetInitiatedAt(time.Now().Add(-30 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, j.ReconcileStuckCalls(ctx))

	assert.Equal(t, 1, polls)
	refreshed, err := client.Call.Get(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusCompleted, refreshed.Status)
	assert.Equal(t, []int{call.ID}, evaluator.callIDs)

	updated, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusScoring, updated.Status)
}

func TestReconcileStuckCalls_SkipsFreshCalls(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	polls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		polls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	apps := services.NewApplicationService(client, nil)
	va := voiceagent.NewClient(config.VoiceAgentConfig{
		BaseURL:       srv.URL,
		APIKey:        "key",
		AgentID:       "agent",
		PhoneNumberID: "phone",
	})
	j := NewJobs(client, apps, nil, nil, nil, nil, nil, voiceagent.NewReducer(client, apps), va, &fakeJobEvaluator{}, nil, testSchedulerConfig())

	app := seedPipelineApp(t, client, application.StatusCallInProgress, nil)
	_, err := client.Call.Create().
		SetApplicationID(app.ID).
		SetExternalConversationID("conv_fresh").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, j.ReconcileStuckCalls(ctx))
	assert.Zero(t, polls)
}

func TestReconcileStuckCalls_EscalatesOrphanedBatchCalls(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	apps := services.NewApplicationService(client, nil)
	// Unconfigured provider: only the orphan pass runs.
	va := voiceagent.NewClient(config.VoiceAgentConfig{})
	j := NewJobs(client, apps, nil, nil, nil, nil, nil, voiceagent.NewReducer(client, apps), va, nil, nil, testSchedulerConfig())

	app := seedPipelineApp(t, client, application.StatusCallInProgress, nil)
	orphan, err := client.Call.Create().
		SetApplicationID(app.ID).
		SetExternalBatchID("batch_lost").
		SetInitiatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// A recent batch call is still inside the webhook window.
	recentApp := seedPipelineApp(t, client, application.StatusCallInProgress, nil)
	recent, err := client.Call.Create().
		SetApplicationID(recentApp.ID).
		SetExternalBatchID("batch_recent").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, j.ReconcileStuckCalls(ctx))

	failed, err := client.Call.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusFailed, failed.Status)
	require.NotNil(t, failed.EndedAt)

	escalated, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallFailed, escalated.Status)

	kept, err := client.Call.Get(ctx, recent.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusInitiated, kept.Status)
}

func TestStartupSweep(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	apps := services.NewApplicationService(client, nil)
	j := NewJobs(client, apps, nil, nil, nil, nil, nil, voiceagent.NewReducer(client, apps), voiceagent.NewClient(config.VoiceAgentConfig{}), nil, nil, testSchedulerConfig())

	strandedApp := seedPipelineApp(t, client, application.StatusCallInProgress, nil)
	stranded, err := client.Call.Create().
		SetApplicationID(strandedApp.ID).
		SetStatus(entcall.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	// Batch calls keep waiting: a webhook can still late-bind them.
	batchApp := seedPipelineApp(t, client, application.StatusCallInProgress, nil)
	batched, err := client.Call.Create().
		SetApplicationID(batchApp.ID).
		SetExternalBatchID("batch_1").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, j.StartupSweep(ctx))

	swept, err := client.Call.Get(ctx, stranded.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusFailed, swept.Status)

	failedApp, err := client.Application.Get(ctx, strandedApp.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCallFailed, failedApp.Status)

	kept, err := client.Call.Get(ctx, batched.ID)
	require.NoError(t, err)
	assert.Equal(t, entcall.StatusInitiated, kept.Status)
}

func TestAdvanceCVFollowups_Progression(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	apps := services.NewApplicationService(client, nil)
	whatsapp := &fakeJobWhatsApp{}
	email := &fakeJobEmail{}
	messages := messaging.NewMessageService(client, apps, whatsapp, email)
	j := NewJobs(client, apps, nil, nil, messages, nil, nil, nil, nil, nil, nil, testSchedulerConfig())

	app := seedPipelineApp(t, client, application.StatusAwaitingCv, func(c *ent.PositionCreate) {
		c.SetFollowUpIntervalHours(0)
	})
	_, err := client.Application.UpdateOneID(app.ID).SetQualified(true).Save(ctx)
	require.NoError(t, err)

	statuses := []application.Status{
		application.StatusCvFollowup1,
		application.StatusCvFollowup2,
		application.StatusCvOverdue,
	}
	for _, want := range statuses {
		require.NoError(t, j.AdvanceCVFollowups(ctx))
		refreshed, err := client.Application.Get(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, want, refreshed.Status)
	}

	// Two reminder rounds, each on both channels; overdue sends nothing.
	assert.Len(t, whatsapp.sent, 2)
	assert.Len(t, email.sent, 2)
	n, err := client.Message.Query().
		Where(message.MessageTypeEQ(message.MessageTypeCvFollowup2)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Overdue is a dead end for this job.
	require.NoError(t, j.AdvanceCVFollowups(ctx))
	final, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvOverdue, final.Status)
}

func TestAdvanceCVFollowups_NotDueYet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	apps := services.NewApplicationService(client, nil)
	messages := messaging.NewMessageService(client, apps, &fakeJobWhatsApp{}, &fakeJobEmail{})
	j := NewJobs(client, apps, nil, nil, messages, nil, nil, nil, nil, nil, nil, testSchedulerConfig())

	app := seedPipelineApp(t, client, application.StatusAwaitingCv, func(c *ent.PositionCreate) {
		c.SetFollowUpIntervalHours(24)
	})
	_, err := client.Application.UpdateOneID(app.ID).SetQualified(true).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, j.AdvanceCVFollowups(ctx))
	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAwaitingCv, refreshed.Status)
}

func TestCloseStaleRejected(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	apps := services.NewApplicationService(client, nil)
	j := NewJobs(client, apps, nil, nil, nil, nil, nil, nil, nil, nil, nil, testSchedulerConfig())

	expired := func(c *ent.PositionCreate) { c.SetRejectedCvTimeoutDays(0) }

	rejected := seedPipelineApp(t, client, application.StatusAwaitingCvRejected, expired)
	received := seedPipelineApp(t, client, application.StatusCvReceivedRejected, expired)
	_, err := client.Application.UpdateOneID(received.ID).
		SetCvReceivedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	overdue := seedPipelineApp(t, client, application.StatusCvOverdue, expired)

	// Window still open: stays put.
	waiting := seedPipelineApp(t, client, application.StatusAwaitingCvRejected, func(c *ent.PositionCreate) {
		c.SetRejectedCvTimeoutDays(14)
	})

	require.NoError(t, j.CloseStaleRejected(ctx))

	for _, id := range []int{rejected.ID, received.ID, overdue.ID} {
		refreshed, err := client.Application.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, application.StatusClosed, refreshed.Status, "application %d", id)
	}

	open, err := client.Application.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAwaitingCvRejected, open.Status)
}

func TestPollCVMailbox(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	apps := services.NewApplicationService(client, nil)
	settings := services.NewSettingService(client)
	replies := services.NewReplyService(client)
	matcher := cvmatch.NewMatcher(client, apps, replies, nil, cvmatch.NewFileStore(t.TempDir()))

	mailbox := &fakeMailbox{
		configured: true,
		emails: []messaging.InboundEmail{{
			ID:      "msg_1",
			From:    `"Ada Lovelace" <ada@example.com>`,
			Subject: "My CV",
			Body:    "Please find my CV attached.",
			Attachments: []messaging.EmailAttachment{
				{Filename: "ada-cv.pdf", Data: []byte("plain text cv")},
			},
		}},
	}
	j := NewJobs(client, apps, settings, replies, nil, matcher, nil, nil, nil, nil, mailbox, testSchedulerConfig())

	app := seedPipelineApp(t, client, application.StatusAwaitingCv, nil)

	// Disabled by default: the inbox is never touched.
	require.NoError(t, j.PollCVMailbox(ctx))
	assert.Zero(t, mailbox.listCalls)

	require.NoError(t, settings.SetBool(ctx, services.SettingMailboxPollEnabled, true))
	require.NoError(t, j.PollCVMailbox(ctx))

	assert.Equal(t, 1, mailbox.listCalls)
	assert.Equal(t, []string{"msg_1"}, mailbox.processed)

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvReceived, refreshed.Status)

	reply, err := client.CandidateReply.Query().
		Where(candidatereply.ExternalID("msg_1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", reply.Sender)
	assert.Equal(t, "Please find my CV attached.", reply.Body)
}

func TestScheduler_StartStop(t *testing.T) {
	s := New()

	ran := make(chan struct{}, 1)
	s.Add("probe", time.Hour, func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run immediately after Start")
	}
	s.Stop()
}
