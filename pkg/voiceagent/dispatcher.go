package voiceagent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

// Dispatcher submits queued applications to the voice agent: batch calls
// for the regular queue and individual calls for due callbacks.
type Dispatcher struct {
	client *ent.Client
	apps   *services.ApplicationService
	va     *Client
	loc    *time.Location
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher. loc is the scheduler timezone used
// for calling-hour gating.
func NewDispatcher(client *ent.Client, apps *services.ApplicationService, va *Client, loc *time.Location) *Dispatcher {
	return &Dispatcher{
		client: client,
		apps:   apps,
		va:     va,
		loc:    loc,
		logger: slog.Default().With("component", "dispatcher"),
	}
}

// Run executes one dispatch cycle: the batch queue first, then due
// callbacks. Without credentials the cycle is skipped with a warning.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.va.Configured() {
		d.logger.Warn("voice agent credentials not configured, skipping dispatch")
		return nil
	}
	now := time.Now()
	if err := d.dispatchBatch(ctx, now); err != nil {
		return err
	}
	return d.dispatchCallbacks(ctx, now)
}

// withinCallingWindow reports whether now falls inside the position's
// calling window. A window with start >= end is misconfigured; its
// applications are skipped with a warning.
func (d *Dispatcher) withinCallingWindow(pos *ent.Position, now time.Time) bool {
	if pos.CallingHoursStart >= pos.CallingHoursEnd {
		d.logger.Warn("position has misconfigured calling hours",
			"position_id", pos.ID,
			"start", pos.CallingHoursStart,
			"end", pos.CallingHoursEnd,
		)
		return false
	}
	hour := now.In(d.loc).Hour()
	return hour >= pos.CallingHoursStart && hour < pos.CallingHoursEnd
}

// buildOverride renders the position's agent prompt and first message with
// the candidate's placeholder values.
func buildOverride(app *ent.Application, cand *ent.Candidate, pos *ent.Position) AgentOverride {
	vars := services.PlaceholderVars(app, cand, pos)
	return AgentOverride{
		Prompt:       textutil.RenderTemplate(pos.AgentPrompt, vars),
		FirstMessage: textutil.RenderTemplate(pos.AgentFirstMessage, vars),
	}
}

func (d *Dispatcher) dispatchBatch(ctx context.Context, now time.Time) error {
	queued, err := d.client.Application.Query().
		Where(
			application.StatusEQ(application.StatusCallQueued),
			application.HasPositionWith(position.StatusEQ(position.StatusOpen)),
		).
		WithCandidate().
		WithPosition().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query batch queue: %w", err)
	}

	var eligible []*ent.Application
	for _, app := range queued {
		pos := app.Edges.Position
		cand := app.Edges.Candidate
		if pos == nil || cand == nil {
			continue
		}
		if !d.withinCallingWindow(pos, now) {
			continue
		}
		if cand.Phone == "" {
			d.logger.Warn("candidate has no phone number, skipping",
				"application_id", app.ID,
				"candidate_id", cand.ID,
			)
			continue
		}
		eligible = append(eligible, app)
	}
	if len(eligible) == 0 {
		return nil
	}

	for start := 0; start < len(eligible); start += BatchChunkSize {
		end := start + BatchChunkSize
		if end > len(eligible) {
			end = len(eligible)
		}
		d.submitChunk(ctx, eligible[start:end], now)
	}
	return nil
}

// submitChunk submits one chunk of at most BatchChunkSize applications. On
// submission failure every application still in CALL_QUEUED is transitioned
// to CALL_FAILED with an audit note.
func (d *Dispatcher) submitChunk(ctx context.Context, chunk []*ent.Application, now time.Time) {
	recipients := make([]BatchRecipient, 0, len(chunk))
	for _, app := range chunk {
		recipients = append(recipients, BatchRecipient{
			PhoneNumber:   app.Edges.Candidate.Phone,
			ApplicationID: app.ID,
			Override:      buildOverride(app, app.Edges.Candidate, app.Edges.Position),
		})
	}

	callName := fmt.Sprintf("recruitflow-%s", now.UTC().Format("20060102-1504"))
	batchID, err := d.va.SubmitBatch(ctx, callName, recipients)
	if err != nil {
		d.logger.Error("batch submission failed", "error", err, "chunk_size", len(chunk))
		d.failQueuedChunk(ctx, chunk)
		return
	}

	d.logger.Info("batch submitted", "batch_id", batchID, "recipients", len(chunk))

	for _, app := range chunk {
		if err := d.recordBatchCall(ctx, app.ID, batchID); err != nil {
			d.logger.Error("failed to record batch call", "application_id", app.ID, "error", err)
		}
	}
}

// recordBatchCall creates the Call row (batch id only, conversation id left
// for late-binding) and moves the application to CALL_IN_PROGRESS.
func (d *Dispatcher) recordBatchCall(ctx context.Context, applicationID int, batchID string) error {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	app, err := tx.Application.Query().
		Where(application.IDEQ(applicationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock application: %w", err)
	}
	if app.Status != application.StatusCallQueued {
		// Another path advanced it while the batch was in flight.
		return nil
	}

	attempt, err := tx.Call.Query().
		Where(entcall.ApplicationIDEQ(app.ID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count attempts: %w", err)
	}

	_, err = tx.Call.Create().
		SetApplicationID(app.ID).
		SetAttemptNumber(attempt + 1).
		SetExternalBatchID(batchID).
		SetStatus(entcall.StatusInitiated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create call: %w", err)
	}

	if _, err = d.apps.TransitionTx(ctx, tx, app, application.StatusCallInProgress, services.TransitionOptions{}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	d.apps.InvalidateCounts(ctx)
	return nil
}

// failQueuedChunk moves every application of a failed chunk that is still
// CALL_QUEUED to CALL_FAILED.
func (d *Dispatcher) failQueuedChunk(ctx context.Context, chunk []*ent.Application) {
	for _, app := range chunk {
		current, err := d.client.Application.Get(ctx, app.ID)
		if err != nil || current.Status != application.StatusCallQueued {
			continue
		}
		_, err = d.apps.Transition(ctx, app.ID, application.StatusCallFailed, services.TransitionOptions{
			Note: "Batch call submission failed",
		})
		if err != nil {
			d.logger.Error("failed to fail queued application", "application_id", app.ID, "error", err)
		}
	}
}

func (d *Dispatcher) dispatchCallbacks(ctx context.Context, now time.Time) error {
	due, err := d.client.Application.Query().
		Where(
			application.StatusEQ(application.StatusCallbackScheduled),
			application.CallbackScheduledAtLTE(now),
			application.HasPositionWith(position.StatusEQ(position.StatusOpen)),
		).
		WithCandidate().
		WithPosition().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query callback queue: %w", err)
	}

	for _, app := range due {
		pos := app.Edges.Position
		cand := app.Edges.Candidate
		if pos == nil || cand == nil {
			continue
		}
		if !d.withinCallingWindow(pos, now) {
			continue
		}
		if cand.Phone == "" {
			d.logger.Warn("candidate has no phone number, skipping callback",
				"application_id", app.ID)
			continue
		}
		d.dispatchCallback(ctx, app, cand, pos)
	}
	return nil
}

// dispatchCallback places a single call so the conversation id is known
// immediately (no late-binding needed).
func (d *Dispatcher) dispatchCallback(ctx context.Context, app *ent.Application, cand *ent.Candidate, pos *ent.Position) {
	conversationID, err := d.va.StartCall(ctx, CallRequest{
		ToNumber: cand.Phone,
		Override: buildOverride(app, cand, pos),
	})
	if err != nil {
		d.logger.Error("callback call failed", "application_id", app.ID, "error", err)
		_, terr := d.apps.Transition(ctx, app.ID, application.StatusCallFailed, services.TransitionOptions{
			Note: fmt.Sprintf("Outbound callback failed: %v", err),
		})
		if terr != nil {
			d.logger.Error("failed to record callback failure", "application_id", app.ID, "error", terr)
		}
		return
	}

	tx, err := d.client.Tx(ctx)
	if err != nil {
		d.logger.Error("failed to start transaction", "error", err)
		return
	}
	defer tx.Rollback()

	locked, err := tx.Application.Query().
		Where(application.IDEQ(app.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		d.logger.Error("failed to lock application", "application_id", app.ID, "error", err)
		return
	}

	attempt, err := tx.Call.Query().
		Where(entcall.ApplicationIDEQ(app.ID)).
		Count(ctx)
	if err != nil {
		d.logger.Error("failed to count attempts", "application_id", app.ID, "error", err)
		return
	}

	_, err = tx.Call.Create().
		SetApplicationID(app.ID).
		SetAttemptNumber(attempt + 1).
		SetExternalConversationID(conversationID).
		SetStatus(entcall.StatusInitiated).
		Save(ctx)
	if err != nil {
		d.logger.Error("failed to create call", "application_id", app.ID, "error", err)
		return
	}

	if _, err = d.apps.TransitionTx(ctx, tx, locked, application.StatusCallInProgress, services.TransitionOptions{
		Note: "Scheduled callback dispatched",
	}); err != nil {
		d.logger.Error("failed to transition application", "application_id", app.ID, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		d.logger.Error("failed to commit transaction", "application_id", app.ID, "error", err)
		return
	}
	d.apps.InvalidateCounts(ctx)
	d.logger.Info("callback dispatched", "application_id", app.ID, "conversation_id", conversationID)
}
