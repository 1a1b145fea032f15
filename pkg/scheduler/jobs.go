package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/cvmatch"
	"github.com/recruitflow/recruitflow/pkg/messaging"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
)

// Evaluator scores a completed call. Implemented by *evaluation.Adapter.
type Evaluator interface {
	EvaluateCall(ctx context.Context, callID int) (*ent.Evaluation, error)
}

// Mailbox is the CV inbox. Implemented by *messaging.GmailSender.
type Mailbox interface {
	ListUnread(ctx context.Context) ([]messaging.InboundEmail, error)
	MarkProcessed(ctx context.Context, messageID string) error
	Configured() bool
}

// Jobs holds the periodic job implementations and their dependencies.
type Jobs struct {
	client     *ent.Client
	apps       *services.ApplicationService
	settings   *services.SettingService
	replies    *services.ReplyService
	messages   *messaging.MessageService
	matcher    *cvmatch.Matcher
	dispatcher *voiceagent.Dispatcher
	reducer    *voiceagent.Reducer
	va         *voiceagent.Client
	evaluator  Evaluator
	mailbox    Mailbox
	cfg        config.SchedulerConfig
	logger     *slog.Logger
}

// NewJobs wires the job set. mailbox and evaluator may be nil when their
// integrations are not configured.
func NewJobs(
	client *ent.Client,
	apps *services.ApplicationService,
	settings *services.SettingService,
	replies *services.ReplyService,
	messages *messaging.MessageService,
	matcher *cvmatch.Matcher,
	dispatcher *voiceagent.Dispatcher,
	reducer *voiceagent.Reducer,
	va *voiceagent.Client,
	evaluator Evaluator,
	mailbox Mailbox,
	cfg config.SchedulerConfig,
) *Jobs {
	return &Jobs{
		client:     client,
		apps:       apps,
		settings:   settings,
		replies:    replies,
		messages:   messages,
		matcher:    matcher,
		dispatcher: dispatcher,
		reducer:    reducer,
		va:         va,
		evaluator:  evaluator,
		mailbox:    mailbox,
		cfg:        cfg,
		logger:     slog.Default().With("component", "jobs"),
	}
}

// Register adds every periodic job to the scheduler at its configured
// cadence.
func (j *Jobs) Register(s *Scheduler) {
	s.Add("dispatch_calls", j.cfg.DispatchInterval, j.DispatchCalls)
	s.Add("reconcile_stuck_calls", j.cfg.ReconcileInterval, j.ReconcileStuckCalls)
	s.Add("advance_cv_followups", j.cfg.FollowupInterval, j.AdvanceCVFollowups)
	s.Add("close_stale_rejected", j.cfg.CloseInterval, j.CloseStaleRejected)
	s.Add("poll_cv_mailbox", j.cfg.MailboxInterval, j.PollCVMailbox)
}

// DispatchCalls submits the batch queue and fires due callbacks.
func (j *Jobs) DispatchCalls(ctx context.Context) error {
	return j.dispatcher.Run(ctx)
}

// ReconcileStuckCalls polls the provider for calls past the stuck threshold
// and escalates batch calls that never produced a webhook.
func (j *Jobs) ReconcileStuckCalls(ctx context.Context) error {
	now := time.Now()

	if j.va.Configured() {
		stuck, err := j.client.Call.Query().
			Where(
				entcall.StatusIn(entcall.StatusInitiated, entcall.StatusInProgress),
				entcall.InitiatedAtLT(now.Add(-j.cfg.StuckCallThreshold)),
				entcall.ExternalConversationIDNotNil(),
			).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to query stuck calls: %w", err)
		}

		for _, call := range stuck {
			payload, err := j.va.GetConversation(ctx, *call.ExternalConversationID)
			if err != nil {
				j.logger.Error("failed to poll conversation",
					"call_id", call.ID,
					"conversation_id", *call.ExternalConversationID,
					"error", err,
				)
				continue
			}
			res, err := j.reducer.Apply(ctx, call.ID, payload)
			if err != nil {
				j.logger.Error("failed to apply polled state", "call_id", call.ID, "error", err)
				continue
			}
			if res.Completed && j.evaluator != nil {
				if _, err := j.evaluator.EvaluateCall(ctx, call.ID); err != nil {
					j.logger.Error("evaluation failed", "call_id", call.ID, "error", err)
				}
			}
		}
	}

	return j.escalateOrphanedBatchCalls(ctx, now)
}

// escalateOrphanedBatchCalls fails batch calls that never received a
// conversation id within the orphan threshold.
func (j *Jobs) escalateOrphanedBatchCalls(ctx context.Context, now time.Time) error {
	orphans, err := j.client.Call.Query().
		Where(
			entcall.StatusEQ(entcall.StatusInitiated),
			entcall.ExternalConversationIDIsNil(),
			entcall.ExternalBatchIDNotNil(),
			entcall.InitiatedAtLT(now.Add(-j.cfg.OrphanThreshold)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned batch calls: %w", err)
	}

	for _, call := range orphans {
		if err := j.failCall(ctx, call, "Batch call never produced a webhook"); err != nil {
			j.logger.Error("failed to escalate orphaned call", "call_id", call.ID, "error", err)
		}
	}
	return nil
}

// StartupSweep fails calls stranded by a previous crash: non-terminal, no
// conversation id to poll, and no batch id a webhook could late-bind to.
func (j *Jobs) StartupSweep(ctx context.Context) error {
	stranded, err := j.client.Call.Query().
		Where(
			entcall.StatusIn(entcall.StatusInitiated, entcall.StatusInProgress),
			entcall.ExternalConversationIDIsNil(),
			entcall.ExternalBatchIDIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stranded calls: %w", err)
	}

	for _, call := range stranded {
		if err := j.failCall(ctx, call, "Call had no external reference after restart"); err != nil {
			j.logger.Error("failed to sweep stranded call", "call_id", call.ID, "error", err)
		}
	}
	if len(stranded) > 0 {
		j.logger.Warn("swept stranded calls at startup", "count", len(stranded))
	}
	return nil
}

// failCall marks the call failed and moves its application to CALL_FAILED
// in one transaction.
func (j *Jobs) failCall(ctx context.Context, call *ent.Call, note string) error {
	tx, err := j.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := tx.Call.Query().
		Where(entcall.IDEQ(call.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock call %d: %w", call.ID, err)
	}
	if locked.Status != entcall.StatusInitiated && locked.Status != entcall.StatusInProgress {
		return tx.Commit()
	}

	if _, err := tx.Call.UpdateOne(locked).
		SetStatus(entcall.StatusFailed).
		SetEndedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to fail call %d: %w", call.ID, err)
	}

	app, err := tx.Application.Query().
		Where(application.IDEQ(locked.ApplicationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock application %d: %w", locked.ApplicationID, err)
	}
	if _, err := j.apps.TransitionTx(ctx, tx, app, application.StatusCallFailed, services.TransitionOptions{Note: note}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	j.apps.InvalidateCounts(ctx)
	return nil
}

// AdvanceCVFollowups walks qualified applications still waiting on a CV and
// sends follow-up 1/2 or marks them overdue once the interval has elapsed.
func (j *Jobs) AdvanceCVFollowups(ctx context.Context) error {
	now := time.Now()

	waiting, err := j.client.Application.Query().
		Where(
			application.QualifiedEQ(true),
			application.CvReceivedAtIsNil(),
			application.StatusIn(
				application.StatusAwaitingCv,
				application.StatusCvFollowup1,
				application.StatusCvFollowup2,
			),
		).
		WithPosition().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query awaiting applications: %w", err)
	}

	for _, app := range waiting {
		pos := app.Edges.Position
		if pos == nil {
			continue
		}
		baseline, err := j.followupBaseline(ctx, app)
		if err != nil {
			j.logger.Error("failed to compute follow-up baseline", "application_id", app.ID, "error", err)
			continue
		}
		due := baseline.Add(time.Duration(pos.FollowUpIntervalHours) * time.Hour)
		if now.Before(due) {
			continue
		}
		if err := j.advanceFollowup(ctx, app); err != nil {
			j.logger.Error("failed to advance follow-up", "application_id", app.ID, "error", err)
		}
	}
	return nil
}

// followupBaseline anchors the follow-up clock: the latest successfully
// sent message, else the latest transition into an awaiting state, else the
// application's updated_at.
func (j *Jobs) followupBaseline(ctx context.Context, app *ent.Application) (time.Time, error) {
	sentAt, err := j.messages.LatestSentAt(ctx, app.ID)
	if err != nil {
		return time.Time{}, err
	}
	if sentAt != nil {
		return *sentAt, nil
	}

	enteredAt, err := j.apps.LatestTransitionInto(ctx, app.ID, services.AwaitingCVStatuses...)
	if err != nil {
		return time.Time{}, err
	}
	if enteredAt != nil {
		return *enteredAt, nil
	}
	return app.UpdatedAt, nil
}

func (j *Jobs) advanceFollowup(ctx context.Context, app *ent.Application) error {
	switch app.Status {
	case application.StatusAwaitingCv:
		if _, err := j.apps.Transition(ctx, app.ID, application.StatusCvFollowup1, services.TransitionOptions{
			Note: "CV follow-up 1 due",
		}); err != nil {
			return err
		}
		return j.messages.SendFollowup(ctx, app.ID, message.MessageTypeCvFollowup1)
	case application.StatusCvFollowup1:
		if _, err := j.apps.Transition(ctx, app.ID, application.StatusCvFollowup2, services.TransitionOptions{
			Note: "CV follow-up 2 due",
		}); err != nil {
			return err
		}
		return j.messages.SendFollowup(ctx, app.ID, message.MessageTypeCvFollowup2)
	case application.StatusCvFollowup2:
		_, err := j.apps.Transition(ctx, app.ID, application.StatusCvOverdue, services.TransitionOptions{
			Note: "CV overdue",
		})
		return err
	}
	return nil
}

// CloseStaleRejected terminally closes applications whose CV window has
// elapsed: the rejected path with no CV, the rejected path with a CV, and
// the qualified branch that went overdue.
func (j *Jobs) CloseStaleRejected(ctx context.Context) error {
	now := time.Now()

	j.closeCategory(ctx, now, application.StatusAwaitingCvRejected,
		"No CV received within the rejected-path window",
		func(ctx context.Context, app *ent.Application) (time.Time, error) {
			return j.transitionBaseline(ctx, app, application.StatusAwaitingCvRejected)
		})

	j.closeCategory(ctx, now, application.StatusCvReceivedRejected,
		"Rejected application closed after the retention window",
		func(_ context.Context, app *ent.Application) (time.Time, error) {
			if app.CvReceivedAt != nil {
				return *app.CvReceivedAt, nil
			}
			return app.UpdatedAt, nil
		})

	j.closeCategory(ctx, now, application.StatusCvOverdue,
		"CV overdue window elapsed",
		func(ctx context.Context, app *ent.Application) (time.Time, error) {
			return j.transitionBaseline(ctx, app, application.StatusCvOverdue)
		})

	return nil
}

func (j *Jobs) transitionBaseline(ctx context.Context, app *ent.Application, status application.Status) (time.Time, error) {
	enteredAt, err := j.apps.LatestTransitionInto(ctx, app.ID, status)
	if err != nil {
		return time.Time{}, err
	}
	if enteredAt != nil {
		return *enteredAt, nil
	}
	return app.UpdatedAt, nil
}

func (j *Jobs) closeCategory(ctx context.Context, now time.Time, status application.Status, note string, baseline func(context.Context, *ent.Application) (time.Time, error)) {
	apps, err := j.client.Application.Query().
		Where(application.StatusEQ(status)).
		WithPosition().
		All(ctx)
	if err != nil {
		j.logger.Error("failed to query stale applications", "status", status, "error", err)
		return
	}

	for _, app := range apps {
		pos := app.Edges.Position
		if pos == nil {
			continue
		}
		base, err := baseline(ctx, app)
		if err != nil {
			j.logger.Error("failed to compute close baseline", "application_id", app.ID, "error", err)
			continue
		}
		deadline := base.Add(time.Duration(pos.RejectedCvTimeoutDays) * 24 * time.Hour)
		if now.Before(deadline) {
			continue
		}
		if _, err := j.apps.Close(ctx, app.ID, note); err != nil {
			j.logger.Error("failed to close stale application", "application_id", app.ID, "error", err)
		}
	}
}

// PollCVMailbox ingests unread inbox mail: attachments run through the
// matching cascade, body text becomes a CandidateReply. Gated by the
// persisted mailbox toggle.
func (j *Jobs) PollCVMailbox(ctx context.Context) error {
	enabled, err := j.settings.GetBool(ctx, services.SettingMailboxPollEnabled, false)
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}
	if j.mailbox == nil || !j.mailbox.Configured() {
		j.logger.Warn("mailbox polling enabled but mail is not configured")
		return nil
	}

	emails, err := j.mailbox.ListUnread(ctx)
	if err != nil {
		return err
	}

	for _, email := range emails {
		j.processEmail(ctx, email)
		if err := j.mailbox.MarkProcessed(ctx, email.ID); err != nil {
			j.logger.Error("failed to mark email processed", "message_id", email.ID, "error", err)
		}
	}
	return nil
}

func (j *Jobs) processEmail(ctx context.Context, email messaging.InboundEmail) {
	for _, att := range email.Attachments {
		if _, err := j.matcher.ProcessInbound(ctx, cvmatch.Inbound{
			Channel:  unmatchedinbound.ChannelEmail,
			Sender:   email.From,
			Subject:  email.Subject,
			Body:     email.Body,
			Filename: att.Filename,
			Data:     att.Data,
		}); err != nil {
			j.logger.Error("failed to process attachment",
				"message_id", email.ID,
				"filename", att.Filename,
				"error", err,
			)
		}
	}

	if strings.TrimSpace(email.Body) == "" {
		return
	}
	if _, err := j.replies.Record(ctx, services.InboundReply{
		Channel:    candidatereply.ChannelEmail,
		Sender:     bareAddress(email.From),
		Subject:    email.Subject,
		Body:       email.Body,
		ExternalID: email.ID,
	}); err != nil {
		j.logger.Error("failed to record reply", "message_id", email.ID, "error", err)
	}
}

func bareAddress(from string) string {
	if parsed, err := mail.ParseAddress(from); err == nil {
		return parsed.Address
	}
	return from
}
