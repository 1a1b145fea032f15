package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/predicate"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/pkg/cache"
)

// AwaitingCVStatuses is the set of statuses in which a CV submission
// advances the pipeline.
var AwaitingCVStatuses = []application.Status{
	application.StatusAwaitingCv,
	application.StatusCvFollowup1,
	application.StatusCvFollowup2,
	application.StatusCvOverdue,
	application.StatusAwaitingCvRejected,
}

// TransitionOptions carries the optional parts of a status transition.
type TransitionOptions struct {
	// Note is recorded on the audit entry.
	Note string
	// Actor is recorded as changed_by; empty means "system".
	Actor string
	// Mutate composes adjacent field updates (cv_received_at,
	// callback_scheduled_at, ...) into the same atomic unit as the
	// transition itself.
	Mutate func(*ent.ApplicationUpdateOne)
}

// ApplicationService is the single authority for application status
// transitions. Every change of status writes an audit entry and invalidates
// the sidebar-counts cache.
type ApplicationService struct {
	client *ent.Client
	cache  *cache.Cache
	logger *slog.Logger
}

// NewApplicationService creates a new ApplicationService. cache may be nil
// (tests, one-off tools); invalidation is skipped in that case.
func NewApplicationService(client *ent.Client, c *cache.Cache) *ApplicationService {
	return &ApplicationService{
		client: client,
		cache:  c,
		logger: slog.Default().With("service", "applications"),
	}
}

// Get retrieves an application by id.
func (s *ApplicationService) Get(ctx context.Context, id int) (*ent.Application, error) {
	app, err := s.client.Application.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return app, nil
}

// Transition moves an application to a new status in its own transaction.
// A transition to the current status is a no-op and produces no audit entry.
func (s *ApplicationService) Transition(ctx context.Context, applicationID int, to application.Status, opts TransitionOptions) (*ent.Application, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	app, err := tx.Application.Query().
		Where(application.IDEQ(applicationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock application %d: %w", applicationID, err)
	}

	app, err = s.TransitionTx(ctx, tx, app, to, opts)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.InvalidateCounts(ctx)
	return app, nil
}

// TransitionTx applies a transition inside an existing transaction. The
// caller owns commit/rollback and must call InvalidateCounts after a
// successful commit. The passed app must have been loaded in the same
// transaction (callers use a row lock to serialize per-application writes).
func (s *ApplicationService) TransitionTx(ctx context.Context, tx *ent.Tx, app *ent.Application, to application.Status, opts TransitionOptions) (*ent.Application, error) {
	if app.Status == to {
		return app, nil
	}

	from := app.Status
	appID := app.ID

	update := tx.Application.UpdateOne(app).SetStatus(to)
	if opts.Mutate != nil {
		opts.Mutate(update)
	}
	app, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update application %d status: %w", appID, err)
	}

	actor := opts.Actor
	if actor == "" {
		actor = "system"
	}
	_, err = tx.StatusChange.Create().
		SetApplicationID(app.ID).
		SetFromStatus(string(from)).
		SetToStatus(string(to)).
		SetNote(opts.Note).
		SetChangedBy(actor).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record status change: %w", err)
	}

	s.logger.Info("application transitioned",
		"application_id", app.ID,
		"from", from,
		"to", to,
	)
	return app, nil
}

// AddNote appends a free-text timeline entry without changing status,
// modeled as a StatusChange with from == to.
func (s *ApplicationService) AddNote(ctx context.Context, applicationID int, note, actor string) error {
	app, err := s.Get(ctx, applicationID)
	if err != nil {
		return err
	}
	if actor == "" {
		actor = "system"
	}
	_, err = s.client.StatusChange.Create().
		SetApplicationID(app.ID).
		SetFromStatus(string(app.Status)).
		SetToStatus(string(app.Status)).
		SetNote(note).
		SetChangedBy(actor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record note: %w", err)
	}
	return nil
}

// MarkCVReceived moves an application to its CV-received state and stamps
// cv_received_at in the same atomic unit. The target depends on the branch:
// AWAITING_CV_REJECTED lands in CV_RECEIVED_REJECTED, every other awaiting
// state lands in CV_RECEIVED.
func (s *ApplicationService) MarkCVReceived(ctx context.Context, applicationID int, receivedAt time.Time, note string) (*ent.Application, error) {
	app, err := s.Get(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	to := CVReceivedTarget(app.Status)
	return s.Transition(ctx, applicationID, to, TransitionOptions{
		Note: note,
		Mutate: func(u *ent.ApplicationUpdateOne) {
			u.SetCvReceivedAt(receivedAt)
		},
	})
}

// CVReceivedTarget returns the CV-received state for an application
// currently in the given status.
func CVReceivedTarget(current application.Status) application.Status {
	if current == application.StatusAwaitingCvRejected {
		return application.StatusCvReceivedRejected
	}
	return application.StatusCvReceived
}

// ScheduleCallback stores the callback time and transitions to
// CALLBACK_SCHEDULED atomically. A nil at leaves callback_scheduled_at
// unset (the model asked for a callback without naming a time).
func (s *ApplicationService) ScheduleCallback(ctx context.Context, applicationID int, at *time.Time, note string) (*ent.Application, error) {
	return s.Transition(ctx, applicationID, application.StatusCallbackScheduled, TransitionOptions{
		Note: note,
		Mutate: func(u *ent.ApplicationUpdateOne) {
			if at != nil {
				u.SetCallbackScheduledAt(*at)
			} else {
				u.ClearCallbackScheduledAt()
			}
		},
	})
}

// MarkNeedsHuman records the reason and transitions to NEEDS_HUMAN
// atomically.
func (s *ApplicationService) MarkNeedsHuman(ctx context.Context, applicationID int, reason string) (*ent.Application, error) {
	return s.Transition(ctx, applicationID, application.StatusNeedsHuman, TransitionOptions{
		Note: reason,
		Mutate: func(u *ent.ApplicationUpdateOne) {
			u.SetNeedsHumanReason(reason)
		},
	})
}

// Close terminally closes an application.
func (s *ApplicationService) Close(ctx context.Context, applicationID int, note string) (*ent.Application, error) {
	return s.Transition(ctx, applicationID, application.StatusClosed, TransitionOptions{Note: note})
}

// SidebarCounts returns the number of applications per status, cached for
// up to a minute. Cache failures degrade to a direct query.
func (s *ApplicationService) SidebarCounts(ctx context.Context) (map[string]int, error) {
	if s.cache != nil {
		counts, ok, err := s.cache.GetSidebarCounts(ctx)
		if err != nil {
			s.logger.Warn("sidebar counts cache read failed", "error", err)
		} else if ok {
			return counts, nil
		}
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Application.Query().
		GroupBy(application.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}

	if s.cache != nil {
		if err := s.cache.SetSidebarCounts(ctx, counts); err != nil {
			s.logger.Warn("sidebar counts cache write failed", "error", err)
		}
	}
	return counts, nil
}

// InvalidateCounts drops the cached sidebar counts. Safe to call with no
// cache configured.
func (s *ApplicationService) InvalidateCounts(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSidebarCounts(ctx); err != nil {
		s.logger.Warn("sidebar counts invalidation failed", "error", err)
	}
}

// realTransitions excludes audit rows that are timeline notes
// (from_status == to_status).
func realTransitions() predicate.StatusChange {
	return predicate.StatusChange(func(sel *sql.Selector) {
		sel.Where(sql.ColumnsNEQ(
			sel.C(statuschange.FieldFromStatus),
			sel.C(statuschange.FieldToStatus),
		))
	})
}

// TransitionCount counts real transitions for an application; timeline
// notes (from == to) are excluded.
func (s *ApplicationService) TransitionCount(ctx context.Context, applicationID int) (int, error) {
	n, err := s.client.StatusChange.Query().
		Where(
			statuschange.ApplicationIDEQ(applicationID),
			realTransitions(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count transitions: %w", err)
	}
	return n, nil
}

// LatestTransitionInto returns the timestamp of the most recent transition
// into any of the given statuses, or nil when none exists. Notes are
// excluded because a note never changes the status.
func (s *ApplicationService) LatestTransitionInto(ctx context.Context, applicationID int, statuses ...application.Status) (*time.Time, error) {
	vals := make([]string, len(statuses))
	for i, st := range statuses {
		vals[i] = string(st)
	}
	sc, err := s.client.StatusChange.Query().
		Where(
			statuschange.ApplicationIDEQ(applicationID),
			statuschange.ToStatusIn(vals...),
			realTransitions(),
		).
		Order(ent.Desc(statuschange.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query status changes: %w", err)
	}
	return &sc.CreatedAt, nil
}
