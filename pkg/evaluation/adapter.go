// Package evaluation scores completed calls and executes the
// outcome-specific application transition. The adapter is the only writer of
// Evaluation rows; duplicate scoring attempts (webhook retry racing the
// reconciler) converge on the first writer's result.
package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	entevaluation "github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/pkg/llm"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

// TranscriptEvaluator scores a transcript. Implemented by *llm.Client.
type TranscriptEvaluator interface {
	EvaluateTranscript(ctx context.Context, in llm.EvaluationInput) (*llm.EvaluationResult, error)
}

// CVRequester sends the post-verdict CV request. Implemented by the
// messaging layer; nil disables the side effect.
type CVRequester interface {
	SendCVRequest(ctx context.Context, applicationID int, rejected bool) error
}

// Adapter wires the LLM verdict into the application state machine.
type Adapter struct {
	client *ent.Client
	apps   *services.ApplicationService
	llm    TranscriptEvaluator
	cv     CVRequester
	logger *slog.Logger
}

// NewAdapter creates an Adapter. cv may be nil when messaging is not
// configured.
func NewAdapter(client *ent.Client, apps *services.ApplicationService, evaluator TranscriptEvaluator, cv CVRequester) *Adapter {
	return &Adapter{
		client: client,
		apps:   apps,
		llm:    evaluator,
		cv:     cv,
		logger: slog.Default().With("component", "evaluation"),
	}
}

// EvaluateCall scores the call's transcript and applies the verdict. Calling
// it twice for the same call returns the stored evaluation without a second
// model call.
func (a *Adapter) EvaluateCall(ctx context.Context, callID int) (*ent.Evaluation, error) {
	// Cheap pre-check before spending a model call.
	existing, err := a.client.Evaluation.Query().
		Where(entevaluation.CallIDEQ(callID)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query evaluation: %w", err)
	}

	call, err := a.client.Call.Query().
		Where(entcall.IDEQ(callID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load call %d: %w", callID, err)
	}
	if call.Transcript == "" {
		return nil, services.NewValidationError("transcript", "call has no transcript to evaluate")
	}

	app, err := a.client.Application.Query().
		Where(application.IDEQ(call.ApplicationID)).
		WithCandidate().
		WithPosition().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load application %d: %w", call.ApplicationID, err)
	}
	cand := app.Edges.Candidate
	pos := app.Edges.Position

	result, err := a.llm.EvaluateTranscript(ctx, llm.EvaluationInput{
		CandidateName:         textutil.FullName(cand.FirstName, cand.LastName),
		PositionTitle:         pos.Title,
		QualificationCriteria: pos.QualificationCriteria,
		FormAnswers:           cand.FormAnswers,
		Transcript:            call.Transcript,
	})
	if err != nil {
		return nil, fmt.Errorf("transcript evaluation failed: %w", err)
	}

	eval, created, err := a.persist(ctx, call, result)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: the verdict is committed, send failures only log.
	// Only the attempt that wrote the row sends the CV request; a losing
	// duplicate returns the winner's verdict without re-messaging.
	if created && a.cv != nil {
		switch eval.Outcome {
		case entevaluation.OutcomeQualified:
			if err := a.cv.SendCVRequest(ctx, eval.ApplicationID, false); err != nil {
				a.logger.Error("CV request failed", "application_id", eval.ApplicationID, "error", err)
			}
		case entevaluation.OutcomeNotQualified:
			if err := a.cv.SendCVRequest(ctx, eval.ApplicationID, true); err != nil {
				a.logger.Error("rejected-path CV request failed", "application_id", eval.ApplicationID, "error", err)
			}
		}
	}
	return eval, nil
}

// persist writes the Evaluation and the outcome transition in one
// transaction, re-checking for a concurrent writer under the call row lock.
// created is false when a duplicate attempt lost the race and the returned
// evaluation is the first writer's.
func (a *Adapter) persist(ctx context.Context, call *ent.Call, result *llm.EvaluationResult) (*ent.Evaluation, bool, error) {
	tx, err := a.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Call.Query().
		Where(entcall.IDEQ(call.ID)).
		ForUpdate().
		Only(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to lock call %d: %w", call.ID, err)
	}

	// A duplicate attempt got here first; its verdict wins.
	existing, err := tx.Evaluation.Query().
		Where(entevaluation.CallIDEQ(call.ID)).
		Only(ctx)
	if err == nil {
		if cerr := tx.Commit(); cerr != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", cerr)
		}
		a.logger.Info("discarding duplicate evaluation", "call_id", call.ID)
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to re-check evaluation: %w", err)
	}

	create := tx.Evaluation.Create().
		SetApplicationID(call.ApplicationID).
		SetCallID(call.ID).
		SetOutcome(entevaluation.Outcome(result.Outcome)).
		SetQualified(result.Qualified).
		SetScore(result.Score).
		SetReasoning(result.Reasoning).
		SetCriteria(criteriaJSON(result.Criteria)).
		SetDisqualifyingFactor(result.DisqualifyingFactor).
		SetCallbackRequested(result.CallbackRequested).
		SetCallbackNotes(result.CallbackNotes).
		SetNeedsHuman(result.NeedsHuman).
		SetNeedsHumanNotes(result.NeedsHumanNotes).
		SetRawResponse(result.Raw).
		SetModel(result.Model)

	callbackAt := parseCallbackAt(result.CallbackAt)
	if callbackAt != nil {
		create.SetCallbackAt(*callbackAt)
	}

	eval, err := create.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create evaluation: %w", err)
	}

	app, err := tx.Application.Query().
		Where(application.IDEQ(call.ApplicationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to lock application %d: %w", call.ApplicationID, err)
	}

	if err := a.dispatch(ctx, tx, app, result, callbackAt); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	a.apps.InvalidateCounts(ctx)

	a.logger.Info("call evaluated",
		"call_id", call.ID,
		"application_id", call.ApplicationID,
		"outcome", result.Outcome,
		"score", result.Score,
	)
	return eval, true, nil
}

// dispatch applies the outcome-specific transition inside the caller's
// transaction.
func (a *Adapter) dispatch(ctx context.Context, tx *ent.Tx, app *ent.Application, result *llm.EvaluationResult, callbackAt *time.Time) error {
	switch result.Outcome {
	case llm.OutcomeQualified:
		_, err := a.apps.TransitionTx(ctx, tx, app, application.StatusQualified, services.TransitionOptions{
			Mutate: func(u *ent.ApplicationUpdateOne) {
				u.SetQualified(true).
					SetScore(result.Score).
					SetScoreNotes(result.Reasoning)
			},
		})
		return err
	case llm.OutcomeNotQualified:
		_, err := a.apps.TransitionTx(ctx, tx, app, application.StatusNotQualified, services.TransitionOptions{
			Mutate: func(u *ent.ApplicationUpdateOne) {
				u.SetQualified(false).
					SetScore(result.Score).
					SetScoreNotes(result.Reasoning)
			},
		})
		return err
	case llm.OutcomeCallbackRequested:
		_, err := a.apps.TransitionTx(ctx, tx, app, application.StatusCallbackScheduled, services.TransitionOptions{
			Note: result.CallbackNotes,
			Mutate: func(u *ent.ApplicationUpdateOne) {
				if callbackAt != nil {
					u.SetCallbackScheduledAt(*callbackAt)
				} else {
					u.ClearCallbackScheduledAt()
				}
			},
		})
		return err
	case llm.OutcomeNeedsHuman:
		reason := result.NeedsHumanNotes
		if reason == "" {
			reason = result.Reasoning
		}
		_, err := a.apps.TransitionTx(ctx, tx, app, application.StatusNeedsHuman, services.TransitionOptions{
			Mutate: func(u *ent.ApplicationUpdateOne) {
				u.SetNeedsHumanReason(reason)
			},
		})
		return err
	}
	return fmt.Errorf("unhandled evaluation outcome %q", result.Outcome)
}

func criteriaJSON(criteria []llm.CriterionResult) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, map[string]interface{}{
			"name":   c.Name,
			"passed": c.Passed,
			"note":   c.Note,
		})
	}
	return out
}

// parseCallbackAt accepts only timezone-aware timestamps; naive or
// unparseable values become nil so the callback stays undated.
func parseCallbackAt(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
