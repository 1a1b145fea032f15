package voiceagent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/pkg/services"
)

// ApplyResult reports what the reducer did with a payload.
type ApplyResult struct {
	Call *ent.Call
	// Completed is true when the call is in COMPLETED state after the
	// apply (including duplicate deliveries); the caller triggers the
	// evaluation adapter, which deduplicates on its own.
	Completed bool
}

// Reducer applies a call-state payload (webhook delivery or poll response)
// to a Call record and transitions its application. It is the single write
// path for call completion, shared by the webhook ingress and the
// reconciler, so both observe identical semantics.
type Reducer struct {
	client *ent.Client
	apps   *services.ApplicationService
	logger *slog.Logger
}

// NewReducer creates a Reducer.
func NewReducer(client *ent.Client, apps *services.ApplicationService) *Reducer {
	return &Reducer{
		client: client,
		apps:   apps,
		logger: slog.Default().With("component", "call_reducer"),
	}
}

// MapStatus translates a provider status string to the internal enum.
// Unknown values are treated as still in progress.
func MapStatus(raw string) entcall.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "done", "completed":
		return entcall.StatusCompleted
	case "failed":
		return entcall.StatusFailed
	case "no_answer":
		return entcall.StatusNoAnswer
	case "busy":
		return entcall.StatusBusy
	case "in_progress", "processing":
		return entcall.StatusInProgress
	default:
		return entcall.StatusInProgress
	}
}

// IsTerminal reports whether a call status is final.
func IsTerminal(status entcall.Status) bool {
	switch status {
	case entcall.StatusCompleted, entcall.StatusFailed, entcall.StatusNoAnswer, entcall.StatusBusy:
		return true
	}
	return false
}

// FormatTranscript renders provider transcript turns as "Role: text" blocks
// separated by blank lines. Turn text may live under "message", "content"
// or "text" depending on the API version.
func FormatTranscript(turns []interface{}) string {
	blocks := make([]string, 0, len(turns))
	for _, t := range turns {
		turn, ok := t.(map[string]interface{})
		if !ok {
			continue
		}
		role, _ := turn["role"].(string)
		var text string
		for _, key := range []string{"message", "content", "text"} {
			if v, ok := turn[key].(string); ok && v != "" {
				text = v
				break
			}
		}
		if role == "" && text == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("%s: %s", capitalize(role), text))
	}
	return strings.Join(blocks, "\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Apply updates the Call from the payload under a row lock and transitions
// its application. Applying the same payload twice leaves the record
// unchanged: a call already in a terminal state is never modified again.
func (r *Reducer) Apply(ctx context.Context, callID int, payload map[string]interface{}) (*ApplyResult, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	call, err := tx.Call.Query().
		Where(entcall.IDEQ(callID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock call %d: %w", callID, err)
	}

	// Transitions out of a terminal status are forbidden; a duplicate
	// delivery reduces to a no-op.
	if IsTerminal(call.Status) {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return &ApplyResult{Call: call, Completed: call.Status == entcall.StatusCompleted}, nil
	}

	status := MapStatus(lookupString(payload, "status"))

	update := tx.Call.UpdateOne(call).
		SetStatus(status).
		SetRawPayload(payload)

	if turns := lookupSlice(payload, "transcript"); turns != nil {
		update.SetTranscript(FormatTranscript(turns))
	}
	if v := lookupString(payload, "summary", "transcript_summary"); v != "" {
		update.SetSummary(v)
	}
	if v := lookupString(payload, "summary_title", "call_summary_title"); v != "" {
		update.SetSummaryTitle(v)
	}
	if v := lookupString(payload, "recording_url"); v != "" {
		update.SetRecordingURL(v)
	}
	if secs, ok := lookupNumber(payload, "duration_seconds", "call_duration_secs"); ok {
		update.SetDurationSeconds(int(secs))
	}
	if IsTerminal(status) {
		update.SetEndedAt(time.Now().UTC())
	}

	call, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update call %d: %w", callID, err)
	}

	app, err := tx.Application.Query().
		Where(application.IDEQ(call.ApplicationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock application %d: %w", call.ApplicationID, err)
	}

	switch status {
	case entcall.StatusCompleted:
		app, err = r.apps.TransitionTx(ctx, tx, app, application.StatusCallCompleted, services.TransitionOptions{})
		if err != nil {
			return nil, err
		}
		if _, err = r.apps.TransitionTx(ctx, tx, app, application.StatusScoring, services.TransitionOptions{}); err != nil {
			return nil, err
		}
	case entcall.StatusFailed, entcall.StatusNoAnswer, entcall.StatusBusy:
		note := fmt.Sprintf("Call ended with status %s", status)
		if _, err = r.apps.TransitionTx(ctx, tx, app, application.StatusCallFailed, services.TransitionOptions{Note: note}); err != nil {
			return nil, err
		}
	case entcall.StatusInProgress:
		if _, err = r.apps.TransitionTx(ctx, tx, app, application.StatusCallInProgress, services.TransitionOptions{}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	r.apps.InvalidateCounts(ctx)

	r.logger.Info("call payload applied",
		"call_id", call.ID,
		"application_id", call.ApplicationID,
		"status", status,
	)
	return &ApplyResult{Call: call, Completed: status == entcall.StatusCompleted}, nil
}

// lookupString finds the first non-empty string under any of the keys,
// checking the payload root and then its "data" object.
func lookupString(payload map[string]interface{}, keys ...string) string {
	for _, scope := range scopes(payload) {
		for _, key := range keys {
			if v, ok := scope[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}

func lookupSlice(payload map[string]interface{}, key string) []interface{} {
	for _, scope := range scopes(payload) {
		if v, ok := scope[key].([]interface{}); ok {
			return v
		}
	}
	return nil
}

func lookupNumber(payload map[string]interface{}, keys ...string) (float64, bool) {
	for _, scope := range scopes(payload) {
		for _, key := range keys {
			if v, ok := scope[key].(float64); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// lookupMap finds a nested object under any of the keys, checking root and
// "data".
func lookupMap(payload map[string]interface{}, keys ...string) map[string]interface{} {
	for _, scope := range scopes(payload) {
		for _, key := range keys {
			if v, ok := scope[key].(map[string]interface{}); ok {
				return v
			}
		}
	}
	return nil
}

func scopes(payload map[string]interface{}) []map[string]interface{} {
	out := []map[string]interface{}{payload}
	if data, ok := payload["data"].(map[string]interface{}); ok {
		out = append(out, data)
	}
	return out
}
