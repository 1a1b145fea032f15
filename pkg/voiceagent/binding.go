package voiceagent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/recruitflow/recruitflow/ent"
	entcall "github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/pkg/services"
)

var digitsPattern = regexp.MustCompile(`\d+`)

// ExtractUserID pulls the application primary key out of the
// conversation_initiation_client_data block (root or "data"). The value is
// the id embedded at batch submission; providers occasionally prefix it, so
// the first digit run is taken.
func ExtractUserID(payload map[string]interface{}) (int, bool) {
	clientData := lookupMap(payload, "conversation_initiation_client_data")
	if clientData == nil {
		return 0, false
	}
	switch v := clientData["user_id"].(type) {
	case string:
		if m := digitsPattern.FindString(v); m != "" {
			id, err := strconv.Atoi(m)
			if err == nil {
				return id, true
			}
		}
	case float64:
		return int(v), true
	}
	return 0, false
}

// FindCallByConversationID looks up the call bound to a conversation id.
func (r *Reducer) FindCallByConversationID(ctx context.Context, conversationID string) (*ent.Call, error) {
	call, err := r.client.Call.Query().
		Where(entcall.ExternalConversationIDEQ(conversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query call by conversation id: %w", err)
	}
	return call, nil
}

// LateBind attaches a conversation id to the application's most recent
// INITIATED batch call that has no conversation id yet. The row lock
// serializes near-simultaneous webhook deliveries so the same call is never
// bound twice. Returns services.ErrNotFound when no bindable call exists.
func (r *Reducer) LateBind(ctx context.Context, applicationID int, conversationID string) (*ent.Call, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	call, err := tx.Call.Query().
		Where(
			entcall.ApplicationIDEQ(applicationID),
			entcall.StatusEQ(entcall.StatusInitiated),
			entcall.ExternalConversationIDIsNil(),
		).
		Order(ent.Desc(entcall.FieldCreatedAt)).
		ForUpdate().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bindable call: %w", err)
	}

	call, err = tx.Call.UpdateOne(call).
		SetExternalConversationID(conversationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bind conversation id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("late-bound batch call",
		"call_id", call.ID,
		"application_id", applicationID,
		"conversation_id", conversationID,
	)
	return call, nil
}
