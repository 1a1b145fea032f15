// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/ent/predicate"
	"github.com/recruitflow/recruitflow/ent/setting"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication      = "Application"
	TypeCVUpload         = "CVUpload"
	TypeCall             = "Call"
	TypeCandidate        = "Candidate"
	TypeCandidateReply   = "CandidateReply"
	TypeEvaluation       = "Evaluation"
	TypeMessage          = "Message"
	TypeMessageTemplate  = "MessageTemplate"
	TypePosition         = "Position"
	TypeSetting          = "Setting"
	TypeStatusChange     = "StatusChange"
	TypeUnmatchedInbound = "UnmatchedInbound"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	status                *application.Status
	qualified             *bool
	score                 *float64
	addscore              *float64
	score_notes           *string
	cv_received_at        *time.Time
	callback_scheduled_at *time.Time
	needs_human_reason    *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	candidate             *int
	clearedcandidate      bool
	position              *int
	clearedposition       bool
	status_changes        map[int]struct{}
	removedstatus_changes map[int]struct{}
	clearedstatus_changes bool
	calls                 map[int]struct{}
	removedcalls          map[int]struct{}
	clearedcalls          bool
	evaluations           map[int]struct{}
	removedevaluations    map[int]struct{}
	clearedevaluations    bool
	cv_uploads            map[int]struct{}
	removedcv_uploads     map[int]struct{}
	clearedcv_uploads     bool
	messages              map[int]struct{}
	removedmessages       map[int]struct{}
	clearedmessages       bool
	replies               map[int]struct{}
	removedreplies        map[int]struct{}
	clearedreplies        bool
	done                  bool
	oldValue              func(context.Context) (*Application, error)
	predicates            []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id int) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCandidateID sets the "candidate_id" field.
func (m *ApplicationMutation) SetCandidateID(i int) {
	m.candidate = &i
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *ApplicationMutation) CandidateID() (r int, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCandidateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *ApplicationMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetPositionID sets the "position_id" field.
func (m *ApplicationMutation) SetPositionID(i int) {
	m.position = &i
}

// PositionID returns the value of the "position_id" field in the mutation.
func (m *ApplicationMutation) PositionID() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionID returns the old "position_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldPositionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionID: %w", err)
	}
	return oldValue.PositionID, nil
}

// ResetPositionID resets all changes to the "position_id" field.
func (m *ApplicationMutation) ResetPositionID() {
	m.position = nil
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(a application.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r application.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v application.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetQualified sets the "qualified" field.
func (m *ApplicationMutation) SetQualified(b bool) {
	m.qualified = &b
}

// Qualified returns the value of the "qualified" field in the mutation.
func (m *ApplicationMutation) Qualified() (r bool, exists bool) {
	v := m.qualified
	if v == nil {
		return
	}
	return *v, true
}

// OldQualified returns the old "qualified" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldQualified(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualified: %w", err)
	}
	return oldValue.Qualified, nil
}

// ClearQualified clears the value of the "qualified" field.
func (m *ApplicationMutation) ClearQualified() {
	m.qualified = nil
	m.clearedFields[application.FieldQualified] = struct{}{}
}

// QualifiedCleared returns if the "qualified" field was cleared in this mutation.
func (m *ApplicationMutation) QualifiedCleared() bool {
	_, ok := m.clearedFields[application.FieldQualified]
	return ok
}

// ResetQualified resets all changes to the "qualified" field.
func (m *ApplicationMutation) ResetQualified() {
	m.qualified = nil
	delete(m.clearedFields, application.FieldQualified)
}

// SetScore sets the "score" field.
func (m *ApplicationMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ApplicationMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ApplicationMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ApplicationMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *ApplicationMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[application.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *ApplicationMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[application.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *ApplicationMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, application.FieldScore)
}

// SetScoreNotes sets the "score_notes" field.
func (m *ApplicationMutation) SetScoreNotes(s string) {
	m.score_notes = &s
}

// ScoreNotes returns the value of the "score_notes" field in the mutation.
func (m *ApplicationMutation) ScoreNotes() (r string, exists bool) {
	v := m.score_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreNotes returns the old "score_notes" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldScoreNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreNotes: %w", err)
	}
	return oldValue.ScoreNotes, nil
}

// ClearScoreNotes clears the value of the "score_notes" field.
func (m *ApplicationMutation) ClearScoreNotes() {
	m.score_notes = nil
	m.clearedFields[application.FieldScoreNotes] = struct{}{}
}

// ScoreNotesCleared returns if the "score_notes" field was cleared in this mutation.
func (m *ApplicationMutation) ScoreNotesCleared() bool {
	_, ok := m.clearedFields[application.FieldScoreNotes]
	return ok
}

// ResetScoreNotes resets all changes to the "score_notes" field.
func (m *ApplicationMutation) ResetScoreNotes() {
	m.score_notes = nil
	delete(m.clearedFields, application.FieldScoreNotes)
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (m *ApplicationMutation) SetCvReceivedAt(t time.Time) {
	m.cv_received_at = &t
}

// CvReceivedAt returns the value of the "cv_received_at" field in the mutation.
func (m *ApplicationMutation) CvReceivedAt() (r time.Time, exists bool) {
	v := m.cv_received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCvReceivedAt returns the old "cv_received_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCvReceivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvReceivedAt: %w", err)
	}
	return oldValue.CvReceivedAt, nil
}

// ClearCvReceivedAt clears the value of the "cv_received_at" field.
func (m *ApplicationMutation) ClearCvReceivedAt() {
	m.cv_received_at = nil
	m.clearedFields[application.FieldCvReceivedAt] = struct{}{}
}

// CvReceivedAtCleared returns if the "cv_received_at" field was cleared in this mutation.
func (m *ApplicationMutation) CvReceivedAtCleared() bool {
	_, ok := m.clearedFields[application.FieldCvReceivedAt]
	return ok
}

// ResetCvReceivedAt resets all changes to the "cv_received_at" field.
func (m *ApplicationMutation) ResetCvReceivedAt() {
	m.cv_received_at = nil
	delete(m.clearedFields, application.FieldCvReceivedAt)
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (m *ApplicationMutation) SetCallbackScheduledAt(t time.Time) {
	m.callback_scheduled_at = &t
}

// CallbackScheduledAt returns the value of the "callback_scheduled_at" field in the mutation.
func (m *ApplicationMutation) CallbackScheduledAt() (r time.Time, exists bool) {
	v := m.callback_scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCallbackScheduledAt returns the old "callback_scheduled_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCallbackScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallbackScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallbackScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallbackScheduledAt: %w", err)
	}
	return oldValue.CallbackScheduledAt, nil
}

// ClearCallbackScheduledAt clears the value of the "callback_scheduled_at" field.
func (m *ApplicationMutation) ClearCallbackScheduledAt() {
	m.callback_scheduled_at = nil
	m.clearedFields[application.FieldCallbackScheduledAt] = struct{}{}
}

// CallbackScheduledAtCleared returns if the "callback_scheduled_at" field was cleared in this mutation.
func (m *ApplicationMutation) CallbackScheduledAtCleared() bool {
	_, ok := m.clearedFields[application.FieldCallbackScheduledAt]
	return ok
}

// ResetCallbackScheduledAt resets all changes to the "callback_scheduled_at" field.
func (m *ApplicationMutation) ResetCallbackScheduledAt() {
	m.callback_scheduled_at = nil
	delete(m.clearedFields, application.FieldCallbackScheduledAt)
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (m *ApplicationMutation) SetNeedsHumanReason(s string) {
	m.needs_human_reason = &s
}

// NeedsHumanReason returns the value of the "needs_human_reason" field in the mutation.
func (m *ApplicationMutation) NeedsHumanReason() (r string, exists bool) {
	v := m.needs_human_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsHumanReason returns the old "needs_human_reason" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldNeedsHumanReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsHumanReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsHumanReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsHumanReason: %w", err)
	}
	return oldValue.NeedsHumanReason, nil
}

// ClearNeedsHumanReason clears the value of the "needs_human_reason" field.
func (m *ApplicationMutation) ClearNeedsHumanReason() {
	m.needs_human_reason = nil
	m.clearedFields[application.FieldNeedsHumanReason] = struct{}{}
}

// NeedsHumanReasonCleared returns if the "needs_human_reason" field was cleared in this mutation.
func (m *ApplicationMutation) NeedsHumanReasonCleared() bool {
	_, ok := m.clearedFields[application.FieldNeedsHumanReason]
	return ok
}

// ResetNeedsHumanReason resets all changes to the "needs_human_reason" field.
func (m *ApplicationMutation) ResetNeedsHumanReason() {
	m.needs_human_reason = nil
	delete(m.clearedFields, application.FieldNeedsHumanReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *ApplicationMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[application.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *ApplicationMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) CandidateIDs() (ids []int) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *ApplicationMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// ClearPosition clears the "position" edge to the Position entity.
func (m *ApplicationMutation) ClearPosition() {
	m.clearedposition = true
	m.clearedFields[application.FieldPositionID] = struct{}{}
}

// PositionCleared reports if the "position" edge to the Position entity was cleared.
func (m *ApplicationMutation) PositionCleared() bool {
	return m.clearedposition
}

// PositionIDs returns the "position" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PositionID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) PositionIDs() (ids []int) {
	if id := m.position; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPosition resets all changes to the "position" edge.
func (m *ApplicationMutation) ResetPosition() {
	m.position = nil
	m.clearedposition = false
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by ids.
func (m *ApplicationMutation) AddStatusChangeIDs(ids ...int) {
	if m.status_changes == nil {
		m.status_changes = make(map[int]struct{})
	}
	for i := range ids {
		m.status_changes[ids[i]] = struct{}{}
	}
}

// ClearStatusChanges clears the "status_changes" edge to the StatusChange entity.
func (m *ApplicationMutation) ClearStatusChanges() {
	m.clearedstatus_changes = true
}

// StatusChangesCleared reports if the "status_changes" edge to the StatusChange entity was cleared.
func (m *ApplicationMutation) StatusChangesCleared() bool {
	return m.clearedstatus_changes
}

// RemoveStatusChangeIDs removes the "status_changes" edge to the StatusChange entity by IDs.
func (m *ApplicationMutation) RemoveStatusChangeIDs(ids ...int) {
	if m.removedstatus_changes == nil {
		m.removedstatus_changes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.status_changes, ids[i])
		m.removedstatus_changes[ids[i]] = struct{}{}
	}
}

// RemovedStatusChanges returns the removed IDs of the "status_changes" edge to the StatusChange entity.
func (m *ApplicationMutation) RemovedStatusChangesIDs() (ids []int) {
	for id := range m.removedstatus_changes {
		ids = append(ids, id)
	}
	return
}

// StatusChangesIDs returns the "status_changes" edge IDs in the mutation.
func (m *ApplicationMutation) StatusChangesIDs() (ids []int) {
	for id := range m.status_changes {
		ids = append(ids, id)
	}
	return
}

// ResetStatusChanges resets all changes to the "status_changes" edge.
func (m *ApplicationMutation) ResetStatusChanges() {
	m.status_changes = nil
	m.clearedstatus_changes = false
	m.removedstatus_changes = nil
}

// AddCallIDs adds the "calls" edge to the Call entity by ids.
func (m *ApplicationMutation) AddCallIDs(ids ...int) {
	if m.calls == nil {
		m.calls = make(map[int]struct{})
	}
	for i := range ids {
		m.calls[ids[i]] = struct{}{}
	}
}

// ClearCalls clears the "calls" edge to the Call entity.
func (m *ApplicationMutation) ClearCalls() {
	m.clearedcalls = true
}

// CallsCleared reports if the "calls" edge to the Call entity was cleared.
func (m *ApplicationMutation) CallsCleared() bool {
	return m.clearedcalls
}

// RemoveCallIDs removes the "calls" edge to the Call entity by IDs.
func (m *ApplicationMutation) RemoveCallIDs(ids ...int) {
	if m.removedcalls == nil {
		m.removedcalls = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.calls, ids[i])
		m.removedcalls[ids[i]] = struct{}{}
	}
}

// RemovedCalls returns the removed IDs of the "calls" edge to the Call entity.
func (m *ApplicationMutation) RemovedCallsIDs() (ids []int) {
	for id := range m.removedcalls {
		ids = append(ids, id)
	}
	return
}

// CallsIDs returns the "calls" edge IDs in the mutation.
func (m *ApplicationMutation) CallsIDs() (ids []int) {
	for id := range m.calls {
		ids = append(ids, id)
	}
	return
}

// ResetCalls resets all changes to the "calls" edge.
func (m *ApplicationMutation) ResetCalls() {
	m.calls = nil
	m.clearedcalls = false
	m.removedcalls = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *ApplicationMutation) AddEvaluationIDs(ids ...int) {
	if m.evaluations == nil {
		m.evaluations = make(map[int]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *ApplicationMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *ApplicationMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *ApplicationMutation) RemoveEvaluationIDs(ids ...int) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *ApplicationMutation) RemovedEvaluationsIDs() (ids []int) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *ApplicationMutation) EvaluationsIDs() (ids []int) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *ApplicationMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by ids.
func (m *ApplicationMutation) AddCvUploadIDs(ids ...int) {
	if m.cv_uploads == nil {
		m.cv_uploads = make(map[int]struct{})
	}
	for i := range ids {
		m.cv_uploads[ids[i]] = struct{}{}
	}
}

// ClearCvUploads clears the "cv_uploads" edge to the CVUpload entity.
func (m *ApplicationMutation) ClearCvUploads() {
	m.clearedcv_uploads = true
}

// CvUploadsCleared reports if the "cv_uploads" edge to the CVUpload entity was cleared.
func (m *ApplicationMutation) CvUploadsCleared() bool {
	return m.clearedcv_uploads
}

// RemoveCvUploadIDs removes the "cv_uploads" edge to the CVUpload entity by IDs.
func (m *ApplicationMutation) RemoveCvUploadIDs(ids ...int) {
	if m.removedcv_uploads == nil {
		m.removedcv_uploads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.cv_uploads, ids[i])
		m.removedcv_uploads[ids[i]] = struct{}{}
	}
}

// RemovedCvUploads returns the removed IDs of the "cv_uploads" edge to the CVUpload entity.
func (m *ApplicationMutation) RemovedCvUploadsIDs() (ids []int) {
	for id := range m.removedcv_uploads {
		ids = append(ids, id)
	}
	return
}

// CvUploadsIDs returns the "cv_uploads" edge IDs in the mutation.
func (m *ApplicationMutation) CvUploadsIDs() (ids []int) {
	for id := range m.cv_uploads {
		ids = append(ids, id)
	}
	return
}

// ResetCvUploads resets all changes to the "cv_uploads" edge.
func (m *ApplicationMutation) ResetCvUploads() {
	m.cv_uploads = nil
	m.clearedcv_uploads = false
	m.removedcv_uploads = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ApplicationMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ApplicationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ApplicationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ApplicationMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ApplicationMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ApplicationMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ApplicationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by ids.
func (m *ApplicationMutation) AddReplyIDs(ids ...int) {
	if m.replies == nil {
		m.replies = make(map[int]struct{})
	}
	for i := range ids {
		m.replies[ids[i]] = struct{}{}
	}
}

// ClearReplies clears the "replies" edge to the CandidateReply entity.
func (m *ApplicationMutation) ClearReplies() {
	m.clearedreplies = true
}

// RepliesCleared reports if the "replies" edge to the CandidateReply entity was cleared.
func (m *ApplicationMutation) RepliesCleared() bool {
	return m.clearedreplies
}

// RemoveReplyIDs removes the "replies" edge to the CandidateReply entity by IDs.
func (m *ApplicationMutation) RemoveReplyIDs(ids ...int) {
	if m.removedreplies == nil {
		m.removedreplies = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.replies, ids[i])
		m.removedreplies[ids[i]] = struct{}{}
	}
}

// RemovedReplies returns the removed IDs of the "replies" edge to the CandidateReply entity.
func (m *ApplicationMutation) RemovedRepliesIDs() (ids []int) {
	for id := range m.removedreplies {
		ids = append(ids, id)
	}
	return
}

// RepliesIDs returns the "replies" edge IDs in the mutation.
func (m *ApplicationMutation) RepliesIDs() (ids []int) {
	for id := range m.replies {
		ids = append(ids, id)
	}
	return
}

// ResetReplies resets all changes to the "replies" edge.
func (m *ApplicationMutation) ResetReplies() {
	m.replies = nil
	m.clearedreplies = false
	m.removedreplies = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.candidate != nil {
		fields = append(fields, application.FieldCandidateID)
	}
	if m.position != nil {
		fields = append(fields, application.FieldPositionID)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.qualified != nil {
		fields = append(fields, application.FieldQualified)
	}
	if m.score != nil {
		fields = append(fields, application.FieldScore)
	}
	if m.score_notes != nil {
		fields = append(fields, application.FieldScoreNotes)
	}
	if m.cv_received_at != nil {
		fields = append(fields, application.FieldCvReceivedAt)
	}
	if m.callback_scheduled_at != nil {
		fields = append(fields, application.FieldCallbackScheduledAt)
	}
	if m.needs_human_reason != nil {
		fields = append(fields, application.FieldNeedsHumanReason)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldCandidateID:
		return m.CandidateID()
	case application.FieldPositionID:
		return m.PositionID()
	case application.FieldStatus:
		return m.Status()
	case application.FieldQualified:
		return m.Qualified()
	case application.FieldScore:
		return m.Score()
	case application.FieldScoreNotes:
		return m.ScoreNotes()
	case application.FieldCvReceivedAt:
		return m.CvReceivedAt()
	case application.FieldCallbackScheduledAt:
		return m.CallbackScheduledAt()
	case application.FieldNeedsHumanReason:
		return m.NeedsHumanReason()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case application.FieldPositionID:
		return m.OldPositionID(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldQualified:
		return m.OldQualified(ctx)
	case application.FieldScore:
		return m.OldScore(ctx)
	case application.FieldScoreNotes:
		return m.OldScoreNotes(ctx)
	case application.FieldCvReceivedAt:
		return m.OldCvReceivedAt(ctx)
	case application.FieldCallbackScheduledAt:
		return m.OldCallbackScheduledAt(ctx)
	case application.FieldNeedsHumanReason:
		return m.OldNeedsHumanReason(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldCandidateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case application.FieldPositionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionID(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(application.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldQualified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualified(v)
		return nil
	case application.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case application.FieldScoreNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreNotes(v)
		return nil
	case application.FieldCvReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvReceivedAt(v)
		return nil
	case application.FieldCallbackScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallbackScheduledAt(v)
		return nil
	case application.FieldNeedsHumanReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsHumanReason(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, application.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldQualified) {
		fields = append(fields, application.FieldQualified)
	}
	if m.FieldCleared(application.FieldScore) {
		fields = append(fields, application.FieldScore)
	}
	if m.FieldCleared(application.FieldScoreNotes) {
		fields = append(fields, application.FieldScoreNotes)
	}
	if m.FieldCleared(application.FieldCvReceivedAt) {
		fields = append(fields, application.FieldCvReceivedAt)
	}
	if m.FieldCleared(application.FieldCallbackScheduledAt) {
		fields = append(fields, application.FieldCallbackScheduledAt)
	}
	if m.FieldCleared(application.FieldNeedsHumanReason) {
		fields = append(fields, application.FieldNeedsHumanReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldQualified:
		m.ClearQualified()
		return nil
	case application.FieldScore:
		m.ClearScore()
		return nil
	case application.FieldScoreNotes:
		m.ClearScoreNotes()
		return nil
	case application.FieldCvReceivedAt:
		m.ClearCvReceivedAt()
		return nil
	case application.FieldCallbackScheduledAt:
		m.ClearCallbackScheduledAt()
		return nil
	case application.FieldNeedsHumanReason:
		m.ClearNeedsHumanReason()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case application.FieldPositionID:
		m.ResetPositionID()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldQualified:
		m.ResetQualified()
		return nil
	case application.FieldScore:
		m.ResetScore()
		return nil
	case application.FieldScoreNotes:
		m.ResetScoreNotes()
		return nil
	case application.FieldCvReceivedAt:
		m.ResetCvReceivedAt()
		return nil
	case application.FieldCallbackScheduledAt:
		m.ResetCallbackScheduledAt()
		return nil
	case application.FieldNeedsHumanReason:
		m.ResetNeedsHumanReason()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.candidate != nil {
		edges = append(edges, application.EdgeCandidate)
	}
	if m.position != nil {
		edges = append(edges, application.EdgePosition)
	}
	if m.status_changes != nil {
		edges = append(edges, application.EdgeStatusChanges)
	}
	if m.calls != nil {
		edges = append(edges, application.EdgeCalls)
	}
	if m.evaluations != nil {
		edges = append(edges, application.EdgeEvaluations)
	}
	if m.cv_uploads != nil {
		edges = append(edges, application.EdgeCvUploads)
	}
	if m.messages != nil {
		edges = append(edges, application.EdgeMessages)
	}
	if m.replies != nil {
		edges = append(edges, application.EdgeReplies)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	case application.EdgePosition:
		if id := m.position; id != nil {
			return []ent.Value{*id}
		}
	case application.EdgeStatusChanges:
		ids := make([]ent.Value, 0, len(m.status_changes))
		for id := range m.status_changes {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeCalls:
		ids := make([]ent.Value, 0, len(m.calls))
		for id := range m.calls {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeCvUploads:
		ids := make([]ent.Value, 0, len(m.cv_uploads))
		for id := range m.cv_uploads {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeReplies:
		ids := make([]ent.Value, 0, len(m.replies))
		for id := range m.replies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedstatus_changes != nil {
		edges = append(edges, application.EdgeStatusChanges)
	}
	if m.removedcalls != nil {
		edges = append(edges, application.EdgeCalls)
	}
	if m.removedevaluations != nil {
		edges = append(edges, application.EdgeEvaluations)
	}
	if m.removedcv_uploads != nil {
		edges = append(edges, application.EdgeCvUploads)
	}
	if m.removedmessages != nil {
		edges = append(edges, application.EdgeMessages)
	}
	if m.removedreplies != nil {
		edges = append(edges, application.EdgeReplies)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeStatusChanges:
		ids := make([]ent.Value, 0, len(m.removedstatus_changes))
		for id := range m.removedstatus_changes {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeCalls:
		ids := make([]ent.Value, 0, len(m.removedcalls))
		for id := range m.removedcalls {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeCvUploads:
		ids := make([]ent.Value, 0, len(m.removedcv_uploads))
		for id := range m.removedcv_uploads {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeReplies:
		ids := make([]ent.Value, 0, len(m.removedreplies))
		for id := range m.removedreplies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedcandidate {
		edges = append(edges, application.EdgeCandidate)
	}
	if m.clearedposition {
		edges = append(edges, application.EdgePosition)
	}
	if m.clearedstatus_changes {
		edges = append(edges, application.EdgeStatusChanges)
	}
	if m.clearedcalls {
		edges = append(edges, application.EdgeCalls)
	}
	if m.clearedevaluations {
		edges = append(edges, application.EdgeEvaluations)
	}
	if m.clearedcv_uploads {
		edges = append(edges, application.EdgeCvUploads)
	}
	if m.clearedmessages {
		edges = append(edges, application.EdgeMessages)
	}
	if m.clearedreplies {
		edges = append(edges, application.EdgeReplies)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeCandidate:
		return m.clearedcandidate
	case application.EdgePosition:
		return m.clearedposition
	case application.EdgeStatusChanges:
		return m.clearedstatus_changes
	case application.EdgeCalls:
		return m.clearedcalls
	case application.EdgeEvaluations:
		return m.clearedevaluations
	case application.EdgeCvUploads:
		return m.clearedcv_uploads
	case application.EdgeMessages:
		return m.clearedmessages
	case application.EdgeReplies:
		return m.clearedreplies
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	case application.EdgeCandidate:
		m.ClearCandidate()
		return nil
	case application.EdgePosition:
		m.ClearPosition()
		return nil
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeCandidate:
		m.ResetCandidate()
		return nil
	case application.EdgePosition:
		m.ResetPosition()
		return nil
	case application.EdgeStatusChanges:
		m.ResetStatusChanges()
		return nil
	case application.EdgeCalls:
		m.ResetCalls()
		return nil
	case application.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case application.EdgeCvUploads:
		m.ResetCvUploads()
		return nil
	case application.EdgeMessages:
		m.ResetMessages()
		return nil
	case application.EdgeReplies:
		m.ResetReplies()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// CVUploadMutation represents an operation that mutates the CVUpload nodes in the graph.
type CVUploadMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	file_path          *string
	original_filename  *string
	source             *cvupload.Source
	match_method       *cvupload.MatchMethod
	match_confidence   *cvupload.MatchConfidence
	needs_review       *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	candidate          *int
	clearedcandidate   bool
	application        *int
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*CVUpload, error)
	predicates         []predicate.CVUpload
}

var _ ent.Mutation = (*CVUploadMutation)(nil)

// cvuploadOption allows management of the mutation configuration using functional options.
type cvuploadOption func(*CVUploadMutation)

// newCVUploadMutation creates new mutation for the CVUpload entity.
func newCVUploadMutation(c config, op Op, opts ...cvuploadOption) *CVUploadMutation {
	m := &CVUploadMutation{
		config:        c,
		op:            op,
		typ:           TypeCVUpload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCVUploadID sets the ID field of the mutation.
func withCVUploadID(id int) cvuploadOption {
	return func(m *CVUploadMutation) {
		var (
			err   error
			once  sync.Once
			value *CVUpload
		)
		m.oldValue = func(ctx context.Context) (*CVUpload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CVUpload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCVUpload sets the old CVUpload of the mutation.
func withCVUpload(node *CVUpload) cvuploadOption {
	return func(m *CVUploadMutation) {
		m.oldValue = func(context.Context) (*CVUpload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CVUploadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CVUploadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CVUploadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CVUploadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CVUpload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCandidateID sets the "candidate_id" field.
func (m *CVUploadMutation) SetCandidateID(i int) {
	m.candidate = &i
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *CVUploadMutation) CandidateID() (r int, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldCandidateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *CVUploadMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetApplicationID sets the "application_id" field.
func (m *CVUploadMutation) SetApplicationID(i int) {
	m.application = &i
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *CVUploadMutation) ApplicationID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldApplicationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *CVUploadMutation) ResetApplicationID() {
	m.application = nil
}

// SetFilePath sets the "file_path" field.
func (m *CVUploadMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *CVUploadMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *CVUploadMutation) ResetFilePath() {
	m.file_path = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *CVUploadMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *CVUploadMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *CVUploadMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetSource sets the "source" field.
func (m *CVUploadMutation) SetSource(c cvupload.Source) {
	m.source = &c
}

// Source returns the value of the "source" field in the mutation.
func (m *CVUploadMutation) Source() (r cvupload.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldSource(ctx context.Context) (v cvupload.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *CVUploadMutation) ResetSource() {
	m.source = nil
}

// SetMatchMethod sets the "match_method" field.
func (m *CVUploadMutation) SetMatchMethod(cm cvupload.MatchMethod) {
	m.match_method = &cm
}

// MatchMethod returns the value of the "match_method" field in the mutation.
func (m *CVUploadMutation) MatchMethod() (r cvupload.MatchMethod, exists bool) {
	v := m.match_method
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchMethod returns the old "match_method" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldMatchMethod(ctx context.Context) (v cvupload.MatchMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchMethod: %w", err)
	}
	return oldValue.MatchMethod, nil
}

// ResetMatchMethod resets all changes to the "match_method" field.
func (m *CVUploadMutation) ResetMatchMethod() {
	m.match_method = nil
}

// SetMatchConfidence sets the "match_confidence" field.
func (m *CVUploadMutation) SetMatchConfidence(cc cvupload.MatchConfidence) {
	m.match_confidence = &cc
}

// MatchConfidence returns the value of the "match_confidence" field in the mutation.
func (m *CVUploadMutation) MatchConfidence() (r cvupload.MatchConfidence, exists bool) {
	v := m.match_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchConfidence returns the old "match_confidence" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldMatchConfidence(ctx context.Context) (v cvupload.MatchConfidence, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchConfidence: %w", err)
	}
	return oldValue.MatchConfidence, nil
}

// ResetMatchConfidence resets all changes to the "match_confidence" field.
func (m *CVUploadMutation) ResetMatchConfidence() {
	m.match_confidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *CVUploadMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *CVUploadMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *CVUploadMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CVUploadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CVUploadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CVUpload entity.
// If the CVUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVUploadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CVUploadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *CVUploadMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[cvupload.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *CVUploadMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *CVUploadMutation) CandidateIDs() (ids []int) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *CVUploadMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *CVUploadMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[cvupload.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *CVUploadMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *CVUploadMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *CVUploadMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the CVUploadMutation builder.
func (m *CVUploadMutation) Where(ps ...predicate.CVUpload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CVUploadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CVUploadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CVUpload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CVUploadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CVUploadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CVUpload).
func (m *CVUploadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CVUploadMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.candidate != nil {
		fields = append(fields, cvupload.FieldCandidateID)
	}
	if m.application != nil {
		fields = append(fields, cvupload.FieldApplicationID)
	}
	if m.file_path != nil {
		fields = append(fields, cvupload.FieldFilePath)
	}
	if m.original_filename != nil {
		fields = append(fields, cvupload.FieldOriginalFilename)
	}
	if m.source != nil {
		fields = append(fields, cvupload.FieldSource)
	}
	if m.match_method != nil {
		fields = append(fields, cvupload.FieldMatchMethod)
	}
	if m.match_confidence != nil {
		fields = append(fields, cvupload.FieldMatchConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, cvupload.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, cvupload.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CVUploadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cvupload.FieldCandidateID:
		return m.CandidateID()
	case cvupload.FieldApplicationID:
		return m.ApplicationID()
	case cvupload.FieldFilePath:
		return m.FilePath()
	case cvupload.FieldOriginalFilename:
		return m.OriginalFilename()
	case cvupload.FieldSource:
		return m.Source()
	case cvupload.FieldMatchMethod:
		return m.MatchMethod()
	case cvupload.FieldMatchConfidence:
		return m.MatchConfidence()
	case cvupload.FieldNeedsReview:
		return m.NeedsReview()
	case cvupload.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CVUploadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cvupload.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case cvupload.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case cvupload.FieldFilePath:
		return m.OldFilePath(ctx)
	case cvupload.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case cvupload.FieldSource:
		return m.OldSource(ctx)
	case cvupload.FieldMatchMethod:
		return m.OldMatchMethod(ctx)
	case cvupload.FieldMatchConfidence:
		return m.OldMatchConfidence(ctx)
	case cvupload.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case cvupload.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CVUpload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CVUploadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cvupload.FieldCandidateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case cvupload.FieldApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case cvupload.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case cvupload.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case cvupload.FieldSource:
		v, ok := value.(cvupload.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case cvupload.FieldMatchMethod:
		v, ok := value.(cvupload.MatchMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchMethod(v)
		return nil
	case cvupload.FieldMatchConfidence:
		v, ok := value.(cvupload.MatchConfidence)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchConfidence(v)
		return nil
	case cvupload.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case cvupload.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CVUpload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CVUploadMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CVUploadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CVUploadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CVUpload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CVUploadMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CVUploadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CVUploadMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CVUpload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CVUploadMutation) ResetField(name string) error {
	switch name {
	case cvupload.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case cvupload.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case cvupload.FieldFilePath:
		m.ResetFilePath()
		return nil
	case cvupload.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case cvupload.FieldSource:
		m.ResetSource()
		return nil
	case cvupload.FieldMatchMethod:
		m.ResetMatchMethod()
		return nil
	case cvupload.FieldMatchConfidence:
		m.ResetMatchConfidence()
		return nil
	case cvupload.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case cvupload.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CVUpload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CVUploadMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.candidate != nil {
		edges = append(edges, cvupload.EdgeCandidate)
	}
	if m.application != nil {
		edges = append(edges, cvupload.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CVUploadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cvupload.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	case cvupload.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CVUploadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CVUploadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CVUploadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcandidate {
		edges = append(edges, cvupload.EdgeCandidate)
	}
	if m.clearedapplication {
		edges = append(edges, cvupload.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CVUploadMutation) EdgeCleared(name string) bool {
	switch name {
	case cvupload.EdgeCandidate:
		return m.clearedcandidate
	case cvupload.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CVUploadMutation) ClearEdge(name string) error {
	switch name {
	case cvupload.EdgeCandidate:
		m.ClearCandidate()
		return nil
	case cvupload.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown CVUpload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CVUploadMutation) ResetEdge(name string) error {
	switch name {
	case cvupload.EdgeCandidate:
		m.ResetCandidate()
		return nil
	case cvupload.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown CVUpload edge %s", name)
}

// CallMutation represents an operation that mutates the Call nodes in the graph.
type CallMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	attempt_number           *int
	addattempt_number        *int
	external_conversation_id *string
	external_batch_id        *string
	status                   *call.Status
	transcript               *string
	summary                  *string
	summary_title            *string
	recording_url            *string
	duration_seconds         *int
	addduration_seconds      *int
	raw_payload              *map[string]interface{}
	initiated_at             *time.Time
	ended_at                 *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	application              *int
	clearedapplication       bool
	evaluation               *int
	clearedevaluation        bool
	done                     bool
	oldValue                 func(context.Context) (*Call, error)
	predicates               []predicate.Call
}

var _ ent.Mutation = (*CallMutation)(nil)

// callOption allows management of the mutation configuration using functional options.
type callOption func(*CallMutation)

// newCallMutation creates new mutation for the Call entity.
func newCallMutation(c config, op Op, opts ...callOption) *CallMutation {
	m := &CallMutation{
		config:        c,
		op:            op,
		typ:           TypeCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallID sets the ID field of the mutation.
func withCallID(id int) callOption {
	return func(m *CallMutation) {
		var (
			err   error
			once  sync.Once
			value *Call
		)
		m.oldValue = func(ctx context.Context) (*Call, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Call.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCall sets the old Call of the mutation.
func withCall(node *Call) callOption {
	return func(m *CallMutation) {
		m.oldValue = func(context.Context) (*Call, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Call.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *CallMutation) SetApplicationID(i int) {
	m.application = &i
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *CallMutation) ApplicationID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldApplicationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *CallMutation) ResetApplicationID() {
	m.application = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *CallMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *CallMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *CallMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *CallMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *CallMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (m *CallMutation) SetExternalConversationID(s string) {
	m.external_conversation_id = &s
}

// ExternalConversationID returns the value of the "external_conversation_id" field in the mutation.
func (m *CallMutation) ExternalConversationID() (r string, exists bool) {
	v := m.external_conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalConversationID returns the old "external_conversation_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldExternalConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalConversationID: %w", err)
	}
	return oldValue.ExternalConversationID, nil
}

// ClearExternalConversationID clears the value of the "external_conversation_id" field.
func (m *CallMutation) ClearExternalConversationID() {
	m.external_conversation_id = nil
	m.clearedFields[call.FieldExternalConversationID] = struct{}{}
}

// ExternalConversationIDCleared returns if the "external_conversation_id" field was cleared in this mutation.
func (m *CallMutation) ExternalConversationIDCleared() bool {
	_, ok := m.clearedFields[call.FieldExternalConversationID]
	return ok
}

// ResetExternalConversationID resets all changes to the "external_conversation_id" field.
func (m *CallMutation) ResetExternalConversationID() {
	m.external_conversation_id = nil
	delete(m.clearedFields, call.FieldExternalConversationID)
}

// SetExternalBatchID sets the "external_batch_id" field.
func (m *CallMutation) SetExternalBatchID(s string) {
	m.external_batch_id = &s
}

// ExternalBatchID returns the value of the "external_batch_id" field in the mutation.
func (m *CallMutation) ExternalBatchID() (r string, exists bool) {
	v := m.external_batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalBatchID returns the old "external_batch_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldExternalBatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalBatchID: %w", err)
	}
	return oldValue.ExternalBatchID, nil
}

// ClearExternalBatchID clears the value of the "external_batch_id" field.
func (m *CallMutation) ClearExternalBatchID() {
	m.external_batch_id = nil
	m.clearedFields[call.FieldExternalBatchID] = struct{}{}
}

// ExternalBatchIDCleared returns if the "external_batch_id" field was cleared in this mutation.
func (m *CallMutation) ExternalBatchIDCleared() bool {
	_, ok := m.clearedFields[call.FieldExternalBatchID]
	return ok
}

// ResetExternalBatchID resets all changes to the "external_batch_id" field.
func (m *CallMutation) ResetExternalBatchID() {
	m.external_batch_id = nil
	delete(m.clearedFields, call.FieldExternalBatchID)
}

// SetStatus sets the "status" field.
func (m *CallMutation) SetStatus(c call.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CallMutation) Status() (r call.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldStatus(ctx context.Context) (v call.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CallMutation) ResetStatus() {
	m.status = nil
}

// SetTranscript sets the "transcript" field.
func (m *CallMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *CallMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldTranscript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ClearTranscript clears the value of the "transcript" field.
func (m *CallMutation) ClearTranscript() {
	m.transcript = nil
	m.clearedFields[call.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *CallMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[call.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *CallMutation) ResetTranscript() {
	m.transcript = nil
	delete(m.clearedFields, call.FieldTranscript)
}

// SetSummary sets the "summary" field.
func (m *CallMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CallMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CallMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[call.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CallMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[call.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CallMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, call.FieldSummary)
}

// SetSummaryTitle sets the "summary_title" field.
func (m *CallMutation) SetSummaryTitle(s string) {
	m.summary_title = &s
}

// SummaryTitle returns the value of the "summary_title" field in the mutation.
func (m *CallMutation) SummaryTitle() (r string, exists bool) {
	v := m.summary_title
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryTitle returns the old "summary_title" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldSummaryTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryTitle: %w", err)
	}
	return oldValue.SummaryTitle, nil
}

// ClearSummaryTitle clears the value of the "summary_title" field.
func (m *CallMutation) ClearSummaryTitle() {
	m.summary_title = nil
	m.clearedFields[call.FieldSummaryTitle] = struct{}{}
}

// SummaryTitleCleared returns if the "summary_title" field was cleared in this mutation.
func (m *CallMutation) SummaryTitleCleared() bool {
	_, ok := m.clearedFields[call.FieldSummaryTitle]
	return ok
}

// ResetSummaryTitle resets all changes to the "summary_title" field.
func (m *CallMutation) ResetSummaryTitle() {
	m.summary_title = nil
	delete(m.clearedFields, call.FieldSummaryTitle)
}

// SetRecordingURL sets the "recording_url" field.
func (m *CallMutation) SetRecordingURL(s string) {
	m.recording_url = &s
}

// RecordingURL returns the value of the "recording_url" field in the mutation.
func (m *CallMutation) RecordingURL() (r string, exists bool) {
	v := m.recording_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingURL returns the old "recording_url" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldRecordingURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingURL: %w", err)
	}
	return oldValue.RecordingURL, nil
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (m *CallMutation) ClearRecordingURL() {
	m.recording_url = nil
	m.clearedFields[call.FieldRecordingURL] = struct{}{}
}

// RecordingURLCleared returns if the "recording_url" field was cleared in this mutation.
func (m *CallMutation) RecordingURLCleared() bool {
	_, ok := m.clearedFields[call.FieldRecordingURL]
	return ok
}

// ResetRecordingURL resets all changes to the "recording_url" field.
func (m *CallMutation) ResetRecordingURL() {
	m.recording_url = nil
	delete(m.clearedFields, call.FieldRecordingURL)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *CallMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *CallMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldDurationSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *CallMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *CallMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *CallMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[call.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *CallMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[call.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *CallMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, call.FieldDurationSeconds)
}

// SetRawPayload sets the "raw_payload" field.
func (m *CallMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *CallMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *CallMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[call.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *CallMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[call.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *CallMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, call.FieldRawPayload)
}

// SetInitiatedAt sets the "initiated_at" field.
func (m *CallMutation) SetInitiatedAt(t time.Time) {
	m.initiated_at = &t
}

// InitiatedAt returns the value of the "initiated_at" field in the mutation.
func (m *CallMutation) InitiatedAt() (r time.Time, exists bool) {
	v := m.initiated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiatedAt returns the old "initiated_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldInitiatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiatedAt: %w", err)
	}
	return oldValue.InitiatedAt, nil
}

// ResetInitiatedAt resets all changes to the "initiated_at" field.
func (m *CallMutation) ResetInitiatedAt() {
	m.initiated_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *CallMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *CallMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *CallMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[call.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *CallMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[call.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *CallMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, call.FieldEndedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CallMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CallMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CallMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *CallMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[call.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *CallMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *CallMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *CallMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// SetEvaluationID sets the "evaluation" edge to the Evaluation entity by id.
func (m *CallMutation) SetEvaluationID(id int) {
	m.evaluation = &id
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (m *CallMutation) ClearEvaluation() {
	m.clearedevaluation = true
}

// EvaluationCleared reports if the "evaluation" edge to the Evaluation entity was cleared.
func (m *CallMutation) EvaluationCleared() bool {
	return m.clearedevaluation
}

// EvaluationID returns the "evaluation" edge ID in the mutation.
func (m *CallMutation) EvaluationID() (id int, exists bool) {
	if m.evaluation != nil {
		return *m.evaluation, true
	}
	return
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *CallMutation) EvaluationIDs() (ids []int) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *CallMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// Where appends a list predicates to the CallMutation builder.
func (m *CallMutation) Where(ps ...predicate.Call) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Call, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Call).
func (m *CallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.application != nil {
		fields = append(fields, call.FieldApplicationID)
	}
	if m.attempt_number != nil {
		fields = append(fields, call.FieldAttemptNumber)
	}
	if m.external_conversation_id != nil {
		fields = append(fields, call.FieldExternalConversationID)
	}
	if m.external_batch_id != nil {
		fields = append(fields, call.FieldExternalBatchID)
	}
	if m.status != nil {
		fields = append(fields, call.FieldStatus)
	}
	if m.transcript != nil {
		fields = append(fields, call.FieldTranscript)
	}
	if m.summary != nil {
		fields = append(fields, call.FieldSummary)
	}
	if m.summary_title != nil {
		fields = append(fields, call.FieldSummaryTitle)
	}
	if m.recording_url != nil {
		fields = append(fields, call.FieldRecordingURL)
	}
	if m.duration_seconds != nil {
		fields = append(fields, call.FieldDurationSeconds)
	}
	if m.raw_payload != nil {
		fields = append(fields, call.FieldRawPayload)
	}
	if m.initiated_at != nil {
		fields = append(fields, call.FieldInitiatedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, call.FieldEndedAt)
	}
	if m.created_at != nil {
		fields = append(fields, call.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, call.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case call.FieldApplicationID:
		return m.ApplicationID()
	case call.FieldAttemptNumber:
		return m.AttemptNumber()
	case call.FieldExternalConversationID:
		return m.ExternalConversationID()
	case call.FieldExternalBatchID:
		return m.ExternalBatchID()
	case call.FieldStatus:
		return m.Status()
	case call.FieldTranscript:
		return m.Transcript()
	case call.FieldSummary:
		return m.Summary()
	case call.FieldSummaryTitle:
		return m.SummaryTitle()
	case call.FieldRecordingURL:
		return m.RecordingURL()
	case call.FieldDurationSeconds:
		return m.DurationSeconds()
	case call.FieldRawPayload:
		return m.RawPayload()
	case call.FieldInitiatedAt:
		return m.InitiatedAt()
	case call.FieldEndedAt:
		return m.EndedAt()
	case call.FieldCreatedAt:
		return m.CreatedAt()
	case call.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case call.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case call.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case call.FieldExternalConversationID:
		return m.OldExternalConversationID(ctx)
	case call.FieldExternalBatchID:
		return m.OldExternalBatchID(ctx)
	case call.FieldStatus:
		return m.OldStatus(ctx)
	case call.FieldTranscript:
		return m.OldTranscript(ctx)
	case call.FieldSummary:
		return m.OldSummary(ctx)
	case call.FieldSummaryTitle:
		return m.OldSummaryTitle(ctx)
	case call.FieldRecordingURL:
		return m.OldRecordingURL(ctx)
	case call.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case call.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case call.FieldInitiatedAt:
		return m.OldInitiatedAt(ctx)
	case call.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case call.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case call.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Call field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case call.FieldApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case call.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case call.FieldExternalConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalConversationID(v)
		return nil
	case call.FieldExternalBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalBatchID(v)
		return nil
	case call.FieldStatus:
		v, ok := value.(call.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case call.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case call.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case call.FieldSummaryTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryTitle(v)
		return nil
	case call.FieldRecordingURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingURL(v)
		return nil
	case call.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case call.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case call.FieldInitiatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiatedAt(v)
		return nil
	case call.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case call.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case call.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Call field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, call.FieldAttemptNumber)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, call.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case call.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case call.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case call.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case call.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Call numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(call.FieldExternalConversationID) {
		fields = append(fields, call.FieldExternalConversationID)
	}
	if m.FieldCleared(call.FieldExternalBatchID) {
		fields = append(fields, call.FieldExternalBatchID)
	}
	if m.FieldCleared(call.FieldTranscript) {
		fields = append(fields, call.FieldTranscript)
	}
	if m.FieldCleared(call.FieldSummary) {
		fields = append(fields, call.FieldSummary)
	}
	if m.FieldCleared(call.FieldSummaryTitle) {
		fields = append(fields, call.FieldSummaryTitle)
	}
	if m.FieldCleared(call.FieldRecordingURL) {
		fields = append(fields, call.FieldRecordingURL)
	}
	if m.FieldCleared(call.FieldDurationSeconds) {
		fields = append(fields, call.FieldDurationSeconds)
	}
	if m.FieldCleared(call.FieldRawPayload) {
		fields = append(fields, call.FieldRawPayload)
	}
	if m.FieldCleared(call.FieldEndedAt) {
		fields = append(fields, call.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallMutation) ClearField(name string) error {
	switch name {
	case call.FieldExternalConversationID:
		m.ClearExternalConversationID()
		return nil
	case call.FieldExternalBatchID:
		m.ClearExternalBatchID()
		return nil
	case call.FieldTranscript:
		m.ClearTranscript()
		return nil
	case call.FieldSummary:
		m.ClearSummary()
		return nil
	case call.FieldSummaryTitle:
		m.ClearSummaryTitle()
		return nil
	case call.FieldRecordingURL:
		m.ClearRecordingURL()
		return nil
	case call.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case call.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	case call.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Call nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallMutation) ResetField(name string) error {
	switch name {
	case call.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case call.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case call.FieldExternalConversationID:
		m.ResetExternalConversationID()
		return nil
	case call.FieldExternalBatchID:
		m.ResetExternalBatchID()
		return nil
	case call.FieldStatus:
		m.ResetStatus()
		return nil
	case call.FieldTranscript:
		m.ResetTranscript()
		return nil
	case call.FieldSummary:
		m.ResetSummary()
		return nil
	case call.FieldSummaryTitle:
		m.ResetSummaryTitle()
		return nil
	case call.FieldRecordingURL:
		m.ResetRecordingURL()
		return nil
	case call.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case call.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case call.FieldInitiatedAt:
		m.ResetInitiatedAt()
		return nil
	case call.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case call.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case call.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Call field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.application != nil {
		edges = append(edges, call.EdgeApplication)
	}
	if m.evaluation != nil {
		edges = append(edges, call.EdgeEvaluation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case call.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	case call.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplication {
		edges = append(edges, call.EdgeApplication)
	}
	if m.clearedevaluation {
		edges = append(edges, call.EdgeEvaluation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallMutation) EdgeCleared(name string) bool {
	switch name {
	case call.EdgeApplication:
		return m.clearedapplication
	case call.EdgeEvaluation:
		return m.clearedevaluation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallMutation) ClearEdge(name string) error {
	switch name {
	case call.EdgeApplication:
		m.ClearApplication()
		return nil
	case call.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown Call unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallMutation) ResetEdge(name string) error {
	switch name {
	case call.EdgeApplication:
		m.ResetApplication()
		return nil
	case call.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	}
	return fmt.Errorf("unknown Call edge %s", name)
}

// CandidateMutation represents an operation that mutates the Candidate nodes in the graph.
type CandidateMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	first_name          *string
	last_name           *string
	email               *string
	phone               *string
	whatsapp_number     *string
	lead_source_id      *string
	form_answers        *map[string]interface{}
	notes               *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	applications        map[int]struct{}
	removedapplications map[int]struct{}
	clearedapplications bool
	replies             map[int]struct{}
	removedreplies      map[int]struct{}
	clearedreplies      bool
	cv_uploads          map[int]struct{}
	removedcv_uploads   map[int]struct{}
	clearedcv_uploads   bool
	done                bool
	oldValue            func(context.Context) (*Candidate, error)
	predicates          []predicate.Candidate
}

var _ ent.Mutation = (*CandidateMutation)(nil)

// candidateOption allows management of the mutation configuration using functional options.
type candidateOption func(*CandidateMutation)

// newCandidateMutation creates new mutation for the Candidate entity.
func newCandidateMutation(c config, op Op, opts ...candidateOption) *CandidateMutation {
	m := &CandidateMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateID sets the ID field of the mutation.
func withCandidateID(id int) candidateOption {
	return func(m *CandidateMutation) {
		var (
			err   error
			once  sync.Once
			value *Candidate
		)
		m.oldValue = func(ctx context.Context) (*Candidate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Candidate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidate sets the old Candidate of the mutation.
func withCandidate(node *Candidate) candidateOption {
	return func(m *CandidateMutation) {
		m.oldValue = func(context.Context) (*Candidate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Candidate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *CandidateMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *CandidateMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *CandidateMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *CandidateMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *CandidateMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *CandidateMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[candidate.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *CandidateMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *CandidateMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, candidate.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *CandidateMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CandidateMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CandidateMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[candidate.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CandidateMutation) EmailCleared() bool {
	_, ok := m.clearedFields[candidate.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CandidateMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, candidate.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *CandidateMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CandidateMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CandidateMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[candidate.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CandidateMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[candidate.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CandidateMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, candidate.FieldPhone)
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (m *CandidateMutation) SetWhatsappNumber(s string) {
	m.whatsapp_number = &s
}

// WhatsappNumber returns the value of the "whatsapp_number" field in the mutation.
func (m *CandidateMutation) WhatsappNumber() (r string, exists bool) {
	v := m.whatsapp_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatsappNumber returns the old "whatsapp_number" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldWhatsappNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatsappNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatsappNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatsappNumber: %w", err)
	}
	return oldValue.WhatsappNumber, nil
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (m *CandidateMutation) ClearWhatsappNumber() {
	m.whatsapp_number = nil
	m.clearedFields[candidate.FieldWhatsappNumber] = struct{}{}
}

// WhatsappNumberCleared returns if the "whatsapp_number" field was cleared in this mutation.
func (m *CandidateMutation) WhatsappNumberCleared() bool {
	_, ok := m.clearedFields[candidate.FieldWhatsappNumber]
	return ok
}

// ResetWhatsappNumber resets all changes to the "whatsapp_number" field.
func (m *CandidateMutation) ResetWhatsappNumber() {
	m.whatsapp_number = nil
	delete(m.clearedFields, candidate.FieldWhatsappNumber)
}

// SetLeadSourceID sets the "lead_source_id" field.
func (m *CandidateMutation) SetLeadSourceID(s string) {
	m.lead_source_id = &s
}

// LeadSourceID returns the value of the "lead_source_id" field in the mutation.
func (m *CandidateMutation) LeadSourceID() (r string, exists bool) {
	v := m.lead_source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadSourceID returns the old "lead_source_id" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLeadSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadSourceID: %w", err)
	}
	return oldValue.LeadSourceID, nil
}

// ClearLeadSourceID clears the value of the "lead_source_id" field.
func (m *CandidateMutation) ClearLeadSourceID() {
	m.lead_source_id = nil
	m.clearedFields[candidate.FieldLeadSourceID] = struct{}{}
}

// LeadSourceIDCleared returns if the "lead_source_id" field was cleared in this mutation.
func (m *CandidateMutation) LeadSourceIDCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLeadSourceID]
	return ok
}

// ResetLeadSourceID resets all changes to the "lead_source_id" field.
func (m *CandidateMutation) ResetLeadSourceID() {
	m.lead_source_id = nil
	delete(m.clearedFields, candidate.FieldLeadSourceID)
}

// SetFormAnswers sets the "form_answers" field.
func (m *CandidateMutation) SetFormAnswers(value map[string]interface{}) {
	m.form_answers = &value
}

// FormAnswers returns the value of the "form_answers" field in the mutation.
func (m *CandidateMutation) FormAnswers() (r map[string]interface{}, exists bool) {
	v := m.form_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldFormAnswers returns the old "form_answers" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldFormAnswers(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormAnswers: %w", err)
	}
	return oldValue.FormAnswers, nil
}

// ClearFormAnswers clears the value of the "form_answers" field.
func (m *CandidateMutation) ClearFormAnswers() {
	m.form_answers = nil
	m.clearedFields[candidate.FieldFormAnswers] = struct{}{}
}

// FormAnswersCleared returns if the "form_answers" field was cleared in this mutation.
func (m *CandidateMutation) FormAnswersCleared() bool {
	_, ok := m.clearedFields[candidate.FieldFormAnswers]
	return ok
}

// ResetFormAnswers resets all changes to the "form_answers" field.
func (m *CandidateMutation) ResetFormAnswers() {
	m.form_answers = nil
	delete(m.clearedFields, candidate.FieldFormAnswers)
}

// SetNotes sets the "notes" field.
func (m *CandidateMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CandidateMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CandidateMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[candidate.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CandidateMutation) NotesCleared() bool {
	_, ok := m.clearedFields[candidate.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CandidateMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, candidate.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *CandidateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CandidateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CandidateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CandidateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CandidateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CandidateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the Application entity by ids.
func (m *CandidateMutation) AddApplicationIDs(ids ...int) {
	if m.applications == nil {
		m.applications = make(map[int]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the Application entity.
func (m *CandidateMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the Application entity was cleared.
func (m *CandidateMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the Application entity by IDs.
func (m *CandidateMutation) RemoveApplicationIDs(ids ...int) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the Application entity.
func (m *CandidateMutation) RemovedApplicationsIDs() (ids []int) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *CandidateMutation) ApplicationsIDs() (ids []int) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *CandidateMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by ids.
func (m *CandidateMutation) AddReplyIDs(ids ...int) {
	if m.replies == nil {
		m.replies = make(map[int]struct{})
	}
	for i := range ids {
		m.replies[ids[i]] = struct{}{}
	}
}

// ClearReplies clears the "replies" edge to the CandidateReply entity.
func (m *CandidateMutation) ClearReplies() {
	m.clearedreplies = true
}

// RepliesCleared reports if the "replies" edge to the CandidateReply entity was cleared.
func (m *CandidateMutation) RepliesCleared() bool {
	return m.clearedreplies
}

// RemoveReplyIDs removes the "replies" edge to the CandidateReply entity by IDs.
func (m *CandidateMutation) RemoveReplyIDs(ids ...int) {
	if m.removedreplies == nil {
		m.removedreplies = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.replies, ids[i])
		m.removedreplies[ids[i]] = struct{}{}
	}
}

// RemovedReplies returns the removed IDs of the "replies" edge to the CandidateReply entity.
func (m *CandidateMutation) RemovedRepliesIDs() (ids []int) {
	for id := range m.removedreplies {
		ids = append(ids, id)
	}
	return
}

// RepliesIDs returns the "replies" edge IDs in the mutation.
func (m *CandidateMutation) RepliesIDs() (ids []int) {
	for id := range m.replies {
		ids = append(ids, id)
	}
	return
}

// ResetReplies resets all changes to the "replies" edge.
func (m *CandidateMutation) ResetReplies() {
	m.replies = nil
	m.clearedreplies = false
	m.removedreplies = nil
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by ids.
func (m *CandidateMutation) AddCvUploadIDs(ids ...int) {
	if m.cv_uploads == nil {
		m.cv_uploads = make(map[int]struct{})
	}
	for i := range ids {
		m.cv_uploads[ids[i]] = struct{}{}
	}
}

// ClearCvUploads clears the "cv_uploads" edge to the CVUpload entity.
func (m *CandidateMutation) ClearCvUploads() {
	m.clearedcv_uploads = true
}

// CvUploadsCleared reports if the "cv_uploads" edge to the CVUpload entity was cleared.
func (m *CandidateMutation) CvUploadsCleared() bool {
	return m.clearedcv_uploads
}

// RemoveCvUploadIDs removes the "cv_uploads" edge to the CVUpload entity by IDs.
func (m *CandidateMutation) RemoveCvUploadIDs(ids ...int) {
	if m.removedcv_uploads == nil {
		m.removedcv_uploads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.cv_uploads, ids[i])
		m.removedcv_uploads[ids[i]] = struct{}{}
	}
}

// RemovedCvUploads returns the removed IDs of the "cv_uploads" edge to the CVUpload entity.
func (m *CandidateMutation) RemovedCvUploadsIDs() (ids []int) {
	for id := range m.removedcv_uploads {
		ids = append(ids, id)
	}
	return
}

// CvUploadsIDs returns the "cv_uploads" edge IDs in the mutation.
func (m *CandidateMutation) CvUploadsIDs() (ids []int) {
	for id := range m.cv_uploads {
		ids = append(ids, id)
	}
	return
}

// ResetCvUploads resets all changes to the "cv_uploads" edge.
func (m *CandidateMutation) ResetCvUploads() {
	m.cv_uploads = nil
	m.clearedcv_uploads = false
	m.removedcv_uploads = nil
}

// Where appends a list predicates to the CandidateMutation builder.
func (m *CandidateMutation) Where(ps ...predicate.Candidate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Candidate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Candidate).
func (m *CandidateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.first_name != nil {
		fields = append(fields, candidate.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, candidate.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, candidate.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, candidate.FieldPhone)
	}
	if m.whatsapp_number != nil {
		fields = append(fields, candidate.FieldWhatsappNumber)
	}
	if m.lead_source_id != nil {
		fields = append(fields, candidate.FieldLeadSourceID)
	}
	if m.form_answers != nil {
		fields = append(fields, candidate.FieldFormAnswers)
	}
	if m.notes != nil {
		fields = append(fields, candidate.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, candidate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, candidate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidate.FieldFirstName:
		return m.FirstName()
	case candidate.FieldLastName:
		return m.LastName()
	case candidate.FieldEmail:
		return m.Email()
	case candidate.FieldPhone:
		return m.Phone()
	case candidate.FieldWhatsappNumber:
		return m.WhatsappNumber()
	case candidate.FieldLeadSourceID:
		return m.LeadSourceID()
	case candidate.FieldFormAnswers:
		return m.FormAnswers()
	case candidate.FieldNotes:
		return m.Notes()
	case candidate.FieldCreatedAt:
		return m.CreatedAt()
	case candidate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidate.FieldFirstName:
		return m.OldFirstName(ctx)
	case candidate.FieldLastName:
		return m.OldLastName(ctx)
	case candidate.FieldEmail:
		return m.OldEmail(ctx)
	case candidate.FieldPhone:
		return m.OldPhone(ctx)
	case candidate.FieldWhatsappNumber:
		return m.OldWhatsappNumber(ctx)
	case candidate.FieldLeadSourceID:
		return m.OldLeadSourceID(ctx)
	case candidate.FieldFormAnswers:
		return m.OldFormAnswers(ctx)
	case candidate.FieldNotes:
		return m.OldNotes(ctx)
	case candidate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case candidate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Candidate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidate.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case candidate.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case candidate.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case candidate.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case candidate.FieldWhatsappNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatsappNumber(v)
		return nil
	case candidate.FieldLeadSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadSourceID(v)
		return nil
	case candidate.FieldFormAnswers:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormAnswers(v)
		return nil
	case candidate.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case candidate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case candidate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidate.FieldLastName) {
		fields = append(fields, candidate.FieldLastName)
	}
	if m.FieldCleared(candidate.FieldEmail) {
		fields = append(fields, candidate.FieldEmail)
	}
	if m.FieldCleared(candidate.FieldPhone) {
		fields = append(fields, candidate.FieldPhone)
	}
	if m.FieldCleared(candidate.FieldWhatsappNumber) {
		fields = append(fields, candidate.FieldWhatsappNumber)
	}
	if m.FieldCleared(candidate.FieldLeadSourceID) {
		fields = append(fields, candidate.FieldLeadSourceID)
	}
	if m.FieldCleared(candidate.FieldFormAnswers) {
		fields = append(fields, candidate.FieldFormAnswers)
	}
	if m.FieldCleared(candidate.FieldNotes) {
		fields = append(fields, candidate.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateMutation) ClearField(name string) error {
	switch name {
	case candidate.FieldLastName:
		m.ClearLastName()
		return nil
	case candidate.FieldEmail:
		m.ClearEmail()
		return nil
	case candidate.FieldPhone:
		m.ClearPhone()
		return nil
	case candidate.FieldWhatsappNumber:
		m.ClearWhatsappNumber()
		return nil
	case candidate.FieldLeadSourceID:
		m.ClearLeadSourceID()
		return nil
	case candidate.FieldFormAnswers:
		m.ClearFormAnswers()
		return nil
	case candidate.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Candidate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateMutation) ResetField(name string) error {
	switch name {
	case candidate.FieldFirstName:
		m.ResetFirstName()
		return nil
	case candidate.FieldLastName:
		m.ResetLastName()
		return nil
	case candidate.FieldEmail:
		m.ResetEmail()
		return nil
	case candidate.FieldPhone:
		m.ResetPhone()
		return nil
	case candidate.FieldWhatsappNumber:
		m.ResetWhatsappNumber()
		return nil
	case candidate.FieldLeadSourceID:
		m.ResetLeadSourceID()
		return nil
	case candidate.FieldFormAnswers:
		m.ResetFormAnswers()
		return nil
	case candidate.FieldNotes:
		m.ResetNotes()
		return nil
	case candidate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case candidate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.applications != nil {
		edges = append(edges, candidate.EdgeApplications)
	}
	if m.replies != nil {
		edges = append(edges, candidate.EdgeReplies)
	}
	if m.cv_uploads != nil {
		edges = append(edges, candidate.EdgeCvUploads)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	case candidate.EdgeReplies:
		ids := make([]ent.Value, 0, len(m.replies))
		for id := range m.replies {
			ids = append(ids, id)
		}
		return ids
	case candidate.EdgeCvUploads:
		ids := make([]ent.Value, 0, len(m.cv_uploads))
		for id := range m.cv_uploads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedapplications != nil {
		edges = append(edges, candidate.EdgeApplications)
	}
	if m.removedreplies != nil {
		edges = append(edges, candidate.EdgeReplies)
	}
	if m.removedcv_uploads != nil {
		edges = append(edges, candidate.EdgeCvUploads)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	case candidate.EdgeReplies:
		ids := make([]ent.Value, 0, len(m.removedreplies))
		for id := range m.removedreplies {
			ids = append(ids, id)
		}
		return ids
	case candidate.EdgeCvUploads:
		ids := make([]ent.Value, 0, len(m.removedcv_uploads))
		for id := range m.removedcv_uploads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedapplications {
		edges = append(edges, candidate.EdgeApplications)
	}
	if m.clearedreplies {
		edges = append(edges, candidate.EdgeReplies)
	}
	if m.clearedcv_uploads {
		edges = append(edges, candidate.EdgeCvUploads)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateMutation) EdgeCleared(name string) bool {
	switch name {
	case candidate.EdgeApplications:
		return m.clearedapplications
	case candidate.EdgeReplies:
		return m.clearedreplies
	case candidate.EdgeCvUploads:
		return m.clearedcv_uploads
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateMutation) ResetEdge(name string) error {
	switch name {
	case candidate.EdgeApplications:
		m.ResetApplications()
		return nil
	case candidate.EdgeReplies:
		m.ResetReplies()
		return nil
	case candidate.EdgeCvUploads:
		m.ResetCvUploads()
		return nil
	}
	return fmt.Errorf("unknown Candidate edge %s", name)
}

// CandidateReplyMutation represents an operation that mutates the CandidateReply nodes in the graph.
type CandidateReplyMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	channel            *candidatereply.Channel
	sender             *string
	subject            *string
	body               *string
	external_id        *string
	is_read            *bool
	received_at        *time.Time
	clearedFields      map[string]struct{}
	candidate          *int
	clearedcandidate   bool
	application        *int
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*CandidateReply, error)
	predicates         []predicate.CandidateReply
}

var _ ent.Mutation = (*CandidateReplyMutation)(nil)

// candidatereplyOption allows management of the mutation configuration using functional options.
type candidatereplyOption func(*CandidateReplyMutation)

// newCandidateReplyMutation creates new mutation for the CandidateReply entity.
func newCandidateReplyMutation(c config, op Op, opts ...candidatereplyOption) *CandidateReplyMutation {
	m := &CandidateReplyMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidateReply,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateReplyID sets the ID field of the mutation.
func withCandidateReplyID(id int) candidatereplyOption {
	return func(m *CandidateReplyMutation) {
		var (
			err   error
			once  sync.Once
			value *CandidateReply
		)
		m.oldValue = func(ctx context.Context) (*CandidateReply, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CandidateReply.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidateReply sets the old CandidateReply of the mutation.
func withCandidateReply(node *CandidateReply) candidatereplyOption {
	return func(m *CandidateReplyMutation) {
		m.oldValue = func(context.Context) (*CandidateReply, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateReplyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateReplyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateReplyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateReplyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CandidateReply.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCandidateID sets the "candidate_id" field.
func (m *CandidateReplyMutation) SetCandidateID(i int) {
	m.candidate = &i
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *CandidateReplyMutation) CandidateID() (r int, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldCandidateID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (m *CandidateReplyMutation) ClearCandidateID() {
	m.candidate = nil
	m.clearedFields[candidatereply.FieldCandidateID] = struct{}{}
}

// CandidateIDCleared returns if the "candidate_id" field was cleared in this mutation.
func (m *CandidateReplyMutation) CandidateIDCleared() bool {
	_, ok := m.clearedFields[candidatereply.FieldCandidateID]
	return ok
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *CandidateReplyMutation) ResetCandidateID() {
	m.candidate = nil
	delete(m.clearedFields, candidatereply.FieldCandidateID)
}

// SetApplicationID sets the "application_id" field.
func (m *CandidateReplyMutation) SetApplicationID(i int) {
	m.application = &i
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *CandidateReplyMutation) ApplicationID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldApplicationID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ClearApplicationID clears the value of the "application_id" field.
func (m *CandidateReplyMutation) ClearApplicationID() {
	m.application = nil
	m.clearedFields[candidatereply.FieldApplicationID] = struct{}{}
}

// ApplicationIDCleared returns if the "application_id" field was cleared in this mutation.
func (m *CandidateReplyMutation) ApplicationIDCleared() bool {
	_, ok := m.clearedFields[candidatereply.FieldApplicationID]
	return ok
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *CandidateReplyMutation) ResetApplicationID() {
	m.application = nil
	delete(m.clearedFields, candidatereply.FieldApplicationID)
}

// SetChannel sets the "channel" field.
func (m *CandidateReplyMutation) SetChannel(c candidatereply.Channel) {
	m.channel = &c
}

// Channel returns the value of the "channel" field in the mutation.
func (m *CandidateReplyMutation) Channel() (r candidatereply.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldChannel(ctx context.Context) (v candidatereply.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *CandidateReplyMutation) ResetChannel() {
	m.channel = nil
}

// SetSender sets the "sender" field.
func (m *CandidateReplyMutation) SetSender(s string) {
	m.sender = &s
}

// Sender returns the value of the "sender" field in the mutation.
func (m *CandidateReplyMutation) Sender() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *CandidateReplyMutation) ResetSender() {
	m.sender = nil
}

// SetSubject sets the "subject" field.
func (m *CandidateReplyMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *CandidateReplyMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *CandidateReplyMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[candidatereply.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *CandidateReplyMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[candidatereply.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *CandidateReplyMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, candidatereply.FieldSubject)
}

// SetBody sets the "body" field.
func (m *CandidateReplyMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *CandidateReplyMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *CandidateReplyMutation) ResetBody() {
	m.body = nil
}

// SetExternalID sets the "external_id" field.
func (m *CandidateReplyMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *CandidateReplyMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *CandidateReplyMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[candidatereply.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *CandidateReplyMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[candidatereply.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *CandidateReplyMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, candidatereply.FieldExternalID)
}

// SetIsRead sets the "is_read" field.
func (m *CandidateReplyMutation) SetIsRead(b bool) {
	m.is_read = &b
}

// IsRead returns the value of the "is_read" field in the mutation.
func (m *CandidateReplyMutation) IsRead() (r bool, exists bool) {
	v := m.is_read
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRead returns the old "is_read" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldIsRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRead: %w", err)
	}
	return oldValue.IsRead, nil
}

// ResetIsRead resets all changes to the "is_read" field.
func (m *CandidateReplyMutation) ResetIsRead() {
	m.is_read = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *CandidateReplyMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *CandidateReplyMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the CandidateReply entity.
// If the CandidateReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateReplyMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *CandidateReplyMutation) ResetReceivedAt() {
	m.received_at = nil
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *CandidateReplyMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[candidatereply.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *CandidateReplyMutation) CandidateCleared() bool {
	return m.CandidateIDCleared() || m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *CandidateReplyMutation) CandidateIDs() (ids []int) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *CandidateReplyMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *CandidateReplyMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[candidatereply.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *CandidateReplyMutation) ApplicationCleared() bool {
	return m.ApplicationIDCleared() || m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *CandidateReplyMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *CandidateReplyMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the CandidateReplyMutation builder.
func (m *CandidateReplyMutation) Where(ps ...predicate.CandidateReply) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateReplyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateReplyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CandidateReply, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateReplyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateReplyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CandidateReply).
func (m *CandidateReplyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateReplyMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.candidate != nil {
		fields = append(fields, candidatereply.FieldCandidateID)
	}
	if m.application != nil {
		fields = append(fields, candidatereply.FieldApplicationID)
	}
	if m.channel != nil {
		fields = append(fields, candidatereply.FieldChannel)
	}
	if m.sender != nil {
		fields = append(fields, candidatereply.FieldSender)
	}
	if m.subject != nil {
		fields = append(fields, candidatereply.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, candidatereply.FieldBody)
	}
	if m.external_id != nil {
		fields = append(fields, candidatereply.FieldExternalID)
	}
	if m.is_read != nil {
		fields = append(fields, candidatereply.FieldIsRead)
	}
	if m.received_at != nil {
		fields = append(fields, candidatereply.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateReplyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidatereply.FieldCandidateID:
		return m.CandidateID()
	case candidatereply.FieldApplicationID:
		return m.ApplicationID()
	case candidatereply.FieldChannel:
		return m.Channel()
	case candidatereply.FieldSender:
		return m.Sender()
	case candidatereply.FieldSubject:
		return m.Subject()
	case candidatereply.FieldBody:
		return m.Body()
	case candidatereply.FieldExternalID:
		return m.ExternalID()
	case candidatereply.FieldIsRead:
		return m.IsRead()
	case candidatereply.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateReplyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidatereply.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case candidatereply.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case candidatereply.FieldChannel:
		return m.OldChannel(ctx)
	case candidatereply.FieldSender:
		return m.OldSender(ctx)
	case candidatereply.FieldSubject:
		return m.OldSubject(ctx)
	case candidatereply.FieldBody:
		return m.OldBody(ctx)
	case candidatereply.FieldExternalID:
		return m.OldExternalID(ctx)
	case candidatereply.FieldIsRead:
		return m.OldIsRead(ctx)
	case candidatereply.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CandidateReply field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateReplyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidatereply.FieldCandidateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case candidatereply.FieldApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case candidatereply.FieldChannel:
		v, ok := value.(candidatereply.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case candidatereply.FieldSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case candidatereply.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case candidatereply.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case candidatereply.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case candidatereply.FieldIsRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRead(v)
		return nil
	case candidatereply.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CandidateReply field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateReplyMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateReplyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateReplyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CandidateReply numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateReplyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidatereply.FieldCandidateID) {
		fields = append(fields, candidatereply.FieldCandidateID)
	}
	if m.FieldCleared(candidatereply.FieldApplicationID) {
		fields = append(fields, candidatereply.FieldApplicationID)
	}
	if m.FieldCleared(candidatereply.FieldSubject) {
		fields = append(fields, candidatereply.FieldSubject)
	}
	if m.FieldCleared(candidatereply.FieldExternalID) {
		fields = append(fields, candidatereply.FieldExternalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateReplyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateReplyMutation) ClearField(name string) error {
	switch name {
	case candidatereply.FieldCandidateID:
		m.ClearCandidateID()
		return nil
	case candidatereply.FieldApplicationID:
		m.ClearApplicationID()
		return nil
	case candidatereply.FieldSubject:
		m.ClearSubject()
		return nil
	case candidatereply.FieldExternalID:
		m.ClearExternalID()
		return nil
	}
	return fmt.Errorf("unknown CandidateReply nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateReplyMutation) ResetField(name string) error {
	switch name {
	case candidatereply.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case candidatereply.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case candidatereply.FieldChannel:
		m.ResetChannel()
		return nil
	case candidatereply.FieldSender:
		m.ResetSender()
		return nil
	case candidatereply.FieldSubject:
		m.ResetSubject()
		return nil
	case candidatereply.FieldBody:
		m.ResetBody()
		return nil
	case candidatereply.FieldExternalID:
		m.ResetExternalID()
		return nil
	case candidatereply.FieldIsRead:
		m.ResetIsRead()
		return nil
	case candidatereply.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown CandidateReply field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateReplyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.candidate != nil {
		edges = append(edges, candidatereply.EdgeCandidate)
	}
	if m.application != nil {
		edges = append(edges, candidatereply.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateReplyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidatereply.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	case candidatereply.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateReplyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateReplyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateReplyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcandidate {
		edges = append(edges, candidatereply.EdgeCandidate)
	}
	if m.clearedapplication {
		edges = append(edges, candidatereply.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateReplyMutation) EdgeCleared(name string) bool {
	switch name {
	case candidatereply.EdgeCandidate:
		return m.clearedcandidate
	case candidatereply.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateReplyMutation) ClearEdge(name string) error {
	switch name {
	case candidatereply.EdgeCandidate:
		m.ClearCandidate()
		return nil
	case candidatereply.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown CandidateReply unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateReplyMutation) ResetEdge(name string) error {
	switch name {
	case candidatereply.EdgeCandidate:
		m.ResetCandidate()
		return nil
	case candidatereply.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown CandidateReply edge %s", name)
}

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	outcome              *evaluation.Outcome
	qualified            *bool
	score                *float64
	addscore             *float64
	reasoning            *string
	criteria             *[]map[string]interface{}
	appendcriteria       []map[string]interface{}
	disqualifying_factor *string
	callback_requested   *bool
	callback_notes       *string
	callback_at          *time.Time
	needs_human          *bool
	needs_human_notes    *string
	raw_response         *string
	model                *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	application          *int
	clearedapplication   bool
	call                 *int
	clearedcall          bool
	done                 bool
	oldValue             func(context.Context) (*Evaluation, error)
	predicates           []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id int) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *EvaluationMutation) SetApplicationID(i int) {
	m.application = &i
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *EvaluationMutation) ApplicationID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldApplicationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *EvaluationMutation) ResetApplicationID() {
	m.application = nil
}

// SetCallID sets the "call_id" field.
func (m *EvaluationMutation) SetCallID(i int) {
	m.call = &i
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *EvaluationMutation) CallID() (r int, exists bool) {
	v := m.call
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCallID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *EvaluationMutation) ResetCallID() {
	m.call = nil
}

// SetOutcome sets the "outcome" field.
func (m *EvaluationMutation) SetOutcome(e evaluation.Outcome) {
	m.outcome = &e
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *EvaluationMutation) Outcome() (r evaluation.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldOutcome(ctx context.Context) (v evaluation.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *EvaluationMutation) ResetOutcome() {
	m.outcome = nil
}

// SetQualified sets the "qualified" field.
func (m *EvaluationMutation) SetQualified(b bool) {
	m.qualified = &b
}

// Qualified returns the value of the "qualified" field in the mutation.
func (m *EvaluationMutation) Qualified() (r bool, exists bool) {
	v := m.qualified
	if v == nil {
		return
	}
	return *v, true
}

// OldQualified returns the old "qualified" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldQualified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualified: %w", err)
	}
	return oldValue.Qualified, nil
}

// ResetQualified resets all changes to the "qualified" field.
func (m *EvaluationMutation) ResetQualified() {
	m.qualified = nil
}

// SetScore sets the "score" field.
func (m *EvaluationMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EvaluationMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EvaluationMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EvaluationMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EvaluationMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetReasoning sets the "reasoning" field.
func (m *EvaluationMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *EvaluationMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *EvaluationMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetCriteria sets the "criteria" field.
func (m *EvaluationMutation) SetCriteria(value []map[string]interface{}) {
	m.criteria = &value
	m.appendcriteria = nil
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *EvaluationMutation) Criteria() (r []map[string]interface{}, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCriteria(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// AppendCriteria adds value to the "criteria" field.
func (m *EvaluationMutation) AppendCriteria(value []map[string]interface{}) {
	m.appendcriteria = append(m.appendcriteria, value...)
}

// AppendedCriteria returns the list of values that were appended to the "criteria" field in this mutation.
func (m *EvaluationMutation) AppendedCriteria() ([]map[string]interface{}, bool) {
	if len(m.appendcriteria) == 0 {
		return nil, false
	}
	return m.appendcriteria, true
}

// ClearCriteria clears the value of the "criteria" field.
func (m *EvaluationMutation) ClearCriteria() {
	m.criteria = nil
	m.appendcriteria = nil
	m.clearedFields[evaluation.FieldCriteria] = struct{}{}
}

// CriteriaCleared returns if the "criteria" field was cleared in this mutation.
func (m *EvaluationMutation) CriteriaCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldCriteria]
	return ok
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *EvaluationMutation) ResetCriteria() {
	m.criteria = nil
	m.appendcriteria = nil
	delete(m.clearedFields, evaluation.FieldCriteria)
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (m *EvaluationMutation) SetDisqualifyingFactor(s string) {
	m.disqualifying_factor = &s
}

// DisqualifyingFactor returns the value of the "disqualifying_factor" field in the mutation.
func (m *EvaluationMutation) DisqualifyingFactor() (r string, exists bool) {
	v := m.disqualifying_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldDisqualifyingFactor returns the old "disqualifying_factor" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldDisqualifyingFactor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisqualifyingFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisqualifyingFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisqualifyingFactor: %w", err)
	}
	return oldValue.DisqualifyingFactor, nil
}

// ClearDisqualifyingFactor clears the value of the "disqualifying_factor" field.
func (m *EvaluationMutation) ClearDisqualifyingFactor() {
	m.disqualifying_factor = nil
	m.clearedFields[evaluation.FieldDisqualifyingFactor] = struct{}{}
}

// DisqualifyingFactorCleared returns if the "disqualifying_factor" field was cleared in this mutation.
func (m *EvaluationMutation) DisqualifyingFactorCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldDisqualifyingFactor]
	return ok
}

// ResetDisqualifyingFactor resets all changes to the "disqualifying_factor" field.
func (m *EvaluationMutation) ResetDisqualifyingFactor() {
	m.disqualifying_factor = nil
	delete(m.clearedFields, evaluation.FieldDisqualifyingFactor)
}

// SetCallbackRequested sets the "callback_requested" field.
func (m *EvaluationMutation) SetCallbackRequested(b bool) {
	m.callback_requested = &b
}

// CallbackRequested returns the value of the "callback_requested" field in the mutation.
func (m *EvaluationMutation) CallbackRequested() (r bool, exists bool) {
	v := m.callback_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCallbackRequested returns the old "callback_requested" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCallbackRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallbackRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallbackRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallbackRequested: %w", err)
	}
	return oldValue.CallbackRequested, nil
}

// ResetCallbackRequested resets all changes to the "callback_requested" field.
func (m *EvaluationMutation) ResetCallbackRequested() {
	m.callback_requested = nil
}

// SetCallbackNotes sets the "callback_notes" field.
func (m *EvaluationMutation) SetCallbackNotes(s string) {
	m.callback_notes = &s
}

// CallbackNotes returns the value of the "callback_notes" field in the mutation.
func (m *EvaluationMutation) CallbackNotes() (r string, exists bool) {
	v := m.callback_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldCallbackNotes returns the old "callback_notes" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCallbackNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallbackNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallbackNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallbackNotes: %w", err)
	}
	return oldValue.CallbackNotes, nil
}

// ClearCallbackNotes clears the value of the "callback_notes" field.
func (m *EvaluationMutation) ClearCallbackNotes() {
	m.callback_notes = nil
	m.clearedFields[evaluation.FieldCallbackNotes] = struct{}{}
}

// CallbackNotesCleared returns if the "callback_notes" field was cleared in this mutation.
func (m *EvaluationMutation) CallbackNotesCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldCallbackNotes]
	return ok
}

// ResetCallbackNotes resets all changes to the "callback_notes" field.
func (m *EvaluationMutation) ResetCallbackNotes() {
	m.callback_notes = nil
	delete(m.clearedFields, evaluation.FieldCallbackNotes)
}

// SetCallbackAt sets the "callback_at" field.
func (m *EvaluationMutation) SetCallbackAt(t time.Time) {
	m.callback_at = &t
}

// CallbackAt returns the value of the "callback_at" field in the mutation.
func (m *EvaluationMutation) CallbackAt() (r time.Time, exists bool) {
	v := m.callback_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCallbackAt returns the old "callback_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCallbackAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallbackAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallbackAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallbackAt: %w", err)
	}
	return oldValue.CallbackAt, nil
}

// ClearCallbackAt clears the value of the "callback_at" field.
func (m *EvaluationMutation) ClearCallbackAt() {
	m.callback_at = nil
	m.clearedFields[evaluation.FieldCallbackAt] = struct{}{}
}

// CallbackAtCleared returns if the "callback_at" field was cleared in this mutation.
func (m *EvaluationMutation) CallbackAtCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldCallbackAt]
	return ok
}

// ResetCallbackAt resets all changes to the "callback_at" field.
func (m *EvaluationMutation) ResetCallbackAt() {
	m.callback_at = nil
	delete(m.clearedFields, evaluation.FieldCallbackAt)
}

// SetNeedsHuman sets the "needs_human" field.
func (m *EvaluationMutation) SetNeedsHuman(b bool) {
	m.needs_human = &b
}

// NeedsHuman returns the value of the "needs_human" field in the mutation.
func (m *EvaluationMutation) NeedsHuman() (r bool, exists bool) {
	v := m.needs_human
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsHuman returns the old "needs_human" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldNeedsHuman(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsHuman is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsHuman requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsHuman: %w", err)
	}
	return oldValue.NeedsHuman, nil
}

// ResetNeedsHuman resets all changes to the "needs_human" field.
func (m *EvaluationMutation) ResetNeedsHuman() {
	m.needs_human = nil
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (m *EvaluationMutation) SetNeedsHumanNotes(s string) {
	m.needs_human_notes = &s
}

// NeedsHumanNotes returns the value of the "needs_human_notes" field in the mutation.
func (m *EvaluationMutation) NeedsHumanNotes() (r string, exists bool) {
	v := m.needs_human_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsHumanNotes returns the old "needs_human_notes" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldNeedsHumanNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsHumanNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsHumanNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsHumanNotes: %w", err)
	}
	return oldValue.NeedsHumanNotes, nil
}

// ClearNeedsHumanNotes clears the value of the "needs_human_notes" field.
func (m *EvaluationMutation) ClearNeedsHumanNotes() {
	m.needs_human_notes = nil
	m.clearedFields[evaluation.FieldNeedsHumanNotes] = struct{}{}
}

// NeedsHumanNotesCleared returns if the "needs_human_notes" field was cleared in this mutation.
func (m *EvaluationMutation) NeedsHumanNotesCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldNeedsHumanNotes]
	return ok
}

// ResetNeedsHumanNotes resets all changes to the "needs_human_notes" field.
func (m *EvaluationMutation) ResetNeedsHumanNotes() {
	m.needs_human_notes = nil
	delete(m.clearedFields, evaluation.FieldNeedsHumanNotes)
}

// SetRawResponse sets the "raw_response" field.
func (m *EvaluationMutation) SetRawResponse(s string) {
	m.raw_response = &s
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *EvaluationMutation) RawResponse() (r string, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldRawResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *EvaluationMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[evaluation.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *EvaluationMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *EvaluationMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, evaluation.FieldRawResponse)
}

// SetModel sets the "model" field.
func (m *EvaluationMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *EvaluationMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *EvaluationMutation) ClearModel() {
	m.model = nil
	m.clearedFields[evaluation.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *EvaluationMutation) ModelCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *EvaluationMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, evaluation.FieldModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *EvaluationMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[evaluation.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *EvaluationMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *EvaluationMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// ClearCall clears the "call" edge to the Call entity.
func (m *EvaluationMutation) ClearCall() {
	m.clearedcall = true
	m.clearedFields[evaluation.FieldCallID] = struct{}{}
}

// CallCleared reports if the "call" edge to the Call entity was cleared.
func (m *EvaluationMutation) CallCleared() bool {
	return m.clearedcall
}

// CallIDs returns the "call" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CallID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) CallIDs() (ids []int) {
	if id := m.call; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCall resets all changes to the "call" edge.
func (m *EvaluationMutation) ResetCall() {
	m.call = nil
	m.clearedcall = false
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.application != nil {
		fields = append(fields, evaluation.FieldApplicationID)
	}
	if m.call != nil {
		fields = append(fields, evaluation.FieldCallID)
	}
	if m.outcome != nil {
		fields = append(fields, evaluation.FieldOutcome)
	}
	if m.qualified != nil {
		fields = append(fields, evaluation.FieldQualified)
	}
	if m.score != nil {
		fields = append(fields, evaluation.FieldScore)
	}
	if m.reasoning != nil {
		fields = append(fields, evaluation.FieldReasoning)
	}
	if m.criteria != nil {
		fields = append(fields, evaluation.FieldCriteria)
	}
	if m.disqualifying_factor != nil {
		fields = append(fields, evaluation.FieldDisqualifyingFactor)
	}
	if m.callback_requested != nil {
		fields = append(fields, evaluation.FieldCallbackRequested)
	}
	if m.callback_notes != nil {
		fields = append(fields, evaluation.FieldCallbackNotes)
	}
	if m.callback_at != nil {
		fields = append(fields, evaluation.FieldCallbackAt)
	}
	if m.needs_human != nil {
		fields = append(fields, evaluation.FieldNeedsHuman)
	}
	if m.needs_human_notes != nil {
		fields = append(fields, evaluation.FieldNeedsHumanNotes)
	}
	if m.raw_response != nil {
		fields = append(fields, evaluation.FieldRawResponse)
	}
	if m.model != nil {
		fields = append(fields, evaluation.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, evaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldApplicationID:
		return m.ApplicationID()
	case evaluation.FieldCallID:
		return m.CallID()
	case evaluation.FieldOutcome:
		return m.Outcome()
	case evaluation.FieldQualified:
		return m.Qualified()
	case evaluation.FieldScore:
		return m.Score()
	case evaluation.FieldReasoning:
		return m.Reasoning()
	case evaluation.FieldCriteria:
		return m.Criteria()
	case evaluation.FieldDisqualifyingFactor:
		return m.DisqualifyingFactor()
	case evaluation.FieldCallbackRequested:
		return m.CallbackRequested()
	case evaluation.FieldCallbackNotes:
		return m.CallbackNotes()
	case evaluation.FieldCallbackAt:
		return m.CallbackAt()
	case evaluation.FieldNeedsHuman:
		return m.NeedsHuman()
	case evaluation.FieldNeedsHumanNotes:
		return m.NeedsHumanNotes()
	case evaluation.FieldRawResponse:
		return m.RawResponse()
	case evaluation.FieldModel:
		return m.Model()
	case evaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case evaluation.FieldCallID:
		return m.OldCallID(ctx)
	case evaluation.FieldOutcome:
		return m.OldOutcome(ctx)
	case evaluation.FieldQualified:
		return m.OldQualified(ctx)
	case evaluation.FieldScore:
		return m.OldScore(ctx)
	case evaluation.FieldReasoning:
		return m.OldReasoning(ctx)
	case evaluation.FieldCriteria:
		return m.OldCriteria(ctx)
	case evaluation.FieldDisqualifyingFactor:
		return m.OldDisqualifyingFactor(ctx)
	case evaluation.FieldCallbackRequested:
		return m.OldCallbackRequested(ctx)
	case evaluation.FieldCallbackNotes:
		return m.OldCallbackNotes(ctx)
	case evaluation.FieldCallbackAt:
		return m.OldCallbackAt(ctx)
	case evaluation.FieldNeedsHuman:
		return m.OldNeedsHuman(ctx)
	case evaluation.FieldNeedsHumanNotes:
		return m.OldNeedsHumanNotes(ctx)
	case evaluation.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case evaluation.FieldModel:
		return m.OldModel(ctx)
	case evaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case evaluation.FieldCallID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case evaluation.FieldOutcome:
		v, ok := value.(evaluation.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case evaluation.FieldQualified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualified(v)
		return nil
	case evaluation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case evaluation.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case evaluation.FieldCriteria:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case evaluation.FieldDisqualifyingFactor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisqualifyingFactor(v)
		return nil
	case evaluation.FieldCallbackRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallbackRequested(v)
		return nil
	case evaluation.FieldCallbackNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallbackNotes(v)
		return nil
	case evaluation.FieldCallbackAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallbackAt(v)
		return nil
	case evaluation.FieldNeedsHuman:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsHuman(v)
		return nil
	case evaluation.FieldNeedsHumanNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsHumanNotes(v)
		return nil
	case evaluation.FieldRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case evaluation.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case evaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, evaluation.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluation.FieldCriteria) {
		fields = append(fields, evaluation.FieldCriteria)
	}
	if m.FieldCleared(evaluation.FieldDisqualifyingFactor) {
		fields = append(fields, evaluation.FieldDisqualifyingFactor)
	}
	if m.FieldCleared(evaluation.FieldCallbackNotes) {
		fields = append(fields, evaluation.FieldCallbackNotes)
	}
	if m.FieldCleared(evaluation.FieldCallbackAt) {
		fields = append(fields, evaluation.FieldCallbackAt)
	}
	if m.FieldCleared(evaluation.FieldNeedsHumanNotes) {
		fields = append(fields, evaluation.FieldNeedsHumanNotes)
	}
	if m.FieldCleared(evaluation.FieldRawResponse) {
		fields = append(fields, evaluation.FieldRawResponse)
	}
	if m.FieldCleared(evaluation.FieldModel) {
		fields = append(fields, evaluation.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	switch name {
	case evaluation.FieldCriteria:
		m.ClearCriteria()
		return nil
	case evaluation.FieldDisqualifyingFactor:
		m.ClearDisqualifyingFactor()
		return nil
	case evaluation.FieldCallbackNotes:
		m.ClearCallbackNotes()
		return nil
	case evaluation.FieldCallbackAt:
		m.ClearCallbackAt()
		return nil
	case evaluation.FieldNeedsHumanNotes:
		m.ClearNeedsHumanNotes()
		return nil
	case evaluation.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	case evaluation.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case evaluation.FieldCallID:
		m.ResetCallID()
		return nil
	case evaluation.FieldOutcome:
		m.ResetOutcome()
		return nil
	case evaluation.FieldQualified:
		m.ResetQualified()
		return nil
	case evaluation.FieldScore:
		m.ResetScore()
		return nil
	case evaluation.FieldReasoning:
		m.ResetReasoning()
		return nil
	case evaluation.FieldCriteria:
		m.ResetCriteria()
		return nil
	case evaluation.FieldDisqualifyingFactor:
		m.ResetDisqualifyingFactor()
		return nil
	case evaluation.FieldCallbackRequested:
		m.ResetCallbackRequested()
		return nil
	case evaluation.FieldCallbackNotes:
		m.ResetCallbackNotes()
		return nil
	case evaluation.FieldCallbackAt:
		m.ResetCallbackAt()
		return nil
	case evaluation.FieldNeedsHuman:
		m.ResetNeedsHuman()
		return nil
	case evaluation.FieldNeedsHumanNotes:
		m.ResetNeedsHumanNotes()
		return nil
	case evaluation.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case evaluation.FieldModel:
		m.ResetModel()
		return nil
	case evaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.application != nil {
		edges = append(edges, evaluation.EdgeApplication)
	}
	if m.call != nil {
		edges = append(edges, evaluation.EdgeCall)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	case evaluation.EdgeCall:
		if id := m.call; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplication {
		edges = append(edges, evaluation.EdgeApplication)
	}
	if m.clearedcall {
		edges = append(edges, evaluation.EdgeCall)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeApplication:
		return m.clearedapplication
	case evaluation.EdgeCall:
		return m.clearedcall
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeApplication:
		m.ClearApplication()
		return nil
	case evaluation.EdgeCall:
		m.ClearCall()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeApplication:
		m.ResetApplication()
		return nil
	case evaluation.EdgeCall:
		m.ResetCall()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	channel            *message.Channel
	message_type       *message.MessageType
	status             *message.Status
	recipient          *string
	body               *string
	external_id        *string
	error_detail       *string
	sent_at            *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	application        *int
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*Message, error)
	predicates         []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *MessageMutation) SetApplicationID(i int) {
	m.application = &i
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *MessageMutation) ApplicationID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldApplicationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *MessageMutation) ResetApplicationID() {
	m.application = nil
}

// SetChannel sets the "channel" field.
func (m *MessageMutation) SetChannel(value message.Channel) {
	m.channel = &value
}

// Channel returns the value of the "channel" field in the mutation.
func (m *MessageMutation) Channel() (r message.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChannel(ctx context.Context) (v message.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *MessageMutation) ResetChannel() {
	m.channel = nil
}

// SetMessageType sets the "message_type" field.
func (m *MessageMutation) SetMessageType(mt message.MessageType) {
	m.message_type = &mt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *MessageMutation) MessageType() (r message.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageType(ctx context.Context) (v message.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *MessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetStatus sets the "status" field.
func (m *MessageMutation) SetStatus(value message.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageMutation) Status() (r message.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldStatus(ctx context.Context) (v message.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageMutation) ResetStatus() {
	m.status = nil
}

// SetRecipient sets the "recipient" field.
func (m *MessageMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *MessageMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *MessageMutation) ResetRecipient() {
	m.recipient = nil
}

// SetBody sets the "body" field.
func (m *MessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageMutation) ResetBody() {
	m.body = nil
}

// SetExternalID sets the "external_id" field.
func (m *MessageMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *MessageMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *MessageMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[message.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *MessageMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[message.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *MessageMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, message.FieldExternalID)
}

// SetErrorDetail sets the "error_detail" field.
func (m *MessageMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *MessageMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *MessageMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[message.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *MessageMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[message.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *MessageMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, message.FieldErrorDetail)
}

// SetSentAt sets the "sent_at" field.
func (m *MessageMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *MessageMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *MessageMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[message.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *MessageMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[message.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *MessageMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, message.FieldSentAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *MessageMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[message.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *MessageMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *MessageMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.application != nil {
		fields = append(fields, message.FieldApplicationID)
	}
	if m.channel != nil {
		fields = append(fields, message.FieldChannel)
	}
	if m.message_type != nil {
		fields = append(fields, message.FieldMessageType)
	}
	if m.status != nil {
		fields = append(fields, message.FieldStatus)
	}
	if m.recipient != nil {
		fields = append(fields, message.FieldRecipient)
	}
	if m.body != nil {
		fields = append(fields, message.FieldBody)
	}
	if m.external_id != nil {
		fields = append(fields, message.FieldExternalID)
	}
	if m.error_detail != nil {
		fields = append(fields, message.FieldErrorDetail)
	}
	if m.sent_at != nil {
		fields = append(fields, message.FieldSentAt)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldApplicationID:
		return m.ApplicationID()
	case message.FieldChannel:
		return m.Channel()
	case message.FieldMessageType:
		return m.MessageType()
	case message.FieldStatus:
		return m.Status()
	case message.FieldRecipient:
		return m.Recipient()
	case message.FieldBody:
		return m.Body()
	case message.FieldExternalID:
		return m.ExternalID()
	case message.FieldErrorDetail:
		return m.ErrorDetail()
	case message.FieldSentAt:
		return m.SentAt()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case message.FieldChannel:
		return m.OldChannel(ctx)
	case message.FieldMessageType:
		return m.OldMessageType(ctx)
	case message.FieldStatus:
		return m.OldStatus(ctx)
	case message.FieldRecipient:
		return m.OldRecipient(ctx)
	case message.FieldBody:
		return m.OldBody(ctx)
	case message.FieldExternalID:
		return m.OldExternalID(ctx)
	case message.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case message.FieldSentAt:
		return m.OldSentAt(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case message.FieldChannel:
		v, ok := value.(message.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case message.FieldMessageType:
		v, ok := value.(message.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case message.FieldStatus:
		v, ok := value.(message.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case message.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case message.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case message.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case message.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case message.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldExternalID) {
		fields = append(fields, message.FieldExternalID)
	}
	if m.FieldCleared(message.FieldErrorDetail) {
		fields = append(fields, message.FieldErrorDetail)
	}
	if m.FieldCleared(message.FieldSentAt) {
		fields = append(fields, message.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldExternalID:
		m.ClearExternalID()
		return nil
	case message.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	case message.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case message.FieldChannel:
		m.ResetChannel()
		return nil
	case message.FieldMessageType:
		m.ResetMessageType()
		return nil
	case message.FieldStatus:
		m.ResetStatus()
		return nil
	case message.FieldRecipient:
		m.ResetRecipient()
		return nil
	case message.FieldBody:
		m.ResetBody()
		return nil
	case message.FieldExternalID:
		m.ResetExternalID()
		return nil
	case message.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case message.FieldSentAt:
		m.ResetSentAt()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, message.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, message.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MessageTemplateMutation represents an operation that mutates the MessageTemplate nodes in the graph.
type MessageTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	message_type  *messagetemplate.MessageType
	channel       *messagetemplate.Channel
	subject       *string
	body          *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MessageTemplate, error)
	predicates    []predicate.MessageTemplate
}

var _ ent.Mutation = (*MessageTemplateMutation)(nil)

// messagetemplateOption allows management of the mutation configuration using functional options.
type messagetemplateOption func(*MessageTemplateMutation)

// newMessageTemplateMutation creates new mutation for the MessageTemplate entity.
func newMessageTemplateMutation(c config, op Op, opts ...messagetemplateOption) *MessageTemplateMutation {
	m := &MessageTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageTemplateID sets the ID field of the mutation.
func withMessageTemplateID(id int) messagetemplateOption {
	return func(m *MessageTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageTemplate
		)
		m.oldValue = func(ctx context.Context) (*MessageTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageTemplate sets the old MessageTemplate of the mutation.
func withMessageTemplate(node *MessageTemplate) messagetemplateOption {
	return func(m *MessageTemplateMutation) {
		m.oldValue = func(context.Context) (*MessageTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageTemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageTemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageType sets the "message_type" field.
func (m *MessageTemplateMutation) SetMessageType(mt messagetemplate.MessageType) {
	m.message_type = &mt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *MessageTemplateMutation) MessageType() (r messagetemplate.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldMessageType(ctx context.Context) (v messagetemplate.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *MessageTemplateMutation) ResetMessageType() {
	m.message_type = nil
}

// SetChannel sets the "channel" field.
func (m *MessageTemplateMutation) SetChannel(value messagetemplate.Channel) {
	m.channel = &value
}

// Channel returns the value of the "channel" field in the mutation.
func (m *MessageTemplateMutation) Channel() (r messagetemplate.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldChannel(ctx context.Context) (v messagetemplate.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *MessageTemplateMutation) ResetChannel() {
	m.channel = nil
}

// SetSubject sets the "subject" field.
func (m *MessageTemplateMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *MessageTemplateMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *MessageTemplateMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[messagetemplate.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *MessageTemplateMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[messagetemplate.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *MessageTemplateMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, messagetemplate.FieldSubject)
}

// SetBody sets the "body" field.
func (m *MessageTemplateMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageTemplateMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageTemplateMutation) ResetBody() {
	m.body = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MessageTemplateMutation builder.
func (m *MessageTemplateMutation) Where(ps ...predicate.MessageTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageTemplate).
func (m *MessageTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.message_type != nil {
		fields = append(fields, messagetemplate.FieldMessageType)
	}
	if m.channel != nil {
		fields = append(fields, messagetemplate.FieldChannel)
	}
	if m.subject != nil {
		fields = append(fields, messagetemplate.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, messagetemplate.FieldBody)
	}
	if m.updated_at != nil {
		fields = append(fields, messagetemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagetemplate.FieldMessageType:
		return m.MessageType()
	case messagetemplate.FieldChannel:
		return m.Channel()
	case messagetemplate.FieldSubject:
		return m.Subject()
	case messagetemplate.FieldBody:
		return m.Body()
	case messagetemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagetemplate.FieldMessageType:
		return m.OldMessageType(ctx)
	case messagetemplate.FieldChannel:
		return m.OldChannel(ctx)
	case messagetemplate.FieldSubject:
		return m.OldSubject(ctx)
	case messagetemplate.FieldBody:
		return m.OldBody(ctx)
	case messagetemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagetemplate.FieldMessageType:
		v, ok := value.(messagetemplate.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case messagetemplate.FieldChannel:
		v, ok := value.(messagetemplate.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case messagetemplate.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case messagetemplate.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case messagetemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messagetemplate.FieldSubject) {
		fields = append(fields, messagetemplate.FieldSubject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageTemplateMutation) ClearField(name string) error {
	switch name {
	case messagetemplate.FieldSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageTemplateMutation) ResetField(name string) error {
	switch name {
	case messagetemplate.FieldMessageType:
		m.ResetMessageType()
		return nil
	case messagetemplate.FieldChannel:
		m.ResetChannel()
		return nil
	case messagetemplate.FieldSubject:
		m.ResetSubject()
		return nil
	case messagetemplate.FieldBody:
		m.ResetBody()
		return nil
	case messagetemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MessageTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MessageTemplate edge %s", name)
}

// PositionMutation represents an operation that mutates the Position nodes in the graph.
type PositionMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	title                          *string
	description                    *string
	status                         *position.Status
	agent_prompt                   *string
	agent_first_message            *string
	qualification_criteria         *string
	calling_hours_start            *int
	addcalling_hours_start         *int
	calling_hours_end              *int
	addcalling_hours_end           *int
	call_retry_max                 *int
	addcall_retry_max              *int
	call_retry_interval_minutes    *int
	addcall_retry_interval_minutes *int
	follow_up_interval_hours       *int
	addfollow_up_interval_hours    *int
	rejected_cv_timeout_days       *int
	addrejected_cv_timeout_days    *int
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	applications                   map[int]struct{}
	removedapplications            map[int]struct{}
	clearedapplications            bool
	done                           bool
	oldValue                       func(context.Context) (*Position, error)
	predicates                     []predicate.Position
}

var _ ent.Mutation = (*PositionMutation)(nil)

// positionOption allows management of the mutation configuration using functional options.
type positionOption func(*PositionMutation)

// newPositionMutation creates new mutation for the Position entity.
func newPositionMutation(c config, op Op, opts ...positionOption) *PositionMutation {
	m := &PositionMutation{
		config:        c,
		op:            op,
		typ:           TypePosition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPositionID sets the ID field of the mutation.
func withPositionID(id int) positionOption {
	return func(m *PositionMutation) {
		var (
			err   error
			once  sync.Once
			value *Position
		)
		m.oldValue = func(ctx context.Context) (*Position, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Position.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPosition sets the old Position of the mutation.
func withPosition(node *Position) positionOption {
	return func(m *PositionMutation) {
		m.oldValue = func(context.Context) (*Position, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PositionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PositionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PositionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PositionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Position.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *PositionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PositionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PositionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *PositionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PositionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PositionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[position.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PositionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[position.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PositionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, position.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *PositionMutation) SetStatus(po position.Status) {
	m.status = &po
}

// Status returns the value of the "status" field in the mutation.
func (m *PositionMutation) Status() (r position.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldStatus(ctx context.Context) (v position.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PositionMutation) ResetStatus() {
	m.status = nil
}

// SetAgentPrompt sets the "agent_prompt" field.
func (m *PositionMutation) SetAgentPrompt(s string) {
	m.agent_prompt = &s
}

// AgentPrompt returns the value of the "agent_prompt" field in the mutation.
func (m *PositionMutation) AgentPrompt() (r string, exists bool) {
	v := m.agent_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentPrompt returns the old "agent_prompt" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldAgentPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentPrompt: %w", err)
	}
	return oldValue.AgentPrompt, nil
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (m *PositionMutation) ClearAgentPrompt() {
	m.agent_prompt = nil
	m.clearedFields[position.FieldAgentPrompt] = struct{}{}
}

// AgentPromptCleared returns if the "agent_prompt" field was cleared in this mutation.
func (m *PositionMutation) AgentPromptCleared() bool {
	_, ok := m.clearedFields[position.FieldAgentPrompt]
	return ok
}

// ResetAgentPrompt resets all changes to the "agent_prompt" field.
func (m *PositionMutation) ResetAgentPrompt() {
	m.agent_prompt = nil
	delete(m.clearedFields, position.FieldAgentPrompt)
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (m *PositionMutation) SetAgentFirstMessage(s string) {
	m.agent_first_message = &s
}

// AgentFirstMessage returns the value of the "agent_first_message" field in the mutation.
func (m *PositionMutation) AgentFirstMessage() (r string, exists bool) {
	v := m.agent_first_message
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentFirstMessage returns the old "agent_first_message" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldAgentFirstMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentFirstMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentFirstMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentFirstMessage: %w", err)
	}
	return oldValue.AgentFirstMessage, nil
}

// ClearAgentFirstMessage clears the value of the "agent_first_message" field.
func (m *PositionMutation) ClearAgentFirstMessage() {
	m.agent_first_message = nil
	m.clearedFields[position.FieldAgentFirstMessage] = struct{}{}
}

// AgentFirstMessageCleared returns if the "agent_first_message" field was cleared in this mutation.
func (m *PositionMutation) AgentFirstMessageCleared() bool {
	_, ok := m.clearedFields[position.FieldAgentFirstMessage]
	return ok
}

// ResetAgentFirstMessage resets all changes to the "agent_first_message" field.
func (m *PositionMutation) ResetAgentFirstMessage() {
	m.agent_first_message = nil
	delete(m.clearedFields, position.FieldAgentFirstMessage)
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (m *PositionMutation) SetQualificationCriteria(s string) {
	m.qualification_criteria = &s
}

// QualificationCriteria returns the value of the "qualification_criteria" field in the mutation.
func (m *PositionMutation) QualificationCriteria() (r string, exists bool) {
	v := m.qualification_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldQualificationCriteria returns the old "qualification_criteria" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldQualificationCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualificationCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualificationCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualificationCriteria: %w", err)
	}
	return oldValue.QualificationCriteria, nil
}

// ClearQualificationCriteria clears the value of the "qualification_criteria" field.
func (m *PositionMutation) ClearQualificationCriteria() {
	m.qualification_criteria = nil
	m.clearedFields[position.FieldQualificationCriteria] = struct{}{}
}

// QualificationCriteriaCleared returns if the "qualification_criteria" field was cleared in this mutation.
func (m *PositionMutation) QualificationCriteriaCleared() bool {
	_, ok := m.clearedFields[position.FieldQualificationCriteria]
	return ok
}

// ResetQualificationCriteria resets all changes to the "qualification_criteria" field.
func (m *PositionMutation) ResetQualificationCriteria() {
	m.qualification_criteria = nil
	delete(m.clearedFields, position.FieldQualificationCriteria)
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (m *PositionMutation) SetCallingHoursStart(i int) {
	m.calling_hours_start = &i
	m.addcalling_hours_start = nil
}

// CallingHoursStart returns the value of the "calling_hours_start" field in the mutation.
func (m *PositionMutation) CallingHoursStart() (r int, exists bool) {
	v := m.calling_hours_start
	if v == nil {
		return
	}
	return *v, true
}

// OldCallingHoursStart returns the old "calling_hours_start" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldCallingHoursStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallingHoursStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallingHoursStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallingHoursStart: %w", err)
	}
	return oldValue.CallingHoursStart, nil
}

// AddCallingHoursStart adds i to the "calling_hours_start" field.
func (m *PositionMutation) AddCallingHoursStart(i int) {
	if m.addcalling_hours_start != nil {
		*m.addcalling_hours_start += i
	} else {
		m.addcalling_hours_start = &i
	}
}

// AddedCallingHoursStart returns the value that was added to the "calling_hours_start" field in this mutation.
func (m *PositionMutation) AddedCallingHoursStart() (r int, exists bool) {
	v := m.addcalling_hours_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetCallingHoursStart resets all changes to the "calling_hours_start" field.
func (m *PositionMutation) ResetCallingHoursStart() {
	m.calling_hours_start = nil
	m.addcalling_hours_start = nil
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (m *PositionMutation) SetCallingHoursEnd(i int) {
	m.calling_hours_end = &i
	m.addcalling_hours_end = nil
}

// CallingHoursEnd returns the value of the "calling_hours_end" field in the mutation.
func (m *PositionMutation) CallingHoursEnd() (r int, exists bool) {
	v := m.calling_hours_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCallingHoursEnd returns the old "calling_hours_end" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldCallingHoursEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallingHoursEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallingHoursEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallingHoursEnd: %w", err)
	}
	return oldValue.CallingHoursEnd, nil
}

// AddCallingHoursEnd adds i to the "calling_hours_end" field.
func (m *PositionMutation) AddCallingHoursEnd(i int) {
	if m.addcalling_hours_end != nil {
		*m.addcalling_hours_end += i
	} else {
		m.addcalling_hours_end = &i
	}
}

// AddedCallingHoursEnd returns the value that was added to the "calling_hours_end" field in this mutation.
func (m *PositionMutation) AddedCallingHoursEnd() (r int, exists bool) {
	v := m.addcalling_hours_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetCallingHoursEnd resets all changes to the "calling_hours_end" field.
func (m *PositionMutation) ResetCallingHoursEnd() {
	m.calling_hours_end = nil
	m.addcalling_hours_end = nil
}

// SetCallRetryMax sets the "call_retry_max" field.
func (m *PositionMutation) SetCallRetryMax(i int) {
	m.call_retry_max = &i
	m.addcall_retry_max = nil
}

// CallRetryMax returns the value of the "call_retry_max" field in the mutation.
func (m *PositionMutation) CallRetryMax() (r int, exists bool) {
	v := m.call_retry_max
	if v == nil {
		return
	}
	return *v, true
}

// OldCallRetryMax returns the old "call_retry_max" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldCallRetryMax(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallRetryMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallRetryMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallRetryMax: %w", err)
	}
	return oldValue.CallRetryMax, nil
}

// AddCallRetryMax adds i to the "call_retry_max" field.
func (m *PositionMutation) AddCallRetryMax(i int) {
	if m.addcall_retry_max != nil {
		*m.addcall_retry_max += i
	} else {
		m.addcall_retry_max = &i
	}
}

// AddedCallRetryMax returns the value that was added to the "call_retry_max" field in this mutation.
func (m *PositionMutation) AddedCallRetryMax() (r int, exists bool) {
	v := m.addcall_retry_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetCallRetryMax resets all changes to the "call_retry_max" field.
func (m *PositionMutation) ResetCallRetryMax() {
	m.call_retry_max = nil
	m.addcall_retry_max = nil
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (m *PositionMutation) SetCallRetryIntervalMinutes(i int) {
	m.call_retry_interval_minutes = &i
	m.addcall_retry_interval_minutes = nil
}

// CallRetryIntervalMinutes returns the value of the "call_retry_interval_minutes" field in the mutation.
func (m *PositionMutation) CallRetryIntervalMinutes() (r int, exists bool) {
	v := m.call_retry_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCallRetryIntervalMinutes returns the old "call_retry_interval_minutes" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldCallRetryIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallRetryIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallRetryIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallRetryIntervalMinutes: %w", err)
	}
	return oldValue.CallRetryIntervalMinutes, nil
}

// AddCallRetryIntervalMinutes adds i to the "call_retry_interval_minutes" field.
func (m *PositionMutation) AddCallRetryIntervalMinutes(i int) {
	if m.addcall_retry_interval_minutes != nil {
		*m.addcall_retry_interval_minutes += i
	} else {
		m.addcall_retry_interval_minutes = &i
	}
}

// AddedCallRetryIntervalMinutes returns the value that was added to the "call_retry_interval_minutes" field in this mutation.
func (m *PositionMutation) AddedCallRetryIntervalMinutes() (r int, exists bool) {
	v := m.addcall_retry_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCallRetryIntervalMinutes resets all changes to the "call_retry_interval_minutes" field.
func (m *PositionMutation) ResetCallRetryIntervalMinutes() {
	m.call_retry_interval_minutes = nil
	m.addcall_retry_interval_minutes = nil
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (m *PositionMutation) SetFollowUpIntervalHours(i int) {
	m.follow_up_interval_hours = &i
	m.addfollow_up_interval_hours = nil
}

// FollowUpIntervalHours returns the value of the "follow_up_interval_hours" field in the mutation.
func (m *PositionMutation) FollowUpIntervalHours() (r int, exists bool) {
	v := m.follow_up_interval_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpIntervalHours returns the old "follow_up_interval_hours" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldFollowUpIntervalHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpIntervalHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpIntervalHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpIntervalHours: %w", err)
	}
	return oldValue.FollowUpIntervalHours, nil
}

// AddFollowUpIntervalHours adds i to the "follow_up_interval_hours" field.
func (m *PositionMutation) AddFollowUpIntervalHours(i int) {
	if m.addfollow_up_interval_hours != nil {
		*m.addfollow_up_interval_hours += i
	} else {
		m.addfollow_up_interval_hours = &i
	}
}

// AddedFollowUpIntervalHours returns the value that was added to the "follow_up_interval_hours" field in this mutation.
func (m *PositionMutation) AddedFollowUpIntervalHours() (r int, exists bool) {
	v := m.addfollow_up_interval_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetFollowUpIntervalHours resets all changes to the "follow_up_interval_hours" field.
func (m *PositionMutation) ResetFollowUpIntervalHours() {
	m.follow_up_interval_hours = nil
	m.addfollow_up_interval_hours = nil
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (m *PositionMutation) SetRejectedCvTimeoutDays(i int) {
	m.rejected_cv_timeout_days = &i
	m.addrejected_cv_timeout_days = nil
}

// RejectedCvTimeoutDays returns the value of the "rejected_cv_timeout_days" field in the mutation.
func (m *PositionMutation) RejectedCvTimeoutDays() (r int, exists bool) {
	v := m.rejected_cv_timeout_days
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedCvTimeoutDays returns the old "rejected_cv_timeout_days" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldRejectedCvTimeoutDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedCvTimeoutDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedCvTimeoutDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedCvTimeoutDays: %w", err)
	}
	return oldValue.RejectedCvTimeoutDays, nil
}

// AddRejectedCvTimeoutDays adds i to the "rejected_cv_timeout_days" field.
func (m *PositionMutation) AddRejectedCvTimeoutDays(i int) {
	if m.addrejected_cv_timeout_days != nil {
		*m.addrejected_cv_timeout_days += i
	} else {
		m.addrejected_cv_timeout_days = &i
	}
}

// AddedRejectedCvTimeoutDays returns the value that was added to the "rejected_cv_timeout_days" field in this mutation.
func (m *PositionMutation) AddedRejectedCvTimeoutDays() (r int, exists bool) {
	v := m.addrejected_cv_timeout_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejectedCvTimeoutDays resets all changes to the "rejected_cv_timeout_days" field.
func (m *PositionMutation) ResetRejectedCvTimeoutDays() {
	m.rejected_cv_timeout_days = nil
	m.addrejected_cv_timeout_days = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PositionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PositionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PositionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PositionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PositionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PositionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the Application entity by ids.
func (m *PositionMutation) AddApplicationIDs(ids ...int) {
	if m.applications == nil {
		m.applications = make(map[int]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the Application entity.
func (m *PositionMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the Application entity was cleared.
func (m *PositionMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the Application entity by IDs.
func (m *PositionMutation) RemoveApplicationIDs(ids ...int) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the Application entity.
func (m *PositionMutation) RemovedApplicationsIDs() (ids []int) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *PositionMutation) ApplicationsIDs() (ids []int) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *PositionMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the PositionMutation builder.
func (m *PositionMutation) Where(ps ...predicate.Position) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PositionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PositionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Position, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PositionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PositionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Position).
func (m *PositionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PositionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, position.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, position.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, position.FieldStatus)
	}
	if m.agent_prompt != nil {
		fields = append(fields, position.FieldAgentPrompt)
	}
	if m.agent_first_message != nil {
		fields = append(fields, position.FieldAgentFirstMessage)
	}
	if m.qualification_criteria != nil {
		fields = append(fields, position.FieldQualificationCriteria)
	}
	if m.calling_hours_start != nil {
		fields = append(fields, position.FieldCallingHoursStart)
	}
	if m.calling_hours_end != nil {
		fields = append(fields, position.FieldCallingHoursEnd)
	}
	if m.call_retry_max != nil {
		fields = append(fields, position.FieldCallRetryMax)
	}
	if m.call_retry_interval_minutes != nil {
		fields = append(fields, position.FieldCallRetryIntervalMinutes)
	}
	if m.follow_up_interval_hours != nil {
		fields = append(fields, position.FieldFollowUpIntervalHours)
	}
	if m.rejected_cv_timeout_days != nil {
		fields = append(fields, position.FieldRejectedCvTimeoutDays)
	}
	if m.created_at != nil {
		fields = append(fields, position.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, position.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PositionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case position.FieldTitle:
		return m.Title()
	case position.FieldDescription:
		return m.Description()
	case position.FieldStatus:
		return m.Status()
	case position.FieldAgentPrompt:
		return m.AgentPrompt()
	case position.FieldAgentFirstMessage:
		return m.AgentFirstMessage()
	case position.FieldQualificationCriteria:
		return m.QualificationCriteria()
	case position.FieldCallingHoursStart:
		return m.CallingHoursStart()
	case position.FieldCallingHoursEnd:
		return m.CallingHoursEnd()
	case position.FieldCallRetryMax:
		return m.CallRetryMax()
	case position.FieldCallRetryIntervalMinutes:
		return m.CallRetryIntervalMinutes()
	case position.FieldFollowUpIntervalHours:
		return m.FollowUpIntervalHours()
	case position.FieldRejectedCvTimeoutDays:
		return m.RejectedCvTimeoutDays()
	case position.FieldCreatedAt:
		return m.CreatedAt()
	case position.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PositionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case position.FieldTitle:
		return m.OldTitle(ctx)
	case position.FieldDescription:
		return m.OldDescription(ctx)
	case position.FieldStatus:
		return m.OldStatus(ctx)
	case position.FieldAgentPrompt:
		return m.OldAgentPrompt(ctx)
	case position.FieldAgentFirstMessage:
		return m.OldAgentFirstMessage(ctx)
	case position.FieldQualificationCriteria:
		return m.OldQualificationCriteria(ctx)
	case position.FieldCallingHoursStart:
		return m.OldCallingHoursStart(ctx)
	case position.FieldCallingHoursEnd:
		return m.OldCallingHoursEnd(ctx)
	case position.FieldCallRetryMax:
		return m.OldCallRetryMax(ctx)
	case position.FieldCallRetryIntervalMinutes:
		return m.OldCallRetryIntervalMinutes(ctx)
	case position.FieldFollowUpIntervalHours:
		return m.OldFollowUpIntervalHours(ctx)
	case position.FieldRejectedCvTimeoutDays:
		return m.OldRejectedCvTimeoutDays(ctx)
	case position.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case position.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Position field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PositionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case position.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case position.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case position.FieldStatus:
		v, ok := value.(position.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case position.FieldAgentPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentPrompt(v)
		return nil
	case position.FieldAgentFirstMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentFirstMessage(v)
		return nil
	case position.FieldQualificationCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualificationCriteria(v)
		return nil
	case position.FieldCallingHoursStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallingHoursStart(v)
		return nil
	case position.FieldCallingHoursEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallingHoursEnd(v)
		return nil
	case position.FieldCallRetryMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallRetryMax(v)
		return nil
	case position.FieldCallRetryIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallRetryIntervalMinutes(v)
		return nil
	case position.FieldFollowUpIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpIntervalHours(v)
		return nil
	case position.FieldRejectedCvTimeoutDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedCvTimeoutDays(v)
		return nil
	case position.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case position.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Position field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PositionMutation) AddedFields() []string {
	var fields []string
	if m.addcalling_hours_start != nil {
		fields = append(fields, position.FieldCallingHoursStart)
	}
	if m.addcalling_hours_end != nil {
		fields = append(fields, position.FieldCallingHoursEnd)
	}
	if m.addcall_retry_max != nil {
		fields = append(fields, position.FieldCallRetryMax)
	}
	if m.addcall_retry_interval_minutes != nil {
		fields = append(fields, position.FieldCallRetryIntervalMinutes)
	}
	if m.addfollow_up_interval_hours != nil {
		fields = append(fields, position.FieldFollowUpIntervalHours)
	}
	if m.addrejected_cv_timeout_days != nil {
		fields = append(fields, position.FieldRejectedCvTimeoutDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PositionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case position.FieldCallingHoursStart:
		return m.AddedCallingHoursStart()
	case position.FieldCallingHoursEnd:
		return m.AddedCallingHoursEnd()
	case position.FieldCallRetryMax:
		return m.AddedCallRetryMax()
	case position.FieldCallRetryIntervalMinutes:
		return m.AddedCallRetryIntervalMinutes()
	case position.FieldFollowUpIntervalHours:
		return m.AddedFollowUpIntervalHours()
	case position.FieldRejectedCvTimeoutDays:
		return m.AddedRejectedCvTimeoutDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PositionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case position.FieldCallingHoursStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallingHoursStart(v)
		return nil
	case position.FieldCallingHoursEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallingHoursEnd(v)
		return nil
	case position.FieldCallRetryMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallRetryMax(v)
		return nil
	case position.FieldCallRetryIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallRetryIntervalMinutes(v)
		return nil
	case position.FieldFollowUpIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFollowUpIntervalHours(v)
		return nil
	case position.FieldRejectedCvTimeoutDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejectedCvTimeoutDays(v)
		return nil
	}
	return fmt.Errorf("unknown Position numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PositionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(position.FieldDescription) {
		fields = append(fields, position.FieldDescription)
	}
	if m.FieldCleared(position.FieldAgentPrompt) {
		fields = append(fields, position.FieldAgentPrompt)
	}
	if m.FieldCleared(position.FieldAgentFirstMessage) {
		fields = append(fields, position.FieldAgentFirstMessage)
	}
	if m.FieldCleared(position.FieldQualificationCriteria) {
		fields = append(fields, position.FieldQualificationCriteria)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PositionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PositionMutation) ClearField(name string) error {
	switch name {
	case position.FieldDescription:
		m.ClearDescription()
		return nil
	case position.FieldAgentPrompt:
		m.ClearAgentPrompt()
		return nil
	case position.FieldAgentFirstMessage:
		m.ClearAgentFirstMessage()
		return nil
	case position.FieldQualificationCriteria:
		m.ClearQualificationCriteria()
		return nil
	}
	return fmt.Errorf("unknown Position nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PositionMutation) ResetField(name string) error {
	switch name {
	case position.FieldTitle:
		m.ResetTitle()
		return nil
	case position.FieldDescription:
		m.ResetDescription()
		return nil
	case position.FieldStatus:
		m.ResetStatus()
		return nil
	case position.FieldAgentPrompt:
		m.ResetAgentPrompt()
		return nil
	case position.FieldAgentFirstMessage:
		m.ResetAgentFirstMessage()
		return nil
	case position.FieldQualificationCriteria:
		m.ResetQualificationCriteria()
		return nil
	case position.FieldCallingHoursStart:
		m.ResetCallingHoursStart()
		return nil
	case position.FieldCallingHoursEnd:
		m.ResetCallingHoursEnd()
		return nil
	case position.FieldCallRetryMax:
		m.ResetCallRetryMax()
		return nil
	case position.FieldCallRetryIntervalMinutes:
		m.ResetCallRetryIntervalMinutes()
		return nil
	case position.FieldFollowUpIntervalHours:
		m.ResetFollowUpIntervalHours()
		return nil
	case position.FieldRejectedCvTimeoutDays:
		m.ResetRejectedCvTimeoutDays()
		return nil
	case position.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case position.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Position field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PositionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applications != nil {
		edges = append(edges, position.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PositionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case position.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PositionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedapplications != nil {
		edges = append(edges, position.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PositionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case position.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PositionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplications {
		edges = append(edges, position.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PositionMutation) EdgeCleared(name string) bool {
	switch name {
	case position.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PositionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Position unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PositionMutation) ResetEdge(name string) error {
	switch name {
	case position.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown Position edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldKey:
		return m.Key()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// StatusChangeMutation represents an operation that mutates the StatusChange nodes in the graph.
type StatusChangeMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	from_status        *string
	to_status          *string
	note               *string
	changed_by         *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	application        *int
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*StatusChange, error)
	predicates         []predicate.StatusChange
}

var _ ent.Mutation = (*StatusChangeMutation)(nil)

// statuschangeOption allows management of the mutation configuration using functional options.
type statuschangeOption func(*StatusChangeMutation)

// newStatusChangeMutation creates new mutation for the StatusChange entity.
func newStatusChangeMutation(c config, op Op, opts ...statuschangeOption) *StatusChangeMutation {
	m := &StatusChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusChangeID sets the ID field of the mutation.
func withStatusChangeID(id int) statuschangeOption {
	return func(m *StatusChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusChange
		)
		m.oldValue = func(ctx context.Context) (*StatusChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusChange sets the old StatusChange of the mutation.
func withStatusChange(node *StatusChange) statuschangeOption {
	return func(m *StatusChangeMutation) {
		m.oldValue = func(context.Context) (*StatusChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusChangeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusChangeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *StatusChangeMutation) SetApplicationID(i int) {
	m.application = &i
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *StatusChangeMutation) ApplicationID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldApplicationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *StatusChangeMutation) ResetApplicationID() {
	m.application = nil
}

// SetFromStatus sets the "from_status" field.
func (m *StatusChangeMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *StatusChangeMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *StatusChangeMutation) ResetFromStatus() {
	m.from_status = nil
}

// SetToStatus sets the "to_status" field.
func (m *StatusChangeMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *StatusChangeMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *StatusChangeMutation) ResetToStatus() {
	m.to_status = nil
}

// SetNote sets the "note" field.
func (m *StatusChangeMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *StatusChangeMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *StatusChangeMutation) ClearNote() {
	m.note = nil
	m.clearedFields[statuschange.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *StatusChangeMutation) NoteCleared() bool {
	_, ok := m.clearedFields[statuschange.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *StatusChangeMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, statuschange.FieldNote)
}

// SetChangedBy sets the "changed_by" field.
func (m *StatusChangeMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *StatusChangeMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldChangedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *StatusChangeMutation) ResetChangedBy() {
	m.changed_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StatusChangeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StatusChangeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StatusChangeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *StatusChangeMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[statuschange.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *StatusChangeMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *StatusChangeMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *StatusChangeMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the StatusChangeMutation builder.
func (m *StatusChangeMutation) Where(ps ...predicate.StatusChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusChange).
func (m *StatusChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusChangeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.application != nil {
		fields = append(fields, statuschange.FieldApplicationID)
	}
	if m.from_status != nil {
		fields = append(fields, statuschange.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, statuschange.FieldToStatus)
	}
	if m.note != nil {
		fields = append(fields, statuschange.FieldNote)
	}
	if m.changed_by != nil {
		fields = append(fields, statuschange.FieldChangedBy)
	}
	if m.created_at != nil {
		fields = append(fields, statuschange.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statuschange.FieldApplicationID:
		return m.ApplicationID()
	case statuschange.FieldFromStatus:
		return m.FromStatus()
	case statuschange.FieldToStatus:
		return m.ToStatus()
	case statuschange.FieldNote:
		return m.Note()
	case statuschange.FieldChangedBy:
		return m.ChangedBy()
	case statuschange.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statuschange.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case statuschange.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case statuschange.FieldToStatus:
		return m.OldToStatus(ctx)
	case statuschange.FieldNote:
		return m.OldNote(ctx)
	case statuschange.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case statuschange.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StatusChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statuschange.FieldApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case statuschange.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case statuschange.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case statuschange.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case statuschange.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case statuschange.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StatusChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusChangeMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusChangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StatusChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statuschange.FieldNote) {
		fields = append(fields, statuschange.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusChangeMutation) ClearField(name string) error {
	switch name {
	case statuschange.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown StatusChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusChangeMutation) ResetField(name string) error {
	switch name {
	case statuschange.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case statuschange.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case statuschange.FieldToStatus:
		m.ResetToStatus()
		return nil
	case statuschange.FieldNote:
		m.ResetNote()
		return nil
	case statuschange.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case statuschange.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StatusChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, statuschange.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusChangeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case statuschange.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, statuschange.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusChangeMutation) EdgeCleared(name string) bool {
	switch name {
	case statuschange.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusChangeMutation) ClearEdge(name string) error {
	switch name {
	case statuschange.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown StatusChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusChangeMutation) ResetEdge(name string) error {
	switch name {
	case statuschange.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown StatusChange edge %s", name)
}

// UnmatchedInboundMutation represents an operation that mutates the UnmatchedInbound nodes in the graph.
type UnmatchedInboundMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	channel                    *unmatchedinbound.Channel
	sender                     *string
	subject                    *string
	body_snippet               *string
	file_path                  *string
	original_filename          *string
	raw_payload                *map[string]interface{}
	resolved                   *bool
	resolved_application_id    *int
	addresolved_application_id *int
	created_at                 *time.Time
	resolved_at                *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*UnmatchedInbound, error)
	predicates                 []predicate.UnmatchedInbound
}

var _ ent.Mutation = (*UnmatchedInboundMutation)(nil)

// unmatchedinboundOption allows management of the mutation configuration using functional options.
type unmatchedinboundOption func(*UnmatchedInboundMutation)

// newUnmatchedInboundMutation creates new mutation for the UnmatchedInbound entity.
func newUnmatchedInboundMutation(c config, op Op, opts ...unmatchedinboundOption) *UnmatchedInboundMutation {
	m := &UnmatchedInboundMutation{
		config:        c,
		op:            op,
		typ:           TypeUnmatchedInbound,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnmatchedInboundID sets the ID field of the mutation.
func withUnmatchedInboundID(id int) unmatchedinboundOption {
	return func(m *UnmatchedInboundMutation) {
		var (
			err   error
			once  sync.Once
			value *UnmatchedInbound
		)
		m.oldValue = func(ctx context.Context) (*UnmatchedInbound, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnmatchedInbound.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnmatchedInbound sets the old UnmatchedInbound of the mutation.
func withUnmatchedInbound(node *UnmatchedInbound) unmatchedinboundOption {
	return func(m *UnmatchedInboundMutation) {
		m.oldValue = func(context.Context) (*UnmatchedInbound, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnmatchedInboundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnmatchedInboundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnmatchedInboundMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnmatchedInboundMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnmatchedInbound.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *UnmatchedInboundMutation) SetChannel(u unmatchedinbound.Channel) {
	m.channel = &u
}

// Channel returns the value of the "channel" field in the mutation.
func (m *UnmatchedInboundMutation) Channel() (r unmatchedinbound.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldChannel(ctx context.Context) (v unmatchedinbound.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *UnmatchedInboundMutation) ResetChannel() {
	m.channel = nil
}

// SetSender sets the "sender" field.
func (m *UnmatchedInboundMutation) SetSender(s string) {
	m.sender = &s
}

// Sender returns the value of the "sender" field in the mutation.
func (m *UnmatchedInboundMutation) Sender() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *UnmatchedInboundMutation) ResetSender() {
	m.sender = nil
}

// SetSubject sets the "subject" field.
func (m *UnmatchedInboundMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *UnmatchedInboundMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *UnmatchedInboundMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[unmatchedinbound.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *UnmatchedInboundMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, unmatchedinbound.FieldSubject)
}

// SetBodySnippet sets the "body_snippet" field.
func (m *UnmatchedInboundMutation) SetBodySnippet(s string) {
	m.body_snippet = &s
}

// BodySnippet returns the value of the "body_snippet" field in the mutation.
func (m *UnmatchedInboundMutation) BodySnippet() (r string, exists bool) {
	v := m.body_snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldBodySnippet returns the old "body_snippet" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldBodySnippet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodySnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodySnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodySnippet: %w", err)
	}
	return oldValue.BodySnippet, nil
}

// ClearBodySnippet clears the value of the "body_snippet" field.
func (m *UnmatchedInboundMutation) ClearBodySnippet() {
	m.body_snippet = nil
	m.clearedFields[unmatchedinbound.FieldBodySnippet] = struct{}{}
}

// BodySnippetCleared returns if the "body_snippet" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) BodySnippetCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldBodySnippet]
	return ok
}

// ResetBodySnippet resets all changes to the "body_snippet" field.
func (m *UnmatchedInboundMutation) ResetBodySnippet() {
	m.body_snippet = nil
	delete(m.clearedFields, unmatchedinbound.FieldBodySnippet)
}

// SetFilePath sets the "file_path" field.
func (m *UnmatchedInboundMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *UnmatchedInboundMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *UnmatchedInboundMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[unmatchedinbound.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *UnmatchedInboundMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, unmatchedinbound.FieldFilePath)
}

// SetOriginalFilename sets the "original_filename" field.
func (m *UnmatchedInboundMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *UnmatchedInboundMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (m *UnmatchedInboundMutation) ClearOriginalFilename() {
	m.original_filename = nil
	m.clearedFields[unmatchedinbound.FieldOriginalFilename] = struct{}{}
}

// OriginalFilenameCleared returns if the "original_filename" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) OriginalFilenameCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldOriginalFilename]
	return ok
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *UnmatchedInboundMutation) ResetOriginalFilename() {
	m.original_filename = nil
	delete(m.clearedFields, unmatchedinbound.FieldOriginalFilename)
}

// SetRawPayload sets the "raw_payload" field.
func (m *UnmatchedInboundMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *UnmatchedInboundMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *UnmatchedInboundMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[unmatchedinbound.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *UnmatchedInboundMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, unmatchedinbound.FieldRawPayload)
}

// SetResolved sets the "resolved" field.
func (m *UnmatchedInboundMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *UnmatchedInboundMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *UnmatchedInboundMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (m *UnmatchedInboundMutation) SetResolvedApplicationID(i int) {
	m.resolved_application_id = &i
	m.addresolved_application_id = nil
}

// ResolvedApplicationID returns the value of the "resolved_application_id" field in the mutation.
func (m *UnmatchedInboundMutation) ResolvedApplicationID() (r int, exists bool) {
	v := m.resolved_application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedApplicationID returns the old "resolved_application_id" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldResolvedApplicationID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedApplicationID: %w", err)
	}
	return oldValue.ResolvedApplicationID, nil
}

// AddResolvedApplicationID adds i to the "resolved_application_id" field.
func (m *UnmatchedInboundMutation) AddResolvedApplicationID(i int) {
	if m.addresolved_application_id != nil {
		*m.addresolved_application_id += i
	} else {
		m.addresolved_application_id = &i
	}
}

// AddedResolvedApplicationID returns the value that was added to the "resolved_application_id" field in this mutation.
func (m *UnmatchedInboundMutation) AddedResolvedApplicationID() (r int, exists bool) {
	v := m.addresolved_application_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearResolvedApplicationID clears the value of the "resolved_application_id" field.
func (m *UnmatchedInboundMutation) ClearResolvedApplicationID() {
	m.resolved_application_id = nil
	m.addresolved_application_id = nil
	m.clearedFields[unmatchedinbound.FieldResolvedApplicationID] = struct{}{}
}

// ResolvedApplicationIDCleared returns if the "resolved_application_id" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) ResolvedApplicationIDCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldResolvedApplicationID]
	return ok
}

// ResetResolvedApplicationID resets all changes to the "resolved_application_id" field.
func (m *UnmatchedInboundMutation) ResetResolvedApplicationID() {
	m.resolved_application_id = nil
	m.addresolved_application_id = nil
	delete(m.clearedFields, unmatchedinbound.FieldResolvedApplicationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *UnmatchedInboundMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnmatchedInboundMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnmatchedInboundMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *UnmatchedInboundMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *UnmatchedInboundMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the UnmatchedInbound entity.
// If the UnmatchedInbound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnmatchedInboundMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *UnmatchedInboundMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[unmatchedinbound.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *UnmatchedInboundMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[unmatchedinbound.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *UnmatchedInboundMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, unmatchedinbound.FieldResolvedAt)
}

// Where appends a list predicates to the UnmatchedInboundMutation builder.
func (m *UnmatchedInboundMutation) Where(ps ...predicate.UnmatchedInbound) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnmatchedInboundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnmatchedInboundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnmatchedInbound, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnmatchedInboundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnmatchedInboundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnmatchedInbound).
func (m *UnmatchedInboundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnmatchedInboundMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.channel != nil {
		fields = append(fields, unmatchedinbound.FieldChannel)
	}
	if m.sender != nil {
		fields = append(fields, unmatchedinbound.FieldSender)
	}
	if m.subject != nil {
		fields = append(fields, unmatchedinbound.FieldSubject)
	}
	if m.body_snippet != nil {
		fields = append(fields, unmatchedinbound.FieldBodySnippet)
	}
	if m.file_path != nil {
		fields = append(fields, unmatchedinbound.FieldFilePath)
	}
	if m.original_filename != nil {
		fields = append(fields, unmatchedinbound.FieldOriginalFilename)
	}
	if m.raw_payload != nil {
		fields = append(fields, unmatchedinbound.FieldRawPayload)
	}
	if m.resolved != nil {
		fields = append(fields, unmatchedinbound.FieldResolved)
	}
	if m.resolved_application_id != nil {
		fields = append(fields, unmatchedinbound.FieldResolvedApplicationID)
	}
	if m.created_at != nil {
		fields = append(fields, unmatchedinbound.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, unmatchedinbound.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnmatchedInboundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unmatchedinbound.FieldChannel:
		return m.Channel()
	case unmatchedinbound.FieldSender:
		return m.Sender()
	case unmatchedinbound.FieldSubject:
		return m.Subject()
	case unmatchedinbound.FieldBodySnippet:
		return m.BodySnippet()
	case unmatchedinbound.FieldFilePath:
		return m.FilePath()
	case unmatchedinbound.FieldOriginalFilename:
		return m.OriginalFilename()
	case unmatchedinbound.FieldRawPayload:
		return m.RawPayload()
	case unmatchedinbound.FieldResolved:
		return m.Resolved()
	case unmatchedinbound.FieldResolvedApplicationID:
		return m.ResolvedApplicationID()
	case unmatchedinbound.FieldCreatedAt:
		return m.CreatedAt()
	case unmatchedinbound.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnmatchedInboundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unmatchedinbound.FieldChannel:
		return m.OldChannel(ctx)
	case unmatchedinbound.FieldSender:
		return m.OldSender(ctx)
	case unmatchedinbound.FieldSubject:
		return m.OldSubject(ctx)
	case unmatchedinbound.FieldBodySnippet:
		return m.OldBodySnippet(ctx)
	case unmatchedinbound.FieldFilePath:
		return m.OldFilePath(ctx)
	case unmatchedinbound.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case unmatchedinbound.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case unmatchedinbound.FieldResolved:
		return m.OldResolved(ctx)
	case unmatchedinbound.FieldResolvedApplicationID:
		return m.OldResolvedApplicationID(ctx)
	case unmatchedinbound.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case unmatchedinbound.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnmatchedInbound field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnmatchedInboundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unmatchedinbound.FieldChannel:
		v, ok := value.(unmatchedinbound.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case unmatchedinbound.FieldSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case unmatchedinbound.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case unmatchedinbound.FieldBodySnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodySnippet(v)
		return nil
	case unmatchedinbound.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case unmatchedinbound.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case unmatchedinbound.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case unmatchedinbound.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case unmatchedinbound.FieldResolvedApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedApplicationID(v)
		return nil
	case unmatchedinbound.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case unmatchedinbound.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnmatchedInbound field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnmatchedInboundMutation) AddedFields() []string {
	var fields []string
	if m.addresolved_application_id != nil {
		fields = append(fields, unmatchedinbound.FieldResolvedApplicationID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnmatchedInboundMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unmatchedinbound.FieldResolvedApplicationID:
		return m.AddedResolvedApplicationID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnmatchedInboundMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unmatchedinbound.FieldResolvedApplicationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResolvedApplicationID(v)
		return nil
	}
	return fmt.Errorf("unknown UnmatchedInbound numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnmatchedInboundMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unmatchedinbound.FieldSubject) {
		fields = append(fields, unmatchedinbound.FieldSubject)
	}
	if m.FieldCleared(unmatchedinbound.FieldBodySnippet) {
		fields = append(fields, unmatchedinbound.FieldBodySnippet)
	}
	if m.FieldCleared(unmatchedinbound.FieldFilePath) {
		fields = append(fields, unmatchedinbound.FieldFilePath)
	}
	if m.FieldCleared(unmatchedinbound.FieldOriginalFilename) {
		fields = append(fields, unmatchedinbound.FieldOriginalFilename)
	}
	if m.FieldCleared(unmatchedinbound.FieldRawPayload) {
		fields = append(fields, unmatchedinbound.FieldRawPayload)
	}
	if m.FieldCleared(unmatchedinbound.FieldResolvedApplicationID) {
		fields = append(fields, unmatchedinbound.FieldResolvedApplicationID)
	}
	if m.FieldCleared(unmatchedinbound.FieldResolvedAt) {
		fields = append(fields, unmatchedinbound.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnmatchedInboundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnmatchedInboundMutation) ClearField(name string) error {
	switch name {
	case unmatchedinbound.FieldSubject:
		m.ClearSubject()
		return nil
	case unmatchedinbound.FieldBodySnippet:
		m.ClearBodySnippet()
		return nil
	case unmatchedinbound.FieldFilePath:
		m.ClearFilePath()
		return nil
	case unmatchedinbound.FieldOriginalFilename:
		m.ClearOriginalFilename()
		return nil
	case unmatchedinbound.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	case unmatchedinbound.FieldResolvedApplicationID:
		m.ClearResolvedApplicationID()
		return nil
	case unmatchedinbound.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown UnmatchedInbound nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnmatchedInboundMutation) ResetField(name string) error {
	switch name {
	case unmatchedinbound.FieldChannel:
		m.ResetChannel()
		return nil
	case unmatchedinbound.FieldSender:
		m.ResetSender()
		return nil
	case unmatchedinbound.FieldSubject:
		m.ResetSubject()
		return nil
	case unmatchedinbound.FieldBodySnippet:
		m.ResetBodySnippet()
		return nil
	case unmatchedinbound.FieldFilePath:
		m.ResetFilePath()
		return nil
	case unmatchedinbound.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case unmatchedinbound.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case unmatchedinbound.FieldResolved:
		m.ResetResolved()
		return nil
	case unmatchedinbound.FieldResolvedApplicationID:
		m.ResetResolvedApplicationID()
		return nil
	case unmatchedinbound.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case unmatchedinbound.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown UnmatchedInbound field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnmatchedInboundMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnmatchedInboundMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnmatchedInboundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnmatchedInboundMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnmatchedInboundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnmatchedInboundMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnmatchedInboundMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnmatchedInbound unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnmatchedInboundMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnmatchedInbound edge %s", name)
}
