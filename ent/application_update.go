// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/ent/predicate"
	"github.com/recruitflow/recruitflow/ent/statuschange"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *ApplicationUpdate) SetCandidateID(v int) *ApplicationUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCandidateID(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetPositionID sets the "position_id" field.
func (_u *ApplicationUpdate) SetPositionID(v int) *ApplicationUpdate {
	_u.mutation.SetPositionID(v)
	return _u
}

// SetNillablePositionID sets the "position_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillablePositionID(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetPositionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v application.Status) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *application.Status) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualified sets the "qualified" field.
func (_u *ApplicationUpdate) SetQualified(v bool) *ApplicationUpdate {
	_u.mutation.SetQualified(v)
	return _u
}

// SetNillableQualified sets the "qualified" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableQualified(v *bool) *ApplicationUpdate {
	if v != nil {
		_u.SetQualified(*v)
	}
	return _u
}

// ClearQualified clears the value of the "qualified" field.
func (_u *ApplicationUpdate) ClearQualified() *ApplicationUpdate {
	_u.mutation.ClearQualified()
	return _u
}

// SetScore sets the "score" field.
func (_u *ApplicationUpdate) SetScore(v float64) *ApplicationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableScore(v *float64) *ApplicationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ApplicationUpdate) AddScore(v float64) *ApplicationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ApplicationUpdate) ClearScore() *ApplicationUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetScoreNotes sets the "score_notes" field.
func (_u *ApplicationUpdate) SetScoreNotes(v string) *ApplicationUpdate {
	_u.mutation.SetScoreNotes(v)
	return _u
}

// SetNillableScoreNotes sets the "score_notes" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableScoreNotes(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetScoreNotes(*v)
	}
	return _u
}

// ClearScoreNotes clears the value of the "score_notes" field.
func (_u *ApplicationUpdate) ClearScoreNotes() *ApplicationUpdate {
	_u.mutation.ClearScoreNotes()
	return _u
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (_u *ApplicationUpdate) SetCvReceivedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetCvReceivedAt(v)
	return _u
}

// SetNillableCvReceivedAt sets the "cv_received_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCvReceivedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetCvReceivedAt(*v)
	}
	return _u
}

// ClearCvReceivedAt clears the value of the "cv_received_at" field.
func (_u *ApplicationUpdate) ClearCvReceivedAt() *ApplicationUpdate {
	_u.mutation.ClearCvReceivedAt()
	return _u
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (_u *ApplicationUpdate) SetCallbackScheduledAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetCallbackScheduledAt(v)
	return _u
}

// SetNillableCallbackScheduledAt sets the "callback_scheduled_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCallbackScheduledAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetCallbackScheduledAt(*v)
	}
	return _u
}

// ClearCallbackScheduledAt clears the value of the "callback_scheduled_at" field.
func (_u *ApplicationUpdate) ClearCallbackScheduledAt() *ApplicationUpdate {
	_u.mutation.ClearCallbackScheduledAt()
	return _u
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (_u *ApplicationUpdate) SetNeedsHumanReason(v string) *ApplicationUpdate {
	_u.mutation.SetNeedsHumanReason(v)
	return _u
}

// SetNillableNeedsHumanReason sets the "needs_human_reason" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableNeedsHumanReason(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetNeedsHumanReason(*v)
	}
	return _u
}

// ClearNeedsHumanReason clears the value of the "needs_human_reason" field.
func (_u *ApplicationUpdate) ClearNeedsHumanReason() *ApplicationUpdate {
	_u.mutation.ClearNeedsHumanReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *ApplicationUpdate) SetCandidate(v *Candidate) *ApplicationUpdate {
	return _u.SetCandidateID(v.ID)
}

// SetPosition sets the "position" edge to the Position entity.
func (_u *ApplicationUpdate) SetPosition(v *Position) *ApplicationUpdate {
	return _u.SetPositionID(v.ID)
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by IDs.
func (_u *ApplicationUpdate) AddStatusChangeIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddStatusChangeIDs(ids...)
	return _u
}

// AddStatusChanges adds the "status_changes" edges to the StatusChange entity.
func (_u *ApplicationUpdate) AddStatusChanges(v ...*StatusChange) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusChangeIDs(ids...)
}

// AddCallIDs adds the "calls" edge to the Call entity by IDs.
func (_u *ApplicationUpdate) AddCallIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddCallIDs(ids...)
	return _u
}

// AddCalls adds the "calls" edges to the Call entity.
func (_u *ApplicationUpdate) AddCalls(v ...*Call) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCallIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ApplicationUpdate) AddEvaluationIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ApplicationUpdate) AddEvaluations(v ...*Evaluation) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by IDs.
func (_u *ApplicationUpdate) AddCvUploadIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddCvUploadIDs(ids...)
	return _u
}

// AddCvUploads adds the "cv_uploads" edges to the CVUpload entity.
func (_u *ApplicationUpdate) AddCvUploads(v ...*CVUpload) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCvUploadIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ApplicationUpdate) AddMessageIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ApplicationUpdate) AddMessages(v ...*Message) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by IDs.
func (_u *ApplicationUpdate) AddReplyIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the CandidateReply entity.
func (_u *ApplicationUpdate) AddReplies(v ...*CandidateReply) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *ApplicationUpdate) ClearCandidate() *ApplicationUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// ClearPosition clears the "position" edge to the Position entity.
func (_u *ApplicationUpdate) ClearPosition() *ApplicationUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// ClearStatusChanges clears all "status_changes" edges to the StatusChange entity.
func (_u *ApplicationUpdate) ClearStatusChanges() *ApplicationUpdate {
	_u.mutation.ClearStatusChanges()
	return _u
}

// RemoveStatusChangeIDs removes the "status_changes" edge to StatusChange entities by IDs.
func (_u *ApplicationUpdate) RemoveStatusChangeIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveStatusChangeIDs(ids...)
	return _u
}

// RemoveStatusChanges removes "status_changes" edges to StatusChange entities.
func (_u *ApplicationUpdate) RemoveStatusChanges(v ...*StatusChange) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusChangeIDs(ids...)
}

// ClearCalls clears all "calls" edges to the Call entity.
func (_u *ApplicationUpdate) ClearCalls() *ApplicationUpdate {
	_u.mutation.ClearCalls()
	return _u
}

// RemoveCallIDs removes the "calls" edge to Call entities by IDs.
func (_u *ApplicationUpdate) RemoveCallIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveCallIDs(ids...)
	return _u
}

// RemoveCalls removes "calls" edges to Call entities.
func (_u *ApplicationUpdate) RemoveCalls(v ...*Call) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCallIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ApplicationUpdate) ClearEvaluations() *ApplicationUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ApplicationUpdate) RemoveEvaluationIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ApplicationUpdate) RemoveEvaluations(v ...*Evaluation) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearCvUploads clears all "cv_uploads" edges to the CVUpload entity.
func (_u *ApplicationUpdate) ClearCvUploads() *ApplicationUpdate {
	_u.mutation.ClearCvUploads()
	return _u
}

// RemoveCvUploadIDs removes the "cv_uploads" edge to CVUpload entities by IDs.
func (_u *ApplicationUpdate) RemoveCvUploadIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveCvUploadIDs(ids...)
	return _u
}

// RemoveCvUploads removes "cv_uploads" edges to CVUpload entities.
func (_u *ApplicationUpdate) RemoveCvUploads(v ...*CVUpload) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCvUploadIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ApplicationUpdate) ClearMessages() *ApplicationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ApplicationUpdate) RemoveMessageIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ApplicationUpdate) RemoveMessages(v ...*Message) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearReplies clears all "replies" edges to the CandidateReply entity.
func (_u *ApplicationUpdate) ClearReplies() *ApplicationUpdate {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to CandidateReply entities by IDs.
func (_u *ApplicationUpdate) RemoveReplyIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to CandidateReply entities.
func (_u *ApplicationUpdate) RemoveReplies(v ...*CandidateReply) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.candidate"`)
	}
	if _u.mutation.PositionCleared() && len(_u.mutation.PositionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.position"`)
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Qualified(); ok {
		_spec.SetField(application.FieldQualified, field.TypeBool, value)
	}
	if _u.mutation.QualifiedCleared() {
		_spec.ClearField(application.FieldQualified, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(application.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(application.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(application.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScoreNotes(); ok {
		_spec.SetField(application.FieldScoreNotes, field.TypeString, value)
	}
	if _u.mutation.ScoreNotesCleared() {
		_spec.ClearField(application.FieldScoreNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CvReceivedAt(); ok {
		_spec.SetField(application.FieldCvReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.CvReceivedAtCleared() {
		_spec.ClearField(application.FieldCvReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CallbackScheduledAt(); ok {
		_spec.SetField(application.FieldCallbackScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.CallbackScheduledAtCleared() {
		_spec.ClearField(application.FieldCallbackScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NeedsHumanReason(); ok {
		_spec.SetField(application.FieldNeedsHumanReason, field.TypeString, value)
	}
	if _u.mutation.NeedsHumanReasonCleared() {
		_spec.ClearField(application.FieldNeedsHumanReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CandidateTable,
			Columns: []string{application.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CandidateTable,
			Columns: []string{application.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PositionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.PositionTable,
			Columns: []string{application.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PositionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.PositionTable,
			Columns: []string{application.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusChangesIDs(); len(nodes) > 0 && !_u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCallsIDs(); len(nodes) > 0 && !_u.mutation.CallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCvUploadsIDs(); len(nodes) > 0 && !_u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CvUploadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetCandidateID sets the "candidate_id" field.
func (_u *ApplicationUpdateOne) SetCandidateID(v int) *ApplicationUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCandidateID(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetPositionID sets the "position_id" field.
func (_u *ApplicationUpdateOne) SetPositionID(v int) *ApplicationUpdateOne {
	_u.mutation.SetPositionID(v)
	return _u
}

// SetNillablePositionID sets the "position_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillablePositionID(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetPositionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v application.Status) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *application.Status) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualified sets the "qualified" field.
func (_u *ApplicationUpdateOne) SetQualified(v bool) *ApplicationUpdateOne {
	_u.mutation.SetQualified(v)
	return _u
}

// SetNillableQualified sets the "qualified" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableQualified(v *bool) *ApplicationUpdateOne {
	if v != nil {
		_u.SetQualified(*v)
	}
	return _u
}

// ClearQualified clears the value of the "qualified" field.
func (_u *ApplicationUpdateOne) ClearQualified() *ApplicationUpdateOne {
	_u.mutation.ClearQualified()
	return _u
}

// SetScore sets the "score" field.
func (_u *ApplicationUpdateOne) SetScore(v float64) *ApplicationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableScore(v *float64) *ApplicationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ApplicationUpdateOne) AddScore(v float64) *ApplicationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ApplicationUpdateOne) ClearScore() *ApplicationUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetScoreNotes sets the "score_notes" field.
func (_u *ApplicationUpdateOne) SetScoreNotes(v string) *ApplicationUpdateOne {
	_u.mutation.SetScoreNotes(v)
	return _u
}

// SetNillableScoreNotes sets the "score_notes" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableScoreNotes(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetScoreNotes(*v)
	}
	return _u
}

// ClearScoreNotes clears the value of the "score_notes" field.
func (_u *ApplicationUpdateOne) ClearScoreNotes() *ApplicationUpdateOne {
	_u.mutation.ClearScoreNotes()
	return _u
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (_u *ApplicationUpdateOne) SetCvReceivedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetCvReceivedAt(v)
	return _u
}

// SetNillableCvReceivedAt sets the "cv_received_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCvReceivedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCvReceivedAt(*v)
	}
	return _u
}

// ClearCvReceivedAt clears the value of the "cv_received_at" field.
func (_u *ApplicationUpdateOne) ClearCvReceivedAt() *ApplicationUpdateOne {
	_u.mutation.ClearCvReceivedAt()
	return _u
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (_u *ApplicationUpdateOne) SetCallbackScheduledAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetCallbackScheduledAt(v)
	return _u
}

// SetNillableCallbackScheduledAt sets the "callback_scheduled_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCallbackScheduledAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCallbackScheduledAt(*v)
	}
	return _u
}

// ClearCallbackScheduledAt clears the value of the "callback_scheduled_at" field.
func (_u *ApplicationUpdateOne) ClearCallbackScheduledAt() *ApplicationUpdateOne {
	_u.mutation.ClearCallbackScheduledAt()
	return _u
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (_u *ApplicationUpdateOne) SetNeedsHumanReason(v string) *ApplicationUpdateOne {
	_u.mutation.SetNeedsHumanReason(v)
	return _u
}

// SetNillableNeedsHumanReason sets the "needs_human_reason" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableNeedsHumanReason(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetNeedsHumanReason(*v)
	}
	return _u
}

// ClearNeedsHumanReason clears the value of the "needs_human_reason" field.
func (_u *ApplicationUpdateOne) ClearNeedsHumanReason() *ApplicationUpdateOne {
	_u.mutation.ClearNeedsHumanReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *ApplicationUpdateOne) SetCandidate(v *Candidate) *ApplicationUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// SetPosition sets the "position" edge to the Position entity.
func (_u *ApplicationUpdateOne) SetPosition(v *Position) *ApplicationUpdateOne {
	return _u.SetPositionID(v.ID)
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by IDs.
func (_u *ApplicationUpdateOne) AddStatusChangeIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddStatusChangeIDs(ids...)
	return _u
}

// AddStatusChanges adds the "status_changes" edges to the StatusChange entity.
func (_u *ApplicationUpdateOne) AddStatusChanges(v ...*StatusChange) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusChangeIDs(ids...)
}

// AddCallIDs adds the "calls" edge to the Call entity by IDs.
func (_u *ApplicationUpdateOne) AddCallIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddCallIDs(ids...)
	return _u
}

// AddCalls adds the "calls" edges to the Call entity.
func (_u *ApplicationUpdateOne) AddCalls(v ...*Call) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCallIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ApplicationUpdateOne) AddEvaluationIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ApplicationUpdateOne) AddEvaluations(v ...*Evaluation) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by IDs.
func (_u *ApplicationUpdateOne) AddCvUploadIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddCvUploadIDs(ids...)
	return _u
}

// AddCvUploads adds the "cv_uploads" edges to the CVUpload entity.
func (_u *ApplicationUpdateOne) AddCvUploads(v ...*CVUpload) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCvUploadIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ApplicationUpdateOne) AddMessageIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ApplicationUpdateOne) AddMessages(v ...*Message) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by IDs.
func (_u *ApplicationUpdateOne) AddReplyIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the CandidateReply entity.
func (_u *ApplicationUpdateOne) AddReplies(v ...*CandidateReply) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *ApplicationUpdateOne) ClearCandidate() *ApplicationUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// ClearPosition clears the "position" edge to the Position entity.
func (_u *ApplicationUpdateOne) ClearPosition() *ApplicationUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// ClearStatusChanges clears all "status_changes" edges to the StatusChange entity.
func (_u *ApplicationUpdateOne) ClearStatusChanges() *ApplicationUpdateOne {
	_u.mutation.ClearStatusChanges()
	return _u
}

// RemoveStatusChangeIDs removes the "status_changes" edge to StatusChange entities by IDs.
func (_u *ApplicationUpdateOne) RemoveStatusChangeIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveStatusChangeIDs(ids...)
	return _u
}

// RemoveStatusChanges removes "status_changes" edges to StatusChange entities.
func (_u *ApplicationUpdateOne) RemoveStatusChanges(v ...*StatusChange) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusChangeIDs(ids...)
}

// ClearCalls clears all "calls" edges to the Call entity.
func (_u *ApplicationUpdateOne) ClearCalls() *ApplicationUpdateOne {
	_u.mutation.ClearCalls()
	return _u
}

// RemoveCallIDs removes the "calls" edge to Call entities by IDs.
func (_u *ApplicationUpdateOne) RemoveCallIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveCallIDs(ids...)
	return _u
}

// RemoveCalls removes "calls" edges to Call entities.
func (_u *ApplicationUpdateOne) RemoveCalls(v ...*Call) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCallIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ApplicationUpdateOne) ClearEvaluations() *ApplicationUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ApplicationUpdateOne) RemoveEvaluationIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ApplicationUpdateOne) RemoveEvaluations(v ...*Evaluation) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearCvUploads clears all "cv_uploads" edges to the CVUpload entity.
func (_u *ApplicationUpdateOne) ClearCvUploads() *ApplicationUpdateOne {
	_u.mutation.ClearCvUploads()
	return _u
}

// RemoveCvUploadIDs removes the "cv_uploads" edge to CVUpload entities by IDs.
func (_u *ApplicationUpdateOne) RemoveCvUploadIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveCvUploadIDs(ids...)
	return _u
}

// RemoveCvUploads removes "cv_uploads" edges to CVUpload entities.
func (_u *ApplicationUpdateOne) RemoveCvUploads(v ...*CVUpload) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCvUploadIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ApplicationUpdateOne) ClearMessages() *ApplicationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ApplicationUpdateOne) RemoveMessageIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ApplicationUpdateOne) RemoveMessages(v ...*Message) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearReplies clears all "replies" edges to the CandidateReply entity.
func (_u *ApplicationUpdateOne) ClearReplies() *ApplicationUpdateOne {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to CandidateReply entities by IDs.
func (_u *ApplicationUpdateOne) RemoveReplyIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to CandidateReply entities.
func (_u *ApplicationUpdateOne) RemoveReplies(v ...*CandidateReply) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.candidate"`)
	}
	if _u.mutation.PositionCleared() && len(_u.mutation.PositionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.position"`)
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Qualified(); ok {
		_spec.SetField(application.FieldQualified, field.TypeBool, value)
	}
	if _u.mutation.QualifiedCleared() {
		_spec.ClearField(application.FieldQualified, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(application.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(application.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(application.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScoreNotes(); ok {
		_spec.SetField(application.FieldScoreNotes, field.TypeString, value)
	}
	if _u.mutation.ScoreNotesCleared() {
		_spec.ClearField(application.FieldScoreNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CvReceivedAt(); ok {
		_spec.SetField(application.FieldCvReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.CvReceivedAtCleared() {
		_spec.ClearField(application.FieldCvReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CallbackScheduledAt(); ok {
		_spec.SetField(application.FieldCallbackScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.CallbackScheduledAtCleared() {
		_spec.ClearField(application.FieldCallbackScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NeedsHumanReason(); ok {
		_spec.SetField(application.FieldNeedsHumanReason, field.TypeString, value)
	}
	if _u.mutation.NeedsHumanReasonCleared() {
		_spec.ClearField(application.FieldNeedsHumanReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CandidateTable,
			Columns: []string{application.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CandidateTable,
			Columns: []string{application.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PositionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.PositionTable,
			Columns: []string{application.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PositionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.PositionTable,
			Columns: []string{application.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusChangesIDs(); len(nodes) > 0 && !_u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCallsIDs(); len(nodes) > 0 && !_u.mutation.CallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCvUploadsIDs(); len(nodes) > 0 && !_u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CvUploadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
