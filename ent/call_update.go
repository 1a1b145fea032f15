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
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// CallUpdate is the builder for updating Call entities.
type CallUpdate struct {
	config
	hooks    []Hook
	mutation *CallMutation
}

// Where appends a list predicates to the CallUpdate builder.
func (_u *CallUpdate) Where(ps ...predicate.Call) *CallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *CallUpdate) SetAttemptNumber(v int) *CallUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *CallUpdate) SetNillableAttemptNumber(v *int) *CallUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *CallUpdate) AddAttemptNumber(v int) *CallUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (_u *CallUpdate) SetExternalConversationID(v string) *CallUpdate {
	_u.mutation.SetExternalConversationID(v)
	return _u
}

// SetNillableExternalConversationID sets the "external_conversation_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableExternalConversationID(v *string) *CallUpdate {
	if v != nil {
		_u.SetExternalConversationID(*v)
	}
	return _u
}

// ClearExternalConversationID clears the value of the "external_conversation_id" field.
func (_u *CallUpdate) ClearExternalConversationID() *CallUpdate {
	_u.mutation.ClearExternalConversationID()
	return _u
}

// SetExternalBatchID sets the "external_batch_id" field.
func (_u *CallUpdate) SetExternalBatchID(v string) *CallUpdate {
	_u.mutation.SetExternalBatchID(v)
	return _u
}

// SetNillableExternalBatchID sets the "external_batch_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableExternalBatchID(v *string) *CallUpdate {
	if v != nil {
		_u.SetExternalBatchID(*v)
	}
	return _u
}

// ClearExternalBatchID clears the value of the "external_batch_id" field.
func (_u *CallUpdate) ClearExternalBatchID() *CallUpdate {
	_u.mutation.ClearExternalBatchID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallUpdate) SetStatus(v call.Status) *CallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallUpdate) SetNillableStatus(v *call.Status) *CallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *CallUpdate) SetTranscript(v string) *CallUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *CallUpdate) SetNillableTranscript(v *string) *CallUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *CallUpdate) ClearTranscript() *CallUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CallUpdate) SetSummary(v string) *CallUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CallUpdate) SetNillableSummary(v *string) *CallUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CallUpdate) ClearSummary() *CallUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryTitle sets the "summary_title" field.
func (_u *CallUpdate) SetSummaryTitle(v string) *CallUpdate {
	_u.mutation.SetSummaryTitle(v)
	return _u
}

// SetNillableSummaryTitle sets the "summary_title" field if the given value is not nil.
func (_u *CallUpdate) SetNillableSummaryTitle(v *string) *CallUpdate {
	if v != nil {
		_u.SetSummaryTitle(*v)
	}
	return _u
}

// ClearSummaryTitle clears the value of the "summary_title" field.
func (_u *CallUpdate) ClearSummaryTitle() *CallUpdate {
	_u.mutation.ClearSummaryTitle()
	return _u
}

// SetRecordingURL sets the "recording_url" field.
func (_u *CallUpdate) SetRecordingURL(v string) *CallUpdate {
	_u.mutation.SetRecordingURL(v)
	return _u
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (_u *CallUpdate) SetNillableRecordingURL(v *string) *CallUpdate {
	if v != nil {
		_u.SetRecordingURL(*v)
	}
	return _u
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (_u *CallUpdate) ClearRecordingURL() *CallUpdate {
	_u.mutation.ClearRecordingURL()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallUpdate) SetDurationSeconds(v int) *CallUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallUpdate) SetNillableDurationSeconds(v *int) *CallUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallUpdate) AddDurationSeconds(v int) *CallUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *CallUpdate) ClearDurationSeconds() *CallUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *CallUpdate) SetRawPayload(v map[string]interface{}) *CallUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *CallUpdate) ClearRawPayload() *CallUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallUpdate) SetEndedAt(v time.Time) *CallUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableEndedAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *CallUpdate) ClearEndedAt() *CallUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallUpdate) SetUpdatedAt(v time.Time) *CallUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEvaluationID sets the "evaluation" edge to the Evaluation entity by ID.
func (_u *CallUpdate) SetEvaluationID(id int) *CallUpdate {
	_u.mutation.SetEvaluationID(id)
	return _u
}

// SetNillableEvaluationID sets the "evaluation" edge to the Evaluation entity by ID if the given value is not nil.
func (_u *CallUpdate) SetNillableEvaluationID(id *int) *CallUpdate {
	if id != nil {
		_u = _u.SetEvaluationID(*id)
	}
	return _u
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *CallUpdate) SetEvaluation(v *Evaluation) *CallUpdate {
	return _u.SetEvaluationID(v.ID)
}

// Mutation returns the CallMutation object of the builder.
func (_u *CallUpdate) Mutation() *CallMutation {
	return _u.mutation
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *CallUpdate) ClearEvaluation() *CallUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := call.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Call.application"`)
	}
	return nil
}

func (_u *CallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(call.Table, call.Columns, sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(call.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(call.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalConversationID(); ok {
		_spec.SetField(call.FieldExternalConversationID, field.TypeString, value)
	}
	if _u.mutation.ExternalConversationIDCleared() {
		_spec.ClearField(call.FieldExternalConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalBatchID(); ok {
		_spec.SetField(call.FieldExternalBatchID, field.TypeString, value)
	}
	if _u.mutation.ExternalBatchIDCleared() {
		_spec.ClearField(call.FieldExternalBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(call.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(call.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(call.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(call.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryTitle(); ok {
		_spec.SetField(call.FieldSummaryTitle, field.TypeString, value)
	}
	if _u.mutation.SummaryTitleCleared() {
		_spec.ClearField(call.FieldSummaryTitle, field.TypeString)
	}
	if value, ok := _u.mutation.RecordingURL(); ok {
		_spec.SetField(call.FieldRecordingURL, field.TypeString, value)
	}
	if _u.mutation.RecordingURLCleared() {
		_spec.ClearField(call.FieldRecordingURL, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(call.FieldDurationSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(call.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(call.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(call.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(call.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(call.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   call.EvaluationTable,
			Columns: []string{call.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   call.EvaluationTable,
			Columns: []string{call.EvaluationColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{call.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallUpdateOne is the builder for updating a single Call entity.
type CallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallMutation
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *CallUpdateOne) SetAttemptNumber(v int) *CallUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableAttemptNumber(v *int) *CallUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *CallUpdateOne) AddAttemptNumber(v int) *CallUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (_u *CallUpdateOne) SetExternalConversationID(v string) *CallUpdateOne {
	_u.mutation.SetExternalConversationID(v)
	return _u
}

// SetNillableExternalConversationID sets the "external_conversation_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableExternalConversationID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetExternalConversationID(*v)
	}
	return _u
}

// ClearExternalConversationID clears the value of the "external_conversation_id" field.
func (_u *CallUpdateOne) ClearExternalConversationID() *CallUpdateOne {
	_u.mutation.ClearExternalConversationID()
	return _u
}

// SetExternalBatchID sets the "external_batch_id" field.
func (_u *CallUpdateOne) SetExternalBatchID(v string) *CallUpdateOne {
	_u.mutation.SetExternalBatchID(v)
	return _u
}

// SetNillableExternalBatchID sets the "external_batch_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableExternalBatchID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetExternalBatchID(*v)
	}
	return _u
}

// ClearExternalBatchID clears the value of the "external_batch_id" field.
func (_u *CallUpdateOne) ClearExternalBatchID() *CallUpdateOne {
	_u.mutation.ClearExternalBatchID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallUpdateOne) SetStatus(v call.Status) *CallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableStatus(v *call.Status) *CallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *CallUpdateOne) SetTranscript(v string) *CallUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableTranscript(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *CallUpdateOne) ClearTranscript() *CallUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CallUpdateOne) SetSummary(v string) *CallUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableSummary(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CallUpdateOne) ClearSummary() *CallUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryTitle sets the "summary_title" field.
func (_u *CallUpdateOne) SetSummaryTitle(v string) *CallUpdateOne {
	_u.mutation.SetSummaryTitle(v)
	return _u
}

// SetNillableSummaryTitle sets the "summary_title" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableSummaryTitle(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetSummaryTitle(*v)
	}
	return _u
}

// ClearSummaryTitle clears the value of the "summary_title" field.
func (_u *CallUpdateOne) ClearSummaryTitle() *CallUpdateOne {
	_u.mutation.ClearSummaryTitle()
	return _u
}

// SetRecordingURL sets the "recording_url" field.
func (_u *CallUpdateOne) SetRecordingURL(v string) *CallUpdateOne {
	_u.mutation.SetRecordingURL(v)
	return _u
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableRecordingURL(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetRecordingURL(*v)
	}
	return _u
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (_u *CallUpdateOne) ClearRecordingURL() *CallUpdateOne {
	_u.mutation.ClearRecordingURL()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallUpdateOne) SetDurationSeconds(v int) *CallUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableDurationSeconds(v *int) *CallUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallUpdateOne) AddDurationSeconds(v int) *CallUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *CallUpdateOne) ClearDurationSeconds() *CallUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *CallUpdateOne) SetRawPayload(v map[string]interface{}) *CallUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *CallUpdateOne) ClearRawPayload() *CallUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallUpdateOne) SetEndedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableEndedAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *CallUpdateOne) ClearEndedAt() *CallUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallUpdateOne) SetUpdatedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEvaluationID sets the "evaluation" edge to the Evaluation entity by ID.
func (_u *CallUpdateOne) SetEvaluationID(id int) *CallUpdateOne {
	_u.mutation.SetEvaluationID(id)
	return _u
}

// SetNillableEvaluationID sets the "evaluation" edge to the Evaluation entity by ID if the given value is not nil.
func (_u *CallUpdateOne) SetNillableEvaluationID(id *int) *CallUpdateOne {
	if id != nil {
		_u = _u.SetEvaluationID(*id)
	}
	return _u
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *CallUpdateOne) SetEvaluation(v *Evaluation) *CallUpdateOne {
	return _u.SetEvaluationID(v.ID)
}

// Mutation returns the CallMutation object of the builder.
func (_u *CallUpdateOne) Mutation() *CallMutation {
	return _u.mutation
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *CallUpdateOne) ClearEvaluation() *CallUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// Where appends a list predicates to the CallUpdate builder.
func (_u *CallUpdateOne) Where(ps ...predicate.Call) *CallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallUpdateOne) Select(field string, fields ...string) *CallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Call entity.
func (_u *CallUpdateOne) Save(ctx context.Context) (*Call, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallUpdateOne) SaveX(ctx context.Context) *Call {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := call.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Call.application"`)
	}
	return nil
}

func (_u *CallUpdateOne) sqlSave(ctx context.Context) (_node *Call, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(call.Table, call.Columns, sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Call.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, call.FieldID)
		for _, f := range fields {
			if !call.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != call.FieldID {
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
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(call.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(call.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalConversationID(); ok {
		_spec.SetField(call.FieldExternalConversationID, field.TypeString, value)
	}
	if _u.mutation.ExternalConversationIDCleared() {
		_spec.ClearField(call.FieldExternalConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalBatchID(); ok {
		_spec.SetField(call.FieldExternalBatchID, field.TypeString, value)
	}
	if _u.mutation.ExternalBatchIDCleared() {
		_spec.ClearField(call.FieldExternalBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(call.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(call.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(call.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(call.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryTitle(); ok {
		_spec.SetField(call.FieldSummaryTitle, field.TypeString, value)
	}
	if _u.mutation.SummaryTitleCleared() {
		_spec.ClearField(call.FieldSummaryTitle, field.TypeString)
	}
	if value, ok := _u.mutation.RecordingURL(); ok {
		_spec.SetField(call.FieldRecordingURL, field.TypeString, value)
	}
	if _u.mutation.RecordingURLCleared() {
		_spec.ClearField(call.FieldRecordingURL, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(call.FieldDurationSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(call.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(call.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(call.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(call.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(call.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   call.EvaluationTable,
			Columns: []string{call.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   call.EvaluationTable,
			Columns: []string{call.EvaluationColumn},
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
	_node = &Call{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{call.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
