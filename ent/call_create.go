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
	"github.com/recruitflow/recruitflow/ent/evaluation"
)

// CallCreate is the builder for creating a Call entity.
type CallCreate struct {
	config
	mutation *CallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetApplicationID sets the "application_id" field.
func (_c *CallCreate) SetApplicationID(v int) *CallCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *CallCreate) SetAttemptNumber(v int) *CallCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *CallCreate) SetNillableAttemptNumber(v *int) *CallCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (_c *CallCreate) SetExternalConversationID(v string) *CallCreate {
	_c.mutation.SetExternalConversationID(v)
	return _c
}

// SetNillableExternalConversationID sets the "external_conversation_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableExternalConversationID(v *string) *CallCreate {
	if v != nil {
		_c.SetExternalConversationID(*v)
	}
	return _c
}

// SetExternalBatchID sets the "external_batch_id" field.
func (_c *CallCreate) SetExternalBatchID(v string) *CallCreate {
	_c.mutation.SetExternalBatchID(v)
	return _c
}

// SetNillableExternalBatchID sets the "external_batch_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableExternalBatchID(v *string) *CallCreate {
	if v != nil {
		_c.SetExternalBatchID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CallCreate) SetStatus(v call.Status) *CallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CallCreate) SetNillableStatus(v *call.Status) *CallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *CallCreate) SetTranscript(v string) *CallCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *CallCreate) SetNillableTranscript(v *string) *CallCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CallCreate) SetSummary(v string) *CallCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CallCreate) SetNillableSummary(v *string) *CallCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSummaryTitle sets the "summary_title" field.
func (_c *CallCreate) SetSummaryTitle(v string) *CallCreate {
	_c.mutation.SetSummaryTitle(v)
	return _c
}

// SetNillableSummaryTitle sets the "summary_title" field if the given value is not nil.
func (_c *CallCreate) SetNillableSummaryTitle(v *string) *CallCreate {
	if v != nil {
		_c.SetSummaryTitle(*v)
	}
	return _c
}

// SetRecordingURL sets the "recording_url" field.
func (_c *CallCreate) SetRecordingURL(v string) *CallCreate {
	_c.mutation.SetRecordingURL(v)
	return _c
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (_c *CallCreate) SetNillableRecordingURL(v *string) *CallCreate {
	if v != nil {
		_c.SetRecordingURL(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *CallCreate) SetDurationSeconds(v int) *CallCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *CallCreate) SetNillableDurationSeconds(v *int) *CallCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *CallCreate) SetRawPayload(v map[string]interface{}) *CallCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetInitiatedAt sets the "initiated_at" field.
func (_c *CallCreate) SetInitiatedAt(v time.Time) *CallCreate {
	_c.mutation.SetInitiatedAt(v)
	return _c
}

// SetNillableInitiatedAt sets the "initiated_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableInitiatedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetInitiatedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *CallCreate) SetEndedAt(v time.Time) *CallCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableEndedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallCreate) SetCreatedAt(v time.Time) *CallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableCreatedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CallCreate) SetUpdatedAt(v time.Time) *CallCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableUpdatedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *CallCreate) SetApplication(v *Application) *CallCreate {
	return _c.SetApplicationID(v.ID)
}

// SetEvaluationID sets the "evaluation" edge to the Evaluation entity by ID.
func (_c *CallCreate) SetEvaluationID(id int) *CallCreate {
	_c.mutation.SetEvaluationID(id)
	return _c
}

// SetNillableEvaluationID sets the "evaluation" edge to the Evaluation entity by ID if the given value is not nil.
func (_c *CallCreate) SetNillableEvaluationID(id *int) *CallCreate {
	if id != nil {
		_c = _c.SetEvaluationID(*id)
	}
	return _c
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_c *CallCreate) SetEvaluation(v *Evaluation) *CallCreate {
	return _c.SetEvaluationID(v.ID)
}

// Mutation returns the CallMutation object of the builder.
func (_c *CallCreate) Mutation() *CallMutation {
	return _c.mutation
}

// Save creates the Call in the database.
func (_c *CallCreate) Save(ctx context.Context) (*Call, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallCreate) SaveX(ctx context.Context) *Call {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallCreate) defaults() {
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := call.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := call.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InitiatedAt(); !ok {
		v := call.DefaultInitiatedAt()
		_c.mutation.SetInitiatedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := call.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := call.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "Call.application_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "Call.attempt_number"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Call.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InitiatedAt(); !ok {
		return &ValidationError{Name: "initiated_at", err: errors.New(`ent: missing required field "Call.initiated_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Call.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Call.updated_at"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "Call.application"`)}
	}
	return nil
}

func (_c *CallCreate) sqlSave(ctx context.Context) (*Call, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallCreate) createSpec() (*Call, *sqlgraph.CreateSpec) {
	var (
		_node = &Call{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(call.Table, sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(call.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.ExternalConversationID(); ok {
		_spec.SetField(call.FieldExternalConversationID, field.TypeString, value)
		_node.ExternalConversationID = &value
	}
	if value, ok := _c.mutation.ExternalBatchID(); ok {
		_spec.SetField(call.FieldExternalBatchID, field.TypeString, value)
		_node.ExternalBatchID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(call.FieldTranscript, field.TypeString, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(call.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.SummaryTitle(); ok {
		_spec.SetField(call.FieldSummaryTitle, field.TypeString, value)
		_node.SummaryTitle = value
	}
	if value, ok := _c.mutation.RecordingURL(); ok {
		_spec.SetField(call.FieldRecordingURL, field.TypeString, value)
		_node.RecordingURL = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(call.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(call.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.InitiatedAt(); ok {
		_spec.SetField(call.FieldInitiatedAt, field.TypeTime, value)
		_node.InitiatedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(call.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(call.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(call.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   call.ApplicationTable,
			Columns: []string{call.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Call.Create().
//		SetApplicationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *CallCreate) OnConflict(opts ...sql.ConflictOption) *CallUpsertOne {
	_c.conflict = opts
	return &CallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Call.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CallCreate) OnConflictColumns(columns ...string) *CallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CallUpsertOne{
		create: _c,
	}
}

type (
	// CallUpsertOne is the builder for "upsert"-ing
	//  one Call node.
	CallUpsertOne struct {
		create *CallCreate
	}

	// CallUpsert is the "OnConflict" setter.
	CallUpsert struct {
		*sql.UpdateSet
	}
)

// SetAttemptNumber sets the "attempt_number" field.
func (u *CallUpsert) SetAttemptNumber(v int) *CallUpsert {
	u.Set(call.FieldAttemptNumber, v)
	return u
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *CallUpsert) UpdateAttemptNumber() *CallUpsert {
	u.SetExcluded(call.FieldAttemptNumber)
	return u
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *CallUpsert) AddAttemptNumber(v int) *CallUpsert {
	u.Add(call.FieldAttemptNumber, v)
	return u
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (u *CallUpsert) SetExternalConversationID(v string) *CallUpsert {
	u.Set(call.FieldExternalConversationID, v)
	return u
}

// UpdateExternalConversationID sets the "external_conversation_id" field to the value that was provided on create.
func (u *CallUpsert) UpdateExternalConversationID() *CallUpsert {
	u.SetExcluded(call.FieldExternalConversationID)
	return u
}

// ClearExternalConversationID clears the value of the "external_conversation_id" field.
func (u *CallUpsert) ClearExternalConversationID() *CallUpsert {
	u.SetNull(call.FieldExternalConversationID)
	return u
}

// SetExternalBatchID sets the "external_batch_id" field.
func (u *CallUpsert) SetExternalBatchID(v string) *CallUpsert {
	u.Set(call.FieldExternalBatchID, v)
	return u
}

// UpdateExternalBatchID sets the "external_batch_id" field to the value that was provided on create.
func (u *CallUpsert) UpdateExternalBatchID() *CallUpsert {
	u.SetExcluded(call.FieldExternalBatchID)
	return u
}

// ClearExternalBatchID clears the value of the "external_batch_id" field.
func (u *CallUpsert) ClearExternalBatchID() *CallUpsert {
	u.SetNull(call.FieldExternalBatchID)
	return u
}

// SetStatus sets the "status" field.
func (u *CallUpsert) SetStatus(v call.Status) *CallUpsert {
	u.Set(call.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallUpsert) UpdateStatus() *CallUpsert {
	u.SetExcluded(call.FieldStatus)
	return u
}

// SetTranscript sets the "transcript" field.
func (u *CallUpsert) SetTranscript(v string) *CallUpsert {
	u.Set(call.FieldTranscript, v)
	return u
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *CallUpsert) UpdateTranscript() *CallUpsert {
	u.SetExcluded(call.FieldTranscript)
	return u
}

// ClearTranscript clears the value of the "transcript" field.
func (u *CallUpsert) ClearTranscript() *CallUpsert {
	u.SetNull(call.FieldTranscript)
	return u
}

// SetSummary sets the "summary" field.
func (u *CallUpsert) SetSummary(v string) *CallUpsert {
	u.Set(call.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *CallUpsert) UpdateSummary() *CallUpsert {
	u.SetExcluded(call.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *CallUpsert) ClearSummary() *CallUpsert {
	u.SetNull(call.FieldSummary)
	return u
}

// SetSummaryTitle sets the "summary_title" field.
func (u *CallUpsert) SetSummaryTitle(v string) *CallUpsert {
	u.Set(call.FieldSummaryTitle, v)
	return u
}

// UpdateSummaryTitle sets the "summary_title" field to the value that was provided on create.
func (u *CallUpsert) UpdateSummaryTitle() *CallUpsert {
	u.SetExcluded(call.FieldSummaryTitle)
	return u
}

// ClearSummaryTitle clears the value of the "summary_title" field.
func (u *CallUpsert) ClearSummaryTitle() *CallUpsert {
	u.SetNull(call.FieldSummaryTitle)
	return u
}

// SetRecordingURL sets the "recording_url" field.
func (u *CallUpsert) SetRecordingURL(v string) *CallUpsert {
	u.Set(call.FieldRecordingURL, v)
	return u
}

// UpdateRecordingURL sets the "recording_url" field to the value that was provided on create.
func (u *CallUpsert) UpdateRecordingURL() *CallUpsert {
	u.SetExcluded(call.FieldRecordingURL)
	return u
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (u *CallUpsert) ClearRecordingURL() *CallUpsert {
	u.SetNull(call.FieldRecordingURL)
	return u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CallUpsert) SetDurationSeconds(v int) *CallUpsert {
	u.Set(call.FieldDurationSeconds, v)
	return u
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CallUpsert) UpdateDurationSeconds() *CallUpsert {
	u.SetExcluded(call.FieldDurationSeconds)
	return u
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CallUpsert) AddDurationSeconds(v int) *CallUpsert {
	u.Add(call.FieldDurationSeconds, v)
	return u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (u *CallUpsert) ClearDurationSeconds() *CallUpsert {
	u.SetNull(call.FieldDurationSeconds)
	return u
}

// SetRawPayload sets the "raw_payload" field.
func (u *CallUpsert) SetRawPayload(v map[string]interface{}) *CallUpsert {
	u.Set(call.FieldRawPayload, v)
	return u
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *CallUpsert) UpdateRawPayload() *CallUpsert {
	u.SetExcluded(call.FieldRawPayload)
	return u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *CallUpsert) ClearRawPayload() *CallUpsert {
	u.SetNull(call.FieldRawPayload)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *CallUpsert) SetEndedAt(v time.Time) *CallUpsert {
	u.Set(call.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *CallUpsert) UpdateEndedAt() *CallUpsert {
	u.SetExcluded(call.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *CallUpsert) ClearEndedAt() *CallUpsert {
	u.SetNull(call.FieldEndedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CallUpsert) SetUpdatedAt(v time.Time) *CallUpsert {
	u.Set(call.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CallUpsert) UpdateUpdatedAt() *CallUpsert {
	u.SetExcluded(call.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Call.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CallUpsertOne) UpdateNewValues() *CallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(call.FieldApplicationID)
		}
		if _, exists := u.create.mutation.InitiatedAt(); exists {
			s.SetIgnore(call.FieldInitiatedAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(call.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Call.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CallUpsertOne) Ignore() *CallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallUpsertOne) DoNothing() *CallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallCreate.OnConflict
// documentation for more info.
func (u *CallUpsertOne) Update(set func(*CallUpsert)) *CallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallUpsert{UpdateSet: update})
	}))
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *CallUpsertOne) SetAttemptNumber(v int) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *CallUpsertOne) AddAttemptNumber(v int) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateAttemptNumber() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (u *CallUpsertOne) SetExternalConversationID(v string) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetExternalConversationID(v)
	})
}

// UpdateExternalConversationID sets the "external_conversation_id" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateExternalConversationID() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateExternalConversationID()
	})
}

// ClearExternalConversationID clears the value of the "external_conversation_id" field.
func (u *CallUpsertOne) ClearExternalConversationID() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearExternalConversationID()
	})
}

// SetExternalBatchID sets the "external_batch_id" field.
func (u *CallUpsertOne) SetExternalBatchID(v string) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetExternalBatchID(v)
	})
}

// UpdateExternalBatchID sets the "external_batch_id" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateExternalBatchID() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateExternalBatchID()
	})
}

// ClearExternalBatchID clears the value of the "external_batch_id" field.
func (u *CallUpsertOne) ClearExternalBatchID() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearExternalBatchID()
	})
}

// SetStatus sets the "status" field.
func (u *CallUpsertOne) SetStatus(v call.Status) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateStatus() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateStatus()
	})
}

// SetTranscript sets the "transcript" field.
func (u *CallUpsertOne) SetTranscript(v string) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateTranscript() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *CallUpsertOne) ClearTranscript() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearTranscript()
	})
}

// SetSummary sets the "summary" field.
func (u *CallUpsertOne) SetSummary(v string) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateSummary() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *CallUpsertOne) ClearSummary() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearSummary()
	})
}

// SetSummaryTitle sets the "summary_title" field.
func (u *CallUpsertOne) SetSummaryTitle(v string) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetSummaryTitle(v)
	})
}

// UpdateSummaryTitle sets the "summary_title" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateSummaryTitle() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateSummaryTitle()
	})
}

// ClearSummaryTitle clears the value of the "summary_title" field.
func (u *CallUpsertOne) ClearSummaryTitle() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearSummaryTitle()
	})
}

// SetRecordingURL sets the "recording_url" field.
func (u *CallUpsertOne) SetRecordingURL(v string) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetRecordingURL(v)
	})
}

// UpdateRecordingURL sets the "recording_url" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateRecordingURL() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateRecordingURL()
	})
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (u *CallUpsertOne) ClearRecordingURL() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearRecordingURL()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CallUpsertOne) SetDurationSeconds(v int) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CallUpsertOne) AddDurationSeconds(v int) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateDurationSeconds() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateDurationSeconds()
	})
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (u *CallUpsertOne) ClearDurationSeconds() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearDurationSeconds()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *CallUpsertOne) SetRawPayload(v map[string]interface{}) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateRawPayload() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *CallUpsertOne) ClearRawPayload() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearRawPayload()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *CallUpsertOne) SetEndedAt(v time.Time) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateEndedAt() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *CallUpsertOne) ClearEndedAt() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.ClearEndedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CallUpsertOne) SetUpdatedAt(v time.Time) *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CallUpsertOne) UpdateUpdatedAt() *CallUpsertOne {
	return u.Update(func(s *CallUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CallUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CallUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CallCreateBulk is the builder for creating many Call entities in bulk.
type CallCreateBulk struct {
	config
	err      error
	builders []*CallCreate
	conflict []sql.ConflictOption
}

// Save creates the Call entities in the database.
func (_c *CallCreateBulk) Save(ctx context.Context) ([]*Call, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Call, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CallCreateBulk) SaveX(ctx context.Context) []*Call {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Call.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *CallCreateBulk) OnConflict(opts ...sql.ConflictOption) *CallUpsertBulk {
	_c.conflict = opts
	return &CallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Call.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CallCreateBulk) OnConflictColumns(columns ...string) *CallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CallUpsertBulk{
		create: _c,
	}
}

// CallUpsertBulk is the builder for "upsert"-ing
// a bulk of Call nodes.
type CallUpsertBulk struct {
	create *CallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Call.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CallUpsertBulk) UpdateNewValues() *CallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(call.FieldApplicationID)
			}
			if _, exists := b.mutation.InitiatedAt(); exists {
				s.SetIgnore(call.FieldInitiatedAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(call.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Call.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CallUpsertBulk) Ignore() *CallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallUpsertBulk) DoNothing() *CallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallCreateBulk.OnConflict
// documentation for more info.
func (u *CallUpsertBulk) Update(set func(*CallUpsert)) *CallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallUpsert{UpdateSet: update})
	}))
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *CallUpsertBulk) SetAttemptNumber(v int) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *CallUpsertBulk) AddAttemptNumber(v int) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateAttemptNumber() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetExternalConversationID sets the "external_conversation_id" field.
func (u *CallUpsertBulk) SetExternalConversationID(v string) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetExternalConversationID(v)
	})
}

// UpdateExternalConversationID sets the "external_conversation_id" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateExternalConversationID() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateExternalConversationID()
	})
}

// ClearExternalConversationID clears the value of the "external_conversation_id" field.
func (u *CallUpsertBulk) ClearExternalConversationID() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearExternalConversationID()
	})
}

// SetExternalBatchID sets the "external_batch_id" field.
func (u *CallUpsertBulk) SetExternalBatchID(v string) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetExternalBatchID(v)
	})
}

// UpdateExternalBatchID sets the "external_batch_id" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateExternalBatchID() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateExternalBatchID()
	})
}

// ClearExternalBatchID clears the value of the "external_batch_id" field.
func (u *CallUpsertBulk) ClearExternalBatchID() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearExternalBatchID()
	})
}

// SetStatus sets the "status" field.
func (u *CallUpsertBulk) SetStatus(v call.Status) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateStatus() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateStatus()
	})
}

// SetTranscript sets the "transcript" field.
func (u *CallUpsertBulk) SetTranscript(v string) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateTranscript() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *CallUpsertBulk) ClearTranscript() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearTranscript()
	})
}

// SetSummary sets the "summary" field.
func (u *CallUpsertBulk) SetSummary(v string) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateSummary() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *CallUpsertBulk) ClearSummary() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearSummary()
	})
}

// SetSummaryTitle sets the "summary_title" field.
func (u *CallUpsertBulk) SetSummaryTitle(v string) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetSummaryTitle(v)
	})
}

// UpdateSummaryTitle sets the "summary_title" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateSummaryTitle() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateSummaryTitle()
	})
}

// ClearSummaryTitle clears the value of the "summary_title" field.
func (u *CallUpsertBulk) ClearSummaryTitle() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearSummaryTitle()
	})
}

// SetRecordingURL sets the "recording_url" field.
func (u *CallUpsertBulk) SetRecordingURL(v string) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetRecordingURL(v)
	})
}

// UpdateRecordingURL sets the "recording_url" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateRecordingURL() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateRecordingURL()
	})
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (u *CallUpsertBulk) ClearRecordingURL() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearRecordingURL()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CallUpsertBulk) SetDurationSeconds(v int) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CallUpsertBulk) AddDurationSeconds(v int) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateDurationSeconds() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateDurationSeconds()
	})
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (u *CallUpsertBulk) ClearDurationSeconds() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearDurationSeconds()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *CallUpsertBulk) SetRawPayload(v map[string]interface{}) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateRawPayload() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *CallUpsertBulk) ClearRawPayload() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearRawPayload()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *CallUpsertBulk) SetEndedAt(v time.Time) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateEndedAt() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *CallUpsertBulk) ClearEndedAt() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.ClearEndedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CallUpsertBulk) SetUpdatedAt(v time.Time) *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CallUpsertBulk) UpdateUpdatedAt() *CallUpsertBulk {
	return u.Update(func(s *CallUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
