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

// EvaluationCreate is the builder for creating a Evaluation entity.
type EvaluationCreate struct {
	config
	mutation *EvaluationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetApplicationID sets the "application_id" field.
func (_c *EvaluationCreate) SetApplicationID(v int) *EvaluationCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *EvaluationCreate) SetCallID(v int) *EvaluationCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *EvaluationCreate) SetOutcome(v evaluation.Outcome) *EvaluationCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetQualified sets the "qualified" field.
func (_c *EvaluationCreate) SetQualified(v bool) *EvaluationCreate {
	_c.mutation.SetQualified(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *EvaluationCreate) SetScore(v float64) *EvaluationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *EvaluationCreate) SetReasoning(v string) *EvaluationCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *EvaluationCreate) SetCriteria(v []map[string]interface{}) *EvaluationCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (_c *EvaluationCreate) SetDisqualifyingFactor(v string) *EvaluationCreate {
	_c.mutation.SetDisqualifyingFactor(v)
	return _c
}

// SetNillableDisqualifyingFactor sets the "disqualifying_factor" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableDisqualifyingFactor(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetDisqualifyingFactor(*v)
	}
	return _c
}

// SetCallbackRequested sets the "callback_requested" field.
func (_c *EvaluationCreate) SetCallbackRequested(v bool) *EvaluationCreate {
	_c.mutation.SetCallbackRequested(v)
	return _c
}

// SetNillableCallbackRequested sets the "callback_requested" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCallbackRequested(v *bool) *EvaluationCreate {
	if v != nil {
		_c.SetCallbackRequested(*v)
	}
	return _c
}

// SetCallbackNotes sets the "callback_notes" field.
func (_c *EvaluationCreate) SetCallbackNotes(v string) *EvaluationCreate {
	_c.mutation.SetCallbackNotes(v)
	return _c
}

// SetNillableCallbackNotes sets the "callback_notes" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCallbackNotes(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetCallbackNotes(*v)
	}
	return _c
}

// SetCallbackAt sets the "callback_at" field.
func (_c *EvaluationCreate) SetCallbackAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCallbackAt(v)
	return _c
}

// SetNillableCallbackAt sets the "callback_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCallbackAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCallbackAt(*v)
	}
	return _c
}

// SetNeedsHuman sets the "needs_human" field.
func (_c *EvaluationCreate) SetNeedsHuman(v bool) *EvaluationCreate {
	_c.mutation.SetNeedsHuman(v)
	return _c
}

// SetNillableNeedsHuman sets the "needs_human" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableNeedsHuman(v *bool) *EvaluationCreate {
	if v != nil {
		_c.SetNeedsHuman(*v)
	}
	return _c
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (_c *EvaluationCreate) SetNeedsHumanNotes(v string) *EvaluationCreate {
	_c.mutation.SetNeedsHumanNotes(v)
	return _c
}

// SetNillableNeedsHumanNotes sets the "needs_human_notes" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableNeedsHumanNotes(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetNeedsHumanNotes(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *EvaluationCreate) SetRawResponse(v string) *EvaluationCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableRawResponse(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *EvaluationCreate) SetModel(v string) *EvaluationCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableModel(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationCreate) SetCreatedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCreatedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *EvaluationCreate) SetApplication(v *Application) *EvaluationCreate {
	return _c.SetApplicationID(v.ID)
}

// SetCall sets the "call" edge to the Call entity.
func (_c *EvaluationCreate) SetCall(v *Call) *EvaluationCreate {
	return _c.SetCallID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_c *EvaluationCreate) Mutation() *EvaluationMutation {
	return _c.mutation
}

// Save creates the Evaluation in the database.
func (_c *EvaluationCreate) Save(ctx context.Context) (*Evaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCreate) SaveX(ctx context.Context) *Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCreate) defaults() {
	if _, ok := _c.mutation.CallbackRequested(); !ok {
		v := evaluation.DefaultCallbackRequested
		_c.mutation.SetCallbackRequested(v)
	}
	if _, ok := _c.mutation.NeedsHuman(); !ok {
		v := evaluation.DefaultNeedsHuman
		_c.mutation.SetNeedsHuman(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "Evaluation.application_id"`)}
	}
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "Evaluation.call_id"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "Evaluation.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := evaluation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Evaluation.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Qualified(); !ok {
		return &ValidationError{Name: "qualified", err: errors.New(`ent: missing required field "Evaluation.qualified"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Evaluation.score"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "Evaluation.reasoning"`)}
	}
	if _, ok := _c.mutation.CallbackRequested(); !ok {
		return &ValidationError{Name: "callback_requested", err: errors.New(`ent: missing required field "Evaluation.callback_requested"`)}
	}
	if _, ok := _c.mutation.NeedsHuman(); !ok {
		return &ValidationError{Name: "needs_human", err: errors.New(`ent: missing required field "Evaluation.needs_human"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evaluation.created_at"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "Evaluation.application"`)}
	}
	if len(_c.mutation.CallIDs()) == 0 {
		return &ValidationError{Name: "call", err: errors.New(`ent: missing required edge "Evaluation.call"`)}
	}
	return nil
}

func (_c *EvaluationCreate) sqlSave(ctx context.Context) (*Evaluation, error) {
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

func (_c *EvaluationCreate) createSpec() (*Evaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &Evaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluation.Table, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(evaluation.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Qualified(); ok {
		_spec.SetField(evaluation.FieldQualified, field.TypeBool, value)
		_node.Qualified = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(evaluation.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(evaluation.FieldCriteria, field.TypeJSON, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.DisqualifyingFactor(); ok {
		_spec.SetField(evaluation.FieldDisqualifyingFactor, field.TypeString, value)
		_node.DisqualifyingFactor = value
	}
	if value, ok := _c.mutation.CallbackRequested(); ok {
		_spec.SetField(evaluation.FieldCallbackRequested, field.TypeBool, value)
		_node.CallbackRequested = value
	}
	if value, ok := _c.mutation.CallbackNotes(); ok {
		_spec.SetField(evaluation.FieldCallbackNotes, field.TypeString, value)
		_node.CallbackNotes = value
	}
	if value, ok := _c.mutation.CallbackAt(); ok {
		_spec.SetField(evaluation.FieldCallbackAt, field.TypeTime, value)
		_node.CallbackAt = &value
	}
	if value, ok := _c.mutation.NeedsHuman(); ok {
		_spec.SetField(evaluation.FieldNeedsHuman, field.TypeBool, value)
		_node.NeedsHuman = value
	}
	if value, ok := _c.mutation.NeedsHumanNotes(); ok {
		_spec.SetField(evaluation.FieldNeedsHumanNotes, field.TypeString, value)
		_node.NeedsHumanNotes = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(evaluation.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(evaluation.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.ApplicationTable,
			Columns: []string{evaluation.ApplicationColumn},
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
	if nodes := _c.mutation.CallIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluation.CallTable,
			Columns: []string{evaluation.CallColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CallID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evaluation.Create().
//		SetApplicationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationUpsertOne {
	_c.conflict = opts
	return &EvaluationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evaluation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationCreate) OnConflictColumns(columns ...string) *EvaluationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationUpsertOne is the builder for "upsert"-ing
	//  one Evaluation node.
	EvaluationUpsertOne struct {
		create *EvaluationCreate
	}

	// EvaluationUpsert is the "OnConflict" setter.
	EvaluationUpsert struct {
		*sql.UpdateSet
	}
)

// SetOutcome sets the "outcome" field.
func (u *EvaluationUpsert) SetOutcome(v evaluation.Outcome) *EvaluationUpsert {
	u.Set(evaluation.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateOutcome() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldOutcome)
	return u
}

// SetQualified sets the "qualified" field.
func (u *EvaluationUpsert) SetQualified(v bool) *EvaluationUpsert {
	u.Set(evaluation.FieldQualified, v)
	return u
}

// UpdateQualified sets the "qualified" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateQualified() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldQualified)
	return u
}

// SetScore sets the "score" field.
func (u *EvaluationUpsert) SetScore(v float64) *EvaluationUpsert {
	u.Set(evaluation.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateScore() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *EvaluationUpsert) AddScore(v float64) *EvaluationUpsert {
	u.Add(evaluation.FieldScore, v)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *EvaluationUpsert) SetReasoning(v string) *EvaluationUpsert {
	u.Set(evaluation.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateReasoning() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldReasoning)
	return u
}

// SetCriteria sets the "criteria" field.
func (u *EvaluationUpsert) SetCriteria(v []map[string]interface{}) *EvaluationUpsert {
	u.Set(evaluation.FieldCriteria, v)
	return u
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateCriteria() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldCriteria)
	return u
}

// ClearCriteria clears the value of the "criteria" field.
func (u *EvaluationUpsert) ClearCriteria() *EvaluationUpsert {
	u.SetNull(evaluation.FieldCriteria)
	return u
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (u *EvaluationUpsert) SetDisqualifyingFactor(v string) *EvaluationUpsert {
	u.Set(evaluation.FieldDisqualifyingFactor, v)
	return u
}

// UpdateDisqualifyingFactor sets the "disqualifying_factor" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateDisqualifyingFactor() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldDisqualifyingFactor)
	return u
}

// ClearDisqualifyingFactor clears the value of the "disqualifying_factor" field.
func (u *EvaluationUpsert) ClearDisqualifyingFactor() *EvaluationUpsert {
	u.SetNull(evaluation.FieldDisqualifyingFactor)
	return u
}

// SetCallbackRequested sets the "callback_requested" field.
func (u *EvaluationUpsert) SetCallbackRequested(v bool) *EvaluationUpsert {
	u.Set(evaluation.FieldCallbackRequested, v)
	return u
}

// UpdateCallbackRequested sets the "callback_requested" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateCallbackRequested() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldCallbackRequested)
	return u
}

// SetCallbackNotes sets the "callback_notes" field.
func (u *EvaluationUpsert) SetCallbackNotes(v string) *EvaluationUpsert {
	u.Set(evaluation.FieldCallbackNotes, v)
	return u
}

// UpdateCallbackNotes sets the "callback_notes" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateCallbackNotes() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldCallbackNotes)
	return u
}

// ClearCallbackNotes clears the value of the "callback_notes" field.
func (u *EvaluationUpsert) ClearCallbackNotes() *EvaluationUpsert {
	u.SetNull(evaluation.FieldCallbackNotes)
	return u
}

// SetCallbackAt sets the "callback_at" field.
func (u *EvaluationUpsert) SetCallbackAt(v time.Time) *EvaluationUpsert {
	u.Set(evaluation.FieldCallbackAt, v)
	return u
}

// UpdateCallbackAt sets the "callback_at" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateCallbackAt() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldCallbackAt)
	return u
}

// ClearCallbackAt clears the value of the "callback_at" field.
func (u *EvaluationUpsert) ClearCallbackAt() *EvaluationUpsert {
	u.SetNull(evaluation.FieldCallbackAt)
	return u
}

// SetNeedsHuman sets the "needs_human" field.
func (u *EvaluationUpsert) SetNeedsHuman(v bool) *EvaluationUpsert {
	u.Set(evaluation.FieldNeedsHuman, v)
	return u
}

// UpdateNeedsHuman sets the "needs_human" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateNeedsHuman() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldNeedsHuman)
	return u
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (u *EvaluationUpsert) SetNeedsHumanNotes(v string) *EvaluationUpsert {
	u.Set(evaluation.FieldNeedsHumanNotes, v)
	return u
}

// UpdateNeedsHumanNotes sets the "needs_human_notes" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateNeedsHumanNotes() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldNeedsHumanNotes)
	return u
}

// ClearNeedsHumanNotes clears the value of the "needs_human_notes" field.
func (u *EvaluationUpsert) ClearNeedsHumanNotes() *EvaluationUpsert {
	u.SetNull(evaluation.FieldNeedsHumanNotes)
	return u
}

// SetRawResponse sets the "raw_response" field.
func (u *EvaluationUpsert) SetRawResponse(v string) *EvaluationUpsert {
	u.Set(evaluation.FieldRawResponse, v)
	return u
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateRawResponse() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldRawResponse)
	return u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *EvaluationUpsert) ClearRawResponse() *EvaluationUpsert {
	u.SetNull(evaluation.FieldRawResponse)
	return u
}

// SetModel sets the "model" field.
func (u *EvaluationUpsert) SetModel(v string) *EvaluationUpsert {
	u.Set(evaluation.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EvaluationUpsert) UpdateModel() *EvaluationUpsert {
	u.SetExcluded(evaluation.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *EvaluationUpsert) ClearModel() *EvaluationUpsert {
	u.SetNull(evaluation.FieldModel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Evaluation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluationUpsertOne) UpdateNewValues() *EvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(evaluation.FieldApplicationID)
		}
		if _, exists := u.create.mutation.CallID(); exists {
			s.SetIgnore(evaluation.FieldCallID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evaluation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evaluation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationUpsertOne) Ignore() *EvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationUpsertOne) DoNothing() *EvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationCreate.OnConflict
// documentation for more info.
func (u *EvaluationUpsertOne) Update(set func(*EvaluationUpsert)) *EvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOutcome sets the "outcome" field.
func (u *EvaluationUpsertOne) SetOutcome(v evaluation.Outcome) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateOutcome() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateOutcome()
	})
}

// SetQualified sets the "qualified" field.
func (u *EvaluationUpsertOne) SetQualified(v bool) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetQualified(v)
	})
}

// UpdateQualified sets the "qualified" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateQualified() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateQualified()
	})
}

// SetScore sets the "score" field.
func (u *EvaluationUpsertOne) SetScore(v float64) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *EvaluationUpsertOne) AddScore(v float64) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateScore() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateScore()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *EvaluationUpsertOne) SetReasoning(v string) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateReasoning() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateReasoning()
	})
}

// SetCriteria sets the "criteria" field.
func (u *EvaluationUpsertOne) SetCriteria(v []map[string]interface{}) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateCriteria() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCriteria()
	})
}

// ClearCriteria clears the value of the "criteria" field.
func (u *EvaluationUpsertOne) ClearCriteria() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearCriteria()
	})
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (u *EvaluationUpsertOne) SetDisqualifyingFactor(v string) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetDisqualifyingFactor(v)
	})
}

// UpdateDisqualifyingFactor sets the "disqualifying_factor" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateDisqualifyingFactor() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateDisqualifyingFactor()
	})
}

// ClearDisqualifyingFactor clears the value of the "disqualifying_factor" field.
func (u *EvaluationUpsertOne) ClearDisqualifyingFactor() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearDisqualifyingFactor()
	})
}

// SetCallbackRequested sets the "callback_requested" field.
func (u *EvaluationUpsertOne) SetCallbackRequested(v bool) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCallbackRequested(v)
	})
}

// UpdateCallbackRequested sets the "callback_requested" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateCallbackRequested() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCallbackRequested()
	})
}

// SetCallbackNotes sets the "callback_notes" field.
func (u *EvaluationUpsertOne) SetCallbackNotes(v string) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCallbackNotes(v)
	})
}

// UpdateCallbackNotes sets the "callback_notes" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateCallbackNotes() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCallbackNotes()
	})
}

// ClearCallbackNotes clears the value of the "callback_notes" field.
func (u *EvaluationUpsertOne) ClearCallbackNotes() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearCallbackNotes()
	})
}

// SetCallbackAt sets the "callback_at" field.
func (u *EvaluationUpsertOne) SetCallbackAt(v time.Time) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCallbackAt(v)
	})
}

// UpdateCallbackAt sets the "callback_at" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateCallbackAt() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCallbackAt()
	})
}

// ClearCallbackAt clears the value of the "callback_at" field.
func (u *EvaluationUpsertOne) ClearCallbackAt() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearCallbackAt()
	})
}

// SetNeedsHuman sets the "needs_human" field.
func (u *EvaluationUpsertOne) SetNeedsHuman(v bool) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetNeedsHuman(v)
	})
}

// UpdateNeedsHuman sets the "needs_human" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateNeedsHuman() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateNeedsHuman()
	})
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (u *EvaluationUpsertOne) SetNeedsHumanNotes(v string) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetNeedsHumanNotes(v)
	})
}

// UpdateNeedsHumanNotes sets the "needs_human_notes" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateNeedsHumanNotes() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateNeedsHumanNotes()
	})
}

// ClearNeedsHumanNotes clears the value of the "needs_human_notes" field.
func (u *EvaluationUpsertOne) ClearNeedsHumanNotes() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearNeedsHumanNotes()
	})
}

// SetRawResponse sets the "raw_response" field.
func (u *EvaluationUpsertOne) SetRawResponse(v string) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetRawResponse(v)
	})
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateRawResponse() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateRawResponse()
	})
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *EvaluationUpsertOne) ClearRawResponse() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearRawResponse()
	})
}

// SetModel sets the "model" field.
func (u *EvaluationUpsertOne) SetModel(v string) *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EvaluationUpsertOne) UpdateModel() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *EvaluationUpsertOne) ClearModel() *EvaluationUpsertOne {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearModel()
	})
}

// Exec executes the query.
func (u *EvaluationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationCreateBulk is the builder for creating many Evaluation entities in bulk.
type EvaluationCreateBulk struct {
	config
	err      error
	builders []*EvaluationCreate
	conflict []sql.ConflictOption
}

// Save creates the Evaluation entities in the database.
func (_c *EvaluationCreateBulk) Save(ctx context.Context) ([]*Evaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationMutation)
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
func (_c *EvaluationCreateBulk) SaveX(ctx context.Context) []*Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evaluation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationUpsertBulk {
	_c.conflict = opts
	return &EvaluationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evaluation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationCreateBulk) OnConflictColumns(columns ...string) *EvaluationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationUpsertBulk{
		create: _c,
	}
}

// EvaluationUpsertBulk is the builder for "upsert"-ing
// a bulk of Evaluation nodes.
type EvaluationUpsertBulk struct {
	create *EvaluationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Evaluation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluationUpsertBulk) UpdateNewValues() *EvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(evaluation.FieldApplicationID)
			}
			if _, exists := b.mutation.CallID(); exists {
				s.SetIgnore(evaluation.FieldCallID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evaluation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evaluation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationUpsertBulk) Ignore() *EvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationUpsertBulk) DoNothing() *EvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationUpsertBulk) Update(set func(*EvaluationUpsert)) *EvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOutcome sets the "outcome" field.
func (u *EvaluationUpsertBulk) SetOutcome(v evaluation.Outcome) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateOutcome() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateOutcome()
	})
}

// SetQualified sets the "qualified" field.
func (u *EvaluationUpsertBulk) SetQualified(v bool) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetQualified(v)
	})
}

// UpdateQualified sets the "qualified" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateQualified() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateQualified()
	})
}

// SetScore sets the "score" field.
func (u *EvaluationUpsertBulk) SetScore(v float64) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *EvaluationUpsertBulk) AddScore(v float64) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateScore() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateScore()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *EvaluationUpsertBulk) SetReasoning(v string) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateReasoning() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateReasoning()
	})
}

// SetCriteria sets the "criteria" field.
func (u *EvaluationUpsertBulk) SetCriteria(v []map[string]interface{}) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateCriteria() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCriteria()
	})
}

// ClearCriteria clears the value of the "criteria" field.
func (u *EvaluationUpsertBulk) ClearCriteria() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearCriteria()
	})
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (u *EvaluationUpsertBulk) SetDisqualifyingFactor(v string) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetDisqualifyingFactor(v)
	})
}

// UpdateDisqualifyingFactor sets the "disqualifying_factor" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateDisqualifyingFactor() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateDisqualifyingFactor()
	})
}

// ClearDisqualifyingFactor clears the value of the "disqualifying_factor" field.
func (u *EvaluationUpsertBulk) ClearDisqualifyingFactor() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearDisqualifyingFactor()
	})
}

// SetCallbackRequested sets the "callback_requested" field.
func (u *EvaluationUpsertBulk) SetCallbackRequested(v bool) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCallbackRequested(v)
	})
}

// UpdateCallbackRequested sets the "callback_requested" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateCallbackRequested() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCallbackRequested()
	})
}

// SetCallbackNotes sets the "callback_notes" field.
func (u *EvaluationUpsertBulk) SetCallbackNotes(v string) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCallbackNotes(v)
	})
}

// UpdateCallbackNotes sets the "callback_notes" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateCallbackNotes() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCallbackNotes()
	})
}

// ClearCallbackNotes clears the value of the "callback_notes" field.
func (u *EvaluationUpsertBulk) ClearCallbackNotes() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearCallbackNotes()
	})
}

// SetCallbackAt sets the "callback_at" field.
func (u *EvaluationUpsertBulk) SetCallbackAt(v time.Time) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetCallbackAt(v)
	})
}

// UpdateCallbackAt sets the "callback_at" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateCallbackAt() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateCallbackAt()
	})
}

// ClearCallbackAt clears the value of the "callback_at" field.
func (u *EvaluationUpsertBulk) ClearCallbackAt() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearCallbackAt()
	})
}

// SetNeedsHuman sets the "needs_human" field.
func (u *EvaluationUpsertBulk) SetNeedsHuman(v bool) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetNeedsHuman(v)
	})
}

// UpdateNeedsHuman sets the "needs_human" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateNeedsHuman() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateNeedsHuman()
	})
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (u *EvaluationUpsertBulk) SetNeedsHumanNotes(v string) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetNeedsHumanNotes(v)
	})
}

// UpdateNeedsHumanNotes sets the "needs_human_notes" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateNeedsHumanNotes() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateNeedsHumanNotes()
	})
}

// ClearNeedsHumanNotes clears the value of the "needs_human_notes" field.
func (u *EvaluationUpsertBulk) ClearNeedsHumanNotes() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearNeedsHumanNotes()
	})
}

// SetRawResponse sets the "raw_response" field.
func (u *EvaluationUpsertBulk) SetRawResponse(v string) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetRawResponse(v)
	})
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateRawResponse() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateRawResponse()
	})
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *EvaluationUpsertBulk) ClearRawResponse() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearRawResponse()
	})
}

// SetModel sets the "model" field.
func (u *EvaluationUpsertBulk) SetModel(v string) *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EvaluationUpsertBulk) UpdateModel() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *EvaluationUpsertBulk) ClearModel() *EvaluationUpsertBulk {
	return u.Update(func(s *EvaluationUpsert) {
		s.ClearModel()
	})
}

// Exec executes the query.
func (u *EvaluationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
