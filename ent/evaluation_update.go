// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *EvaluationUpdate) SetOutcome(v evaluation.Outcome) *EvaluationUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableOutcome(v *evaluation.Outcome) *EvaluationUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetQualified sets the "qualified" field.
func (_u *EvaluationUpdate) SetQualified(v bool) *EvaluationUpdate {
	_u.mutation.SetQualified(v)
	return _u
}

// SetNillableQualified sets the "qualified" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableQualified(v *bool) *EvaluationUpdate {
	if v != nil {
		_u.SetQualified(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationUpdate) SetScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationUpdate) AddScore(v float64) *EvaluationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvaluationUpdate) SetReasoning(v string) *EvaluationUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableReasoning(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *EvaluationUpdate) SetCriteria(v []map[string]interface{}) *EvaluationUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// AppendCriteria appends value to the "criteria" field.
func (_u *EvaluationUpdate) AppendCriteria(v []map[string]interface{}) *EvaluationUpdate {
	_u.mutation.AppendCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *EvaluationUpdate) ClearCriteria() *EvaluationUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (_u *EvaluationUpdate) SetDisqualifyingFactor(v string) *EvaluationUpdate {
	_u.mutation.SetDisqualifyingFactor(v)
	return _u
}

// SetNillableDisqualifyingFactor sets the "disqualifying_factor" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableDisqualifyingFactor(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetDisqualifyingFactor(*v)
	}
	return _u
}

// ClearDisqualifyingFactor clears the value of the "disqualifying_factor" field.
func (_u *EvaluationUpdate) ClearDisqualifyingFactor() *EvaluationUpdate {
	_u.mutation.ClearDisqualifyingFactor()
	return _u
}

// SetCallbackRequested sets the "callback_requested" field.
func (_u *EvaluationUpdate) SetCallbackRequested(v bool) *EvaluationUpdate {
	_u.mutation.SetCallbackRequested(v)
	return _u
}

// SetNillableCallbackRequested sets the "callback_requested" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCallbackRequested(v *bool) *EvaluationUpdate {
	if v != nil {
		_u.SetCallbackRequested(*v)
	}
	return _u
}

// SetCallbackNotes sets the "callback_notes" field.
func (_u *EvaluationUpdate) SetCallbackNotes(v string) *EvaluationUpdate {
	_u.mutation.SetCallbackNotes(v)
	return _u
}

// SetNillableCallbackNotes sets the "callback_notes" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCallbackNotes(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetCallbackNotes(*v)
	}
	return _u
}

// ClearCallbackNotes clears the value of the "callback_notes" field.
func (_u *EvaluationUpdate) ClearCallbackNotes() *EvaluationUpdate {
	_u.mutation.ClearCallbackNotes()
	return _u
}

// SetCallbackAt sets the "callback_at" field.
func (_u *EvaluationUpdate) SetCallbackAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetCallbackAt(v)
	return _u
}

// SetNillableCallbackAt sets the "callback_at" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCallbackAt(v *time.Time) *EvaluationUpdate {
	if v != nil {
		_u.SetCallbackAt(*v)
	}
	return _u
}

// ClearCallbackAt clears the value of the "callback_at" field.
func (_u *EvaluationUpdate) ClearCallbackAt() *EvaluationUpdate {
	_u.mutation.ClearCallbackAt()
	return _u
}

// SetNeedsHuman sets the "needs_human" field.
func (_u *EvaluationUpdate) SetNeedsHuman(v bool) *EvaluationUpdate {
	_u.mutation.SetNeedsHuman(v)
	return _u
}

// SetNillableNeedsHuman sets the "needs_human" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableNeedsHuman(v *bool) *EvaluationUpdate {
	if v != nil {
		_u.SetNeedsHuman(*v)
	}
	return _u
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (_u *EvaluationUpdate) SetNeedsHumanNotes(v string) *EvaluationUpdate {
	_u.mutation.SetNeedsHumanNotes(v)
	return _u
}

// SetNillableNeedsHumanNotes sets the "needs_human_notes" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableNeedsHumanNotes(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetNeedsHumanNotes(*v)
	}
	return _u
}

// ClearNeedsHumanNotes clears the value of the "needs_human_notes" field.
func (_u *EvaluationUpdate) ClearNeedsHumanNotes() *EvaluationUpdate {
	_u.mutation.ClearNeedsHumanNotes()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *EvaluationUpdate) SetRawResponse(v string) *EvaluationUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableRawResponse(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *EvaluationUpdate) ClearRawResponse() *EvaluationUpdate {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetModel sets the "model" field.
func (_u *EvaluationUpdate) SetModel(v string) *EvaluationUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableModel(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *EvaluationUpdate) ClearModel() *EvaluationUpdate {
	_u.mutation.ClearModel()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := evaluation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Evaluation.outcome": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.application"`)
	}
	if _u.mutation.CallCleared() && len(_u.mutation.CallIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.call"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(evaluation.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Qualified(); ok {
		_spec.SetField(evaluation.FieldQualified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(evaluation.FieldCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldCriteria, value)
		})
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(evaluation.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisqualifyingFactor(); ok {
		_spec.SetField(evaluation.FieldDisqualifyingFactor, field.TypeString, value)
	}
	if _u.mutation.DisqualifyingFactorCleared() {
		_spec.ClearField(evaluation.FieldDisqualifyingFactor, field.TypeString)
	}
	if value, ok := _u.mutation.CallbackRequested(); ok {
		_spec.SetField(evaluation.FieldCallbackRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CallbackNotes(); ok {
		_spec.SetField(evaluation.FieldCallbackNotes, field.TypeString, value)
	}
	if _u.mutation.CallbackNotesCleared() {
		_spec.ClearField(evaluation.FieldCallbackNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CallbackAt(); ok {
		_spec.SetField(evaluation.FieldCallbackAt, field.TypeTime, value)
	}
	if _u.mutation.CallbackAtCleared() {
		_spec.ClearField(evaluation.FieldCallbackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NeedsHuman(); ok {
		_spec.SetField(evaluation.FieldNeedsHuman, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsHumanNotes(); ok {
		_spec.SetField(evaluation.FieldNeedsHumanNotes, field.TypeString, value)
	}
	if _u.mutation.NeedsHumanNotesCleared() {
		_spec.ClearField(evaluation.FieldNeedsHumanNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(evaluation.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(evaluation.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evaluation.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(evaluation.FieldModel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetOutcome sets the "outcome" field.
func (_u *EvaluationUpdateOne) SetOutcome(v evaluation.Outcome) *EvaluationUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableOutcome(v *evaluation.Outcome) *EvaluationUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetQualified sets the "qualified" field.
func (_u *EvaluationUpdateOne) SetQualified(v bool) *EvaluationUpdateOne {
	_u.mutation.SetQualified(v)
	return _u
}

// SetNillableQualified sets the "qualified" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableQualified(v *bool) *EvaluationUpdateOne {
	if v != nil {
		_u.SetQualified(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationUpdateOne) SetScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationUpdateOne) AddScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvaluationUpdateOne) SetReasoning(v string) *EvaluationUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableReasoning(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *EvaluationUpdateOne) SetCriteria(v []map[string]interface{}) *EvaluationUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// AppendCriteria appends value to the "criteria" field.
func (_u *EvaluationUpdateOne) AppendCriteria(v []map[string]interface{}) *EvaluationUpdateOne {
	_u.mutation.AppendCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *EvaluationUpdateOne) ClearCriteria() *EvaluationUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// SetDisqualifyingFactor sets the "disqualifying_factor" field.
func (_u *EvaluationUpdateOne) SetDisqualifyingFactor(v string) *EvaluationUpdateOne {
	_u.mutation.SetDisqualifyingFactor(v)
	return _u
}

// SetNillableDisqualifyingFactor sets the "disqualifying_factor" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableDisqualifyingFactor(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetDisqualifyingFactor(*v)
	}
	return _u
}

// ClearDisqualifyingFactor clears the value of the "disqualifying_factor" field.
func (_u *EvaluationUpdateOne) ClearDisqualifyingFactor() *EvaluationUpdateOne {
	_u.mutation.ClearDisqualifyingFactor()
	return _u
}

// SetCallbackRequested sets the "callback_requested" field.
func (_u *EvaluationUpdateOne) SetCallbackRequested(v bool) *EvaluationUpdateOne {
	_u.mutation.SetCallbackRequested(v)
	return _u
}

// SetNillableCallbackRequested sets the "callback_requested" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCallbackRequested(v *bool) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCallbackRequested(*v)
	}
	return _u
}

// SetCallbackNotes sets the "callback_notes" field.
func (_u *EvaluationUpdateOne) SetCallbackNotes(v string) *EvaluationUpdateOne {
	_u.mutation.SetCallbackNotes(v)
	return _u
}

// SetNillableCallbackNotes sets the "callback_notes" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCallbackNotes(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCallbackNotes(*v)
	}
	return _u
}

// ClearCallbackNotes clears the value of the "callback_notes" field.
func (_u *EvaluationUpdateOne) ClearCallbackNotes() *EvaluationUpdateOne {
	_u.mutation.ClearCallbackNotes()
	return _u
}

// SetCallbackAt sets the "callback_at" field.
func (_u *EvaluationUpdateOne) SetCallbackAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetCallbackAt(v)
	return _u
}

// SetNillableCallbackAt sets the "callback_at" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCallbackAt(v *time.Time) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCallbackAt(*v)
	}
	return _u
}

// ClearCallbackAt clears the value of the "callback_at" field.
func (_u *EvaluationUpdateOne) ClearCallbackAt() *EvaluationUpdateOne {
	_u.mutation.ClearCallbackAt()
	return _u
}

// SetNeedsHuman sets the "needs_human" field.
func (_u *EvaluationUpdateOne) SetNeedsHuman(v bool) *EvaluationUpdateOne {
	_u.mutation.SetNeedsHuman(v)
	return _u
}

// SetNillableNeedsHuman sets the "needs_human" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableNeedsHuman(v *bool) *EvaluationUpdateOne {
	if v != nil {
		_u.SetNeedsHuman(*v)
	}
	return _u
}

// SetNeedsHumanNotes sets the "needs_human_notes" field.
func (_u *EvaluationUpdateOne) SetNeedsHumanNotes(v string) *EvaluationUpdateOne {
	_u.mutation.SetNeedsHumanNotes(v)
	return _u
}

// SetNillableNeedsHumanNotes sets the "needs_human_notes" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableNeedsHumanNotes(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetNeedsHumanNotes(*v)
	}
	return _u
}

// ClearNeedsHumanNotes clears the value of the "needs_human_notes" field.
func (_u *EvaluationUpdateOne) ClearNeedsHumanNotes() *EvaluationUpdateOne {
	_u.mutation.ClearNeedsHumanNotes()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *EvaluationUpdateOne) SetRawResponse(v string) *EvaluationUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableRawResponse(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *EvaluationUpdateOne) ClearRawResponse() *EvaluationUpdateOne {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetModel sets the "model" field.
func (_u *EvaluationUpdateOne) SetModel(v string) *EvaluationUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableModel(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *EvaluationUpdateOne) ClearModel() *EvaluationUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := evaluation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Evaluation.outcome": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.application"`)
	}
	if _u.mutation.CallCleared() && len(_u.mutation.CallIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.call"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(evaluation.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Qualified(); ok {
		_spec.SetField(evaluation.FieldQualified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(evaluation.FieldCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldCriteria, value)
		})
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(evaluation.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisqualifyingFactor(); ok {
		_spec.SetField(evaluation.FieldDisqualifyingFactor, field.TypeString, value)
	}
	if _u.mutation.DisqualifyingFactorCleared() {
		_spec.ClearField(evaluation.FieldDisqualifyingFactor, field.TypeString)
	}
	if value, ok := _u.mutation.CallbackRequested(); ok {
		_spec.SetField(evaluation.FieldCallbackRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CallbackNotes(); ok {
		_spec.SetField(evaluation.FieldCallbackNotes, field.TypeString, value)
	}
	if _u.mutation.CallbackNotesCleared() {
		_spec.ClearField(evaluation.FieldCallbackNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CallbackAt(); ok {
		_spec.SetField(evaluation.FieldCallbackAt, field.TypeTime, value)
	}
	if _u.mutation.CallbackAtCleared() {
		_spec.ClearField(evaluation.FieldCallbackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NeedsHuman(); ok {
		_spec.SetField(evaluation.FieldNeedsHuman, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsHumanNotes(); ok {
		_spec.SetField(evaluation.FieldNeedsHumanNotes, field.TypeString, value)
	}
	if _u.mutation.NeedsHumanNotesCleared() {
		_spec.ClearField(evaluation.FieldNeedsHumanNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(evaluation.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(evaluation.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evaluation.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(evaluation.FieldModel, field.TypeString)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
