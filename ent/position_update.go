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
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// PositionUpdate is the builder for updating Position entities.
type PositionUpdate struct {
	config
	hooks    []Hook
	mutation *PositionMutation
}

// Where appends a list predicates to the PositionUpdate builder.
func (_u *PositionUpdate) Where(ps ...predicate.Position) *PositionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PositionUpdate) SetTitle(v string) *PositionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableTitle(v *string) *PositionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PositionUpdate) SetDescription(v string) *PositionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableDescription(v *string) *PositionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PositionUpdate) ClearDescription() *PositionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PositionUpdate) SetStatus(v position.Status) *PositionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableStatus(v *position.Status) *PositionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentPrompt sets the "agent_prompt" field.
func (_u *PositionUpdate) SetAgentPrompt(v string) *PositionUpdate {
	_u.mutation.SetAgentPrompt(v)
	return _u
}

// SetNillableAgentPrompt sets the "agent_prompt" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableAgentPrompt(v *string) *PositionUpdate {
	if v != nil {
		_u.SetAgentPrompt(*v)
	}
	return _u
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (_u *PositionUpdate) ClearAgentPrompt() *PositionUpdate {
	_u.mutation.ClearAgentPrompt()
	return _u
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (_u *PositionUpdate) SetAgentFirstMessage(v string) *PositionUpdate {
	_u.mutation.SetAgentFirstMessage(v)
	return _u
}

// SetNillableAgentFirstMessage sets the "agent_first_message" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableAgentFirstMessage(v *string) *PositionUpdate {
	if v != nil {
		_u.SetAgentFirstMessage(*v)
	}
	return _u
}

// ClearAgentFirstMessage clears the value of the "agent_first_message" field.
func (_u *PositionUpdate) ClearAgentFirstMessage() *PositionUpdate {
	_u.mutation.ClearAgentFirstMessage()
	return _u
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (_u *PositionUpdate) SetQualificationCriteria(v string) *PositionUpdate {
	_u.mutation.SetQualificationCriteria(v)
	return _u
}

// SetNillableQualificationCriteria sets the "qualification_criteria" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableQualificationCriteria(v *string) *PositionUpdate {
	if v != nil {
		_u.SetQualificationCriteria(*v)
	}
	return _u
}

// ClearQualificationCriteria clears the value of the "qualification_criteria" field.
func (_u *PositionUpdate) ClearQualificationCriteria() *PositionUpdate {
	_u.mutation.ClearQualificationCriteria()
	return _u
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (_u *PositionUpdate) SetCallingHoursStart(v int) *PositionUpdate {
	_u.mutation.ResetCallingHoursStart()
	_u.mutation.SetCallingHoursStart(v)
	return _u
}

// SetNillableCallingHoursStart sets the "calling_hours_start" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableCallingHoursStart(v *int) *PositionUpdate {
	if v != nil {
		_u.SetCallingHoursStart(*v)
	}
	return _u
}

// AddCallingHoursStart adds value to the "calling_hours_start" field.
func (_u *PositionUpdate) AddCallingHoursStart(v int) *PositionUpdate {
	_u.mutation.AddCallingHoursStart(v)
	return _u
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (_u *PositionUpdate) SetCallingHoursEnd(v int) *PositionUpdate {
	_u.mutation.ResetCallingHoursEnd()
	_u.mutation.SetCallingHoursEnd(v)
	return _u
}

// SetNillableCallingHoursEnd sets the "calling_hours_end" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableCallingHoursEnd(v *int) *PositionUpdate {
	if v != nil {
		_u.SetCallingHoursEnd(*v)
	}
	return _u
}

// AddCallingHoursEnd adds value to the "calling_hours_end" field.
func (_u *PositionUpdate) AddCallingHoursEnd(v int) *PositionUpdate {
	_u.mutation.AddCallingHoursEnd(v)
	return _u
}

// SetCallRetryMax sets the "call_retry_max" field.
func (_u *PositionUpdate) SetCallRetryMax(v int) *PositionUpdate {
	_u.mutation.ResetCallRetryMax()
	_u.mutation.SetCallRetryMax(v)
	return _u
}

// SetNillableCallRetryMax sets the "call_retry_max" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableCallRetryMax(v *int) *PositionUpdate {
	if v != nil {
		_u.SetCallRetryMax(*v)
	}
	return _u
}

// AddCallRetryMax adds value to the "call_retry_max" field.
func (_u *PositionUpdate) AddCallRetryMax(v int) *PositionUpdate {
	_u.mutation.AddCallRetryMax(v)
	return _u
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (_u *PositionUpdate) SetCallRetryIntervalMinutes(v int) *PositionUpdate {
	_u.mutation.ResetCallRetryIntervalMinutes()
	_u.mutation.SetCallRetryIntervalMinutes(v)
	return _u
}

// SetNillableCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableCallRetryIntervalMinutes(v *int) *PositionUpdate {
	if v != nil {
		_u.SetCallRetryIntervalMinutes(*v)
	}
	return _u
}

// AddCallRetryIntervalMinutes adds value to the "call_retry_interval_minutes" field.
func (_u *PositionUpdate) AddCallRetryIntervalMinutes(v int) *PositionUpdate {
	_u.mutation.AddCallRetryIntervalMinutes(v)
	return _u
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (_u *PositionUpdate) SetFollowUpIntervalHours(v int) *PositionUpdate {
	_u.mutation.ResetFollowUpIntervalHours()
	_u.mutation.SetFollowUpIntervalHours(v)
	return _u
}

// SetNillableFollowUpIntervalHours sets the "follow_up_interval_hours" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableFollowUpIntervalHours(v *int) *PositionUpdate {
	if v != nil {
		_u.SetFollowUpIntervalHours(*v)
	}
	return _u
}

// AddFollowUpIntervalHours adds value to the "follow_up_interval_hours" field.
func (_u *PositionUpdate) AddFollowUpIntervalHours(v int) *PositionUpdate {
	_u.mutation.AddFollowUpIntervalHours(v)
	return _u
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (_u *PositionUpdate) SetRejectedCvTimeoutDays(v int) *PositionUpdate {
	_u.mutation.ResetRejectedCvTimeoutDays()
	_u.mutation.SetRejectedCvTimeoutDays(v)
	return _u
}

// SetNillableRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableRejectedCvTimeoutDays(v *int) *PositionUpdate {
	if v != nil {
		_u.SetRejectedCvTimeoutDays(*v)
	}
	return _u
}

// AddRejectedCvTimeoutDays adds value to the "rejected_cv_timeout_days" field.
func (_u *PositionUpdate) AddRejectedCvTimeoutDays(v int) *PositionUpdate {
	_u.mutation.AddRejectedCvTimeoutDays(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PositionUpdate) SetUpdatedAt(v time.Time) *PositionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *PositionUpdate) AddApplicationIDs(ids ...int) *PositionUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *PositionUpdate) AddApplications(v ...*Application) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the PositionMutation object of the builder.
func (_u *PositionUpdate) Mutation() *PositionMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *PositionUpdate) ClearApplications() *PositionUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *PositionUpdate) RemoveApplicationIDs(ids ...int) *PositionUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *PositionUpdate) RemoveApplications(v ...*Application) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PositionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PositionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PositionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PositionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PositionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := position.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PositionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := position.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Position.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PositionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(position.Table, position.Columns, sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(position.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(position.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(position.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(position.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentPrompt(); ok {
		_spec.SetField(position.FieldAgentPrompt, field.TypeString, value)
	}
	if _u.mutation.AgentPromptCleared() {
		_spec.ClearField(position.FieldAgentPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.AgentFirstMessage(); ok {
		_spec.SetField(position.FieldAgentFirstMessage, field.TypeString, value)
	}
	if _u.mutation.AgentFirstMessageCleared() {
		_spec.ClearField(position.FieldAgentFirstMessage, field.TypeString)
	}
	if value, ok := _u.mutation.QualificationCriteria(); ok {
		_spec.SetField(position.FieldQualificationCriteria, field.TypeString, value)
	}
	if _u.mutation.QualificationCriteriaCleared() {
		_spec.ClearField(position.FieldQualificationCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.CallingHoursStart(); ok {
		_spec.SetField(position.FieldCallingHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallingHoursStart(); ok {
		_spec.AddField(position.FieldCallingHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallingHoursEnd(); ok {
		_spec.SetField(position.FieldCallingHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallingHoursEnd(); ok {
		_spec.AddField(position.FieldCallingHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallRetryMax(); ok {
		_spec.SetField(position.FieldCallRetryMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallRetryMax(); ok {
		_spec.AddField(position.FieldCallRetryMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallRetryIntervalMinutes(); ok {
		_spec.SetField(position.FieldCallRetryIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallRetryIntervalMinutes(); ok {
		_spec.AddField(position.FieldCallRetryIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowUpIntervalHours(); ok {
		_spec.SetField(position.FieldFollowUpIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowUpIntervalHours(); ok {
		_spec.AddField(position.FieldFollowUpIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCvTimeoutDays(); ok {
		_spec.SetField(position.FieldRejectedCvTimeoutDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCvTimeoutDays(); ok {
		_spec.AddField(position.FieldRejectedCvTimeoutDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(position.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ApplicationsTable,
			Columns: []string{position.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ApplicationsTable,
			Columns: []string{position.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ApplicationsTable,
			Columns: []string{position.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{position.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PositionUpdateOne is the builder for updating a single Position entity.
type PositionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PositionMutation
}

// SetTitle sets the "title" field.
func (_u *PositionUpdateOne) SetTitle(v string) *PositionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableTitle(v *string) *PositionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PositionUpdateOne) SetDescription(v string) *PositionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableDescription(v *string) *PositionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PositionUpdateOne) ClearDescription() *PositionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PositionUpdateOne) SetStatus(v position.Status) *PositionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableStatus(v *position.Status) *PositionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentPrompt sets the "agent_prompt" field.
func (_u *PositionUpdateOne) SetAgentPrompt(v string) *PositionUpdateOne {
	_u.mutation.SetAgentPrompt(v)
	return _u
}

// SetNillableAgentPrompt sets the "agent_prompt" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableAgentPrompt(v *string) *PositionUpdateOne {
	if v != nil {
		_u.SetAgentPrompt(*v)
	}
	return _u
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (_u *PositionUpdateOne) ClearAgentPrompt() *PositionUpdateOne {
	_u.mutation.ClearAgentPrompt()
	return _u
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (_u *PositionUpdateOne) SetAgentFirstMessage(v string) *PositionUpdateOne {
	_u.mutation.SetAgentFirstMessage(v)
	return _u
}

// SetNillableAgentFirstMessage sets the "agent_first_message" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableAgentFirstMessage(v *string) *PositionUpdateOne {
	if v != nil {
		_u.SetAgentFirstMessage(*v)
	}
	return _u
}

// ClearAgentFirstMessage clears the value of the "agent_first_message" field.
func (_u *PositionUpdateOne) ClearAgentFirstMessage() *PositionUpdateOne {
	_u.mutation.ClearAgentFirstMessage()
	return _u
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (_u *PositionUpdateOne) SetQualificationCriteria(v string) *PositionUpdateOne {
	_u.mutation.SetQualificationCriteria(v)
	return _u
}

// SetNillableQualificationCriteria sets the "qualification_criteria" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableQualificationCriteria(v *string) *PositionUpdateOne {
	if v != nil {
		_u.SetQualificationCriteria(*v)
	}
	return _u
}

// ClearQualificationCriteria clears the value of the "qualification_criteria" field.
func (_u *PositionUpdateOne) ClearQualificationCriteria() *PositionUpdateOne {
	_u.mutation.ClearQualificationCriteria()
	return _u
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (_u *PositionUpdateOne) SetCallingHoursStart(v int) *PositionUpdateOne {
	_u.mutation.ResetCallingHoursStart()
	_u.mutation.SetCallingHoursStart(v)
	return _u
}

// SetNillableCallingHoursStart sets the "calling_hours_start" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableCallingHoursStart(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetCallingHoursStart(*v)
	}
	return _u
}

// AddCallingHoursStart adds value to the "calling_hours_start" field.
func (_u *PositionUpdateOne) AddCallingHoursStart(v int) *PositionUpdateOne {
	_u.mutation.AddCallingHoursStart(v)
	return _u
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (_u *PositionUpdateOne) SetCallingHoursEnd(v int) *PositionUpdateOne {
	_u.mutation.ResetCallingHoursEnd()
	_u.mutation.SetCallingHoursEnd(v)
	return _u
}

// SetNillableCallingHoursEnd sets the "calling_hours_end" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableCallingHoursEnd(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetCallingHoursEnd(*v)
	}
	return _u
}

// AddCallingHoursEnd adds value to the "calling_hours_end" field.
func (_u *PositionUpdateOne) AddCallingHoursEnd(v int) *PositionUpdateOne {
	_u.mutation.AddCallingHoursEnd(v)
	return _u
}

// SetCallRetryMax sets the "call_retry_max" field.
func (_u *PositionUpdateOne) SetCallRetryMax(v int) *PositionUpdateOne {
	_u.mutation.ResetCallRetryMax()
	_u.mutation.SetCallRetryMax(v)
	return _u
}

// SetNillableCallRetryMax sets the "call_retry_max" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableCallRetryMax(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetCallRetryMax(*v)
	}
	return _u
}

// AddCallRetryMax adds value to the "call_retry_max" field.
func (_u *PositionUpdateOne) AddCallRetryMax(v int) *PositionUpdateOne {
	_u.mutation.AddCallRetryMax(v)
	return _u
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (_u *PositionUpdateOne) SetCallRetryIntervalMinutes(v int) *PositionUpdateOne {
	_u.mutation.ResetCallRetryIntervalMinutes()
	_u.mutation.SetCallRetryIntervalMinutes(v)
	return _u
}

// SetNillableCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableCallRetryIntervalMinutes(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetCallRetryIntervalMinutes(*v)
	}
	return _u
}

// AddCallRetryIntervalMinutes adds value to the "call_retry_interval_minutes" field.
func (_u *PositionUpdateOne) AddCallRetryIntervalMinutes(v int) *PositionUpdateOne {
	_u.mutation.AddCallRetryIntervalMinutes(v)
	return _u
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (_u *PositionUpdateOne) SetFollowUpIntervalHours(v int) *PositionUpdateOne {
	_u.mutation.ResetFollowUpIntervalHours()
	_u.mutation.SetFollowUpIntervalHours(v)
	return _u
}

// SetNillableFollowUpIntervalHours sets the "follow_up_interval_hours" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableFollowUpIntervalHours(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetFollowUpIntervalHours(*v)
	}
	return _u
}

// AddFollowUpIntervalHours adds value to the "follow_up_interval_hours" field.
func (_u *PositionUpdateOne) AddFollowUpIntervalHours(v int) *PositionUpdateOne {
	_u.mutation.AddFollowUpIntervalHours(v)
	return _u
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (_u *PositionUpdateOne) SetRejectedCvTimeoutDays(v int) *PositionUpdateOne {
	_u.mutation.ResetRejectedCvTimeoutDays()
	_u.mutation.SetRejectedCvTimeoutDays(v)
	return _u
}

// SetNillableRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableRejectedCvTimeoutDays(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetRejectedCvTimeoutDays(*v)
	}
	return _u
}

// AddRejectedCvTimeoutDays adds value to the "rejected_cv_timeout_days" field.
func (_u *PositionUpdateOne) AddRejectedCvTimeoutDays(v int) *PositionUpdateOne {
	_u.mutation.AddRejectedCvTimeoutDays(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PositionUpdateOne) SetUpdatedAt(v time.Time) *PositionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *PositionUpdateOne) AddApplicationIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *PositionUpdateOne) AddApplications(v ...*Application) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the PositionMutation object of the builder.
func (_u *PositionUpdateOne) Mutation() *PositionMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *PositionUpdateOne) ClearApplications() *PositionUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *PositionUpdateOne) RemoveApplicationIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *PositionUpdateOne) RemoveApplications(v ...*Application) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the PositionUpdate builder.
func (_u *PositionUpdateOne) Where(ps ...predicate.Position) *PositionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PositionUpdateOne) Select(field string, fields ...string) *PositionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Position entity.
func (_u *PositionUpdateOne) Save(ctx context.Context) (*Position, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PositionUpdateOne) SaveX(ctx context.Context) *Position {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PositionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PositionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PositionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := position.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PositionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := position.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Position.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PositionUpdateOne) sqlSave(ctx context.Context) (_node *Position, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(position.Table, position.Columns, sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Position.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, position.FieldID)
		for _, f := range fields {
			if !position.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != position.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(position.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(position.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(position.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(position.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentPrompt(); ok {
		_spec.SetField(position.FieldAgentPrompt, field.TypeString, value)
	}
	if _u.mutation.AgentPromptCleared() {
		_spec.ClearField(position.FieldAgentPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.AgentFirstMessage(); ok {
		_spec.SetField(position.FieldAgentFirstMessage, field.TypeString, value)
	}
	if _u.mutation.AgentFirstMessageCleared() {
		_spec.ClearField(position.FieldAgentFirstMessage, field.TypeString)
	}
	if value, ok := _u.mutation.QualificationCriteria(); ok {
		_spec.SetField(position.FieldQualificationCriteria, field.TypeString, value)
	}
	if _u.mutation.QualificationCriteriaCleared() {
		_spec.ClearField(position.FieldQualificationCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.CallingHoursStart(); ok {
		_spec.SetField(position.FieldCallingHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallingHoursStart(); ok {
		_spec.AddField(position.FieldCallingHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallingHoursEnd(); ok {
		_spec.SetField(position.FieldCallingHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallingHoursEnd(); ok {
		_spec.AddField(position.FieldCallingHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallRetryMax(); ok {
		_spec.SetField(position.FieldCallRetryMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallRetryMax(); ok {
		_spec.AddField(position.FieldCallRetryMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CallRetryIntervalMinutes(); ok {
		_spec.SetField(position.FieldCallRetryIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallRetryIntervalMinutes(); ok {
		_spec.AddField(position.FieldCallRetryIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowUpIntervalHours(); ok {
		_spec.SetField(position.FieldFollowUpIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowUpIntervalHours(); ok {
		_spec.AddField(position.FieldFollowUpIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCvTimeoutDays(); ok {
		_spec.SetField(position.FieldRejectedCvTimeoutDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCvTimeoutDays(); ok {
		_spec.AddField(position.FieldRejectedCvTimeoutDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(position.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ApplicationsTable,
			Columns: []string{position.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ApplicationsTable,
			Columns: []string{position.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ApplicationsTable,
			Columns: []string{position.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Position{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{position.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
