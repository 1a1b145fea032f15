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
)

// PositionCreate is the builder for creating a Position entity.
type PositionCreate struct {
	config
	mutation *PositionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *PositionCreate) SetTitle(v string) *PositionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PositionCreate) SetDescription(v string) *PositionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PositionCreate) SetNillableDescription(v *string) *PositionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PositionCreate) SetStatus(v position.Status) *PositionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PositionCreate) SetNillableStatus(v *position.Status) *PositionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentPrompt sets the "agent_prompt" field.
func (_c *PositionCreate) SetAgentPrompt(v string) *PositionCreate {
	_c.mutation.SetAgentPrompt(v)
	return _c
}

// SetNillableAgentPrompt sets the "agent_prompt" field if the given value is not nil.
func (_c *PositionCreate) SetNillableAgentPrompt(v *string) *PositionCreate {
	if v != nil {
		_c.SetAgentPrompt(*v)
	}
	return _c
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (_c *PositionCreate) SetAgentFirstMessage(v string) *PositionCreate {
	_c.mutation.SetAgentFirstMessage(v)
	return _c
}

// SetNillableAgentFirstMessage sets the "agent_first_message" field if the given value is not nil.
func (_c *PositionCreate) SetNillableAgentFirstMessage(v *string) *PositionCreate {
	if v != nil {
		_c.SetAgentFirstMessage(*v)
	}
	return _c
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (_c *PositionCreate) SetQualificationCriteria(v string) *PositionCreate {
	_c.mutation.SetQualificationCriteria(v)
	return _c
}

// SetNillableQualificationCriteria sets the "qualification_criteria" field if the given value is not nil.
func (_c *PositionCreate) SetNillableQualificationCriteria(v *string) *PositionCreate {
	if v != nil {
		_c.SetQualificationCriteria(*v)
	}
	return _c
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (_c *PositionCreate) SetCallingHoursStart(v int) *PositionCreate {
	_c.mutation.SetCallingHoursStart(v)
	return _c
}

// SetNillableCallingHoursStart sets the "calling_hours_start" field if the given value is not nil.
func (_c *PositionCreate) SetNillableCallingHoursStart(v *int) *PositionCreate {
	if v != nil {
		_c.SetCallingHoursStart(*v)
	}
	return _c
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (_c *PositionCreate) SetCallingHoursEnd(v int) *PositionCreate {
	_c.mutation.SetCallingHoursEnd(v)
	return _c
}

// SetNillableCallingHoursEnd sets the "calling_hours_end" field if the given value is not nil.
func (_c *PositionCreate) SetNillableCallingHoursEnd(v *int) *PositionCreate {
	if v != nil {
		_c.SetCallingHoursEnd(*v)
	}
	return _c
}

// SetCallRetryMax sets the "call_retry_max" field.
func (_c *PositionCreate) SetCallRetryMax(v int) *PositionCreate {
	_c.mutation.SetCallRetryMax(v)
	return _c
}

// SetNillableCallRetryMax sets the "call_retry_max" field if the given value is not nil.
func (_c *PositionCreate) SetNillableCallRetryMax(v *int) *PositionCreate {
	if v != nil {
		_c.SetCallRetryMax(*v)
	}
	return _c
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (_c *PositionCreate) SetCallRetryIntervalMinutes(v int) *PositionCreate {
	_c.mutation.SetCallRetryIntervalMinutes(v)
	return _c
}

// SetNillableCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field if the given value is not nil.
func (_c *PositionCreate) SetNillableCallRetryIntervalMinutes(v *int) *PositionCreate {
	if v != nil {
		_c.SetCallRetryIntervalMinutes(*v)
	}
	return _c
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (_c *PositionCreate) SetFollowUpIntervalHours(v int) *PositionCreate {
	_c.mutation.SetFollowUpIntervalHours(v)
	return _c
}

// SetNillableFollowUpIntervalHours sets the "follow_up_interval_hours" field if the given value is not nil.
func (_c *PositionCreate) SetNillableFollowUpIntervalHours(v *int) *PositionCreate {
	if v != nil {
		_c.SetFollowUpIntervalHours(*v)
	}
	return _c
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (_c *PositionCreate) SetRejectedCvTimeoutDays(v int) *PositionCreate {
	_c.mutation.SetRejectedCvTimeoutDays(v)
	return _c
}

// SetNillableRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field if the given value is not nil.
func (_c *PositionCreate) SetNillableRejectedCvTimeoutDays(v *int) *PositionCreate {
	if v != nil {
		_c.SetRejectedCvTimeoutDays(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PositionCreate) SetCreatedAt(v time.Time) *PositionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PositionCreate) SetNillableCreatedAt(v *time.Time) *PositionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PositionCreate) SetUpdatedAt(v time.Time) *PositionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PositionCreate) SetNillableUpdatedAt(v *time.Time) *PositionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_c *PositionCreate) AddApplicationIDs(ids ...int) *PositionCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the Application entity.
func (_c *PositionCreate) AddApplications(v ...*Application) *PositionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// Mutation returns the PositionMutation object of the builder.
func (_c *PositionCreate) Mutation() *PositionMutation {
	return _c.mutation
}

// Save creates the Position in the database.
func (_c *PositionCreate) Save(ctx context.Context) (*Position, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PositionCreate) SaveX(ctx context.Context) *Position {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PositionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PositionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PositionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := position.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CallingHoursStart(); !ok {
		v := position.DefaultCallingHoursStart
		_c.mutation.SetCallingHoursStart(v)
	}
	if _, ok := _c.mutation.CallingHoursEnd(); !ok {
		v := position.DefaultCallingHoursEnd
		_c.mutation.SetCallingHoursEnd(v)
	}
	if _, ok := _c.mutation.CallRetryMax(); !ok {
		v := position.DefaultCallRetryMax
		_c.mutation.SetCallRetryMax(v)
	}
	if _, ok := _c.mutation.CallRetryIntervalMinutes(); !ok {
		v := position.DefaultCallRetryIntervalMinutes
		_c.mutation.SetCallRetryIntervalMinutes(v)
	}
	if _, ok := _c.mutation.FollowUpIntervalHours(); !ok {
		v := position.DefaultFollowUpIntervalHours
		_c.mutation.SetFollowUpIntervalHours(v)
	}
	if _, ok := _c.mutation.RejectedCvTimeoutDays(); !ok {
		v := position.DefaultRejectedCvTimeoutDays
		_c.mutation.SetRejectedCvTimeoutDays(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := position.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := position.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PositionCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Position.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Position.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := position.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Position.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CallingHoursStart(); !ok {
		return &ValidationError{Name: "calling_hours_start", err: errors.New(`ent: missing required field "Position.calling_hours_start"`)}
	}
	if _, ok := _c.mutation.CallingHoursEnd(); !ok {
		return &ValidationError{Name: "calling_hours_end", err: errors.New(`ent: missing required field "Position.calling_hours_end"`)}
	}
	if _, ok := _c.mutation.CallRetryMax(); !ok {
		return &ValidationError{Name: "call_retry_max", err: errors.New(`ent: missing required field "Position.call_retry_max"`)}
	}
	if _, ok := _c.mutation.CallRetryIntervalMinutes(); !ok {
		return &ValidationError{Name: "call_retry_interval_minutes", err: errors.New(`ent: missing required field "Position.call_retry_interval_minutes"`)}
	}
	if _, ok := _c.mutation.FollowUpIntervalHours(); !ok {
		return &ValidationError{Name: "follow_up_interval_hours", err: errors.New(`ent: missing required field "Position.follow_up_interval_hours"`)}
	}
	if _, ok := _c.mutation.RejectedCvTimeoutDays(); !ok {
		return &ValidationError{Name: "rejected_cv_timeout_days", err: errors.New(`ent: missing required field "Position.rejected_cv_timeout_days"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Position.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Position.updated_at"`)}
	}
	return nil
}

func (_c *PositionCreate) sqlSave(ctx context.Context) (*Position, error) {
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

func (_c *PositionCreate) createSpec() (*Position, *sqlgraph.CreateSpec) {
	var (
		_node = &Position{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(position.Table, sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(position.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(position.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(position.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentPrompt(); ok {
		_spec.SetField(position.FieldAgentPrompt, field.TypeString, value)
		_node.AgentPrompt = value
	}
	if value, ok := _c.mutation.AgentFirstMessage(); ok {
		_spec.SetField(position.FieldAgentFirstMessage, field.TypeString, value)
		_node.AgentFirstMessage = value
	}
	if value, ok := _c.mutation.QualificationCriteria(); ok {
		_spec.SetField(position.FieldQualificationCriteria, field.TypeString, value)
		_node.QualificationCriteria = value
	}
	if value, ok := _c.mutation.CallingHoursStart(); ok {
		_spec.SetField(position.FieldCallingHoursStart, field.TypeInt, value)
		_node.CallingHoursStart = value
	}
	if value, ok := _c.mutation.CallingHoursEnd(); ok {
		_spec.SetField(position.FieldCallingHoursEnd, field.TypeInt, value)
		_node.CallingHoursEnd = value
	}
	if value, ok := _c.mutation.CallRetryMax(); ok {
		_spec.SetField(position.FieldCallRetryMax, field.TypeInt, value)
		_node.CallRetryMax = value
	}
	if value, ok := _c.mutation.CallRetryIntervalMinutes(); ok {
		_spec.SetField(position.FieldCallRetryIntervalMinutes, field.TypeInt, value)
		_node.CallRetryIntervalMinutes = value
	}
	if value, ok := _c.mutation.FollowUpIntervalHours(); ok {
		_spec.SetField(position.FieldFollowUpIntervalHours, field.TypeInt, value)
		_node.FollowUpIntervalHours = value
	}
	if value, ok := _c.mutation.RejectedCvTimeoutDays(); ok {
		_spec.SetField(position.FieldRejectedCvTimeoutDays, field.TypeInt, value)
		_node.RejectedCvTimeoutDays = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(position.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(position.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Position.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PositionUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *PositionCreate) OnConflict(opts ...sql.ConflictOption) *PositionUpsertOne {
	_c.conflict = opts
	return &PositionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Position.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PositionCreate) OnConflictColumns(columns ...string) *PositionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PositionUpsertOne{
		create: _c,
	}
}

type (
	// PositionUpsertOne is the builder for "upsert"-ing
	//  one Position node.
	PositionUpsertOne struct {
		create *PositionCreate
	}

	// PositionUpsert is the "OnConflict" setter.
	PositionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *PositionUpsert) SetTitle(v string) *PositionUpsert {
	u.Set(position.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PositionUpsert) UpdateTitle() *PositionUpsert {
	u.SetExcluded(position.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *PositionUpsert) SetDescription(v string) *PositionUpsert {
	u.Set(position.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PositionUpsert) UpdateDescription() *PositionUpsert {
	u.SetExcluded(position.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *PositionUpsert) ClearDescription() *PositionUpsert {
	u.SetNull(position.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *PositionUpsert) SetStatus(v position.Status) *PositionUpsert {
	u.Set(position.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PositionUpsert) UpdateStatus() *PositionUpsert {
	u.SetExcluded(position.FieldStatus)
	return u
}

// SetAgentPrompt sets the "agent_prompt" field.
func (u *PositionUpsert) SetAgentPrompt(v string) *PositionUpsert {
	u.Set(position.FieldAgentPrompt, v)
	return u
}

// UpdateAgentPrompt sets the "agent_prompt" field to the value that was provided on create.
func (u *PositionUpsert) UpdateAgentPrompt() *PositionUpsert {
	u.SetExcluded(position.FieldAgentPrompt)
	return u
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (u *PositionUpsert) ClearAgentPrompt() *PositionUpsert {
	u.SetNull(position.FieldAgentPrompt)
	return u
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (u *PositionUpsert) SetAgentFirstMessage(v string) *PositionUpsert {
	u.Set(position.FieldAgentFirstMessage, v)
	return u
}

// UpdateAgentFirstMessage sets the "agent_first_message" field to the value that was provided on create.
func (u *PositionUpsert) UpdateAgentFirstMessage() *PositionUpsert {
	u.SetExcluded(position.FieldAgentFirstMessage)
	return u
}

// ClearAgentFirstMessage clears the value of the "agent_first_message" field.
func (u *PositionUpsert) ClearAgentFirstMessage() *PositionUpsert {
	u.SetNull(position.FieldAgentFirstMessage)
	return u
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (u *PositionUpsert) SetQualificationCriteria(v string) *PositionUpsert {
	u.Set(position.FieldQualificationCriteria, v)
	return u
}

// UpdateQualificationCriteria sets the "qualification_criteria" field to the value that was provided on create.
func (u *PositionUpsert) UpdateQualificationCriteria() *PositionUpsert {
	u.SetExcluded(position.FieldQualificationCriteria)
	return u
}

// ClearQualificationCriteria clears the value of the "qualification_criteria" field.
func (u *PositionUpsert) ClearQualificationCriteria() *PositionUpsert {
	u.SetNull(position.FieldQualificationCriteria)
	return u
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (u *PositionUpsert) SetCallingHoursStart(v int) *PositionUpsert {
	u.Set(position.FieldCallingHoursStart, v)
	return u
}

// UpdateCallingHoursStart sets the "calling_hours_start" field to the value that was provided on create.
func (u *PositionUpsert) UpdateCallingHoursStart() *PositionUpsert {
	u.SetExcluded(position.FieldCallingHoursStart)
	return u
}

// AddCallingHoursStart adds v to the "calling_hours_start" field.
func (u *PositionUpsert) AddCallingHoursStart(v int) *PositionUpsert {
	u.Add(position.FieldCallingHoursStart, v)
	return u
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (u *PositionUpsert) SetCallingHoursEnd(v int) *PositionUpsert {
	u.Set(position.FieldCallingHoursEnd, v)
	return u
}

// UpdateCallingHoursEnd sets the "calling_hours_end" field to the value that was provided on create.
func (u *PositionUpsert) UpdateCallingHoursEnd() *PositionUpsert {
	u.SetExcluded(position.FieldCallingHoursEnd)
	return u
}

// AddCallingHoursEnd adds v to the "calling_hours_end" field.
func (u *PositionUpsert) AddCallingHoursEnd(v int) *PositionUpsert {
	u.Add(position.FieldCallingHoursEnd, v)
	return u
}

// SetCallRetryMax sets the "call_retry_max" field.
func (u *PositionUpsert) SetCallRetryMax(v int) *PositionUpsert {
	u.Set(position.FieldCallRetryMax, v)
	return u
}

// UpdateCallRetryMax sets the "call_retry_max" field to the value that was provided on create.
func (u *PositionUpsert) UpdateCallRetryMax() *PositionUpsert {
	u.SetExcluded(position.FieldCallRetryMax)
	return u
}

// AddCallRetryMax adds v to the "call_retry_max" field.
func (u *PositionUpsert) AddCallRetryMax(v int) *PositionUpsert {
	u.Add(position.FieldCallRetryMax, v)
	return u
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (u *PositionUpsert) SetCallRetryIntervalMinutes(v int) *PositionUpsert {
	u.Set(position.FieldCallRetryIntervalMinutes, v)
	return u
}

// UpdateCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field to the value that was provided on create.
func (u *PositionUpsert) UpdateCallRetryIntervalMinutes() *PositionUpsert {
	u.SetExcluded(position.FieldCallRetryIntervalMinutes)
	return u
}

// AddCallRetryIntervalMinutes adds v to the "call_retry_interval_minutes" field.
func (u *PositionUpsert) AddCallRetryIntervalMinutes(v int) *PositionUpsert {
	u.Add(position.FieldCallRetryIntervalMinutes, v)
	return u
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (u *PositionUpsert) SetFollowUpIntervalHours(v int) *PositionUpsert {
	u.Set(position.FieldFollowUpIntervalHours, v)
	return u
}

// UpdateFollowUpIntervalHours sets the "follow_up_interval_hours" field to the value that was provided on create.
func (u *PositionUpsert) UpdateFollowUpIntervalHours() *PositionUpsert {
	u.SetExcluded(position.FieldFollowUpIntervalHours)
	return u
}

// AddFollowUpIntervalHours adds v to the "follow_up_interval_hours" field.
func (u *PositionUpsert) AddFollowUpIntervalHours(v int) *PositionUpsert {
	u.Add(position.FieldFollowUpIntervalHours, v)
	return u
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (u *PositionUpsert) SetRejectedCvTimeoutDays(v int) *PositionUpsert {
	u.Set(position.FieldRejectedCvTimeoutDays, v)
	return u
}

// UpdateRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field to the value that was provided on create.
func (u *PositionUpsert) UpdateRejectedCvTimeoutDays() *PositionUpsert {
	u.SetExcluded(position.FieldRejectedCvTimeoutDays)
	return u
}

// AddRejectedCvTimeoutDays adds v to the "rejected_cv_timeout_days" field.
func (u *PositionUpsert) AddRejectedCvTimeoutDays(v int) *PositionUpsert {
	u.Add(position.FieldRejectedCvTimeoutDays, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PositionUpsert) SetUpdatedAt(v time.Time) *PositionUpsert {
	u.Set(position.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PositionUpsert) UpdateUpdatedAt() *PositionUpsert {
	u.SetExcluded(position.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Position.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PositionUpsertOne) UpdateNewValues() *PositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(position.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Position.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PositionUpsertOne) Ignore() *PositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PositionUpsertOne) DoNothing() *PositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PositionCreate.OnConflict
// documentation for more info.
func (u *PositionUpsertOne) Update(set func(*PositionUpsert)) *PositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PositionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *PositionUpsertOne) SetTitle(v string) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateTitle() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *PositionUpsertOne) SetDescription(v string) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateDescription() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PositionUpsertOne) ClearDescription() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *PositionUpsertOne) SetStatus(v position.Status) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateStatus() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentPrompt sets the "agent_prompt" field.
func (u *PositionUpsertOne) SetAgentPrompt(v string) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetAgentPrompt(v)
	})
}

// UpdateAgentPrompt sets the "agent_prompt" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateAgentPrompt() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateAgentPrompt()
	})
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (u *PositionUpsertOne) ClearAgentPrompt() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.ClearAgentPrompt()
	})
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (u *PositionUpsertOne) SetAgentFirstMessage(v string) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetAgentFirstMessage(v)
	})
}

// UpdateAgentFirstMessage sets the "agent_first_message" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateAgentFirstMessage() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateAgentFirstMessage()
	})
}

// ClearAgentFirstMessage clears the value of the "agent_first_message" field.
func (u *PositionUpsertOne) ClearAgentFirstMessage() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.ClearAgentFirstMessage()
	})
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (u *PositionUpsertOne) SetQualificationCriteria(v string) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetQualificationCriteria(v)
	})
}

// UpdateQualificationCriteria sets the "qualification_criteria" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateQualificationCriteria() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateQualificationCriteria()
	})
}

// ClearQualificationCriteria clears the value of the "qualification_criteria" field.
func (u *PositionUpsertOne) ClearQualificationCriteria() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.ClearQualificationCriteria()
	})
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (u *PositionUpsertOne) SetCallingHoursStart(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallingHoursStart(v)
	})
}

// AddCallingHoursStart adds v to the "calling_hours_start" field.
func (u *PositionUpsertOne) AddCallingHoursStart(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallingHoursStart(v)
	})
}

// UpdateCallingHoursStart sets the "calling_hours_start" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateCallingHoursStart() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallingHoursStart()
	})
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (u *PositionUpsertOne) SetCallingHoursEnd(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallingHoursEnd(v)
	})
}

// AddCallingHoursEnd adds v to the "calling_hours_end" field.
func (u *PositionUpsertOne) AddCallingHoursEnd(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallingHoursEnd(v)
	})
}

// UpdateCallingHoursEnd sets the "calling_hours_end" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateCallingHoursEnd() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallingHoursEnd()
	})
}

// SetCallRetryMax sets the "call_retry_max" field.
func (u *PositionUpsertOne) SetCallRetryMax(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallRetryMax(v)
	})
}

// AddCallRetryMax adds v to the "call_retry_max" field.
func (u *PositionUpsertOne) AddCallRetryMax(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallRetryMax(v)
	})
}

// UpdateCallRetryMax sets the "call_retry_max" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateCallRetryMax() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallRetryMax()
	})
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (u *PositionUpsertOne) SetCallRetryIntervalMinutes(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallRetryIntervalMinutes(v)
	})
}

// AddCallRetryIntervalMinutes adds v to the "call_retry_interval_minutes" field.
func (u *PositionUpsertOne) AddCallRetryIntervalMinutes(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallRetryIntervalMinutes(v)
	})
}

// UpdateCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateCallRetryIntervalMinutes() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallRetryIntervalMinutes()
	})
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (u *PositionUpsertOne) SetFollowUpIntervalHours(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetFollowUpIntervalHours(v)
	})
}

// AddFollowUpIntervalHours adds v to the "follow_up_interval_hours" field.
func (u *PositionUpsertOne) AddFollowUpIntervalHours(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.AddFollowUpIntervalHours(v)
	})
}

// UpdateFollowUpIntervalHours sets the "follow_up_interval_hours" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateFollowUpIntervalHours() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateFollowUpIntervalHours()
	})
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (u *PositionUpsertOne) SetRejectedCvTimeoutDays(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetRejectedCvTimeoutDays(v)
	})
}

// AddRejectedCvTimeoutDays adds v to the "rejected_cv_timeout_days" field.
func (u *PositionUpsertOne) AddRejectedCvTimeoutDays(v int) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.AddRejectedCvTimeoutDays(v)
	})
}

// UpdateRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateRejectedCvTimeoutDays() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateRejectedCvTimeoutDays()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PositionUpsertOne) SetUpdatedAt(v time.Time) *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PositionUpsertOne) UpdateUpdatedAt() *PositionUpsertOne {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PositionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PositionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PositionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PositionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PositionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PositionCreateBulk is the builder for creating many Position entities in bulk.
type PositionCreateBulk struct {
	config
	err      error
	builders []*PositionCreate
	conflict []sql.ConflictOption
}

// Save creates the Position entities in the database.
func (_c *PositionCreateBulk) Save(ctx context.Context) ([]*Position, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Position, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PositionMutation)
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
func (_c *PositionCreateBulk) SaveX(ctx context.Context) []*Position {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PositionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PositionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Position.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PositionUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *PositionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PositionUpsertBulk {
	_c.conflict = opts
	return &PositionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Position.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PositionCreateBulk) OnConflictColumns(columns ...string) *PositionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PositionUpsertBulk{
		create: _c,
	}
}

// PositionUpsertBulk is the builder for "upsert"-ing
// a bulk of Position nodes.
type PositionUpsertBulk struct {
	create *PositionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Position.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PositionUpsertBulk) UpdateNewValues() *PositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(position.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Position.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PositionUpsertBulk) Ignore() *PositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PositionUpsertBulk) DoNothing() *PositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PositionCreateBulk.OnConflict
// documentation for more info.
func (u *PositionUpsertBulk) Update(set func(*PositionUpsert)) *PositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PositionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *PositionUpsertBulk) SetTitle(v string) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateTitle() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *PositionUpsertBulk) SetDescription(v string) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateDescription() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PositionUpsertBulk) ClearDescription() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *PositionUpsertBulk) SetStatus(v position.Status) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateStatus() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentPrompt sets the "agent_prompt" field.
func (u *PositionUpsertBulk) SetAgentPrompt(v string) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetAgentPrompt(v)
	})
}

// UpdateAgentPrompt sets the "agent_prompt" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateAgentPrompt() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateAgentPrompt()
	})
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (u *PositionUpsertBulk) ClearAgentPrompt() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.ClearAgentPrompt()
	})
}

// SetAgentFirstMessage sets the "agent_first_message" field.
func (u *PositionUpsertBulk) SetAgentFirstMessage(v string) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetAgentFirstMessage(v)
	})
}

// UpdateAgentFirstMessage sets the "agent_first_message" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateAgentFirstMessage() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateAgentFirstMessage()
	})
}

// ClearAgentFirstMessage clears the value of the "agent_first_message" field.
func (u *PositionUpsertBulk) ClearAgentFirstMessage() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.ClearAgentFirstMessage()
	})
}

// SetQualificationCriteria sets the "qualification_criteria" field.
func (u *PositionUpsertBulk) SetQualificationCriteria(v string) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetQualificationCriteria(v)
	})
}

// UpdateQualificationCriteria sets the "qualification_criteria" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateQualificationCriteria() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateQualificationCriteria()
	})
}

// ClearQualificationCriteria clears the value of the "qualification_criteria" field.
func (u *PositionUpsertBulk) ClearQualificationCriteria() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.ClearQualificationCriteria()
	})
}

// SetCallingHoursStart sets the "calling_hours_start" field.
func (u *PositionUpsertBulk) SetCallingHoursStart(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallingHoursStart(v)
	})
}

// AddCallingHoursStart adds v to the "calling_hours_start" field.
func (u *PositionUpsertBulk) AddCallingHoursStart(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallingHoursStart(v)
	})
}

// UpdateCallingHoursStart sets the "calling_hours_start" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateCallingHoursStart() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallingHoursStart()
	})
}

// SetCallingHoursEnd sets the "calling_hours_end" field.
func (u *PositionUpsertBulk) SetCallingHoursEnd(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallingHoursEnd(v)
	})
}

// AddCallingHoursEnd adds v to the "calling_hours_end" field.
func (u *PositionUpsertBulk) AddCallingHoursEnd(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallingHoursEnd(v)
	})
}

// UpdateCallingHoursEnd sets the "calling_hours_end" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateCallingHoursEnd() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallingHoursEnd()
	})
}

// SetCallRetryMax sets the "call_retry_max" field.
func (u *PositionUpsertBulk) SetCallRetryMax(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallRetryMax(v)
	})
}

// AddCallRetryMax adds v to the "call_retry_max" field.
func (u *PositionUpsertBulk) AddCallRetryMax(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallRetryMax(v)
	})
}

// UpdateCallRetryMax sets the "call_retry_max" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateCallRetryMax() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallRetryMax()
	})
}

// SetCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field.
func (u *PositionUpsertBulk) SetCallRetryIntervalMinutes(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetCallRetryIntervalMinutes(v)
	})
}

// AddCallRetryIntervalMinutes adds v to the "call_retry_interval_minutes" field.
func (u *PositionUpsertBulk) AddCallRetryIntervalMinutes(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.AddCallRetryIntervalMinutes(v)
	})
}

// UpdateCallRetryIntervalMinutes sets the "call_retry_interval_minutes" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateCallRetryIntervalMinutes() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateCallRetryIntervalMinutes()
	})
}

// SetFollowUpIntervalHours sets the "follow_up_interval_hours" field.
func (u *PositionUpsertBulk) SetFollowUpIntervalHours(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetFollowUpIntervalHours(v)
	})
}

// AddFollowUpIntervalHours adds v to the "follow_up_interval_hours" field.
func (u *PositionUpsertBulk) AddFollowUpIntervalHours(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.AddFollowUpIntervalHours(v)
	})
}

// UpdateFollowUpIntervalHours sets the "follow_up_interval_hours" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateFollowUpIntervalHours() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateFollowUpIntervalHours()
	})
}

// SetRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field.
func (u *PositionUpsertBulk) SetRejectedCvTimeoutDays(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetRejectedCvTimeoutDays(v)
	})
}

// AddRejectedCvTimeoutDays adds v to the "rejected_cv_timeout_days" field.
func (u *PositionUpsertBulk) AddRejectedCvTimeoutDays(v int) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.AddRejectedCvTimeoutDays(v)
	})
}

// UpdateRejectedCvTimeoutDays sets the "rejected_cv_timeout_days" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateRejectedCvTimeoutDays() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateRejectedCvTimeoutDays()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PositionUpsertBulk) SetUpdatedAt(v time.Time) *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PositionUpsertBulk) UpdateUpdatedAt() *PositionUpsertBulk {
	return u.Update(func(s *PositionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PositionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PositionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PositionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PositionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
