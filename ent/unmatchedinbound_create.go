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
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

// UnmatchedInboundCreate is the builder for creating a UnmatchedInbound entity.
type UnmatchedInboundCreate struct {
	config
	mutation *UnmatchedInboundMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannel sets the "channel" field.
func (_c *UnmatchedInboundCreate) SetChannel(v unmatchedinbound.Channel) *UnmatchedInboundCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableChannel(v *unmatchedinbound.Channel) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetChannel(*v)
	}
	return _c
}

// SetSender sets the "sender" field.
func (_c *UnmatchedInboundCreate) SetSender(v string) *UnmatchedInboundCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *UnmatchedInboundCreate) SetSubject(v string) *UnmatchedInboundCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableSubject(v *string) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBodySnippet sets the "body_snippet" field.
func (_c *UnmatchedInboundCreate) SetBodySnippet(v string) *UnmatchedInboundCreate {
	_c.mutation.SetBodySnippet(v)
	return _c
}

// SetNillableBodySnippet sets the "body_snippet" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableBodySnippet(v *string) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetBodySnippet(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *UnmatchedInboundCreate) SetFilePath(v string) *UnmatchedInboundCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableFilePath(v *string) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *UnmatchedInboundCreate) SetOriginalFilename(v string) *UnmatchedInboundCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableOriginalFilename(v *string) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetOriginalFilename(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *UnmatchedInboundCreate) SetRawPayload(v map[string]interface{}) *UnmatchedInboundCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *UnmatchedInboundCreate) SetResolved(v bool) *UnmatchedInboundCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableResolved(v *bool) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (_c *UnmatchedInboundCreate) SetResolvedApplicationID(v int) *UnmatchedInboundCreate {
	_c.mutation.SetResolvedApplicationID(v)
	return _c
}

// SetNillableResolvedApplicationID sets the "resolved_application_id" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableResolvedApplicationID(v *int) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetResolvedApplicationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnmatchedInboundCreate) SetCreatedAt(v time.Time) *UnmatchedInboundCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableCreatedAt(v *time.Time) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *UnmatchedInboundCreate) SetResolvedAt(v time.Time) *UnmatchedInboundCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *UnmatchedInboundCreate) SetNillableResolvedAt(v *time.Time) *UnmatchedInboundCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// Mutation returns the UnmatchedInboundMutation object of the builder.
func (_c *UnmatchedInboundCreate) Mutation() *UnmatchedInboundMutation {
	return _c.mutation
}

// Save creates the UnmatchedInbound in the database.
func (_c *UnmatchedInboundCreate) Save(ctx context.Context) (*UnmatchedInbound, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnmatchedInboundCreate) SaveX(ctx context.Context) *UnmatchedInbound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnmatchedInboundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnmatchedInboundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnmatchedInboundCreate) defaults() {
	if _, ok := _c.mutation.Channel(); !ok {
		v := unmatchedinbound.DefaultChannel
		_c.mutation.SetChannel(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := unmatchedinbound.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unmatchedinbound.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnmatchedInboundCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "UnmatchedInbound.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := unmatchedinbound.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "UnmatchedInbound.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sender(); !ok {
		return &ValidationError{Name: "sender", err: errors.New(`ent: missing required field "UnmatchedInbound.sender"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "UnmatchedInbound.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnmatchedInbound.created_at"`)}
	}
	return nil
}

func (_c *UnmatchedInboundCreate) sqlSave(ctx context.Context) (*UnmatchedInbound, error) {
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

func (_c *UnmatchedInboundCreate) createSpec() (*UnmatchedInbound, *sqlgraph.CreateSpec) {
	var (
		_node = &UnmatchedInbound{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unmatchedinbound.Table, sqlgraph.NewFieldSpec(unmatchedinbound.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(unmatchedinbound.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(unmatchedinbound.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(unmatchedinbound.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.BodySnippet(); ok {
		_spec.SetField(unmatchedinbound.FieldBodySnippet, field.TypeString, value)
		_node.BodySnippet = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(unmatchedinbound.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(unmatchedinbound.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(unmatchedinbound.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(unmatchedinbound.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedApplicationID(); ok {
		_spec.SetField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt, value)
		_node.ResolvedApplicationID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unmatchedinbound.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(unmatchedinbound.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnmatchedInbound.Create().
//		SetChannel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnmatchedInboundUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *UnmatchedInboundCreate) OnConflict(opts ...sql.ConflictOption) *UnmatchedInboundUpsertOne {
	_c.conflict = opts
	return &UnmatchedInboundUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnmatchedInbound.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnmatchedInboundCreate) OnConflictColumns(columns ...string) *UnmatchedInboundUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnmatchedInboundUpsertOne{
		create: _c,
	}
}

type (
	// UnmatchedInboundUpsertOne is the builder for "upsert"-ing
	//  one UnmatchedInbound node.
	UnmatchedInboundUpsertOne struct {
		create *UnmatchedInboundCreate
	}

	// UnmatchedInboundUpsert is the "OnConflict" setter.
	UnmatchedInboundUpsert struct {
		*sql.UpdateSet
	}
)

// SetChannel sets the "channel" field.
func (u *UnmatchedInboundUpsert) SetChannel(v unmatchedinbound.Channel) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateChannel() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldChannel)
	return u
}

// SetSender sets the "sender" field.
func (u *UnmatchedInboundUpsert) SetSender(v string) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldSender, v)
	return u
}

// UpdateSender sets the "sender" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateSender() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldSender)
	return u
}

// SetSubject sets the "subject" field.
func (u *UnmatchedInboundUpsert) SetSubject(v string) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateSubject() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *UnmatchedInboundUpsert) ClearSubject() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldSubject)
	return u
}

// SetBodySnippet sets the "body_snippet" field.
func (u *UnmatchedInboundUpsert) SetBodySnippet(v string) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldBodySnippet, v)
	return u
}

// UpdateBodySnippet sets the "body_snippet" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateBodySnippet() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldBodySnippet)
	return u
}

// ClearBodySnippet clears the value of the "body_snippet" field.
func (u *UnmatchedInboundUpsert) ClearBodySnippet() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldBodySnippet)
	return u
}

// SetFilePath sets the "file_path" field.
func (u *UnmatchedInboundUpsert) SetFilePath(v string) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateFilePath() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldFilePath)
	return u
}

// ClearFilePath clears the value of the "file_path" field.
func (u *UnmatchedInboundUpsert) ClearFilePath() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldFilePath)
	return u
}

// SetOriginalFilename sets the "original_filename" field.
func (u *UnmatchedInboundUpsert) SetOriginalFilename(v string) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldOriginalFilename, v)
	return u
}

// UpdateOriginalFilename sets the "original_filename" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateOriginalFilename() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldOriginalFilename)
	return u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (u *UnmatchedInboundUpsert) ClearOriginalFilename() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldOriginalFilename)
	return u
}

// SetRawPayload sets the "raw_payload" field.
func (u *UnmatchedInboundUpsert) SetRawPayload(v map[string]interface{}) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldRawPayload, v)
	return u
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateRawPayload() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldRawPayload)
	return u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *UnmatchedInboundUpsert) ClearRawPayload() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldRawPayload)
	return u
}

// SetResolved sets the "resolved" field.
func (u *UnmatchedInboundUpsert) SetResolved(v bool) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateResolved() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldResolved)
	return u
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (u *UnmatchedInboundUpsert) SetResolvedApplicationID(v int) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldResolvedApplicationID, v)
	return u
}

// UpdateResolvedApplicationID sets the "resolved_application_id" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateResolvedApplicationID() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldResolvedApplicationID)
	return u
}

// AddResolvedApplicationID adds v to the "resolved_application_id" field.
func (u *UnmatchedInboundUpsert) AddResolvedApplicationID(v int) *UnmatchedInboundUpsert {
	u.Add(unmatchedinbound.FieldResolvedApplicationID, v)
	return u
}

// ClearResolvedApplicationID clears the value of the "resolved_application_id" field.
func (u *UnmatchedInboundUpsert) ClearResolvedApplicationID() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldResolvedApplicationID)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *UnmatchedInboundUpsert) SetResolvedAt(v time.Time) *UnmatchedInboundUpsert {
	u.Set(unmatchedinbound.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *UnmatchedInboundUpsert) UpdateResolvedAt() *UnmatchedInboundUpsert {
	u.SetExcluded(unmatchedinbound.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *UnmatchedInboundUpsert) ClearResolvedAt() *UnmatchedInboundUpsert {
	u.SetNull(unmatchedinbound.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UnmatchedInbound.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UnmatchedInboundUpsertOne) UpdateNewValues() *UnmatchedInboundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(unmatchedinbound.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnmatchedInbound.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnmatchedInboundUpsertOne) Ignore() *UnmatchedInboundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnmatchedInboundUpsertOne) DoNothing() *UnmatchedInboundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnmatchedInboundCreate.OnConflict
// documentation for more info.
func (u *UnmatchedInboundUpsertOne) Update(set func(*UnmatchedInboundUpsert)) *UnmatchedInboundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnmatchedInboundUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *UnmatchedInboundUpsertOne) SetChannel(v unmatchedinbound.Channel) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateChannel() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateChannel()
	})
}

// SetSender sets the "sender" field.
func (u *UnmatchedInboundUpsertOne) SetSender(v string) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetSender(v)
	})
}

// UpdateSender sets the "sender" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateSender() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateSender()
	})
}

// SetSubject sets the "subject" field.
func (u *UnmatchedInboundUpsertOne) SetSubject(v string) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateSubject() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *UnmatchedInboundUpsertOne) ClearSubject() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearSubject()
	})
}

// SetBodySnippet sets the "body_snippet" field.
func (u *UnmatchedInboundUpsertOne) SetBodySnippet(v string) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetBodySnippet(v)
	})
}

// UpdateBodySnippet sets the "body_snippet" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateBodySnippet() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateBodySnippet()
	})
}

// ClearBodySnippet clears the value of the "body_snippet" field.
func (u *UnmatchedInboundUpsertOne) ClearBodySnippet() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearBodySnippet()
	})
}

// SetFilePath sets the "file_path" field.
func (u *UnmatchedInboundUpsertOne) SetFilePath(v string) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateFilePath() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateFilePath()
	})
}

// ClearFilePath clears the value of the "file_path" field.
func (u *UnmatchedInboundUpsertOne) ClearFilePath() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearFilePath()
	})
}

// SetOriginalFilename sets the "original_filename" field.
func (u *UnmatchedInboundUpsertOne) SetOriginalFilename(v string) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetOriginalFilename(v)
	})
}

// UpdateOriginalFilename sets the "original_filename" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateOriginalFilename() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateOriginalFilename()
	})
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (u *UnmatchedInboundUpsertOne) ClearOriginalFilename() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearOriginalFilename()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *UnmatchedInboundUpsertOne) SetRawPayload(v map[string]interface{}) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateRawPayload() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *UnmatchedInboundUpsertOne) ClearRawPayload() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearRawPayload()
	})
}

// SetResolved sets the "resolved" field.
func (u *UnmatchedInboundUpsertOne) SetResolved(v bool) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateResolved() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (u *UnmatchedInboundUpsertOne) SetResolvedApplicationID(v int) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetResolvedApplicationID(v)
	})
}

// AddResolvedApplicationID adds v to the "resolved_application_id" field.
func (u *UnmatchedInboundUpsertOne) AddResolvedApplicationID(v int) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.AddResolvedApplicationID(v)
	})
}

// UpdateResolvedApplicationID sets the "resolved_application_id" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateResolvedApplicationID() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateResolvedApplicationID()
	})
}

// ClearResolvedApplicationID clears the value of the "resolved_application_id" field.
func (u *UnmatchedInboundUpsertOne) ClearResolvedApplicationID() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearResolvedApplicationID()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *UnmatchedInboundUpsertOne) SetResolvedAt(v time.Time) *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertOne) UpdateResolvedAt() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *UnmatchedInboundUpsertOne) ClearResolvedAt() *UnmatchedInboundUpsertOne {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *UnmatchedInboundUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnmatchedInboundCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnmatchedInboundUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnmatchedInboundUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnmatchedInboundUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnmatchedInboundCreateBulk is the builder for creating many UnmatchedInbound entities in bulk.
type UnmatchedInboundCreateBulk struct {
	config
	err      error
	builders []*UnmatchedInboundCreate
	conflict []sql.ConflictOption
}

// Save creates the UnmatchedInbound entities in the database.
func (_c *UnmatchedInboundCreateBulk) Save(ctx context.Context) ([]*UnmatchedInbound, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnmatchedInbound, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnmatchedInboundMutation)
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
func (_c *UnmatchedInboundCreateBulk) SaveX(ctx context.Context) []*UnmatchedInbound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnmatchedInboundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnmatchedInboundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnmatchedInbound.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnmatchedInboundUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *UnmatchedInboundCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnmatchedInboundUpsertBulk {
	_c.conflict = opts
	return &UnmatchedInboundUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnmatchedInbound.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnmatchedInboundCreateBulk) OnConflictColumns(columns ...string) *UnmatchedInboundUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnmatchedInboundUpsertBulk{
		create: _c,
	}
}

// UnmatchedInboundUpsertBulk is the builder for "upsert"-ing
// a bulk of UnmatchedInbound nodes.
type UnmatchedInboundUpsertBulk struct {
	create *UnmatchedInboundCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UnmatchedInbound.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UnmatchedInboundUpsertBulk) UpdateNewValues() *UnmatchedInboundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(unmatchedinbound.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnmatchedInbound.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnmatchedInboundUpsertBulk) Ignore() *UnmatchedInboundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnmatchedInboundUpsertBulk) DoNothing() *UnmatchedInboundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnmatchedInboundCreateBulk.OnConflict
// documentation for more info.
func (u *UnmatchedInboundUpsertBulk) Update(set func(*UnmatchedInboundUpsert)) *UnmatchedInboundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnmatchedInboundUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *UnmatchedInboundUpsertBulk) SetChannel(v unmatchedinbound.Channel) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateChannel() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateChannel()
	})
}

// SetSender sets the "sender" field.
func (u *UnmatchedInboundUpsertBulk) SetSender(v string) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetSender(v)
	})
}

// UpdateSender sets the "sender" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateSender() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateSender()
	})
}

// SetSubject sets the "subject" field.
func (u *UnmatchedInboundUpsertBulk) SetSubject(v string) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateSubject() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *UnmatchedInboundUpsertBulk) ClearSubject() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearSubject()
	})
}

// SetBodySnippet sets the "body_snippet" field.
func (u *UnmatchedInboundUpsertBulk) SetBodySnippet(v string) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetBodySnippet(v)
	})
}

// UpdateBodySnippet sets the "body_snippet" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateBodySnippet() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateBodySnippet()
	})
}

// ClearBodySnippet clears the value of the "body_snippet" field.
func (u *UnmatchedInboundUpsertBulk) ClearBodySnippet() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearBodySnippet()
	})
}

// SetFilePath sets the "file_path" field.
func (u *UnmatchedInboundUpsertBulk) SetFilePath(v string) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateFilePath() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateFilePath()
	})
}

// ClearFilePath clears the value of the "file_path" field.
func (u *UnmatchedInboundUpsertBulk) ClearFilePath() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearFilePath()
	})
}

// SetOriginalFilename sets the "original_filename" field.
func (u *UnmatchedInboundUpsertBulk) SetOriginalFilename(v string) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetOriginalFilename(v)
	})
}

// UpdateOriginalFilename sets the "original_filename" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateOriginalFilename() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateOriginalFilename()
	})
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (u *UnmatchedInboundUpsertBulk) ClearOriginalFilename() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearOriginalFilename()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *UnmatchedInboundUpsertBulk) SetRawPayload(v map[string]interface{}) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateRawPayload() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *UnmatchedInboundUpsertBulk) ClearRawPayload() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearRawPayload()
	})
}

// SetResolved sets the "resolved" field.
func (u *UnmatchedInboundUpsertBulk) SetResolved(v bool) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateResolved() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (u *UnmatchedInboundUpsertBulk) SetResolvedApplicationID(v int) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetResolvedApplicationID(v)
	})
}

// AddResolvedApplicationID adds v to the "resolved_application_id" field.
func (u *UnmatchedInboundUpsertBulk) AddResolvedApplicationID(v int) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.AddResolvedApplicationID(v)
	})
}

// UpdateResolvedApplicationID sets the "resolved_application_id" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateResolvedApplicationID() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateResolvedApplicationID()
	})
}

// ClearResolvedApplicationID clears the value of the "resolved_application_id" field.
func (u *UnmatchedInboundUpsertBulk) ClearResolvedApplicationID() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearResolvedApplicationID()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *UnmatchedInboundUpsertBulk) SetResolvedAt(v time.Time) *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *UnmatchedInboundUpsertBulk) UpdateResolvedAt() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *UnmatchedInboundUpsertBulk) ClearResolvedAt() *UnmatchedInboundUpsertBulk {
	return u.Update(func(s *UnmatchedInboundUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *UnmatchedInboundUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UnmatchedInboundCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnmatchedInboundCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnmatchedInboundUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
