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
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
)

// MessageTemplateCreate is the builder for creating a MessageTemplate entity.
type MessageTemplateCreate struct {
	config
	mutation *MessageTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageType sets the "message_type" field.
func (_c *MessageTemplateCreate) SetMessageType(v messagetemplate.MessageType) *MessageTemplateCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *MessageTemplateCreate) SetChannel(v messagetemplate.Channel) *MessageTemplateCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MessageTemplateCreate) SetSubject(v string) *MessageTemplateCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *MessageTemplateCreate) SetNillableSubject(v *string) *MessageTemplateCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageTemplateCreate) SetBody(v string) *MessageTemplateCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MessageTemplateCreate) SetUpdatedAt(v time.Time) *MessageTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MessageTemplateCreate) SetNillableUpdatedAt(v *time.Time) *MessageTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MessageTemplateMutation object of the builder.
func (_c *MessageTemplateCreate) Mutation() *MessageTemplateMutation {
	return _c.mutation
}

// Save creates the MessageTemplate in the database.
func (_c *MessageTemplateCreate) Save(ctx context.Context) (*MessageTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageTemplateCreate) SaveX(ctx context.Context) *MessageTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageTemplateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := messagetemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageTemplateCreate) check() error {
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "MessageTemplate.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := messagetemplate.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "MessageTemplate.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := messagetemplate.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "MessageTemplate.body"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MessageTemplate.updated_at"`)}
	}
	return nil
}

func (_c *MessageTemplateCreate) sqlSave(ctx context.Context) (*MessageTemplate, error) {
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

func (_c *MessageTemplateCreate) createSpec() (*MessageTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagetemplate.Table, sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(messagetemplate.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(messagetemplate.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(messagetemplate.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(messagetemplate.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(messagetemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageTemplate.Create().
//		SetMessageType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageTemplateUpsert) {
//			SetMessageType(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageTemplateCreate) OnConflict(opts ...sql.ConflictOption) *MessageTemplateUpsertOne {
	_c.conflict = opts
	return &MessageTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageTemplateCreate) OnConflictColumns(columns ...string) *MessageTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageTemplateUpsertOne{
		create: _c,
	}
}

type (
	// MessageTemplateUpsertOne is the builder for "upsert"-ing
	//  one MessageTemplate node.
	MessageTemplateUpsertOne struct {
		create *MessageTemplateCreate
	}

	// MessageTemplateUpsert is the "OnConflict" setter.
	MessageTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageType sets the "message_type" field.
func (u *MessageTemplateUpsert) SetMessageType(v messagetemplate.MessageType) *MessageTemplateUpsert {
	u.Set(messagetemplate.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageTemplateUpsert) UpdateMessageType() *MessageTemplateUpsert {
	u.SetExcluded(messagetemplate.FieldMessageType)
	return u
}

// SetChannel sets the "channel" field.
func (u *MessageTemplateUpsert) SetChannel(v messagetemplate.Channel) *MessageTemplateUpsert {
	u.Set(messagetemplate.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageTemplateUpsert) UpdateChannel() *MessageTemplateUpsert {
	u.SetExcluded(messagetemplate.FieldChannel)
	return u
}

// SetSubject sets the "subject" field.
func (u *MessageTemplateUpsert) SetSubject(v string) *MessageTemplateUpsert {
	u.Set(messagetemplate.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MessageTemplateUpsert) UpdateSubject() *MessageTemplateUpsert {
	u.SetExcluded(messagetemplate.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *MessageTemplateUpsert) ClearSubject() *MessageTemplateUpsert {
	u.SetNull(messagetemplate.FieldSubject)
	return u
}

// SetBody sets the "body" field.
func (u *MessageTemplateUpsert) SetBody(v string) *MessageTemplateUpsert {
	u.Set(messagetemplate.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageTemplateUpsert) UpdateBody() *MessageTemplateUpsert {
	u.SetExcluded(messagetemplate.FieldBody)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageTemplateUpsert) SetUpdatedAt(v time.Time) *MessageTemplateUpsert {
	u.Set(messagetemplate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageTemplateUpsert) UpdateUpdatedAt() *MessageTemplateUpsert {
	u.SetExcluded(messagetemplate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MessageTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MessageTemplateUpsertOne) UpdateNewValues() *MessageTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageTemplateUpsertOne) Ignore() *MessageTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageTemplateUpsertOne) DoNothing() *MessageTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageTemplateCreate.OnConflict
// documentation for more info.
func (u *MessageTemplateUpsertOne) Update(set func(*MessageTemplateUpsert)) *MessageTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageType sets the "message_type" field.
func (u *MessageTemplateUpsertOne) SetMessageType(v messagetemplate.MessageType) *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageTemplateUpsertOne) UpdateMessageType() *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateMessageType()
	})
}

// SetChannel sets the "channel" field.
func (u *MessageTemplateUpsertOne) SetChannel(v messagetemplate.Channel) *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageTemplateUpsertOne) UpdateChannel() *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateChannel()
	})
}

// SetSubject sets the "subject" field.
func (u *MessageTemplateUpsertOne) SetSubject(v string) *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MessageTemplateUpsertOne) UpdateSubject() *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *MessageTemplateUpsertOne) ClearSubject() *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *MessageTemplateUpsertOne) SetBody(v string) *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageTemplateUpsertOne) UpdateBody() *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateBody()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageTemplateUpsertOne) SetUpdatedAt(v time.Time) *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageTemplateUpsertOne) UpdateUpdatedAt() *MessageTemplateUpsertOne {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MessageTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageTemplateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageTemplateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageTemplateCreateBulk is the builder for creating many MessageTemplate entities in bulk.
type MessageTemplateCreateBulk struct {
	config
	err      error
	builders []*MessageTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageTemplate entities in the database.
func (_c *MessageTemplateCreateBulk) Save(ctx context.Context) ([]*MessageTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageTemplateMutation)
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
func (_c *MessageTemplateCreateBulk) SaveX(ctx context.Context) []*MessageTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageTemplateUpsert) {
//			SetMessageType(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageTemplateUpsertBulk {
	_c.conflict = opts
	return &MessageTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageTemplateCreateBulk) OnConflictColumns(columns ...string) *MessageTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageTemplateUpsertBulk{
		create: _c,
	}
}

// MessageTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageTemplate nodes.
type MessageTemplateUpsertBulk struct {
	create *MessageTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MessageTemplateUpsertBulk) UpdateNewValues() *MessageTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageTemplateUpsertBulk) Ignore() *MessageTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageTemplateUpsertBulk) DoNothing() *MessageTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *MessageTemplateUpsertBulk) Update(set func(*MessageTemplateUpsert)) *MessageTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageType sets the "message_type" field.
func (u *MessageTemplateUpsertBulk) SetMessageType(v messagetemplate.MessageType) *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageTemplateUpsertBulk) UpdateMessageType() *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateMessageType()
	})
}

// SetChannel sets the "channel" field.
func (u *MessageTemplateUpsertBulk) SetChannel(v messagetemplate.Channel) *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageTemplateUpsertBulk) UpdateChannel() *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateChannel()
	})
}

// SetSubject sets the "subject" field.
func (u *MessageTemplateUpsertBulk) SetSubject(v string) *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MessageTemplateUpsertBulk) UpdateSubject() *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *MessageTemplateUpsertBulk) ClearSubject() *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *MessageTemplateUpsertBulk) SetBody(v string) *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageTemplateUpsertBulk) UpdateBody() *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateBody()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageTemplateUpsertBulk) SetUpdatedAt(v time.Time) *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageTemplateUpsertBulk) UpdateUpdatedAt() *MessageTemplateUpsertBulk {
	return u.Update(func(s *MessageTemplateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MessageTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
