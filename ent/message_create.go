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
	"github.com/recruitflow/recruitflow/ent/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetApplicationID sets the "application_id" field.
func (_c *MessageCreate) SetApplicationID(v int) *MessageCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *MessageCreate) SetChannel(v message.Channel) *MessageCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *MessageCreate) SetMessageType(v message.MessageType) *MessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *MessageCreate) SetNillableMessageType(v *message.MessageType) *MessageCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MessageCreate) SetStatus(v message.Status) *MessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MessageCreate) SetNillableStatus(v *message.Status) *MessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *MessageCreate) SetRecipient(v string) *MessageCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageCreate) SetBody(v string) *MessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *MessageCreate) SetExternalID(v string) *MessageCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableExternalID(v *string) *MessageCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *MessageCreate) SetErrorDetail(v string) *MessageCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *MessageCreate) SetNillableErrorDetail(v *string) *MessageCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *MessageCreate) SetSentAt(v time.Time) *MessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableSentAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *MessageCreate) SetApplication(v *Application) *MessageCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.MessageType(); !ok {
		v := message.DefaultMessageType
		_c.mutation.SetMessageType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := message.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "Message.application_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "Message.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := message.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Message.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "Message.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Message.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := message.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Message.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "Message.recipient"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Message.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "Message.application"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(message.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(message.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(message.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(message.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(message.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(message.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ApplicationTable,
			Columns: []string{message.ApplicationColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetApplicationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetChannel sets the "channel" field.
func (u *MessageUpsert) SetChannel(v message.Channel) *MessageUpsert {
	u.Set(message.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageUpsert) UpdateChannel() *MessageUpsert {
	u.SetExcluded(message.FieldChannel)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsert) SetMessageType(v message.MessageType) *MessageUpsert {
	u.Set(message.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMessageType() *MessageUpsert {
	u.SetExcluded(message.FieldMessageType)
	return u
}

// SetStatus sets the "status" field.
func (u *MessageUpsert) SetStatus(v message.Status) *MessageUpsert {
	u.Set(message.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageUpsert) UpdateStatus() *MessageUpsert {
	u.SetExcluded(message.FieldStatus)
	return u
}

// SetRecipient sets the "recipient" field.
func (u *MessageUpsert) SetRecipient(v string) *MessageUpsert {
	u.Set(message.FieldRecipient, v)
	return u
}

// UpdateRecipient sets the "recipient" field to the value that was provided on create.
func (u *MessageUpsert) UpdateRecipient() *MessageUpsert {
	u.SetExcluded(message.FieldRecipient)
	return u
}

// SetBody sets the "body" field.
func (u *MessageUpsert) SetBody(v string) *MessageUpsert {
	u.Set(message.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageUpsert) UpdateBody() *MessageUpsert {
	u.SetExcluded(message.FieldBody)
	return u
}

// SetExternalID sets the "external_id" field.
func (u *MessageUpsert) SetExternalID(v string) *MessageUpsert {
	u.Set(message.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateExternalID() *MessageUpsert {
	u.SetExcluded(message.FieldExternalID)
	return u
}

// ClearExternalID clears the value of the "external_id" field.
func (u *MessageUpsert) ClearExternalID() *MessageUpsert {
	u.SetNull(message.FieldExternalID)
	return u
}

// SetErrorDetail sets the "error_detail" field.
func (u *MessageUpsert) SetErrorDetail(v string) *MessageUpsert {
	u.Set(message.FieldErrorDetail, v)
	return u
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *MessageUpsert) UpdateErrorDetail() *MessageUpsert {
	u.SetExcluded(message.FieldErrorDetail)
	return u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *MessageUpsert) ClearErrorDetail() *MessageUpsert {
	u.SetNull(message.FieldErrorDetail)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *MessageUpsert) SetSentAt(v time.Time) *MessageUpsert {
	u.Set(message.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSentAt() *MessageUpsert {
	u.SetExcluded(message.FieldSentAt)
	return u
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *MessageUpsert) ClearSentAt() *MessageUpsert {
	u.SetNull(message.FieldSentAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(message.FieldApplicationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *MessageUpsertOne) SetChannel(v message.Channel) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateChannel() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateChannel()
	})
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsertOne) SetMessageType(v message.MessageType) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMessageType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetStatus sets the "status" field.
func (u *MessageUpsertOne) SetStatus(v message.Status) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateStatus() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateStatus()
	})
}

// SetRecipient sets the "recipient" field.
func (u *MessageUpsertOne) SetRecipient(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetRecipient(v)
	})
}

// UpdateRecipient sets the "recipient" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateRecipient() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRecipient()
	})
}

// SetBody sets the "body" field.
func (u *MessageUpsertOne) SetBody(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateBody() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateBody()
	})
}

// SetExternalID sets the "external_id" field.
func (u *MessageUpsertOne) SetExternalID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateExternalID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *MessageUpsertOne) ClearExternalID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearExternalID()
	})
}

// SetErrorDetail sets the "error_detail" field.
func (u *MessageUpsertOne) SetErrorDetail(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetErrorDetail(v)
	})
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateErrorDetail() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateErrorDetail()
	})
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *MessageUpsertOne) ClearErrorDetail() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearErrorDetail()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *MessageUpsertOne) SetSentAt(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSentAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *MessageUpsertOne) ClearSentAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(message.FieldApplicationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *MessageUpsertBulk) SetChannel(v message.Channel) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateChannel() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateChannel()
	})
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsertBulk) SetMessageType(v message.MessageType) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMessageType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetStatus sets the "status" field.
func (u *MessageUpsertBulk) SetStatus(v message.Status) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateStatus() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateStatus()
	})
}

// SetRecipient sets the "recipient" field.
func (u *MessageUpsertBulk) SetRecipient(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetRecipient(v)
	})
}

// UpdateRecipient sets the "recipient" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateRecipient() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRecipient()
	})
}

// SetBody sets the "body" field.
func (u *MessageUpsertBulk) SetBody(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateBody() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateBody()
	})
}

// SetExternalID sets the "external_id" field.
func (u *MessageUpsertBulk) SetExternalID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateExternalID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *MessageUpsertBulk) ClearExternalID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearExternalID()
	})
}

// SetErrorDetail sets the "error_detail" field.
func (u *MessageUpsertBulk) SetErrorDetail(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetErrorDetail(v)
	})
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateErrorDetail() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateErrorDetail()
	})
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *MessageUpsertBulk) ClearErrorDetail() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearErrorDetail()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *MessageUpsertBulk) SetSentAt(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSentAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *MessageUpsertBulk) ClearSentAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
