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
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// MessageTemplateUpdate is the builder for updating MessageTemplate entities.
type MessageTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *MessageTemplateMutation
}

// Where appends a list predicates to the MessageTemplateUpdate builder.
func (_u *MessageTemplateUpdate) Where(ps ...predicate.MessageTemplate) *MessageTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageTemplateUpdate) SetMessageType(v messagetemplate.MessageType) *MessageTemplateUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableMessageType(v *messagetemplate.MessageType) *MessageTemplateUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *MessageTemplateUpdate) SetChannel(v messagetemplate.Channel) *MessageTemplateUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableChannel(v *messagetemplate.Channel) *MessageTemplateUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MessageTemplateUpdate) SetSubject(v string) *MessageTemplateUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableSubject(v *string) *MessageTemplateUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *MessageTemplateUpdate) ClearSubject() *MessageTemplateUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageTemplateUpdate) SetBody(v string) *MessageTemplateUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableBody(v *string) *MessageTemplateUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageTemplateUpdate) SetUpdatedAt(v time.Time) *MessageTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageTemplateMutation object of the builder.
func (_u *MessageTemplateUpdate) Mutation() *MessageTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := messagetemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageTemplateUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := messagetemplate.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := messagetemplate.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetemplate.Table, messagetemplate.Columns, sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(messagetemplate.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(messagetemplate.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(messagetemplate.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(messagetemplate.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messagetemplate.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(messagetemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageTemplateUpdateOne is the builder for updating a single MessageTemplate entity.
type MessageTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageTemplateMutation
}

// SetMessageType sets the "message_type" field.
func (_u *MessageTemplateUpdateOne) SetMessageType(v messagetemplate.MessageType) *MessageTemplateUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableMessageType(v *messagetemplate.MessageType) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *MessageTemplateUpdateOne) SetChannel(v messagetemplate.Channel) *MessageTemplateUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableChannel(v *messagetemplate.Channel) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MessageTemplateUpdateOne) SetSubject(v string) *MessageTemplateUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableSubject(v *string) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *MessageTemplateUpdateOne) ClearSubject() *MessageTemplateUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageTemplateUpdateOne) SetBody(v string) *MessageTemplateUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableBody(v *string) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageTemplateUpdateOne) SetUpdatedAt(v time.Time) *MessageTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageTemplateMutation object of the builder.
func (_u *MessageTemplateUpdateOne) Mutation() *MessageTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageTemplateUpdate builder.
func (_u *MessageTemplateUpdateOne) Where(ps ...predicate.MessageTemplate) *MessageTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageTemplateUpdateOne) Select(field string, fields ...string) *MessageTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageTemplate entity.
func (_u *MessageTemplateUpdateOne) Save(ctx context.Context) (*MessageTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageTemplateUpdateOne) SaveX(ctx context.Context) *MessageTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := messagetemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := messagetemplate.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := messagetemplate.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageTemplateUpdateOne) sqlSave(ctx context.Context) (_node *MessageTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetemplate.Table, messagetemplate.Columns, sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagetemplate.FieldID)
		for _, f := range fields {
			if !messagetemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagetemplate.FieldID {
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
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(messagetemplate.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(messagetemplate.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(messagetemplate.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(messagetemplate.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messagetemplate.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(messagetemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MessageTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
