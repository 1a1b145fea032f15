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
	"github.com/recruitflow/recruitflow/ent/predicate"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

// UnmatchedInboundUpdate is the builder for updating UnmatchedInbound entities.
type UnmatchedInboundUpdate struct {
	config
	hooks    []Hook
	mutation *UnmatchedInboundMutation
}

// Where appends a list predicates to the UnmatchedInboundUpdate builder.
func (_u *UnmatchedInboundUpdate) Where(ps ...predicate.UnmatchedInbound) *UnmatchedInboundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *UnmatchedInboundUpdate) SetChannel(v unmatchedinbound.Channel) *UnmatchedInboundUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableChannel(v *unmatchedinbound.Channel) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *UnmatchedInboundUpdate) SetSender(v string) *UnmatchedInboundUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableSender(v *string) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *UnmatchedInboundUpdate) SetSubject(v string) *UnmatchedInboundUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableSubject(v *string) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *UnmatchedInboundUpdate) ClearSubject() *UnmatchedInboundUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBodySnippet sets the "body_snippet" field.
func (_u *UnmatchedInboundUpdate) SetBodySnippet(v string) *UnmatchedInboundUpdate {
	_u.mutation.SetBodySnippet(v)
	return _u
}

// SetNillableBodySnippet sets the "body_snippet" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableBodySnippet(v *string) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetBodySnippet(*v)
	}
	return _u
}

// ClearBodySnippet clears the value of the "body_snippet" field.
func (_u *UnmatchedInboundUpdate) ClearBodySnippet() *UnmatchedInboundUpdate {
	_u.mutation.ClearBodySnippet()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UnmatchedInboundUpdate) SetFilePath(v string) *UnmatchedInboundUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableFilePath(v *string) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *UnmatchedInboundUpdate) ClearFilePath() *UnmatchedInboundUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UnmatchedInboundUpdate) SetOriginalFilename(v string) *UnmatchedInboundUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableOriginalFilename(v *string) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *UnmatchedInboundUpdate) ClearOriginalFilename() *UnmatchedInboundUpdate {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *UnmatchedInboundUpdate) SetRawPayload(v map[string]interface{}) *UnmatchedInboundUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *UnmatchedInboundUpdate) ClearRawPayload() *UnmatchedInboundUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *UnmatchedInboundUpdate) SetResolved(v bool) *UnmatchedInboundUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableResolved(v *bool) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (_u *UnmatchedInboundUpdate) SetResolvedApplicationID(v int) *UnmatchedInboundUpdate {
	_u.mutation.ResetResolvedApplicationID()
	_u.mutation.SetResolvedApplicationID(v)
	return _u
}

// SetNillableResolvedApplicationID sets the "resolved_application_id" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableResolvedApplicationID(v *int) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetResolvedApplicationID(*v)
	}
	return _u
}

// AddResolvedApplicationID adds value to the "resolved_application_id" field.
func (_u *UnmatchedInboundUpdate) AddResolvedApplicationID(v int) *UnmatchedInboundUpdate {
	_u.mutation.AddResolvedApplicationID(v)
	return _u
}

// ClearResolvedApplicationID clears the value of the "resolved_application_id" field.
func (_u *UnmatchedInboundUpdate) ClearResolvedApplicationID() *UnmatchedInboundUpdate {
	_u.mutation.ClearResolvedApplicationID()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *UnmatchedInboundUpdate) SetResolvedAt(v time.Time) *UnmatchedInboundUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *UnmatchedInboundUpdate) SetNillableResolvedAt(v *time.Time) *UnmatchedInboundUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *UnmatchedInboundUpdate) ClearResolvedAt() *UnmatchedInboundUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the UnmatchedInboundMutation object of the builder.
func (_u *UnmatchedInboundUpdate) Mutation() *UnmatchedInboundMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnmatchedInboundUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnmatchedInboundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnmatchedInboundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnmatchedInboundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnmatchedInboundUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := unmatchedinbound.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "UnmatchedInbound.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *UnmatchedInboundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unmatchedinbound.Table, unmatchedinbound.Columns, sqlgraph.NewFieldSpec(unmatchedinbound.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(unmatchedinbound.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(unmatchedinbound.FieldSender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(unmatchedinbound.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(unmatchedinbound.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.BodySnippet(); ok {
		_spec.SetField(unmatchedinbound.FieldBodySnippet, field.TypeString, value)
	}
	if _u.mutation.BodySnippetCleared() {
		_spec.ClearField(unmatchedinbound.FieldBodySnippet, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(unmatchedinbound.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(unmatchedinbound.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(unmatchedinbound.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(unmatchedinbound.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(unmatchedinbound.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(unmatchedinbound.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(unmatchedinbound.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedApplicationID(); ok {
		_spec.SetField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResolvedApplicationID(); ok {
		_spec.AddField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt, value)
	}
	if _u.mutation.ResolvedApplicationIDCleared() {
		_spec.ClearField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(unmatchedinbound.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(unmatchedinbound.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unmatchedinbound.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnmatchedInboundUpdateOne is the builder for updating a single UnmatchedInbound entity.
type UnmatchedInboundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnmatchedInboundMutation
}

// SetChannel sets the "channel" field.
func (_u *UnmatchedInboundUpdateOne) SetChannel(v unmatchedinbound.Channel) *UnmatchedInboundUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableChannel(v *unmatchedinbound.Channel) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *UnmatchedInboundUpdateOne) SetSender(v string) *UnmatchedInboundUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableSender(v *string) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *UnmatchedInboundUpdateOne) SetSubject(v string) *UnmatchedInboundUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableSubject(v *string) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *UnmatchedInboundUpdateOne) ClearSubject() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBodySnippet sets the "body_snippet" field.
func (_u *UnmatchedInboundUpdateOne) SetBodySnippet(v string) *UnmatchedInboundUpdateOne {
	_u.mutation.SetBodySnippet(v)
	return _u
}

// SetNillableBodySnippet sets the "body_snippet" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableBodySnippet(v *string) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetBodySnippet(*v)
	}
	return _u
}

// ClearBodySnippet clears the value of the "body_snippet" field.
func (_u *UnmatchedInboundUpdateOne) ClearBodySnippet() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearBodySnippet()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UnmatchedInboundUpdateOne) SetFilePath(v string) *UnmatchedInboundUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableFilePath(v *string) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *UnmatchedInboundUpdateOne) ClearFilePath() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UnmatchedInboundUpdateOne) SetOriginalFilename(v string) *UnmatchedInboundUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableOriginalFilename(v *string) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *UnmatchedInboundUpdateOne) ClearOriginalFilename() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *UnmatchedInboundUpdateOne) SetRawPayload(v map[string]interface{}) *UnmatchedInboundUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *UnmatchedInboundUpdateOne) ClearRawPayload() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *UnmatchedInboundUpdateOne) SetResolved(v bool) *UnmatchedInboundUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableResolved(v *bool) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedApplicationID sets the "resolved_application_id" field.
func (_u *UnmatchedInboundUpdateOne) SetResolvedApplicationID(v int) *UnmatchedInboundUpdateOne {
	_u.mutation.ResetResolvedApplicationID()
	_u.mutation.SetResolvedApplicationID(v)
	return _u
}

// SetNillableResolvedApplicationID sets the "resolved_application_id" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableResolvedApplicationID(v *int) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetResolvedApplicationID(*v)
	}
	return _u
}

// AddResolvedApplicationID adds value to the "resolved_application_id" field.
func (_u *UnmatchedInboundUpdateOne) AddResolvedApplicationID(v int) *UnmatchedInboundUpdateOne {
	_u.mutation.AddResolvedApplicationID(v)
	return _u
}

// ClearResolvedApplicationID clears the value of the "resolved_application_id" field.
func (_u *UnmatchedInboundUpdateOne) ClearResolvedApplicationID() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearResolvedApplicationID()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *UnmatchedInboundUpdateOne) SetResolvedAt(v time.Time) *UnmatchedInboundUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *UnmatchedInboundUpdateOne) SetNillableResolvedAt(v *time.Time) *UnmatchedInboundUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *UnmatchedInboundUpdateOne) ClearResolvedAt() *UnmatchedInboundUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the UnmatchedInboundMutation object of the builder.
func (_u *UnmatchedInboundUpdateOne) Mutation() *UnmatchedInboundMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnmatchedInboundUpdate builder.
func (_u *UnmatchedInboundUpdateOne) Where(ps ...predicate.UnmatchedInbound) *UnmatchedInboundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnmatchedInboundUpdateOne) Select(field string, fields ...string) *UnmatchedInboundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnmatchedInbound entity.
func (_u *UnmatchedInboundUpdateOne) Save(ctx context.Context) (*UnmatchedInbound, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnmatchedInboundUpdateOne) SaveX(ctx context.Context) *UnmatchedInbound {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnmatchedInboundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnmatchedInboundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnmatchedInboundUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := unmatchedinbound.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "UnmatchedInbound.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *UnmatchedInboundUpdateOne) sqlSave(ctx context.Context) (_node *UnmatchedInbound, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unmatchedinbound.Table, unmatchedinbound.Columns, sqlgraph.NewFieldSpec(unmatchedinbound.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnmatchedInbound.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unmatchedinbound.FieldID)
		for _, f := range fields {
			if !unmatchedinbound.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unmatchedinbound.FieldID {
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
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(unmatchedinbound.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(unmatchedinbound.FieldSender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(unmatchedinbound.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(unmatchedinbound.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.BodySnippet(); ok {
		_spec.SetField(unmatchedinbound.FieldBodySnippet, field.TypeString, value)
	}
	if _u.mutation.BodySnippetCleared() {
		_spec.ClearField(unmatchedinbound.FieldBodySnippet, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(unmatchedinbound.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(unmatchedinbound.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(unmatchedinbound.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(unmatchedinbound.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(unmatchedinbound.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(unmatchedinbound.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(unmatchedinbound.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedApplicationID(); ok {
		_spec.SetField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResolvedApplicationID(); ok {
		_spec.AddField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt, value)
	}
	if _u.mutation.ResolvedApplicationIDCleared() {
		_spec.ClearField(unmatchedinbound.FieldResolvedApplicationID, field.TypeInt)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(unmatchedinbound.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(unmatchedinbound.FieldResolvedAt, field.TypeTime)
	}
	_node = &UnmatchedInbound{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unmatchedinbound.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
