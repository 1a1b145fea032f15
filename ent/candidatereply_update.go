// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// CandidateReplyUpdate is the builder for updating CandidateReply entities.
type CandidateReplyUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateReplyMutation
}

// Where appends a list predicates to the CandidateReplyUpdate builder.
func (_u *CandidateReplyUpdate) Where(ps ...predicate.CandidateReply) *CandidateReplyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *CandidateReplyUpdate) SetCandidateID(v int) *CandidateReplyUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableCandidateID(v *int) *CandidateReplyUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *CandidateReplyUpdate) ClearCandidateID() *CandidateReplyUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *CandidateReplyUpdate) SetApplicationID(v int) *CandidateReplyUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableApplicationID(v *int) *CandidateReplyUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// ClearApplicationID clears the value of the "application_id" field.
func (_u *CandidateReplyUpdate) ClearApplicationID() *CandidateReplyUpdate {
	_u.mutation.ClearApplicationID()
	return _u
}

// SetChannel sets the "channel" field.
func (_u *CandidateReplyUpdate) SetChannel(v candidatereply.Channel) *CandidateReplyUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableChannel(v *candidatereply.Channel) *CandidateReplyUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *CandidateReplyUpdate) SetSender(v string) *CandidateReplyUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableSender(v *string) *CandidateReplyUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CandidateReplyUpdate) SetSubject(v string) *CandidateReplyUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableSubject(v *string) *CandidateReplyUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *CandidateReplyUpdate) ClearSubject() *CandidateReplyUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *CandidateReplyUpdate) SetBody(v string) *CandidateReplyUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableBody(v *string) *CandidateReplyUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *CandidateReplyUpdate) SetExternalID(v string) *CandidateReplyUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableExternalID(v *string) *CandidateReplyUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *CandidateReplyUpdate) ClearExternalID() *CandidateReplyUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *CandidateReplyUpdate) SetIsRead(v bool) *CandidateReplyUpdate {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *CandidateReplyUpdate) SetNillableIsRead(v *bool) *CandidateReplyUpdate {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *CandidateReplyUpdate) SetCandidate(v *Candidate) *CandidateReplyUpdate {
	return _u.SetCandidateID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *CandidateReplyUpdate) SetApplication(v *Application) *CandidateReplyUpdate {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the CandidateReplyMutation object of the builder.
func (_u *CandidateReplyUpdate) Mutation() *CandidateReplyMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *CandidateReplyUpdate) ClearCandidate() *CandidateReplyUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *CandidateReplyUpdate) ClearApplication() *CandidateReplyUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateReplyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateReplyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateReplyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateReplyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateReplyUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := candidatereply.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "CandidateReply.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *CandidateReplyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidatereply.Table, candidatereply.Columns, sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(candidatereply.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(candidatereply.FieldSender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(candidatereply.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(candidatereply.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(candidatereply.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(candidatereply.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(candidatereply.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(candidatereply.FieldIsRead, field.TypeBool, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.CandidateTable,
			Columns: []string{candidatereply.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.CandidateTable,
			Columns: []string{candidatereply.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.ApplicationTable,
			Columns: []string{candidatereply.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.ApplicationTable,
			Columns: []string{candidatereply.ApplicationColumn},
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
			err = &NotFoundError{candidatereply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateReplyUpdateOne is the builder for updating a single CandidateReply entity.
type CandidateReplyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateReplyMutation
}

// SetCandidateID sets the "candidate_id" field.
func (_u *CandidateReplyUpdateOne) SetCandidateID(v int) *CandidateReplyUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableCandidateID(v *int) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *CandidateReplyUpdateOne) ClearCandidateID() *CandidateReplyUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *CandidateReplyUpdateOne) SetApplicationID(v int) *CandidateReplyUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableApplicationID(v *int) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// ClearApplicationID clears the value of the "application_id" field.
func (_u *CandidateReplyUpdateOne) ClearApplicationID() *CandidateReplyUpdateOne {
	_u.mutation.ClearApplicationID()
	return _u
}

// SetChannel sets the "channel" field.
func (_u *CandidateReplyUpdateOne) SetChannel(v candidatereply.Channel) *CandidateReplyUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableChannel(v *candidatereply.Channel) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *CandidateReplyUpdateOne) SetSender(v string) *CandidateReplyUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableSender(v *string) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CandidateReplyUpdateOne) SetSubject(v string) *CandidateReplyUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableSubject(v *string) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *CandidateReplyUpdateOne) ClearSubject() *CandidateReplyUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *CandidateReplyUpdateOne) SetBody(v string) *CandidateReplyUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableBody(v *string) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *CandidateReplyUpdateOne) SetExternalID(v string) *CandidateReplyUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableExternalID(v *string) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *CandidateReplyUpdateOne) ClearExternalID() *CandidateReplyUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *CandidateReplyUpdateOne) SetIsRead(v bool) *CandidateReplyUpdateOne {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *CandidateReplyUpdateOne) SetNillableIsRead(v *bool) *CandidateReplyUpdateOne {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *CandidateReplyUpdateOne) SetCandidate(v *Candidate) *CandidateReplyUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *CandidateReplyUpdateOne) SetApplication(v *Application) *CandidateReplyUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the CandidateReplyMutation object of the builder.
func (_u *CandidateReplyUpdateOne) Mutation() *CandidateReplyMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *CandidateReplyUpdateOne) ClearCandidate() *CandidateReplyUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *CandidateReplyUpdateOne) ClearApplication() *CandidateReplyUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// Where appends a list predicates to the CandidateReplyUpdate builder.
func (_u *CandidateReplyUpdateOne) Where(ps ...predicate.CandidateReply) *CandidateReplyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateReplyUpdateOne) Select(field string, fields ...string) *CandidateReplyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CandidateReply entity.
func (_u *CandidateReplyUpdateOne) Save(ctx context.Context) (*CandidateReply, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateReplyUpdateOne) SaveX(ctx context.Context) *CandidateReply {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateReplyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateReplyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateReplyUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := candidatereply.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "CandidateReply.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *CandidateReplyUpdateOne) sqlSave(ctx context.Context) (_node *CandidateReply, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidatereply.Table, candidatereply.Columns, sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CandidateReply.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidatereply.FieldID)
		for _, f := range fields {
			if !candidatereply.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidatereply.FieldID {
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
		_spec.SetField(candidatereply.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(candidatereply.FieldSender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(candidatereply.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(candidatereply.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(candidatereply.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(candidatereply.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(candidatereply.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(candidatereply.FieldIsRead, field.TypeBool, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.CandidateTable,
			Columns: []string{candidatereply.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.CandidateTable,
			Columns: []string{candidatereply.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.ApplicationTable,
			Columns: []string{candidatereply.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatereply.ApplicationTable,
			Columns: []string{candidatereply.ApplicationColumn},
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
	_node = &CandidateReply{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidatereply.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
