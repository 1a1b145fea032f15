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
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
)

// CandidateReplyCreate is the builder for creating a CandidateReply entity.
type CandidateReplyCreate struct {
	config
	mutation *CandidateReplyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCandidateID sets the "candidate_id" field.
func (_c *CandidateReplyCreate) SetCandidateID(v int) *CandidateReplyCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_c *CandidateReplyCreate) SetNillableCandidateID(v *int) *CandidateReplyCreate {
	if v != nil {
		_c.SetCandidateID(*v)
	}
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *CandidateReplyCreate) SetApplicationID(v int) *CandidateReplyCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_c *CandidateReplyCreate) SetNillableApplicationID(v *int) *CandidateReplyCreate {
	if v != nil {
		_c.SetApplicationID(*v)
	}
	return _c
}

// SetChannel sets the "channel" field.
func (_c *CandidateReplyCreate) SetChannel(v candidatereply.Channel) *CandidateReplyCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetSender sets the "sender" field.
func (_c *CandidateReplyCreate) SetSender(v string) *CandidateReplyCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *CandidateReplyCreate) SetSubject(v string) *CandidateReplyCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *CandidateReplyCreate) SetNillableSubject(v *string) *CandidateReplyCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *CandidateReplyCreate) SetBody(v string) *CandidateReplyCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *CandidateReplyCreate) SetExternalID(v string) *CandidateReplyCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *CandidateReplyCreate) SetNillableExternalID(v *string) *CandidateReplyCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetIsRead sets the "is_read" field.
func (_c *CandidateReplyCreate) SetIsRead(v bool) *CandidateReplyCreate {
	_c.mutation.SetIsRead(v)
	return _c
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_c *CandidateReplyCreate) SetNillableIsRead(v *bool) *CandidateReplyCreate {
	if v != nil {
		_c.SetIsRead(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *CandidateReplyCreate) SetReceivedAt(v time.Time) *CandidateReplyCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *CandidateReplyCreate) SetNillableReceivedAt(v *time.Time) *CandidateReplyCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_c *CandidateReplyCreate) SetCandidate(v *Candidate) *CandidateReplyCreate {
	return _c.SetCandidateID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *CandidateReplyCreate) SetApplication(v *Application) *CandidateReplyCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the CandidateReplyMutation object of the builder.
func (_c *CandidateReplyCreate) Mutation() *CandidateReplyMutation {
	return _c.mutation
}

// Save creates the CandidateReply in the database.
func (_c *CandidateReplyCreate) Save(ctx context.Context) (*CandidateReply, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateReplyCreate) SaveX(ctx context.Context) *CandidateReply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateReplyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateReplyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateReplyCreate) defaults() {
	if _, ok := _c.mutation.IsRead(); !ok {
		v := candidatereply.DefaultIsRead
		_c.mutation.SetIsRead(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := candidatereply.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateReplyCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "CandidateReply.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := candidatereply.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "CandidateReply.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sender(); !ok {
		return &ValidationError{Name: "sender", err: errors.New(`ent: missing required field "CandidateReply.sender"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "CandidateReply.body"`)}
	}
	if _, ok := _c.mutation.IsRead(); !ok {
		return &ValidationError{Name: "is_read", err: errors.New(`ent: missing required field "CandidateReply.is_read"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "CandidateReply.received_at"`)}
	}
	return nil
}

func (_c *CandidateReplyCreate) sqlSave(ctx context.Context) (*CandidateReply, error) {
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

func (_c *CandidateReplyCreate) createSpec() (*CandidateReply, *sqlgraph.CreateSpec) {
	var (
		_node = &CandidateReply{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidatereply.Table, sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(candidatereply.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(candidatereply.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(candidatereply.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(candidatereply.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(candidatereply.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.IsRead(); ok {
		_spec.SetField(candidatereply.FieldIsRead, field.TypeBool, value)
		_node.IsRead = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(candidatereply.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if nodes := _c.mutation.CandidateIDs(); len(nodes) > 0 {
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
		_node.CandidateID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_node.ApplicationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CandidateReply.Create().
//		SetCandidateID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateReplyUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateReplyCreate) OnConflict(opts ...sql.ConflictOption) *CandidateReplyUpsertOne {
	_c.conflict = opts
	return &CandidateReplyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CandidateReply.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateReplyCreate) OnConflictColumns(columns ...string) *CandidateReplyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateReplyUpsertOne{
		create: _c,
	}
}

type (
	// CandidateReplyUpsertOne is the builder for "upsert"-ing
	//  one CandidateReply node.
	CandidateReplyUpsertOne struct {
		create *CandidateReplyCreate
	}

	// CandidateReplyUpsert is the "OnConflict" setter.
	CandidateReplyUpsert struct {
		*sql.UpdateSet
	}
)

// SetCandidateID sets the "candidate_id" field.
func (u *CandidateReplyUpsert) SetCandidateID(v int) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldCandidateID, v)
	return u
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateCandidateID() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldCandidateID)
	return u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *CandidateReplyUpsert) ClearCandidateID() *CandidateReplyUpsert {
	u.SetNull(candidatereply.FieldCandidateID)
	return u
}

// SetApplicationID sets the "application_id" field.
func (u *CandidateReplyUpsert) SetApplicationID(v int) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldApplicationID, v)
	return u
}

// UpdateApplicationID sets the "application_id" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateApplicationID() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldApplicationID)
	return u
}

// ClearApplicationID clears the value of the "application_id" field.
func (u *CandidateReplyUpsert) ClearApplicationID() *CandidateReplyUpsert {
	u.SetNull(candidatereply.FieldApplicationID)
	return u
}

// SetChannel sets the "channel" field.
func (u *CandidateReplyUpsert) SetChannel(v candidatereply.Channel) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateChannel() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldChannel)
	return u
}

// SetSender sets the "sender" field.
func (u *CandidateReplyUpsert) SetSender(v string) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldSender, v)
	return u
}

// UpdateSender sets the "sender" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateSender() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldSender)
	return u
}

// SetSubject sets the "subject" field.
func (u *CandidateReplyUpsert) SetSubject(v string) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateSubject() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *CandidateReplyUpsert) ClearSubject() *CandidateReplyUpsert {
	u.SetNull(candidatereply.FieldSubject)
	return u
}

// SetBody sets the "body" field.
func (u *CandidateReplyUpsert) SetBody(v string) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateBody() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldBody)
	return u
}

// SetExternalID sets the "external_id" field.
func (u *CandidateReplyUpsert) SetExternalID(v string) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateExternalID() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldExternalID)
	return u
}

// ClearExternalID clears the value of the "external_id" field.
func (u *CandidateReplyUpsert) ClearExternalID() *CandidateReplyUpsert {
	u.SetNull(candidatereply.FieldExternalID)
	return u
}

// SetIsRead sets the "is_read" field.
func (u *CandidateReplyUpsert) SetIsRead(v bool) *CandidateReplyUpsert {
	u.Set(candidatereply.FieldIsRead, v)
	return u
}

// UpdateIsRead sets the "is_read" field to the value that was provided on create.
func (u *CandidateReplyUpsert) UpdateIsRead() *CandidateReplyUpsert {
	u.SetExcluded(candidatereply.FieldIsRead)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CandidateReply.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CandidateReplyUpsertOne) UpdateNewValues() *CandidateReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(candidatereply.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CandidateReply.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CandidateReplyUpsertOne) Ignore() *CandidateReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateReplyUpsertOne) DoNothing() *CandidateReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateReplyCreate.OnConflict
// documentation for more info.
func (u *CandidateReplyUpsertOne) Update(set func(*CandidateReplyUpsert)) *CandidateReplyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateReplyUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *CandidateReplyUpsertOne) SetCandidateID(v int) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateCandidateID() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *CandidateReplyUpsertOne) ClearCandidateID() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearCandidateID()
	})
}

// SetApplicationID sets the "application_id" field.
func (u *CandidateReplyUpsertOne) SetApplicationID(v int) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetApplicationID(v)
	})
}

// UpdateApplicationID sets the "application_id" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateApplicationID() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateApplicationID()
	})
}

// ClearApplicationID clears the value of the "application_id" field.
func (u *CandidateReplyUpsertOne) ClearApplicationID() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearApplicationID()
	})
}

// SetChannel sets the "channel" field.
func (u *CandidateReplyUpsertOne) SetChannel(v candidatereply.Channel) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateChannel() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateChannel()
	})
}

// SetSender sets the "sender" field.
func (u *CandidateReplyUpsertOne) SetSender(v string) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetSender(v)
	})
}

// UpdateSender sets the "sender" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateSender() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateSender()
	})
}

// SetSubject sets the "subject" field.
func (u *CandidateReplyUpsertOne) SetSubject(v string) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateSubject() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *CandidateReplyUpsertOne) ClearSubject() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *CandidateReplyUpsertOne) SetBody(v string) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateBody() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateBody()
	})
}

// SetExternalID sets the "external_id" field.
func (u *CandidateReplyUpsertOne) SetExternalID(v string) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateExternalID() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *CandidateReplyUpsertOne) ClearExternalID() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearExternalID()
	})
}

// SetIsRead sets the "is_read" field.
func (u *CandidateReplyUpsertOne) SetIsRead(v bool) *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetIsRead(v)
	})
}

// UpdateIsRead sets the "is_read" field to the value that was provided on create.
func (u *CandidateReplyUpsertOne) UpdateIsRead() *CandidateReplyUpsertOne {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateIsRead()
	})
}

// Exec executes the query.
func (u *CandidateReplyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateReplyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateReplyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CandidateReplyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CandidateReplyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CandidateReplyCreateBulk is the builder for creating many CandidateReply entities in bulk.
type CandidateReplyCreateBulk struct {
	config
	err      error
	builders []*CandidateReplyCreate
	conflict []sql.ConflictOption
}

// Save creates the CandidateReply entities in the database.
func (_c *CandidateReplyCreateBulk) Save(ctx context.Context) ([]*CandidateReply, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CandidateReply, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateReplyMutation)
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
func (_c *CandidateReplyCreateBulk) SaveX(ctx context.Context) []*CandidateReply {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateReplyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateReplyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CandidateReply.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateReplyUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateReplyCreateBulk) OnConflict(opts ...sql.ConflictOption) *CandidateReplyUpsertBulk {
	_c.conflict = opts
	return &CandidateReplyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CandidateReply.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateReplyCreateBulk) OnConflictColumns(columns ...string) *CandidateReplyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateReplyUpsertBulk{
		create: _c,
	}
}

// CandidateReplyUpsertBulk is the builder for "upsert"-ing
// a bulk of CandidateReply nodes.
type CandidateReplyUpsertBulk struct {
	create *CandidateReplyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CandidateReply.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CandidateReplyUpsertBulk) UpdateNewValues() *CandidateReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(candidatereply.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CandidateReply.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CandidateReplyUpsertBulk) Ignore() *CandidateReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateReplyUpsertBulk) DoNothing() *CandidateReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateReplyCreateBulk.OnConflict
// documentation for more info.
func (u *CandidateReplyUpsertBulk) Update(set func(*CandidateReplyUpsert)) *CandidateReplyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateReplyUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *CandidateReplyUpsertBulk) SetCandidateID(v int) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateCandidateID() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *CandidateReplyUpsertBulk) ClearCandidateID() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearCandidateID()
	})
}

// SetApplicationID sets the "application_id" field.
func (u *CandidateReplyUpsertBulk) SetApplicationID(v int) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetApplicationID(v)
	})
}

// UpdateApplicationID sets the "application_id" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateApplicationID() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateApplicationID()
	})
}

// ClearApplicationID clears the value of the "application_id" field.
func (u *CandidateReplyUpsertBulk) ClearApplicationID() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearApplicationID()
	})
}

// SetChannel sets the "channel" field.
func (u *CandidateReplyUpsertBulk) SetChannel(v candidatereply.Channel) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateChannel() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateChannel()
	})
}

// SetSender sets the "sender" field.
func (u *CandidateReplyUpsertBulk) SetSender(v string) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetSender(v)
	})
}

// UpdateSender sets the "sender" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateSender() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateSender()
	})
}

// SetSubject sets the "subject" field.
func (u *CandidateReplyUpsertBulk) SetSubject(v string) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateSubject() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *CandidateReplyUpsertBulk) ClearSubject() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *CandidateReplyUpsertBulk) SetBody(v string) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateBody() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateBody()
	})
}

// SetExternalID sets the "external_id" field.
func (u *CandidateReplyUpsertBulk) SetExternalID(v string) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateExternalID() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *CandidateReplyUpsertBulk) ClearExternalID() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.ClearExternalID()
	})
}

// SetIsRead sets the "is_read" field.
func (u *CandidateReplyUpsertBulk) SetIsRead(v bool) *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.SetIsRead(v)
	})
}

// UpdateIsRead sets the "is_read" field to the value that was provided on create.
func (u *CandidateReplyUpsertBulk) UpdateIsRead() *CandidateReplyUpsertBulk {
	return u.Update(func(s *CandidateReplyUpsert) {
		s.UpdateIsRead()
	})
}

// Exec executes the query.
func (u *CandidateReplyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CandidateReplyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateReplyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateReplyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
