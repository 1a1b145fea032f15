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
	"github.com/recruitflow/recruitflow/ent/statuschange"
)

// StatusChangeCreate is the builder for creating a StatusChange entity.
type StatusChangeCreate struct {
	config
	mutation *StatusChangeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetApplicationID sets the "application_id" field.
func (_c *StatusChangeCreate) SetApplicationID(v int) *StatusChangeCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *StatusChangeCreate) SetFromStatus(v string) *StatusChangeCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *StatusChangeCreate) SetToStatus(v string) *StatusChangeCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *StatusChangeCreate) SetNote(v string) *StatusChangeCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *StatusChangeCreate) SetNillableNote(v *string) *StatusChangeCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *StatusChangeCreate) SetChangedBy(v string) *StatusChangeCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_c *StatusChangeCreate) SetNillableChangedBy(v *string) *StatusChangeCreate {
	if v != nil {
		_c.SetChangedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StatusChangeCreate) SetCreatedAt(v time.Time) *StatusChangeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StatusChangeCreate) SetNillableCreatedAt(v *time.Time) *StatusChangeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *StatusChangeCreate) SetApplication(v *Application) *StatusChangeCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the StatusChangeMutation object of the builder.
func (_c *StatusChangeCreate) Mutation() *StatusChangeMutation {
	return _c.mutation
}

// Save creates the StatusChange in the database.
func (_c *StatusChangeCreate) Save(ctx context.Context) (*StatusChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusChangeCreate) SaveX(ctx context.Context) *StatusChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusChangeCreate) defaults() {
	if _, ok := _c.mutation.ChangedBy(); !ok {
		v := statuschange.DefaultChangedBy
		_c.mutation.SetChangedBy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statuschange.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusChangeCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "StatusChange.application_id"`)}
	}
	if _, ok := _c.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "StatusChange.from_status"`)}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "StatusChange.to_status"`)}
	}
	if _, ok := _c.mutation.ChangedBy(); !ok {
		return &ValidationError{Name: "changed_by", err: errors.New(`ent: missing required field "StatusChange.changed_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StatusChange.created_at"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "StatusChange.application"`)}
	}
	return nil
}

func (_c *StatusChangeCreate) sqlSave(ctx context.Context) (*StatusChange, error) {
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

func (_c *StatusChangeCreate) createSpec() (*StatusChange, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statuschange.Table, sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(statuschange.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(statuschange.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(statuschange.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(statuschange.FieldChangedBy, field.TypeString, value)
		_node.ChangedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statuschange.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   statuschange.ApplicationTable,
			Columns: []string{statuschange.ApplicationColumn},
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
//	client.StatusChange.Create().
//		SetApplicationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatusChangeUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *StatusChangeCreate) OnConflict(opts ...sql.ConflictOption) *StatusChangeUpsertOne {
	_c.conflict = opts
	return &StatusChangeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StatusChange.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StatusChangeCreate) OnConflictColumns(columns ...string) *StatusChangeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StatusChangeUpsertOne{
		create: _c,
	}
}

type (
	// StatusChangeUpsertOne is the builder for "upsert"-ing
	//  one StatusChange node.
	StatusChangeUpsertOne struct {
		create *StatusChangeCreate
	}

	// StatusChangeUpsert is the "OnConflict" setter.
	StatusChangeUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StatusChange.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StatusChangeUpsertOne) UpdateNewValues() *StatusChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(statuschange.FieldApplicationID)
		}
		if _, exists := u.create.mutation.FromStatus(); exists {
			s.SetIgnore(statuschange.FieldFromStatus)
		}
		if _, exists := u.create.mutation.ToStatus(); exists {
			s.SetIgnore(statuschange.FieldToStatus)
		}
		if _, exists := u.create.mutation.Note(); exists {
			s.SetIgnore(statuschange.FieldNote)
		}
		if _, exists := u.create.mutation.ChangedBy(); exists {
			s.SetIgnore(statuschange.FieldChangedBy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(statuschange.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StatusChange.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StatusChangeUpsertOne) Ignore() *StatusChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatusChangeUpsertOne) DoNothing() *StatusChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatusChangeCreate.OnConflict
// documentation for more info.
func (u *StatusChangeUpsertOne) Update(set func(*StatusChangeUpsert)) *StatusChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatusChangeUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *StatusChangeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatusChangeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatusChangeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StatusChangeUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StatusChangeUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StatusChangeCreateBulk is the builder for creating many StatusChange entities in bulk.
type StatusChangeCreateBulk struct {
	config
	err      error
	builders []*StatusChangeCreate
	conflict []sql.ConflictOption
}

// Save creates the StatusChange entities in the database.
func (_c *StatusChangeCreateBulk) Save(ctx context.Context) ([]*StatusChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusChangeMutation)
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
func (_c *StatusChangeCreateBulk) SaveX(ctx context.Context) []*StatusChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StatusChange.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatusChangeUpsert) {
//			SetApplicationID(v+v).
//		}).
//		Exec(ctx)
func (_c *StatusChangeCreateBulk) OnConflict(opts ...sql.ConflictOption) *StatusChangeUpsertBulk {
	_c.conflict = opts
	return &StatusChangeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StatusChange.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StatusChangeCreateBulk) OnConflictColumns(columns ...string) *StatusChangeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StatusChangeUpsertBulk{
		create: _c,
	}
}

// StatusChangeUpsertBulk is the builder for "upsert"-ing
// a bulk of StatusChange nodes.
type StatusChangeUpsertBulk struct {
	create *StatusChangeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StatusChange.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StatusChangeUpsertBulk) UpdateNewValues() *StatusChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(statuschange.FieldApplicationID)
			}
			if _, exists := b.mutation.FromStatus(); exists {
				s.SetIgnore(statuschange.FieldFromStatus)
			}
			if _, exists := b.mutation.ToStatus(); exists {
				s.SetIgnore(statuschange.FieldToStatus)
			}
			if _, exists := b.mutation.Note(); exists {
				s.SetIgnore(statuschange.FieldNote)
			}
			if _, exists := b.mutation.ChangedBy(); exists {
				s.SetIgnore(statuschange.FieldChangedBy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(statuschange.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StatusChange.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StatusChangeUpsertBulk) Ignore() *StatusChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatusChangeUpsertBulk) DoNothing() *StatusChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatusChangeCreateBulk.OnConflict
// documentation for more info.
func (u *StatusChangeUpsertBulk) Update(set func(*StatusChangeUpsert)) *StatusChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatusChangeUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *StatusChangeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StatusChangeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatusChangeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatusChangeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
