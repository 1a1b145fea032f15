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
	"github.com/recruitflow/recruitflow/ent/cvupload"
)

// CVUploadCreate is the builder for creating a CVUpload entity.
type CVUploadCreate struct {
	config
	mutation *CVUploadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCandidateID sets the "candidate_id" field.
func (_c *CVUploadCreate) SetCandidateID(v int) *CVUploadCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *CVUploadCreate) SetApplicationID(v int) *CVUploadCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *CVUploadCreate) SetFilePath(v string) *CVUploadCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *CVUploadCreate) SetOriginalFilename(v string) *CVUploadCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *CVUploadCreate) SetSource(v cvupload.Source) *CVUploadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *CVUploadCreate) SetNillableSource(v *cvupload.Source) *CVUploadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetMatchMethod sets the "match_method" field.
func (_c *CVUploadCreate) SetMatchMethod(v cvupload.MatchMethod) *CVUploadCreate {
	_c.mutation.SetMatchMethod(v)
	return _c
}

// SetMatchConfidence sets the "match_confidence" field.
func (_c *CVUploadCreate) SetMatchConfidence(v cvupload.MatchConfidence) *CVUploadCreate {
	_c.mutation.SetMatchConfidence(v)
	return _c
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_c *CVUploadCreate) SetNillableMatchConfidence(v *cvupload.MatchConfidence) *CVUploadCreate {
	if v != nil {
		_c.SetMatchConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *CVUploadCreate) SetNeedsReview(v bool) *CVUploadCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *CVUploadCreate) SetNillableNeedsReview(v *bool) *CVUploadCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CVUploadCreate) SetCreatedAt(v time.Time) *CVUploadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CVUploadCreate) SetNillableCreatedAt(v *time.Time) *CVUploadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_c *CVUploadCreate) SetCandidate(v *Candidate) *CVUploadCreate {
	return _c.SetCandidateID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *CVUploadCreate) SetApplication(v *Application) *CVUploadCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the CVUploadMutation object of the builder.
func (_c *CVUploadCreate) Mutation() *CVUploadMutation {
	return _c.mutation
}

// Save creates the CVUpload in the database.
func (_c *CVUploadCreate) Save(ctx context.Context) (*CVUpload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CVUploadCreate) SaveX(ctx context.Context) *CVUpload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVUploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVUploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CVUploadCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := cvupload.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.MatchConfidence(); !ok {
		v := cvupload.DefaultMatchConfidence
		_c.mutation.SetMatchConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := cvupload.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cvupload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CVUploadCreate) check() error {
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "CVUpload.candidate_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "CVUpload.application_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "CVUpload.file_path"`)}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "CVUpload.original_filename"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CVUpload.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := cvupload.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CVUpload.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchMethod(); !ok {
		return &ValidationError{Name: "match_method", err: errors.New(`ent: missing required field "CVUpload.match_method"`)}
	}
	if v, ok := _c.mutation.MatchMethod(); ok {
		if err := cvupload.MatchMethodValidator(v); err != nil {
			return &ValidationError{Name: "match_method", err: fmt.Errorf(`ent: validator failed for field "CVUpload.match_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchConfidence(); !ok {
		return &ValidationError{Name: "match_confidence", err: errors.New(`ent: missing required field "CVUpload.match_confidence"`)}
	}
	if v, ok := _c.mutation.MatchConfidence(); ok {
		if err := cvupload.MatchConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "match_confidence", err: fmt.Errorf(`ent: validator failed for field "CVUpload.match_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "CVUpload.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CVUpload.created_at"`)}
	}
	if len(_c.mutation.CandidateIDs()) == 0 {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required edge "CVUpload.candidate"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "CVUpload.application"`)}
	}
	return nil
}

func (_c *CVUploadCreate) sqlSave(ctx context.Context) (*CVUpload, error) {
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

func (_c *CVUploadCreate) createSpec() (*CVUpload, *sqlgraph.CreateSpec) {
	var (
		_node = &CVUpload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cvupload.Table, sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(cvupload.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(cvupload.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(cvupload.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.MatchMethod(); ok {
		_spec.SetField(cvupload.FieldMatchMethod, field.TypeEnum, value)
		_node.MatchMethod = value
	}
	if value, ok := _c.mutation.MatchConfidence(); ok {
		_spec.SetField(cvupload.FieldMatchConfidence, field.TypeEnum, value)
		_node.MatchConfidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(cvupload.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cvupload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cvupload.CandidateTable,
			Columns: []string{cvupload.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CandidateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cvupload.ApplicationTable,
			Columns: []string{cvupload.ApplicationColumn},
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
//	client.CVUpload.Create().
//		SetCandidateID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CVUploadUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *CVUploadCreate) OnConflict(opts ...sql.ConflictOption) *CVUploadUpsertOne {
	_c.conflict = opts
	return &CVUploadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CVUpload.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CVUploadCreate) OnConflictColumns(columns ...string) *CVUploadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CVUploadUpsertOne{
		create: _c,
	}
}

type (
	// CVUploadUpsertOne is the builder for "upsert"-ing
	//  one CVUpload node.
	CVUploadUpsertOne struct {
		create *CVUploadCreate
	}

	// CVUploadUpsert is the "OnConflict" setter.
	CVUploadUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilePath sets the "file_path" field.
func (u *CVUploadUpsert) SetFilePath(v string) *CVUploadUpsert {
	u.Set(cvupload.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *CVUploadUpsert) UpdateFilePath() *CVUploadUpsert {
	u.SetExcluded(cvupload.FieldFilePath)
	return u
}

// SetOriginalFilename sets the "original_filename" field.
func (u *CVUploadUpsert) SetOriginalFilename(v string) *CVUploadUpsert {
	u.Set(cvupload.FieldOriginalFilename, v)
	return u
}

// UpdateOriginalFilename sets the "original_filename" field to the value that was provided on create.
func (u *CVUploadUpsert) UpdateOriginalFilename() *CVUploadUpsert {
	u.SetExcluded(cvupload.FieldOriginalFilename)
	return u
}

// SetSource sets the "source" field.
func (u *CVUploadUpsert) SetSource(v cvupload.Source) *CVUploadUpsert {
	u.Set(cvupload.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *CVUploadUpsert) UpdateSource() *CVUploadUpsert {
	u.SetExcluded(cvupload.FieldSource)
	return u
}

// SetMatchMethod sets the "match_method" field.
func (u *CVUploadUpsert) SetMatchMethod(v cvupload.MatchMethod) *CVUploadUpsert {
	u.Set(cvupload.FieldMatchMethod, v)
	return u
}

// UpdateMatchMethod sets the "match_method" field to the value that was provided on create.
func (u *CVUploadUpsert) UpdateMatchMethod() *CVUploadUpsert {
	u.SetExcluded(cvupload.FieldMatchMethod)
	return u
}

// SetMatchConfidence sets the "match_confidence" field.
func (u *CVUploadUpsert) SetMatchConfidence(v cvupload.MatchConfidence) *CVUploadUpsert {
	u.Set(cvupload.FieldMatchConfidence, v)
	return u
}

// UpdateMatchConfidence sets the "match_confidence" field to the value that was provided on create.
func (u *CVUploadUpsert) UpdateMatchConfidence() *CVUploadUpsert {
	u.SetExcluded(cvupload.FieldMatchConfidence)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *CVUploadUpsert) SetNeedsReview(v bool) *CVUploadUpsert {
	u.Set(cvupload.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CVUploadUpsert) UpdateNeedsReview() *CVUploadUpsert {
	u.SetExcluded(cvupload.FieldNeedsReview)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CVUpload.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CVUploadUpsertOne) UpdateNewValues() *CVUploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CandidateID(); exists {
			s.SetIgnore(cvupload.FieldCandidateID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(cvupload.FieldApplicationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(cvupload.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CVUpload.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CVUploadUpsertOne) Ignore() *CVUploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CVUploadUpsertOne) DoNothing() *CVUploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CVUploadCreate.OnConflict
// documentation for more info.
func (u *CVUploadUpsertOne) Update(set func(*CVUploadUpsert)) *CVUploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CVUploadUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilePath sets the "file_path" field.
func (u *CVUploadUpsertOne) SetFilePath(v string) *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *CVUploadUpsertOne) UpdateFilePath() *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateFilePath()
	})
}

// SetOriginalFilename sets the "original_filename" field.
func (u *CVUploadUpsertOne) SetOriginalFilename(v string) *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetOriginalFilename(v)
	})
}

// UpdateOriginalFilename sets the "original_filename" field to the value that was provided on create.
func (u *CVUploadUpsertOne) UpdateOriginalFilename() *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateOriginalFilename()
	})
}

// SetSource sets the "source" field.
func (u *CVUploadUpsertOne) SetSource(v cvupload.Source) *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *CVUploadUpsertOne) UpdateSource() *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateSource()
	})
}

// SetMatchMethod sets the "match_method" field.
func (u *CVUploadUpsertOne) SetMatchMethod(v cvupload.MatchMethod) *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetMatchMethod(v)
	})
}

// UpdateMatchMethod sets the "match_method" field to the value that was provided on create.
func (u *CVUploadUpsertOne) UpdateMatchMethod() *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateMatchMethod()
	})
}

// SetMatchConfidence sets the "match_confidence" field.
func (u *CVUploadUpsertOne) SetMatchConfidence(v cvupload.MatchConfidence) *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetMatchConfidence(v)
	})
}

// UpdateMatchConfidence sets the "match_confidence" field to the value that was provided on create.
func (u *CVUploadUpsertOne) UpdateMatchConfidence() *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateMatchConfidence()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *CVUploadUpsertOne) SetNeedsReview(v bool) *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CVUploadUpsertOne) UpdateNeedsReview() *CVUploadUpsertOne {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateNeedsReview()
	})
}

// Exec executes the query.
func (u *CVUploadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CVUploadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CVUploadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CVUploadUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CVUploadUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CVUploadCreateBulk is the builder for creating many CVUpload entities in bulk.
type CVUploadCreateBulk struct {
	config
	err      error
	builders []*CVUploadCreate
	conflict []sql.ConflictOption
}

// Save creates the CVUpload entities in the database.
func (_c *CVUploadCreateBulk) Save(ctx context.Context) ([]*CVUpload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CVUpload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CVUploadMutation)
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
func (_c *CVUploadCreateBulk) SaveX(ctx context.Context) []*CVUpload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVUploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVUploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CVUpload.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CVUploadUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *CVUploadCreateBulk) OnConflict(opts ...sql.ConflictOption) *CVUploadUpsertBulk {
	_c.conflict = opts
	return &CVUploadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CVUpload.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CVUploadCreateBulk) OnConflictColumns(columns ...string) *CVUploadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CVUploadUpsertBulk{
		create: _c,
	}
}

// CVUploadUpsertBulk is the builder for "upsert"-ing
// a bulk of CVUpload nodes.
type CVUploadUpsertBulk struct {
	create *CVUploadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CVUpload.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CVUploadUpsertBulk) UpdateNewValues() *CVUploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CandidateID(); exists {
				s.SetIgnore(cvupload.FieldCandidateID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(cvupload.FieldApplicationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(cvupload.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CVUpload.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CVUploadUpsertBulk) Ignore() *CVUploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CVUploadUpsertBulk) DoNothing() *CVUploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CVUploadCreateBulk.OnConflict
// documentation for more info.
func (u *CVUploadUpsertBulk) Update(set func(*CVUploadUpsert)) *CVUploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CVUploadUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilePath sets the "file_path" field.
func (u *CVUploadUpsertBulk) SetFilePath(v string) *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *CVUploadUpsertBulk) UpdateFilePath() *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateFilePath()
	})
}

// SetOriginalFilename sets the "original_filename" field.
func (u *CVUploadUpsertBulk) SetOriginalFilename(v string) *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetOriginalFilename(v)
	})
}

// UpdateOriginalFilename sets the "original_filename" field to the value that was provided on create.
func (u *CVUploadUpsertBulk) UpdateOriginalFilename() *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateOriginalFilename()
	})
}

// SetSource sets the "source" field.
func (u *CVUploadUpsertBulk) SetSource(v cvupload.Source) *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *CVUploadUpsertBulk) UpdateSource() *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateSource()
	})
}

// SetMatchMethod sets the "match_method" field.
func (u *CVUploadUpsertBulk) SetMatchMethod(v cvupload.MatchMethod) *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetMatchMethod(v)
	})
}

// UpdateMatchMethod sets the "match_method" field to the value that was provided on create.
func (u *CVUploadUpsertBulk) UpdateMatchMethod() *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateMatchMethod()
	})
}

// SetMatchConfidence sets the "match_confidence" field.
func (u *CVUploadUpsertBulk) SetMatchConfidence(v cvupload.MatchConfidence) *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetMatchConfidence(v)
	})
}

// UpdateMatchConfidence sets the "match_confidence" field to the value that was provided on create.
func (u *CVUploadUpsertBulk) UpdateMatchConfidence() *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateMatchConfidence()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *CVUploadUpsertBulk) SetNeedsReview(v bool) *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CVUploadUpsertBulk) UpdateNeedsReview() *CVUploadUpsertBulk {
	return u.Update(func(s *CVUploadUpsert) {
		s.UpdateNeedsReview()
	})
}

// Exec executes the query.
func (u *CVUploadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CVUploadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CVUploadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CVUploadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
