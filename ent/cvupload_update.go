// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// CVUploadUpdate is the builder for updating CVUpload entities.
type CVUploadUpdate struct {
	config
	hooks    []Hook
	mutation *CVUploadMutation
}

// Where appends a list predicates to the CVUploadUpdate builder.
func (_u *CVUploadUpdate) Where(ps ...predicate.CVUpload) *CVUploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *CVUploadUpdate) SetFilePath(v string) *CVUploadUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *CVUploadUpdate) SetNillableFilePath(v *string) *CVUploadUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *CVUploadUpdate) SetOriginalFilename(v string) *CVUploadUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *CVUploadUpdate) SetNillableOriginalFilename(v *string) *CVUploadUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CVUploadUpdate) SetSource(v cvupload.Source) *CVUploadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CVUploadUpdate) SetNillableSource(v *cvupload.Source) *CVUploadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetMatchMethod sets the "match_method" field.
func (_u *CVUploadUpdate) SetMatchMethod(v cvupload.MatchMethod) *CVUploadUpdate {
	_u.mutation.SetMatchMethod(v)
	return _u
}

// SetNillableMatchMethod sets the "match_method" field if the given value is not nil.
func (_u *CVUploadUpdate) SetNillableMatchMethod(v *cvupload.MatchMethod) *CVUploadUpdate {
	if v != nil {
		_u.SetMatchMethod(*v)
	}
	return _u
}

// SetMatchConfidence sets the "match_confidence" field.
func (_u *CVUploadUpdate) SetMatchConfidence(v cvupload.MatchConfidence) *CVUploadUpdate {
	_u.mutation.SetMatchConfidence(v)
	return _u
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_u *CVUploadUpdate) SetNillableMatchConfidence(v *cvupload.MatchConfidence) *CVUploadUpdate {
	if v != nil {
		_u.SetMatchConfidence(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CVUploadUpdate) SetNeedsReview(v bool) *CVUploadUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CVUploadUpdate) SetNillableNeedsReview(v *bool) *CVUploadUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the CVUploadMutation object of the builder.
func (_u *CVUploadUpdate) Mutation() *CVUploadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CVUploadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVUploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CVUploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVUploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVUploadUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := cvupload.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CVUpload.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchMethod(); ok {
		if err := cvupload.MatchMethodValidator(v); err != nil {
			return &ValidationError{Name: "match_method", err: fmt.Errorf(`ent: validator failed for field "CVUpload.match_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchConfidence(); ok {
		if err := cvupload.MatchConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "match_confidence", err: fmt.Errorf(`ent: validator failed for field "CVUpload.match_confidence": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CVUpload.candidate"`)
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CVUpload.application"`)
	}
	return nil
}

func (_u *CVUploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cvupload.Table, cvupload.Columns, sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(cvupload.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(cvupload.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(cvupload.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchMethod(); ok {
		_spec.SetField(cvupload.FieldMatchMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchConfidence(); ok {
		_spec.SetField(cvupload.FieldMatchConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(cvupload.FieldNeedsReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cvupload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CVUploadUpdateOne is the builder for updating a single CVUpload entity.
type CVUploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CVUploadMutation
}

// SetFilePath sets the "file_path" field.
func (_u *CVUploadUpdateOne) SetFilePath(v string) *CVUploadUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *CVUploadUpdateOne) SetNillableFilePath(v *string) *CVUploadUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *CVUploadUpdateOne) SetOriginalFilename(v string) *CVUploadUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *CVUploadUpdateOne) SetNillableOriginalFilename(v *string) *CVUploadUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CVUploadUpdateOne) SetSource(v cvupload.Source) *CVUploadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CVUploadUpdateOne) SetNillableSource(v *cvupload.Source) *CVUploadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetMatchMethod sets the "match_method" field.
func (_u *CVUploadUpdateOne) SetMatchMethod(v cvupload.MatchMethod) *CVUploadUpdateOne {
	_u.mutation.SetMatchMethod(v)
	return _u
}

// SetNillableMatchMethod sets the "match_method" field if the given value is not nil.
func (_u *CVUploadUpdateOne) SetNillableMatchMethod(v *cvupload.MatchMethod) *CVUploadUpdateOne {
	if v != nil {
		_u.SetMatchMethod(*v)
	}
	return _u
}

// SetMatchConfidence sets the "match_confidence" field.
func (_u *CVUploadUpdateOne) SetMatchConfidence(v cvupload.MatchConfidence) *CVUploadUpdateOne {
	_u.mutation.SetMatchConfidence(v)
	return _u
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_u *CVUploadUpdateOne) SetNillableMatchConfidence(v *cvupload.MatchConfidence) *CVUploadUpdateOne {
	if v != nil {
		_u.SetMatchConfidence(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CVUploadUpdateOne) SetNeedsReview(v bool) *CVUploadUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CVUploadUpdateOne) SetNillableNeedsReview(v *bool) *CVUploadUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the CVUploadMutation object of the builder.
func (_u *CVUploadUpdateOne) Mutation() *CVUploadMutation {
	return _u.mutation
}

// Where appends a list predicates to the CVUploadUpdate builder.
func (_u *CVUploadUpdateOne) Where(ps ...predicate.CVUpload) *CVUploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CVUploadUpdateOne) Select(field string, fields ...string) *CVUploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CVUpload entity.
func (_u *CVUploadUpdateOne) Save(ctx context.Context) (*CVUpload, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVUploadUpdateOne) SaveX(ctx context.Context) *CVUpload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CVUploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVUploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVUploadUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := cvupload.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CVUpload.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchMethod(); ok {
		if err := cvupload.MatchMethodValidator(v); err != nil {
			return &ValidationError{Name: "match_method", err: fmt.Errorf(`ent: validator failed for field "CVUpload.match_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchConfidence(); ok {
		if err := cvupload.MatchConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "match_confidence", err: fmt.Errorf(`ent: validator failed for field "CVUpload.match_confidence": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CVUpload.candidate"`)
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CVUpload.application"`)
	}
	return nil
}

func (_u *CVUploadUpdateOne) sqlSave(ctx context.Context) (_node *CVUpload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cvupload.Table, cvupload.Columns, sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CVUpload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cvupload.FieldID)
		for _, f := range fields {
			if !cvupload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cvupload.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(cvupload.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(cvupload.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(cvupload.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchMethod(); ok {
		_spec.SetField(cvupload.FieldMatchMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchConfidence(); ok {
		_spec.SetField(cvupload.FieldMatchConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(cvupload.FieldNeedsReview, field.TypeBool, value)
	}
	_node = &CVUpload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cvupload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
