// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recruitflow/recruitflow/ent/predicate"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

// UnmatchedInboundDelete is the builder for deleting a UnmatchedInbound entity.
type UnmatchedInboundDelete struct {
	config
	hooks    []Hook
	mutation *UnmatchedInboundMutation
}

// Where appends a list predicates to the UnmatchedInboundDelete builder.
func (_d *UnmatchedInboundDelete) Where(ps ...predicate.UnmatchedInbound) *UnmatchedInboundDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UnmatchedInboundDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnmatchedInboundDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UnmatchedInboundDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(unmatchedinbound.Table, sqlgraph.NewFieldSpec(unmatchedinbound.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UnmatchedInboundDeleteOne is the builder for deleting a single UnmatchedInbound entity.
type UnmatchedInboundDeleteOne struct {
	_d *UnmatchedInboundDelete
}

// Where appends a list predicates to the UnmatchedInboundDelete builder.
func (_d *UnmatchedInboundDeleteOne) Where(ps ...predicate.UnmatchedInbound) *UnmatchedInboundDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UnmatchedInboundDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{unmatchedinbound.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnmatchedInboundDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
