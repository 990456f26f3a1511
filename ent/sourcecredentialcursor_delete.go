// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
)

// SourceCredentialCursorDelete is the builder for deleting a SourceCredentialCursor entity.
type SourceCredentialCursorDelete struct {
	config
	hooks    []Hook
	mutation *SourceCredentialCursorMutation
}

// Where appends a list predicates to the SourceCredentialCursorDelete builder.
func (_d *SourceCredentialCursorDelete) Where(ps ...predicate.SourceCredentialCursor) *SourceCredentialCursorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SourceCredentialCursorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SourceCredentialCursorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SourceCredentialCursorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sourcecredentialcursor.Table, sqlgraph.NewFieldSpec(sourcecredentialcursor.FieldID, field.TypeInt))
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

// SourceCredentialCursorDeleteOne is the builder for deleting a single SourceCredentialCursor entity.
type SourceCredentialCursorDeleteOne struct {
	_d *SourceCredentialCursorDelete
}

// Where appends a list predicates to the SourceCredentialCursorDelete builder.
func (_d *SourceCredentialCursorDeleteOne) Where(ps ...predicate.SourceCredentialCursor) *SourceCredentialCursorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SourceCredentialCursorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sourcecredentialcursor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SourceCredentialCursorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
