// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
)

// SLAAlertStateDelete is the builder for deleting a SLAAlertState entity.
type SLAAlertStateDelete struct {
	config
	hooks    []Hook
	mutation *SLAAlertStateMutation
}

// Where appends a list predicates to the SLAAlertStateDelete builder.
func (_d *SLAAlertStateDelete) Where(ps ...predicate.SLAAlertState) *SLAAlertStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SLAAlertStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SLAAlertStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SLAAlertStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(slaalertstate.Table, sqlgraph.NewFieldSpec(slaalertstate.FieldID, field.TypeInt))
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

// SLAAlertStateDeleteOne is the builder for deleting a single SLAAlertState entity.
type SLAAlertStateDeleteOne struct {
	_d *SLAAlertStateDelete
}

// Where appends a list predicates to the SLAAlertStateDelete builder.
func (_d *SLAAlertStateDeleteOne) Where(ps ...predicate.SLAAlertState) *SLAAlertStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SLAAlertStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{slaalertstate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SLAAlertStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
