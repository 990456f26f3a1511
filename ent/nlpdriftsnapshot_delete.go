// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// NLPDriftSnapshotDelete is the builder for deleting a NLPDriftSnapshot entity.
type NLPDriftSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *NLPDriftSnapshotMutation
}

// Where appends a list predicates to the NLPDriftSnapshotDelete builder.
func (_d *NLPDriftSnapshotDelete) Where(ps ...predicate.NLPDriftSnapshot) *NLPDriftSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NLPDriftSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NLPDriftSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NLPDriftSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(nlpdriftsnapshot.Table, sqlgraph.NewFieldSpec(nlpdriftsnapshot.FieldID, field.TypeInt))
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

// NLPDriftSnapshotDeleteOne is the builder for deleting a single NLPDriftSnapshot entity.
type NLPDriftSnapshotDeleteOne struct {
	_d *NLPDriftSnapshotDelete
}

// Where appends a list predicates to the NLPDriftSnapshotDelete builder.
func (_d *NLPDriftSnapshotDeleteOne) Where(ps ...predicate.NLPDriftSnapshot) *NLPDriftSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NLPDriftSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{nlpdriftsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NLPDriftSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
