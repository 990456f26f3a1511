// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ConnectorCheckpointDelete is the builder for deleting a ConnectorCheckpoint entity.
type ConnectorCheckpointDelete struct {
	config
	hooks    []Hook
	mutation *ConnectorCheckpointMutation
}

// Where appends a list predicates to the ConnectorCheckpointDelete builder.
func (_d *ConnectorCheckpointDelete) Where(ps ...predicate.ConnectorCheckpoint) *ConnectorCheckpointDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConnectorCheckpointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorCheckpointDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConnectorCheckpointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(connectorcheckpoint.Table, sqlgraph.NewFieldSpec(connectorcheckpoint.FieldID, field.TypeInt))
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

// ConnectorCheckpointDeleteOne is the builder for deleting a single ConnectorCheckpoint entity.
type ConnectorCheckpointDeleteOne struct {
	_d *ConnectorCheckpointDelete
}

// Where appends a list predicates to the ConnectorCheckpointDelete builder.
func (_d *ConnectorCheckpointDeleteOne) Where(ps ...predicate.ConnectorCheckpoint) *ConnectorCheckpointDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConnectorCheckpointDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{connectorcheckpoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorCheckpointDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
