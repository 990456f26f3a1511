// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// NLPConsensusDelete is the builder for deleting a NLPConsensus entity.
type NLPConsensusDelete struct {
	config
	hooks    []Hook
	mutation *NLPConsensusMutation
}

// Where appends a list predicates to the NLPConsensusDelete builder.
func (_d *NLPConsensusDelete) Where(ps ...predicate.NLPConsensus) *NLPConsensusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NLPConsensusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NLPConsensusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NLPConsensusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(nlpconsensus.Table, sqlgraph.NewFieldSpec(nlpconsensus.FieldID, field.TypeInt))
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

// NLPConsensusDeleteOne is the builder for deleting a single NLPConsensus entity.
type NLPConsensusDeleteOne struct {
	_d *NLPConsensusDelete
}

// Where appends a list predicates to the NLPConsensusDelete builder.
func (_d *NLPConsensusDeleteOne) Where(ps ...predicate.NLPConsensus) *NLPConsensusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NLPConsensusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{nlpconsensus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NLPConsensusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
