// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/ent/slahistory"
)

// SLAHistoryUpdate is the builder for updating SLAHistory entities.
type SLAHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SLAHistoryMutation
}

// Where appends a list predicates to the SLAHistoryUpdate builder.
func (_u *SLAHistoryUpdate) Where(ps ...predicate.SLAHistory) *SLAHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SLAHistoryMutation object of the builder.
func (_u *SLAHistoryUpdate) Mutation() *SLAHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SLAHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SLAHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SLAHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SLAHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SLAHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(slahistory.Table, slahistory.Columns, sqlgraph.NewFieldSpec(slahistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(slahistory.FieldSourceName, field.TypeString)
	}
	if _u.mutation.FreshnessMinutesCleared() {
		_spec.ClearField(slahistory.FieldFreshnessMinutes, field.TypeInt)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(slahistory.FieldMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slahistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SLAHistoryUpdateOne is the builder for updating a single SLAHistory entity.
type SLAHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SLAHistoryMutation
}

// Mutation returns the SLAHistoryMutation object of the builder.
func (_u *SLAHistoryUpdateOne) Mutation() *SLAHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SLAHistoryUpdate builder.
func (_u *SLAHistoryUpdateOne) Where(ps ...predicate.SLAHistory) *SLAHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SLAHistoryUpdateOne) Select(field string, fields ...string) *SLAHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SLAHistory entity.
func (_u *SLAHistoryUpdateOne) Save(ctx context.Context) (*SLAHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SLAHistoryUpdateOne) SaveX(ctx context.Context) *SLAHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SLAHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SLAHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SLAHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SLAHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(slahistory.Table, slahistory.Columns, sqlgraph.NewFieldSpec(slahistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SLAHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slahistory.FieldID)
		for _, f := range fields {
			if !slahistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slahistory.FieldID {
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
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(slahistory.FieldSourceName, field.TypeString)
	}
	if _u.mutation.FreshnessMinutesCleared() {
		_spec.ClearField(slahistory.FieldFreshnessMinutes, field.TypeInt)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(slahistory.FieldMessage, field.TypeString)
	}
	_node = &SLAHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slahistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
