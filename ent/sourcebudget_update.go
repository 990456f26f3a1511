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
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
)

// SourceBudgetUpdate is the builder for updating SourceBudget entities.
type SourceBudgetUpdate struct {
	config
	hooks    []Hook
	mutation *SourceBudgetMutation
}

// Where appends a list predicates to the SourceBudgetUpdate builder.
func (_u *SourceBudgetUpdate) Where(ps ...predicate.SourceBudget) *SourceBudgetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *SourceBudgetUpdate) SetConnectorName(v string) *SourceBudgetUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SourceBudgetUpdate) SetNillableConnectorName(v *string) *SourceBudgetUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *SourceBudgetUpdate) SetSourceKey(v string) *SourceBudgetUpdate {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *SourceBudgetUpdate) SetNillableSourceKey(v *string) *SourceBudgetUpdate {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetWindowHour sets the "window_hour" field.
func (_u *SourceBudgetUpdate) SetWindowHour(v string) *SourceBudgetUpdate {
	_u.mutation.SetWindowHour(v)
	return _u
}

// SetNillableWindowHour sets the "window_hour" field if the given value is not nil.
func (_u *SourceBudgetUpdate) SetNillableWindowHour(v *string) *SourceBudgetUpdate {
	if v != nil {
		_u.SetWindowHour(*v)
	}
	return _u
}

// SetRequestCount sets the "request_count" field.
func (_u *SourceBudgetUpdate) SetRequestCount(v int) *SourceBudgetUpdate {
	_u.mutation.ResetRequestCount()
	_u.mutation.SetRequestCount(v)
	return _u
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_u *SourceBudgetUpdate) SetNillableRequestCount(v *int) *SourceBudgetUpdate {
	if v != nil {
		_u.SetRequestCount(*v)
	}
	return _u
}

// AddRequestCount adds value to the "request_count" field.
func (_u *SourceBudgetUpdate) AddRequestCount(v int) *SourceBudgetUpdate {
	_u.mutation.AddRequestCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceBudgetUpdate) SetUpdatedAt(v time.Time) *SourceBudgetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceBudgetMutation object of the builder.
func (_u *SourceBudgetUpdate) Mutation() *SourceBudgetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceBudgetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceBudgetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceBudgetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceBudgetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceBudgetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourcebudget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceBudgetUpdate) check() error {
	if v, ok := _u.mutation.RequestCount(); ok {
		if err := sourcebudget.RequestCountValidator(v); err != nil {
			return &ValidationError{Name: "request_count", err: fmt.Errorf(`ent: validator failed for field "SourceBudget.request_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceBudgetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcebudget.Table, sourcebudget.Columns, sqlgraph.NewFieldSpec(sourcebudget.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(sourcebudget.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(sourcebudget.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowHour(); ok {
		_spec.SetField(sourcebudget.FieldWindowHour, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestCount(); ok {
		_spec.SetField(sourcebudget.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestCount(); ok {
		_spec.AddField(sourcebudget.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcebudget.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcebudget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceBudgetUpdateOne is the builder for updating a single SourceBudget entity.
type SourceBudgetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceBudgetMutation
}

// SetConnectorName sets the "connector_name" field.
func (_u *SourceBudgetUpdateOne) SetConnectorName(v string) *SourceBudgetUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SourceBudgetUpdateOne) SetNillableConnectorName(v *string) *SourceBudgetUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *SourceBudgetUpdateOne) SetSourceKey(v string) *SourceBudgetUpdateOne {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *SourceBudgetUpdateOne) SetNillableSourceKey(v *string) *SourceBudgetUpdateOne {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetWindowHour sets the "window_hour" field.
func (_u *SourceBudgetUpdateOne) SetWindowHour(v string) *SourceBudgetUpdateOne {
	_u.mutation.SetWindowHour(v)
	return _u
}

// SetNillableWindowHour sets the "window_hour" field if the given value is not nil.
func (_u *SourceBudgetUpdateOne) SetNillableWindowHour(v *string) *SourceBudgetUpdateOne {
	if v != nil {
		_u.SetWindowHour(*v)
	}
	return _u
}

// SetRequestCount sets the "request_count" field.
func (_u *SourceBudgetUpdateOne) SetRequestCount(v int) *SourceBudgetUpdateOne {
	_u.mutation.ResetRequestCount()
	_u.mutation.SetRequestCount(v)
	return _u
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_u *SourceBudgetUpdateOne) SetNillableRequestCount(v *int) *SourceBudgetUpdateOne {
	if v != nil {
		_u.SetRequestCount(*v)
	}
	return _u
}

// AddRequestCount adds value to the "request_count" field.
func (_u *SourceBudgetUpdateOne) AddRequestCount(v int) *SourceBudgetUpdateOne {
	_u.mutation.AddRequestCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceBudgetUpdateOne) SetUpdatedAt(v time.Time) *SourceBudgetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceBudgetMutation object of the builder.
func (_u *SourceBudgetUpdateOne) Mutation() *SourceBudgetMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceBudgetUpdate builder.
func (_u *SourceBudgetUpdateOne) Where(ps ...predicate.SourceBudget) *SourceBudgetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceBudgetUpdateOne) Select(field string, fields ...string) *SourceBudgetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceBudget entity.
func (_u *SourceBudgetUpdateOne) Save(ctx context.Context) (*SourceBudget, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceBudgetUpdateOne) SaveX(ctx context.Context) *SourceBudget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceBudgetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceBudgetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceBudgetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourcebudget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceBudgetUpdateOne) check() error {
	if v, ok := _u.mutation.RequestCount(); ok {
		if err := sourcebudget.RequestCountValidator(v); err != nil {
			return &ValidationError{Name: "request_count", err: fmt.Errorf(`ent: validator failed for field "SourceBudget.request_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceBudgetUpdateOne) sqlSave(ctx context.Context) (_node *SourceBudget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcebudget.Table, sourcebudget.Columns, sqlgraph.NewFieldSpec(sourcebudget.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceBudget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcebudget.FieldID)
		for _, f := range fields {
			if !sourcebudget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcebudget.FieldID {
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
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(sourcebudget.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(sourcebudget.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowHour(); ok {
		_spec.SetField(sourcebudget.FieldWindowHour, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestCount(); ok {
		_spec.SetField(sourcebudget.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestCount(); ok {
		_spec.AddField(sourcebudget.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcebudget.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SourceBudget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcebudget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
