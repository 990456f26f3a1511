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
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
)

// SourceCredentialCursorUpdate is the builder for updating SourceCredentialCursor entities.
type SourceCredentialCursorUpdate struct {
	config
	hooks    []Hook
	mutation *SourceCredentialCursorMutation
}

// Where appends a list predicates to the SourceCredentialCursorUpdate builder.
func (_u *SourceCredentialCursorUpdate) Where(ps ...predicate.SourceCredentialCursor) *SourceCredentialCursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *SourceCredentialCursorUpdate) SetConnectorName(v string) *SourceCredentialCursorUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SourceCredentialCursorUpdate) SetNillableConnectorName(v *string) *SourceCredentialCursorUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *SourceCredentialCursorUpdate) SetSourceKey(v string) *SourceCredentialCursorUpdate {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *SourceCredentialCursorUpdate) SetNillableSourceKey(v *string) *SourceCredentialCursorUpdate {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetNextIndex sets the "next_index" field.
func (_u *SourceCredentialCursorUpdate) SetNextIndex(v int) *SourceCredentialCursorUpdate {
	_u.mutation.ResetNextIndex()
	_u.mutation.SetNextIndex(v)
	return _u
}

// SetNillableNextIndex sets the "next_index" field if the given value is not nil.
func (_u *SourceCredentialCursorUpdate) SetNillableNextIndex(v *int) *SourceCredentialCursorUpdate {
	if v != nil {
		_u.SetNextIndex(*v)
	}
	return _u
}

// AddNextIndex adds value to the "next_index" field.
func (_u *SourceCredentialCursorUpdate) AddNextIndex(v int) *SourceCredentialCursorUpdate {
	_u.mutation.AddNextIndex(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceCredentialCursorUpdate) SetUpdatedAt(v time.Time) *SourceCredentialCursorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceCredentialCursorMutation object of the builder.
func (_u *SourceCredentialCursorUpdate) Mutation() *SourceCredentialCursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceCredentialCursorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceCredentialCursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceCredentialCursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceCredentialCursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceCredentialCursorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourcecredentialcursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceCredentialCursorUpdate) check() error {
	if v, ok := _u.mutation.NextIndex(); ok {
		if err := sourcecredentialcursor.NextIndexValidator(v); err != nil {
			return &ValidationError{Name: "next_index", err: fmt.Errorf(`ent: validator failed for field "SourceCredentialCursor.next_index": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceCredentialCursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcecredentialcursor.Table, sourcecredentialcursor.Columns, sqlgraph.NewFieldSpec(sourcecredentialcursor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(sourcecredentialcursor.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(sourcecredentialcursor.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextIndex(); ok {
		_spec.SetField(sourcecredentialcursor.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextIndex(); ok {
		_spec.AddField(sourcecredentialcursor.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcecredentialcursor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcecredentialcursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceCredentialCursorUpdateOne is the builder for updating a single SourceCredentialCursor entity.
type SourceCredentialCursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceCredentialCursorMutation
}

// SetConnectorName sets the "connector_name" field.
func (_u *SourceCredentialCursorUpdateOne) SetConnectorName(v string) *SourceCredentialCursorUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SourceCredentialCursorUpdateOne) SetNillableConnectorName(v *string) *SourceCredentialCursorUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *SourceCredentialCursorUpdateOne) SetSourceKey(v string) *SourceCredentialCursorUpdateOne {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *SourceCredentialCursorUpdateOne) SetNillableSourceKey(v *string) *SourceCredentialCursorUpdateOne {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetNextIndex sets the "next_index" field.
func (_u *SourceCredentialCursorUpdateOne) SetNextIndex(v int) *SourceCredentialCursorUpdateOne {
	_u.mutation.ResetNextIndex()
	_u.mutation.SetNextIndex(v)
	return _u
}

// SetNillableNextIndex sets the "next_index" field if the given value is not nil.
func (_u *SourceCredentialCursorUpdateOne) SetNillableNextIndex(v *int) *SourceCredentialCursorUpdateOne {
	if v != nil {
		_u.SetNextIndex(*v)
	}
	return _u
}

// AddNextIndex adds value to the "next_index" field.
func (_u *SourceCredentialCursorUpdateOne) AddNextIndex(v int) *SourceCredentialCursorUpdateOne {
	_u.mutation.AddNextIndex(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceCredentialCursorUpdateOne) SetUpdatedAt(v time.Time) *SourceCredentialCursorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceCredentialCursorMutation object of the builder.
func (_u *SourceCredentialCursorUpdateOne) Mutation() *SourceCredentialCursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceCredentialCursorUpdate builder.
func (_u *SourceCredentialCursorUpdateOne) Where(ps ...predicate.SourceCredentialCursor) *SourceCredentialCursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceCredentialCursorUpdateOne) Select(field string, fields ...string) *SourceCredentialCursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceCredentialCursor entity.
func (_u *SourceCredentialCursorUpdateOne) Save(ctx context.Context) (*SourceCredentialCursor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceCredentialCursorUpdateOne) SaveX(ctx context.Context) *SourceCredentialCursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceCredentialCursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceCredentialCursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceCredentialCursorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourcecredentialcursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceCredentialCursorUpdateOne) check() error {
	if v, ok := _u.mutation.NextIndex(); ok {
		if err := sourcecredentialcursor.NextIndexValidator(v); err != nil {
			return &ValidationError{Name: "next_index", err: fmt.Errorf(`ent: validator failed for field "SourceCredentialCursor.next_index": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceCredentialCursorUpdateOne) sqlSave(ctx context.Context) (_node *SourceCredentialCursor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcecredentialcursor.Table, sourcecredentialcursor.Columns, sqlgraph.NewFieldSpec(sourcecredentialcursor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceCredentialCursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcecredentialcursor.FieldID)
		for _, f := range fields {
			if !sourcecredentialcursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcecredentialcursor.FieldID {
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
		_spec.SetField(sourcecredentialcursor.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(sourcecredentialcursor.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextIndex(); ok {
		_spec.SetField(sourcecredentialcursor.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextIndex(); ok {
		_spec.AddField(sourcecredentialcursor.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcecredentialcursor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SourceCredentialCursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcecredentialcursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
