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
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ConnectorCheckpointUpdate is the builder for updating ConnectorCheckpoint entities.
type ConnectorCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorCheckpointMutation
}

// Where appends a list predicates to the ConnectorCheckpointUpdate builder.
func (_u *ConnectorCheckpointUpdate) Where(ps ...predicate.ConnectorCheckpoint) *ConnectorCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *ConnectorCheckpointUpdate) SetConnectorName(v string) *ConnectorCheckpointUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdate) SetNillableConnectorName(v *string) *ConnectorCheckpointUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (_u *ConnectorCheckpointUpdate) SetCheckpointCursor(v string) *ConnectorCheckpointUpdate {
	_u.mutation.SetCheckpointCursor(v)
	return _u
}

// SetNillableCheckpointCursor sets the "checkpoint_cursor" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdate) SetNillableCheckpointCursor(v *string) *ConnectorCheckpointUpdate {
	if v != nil {
		_u.SetCheckpointCursor(*v)
	}
	return _u
}

// ClearCheckpointCursor clears the value of the "checkpoint_cursor" field.
func (_u *ConnectorCheckpointUpdate) ClearCheckpointCursor() *ConnectorCheckpointUpdate {
	_u.mutation.ClearCheckpointCursor()
	return _u
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (_u *ConnectorCheckpointUpdate) SetCheckpointPublishTime(v time.Time) *ConnectorCheckpointUpdate {
	_u.mutation.SetCheckpointPublishTime(v)
	return _u
}

// SetNillableCheckpointPublishTime sets the "checkpoint_publish_time" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdate) SetNillableCheckpointPublishTime(v *time.Time) *ConnectorCheckpointUpdate {
	if v != nil {
		_u.SetCheckpointPublishTime(*v)
	}
	return _u
}

// ClearCheckpointPublishTime clears the value of the "checkpoint_publish_time" field.
func (_u *ConnectorCheckpointUpdate) ClearCheckpointPublishTime() *ConnectorCheckpointUpdate {
	_u.mutation.ClearCheckpointPublishTime()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ConnectorCheckpointUpdate) SetLastRunAt(v time.Time) *ConnectorCheckpointUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdate) SetNillableLastRunAt(v *time.Time) *ConnectorCheckpointUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ConnectorCheckpointUpdate) ClearLastRunAt() *ConnectorCheckpointUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *ConnectorCheckpointUpdate) SetLastSuccessAt(v time.Time) *ConnectorCheckpointUpdate {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdate) SetNillableLastSuccessAt(v *time.Time) *ConnectorCheckpointUpdate {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *ConnectorCheckpointUpdate) ClearLastSuccessAt() *ConnectorCheckpointUpdate {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorCheckpointUpdate) SetUpdatedAt(v time.Time) *ConnectorCheckpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorCheckpointMutation object of the builder.
func (_u *ConnectorCheckpointUpdate) Mutation() *ConnectorCheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorCheckpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorCheckpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectorcheckpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConnectorCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(connectorcheckpoint.Table, connectorcheckpoint.Columns, sqlgraph.NewFieldSpec(connectorcheckpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(connectorcheckpoint.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointCursor(); ok {
		_spec.SetField(connectorcheckpoint.FieldCheckpointCursor, field.TypeString, value)
	}
	if _u.mutation.CheckpointCursorCleared() {
		_spec.ClearField(connectorcheckpoint.FieldCheckpointCursor, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointPublishTime(); ok {
		_spec.SetField(connectorcheckpoint.FieldCheckpointPublishTime, field.TypeTime, value)
	}
	if _u.mutation.CheckpointPublishTimeCleared() {
		_spec.ClearField(connectorcheckpoint.FieldCheckpointPublishTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(connectorcheckpoint.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(connectorcheckpoint.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorCheckpointUpdateOne is the builder for updating a single ConnectorCheckpoint entity.
type ConnectorCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorCheckpointMutation
}

// SetConnectorName sets the "connector_name" field.
func (_u *ConnectorCheckpointUpdateOne) SetConnectorName(v string) *ConnectorCheckpointUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdateOne) SetNillableConnectorName(v *string) *ConnectorCheckpointUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (_u *ConnectorCheckpointUpdateOne) SetCheckpointCursor(v string) *ConnectorCheckpointUpdateOne {
	_u.mutation.SetCheckpointCursor(v)
	return _u
}

// SetNillableCheckpointCursor sets the "checkpoint_cursor" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdateOne) SetNillableCheckpointCursor(v *string) *ConnectorCheckpointUpdateOne {
	if v != nil {
		_u.SetCheckpointCursor(*v)
	}
	return _u
}

// ClearCheckpointCursor clears the value of the "checkpoint_cursor" field.
func (_u *ConnectorCheckpointUpdateOne) ClearCheckpointCursor() *ConnectorCheckpointUpdateOne {
	_u.mutation.ClearCheckpointCursor()
	return _u
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (_u *ConnectorCheckpointUpdateOne) SetCheckpointPublishTime(v time.Time) *ConnectorCheckpointUpdateOne {
	_u.mutation.SetCheckpointPublishTime(v)
	return _u
}

// SetNillableCheckpointPublishTime sets the "checkpoint_publish_time" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdateOne) SetNillableCheckpointPublishTime(v *time.Time) *ConnectorCheckpointUpdateOne {
	if v != nil {
		_u.SetCheckpointPublishTime(*v)
	}
	return _u
}

// ClearCheckpointPublishTime clears the value of the "checkpoint_publish_time" field.
func (_u *ConnectorCheckpointUpdateOne) ClearCheckpointPublishTime() *ConnectorCheckpointUpdateOne {
	_u.mutation.ClearCheckpointPublishTime()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ConnectorCheckpointUpdateOne) SetLastRunAt(v time.Time) *ConnectorCheckpointUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdateOne) SetNillableLastRunAt(v *time.Time) *ConnectorCheckpointUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ConnectorCheckpointUpdateOne) ClearLastRunAt() *ConnectorCheckpointUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *ConnectorCheckpointUpdateOne) SetLastSuccessAt(v time.Time) *ConnectorCheckpointUpdateOne {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *ConnectorCheckpointUpdateOne) SetNillableLastSuccessAt(v *time.Time) *ConnectorCheckpointUpdateOne {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *ConnectorCheckpointUpdateOne) ClearLastSuccessAt() *ConnectorCheckpointUpdateOne {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorCheckpointUpdateOne) SetUpdatedAt(v time.Time) *ConnectorCheckpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorCheckpointMutation object of the builder.
func (_u *ConnectorCheckpointUpdateOne) Mutation() *ConnectorCheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorCheckpointUpdate builder.
func (_u *ConnectorCheckpointUpdateOne) Where(ps ...predicate.ConnectorCheckpoint) *ConnectorCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorCheckpointUpdateOne) Select(field string, fields ...string) *ConnectorCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorCheckpoint entity.
func (_u *ConnectorCheckpointUpdateOne) Save(ctx context.Context) (*ConnectorCheckpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorCheckpointUpdateOne) SaveX(ctx context.Context) *ConnectorCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorCheckpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectorcheckpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConnectorCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorCheckpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(connectorcheckpoint.Table, connectorcheckpoint.Columns, sqlgraph.NewFieldSpec(connectorcheckpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectorcheckpoint.FieldID)
		for _, f := range fields {
			if !connectorcheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectorcheckpoint.FieldID {
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
		_spec.SetField(connectorcheckpoint.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointCursor(); ok {
		_spec.SetField(connectorcheckpoint.FieldCheckpointCursor, field.TypeString, value)
	}
	if _u.mutation.CheckpointCursorCleared() {
		_spec.ClearField(connectorcheckpoint.FieldCheckpointCursor, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointPublishTime(); ok {
		_spec.SetField(connectorcheckpoint.FieldCheckpointPublishTime, field.TypeTime, value)
	}
	if _u.mutation.CheckpointPublishTimeCleared() {
		_spec.ClearField(connectorcheckpoint.FieldCheckpointPublishTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(connectorcheckpoint.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(connectorcheckpoint.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConnectorCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
