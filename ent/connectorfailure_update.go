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
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ConnectorFailureUpdate is the builder for updating ConnectorFailure entities.
type ConnectorFailureUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorFailureMutation
}

// Where appends a list predicates to the ConnectorFailureUpdate builder.
func (_u *ConnectorFailureUpdate) Where(ps ...predicate.ConnectorFailure) *ConnectorFailureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *ConnectorFailureUpdate) SetConnectorName(v string) *ConnectorFailureUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableConnectorName(v *string) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ConnectorFailureUpdate) SetSourceName(v string) *ConnectorFailureUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableSourceName(v *string) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *ConnectorFailureUpdate) ClearSourceName() *ConnectorFailureUpdate {
	_u.mutation.ClearSourceName()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ConnectorFailureUpdate) SetRunID(v string) *ConnectorFailureUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableRunID(v *string) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ConnectorFailureUpdate) ClearRunID() *ConnectorFailureUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectorFailureUpdate) SetStatus(v connectorfailure.Status) *ConnectorFailureUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableStatus(v *connectorfailure.Status) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ConnectorFailureUpdate) SetRetryCount(v int) *ConnectorFailureUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableRetryCount(v *int) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ConnectorFailureUpdate) AddRetryCount(v int) *ConnectorFailureUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *ConnectorFailureUpdate) SetNextRetryAt(v time.Time) *ConnectorFailureUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableNextRetryAt(v *time.Time) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *ConnectorFailureUpdate) ClearNextRetryAt() *ConnectorFailureUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ConnectorFailureUpdate) SetLastError(v string) *ConnectorFailureUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ConnectorFailureUpdate) SetNillableLastError(v *string) *ConnectorFailureUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ConnectorFailureUpdate) ClearLastError() *ConnectorFailureUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ConnectorFailureUpdate) SetPayload(v map[string]interface{}) *ConnectorFailureUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorFailureUpdate) SetUpdatedAt(v time.Time) *ConnectorFailureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorFailureMutation object of the builder.
func (_u *ConnectorFailureUpdate) Mutation() *ConnectorFailureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorFailureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorFailureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorFailureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorFailureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorFailureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectorfailure.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorFailureUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectorfailure.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorFailure.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := connectorfailure.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ConnectorFailure.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorFailureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectorfailure.Table, connectorfailure.Columns, sqlgraph.NewFieldSpec(connectorfailure.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(connectorfailure.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(connectorfailure.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(connectorfailure.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(connectorfailure.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(connectorfailure.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectorfailure.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(connectorfailure.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(connectorfailure.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(connectorfailure.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(connectorfailure.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(connectorfailure.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(connectorfailure.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(connectorfailure.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectorfailure.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorFailureUpdateOne is the builder for updating a single ConnectorFailure entity.
type ConnectorFailureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorFailureMutation
}

// SetConnectorName sets the "connector_name" field.
func (_u *ConnectorFailureUpdateOne) SetConnectorName(v string) *ConnectorFailureUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableConnectorName(v *string) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ConnectorFailureUpdateOne) SetSourceName(v string) *ConnectorFailureUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableSourceName(v *string) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *ConnectorFailureUpdateOne) ClearSourceName() *ConnectorFailureUpdateOne {
	_u.mutation.ClearSourceName()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ConnectorFailureUpdateOne) SetRunID(v string) *ConnectorFailureUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableRunID(v *string) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ConnectorFailureUpdateOne) ClearRunID() *ConnectorFailureUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectorFailureUpdateOne) SetStatus(v connectorfailure.Status) *ConnectorFailureUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableStatus(v *connectorfailure.Status) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ConnectorFailureUpdateOne) SetRetryCount(v int) *ConnectorFailureUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableRetryCount(v *int) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ConnectorFailureUpdateOne) AddRetryCount(v int) *ConnectorFailureUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *ConnectorFailureUpdateOne) SetNextRetryAt(v time.Time) *ConnectorFailureUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableNextRetryAt(v *time.Time) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *ConnectorFailureUpdateOne) ClearNextRetryAt() *ConnectorFailureUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ConnectorFailureUpdateOne) SetLastError(v string) *ConnectorFailureUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ConnectorFailureUpdateOne) SetNillableLastError(v *string) *ConnectorFailureUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ConnectorFailureUpdateOne) ClearLastError() *ConnectorFailureUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ConnectorFailureUpdateOne) SetPayload(v map[string]interface{}) *ConnectorFailureUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorFailureUpdateOne) SetUpdatedAt(v time.Time) *ConnectorFailureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorFailureMutation object of the builder.
func (_u *ConnectorFailureUpdateOne) Mutation() *ConnectorFailureMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorFailureUpdate builder.
func (_u *ConnectorFailureUpdateOne) Where(ps ...predicate.ConnectorFailure) *ConnectorFailureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorFailureUpdateOne) Select(field string, fields ...string) *ConnectorFailureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorFailure entity.
func (_u *ConnectorFailureUpdateOne) Save(ctx context.Context) (*ConnectorFailure, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorFailureUpdateOne) SaveX(ctx context.Context) *ConnectorFailure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorFailureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorFailureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorFailureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectorfailure.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorFailureUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectorfailure.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorFailure.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := connectorfailure.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ConnectorFailure.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorFailureUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorFailure, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectorfailure.Table, connectorfailure.Columns, sqlgraph.NewFieldSpec(connectorfailure.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorFailure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectorfailure.FieldID)
		for _, f := range fields {
			if !connectorfailure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectorfailure.FieldID {
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
		_spec.SetField(connectorfailure.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(connectorfailure.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(connectorfailure.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(connectorfailure.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(connectorfailure.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectorfailure.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(connectorfailure.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(connectorfailure.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(connectorfailure.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(connectorfailure.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(connectorfailure.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(connectorfailure.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(connectorfailure.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectorfailure.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConnectorFailure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
