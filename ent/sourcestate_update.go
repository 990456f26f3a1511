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
	"github.com/quantmuse/eventcore/ent/sourcestate"
)

// SourceStateUpdate is the builder for updating SourceState entities.
type SourceStateUpdate struct {
	config
	hooks    []Hook
	mutation *SourceStateMutation
}

// Where appends a list predicates to the SourceStateUpdate builder.
func (_u *SourceStateUpdate) Where(ps ...predicate.SourceState) *SourceStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *SourceStateUpdate) SetConnectorName(v string) *SourceStateUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableConnectorName(v *string) *SourceStateUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *SourceStateUpdate) SetSourceKey(v string) *SourceStateUpdate {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableSourceKey(v *string) *SourceStateUpdate {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetConnectorType sets the "connector_type" field.
func (_u *SourceStateUpdate) SetConnectorType(v string) *SourceStateUpdate {
	_u.mutation.SetConnectorType(v)
	return _u
}

// SetNillableConnectorType sets the "connector_type" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableConnectorType(v *string) *SourceStateUpdate {
	if v != nil {
		_u.SetConnectorType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SourceStateUpdate) SetPriority(v int) *SourceStateUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillablePriority(v *int) *SourceStateUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SourceStateUpdate) AddPriority(v int) *SourceStateUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *SourceStateUpdate) SetEnabled(v bool) *SourceStateUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableEnabled(v *bool) *SourceStateUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *SourceStateUpdate) SetHealthScore(v float64) *SourceStateUpdate {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableHealthScore(v *float64) *SourceStateUpdate {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *SourceStateUpdate) AddHealthScore(v float64) *SourceStateUpdate {
	_u.mutation.AddHealthScore(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *SourceStateUpdate) SetConsecutiveFailures(v int) *SourceStateUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableConsecutiveFailures(v *int) *SourceStateUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *SourceStateUpdate) AddConsecutiveFailures(v int) *SourceStateUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetTotalSuccess sets the "total_success" field.
func (_u *SourceStateUpdate) SetTotalSuccess(v int) *SourceStateUpdate {
	_u.mutation.ResetTotalSuccess()
	_u.mutation.SetTotalSuccess(v)
	return _u
}

// SetNillableTotalSuccess sets the "total_success" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableTotalSuccess(v *int) *SourceStateUpdate {
	if v != nil {
		_u.SetTotalSuccess(*v)
	}
	return _u
}

// AddTotalSuccess adds value to the "total_success" field.
func (_u *SourceStateUpdate) AddTotalSuccess(v int) *SourceStateUpdate {
	_u.mutation.AddTotalSuccess(v)
	return _u
}

// SetTotalFailures sets the "total_failures" field.
func (_u *SourceStateUpdate) SetTotalFailures(v int) *SourceStateUpdate {
	_u.mutation.ResetTotalFailures()
	_u.mutation.SetTotalFailures(v)
	return _u
}

// SetNillableTotalFailures sets the "total_failures" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableTotalFailures(v *int) *SourceStateUpdate {
	if v != nil {
		_u.SetTotalFailures(*v)
	}
	return _u
}

// AddTotalFailures adds value to the "total_failures" field.
func (_u *SourceStateUpdate) AddTotalFailures(v int) *SourceStateUpdate {
	_u.mutation.AddTotalFailures(v)
	return _u
}

// SetLastLatencyMs sets the "last_latency_ms" field.
func (_u *SourceStateUpdate) SetLastLatencyMs(v int) *SourceStateUpdate {
	_u.mutation.ResetLastLatencyMs()
	_u.mutation.SetLastLatencyMs(v)
	return _u
}

// SetNillableLastLatencyMs sets the "last_latency_ms" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableLastLatencyMs(v *int) *SourceStateUpdate {
	if v != nil {
		_u.SetLastLatencyMs(*v)
	}
	return _u
}

// AddLastLatencyMs adds value to the "last_latency_ms" field.
func (_u *SourceStateUpdate) AddLastLatencyMs(v int) *SourceStateUpdate {
	_u.mutation.AddLastLatencyMs(v)
	return _u
}

// ClearLastLatencyMs clears the value of the "last_latency_ms" field.
func (_u *SourceStateUpdate) ClearLastLatencyMs() *SourceStateUpdate {
	_u.mutation.ClearLastLatencyMs()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SourceStateUpdate) SetLastError(v string) *SourceStateUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableLastError(v *string) *SourceStateUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SourceStateUpdate) ClearLastError() *SourceStateUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *SourceStateUpdate) SetLastAttemptAt(v time.Time) *SourceStateUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableLastAttemptAt(v *time.Time) *SourceStateUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *SourceStateUpdate) ClearLastAttemptAt() *SourceStateUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *SourceStateUpdate) SetLastSuccessAt(v time.Time) *SourceStateUpdate {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableLastSuccessAt(v *time.Time) *SourceStateUpdate {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *SourceStateUpdate) ClearLastSuccessAt() *SourceStateUpdate {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_u *SourceStateUpdate) SetLastFailureAt(v time.Time) *SourceStateUpdate {
	_u.mutation.SetLastFailureAt(v)
	return _u
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableLastFailureAt(v *time.Time) *SourceStateUpdate {
	if v != nil {
		_u.SetLastFailureAt(*v)
	}
	return _u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (_u *SourceStateUpdate) ClearLastFailureAt() *SourceStateUpdate {
	_u.mutation.ClearLastFailureAt()
	return _u
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (_u *SourceStateUpdate) SetCheckpointCursor(v string) *SourceStateUpdate {
	_u.mutation.SetCheckpointCursor(v)
	return _u
}

// SetNillableCheckpointCursor sets the "checkpoint_cursor" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableCheckpointCursor(v *string) *SourceStateUpdate {
	if v != nil {
		_u.SetCheckpointCursor(*v)
	}
	return _u
}

// ClearCheckpointCursor clears the value of the "checkpoint_cursor" field.
func (_u *SourceStateUpdate) ClearCheckpointCursor() *SourceStateUpdate {
	_u.mutation.ClearCheckpointCursor()
	return _u
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (_u *SourceStateUpdate) SetCheckpointPublishTime(v time.Time) *SourceStateUpdate {
	_u.mutation.SetCheckpointPublishTime(v)
	return _u
}

// SetNillableCheckpointPublishTime sets the "checkpoint_publish_time" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableCheckpointPublishTime(v *time.Time) *SourceStateUpdate {
	if v != nil {
		_u.SetCheckpointPublishTime(*v)
	}
	return _u
}

// ClearCheckpointPublishTime clears the value of the "checkpoint_publish_time" field.
func (_u *SourceStateUpdate) ClearCheckpointPublishTime() *SourceStateUpdate {
	_u.mutation.ClearCheckpointPublishTime()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SourceStateUpdate) SetIsActive(v bool) *SourceStateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SourceStateUpdate) SetNillableIsActive(v *bool) *SourceStateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceStateUpdate) SetUpdatedAt(v time.Time) *SourceStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceStateMutation object of the builder.
func (_u *SourceStateUpdate) Mutation() *SourceStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourcestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SourceStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sourcestate.Table, sourcestate.Columns, sqlgraph.NewFieldSpec(sourcestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(sourcestate.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(sourcestate.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorType(); ok {
		_spec.SetField(sourcestate.FieldConnectorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(sourcestate.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(sourcestate.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(sourcestate.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(sourcestate.FieldHealthScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(sourcestate.FieldHealthScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(sourcestate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(sourcestate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSuccess(); ok {
		_spec.SetField(sourcestate.FieldTotalSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSuccess(); ok {
		_spec.AddField(sourcestate.FieldTotalSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFailures(); ok {
		_spec.SetField(sourcestate.FieldTotalFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFailures(); ok {
		_spec.AddField(sourcestate.FieldTotalFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastLatencyMs(); ok {
		_spec.SetField(sourcestate.FieldLastLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastLatencyMs(); ok {
		_spec.AddField(sourcestate.FieldLastLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LastLatencyMsCleared() {
		_spec.ClearField(sourcestate.FieldLastLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(sourcestate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(sourcestate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(sourcestate.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(sourcestate.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(sourcestate.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(sourcestate.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailureAt(); ok {
		_spec.SetField(sourcestate.FieldLastFailureAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailureAtCleared() {
		_spec.ClearField(sourcestate.FieldLastFailureAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckpointCursor(); ok {
		_spec.SetField(sourcestate.FieldCheckpointCursor, field.TypeString, value)
	}
	if _u.mutation.CheckpointCursorCleared() {
		_spec.ClearField(sourcestate.FieldCheckpointCursor, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointPublishTime(); ok {
		_spec.SetField(sourcestate.FieldCheckpointPublishTime, field.TypeTime, value)
	}
	if _u.mutation.CheckpointPublishTimeCleared() {
		_spec.ClearField(sourcestate.FieldCheckpointPublishTime, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(sourcestate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceStateUpdateOne is the builder for updating a single SourceState entity.
type SourceStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceStateMutation
}

// SetConnectorName sets the "connector_name" field.
func (_u *SourceStateUpdateOne) SetConnectorName(v string) *SourceStateUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableConnectorName(v *string) *SourceStateUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *SourceStateUpdateOne) SetSourceKey(v string) *SourceStateUpdateOne {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableSourceKey(v *string) *SourceStateUpdateOne {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetConnectorType sets the "connector_type" field.
func (_u *SourceStateUpdateOne) SetConnectorType(v string) *SourceStateUpdateOne {
	_u.mutation.SetConnectorType(v)
	return _u
}

// SetNillableConnectorType sets the "connector_type" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableConnectorType(v *string) *SourceStateUpdateOne {
	if v != nil {
		_u.SetConnectorType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SourceStateUpdateOne) SetPriority(v int) *SourceStateUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillablePriority(v *int) *SourceStateUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SourceStateUpdateOne) AddPriority(v int) *SourceStateUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *SourceStateUpdateOne) SetEnabled(v bool) *SourceStateUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableEnabled(v *bool) *SourceStateUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *SourceStateUpdateOne) SetHealthScore(v float64) *SourceStateUpdateOne {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableHealthScore(v *float64) *SourceStateUpdateOne {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *SourceStateUpdateOne) AddHealthScore(v float64) *SourceStateUpdateOne {
	_u.mutation.AddHealthScore(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *SourceStateUpdateOne) SetConsecutiveFailures(v int) *SourceStateUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableConsecutiveFailures(v *int) *SourceStateUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *SourceStateUpdateOne) AddConsecutiveFailures(v int) *SourceStateUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetTotalSuccess sets the "total_success" field.
func (_u *SourceStateUpdateOne) SetTotalSuccess(v int) *SourceStateUpdateOne {
	_u.mutation.ResetTotalSuccess()
	_u.mutation.SetTotalSuccess(v)
	return _u
}

// SetNillableTotalSuccess sets the "total_success" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableTotalSuccess(v *int) *SourceStateUpdateOne {
	if v != nil {
		_u.SetTotalSuccess(*v)
	}
	return _u
}

// AddTotalSuccess adds value to the "total_success" field.
func (_u *SourceStateUpdateOne) AddTotalSuccess(v int) *SourceStateUpdateOne {
	_u.mutation.AddTotalSuccess(v)
	return _u
}

// SetTotalFailures sets the "total_failures" field.
func (_u *SourceStateUpdateOne) SetTotalFailures(v int) *SourceStateUpdateOne {
	_u.mutation.ResetTotalFailures()
	_u.mutation.SetTotalFailures(v)
	return _u
}

// SetNillableTotalFailures sets the "total_failures" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableTotalFailures(v *int) *SourceStateUpdateOne {
	if v != nil {
		_u.SetTotalFailures(*v)
	}
	return _u
}

// AddTotalFailures adds value to the "total_failures" field.
func (_u *SourceStateUpdateOne) AddTotalFailures(v int) *SourceStateUpdateOne {
	_u.mutation.AddTotalFailures(v)
	return _u
}

// SetLastLatencyMs sets the "last_latency_ms" field.
func (_u *SourceStateUpdateOne) SetLastLatencyMs(v int) *SourceStateUpdateOne {
	_u.mutation.ResetLastLatencyMs()
	_u.mutation.SetLastLatencyMs(v)
	return _u
}

// SetNillableLastLatencyMs sets the "last_latency_ms" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableLastLatencyMs(v *int) *SourceStateUpdateOne {
	if v != nil {
		_u.SetLastLatencyMs(*v)
	}
	return _u
}

// AddLastLatencyMs adds value to the "last_latency_ms" field.
func (_u *SourceStateUpdateOne) AddLastLatencyMs(v int) *SourceStateUpdateOne {
	_u.mutation.AddLastLatencyMs(v)
	return _u
}

// ClearLastLatencyMs clears the value of the "last_latency_ms" field.
func (_u *SourceStateUpdateOne) ClearLastLatencyMs() *SourceStateUpdateOne {
	_u.mutation.ClearLastLatencyMs()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SourceStateUpdateOne) SetLastError(v string) *SourceStateUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableLastError(v *string) *SourceStateUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SourceStateUpdateOne) ClearLastError() *SourceStateUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *SourceStateUpdateOne) SetLastAttemptAt(v time.Time) *SourceStateUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableLastAttemptAt(v *time.Time) *SourceStateUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *SourceStateUpdateOne) ClearLastAttemptAt() *SourceStateUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *SourceStateUpdateOne) SetLastSuccessAt(v time.Time) *SourceStateUpdateOne {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableLastSuccessAt(v *time.Time) *SourceStateUpdateOne {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *SourceStateUpdateOne) ClearLastSuccessAt() *SourceStateUpdateOne {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_u *SourceStateUpdateOne) SetLastFailureAt(v time.Time) *SourceStateUpdateOne {
	_u.mutation.SetLastFailureAt(v)
	return _u
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableLastFailureAt(v *time.Time) *SourceStateUpdateOne {
	if v != nil {
		_u.SetLastFailureAt(*v)
	}
	return _u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (_u *SourceStateUpdateOne) ClearLastFailureAt() *SourceStateUpdateOne {
	_u.mutation.ClearLastFailureAt()
	return _u
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (_u *SourceStateUpdateOne) SetCheckpointCursor(v string) *SourceStateUpdateOne {
	_u.mutation.SetCheckpointCursor(v)
	return _u
}

// SetNillableCheckpointCursor sets the "checkpoint_cursor" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableCheckpointCursor(v *string) *SourceStateUpdateOne {
	if v != nil {
		_u.SetCheckpointCursor(*v)
	}
	return _u
}

// ClearCheckpointCursor clears the value of the "checkpoint_cursor" field.
func (_u *SourceStateUpdateOne) ClearCheckpointCursor() *SourceStateUpdateOne {
	_u.mutation.ClearCheckpointCursor()
	return _u
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (_u *SourceStateUpdateOne) SetCheckpointPublishTime(v time.Time) *SourceStateUpdateOne {
	_u.mutation.SetCheckpointPublishTime(v)
	return _u
}

// SetNillableCheckpointPublishTime sets the "checkpoint_publish_time" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableCheckpointPublishTime(v *time.Time) *SourceStateUpdateOne {
	if v != nil {
		_u.SetCheckpointPublishTime(*v)
	}
	return _u
}

// ClearCheckpointPublishTime clears the value of the "checkpoint_publish_time" field.
func (_u *SourceStateUpdateOne) ClearCheckpointPublishTime() *SourceStateUpdateOne {
	_u.mutation.ClearCheckpointPublishTime()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SourceStateUpdateOne) SetIsActive(v bool) *SourceStateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SourceStateUpdateOne) SetNillableIsActive(v *bool) *SourceStateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceStateUpdateOne) SetUpdatedAt(v time.Time) *SourceStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceStateMutation object of the builder.
func (_u *SourceStateUpdateOne) Mutation() *SourceStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceStateUpdate builder.
func (_u *SourceStateUpdateOne) Where(ps ...predicate.SourceState) *SourceStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceStateUpdateOne) Select(field string, fields ...string) *SourceStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceState entity.
func (_u *SourceStateUpdateOne) Save(ctx context.Context) (*SourceState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceStateUpdateOne) SaveX(ctx context.Context) *SourceState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourcestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SourceStateUpdateOne) sqlSave(ctx context.Context) (_node *SourceState, err error) {
	_spec := sqlgraph.NewUpdateSpec(sourcestate.Table, sourcestate.Columns, sqlgraph.NewFieldSpec(sourcestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcestate.FieldID)
		for _, f := range fields {
			if !sourcestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcestate.FieldID {
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
		_spec.SetField(sourcestate.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(sourcestate.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorType(); ok {
		_spec.SetField(sourcestate.FieldConnectorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(sourcestate.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(sourcestate.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(sourcestate.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(sourcestate.FieldHealthScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(sourcestate.FieldHealthScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(sourcestate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(sourcestate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSuccess(); ok {
		_spec.SetField(sourcestate.FieldTotalSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSuccess(); ok {
		_spec.AddField(sourcestate.FieldTotalSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFailures(); ok {
		_spec.SetField(sourcestate.FieldTotalFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFailures(); ok {
		_spec.AddField(sourcestate.FieldTotalFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastLatencyMs(); ok {
		_spec.SetField(sourcestate.FieldLastLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastLatencyMs(); ok {
		_spec.AddField(sourcestate.FieldLastLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LastLatencyMsCleared() {
		_spec.ClearField(sourcestate.FieldLastLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(sourcestate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(sourcestate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(sourcestate.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(sourcestate.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(sourcestate.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(sourcestate.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailureAt(); ok {
		_spec.SetField(sourcestate.FieldLastFailureAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailureAtCleared() {
		_spec.ClearField(sourcestate.FieldLastFailureAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckpointCursor(); ok {
		_spec.SetField(sourcestate.FieldCheckpointCursor, field.TypeString, value)
	}
	if _u.mutation.CheckpointCursorCleared() {
		_spec.ClearField(sourcestate.FieldCheckpointCursor, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointPublishTime(); ok {
		_spec.SetField(sourcestate.FieldCheckpointPublishTime, field.TypeTime, value)
	}
	if _u.mutation.CheckpointPublishTimeCleared() {
		_spec.ClearField(sourcestate.FieldCheckpointPublishTime, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(sourcestate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcestate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SourceState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
