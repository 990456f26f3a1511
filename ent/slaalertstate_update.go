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
	"github.com/quantmuse/eventcore/ent/slaalertstate"
)

// SLAAlertStateUpdate is the builder for updating SLAAlertState entities.
type SLAAlertStateUpdate struct {
	config
	hooks    []Hook
	mutation *SLAAlertStateMutation
}

// Where appends a list predicates to the SLAAlertStateUpdate builder.
func (_u *SLAAlertStateUpdate) Where(ps ...predicate.SLAAlertState) *SLAAlertStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDedupeKey sets the "dedupe_key" field.
func (_u *SLAAlertStateUpdate) SetDedupeKey(v string) *SLAAlertStateUpdate {
	_u.mutation.SetDedupeKey(v)
	return _u
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableDedupeKey(v *string) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetDedupeKey(*v)
	}
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *SLAAlertStateUpdate) SetConnectorName(v string) *SLAAlertStateUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableConnectorName(v *string) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *SLAAlertStateUpdate) SetSourceName(v string) *SLAAlertStateUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableSourceName(v *string) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *SLAAlertStateUpdate) ClearSourceName() *SLAAlertStateUpdate {
	_u.mutation.ClearSourceName()
	return _u
}

// SetBreachType sets the "breach_type" field.
func (_u *SLAAlertStateUpdate) SetBreachType(v string) *SLAAlertStateUpdate {
	_u.mutation.SetBreachType(v)
	return _u
}

// SetNillableBreachType sets the "breach_type" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableBreachType(v *string) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetBreachType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SLAAlertStateUpdate) SetSeverity(v slaalertstate.Severity) *SLAAlertStateUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableSeverity(v *slaalertstate.Severity) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SLAAlertStateUpdate) SetStage(v slaalertstate.Stage) *SLAAlertStateUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableStage(v *slaalertstate.Stage) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *SLAAlertStateUpdate) SetMessage(v string) *SLAAlertStateUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableMessage(v *string) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *SLAAlertStateUpdate) SetFirstSeenAt(v time.Time) *SLAAlertStateUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableFirstSeenAt(v *time.Time) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *SLAAlertStateUpdate) SetLastSeenAt(v time.Time) *SLAAlertStateUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableLastSeenAt(v *time.Time) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetLastEmittedAt sets the "last_emitted_at" field.
func (_u *SLAAlertStateUpdate) SetLastEmittedAt(v time.Time) *SLAAlertStateUpdate {
	_u.mutation.SetLastEmittedAt(v)
	return _u
}

// SetNillableLastEmittedAt sets the "last_emitted_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableLastEmittedAt(v *time.Time) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetLastEmittedAt(*v)
	}
	return _u
}

// ClearLastEmittedAt clears the value of the "last_emitted_at" field.
func (_u *SLAAlertStateUpdate) ClearLastEmittedAt() *SLAAlertStateUpdate {
	_u.mutation.ClearLastEmittedAt()
	return _u
}

// SetLastRecoveredAt sets the "last_recovered_at" field.
func (_u *SLAAlertStateUpdate) SetLastRecoveredAt(v time.Time) *SLAAlertStateUpdate {
	_u.mutation.SetLastRecoveredAt(v)
	return _u
}

// SetNillableLastRecoveredAt sets the "last_recovered_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableLastRecoveredAt(v *time.Time) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetLastRecoveredAt(*v)
	}
	return _u
}

// ClearLastRecoveredAt clears the value of the "last_recovered_at" field.
func (_u *SLAAlertStateUpdate) ClearLastRecoveredAt() *SLAAlertStateUpdate {
	_u.mutation.ClearLastRecoveredAt()
	return _u
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (_u *SLAAlertStateUpdate) SetLastEscalatedAt(v time.Time) *SLAAlertStateUpdate {
	_u.mutation.SetLastEscalatedAt(v)
	return _u
}

// SetNillableLastEscalatedAt sets the "last_escalated_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableLastEscalatedAt(v *time.Time) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetLastEscalatedAt(*v)
	}
	return _u
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (_u *SLAAlertStateUpdate) ClearLastEscalatedAt() *SLAAlertStateUpdate {
	_u.mutation.ClearLastEscalatedAt()
	return _u
}

// SetRepeatCount sets the "repeat_count" field.
func (_u *SLAAlertStateUpdate) SetRepeatCount(v int) *SLAAlertStateUpdate {
	_u.mutation.ResetRepeatCount()
	_u.mutation.SetRepeatCount(v)
	return _u
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableRepeatCount(v *int) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetRepeatCount(*v)
	}
	return _u
}

// AddRepeatCount adds value to the "repeat_count" field.
func (_u *SLAAlertStateUpdate) AddRepeatCount(v int) *SLAAlertStateUpdate {
	_u.mutation.AddRepeatCount(v)
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *SLAAlertStateUpdate) SetEscalationLevel(v int) *SLAAlertStateUpdate {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableEscalationLevel(v *int) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *SLAAlertStateUpdate) AddEscalationLevel(v int) *SLAAlertStateUpdate {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetEscalationReason sets the "escalation_reason" field.
func (_u *SLAAlertStateUpdate) SetEscalationReason(v string) *SLAAlertStateUpdate {
	_u.mutation.SetEscalationReason(v)
	return _u
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableEscalationReason(v *string) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetEscalationReason(*v)
	}
	return _u
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (_u *SLAAlertStateUpdate) ClearEscalationReason() *SLAAlertStateUpdate {
	_u.mutation.ClearEscalationReason()
	return _u
}

// SetIsOpen sets the "is_open" field.
func (_u *SLAAlertStateUpdate) SetIsOpen(v bool) *SLAAlertStateUpdate {
	_u.mutation.SetIsOpen(v)
	return _u
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_u *SLAAlertStateUpdate) SetNillableIsOpen(v *bool) *SLAAlertStateUpdate {
	if v != nil {
		_u.SetIsOpen(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SLAAlertStateUpdate) SetUpdatedAt(v time.Time) *SLAAlertStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SLAAlertStateMutation object of the builder.
func (_u *SLAAlertStateUpdate) Mutation() *SLAAlertStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SLAAlertStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SLAAlertStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SLAAlertStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SLAAlertStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SLAAlertStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slaalertstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SLAAlertStateUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := slaalertstate.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := slaalertstate.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RepeatCount(); ok {
		if err := slaalertstate.RepeatCountValidator(v); err != nil {
			return &ValidationError{Name: "repeat_count", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.repeat_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := slaalertstate.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.escalation_level": %w`, err)}
		}
	}
	return nil
}

func (_u *SLAAlertStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slaalertstate.Table, slaalertstate.Columns, sqlgraph.NewFieldSpec(slaalertstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DedupeKey(); ok {
		_spec.SetField(slaalertstate.FieldDedupeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(slaalertstate.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(slaalertstate.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(slaalertstate.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.BreachType(); ok {
		_spec.SetField(slaalertstate.FieldBreachType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(slaalertstate.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(slaalertstate.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(slaalertstate.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(slaalertstate.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(slaalertstate.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastEmittedAt(); ok {
		_spec.SetField(slaalertstate.FieldLastEmittedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEmittedAtCleared() {
		_spec.ClearField(slaalertstate.FieldLastEmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRecoveredAt(); ok {
		_spec.SetField(slaalertstate.FieldLastRecoveredAt, field.TypeTime, value)
	}
	if _u.mutation.LastRecoveredAtCleared() {
		_spec.ClearField(slaalertstate.FieldLastRecoveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEscalatedAt(); ok {
		_spec.SetField(slaalertstate.FieldLastEscalatedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEscalatedAtCleared() {
		_spec.ClearField(slaalertstate.FieldLastEscalatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepeatCount(); ok {
		_spec.SetField(slaalertstate.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepeatCount(); ok {
		_spec.AddField(slaalertstate.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(slaalertstate.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(slaalertstate.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationReason(); ok {
		_spec.SetField(slaalertstate.FieldEscalationReason, field.TypeString, value)
	}
	if _u.mutation.EscalationReasonCleared() {
		_spec.ClearField(slaalertstate.FieldEscalationReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsOpen(); ok {
		_spec.SetField(slaalertstate.FieldIsOpen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slaalertstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slaalertstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SLAAlertStateUpdateOne is the builder for updating a single SLAAlertState entity.
type SLAAlertStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SLAAlertStateMutation
}

// SetDedupeKey sets the "dedupe_key" field.
func (_u *SLAAlertStateUpdateOne) SetDedupeKey(v string) *SLAAlertStateUpdateOne {
	_u.mutation.SetDedupeKey(v)
	return _u
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableDedupeKey(v *string) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetDedupeKey(*v)
	}
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *SLAAlertStateUpdateOne) SetConnectorName(v string) *SLAAlertStateUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableConnectorName(v *string) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *SLAAlertStateUpdateOne) SetSourceName(v string) *SLAAlertStateUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableSourceName(v *string) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *SLAAlertStateUpdateOne) ClearSourceName() *SLAAlertStateUpdateOne {
	_u.mutation.ClearSourceName()
	return _u
}

// SetBreachType sets the "breach_type" field.
func (_u *SLAAlertStateUpdateOne) SetBreachType(v string) *SLAAlertStateUpdateOne {
	_u.mutation.SetBreachType(v)
	return _u
}

// SetNillableBreachType sets the "breach_type" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableBreachType(v *string) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetBreachType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SLAAlertStateUpdateOne) SetSeverity(v slaalertstate.Severity) *SLAAlertStateUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableSeverity(v *slaalertstate.Severity) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SLAAlertStateUpdateOne) SetStage(v slaalertstate.Stage) *SLAAlertStateUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableStage(v *slaalertstate.Stage) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *SLAAlertStateUpdateOne) SetMessage(v string) *SLAAlertStateUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableMessage(v *string) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *SLAAlertStateUpdateOne) SetFirstSeenAt(v time.Time) *SLAAlertStateUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableFirstSeenAt(v *time.Time) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *SLAAlertStateUpdateOne) SetLastSeenAt(v time.Time) *SLAAlertStateUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableLastSeenAt(v *time.Time) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetLastEmittedAt sets the "last_emitted_at" field.
func (_u *SLAAlertStateUpdateOne) SetLastEmittedAt(v time.Time) *SLAAlertStateUpdateOne {
	_u.mutation.SetLastEmittedAt(v)
	return _u
}

// SetNillableLastEmittedAt sets the "last_emitted_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableLastEmittedAt(v *time.Time) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetLastEmittedAt(*v)
	}
	return _u
}

// ClearLastEmittedAt clears the value of the "last_emitted_at" field.
func (_u *SLAAlertStateUpdateOne) ClearLastEmittedAt() *SLAAlertStateUpdateOne {
	_u.mutation.ClearLastEmittedAt()
	return _u
}

// SetLastRecoveredAt sets the "last_recovered_at" field.
func (_u *SLAAlertStateUpdateOne) SetLastRecoveredAt(v time.Time) *SLAAlertStateUpdateOne {
	_u.mutation.SetLastRecoveredAt(v)
	return _u
}

// SetNillableLastRecoveredAt sets the "last_recovered_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableLastRecoveredAt(v *time.Time) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetLastRecoveredAt(*v)
	}
	return _u
}

// ClearLastRecoveredAt clears the value of the "last_recovered_at" field.
func (_u *SLAAlertStateUpdateOne) ClearLastRecoveredAt() *SLAAlertStateUpdateOne {
	_u.mutation.ClearLastRecoveredAt()
	return _u
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (_u *SLAAlertStateUpdateOne) SetLastEscalatedAt(v time.Time) *SLAAlertStateUpdateOne {
	_u.mutation.SetLastEscalatedAt(v)
	return _u
}

// SetNillableLastEscalatedAt sets the "last_escalated_at" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableLastEscalatedAt(v *time.Time) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetLastEscalatedAt(*v)
	}
	return _u
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (_u *SLAAlertStateUpdateOne) ClearLastEscalatedAt() *SLAAlertStateUpdateOne {
	_u.mutation.ClearLastEscalatedAt()
	return _u
}

// SetRepeatCount sets the "repeat_count" field.
func (_u *SLAAlertStateUpdateOne) SetRepeatCount(v int) *SLAAlertStateUpdateOne {
	_u.mutation.ResetRepeatCount()
	_u.mutation.SetRepeatCount(v)
	return _u
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableRepeatCount(v *int) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetRepeatCount(*v)
	}
	return _u
}

// AddRepeatCount adds value to the "repeat_count" field.
func (_u *SLAAlertStateUpdateOne) AddRepeatCount(v int) *SLAAlertStateUpdateOne {
	_u.mutation.AddRepeatCount(v)
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *SLAAlertStateUpdateOne) SetEscalationLevel(v int) *SLAAlertStateUpdateOne {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableEscalationLevel(v *int) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *SLAAlertStateUpdateOne) AddEscalationLevel(v int) *SLAAlertStateUpdateOne {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetEscalationReason sets the "escalation_reason" field.
func (_u *SLAAlertStateUpdateOne) SetEscalationReason(v string) *SLAAlertStateUpdateOne {
	_u.mutation.SetEscalationReason(v)
	return _u
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableEscalationReason(v *string) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetEscalationReason(*v)
	}
	return _u
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (_u *SLAAlertStateUpdateOne) ClearEscalationReason() *SLAAlertStateUpdateOne {
	_u.mutation.ClearEscalationReason()
	return _u
}

// SetIsOpen sets the "is_open" field.
func (_u *SLAAlertStateUpdateOne) SetIsOpen(v bool) *SLAAlertStateUpdateOne {
	_u.mutation.SetIsOpen(v)
	return _u
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_u *SLAAlertStateUpdateOne) SetNillableIsOpen(v *bool) *SLAAlertStateUpdateOne {
	if v != nil {
		_u.SetIsOpen(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SLAAlertStateUpdateOne) SetUpdatedAt(v time.Time) *SLAAlertStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SLAAlertStateMutation object of the builder.
func (_u *SLAAlertStateUpdateOne) Mutation() *SLAAlertStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SLAAlertStateUpdate builder.
func (_u *SLAAlertStateUpdateOne) Where(ps ...predicate.SLAAlertState) *SLAAlertStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SLAAlertStateUpdateOne) Select(field string, fields ...string) *SLAAlertStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SLAAlertState entity.
func (_u *SLAAlertStateUpdateOne) Save(ctx context.Context) (*SLAAlertState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SLAAlertStateUpdateOne) SaveX(ctx context.Context) *SLAAlertState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SLAAlertStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SLAAlertStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SLAAlertStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slaalertstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SLAAlertStateUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := slaalertstate.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := slaalertstate.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RepeatCount(); ok {
		if err := slaalertstate.RepeatCountValidator(v); err != nil {
			return &ValidationError{Name: "repeat_count", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.repeat_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := slaalertstate.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.escalation_level": %w`, err)}
		}
	}
	return nil
}

func (_u *SLAAlertStateUpdateOne) sqlSave(ctx context.Context) (_node *SLAAlertState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slaalertstate.Table, slaalertstate.Columns, sqlgraph.NewFieldSpec(slaalertstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SLAAlertState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slaalertstate.FieldID)
		for _, f := range fields {
			if !slaalertstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slaalertstate.FieldID {
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
	if value, ok := _u.mutation.DedupeKey(); ok {
		_spec.SetField(slaalertstate.FieldDedupeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(slaalertstate.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(slaalertstate.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(slaalertstate.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.BreachType(); ok {
		_spec.SetField(slaalertstate.FieldBreachType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(slaalertstate.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(slaalertstate.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(slaalertstate.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(slaalertstate.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(slaalertstate.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastEmittedAt(); ok {
		_spec.SetField(slaalertstate.FieldLastEmittedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEmittedAtCleared() {
		_spec.ClearField(slaalertstate.FieldLastEmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRecoveredAt(); ok {
		_spec.SetField(slaalertstate.FieldLastRecoveredAt, field.TypeTime, value)
	}
	if _u.mutation.LastRecoveredAtCleared() {
		_spec.ClearField(slaalertstate.FieldLastRecoveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEscalatedAt(); ok {
		_spec.SetField(slaalertstate.FieldLastEscalatedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEscalatedAtCleared() {
		_spec.ClearField(slaalertstate.FieldLastEscalatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepeatCount(); ok {
		_spec.SetField(slaalertstate.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepeatCount(); ok {
		_spec.AddField(slaalertstate.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(slaalertstate.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(slaalertstate.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationReason(); ok {
		_spec.SetField(slaalertstate.FieldEscalationReason, field.TypeString, value)
	}
	if _u.mutation.EscalationReasonCleared() {
		_spec.ClearField(slaalertstate.FieldEscalationReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsOpen(); ok {
		_spec.SetField(slaalertstate.FieldIsOpen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slaalertstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SLAAlertState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slaalertstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
