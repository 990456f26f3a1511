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
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ConnectorRunUpdate is the builder for updating ConnectorRun entities.
type ConnectorRunUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorRunMutation
}

// Where appends a list predicates to the ConnectorRunUpdate builder.
func (_u *ConnectorRunUpdate) Where(ps ...predicate.ConnectorRun) *ConnectorRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ConnectorRunUpdate) SetFinishedAt(v time.Time) *ConnectorRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableFinishedAt(v *time.Time) *ConnectorRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ConnectorRunUpdate) ClearFinishedAt() *ConnectorRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectorRunUpdate) SetStatus(v connectorrun.Status) *ConnectorRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableStatus(v *connectorrun.Status) *ConnectorRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ConnectorRunUpdate) SetTriggeredBy(v string) *ConnectorRunUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableTriggeredBy(v *string) *ConnectorRunUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (_u *ConnectorRunUpdate) ClearTriggeredBy() *ConnectorRunUpdate {
	_u.mutation.ClearTriggeredBy()
	return _u
}

// SetPulledCount sets the "pulled_count" field.
func (_u *ConnectorRunUpdate) SetPulledCount(v int) *ConnectorRunUpdate {
	_u.mutation.ResetPulledCount()
	_u.mutation.SetPulledCount(v)
	return _u
}

// SetNillablePulledCount sets the "pulled_count" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillablePulledCount(v *int) *ConnectorRunUpdate {
	if v != nil {
		_u.SetPulledCount(*v)
	}
	return _u
}

// AddPulledCount adds value to the "pulled_count" field.
func (_u *ConnectorRunUpdate) AddPulledCount(v int) *ConnectorRunUpdate {
	_u.mutation.AddPulledCount(v)
	return _u
}

// SetNormalizedCount sets the "normalized_count" field.
func (_u *ConnectorRunUpdate) SetNormalizedCount(v int) *ConnectorRunUpdate {
	_u.mutation.ResetNormalizedCount()
	_u.mutation.SetNormalizedCount(v)
	return _u
}

// SetNillableNormalizedCount sets the "normalized_count" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableNormalizedCount(v *int) *ConnectorRunUpdate {
	if v != nil {
		_u.SetNormalizedCount(*v)
	}
	return _u
}

// AddNormalizedCount adds value to the "normalized_count" field.
func (_u *ConnectorRunUpdate) AddNormalizedCount(v int) *ConnectorRunUpdate {
	_u.mutation.AddNormalizedCount(v)
	return _u
}

// SetInsertedCount sets the "inserted_count" field.
func (_u *ConnectorRunUpdate) SetInsertedCount(v int) *ConnectorRunUpdate {
	_u.mutation.ResetInsertedCount()
	_u.mutation.SetInsertedCount(v)
	return _u
}

// SetNillableInsertedCount sets the "inserted_count" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableInsertedCount(v *int) *ConnectorRunUpdate {
	if v != nil {
		_u.SetInsertedCount(*v)
	}
	return _u
}

// AddInsertedCount adds value to the "inserted_count" field.
func (_u *ConnectorRunUpdate) AddInsertedCount(v int) *ConnectorRunUpdate {
	_u.mutation.AddInsertedCount(v)
	return _u
}

// SetUpdatedCount sets the "updated_count" field.
func (_u *ConnectorRunUpdate) SetUpdatedCount(v int) *ConnectorRunUpdate {
	_u.mutation.ResetUpdatedCount()
	_u.mutation.SetUpdatedCount(v)
	return _u
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableUpdatedCount(v *int) *ConnectorRunUpdate {
	if v != nil {
		_u.SetUpdatedCount(*v)
	}
	return _u
}

// AddUpdatedCount adds value to the "updated_count" field.
func (_u *ConnectorRunUpdate) AddUpdatedCount(v int) *ConnectorRunUpdate {
	_u.mutation.AddUpdatedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *ConnectorRunUpdate) SetFailedCount(v int) *ConnectorRunUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableFailedCount(v *int) *ConnectorRunUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *ConnectorRunUpdate) AddFailedCount(v int) *ConnectorRunUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetReplayedCount sets the "replayed_count" field.
func (_u *ConnectorRunUpdate) SetReplayedCount(v int) *ConnectorRunUpdate {
	_u.mutation.ResetReplayedCount()
	_u.mutation.SetReplayedCount(v)
	return _u
}

// SetNillableReplayedCount sets the "replayed_count" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableReplayedCount(v *int) *ConnectorRunUpdate {
	if v != nil {
		_u.SetReplayedCount(*v)
	}
	return _u
}

// AddReplayedCount adds value to the "replayed_count" field.
func (_u *ConnectorRunUpdate) AddReplayedCount(v int) *ConnectorRunUpdate {
	_u.mutation.AddReplayedCount(v)
	return _u
}

// SetCheckpointBefore sets the "checkpoint_before" field.
func (_u *ConnectorRunUpdate) SetCheckpointBefore(v string) *ConnectorRunUpdate {
	_u.mutation.SetCheckpointBefore(v)
	return _u
}

// SetNillableCheckpointBefore sets the "checkpoint_before" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableCheckpointBefore(v *string) *ConnectorRunUpdate {
	if v != nil {
		_u.SetCheckpointBefore(*v)
	}
	return _u
}

// ClearCheckpointBefore clears the value of the "checkpoint_before" field.
func (_u *ConnectorRunUpdate) ClearCheckpointBefore() *ConnectorRunUpdate {
	_u.mutation.ClearCheckpointBefore()
	return _u
}

// SetCheckpointAfter sets the "checkpoint_after" field.
func (_u *ConnectorRunUpdate) SetCheckpointAfter(v string) *ConnectorRunUpdate {
	_u.mutation.SetCheckpointAfter(v)
	return _u
}

// SetNillableCheckpointAfter sets the "checkpoint_after" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableCheckpointAfter(v *string) *ConnectorRunUpdate {
	if v != nil {
		_u.SetCheckpointAfter(*v)
	}
	return _u
}

// ClearCheckpointAfter clears the value of the "checkpoint_after" field.
func (_u *ConnectorRunUpdate) ClearCheckpointAfter() *ConnectorRunUpdate {
	_u.mutation.ClearCheckpointAfter()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConnectorRunUpdate) SetErrorMessage(v string) *ConnectorRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConnectorRunUpdate) SetNillableErrorMessage(v *string) *ConnectorRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConnectorRunUpdate) ClearErrorMessage() *ConnectorRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ConnectorRunUpdate) SetDetails(v map[string]interface{}) *ConnectorRunUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ConnectorRunUpdate) ClearDetails() *ConnectorRunUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ConnectorRunMutation object of the builder.
func (_u *ConnectorRunUpdate) Mutation() *ConnectorRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectorrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectorrun.Table, connectorrun.Columns, sqlgraph.NewFieldSpec(connectorrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(connectorrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(connectorrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectorrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(connectorrun.FieldTriggeredBy, field.TypeString, value)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(connectorrun.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := _u.mutation.PulledCount(); ok {
		_spec.SetField(connectorrun.FieldPulledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPulledCount(); ok {
		_spec.AddField(connectorrun.FieldPulledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NormalizedCount(); ok {
		_spec.SetField(connectorrun.FieldNormalizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNormalizedCount(); ok {
		_spec.AddField(connectorrun.FieldNormalizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InsertedCount(); ok {
		_spec.SetField(connectorrun.FieldInsertedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInsertedCount(); ok {
		_spec.AddField(connectorrun.FieldInsertedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedCount(); ok {
		_spec.SetField(connectorrun.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdatedCount(); ok {
		_spec.AddField(connectorrun.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(connectorrun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(connectorrun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplayedCount(); ok {
		_spec.SetField(connectorrun.FieldReplayedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplayedCount(); ok {
		_spec.AddField(connectorrun.FieldReplayedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CheckpointBefore(); ok {
		_spec.SetField(connectorrun.FieldCheckpointBefore, field.TypeString, value)
	}
	if _u.mutation.CheckpointBeforeCleared() {
		_spec.ClearField(connectorrun.FieldCheckpointBefore, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointAfter(); ok {
		_spec.SetField(connectorrun.FieldCheckpointAfter, field.TypeString, value)
	}
	if _u.mutation.CheckpointAfterCleared() {
		_spec.ClearField(connectorrun.FieldCheckpointAfter, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(connectorrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(connectorrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(connectorrun.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(connectorrun.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorRunUpdateOne is the builder for updating a single ConnectorRun entity.
type ConnectorRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorRunMutation
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ConnectorRunUpdateOne) SetFinishedAt(v time.Time) *ConnectorRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ConnectorRunUpdateOne) ClearFinishedAt() *ConnectorRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectorRunUpdateOne) SetStatus(v connectorrun.Status) *ConnectorRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableStatus(v *connectorrun.Status) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ConnectorRunUpdateOne) SetTriggeredBy(v string) *ConnectorRunUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableTriggeredBy(v *string) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (_u *ConnectorRunUpdateOne) ClearTriggeredBy() *ConnectorRunUpdateOne {
	_u.mutation.ClearTriggeredBy()
	return _u
}

// SetPulledCount sets the "pulled_count" field.
func (_u *ConnectorRunUpdateOne) SetPulledCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.ResetPulledCount()
	_u.mutation.SetPulledCount(v)
	return _u
}

// SetNillablePulledCount sets the "pulled_count" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillablePulledCount(v *int) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetPulledCount(*v)
	}
	return _u
}

// AddPulledCount adds value to the "pulled_count" field.
func (_u *ConnectorRunUpdateOne) AddPulledCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.AddPulledCount(v)
	return _u
}

// SetNormalizedCount sets the "normalized_count" field.
func (_u *ConnectorRunUpdateOne) SetNormalizedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.ResetNormalizedCount()
	_u.mutation.SetNormalizedCount(v)
	return _u
}

// SetNillableNormalizedCount sets the "normalized_count" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableNormalizedCount(v *int) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetNormalizedCount(*v)
	}
	return _u
}

// AddNormalizedCount adds value to the "normalized_count" field.
func (_u *ConnectorRunUpdateOne) AddNormalizedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.AddNormalizedCount(v)
	return _u
}

// SetInsertedCount sets the "inserted_count" field.
func (_u *ConnectorRunUpdateOne) SetInsertedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.ResetInsertedCount()
	_u.mutation.SetInsertedCount(v)
	return _u
}

// SetNillableInsertedCount sets the "inserted_count" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableInsertedCount(v *int) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetInsertedCount(*v)
	}
	return _u
}

// AddInsertedCount adds value to the "inserted_count" field.
func (_u *ConnectorRunUpdateOne) AddInsertedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.AddInsertedCount(v)
	return _u
}

// SetUpdatedCount sets the "updated_count" field.
func (_u *ConnectorRunUpdateOne) SetUpdatedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.ResetUpdatedCount()
	_u.mutation.SetUpdatedCount(v)
	return _u
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableUpdatedCount(v *int) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetUpdatedCount(*v)
	}
	return _u
}

// AddUpdatedCount adds value to the "updated_count" field.
func (_u *ConnectorRunUpdateOne) AddUpdatedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.AddUpdatedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *ConnectorRunUpdateOne) SetFailedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableFailedCount(v *int) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *ConnectorRunUpdateOne) AddFailedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetReplayedCount sets the "replayed_count" field.
func (_u *ConnectorRunUpdateOne) SetReplayedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.ResetReplayedCount()
	_u.mutation.SetReplayedCount(v)
	return _u
}

// SetNillableReplayedCount sets the "replayed_count" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableReplayedCount(v *int) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetReplayedCount(*v)
	}
	return _u
}

// AddReplayedCount adds value to the "replayed_count" field.
func (_u *ConnectorRunUpdateOne) AddReplayedCount(v int) *ConnectorRunUpdateOne {
	_u.mutation.AddReplayedCount(v)
	return _u
}

// SetCheckpointBefore sets the "checkpoint_before" field.
func (_u *ConnectorRunUpdateOne) SetCheckpointBefore(v string) *ConnectorRunUpdateOne {
	_u.mutation.SetCheckpointBefore(v)
	return _u
}

// SetNillableCheckpointBefore sets the "checkpoint_before" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableCheckpointBefore(v *string) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetCheckpointBefore(*v)
	}
	return _u
}

// ClearCheckpointBefore clears the value of the "checkpoint_before" field.
func (_u *ConnectorRunUpdateOne) ClearCheckpointBefore() *ConnectorRunUpdateOne {
	_u.mutation.ClearCheckpointBefore()
	return _u
}

// SetCheckpointAfter sets the "checkpoint_after" field.
func (_u *ConnectorRunUpdateOne) SetCheckpointAfter(v string) *ConnectorRunUpdateOne {
	_u.mutation.SetCheckpointAfter(v)
	return _u
}

// SetNillableCheckpointAfter sets the "checkpoint_after" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableCheckpointAfter(v *string) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetCheckpointAfter(*v)
	}
	return _u
}

// ClearCheckpointAfter clears the value of the "checkpoint_after" field.
func (_u *ConnectorRunUpdateOne) ClearCheckpointAfter() *ConnectorRunUpdateOne {
	_u.mutation.ClearCheckpointAfter()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConnectorRunUpdateOne) SetErrorMessage(v string) *ConnectorRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConnectorRunUpdateOne) SetNillableErrorMessage(v *string) *ConnectorRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConnectorRunUpdateOne) ClearErrorMessage() *ConnectorRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ConnectorRunUpdateOne) SetDetails(v map[string]interface{}) *ConnectorRunUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ConnectorRunUpdateOne) ClearDetails() *ConnectorRunUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ConnectorRunMutation object of the builder.
func (_u *ConnectorRunUpdateOne) Mutation() *ConnectorRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorRunUpdate builder.
func (_u *ConnectorRunUpdateOne) Where(ps ...predicate.ConnectorRun) *ConnectorRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorRunUpdateOne) Select(field string, fields ...string) *ConnectorRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorRun entity.
func (_u *ConnectorRunUpdateOne) Save(ctx context.Context) (*ConnectorRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorRunUpdateOne) SaveX(ctx context.Context) *ConnectorRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectorrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorRunUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectorrun.Table, connectorrun.Columns, sqlgraph.NewFieldSpec(connectorrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectorrun.FieldID)
		for _, f := range fields {
			if !connectorrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectorrun.FieldID {
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
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(connectorrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(connectorrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectorrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(connectorrun.FieldTriggeredBy, field.TypeString, value)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(connectorrun.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := _u.mutation.PulledCount(); ok {
		_spec.SetField(connectorrun.FieldPulledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPulledCount(); ok {
		_spec.AddField(connectorrun.FieldPulledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NormalizedCount(); ok {
		_spec.SetField(connectorrun.FieldNormalizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNormalizedCount(); ok {
		_spec.AddField(connectorrun.FieldNormalizedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InsertedCount(); ok {
		_spec.SetField(connectorrun.FieldInsertedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInsertedCount(); ok {
		_spec.AddField(connectorrun.FieldInsertedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedCount(); ok {
		_spec.SetField(connectorrun.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdatedCount(); ok {
		_spec.AddField(connectorrun.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(connectorrun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(connectorrun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplayedCount(); ok {
		_spec.SetField(connectorrun.FieldReplayedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplayedCount(); ok {
		_spec.AddField(connectorrun.FieldReplayedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CheckpointBefore(); ok {
		_spec.SetField(connectorrun.FieldCheckpointBefore, field.TypeString, value)
	}
	if _u.mutation.CheckpointBeforeCleared() {
		_spec.ClearField(connectorrun.FieldCheckpointBefore, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointAfter(); ok {
		_spec.SetField(connectorrun.FieldCheckpointAfter, field.TypeString, value)
	}
	if _u.mutation.CheckpointAfterCleared() {
		_spec.ClearField(connectorrun.FieldCheckpointAfter, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(connectorrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(connectorrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(connectorrun.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(connectorrun.FieldDetails, field.TypeJSON)
	}
	_node = &ConnectorRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
