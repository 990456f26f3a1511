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
	"github.com/quantmuse/eventcore/ent/eventsource"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// EventSourceUpdate is the builder for updating EventSource entities.
type EventSourceUpdate struct {
	config
	hooks    []Hook
	mutation *EventSourceMutation
}

// Where appends a list predicates to the EventSourceUpdate builder.
func (_u *EventSourceUpdate) Where(ps ...predicate.EventSource) *EventSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *EventSourceUpdate) SetSourceName(v string) *EventSourceUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableSourceName(v *string) *EventSourceUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *EventSourceUpdate) SetSourceType(v eventsource.SourceType) *EventSourceUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableSourceType(v *eventsource.SourceType) *EventSourceUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EventSourceUpdate) SetProvider(v string) *EventSourceUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableProvider(v *string) *EventSourceUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *EventSourceUpdate) ClearProvider() *EventSourceUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventSourceUpdate) SetTimezone(v string) *EventSourceUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableTimezone(v *string) *EventSourceUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetIngestionLagMinutes sets the "ingestion_lag_minutes" field.
func (_u *EventSourceUpdate) SetIngestionLagMinutes(v int) *EventSourceUpdate {
	_u.mutation.ResetIngestionLagMinutes()
	_u.mutation.SetIngestionLagMinutes(v)
	return _u
}

// SetNillableIngestionLagMinutes sets the "ingestion_lag_minutes" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableIngestionLagMinutes(v *int) *EventSourceUpdate {
	if v != nil {
		_u.SetIngestionLagMinutes(*v)
	}
	return _u
}

// AddIngestionLagMinutes adds value to the "ingestion_lag_minutes" field.
func (_u *EventSourceUpdate) AddIngestionLagMinutes(v int) *EventSourceUpdate {
	_u.mutation.AddIngestionLagMinutes(v)
	return _u
}

// SetReliabilityScore sets the "reliability_score" field.
func (_u *EventSourceUpdate) SetReliabilityScore(v float64) *EventSourceUpdate {
	_u.mutation.ResetReliabilityScore()
	_u.mutation.SetReliabilityScore(v)
	return _u
}

// SetNillableReliabilityScore sets the "reliability_score" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableReliabilityScore(v *float64) *EventSourceUpdate {
	if v != nil {
		_u.SetReliabilityScore(*v)
	}
	return _u
}

// AddReliabilityScore adds value to the "reliability_score" field.
func (_u *EventSourceUpdate) AddReliabilityScore(v float64) *EventSourceUpdate {
	_u.mutation.AddReliabilityScore(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *EventSourceUpdate) SetCreatedBy(v string) *EventSourceUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableCreatedBy(v *string) *EventSourceUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *EventSourceUpdate) ClearCreatedBy() *EventSourceUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *EventSourceUpdate) SetNote(v string) *EventSourceUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *EventSourceUpdate) SetNillableNote(v *string) *EventSourceUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *EventSourceUpdate) ClearNote() *EventSourceUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventSourceUpdate) SetUpdatedAt(v time.Time) *EventSourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventSourceMutation object of the builder.
func (_u *EventSourceUpdate) Mutation() *EventSourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventSourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventSourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventsource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventSourceUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := eventsource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "EventSource.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IngestionLagMinutes(); ok {
		if err := eventsource.IngestionLagMinutesValidator(v); err != nil {
			return &ValidationError{Name: "ingestion_lag_minutes", err: fmt.Errorf(`ent: validator failed for field "EventSource.ingestion_lag_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *EventSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventsource.Table, eventsource.Columns, sqlgraph.NewFieldSpec(eventsource.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(eventsource.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(eventsource.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(eventsource.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(eventsource.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(eventsource.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestionLagMinutes(); ok {
		_spec.SetField(eventsource.FieldIngestionLagMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIngestionLagMinutes(); ok {
		_spec.AddField(eventsource.FieldIngestionLagMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReliabilityScore(); ok {
		_spec.SetField(eventsource.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReliabilityScore(); ok {
		_spec.AddField(eventsource.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(eventsource.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(eventsource.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(eventsource.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(eventsource.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventsource.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventSourceUpdateOne is the builder for updating a single EventSource entity.
type EventSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventSourceMutation
}

// SetSourceName sets the "source_name" field.
func (_u *EventSourceUpdateOne) SetSourceName(v string) *EventSourceUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableSourceName(v *string) *EventSourceUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *EventSourceUpdateOne) SetSourceType(v eventsource.SourceType) *EventSourceUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableSourceType(v *eventsource.SourceType) *EventSourceUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EventSourceUpdateOne) SetProvider(v string) *EventSourceUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableProvider(v *string) *EventSourceUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *EventSourceUpdateOne) ClearProvider() *EventSourceUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventSourceUpdateOne) SetTimezone(v string) *EventSourceUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableTimezone(v *string) *EventSourceUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetIngestionLagMinutes sets the "ingestion_lag_minutes" field.
func (_u *EventSourceUpdateOne) SetIngestionLagMinutes(v int) *EventSourceUpdateOne {
	_u.mutation.ResetIngestionLagMinutes()
	_u.mutation.SetIngestionLagMinutes(v)
	return _u
}

// SetNillableIngestionLagMinutes sets the "ingestion_lag_minutes" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableIngestionLagMinutes(v *int) *EventSourceUpdateOne {
	if v != nil {
		_u.SetIngestionLagMinutes(*v)
	}
	return _u
}

// AddIngestionLagMinutes adds value to the "ingestion_lag_minutes" field.
func (_u *EventSourceUpdateOne) AddIngestionLagMinutes(v int) *EventSourceUpdateOne {
	_u.mutation.AddIngestionLagMinutes(v)
	return _u
}

// SetReliabilityScore sets the "reliability_score" field.
func (_u *EventSourceUpdateOne) SetReliabilityScore(v float64) *EventSourceUpdateOne {
	_u.mutation.ResetReliabilityScore()
	_u.mutation.SetReliabilityScore(v)
	return _u
}

// SetNillableReliabilityScore sets the "reliability_score" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableReliabilityScore(v *float64) *EventSourceUpdateOne {
	if v != nil {
		_u.SetReliabilityScore(*v)
	}
	return _u
}

// AddReliabilityScore adds value to the "reliability_score" field.
func (_u *EventSourceUpdateOne) AddReliabilityScore(v float64) *EventSourceUpdateOne {
	_u.mutation.AddReliabilityScore(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *EventSourceUpdateOne) SetCreatedBy(v string) *EventSourceUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableCreatedBy(v *string) *EventSourceUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *EventSourceUpdateOne) ClearCreatedBy() *EventSourceUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *EventSourceUpdateOne) SetNote(v string) *EventSourceUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *EventSourceUpdateOne) SetNillableNote(v *string) *EventSourceUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *EventSourceUpdateOne) ClearNote() *EventSourceUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventSourceUpdateOne) SetUpdatedAt(v time.Time) *EventSourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventSourceMutation object of the builder.
func (_u *EventSourceUpdateOne) Mutation() *EventSourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventSourceUpdate builder.
func (_u *EventSourceUpdateOne) Where(ps ...predicate.EventSource) *EventSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventSourceUpdateOne) Select(field string, fields ...string) *EventSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventSource entity.
func (_u *EventSourceUpdateOne) Save(ctx context.Context) (*EventSource, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventSourceUpdateOne) SaveX(ctx context.Context) *EventSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventSourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventsource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventSourceUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := eventsource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "EventSource.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IngestionLagMinutes(); ok {
		if err := eventsource.IngestionLagMinutesValidator(v); err != nil {
			return &ValidationError{Name: "ingestion_lag_minutes", err: fmt.Errorf(`ent: validator failed for field "EventSource.ingestion_lag_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *EventSourceUpdateOne) sqlSave(ctx context.Context) (_node *EventSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventsource.Table, eventsource.Columns, sqlgraph.NewFieldSpec(eventsource.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventsource.FieldID)
		for _, f := range fields {
			if !eventsource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventsource.FieldID {
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
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(eventsource.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(eventsource.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(eventsource.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(eventsource.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(eventsource.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestionLagMinutes(); ok {
		_spec.SetField(eventsource.FieldIngestionLagMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIngestionLagMinutes(); ok {
		_spec.AddField(eventsource.FieldIngestionLagMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReliabilityScore(); ok {
		_spec.SetField(eventsource.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReliabilityScore(); ok {
		_spec.AddField(eventsource.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(eventsource.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(eventsource.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(eventsource.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(eventsource.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventsource.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EventSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
