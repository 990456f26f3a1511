// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/sourcestate"
)

// SourceStateCreate is the builder for creating a SourceState entity.
type SourceStateCreate struct {
	config
	mutation *SourceStateMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *SourceStateCreate) SetConnectorName(v string) *SourceStateCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceKey sets the "source_key" field.
func (_c *SourceStateCreate) SetSourceKey(v string) *SourceStateCreate {
	_c.mutation.SetSourceKey(v)
	return _c
}

// SetConnectorType sets the "connector_type" field.
func (_c *SourceStateCreate) SetConnectorType(v string) *SourceStateCreate {
	_c.mutation.SetConnectorType(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SourceStateCreate) SetPriority(v int) *SourceStateCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillablePriority(v *int) *SourceStateCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *SourceStateCreate) SetEnabled(v bool) *SourceStateCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableEnabled(v *bool) *SourceStateCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetHealthScore sets the "health_score" field.
func (_c *SourceStateCreate) SetHealthScore(v float64) *SourceStateCreate {
	_c.mutation.SetHealthScore(v)
	return _c
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableHealthScore(v *float64) *SourceStateCreate {
	if v != nil {
		_c.SetHealthScore(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *SourceStateCreate) SetConsecutiveFailures(v int) *SourceStateCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableConsecutiveFailures(v *int) *SourceStateCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetTotalSuccess sets the "total_success" field.
func (_c *SourceStateCreate) SetTotalSuccess(v int) *SourceStateCreate {
	_c.mutation.SetTotalSuccess(v)
	return _c
}

// SetNillableTotalSuccess sets the "total_success" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableTotalSuccess(v *int) *SourceStateCreate {
	if v != nil {
		_c.SetTotalSuccess(*v)
	}
	return _c
}

// SetTotalFailures sets the "total_failures" field.
func (_c *SourceStateCreate) SetTotalFailures(v int) *SourceStateCreate {
	_c.mutation.SetTotalFailures(v)
	return _c
}

// SetNillableTotalFailures sets the "total_failures" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableTotalFailures(v *int) *SourceStateCreate {
	if v != nil {
		_c.SetTotalFailures(*v)
	}
	return _c
}

// SetLastLatencyMs sets the "last_latency_ms" field.
func (_c *SourceStateCreate) SetLastLatencyMs(v int) *SourceStateCreate {
	_c.mutation.SetLastLatencyMs(v)
	return _c
}

// SetNillableLastLatencyMs sets the "last_latency_ms" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableLastLatencyMs(v *int) *SourceStateCreate {
	if v != nil {
		_c.SetLastLatencyMs(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SourceStateCreate) SetLastError(v string) *SourceStateCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableLastError(v *string) *SourceStateCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *SourceStateCreate) SetLastAttemptAt(v time.Time) *SourceStateCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableLastAttemptAt(v *time.Time) *SourceStateCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_c *SourceStateCreate) SetLastSuccessAt(v time.Time) *SourceStateCreate {
	_c.mutation.SetLastSuccessAt(v)
	return _c
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableLastSuccessAt(v *time.Time) *SourceStateCreate {
	if v != nil {
		_c.SetLastSuccessAt(*v)
	}
	return _c
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_c *SourceStateCreate) SetLastFailureAt(v time.Time) *SourceStateCreate {
	_c.mutation.SetLastFailureAt(v)
	return _c
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableLastFailureAt(v *time.Time) *SourceStateCreate {
	if v != nil {
		_c.SetLastFailureAt(*v)
	}
	return _c
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (_c *SourceStateCreate) SetCheckpointCursor(v string) *SourceStateCreate {
	_c.mutation.SetCheckpointCursor(v)
	return _c
}

// SetNillableCheckpointCursor sets the "checkpoint_cursor" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableCheckpointCursor(v *string) *SourceStateCreate {
	if v != nil {
		_c.SetCheckpointCursor(*v)
	}
	return _c
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (_c *SourceStateCreate) SetCheckpointPublishTime(v time.Time) *SourceStateCreate {
	_c.mutation.SetCheckpointPublishTime(v)
	return _c
}

// SetNillableCheckpointPublishTime sets the "checkpoint_publish_time" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableCheckpointPublishTime(v *time.Time) *SourceStateCreate {
	if v != nil {
		_c.SetCheckpointPublishTime(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SourceStateCreate) SetIsActive(v bool) *SourceStateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableIsActive(v *bool) *SourceStateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceStateCreate) SetUpdatedAt(v time.Time) *SourceStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceStateCreate) SetNillableUpdatedAt(v *time.Time) *SourceStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SourceStateMutation object of the builder.
func (_c *SourceStateCreate) Mutation() *SourceStateMutation {
	return _c.mutation
}

// Save creates the SourceState in the database.
func (_c *SourceStateCreate) Save(ctx context.Context) (*SourceState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceStateCreate) SaveX(ctx context.Context) *SourceState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceStateCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := sourcestate.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := sourcestate.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.HealthScore(); !ok {
		v := sourcestate.DefaultHealthScore
		_c.mutation.SetHealthScore(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := sourcestate.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.TotalSuccess(); !ok {
		v := sourcestate.DefaultTotalSuccess
		_c.mutation.SetTotalSuccess(v)
	}
	if _, ok := _c.mutation.TotalFailures(); !ok {
		v := sourcestate.DefaultTotalFailures
		_c.mutation.SetTotalFailures(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := sourcestate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sourcestate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceStateCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "SourceState.connector_name"`)}
	}
	if _, ok := _c.mutation.SourceKey(); !ok {
		return &ValidationError{Name: "source_key", err: errors.New(`ent: missing required field "SourceState.source_key"`)}
	}
	if _, ok := _c.mutation.ConnectorType(); !ok {
		return &ValidationError{Name: "connector_type", err: errors.New(`ent: missing required field "SourceState.connector_type"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "SourceState.priority"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "SourceState.enabled"`)}
	}
	if _, ok := _c.mutation.HealthScore(); !ok {
		return &ValidationError{Name: "health_score", err: errors.New(`ent: missing required field "SourceState.health_score"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "SourceState.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.TotalSuccess(); !ok {
		return &ValidationError{Name: "total_success", err: errors.New(`ent: missing required field "SourceState.total_success"`)}
	}
	if _, ok := _c.mutation.TotalFailures(); !ok {
		return &ValidationError{Name: "total_failures", err: errors.New(`ent: missing required field "SourceState.total_failures"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SourceState.is_active"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SourceState.updated_at"`)}
	}
	return nil
}

func (_c *SourceStateCreate) sqlSave(ctx context.Context) (*SourceState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceStateCreate) createSpec() (*SourceState, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcestate.Table, sqlgraph.NewFieldSpec(sourcestate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(sourcestate.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceKey(); ok {
		_spec.SetField(sourcestate.FieldSourceKey, field.TypeString, value)
		_node.SourceKey = value
	}
	if value, ok := _c.mutation.ConnectorType(); ok {
		_spec.SetField(sourcestate.FieldConnectorType, field.TypeString, value)
		_node.ConnectorType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(sourcestate.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(sourcestate.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.HealthScore(); ok {
		_spec.SetField(sourcestate.FieldHealthScore, field.TypeFloat64, value)
		_node.HealthScore = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(sourcestate.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.TotalSuccess(); ok {
		_spec.SetField(sourcestate.FieldTotalSuccess, field.TypeInt, value)
		_node.TotalSuccess = value
	}
	if value, ok := _c.mutation.TotalFailures(); ok {
		_spec.SetField(sourcestate.FieldTotalFailures, field.TypeInt, value)
		_node.TotalFailures = value
	}
	if value, ok := _c.mutation.LastLatencyMs(); ok {
		_spec.SetField(sourcestate.FieldLastLatencyMs, field.TypeInt, value)
		_node.LastLatencyMs = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(sourcestate.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(sourcestate.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.LastSuccessAt(); ok {
		_spec.SetField(sourcestate.FieldLastSuccessAt, field.TypeTime, value)
		_node.LastSuccessAt = &value
	}
	if value, ok := _c.mutation.LastFailureAt(); ok {
		_spec.SetField(sourcestate.FieldLastFailureAt, field.TypeTime, value)
		_node.LastFailureAt = &value
	}
	if value, ok := _c.mutation.CheckpointCursor(); ok {
		_spec.SetField(sourcestate.FieldCheckpointCursor, field.TypeString, value)
		_node.CheckpointCursor = &value
	}
	if value, ok := _c.mutation.CheckpointPublishTime(); ok {
		_spec.SetField(sourcestate.FieldCheckpointPublishTime, field.TypeTime, value)
		_node.CheckpointPublishTime = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(sourcestate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcestate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SourceStateCreateBulk is the builder for creating many SourceState entities in bulk.
type SourceStateCreateBulk struct {
	config
	err      error
	builders []*SourceStateCreate
}

// Save creates the SourceState entities in the database.
func (_c *SourceStateCreateBulk) Save(ctx context.Context) ([]*SourceState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SourceStateCreateBulk) SaveX(ctx context.Context) []*SourceState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
