// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/connectorrun"
)

// ConnectorRunCreate is the builder for creating a ConnectorRun entity.
type ConnectorRunCreate struct {
	config
	mutation *ConnectorRunMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *ConnectorRunCreate) SetConnectorName(v string) *ConnectorRunCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *ConnectorRunCreate) SetSourceName(v string) *ConnectorRunCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ConnectorRunCreate) SetStartedAt(v time.Time) *ConnectorRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableStartedAt(v *time.Time) *ConnectorRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ConnectorRunCreate) SetFinishedAt(v time.Time) *ConnectorRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableFinishedAt(v *time.Time) *ConnectorRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConnectorRunCreate) SetStatus(v connectorrun.Status) *ConnectorRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableStatus(v *connectorrun.Status) *ConnectorRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *ConnectorRunCreate) SetTriggeredBy(v string) *ConnectorRunCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableTriggeredBy(v *string) *ConnectorRunCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetPulledCount sets the "pulled_count" field.
func (_c *ConnectorRunCreate) SetPulledCount(v int) *ConnectorRunCreate {
	_c.mutation.SetPulledCount(v)
	return _c
}

// SetNillablePulledCount sets the "pulled_count" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillablePulledCount(v *int) *ConnectorRunCreate {
	if v != nil {
		_c.SetPulledCount(*v)
	}
	return _c
}

// SetNormalizedCount sets the "normalized_count" field.
func (_c *ConnectorRunCreate) SetNormalizedCount(v int) *ConnectorRunCreate {
	_c.mutation.SetNormalizedCount(v)
	return _c
}

// SetNillableNormalizedCount sets the "normalized_count" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableNormalizedCount(v *int) *ConnectorRunCreate {
	if v != nil {
		_c.SetNormalizedCount(*v)
	}
	return _c
}

// SetInsertedCount sets the "inserted_count" field.
func (_c *ConnectorRunCreate) SetInsertedCount(v int) *ConnectorRunCreate {
	_c.mutation.SetInsertedCount(v)
	return _c
}

// SetNillableInsertedCount sets the "inserted_count" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableInsertedCount(v *int) *ConnectorRunCreate {
	if v != nil {
		_c.SetInsertedCount(*v)
	}
	return _c
}

// SetUpdatedCount sets the "updated_count" field.
func (_c *ConnectorRunCreate) SetUpdatedCount(v int) *ConnectorRunCreate {
	_c.mutation.SetUpdatedCount(v)
	return _c
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableUpdatedCount(v *int) *ConnectorRunCreate {
	if v != nil {
		_c.SetUpdatedCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *ConnectorRunCreate) SetFailedCount(v int) *ConnectorRunCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableFailedCount(v *int) *ConnectorRunCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetReplayedCount sets the "replayed_count" field.
func (_c *ConnectorRunCreate) SetReplayedCount(v int) *ConnectorRunCreate {
	_c.mutation.SetReplayedCount(v)
	return _c
}

// SetNillableReplayedCount sets the "replayed_count" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableReplayedCount(v *int) *ConnectorRunCreate {
	if v != nil {
		_c.SetReplayedCount(*v)
	}
	return _c
}

// SetCheckpointBefore sets the "checkpoint_before" field.
func (_c *ConnectorRunCreate) SetCheckpointBefore(v string) *ConnectorRunCreate {
	_c.mutation.SetCheckpointBefore(v)
	return _c
}

// SetNillableCheckpointBefore sets the "checkpoint_before" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableCheckpointBefore(v *string) *ConnectorRunCreate {
	if v != nil {
		_c.SetCheckpointBefore(*v)
	}
	return _c
}

// SetCheckpointAfter sets the "checkpoint_after" field.
func (_c *ConnectorRunCreate) SetCheckpointAfter(v string) *ConnectorRunCreate {
	_c.mutation.SetCheckpointAfter(v)
	return _c
}

// SetNillableCheckpointAfter sets the "checkpoint_after" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableCheckpointAfter(v *string) *ConnectorRunCreate {
	if v != nil {
		_c.SetCheckpointAfter(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ConnectorRunCreate) SetErrorMessage(v string) *ConnectorRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ConnectorRunCreate) SetNillableErrorMessage(v *string) *ConnectorRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ConnectorRunCreate) SetDetails(v map[string]interface{}) *ConnectorRunCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ConnectorRunCreate) SetID(v string) *ConnectorRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConnectorRunMutation object of the builder.
func (_c *ConnectorRunCreate) Mutation() *ConnectorRunMutation {
	return _c.mutation
}

// Save creates the ConnectorRun in the database.
func (_c *ConnectorRunCreate) Save(ctx context.Context) (*ConnectorRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorRunCreate) SaveX(ctx context.Context) *ConnectorRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := connectorrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := connectorrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PulledCount(); !ok {
		v := connectorrun.DefaultPulledCount
		_c.mutation.SetPulledCount(v)
	}
	if _, ok := _c.mutation.NormalizedCount(); !ok {
		v := connectorrun.DefaultNormalizedCount
		_c.mutation.SetNormalizedCount(v)
	}
	if _, ok := _c.mutation.InsertedCount(); !ok {
		v := connectorrun.DefaultInsertedCount
		_c.mutation.SetInsertedCount(v)
	}
	if _, ok := _c.mutation.UpdatedCount(); !ok {
		v := connectorrun.DefaultUpdatedCount
		_c.mutation.SetUpdatedCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := connectorrun.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.ReplayedCount(); !ok {
		v := connectorrun.DefaultReplayedCount
		_c.mutation.SetReplayedCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorRunCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "ConnectorRun.connector_name"`)}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "ConnectorRun.source_name"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ConnectorRun.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConnectorRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := connectorrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PulledCount(); !ok {
		return &ValidationError{Name: "pulled_count", err: errors.New(`ent: missing required field "ConnectorRun.pulled_count"`)}
	}
	if _, ok := _c.mutation.NormalizedCount(); !ok {
		return &ValidationError{Name: "normalized_count", err: errors.New(`ent: missing required field "ConnectorRun.normalized_count"`)}
	}
	if _, ok := _c.mutation.InsertedCount(); !ok {
		return &ValidationError{Name: "inserted_count", err: errors.New(`ent: missing required field "ConnectorRun.inserted_count"`)}
	}
	if _, ok := _c.mutation.UpdatedCount(); !ok {
		return &ValidationError{Name: "updated_count", err: errors.New(`ent: missing required field "ConnectorRun.updated_count"`)}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "ConnectorRun.failed_count"`)}
	}
	if _, ok := _c.mutation.ReplayedCount(); !ok {
		return &ValidationError{Name: "replayed_count", err: errors.New(`ent: missing required field "ConnectorRun.replayed_count"`)}
	}
	return nil
}

func (_c *ConnectorRunCreate) sqlSave(ctx context.Context) (*ConnectorRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ConnectorRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConnectorRunCreate) createSpec() (*ConnectorRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectorrun.Table, sqlgraph.NewFieldSpec(connectorrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(connectorrun.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(connectorrun.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(connectorrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(connectorrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(connectorrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(connectorrun.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.PulledCount(); ok {
		_spec.SetField(connectorrun.FieldPulledCount, field.TypeInt, value)
		_node.PulledCount = value
	}
	if value, ok := _c.mutation.NormalizedCount(); ok {
		_spec.SetField(connectorrun.FieldNormalizedCount, field.TypeInt, value)
		_node.NormalizedCount = value
	}
	if value, ok := _c.mutation.InsertedCount(); ok {
		_spec.SetField(connectorrun.FieldInsertedCount, field.TypeInt, value)
		_node.InsertedCount = value
	}
	if value, ok := _c.mutation.UpdatedCount(); ok {
		_spec.SetField(connectorrun.FieldUpdatedCount, field.TypeInt, value)
		_node.UpdatedCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(connectorrun.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.ReplayedCount(); ok {
		_spec.SetField(connectorrun.FieldReplayedCount, field.TypeInt, value)
		_node.ReplayedCount = value
	}
	if value, ok := _c.mutation.CheckpointBefore(); ok {
		_spec.SetField(connectorrun.FieldCheckpointBefore, field.TypeString, value)
		_node.CheckpointBefore = &value
	}
	if value, ok := _c.mutation.CheckpointAfter(); ok {
		_spec.SetField(connectorrun.FieldCheckpointAfter, field.TypeString, value)
		_node.CheckpointAfter = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(connectorrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(connectorrun.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	return _node, _spec
}

// ConnectorRunCreateBulk is the builder for creating many ConnectorRun entities in bulk.
type ConnectorRunCreateBulk struct {
	config
	err      error
	builders []*ConnectorRunCreate
}

// Save creates the ConnectorRun entities in the database.
func (_c *ConnectorRunCreateBulk) Save(ctx context.Context) ([]*ConnectorRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorRunMutation)
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
func (_c *ConnectorRunCreateBulk) SaveX(ctx context.Context) []*ConnectorRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
