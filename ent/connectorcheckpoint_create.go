// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
)

// ConnectorCheckpointCreate is the builder for creating a ConnectorCheckpoint entity.
type ConnectorCheckpointCreate struct {
	config
	mutation *ConnectorCheckpointMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *ConnectorCheckpointCreate) SetConnectorName(v string) *ConnectorCheckpointCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (_c *ConnectorCheckpointCreate) SetCheckpointCursor(v string) *ConnectorCheckpointCreate {
	_c.mutation.SetCheckpointCursor(v)
	return _c
}

// SetNillableCheckpointCursor sets the "checkpoint_cursor" field if the given value is not nil.
func (_c *ConnectorCheckpointCreate) SetNillableCheckpointCursor(v *string) *ConnectorCheckpointCreate {
	if v != nil {
		_c.SetCheckpointCursor(*v)
	}
	return _c
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (_c *ConnectorCheckpointCreate) SetCheckpointPublishTime(v time.Time) *ConnectorCheckpointCreate {
	_c.mutation.SetCheckpointPublishTime(v)
	return _c
}

// SetNillableCheckpointPublishTime sets the "checkpoint_publish_time" field if the given value is not nil.
func (_c *ConnectorCheckpointCreate) SetNillableCheckpointPublishTime(v *time.Time) *ConnectorCheckpointCreate {
	if v != nil {
		_c.SetCheckpointPublishTime(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ConnectorCheckpointCreate) SetLastRunAt(v time.Time) *ConnectorCheckpointCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ConnectorCheckpointCreate) SetNillableLastRunAt(v *time.Time) *ConnectorCheckpointCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_c *ConnectorCheckpointCreate) SetLastSuccessAt(v time.Time) *ConnectorCheckpointCreate {
	_c.mutation.SetLastSuccessAt(v)
	return _c
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_c *ConnectorCheckpointCreate) SetNillableLastSuccessAt(v *time.Time) *ConnectorCheckpointCreate {
	if v != nil {
		_c.SetLastSuccessAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConnectorCheckpointCreate) SetUpdatedAt(v time.Time) *ConnectorCheckpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConnectorCheckpointCreate) SetNillableUpdatedAt(v *time.Time) *ConnectorCheckpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ConnectorCheckpointMutation object of the builder.
func (_c *ConnectorCheckpointCreate) Mutation() *ConnectorCheckpointMutation {
	return _c.mutation
}

// Save creates the ConnectorCheckpoint in the database.
func (_c *ConnectorCheckpointCreate) Save(ctx context.Context) (*ConnectorCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorCheckpointCreate) SaveX(ctx context.Context) *ConnectorCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorCheckpointCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := connectorcheckpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorCheckpointCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "ConnectorCheckpoint.connector_name"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConnectorCheckpoint.updated_at"`)}
	}
	return nil
}

func (_c *ConnectorCheckpointCreate) sqlSave(ctx context.Context) (*ConnectorCheckpoint, error) {
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

func (_c *ConnectorCheckpointCreate) createSpec() (*ConnectorCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectorcheckpoint.Table, sqlgraph.NewFieldSpec(connectorcheckpoint.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(connectorcheckpoint.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.CheckpointCursor(); ok {
		_spec.SetField(connectorcheckpoint.FieldCheckpointCursor, field.TypeString, value)
		_node.CheckpointCursor = &value
	}
	if value, ok := _c.mutation.CheckpointPublishTime(); ok {
		_spec.SetField(connectorcheckpoint.FieldCheckpointPublishTime, field.TypeTime, value)
		_node.CheckpointPublishTime = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.LastSuccessAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldLastSuccessAt, field.TypeTime, value)
		_node.LastSuccessAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(connectorcheckpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConnectorCheckpointCreateBulk is the builder for creating many ConnectorCheckpoint entities in bulk.
type ConnectorCheckpointCreateBulk struct {
	config
	err      error
	builders []*ConnectorCheckpointCreate
}

// Save creates the ConnectorCheckpoint entities in the database.
func (_c *ConnectorCheckpointCreateBulk) Save(ctx context.Context) ([]*ConnectorCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorCheckpointMutation)
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
func (_c *ConnectorCheckpointCreateBulk) SaveX(ctx context.Context) []*ConnectorCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
