// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
)

// ConnectorFailureCreate is the builder for creating a ConnectorFailure entity.
type ConnectorFailureCreate struct {
	config
	mutation *ConnectorFailureMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *ConnectorFailureCreate) SetConnectorName(v string) *ConnectorFailureCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *ConnectorFailureCreate) SetSourceName(v string) *ConnectorFailureCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableSourceName(v *string) *ConnectorFailureCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ConnectorFailureCreate) SetRunID(v string) *ConnectorFailureCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableRunID(v *string) *ConnectorFailureCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConnectorFailureCreate) SetStatus(v connectorfailure.Status) *ConnectorFailureCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableStatus(v *connectorfailure.Status) *ConnectorFailureCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ConnectorFailureCreate) SetRetryCount(v int) *ConnectorFailureCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableRetryCount(v *int) *ConnectorFailureCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *ConnectorFailureCreate) SetNextRetryAt(v time.Time) *ConnectorFailureCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableNextRetryAt(v *time.Time) *ConnectorFailureCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ConnectorFailureCreate) SetLastError(v string) *ConnectorFailureCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableLastError(v *string) *ConnectorFailureCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ConnectorFailureCreate) SetPayload(v map[string]interface{}) *ConnectorFailureCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConnectorFailureCreate) SetCreatedAt(v time.Time) *ConnectorFailureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableCreatedAt(v *time.Time) *ConnectorFailureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConnectorFailureCreate) SetUpdatedAt(v time.Time) *ConnectorFailureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConnectorFailureCreate) SetNillableUpdatedAt(v *time.Time) *ConnectorFailureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ConnectorFailureMutation object of the builder.
func (_c *ConnectorFailureCreate) Mutation() *ConnectorFailureMutation {
	return _c.mutation
}

// Save creates the ConnectorFailure in the database.
func (_c *ConnectorFailureCreate) Save(ctx context.Context) (*ConnectorFailure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorFailureCreate) SaveX(ctx context.Context) *ConnectorFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorFailureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorFailureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorFailureCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := connectorfailure.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := connectorfailure.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := connectorfailure.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := connectorfailure.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorFailureCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "ConnectorFailure.connector_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConnectorFailure.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := connectorfailure.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorFailure.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ConnectorFailure.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := connectorfailure.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ConnectorFailure.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ConnectorFailure.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConnectorFailure.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConnectorFailure.updated_at"`)}
	}
	return nil
}

func (_c *ConnectorFailureCreate) sqlSave(ctx context.Context) (*ConnectorFailure, error) {
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

func (_c *ConnectorFailureCreate) createSpec() (*ConnectorFailure, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorFailure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectorfailure.Table, sqlgraph.NewFieldSpec(connectorfailure.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(connectorfailure.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(connectorfailure.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(connectorfailure.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(connectorfailure.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(connectorfailure.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(connectorfailure.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(connectorfailure.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(connectorfailure.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(connectorfailure.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(connectorfailure.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConnectorFailureCreateBulk is the builder for creating many ConnectorFailure entities in bulk.
type ConnectorFailureCreateBulk struct {
	config
	err      error
	builders []*ConnectorFailureCreate
}

// Save creates the ConnectorFailure entities in the database.
func (_c *ConnectorFailureCreateBulk) Save(ctx context.Context) ([]*ConnectorFailure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorFailure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorFailureMutation)
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
func (_c *ConnectorFailureCreateBulk) SaveX(ctx context.Context) []*ConnectorFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorFailureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorFailureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
