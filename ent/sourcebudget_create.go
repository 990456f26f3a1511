// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
)

// SourceBudgetCreate is the builder for creating a SourceBudget entity.
type SourceBudgetCreate struct {
	config
	mutation *SourceBudgetMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *SourceBudgetCreate) SetConnectorName(v string) *SourceBudgetCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceKey sets the "source_key" field.
func (_c *SourceBudgetCreate) SetSourceKey(v string) *SourceBudgetCreate {
	_c.mutation.SetSourceKey(v)
	return _c
}

// SetWindowHour sets the "window_hour" field.
func (_c *SourceBudgetCreate) SetWindowHour(v string) *SourceBudgetCreate {
	_c.mutation.SetWindowHour(v)
	return _c
}

// SetRequestCount sets the "request_count" field.
func (_c *SourceBudgetCreate) SetRequestCount(v int) *SourceBudgetCreate {
	_c.mutation.SetRequestCount(v)
	return _c
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_c *SourceBudgetCreate) SetNillableRequestCount(v *int) *SourceBudgetCreate {
	if v != nil {
		_c.SetRequestCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceBudgetCreate) SetUpdatedAt(v time.Time) *SourceBudgetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceBudgetCreate) SetNillableUpdatedAt(v *time.Time) *SourceBudgetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SourceBudgetMutation object of the builder.
func (_c *SourceBudgetCreate) Mutation() *SourceBudgetMutation {
	return _c.mutation
}

// Save creates the SourceBudget in the database.
func (_c *SourceBudgetCreate) Save(ctx context.Context) (*SourceBudget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceBudgetCreate) SaveX(ctx context.Context) *SourceBudget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceBudgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceBudgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceBudgetCreate) defaults() {
	if _, ok := _c.mutation.RequestCount(); !ok {
		v := sourcebudget.DefaultRequestCount
		_c.mutation.SetRequestCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sourcebudget.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceBudgetCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "SourceBudget.connector_name"`)}
	}
	if _, ok := _c.mutation.SourceKey(); !ok {
		return &ValidationError{Name: "source_key", err: errors.New(`ent: missing required field "SourceBudget.source_key"`)}
	}
	if _, ok := _c.mutation.WindowHour(); !ok {
		return &ValidationError{Name: "window_hour", err: errors.New(`ent: missing required field "SourceBudget.window_hour"`)}
	}
	if _, ok := _c.mutation.RequestCount(); !ok {
		return &ValidationError{Name: "request_count", err: errors.New(`ent: missing required field "SourceBudget.request_count"`)}
	}
	if v, ok := _c.mutation.RequestCount(); ok {
		if err := sourcebudget.RequestCountValidator(v); err != nil {
			return &ValidationError{Name: "request_count", err: fmt.Errorf(`ent: validator failed for field "SourceBudget.request_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SourceBudget.updated_at"`)}
	}
	return nil
}

func (_c *SourceBudgetCreate) sqlSave(ctx context.Context) (*SourceBudget, error) {
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

func (_c *SourceBudgetCreate) createSpec() (*SourceBudget, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceBudget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcebudget.Table, sqlgraph.NewFieldSpec(sourcebudget.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(sourcebudget.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceKey(); ok {
		_spec.SetField(sourcebudget.FieldSourceKey, field.TypeString, value)
		_node.SourceKey = value
	}
	if value, ok := _c.mutation.WindowHour(); ok {
		_spec.SetField(sourcebudget.FieldWindowHour, field.TypeString, value)
		_node.WindowHour = value
	}
	if value, ok := _c.mutation.RequestCount(); ok {
		_spec.SetField(sourcebudget.FieldRequestCount, field.TypeInt, value)
		_node.RequestCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcebudget.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SourceBudgetCreateBulk is the builder for creating many SourceBudget entities in bulk.
type SourceBudgetCreateBulk struct {
	config
	err      error
	builders []*SourceBudgetCreate
}

// Save creates the SourceBudget entities in the database.
func (_c *SourceBudgetCreateBulk) Save(ctx context.Context) ([]*SourceBudget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceBudget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceBudgetMutation)
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
func (_c *SourceBudgetCreateBulk) SaveX(ctx context.Context) []*SourceBudget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceBudgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceBudgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
