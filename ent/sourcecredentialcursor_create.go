// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
)

// SourceCredentialCursorCreate is the builder for creating a SourceCredentialCursor entity.
type SourceCredentialCursorCreate struct {
	config
	mutation *SourceCredentialCursorMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *SourceCredentialCursorCreate) SetConnectorName(v string) *SourceCredentialCursorCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceKey sets the "source_key" field.
func (_c *SourceCredentialCursorCreate) SetSourceKey(v string) *SourceCredentialCursorCreate {
	_c.mutation.SetSourceKey(v)
	return _c
}

// SetNextIndex sets the "next_index" field.
func (_c *SourceCredentialCursorCreate) SetNextIndex(v int) *SourceCredentialCursorCreate {
	_c.mutation.SetNextIndex(v)
	return _c
}

// SetNillableNextIndex sets the "next_index" field if the given value is not nil.
func (_c *SourceCredentialCursorCreate) SetNillableNextIndex(v *int) *SourceCredentialCursorCreate {
	if v != nil {
		_c.SetNextIndex(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceCredentialCursorCreate) SetUpdatedAt(v time.Time) *SourceCredentialCursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceCredentialCursorCreate) SetNillableUpdatedAt(v *time.Time) *SourceCredentialCursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SourceCredentialCursorMutation object of the builder.
func (_c *SourceCredentialCursorCreate) Mutation() *SourceCredentialCursorMutation {
	return _c.mutation
}

// Save creates the SourceCredentialCursor in the database.
func (_c *SourceCredentialCursorCreate) Save(ctx context.Context) (*SourceCredentialCursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCredentialCursorCreate) SaveX(ctx context.Context) *SourceCredentialCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCredentialCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCredentialCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCredentialCursorCreate) defaults() {
	if _, ok := _c.mutation.NextIndex(); !ok {
		v := sourcecredentialcursor.DefaultNextIndex
		_c.mutation.SetNextIndex(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sourcecredentialcursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCredentialCursorCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "SourceCredentialCursor.connector_name"`)}
	}
	if _, ok := _c.mutation.SourceKey(); !ok {
		return &ValidationError{Name: "source_key", err: errors.New(`ent: missing required field "SourceCredentialCursor.source_key"`)}
	}
	if _, ok := _c.mutation.NextIndex(); !ok {
		return &ValidationError{Name: "next_index", err: errors.New(`ent: missing required field "SourceCredentialCursor.next_index"`)}
	}
	if v, ok := _c.mutation.NextIndex(); ok {
		if err := sourcecredentialcursor.NextIndexValidator(v); err != nil {
			return &ValidationError{Name: "next_index", err: fmt.Errorf(`ent: validator failed for field "SourceCredentialCursor.next_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SourceCredentialCursor.updated_at"`)}
	}
	return nil
}

func (_c *SourceCredentialCursorCreate) sqlSave(ctx context.Context) (*SourceCredentialCursor, error) {
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

func (_c *SourceCredentialCursorCreate) createSpec() (*SourceCredentialCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceCredentialCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcecredentialcursor.Table, sqlgraph.NewFieldSpec(sourcecredentialcursor.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(sourcecredentialcursor.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceKey(); ok {
		_spec.SetField(sourcecredentialcursor.FieldSourceKey, field.TypeString, value)
		_node.SourceKey = value
	}
	if value, ok := _c.mutation.NextIndex(); ok {
		_spec.SetField(sourcecredentialcursor.FieldNextIndex, field.TypeInt, value)
		_node.NextIndex = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sourcecredentialcursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SourceCredentialCursorCreateBulk is the builder for creating many SourceCredentialCursor entities in bulk.
type SourceCredentialCursorCreateBulk struct {
	config
	err      error
	builders []*SourceCredentialCursorCreate
}

// Save creates the SourceCredentialCursor entities in the database.
func (_c *SourceCredentialCursorCreateBulk) Save(ctx context.Context) ([]*SourceCredentialCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceCredentialCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceCredentialCursorMutation)
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
func (_c *SourceCredentialCursorCreateBulk) SaveX(ctx context.Context) []*SourceCredentialCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCredentialCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCredentialCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
