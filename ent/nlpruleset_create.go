// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/pkg/models"
)

// NLPRulesetCreate is the builder for creating a NLPRuleset entity.
type NLPRulesetCreate struct {
	config
	mutation *NLPRulesetMutation
	hooks    []Hook
}

// SetVersion sets the "version" field.
func (_c *NLPRulesetCreate) SetVersion(v string) *NLPRulesetCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *NLPRulesetCreate) SetCreatedBy(v string) *NLPRulesetCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *NLPRulesetCreate) SetNillableCreatedBy(v *string) *NLPRulesetCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *NLPRulesetCreate) SetNote(v string) *NLPRulesetCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *NLPRulesetCreate) SetNillableNote(v *string) *NLPRulesetCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *NLPRulesetCreate) SetIsActive(v bool) *NLPRulesetCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *NLPRulesetCreate) SetNillableIsActive(v *bool) *NLPRulesetCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetRules sets the "rules" field.
func (_c *NLPRulesetCreate) SetRules(v []models.NLPRule) *NLPRulesetCreate {
	_c.mutation.SetRules(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NLPRulesetCreate) SetCreatedAt(v time.Time) *NLPRulesetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NLPRulesetCreate) SetNillableCreatedAt(v *time.Time) *NLPRulesetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NLPRulesetCreate) SetUpdatedAt(v time.Time) *NLPRulesetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NLPRulesetCreate) SetNillableUpdatedAt(v *time.Time) *NLPRulesetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the NLPRulesetMutation object of the builder.
func (_c *NLPRulesetCreate) Mutation() *NLPRulesetMutation {
	return _c.mutation
}

// Save creates the NLPRuleset in the database.
func (_c *NLPRulesetCreate) Save(ctx context.Context) (*NLPRuleset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NLPRulesetCreate) SaveX(ctx context.Context) *NLPRuleset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPRulesetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPRulesetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NLPRulesetCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := nlpruleset.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nlpruleset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := nlpruleset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NLPRulesetCreate) check() error {
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "NLPRuleset.version"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "NLPRuleset.is_active"`)}
	}
	if _, ok := _c.mutation.Rules(); !ok {
		return &ValidationError{Name: "rules", err: errors.New(`ent: missing required field "NLPRuleset.rules"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NLPRuleset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NLPRuleset.updated_at"`)}
	}
	return nil
}

func (_c *NLPRulesetCreate) sqlSave(ctx context.Context) (*NLPRuleset, error) {
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

func (_c *NLPRulesetCreate) createSpec() (*NLPRuleset, *sqlgraph.CreateSpec) {
	var (
		_node = &NLPRuleset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nlpruleset.Table, sqlgraph.NewFieldSpec(nlpruleset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(nlpruleset.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(nlpruleset.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(nlpruleset.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(nlpruleset.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Rules(); ok {
		_spec.SetField(nlpruleset.FieldRules, field.TypeJSON, value)
		_node.Rules = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nlpruleset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(nlpruleset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// NLPRulesetCreateBulk is the builder for creating many NLPRuleset entities in bulk.
type NLPRulesetCreateBulk struct {
	config
	err      error
	builders []*NLPRulesetCreate
}

// Save creates the NLPRuleset entities in the database.
func (_c *NLPRulesetCreateBulk) Save(ctx context.Context) ([]*NLPRuleset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NLPRuleset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NLPRulesetMutation)
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
func (_c *NLPRulesetCreateBulk) SaveX(ctx context.Context) []*NLPRuleset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPRulesetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPRulesetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
