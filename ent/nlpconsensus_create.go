// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
)

// NLPConsensusCreate is the builder for creating a NLPConsensus entity.
type NLPConsensusCreate struct {
	config
	mutation *NLPConsensusMutation
	hooks    []Hook
}

// SetSourceName sets the "source_name" field.
func (_c *NLPConsensusCreate) SetSourceName(v string) *NLPConsensusCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *NLPConsensusCreate) SetEventID(v string) *NLPConsensusCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetConsensusEventType sets the "consensus_event_type" field.
func (_c *NLPConsensusCreate) SetConsensusEventType(v string) *NLPConsensusCreate {
	_c.mutation.SetConsensusEventType(v)
	return _c
}

// SetConsensusPolarity sets the "consensus_polarity" field.
func (_c *NLPConsensusCreate) SetConsensusPolarity(v string) *NLPConsensusCreate {
	_c.mutation.SetConsensusPolarity(v)
	return _c
}

// SetConsensusScore sets the "consensus_score" field.
func (_c *NLPConsensusCreate) SetConsensusScore(v float64) *NLPConsensusCreate {
	_c.mutation.SetConsensusScore(v)
	return _c
}

// SetNillableConsensusScore sets the "consensus_score" field if the given value is not nil.
func (_c *NLPConsensusCreate) SetNillableConsensusScore(v *float64) *NLPConsensusCreate {
	if v != nil {
		_c.SetConsensusScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *NLPConsensusCreate) SetConfidence(v float64) *NLPConsensusCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *NLPConsensusCreate) SetNillableConfidence(v *float64) *NLPConsensusCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetLabelCount sets the "label_count" field.
func (_c *NLPConsensusCreate) SetLabelCount(v int) *NLPConsensusCreate {
	_c.mutation.SetLabelCount(v)
	return _c
}

// SetNillableLabelCount sets the "label_count" field if the given value is not nil.
func (_c *NLPConsensusCreate) SetNillableLabelCount(v *int) *NLPConsensusCreate {
	if v != nil {
		_c.SetLabelCount(*v)
	}
	return _c
}

// SetConflict sets the "conflict" field.
func (_c *NLPConsensusCreate) SetConflict(v bool) *NLPConsensusCreate {
	_c.mutation.SetConflict(v)
	return _c
}

// SetNillableConflict sets the "conflict" field if the given value is not nil.
func (_c *NLPConsensusCreate) SetNillableConflict(v *bool) *NLPConsensusCreate {
	if v != nil {
		_c.SetConflict(*v)
	}
	return _c
}

// SetConflictReasons sets the "conflict_reasons" field.
func (_c *NLPConsensusCreate) SetConflictReasons(v []string) *NLPConsensusCreate {
	_c.mutation.SetConflictReasons(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NLPConsensusCreate) SetCreatedAt(v time.Time) *NLPConsensusCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NLPConsensusCreate) SetNillableCreatedAt(v *time.Time) *NLPConsensusCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NLPConsensusCreate) SetUpdatedAt(v time.Time) *NLPConsensusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NLPConsensusCreate) SetNillableUpdatedAt(v *time.Time) *NLPConsensusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the NLPConsensusMutation object of the builder.
func (_c *NLPConsensusCreate) Mutation() *NLPConsensusMutation {
	return _c.mutation
}

// Save creates the NLPConsensus in the database.
func (_c *NLPConsensusCreate) Save(ctx context.Context) (*NLPConsensus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NLPConsensusCreate) SaveX(ctx context.Context) *NLPConsensus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPConsensusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPConsensusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NLPConsensusCreate) defaults() {
	if _, ok := _c.mutation.ConsensusScore(); !ok {
		v := nlpconsensus.DefaultConsensusScore
		_c.mutation.SetConsensusScore(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := nlpconsensus.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.LabelCount(); !ok {
		v := nlpconsensus.DefaultLabelCount
		_c.mutation.SetLabelCount(v)
	}
	if _, ok := _c.mutation.Conflict(); !ok {
		v := nlpconsensus.DefaultConflict
		_c.mutation.SetConflict(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nlpconsensus.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := nlpconsensus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NLPConsensusCreate) check() error {
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "NLPConsensus.source_name"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "NLPConsensus.event_id"`)}
	}
	if _, ok := _c.mutation.ConsensusEventType(); !ok {
		return &ValidationError{Name: "consensus_event_type", err: errors.New(`ent: missing required field "NLPConsensus.consensus_event_type"`)}
	}
	if _, ok := _c.mutation.ConsensusPolarity(); !ok {
		return &ValidationError{Name: "consensus_polarity", err: errors.New(`ent: missing required field "NLPConsensus.consensus_polarity"`)}
	}
	if _, ok := _c.mutation.ConsensusScore(); !ok {
		return &ValidationError{Name: "consensus_score", err: errors.New(`ent: missing required field "NLPConsensus.consensus_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "NLPConsensus.confidence"`)}
	}
	if _, ok := _c.mutation.LabelCount(); !ok {
		return &ValidationError{Name: "label_count", err: errors.New(`ent: missing required field "NLPConsensus.label_count"`)}
	}
	if _, ok := _c.mutation.Conflict(); !ok {
		return &ValidationError{Name: "conflict", err: errors.New(`ent: missing required field "NLPConsensus.conflict"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NLPConsensus.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NLPConsensus.updated_at"`)}
	}
	return nil
}

func (_c *NLPConsensusCreate) sqlSave(ctx context.Context) (*NLPConsensus, error) {
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

func (_c *NLPConsensusCreate) createSpec() (*NLPConsensus, *sqlgraph.CreateSpec) {
	var (
		_node = &NLPConsensus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nlpconsensus.Table, sqlgraph.NewFieldSpec(nlpconsensus.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(nlpconsensus.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(nlpconsensus.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.ConsensusEventType(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusEventType, field.TypeString, value)
		_node.ConsensusEventType = value
	}
	if value, ok := _c.mutation.ConsensusPolarity(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusPolarity, field.TypeString, value)
		_node.ConsensusPolarity = value
	}
	if value, ok := _c.mutation.ConsensusScore(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusScore, field.TypeFloat64, value)
		_node.ConsensusScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(nlpconsensus.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LabelCount(); ok {
		_spec.SetField(nlpconsensus.FieldLabelCount, field.TypeInt, value)
		_node.LabelCount = value
	}
	if value, ok := _c.mutation.Conflict(); ok {
		_spec.SetField(nlpconsensus.FieldConflict, field.TypeBool, value)
		_node.Conflict = value
	}
	if value, ok := _c.mutation.ConflictReasons(); ok {
		_spec.SetField(nlpconsensus.FieldConflictReasons, field.TypeJSON, value)
		_node.ConflictReasons = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nlpconsensus.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(nlpconsensus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// NLPConsensusCreateBulk is the builder for creating many NLPConsensus entities in bulk.
type NLPConsensusCreateBulk struct {
	config
	err      error
	builders []*NLPConsensusCreate
}

// Save creates the NLPConsensus entities in the database.
func (_c *NLPConsensusCreateBulk) Save(ctx context.Context) ([]*NLPConsensus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NLPConsensus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NLPConsensusMutation)
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
func (_c *NLPConsensusCreateBulk) SaveX(ctx context.Context) []*NLPConsensus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPConsensusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPConsensusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
