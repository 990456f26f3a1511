// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpfeedback"
)

// NLPFeedbackCreate is the builder for creating a NLPFeedback entity.
type NLPFeedbackCreate struct {
	config
	mutation *NLPFeedbackMutation
	hooks    []Hook
}

// SetSourceName sets the "source_name" field.
func (_c *NLPFeedbackCreate) SetSourceName(v string) *NLPFeedbackCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *NLPFeedbackCreate) SetEventID(v string) *NLPFeedbackCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetLabeler sets the "labeler" field.
func (_c *NLPFeedbackCreate) SetLabeler(v string) *NLPFeedbackCreate {
	_c.mutation.SetLabeler(v)
	return _c
}

// SetNillableLabeler sets the "labeler" field if the given value is not nil.
func (_c *NLPFeedbackCreate) SetNillableLabeler(v *string) *NLPFeedbackCreate {
	if v != nil {
		_c.SetLabeler(*v)
	}
	return _c
}

// SetLabelEventType sets the "label_event_type" field.
func (_c *NLPFeedbackCreate) SetLabelEventType(v string) *NLPFeedbackCreate {
	_c.mutation.SetLabelEventType(v)
	return _c
}

// SetNillableLabelEventType sets the "label_event_type" field if the given value is not nil.
func (_c *NLPFeedbackCreate) SetNillableLabelEventType(v *string) *NLPFeedbackCreate {
	if v != nil {
		_c.SetLabelEventType(*v)
	}
	return _c
}

// SetLabelPolarity sets the "label_polarity" field.
func (_c *NLPFeedbackCreate) SetLabelPolarity(v string) *NLPFeedbackCreate {
	_c.mutation.SetLabelPolarity(v)
	return _c
}

// SetNillableLabelPolarity sets the "label_polarity" field if the given value is not nil.
func (_c *NLPFeedbackCreate) SetNillableLabelPolarity(v *string) *NLPFeedbackCreate {
	if v != nil {
		_c.SetLabelPolarity(*v)
	}
	return _c
}

// SetLabelScore sets the "label_score" field.
func (_c *NLPFeedbackCreate) SetLabelScore(v float64) *NLPFeedbackCreate {
	_c.mutation.SetLabelScore(v)
	return _c
}

// SetNillableLabelScore sets the "label_score" field if the given value is not nil.
func (_c *NLPFeedbackCreate) SetNillableLabelScore(v *float64) *NLPFeedbackCreate {
	if v != nil {
		_c.SetLabelScore(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *NLPFeedbackCreate) SetComment(v string) *NLPFeedbackCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *NLPFeedbackCreate) SetNillableComment(v *string) *NLPFeedbackCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NLPFeedbackCreate) SetCreatedAt(v time.Time) *NLPFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NLPFeedbackCreate) SetNillableCreatedAt(v *time.Time) *NLPFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the NLPFeedbackMutation object of the builder.
func (_c *NLPFeedbackCreate) Mutation() *NLPFeedbackMutation {
	return _c.mutation
}

// Save creates the NLPFeedback in the database.
func (_c *NLPFeedbackCreate) Save(ctx context.Context) (*NLPFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NLPFeedbackCreate) SaveX(ctx context.Context) *NLPFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NLPFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nlpfeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NLPFeedbackCreate) check() error {
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "NLPFeedback.source_name"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "NLPFeedback.event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NLPFeedback.created_at"`)}
	}
	return nil
}

func (_c *NLPFeedbackCreate) sqlSave(ctx context.Context) (*NLPFeedback, error) {
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

func (_c *NLPFeedbackCreate) createSpec() (*NLPFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &NLPFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nlpfeedback.Table, sqlgraph.NewFieldSpec(nlpfeedback.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(nlpfeedback.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(nlpfeedback.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Labeler(); ok {
		_spec.SetField(nlpfeedback.FieldLabeler, field.TypeString, value)
		_node.Labeler = value
	}
	if value, ok := _c.mutation.LabelEventType(); ok {
		_spec.SetField(nlpfeedback.FieldLabelEventType, field.TypeString, value)
		_node.LabelEventType = value
	}
	if value, ok := _c.mutation.LabelPolarity(); ok {
		_spec.SetField(nlpfeedback.FieldLabelPolarity, field.TypeString, value)
		_node.LabelPolarity = value
	}
	if value, ok := _c.mutation.LabelScore(); ok {
		_spec.SetField(nlpfeedback.FieldLabelScore, field.TypeFloat64, value)
		_node.LabelScore = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(nlpfeedback.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nlpfeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NLPFeedbackCreateBulk is the builder for creating many NLPFeedback entities in bulk.
type NLPFeedbackCreateBulk struct {
	config
	err      error
	builders []*NLPFeedbackCreate
}

// Save creates the NLPFeedback entities in the database.
func (_c *NLPFeedbackCreateBulk) Save(ctx context.Context) ([]*NLPFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NLPFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NLPFeedbackMutation)
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
func (_c *NLPFeedbackCreateBulk) SaveX(ctx context.Context) []*NLPFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
