// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/eventsource"
)

// EventSourceCreate is the builder for creating a EventSource entity.
type EventSourceCreate struct {
	config
	mutation *EventSourceMutation
	hooks    []Hook
}

// SetSourceName sets the "source_name" field.
func (_c *EventSourceCreate) SetSourceName(v string) *EventSourceCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *EventSourceCreate) SetSourceType(v eventsource.SourceType) *EventSourceCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableSourceType(v *eventsource.SourceType) *EventSourceCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EventSourceCreate) SetProvider(v string) *EventSourceCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableProvider(v *string) *EventSourceCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *EventSourceCreate) SetTimezone(v string) *EventSourceCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableTimezone(v *string) *EventSourceCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetIngestionLagMinutes sets the "ingestion_lag_minutes" field.
func (_c *EventSourceCreate) SetIngestionLagMinutes(v int) *EventSourceCreate {
	_c.mutation.SetIngestionLagMinutes(v)
	return _c
}

// SetNillableIngestionLagMinutes sets the "ingestion_lag_minutes" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableIngestionLagMinutes(v *int) *EventSourceCreate {
	if v != nil {
		_c.SetIngestionLagMinutes(*v)
	}
	return _c
}

// SetReliabilityScore sets the "reliability_score" field.
func (_c *EventSourceCreate) SetReliabilityScore(v float64) *EventSourceCreate {
	_c.mutation.SetReliabilityScore(v)
	return _c
}

// SetNillableReliabilityScore sets the "reliability_score" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableReliabilityScore(v *float64) *EventSourceCreate {
	if v != nil {
		_c.SetReliabilityScore(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *EventSourceCreate) SetCreatedBy(v string) *EventSourceCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableCreatedBy(v *string) *EventSourceCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *EventSourceCreate) SetNote(v string) *EventSourceCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableNote(v *string) *EventSourceCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventSourceCreate) SetCreatedAt(v time.Time) *EventSourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableCreatedAt(v *time.Time) *EventSourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventSourceCreate) SetUpdatedAt(v time.Time) *EventSourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventSourceCreate) SetNillableUpdatedAt(v *time.Time) *EventSourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the EventSourceMutation object of the builder.
func (_c *EventSourceCreate) Mutation() *EventSourceMutation {
	return _c.mutation
}

// Save creates the EventSource in the database.
func (_c *EventSourceCreate) Save(ctx context.Context) (*EventSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventSourceCreate) SaveX(ctx context.Context) *EventSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventSourceCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := eventsource.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := eventsource.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.IngestionLagMinutes(); !ok {
		v := eventsource.DefaultIngestionLagMinutes
		_c.mutation.SetIngestionLagMinutes(v)
	}
	if _, ok := _c.mutation.ReliabilityScore(); !ok {
		v := eventsource.DefaultReliabilityScore
		_c.mutation.SetReliabilityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventsource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := eventsource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventSourceCreate) check() error {
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "EventSource.source_name"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "EventSource.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := eventsource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "EventSource.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "EventSource.timezone"`)}
	}
	if _, ok := _c.mutation.IngestionLagMinutes(); !ok {
		return &ValidationError{Name: "ingestion_lag_minutes", err: errors.New(`ent: missing required field "EventSource.ingestion_lag_minutes"`)}
	}
	if v, ok := _c.mutation.IngestionLagMinutes(); ok {
		if err := eventsource.IngestionLagMinutesValidator(v); err != nil {
			return &ValidationError{Name: "ingestion_lag_minutes", err: fmt.Errorf(`ent: validator failed for field "EventSource.ingestion_lag_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReliabilityScore(); !ok {
		return &ValidationError{Name: "reliability_score", err: errors.New(`ent: missing required field "EventSource.reliability_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventSource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EventSource.updated_at"`)}
	}
	return nil
}

func (_c *EventSourceCreate) sqlSave(ctx context.Context) (*EventSource, error) {
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

func (_c *EventSourceCreate) createSpec() (*EventSource, *sqlgraph.CreateSpec) {
	var (
		_node = &EventSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventsource.Table, sqlgraph.NewFieldSpec(eventsource.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(eventsource.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(eventsource.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(eventsource.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(eventsource.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.IngestionLagMinutes(); ok {
		_spec.SetField(eventsource.FieldIngestionLagMinutes, field.TypeInt, value)
		_node.IngestionLagMinutes = value
	}
	if value, ok := _c.mutation.ReliabilityScore(); ok {
		_spec.SetField(eventsource.FieldReliabilityScore, field.TypeFloat64, value)
		_node.ReliabilityScore = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(eventsource.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(eventsource.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventsource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(eventsource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EventSourceCreateBulk is the builder for creating many EventSource entities in bulk.
type EventSourceCreateBulk struct {
	config
	err      error
	builders []*EventSourceCreate
}

// Save creates the EventSource entities in the database.
func (_c *EventSourceCreateBulk) Save(ctx context.Context) ([]*EventSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventSourceMutation)
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
func (_c *EventSourceCreateBulk) SaveX(ctx context.Context) []*EventSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
