// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/slahistory"
)

// SLAHistoryCreate is the builder for creating a SLAHistory entity.
type SLAHistoryCreate struct {
	config
	mutation *SLAHistoryMutation
	hooks    []Hook
}

// SetObservedAt sets the "observed_at" field.
func (_c *SLAHistoryCreate) SetObservedAt(v time.Time) *SLAHistoryCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_c *SLAHistoryCreate) SetNillableObservedAt(v *time.Time) *SLAHistoryCreate {
	if v != nil {
		_c.SetObservedAt(*v)
	}
	return _c
}

// SetConnectorName sets the "connector_name" field.
func (_c *SLAHistoryCreate) SetConnectorName(v string) *SLAHistoryCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *SLAHistoryCreate) SetSourceName(v string) *SLAHistoryCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *SLAHistoryCreate) SetNillableSourceName(v *string) *SLAHistoryCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetBreachType sets the "breach_type" field.
func (_c *SLAHistoryCreate) SetBreachType(v string) *SLAHistoryCreate {
	_c.mutation.SetBreachType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *SLAHistoryCreate) SetSeverity(v string) *SLAHistoryCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *SLAHistoryCreate) SetStage(v string) *SLAHistoryCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetFreshnessMinutes sets the "freshness_minutes" field.
func (_c *SLAHistoryCreate) SetFreshnessMinutes(v int) *SLAHistoryCreate {
	_c.mutation.SetFreshnessMinutes(v)
	return _c
}

// SetNillableFreshnessMinutes sets the "freshness_minutes" field if the given value is not nil.
func (_c *SLAHistoryCreate) SetNillableFreshnessMinutes(v *int) *SLAHistoryCreate {
	if v != nil {
		_c.SetFreshnessMinutes(*v)
	}
	return _c
}

// SetPendingFailures sets the "pending_failures" field.
func (_c *SLAHistoryCreate) SetPendingFailures(v int) *SLAHistoryCreate {
	_c.mutation.SetPendingFailures(v)
	return _c
}

// SetNillablePendingFailures sets the "pending_failures" field if the given value is not nil.
func (_c *SLAHistoryCreate) SetNillablePendingFailures(v *int) *SLAHistoryCreate {
	if v != nil {
		_c.SetPendingFailures(*v)
	}
	return _c
}

// SetDeadFailures sets the "dead_failures" field.
func (_c *SLAHistoryCreate) SetDeadFailures(v int) *SLAHistoryCreate {
	_c.mutation.SetDeadFailures(v)
	return _c
}

// SetNillableDeadFailures sets the "dead_failures" field if the given value is not nil.
func (_c *SLAHistoryCreate) SetNillableDeadFailures(v *int) *SLAHistoryCreate {
	if v != nil {
		_c.SetDeadFailures(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *SLAHistoryCreate) SetMessage(v string) *SLAHistoryCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *SLAHistoryCreate) SetNillableMessage(v *string) *SLAHistoryCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// Mutation returns the SLAHistoryMutation object of the builder.
func (_c *SLAHistoryCreate) Mutation() *SLAHistoryMutation {
	return _c.mutation
}

// Save creates the SLAHistory in the database.
func (_c *SLAHistoryCreate) Save(ctx context.Context) (*SLAHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SLAHistoryCreate) SaveX(ctx context.Context) *SLAHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SLAHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SLAHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SLAHistoryCreate) defaults() {
	if _, ok := _c.mutation.ObservedAt(); !ok {
		v := slahistory.DefaultObservedAt()
		_c.mutation.SetObservedAt(v)
	}
	if _, ok := _c.mutation.PendingFailures(); !ok {
		v := slahistory.DefaultPendingFailures
		_c.mutation.SetPendingFailures(v)
	}
	if _, ok := _c.mutation.DeadFailures(); !ok {
		v := slahistory.DefaultDeadFailures
		_c.mutation.SetDeadFailures(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SLAHistoryCreate) check() error {
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "SLAHistory.observed_at"`)}
	}
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "SLAHistory.connector_name"`)}
	}
	if _, ok := _c.mutation.BreachType(); !ok {
		return &ValidationError{Name: "breach_type", err: errors.New(`ent: missing required field "SLAHistory.breach_type"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "SLAHistory.severity"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "SLAHistory.stage"`)}
	}
	if _, ok := _c.mutation.PendingFailures(); !ok {
		return &ValidationError{Name: "pending_failures", err: errors.New(`ent: missing required field "SLAHistory.pending_failures"`)}
	}
	if _, ok := _c.mutation.DeadFailures(); !ok {
		return &ValidationError{Name: "dead_failures", err: errors.New(`ent: missing required field "SLAHistory.dead_failures"`)}
	}
	return nil
}

func (_c *SLAHistoryCreate) sqlSave(ctx context.Context) (*SLAHistory, error) {
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

func (_c *SLAHistoryCreate) createSpec() (*SLAHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SLAHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slahistory.Table, sqlgraph.NewFieldSpec(slahistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(slahistory.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(slahistory.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(slahistory.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.BreachType(); ok {
		_spec.SetField(slahistory.FieldBreachType, field.TypeString, value)
		_node.BreachType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(slahistory.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(slahistory.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.FreshnessMinutes(); ok {
		_spec.SetField(slahistory.FieldFreshnessMinutes, field.TypeInt, value)
		_node.FreshnessMinutes = &value
	}
	if value, ok := _c.mutation.PendingFailures(); ok {
		_spec.SetField(slahistory.FieldPendingFailures, field.TypeInt, value)
		_node.PendingFailures = value
	}
	if value, ok := _c.mutation.DeadFailures(); ok {
		_spec.SetField(slahistory.FieldDeadFailures, field.TypeInt, value)
		_node.DeadFailures = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(slahistory.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	return _node, _spec
}

// SLAHistoryCreateBulk is the builder for creating many SLAHistory entities in bulk.
type SLAHistoryCreateBulk struct {
	config
	err      error
	builders []*SLAHistoryCreate
}

// Save creates the SLAHistory entities in the database.
func (_c *SLAHistoryCreateBulk) Save(ctx context.Context) ([]*SLAHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SLAHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SLAHistoryMutation)
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
func (_c *SLAHistoryCreateBulk) SaveX(ctx context.Context) []*SLAHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SLAHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SLAHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
