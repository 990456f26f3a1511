// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
)

// SLAAlertStateCreate is the builder for creating a SLAAlertState entity.
type SLAAlertStateCreate struct {
	config
	mutation *SLAAlertStateMutation
	hooks    []Hook
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *SLAAlertStateCreate) SetDedupeKey(v string) *SLAAlertStateCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetConnectorName sets the "connector_name" field.
func (_c *SLAAlertStateCreate) SetConnectorName(v string) *SLAAlertStateCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *SLAAlertStateCreate) SetSourceName(v string) *SLAAlertStateCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableSourceName(v *string) *SLAAlertStateCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetBreachType sets the "breach_type" field.
func (_c *SLAAlertStateCreate) SetBreachType(v string) *SLAAlertStateCreate {
	_c.mutation.SetBreachType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *SLAAlertStateCreate) SetSeverity(v slaalertstate.Severity) *SLAAlertStateCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *SLAAlertStateCreate) SetStage(v slaalertstate.Stage) *SLAAlertStateCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *SLAAlertStateCreate) SetMessage(v string) *SLAAlertStateCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *SLAAlertStateCreate) SetFirstSeenAt(v time.Time) *SLAAlertStateCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableFirstSeenAt(v *time.Time) *SLAAlertStateCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *SLAAlertStateCreate) SetLastSeenAt(v time.Time) *SLAAlertStateCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableLastSeenAt(v *time.Time) *SLAAlertStateCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetLastEmittedAt sets the "last_emitted_at" field.
func (_c *SLAAlertStateCreate) SetLastEmittedAt(v time.Time) *SLAAlertStateCreate {
	_c.mutation.SetLastEmittedAt(v)
	return _c
}

// SetNillableLastEmittedAt sets the "last_emitted_at" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableLastEmittedAt(v *time.Time) *SLAAlertStateCreate {
	if v != nil {
		_c.SetLastEmittedAt(*v)
	}
	return _c
}

// SetLastRecoveredAt sets the "last_recovered_at" field.
func (_c *SLAAlertStateCreate) SetLastRecoveredAt(v time.Time) *SLAAlertStateCreate {
	_c.mutation.SetLastRecoveredAt(v)
	return _c
}

// SetNillableLastRecoveredAt sets the "last_recovered_at" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableLastRecoveredAt(v *time.Time) *SLAAlertStateCreate {
	if v != nil {
		_c.SetLastRecoveredAt(*v)
	}
	return _c
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (_c *SLAAlertStateCreate) SetLastEscalatedAt(v time.Time) *SLAAlertStateCreate {
	_c.mutation.SetLastEscalatedAt(v)
	return _c
}

// SetNillableLastEscalatedAt sets the "last_escalated_at" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableLastEscalatedAt(v *time.Time) *SLAAlertStateCreate {
	if v != nil {
		_c.SetLastEscalatedAt(*v)
	}
	return _c
}

// SetRepeatCount sets the "repeat_count" field.
func (_c *SLAAlertStateCreate) SetRepeatCount(v int) *SLAAlertStateCreate {
	_c.mutation.SetRepeatCount(v)
	return _c
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableRepeatCount(v *int) *SLAAlertStateCreate {
	if v != nil {
		_c.SetRepeatCount(*v)
	}
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *SLAAlertStateCreate) SetEscalationLevel(v int) *SLAAlertStateCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableEscalationLevel(v *int) *SLAAlertStateCreate {
	if v != nil {
		_c.SetEscalationLevel(*v)
	}
	return _c
}

// SetEscalationReason sets the "escalation_reason" field.
func (_c *SLAAlertStateCreate) SetEscalationReason(v string) *SLAAlertStateCreate {
	_c.mutation.SetEscalationReason(v)
	return _c
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableEscalationReason(v *string) *SLAAlertStateCreate {
	if v != nil {
		_c.SetEscalationReason(*v)
	}
	return _c
}

// SetIsOpen sets the "is_open" field.
func (_c *SLAAlertStateCreate) SetIsOpen(v bool) *SLAAlertStateCreate {
	_c.mutation.SetIsOpen(v)
	return _c
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableIsOpen(v *bool) *SLAAlertStateCreate {
	if v != nil {
		_c.SetIsOpen(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SLAAlertStateCreate) SetUpdatedAt(v time.Time) *SLAAlertStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SLAAlertStateCreate) SetNillableUpdatedAt(v *time.Time) *SLAAlertStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SLAAlertStateMutation object of the builder.
func (_c *SLAAlertStateCreate) Mutation() *SLAAlertStateMutation {
	return _c.mutation
}

// Save creates the SLAAlertState in the database.
func (_c *SLAAlertStateCreate) Save(ctx context.Context) (*SLAAlertState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SLAAlertStateCreate) SaveX(ctx context.Context) *SLAAlertState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SLAAlertStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SLAAlertStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SLAAlertStateCreate) defaults() {
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := slaalertstate.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := slaalertstate.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.RepeatCount(); !ok {
		v := slaalertstate.DefaultRepeatCount
		_c.mutation.SetRepeatCount(v)
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		v := slaalertstate.DefaultEscalationLevel
		_c.mutation.SetEscalationLevel(v)
	}
	if _, ok := _c.mutation.IsOpen(); !ok {
		v := slaalertstate.DefaultIsOpen
		_c.mutation.SetIsOpen(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slaalertstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SLAAlertStateCreate) check() error {
	if _, ok := _c.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "SLAAlertState.dedupe_key"`)}
	}
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "SLAAlertState.connector_name"`)}
	}
	if _, ok := _c.mutation.BreachType(); !ok {
		return &ValidationError{Name: "breach_type", err: errors.New(`ent: missing required field "SLAAlertState.breach_type"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "SLAAlertState.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := slaalertstate.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "SLAAlertState.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := slaalertstate.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "SLAAlertState.message"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "SLAAlertState.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "SLAAlertState.last_seen_at"`)}
	}
	if _, ok := _c.mutation.RepeatCount(); !ok {
		return &ValidationError{Name: "repeat_count", err: errors.New(`ent: missing required field "SLAAlertState.repeat_count"`)}
	}
	if v, ok := _c.mutation.RepeatCount(); ok {
		if err := slaalertstate.RepeatCountValidator(v); err != nil {
			return &ValidationError{Name: "repeat_count", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.repeat_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "SLAAlertState.escalation_level"`)}
	}
	if v, ok := _c.mutation.EscalationLevel(); ok {
		if err := slaalertstate.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "SLAAlertState.escalation_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOpen(); !ok {
		return &ValidationError{Name: "is_open", err: errors.New(`ent: missing required field "SLAAlertState.is_open"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SLAAlertState.updated_at"`)}
	}
	return nil
}

func (_c *SLAAlertStateCreate) sqlSave(ctx context.Context) (*SLAAlertState, error) {
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

func (_c *SLAAlertStateCreate) createSpec() (*SLAAlertState, *sqlgraph.CreateSpec) {
	var (
		_node = &SLAAlertState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slaalertstate.Table, sqlgraph.NewFieldSpec(slaalertstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(slaalertstate.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(slaalertstate.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(slaalertstate.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.BreachType(); ok {
		_spec.SetField(slaalertstate.FieldBreachType, field.TypeString, value)
		_node.BreachType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(slaalertstate.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(slaalertstate.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(slaalertstate.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(slaalertstate.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(slaalertstate.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.LastEmittedAt(); ok {
		_spec.SetField(slaalertstate.FieldLastEmittedAt, field.TypeTime, value)
		_node.LastEmittedAt = &value
	}
	if value, ok := _c.mutation.LastRecoveredAt(); ok {
		_spec.SetField(slaalertstate.FieldLastRecoveredAt, field.TypeTime, value)
		_node.LastRecoveredAt = &value
	}
	if value, ok := _c.mutation.LastEscalatedAt(); ok {
		_spec.SetField(slaalertstate.FieldLastEscalatedAt, field.TypeTime, value)
		_node.LastEscalatedAt = &value
	}
	if value, ok := _c.mutation.RepeatCount(); ok {
		_spec.SetField(slaalertstate.FieldRepeatCount, field.TypeInt, value)
		_node.RepeatCount = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(slaalertstate.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.EscalationReason(); ok {
		_spec.SetField(slaalertstate.FieldEscalationReason, field.TypeString, value)
		_node.EscalationReason = value
	}
	if value, ok := _c.mutation.IsOpen(); ok {
		_spec.SetField(slaalertstate.FieldIsOpen, field.TypeBool, value)
		_node.IsOpen = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slaalertstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SLAAlertStateCreateBulk is the builder for creating many SLAAlertState entities in bulk.
type SLAAlertStateCreateBulk struct {
	config
	err      error
	builders []*SLAAlertStateCreate
}

// Save creates the SLAAlertState entities in the database.
func (_c *SLAAlertStateCreateBulk) Save(ctx context.Context) ([]*SLAAlertState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SLAAlertState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SLAAlertStateMutation)
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
func (_c *SLAAlertStateCreateBulk) SaveX(ctx context.Context) []*SLAAlertState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SLAAlertStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SLAAlertStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
