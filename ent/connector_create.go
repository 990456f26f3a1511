// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/connector"
)

// ConnectorCreate is the builder for creating a Connector entity.
type ConnectorCreate struct {
	config
	mutation *ConnectorMutation
	hooks    []Hook
}

// SetConnectorName sets the "connector_name" field.
func (_c *ConnectorCreate) SetConnectorName(v string) *ConnectorCreate {
	_c.mutation.SetConnectorName(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *ConnectorCreate) SetSourceName(v string) *ConnectorCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetConnectorType sets the "connector_type" field.
func (_c *ConnectorCreate) SetConnectorType(v string) *ConnectorCreate {
	_c.mutation.SetConnectorType(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ConnectorCreate) SetEnabled(v bool) *ConnectorCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableEnabled(v *bool) *ConnectorCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetFetchLimit sets the "fetch_limit" field.
func (_c *ConnectorCreate) SetFetchLimit(v int) *ConnectorCreate {
	_c.mutation.SetFetchLimit(v)
	return _c
}

// SetNillableFetchLimit sets the "fetch_limit" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableFetchLimit(v *int) *ConnectorCreate {
	if v != nil {
		_c.SetFetchLimit(*v)
	}
	return _c
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (_c *ConnectorCreate) SetPollIntervalMinutes(v int) *ConnectorCreate {
	_c.mutation.SetPollIntervalMinutes(v)
	return _c
}

// SetNillablePollIntervalMinutes sets the "poll_interval_minutes" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillablePollIntervalMinutes(v *int) *ConnectorCreate {
	if v != nil {
		_c.SetPollIntervalMinutes(*v)
	}
	return _c
}

// SetReplayBackoffSeconds sets the "replay_backoff_seconds" field.
func (_c *ConnectorCreate) SetReplayBackoffSeconds(v int) *ConnectorCreate {
	_c.mutation.SetReplayBackoffSeconds(v)
	return _c
}

// SetNillableReplayBackoffSeconds sets the "replay_backoff_seconds" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableReplayBackoffSeconds(v *int) *ConnectorCreate {
	if v != nil {
		_c.SetReplayBackoffSeconds(*v)
	}
	return _c
}

// SetMaxRetry sets the "max_retry" field.
func (_c *ConnectorCreate) SetMaxRetry(v int) *ConnectorCreate {
	_c.mutation.SetMaxRetry(v)
	return _c
}

// SetNillableMaxRetry sets the "max_retry" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableMaxRetry(v *int) *ConnectorCreate {
	if v != nil {
		_c.SetMaxRetry(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *ConnectorCreate) SetConfig(v map[string]interface{}) *ConnectorCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ConnectorCreate) SetCreatedBy(v string) *ConnectorCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableCreatedBy(v *string) *ConnectorCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *ConnectorCreate) SetNote(v string) *ConnectorCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableNote(v *string) *ConnectorCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConnectorCreate) SetCreatedAt(v time.Time) *ConnectorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableCreatedAt(v *time.Time) *ConnectorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConnectorCreate) SetUpdatedAt(v time.Time) *ConnectorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConnectorCreate) SetNillableUpdatedAt(v *time.Time) *ConnectorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ConnectorMutation object of the builder.
func (_c *ConnectorCreate) Mutation() *ConnectorMutation {
	return _c.mutation
}

// Save creates the Connector in the database.
func (_c *ConnectorCreate) Save(ctx context.Context) (*Connector, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorCreate) SaveX(ctx context.Context) *Connector {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := connector.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.FetchLimit(); !ok {
		v := connector.DefaultFetchLimit
		_c.mutation.SetFetchLimit(v)
	}
	if _, ok := _c.mutation.PollIntervalMinutes(); !ok {
		v := connector.DefaultPollIntervalMinutes
		_c.mutation.SetPollIntervalMinutes(v)
	}
	if _, ok := _c.mutation.ReplayBackoffSeconds(); !ok {
		v := connector.DefaultReplayBackoffSeconds
		_c.mutation.SetReplayBackoffSeconds(v)
	}
	if _, ok := _c.mutation.MaxRetry(); !ok {
		v := connector.DefaultMaxRetry
		_c.mutation.SetMaxRetry(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := connector.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := connector.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorCreate) check() error {
	if _, ok := _c.mutation.ConnectorName(); !ok {
		return &ValidationError{Name: "connector_name", err: errors.New(`ent: missing required field "Connector.connector_name"`)}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "Connector.source_name"`)}
	}
	if _, ok := _c.mutation.ConnectorType(); !ok {
		return &ValidationError{Name: "connector_type", err: errors.New(`ent: missing required field "Connector.connector_type"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Connector.enabled"`)}
	}
	if _, ok := _c.mutation.FetchLimit(); !ok {
		return &ValidationError{Name: "fetch_limit", err: errors.New(`ent: missing required field "Connector.fetch_limit"`)}
	}
	if v, ok := _c.mutation.FetchLimit(); ok {
		if err := connector.FetchLimitValidator(v); err != nil {
			return &ValidationError{Name: "fetch_limit", err: fmt.Errorf(`ent: validator failed for field "Connector.fetch_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PollIntervalMinutes(); !ok {
		return &ValidationError{Name: "poll_interval_minutes", err: errors.New(`ent: missing required field "Connector.poll_interval_minutes"`)}
	}
	if v, ok := _c.mutation.PollIntervalMinutes(); ok {
		if err := connector.PollIntervalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "poll_interval_minutes", err: fmt.Errorf(`ent: validator failed for field "Connector.poll_interval_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReplayBackoffSeconds(); !ok {
		return &ValidationError{Name: "replay_backoff_seconds", err: errors.New(`ent: missing required field "Connector.replay_backoff_seconds"`)}
	}
	if v, ok := _c.mutation.ReplayBackoffSeconds(); ok {
		if err := connector.ReplayBackoffSecondsValidator(v); err != nil {
			return &ValidationError{Name: "replay_backoff_seconds", err: fmt.Errorf(`ent: validator failed for field "Connector.replay_backoff_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetry(); !ok {
		return &ValidationError{Name: "max_retry", err: errors.New(`ent: missing required field "Connector.max_retry"`)}
	}
	if v, ok := _c.mutation.MaxRetry(); ok {
		if err := connector.MaxRetryValidator(v); err != nil {
			return &ValidationError{Name: "max_retry", err: fmt.Errorf(`ent: validator failed for field "Connector.max_retry": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Connector.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Connector.updated_at"`)}
	}
	return nil
}

func (_c *ConnectorCreate) sqlSave(ctx context.Context) (*Connector, error) {
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

func (_c *ConnectorCreate) createSpec() (*Connector, *sqlgraph.CreateSpec) {
	var (
		_node = &Connector{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connector.Table, sqlgraph.NewFieldSpec(connector.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConnectorName(); ok {
		_spec.SetField(connector.FieldConnectorName, field.TypeString, value)
		_node.ConnectorName = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(connector.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.ConnectorType(); ok {
		_spec.SetField(connector.FieldConnectorType, field.TypeString, value)
		_node.ConnectorType = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(connector.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.FetchLimit(); ok {
		_spec.SetField(connector.FieldFetchLimit, field.TypeInt, value)
		_node.FetchLimit = value
	}
	if value, ok := _c.mutation.PollIntervalMinutes(); ok {
		_spec.SetField(connector.FieldPollIntervalMinutes, field.TypeInt, value)
		_node.PollIntervalMinutes = value
	}
	if value, ok := _c.mutation.ReplayBackoffSeconds(); ok {
		_spec.SetField(connector.FieldReplayBackoffSeconds, field.TypeInt, value)
		_node.ReplayBackoffSeconds = value
	}
	if value, ok := _c.mutation.MaxRetry(); ok {
		_spec.SetField(connector.FieldMaxRetry, field.TypeInt, value)
		_node.MaxRetry = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(connector.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(connector.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(connector.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(connector.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(connector.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConnectorCreateBulk is the builder for creating many Connector entities in bulk.
type ConnectorCreateBulk struct {
	config
	err      error
	builders []*ConnectorCreate
}

// Save creates the Connector entities in the database.
func (_c *ConnectorCreateBulk) Save(ctx context.Context) ([]*Connector, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Connector, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorMutation)
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
func (_c *ConnectorCreateBulk) SaveX(ctx context.Context) []*Connector {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
