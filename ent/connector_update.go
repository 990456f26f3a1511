// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/connector"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ConnectorUpdate is the builder for updating Connector entities.
type ConnectorUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorMutation
}

// Where appends a list predicates to the ConnectorUpdate builder.
func (_u *ConnectorUpdate) Where(ps ...predicate.Connector) *ConnectorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorName sets the "connector_name" field.
func (_u *ConnectorUpdate) SetConnectorName(v string) *ConnectorUpdate {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableConnectorName(v *string) *ConnectorUpdate {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ConnectorUpdate) SetSourceName(v string) *ConnectorUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableSourceName(v *string) *ConnectorUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetConnectorType sets the "connector_type" field.
func (_u *ConnectorUpdate) SetConnectorType(v string) *ConnectorUpdate {
	_u.mutation.SetConnectorType(v)
	return _u
}

// SetNillableConnectorType sets the "connector_type" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableConnectorType(v *string) *ConnectorUpdate {
	if v != nil {
		_u.SetConnectorType(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectorUpdate) SetEnabled(v bool) *ConnectorUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableEnabled(v *bool) *ConnectorUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetFetchLimit sets the "fetch_limit" field.
func (_u *ConnectorUpdate) SetFetchLimit(v int) *ConnectorUpdate {
	_u.mutation.ResetFetchLimit()
	_u.mutation.SetFetchLimit(v)
	return _u
}

// SetNillableFetchLimit sets the "fetch_limit" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableFetchLimit(v *int) *ConnectorUpdate {
	if v != nil {
		_u.SetFetchLimit(*v)
	}
	return _u
}

// AddFetchLimit adds value to the "fetch_limit" field.
func (_u *ConnectorUpdate) AddFetchLimit(v int) *ConnectorUpdate {
	_u.mutation.AddFetchLimit(v)
	return _u
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (_u *ConnectorUpdate) SetPollIntervalMinutes(v int) *ConnectorUpdate {
	_u.mutation.ResetPollIntervalMinutes()
	_u.mutation.SetPollIntervalMinutes(v)
	return _u
}

// SetNillablePollIntervalMinutes sets the "poll_interval_minutes" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillablePollIntervalMinutes(v *int) *ConnectorUpdate {
	if v != nil {
		_u.SetPollIntervalMinutes(*v)
	}
	return _u
}

// AddPollIntervalMinutes adds value to the "poll_interval_minutes" field.
func (_u *ConnectorUpdate) AddPollIntervalMinutes(v int) *ConnectorUpdate {
	_u.mutation.AddPollIntervalMinutes(v)
	return _u
}

// SetReplayBackoffSeconds sets the "replay_backoff_seconds" field.
func (_u *ConnectorUpdate) SetReplayBackoffSeconds(v int) *ConnectorUpdate {
	_u.mutation.ResetReplayBackoffSeconds()
	_u.mutation.SetReplayBackoffSeconds(v)
	return _u
}

// SetNillableReplayBackoffSeconds sets the "replay_backoff_seconds" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableReplayBackoffSeconds(v *int) *ConnectorUpdate {
	if v != nil {
		_u.SetReplayBackoffSeconds(*v)
	}
	return _u
}

// AddReplayBackoffSeconds adds value to the "replay_backoff_seconds" field.
func (_u *ConnectorUpdate) AddReplayBackoffSeconds(v int) *ConnectorUpdate {
	_u.mutation.AddReplayBackoffSeconds(v)
	return _u
}

// SetMaxRetry sets the "max_retry" field.
func (_u *ConnectorUpdate) SetMaxRetry(v int) *ConnectorUpdate {
	_u.mutation.ResetMaxRetry()
	_u.mutation.SetMaxRetry(v)
	return _u
}

// SetNillableMaxRetry sets the "max_retry" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableMaxRetry(v *int) *ConnectorUpdate {
	if v != nil {
		_u.SetMaxRetry(*v)
	}
	return _u
}

// AddMaxRetry adds value to the "max_retry" field.
func (_u *ConnectorUpdate) AddMaxRetry(v int) *ConnectorUpdate {
	_u.mutation.AddMaxRetry(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *ConnectorUpdate) SetConfig(v map[string]interface{}) *ConnectorUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ConnectorUpdate) ClearConfig() *ConnectorUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ConnectorUpdate) SetCreatedBy(v string) *ConnectorUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableCreatedBy(v *string) *ConnectorUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ConnectorUpdate) ClearCreatedBy() *ConnectorUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *ConnectorUpdate) SetNote(v string) *ConnectorUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ConnectorUpdate) SetNillableNote(v *string) *ConnectorUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ConnectorUpdate) ClearNote() *ConnectorUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorUpdate) SetUpdatedAt(v time.Time) *ConnectorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorMutation object of the builder.
func (_u *ConnectorUpdate) Mutation() *ConnectorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connector.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorUpdate) check() error {
	if v, ok := _u.mutation.FetchLimit(); ok {
		if err := connector.FetchLimitValidator(v); err != nil {
			return &ValidationError{Name: "fetch_limit", err: fmt.Errorf(`ent: validator failed for field "Connector.fetch_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PollIntervalMinutes(); ok {
		if err := connector.PollIntervalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "poll_interval_minutes", err: fmt.Errorf(`ent: validator failed for field "Connector.poll_interval_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReplayBackoffSeconds(); ok {
		if err := connector.ReplayBackoffSecondsValidator(v); err != nil {
			return &ValidationError{Name: "replay_backoff_seconds", err: fmt.Errorf(`ent: validator failed for field "Connector.replay_backoff_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetry(); ok {
		if err := connector.MaxRetryValidator(v); err != nil {
			return &ValidationError{Name: "max_retry", err: fmt.Errorf(`ent: validator failed for field "Connector.max_retry": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connector.Table, connector.Columns, sqlgraph.NewFieldSpec(connector.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(connector.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(connector.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorType(); ok {
		_spec.SetField(connector.FieldConnectorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connector.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FetchLimit(); ok {
		_spec.SetField(connector.FieldFetchLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFetchLimit(); ok {
		_spec.AddField(connector.FieldFetchLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PollIntervalMinutes(); ok {
		_spec.SetField(connector.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollIntervalMinutes(); ok {
		_spec.AddField(connector.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplayBackoffSeconds(); ok {
		_spec.SetField(connector.FieldReplayBackoffSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplayBackoffSeconds(); ok {
		_spec.AddField(connector.FieldReplayBackoffSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetry(); ok {
		_spec.SetField(connector.FieldMaxRetry, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetry(); ok {
		_spec.AddField(connector.FieldMaxRetry, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(connector.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(connector.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(connector.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(connector.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(connector.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(connector.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connector.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connector.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorUpdateOne is the builder for updating a single Connector entity.
type ConnectorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorMutation
}

// SetConnectorName sets the "connector_name" field.
func (_u *ConnectorUpdateOne) SetConnectorName(v string) *ConnectorUpdateOne {
	_u.mutation.SetConnectorName(v)
	return _u
}

// SetNillableConnectorName sets the "connector_name" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableConnectorName(v *string) *ConnectorUpdateOne {
	if v != nil {
		_u.SetConnectorName(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ConnectorUpdateOne) SetSourceName(v string) *ConnectorUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableSourceName(v *string) *ConnectorUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetConnectorType sets the "connector_type" field.
func (_u *ConnectorUpdateOne) SetConnectorType(v string) *ConnectorUpdateOne {
	_u.mutation.SetConnectorType(v)
	return _u
}

// SetNillableConnectorType sets the "connector_type" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableConnectorType(v *string) *ConnectorUpdateOne {
	if v != nil {
		_u.SetConnectorType(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectorUpdateOne) SetEnabled(v bool) *ConnectorUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableEnabled(v *bool) *ConnectorUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetFetchLimit sets the "fetch_limit" field.
func (_u *ConnectorUpdateOne) SetFetchLimit(v int) *ConnectorUpdateOne {
	_u.mutation.ResetFetchLimit()
	_u.mutation.SetFetchLimit(v)
	return _u
}

// SetNillableFetchLimit sets the "fetch_limit" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableFetchLimit(v *int) *ConnectorUpdateOne {
	if v != nil {
		_u.SetFetchLimit(*v)
	}
	return _u
}

// AddFetchLimit adds value to the "fetch_limit" field.
func (_u *ConnectorUpdateOne) AddFetchLimit(v int) *ConnectorUpdateOne {
	_u.mutation.AddFetchLimit(v)
	return _u
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (_u *ConnectorUpdateOne) SetPollIntervalMinutes(v int) *ConnectorUpdateOne {
	_u.mutation.ResetPollIntervalMinutes()
	_u.mutation.SetPollIntervalMinutes(v)
	return _u
}

// SetNillablePollIntervalMinutes sets the "poll_interval_minutes" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillablePollIntervalMinutes(v *int) *ConnectorUpdateOne {
	if v != nil {
		_u.SetPollIntervalMinutes(*v)
	}
	return _u
}

// AddPollIntervalMinutes adds value to the "poll_interval_minutes" field.
func (_u *ConnectorUpdateOne) AddPollIntervalMinutes(v int) *ConnectorUpdateOne {
	_u.mutation.AddPollIntervalMinutes(v)
	return _u
}

// SetReplayBackoffSeconds sets the "replay_backoff_seconds" field.
func (_u *ConnectorUpdateOne) SetReplayBackoffSeconds(v int) *ConnectorUpdateOne {
	_u.mutation.ResetReplayBackoffSeconds()
	_u.mutation.SetReplayBackoffSeconds(v)
	return _u
}

// SetNillableReplayBackoffSeconds sets the "replay_backoff_seconds" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableReplayBackoffSeconds(v *int) *ConnectorUpdateOne {
	if v != nil {
		_u.SetReplayBackoffSeconds(*v)
	}
	return _u
}

// AddReplayBackoffSeconds adds value to the "replay_backoff_seconds" field.
func (_u *ConnectorUpdateOne) AddReplayBackoffSeconds(v int) *ConnectorUpdateOne {
	_u.mutation.AddReplayBackoffSeconds(v)
	return _u
}

// SetMaxRetry sets the "max_retry" field.
func (_u *ConnectorUpdateOne) SetMaxRetry(v int) *ConnectorUpdateOne {
	_u.mutation.ResetMaxRetry()
	_u.mutation.SetMaxRetry(v)
	return _u
}

// SetNillableMaxRetry sets the "max_retry" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableMaxRetry(v *int) *ConnectorUpdateOne {
	if v != nil {
		_u.SetMaxRetry(*v)
	}
	return _u
}

// AddMaxRetry adds value to the "max_retry" field.
func (_u *ConnectorUpdateOne) AddMaxRetry(v int) *ConnectorUpdateOne {
	_u.mutation.AddMaxRetry(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *ConnectorUpdateOne) SetConfig(v map[string]interface{}) *ConnectorUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ConnectorUpdateOne) ClearConfig() *ConnectorUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ConnectorUpdateOne) SetCreatedBy(v string) *ConnectorUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableCreatedBy(v *string) *ConnectorUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ConnectorUpdateOne) ClearCreatedBy() *ConnectorUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *ConnectorUpdateOne) SetNote(v string) *ConnectorUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ConnectorUpdateOne) SetNillableNote(v *string) *ConnectorUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ConnectorUpdateOne) ClearNote() *ConnectorUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorUpdateOne) SetUpdatedAt(v time.Time) *ConnectorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorMutation object of the builder.
func (_u *ConnectorUpdateOne) Mutation() *ConnectorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorUpdate builder.
func (_u *ConnectorUpdateOne) Where(ps ...predicate.Connector) *ConnectorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorUpdateOne) Select(field string, fields ...string) *ConnectorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Connector entity.
func (_u *ConnectorUpdateOne) Save(ctx context.Context) (*Connector, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorUpdateOne) SaveX(ctx context.Context) *Connector {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connector.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorUpdateOne) check() error {
	if v, ok := _u.mutation.FetchLimit(); ok {
		if err := connector.FetchLimitValidator(v); err != nil {
			return &ValidationError{Name: "fetch_limit", err: fmt.Errorf(`ent: validator failed for field "Connector.fetch_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PollIntervalMinutes(); ok {
		if err := connector.PollIntervalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "poll_interval_minutes", err: fmt.Errorf(`ent: validator failed for field "Connector.poll_interval_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReplayBackoffSeconds(); ok {
		if err := connector.ReplayBackoffSecondsValidator(v); err != nil {
			return &ValidationError{Name: "replay_backoff_seconds", err: fmt.Errorf(`ent: validator failed for field "Connector.replay_backoff_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetry(); ok {
		if err := connector.MaxRetryValidator(v); err != nil {
			return &ValidationError{Name: "max_retry", err: fmt.Errorf(`ent: validator failed for field "Connector.max_retry": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorUpdateOne) sqlSave(ctx context.Context) (_node *Connector, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connector.Table, connector.Columns, sqlgraph.NewFieldSpec(connector.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Connector.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connector.FieldID)
		for _, f := range fields {
			if !connector.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connector.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorName(); ok {
		_spec.SetField(connector.FieldConnectorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(connector.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorType(); ok {
		_spec.SetField(connector.FieldConnectorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connector.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FetchLimit(); ok {
		_spec.SetField(connector.FieldFetchLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFetchLimit(); ok {
		_spec.AddField(connector.FieldFetchLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PollIntervalMinutes(); ok {
		_spec.SetField(connector.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollIntervalMinutes(); ok {
		_spec.AddField(connector.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplayBackoffSeconds(); ok {
		_spec.SetField(connector.FieldReplayBackoffSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplayBackoffSeconds(); ok {
		_spec.AddField(connector.FieldReplayBackoffSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetry(); ok {
		_spec.SetField(connector.FieldMaxRetry, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetry(); ok {
		_spec.AddField(connector.FieldMaxRetry, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(connector.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(connector.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(connector.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(connector.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(connector.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(connector.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connector.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Connector{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connector.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
