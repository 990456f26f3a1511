// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// NLPConsensusUpdate is the builder for updating NLPConsensus entities.
type NLPConsensusUpdate struct {
	config
	hooks    []Hook
	mutation *NLPConsensusMutation
}

// Where appends a list predicates to the NLPConsensusUpdate builder.
func (_u *NLPConsensusUpdate) Where(ps ...predicate.NLPConsensus) *NLPConsensusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *NLPConsensusUpdate) SetSourceName(v string) *NLPConsensusUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableSourceName(v *string) *NLPConsensusUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *NLPConsensusUpdate) SetEventID(v string) *NLPConsensusUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableEventID(v *string) *NLPConsensusUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetConsensusEventType sets the "consensus_event_type" field.
func (_u *NLPConsensusUpdate) SetConsensusEventType(v string) *NLPConsensusUpdate {
	_u.mutation.SetConsensusEventType(v)
	return _u
}

// SetNillableConsensusEventType sets the "consensus_event_type" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableConsensusEventType(v *string) *NLPConsensusUpdate {
	if v != nil {
		_u.SetConsensusEventType(*v)
	}
	return _u
}

// SetConsensusPolarity sets the "consensus_polarity" field.
func (_u *NLPConsensusUpdate) SetConsensusPolarity(v string) *NLPConsensusUpdate {
	_u.mutation.SetConsensusPolarity(v)
	return _u
}

// SetNillableConsensusPolarity sets the "consensus_polarity" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableConsensusPolarity(v *string) *NLPConsensusUpdate {
	if v != nil {
		_u.SetConsensusPolarity(*v)
	}
	return _u
}

// SetConsensusScore sets the "consensus_score" field.
func (_u *NLPConsensusUpdate) SetConsensusScore(v float64) *NLPConsensusUpdate {
	_u.mutation.ResetConsensusScore()
	_u.mutation.SetConsensusScore(v)
	return _u
}

// SetNillableConsensusScore sets the "consensus_score" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableConsensusScore(v *float64) *NLPConsensusUpdate {
	if v != nil {
		_u.SetConsensusScore(*v)
	}
	return _u
}

// AddConsensusScore adds value to the "consensus_score" field.
func (_u *NLPConsensusUpdate) AddConsensusScore(v float64) *NLPConsensusUpdate {
	_u.mutation.AddConsensusScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *NLPConsensusUpdate) SetConfidence(v float64) *NLPConsensusUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableConfidence(v *float64) *NLPConsensusUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *NLPConsensusUpdate) AddConfidence(v float64) *NLPConsensusUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLabelCount sets the "label_count" field.
func (_u *NLPConsensusUpdate) SetLabelCount(v int) *NLPConsensusUpdate {
	_u.mutation.ResetLabelCount()
	_u.mutation.SetLabelCount(v)
	return _u
}

// SetNillableLabelCount sets the "label_count" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableLabelCount(v *int) *NLPConsensusUpdate {
	if v != nil {
		_u.SetLabelCount(*v)
	}
	return _u
}

// AddLabelCount adds value to the "label_count" field.
func (_u *NLPConsensusUpdate) AddLabelCount(v int) *NLPConsensusUpdate {
	_u.mutation.AddLabelCount(v)
	return _u
}

// SetConflict sets the "conflict" field.
func (_u *NLPConsensusUpdate) SetConflict(v bool) *NLPConsensusUpdate {
	_u.mutation.SetConflict(v)
	return _u
}

// SetNillableConflict sets the "conflict" field if the given value is not nil.
func (_u *NLPConsensusUpdate) SetNillableConflict(v *bool) *NLPConsensusUpdate {
	if v != nil {
		_u.SetConflict(*v)
	}
	return _u
}

// SetConflictReasons sets the "conflict_reasons" field.
func (_u *NLPConsensusUpdate) SetConflictReasons(v []string) *NLPConsensusUpdate {
	_u.mutation.SetConflictReasons(v)
	return _u
}

// AppendConflictReasons appends value to the "conflict_reasons" field.
func (_u *NLPConsensusUpdate) AppendConflictReasons(v []string) *NLPConsensusUpdate {
	_u.mutation.AppendConflictReasons(v)
	return _u
}

// ClearConflictReasons clears the value of the "conflict_reasons" field.
func (_u *NLPConsensusUpdate) ClearConflictReasons() *NLPConsensusUpdate {
	_u.mutation.ClearConflictReasons()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NLPConsensusUpdate) SetUpdatedAt(v time.Time) *NLPConsensusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NLPConsensusMutation object of the builder.
func (_u *NLPConsensusUpdate) Mutation() *NLPConsensusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NLPConsensusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPConsensusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NLPConsensusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPConsensusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NLPConsensusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nlpconsensus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NLPConsensusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpconsensus.Table, nlpconsensus.Columns, sqlgraph.NewFieldSpec(nlpconsensus.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(nlpconsensus.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(nlpconsensus.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsensusEventType(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsensusPolarity(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusPolarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsensusScore(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsensusScore(); ok {
		_spec.AddField(nlpconsensus.FieldConsensusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(nlpconsensus.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(nlpconsensus.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LabelCount(); ok {
		_spec.SetField(nlpconsensus.FieldLabelCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLabelCount(); ok {
		_spec.AddField(nlpconsensus.FieldLabelCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Conflict(); ok {
		_spec.SetField(nlpconsensus.FieldConflict, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConflictReasons(); ok {
		_spec.SetField(nlpconsensus.FieldConflictReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflictReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nlpconsensus.FieldConflictReasons, value)
		})
	}
	if _u.mutation.ConflictReasonsCleared() {
		_spec.ClearField(nlpconsensus.FieldConflictReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nlpconsensus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpconsensus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NLPConsensusUpdateOne is the builder for updating a single NLPConsensus entity.
type NLPConsensusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NLPConsensusMutation
}

// SetSourceName sets the "source_name" field.
func (_u *NLPConsensusUpdateOne) SetSourceName(v string) *NLPConsensusUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableSourceName(v *string) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *NLPConsensusUpdateOne) SetEventID(v string) *NLPConsensusUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableEventID(v *string) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetConsensusEventType sets the "consensus_event_type" field.
func (_u *NLPConsensusUpdateOne) SetConsensusEventType(v string) *NLPConsensusUpdateOne {
	_u.mutation.SetConsensusEventType(v)
	return _u
}

// SetNillableConsensusEventType sets the "consensus_event_type" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableConsensusEventType(v *string) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetConsensusEventType(*v)
	}
	return _u
}

// SetConsensusPolarity sets the "consensus_polarity" field.
func (_u *NLPConsensusUpdateOne) SetConsensusPolarity(v string) *NLPConsensusUpdateOne {
	_u.mutation.SetConsensusPolarity(v)
	return _u
}

// SetNillableConsensusPolarity sets the "consensus_polarity" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableConsensusPolarity(v *string) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetConsensusPolarity(*v)
	}
	return _u
}

// SetConsensusScore sets the "consensus_score" field.
func (_u *NLPConsensusUpdateOne) SetConsensusScore(v float64) *NLPConsensusUpdateOne {
	_u.mutation.ResetConsensusScore()
	_u.mutation.SetConsensusScore(v)
	return _u
}

// SetNillableConsensusScore sets the "consensus_score" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableConsensusScore(v *float64) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetConsensusScore(*v)
	}
	return _u
}

// AddConsensusScore adds value to the "consensus_score" field.
func (_u *NLPConsensusUpdateOne) AddConsensusScore(v float64) *NLPConsensusUpdateOne {
	_u.mutation.AddConsensusScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *NLPConsensusUpdateOne) SetConfidence(v float64) *NLPConsensusUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableConfidence(v *float64) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *NLPConsensusUpdateOne) AddConfidence(v float64) *NLPConsensusUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLabelCount sets the "label_count" field.
func (_u *NLPConsensusUpdateOne) SetLabelCount(v int) *NLPConsensusUpdateOne {
	_u.mutation.ResetLabelCount()
	_u.mutation.SetLabelCount(v)
	return _u
}

// SetNillableLabelCount sets the "label_count" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableLabelCount(v *int) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetLabelCount(*v)
	}
	return _u
}

// AddLabelCount adds value to the "label_count" field.
func (_u *NLPConsensusUpdateOne) AddLabelCount(v int) *NLPConsensusUpdateOne {
	_u.mutation.AddLabelCount(v)
	return _u
}

// SetConflict sets the "conflict" field.
func (_u *NLPConsensusUpdateOne) SetConflict(v bool) *NLPConsensusUpdateOne {
	_u.mutation.SetConflict(v)
	return _u
}

// SetNillableConflict sets the "conflict" field if the given value is not nil.
func (_u *NLPConsensusUpdateOne) SetNillableConflict(v *bool) *NLPConsensusUpdateOne {
	if v != nil {
		_u.SetConflict(*v)
	}
	return _u
}

// SetConflictReasons sets the "conflict_reasons" field.
func (_u *NLPConsensusUpdateOne) SetConflictReasons(v []string) *NLPConsensusUpdateOne {
	_u.mutation.SetConflictReasons(v)
	return _u
}

// AppendConflictReasons appends value to the "conflict_reasons" field.
func (_u *NLPConsensusUpdateOne) AppendConflictReasons(v []string) *NLPConsensusUpdateOne {
	_u.mutation.AppendConflictReasons(v)
	return _u
}

// ClearConflictReasons clears the value of the "conflict_reasons" field.
func (_u *NLPConsensusUpdateOne) ClearConflictReasons() *NLPConsensusUpdateOne {
	_u.mutation.ClearConflictReasons()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NLPConsensusUpdateOne) SetUpdatedAt(v time.Time) *NLPConsensusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NLPConsensusMutation object of the builder.
func (_u *NLPConsensusUpdateOne) Mutation() *NLPConsensusMutation {
	return _u.mutation
}

// Where appends a list predicates to the NLPConsensusUpdate builder.
func (_u *NLPConsensusUpdateOne) Where(ps ...predicate.NLPConsensus) *NLPConsensusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NLPConsensusUpdateOne) Select(field string, fields ...string) *NLPConsensusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NLPConsensus entity.
func (_u *NLPConsensusUpdateOne) Save(ctx context.Context) (*NLPConsensus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPConsensusUpdateOne) SaveX(ctx context.Context) *NLPConsensus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NLPConsensusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPConsensusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NLPConsensusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nlpconsensus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NLPConsensusUpdateOne) sqlSave(ctx context.Context) (_node *NLPConsensus, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpconsensus.Table, nlpconsensus.Columns, sqlgraph.NewFieldSpec(nlpconsensus.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NLPConsensus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nlpconsensus.FieldID)
		for _, f := range fields {
			if !nlpconsensus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nlpconsensus.FieldID {
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
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(nlpconsensus.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(nlpconsensus.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsensusEventType(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsensusPolarity(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusPolarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsensusScore(); ok {
		_spec.SetField(nlpconsensus.FieldConsensusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsensusScore(); ok {
		_spec.AddField(nlpconsensus.FieldConsensusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(nlpconsensus.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(nlpconsensus.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LabelCount(); ok {
		_spec.SetField(nlpconsensus.FieldLabelCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLabelCount(); ok {
		_spec.AddField(nlpconsensus.FieldLabelCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Conflict(); ok {
		_spec.SetField(nlpconsensus.FieldConflict, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConflictReasons(); ok {
		_spec.SetField(nlpconsensus.FieldConflictReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflictReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nlpconsensus.FieldConflictReasons, value)
		})
	}
	if _u.mutation.ConflictReasonsCleared() {
		_spec.ClearField(nlpconsensus.FieldConflictReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nlpconsensus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &NLPConsensus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpconsensus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
