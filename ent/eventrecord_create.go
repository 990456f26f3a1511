// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/eventrecord"
)

// EventRecordCreate is the builder for creating a EventRecord entity.
type EventRecordCreate struct {
	config
	mutation *EventRecordMutation
	hooks    []Hook
}

// SetSourceName sets the "source_name" field.
func (_c *EventRecordCreate) SetSourceName(v string) *EventRecordCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *EventRecordCreate) SetEventID(v string) *EventRecordCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetSymbol sets the "symbol" field.
func (_c *EventRecordCreate) SetSymbol(v string) *EventRecordCreate {
	_c.mutation.SetSymbol(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventRecordCreate) SetEventType(v string) *EventRecordCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEventType(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetPublishTime sets the "publish_time" field.
func (_c *EventRecordCreate) SetPublishTime(v time.Time) *EventRecordCreate {
	_c.mutation.SetPublishTime(v)
	return _c
}

// SetEffectiveTime sets the "effective_time" field.
func (_c *EventRecordCreate) SetEffectiveTime(v time.Time) *EventRecordCreate {
	_c.mutation.SetEffectiveTime(v)
	return _c
}

// SetNillableEffectiveTime sets the "effective_time" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableEffectiveTime(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetEffectiveTime(*v)
	}
	return _c
}

// SetPolarity sets the "polarity" field.
func (_c *EventRecordCreate) SetPolarity(v eventrecord.Polarity) *EventRecordCreate {
	_c.mutation.SetPolarity(v)
	return _c
}

// SetNillablePolarity sets the "polarity" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillablePolarity(v *eventrecord.Polarity) *EventRecordCreate {
	if v != nil {
		_c.SetPolarity(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *EventRecordCreate) SetScore(v float64) *EventRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableScore(v *float64) *EventRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EventRecordCreate) SetConfidence(v float64) *EventRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableConfidence(v *float64) *EventRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *EventRecordCreate) SetTitle(v string) *EventRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EventRecordCreate) SetSummary(v string) *EventRecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableSummary(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetRawRef sets the "raw_ref" field.
func (_c *EventRecordCreate) SetRawRef(v string) *EventRecordCreate {
	_c.mutation.SetRawRef(v)
	return _c
}

// SetNillableRawRef sets the "raw_ref" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableRawRef(v *string) *EventRecordCreate {
	if v != nil {
		_c.SetRawRef(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *EventRecordCreate) SetTags(v []string) *EventRecordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EventRecordCreate) SetMetadata(v map[string]interface{}) *EventRecordCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventRecordCreate) SetCreatedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableCreatedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventRecordCreate) SetUpdatedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableUpdatedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the EventRecordMutation object of the builder.
func (_c *EventRecordCreate) Mutation() *EventRecordMutation {
	return _c.mutation
}

// Save creates the EventRecord in the database.
func (_c *EventRecordCreate) Save(ctx context.Context) (*EventRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventRecordCreate) SaveX(ctx context.Context) *EventRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventRecordCreate) defaults() {
	if _, ok := _c.mutation.EventType(); !ok {
		v := eventrecord.DefaultEventType
		_c.mutation.SetEventType(v)
	}
	if _, ok := _c.mutation.Polarity(); !ok {
		v := eventrecord.DefaultPolarity
		_c.mutation.SetPolarity(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := eventrecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := eventrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := eventrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventRecordCreate) check() error {
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "EventRecord.source_name"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventRecord.event_id"`)}
	}
	if _, ok := _c.mutation.Symbol(); !ok {
		return &ValidationError{Name: "symbol", err: errors.New(`ent: missing required field "EventRecord.symbol"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "EventRecord.event_type"`)}
	}
	if _, ok := _c.mutation.PublishTime(); !ok {
		return &ValidationError{Name: "publish_time", err: errors.New(`ent: missing required field "EventRecord.publish_time"`)}
	}
	if _, ok := _c.mutation.Polarity(); !ok {
		return &ValidationError{Name: "polarity", err: errors.New(`ent: missing required field "EventRecord.polarity"`)}
	}
	if v, ok := _c.mutation.Polarity(); ok {
		if err := eventrecord.PolarityValidator(v); err != nil {
			return &ValidationError{Name: "polarity", err: fmt.Errorf(`ent: validator failed for field "EventRecord.polarity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "EventRecord.score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EventRecord.confidence"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "EventRecord.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EventRecord.updated_at"`)}
	}
	return nil
}

func (_c *EventRecordCreate) sqlSave(ctx context.Context) (*EventRecord, error) {
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

func (_c *EventRecordCreate) createSpec() (*EventRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &EventRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventrecord.Table, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(eventrecord.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(eventrecord.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Symbol(); ok {
		_spec.SetField(eventrecord.FieldSymbol, field.TypeString, value)
		_node.Symbol = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.PublishTime(); ok {
		_spec.SetField(eventrecord.FieldPublishTime, field.TypeTime, value)
		_node.PublishTime = value
	}
	if value, ok := _c.mutation.EffectiveTime(); ok {
		_spec.SetField(eventrecord.FieldEffectiveTime, field.TypeTime, value)
		_node.EffectiveTime = &value
	}
	if value, ok := _c.mutation.Polarity(); ok {
		_spec.SetField(eventrecord.FieldPolarity, field.TypeEnum, value)
		_node.Polarity = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(eventrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(eventrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(eventrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(eventrecord.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.RawRef(); ok {
		_spec.SetField(eventrecord.FieldRawRef, field.TypeString, value)
		_node.RawRef = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(eventrecord.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(eventrecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(eventrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EventRecordCreateBulk is the builder for creating many EventRecord entities in bulk.
type EventRecordCreateBulk struct {
	config
	err      error
	builders []*EventRecordCreate
}

// Save creates the EventRecord entities in the database.
func (_c *EventRecordCreateBulk) Save(ctx context.Context) ([]*EventRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventRecordMutation)
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
func (_c *EventRecordCreateBulk) SaveX(ctx context.Context) []*EventRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
