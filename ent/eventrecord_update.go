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
	"github.com/quantmuse/eventcore/ent/eventrecord"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// EventRecordUpdate is the builder for updating EventRecord entities.
type EventRecordUpdate struct {
	config
	hooks    []Hook
	mutation *EventRecordMutation
}

// Where appends a list predicates to the EventRecordUpdate builder.
func (_u *EventRecordUpdate) Where(ps ...predicate.EventRecord) *EventRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *EventRecordUpdate) SetSourceName(v string) *EventRecordUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableSourceName(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventRecordUpdate) SetEventID(v string) *EventRecordUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEventID(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *EventRecordUpdate) SetSymbol(v string) *EventRecordUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableSymbol(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventRecordUpdate) SetEventType(v string) *EventRecordUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEventType(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPublishTime sets the "publish_time" field.
func (_u *EventRecordUpdate) SetPublishTime(v time.Time) *EventRecordUpdate {
	_u.mutation.SetPublishTime(v)
	return _u
}

// SetNillablePublishTime sets the "publish_time" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillablePublishTime(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetPublishTime(*v)
	}
	return _u
}

// SetEffectiveTime sets the "effective_time" field.
func (_u *EventRecordUpdate) SetEffectiveTime(v time.Time) *EventRecordUpdate {
	_u.mutation.SetEffectiveTime(v)
	return _u
}

// SetNillableEffectiveTime sets the "effective_time" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEffectiveTime(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetEffectiveTime(*v)
	}
	return _u
}

// ClearEffectiveTime clears the value of the "effective_time" field.
func (_u *EventRecordUpdate) ClearEffectiveTime() *EventRecordUpdate {
	_u.mutation.ClearEffectiveTime()
	return _u
}

// SetPolarity sets the "polarity" field.
func (_u *EventRecordUpdate) SetPolarity(v eventrecord.Polarity) *EventRecordUpdate {
	_u.mutation.SetPolarity(v)
	return _u
}

// SetNillablePolarity sets the "polarity" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillablePolarity(v *eventrecord.Polarity) *EventRecordUpdate {
	if v != nil {
		_u.SetPolarity(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EventRecordUpdate) SetScore(v float64) *EventRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableScore(v *float64) *EventRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EventRecordUpdate) AddScore(v float64) *EventRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventRecordUpdate) SetConfidence(v float64) *EventRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableConfidence(v *float64) *EventRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventRecordUpdate) AddConfidence(v float64) *EventRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventRecordUpdate) SetTitle(v string) *EventRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableTitle(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventRecordUpdate) SetSummary(v string) *EventRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableSummary(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventRecordUpdate) ClearSummary() *EventRecordUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetRawRef sets the "raw_ref" field.
func (_u *EventRecordUpdate) SetRawRef(v string) *EventRecordUpdate {
	_u.mutation.SetRawRef(v)
	return _u
}

// SetNillableRawRef sets the "raw_ref" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableRawRef(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetRawRef(*v)
	}
	return _u
}

// ClearRawRef clears the value of the "raw_ref" field.
func (_u *EventRecordUpdate) ClearRawRef() *EventRecordUpdate {
	_u.mutation.ClearRawRef()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EventRecordUpdate) SetTags(v []string) *EventRecordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EventRecordUpdate) AppendTags(v []string) *EventRecordUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EventRecordUpdate) ClearTags() *EventRecordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EventRecordUpdate) SetMetadata(v map[string]interface{}) *EventRecordUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EventRecordUpdate) ClearMetadata() *EventRecordUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventRecordUpdate) SetUpdatedAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventRecordMutation object of the builder.
func (_u *EventRecordUpdate) Mutation() *EventRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventRecordUpdate) check() error {
	if v, ok := _u.mutation.Polarity(); ok {
		if err := eventrecord.PolarityValidator(v); err != nil {
			return &ValidationError{Name: "polarity", err: fmt.Errorf(`ent: validator failed for field "EventRecord.polarity": %w`, err)}
		}
	}
	return nil
}

func (_u *EventRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventrecord.Table, eventrecord.Columns, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(eventrecord.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventrecord.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(eventrecord.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishTime(); ok {
		_spec.SetField(eventrecord.FieldPublishTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveTime(); ok {
		_spec.SetField(eventrecord.FieldEffectiveTime, field.TypeTime, value)
	}
	if _u.mutation.EffectiveTimeCleared() {
		_spec.ClearField(eventrecord.FieldEffectiveTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Polarity(); ok {
		_spec.SetField(eventrecord.FieldPolarity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(eventrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(eventrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(eventrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(eventrecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(eventrecord.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RawRef(); ok {
		_spec.SetField(eventrecord.FieldRawRef, field.TypeString, value)
	}
	if _u.mutation.RawRefCleared() {
		_spec.ClearField(eventrecord.FieldRawRef, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(eventrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(eventrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(eventrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(eventrecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventRecordUpdateOne is the builder for updating a single EventRecord entity.
type EventRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventRecordMutation
}

// SetSourceName sets the "source_name" field.
func (_u *EventRecordUpdateOne) SetSourceName(v string) *EventRecordUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableSourceName(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventRecordUpdateOne) SetEventID(v string) *EventRecordUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEventID(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *EventRecordUpdateOne) SetSymbol(v string) *EventRecordUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableSymbol(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventRecordUpdateOne) SetEventType(v string) *EventRecordUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEventType(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPublishTime sets the "publish_time" field.
func (_u *EventRecordUpdateOne) SetPublishTime(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetPublishTime(v)
	return _u
}

// SetNillablePublishTime sets the "publish_time" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillablePublishTime(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetPublishTime(*v)
	}
	return _u
}

// SetEffectiveTime sets the "effective_time" field.
func (_u *EventRecordUpdateOne) SetEffectiveTime(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetEffectiveTime(v)
	return _u
}

// SetNillableEffectiveTime sets the "effective_time" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEffectiveTime(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEffectiveTime(*v)
	}
	return _u
}

// ClearEffectiveTime clears the value of the "effective_time" field.
func (_u *EventRecordUpdateOne) ClearEffectiveTime() *EventRecordUpdateOne {
	_u.mutation.ClearEffectiveTime()
	return _u
}

// SetPolarity sets the "polarity" field.
func (_u *EventRecordUpdateOne) SetPolarity(v eventrecord.Polarity) *EventRecordUpdateOne {
	_u.mutation.SetPolarity(v)
	return _u
}

// SetNillablePolarity sets the "polarity" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillablePolarity(v *eventrecord.Polarity) *EventRecordUpdateOne {
	if v != nil {
		_u.SetPolarity(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EventRecordUpdateOne) SetScore(v float64) *EventRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableScore(v *float64) *EventRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EventRecordUpdateOne) AddScore(v float64) *EventRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventRecordUpdateOne) SetConfidence(v float64) *EventRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableConfidence(v *float64) *EventRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventRecordUpdateOne) AddConfidence(v float64) *EventRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventRecordUpdateOne) SetTitle(v string) *EventRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableTitle(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventRecordUpdateOne) SetSummary(v string) *EventRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableSummary(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventRecordUpdateOne) ClearSummary() *EventRecordUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetRawRef sets the "raw_ref" field.
func (_u *EventRecordUpdateOne) SetRawRef(v string) *EventRecordUpdateOne {
	_u.mutation.SetRawRef(v)
	return _u
}

// SetNillableRawRef sets the "raw_ref" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableRawRef(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetRawRef(*v)
	}
	return _u
}

// ClearRawRef clears the value of the "raw_ref" field.
func (_u *EventRecordUpdateOne) ClearRawRef() *EventRecordUpdateOne {
	_u.mutation.ClearRawRef()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EventRecordUpdateOne) SetTags(v []string) *EventRecordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EventRecordUpdateOne) AppendTags(v []string) *EventRecordUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EventRecordUpdateOne) ClearTags() *EventRecordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EventRecordUpdateOne) SetMetadata(v map[string]interface{}) *EventRecordUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EventRecordUpdateOne) ClearMetadata() *EventRecordUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventRecordUpdateOne) SetUpdatedAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventRecordMutation object of the builder.
func (_u *EventRecordUpdateOne) Mutation() *EventRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventRecordUpdate builder.
func (_u *EventRecordUpdateOne) Where(ps ...predicate.EventRecord) *EventRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventRecordUpdateOne) Select(field string, fields ...string) *EventRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventRecord entity.
func (_u *EventRecordUpdateOne) Save(ctx context.Context) (*EventRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventRecordUpdateOne) SaveX(ctx context.Context) *EventRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Polarity(); ok {
		if err := eventrecord.PolarityValidator(v); err != nil {
			return &ValidationError{Name: "polarity", err: fmt.Errorf(`ent: validator failed for field "EventRecord.polarity": %w`, err)}
		}
	}
	return nil
}

func (_u *EventRecordUpdateOne) sqlSave(ctx context.Context) (_node *EventRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventrecord.Table, eventrecord.Columns, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventrecord.FieldID)
		for _, f := range fields {
			if !eventrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventrecord.FieldID {
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
		_spec.SetField(eventrecord.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventrecord.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(eventrecord.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishTime(); ok {
		_spec.SetField(eventrecord.FieldPublishTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveTime(); ok {
		_spec.SetField(eventrecord.FieldEffectiveTime, field.TypeTime, value)
	}
	if _u.mutation.EffectiveTimeCleared() {
		_spec.ClearField(eventrecord.FieldEffectiveTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Polarity(); ok {
		_spec.SetField(eventrecord.FieldPolarity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(eventrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(eventrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(eventrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(eventrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(eventrecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(eventrecord.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RawRef(); ok {
		_spec.SetField(eventrecord.FieldRawRef, field.TypeString, value)
	}
	if _u.mutation.RawRefCleared() {
		_spec.ClearField(eventrecord.FieldRawRef, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(eventrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(eventrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(eventrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(eventrecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EventRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
