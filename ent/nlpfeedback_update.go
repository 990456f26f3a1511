// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpfeedback"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// NLPFeedbackUpdate is the builder for updating NLPFeedback entities.
type NLPFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *NLPFeedbackMutation
}

// Where appends a list predicates to the NLPFeedbackUpdate builder.
func (_u *NLPFeedbackUpdate) Where(ps ...predicate.NLPFeedback) *NLPFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *NLPFeedbackUpdate) SetSourceName(v string) *NLPFeedbackUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableSourceName(v *string) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *NLPFeedbackUpdate) SetEventID(v string) *NLPFeedbackUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableEventID(v *string) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetLabeler sets the "labeler" field.
func (_u *NLPFeedbackUpdate) SetLabeler(v string) *NLPFeedbackUpdate {
	_u.mutation.SetLabeler(v)
	return _u
}

// SetNillableLabeler sets the "labeler" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableLabeler(v *string) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetLabeler(*v)
	}
	return _u
}

// ClearLabeler clears the value of the "labeler" field.
func (_u *NLPFeedbackUpdate) ClearLabeler() *NLPFeedbackUpdate {
	_u.mutation.ClearLabeler()
	return _u
}

// SetLabelEventType sets the "label_event_type" field.
func (_u *NLPFeedbackUpdate) SetLabelEventType(v string) *NLPFeedbackUpdate {
	_u.mutation.SetLabelEventType(v)
	return _u
}

// SetNillableLabelEventType sets the "label_event_type" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableLabelEventType(v *string) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetLabelEventType(*v)
	}
	return _u
}

// ClearLabelEventType clears the value of the "label_event_type" field.
func (_u *NLPFeedbackUpdate) ClearLabelEventType() *NLPFeedbackUpdate {
	_u.mutation.ClearLabelEventType()
	return _u
}

// SetLabelPolarity sets the "label_polarity" field.
func (_u *NLPFeedbackUpdate) SetLabelPolarity(v string) *NLPFeedbackUpdate {
	_u.mutation.SetLabelPolarity(v)
	return _u
}

// SetNillableLabelPolarity sets the "label_polarity" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableLabelPolarity(v *string) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetLabelPolarity(*v)
	}
	return _u
}

// ClearLabelPolarity clears the value of the "label_polarity" field.
func (_u *NLPFeedbackUpdate) ClearLabelPolarity() *NLPFeedbackUpdate {
	_u.mutation.ClearLabelPolarity()
	return _u
}

// SetLabelScore sets the "label_score" field.
func (_u *NLPFeedbackUpdate) SetLabelScore(v float64) *NLPFeedbackUpdate {
	_u.mutation.ResetLabelScore()
	_u.mutation.SetLabelScore(v)
	return _u
}

// SetNillableLabelScore sets the "label_score" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableLabelScore(v *float64) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetLabelScore(*v)
	}
	return _u
}

// AddLabelScore adds value to the "label_score" field.
func (_u *NLPFeedbackUpdate) AddLabelScore(v float64) *NLPFeedbackUpdate {
	_u.mutation.AddLabelScore(v)
	return _u
}

// ClearLabelScore clears the value of the "label_score" field.
func (_u *NLPFeedbackUpdate) ClearLabelScore() *NLPFeedbackUpdate {
	_u.mutation.ClearLabelScore()
	return _u
}

// SetComment sets the "comment" field.
func (_u *NLPFeedbackUpdate) SetComment(v string) *NLPFeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *NLPFeedbackUpdate) SetNillableComment(v *string) *NLPFeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *NLPFeedbackUpdate) ClearComment() *NLPFeedbackUpdate {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the NLPFeedbackMutation object of the builder.
func (_u *NLPFeedbackUpdate) Mutation() *NLPFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NLPFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NLPFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NLPFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpfeedback.Table, nlpfeedback.Columns, sqlgraph.NewFieldSpec(nlpfeedback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(nlpfeedback.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(nlpfeedback.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Labeler(); ok {
		_spec.SetField(nlpfeedback.FieldLabeler, field.TypeString, value)
	}
	if _u.mutation.LabelerCleared() {
		_spec.ClearField(nlpfeedback.FieldLabeler, field.TypeString)
	}
	if value, ok := _u.mutation.LabelEventType(); ok {
		_spec.SetField(nlpfeedback.FieldLabelEventType, field.TypeString, value)
	}
	if _u.mutation.LabelEventTypeCleared() {
		_spec.ClearField(nlpfeedback.FieldLabelEventType, field.TypeString)
	}
	if value, ok := _u.mutation.LabelPolarity(); ok {
		_spec.SetField(nlpfeedback.FieldLabelPolarity, field.TypeString, value)
	}
	if _u.mutation.LabelPolarityCleared() {
		_spec.ClearField(nlpfeedback.FieldLabelPolarity, field.TypeString)
	}
	if value, ok := _u.mutation.LabelScore(); ok {
		_spec.SetField(nlpfeedback.FieldLabelScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLabelScore(); ok {
		_spec.AddField(nlpfeedback.FieldLabelScore, field.TypeFloat64, value)
	}
	if _u.mutation.LabelScoreCleared() {
		_spec.ClearField(nlpfeedback.FieldLabelScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(nlpfeedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(nlpfeedback.FieldComment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NLPFeedbackUpdateOne is the builder for updating a single NLPFeedback entity.
type NLPFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NLPFeedbackMutation
}

// SetSourceName sets the "source_name" field.
func (_u *NLPFeedbackUpdateOne) SetSourceName(v string) *NLPFeedbackUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableSourceName(v *string) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *NLPFeedbackUpdateOne) SetEventID(v string) *NLPFeedbackUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableEventID(v *string) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetLabeler sets the "labeler" field.
func (_u *NLPFeedbackUpdateOne) SetLabeler(v string) *NLPFeedbackUpdateOne {
	_u.mutation.SetLabeler(v)
	return _u
}

// SetNillableLabeler sets the "labeler" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableLabeler(v *string) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetLabeler(*v)
	}
	return _u
}

// ClearLabeler clears the value of the "labeler" field.
func (_u *NLPFeedbackUpdateOne) ClearLabeler() *NLPFeedbackUpdateOne {
	_u.mutation.ClearLabeler()
	return _u
}

// SetLabelEventType sets the "label_event_type" field.
func (_u *NLPFeedbackUpdateOne) SetLabelEventType(v string) *NLPFeedbackUpdateOne {
	_u.mutation.SetLabelEventType(v)
	return _u
}

// SetNillableLabelEventType sets the "label_event_type" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableLabelEventType(v *string) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetLabelEventType(*v)
	}
	return _u
}

// ClearLabelEventType clears the value of the "label_event_type" field.
func (_u *NLPFeedbackUpdateOne) ClearLabelEventType() *NLPFeedbackUpdateOne {
	_u.mutation.ClearLabelEventType()
	return _u
}

// SetLabelPolarity sets the "label_polarity" field.
func (_u *NLPFeedbackUpdateOne) SetLabelPolarity(v string) *NLPFeedbackUpdateOne {
	_u.mutation.SetLabelPolarity(v)
	return _u
}

// SetNillableLabelPolarity sets the "label_polarity" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableLabelPolarity(v *string) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetLabelPolarity(*v)
	}
	return _u
}

// ClearLabelPolarity clears the value of the "label_polarity" field.
func (_u *NLPFeedbackUpdateOne) ClearLabelPolarity() *NLPFeedbackUpdateOne {
	_u.mutation.ClearLabelPolarity()
	return _u
}

// SetLabelScore sets the "label_score" field.
func (_u *NLPFeedbackUpdateOne) SetLabelScore(v float64) *NLPFeedbackUpdateOne {
	_u.mutation.ResetLabelScore()
	_u.mutation.SetLabelScore(v)
	return _u
}

// SetNillableLabelScore sets the "label_score" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableLabelScore(v *float64) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetLabelScore(*v)
	}
	return _u
}

// AddLabelScore adds value to the "label_score" field.
func (_u *NLPFeedbackUpdateOne) AddLabelScore(v float64) *NLPFeedbackUpdateOne {
	_u.mutation.AddLabelScore(v)
	return _u
}

// ClearLabelScore clears the value of the "label_score" field.
func (_u *NLPFeedbackUpdateOne) ClearLabelScore() *NLPFeedbackUpdateOne {
	_u.mutation.ClearLabelScore()
	return _u
}

// SetComment sets the "comment" field.
func (_u *NLPFeedbackUpdateOne) SetComment(v string) *NLPFeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *NLPFeedbackUpdateOne) SetNillableComment(v *string) *NLPFeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *NLPFeedbackUpdateOne) ClearComment() *NLPFeedbackUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the NLPFeedbackMutation object of the builder.
func (_u *NLPFeedbackUpdateOne) Mutation() *NLPFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the NLPFeedbackUpdate builder.
func (_u *NLPFeedbackUpdateOne) Where(ps ...predicate.NLPFeedback) *NLPFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NLPFeedbackUpdateOne) Select(field string, fields ...string) *NLPFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NLPFeedback entity.
func (_u *NLPFeedbackUpdateOne) Save(ctx context.Context) (*NLPFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPFeedbackUpdateOne) SaveX(ctx context.Context) *NLPFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NLPFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NLPFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *NLPFeedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpfeedback.Table, nlpfeedback.Columns, sqlgraph.NewFieldSpec(nlpfeedback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NLPFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nlpfeedback.FieldID)
		for _, f := range fields {
			if !nlpfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nlpfeedback.FieldID {
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
		_spec.SetField(nlpfeedback.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(nlpfeedback.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Labeler(); ok {
		_spec.SetField(nlpfeedback.FieldLabeler, field.TypeString, value)
	}
	if _u.mutation.LabelerCleared() {
		_spec.ClearField(nlpfeedback.FieldLabeler, field.TypeString)
	}
	if value, ok := _u.mutation.LabelEventType(); ok {
		_spec.SetField(nlpfeedback.FieldLabelEventType, field.TypeString, value)
	}
	if _u.mutation.LabelEventTypeCleared() {
		_spec.ClearField(nlpfeedback.FieldLabelEventType, field.TypeString)
	}
	if value, ok := _u.mutation.LabelPolarity(); ok {
		_spec.SetField(nlpfeedback.FieldLabelPolarity, field.TypeString, value)
	}
	if _u.mutation.LabelPolarityCleared() {
		_spec.ClearField(nlpfeedback.FieldLabelPolarity, field.TypeString)
	}
	if value, ok := _u.mutation.LabelScore(); ok {
		_spec.SetField(nlpfeedback.FieldLabelScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLabelScore(); ok {
		_spec.AddField(nlpfeedback.FieldLabelScore, field.TypeFloat64, value)
	}
	if _u.mutation.LabelScoreCleared() {
		_spec.ClearField(nlpfeedback.FieldLabelScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(nlpfeedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(nlpfeedback.FieldComment, field.TypeString)
	}
	_node = &NLPFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
