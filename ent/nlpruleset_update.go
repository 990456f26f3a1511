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
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/pkg/models"
)

// NLPRulesetUpdate is the builder for updating NLPRuleset entities.
type NLPRulesetUpdate struct {
	config
	hooks    []Hook
	mutation *NLPRulesetMutation
}

// Where appends a list predicates to the NLPRulesetUpdate builder.
func (_u *NLPRulesetUpdate) Where(ps ...predicate.NLPRuleset) *NLPRulesetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *NLPRulesetUpdate) SetVersion(v string) *NLPRulesetUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NLPRulesetUpdate) SetNillableVersion(v *string) *NLPRulesetUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *NLPRulesetUpdate) SetCreatedBy(v string) *NLPRulesetUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *NLPRulesetUpdate) SetNillableCreatedBy(v *string) *NLPRulesetUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *NLPRulesetUpdate) ClearCreatedBy() *NLPRulesetUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *NLPRulesetUpdate) SetNote(v string) *NLPRulesetUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *NLPRulesetUpdate) SetNillableNote(v *string) *NLPRulesetUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *NLPRulesetUpdate) ClearNote() *NLPRulesetUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *NLPRulesetUpdate) SetIsActive(v bool) *NLPRulesetUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *NLPRulesetUpdate) SetNillableIsActive(v *bool) *NLPRulesetUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRules sets the "rules" field.
func (_u *NLPRulesetUpdate) SetRules(v []models.NLPRule) *NLPRulesetUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *NLPRulesetUpdate) AppendRules(v []models.NLPRule) *NLPRulesetUpdate {
	_u.mutation.AppendRules(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NLPRulesetUpdate) SetUpdatedAt(v time.Time) *NLPRulesetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NLPRulesetMutation object of the builder.
func (_u *NLPRulesetUpdate) Mutation() *NLPRulesetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NLPRulesetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPRulesetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NLPRulesetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPRulesetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NLPRulesetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nlpruleset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NLPRulesetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpruleset.Table, nlpruleset.Columns, sqlgraph.NewFieldSpec(nlpruleset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(nlpruleset.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(nlpruleset.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(nlpruleset.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(nlpruleset.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(nlpruleset.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(nlpruleset.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(nlpruleset.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nlpruleset.FieldRules, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nlpruleset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpruleset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NLPRulesetUpdateOne is the builder for updating a single NLPRuleset entity.
type NLPRulesetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NLPRulesetMutation
}

// SetVersion sets the "version" field.
func (_u *NLPRulesetUpdateOne) SetVersion(v string) *NLPRulesetUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NLPRulesetUpdateOne) SetNillableVersion(v *string) *NLPRulesetUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *NLPRulesetUpdateOne) SetCreatedBy(v string) *NLPRulesetUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *NLPRulesetUpdateOne) SetNillableCreatedBy(v *string) *NLPRulesetUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *NLPRulesetUpdateOne) ClearCreatedBy() *NLPRulesetUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *NLPRulesetUpdateOne) SetNote(v string) *NLPRulesetUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *NLPRulesetUpdateOne) SetNillableNote(v *string) *NLPRulesetUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *NLPRulesetUpdateOne) ClearNote() *NLPRulesetUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *NLPRulesetUpdateOne) SetIsActive(v bool) *NLPRulesetUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *NLPRulesetUpdateOne) SetNillableIsActive(v *bool) *NLPRulesetUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRules sets the "rules" field.
func (_u *NLPRulesetUpdateOne) SetRules(v []models.NLPRule) *NLPRulesetUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *NLPRulesetUpdateOne) AppendRules(v []models.NLPRule) *NLPRulesetUpdateOne {
	_u.mutation.AppendRules(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NLPRulesetUpdateOne) SetUpdatedAt(v time.Time) *NLPRulesetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NLPRulesetMutation object of the builder.
func (_u *NLPRulesetUpdateOne) Mutation() *NLPRulesetMutation {
	return _u.mutation
}

// Where appends a list predicates to the NLPRulesetUpdate builder.
func (_u *NLPRulesetUpdateOne) Where(ps ...predicate.NLPRuleset) *NLPRulesetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NLPRulesetUpdateOne) Select(field string, fields ...string) *NLPRulesetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NLPRuleset entity.
func (_u *NLPRulesetUpdateOne) Save(ctx context.Context) (*NLPRuleset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPRulesetUpdateOne) SaveX(ctx context.Context) *NLPRuleset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NLPRulesetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPRulesetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NLPRulesetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nlpruleset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NLPRulesetUpdateOne) sqlSave(ctx context.Context) (_node *NLPRuleset, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpruleset.Table, nlpruleset.Columns, sqlgraph.NewFieldSpec(nlpruleset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NLPRuleset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nlpruleset.FieldID)
		for _, f := range fields {
			if !nlpruleset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nlpruleset.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(nlpruleset.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(nlpruleset.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(nlpruleset.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(nlpruleset.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(nlpruleset.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(nlpruleset.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(nlpruleset.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nlpruleset.FieldRules, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nlpruleset.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &NLPRuleset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpruleset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
