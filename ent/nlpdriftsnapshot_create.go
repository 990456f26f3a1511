// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/pkg/models"
)

// NLPDriftSnapshotCreate is the builder for creating a NLPDriftSnapshot entity.
type NLPDriftSnapshotCreate struct {
	config
	mutation *NLPDriftSnapshotMutation
	hooks    []Hook
}

// SetSourceName sets the "source_name" field.
func (_c *NLPDriftSnapshotCreate) SetSourceName(v string) *NLPDriftSnapshotCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableSourceName(v *string) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_c *NLPDriftSnapshotCreate) SetRulesetVersion(v string) *NLPDriftSnapshotCreate {
	_c.mutation.SetRulesetVersion(v)
	return _c
}

// SetCurrentWindow sets the "current_window" field.
func (_c *NLPDriftSnapshotCreate) SetCurrentWindow(v string) *NLPDriftSnapshotCreate {
	_c.mutation.SetCurrentWindow(v)
	return _c
}

// SetBaselineWindow sets the "baseline_window" field.
func (_c *NLPDriftSnapshotCreate) SetBaselineWindow(v string) *NLPDriftSnapshotCreate {
	_c.mutation.SetBaselineWindow(v)
	return _c
}

// SetSampleSize sets the "sample_size" field.
func (_c *NLPDriftSnapshotCreate) SetSampleSize(v int) *NLPDriftSnapshotCreate {
	_c.mutation.SetSampleSize(v)
	return _c
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableSampleSize(v *int) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetSampleSize(*v)
	}
	return _c
}

// SetBaselineSampleSize sets the "baseline_sample_size" field.
func (_c *NLPDriftSnapshotCreate) SetBaselineSampleSize(v int) *NLPDriftSnapshotCreate {
	_c.mutation.SetBaselineSampleSize(v)
	return _c
}

// SetNillableBaselineSampleSize sets the "baseline_sample_size" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableBaselineSampleSize(v *int) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetBaselineSampleSize(*v)
	}
	return _c
}

// SetCurrentMetrics sets the "current_metrics" field.
func (_c *NLPDriftSnapshotCreate) SetCurrentMetrics(v map[string]interface{}) *NLPDriftSnapshotCreate {
	_c.mutation.SetCurrentMetrics(v)
	return _c
}

// SetBaselineMetrics sets the "baseline_metrics" field.
func (_c *NLPDriftSnapshotCreate) SetBaselineMetrics(v map[string]interface{}) *NLPDriftSnapshotCreate {
	_c.mutation.SetBaselineMetrics(v)
	return _c
}

// SetHitRateDelta sets the "hit_rate_delta" field.
func (_c *NLPDriftSnapshotCreate) SetHitRateDelta(v float64) *NLPDriftSnapshotCreate {
	_c.mutation.SetHitRateDelta(v)
	return _c
}

// SetNillableHitRateDelta sets the "hit_rate_delta" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableHitRateDelta(v *float64) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetHitRateDelta(*v)
	}
	return _c
}

// SetScoreP50Delta sets the "score_p50_delta" field.
func (_c *NLPDriftSnapshotCreate) SetScoreP50Delta(v float64) *NLPDriftSnapshotCreate {
	_c.mutation.SetScoreP50Delta(v)
	return _c
}

// SetNillableScoreP50Delta sets the "score_p50_delta" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableScoreP50Delta(v *float64) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetScoreP50Delta(*v)
	}
	return _c
}

// SetContributionDelta sets the "contribution_delta" field.
func (_c *NLPDriftSnapshotCreate) SetContributionDelta(v float64) *NLPDriftSnapshotCreate {
	_c.mutation.SetContributionDelta(v)
	return _c
}

// SetNillableContributionDelta sets the "contribution_delta" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableContributionDelta(v *float64) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetContributionDelta(*v)
	}
	return _c
}

// SetFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field.
func (_c *NLPDriftSnapshotCreate) SetFeedbackPolarityAccuracyDelta(v float64) *NLPDriftSnapshotCreate {
	_c.mutation.SetFeedbackPolarityAccuracyDelta(v)
	return _c
}

// SetNillableFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableFeedbackPolarityAccuracyDelta(v *float64) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetFeedbackPolarityAccuracyDelta(*v)
	}
	return _c
}

// SetFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field.
func (_c *NLPDriftSnapshotCreate) SetFeedbackEventTypeAccuracyDelta(v float64) *NLPDriftSnapshotCreate {
	_c.mutation.SetFeedbackEventTypeAccuracyDelta(v)
	return _c
}

// SetNillableFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableFeedbackEventTypeAccuracyDelta(v *float64) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetFeedbackEventTypeAccuracyDelta(*v)
	}
	return _c
}

// SetAlerts sets the "alerts" field.
func (_c *NLPDriftSnapshotCreate) SetAlerts(v []models.DriftAlert) *NLPDriftSnapshotCreate {
	_c.mutation.SetAlerts(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *NLPDriftSnapshotCreate) SetPayload(v map[string]interface{}) *NLPDriftSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NLPDriftSnapshotCreate) SetCreatedAt(v time.Time) *NLPDriftSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NLPDriftSnapshotCreate) SetNillableCreatedAt(v *time.Time) *NLPDriftSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the NLPDriftSnapshotMutation object of the builder.
func (_c *NLPDriftSnapshotCreate) Mutation() *NLPDriftSnapshotMutation {
	return _c.mutation
}

// Save creates the NLPDriftSnapshot in the database.
func (_c *NLPDriftSnapshotCreate) Save(ctx context.Context) (*NLPDriftSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NLPDriftSnapshotCreate) SaveX(ctx context.Context) *NLPDriftSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPDriftSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPDriftSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NLPDriftSnapshotCreate) defaults() {
	if _, ok := _c.mutation.SampleSize(); !ok {
		v := nlpdriftsnapshot.DefaultSampleSize
		_c.mutation.SetSampleSize(v)
	}
	if _, ok := _c.mutation.BaselineSampleSize(); !ok {
		v := nlpdriftsnapshot.DefaultBaselineSampleSize
		_c.mutation.SetBaselineSampleSize(v)
	}
	if _, ok := _c.mutation.HitRateDelta(); !ok {
		v := nlpdriftsnapshot.DefaultHitRateDelta
		_c.mutation.SetHitRateDelta(v)
	}
	if _, ok := _c.mutation.ScoreP50Delta(); !ok {
		v := nlpdriftsnapshot.DefaultScoreP50Delta
		_c.mutation.SetScoreP50Delta(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nlpdriftsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NLPDriftSnapshotCreate) check() error {
	if _, ok := _c.mutation.RulesetVersion(); !ok {
		return &ValidationError{Name: "ruleset_version", err: errors.New(`ent: missing required field "NLPDriftSnapshot.ruleset_version"`)}
	}
	if _, ok := _c.mutation.CurrentWindow(); !ok {
		return &ValidationError{Name: "current_window", err: errors.New(`ent: missing required field "NLPDriftSnapshot.current_window"`)}
	}
	if _, ok := _c.mutation.BaselineWindow(); !ok {
		return &ValidationError{Name: "baseline_window", err: errors.New(`ent: missing required field "NLPDriftSnapshot.baseline_window"`)}
	}
	if _, ok := _c.mutation.SampleSize(); !ok {
		return &ValidationError{Name: "sample_size", err: errors.New(`ent: missing required field "NLPDriftSnapshot.sample_size"`)}
	}
	if _, ok := _c.mutation.BaselineSampleSize(); !ok {
		return &ValidationError{Name: "baseline_sample_size", err: errors.New(`ent: missing required field "NLPDriftSnapshot.baseline_sample_size"`)}
	}
	if _, ok := _c.mutation.CurrentMetrics(); !ok {
		return &ValidationError{Name: "current_metrics", err: errors.New(`ent: missing required field "NLPDriftSnapshot.current_metrics"`)}
	}
	if _, ok := _c.mutation.BaselineMetrics(); !ok {
		return &ValidationError{Name: "baseline_metrics", err: errors.New(`ent: missing required field "NLPDriftSnapshot.baseline_metrics"`)}
	}
	if _, ok := _c.mutation.HitRateDelta(); !ok {
		return &ValidationError{Name: "hit_rate_delta", err: errors.New(`ent: missing required field "NLPDriftSnapshot.hit_rate_delta"`)}
	}
	if _, ok := _c.mutation.ScoreP50Delta(); !ok {
		return &ValidationError{Name: "score_p50_delta", err: errors.New(`ent: missing required field "NLPDriftSnapshot.score_p50_delta"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NLPDriftSnapshot.created_at"`)}
	}
	return nil
}

func (_c *NLPDriftSnapshotCreate) sqlSave(ctx context.Context) (*NLPDriftSnapshot, error) {
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

func (_c *NLPDriftSnapshotCreate) createSpec() (*NLPDriftSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &NLPDriftSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nlpdriftsnapshot.Table, sqlgraph.NewFieldSpec(nlpdriftsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.RulesetVersion(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldRulesetVersion, field.TypeString, value)
		_node.RulesetVersion = value
	}
	if value, ok := _c.mutation.CurrentWindow(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCurrentWindow, field.TypeString, value)
		_node.CurrentWindow = value
	}
	if value, ok := _c.mutation.BaselineWindow(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineWindow, field.TypeString, value)
		_node.BaselineWindow = value
	}
	if value, ok := _c.mutation.SampleSize(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldSampleSize, field.TypeInt, value)
		_node.SampleSize = value
	}
	if value, ok := _c.mutation.BaselineSampleSize(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineSampleSize, field.TypeInt, value)
		_node.BaselineSampleSize = value
	}
	if value, ok := _c.mutation.CurrentMetrics(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCurrentMetrics, field.TypeJSON, value)
		_node.CurrentMetrics = value
	}
	if value, ok := _c.mutation.BaselineMetrics(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineMetrics, field.TypeJSON, value)
		_node.BaselineMetrics = value
	}
	if value, ok := _c.mutation.HitRateDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldHitRateDelta, field.TypeFloat64, value)
		_node.HitRateDelta = value
	}
	if value, ok := _c.mutation.ScoreP50Delta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldScoreP50Delta, field.TypeFloat64, value)
		_node.ScoreP50Delta = value
	}
	if value, ok := _c.mutation.ContributionDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64, value)
		_node.ContributionDelta = &value
	}
	if value, ok := _c.mutation.FeedbackPolarityAccuracyDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64, value)
		_node.FeedbackPolarityAccuracyDelta = &value
	}
	if value, ok := _c.mutation.FeedbackEventTypeAccuracyDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64, value)
		_node.FeedbackEventTypeAccuracyDelta = &value
	}
	if value, ok := _c.mutation.Alerts(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldAlerts, field.TypeJSON, value)
		_node.Alerts = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NLPDriftSnapshotCreateBulk is the builder for creating many NLPDriftSnapshot entities in bulk.
type NLPDriftSnapshotCreateBulk struct {
	config
	err      error
	builders []*NLPDriftSnapshotCreate
}

// Save creates the NLPDriftSnapshot entities in the database.
func (_c *NLPDriftSnapshotCreateBulk) Save(ctx context.Context) ([]*NLPDriftSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NLPDriftSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NLPDriftSnapshotMutation)
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
func (_c *NLPDriftSnapshotCreateBulk) SaveX(ctx context.Context) []*NLPDriftSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NLPDriftSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NLPDriftSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
