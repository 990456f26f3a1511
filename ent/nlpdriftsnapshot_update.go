// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/pkg/models"
)

// NLPDriftSnapshotUpdate is the builder for updating NLPDriftSnapshot entities.
type NLPDriftSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *NLPDriftSnapshotMutation
}

// Where appends a list predicates to the NLPDriftSnapshotUpdate builder.
func (_u *NLPDriftSnapshotUpdate) Where(ps ...predicate.NLPDriftSnapshot) *NLPDriftSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *NLPDriftSnapshotUpdate) SetSourceName(v string) *NLPDriftSnapshotUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableSourceName(v *string) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *NLPDriftSnapshotUpdate) ClearSourceName() *NLPDriftSnapshotUpdate {
	_u.mutation.ClearSourceName()
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *NLPDriftSnapshotUpdate) SetRulesetVersion(v string) *NLPDriftSnapshotUpdate {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableRulesetVersion(v *string) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// SetCurrentWindow sets the "current_window" field.
func (_u *NLPDriftSnapshotUpdate) SetCurrentWindow(v string) *NLPDriftSnapshotUpdate {
	_u.mutation.SetCurrentWindow(v)
	return _u
}

// SetNillableCurrentWindow sets the "current_window" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableCurrentWindow(v *string) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetCurrentWindow(*v)
	}
	return _u
}

// SetBaselineWindow sets the "baseline_window" field.
func (_u *NLPDriftSnapshotUpdate) SetBaselineWindow(v string) *NLPDriftSnapshotUpdate {
	_u.mutation.SetBaselineWindow(v)
	return _u
}

// SetNillableBaselineWindow sets the "baseline_window" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableBaselineWindow(v *string) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetBaselineWindow(*v)
	}
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *NLPDriftSnapshotUpdate) SetSampleSize(v int) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetSampleSize()
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableSampleSize(v *int) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// AddSampleSize adds value to the "sample_size" field.
func (_u *NLPDriftSnapshotUpdate) AddSampleSize(v int) *NLPDriftSnapshotUpdate {
	_u.mutation.AddSampleSize(v)
	return _u
}

// SetBaselineSampleSize sets the "baseline_sample_size" field.
func (_u *NLPDriftSnapshotUpdate) SetBaselineSampleSize(v int) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetBaselineSampleSize()
	_u.mutation.SetBaselineSampleSize(v)
	return _u
}

// SetNillableBaselineSampleSize sets the "baseline_sample_size" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableBaselineSampleSize(v *int) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetBaselineSampleSize(*v)
	}
	return _u
}

// AddBaselineSampleSize adds value to the "baseline_sample_size" field.
func (_u *NLPDriftSnapshotUpdate) AddBaselineSampleSize(v int) *NLPDriftSnapshotUpdate {
	_u.mutation.AddBaselineSampleSize(v)
	return _u
}

// SetCurrentMetrics sets the "current_metrics" field.
func (_u *NLPDriftSnapshotUpdate) SetCurrentMetrics(v map[string]interface{}) *NLPDriftSnapshotUpdate {
	_u.mutation.SetCurrentMetrics(v)
	return _u
}

// SetBaselineMetrics sets the "baseline_metrics" field.
func (_u *NLPDriftSnapshotUpdate) SetBaselineMetrics(v map[string]interface{}) *NLPDriftSnapshotUpdate {
	_u.mutation.SetBaselineMetrics(v)
	return _u
}

// SetHitRateDelta sets the "hit_rate_delta" field.
func (_u *NLPDriftSnapshotUpdate) SetHitRateDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetHitRateDelta()
	_u.mutation.SetHitRateDelta(v)
	return _u
}

// SetNillableHitRateDelta sets the "hit_rate_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableHitRateDelta(v *float64) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetHitRateDelta(*v)
	}
	return _u
}

// AddHitRateDelta adds value to the "hit_rate_delta" field.
func (_u *NLPDriftSnapshotUpdate) AddHitRateDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.AddHitRateDelta(v)
	return _u
}

// SetScoreP50Delta sets the "score_p50_delta" field.
func (_u *NLPDriftSnapshotUpdate) SetScoreP50Delta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetScoreP50Delta()
	_u.mutation.SetScoreP50Delta(v)
	return _u
}

// SetNillableScoreP50Delta sets the "score_p50_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableScoreP50Delta(v *float64) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetScoreP50Delta(*v)
	}
	return _u
}

// AddScoreP50Delta adds value to the "score_p50_delta" field.
func (_u *NLPDriftSnapshotUpdate) AddScoreP50Delta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.AddScoreP50Delta(v)
	return _u
}

// SetContributionDelta sets the "contribution_delta" field.
func (_u *NLPDriftSnapshotUpdate) SetContributionDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetContributionDelta()
	_u.mutation.SetContributionDelta(v)
	return _u
}

// SetNillableContributionDelta sets the "contribution_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableContributionDelta(v *float64) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetContributionDelta(*v)
	}
	return _u
}

// AddContributionDelta adds value to the "contribution_delta" field.
func (_u *NLPDriftSnapshotUpdate) AddContributionDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.AddContributionDelta(v)
	return _u
}

// ClearContributionDelta clears the value of the "contribution_delta" field.
func (_u *NLPDriftSnapshotUpdate) ClearContributionDelta() *NLPDriftSnapshotUpdate {
	_u.mutation.ClearContributionDelta()
	return _u
}

// SetFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdate) SetFeedbackPolarityAccuracyDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetFeedbackPolarityAccuracyDelta()
	_u.mutation.SetFeedbackPolarityAccuracyDelta(v)
	return _u
}

// SetNillableFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableFeedbackPolarityAccuracyDelta(v *float64) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetFeedbackPolarityAccuracyDelta(*v)
	}
	return _u
}

// AddFeedbackPolarityAccuracyDelta adds value to the "feedback_polarity_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdate) AddFeedbackPolarityAccuracyDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.AddFeedbackPolarityAccuracyDelta(v)
	return _u
}

// ClearFeedbackPolarityAccuracyDelta clears the value of the "feedback_polarity_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdate) ClearFeedbackPolarityAccuracyDelta() *NLPDriftSnapshotUpdate {
	_u.mutation.ClearFeedbackPolarityAccuracyDelta()
	return _u
}

// SetFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdate) SetFeedbackEventTypeAccuracyDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.ResetFeedbackEventTypeAccuracyDelta()
	_u.mutation.SetFeedbackEventTypeAccuracyDelta(v)
	return _u
}

// SetNillableFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdate) SetNillableFeedbackEventTypeAccuracyDelta(v *float64) *NLPDriftSnapshotUpdate {
	if v != nil {
		_u.SetFeedbackEventTypeAccuracyDelta(*v)
	}
	return _u
}

// AddFeedbackEventTypeAccuracyDelta adds value to the "feedback_event_type_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdate) AddFeedbackEventTypeAccuracyDelta(v float64) *NLPDriftSnapshotUpdate {
	_u.mutation.AddFeedbackEventTypeAccuracyDelta(v)
	return _u
}

// ClearFeedbackEventTypeAccuracyDelta clears the value of the "feedback_event_type_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdate) ClearFeedbackEventTypeAccuracyDelta() *NLPDriftSnapshotUpdate {
	_u.mutation.ClearFeedbackEventTypeAccuracyDelta()
	return _u
}

// SetAlerts sets the "alerts" field.
func (_u *NLPDriftSnapshotUpdate) SetAlerts(v []models.DriftAlert) *NLPDriftSnapshotUpdate {
	_u.mutation.SetAlerts(v)
	return _u
}

// AppendAlerts appends value to the "alerts" field.
func (_u *NLPDriftSnapshotUpdate) AppendAlerts(v []models.DriftAlert) *NLPDriftSnapshotUpdate {
	_u.mutation.AppendAlerts(v)
	return _u
}

// ClearAlerts clears the value of the "alerts" field.
func (_u *NLPDriftSnapshotUpdate) ClearAlerts() *NLPDriftSnapshotUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NLPDriftSnapshotUpdate) SetPayload(v map[string]interface{}) *NLPDriftSnapshotUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *NLPDriftSnapshotUpdate) ClearPayload() *NLPDriftSnapshotUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the NLPDriftSnapshotMutation object of the builder.
func (_u *NLPDriftSnapshotUpdate) Mutation() *NLPDriftSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NLPDriftSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPDriftSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NLPDriftSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPDriftSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NLPDriftSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpdriftsnapshot.Table, nlpdriftsnapshot.Columns, sqlgraph.NewFieldSpec(nlpdriftsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldRulesetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentWindow(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCurrentWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineWindow(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleSize(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaselineSampleSize(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaselineSampleSize(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldBaselineSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentMetrics(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCurrentMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaselineMetrics(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.HitRateDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldHitRateDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHitRateDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldHitRateDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreP50Delta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldScoreP50Delta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreP50Delta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldScoreP50Delta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContributionDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContributionDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64, value)
	}
	if _u.mutation.ContributionDeltaCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackPolarityAccuracyDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeedbackPolarityAccuracyDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64, value)
	}
	if _u.mutation.FeedbackPolarityAccuracyDeltaCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackEventTypeAccuracyDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeedbackEventTypeAccuracyDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64, value)
	}
	if _u.mutation.FeedbackEventTypeAccuracyDeltaCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Alerts(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldAlerts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlerts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nlpdriftsnapshot.FieldAlerts, value)
		})
	}
	if _u.mutation.AlertsCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldAlerts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpdriftsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NLPDriftSnapshotUpdateOne is the builder for updating a single NLPDriftSnapshot entity.
type NLPDriftSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NLPDriftSnapshotMutation
}

// SetSourceName sets the "source_name" field.
func (_u *NLPDriftSnapshotUpdateOne) SetSourceName(v string) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableSourceName(v *string) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *NLPDriftSnapshotUpdateOne) ClearSourceName() *NLPDriftSnapshotUpdateOne {
	_u.mutation.ClearSourceName()
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *NLPDriftSnapshotUpdateOne) SetRulesetVersion(v string) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableRulesetVersion(v *string) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// SetCurrentWindow sets the "current_window" field.
func (_u *NLPDriftSnapshotUpdateOne) SetCurrentWindow(v string) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetCurrentWindow(v)
	return _u
}

// SetNillableCurrentWindow sets the "current_window" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableCurrentWindow(v *string) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetCurrentWindow(*v)
	}
	return _u
}

// SetBaselineWindow sets the "baseline_window" field.
func (_u *NLPDriftSnapshotUpdateOne) SetBaselineWindow(v string) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetBaselineWindow(v)
	return _u
}

// SetNillableBaselineWindow sets the "baseline_window" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableBaselineWindow(v *string) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetBaselineWindow(*v)
	}
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *NLPDriftSnapshotUpdateOne) SetSampleSize(v int) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetSampleSize()
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableSampleSize(v *int) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// AddSampleSize adds value to the "sample_size" field.
func (_u *NLPDriftSnapshotUpdateOne) AddSampleSize(v int) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddSampleSize(v)
	return _u
}

// SetBaselineSampleSize sets the "baseline_sample_size" field.
func (_u *NLPDriftSnapshotUpdateOne) SetBaselineSampleSize(v int) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetBaselineSampleSize()
	_u.mutation.SetBaselineSampleSize(v)
	return _u
}

// SetNillableBaselineSampleSize sets the "baseline_sample_size" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableBaselineSampleSize(v *int) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetBaselineSampleSize(*v)
	}
	return _u
}

// AddBaselineSampleSize adds value to the "baseline_sample_size" field.
func (_u *NLPDriftSnapshotUpdateOne) AddBaselineSampleSize(v int) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddBaselineSampleSize(v)
	return _u
}

// SetCurrentMetrics sets the "current_metrics" field.
func (_u *NLPDriftSnapshotUpdateOne) SetCurrentMetrics(v map[string]interface{}) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetCurrentMetrics(v)
	return _u
}

// SetBaselineMetrics sets the "baseline_metrics" field.
func (_u *NLPDriftSnapshotUpdateOne) SetBaselineMetrics(v map[string]interface{}) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetBaselineMetrics(v)
	return _u
}

// SetHitRateDelta sets the "hit_rate_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) SetHitRateDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetHitRateDelta()
	_u.mutation.SetHitRateDelta(v)
	return _u
}

// SetNillableHitRateDelta sets the "hit_rate_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableHitRateDelta(v *float64) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetHitRateDelta(*v)
	}
	return _u
}

// AddHitRateDelta adds value to the "hit_rate_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) AddHitRateDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddHitRateDelta(v)
	return _u
}

// SetScoreP50Delta sets the "score_p50_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) SetScoreP50Delta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetScoreP50Delta()
	_u.mutation.SetScoreP50Delta(v)
	return _u
}

// SetNillableScoreP50Delta sets the "score_p50_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableScoreP50Delta(v *float64) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetScoreP50Delta(*v)
	}
	return _u
}

// AddScoreP50Delta adds value to the "score_p50_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) AddScoreP50Delta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddScoreP50Delta(v)
	return _u
}

// SetContributionDelta sets the "contribution_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) SetContributionDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetContributionDelta()
	_u.mutation.SetContributionDelta(v)
	return _u
}

// SetNillableContributionDelta sets the "contribution_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableContributionDelta(v *float64) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetContributionDelta(*v)
	}
	return _u
}

// AddContributionDelta adds value to the "contribution_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) AddContributionDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddContributionDelta(v)
	return _u
}

// ClearContributionDelta clears the value of the "contribution_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) ClearContributionDelta() *NLPDriftSnapshotUpdateOne {
	_u.mutation.ClearContributionDelta()
	return _u
}

// SetFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) SetFeedbackPolarityAccuracyDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetFeedbackPolarityAccuracyDelta()
	_u.mutation.SetFeedbackPolarityAccuracyDelta(v)
	return _u
}

// SetNillableFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableFeedbackPolarityAccuracyDelta(v *float64) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetFeedbackPolarityAccuracyDelta(*v)
	}
	return _u
}

// AddFeedbackPolarityAccuracyDelta adds value to the "feedback_polarity_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) AddFeedbackPolarityAccuracyDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddFeedbackPolarityAccuracyDelta(v)
	return _u
}

// ClearFeedbackPolarityAccuracyDelta clears the value of the "feedback_polarity_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) ClearFeedbackPolarityAccuracyDelta() *NLPDriftSnapshotUpdateOne {
	_u.mutation.ClearFeedbackPolarityAccuracyDelta()
	return _u
}

// SetFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) SetFeedbackEventTypeAccuracyDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.ResetFeedbackEventTypeAccuracyDelta()
	_u.mutation.SetFeedbackEventTypeAccuracyDelta(v)
	return _u
}

// SetNillableFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field if the given value is not nil.
func (_u *NLPDriftSnapshotUpdateOne) SetNillableFeedbackEventTypeAccuracyDelta(v *float64) *NLPDriftSnapshotUpdateOne {
	if v != nil {
		_u.SetFeedbackEventTypeAccuracyDelta(*v)
	}
	return _u
}

// AddFeedbackEventTypeAccuracyDelta adds value to the "feedback_event_type_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) AddFeedbackEventTypeAccuracyDelta(v float64) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AddFeedbackEventTypeAccuracyDelta(v)
	return _u
}

// ClearFeedbackEventTypeAccuracyDelta clears the value of the "feedback_event_type_accuracy_delta" field.
func (_u *NLPDriftSnapshotUpdateOne) ClearFeedbackEventTypeAccuracyDelta() *NLPDriftSnapshotUpdateOne {
	_u.mutation.ClearFeedbackEventTypeAccuracyDelta()
	return _u
}

// SetAlerts sets the "alerts" field.
func (_u *NLPDriftSnapshotUpdateOne) SetAlerts(v []models.DriftAlert) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetAlerts(v)
	return _u
}

// AppendAlerts appends value to the "alerts" field.
func (_u *NLPDriftSnapshotUpdateOne) AppendAlerts(v []models.DriftAlert) *NLPDriftSnapshotUpdateOne {
	_u.mutation.AppendAlerts(v)
	return _u
}

// ClearAlerts clears the value of the "alerts" field.
func (_u *NLPDriftSnapshotUpdateOne) ClearAlerts() *NLPDriftSnapshotUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NLPDriftSnapshotUpdateOne) SetPayload(v map[string]interface{}) *NLPDriftSnapshotUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *NLPDriftSnapshotUpdateOne) ClearPayload() *NLPDriftSnapshotUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the NLPDriftSnapshotMutation object of the builder.
func (_u *NLPDriftSnapshotUpdateOne) Mutation() *NLPDriftSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the NLPDriftSnapshotUpdate builder.
func (_u *NLPDriftSnapshotUpdateOne) Where(ps ...predicate.NLPDriftSnapshot) *NLPDriftSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NLPDriftSnapshotUpdateOne) Select(field string, fields ...string) *NLPDriftSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NLPDriftSnapshot entity.
func (_u *NLPDriftSnapshotUpdateOne) Save(ctx context.Context) (*NLPDriftSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NLPDriftSnapshotUpdateOne) SaveX(ctx context.Context) *NLPDriftSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NLPDriftSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NLPDriftSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NLPDriftSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *NLPDriftSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(nlpdriftsnapshot.Table, nlpdriftsnapshot.Columns, sqlgraph.NewFieldSpec(nlpdriftsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NLPDriftSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nlpdriftsnapshot.FieldID)
		for _, f := range fields {
			if !nlpdriftsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nlpdriftsnapshot.FieldID {
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
		_spec.SetField(nlpdriftsnapshot.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldRulesetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentWindow(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCurrentWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineWindow(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleSize(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaselineSampleSize(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaselineSampleSize(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldBaselineSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentMetrics(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldCurrentMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaselineMetrics(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldBaselineMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.HitRateDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldHitRateDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHitRateDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldHitRateDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreP50Delta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldScoreP50Delta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreP50Delta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldScoreP50Delta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContributionDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContributionDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64, value)
	}
	if _u.mutation.ContributionDeltaCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldContributionDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackPolarityAccuracyDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeedbackPolarityAccuracyDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64, value)
	}
	if _u.mutation.FeedbackPolarityAccuracyDeltaCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackEventTypeAccuracyDelta(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeedbackEventTypeAccuracyDelta(); ok {
		_spec.AddField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64, value)
	}
	if _u.mutation.FeedbackEventTypeAccuracyDeltaCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Alerts(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldAlerts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlerts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nlpdriftsnapshot.FieldAlerts, value)
		})
	}
	if _u.mutation.AlertsCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldAlerts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(nlpdriftsnapshot.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(nlpdriftsnapshot.FieldPayload, field.TypeJSON)
	}
	_node = &NLPDriftSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nlpdriftsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
