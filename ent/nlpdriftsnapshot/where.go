// Code generated by ent, DO NOT EDIT.

package nlpdriftsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldID, id))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldSourceName, v))
}

// RulesetVersion applies equality check predicate on the "ruleset_version" field. It's identical to RulesetVersionEQ.
func RulesetVersion(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldRulesetVersion, v))
}

// CurrentWindow applies equality check predicate on the "current_window" field. It's identical to CurrentWindowEQ.
func CurrentWindow(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldCurrentWindow, v))
}

// BaselineWindow applies equality check predicate on the "baseline_window" field. It's identical to BaselineWindowEQ.
func BaselineWindow(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldBaselineWindow, v))
}

// SampleSize applies equality check predicate on the "sample_size" field. It's identical to SampleSizeEQ.
func SampleSize(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldSampleSize, v))
}

// BaselineSampleSize applies equality check predicate on the "baseline_sample_size" field. It's identical to BaselineSampleSizeEQ.
func BaselineSampleSize(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldBaselineSampleSize, v))
}

// HitRateDelta applies equality check predicate on the "hit_rate_delta" field. It's identical to HitRateDeltaEQ.
func HitRateDelta(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldHitRateDelta, v))
}

// ScoreP50Delta applies equality check predicate on the "score_p50_delta" field. It's identical to ScoreP50DeltaEQ.
func ScoreP50Delta(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldScoreP50Delta, v))
}

// ContributionDelta applies equality check predicate on the "contribution_delta" field. It's identical to ContributionDeltaEQ.
func ContributionDelta(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldContributionDelta, v))
}

// FeedbackPolarityAccuracyDelta applies equality check predicate on the "feedback_polarity_accuracy_delta" field. It's identical to FeedbackPolarityAccuracyDeltaEQ.
func FeedbackPolarityAccuracyDelta(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDelta applies equality check predicate on the "feedback_event_type_accuracy_delta" field. It's identical to FeedbackEventTypeAccuracyDeltaEQ.
func FeedbackEventTypeAccuracyDelta(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldFeedbackEventTypeAccuracyDelta, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameIsNil applies the IsNil predicate on the "source_name" field.
func SourceNameIsNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIsNull(FieldSourceName))
}

// SourceNameNotNil applies the NotNil predicate on the "source_name" field.
func SourceNameNotNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotNull(FieldSourceName))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContainsFold(FieldSourceName, v))
}

// RulesetVersionEQ applies the EQ predicate on the "ruleset_version" field.
func RulesetVersionEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldRulesetVersion, v))
}

// RulesetVersionNEQ applies the NEQ predicate on the "ruleset_version" field.
func RulesetVersionNEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldRulesetVersion, v))
}

// RulesetVersionIn applies the In predicate on the "ruleset_version" field.
func RulesetVersionIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldRulesetVersion, vs...))
}

// RulesetVersionNotIn applies the NotIn predicate on the "ruleset_version" field.
func RulesetVersionNotIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldRulesetVersion, vs...))
}

// RulesetVersionGT applies the GT predicate on the "ruleset_version" field.
func RulesetVersionGT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldRulesetVersion, v))
}

// RulesetVersionGTE applies the GTE predicate on the "ruleset_version" field.
func RulesetVersionGTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldRulesetVersion, v))
}

// RulesetVersionLT applies the LT predicate on the "ruleset_version" field.
func RulesetVersionLT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldRulesetVersion, v))
}

// RulesetVersionLTE applies the LTE predicate on the "ruleset_version" field.
func RulesetVersionLTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldRulesetVersion, v))
}

// RulesetVersionContains applies the Contains predicate on the "ruleset_version" field.
func RulesetVersionContains(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContains(FieldRulesetVersion, v))
}

// RulesetVersionHasPrefix applies the HasPrefix predicate on the "ruleset_version" field.
func RulesetVersionHasPrefix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasPrefix(FieldRulesetVersion, v))
}

// RulesetVersionHasSuffix applies the HasSuffix predicate on the "ruleset_version" field.
func RulesetVersionHasSuffix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasSuffix(FieldRulesetVersion, v))
}

// RulesetVersionEqualFold applies the EqualFold predicate on the "ruleset_version" field.
func RulesetVersionEqualFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEqualFold(FieldRulesetVersion, v))
}

// RulesetVersionContainsFold applies the ContainsFold predicate on the "ruleset_version" field.
func RulesetVersionContainsFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContainsFold(FieldRulesetVersion, v))
}

// CurrentWindowEQ applies the EQ predicate on the "current_window" field.
func CurrentWindowEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldCurrentWindow, v))
}

// CurrentWindowNEQ applies the NEQ predicate on the "current_window" field.
func CurrentWindowNEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldCurrentWindow, v))
}

// CurrentWindowIn applies the In predicate on the "current_window" field.
func CurrentWindowIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldCurrentWindow, vs...))
}

// CurrentWindowNotIn applies the NotIn predicate on the "current_window" field.
func CurrentWindowNotIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldCurrentWindow, vs...))
}

// CurrentWindowGT applies the GT predicate on the "current_window" field.
func CurrentWindowGT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldCurrentWindow, v))
}

// CurrentWindowGTE applies the GTE predicate on the "current_window" field.
func CurrentWindowGTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldCurrentWindow, v))
}

// CurrentWindowLT applies the LT predicate on the "current_window" field.
func CurrentWindowLT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldCurrentWindow, v))
}

// CurrentWindowLTE applies the LTE predicate on the "current_window" field.
func CurrentWindowLTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldCurrentWindow, v))
}

// CurrentWindowContains applies the Contains predicate on the "current_window" field.
func CurrentWindowContains(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContains(FieldCurrentWindow, v))
}

// CurrentWindowHasPrefix applies the HasPrefix predicate on the "current_window" field.
func CurrentWindowHasPrefix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasPrefix(FieldCurrentWindow, v))
}

// CurrentWindowHasSuffix applies the HasSuffix predicate on the "current_window" field.
func CurrentWindowHasSuffix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasSuffix(FieldCurrentWindow, v))
}

// CurrentWindowEqualFold applies the EqualFold predicate on the "current_window" field.
func CurrentWindowEqualFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEqualFold(FieldCurrentWindow, v))
}

// CurrentWindowContainsFold applies the ContainsFold predicate on the "current_window" field.
func CurrentWindowContainsFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContainsFold(FieldCurrentWindow, v))
}

// BaselineWindowEQ applies the EQ predicate on the "baseline_window" field.
func BaselineWindowEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldBaselineWindow, v))
}

// BaselineWindowNEQ applies the NEQ predicate on the "baseline_window" field.
func BaselineWindowNEQ(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldBaselineWindow, v))
}

// BaselineWindowIn applies the In predicate on the "baseline_window" field.
func BaselineWindowIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldBaselineWindow, vs...))
}

// BaselineWindowNotIn applies the NotIn predicate on the "baseline_window" field.
func BaselineWindowNotIn(vs ...string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldBaselineWindow, vs...))
}

// BaselineWindowGT applies the GT predicate on the "baseline_window" field.
func BaselineWindowGT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldBaselineWindow, v))
}

// BaselineWindowGTE applies the GTE predicate on the "baseline_window" field.
func BaselineWindowGTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldBaselineWindow, v))
}

// BaselineWindowLT applies the LT predicate on the "baseline_window" field.
func BaselineWindowLT(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldBaselineWindow, v))
}

// BaselineWindowLTE applies the LTE predicate on the "baseline_window" field.
func BaselineWindowLTE(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldBaselineWindow, v))
}

// BaselineWindowContains applies the Contains predicate on the "baseline_window" field.
func BaselineWindowContains(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContains(FieldBaselineWindow, v))
}

// BaselineWindowHasPrefix applies the HasPrefix predicate on the "baseline_window" field.
func BaselineWindowHasPrefix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasPrefix(FieldBaselineWindow, v))
}

// BaselineWindowHasSuffix applies the HasSuffix predicate on the "baseline_window" field.
func BaselineWindowHasSuffix(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldHasSuffix(FieldBaselineWindow, v))
}

// BaselineWindowEqualFold applies the EqualFold predicate on the "baseline_window" field.
func BaselineWindowEqualFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEqualFold(FieldBaselineWindow, v))
}

// BaselineWindowContainsFold applies the ContainsFold predicate on the "baseline_window" field.
func BaselineWindowContainsFold(v string) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldContainsFold(FieldBaselineWindow, v))
}

// SampleSizeEQ applies the EQ predicate on the "sample_size" field.
func SampleSizeEQ(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldSampleSize, v))
}

// SampleSizeNEQ applies the NEQ predicate on the "sample_size" field.
func SampleSizeNEQ(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldSampleSize, v))
}

// SampleSizeIn applies the In predicate on the "sample_size" field.
func SampleSizeIn(vs ...int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldSampleSize, vs...))
}

// SampleSizeNotIn applies the NotIn predicate on the "sample_size" field.
func SampleSizeNotIn(vs ...int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldSampleSize, vs...))
}

// SampleSizeGT applies the GT predicate on the "sample_size" field.
func SampleSizeGT(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldSampleSize, v))
}

// SampleSizeGTE applies the GTE predicate on the "sample_size" field.
func SampleSizeGTE(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldSampleSize, v))
}

// SampleSizeLT applies the LT predicate on the "sample_size" field.
func SampleSizeLT(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldSampleSize, v))
}

// SampleSizeLTE applies the LTE predicate on the "sample_size" field.
func SampleSizeLTE(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldSampleSize, v))
}

// BaselineSampleSizeEQ applies the EQ predicate on the "baseline_sample_size" field.
func BaselineSampleSizeEQ(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldBaselineSampleSize, v))
}

// BaselineSampleSizeNEQ applies the NEQ predicate on the "baseline_sample_size" field.
func BaselineSampleSizeNEQ(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldBaselineSampleSize, v))
}

// BaselineSampleSizeIn applies the In predicate on the "baseline_sample_size" field.
func BaselineSampleSizeIn(vs ...int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldBaselineSampleSize, vs...))
}

// BaselineSampleSizeNotIn applies the NotIn predicate on the "baseline_sample_size" field.
func BaselineSampleSizeNotIn(vs ...int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldBaselineSampleSize, vs...))
}

// BaselineSampleSizeGT applies the GT predicate on the "baseline_sample_size" field.
func BaselineSampleSizeGT(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldBaselineSampleSize, v))
}

// BaselineSampleSizeGTE applies the GTE predicate on the "baseline_sample_size" field.
func BaselineSampleSizeGTE(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldBaselineSampleSize, v))
}

// BaselineSampleSizeLT applies the LT predicate on the "baseline_sample_size" field.
func BaselineSampleSizeLT(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldBaselineSampleSize, v))
}

// BaselineSampleSizeLTE applies the LTE predicate on the "baseline_sample_size" field.
func BaselineSampleSizeLTE(v int) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldBaselineSampleSize, v))
}

// HitRateDeltaEQ applies the EQ predicate on the "hit_rate_delta" field.
func HitRateDeltaEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldHitRateDelta, v))
}

// HitRateDeltaNEQ applies the NEQ predicate on the "hit_rate_delta" field.
func HitRateDeltaNEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldHitRateDelta, v))
}

// HitRateDeltaIn applies the In predicate on the "hit_rate_delta" field.
func HitRateDeltaIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldHitRateDelta, vs...))
}

// HitRateDeltaNotIn applies the NotIn predicate on the "hit_rate_delta" field.
func HitRateDeltaNotIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldHitRateDelta, vs...))
}

// HitRateDeltaGT applies the GT predicate on the "hit_rate_delta" field.
func HitRateDeltaGT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldHitRateDelta, v))
}

// HitRateDeltaGTE applies the GTE predicate on the "hit_rate_delta" field.
func HitRateDeltaGTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldHitRateDelta, v))
}

// HitRateDeltaLT applies the LT predicate on the "hit_rate_delta" field.
func HitRateDeltaLT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldHitRateDelta, v))
}

// HitRateDeltaLTE applies the LTE predicate on the "hit_rate_delta" field.
func HitRateDeltaLTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldHitRateDelta, v))
}

// ScoreP50DeltaEQ applies the EQ predicate on the "score_p50_delta" field.
func ScoreP50DeltaEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldScoreP50Delta, v))
}

// ScoreP50DeltaNEQ applies the NEQ predicate on the "score_p50_delta" field.
func ScoreP50DeltaNEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldScoreP50Delta, v))
}

// ScoreP50DeltaIn applies the In predicate on the "score_p50_delta" field.
func ScoreP50DeltaIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldScoreP50Delta, vs...))
}

// ScoreP50DeltaNotIn applies the NotIn predicate on the "score_p50_delta" field.
func ScoreP50DeltaNotIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldScoreP50Delta, vs...))
}

// ScoreP50DeltaGT applies the GT predicate on the "score_p50_delta" field.
func ScoreP50DeltaGT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldScoreP50Delta, v))
}

// ScoreP50DeltaGTE applies the GTE predicate on the "score_p50_delta" field.
func ScoreP50DeltaGTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldScoreP50Delta, v))
}

// ScoreP50DeltaLT applies the LT predicate on the "score_p50_delta" field.
func ScoreP50DeltaLT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldScoreP50Delta, v))
}

// ScoreP50DeltaLTE applies the LTE predicate on the "score_p50_delta" field.
func ScoreP50DeltaLTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldScoreP50Delta, v))
}

// ContributionDeltaEQ applies the EQ predicate on the "contribution_delta" field.
func ContributionDeltaEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldContributionDelta, v))
}

// ContributionDeltaNEQ applies the NEQ predicate on the "contribution_delta" field.
func ContributionDeltaNEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldContributionDelta, v))
}

// ContributionDeltaIn applies the In predicate on the "contribution_delta" field.
func ContributionDeltaIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldContributionDelta, vs...))
}

// ContributionDeltaNotIn applies the NotIn predicate on the "contribution_delta" field.
func ContributionDeltaNotIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldContributionDelta, vs...))
}

// ContributionDeltaGT applies the GT predicate on the "contribution_delta" field.
func ContributionDeltaGT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldContributionDelta, v))
}

// ContributionDeltaGTE applies the GTE predicate on the "contribution_delta" field.
func ContributionDeltaGTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldContributionDelta, v))
}

// ContributionDeltaLT applies the LT predicate on the "contribution_delta" field.
func ContributionDeltaLT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldContributionDelta, v))
}

// ContributionDeltaLTE applies the LTE predicate on the "contribution_delta" field.
func ContributionDeltaLTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldContributionDelta, v))
}

// ContributionDeltaIsNil applies the IsNil predicate on the "contribution_delta" field.
func ContributionDeltaIsNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIsNull(FieldContributionDelta))
}

// ContributionDeltaNotNil applies the NotNil predicate on the "contribution_delta" field.
func ContributionDeltaNotNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotNull(FieldContributionDelta))
}

// FeedbackPolarityAccuracyDeltaEQ applies the EQ predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackPolarityAccuracyDeltaNEQ applies the NEQ predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaNEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackPolarityAccuracyDeltaIn applies the In predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldFeedbackPolarityAccuracyDelta, vs...))
}

// FeedbackPolarityAccuracyDeltaNotIn applies the NotIn predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaNotIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldFeedbackPolarityAccuracyDelta, vs...))
}

// FeedbackPolarityAccuracyDeltaGT applies the GT predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaGT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackPolarityAccuracyDeltaGTE applies the GTE predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaGTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackPolarityAccuracyDeltaLT applies the LT predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaLT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackPolarityAccuracyDeltaLTE applies the LTE predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaLTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldFeedbackPolarityAccuracyDelta, v))
}

// FeedbackPolarityAccuracyDeltaIsNil applies the IsNil predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaIsNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIsNull(FieldFeedbackPolarityAccuracyDelta))
}

// FeedbackPolarityAccuracyDeltaNotNil applies the NotNil predicate on the "feedback_polarity_accuracy_delta" field.
func FeedbackPolarityAccuracyDeltaNotNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotNull(FieldFeedbackPolarityAccuracyDelta))
}

// FeedbackEventTypeAccuracyDeltaEQ applies the EQ predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldFeedbackEventTypeAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDeltaNEQ applies the NEQ predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaNEQ(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldFeedbackEventTypeAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDeltaIn applies the In predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldFeedbackEventTypeAccuracyDelta, vs...))
}

// FeedbackEventTypeAccuracyDeltaNotIn applies the NotIn predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaNotIn(vs ...float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldFeedbackEventTypeAccuracyDelta, vs...))
}

// FeedbackEventTypeAccuracyDeltaGT applies the GT predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaGT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldFeedbackEventTypeAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDeltaGTE applies the GTE predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaGTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldFeedbackEventTypeAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDeltaLT applies the LT predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaLT(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldFeedbackEventTypeAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDeltaLTE applies the LTE predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaLTE(v float64) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldFeedbackEventTypeAccuracyDelta, v))
}

// FeedbackEventTypeAccuracyDeltaIsNil applies the IsNil predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaIsNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIsNull(FieldFeedbackEventTypeAccuracyDelta))
}

// FeedbackEventTypeAccuracyDeltaNotNil applies the NotNil predicate on the "feedback_event_type_accuracy_delta" field.
func FeedbackEventTypeAccuracyDeltaNotNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotNull(FieldFeedbackEventTypeAccuracyDelta))
}

// AlertsIsNil applies the IsNil predicate on the "alerts" field.
func AlertsIsNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIsNull(FieldAlerts))
}

// AlertsNotNil applies the NotNil predicate on the "alerts" field.
func AlertsNotNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotNull(FieldAlerts))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NLPDriftSnapshot) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NLPDriftSnapshot) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NLPDriftSnapshot) predicate.NLPDriftSnapshot {
	return predicate.NLPDriftSnapshot(sql.NotPredicates(p))
}
