// Code generated by ent, DO NOT EDIT.

package nlpdriftsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the nlpdriftsnapshot type in the database.
	Label = "nlp_drift_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldRulesetVersion holds the string denoting the ruleset_version field in the database.
	FieldRulesetVersion = "ruleset_version"
	// FieldCurrentWindow holds the string denoting the current_window field in the database.
	FieldCurrentWindow = "current_window"
	// FieldBaselineWindow holds the string denoting the baseline_window field in the database.
	FieldBaselineWindow = "baseline_window"
	// FieldSampleSize holds the string denoting the sample_size field in the database.
	FieldSampleSize = "sample_size"
	// FieldBaselineSampleSize holds the string denoting the baseline_sample_size field in the database.
	FieldBaselineSampleSize = "baseline_sample_size"
	// FieldCurrentMetrics holds the string denoting the current_metrics field in the database.
	FieldCurrentMetrics = "current_metrics"
	// FieldBaselineMetrics holds the string denoting the baseline_metrics field in the database.
	FieldBaselineMetrics = "baseline_metrics"
	// FieldHitRateDelta holds the string denoting the hit_rate_delta field in the database.
	FieldHitRateDelta = "hit_rate_delta"
	// FieldScoreP50Delta holds the string denoting the score_p50_delta field in the database.
	FieldScoreP50Delta = "score_p50_delta"
	// FieldContributionDelta holds the string denoting the contribution_delta field in the database.
	FieldContributionDelta = "contribution_delta"
	// FieldFeedbackPolarityAccuracyDelta holds the string denoting the feedback_polarity_accuracy_delta field in the database.
	FieldFeedbackPolarityAccuracyDelta = "feedback_polarity_accuracy_delta"
	// FieldFeedbackEventTypeAccuracyDelta holds the string denoting the feedback_event_type_accuracy_delta field in the database.
	FieldFeedbackEventTypeAccuracyDelta = "feedback_event_type_accuracy_delta"
	// FieldAlerts holds the string denoting the alerts field in the database.
	FieldAlerts = "alerts"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the nlpdriftsnapshot in the database.
	Table = "nlp_drift_snapshots"
)

// Columns holds all SQL columns for nlpdriftsnapshot fields.
var Columns = []string{
	FieldID,
	FieldSourceName,
	FieldRulesetVersion,
	FieldCurrentWindow,
	FieldBaselineWindow,
	FieldSampleSize,
	FieldBaselineSampleSize,
	FieldCurrentMetrics,
	FieldBaselineMetrics,
	FieldHitRateDelta,
	FieldScoreP50Delta,
	FieldContributionDelta,
	FieldFeedbackPolarityAccuracyDelta,
	FieldFeedbackEventTypeAccuracyDelta,
	FieldAlerts,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSampleSize holds the default value on creation for the "sample_size" field.
	DefaultSampleSize int
	// DefaultBaselineSampleSize holds the default value on creation for the "baseline_sample_size" field.
	DefaultBaselineSampleSize int
	// DefaultHitRateDelta holds the default value on creation for the "hit_rate_delta" field.
	DefaultHitRateDelta float64
	// DefaultScoreP50Delta holds the default value on creation for the "score_p50_delta" field.
	DefaultScoreP50Delta float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the NLPDriftSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByRulesetVersion orders the results by the ruleset_version field.
func ByRulesetVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRulesetVersion, opts...).ToFunc()
}

// ByCurrentWindow orders the results by the current_window field.
func ByCurrentWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentWindow, opts...).ToFunc()
}

// ByBaselineWindow orders the results by the baseline_window field.
func ByBaselineWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineWindow, opts...).ToFunc()
}

// BySampleSize orders the results by the sample_size field.
func BySampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleSize, opts...).ToFunc()
}

// ByBaselineSampleSize orders the results by the baseline_sample_size field.
func ByBaselineSampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineSampleSize, opts...).ToFunc()
}

// ByHitRateDelta orders the results by the hit_rate_delta field.
func ByHitRateDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHitRateDelta, opts...).ToFunc()
}

// ByScoreP50Delta orders the results by the score_p50_delta field.
func ByScoreP50Delta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreP50Delta, opts...).ToFunc()
}

// ByContributionDelta orders the results by the contribution_delta field.
func ByContributionDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributionDelta, opts...).ToFunc()
}

// ByFeedbackPolarityAccuracyDelta orders the results by the feedback_polarity_accuracy_delta field.
func ByFeedbackPolarityAccuracyDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackPolarityAccuracyDelta, opts...).ToFunc()
}

// ByFeedbackEventTypeAccuracyDelta orders the results by the feedback_event_type_accuracy_delta field.
func ByFeedbackEventTypeAccuracyDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackEventTypeAccuracyDelta, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
