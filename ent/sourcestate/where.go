// Code generated by ent, DO NOT EDIT.

package sourcestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldConnectorName, v))
}

// SourceKey applies equality check predicate on the "source_key" field. It's identical to SourceKeyEQ.
func SourceKey(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldSourceKey, v))
}

// ConnectorType applies equality check predicate on the "connector_type" field. It's identical to ConnectorTypeEQ.
func ConnectorType(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldConnectorType, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldPriority, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldEnabled, v))
}

// HealthScore applies equality check predicate on the "health_score" field. It's identical to HealthScoreEQ.
func HealthScore(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldHealthScore, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// TotalSuccess applies equality check predicate on the "total_success" field. It's identical to TotalSuccessEQ.
func TotalSuccess(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldTotalSuccess, v))
}

// TotalFailures applies equality check predicate on the "total_failures" field. It's identical to TotalFailuresEQ.
func TotalFailures(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldTotalFailures, v))
}

// LastLatencyMs applies equality check predicate on the "last_latency_ms" field. It's identical to LastLatencyMsEQ.
func LastLatencyMs(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastLatencyMs, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastError, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastSuccessAt applies equality check predicate on the "last_success_at" field. It's identical to LastSuccessAtEQ.
func LastSuccessAt(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastFailureAt applies equality check predicate on the "last_failure_at" field. It's identical to LastFailureAtEQ.
func LastFailureAt(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastFailureAt, v))
}

// CheckpointCursor applies equality check predicate on the "checkpoint_cursor" field. It's identical to CheckpointCursorEQ.
func CheckpointCursor(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldCheckpointCursor, v))
}

// CheckpointPublishTime applies equality check predicate on the "checkpoint_publish_time" field. It's identical to CheckpointPublishTimeEQ.
func CheckpointPublishTime(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldCheckpointPublishTime, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldIsActive, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceKeyEQ applies the EQ predicate on the "source_key" field.
func SourceKeyEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldSourceKey, v))
}

// SourceKeyNEQ applies the NEQ predicate on the "source_key" field.
func SourceKeyNEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldSourceKey, v))
}

// SourceKeyIn applies the In predicate on the "source_key" field.
func SourceKeyIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldSourceKey, vs...))
}

// SourceKeyNotIn applies the NotIn predicate on the "source_key" field.
func SourceKeyNotIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldSourceKey, vs...))
}

// SourceKeyGT applies the GT predicate on the "source_key" field.
func SourceKeyGT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldSourceKey, v))
}

// SourceKeyGTE applies the GTE predicate on the "source_key" field.
func SourceKeyGTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldSourceKey, v))
}

// SourceKeyLT applies the LT predicate on the "source_key" field.
func SourceKeyLT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldSourceKey, v))
}

// SourceKeyLTE applies the LTE predicate on the "source_key" field.
func SourceKeyLTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldSourceKey, v))
}

// SourceKeyContains applies the Contains predicate on the "source_key" field.
func SourceKeyContains(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContains(FieldSourceKey, v))
}

// SourceKeyHasPrefix applies the HasPrefix predicate on the "source_key" field.
func SourceKeyHasPrefix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasPrefix(FieldSourceKey, v))
}

// SourceKeyHasSuffix applies the HasSuffix predicate on the "source_key" field.
func SourceKeyHasSuffix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasSuffix(FieldSourceKey, v))
}

// SourceKeyEqualFold applies the EqualFold predicate on the "source_key" field.
func SourceKeyEqualFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEqualFold(FieldSourceKey, v))
}

// SourceKeyContainsFold applies the ContainsFold predicate on the "source_key" field.
func SourceKeyContainsFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContainsFold(FieldSourceKey, v))
}

// ConnectorTypeEQ applies the EQ predicate on the "connector_type" field.
func ConnectorTypeEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldConnectorType, v))
}

// ConnectorTypeNEQ applies the NEQ predicate on the "connector_type" field.
func ConnectorTypeNEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldConnectorType, v))
}

// ConnectorTypeIn applies the In predicate on the "connector_type" field.
func ConnectorTypeIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldConnectorType, vs...))
}

// ConnectorTypeNotIn applies the NotIn predicate on the "connector_type" field.
func ConnectorTypeNotIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldConnectorType, vs...))
}

// ConnectorTypeGT applies the GT predicate on the "connector_type" field.
func ConnectorTypeGT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldConnectorType, v))
}

// ConnectorTypeGTE applies the GTE predicate on the "connector_type" field.
func ConnectorTypeGTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldConnectorType, v))
}

// ConnectorTypeLT applies the LT predicate on the "connector_type" field.
func ConnectorTypeLT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldConnectorType, v))
}

// ConnectorTypeLTE applies the LTE predicate on the "connector_type" field.
func ConnectorTypeLTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldConnectorType, v))
}

// ConnectorTypeContains applies the Contains predicate on the "connector_type" field.
func ConnectorTypeContains(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContains(FieldConnectorType, v))
}

// ConnectorTypeHasPrefix applies the HasPrefix predicate on the "connector_type" field.
func ConnectorTypeHasPrefix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasPrefix(FieldConnectorType, v))
}

// ConnectorTypeHasSuffix applies the HasSuffix predicate on the "connector_type" field.
func ConnectorTypeHasSuffix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasSuffix(FieldConnectorType, v))
}

// ConnectorTypeEqualFold applies the EqualFold predicate on the "connector_type" field.
func ConnectorTypeEqualFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEqualFold(FieldConnectorType, v))
}

// ConnectorTypeContainsFold applies the ContainsFold predicate on the "connector_type" field.
func ConnectorTypeContainsFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContainsFold(FieldConnectorType, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldPriority, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldEnabled, v))
}

// HealthScoreEQ applies the EQ predicate on the "health_score" field.
func HealthScoreEQ(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldHealthScore, v))
}

// HealthScoreNEQ applies the NEQ predicate on the "health_score" field.
func HealthScoreNEQ(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldHealthScore, v))
}

// HealthScoreIn applies the In predicate on the "health_score" field.
func HealthScoreIn(vs ...float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldHealthScore, vs...))
}

// HealthScoreNotIn applies the NotIn predicate on the "health_score" field.
func HealthScoreNotIn(vs ...float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldHealthScore, vs...))
}

// HealthScoreGT applies the GT predicate on the "health_score" field.
func HealthScoreGT(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldHealthScore, v))
}

// HealthScoreGTE applies the GTE predicate on the "health_score" field.
func HealthScoreGTE(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldHealthScore, v))
}

// HealthScoreLT applies the LT predicate on the "health_score" field.
func HealthScoreLT(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldHealthScore, v))
}

// HealthScoreLTE applies the LTE predicate on the "health_score" field.
func HealthScoreLTE(v float64) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldHealthScore, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// TotalSuccessEQ applies the EQ predicate on the "total_success" field.
func TotalSuccessEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldTotalSuccess, v))
}

// TotalSuccessNEQ applies the NEQ predicate on the "total_success" field.
func TotalSuccessNEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldTotalSuccess, v))
}

// TotalSuccessIn applies the In predicate on the "total_success" field.
func TotalSuccessIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldTotalSuccess, vs...))
}

// TotalSuccessNotIn applies the NotIn predicate on the "total_success" field.
func TotalSuccessNotIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldTotalSuccess, vs...))
}

// TotalSuccessGT applies the GT predicate on the "total_success" field.
func TotalSuccessGT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldTotalSuccess, v))
}

// TotalSuccessGTE applies the GTE predicate on the "total_success" field.
func TotalSuccessGTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldTotalSuccess, v))
}

// TotalSuccessLT applies the LT predicate on the "total_success" field.
func TotalSuccessLT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldTotalSuccess, v))
}

// TotalSuccessLTE applies the LTE predicate on the "total_success" field.
func TotalSuccessLTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldTotalSuccess, v))
}

// TotalFailuresEQ applies the EQ predicate on the "total_failures" field.
func TotalFailuresEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldTotalFailures, v))
}

// TotalFailuresNEQ applies the NEQ predicate on the "total_failures" field.
func TotalFailuresNEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldTotalFailures, v))
}

// TotalFailuresIn applies the In predicate on the "total_failures" field.
func TotalFailuresIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldTotalFailures, vs...))
}

// TotalFailuresNotIn applies the NotIn predicate on the "total_failures" field.
func TotalFailuresNotIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldTotalFailures, vs...))
}

// TotalFailuresGT applies the GT predicate on the "total_failures" field.
func TotalFailuresGT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldTotalFailures, v))
}

// TotalFailuresGTE applies the GTE predicate on the "total_failures" field.
func TotalFailuresGTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldTotalFailures, v))
}

// TotalFailuresLT applies the LT predicate on the "total_failures" field.
func TotalFailuresLT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldTotalFailures, v))
}

// TotalFailuresLTE applies the LTE predicate on the "total_failures" field.
func TotalFailuresLTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldTotalFailures, v))
}

// LastLatencyMsEQ applies the EQ predicate on the "last_latency_ms" field.
func LastLatencyMsEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastLatencyMs, v))
}

// LastLatencyMsNEQ applies the NEQ predicate on the "last_latency_ms" field.
func LastLatencyMsNEQ(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldLastLatencyMs, v))
}

// LastLatencyMsIn applies the In predicate on the "last_latency_ms" field.
func LastLatencyMsIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldLastLatencyMs, vs...))
}

// LastLatencyMsNotIn applies the NotIn predicate on the "last_latency_ms" field.
func LastLatencyMsNotIn(vs ...int) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldLastLatencyMs, vs...))
}

// LastLatencyMsGT applies the GT predicate on the "last_latency_ms" field.
func LastLatencyMsGT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldLastLatencyMs, v))
}

// LastLatencyMsGTE applies the GTE predicate on the "last_latency_ms" field.
func LastLatencyMsGTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldLastLatencyMs, v))
}

// LastLatencyMsLT applies the LT predicate on the "last_latency_ms" field.
func LastLatencyMsLT(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldLastLatencyMs, v))
}

// LastLatencyMsLTE applies the LTE predicate on the "last_latency_ms" field.
func LastLatencyMsLTE(v int) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldLastLatencyMs, v))
}

// LastLatencyMsIsNil applies the IsNil predicate on the "last_latency_ms" field.
func LastLatencyMsIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldLastLatencyMs))
}

// LastLatencyMsNotNil applies the NotNil predicate on the "last_latency_ms" field.
func LastLatencyMsNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldLastLatencyMs))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContainsFold(FieldLastError, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldLastAttemptAt))
}

// LastSuccessAtEQ applies the EQ predicate on the "last_success_at" field.
func LastSuccessAtEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtNEQ applies the NEQ predicate on the "last_success_at" field.
func LastSuccessAtNEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtIn applies the In predicate on the "last_success_at" field.
func LastSuccessAtIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtNotIn applies the NotIn predicate on the "last_success_at" field.
func LastSuccessAtNotIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtGT applies the GT predicate on the "last_success_at" field.
func LastSuccessAtGT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldLastSuccessAt, v))
}

// LastSuccessAtGTE applies the GTE predicate on the "last_success_at" field.
func LastSuccessAtGTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldLastSuccessAt, v))
}

// LastSuccessAtLT applies the LT predicate on the "last_success_at" field.
func LastSuccessAtLT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldLastSuccessAt, v))
}

// LastSuccessAtLTE applies the LTE predicate on the "last_success_at" field.
func LastSuccessAtLTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldLastSuccessAt, v))
}

// LastSuccessAtIsNil applies the IsNil predicate on the "last_success_at" field.
func LastSuccessAtIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldLastSuccessAt))
}

// LastSuccessAtNotNil applies the NotNil predicate on the "last_success_at" field.
func LastSuccessAtNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldLastSuccessAt))
}

// LastFailureAtEQ applies the EQ predicate on the "last_failure_at" field.
func LastFailureAtEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldLastFailureAt, v))
}

// LastFailureAtNEQ applies the NEQ predicate on the "last_failure_at" field.
func LastFailureAtNEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldLastFailureAt, v))
}

// LastFailureAtIn applies the In predicate on the "last_failure_at" field.
func LastFailureAtIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldLastFailureAt, vs...))
}

// LastFailureAtNotIn applies the NotIn predicate on the "last_failure_at" field.
func LastFailureAtNotIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldLastFailureAt, vs...))
}

// LastFailureAtGT applies the GT predicate on the "last_failure_at" field.
func LastFailureAtGT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldLastFailureAt, v))
}

// LastFailureAtGTE applies the GTE predicate on the "last_failure_at" field.
func LastFailureAtGTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldLastFailureAt, v))
}

// LastFailureAtLT applies the LT predicate on the "last_failure_at" field.
func LastFailureAtLT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldLastFailureAt, v))
}

// LastFailureAtLTE applies the LTE predicate on the "last_failure_at" field.
func LastFailureAtLTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldLastFailureAt, v))
}

// LastFailureAtIsNil applies the IsNil predicate on the "last_failure_at" field.
func LastFailureAtIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldLastFailureAt))
}

// LastFailureAtNotNil applies the NotNil predicate on the "last_failure_at" field.
func LastFailureAtNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldLastFailureAt))
}

// CheckpointCursorEQ applies the EQ predicate on the "checkpoint_cursor" field.
func CheckpointCursorEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldCheckpointCursor, v))
}

// CheckpointCursorNEQ applies the NEQ predicate on the "checkpoint_cursor" field.
func CheckpointCursorNEQ(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldCheckpointCursor, v))
}

// CheckpointCursorIn applies the In predicate on the "checkpoint_cursor" field.
func CheckpointCursorIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldCheckpointCursor, vs...))
}

// CheckpointCursorNotIn applies the NotIn predicate on the "checkpoint_cursor" field.
func CheckpointCursorNotIn(vs ...string) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldCheckpointCursor, vs...))
}

// CheckpointCursorGT applies the GT predicate on the "checkpoint_cursor" field.
func CheckpointCursorGT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldCheckpointCursor, v))
}

// CheckpointCursorGTE applies the GTE predicate on the "checkpoint_cursor" field.
func CheckpointCursorGTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldCheckpointCursor, v))
}

// CheckpointCursorLT applies the LT predicate on the "checkpoint_cursor" field.
func CheckpointCursorLT(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldCheckpointCursor, v))
}

// CheckpointCursorLTE applies the LTE predicate on the "checkpoint_cursor" field.
func CheckpointCursorLTE(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldCheckpointCursor, v))
}

// CheckpointCursorContains applies the Contains predicate on the "checkpoint_cursor" field.
func CheckpointCursorContains(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContains(FieldCheckpointCursor, v))
}

// CheckpointCursorHasPrefix applies the HasPrefix predicate on the "checkpoint_cursor" field.
func CheckpointCursorHasPrefix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasPrefix(FieldCheckpointCursor, v))
}

// CheckpointCursorHasSuffix applies the HasSuffix predicate on the "checkpoint_cursor" field.
func CheckpointCursorHasSuffix(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldHasSuffix(FieldCheckpointCursor, v))
}

// CheckpointCursorIsNil applies the IsNil predicate on the "checkpoint_cursor" field.
func CheckpointCursorIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldCheckpointCursor))
}

// CheckpointCursorNotNil applies the NotNil predicate on the "checkpoint_cursor" field.
func CheckpointCursorNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldCheckpointCursor))
}

// CheckpointCursorEqualFold applies the EqualFold predicate on the "checkpoint_cursor" field.
func CheckpointCursorEqualFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldEqualFold(FieldCheckpointCursor, v))
}

// CheckpointCursorContainsFold applies the ContainsFold predicate on the "checkpoint_cursor" field.
func CheckpointCursorContainsFold(v string) predicate.SourceState {
	return predicate.SourceState(sql.FieldContainsFold(FieldCheckpointCursor, v))
}

// CheckpointPublishTimeEQ applies the EQ predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeNEQ applies the NEQ predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeNEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeIn applies the In predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldCheckpointPublishTime, vs...))
}

// CheckpointPublishTimeNotIn applies the NotIn predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeNotIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldCheckpointPublishTime, vs...))
}

// CheckpointPublishTimeGT applies the GT predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeGT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeGTE applies the GTE predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeGTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeLT applies the LT predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeLT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeLTE applies the LTE predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeLTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeIsNil applies the IsNil predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeIsNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldIsNull(FieldCheckpointPublishTime))
}

// CheckpointPublishTimeNotNil applies the NotNil predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeNotNil() predicate.SourceState {
	return predicate.SourceState(sql.FieldNotNull(FieldCheckpointPublishTime))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldIsActive, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SourceState {
	return predicate.SourceState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceState) predicate.SourceState {
	return predicate.SourceState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceState) predicate.SourceState {
	return predicate.SourceState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceState) predicate.SourceState {
	return predicate.SourceState(sql.NotPredicates(p))
}
