// Code generated by ent, DO NOT EDIT.

package sourcestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sourcestate type in the database.
	Label = "source_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConnectorName holds the string denoting the connector_name field in the database.
	FieldConnectorName = "connector_name"
	// FieldSourceKey holds the string denoting the source_key field in the database.
	FieldSourceKey = "source_key"
	// FieldConnectorType holds the string denoting the connector_type field in the database.
	FieldConnectorType = "connector_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldHealthScore holds the string denoting the health_score field in the database.
	FieldHealthScore = "health_score"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldTotalSuccess holds the string denoting the total_success field in the database.
	FieldTotalSuccess = "total_success"
	// FieldTotalFailures holds the string denoting the total_failures field in the database.
	FieldTotalFailures = "total_failures"
	// FieldLastLatencyMs holds the string denoting the last_latency_ms field in the database.
	FieldLastLatencyMs = "last_latency_ms"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldLastSuccessAt holds the string denoting the last_success_at field in the database.
	FieldLastSuccessAt = "last_success_at"
	// FieldLastFailureAt holds the string denoting the last_failure_at field in the database.
	FieldLastFailureAt = "last_failure_at"
	// FieldCheckpointCursor holds the string denoting the checkpoint_cursor field in the database.
	FieldCheckpointCursor = "checkpoint_cursor"
	// FieldCheckpointPublishTime holds the string denoting the checkpoint_publish_time field in the database.
	FieldCheckpointPublishTime = "checkpoint_publish_time"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sourcestate in the database.
	Table = "source_states"
)

// Columns holds all SQL columns for sourcestate fields.
var Columns = []string{
	FieldID,
	FieldConnectorName,
	FieldSourceKey,
	FieldConnectorType,
	FieldPriority,
	FieldEnabled,
	FieldHealthScore,
	FieldConsecutiveFailures,
	FieldTotalSuccess,
	FieldTotalFailures,
	FieldLastLatencyMs,
	FieldLastError,
	FieldLastAttemptAt,
	FieldLastSuccessAt,
	FieldLastFailureAt,
	FieldCheckpointCursor,
	FieldCheckpointPublishTime,
	FieldIsActive,
	FieldUpdatedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultHealthScore holds the default value on creation for the "health_score" field.
	DefaultHealthScore float64
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultTotalSuccess holds the default value on creation for the "total_success" field.
	DefaultTotalSuccess int
	// DefaultTotalFailures holds the default value on creation for the "total_failures" field.
	DefaultTotalFailures int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SourceState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConnectorName orders the results by the connector_name field.
func ByConnectorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorName, opts...).ToFunc()
}

// BySourceKey orders the results by the source_key field.
func BySourceKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceKey, opts...).ToFunc()
}

// ByConnectorType orders the results by the connector_type field.
func ByConnectorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByHealthScore orders the results by the health_score field.
func ByHealthScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthScore, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByTotalSuccess orders the results by the total_success field.
func ByTotalSuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSuccess, opts...).ToFunc()
}

// ByTotalFailures orders the results by the total_failures field.
func ByTotalFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFailures, opts...).ToFunc()
}

// ByLastLatencyMs orders the results by the last_latency_ms field.
func ByLastLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLatencyMs, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByLastSuccessAt orders the results by the last_success_at field.
func ByLastSuccessAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSuccessAt, opts...).ToFunc()
}

// ByLastFailureAt orders the results by the last_failure_at field.
func ByLastFailureAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFailureAt, opts...).ToFunc()
}

// ByCheckpointCursor orders the results by the checkpoint_cursor field.
func ByCheckpointCursor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointCursor, opts...).ToFunc()
}

// ByCheckpointPublishTime orders the results by the checkpoint_publish_time field.
func ByCheckpointPublishTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointPublishTime, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
