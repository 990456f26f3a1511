// Code generated by ent, DO NOT EDIT.

package connector

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the connector type in the database.
	Label = "connector"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConnectorName holds the string denoting the connector_name field in the database.
	FieldConnectorName = "connector_name"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldConnectorType holds the string denoting the connector_type field in the database.
	FieldConnectorType = "connector_type"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldFetchLimit holds the string denoting the fetch_limit field in the database.
	FieldFetchLimit = "fetch_limit"
	// FieldPollIntervalMinutes holds the string denoting the poll_interval_minutes field in the database.
	FieldPollIntervalMinutes = "poll_interval_minutes"
	// FieldReplayBackoffSeconds holds the string denoting the replay_backoff_seconds field in the database.
	FieldReplayBackoffSeconds = "replay_backoff_seconds"
	// FieldMaxRetry holds the string denoting the max_retry field in the database.
	FieldMaxRetry = "max_retry"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the connector in the database.
	Table = "connectors"
)

// Columns holds all SQL columns for connector fields.
var Columns = []string{
	FieldID,
	FieldConnectorName,
	FieldSourceName,
	FieldConnectorType,
	FieldEnabled,
	FieldFetchLimit,
	FieldPollIntervalMinutes,
	FieldReplayBackoffSeconds,
	FieldMaxRetry,
	FieldConfig,
	FieldCreatedBy,
	FieldNote,
	FieldCreatedAt,
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
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultFetchLimit holds the default value on creation for the "fetch_limit" field.
	DefaultFetchLimit int
	// FetchLimitValidator is a validator for the "fetch_limit" field. It is called by the builders before save.
	FetchLimitValidator func(int) error
	// DefaultPollIntervalMinutes holds the default value on creation for the "poll_interval_minutes" field.
	DefaultPollIntervalMinutes int
	// PollIntervalMinutesValidator is a validator for the "poll_interval_minutes" field. It is called by the builders before save.
	PollIntervalMinutesValidator func(int) error
	// DefaultReplayBackoffSeconds holds the default value on creation for the "replay_backoff_seconds" field.
	DefaultReplayBackoffSeconds int
	// ReplayBackoffSecondsValidator is a validator for the "replay_backoff_seconds" field. It is called by the builders before save.
	ReplayBackoffSecondsValidator func(int) error
	// DefaultMaxRetry holds the default value on creation for the "max_retry" field.
	DefaultMaxRetry int
	// MaxRetryValidator is a validator for the "max_retry" field. It is called by the builders before save.
	MaxRetryValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Connector queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConnectorName orders the results by the connector_name field.
func ByConnectorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorName, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByConnectorType orders the results by the connector_type field.
func ByConnectorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorType, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByFetchLimit orders the results by the fetch_limit field.
func ByFetchLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchLimit, opts...).ToFunc()
}

// ByPollIntervalMinutes orders the results by the poll_interval_minutes field.
func ByPollIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPollIntervalMinutes, opts...).ToFunc()
}

// ByReplayBackoffSeconds orders the results by the replay_backoff_seconds field.
func ByReplayBackoffSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayBackoffSeconds, opts...).ToFunc()
}

// ByMaxRetry orders the results by the max_retry field.
func ByMaxRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetry, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
