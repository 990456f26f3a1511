// Code generated by ent, DO NOT EDIT.

package connectorrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the connectorrun type in the database.
	Label = "connector_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldConnectorName holds the string denoting the connector_name field in the database.
	FieldConnectorName = "connector_name"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldPulledCount holds the string denoting the pulled_count field in the database.
	FieldPulledCount = "pulled_count"
	// FieldNormalizedCount holds the string denoting the normalized_count field in the database.
	FieldNormalizedCount = "normalized_count"
	// FieldInsertedCount holds the string denoting the inserted_count field in the database.
	FieldInsertedCount = "inserted_count"
	// FieldUpdatedCount holds the string denoting the updated_count field in the database.
	FieldUpdatedCount = "updated_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldReplayedCount holds the string denoting the replayed_count field in the database.
	FieldReplayedCount = "replayed_count"
	// FieldCheckpointBefore holds the string denoting the checkpoint_before field in the database.
	FieldCheckpointBefore = "checkpoint_before"
	// FieldCheckpointAfter holds the string denoting the checkpoint_after field in the database.
	FieldCheckpointAfter = "checkpoint_after"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// Table holds the table name of the connectorrun in the database.
	Table = "connector_runs"
)

// Columns holds all SQL columns for connectorrun fields.
var Columns = []string{
	FieldID,
	FieldConnectorName,
	FieldSourceName,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldTriggeredBy,
	FieldPulledCount,
	FieldNormalizedCount,
	FieldInsertedCount,
	FieldUpdatedCount,
	FieldFailedCount,
	FieldReplayedCount,
	FieldCheckpointBefore,
	FieldCheckpointAfter,
	FieldErrorMessage,
	FieldDetails,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultPulledCount holds the default value on creation for the "pulled_count" field.
	DefaultPulledCount int
	// DefaultNormalizedCount holds the default value on creation for the "normalized_count" field.
	DefaultNormalizedCount int
	// DefaultInsertedCount holds the default value on creation for the "inserted_count" field.
	DefaultInsertedCount int
	// DefaultUpdatedCount holds the default value on creation for the "updated_count" field.
	DefaultUpdatedCount int
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// DefaultReplayedCount holds the default value on creation for the "replayed_count" field.
	DefaultReplayedCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
	StatusDryRun  Status = "dry_run"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusSuccess, StatusPartial, StatusFailed, StatusDryRun:
		return nil
	default:
		return fmt.Errorf("connectorrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ConnectorRun queries.
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

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByPulledCount orders the results by the pulled_count field.
func ByPulledCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPulledCount, opts...).ToFunc()
}

// ByNormalizedCount orders the results by the normalized_count field.
func ByNormalizedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedCount, opts...).ToFunc()
}

// ByInsertedCount orders the results by the inserted_count field.
func ByInsertedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsertedCount, opts...).ToFunc()
}

// ByUpdatedCount orders the results by the updated_count field.
func ByUpdatedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// ByReplayedCount orders the results by the replayed_count field.
func ByReplayedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayedCount, opts...).ToFunc()
}

// ByCheckpointBefore orders the results by the checkpoint_before field.
func ByCheckpointBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointBefore, opts...).ToFunc()
}

// ByCheckpointAfter orders the results by the checkpoint_after field.
func ByCheckpointAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointAfter, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
