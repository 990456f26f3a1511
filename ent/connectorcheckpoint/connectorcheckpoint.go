// Code generated by ent, DO NOT EDIT.

package connectorcheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the connectorcheckpoint type in the database.
	Label = "connector_checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConnectorName holds the string denoting the connector_name field in the database.
	FieldConnectorName = "connector_name"
	// FieldCheckpointCursor holds the string denoting the checkpoint_cursor field in the database.
	FieldCheckpointCursor = "checkpoint_cursor"
	// FieldCheckpointPublishTime holds the string denoting the checkpoint_publish_time field in the database.
	FieldCheckpointPublishTime = "checkpoint_publish_time"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldLastSuccessAt holds the string denoting the last_success_at field in the database.
	FieldLastSuccessAt = "last_success_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the connectorcheckpoint in the database.
	Table = "connector_checkpoints"
)

// Columns holds all SQL columns for connectorcheckpoint fields.
var Columns = []string{
	FieldID,
	FieldConnectorName,
	FieldCheckpointCursor,
	FieldCheckpointPublishTime,
	FieldLastRunAt,
	FieldLastSuccessAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ConnectorCheckpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConnectorName orders the results by the connector_name field.
func ByConnectorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorName, opts...).ToFunc()
}

// ByCheckpointCursor orders the results by the checkpoint_cursor field.
func ByCheckpointCursor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointCursor, opts...).ToFunc()
}

// ByCheckpointPublishTime orders the results by the checkpoint_publish_time field.
func ByCheckpointPublishTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointPublishTime, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByLastSuccessAt orders the results by the last_success_at field.
func ByLastSuccessAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSuccessAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
