// Code generated by ent, DO NOT EDIT.

package slahistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the slahistory type in the database.
	Label = "sla_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldObservedAt holds the string denoting the observed_at field in the database.
	FieldObservedAt = "observed_at"
	// FieldConnectorName holds the string denoting the connector_name field in the database.
	FieldConnectorName = "connector_name"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldBreachType holds the string denoting the breach_type field in the database.
	FieldBreachType = "breach_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldFreshnessMinutes holds the string denoting the freshness_minutes field in the database.
	FieldFreshnessMinutes = "freshness_minutes"
	// FieldPendingFailures holds the string denoting the pending_failures field in the database.
	FieldPendingFailures = "pending_failures"
	// FieldDeadFailures holds the string denoting the dead_failures field in the database.
	FieldDeadFailures = "dead_failures"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// Table holds the table name of the slahistory in the database.
	Table = "sla_history"
)

// Columns holds all SQL columns for slahistory fields.
var Columns = []string{
	FieldID,
	FieldObservedAt,
	FieldConnectorName,
	FieldSourceName,
	FieldBreachType,
	FieldSeverity,
	FieldStage,
	FieldFreshnessMinutes,
	FieldPendingFailures,
	FieldDeadFailures,
	FieldMessage,
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
	// DefaultObservedAt holds the default value on creation for the "observed_at" field.
	DefaultObservedAt func() time.Time
	// DefaultPendingFailures holds the default value on creation for the "pending_failures" field.
	DefaultPendingFailures int
	// DefaultDeadFailures holds the default value on creation for the "dead_failures" field.
	DefaultDeadFailures int
)

// OrderOption defines the ordering options for the SLAHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByObservedAt orders the results by the observed_at field.
func ByObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedAt, opts...).ToFunc()
}

// ByConnectorName orders the results by the connector_name field.
func ByConnectorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorName, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByBreachType orders the results by the breach_type field.
func ByBreachType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreachType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByFreshnessMinutes orders the results by the freshness_minutes field.
func ByFreshnessMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreshnessMinutes, opts...).ToFunc()
}

// ByPendingFailures orders the results by the pending_failures field.
func ByPendingFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingFailures, opts...).ToFunc()
}

// ByDeadFailures orders the results by the dead_failures field.
func ByDeadFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadFailures, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}
