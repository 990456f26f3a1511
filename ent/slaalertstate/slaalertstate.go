// Code generated by ent, DO NOT EDIT.

package slaalertstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the slaalertstate type in the database.
	Label = "sla_alert_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDedupeKey holds the string denoting the dedupe_key field in the database.
	FieldDedupeKey = "dedupe_key"
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
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldLastEmittedAt holds the string denoting the last_emitted_at field in the database.
	FieldLastEmittedAt = "last_emitted_at"
	// FieldLastRecoveredAt holds the string denoting the last_recovered_at field in the database.
	FieldLastRecoveredAt = "last_recovered_at"
	// FieldLastEscalatedAt holds the string denoting the last_escalated_at field in the database.
	FieldLastEscalatedAt = "last_escalated_at"
	// FieldRepeatCount holds the string denoting the repeat_count field in the database.
	FieldRepeatCount = "repeat_count"
	// FieldEscalationLevel holds the string denoting the escalation_level field in the database.
	FieldEscalationLevel = "escalation_level"
	// FieldEscalationReason holds the string denoting the escalation_reason field in the database.
	FieldEscalationReason = "escalation_reason"
	// FieldIsOpen holds the string denoting the is_open field in the database.
	FieldIsOpen = "is_open"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the slaalertstate in the database.
	Table = "sla_alert_states"
)

// Columns holds all SQL columns for slaalertstate fields.
var Columns = []string{
	FieldID,
	FieldDedupeKey,
	FieldConnectorName,
	FieldSourceName,
	FieldBreachType,
	FieldSeverity,
	FieldStage,
	FieldMessage,
	FieldFirstSeenAt,
	FieldLastSeenAt,
	FieldLastEmittedAt,
	FieldLastRecoveredAt,
	FieldLastEscalatedAt,
	FieldRepeatCount,
	FieldEscalationLevel,
	FieldEscalationReason,
	FieldIsOpen,
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
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
	// DefaultRepeatCount holds the default value on creation for the "repeat_count" field.
	DefaultRepeatCount int
	// RepeatCountValidator is a validator for the "repeat_count" field. It is called by the builders before save.
	RepeatCountValidator func(int) error
	// DefaultEscalationLevel holds the default value on creation for the "escalation_level" field.
	DefaultEscalationLevel int
	// EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	EscalationLevelValidator func(int) error
	// DefaultIsOpen holds the default value on creation for the "is_open" field.
	DefaultIsOpen bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityWarning, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("slaalertstate: invalid enum value for severity field: %q", s)
	}
}

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StageWarning   Stage = "warning"
	StageCritical  Stage = "critical"
	StageEscalated Stage = "escalated"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageWarning, StageCritical, StageEscalated:
		return nil
	default:
		return fmt.Errorf("slaalertstate: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the SLAAlertState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDedupeKey orders the results by the dedupe_key field.
func ByDedupeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeKey, opts...).ToFunc()
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

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByLastEmittedAt orders the results by the last_emitted_at field.
func ByLastEmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEmittedAt, opts...).ToFunc()
}

// ByLastRecoveredAt orders the results by the last_recovered_at field.
func ByLastRecoveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRecoveredAt, opts...).ToFunc()
}

// ByLastEscalatedAt orders the results by the last_escalated_at field.
func ByLastEscalatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEscalatedAt, opts...).ToFunc()
}

// ByRepeatCount orders the results by the repeat_count field.
func ByRepeatCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepeatCount, opts...).ToFunc()
}

// ByEscalationLevel orders the results by the escalation_level field.
func ByEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationLevel, opts...).ToFunc()
}

// ByEscalationReason orders the results by the escalation_reason field.
func ByEscalationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationReason, opts...).ToFunc()
}

// ByIsOpen orders the results by the is_open field.
func ByIsOpen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOpen, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
