// Code generated by ent, DO NOT EDIT.

package eventsource

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventsource type in the database.
	Label = "event_source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldIngestionLagMinutes holds the string denoting the ingestion_lag_minutes field in the database.
	FieldIngestionLagMinutes = "ingestion_lag_minutes"
	// FieldReliabilityScore holds the string denoting the reliability_score field in the database.
	FieldReliabilityScore = "reliability_score"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the eventsource in the database.
	Table = "event_sources"
)

// Columns holds all SQL columns for eventsource fields.
var Columns = []string{
	FieldID,
	FieldSourceName,
	FieldSourceType,
	FieldProvider,
	FieldTimezone,
	FieldIngestionLagMinutes,
	FieldReliabilityScore,
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
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultIngestionLagMinutes holds the default value on creation for the "ingestion_lag_minutes" field.
	DefaultIngestionLagMinutes int
	// IngestionLagMinutesValidator is a validator for the "ingestion_lag_minutes" field. It is called by the builders before save.
	IngestionLagMinutesValidator func(int) error
	// DefaultReliabilityScore holds the default value on creation for the "reliability_score" field.
	DefaultReliabilityScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceTypeAnnouncement is the default value of the SourceType enum.
const DefaultSourceType = SourceTypeAnnouncement

// SourceType values.
const (
	SourceTypeManual       SourceType = "manual"
	SourceTypeAnnouncement SourceType = "announcement"
	SourceTypeNews         SourceType = "news"
	SourceTypeModel        SourceType = "model"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeManual, SourceTypeAnnouncement, SourceTypeNews, SourceTypeModel:
		return nil
	default:
		return fmt.Errorf("eventsource: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the EventSource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByIngestionLagMinutes orders the results by the ingestion_lag_minutes field.
func ByIngestionLagMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestionLagMinutes, opts...).ToFunc()
}

// ByReliabilityScore orders the results by the reliability_score field.
func ByReliabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReliabilityScore, opts...).ToFunc()
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
