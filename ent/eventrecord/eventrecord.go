// Code generated by ent, DO NOT EDIT.

package eventrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventrecord type in the database.
	Label = "event_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldSymbol holds the string denoting the symbol field in the database.
	FieldSymbol = "symbol"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPublishTime holds the string denoting the publish_time field in the database.
	FieldPublishTime = "publish_time"
	// FieldEffectiveTime holds the string denoting the effective_time field in the database.
	FieldEffectiveTime = "effective_time"
	// FieldPolarity holds the string denoting the polarity field in the database.
	FieldPolarity = "polarity"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldRawRef holds the string denoting the raw_ref field in the database.
	FieldRawRef = "raw_ref"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the eventrecord in the database.
	Table = "event_records"
)

// Columns holds all SQL columns for eventrecord fields.
var Columns = []string{
	FieldID,
	FieldSourceName,
	FieldEventID,
	FieldSymbol,
	FieldEventType,
	FieldPublishTime,
	FieldEffectiveTime,
	FieldPolarity,
	FieldScore,
	FieldConfidence,
	FieldTitle,
	FieldSummary,
	FieldRawRef,
	FieldTags,
	FieldMetadata,
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
	// DefaultEventType holds the default value on creation for the "event_type" field.
	DefaultEventType string
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Polarity defines the type for the "polarity" enum field.
type Polarity string

// PolarityNeutral is the default value of the Polarity enum.
const DefaultPolarity = PolarityNeutral

// Polarity values.
const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

func (po Polarity) String() string {
	return string(po)
}

// PolarityValidator is a validator for the "polarity" field enum values. It is called by the builders before save.
func PolarityValidator(po Polarity) error {
	switch po {
	case PolarityPositive, PolarityNegative, PolarityNeutral:
		return nil
	default:
		return fmt.Errorf("eventrecord: invalid enum value for polarity field: %q", po)
	}
}

// OrderOption defines the ordering options for the EventRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// BySymbol orders the results by the symbol field.
func BySymbol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymbol, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByPublishTime orders the results by the publish_time field.
func ByPublishTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishTime, opts...).ToFunc()
}

// ByEffectiveTime orders the results by the effective_time field.
func ByEffectiveTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveTime, opts...).ToFunc()
}

// ByPolarity orders the results by the polarity field.
func ByPolarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolarity, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByRawRef orders the results by the raw_ref field.
func ByRawRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
