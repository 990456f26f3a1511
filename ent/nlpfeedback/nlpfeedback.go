// Code generated by ent, DO NOT EDIT.

package nlpfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the nlpfeedback type in the database.
	Label = "nlp_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldLabeler holds the string denoting the labeler field in the database.
	FieldLabeler = "labeler"
	// FieldLabelEventType holds the string denoting the label_event_type field in the database.
	FieldLabelEventType = "label_event_type"
	// FieldLabelPolarity holds the string denoting the label_polarity field in the database.
	FieldLabelPolarity = "label_polarity"
	// FieldLabelScore holds the string denoting the label_score field in the database.
	FieldLabelScore = "label_score"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the nlpfeedback in the database.
	Table = "nlp_feedback"
)

// Columns holds all SQL columns for nlpfeedback fields.
var Columns = []string{
	FieldID,
	FieldSourceName,
	FieldEventID,
	FieldLabeler,
	FieldLabelEventType,
	FieldLabelPolarity,
	FieldLabelScore,
	FieldComment,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the NLPFeedback queries.
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

// ByLabeler orders the results by the labeler field.
func ByLabeler(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabeler, opts...).ToFunc()
}

// ByLabelEventType orders the results by the label_event_type field.
func ByLabelEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelEventType, opts...).ToFunc()
}

// ByLabelPolarity orders the results by the label_polarity field.
func ByLabelPolarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelPolarity, opts...).ToFunc()
}

// ByLabelScore orders the results by the label_score field.
func ByLabelScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelScore, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
