// Code generated by ent, DO NOT EDIT.

package nlpconsensus

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the nlpconsensus type in the database.
	Label = "nlp_consensus"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldConsensusEventType holds the string denoting the consensus_event_type field in the database.
	FieldConsensusEventType = "consensus_event_type"
	// FieldConsensusPolarity holds the string denoting the consensus_polarity field in the database.
	FieldConsensusPolarity = "consensus_polarity"
	// FieldConsensusScore holds the string denoting the consensus_score field in the database.
	FieldConsensusScore = "consensus_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLabelCount holds the string denoting the label_count field in the database.
	FieldLabelCount = "label_count"
	// FieldConflict holds the string denoting the conflict field in the database.
	FieldConflict = "conflict"
	// FieldConflictReasons holds the string denoting the conflict_reasons field in the database.
	FieldConflictReasons = "conflict_reasons"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the nlpconsensus in the database.
	Table = "nlp_consensus"
)

// Columns holds all SQL columns for nlpconsensus fields.
var Columns = []string{
	FieldID,
	FieldSourceName,
	FieldEventID,
	FieldConsensusEventType,
	FieldConsensusPolarity,
	FieldConsensusScore,
	FieldConfidence,
	FieldLabelCount,
	FieldConflict,
	FieldConflictReasons,
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
	// DefaultConsensusScore holds the default value on creation for the "consensus_score" field.
	DefaultConsensusScore float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultLabelCount holds the default value on creation for the "label_count" field.
	DefaultLabelCount int
	// DefaultConflict holds the default value on creation for the "conflict" field.
	DefaultConflict bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the NLPConsensus queries.
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

// ByConsensusEventType orders the results by the consensus_event_type field.
func ByConsensusEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusEventType, opts...).ToFunc()
}

// ByConsensusPolarity orders the results by the consensus_polarity field.
func ByConsensusPolarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusPolarity, opts...).ToFunc()
}

// ByConsensusScore orders the results by the consensus_score field.
func ByConsensusScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLabelCount orders the results by the label_count field.
func ByLabelCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelCount, opts...).ToFunc()
}

// ByConflict orders the results by the conflict field.
func ByConflict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflict, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
