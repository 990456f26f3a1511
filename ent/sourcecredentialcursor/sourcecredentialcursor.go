// Code generated by ent, DO NOT EDIT.

package sourcecredentialcursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sourcecredentialcursor type in the database.
	Label = "source_credential_cursor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConnectorName holds the string denoting the connector_name field in the database.
	FieldConnectorName = "connector_name"
	// FieldSourceKey holds the string denoting the source_key field in the database.
	FieldSourceKey = "source_key"
	// FieldNextIndex holds the string denoting the next_index field in the database.
	FieldNextIndex = "next_index"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sourcecredentialcursor in the database.
	Table = "source_credential_cursors"
)

// Columns holds all SQL columns for sourcecredentialcursor fields.
var Columns = []string{
	FieldID,
	FieldConnectorName,
	FieldSourceKey,
	FieldNextIndex,
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
	// DefaultNextIndex holds the default value on creation for the "next_index" field.
	DefaultNextIndex int
	// NextIndexValidator is a validator for the "next_index" field. It is called by the builders before save.
	NextIndexValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SourceCredentialCursor queries.
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

// ByNextIndex orders the results by the next_index field.
func ByNextIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextIndex, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
