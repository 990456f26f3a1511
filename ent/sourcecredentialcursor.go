// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
)

// SourceCredentialCursor is the model entity for the SourceCredentialCursor schema.
type SourceCredentialCursor struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// SourceKey holds the value of the "source_key" field.
	SourceKey string `json:"source_key,omitempty"`
	// NextIndex holds the value of the "next_index" field.
	NextIndex int `json:"next_index,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceCredentialCursor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcecredentialcursor.FieldID, sourcecredentialcursor.FieldNextIndex:
			values[i] = new(sql.NullInt64)
		case sourcecredentialcursor.FieldConnectorName, sourcecredentialcursor.FieldSourceKey:
			values[i] = new(sql.NullString)
		case sourcecredentialcursor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceCredentialCursor fields.
func (_m *SourceCredentialCursor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcecredentialcursor.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sourcecredentialcursor.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case sourcecredentialcursor.FieldSourceKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_key", values[i])
			} else if value.Valid {
				_m.SourceKey = value.String
			}
		case sourcecredentialcursor.FieldNextIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_index", values[i])
			} else if value.Valid {
				_m.NextIndex = int(value.Int64)
			}
		case sourcecredentialcursor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceCredentialCursor.
// This includes values selected through modifiers, order, etc.
func (_m *SourceCredentialCursor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SourceCredentialCursor.
// Note that you need to call SourceCredentialCursor.Unwrap() before calling this method if this SourceCredentialCursor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceCredentialCursor) Update() *SourceCredentialCursorUpdateOne {
	return NewSourceCredentialCursorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceCredentialCursor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceCredentialCursor) Unwrap() *SourceCredentialCursor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceCredentialCursor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceCredentialCursor) String() string {
	var builder strings.Builder
	builder.WriteString("SourceCredentialCursor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
	builder.WriteString(", ")
	builder.WriteString("source_key=")
	builder.WriteString(_m.SourceKey)
	builder.WriteString(", ")
	builder.WriteString("next_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextIndex))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceCredentialCursors is a parsable slice of SourceCredentialCursor.
type SourceCredentialCursors []*SourceCredentialCursor
