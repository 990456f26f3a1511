// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
)

// SourceBudget is the model entity for the SourceBudget schema.
type SourceBudget struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// SourceKey holds the value of the "source_key" field.
	SourceKey string `json:"source_key,omitempty"`
	// UTC hour bucket, e.g. 2026-08-25T07
	WindowHour string `json:"window_hour,omitempty"`
	// RequestCount holds the value of the "request_count" field.
	RequestCount int `json:"request_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceBudget) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcebudget.FieldID, sourcebudget.FieldRequestCount:
			values[i] = new(sql.NullInt64)
		case sourcebudget.FieldConnectorName, sourcebudget.FieldSourceKey, sourcebudget.FieldWindowHour:
			values[i] = new(sql.NullString)
		case sourcebudget.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceBudget fields.
func (_m *SourceBudget) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcebudget.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sourcebudget.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case sourcebudget.FieldSourceKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_key", values[i])
			} else if value.Valid {
				_m.SourceKey = value.String
			}
		case sourcebudget.FieldWindowHour:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_hour", values[i])
			} else if value.Valid {
				_m.WindowHour = value.String
			}
		case sourcebudget.FieldRequestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_count", values[i])
			} else if value.Valid {
				_m.RequestCount = int(value.Int64)
			}
		case sourcebudget.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SourceBudget.
// This includes values selected through modifiers, order, etc.
func (_m *SourceBudget) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SourceBudget.
// Note that you need to call SourceBudget.Unwrap() before calling this method if this SourceBudget
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceBudget) Update() *SourceBudgetUpdateOne {
	return NewSourceBudgetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceBudget entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceBudget) Unwrap() *SourceBudget {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceBudget is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceBudget) String() string {
	var builder strings.Builder
	builder.WriteString("SourceBudget(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
	builder.WriteString(", ")
	builder.WriteString("source_key=")
	builder.WriteString(_m.SourceKey)
	builder.WriteString(", ")
	builder.WriteString("window_hour=")
	builder.WriteString(_m.WindowHour)
	builder.WriteString(", ")
	builder.WriteString("request_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceBudgets is a parsable slice of SourceBudget.
type SourceBudgets []*SourceBudget
