// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/eventsource"
)

// EventSource is the model entity for the EventSource schema.
type EventSource struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Logical source identity, referenced by events and connectors
	SourceName string `json:"source_name,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType eventsource.SourceType `json:"source_type,omitempty"`
	// Upstream vendor (e.g. 'tushare', 'akshare', 'eastmoney')
	Provider string `json:"provider,omitempty"`
	// Timezone applied when provider timestamps carry no offset
	Timezone string `json:"timezone,omitempty"`
	// IngestionLagMinutes holds the value of the "ingestion_lag_minutes" field.
	IngestionLagMinutes int `json:"ingestion_lag_minutes,omitempty"`
	// 0..1, multiplied into normalized event scores
	ReliabilityScore float64 `json:"reliability_score,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventsource.FieldReliabilityScore:
			values[i] = new(sql.NullFloat64)
		case eventsource.FieldID, eventsource.FieldIngestionLagMinutes:
			values[i] = new(sql.NullInt64)
		case eventsource.FieldSourceName, eventsource.FieldSourceType, eventsource.FieldProvider, eventsource.FieldTimezone, eventsource.FieldCreatedBy, eventsource.FieldNote:
			values[i] = new(sql.NullString)
		case eventsource.FieldCreatedAt, eventsource.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventSource fields.
func (_m *EventSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventsource.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventsource.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case eventsource.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = eventsource.SourceType(value.String)
			}
		case eventsource.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case eventsource.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case eventsource.FieldIngestionLagMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_lag_minutes", values[i])
			} else if value.Valid {
				_m.IngestionLagMinutes = int(value.Int64)
			}
		case eventsource.FieldReliabilityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reliability_score", values[i])
			} else if value.Valid {
				_m.ReliabilityScore = value.Float64
			}
		case eventsource.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case eventsource.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case eventsource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case eventsource.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EventSource.
// This includes values selected through modifiers, order, etc.
func (_m *EventSource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventSource.
// Note that you need to call EventSource.Unwrap() before calling this method if this EventSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventSource) Update() *EventSourceUpdateOne {
	return NewEventSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventSource) Unwrap() *EventSource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventSource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventSource) String() string {
	var builder strings.Builder
	builder.WriteString("EventSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("ingestion_lag_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngestionLagMinutes))
	builder.WriteString(", ")
	builder.WriteString("reliability_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReliabilityScore))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventSources is a parsable slice of EventSource.
type EventSources []*EventSource
