// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/slahistory"
)

// SLAHistory is the model entity for the SLAHistory schema.
type SLAHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// BreachType holds the value of the "breach_type" field.
	BreachType string `json:"breach_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// FreshnessMinutes holds the value of the "freshness_minutes" field.
	FreshnessMinutes *int `json:"freshness_minutes,omitempty"`
	// PendingFailures holds the value of the "pending_failures" field.
	PendingFailures int `json:"pending_failures,omitempty"`
	// DeadFailures holds the value of the "dead_failures" field.
	DeadFailures int `json:"dead_failures,omitempty"`
	// Message holds the value of the "message" field.
	Message      string `json:"message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SLAHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slahistory.FieldID, slahistory.FieldFreshnessMinutes, slahistory.FieldPendingFailures, slahistory.FieldDeadFailures:
			values[i] = new(sql.NullInt64)
		case slahistory.FieldConnectorName, slahistory.FieldSourceName, slahistory.FieldBreachType, slahistory.FieldSeverity, slahistory.FieldStage, slahistory.FieldMessage:
			values[i] = new(sql.NullString)
		case slahistory.FieldObservedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SLAHistory fields.
func (_m *SLAHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slahistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case slahistory.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		case slahistory.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case slahistory.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case slahistory.FieldBreachType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breach_type", values[i])
			} else if value.Valid {
				_m.BreachType = value.String
			}
		case slahistory.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case slahistory.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case slahistory.FieldFreshnessMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field freshness_minutes", values[i])
			} else if value.Valid {
				_m.FreshnessMinutes = new(int)
				*_m.FreshnessMinutes = int(value.Int64)
			}
		case slahistory.FieldPendingFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pending_failures", values[i])
			} else if value.Valid {
				_m.PendingFailures = int(value.Int64)
			}
		case slahistory.FieldDeadFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dead_failures", values[i])
			} else if value.Valid {
				_m.DeadFailures = int(value.Int64)
			}
		case slahistory.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SLAHistory.
// This includes values selected through modifiers, order, etc.
func (_m *SLAHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SLAHistory.
// Note that you need to call SLAHistory.Unwrap() before calling this method if this SLAHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SLAHistory) Update() *SLAHistoryUpdateOne {
	return NewSLAHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SLAHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SLAHistory) Unwrap() *SLAHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SLAHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SLAHistory) String() string {
	var builder strings.Builder
	builder.WriteString("SLAHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("breach_type=")
	builder.WriteString(_m.BreachType)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	if v := _m.FreshnessMinutes; v != nil {
		builder.WriteString("freshness_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("pending_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingFailures))
	builder.WriteString(", ")
	builder.WriteString("dead_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeadFailures))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteByte(')')
	return builder.String()
}

// SLAHistories is a parsable slice of SLAHistory.
type SLAHistories []*SLAHistory
