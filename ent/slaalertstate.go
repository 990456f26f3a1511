// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
)

// SLAAlertState is the model entity for the SLAAlertState schema.
type SLAAlertState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// {connector_name}|{breach_type}
	DedupeKey string `json:"dedupe_key,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// BreachType holds the value of the "breach_type" field.
	BreachType string `json:"breach_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity slaalertstate.Severity `json:"severity,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage slaalertstate.Stage `json:"stage,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// LastEmittedAt holds the value of the "last_emitted_at" field.
	LastEmittedAt *time.Time `json:"last_emitted_at,omitempty"`
	// LastRecoveredAt holds the value of the "last_recovered_at" field.
	LastRecoveredAt *time.Time `json:"last_recovered_at,omitempty"`
	// LastEscalatedAt holds the value of the "last_escalated_at" field.
	LastEscalatedAt *time.Time `json:"last_escalated_at,omitempty"`
	// RepeatCount holds the value of the "repeat_count" field.
	RepeatCount int `json:"repeat_count,omitempty"`
	// EscalationLevel holds the value of the "escalation_level" field.
	EscalationLevel int `json:"escalation_level,omitempty"`
	// EscalationReason holds the value of the "escalation_reason" field.
	EscalationReason string `json:"escalation_reason,omitempty"`
	// IsOpen holds the value of the "is_open" field.
	IsOpen bool `json:"is_open,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SLAAlertState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slaalertstate.FieldIsOpen:
			values[i] = new(sql.NullBool)
		case slaalertstate.FieldID, slaalertstate.FieldRepeatCount, slaalertstate.FieldEscalationLevel:
			values[i] = new(sql.NullInt64)
		case slaalertstate.FieldDedupeKey, slaalertstate.FieldConnectorName, slaalertstate.FieldSourceName, slaalertstate.FieldBreachType, slaalertstate.FieldSeverity, slaalertstate.FieldStage, slaalertstate.FieldMessage, slaalertstate.FieldEscalationReason:
			values[i] = new(sql.NullString)
		case slaalertstate.FieldFirstSeenAt, slaalertstate.FieldLastSeenAt, slaalertstate.FieldLastEmittedAt, slaalertstate.FieldLastRecoveredAt, slaalertstate.FieldLastEscalatedAt, slaalertstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SLAAlertState fields.
func (_m *SLAAlertState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slaalertstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case slaalertstate.FieldDedupeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedupe_key", values[i])
			} else if value.Valid {
				_m.DedupeKey = value.String
			}
		case slaalertstate.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case slaalertstate.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case slaalertstate.FieldBreachType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breach_type", values[i])
			} else if value.Valid {
				_m.BreachType = value.String
			}
		case slaalertstate.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = slaalertstate.Severity(value.String)
			}
		case slaalertstate.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = slaalertstate.Stage(value.String)
			}
		case slaalertstate.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case slaalertstate.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case slaalertstate.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case slaalertstate.FieldLastEmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_emitted_at", values[i])
			} else if value.Valid {
				_m.LastEmittedAt = new(time.Time)
				*_m.LastEmittedAt = value.Time
			}
		case slaalertstate.FieldLastRecoveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_recovered_at", values[i])
			} else if value.Valid {
				_m.LastRecoveredAt = new(time.Time)
				*_m.LastRecoveredAt = value.Time
			}
		case slaalertstate.FieldLastEscalatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_escalated_at", values[i])
			} else if value.Valid {
				_m.LastEscalatedAt = new(time.Time)
				*_m.LastEscalatedAt = value.Time
			}
		case slaalertstate.FieldRepeatCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repeat_count", values[i])
			} else if value.Valid {
				_m.RepeatCount = int(value.Int64)
			}
		case slaalertstate.FieldEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_level", values[i])
			} else if value.Valid {
				_m.EscalationLevel = int(value.Int64)
			}
		case slaalertstate.FieldEscalationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_reason", values[i])
			} else if value.Valid {
				_m.EscalationReason = value.String
			}
		case slaalertstate.FieldIsOpen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_open", values[i])
			} else if value.Valid {
				_m.IsOpen = value.Bool
			}
		case slaalertstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SLAAlertState.
// This includes values selected through modifiers, order, etc.
func (_m *SLAAlertState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SLAAlertState.
// Note that you need to call SLAAlertState.Unwrap() before calling this method if this SLAAlertState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SLAAlertState) Update() *SLAAlertStateUpdateOne {
	return NewSLAAlertStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SLAAlertState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SLAAlertState) Unwrap() *SLAAlertState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SLAAlertState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SLAAlertState) String() string {
	var builder strings.Builder
	builder.WriteString("SLAAlertState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dedupe_key=")
	builder.WriteString(_m.DedupeKey)
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
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastEmittedAt; v != nil {
		builder.WriteString("last_emitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastRecoveredAt; v != nil {
		builder.WriteString("last_recovered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastEscalatedAt; v != nil {
		builder.WriteString("last_escalated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("repeat_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepeatCount))
	builder.WriteString(", ")
	builder.WriteString("escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationLevel))
	builder.WriteString(", ")
	builder.WriteString("escalation_reason=")
	builder.WriteString(_m.EscalationReason)
	builder.WriteString(", ")
	builder.WriteString("is_open=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOpen))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SLAAlertStates is a parsable slice of SLAAlertState.
type SLAAlertStates []*SLAAlertState
