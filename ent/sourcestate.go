// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/sourcestate"
)

// SourceState is the model entity for the SourceState schema.
type SourceState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// SourceKey holds the value of the "source_key" field.
	SourceKey string `json:"source_key,omitempty"`
	// ConnectorType holds the value of the "connector_type" field.
	ConnectorType string `json:"connector_type,omitempty"`
	// Lower is preferred
	Priority int `json:"priority,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// 0..100 before staleness penalty
	HealthScore float64 `json:"health_score,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// TotalSuccess holds the value of the "total_success" field.
	TotalSuccess int `json:"total_success,omitempty"`
	// TotalFailures holds the value of the "total_failures" field.
	TotalFailures int `json:"total_failures,omitempty"`
	// LastLatencyMs holds the value of the "last_latency_ms" field.
	LastLatencyMs *int `json:"last_latency_ms,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// LastAttemptAt holds the value of the "last_attempt_at" field.
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	// LastSuccessAt holds the value of the "last_success_at" field.
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	// LastFailureAt holds the value of the "last_failure_at" field.
	LastFailureAt *time.Time `json:"last_failure_at,omitempty"`
	// CheckpointCursor holds the value of the "checkpoint_cursor" field.
	CheckpointCursor *string `json:"checkpoint_cursor,omitempty"`
	// CheckpointPublishTime holds the value of the "checkpoint_publish_time" field.
	CheckpointPublishTime *time.Time `json:"checkpoint_publish_time,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcestate.FieldEnabled, sourcestate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case sourcestate.FieldHealthScore:
			values[i] = new(sql.NullFloat64)
		case sourcestate.FieldID, sourcestate.FieldPriority, sourcestate.FieldConsecutiveFailures, sourcestate.FieldTotalSuccess, sourcestate.FieldTotalFailures, sourcestate.FieldLastLatencyMs:
			values[i] = new(sql.NullInt64)
		case sourcestate.FieldConnectorName, sourcestate.FieldSourceKey, sourcestate.FieldConnectorType, sourcestate.FieldLastError, sourcestate.FieldCheckpointCursor:
			values[i] = new(sql.NullString)
		case sourcestate.FieldLastAttemptAt, sourcestate.FieldLastSuccessAt, sourcestate.FieldLastFailureAt, sourcestate.FieldCheckpointPublishTime, sourcestate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceState fields.
func (_m *SourceState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcestate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sourcestate.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case sourcestate.FieldSourceKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_key", values[i])
			} else if value.Valid {
				_m.SourceKey = value.String
			}
		case sourcestate.FieldConnectorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_type", values[i])
			} else if value.Valid {
				_m.ConnectorType = value.String
			}
		case sourcestate.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case sourcestate.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case sourcestate.FieldHealthScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field health_score", values[i])
			} else if value.Valid {
				_m.HealthScore = value.Float64
			}
		case sourcestate.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case sourcestate.FieldTotalSuccess:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_success", values[i])
			} else if value.Valid {
				_m.TotalSuccess = int(value.Int64)
			}
		case sourcestate.FieldTotalFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_failures", values[i])
			} else if value.Valid {
				_m.TotalFailures = int(value.Int64)
			}
		case sourcestate.FieldLastLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_latency_ms", values[i])
			} else if value.Valid {
				_m.LastLatencyMs = new(int)
				*_m.LastLatencyMs = int(value.Int64)
			}
		case sourcestate.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case sourcestate.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				_m.LastAttemptAt = new(time.Time)
				*_m.LastAttemptAt = value.Time
			}
		case sourcestate.FieldLastSuccessAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_success_at", values[i])
			} else if value.Valid {
				_m.LastSuccessAt = new(time.Time)
				*_m.LastSuccessAt = value.Time
			}
		case sourcestate.FieldLastFailureAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_failure_at", values[i])
			} else if value.Valid {
				_m.LastFailureAt = new(time.Time)
				*_m.LastFailureAt = value.Time
			}
		case sourcestate.FieldCheckpointCursor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_cursor", values[i])
			} else if value.Valid {
				_m.CheckpointCursor = new(string)
				*_m.CheckpointCursor = value.String
			}
		case sourcestate.FieldCheckpointPublishTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_publish_time", values[i])
			} else if value.Valid {
				_m.CheckpointPublishTime = new(time.Time)
				*_m.CheckpointPublishTime = value.Time
			}
		case sourcestate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case sourcestate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SourceState.
// This includes values selected through modifiers, order, etc.
func (_m *SourceState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SourceState.
// Note that you need to call SourceState.Unwrap() before calling this method if this SourceState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceState) Update() *SourceStateUpdateOne {
	return NewSourceStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceState) Unwrap() *SourceState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceState) String() string {
	var builder strings.Builder
	builder.WriteString("SourceState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
	builder.WriteString(", ")
	builder.WriteString("source_key=")
	builder.WriteString(_m.SourceKey)
	builder.WriteString(", ")
	builder.WriteString("connector_type=")
	builder.WriteString(_m.ConnectorType)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("health_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HealthScore))
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("total_success=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSuccess))
	builder.WriteString(", ")
	builder.WriteString("total_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFailures))
	builder.WriteString(", ")
	if v := _m.LastLatencyMs; v != nil {
		builder.WriteString("last_latency_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	if v := _m.LastAttemptAt; v != nil {
		builder.WriteString("last_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSuccessAt; v != nil {
		builder.WriteString("last_success_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastFailureAt; v != nil {
		builder.WriteString("last_failure_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CheckpointCursor; v != nil {
		builder.WriteString("checkpoint_cursor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CheckpointPublishTime; v != nil {
		builder.WriteString("checkpoint_publish_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceStates is a parsable slice of SourceState.
type SourceStates []*SourceState
