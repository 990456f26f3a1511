// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/connectorrun"
)

// ConnectorRun is the model entity for the ConnectorRun schema.
type ConnectorRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status connectorrun.Status `json:"status,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy string `json:"triggered_by,omitempty"`
	// PulledCount holds the value of the "pulled_count" field.
	PulledCount int `json:"pulled_count,omitempty"`
	// NormalizedCount holds the value of the "normalized_count" field.
	NormalizedCount int `json:"normalized_count,omitempty"`
	// InsertedCount holds the value of the "inserted_count" field.
	InsertedCount int `json:"inserted_count,omitempty"`
	// UpdatedCount holds the value of the "updated_count" field.
	UpdatedCount int `json:"updated_count,omitempty"`
	// FailedCount holds the value of the "failed_count" field.
	FailedCount int `json:"failed_count,omitempty"`
	// ReplayedCount holds the value of the "replayed_count" field.
	ReplayedCount int `json:"replayed_count,omitempty"`
	// CheckpointBefore holds the value of the "checkpoint_before" field.
	CheckpointBefore *string `json:"checkpoint_before,omitempty"`
	// CheckpointAfter holds the value of the "checkpoint_after" field.
	CheckpointAfter *string `json:"checkpoint_after,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// source_attempts, selected_source_key, dry_run flags
	Details      map[string]interface{} `json:"details,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConnectorRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case connectorrun.FieldDetails:
			values[i] = new([]byte)
		case connectorrun.FieldPulledCount, connectorrun.FieldNormalizedCount, connectorrun.FieldInsertedCount, connectorrun.FieldUpdatedCount, connectorrun.FieldFailedCount, connectorrun.FieldReplayedCount:
			values[i] = new(sql.NullInt64)
		case connectorrun.FieldID, connectorrun.FieldConnectorName, connectorrun.FieldSourceName, connectorrun.FieldStatus, connectorrun.FieldTriggeredBy, connectorrun.FieldCheckpointBefore, connectorrun.FieldCheckpointAfter, connectorrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case connectorrun.FieldStartedAt, connectorrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConnectorRun fields.
func (_m *ConnectorRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case connectorrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case connectorrun.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case connectorrun.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case connectorrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case connectorrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case connectorrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = connectorrun.Status(value.String)
			}
		case connectorrun.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case connectorrun.FieldPulledCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pulled_count", values[i])
			} else if value.Valid {
				_m.PulledCount = int(value.Int64)
			}
		case connectorrun.FieldNormalizedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_count", values[i])
			} else if value.Valid {
				_m.NormalizedCount = int(value.Int64)
			}
		case connectorrun.FieldInsertedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inserted_count", values[i])
			} else if value.Valid {
				_m.InsertedCount = int(value.Int64)
			}
		case connectorrun.FieldUpdatedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_count", values[i])
			} else if value.Valid {
				_m.UpdatedCount = int(value.Int64)
			}
		case connectorrun.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case connectorrun.FieldReplayedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field replayed_count", values[i])
			} else if value.Valid {
				_m.ReplayedCount = int(value.Int64)
			}
		case connectorrun.FieldCheckpointBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_before", values[i])
			} else if value.Valid {
				_m.CheckpointBefore = new(string)
				*_m.CheckpointBefore = value.String
			}
		case connectorrun.FieldCheckpointAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_after", values[i])
			} else if value.Valid {
				_m.CheckpointAfter = new(string)
				*_m.CheckpointAfter = value.String
			}
		case connectorrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case connectorrun.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConnectorRun.
// This includes values selected through modifiers, order, etc.
func (_m *ConnectorRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConnectorRun.
// Note that you need to call ConnectorRun.Unwrap() before calling this method if this ConnectorRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConnectorRun) Update() *ConnectorRunUpdateOne {
	return NewConnectorRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConnectorRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConnectorRun) Unwrap() *ConnectorRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConnectorRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConnectorRun) String() string {
	var builder strings.Builder
	builder.WriteString("ConnectorRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("pulled_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PulledCount))
	builder.WriteString(", ")
	builder.WriteString("normalized_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NormalizedCount))
	builder.WriteString(", ")
	builder.WriteString("inserted_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsertedCount))
	builder.WriteString(", ")
	builder.WriteString("updated_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("replayed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplayedCount))
	builder.WriteString(", ")
	if v := _m.CheckpointBefore; v != nil {
		builder.WriteString("checkpoint_before=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CheckpointAfter; v != nil {
		builder.WriteString("checkpoint_after=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteByte(')')
	return builder.String()
}

// ConnectorRuns is a parsable slice of ConnectorRun.
type ConnectorRuns []*ConnectorRun
