// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
)

// ConnectorCheckpoint is the model entity for the ConnectorCheckpoint schema.
type ConnectorCheckpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// CheckpointCursor holds the value of the "checkpoint_cursor" field.
	CheckpointCursor *string `json:"checkpoint_cursor,omitempty"`
	// CheckpointPublishTime holds the value of the "checkpoint_publish_time" field.
	CheckpointPublishTime *time.Time `json:"checkpoint_publish_time,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// Stamped on SUCCESS and PARTIAL runs only
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConnectorCheckpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case connectorcheckpoint.FieldID:
			values[i] = new(sql.NullInt64)
		case connectorcheckpoint.FieldConnectorName, connectorcheckpoint.FieldCheckpointCursor:
			values[i] = new(sql.NullString)
		case connectorcheckpoint.FieldCheckpointPublishTime, connectorcheckpoint.FieldLastRunAt, connectorcheckpoint.FieldLastSuccessAt, connectorcheckpoint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConnectorCheckpoint fields.
func (_m *ConnectorCheckpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case connectorcheckpoint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case connectorcheckpoint.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case connectorcheckpoint.FieldCheckpointCursor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_cursor", values[i])
			} else if value.Valid {
				_m.CheckpointCursor = new(string)
				*_m.CheckpointCursor = value.String
			}
		case connectorcheckpoint.FieldCheckpointPublishTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_publish_time", values[i])
			} else if value.Valid {
				_m.CheckpointPublishTime = new(time.Time)
				*_m.CheckpointPublishTime = value.Time
			}
		case connectorcheckpoint.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case connectorcheckpoint.FieldLastSuccessAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_success_at", values[i])
			} else if value.Valid {
				_m.LastSuccessAt = new(time.Time)
				*_m.LastSuccessAt = value.Time
			}
		case connectorcheckpoint.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ConnectorCheckpoint.
// This includes values selected through modifiers, order, etc.
func (_m *ConnectorCheckpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConnectorCheckpoint.
// Note that you need to call ConnectorCheckpoint.Unwrap() before calling this method if this ConnectorCheckpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConnectorCheckpoint) Update() *ConnectorCheckpointUpdateOne {
	return NewConnectorCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConnectorCheckpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConnectorCheckpoint) Unwrap() *ConnectorCheckpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConnectorCheckpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConnectorCheckpoint) String() string {
	var builder strings.Builder
	builder.WriteString("ConnectorCheckpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
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
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSuccessAt; v != nil {
		builder.WriteString("last_success_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConnectorCheckpoints is a parsable slice of ConnectorCheckpoint.
type ConnectorCheckpoints []*ConnectorCheckpoint
