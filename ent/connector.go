// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/connector"
)

// Connector is the model entity for the Connector schema.
type Connector struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConnectorName holds the value of the "connector_name" field.
	ConnectorName string `json:"connector_name,omitempty"`
	// Events ingested by this connector attach to this source
	SourceName string `json:"source_name,omitempty"`
	// Default adapter type: file, http_json, tushare_announcement, akshare_announcement
	ConnectorType string `json:"connector_type,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// FetchLimit holds the value of the "fetch_limit" field.
	FetchLimit int `json:"fetch_limit,omitempty"`
	// PollIntervalMinutes holds the value of the "poll_interval_minutes" field.
	PollIntervalMinutes int `json:"poll_interval_minutes,omitempty"`
	// ReplayBackoffSeconds holds the value of the "replay_backoff_seconds" field.
	ReplayBackoffSeconds int `json:"replay_backoff_seconds,omitempty"`
	// MaxRetry holds the value of the "max_retry" field.
	MaxRetry int `json:"max_retry,omitempty"`
	// Config holds the value of the "config" field.
	Config map[string]interface{} `json:"config,omitempty"`
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
func (*Connector) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case connector.FieldConfig:
			values[i] = new([]byte)
		case connector.FieldEnabled:
			values[i] = new(sql.NullBool)
		case connector.FieldID, connector.FieldFetchLimit, connector.FieldPollIntervalMinutes, connector.FieldReplayBackoffSeconds, connector.FieldMaxRetry:
			values[i] = new(sql.NullInt64)
		case connector.FieldConnectorName, connector.FieldSourceName, connector.FieldConnectorType, connector.FieldCreatedBy, connector.FieldNote:
			values[i] = new(sql.NullString)
		case connector.FieldCreatedAt, connector.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Connector fields.
func (_m *Connector) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case connector.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case connector.FieldConnectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_name", values[i])
			} else if value.Valid {
				_m.ConnectorName = value.String
			}
		case connector.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case connector.FieldConnectorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_type", values[i])
			} else if value.Valid {
				_m.ConnectorType = value.String
			}
		case connector.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case connector.FieldFetchLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fetch_limit", values[i])
			} else if value.Valid {
				_m.FetchLimit = int(value.Int64)
			}
		case connector.FieldPollIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field poll_interval_minutes", values[i])
			} else if value.Valid {
				_m.PollIntervalMinutes = int(value.Int64)
			}
		case connector.FieldReplayBackoffSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field replay_backoff_seconds", values[i])
			} else if value.Valid {
				_m.ReplayBackoffSeconds = int(value.Int64)
			}
		case connector.FieldMaxRetry:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retry", values[i])
			} else if value.Valid {
				_m.MaxRetry = int(value.Int64)
			}
		case connector.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case connector.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case connector.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case connector.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case connector.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Connector.
// This includes values selected through modifiers, order, etc.
func (_m *Connector) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Connector.
// Note that you need to call Connector.Unwrap() before calling this method if this Connector
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Connector) Update() *ConnectorUpdateOne {
	return NewConnectorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Connector entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Connector) Unwrap() *Connector {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Connector is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Connector) String() string {
	var builder strings.Builder
	builder.WriteString("Connector(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_name=")
	builder.WriteString(_m.ConnectorName)
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("connector_type=")
	builder.WriteString(_m.ConnectorType)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("fetch_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.FetchLimit))
	builder.WriteString(", ")
	builder.WriteString("poll_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PollIntervalMinutes))
	builder.WriteString(", ")
	builder.WriteString("replay_backoff_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplayBackoffSeconds))
	builder.WriteString(", ")
	builder.WriteString("max_retry=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetry))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
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

// Connectors is a parsable slice of Connector.
type Connectors []*Connector
