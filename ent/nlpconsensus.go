// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
)

// NLPConsensus is the model entity for the NLPConsensus schema.
type NLPConsensus struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// ConsensusEventType holds the value of the "consensus_event_type" field.
	ConsensusEventType string `json:"consensus_event_type,omitempty"`
	// ConsensusPolarity holds the value of the "consensus_polarity" field.
	ConsensusPolarity string `json:"consensus_polarity,omitempty"`
	// ConsensusScore holds the value of the "consensus_score" field.
	ConsensusScore float64 `json:"consensus_score,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// LabelCount holds the value of the "label_count" field.
	LabelCount int `json:"label_count,omitempty"`
	// Conflict holds the value of the "conflict" field.
	Conflict bool `json:"conflict,omitempty"`
	// ConflictReasons holds the value of the "conflict_reasons" field.
	ConflictReasons []string `json:"conflict_reasons,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NLPConsensus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nlpconsensus.FieldConflictReasons:
			values[i] = new([]byte)
		case nlpconsensus.FieldConflict:
			values[i] = new(sql.NullBool)
		case nlpconsensus.FieldConsensusScore, nlpconsensus.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case nlpconsensus.FieldID, nlpconsensus.FieldLabelCount:
			values[i] = new(sql.NullInt64)
		case nlpconsensus.FieldSourceName, nlpconsensus.FieldEventID, nlpconsensus.FieldConsensusEventType, nlpconsensus.FieldConsensusPolarity:
			values[i] = new(sql.NullString)
		case nlpconsensus.FieldCreatedAt, nlpconsensus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NLPConsensus fields.
func (_m *NLPConsensus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nlpconsensus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case nlpconsensus.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case nlpconsensus.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case nlpconsensus.FieldConsensusEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_event_type", values[i])
			} else if value.Valid {
				_m.ConsensusEventType = value.String
			}
		case nlpconsensus.FieldConsensusPolarity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_polarity", values[i])
			} else if value.Valid {
				_m.ConsensusPolarity = value.String
			}
		case nlpconsensus.FieldConsensusScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_score", values[i])
			} else if value.Valid {
				_m.ConsensusScore = value.Float64
			}
		case nlpconsensus.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case nlpconsensus.FieldLabelCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field label_count", values[i])
			} else if value.Valid {
				_m.LabelCount = int(value.Int64)
			}
		case nlpconsensus.FieldConflict:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conflict", values[i])
			} else if value.Valid {
				_m.Conflict = value.Bool
			}
		case nlpconsensus.FieldConflictReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConflictReasons); err != nil {
					return fmt.Errorf("unmarshal field conflict_reasons: %w", err)
				}
			}
		case nlpconsensus.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case nlpconsensus.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the NLPConsensus.
// This includes values selected through modifiers, order, etc.
func (_m *NLPConsensus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NLPConsensus.
// Note that you need to call NLPConsensus.Unwrap() before calling this method if this NLPConsensus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NLPConsensus) Update() *NLPConsensusUpdateOne {
	return NewNLPConsensusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NLPConsensus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NLPConsensus) Unwrap() *NLPConsensus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NLPConsensus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NLPConsensus) String() string {
	var builder strings.Builder
	builder.WriteString("NLPConsensus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("consensus_event_type=")
	builder.WriteString(_m.ConsensusEventType)
	builder.WriteString(", ")
	builder.WriteString("consensus_polarity=")
	builder.WriteString(_m.ConsensusPolarity)
	builder.WriteString(", ")
	builder.WriteString("consensus_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsensusScore))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("label_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabelCount))
	builder.WriteString(", ")
	builder.WriteString("conflict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conflict))
	builder.WriteString(", ")
	builder.WriteString("conflict_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictReasons))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NLPConsensusSlice is a parsable slice of NLPConsensus.
type NLPConsensusSlice []*NLPConsensus
