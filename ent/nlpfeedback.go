// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/nlpfeedback"
)

// NLPFeedback is the model entity for the NLPFeedback schema.
type NLPFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// Labeler holds the value of the "labeler" field.
	Labeler string `json:"labeler,omitempty"`
	// LabelEventType holds the value of the "label_event_type" field.
	LabelEventType string `json:"label_event_type,omitempty"`
	// positive, negative or neutral
	LabelPolarity string `json:"label_polarity,omitempty"`
	// LabelScore holds the value of the "label_score" field.
	LabelScore *float64 `json:"label_score,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NLPFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nlpfeedback.FieldLabelScore:
			values[i] = new(sql.NullFloat64)
		case nlpfeedback.FieldID:
			values[i] = new(sql.NullInt64)
		case nlpfeedback.FieldSourceName, nlpfeedback.FieldEventID, nlpfeedback.FieldLabeler, nlpfeedback.FieldLabelEventType, nlpfeedback.FieldLabelPolarity, nlpfeedback.FieldComment:
			values[i] = new(sql.NullString)
		case nlpfeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NLPFeedback fields.
func (_m *NLPFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nlpfeedback.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case nlpfeedback.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case nlpfeedback.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case nlpfeedback.FieldLabeler:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field labeler", values[i])
			} else if value.Valid {
				_m.Labeler = value.String
			}
		case nlpfeedback.FieldLabelEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_event_type", values[i])
			} else if value.Valid {
				_m.LabelEventType = value.String
			}
		case nlpfeedback.FieldLabelPolarity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_polarity", values[i])
			} else if value.Valid {
				_m.LabelPolarity = value.String
			}
		case nlpfeedback.FieldLabelScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field label_score", values[i])
			} else if value.Valid {
				_m.LabelScore = new(float64)
				*_m.LabelScore = value.Float64
			}
		case nlpfeedback.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case nlpfeedback.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NLPFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *NLPFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NLPFeedback.
// Note that you need to call NLPFeedback.Unwrap() before calling this method if this NLPFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NLPFeedback) Update() *NLPFeedbackUpdateOne {
	return NewNLPFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NLPFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NLPFeedback) Unwrap() *NLPFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NLPFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NLPFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("NLPFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("labeler=")
	builder.WriteString(_m.Labeler)
	builder.WriteString(", ")
	builder.WriteString("label_event_type=")
	builder.WriteString(_m.LabelEventType)
	builder.WriteString(", ")
	builder.WriteString("label_polarity=")
	builder.WriteString(_m.LabelPolarity)
	builder.WriteString(", ")
	if v := _m.LabelScore; v != nil {
		builder.WriteString("label_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NLPFeedbacks is a parsable slice of NLPFeedback.
type NLPFeedbacks []*NLPFeedback
