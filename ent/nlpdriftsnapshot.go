// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/pkg/models"
)

// NLPDriftSnapshot is the model entity for the NLPDriftSnapshot schema.
type NLPDriftSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// RulesetVersion holds the value of the "ruleset_version" field.
	RulesetVersion string `json:"ruleset_version,omitempty"`
	// YYYY-MM-DD..YYYY-MM-DD, local dates
	CurrentWindow string `json:"current_window,omitempty"`
	// BaselineWindow holds the value of the "baseline_window" field.
	BaselineWindow string `json:"baseline_window,omitempty"`
	// SampleSize holds the value of the "sample_size" field.
	SampleSize int `json:"sample_size,omitempty"`
	// BaselineSampleSize holds the value of the "baseline_sample_size" field.
	BaselineSampleSize int `json:"baseline_sample_size,omitempty"`
	// CurrentMetrics holds the value of the "current_metrics" field.
	CurrentMetrics map[string]interface{} `json:"current_metrics,omitempty"`
	// BaselineMetrics holds the value of the "baseline_metrics" field.
	BaselineMetrics map[string]interface{} `json:"baseline_metrics,omitempty"`
	// HitRateDelta holds the value of the "hit_rate_delta" field.
	HitRateDelta float64 `json:"hit_rate_delta,omitempty"`
	// ScoreP50Delta holds the value of the "score_p50_delta" field.
	ScoreP50Delta float64 `json:"score_p50_delta,omitempty"`
	// ContributionDelta holds the value of the "contribution_delta" field.
	ContributionDelta *float64 `json:"contribution_delta,omitempty"`
	// FeedbackPolarityAccuracyDelta holds the value of the "feedback_polarity_accuracy_delta" field.
	FeedbackPolarityAccuracyDelta *float64 `json:"feedback_polarity_accuracy_delta,omitempty"`
	// FeedbackEventTypeAccuracyDelta holds the value of the "feedback_event_type_accuracy_delta" field.
	FeedbackEventTypeAccuracyDelta *float64 `json:"feedback_event_type_accuracy_delta,omitempty"`
	// Alerts holds the value of the "alerts" field.
	Alerts []models.DriftAlert `json:"alerts,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NLPDriftSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nlpdriftsnapshot.FieldCurrentMetrics, nlpdriftsnapshot.FieldBaselineMetrics, nlpdriftsnapshot.FieldAlerts, nlpdriftsnapshot.FieldPayload:
			values[i] = new([]byte)
		case nlpdriftsnapshot.FieldHitRateDelta, nlpdriftsnapshot.FieldScoreP50Delta, nlpdriftsnapshot.FieldContributionDelta, nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta, nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
			values[i] = new(sql.NullFloat64)
		case nlpdriftsnapshot.FieldID, nlpdriftsnapshot.FieldSampleSize, nlpdriftsnapshot.FieldBaselineSampleSize:
			values[i] = new(sql.NullInt64)
		case nlpdriftsnapshot.FieldSourceName, nlpdriftsnapshot.FieldRulesetVersion, nlpdriftsnapshot.FieldCurrentWindow, nlpdriftsnapshot.FieldBaselineWindow:
			values[i] = new(sql.NullString)
		case nlpdriftsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NLPDriftSnapshot fields.
func (_m *NLPDriftSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nlpdriftsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case nlpdriftsnapshot.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case nlpdriftsnapshot.FieldRulesetVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ruleset_version", values[i])
			} else if value.Valid {
				_m.RulesetVersion = value.String
			}
		case nlpdriftsnapshot.FieldCurrentWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_window", values[i])
			} else if value.Valid {
				_m.CurrentWindow = value.String
			}
		case nlpdriftsnapshot.FieldBaselineWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_window", values[i])
			} else if value.Valid {
				_m.BaselineWindow = value.String
			}
		case nlpdriftsnapshot.FieldSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_size", values[i])
			} else if value.Valid {
				_m.SampleSize = int(value.Int64)
			}
		case nlpdriftsnapshot.FieldBaselineSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_sample_size", values[i])
			} else if value.Valid {
				_m.BaselineSampleSize = int(value.Int64)
			}
		case nlpdriftsnapshot.FieldCurrentMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentMetrics); err != nil {
					return fmt.Errorf("unmarshal field current_metrics: %w", err)
				}
			}
		case nlpdriftsnapshot.FieldBaselineMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BaselineMetrics); err != nil {
					return fmt.Errorf("unmarshal field baseline_metrics: %w", err)
				}
			}
		case nlpdriftsnapshot.FieldHitRateDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hit_rate_delta", values[i])
			} else if value.Valid {
				_m.HitRateDelta = value.Float64
			}
		case nlpdriftsnapshot.FieldScoreP50Delta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_p50_delta", values[i])
			} else if value.Valid {
				_m.ScoreP50Delta = value.Float64
			}
		case nlpdriftsnapshot.FieldContributionDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field contribution_delta", values[i])
			} else if value.Valid {
				_m.ContributionDelta = new(float64)
				*_m.ContributionDelta = value.Float64
			}
		case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_polarity_accuracy_delta", values[i])
			} else if value.Valid {
				_m.FeedbackPolarityAccuracyDelta = new(float64)
				*_m.FeedbackPolarityAccuracyDelta = value.Float64
			}
		case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_event_type_accuracy_delta", values[i])
			} else if value.Valid {
				_m.FeedbackEventTypeAccuracyDelta = new(float64)
				*_m.FeedbackEventTypeAccuracyDelta = value.Float64
			}
		case nlpdriftsnapshot.FieldAlerts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alerts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Alerts); err != nil {
					return fmt.Errorf("unmarshal field alerts: %w", err)
				}
			}
		case nlpdriftsnapshot.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case nlpdriftsnapshot.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the NLPDriftSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *NLPDriftSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NLPDriftSnapshot.
// Note that you need to call NLPDriftSnapshot.Unwrap() before calling this method if this NLPDriftSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NLPDriftSnapshot) Update() *NLPDriftSnapshotUpdateOne {
	return NewNLPDriftSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NLPDriftSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NLPDriftSnapshot) Unwrap() *NLPDriftSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NLPDriftSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NLPDriftSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("NLPDriftSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("ruleset_version=")
	builder.WriteString(_m.RulesetVersion)
	builder.WriteString(", ")
	builder.WriteString("current_window=")
	builder.WriteString(_m.CurrentWindow)
	builder.WriteString(", ")
	builder.WriteString("baseline_window=")
	builder.WriteString(_m.BaselineWindow)
	builder.WriteString(", ")
	builder.WriteString("sample_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleSize))
	builder.WriteString(", ")
	builder.WriteString("baseline_sample_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineSampleSize))
	builder.WriteString(", ")
	builder.WriteString("current_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentMetrics))
	builder.WriteString(", ")
	builder.WriteString("baseline_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineMetrics))
	builder.WriteString(", ")
	builder.WriteString("hit_rate_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.HitRateDelta))
	builder.WriteString(", ")
	builder.WriteString("score_p50_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreP50Delta))
	builder.WriteString(", ")
	if v := _m.ContributionDelta; v != nil {
		builder.WriteString("contribution_delta=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FeedbackPolarityAccuracyDelta; v != nil {
		builder.WriteString("feedback_polarity_accuracy_delta=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FeedbackEventTypeAccuracyDelta; v != nil {
		builder.WriteString("feedback_event_type_accuracy_delta=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("alerts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Alerts))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NLPDriftSnapshots is a parsable slice of NLPDriftSnapshot.
type NLPDriftSnapshots []*NLPDriftSnapshot
