package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SLAAlertState holds the current alert state machine row per
// (connector, breach_type) dedupe key. Opened on first breach, closed
// exactly when the breach no longer appears in an evaluation.
type SLAAlertState struct {
	ent.Schema
}

// Fields of the SLAAlertState.
func (SLAAlertState) Fields() []ent.Field {
	return []ent.Field{
		field.String("dedupe_key").
			Unique().
			Comment("{connector_name}|{breach_type}"),
		field.String("connector_name"),
		field.String("source_name").
			Optional(),
		field.String("breach_type"),
		field.Enum("severity").
			Values("warning", "critical"),
		field.Enum("stage").
			Values("warning", "critical", "escalated"),
		field.Text("message"),
		field.Time("first_seen_at").
			Default(time.Now),
		field.Time("last_seen_at").
			Default(time.Now),
		field.Time("last_emitted_at").
			Optional().
			Nillable(),
		field.Time("last_recovered_at").
			Optional().
			Nillable(),
		field.Time("last_escalated_at").
			Optional().
			Nillable(),
		field.Int("repeat_count").
			Default(1).
			Positive(),
		field.Int("escalation_level").
			Default(0).
			Range(0, 3),
		field.String("escalation_reason").
			Optional(),
		field.Bool("is_open").
			Default(true),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SLAAlertState.
func (SLAAlertState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_open"),
		index.Fields("connector_name"),
	}
}

// Annotations of the SLAAlertState.
func (SLAAlertState) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sla_alert_states"},
	}
}
