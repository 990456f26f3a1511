package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SLAHistory is the append-only log of SLA observations.
type SLAHistory struct {
	ent.Schema
}

// Fields of the SLAHistory.
func (SLAHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Time("observed_at").
			Default(time.Now).
			Immutable(),
		field.String("connector_name").
			Immutable(),
		field.String("source_name").
			Optional().
			Immutable(),
		field.String("breach_type").
			Immutable(),
		field.String("severity").
			Immutable(),
		field.String("stage").
			Immutable(),
		field.Int("freshness_minutes").
			Optional().
			Nillable().
			Immutable(),
		field.Int("pending_failures").
			Default(0).
			Immutable(),
		field.Int("dead_failures").
			Default(0).
			Immutable(),
		field.Text("message").
			Optional().
			Immutable(),
	}
}

// Indexes of the SLAHistory.
func (SLAHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_name", "observed_at"),
	}
}

// Annotations of the SLAHistory.
func (SLAHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sla_history"},
	}
}
