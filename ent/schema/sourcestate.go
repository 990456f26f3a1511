package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceState holds health and checkpoint state for one source-matrix
// candidate of a connector. At most one row per connector is active at rest.
type SourceState struct {
	ent.Schema
}

// Fields of the SourceState.
func (SourceState) Fields() []ent.Field {
	return []ent.Field{
		field.String("connector_name"),
		field.String("source_key"),
		field.String("connector_type"),
		field.Int("priority").
			Default(100).
			Comment("Lower is preferred"),
		field.Bool("enabled").
			Default(true),
		field.Float("health_score").
			Default(80).
			Comment("0..100 before staleness penalty"),
		field.Int("consecutive_failures").
			Default(0),
		field.Int("total_success").
			Default(0),
		field.Int("total_failures").
			Default(0),
		field.Int("last_latency_ms").
			Optional().
			Nillable(),
		field.Text("last_error").
			Optional(),
		field.Time("last_attempt_at").
			Optional().
			Nillable(),
		field.Time("last_success_at").
			Optional().
			Nillable(),
		field.Time("last_failure_at").
			Optional().
			Nillable(),
		field.String("checkpoint_cursor").
			Optional().
			Nillable(),
		field.Time("checkpoint_publish_time").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SourceState.
func (SourceState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_name", "source_key").
			Unique(),
		index.Fields("connector_name", "is_active"),
	}
}

// Annotations of the SourceState.
func (SourceState) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_states"},
	}
}
