package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectorFailure holds the schema definition for a dead-letter row.
// Transitions pending -> replayed (success) or pending -> dead (retries
// exhausted); never backward.
type ConnectorFailure struct {
	ent.Schema
}

// Fields of the ConnectorFailure.
func (ConnectorFailure) Fields() []ent.Field {
	return []ent.Field{
		field.String("connector_name"),
		field.String("source_name").
			Optional(),
		field.String("run_id").
			Optional(),
		field.Enum("status").
			Values("pending", "replayed", "dead").
			Default("pending"),
		field.Int("retry_count").
			Default(0).
			NonNegative(),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.Text("last_error").
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("phase, raw_record, event, source_key, error"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConnectorFailure.
func (ConnectorFailure) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: pending rows by next_retry_at, id ASC.
		index.Fields("connector_name", "status", "next_retry_at"),
		index.Fields("status"),
	}
}

// Annotations of the ConnectorFailure.
func (ConnectorFailure) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "connector_failures"},
	}
}
