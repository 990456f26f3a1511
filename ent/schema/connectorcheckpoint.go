package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ConnectorCheckpoint holds the per-connector high-water mark.
// Advanced only by non-dry runs, in the same transaction as the batch ingest.
type ConnectorCheckpoint struct {
	ent.Schema
}

// Fields of the ConnectorCheckpoint.
func (ConnectorCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("connector_name").
			Unique(),
		field.String("checkpoint_cursor").
			Optional().
			Nillable(),
		field.Time("checkpoint_publish_time").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("last_success_at").
			Optional().
			Nillable().
			Comment("Stamped on SUCCESS and PARTIAL runs only"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the ConnectorCheckpoint.
func (ConnectorCheckpoint) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "connector_checkpoints"},
	}
}
