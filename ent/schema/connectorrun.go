package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectorRun holds the schema definition for one connector execution.
// Created RUNNING at run start, finalized exactly once; never deleted by
// the core (retention pruning is a separate, age-based concern).
type ConnectorRun struct {
	ent.Schema
}

// Fields of the ConnectorRun.
func (ConnectorRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("connector_name").
			Immutable(),
		field.String("source_name").
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("running", "success", "partial", "failed", "dry_run").
			Default("running"),
		field.String("triggered_by").
			Optional(),
		field.Int("pulled_count").
			Default(0),
		field.Int("normalized_count").
			Default(0),
		field.Int("inserted_count").
			Default(0),
		field.Int("updated_count").
			Default(0),
		field.Int("failed_count").
			Default(0),
		field.Int("replayed_count").
			Default(0),
		field.String("checkpoint_before").
			Optional().
			Nillable(),
		field.String("checkpoint_after").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("source_attempts, selected_source_key, dry_run flags"),
	}
}

// Indexes of the ConnectorRun.
func (ConnectorRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_name", "started_at"),
		index.Fields("status"),
	}
}

// Annotations of the ConnectorRun.
func (ConnectorRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "connector_runs"},
	}
}
