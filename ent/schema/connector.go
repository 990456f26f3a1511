package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Connector holds the schema definition for an ingestion connector.
// config carries source_matrix, failover, sla thresholds, credentials and
// per-source request budgets (see pkg/matrix and pkg/sla).
type Connector struct {
	ent.Schema
}

// Fields of the Connector.
func (Connector) Fields() []ent.Field {
	return []ent.Field{
		field.String("connector_name").
			Unique(),
		field.String("source_name").
			Comment("Events ingested by this connector attach to this source"),
		field.String("connector_type").
			Comment("Default adapter type: file, http_json, tushare_announcement, akshare_announcement"),
		field.Bool("enabled").
			Default(true),
		field.Int("fetch_limit").
			Default(50).
			Positive(),
		field.Int("poll_interval_minutes").
			Default(30).
			Positive(),
		field.Int("replay_backoff_seconds").
			Default(300).
			Positive(),
		field.Int("max_retry").
			Default(3).
			Positive(),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.String("created_by").
			Optional(),
		field.String("note").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the Connector.
func (Connector) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "connectors"},
	}
}
