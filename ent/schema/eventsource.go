package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventSource holds the schema definition for a registered event upstream.
// Sources are created on register and never deleted by the core.
type EventSource struct {
	ent.Schema
}

// Fields of the EventSource.
func (EventSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_name").
			Unique().
			Comment("Logical source identity, referenced by events and connectors"),
		field.Enum("source_type").
			Values("manual", "announcement", "news", "model").
			Default("announcement"),
		field.String("provider").
			Optional().
			Comment("Upstream vendor (e.g. 'tushare', 'akshare', 'eastmoney')"),
		field.String("timezone").
			Default("Asia/Shanghai").
			Comment("Timezone applied when provider timestamps carry no offset"),
		field.Int("ingestion_lag_minutes").
			Default(0).
			NonNegative(),
		field.Float("reliability_score").
			Default(0.8).
			Comment("0..1, multiplied into normalized event scores"),
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

// Indexes of the EventSource.
func (EventSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_type"),
	}
}

// Annotations of the EventSource.
func (EventSource) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "event_sources"},
	}
}
