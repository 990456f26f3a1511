package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventRecord holds the schema definition for a normalized corporate event.
// Rows are created by ingest and mutated only by upsert-on-conflict over
// the (source_name, event_id) key.
type EventRecord struct {
	ent.Schema
}

// Fields of the EventRecord.
func (EventRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_name"),
		field.String("event_id").
			Comment("Provider-stable id; synthetic {source}-{hash} when absent upstream"),
		field.String("symbol").
			Comment("A-share symbol, e.g. 600519.SH or 000001"),
		field.String("event_type").
			Default("generic_announcement"),
		field.Time("publish_time"),
		field.Time("effective_time").
			Optional().
			Nillable().
			Comment("Must be >= publish_time when present"),
		field.Enum("polarity").
			Values("positive", "negative", "neutral").
			Default("neutral"),
		field.Float("score").
			Default(0).
			Comment("0..1"),
		field.Float("confidence").
			Default(0).
			Comment("0..1"),
		field.Text("title"),
		field.Text("summary").
			Optional(),
		field.String("raw_ref").
			Optional().
			Nillable().
			Comment("Pointer back to the raw payload (URL or archive key)"),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Carries nlp_ruleset_version and matched_rules for drift calibration"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EventRecord.
func (EventRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "event_id").
			Unique(),
		index.Fields("symbol", "publish_time"),
		index.Fields("source_name", "publish_time"),
		index.Fields("event_type"),
	}
}

// Annotations of the EventRecord.
func (EventRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "event_records"},
	}
}
