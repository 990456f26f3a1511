package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NLPConsensus holds the adjudicated label per event, collapsed from
// multi-labeler feedback.
type NLPConsensus struct {
	ent.Schema
}

// Fields of the NLPConsensus.
func (NLPConsensus) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_name"),
		field.String("event_id"),
		field.String("consensus_event_type"),
		field.String("consensus_polarity"),
		field.Float("consensus_score").
			Default(0),
		field.Float("confidence").
			Default(0),
		field.Int("label_count").
			Default(0),
		field.Bool("conflict").
			Default(false),
		field.JSON("conflict_reasons", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the NLPConsensus.
func (NLPConsensus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "event_id").
			Unique(),
	}
}

// Annotations of the NLPConsensus.
func (NLPConsensus) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "nlp_consensus"},
	}
}
