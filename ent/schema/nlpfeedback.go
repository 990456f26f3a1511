package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NLPFeedback holds one labeler correction for a normalized event.
type NLPFeedback struct {
	ent.Schema
}

// Fields of the NLPFeedback.
func (NLPFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_name"),
		field.String("event_id"),
		field.String("labeler").
			Optional(),
		field.String("label_event_type").
			Optional(),
		field.String("label_polarity").
			Optional().
			Comment("positive, negative or neutral"),
		field.Float("label_score").
			Optional().
			Nillable(),
		field.Text("comment").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the NLPFeedback.
func (NLPFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "event_id"),
		index.Fields("created_at"),
	}
}

// Annotations of the NLPFeedback.
func (NLPFeedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "nlp_feedback"},
	}
}
