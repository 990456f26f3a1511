package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceBudget counts requests per (connector, source, UTC hour window).
// Read-modify-written under a row lock so concurrent runs cannot overrun
// the hourly ceiling.
type SourceBudget struct {
	ent.Schema
}

// Fields of the SourceBudget.
func (SourceBudget) Fields() []ent.Field {
	return []ent.Field{
		field.String("connector_name"),
		field.String("source_key"),
		field.String("window_hour").
			Comment("UTC hour bucket, e.g. 2026-08-25T07"),
		field.Int("request_count").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SourceBudget.
func (SourceBudget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_name", "source_key", "window_hour").
			Unique(),
	}
}

// Annotations of the SourceBudget.
func (SourceBudget) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_budgets"},
	}
}
