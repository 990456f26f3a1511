package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/quantmuse/eventcore/pkg/models"
)

// NLPRuleset holds a versioned, immutable rules payload for the
// standardizer. Activation is the only mutation after upsert; at most one
// row is active.
type NLPRuleset struct {
	ent.Schema
}

// Fields of the NLPRuleset.
func (NLPRuleset) Fields() []ent.Field {
	return []ent.Field{
		field.String("version").
			Unique(),
		field.String("created_by").
			Optional(),
		field.String("note").
			Optional(),
		field.Bool("is_active").
			Default(false),
		field.JSON("rules", []models.NLPRule{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the NLPRuleset.
func (NLPRuleset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}

// Annotations of the NLPRuleset.
func (NLPRuleset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "nlp_rulesets"},
	}
}
