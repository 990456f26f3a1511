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

// NLPDriftSnapshot records one drift comparison between a current and a
// baseline window, with the alerts it produced.
type NLPDriftSnapshot struct {
	ent.Schema
}

// Fields of the NLPDriftSnapshot.
func (NLPDriftSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_name").
			Optional(),
		field.String("ruleset_version"),
		field.String("current_window").
			Comment("YYYY-MM-DD..YYYY-MM-DD, local dates"),
		field.String("baseline_window"),
		field.Int("sample_size").
			Default(0),
		field.Int("baseline_sample_size").
			Default(0),
		field.JSON("current_metrics", map[string]interface{}{}),
		field.JSON("baseline_metrics", map[string]interface{}{}),
		field.Float("hit_rate_delta").
			Default(0),
		field.Float("score_p50_delta").
			Default(0),
		field.Float("contribution_delta").
			Optional().
			Nillable(),
		field.Float("feedback_polarity_accuracy_delta").
			Optional().
			Nillable(),
		field.Float("feedback_event_type_accuracy_delta").
			Optional().
			Nillable(),
		field.JSON("alerts", []models.DriftAlert{}).
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the NLPDriftSnapshot.
func (NLPDriftSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "created_at"),
	}
}

// Annotations of the NLPDriftSnapshot.
func (NLPDriftSnapshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "nlp_drift_snapshots"},
	}
}
