package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceCredentialCursor tracks the next alias index for round-robin
// credential rotation per (connector, source).
type SourceCredentialCursor struct {
	ent.Schema
}

// Fields of the SourceCredentialCursor.
func (SourceCredentialCursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("connector_name"),
		field.String("source_key"),
		field.Int("next_index").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SourceCredentialCursor.
func (SourceCredentialCursor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_name", "source_key").
			Unique(),
	}
}

// Annotations of the SourceCredentialCursor.
func (SourceCredentialCursor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_credential_cursors"},
	}
}
