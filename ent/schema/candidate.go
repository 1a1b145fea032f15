package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Candidate holds the schema definition for the Candidate entity.
// At least one of phone or email is expected to be present.
type Candidate struct {
	ent.Schema
}

// Fields of the Candidate.
func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name"),
		field.String("last_name").
			Optional(),
		field.String("email").
			Optional().
			Comment("Lowercased on write; matched case-insensitively"),
		field.String("phone").
			Optional().
			Comment("Digits with optional leading +"),
		field.String("whatsapp_number").
			Optional().
			Comment("When it differs from phone"),
		field.String("lead_source_id").
			Optional().
			Nillable().
			Comment("External identifier from the advertising platform"),
		field.JSON("form_answers", map[string]interface{}{}).
			Optional().
			Comment("Pre-screening question/answer pairs from lead import"),
		field.Text("notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Candidate.
func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", Application.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("replies", CandidateReply.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cv_uploads", CVUpload.Type),
	}
}

// Indexes of the Candidate.
func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("phone"),
		index.Fields("lead_source_id").
			Unique().
			Annotations(entsql.IndexWhere("lead_source_id IS NOT NULL")),
	}
}
