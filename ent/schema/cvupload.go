package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CVUpload holds the schema definition for the CVUpload entity.
// One matched CV attachment per application. A single inbound file that
// matches several awaiting applications produces one row per application,
// all pointing at the same stored file.
type CVUpload struct {
	ent.Schema
}

// Fields of the CVUpload.
func (CVUpload) Fields() []ent.Field {
	return []ent.Field{
		field.Int("candidate_id").
			Immutable(),
		field.Int("application_id").
			Immutable(),
		field.String("file_path").
			Comment("Stored name: <uuid-hex>_<sanitized original name>"),
		field.String("original_filename"),
		field.Enum("source").
			Values("email", "whatsapp", "manual").
			Default("email"),
		field.Enum("match_method").
			Values("exact_email", "exact_phone", "subject_id", "fuzzy_name", "cv_content", "manual"),
		field.Enum("match_confidence").
			Values("high", "medium").
			Default("high"),
		field.Bool("needs_review").
			Default(false).
			Comment("True for fuzzy_name and cv_content matches"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CVUpload.
func (CVUpload) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("cv_uploads").
			Field("candidate_id").
			Unique().
			Required().
			Immutable(),
		edge.From("application", Application.Type).
			Ref("cv_uploads").
			Field("application_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CVUpload.
func (CVUpload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id"),
		index.Fields("needs_review"),
	}
}
