package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CandidateReply holds the schema definition for the CandidateReply entity.
// Inbound text from a candidate (WhatsApp message, media caption, or email
// body), threaded onto their most recent application when one resolves.
type CandidateReply struct {
	ent.Schema
}

// Fields of the CandidateReply.
func (CandidateReply) Fields() []ent.Field {
	return []ent.Field{
		field.Int("candidate_id").
			Optional().
			Nillable().
			Comment("Nil when the sender could not be resolved"),
		field.Int("application_id").
			Optional().
			Nillable(),
		field.Enum("channel").
			Values("whatsapp", "email"),
		field.String("sender"),
		field.String("subject").
			Optional(),
		field.Text("body"),
		field.String("external_id").
			Optional().
			Comment("Provider message id, when the channel supplies one"),
		field.Bool("is_read").
			Default(false),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CandidateReply.
func (CandidateReply) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("replies").
			Field("candidate_id").
			Unique(),
		edge.From("application", Application.Type).
			Ref("replies").
			Field("application_id").
			Unique(),
	}
}

// Indexes of the CandidateReply.
func (CandidateReply) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_read"),
		index.Fields("received_at"),
		index.Fields("candidate_id"),
	}
}
