package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity: every
// outbound send (WhatsApp or email), successful or not. Follow-up due
// times are computed from the latest sent message per application.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.Int("application_id").
			Immutable(),
		field.Enum("channel").
			Values("email", "whatsapp"),
		field.Enum("message_type").
			Values("cv_request", "cv_request_rejected", "cv_followup_1", "cv_followup_2", "rejection", "other").
			Default("other"),
		field.Enum("status").
			Values("pending", "sent", "delivered", "failed").
			Default("pending"),
		field.String("recipient"),
		field.Text("body"),
		field.String("external_id").
			Optional().
			Comment("Provider message id when the send succeeded"),
		field.Text("error_detail").
			Optional(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("messages").
			Field("application_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "sent_at"),
		index.Fields("status"),
		index.Fields("message_type"),
	}
}
