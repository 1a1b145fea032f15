package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageTemplate holds the schema definition for the MessageTemplate
// entity: editable outbound message bodies keyed by (message_type, channel).
// Built-in defaults apply when no row exists for a pair.
type MessageTemplate struct {
	ent.Schema
}

// Fields of the MessageTemplate.
func (MessageTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("message_type").
			Values("cv_request", "cv_request_rejected", "cv_followup_1", "cv_followup_2", "rejection", "other"),
		field.Enum("channel").
			Values("email", "whatsapp"),
		field.String("subject").
			Optional().
			Comment("Email only"),
		field.Text("body").
			Comment("Supports the documented {placeholder} tokens"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MessageTemplate.
func (MessageTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_type", "channel").
			Unique(),
	}
}
