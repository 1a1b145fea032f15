package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnmatchedInbound holds the schema definition for the UnmatchedInbound
// entity: inbound CVs the cascade could not attribute, queued for manual
// resolution.
type UnmatchedInbound struct {
	ent.Schema
}

// Fields of the UnmatchedInbound.
func (UnmatchedInbound) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("channel").
			Values("email", "whatsapp").
			Default("email"),
		field.String("sender").
			Comment("Raw From header or WhatsApp sender id"),
		field.String("subject").
			Optional(),
		field.Text("body_snippet").
			Optional().
			Comment("First 500 characters of the message body"),
		field.String("file_path").
			Optional(),
		field.String("original_filename").
			Optional(),
		field.JSON("raw_payload", map[string]interface{}{}).
			Optional(),
		field.Bool("resolved").
			Default(false),
		field.Int("resolved_application_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the UnmatchedInbound.
func (UnmatchedInbound) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resolved"),
		index.Fields("created_at"),
	}
}
