package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Call holds the schema definition for the Call entity.
// One voice-agent call attempt. Exactly one of external_conversation_id or
// external_batch_id is set at creation; batch-submitted calls start with a
// nil conversation id and are bound to one when the first webhook for the
// conversation arrives (late binding).
type Call struct {
	ent.Schema
}

// Fields of the Call.
func (Call) Fields() []ent.Field {
	return []ent.Field{
		field.Int("application_id").
			Immutable(),
		field.Int("attempt_number").
			Default(1).
			Comment("Sequential per application, starting at 1"),
		field.String("external_conversation_id").
			Optional().
			Nillable(),
		field.String("external_batch_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("initiated", "in_progress", "completed", "failed", "no_answer", "busy").
			Default("initiated"),
		field.Text("transcript").
			Optional(),
		field.Text("summary").
			Optional(),
		field.String("summary_title").
			Optional(),
		field.String("recording_url").
			Optional(),
		field.Int("duration_seconds").
			Optional().
			Nillable(),
		field.JSON("raw_payload", map[string]interface{}{}).
			Optional().
			Comment("Last webhook/poll payload applied to this call"),
		field.Time("initiated_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Non-nil iff status is terminal"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Call.
func (Call) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("calls").
			Field("application_id").
			Unique().
			Required().
			Immutable(),
		edge.To("evaluation", Evaluation.Type).
			Unique(),
	}
}

// Indexes of the Call.
func (Call) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "created_at"),
		index.Fields("status"),
		// Conversation ids are unique once bound; unbound rows stay NULL.
		index.Fields("external_conversation_id").
			Unique().
			Annotations(entsql.IndexWhere("external_conversation_id IS NOT NULL")),
		index.Fields("external_batch_id"),
	}
}
