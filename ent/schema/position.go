package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Position holds the schema definition for the Position entity.
// A position carries everything the pipeline needs per role: the agent
// prompt, qualification criteria, calling hours, and follow-up cadence.
type Position struct {
	ent.Schema
}

// Fields of the Position.
func (Position) Fields() []ent.Field {
	return []ent.Field{
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("open", "paused", "closed").
			Default("open"),
		field.Text("agent_prompt").
			Optional().
			Comment("Voice agent system prompt template (supports placeholders)"),
		field.Text("agent_first_message").
			Optional().
			Comment("Voice agent opening line template"),
		field.Text("qualification_criteria").
			Optional().
			Comment("Free-form criteria injected into the evaluation prompt"),
		field.Int("calling_hours_start").
			Default(9).
			Comment("Inclusive hour (0-23) in the scheduler timezone"),
		field.Int("calling_hours_end").
			Default(18).
			Comment("Exclusive hour (0-23); start >= end means misconfigured"),
		field.Int("call_retry_max").
			Default(3),
		field.Int("call_retry_interval_minutes").
			Default(60),
		field.Int("follow_up_interval_hours").
			Default(24),
		field.Int("rejected_cv_timeout_days").
			Default(14),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Position.
func (Position) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", Application.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Position.
func (Position) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
