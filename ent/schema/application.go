package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Application holds the schema definition for the Application entity.
// One candidate applying to one position; status drives the whole pipeline.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.Int("candidate_id"),
		field.Int("position_id"),
		field.Enum("status").
			Values(
				"pending_call",
				"call_queued",
				"call_in_progress",
				"call_completed",
				"call_failed",
				"scoring",
				"qualified",
				"awaiting_cv",
				"cv_followup_1",
				"cv_followup_2",
				"cv_overdue",
				"cv_received",
				"not_qualified",
				"awaiting_cv_rejected",
				"cv_received_rejected",
				"callback_scheduled",
				"needs_human",
				"closed",
			).
			Default("pending_call"),
		field.Bool("qualified").
			Optional().
			Nillable().
			Comment("Nil until scored"),
		field.Float("score").
			Optional().
			Nillable(),
		field.Text("score_notes").
			Optional(),
		field.Time("cv_received_at").
			Optional().
			Nillable(),
		field.Time("callback_scheduled_at").
			Optional().
			Nillable(),
		field.Text("needs_human_reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("applications").
			Field("candidate_id").
			Unique().
			Required(),
		edge.From("position", Position.Type).
			Ref("applications").
			Field("position_id").
			Unique().
			Required(),
		edge.To("status_changes", StatusChange.Type),
		edge.To("calls", Call.Type),
		edge.To("evaluations", Evaluation.Type),
		edge.To("cv_uploads", CVUpload.Type),
		edge.To("messages", Message.Type),
		edge.To("replies", CandidateReply.Type),
	}
}

// Indexes of the Application.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("qualified"),
		index.Fields("callback_scheduled_at"),
		index.Fields("candidate_id", "position_id").
			Unique(),
	}
}
