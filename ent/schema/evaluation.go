package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evaluation holds the schema definition for the Evaluation entity.
// At most one evaluation per call; the unique call reference is the
// deduplication boundary for duplicate webhook deliveries.
type Evaluation struct {
	ent.Schema
}

// Fields of the Evaluation.
func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("application_id").
			Immutable(),
		field.Int("call_id").
			Unique().
			Immutable(),
		field.Enum("outcome").
			Values("qualified", "not_qualified", "callback_requested", "needs_human"),
		field.Bool("qualified"),
		field.Float("score").
			Comment("0-100"),
		field.Text("reasoning"),
		field.JSON("criteria", []map[string]interface{}{}).
			Optional().
			Comment("Per-criterion verdicts as returned by the model"),
		field.Text("disqualifying_factor").
			Optional(),
		field.Bool("callback_requested").
			Default(false),
		field.Text("callback_notes").
			Optional(),
		field.Time("callback_at").
			Optional().
			Nillable(),
		field.Bool("needs_human").
			Default(false),
		field.Text("needs_human_notes").
			Optional(),
		field.Text("raw_response").
			Optional().
			Comment("Model output as received, before repair"),
		field.String("model").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evaluation.
func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("evaluations").
			Field("application_id").
			Unique().
			Required().
			Immutable(),
		edge.From("call", Call.Type).
			Ref("evaluation").
			Field("call_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evaluation.
func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id"),
		index.Fields("outcome"),
	}
}
