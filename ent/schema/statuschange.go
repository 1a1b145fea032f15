package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatusChange holds the schema definition for the StatusChange entity.
// Append-only audit trail of application transitions. A row with
// from_status == to_status is a note, not a transition.
type StatusChange struct {
	ent.Schema
}

// Fields of the StatusChange.
func (StatusChange) Fields() []ent.Field {
	return []ent.Field{
		field.Int("application_id").
			Immutable(),
		field.String("from_status").
			Immutable(),
		field.String("to_status").
			Immutable(),
		field.Text("note").
			Optional().
			Immutable(),
		field.String("changed_by").
			Default("system").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StatusChange.
func (StatusChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("status_changes").
			Field("application_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StatusChange.
func (StatusChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "created_at"),
		index.Fields("to_status"),
	}
}
