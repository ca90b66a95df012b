package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persistent stream events for SSE delivery and reconnect catch-up.
// The publisher writes these rows via raw SQL so the INSERT and the
// pg_notify share one transaction; the schema exists for migrations.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Auto-increment id doubles as the catch-up cursor.
		field.String("thread_id").
			Immutable(),
		field.String("channel").
			Immutable(),
		field.Text("payload").
			Immutable().
			Comment("JSON event body"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("events").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
	}
}
