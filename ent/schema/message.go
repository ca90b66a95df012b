package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Append-only conversation history. Creation never mutates earlier rows;
// only the context manager updates content/metadata in place (compression).
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("type").
			Comment("Open set: user, assistant, tool, status, llm_response_end, ..."),
		field.Bool("is_llm_message").
			Default(false).
			Comment("Whether the row participates in LLM context building"),
		field.Text("content").
			Comment("Plain string or JSON-encoded object"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("compressed, compressed_content, assistant_message_id, usage payloads"),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("agent_version_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("messages").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Conversation order
		index.Fields("thread_id", "created_at"),
		index.Fields("thread_id", "type"),

		// Fast budget check scans only usage rows
		index.Fields("thread_id", "created_at").
			StorageKey("message_usage_rows_idx").
			Annotations(entsql.IndexWhere("type = 'llm_response_end'")),
	}
}
