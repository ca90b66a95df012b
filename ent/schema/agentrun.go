package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One row per execution of the thread runner against a thread.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_run_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.Enum("status").
			Values("running", "stopped", "completed", "failed").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("model_name, trigger provenance"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.String("request_id").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("agent_runs").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("thread_id", "status"),
		index.Fields("status", "last_heartbeat_at"),

		// At most one running run per thread
		index.Fields("thread_id").
			Unique().
			StorageKey("agent_run_one_running_idx").
			Annotations(entsql.IndexWhere("status = 'running'")),
	}
}
