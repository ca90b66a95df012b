package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trigger holds the schema definition for the Trigger entity.
// Provider-specific config is validated by the provider registry,
// not by the database.
type Trigger struct {
	ent.Schema
}

// Fields of the Trigger.
func (Trigger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("provider_id").
			Comment("Registry key: schedule, webhook, composio"),
		field.String("trigger_type").
			Comment("SCHEDULE, WEBHOOK or EVENT"),
		field.String("name"),
		field.String("description").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(true),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Provider-validated; config.provider_id is authoritative on read-back"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Trigger.
func (Trigger) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("triggers").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Trigger.
func (Trigger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("provider_id", "is_active"),
	}
}
