package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerEvent holds the schema definition for the TriggerEvent entity.
// One log row per processed upstream event. Kept after trigger deletion,
// so trigger_id is a plain column rather than a foreign key.
type TriggerEvent struct {
	ent.Schema
}

// Fields of the TriggerEvent.
func (TriggerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_event_id").
			Unique().
			Immutable(),
		field.String("trigger_id").
			Immutable(),
		field.String("agent_id").
			Optional().
			Immutable(),
		field.String("trigger_type").
			Immutable(),
		field.JSON("raw_data", map[string]interface{}{}).
			Optional().
			Comment("Sanitised upstream payload"),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Bool("success").
			Default(false),
		field.Bool("should_execute").
			Default(false),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TriggerEvent.
func (TriggerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger_id", "created_at"),
	}
}
