package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CreditLedger holds the schema definition for the CreditLedger entity.
// Immutable audit trail of balance mutations. Negative amount = deduction.
type CreditLedger struct {
	ent.Schema
}

// Fields of the CreditLedger.
func (CreditLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.Float("amount").
			Immutable(),
		field.Float("balance_after").
			Immutable(),
		field.Enum("type").
			Values("deduction", "grant", "refund", "reservation").
			Immutable(),
		field.String("llm_response_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Deduplication key for usage deductions"),
		field.String("thread_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("model").
			Optional().
			Nillable().
			Immutable(),
		field.String("description").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CreditLedger.
func (CreditLedger) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", CreditAccount.Type).
			Ref("ledger_entries").
			Field("account_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CreditLedger.
func (CreditLedger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "created_at"),

		// Idempotent deduction per LLM response
		index.Fields("llm_response_id").
			Unique().
			StorageKey("credit_ledger_llm_response_idx").
			Annotations(entsql.IndexWhere("llm_response_id IS NOT NULL")),
	}
}
