package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// CreditAccount holds the schema definition for the CreditAccount entity.
// Balance mutations go through SELECT ... FOR UPDATE inside a transaction.
type CreditAccount struct {
	ent.Schema
}

// Fields of the CreditAccount.
func (CreditAccount) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique().
			Immutable(),
		field.Float("balance").
			Default(0).
			Comment("Dollars; may dip below zero only while a reservation is held"),
		field.String("tier").
			Default("free"),
		field.Time("billing_cycle_anchor").
			Optional().
			Nillable(),
		field.Time("next_credit_grant").
			Optional().
			Nillable(),
		field.Time("last_grant_date").
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

// Edges of the CreditAccount.
func (CreditAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("ledger_entries", CreditLedger.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
