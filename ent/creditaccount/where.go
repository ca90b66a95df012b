// Code generated by ent, DO NOT EDIT.

package creditaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftlabs/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldUserID, v))
}

// Balance applies equality check predicate on the "balance" field. It's identical to BalanceEQ.
func Balance(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldBalance, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldTier, v))
}

// BillingCycleAnchor applies equality check predicate on the "billing_cycle_anchor" field. It's identical to BillingCycleAnchorEQ.
func BillingCycleAnchor(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldBillingCycleAnchor, v))
}

// NextCreditGrant applies equality check predicate on the "next_credit_grant" field. It's identical to NextCreditGrantEQ.
func NextCreditGrant(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldNextCreditGrant, v))
}

// LastGrantDate applies equality check predicate on the "last_grant_date" field. It's identical to LastGrantDateEQ.
func LastGrantDate(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldLastGrantDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldContainsFold(FieldUserID, v))
}

// BalanceEQ applies the EQ predicate on the "balance" field.
func BalanceEQ(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldBalance, v))
}

// BalanceNEQ applies the NEQ predicate on the "balance" field.
func BalanceNEQ(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldBalance, v))
}

// BalanceIn applies the In predicate on the "balance" field.
func BalanceIn(vs ...float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldBalance, vs...))
}

// BalanceNotIn applies the NotIn predicate on the "balance" field.
func BalanceNotIn(vs ...float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldBalance, vs...))
}

// BalanceGT applies the GT predicate on the "balance" field.
func BalanceGT(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldBalance, v))
}

// BalanceGTE applies the GTE predicate on the "balance" field.
func BalanceGTE(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldBalance, v))
}

// BalanceLT applies the LT predicate on the "balance" field.
func BalanceLT(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldBalance, v))
}

// BalanceLTE applies the LTE predicate on the "balance" field.
func BalanceLTE(v float64) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldBalance, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldContainsFold(FieldTier, v))
}

// BillingCycleAnchorEQ applies the EQ predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldBillingCycleAnchor, v))
}

// BillingCycleAnchorNEQ applies the NEQ predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorNEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldBillingCycleAnchor, v))
}

// BillingCycleAnchorIn applies the In predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldBillingCycleAnchor, vs...))
}

// BillingCycleAnchorNotIn applies the NotIn predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorNotIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldBillingCycleAnchor, vs...))
}

// BillingCycleAnchorGT applies the GT predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorGT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldBillingCycleAnchor, v))
}

// BillingCycleAnchorGTE applies the GTE predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorGTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldBillingCycleAnchor, v))
}

// BillingCycleAnchorLT applies the LT predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorLT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldBillingCycleAnchor, v))
}

// BillingCycleAnchorLTE applies the LTE predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorLTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldBillingCycleAnchor, v))
}

// BillingCycleAnchorIsNil applies the IsNil predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorIsNil() predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIsNull(FieldBillingCycleAnchor))
}

// BillingCycleAnchorNotNil applies the NotNil predicate on the "billing_cycle_anchor" field.
func BillingCycleAnchorNotNil() predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotNull(FieldBillingCycleAnchor))
}

// NextCreditGrantEQ applies the EQ predicate on the "next_credit_grant" field.
func NextCreditGrantEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldNextCreditGrant, v))
}

// NextCreditGrantNEQ applies the NEQ predicate on the "next_credit_grant" field.
func NextCreditGrantNEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldNextCreditGrant, v))
}

// NextCreditGrantIn applies the In predicate on the "next_credit_grant" field.
func NextCreditGrantIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldNextCreditGrant, vs...))
}

// NextCreditGrantNotIn applies the NotIn predicate on the "next_credit_grant" field.
func NextCreditGrantNotIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldNextCreditGrant, vs...))
}

// NextCreditGrantGT applies the GT predicate on the "next_credit_grant" field.
func NextCreditGrantGT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldNextCreditGrant, v))
}

// NextCreditGrantGTE applies the GTE predicate on the "next_credit_grant" field.
func NextCreditGrantGTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldNextCreditGrant, v))
}

// NextCreditGrantLT applies the LT predicate on the "next_credit_grant" field.
func NextCreditGrantLT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldNextCreditGrant, v))
}

// NextCreditGrantLTE applies the LTE predicate on the "next_credit_grant" field.
func NextCreditGrantLTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldNextCreditGrant, v))
}

// NextCreditGrantIsNil applies the IsNil predicate on the "next_credit_grant" field.
func NextCreditGrantIsNil() predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIsNull(FieldNextCreditGrant))
}

// NextCreditGrantNotNil applies the NotNil predicate on the "next_credit_grant" field.
func NextCreditGrantNotNil() predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotNull(FieldNextCreditGrant))
}

// LastGrantDateEQ applies the EQ predicate on the "last_grant_date" field.
func LastGrantDateEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldLastGrantDate, v))
}

// LastGrantDateNEQ applies the NEQ predicate on the "last_grant_date" field.
func LastGrantDateNEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldLastGrantDate, v))
}

// LastGrantDateIn applies the In predicate on the "last_grant_date" field.
func LastGrantDateIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldLastGrantDate, vs...))
}

// LastGrantDateNotIn applies the NotIn predicate on the "last_grant_date" field.
func LastGrantDateNotIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldLastGrantDate, vs...))
}

// LastGrantDateGT applies the GT predicate on the "last_grant_date" field.
func LastGrantDateGT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldLastGrantDate, v))
}

// LastGrantDateGTE applies the GTE predicate on the "last_grant_date" field.
func LastGrantDateGTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldLastGrantDate, v))
}

// LastGrantDateLT applies the LT predicate on the "last_grant_date" field.
func LastGrantDateLT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldLastGrantDate, v))
}

// LastGrantDateLTE applies the LTE predicate on the "last_grant_date" field.
func LastGrantDateLTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldLastGrantDate, v))
}

// LastGrantDateIsNil applies the IsNil predicate on the "last_grant_date" field.
func LastGrantDateIsNil() predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIsNull(FieldLastGrantDate))
}

// LastGrantDateNotNil applies the NotNil predicate on the "last_grant_date" field.
func LastGrantDateNotNil() predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotNull(FieldLastGrantDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditAccount {
	return predicate.CreditAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLedgerEntries applies the HasEdge predicate on the "ledger_entries" edge.
func HasLedgerEntries() predicate.CreditAccount {
	return predicate.CreditAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LedgerEntriesTable, LedgerEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLedgerEntriesWith applies the HasEdge predicate on the "ledger_entries" edge with a given conditions (other predicates).
func HasLedgerEntriesWith(preds ...predicate.CreditLedger) predicate.CreditAccount {
	return predicate.CreditAccount(func(s *sql.Selector) {
		step := newLedgerEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditAccount) predicate.CreditAccount {
	return predicate.CreditAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditAccount) predicate.CreditAccount {
	return predicate.CreditAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditAccount) predicate.CreditAccount {
	return predicate.CreditAccount(sql.NotPredicates(p))
}
