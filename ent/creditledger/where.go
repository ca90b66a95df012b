// Code generated by ent, DO NOT EDIT.

package creditledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftlabs/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldAccountID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldAmount, v))
}

// BalanceAfter applies equality check predicate on the "balance_after" field. It's identical to BalanceAfterEQ.
func BalanceAfter(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldBalanceAfter, v))
}

// LlmResponseID applies equality check predicate on the "llm_response_id" field. It's identical to LlmResponseIDEQ.
func LlmResponseID(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldLlmResponseID, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldThreadID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldModel, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldCreatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContainsFold(FieldAccountID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldAmount, v))
}

// BalanceAfterEQ applies the EQ predicate on the "balance_after" field.
func BalanceAfterEQ(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldBalanceAfter, v))
}

// BalanceAfterNEQ applies the NEQ predicate on the "balance_after" field.
func BalanceAfterNEQ(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldBalanceAfter, v))
}

// BalanceAfterIn applies the In predicate on the "balance_after" field.
func BalanceAfterIn(vs ...float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldBalanceAfter, vs...))
}

// BalanceAfterNotIn applies the NotIn predicate on the "balance_after" field.
func BalanceAfterNotIn(vs ...float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldBalanceAfter, vs...))
}

// BalanceAfterGT applies the GT predicate on the "balance_after" field.
func BalanceAfterGT(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldBalanceAfter, v))
}

// BalanceAfterGTE applies the GTE predicate on the "balance_after" field.
func BalanceAfterGTE(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldBalanceAfter, v))
}

// BalanceAfterLT applies the LT predicate on the "balance_after" field.
func BalanceAfterLT(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldBalanceAfter, v))
}

// BalanceAfterLTE applies the LTE predicate on the "balance_after" field.
func BalanceAfterLTE(v float64) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldBalanceAfter, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldType, vs...))
}

// LlmResponseIDEQ applies the EQ predicate on the "llm_response_id" field.
func LlmResponseIDEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldLlmResponseID, v))
}

// LlmResponseIDNEQ applies the NEQ predicate on the "llm_response_id" field.
func LlmResponseIDNEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldLlmResponseID, v))
}

// LlmResponseIDIn applies the In predicate on the "llm_response_id" field.
func LlmResponseIDIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldLlmResponseID, vs...))
}

// LlmResponseIDNotIn applies the NotIn predicate on the "llm_response_id" field.
func LlmResponseIDNotIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldLlmResponseID, vs...))
}

// LlmResponseIDGT applies the GT predicate on the "llm_response_id" field.
func LlmResponseIDGT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldLlmResponseID, v))
}

// LlmResponseIDGTE applies the GTE predicate on the "llm_response_id" field.
func LlmResponseIDGTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldLlmResponseID, v))
}

// LlmResponseIDLT applies the LT predicate on the "llm_response_id" field.
func LlmResponseIDLT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldLlmResponseID, v))
}

// LlmResponseIDLTE applies the LTE predicate on the "llm_response_id" field.
func LlmResponseIDLTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldLlmResponseID, v))
}

// LlmResponseIDContains applies the Contains predicate on the "llm_response_id" field.
func LlmResponseIDContains(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContains(FieldLlmResponseID, v))
}

// LlmResponseIDHasPrefix applies the HasPrefix predicate on the "llm_response_id" field.
func LlmResponseIDHasPrefix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasPrefix(FieldLlmResponseID, v))
}

// LlmResponseIDHasSuffix applies the HasSuffix predicate on the "llm_response_id" field.
func LlmResponseIDHasSuffix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasSuffix(FieldLlmResponseID, v))
}

// LlmResponseIDIsNil applies the IsNil predicate on the "llm_response_id" field.
func LlmResponseIDIsNil() predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIsNull(FieldLlmResponseID))
}

// LlmResponseIDNotNil applies the NotNil predicate on the "llm_response_id" field.
func LlmResponseIDNotNil() predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotNull(FieldLlmResponseID))
}

// LlmResponseIDEqualFold applies the EqualFold predicate on the "llm_response_id" field.
func LlmResponseIDEqualFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEqualFold(FieldLlmResponseID, v))
}

// LlmResponseIDContainsFold applies the ContainsFold predicate on the "llm_response_id" field.
func LlmResponseIDContainsFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContainsFold(FieldLlmResponseID, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContainsFold(FieldThreadID, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContainsFold(FieldModel, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditLedger {
	return predicate.CreditLedger(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.CreditLedger {
	return predicate.CreditLedger(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.CreditAccount) predicate.CreditLedger {
	return predicate.CreditLedger(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditLedger) predicate.CreditLedger {
	return predicate.CreditLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditLedger) predicate.CreditLedger {
	return predicate.CreditLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditLedger) predicate.CreditLedger {
	return predicate.CreditLedger(sql.NotPredicates(p))
}
