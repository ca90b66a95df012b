// Code generated by ent, DO NOT EDIT.

package creditaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the creditaccount type in the database.
	Label = "credit_account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "account_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBalance holds the string denoting the balance field in the database.
	FieldBalance = "balance"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldBillingCycleAnchor holds the string denoting the billing_cycle_anchor field in the database.
	FieldBillingCycleAnchor = "billing_cycle_anchor"
	// FieldNextCreditGrant holds the string denoting the next_credit_grant field in the database.
	FieldNextCreditGrant = "next_credit_grant"
	// FieldLastGrantDate holds the string denoting the last_grant_date field in the database.
	FieldLastGrantDate = "last_grant_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLedgerEntries holds the string denoting the ledger_entries edge name in mutations.
	EdgeLedgerEntries = "ledger_entries"
	// CreditLedgerFieldID holds the string denoting the ID field of the CreditLedger.
	CreditLedgerFieldID = "entry_id"
	// Table holds the table name of the creditaccount in the database.
	Table = "credit_accounts"
	// LedgerEntriesTable is the table that holds the ledger_entries relation/edge.
	LedgerEntriesTable = "credit_ledgers"
	// LedgerEntriesInverseTable is the table name for the CreditLedger entity.
	// It exists in this package in order to avoid circular dependency with the "creditledger" package.
	LedgerEntriesInverseTable = "credit_ledgers"
	// LedgerEntriesColumn is the table column denoting the ledger_entries relation/edge.
	LedgerEntriesColumn = "account_id"
)

// Columns holds all SQL columns for creditaccount fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBalance,
	FieldTier,
	FieldBillingCycleAnchor,
	FieldNextCreditGrant,
	FieldLastGrantDate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultBalance holds the default value on creation for the "balance" field.
	DefaultBalance float64
	// DefaultTier holds the default value on creation for the "tier" field.
	DefaultTier string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CreditAccount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBalance orders the results by the balance field.
func ByBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBalance, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByBillingCycleAnchor orders the results by the billing_cycle_anchor field.
func ByBillingCycleAnchor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillingCycleAnchor, opts...).ToFunc()
}

// ByNextCreditGrant orders the results by the next_credit_grant field.
func ByNextCreditGrant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextCreditGrant, opts...).ToFunc()
}

// ByLastGrantDate orders the results by the last_grant_date field.
func ByLastGrantDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastGrantDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLedgerEntriesCount orders the results by ledger_entries count.
func ByLedgerEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLedgerEntriesStep(), opts...)
	}
}

// ByLedgerEntries orders the results by ledger_entries terms.
func ByLedgerEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLedgerEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLedgerEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LedgerEntriesInverseTable, CreditLedgerFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LedgerEntriesTable, LedgerEntriesColumn),
	)
}
