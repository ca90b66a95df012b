// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftlabs/weft/ent/creditaccount"
)

// CreditAccount is the model entity for the CreditAccount schema.
type CreditAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Dollars; may dip below zero only while a reservation is held
	Balance float64 `json:"balance,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier string `json:"tier,omitempty"`
	// BillingCycleAnchor holds the value of the "billing_cycle_anchor" field.
	BillingCycleAnchor *time.Time `json:"billing_cycle_anchor,omitempty"`
	// NextCreditGrant holds the value of the "next_credit_grant" field.
	NextCreditGrant *time.Time `json:"next_credit_grant,omitempty"`
	// LastGrantDate holds the value of the "last_grant_date" field.
	LastGrantDate *time.Time `json:"last_grant_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditAccountQuery when eager-loading is set.
	Edges        CreditAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditAccountEdges holds the relations/edges for other nodes in the graph.
type CreditAccountEdges struct {
	// LedgerEntries holds the value of the ledger_entries edge.
	LedgerEntries []*CreditLedger `json:"ledger_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LedgerEntriesOrErr returns the LedgerEntries value or an error if the edge
// was not loaded in eager-loading.
func (e CreditAccountEdges) LedgerEntriesOrErr() ([]*CreditLedger, error) {
	if e.loadedTypes[0] {
		return e.LedgerEntries, nil
	}
	return nil, &NotLoadedError{edge: "ledger_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditaccount.FieldBalance:
			values[i] = new(sql.NullFloat64)
		case creditaccount.FieldID, creditaccount.FieldUserID, creditaccount.FieldTier:
			values[i] = new(sql.NullString)
		case creditaccount.FieldBillingCycleAnchor, creditaccount.FieldNextCreditGrant, creditaccount.FieldLastGrantDate, creditaccount.FieldCreatedAt, creditaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditAccount fields.
func (_m *CreditAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditaccount.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case creditaccount.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case creditaccount.FieldBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field balance", values[i])
			} else if value.Valid {
				_m.Balance = value.Float64
			}
		case creditaccount.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case creditaccount.FieldBillingCycleAnchor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field billing_cycle_anchor", values[i])
			} else if value.Valid {
				_m.BillingCycleAnchor = new(time.Time)
				*_m.BillingCycleAnchor = value.Time
			}
		case creditaccount.FieldNextCreditGrant:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_credit_grant", values[i])
			} else if value.Valid {
				_m.NextCreditGrant = new(time.Time)
				*_m.NextCreditGrant = value.Time
			}
		case creditaccount.FieldLastGrantDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_grant_date", values[i])
			} else if value.Valid {
				_m.LastGrantDate = new(time.Time)
				*_m.LastGrantDate = value.Time
			}
		case creditaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case creditaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditAccount.
// This includes values selected through modifiers, order, etc.
func (_m *CreditAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLedgerEntries queries the "ledger_entries" edge of the CreditAccount entity.
func (_m *CreditAccount) QueryLedgerEntries() *CreditLedgerQuery {
	return NewCreditAccountClient(_m.config).QueryLedgerEntries(_m)
}

// Update returns a builder for updating this CreditAccount.
// Note that you need to call CreditAccount.Unwrap() before calling this method if this CreditAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditAccount) Update() *CreditAccountUpdateOne {
	return NewCreditAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditAccount) Unwrap() *CreditAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditAccount) String() string {
	var builder strings.Builder
	builder.WriteString("CreditAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Balance))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	if v := _m.BillingCycleAnchor; v != nil {
		builder.WriteString("billing_cycle_anchor=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextCreditGrant; v != nil {
		builder.WriteString("next_credit_grant=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastGrantDate; v != nil {
		builder.WriteString("last_grant_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditAccounts is a parsable slice of CreditAccount.
type CreditAccounts []*CreditAccount
