// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftlabs/weft/ent/creditaccount"
	"github.com/weftlabs/weft/ent/creditledger"
	"github.com/weftlabs/weft/ent/predicate"
)

// CreditAccountUpdate is the builder for updating CreditAccount entities.
type CreditAccountUpdate struct {
	config
	hooks    []Hook
	mutation *CreditAccountMutation
}

// Where appends a list predicates to the CreditAccountUpdate builder.
func (_u *CreditAccountUpdate) Where(ps ...predicate.CreditAccount) *CreditAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBalance sets the "balance" field.
func (_u *CreditAccountUpdate) SetBalance(v float64) *CreditAccountUpdate {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *CreditAccountUpdate) SetNillableBalance(v *float64) *CreditAccountUpdate {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *CreditAccountUpdate) AddBalance(v float64) *CreditAccountUpdate {
	_u.mutation.AddBalance(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *CreditAccountUpdate) SetTier(v string) *CreditAccountUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *CreditAccountUpdate) SetNillableTier(v *string) *CreditAccountUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetBillingCycleAnchor sets the "billing_cycle_anchor" field.
func (_u *CreditAccountUpdate) SetBillingCycleAnchor(v time.Time) *CreditAccountUpdate {
	_u.mutation.SetBillingCycleAnchor(v)
	return _u
}

// SetNillableBillingCycleAnchor sets the "billing_cycle_anchor" field if the given value is not nil.
func (_u *CreditAccountUpdate) SetNillableBillingCycleAnchor(v *time.Time) *CreditAccountUpdate {
	if v != nil {
		_u.SetBillingCycleAnchor(*v)
	}
	return _u
}

// ClearBillingCycleAnchor clears the value of the "billing_cycle_anchor" field.
func (_u *CreditAccountUpdate) ClearBillingCycleAnchor() *CreditAccountUpdate {
	_u.mutation.ClearBillingCycleAnchor()
	return _u
}

// SetNextCreditGrant sets the "next_credit_grant" field.
func (_u *CreditAccountUpdate) SetNextCreditGrant(v time.Time) *CreditAccountUpdate {
	_u.mutation.SetNextCreditGrant(v)
	return _u
}

// SetNillableNextCreditGrant sets the "next_credit_grant" field if the given value is not nil.
func (_u *CreditAccountUpdate) SetNillableNextCreditGrant(v *time.Time) *CreditAccountUpdate {
	if v != nil {
		_u.SetNextCreditGrant(*v)
	}
	return _u
}

// ClearNextCreditGrant clears the value of the "next_credit_grant" field.
func (_u *CreditAccountUpdate) ClearNextCreditGrant() *CreditAccountUpdate {
	_u.mutation.ClearNextCreditGrant()
	return _u
}

// SetLastGrantDate sets the "last_grant_date" field.
func (_u *CreditAccountUpdate) SetLastGrantDate(v time.Time) *CreditAccountUpdate {
	_u.mutation.SetLastGrantDate(v)
	return _u
}

// SetNillableLastGrantDate sets the "last_grant_date" field if the given value is not nil.
func (_u *CreditAccountUpdate) SetNillableLastGrantDate(v *time.Time) *CreditAccountUpdate {
	if v != nil {
		_u.SetLastGrantDate(*v)
	}
	return _u
}

// ClearLastGrantDate clears the value of the "last_grant_date" field.
func (_u *CreditAccountUpdate) ClearLastGrantDate() *CreditAccountUpdate {
	_u.mutation.ClearLastGrantDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditAccountUpdate) SetUpdatedAt(v time.Time) *CreditAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the CreditLedger entity by IDs.
func (_u *CreditAccountUpdate) AddLedgerEntryIDs(ids ...string) *CreditAccountUpdate {
	_u.mutation.AddLedgerEntryIDs(ids...)
	return _u
}

// AddLedgerEntries adds the "ledger_entries" edges to the CreditLedger entity.
func (_u *CreditAccountUpdate) AddLedgerEntries(v ...*CreditLedger) *CreditAccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLedgerEntryIDs(ids...)
}

// Mutation returns the CreditAccountMutation object of the builder.
func (_u *CreditAccountUpdate) Mutation() *CreditAccountMutation {
	return _u.mutation
}

// ClearLedgerEntries clears all "ledger_entries" edges to the CreditLedger entity.
func (_u *CreditAccountUpdate) ClearLedgerEntries() *CreditAccountUpdate {
	_u.mutation.ClearLedgerEntries()
	return _u
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to CreditLedger entities by IDs.
func (_u *CreditAccountUpdate) RemoveLedgerEntryIDs(ids ...string) *CreditAccountUpdate {
	_u.mutation.RemoveLedgerEntryIDs(ids...)
	return _u
}

// RemoveLedgerEntries removes "ledger_entries" edges to CreditLedger entities.
func (_u *CreditAccountUpdate) RemoveLedgerEntries(v ...*CreditLedger) *CreditAccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLedgerEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creditaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CreditAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(creditaccount.Table, creditaccount.Columns, sqlgraph.NewFieldSpec(creditaccount.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(creditaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(creditaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(creditaccount.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillingCycleAnchor(); ok {
		_spec.SetField(creditaccount.FieldBillingCycleAnchor, field.TypeTime, value)
	}
	if _u.mutation.BillingCycleAnchorCleared() {
		_spec.ClearField(creditaccount.FieldBillingCycleAnchor, field.TypeTime)
	}
	if value, ok := _u.mutation.NextCreditGrant(); ok {
		_spec.SetField(creditaccount.FieldNextCreditGrant, field.TypeTime, value)
	}
	if _u.mutation.NextCreditGrantCleared() {
		_spec.ClearField(creditaccount.FieldNextCreditGrant, field.TypeTime)
	}
	if value, ok := _u.mutation.LastGrantDate(); ok {
		_spec.SetField(creditaccount.FieldLastGrantDate, field.TypeTime, value)
	}
	if _u.mutation.LastGrantDateCleared() {
		_spec.ClearField(creditaccount.FieldLastGrantDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creditaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LedgerEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditaccount.LedgerEntriesTable,
			Columns: []string{creditaccount.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLedgerEntriesIDs(); len(nodes) > 0 && !_u.mutation.LedgerEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditaccount.LedgerEntriesTable,
			Columns: []string{creditaccount.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditaccount.LedgerEntriesTable,
			Columns: []string{creditaccount.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditAccountUpdateOne is the builder for updating a single CreditAccount entity.
type CreditAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditAccountMutation
}

// SetBalance sets the "balance" field.
func (_u *CreditAccountUpdateOne) SetBalance(v float64) *CreditAccountUpdateOne {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *CreditAccountUpdateOne) SetNillableBalance(v *float64) *CreditAccountUpdateOne {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *CreditAccountUpdateOne) AddBalance(v float64) *CreditAccountUpdateOne {
	_u.mutation.AddBalance(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *CreditAccountUpdateOne) SetTier(v string) *CreditAccountUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *CreditAccountUpdateOne) SetNillableTier(v *string) *CreditAccountUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetBillingCycleAnchor sets the "billing_cycle_anchor" field.
func (_u *CreditAccountUpdateOne) SetBillingCycleAnchor(v time.Time) *CreditAccountUpdateOne {
	_u.mutation.SetBillingCycleAnchor(v)
	return _u
}

// SetNillableBillingCycleAnchor sets the "billing_cycle_anchor" field if the given value is not nil.
func (_u *CreditAccountUpdateOne) SetNillableBillingCycleAnchor(v *time.Time) *CreditAccountUpdateOne {
	if v != nil {
		_u.SetBillingCycleAnchor(*v)
	}
	return _u
}

// ClearBillingCycleAnchor clears the value of the "billing_cycle_anchor" field.
func (_u *CreditAccountUpdateOne) ClearBillingCycleAnchor() *CreditAccountUpdateOne {
	_u.mutation.ClearBillingCycleAnchor()
	return _u
}

// SetNextCreditGrant sets the "next_credit_grant" field.
func (_u *CreditAccountUpdateOne) SetNextCreditGrant(v time.Time) *CreditAccountUpdateOne {
	_u.mutation.SetNextCreditGrant(v)
	return _u
}

// SetNillableNextCreditGrant sets the "next_credit_grant" field if the given value is not nil.
func (_u *CreditAccountUpdateOne) SetNillableNextCreditGrant(v *time.Time) *CreditAccountUpdateOne {
	if v != nil {
		_u.SetNextCreditGrant(*v)
	}
	return _u
}

// ClearNextCreditGrant clears the value of the "next_credit_grant" field.
func (_u *CreditAccountUpdateOne) ClearNextCreditGrant() *CreditAccountUpdateOne {
	_u.mutation.ClearNextCreditGrant()
	return _u
}

// SetLastGrantDate sets the "last_grant_date" field.
func (_u *CreditAccountUpdateOne) SetLastGrantDate(v time.Time) *CreditAccountUpdateOne {
	_u.mutation.SetLastGrantDate(v)
	return _u
}

// SetNillableLastGrantDate sets the "last_grant_date" field if the given value is not nil.
func (_u *CreditAccountUpdateOne) SetNillableLastGrantDate(v *time.Time) *CreditAccountUpdateOne {
	if v != nil {
		_u.SetLastGrantDate(*v)
	}
	return _u
}

// ClearLastGrantDate clears the value of the "last_grant_date" field.
func (_u *CreditAccountUpdateOne) ClearLastGrantDate() *CreditAccountUpdateOne {
	_u.mutation.ClearLastGrantDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditAccountUpdateOne) SetUpdatedAt(v time.Time) *CreditAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the CreditLedger entity by IDs.
func (_u *CreditAccountUpdateOne) AddLedgerEntryIDs(ids ...string) *CreditAccountUpdateOne {
	_u.mutation.AddLedgerEntryIDs(ids...)
	return _u
}

// AddLedgerEntries adds the "ledger_entries" edges to the CreditLedger entity.
func (_u *CreditAccountUpdateOne) AddLedgerEntries(v ...*CreditLedger) *CreditAccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLedgerEntryIDs(ids...)
}

// Mutation returns the CreditAccountMutation object of the builder.
func (_u *CreditAccountUpdateOne) Mutation() *CreditAccountMutation {
	return _u.mutation
}

// ClearLedgerEntries clears all "ledger_entries" edges to the CreditLedger entity.
func (_u *CreditAccountUpdateOne) ClearLedgerEntries() *CreditAccountUpdateOne {
	_u.mutation.ClearLedgerEntries()
	return _u
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to CreditLedger entities by IDs.
func (_u *CreditAccountUpdateOne) RemoveLedgerEntryIDs(ids ...string) *CreditAccountUpdateOne {
	_u.mutation.RemoveLedgerEntryIDs(ids...)
	return _u
}

// RemoveLedgerEntries removes "ledger_entries" edges to CreditLedger entities.
func (_u *CreditAccountUpdateOne) RemoveLedgerEntries(v ...*CreditLedger) *CreditAccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLedgerEntryIDs(ids...)
}

// Where appends a list predicates to the CreditAccountUpdate builder.
func (_u *CreditAccountUpdateOne) Where(ps ...predicate.CreditAccount) *CreditAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditAccountUpdateOne) Select(field string, fields ...string) *CreditAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditAccount entity.
func (_u *CreditAccountUpdateOne) Save(ctx context.Context) (*CreditAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditAccountUpdateOne) SaveX(ctx context.Context) *CreditAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creditaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CreditAccountUpdateOne) sqlSave(ctx context.Context) (_node *CreditAccount, err error) {
	_spec := sqlgraph.NewUpdateSpec(creditaccount.Table, creditaccount.Columns, sqlgraph.NewFieldSpec(creditaccount.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditaccount.FieldID)
		for _, f := range fields {
			if !creditaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(creditaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(creditaccount.FieldBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(creditaccount.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillingCycleAnchor(); ok {
		_spec.SetField(creditaccount.FieldBillingCycleAnchor, field.TypeTime, value)
	}
	if _u.mutation.BillingCycleAnchorCleared() {
		_spec.ClearField(creditaccount.FieldBillingCycleAnchor, field.TypeTime)
	}
	if value, ok := _u.mutation.NextCreditGrant(); ok {
		_spec.SetField(creditaccount.FieldNextCreditGrant, field.TypeTime, value)
	}
	if _u.mutation.NextCreditGrantCleared() {
		_spec.ClearField(creditaccount.FieldNextCreditGrant, field.TypeTime)
	}
	if value, ok := _u.mutation.LastGrantDate(); ok {
		_spec.SetField(creditaccount.FieldLastGrantDate, field.TypeTime, value)
	}
	if _u.mutation.LastGrantDateCleared() {
		_spec.ClearField(creditaccount.FieldLastGrantDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creditaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LedgerEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditaccount.LedgerEntriesTable,
			Columns: []string{creditaccount.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLedgerEntriesIDs(); len(nodes) > 0 && !_u.mutation.LedgerEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditaccount.LedgerEntriesTable,
			Columns: []string{creditaccount.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditaccount.LedgerEntriesTable,
			Columns: []string{creditaccount.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CreditAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
