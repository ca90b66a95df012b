// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftlabs/weft/ent/creditaccount"
	"github.com/weftlabs/weft/ent/creditledger"
)

// CreditAccountCreate is the builder for creating a CreditAccount entity.
type CreditAccountCreate struct {
	config
	mutation *CreditAccountMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CreditAccountCreate) SetUserID(v string) *CreditAccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBalance sets the "balance" field.
func (_c *CreditAccountCreate) SetBalance(v float64) *CreditAccountCreate {
	_c.mutation.SetBalance(v)
	return _c
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableBalance(v *float64) *CreditAccountCreate {
	if v != nil {
		_c.SetBalance(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *CreditAccountCreate) SetTier(v string) *CreditAccountCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableTier(v *string) *CreditAccountCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetBillingCycleAnchor sets the "billing_cycle_anchor" field.
func (_c *CreditAccountCreate) SetBillingCycleAnchor(v time.Time) *CreditAccountCreate {
	_c.mutation.SetBillingCycleAnchor(v)
	return _c
}

// SetNillableBillingCycleAnchor sets the "billing_cycle_anchor" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableBillingCycleAnchor(v *time.Time) *CreditAccountCreate {
	if v != nil {
		_c.SetBillingCycleAnchor(*v)
	}
	return _c
}

// SetNextCreditGrant sets the "next_credit_grant" field.
func (_c *CreditAccountCreate) SetNextCreditGrant(v time.Time) *CreditAccountCreate {
	_c.mutation.SetNextCreditGrant(v)
	return _c
}

// SetNillableNextCreditGrant sets the "next_credit_grant" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableNextCreditGrant(v *time.Time) *CreditAccountCreate {
	if v != nil {
		_c.SetNextCreditGrant(*v)
	}
	return _c
}

// SetLastGrantDate sets the "last_grant_date" field.
func (_c *CreditAccountCreate) SetLastGrantDate(v time.Time) *CreditAccountCreate {
	_c.mutation.SetLastGrantDate(v)
	return _c
}

// SetNillableLastGrantDate sets the "last_grant_date" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableLastGrantDate(v *time.Time) *CreditAccountCreate {
	if v != nil {
		_c.SetLastGrantDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditAccountCreate) SetCreatedAt(v time.Time) *CreditAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableCreatedAt(v *time.Time) *CreditAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreditAccountCreate) SetUpdatedAt(v time.Time) *CreditAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreditAccountCreate) SetNillableUpdatedAt(v *time.Time) *CreditAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditAccountCreate) SetID(v string) *CreditAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the CreditLedger entity by IDs.
func (_c *CreditAccountCreate) AddLedgerEntryIDs(ids ...string) *CreditAccountCreate {
	_c.mutation.AddLedgerEntryIDs(ids...)
	return _c
}

// AddLedgerEntries adds the "ledger_entries" edges to the CreditLedger entity.
func (_c *CreditAccountCreate) AddLedgerEntries(v ...*CreditLedger) *CreditAccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLedgerEntryIDs(ids...)
}

// Mutation returns the CreditAccountMutation object of the builder.
func (_c *CreditAccountCreate) Mutation() *CreditAccountMutation {
	return _c.mutation
}

// Save creates the CreditAccount in the database.
func (_c *CreditAccountCreate) Save(ctx context.Context) (*CreditAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditAccountCreate) SaveX(ctx context.Context) *CreditAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditAccountCreate) defaults() {
	if _, ok := _c.mutation.Balance(); !ok {
		v := creditaccount.DefaultBalance
		_c.mutation.SetBalance(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := creditaccount.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creditaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := creditaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditAccountCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreditAccount.user_id"`)}
	}
	if _, ok := _c.mutation.Balance(); !ok {
		return &ValidationError{Name: "balance", err: errors.New(`ent: missing required field "CreditAccount.balance"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "CreditAccount.tier"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditAccount.updated_at"`)}
	}
	return nil
}

func (_c *CreditAccountCreate) sqlSave(ctx context.Context) (*CreditAccount, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CreditAccount.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditAccountCreate) createSpec() (*CreditAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creditaccount.Table, sqlgraph.NewFieldSpec(creditaccount.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(creditaccount.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Balance(); ok {
		_spec.SetField(creditaccount.FieldBalance, field.TypeFloat64, value)
		_node.Balance = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(creditaccount.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.BillingCycleAnchor(); ok {
		_spec.SetField(creditaccount.FieldBillingCycleAnchor, field.TypeTime, value)
		_node.BillingCycleAnchor = &value
	}
	if value, ok := _c.mutation.NextCreditGrant(); ok {
		_spec.SetField(creditaccount.FieldNextCreditGrant, field.TypeTime, value)
		_node.NextCreditGrant = &value
	}
	if value, ok := _c.mutation.LastGrantDate(); ok {
		_spec.SetField(creditaccount.FieldLastGrantDate, field.TypeTime, value)
		_node.LastGrantDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creditaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(creditaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CreditAccountCreateBulk is the builder for creating many CreditAccount entities in bulk.
type CreditAccountCreateBulk struct {
	config
	err      error
	builders []*CreditAccountCreate
}

// Save creates the CreditAccount entities in the database.
func (_c *CreditAccountCreateBulk) Save(ctx context.Context) ([]*CreditAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditAccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CreditAccountCreateBulk) SaveX(ctx context.Context) []*CreditAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
