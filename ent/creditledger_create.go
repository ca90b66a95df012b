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

// CreditLedgerCreate is the builder for creating a CreditLedger entity.
type CreditLedgerCreate struct {
	config
	mutation *CreditLedgerMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *CreditLedgerCreate) SetAccountID(v string) *CreditLedgerCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CreditLedgerCreate) SetAmount(v float64) *CreditLedgerCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *CreditLedgerCreate) SetBalanceAfter(v float64) *CreditLedgerCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetType sets the "type" field.
func (_c *CreditLedgerCreate) SetType(v creditledger.Type) *CreditLedgerCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetLlmResponseID sets the "llm_response_id" field.
func (_c *CreditLedgerCreate) SetLlmResponseID(v string) *CreditLedgerCreate {
	_c.mutation.SetLlmResponseID(v)
	return _c
}

// SetNillableLlmResponseID sets the "llm_response_id" field if the given value is not nil.
func (_c *CreditLedgerCreate) SetNillableLlmResponseID(v *string) *CreditLedgerCreate {
	if v != nil {
		_c.SetLlmResponseID(*v)
	}
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *CreditLedgerCreate) SetThreadID(v string) *CreditLedgerCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *CreditLedgerCreate) SetNillableThreadID(v *string) *CreditLedgerCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *CreditLedgerCreate) SetModel(v string) *CreditLedgerCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *CreditLedgerCreate) SetNillableModel(v *string) *CreditLedgerCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CreditLedgerCreate) SetDescription(v string) *CreditLedgerCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditLedgerCreate) SetCreatedAt(v time.Time) *CreditLedgerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditLedgerCreate) SetNillableCreatedAt(v *time.Time) *CreditLedgerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditLedgerCreate) SetID(v string) *CreditLedgerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the CreditAccount entity.
func (_c *CreditLedgerCreate) SetAccount(v *CreditAccount) *CreditLedgerCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the CreditLedgerMutation object of the builder.
func (_c *CreditLedgerCreate) Mutation() *CreditLedgerMutation {
	return _c.mutation
}

// Save creates the CreditLedger in the database.
func (_c *CreditLedgerCreate) Save(ctx context.Context) (*CreditLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditLedgerCreate) SaveX(ctx context.Context) *CreditLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditLedgerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creditledger.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditLedgerCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "CreditLedger.account_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CreditLedger.amount"`)}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "CreditLedger.balance_after"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "CreditLedger.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := creditledger.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CreditLedger.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CreditLedger.description"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditLedger.created_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "CreditLedger.account"`)}
	}
	return nil
}

func (_c *CreditLedgerCreate) sqlSave(ctx context.Context) (*CreditLedger, error) {
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
			return nil, fmt.Errorf("unexpected CreditLedger.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditLedgerCreate) createSpec() (*CreditLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creditledger.Table, sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(creditledger.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(creditledger.FieldBalanceAfter, field.TypeFloat64, value)
		_node.BalanceAfter = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(creditledger.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.LlmResponseID(); ok {
		_spec.SetField(creditledger.FieldLlmResponseID, field.TypeString, value)
		_node.LlmResponseID = &value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(creditledger.FieldThreadID, field.TypeString, value)
		_node.ThreadID = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(creditledger.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(creditledger.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creditledger.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditledger.AccountTable,
			Columns: []string{creditledger.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditaccount.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CreditLedgerCreateBulk is the builder for creating many CreditLedger entities in bulk.
type CreditLedgerCreateBulk struct {
	config
	err      error
	builders []*CreditLedgerCreate
}

// Save creates the CreditLedger entities in the database.
func (_c *CreditLedgerCreateBulk) Save(ctx context.Context) ([]*CreditLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditLedgerMutation)
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
func (_c *CreditLedgerCreateBulk) SaveX(ctx context.Context) []*CreditLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
