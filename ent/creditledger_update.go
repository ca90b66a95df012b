// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftlabs/weft/ent/creditledger"
	"github.com/weftlabs/weft/ent/predicate"
)

// CreditLedgerUpdate is the builder for updating CreditLedger entities.
type CreditLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *CreditLedgerMutation
}

// Where appends a list predicates to the CreditLedgerUpdate builder.
func (_u *CreditLedgerUpdate) Where(ps ...predicate.CreditLedger) *CreditLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CreditLedgerMutation object of the builder.
func (_u *CreditLedgerUpdate) Mutation() *CreditLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditLedgerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditLedgerUpdate) check() error {
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditLedger.account"`)
	}
	return nil
}

func (_u *CreditLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditledger.Table, creditledger.Columns, sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.LlmResponseIDCleared() {
		_spec.ClearField(creditledger.FieldLlmResponseID, field.TypeString)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(creditledger.FieldThreadID, field.TypeString)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(creditledger.FieldModel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditLedgerUpdateOne is the builder for updating a single CreditLedger entity.
type CreditLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditLedgerMutation
}

// Mutation returns the CreditLedgerMutation object of the builder.
func (_u *CreditLedgerUpdateOne) Mutation() *CreditLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreditLedgerUpdate builder.
func (_u *CreditLedgerUpdateOne) Where(ps ...predicate.CreditLedger) *CreditLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditLedgerUpdateOne) Select(field string, fields ...string) *CreditLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditLedger entity.
func (_u *CreditLedgerUpdateOne) Save(ctx context.Context) (*CreditLedger, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditLedgerUpdateOne) SaveX(ctx context.Context) *CreditLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditLedgerUpdateOne) check() error {
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditLedger.account"`)
	}
	return nil
}

func (_u *CreditLedgerUpdateOne) sqlSave(ctx context.Context) (_node *CreditLedger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditledger.Table, creditledger.Columns, sqlgraph.NewFieldSpec(creditledger.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditledger.FieldID)
		for _, f := range fields {
			if !creditledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditledger.FieldID {
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
	if _u.mutation.LlmResponseIDCleared() {
		_spec.ClearField(creditledger.FieldLlmResponseID, field.TypeString)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(creditledger.FieldThreadID, field.TypeString)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(creditledger.FieldModel, field.TypeString)
	}
	_node = &CreditLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
