// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftlabs/weft/ent/predicate"
	"github.com/weftlabs/weft/ent/triggerevent"
)

// TriggerEventUpdate is the builder for updating TriggerEvent entities.
type TriggerEventUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerEventMutation
}

// Where appends a list predicates to the TriggerEventUpdate builder.
func (_u *TriggerEventUpdate) Where(ps ...predicate.TriggerEvent) *TriggerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRawData sets the "raw_data" field.
func (_u *TriggerEventUpdate) SetRawData(v map[string]interface{}) *TriggerEventUpdate {
	_u.mutation.SetRawData(v)
	return _u
}

// ClearRawData clears the value of the "raw_data" field.
func (_u *TriggerEventUpdate) ClearRawData() *TriggerEventUpdate {
	_u.mutation.ClearRawData()
	return _u
}

// SetResult sets the "result" field.
func (_u *TriggerEventUpdate) SetResult(v map[string]interface{}) *TriggerEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TriggerEventUpdate) ClearResult() *TriggerEventUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TriggerEventUpdate) SetSuccess(v bool) *TriggerEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableSuccess(v *bool) *TriggerEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetShouldExecute sets the "should_execute" field.
func (_u *TriggerEventUpdate) SetShouldExecute(v bool) *TriggerEventUpdate {
	_u.mutation.SetShouldExecute(v)
	return _u
}

// SetNillableShouldExecute sets the "should_execute" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableShouldExecute(v *bool) *TriggerEventUpdate {
	if v != nil {
		_u.SetShouldExecute(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *TriggerEventUpdate) SetError(v string) *TriggerEventUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TriggerEventUpdate) SetNillableError(v *string) *TriggerEventUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TriggerEventUpdate) ClearError() *TriggerEventUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the TriggerEventMutation object of the builder.
func (_u *TriggerEventUpdate) Mutation() *TriggerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TriggerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(triggerevent.Table, triggerevent.Columns, sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(triggerevent.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.RawData(); ok {
		_spec.SetField(triggerevent.FieldRawData, field.TypeJSON, value)
	}
	if _u.mutation.RawDataCleared() {
		_spec.ClearField(triggerevent.FieldRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(triggerevent.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(triggerevent.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(triggerevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShouldExecute(); ok {
		_spec.SetField(triggerevent.FieldShouldExecute, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(triggerevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(triggerevent.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerEventUpdateOne is the builder for updating a single TriggerEvent entity.
type TriggerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerEventMutation
}

// SetRawData sets the "raw_data" field.
func (_u *TriggerEventUpdateOne) SetRawData(v map[string]interface{}) *TriggerEventUpdateOne {
	_u.mutation.SetRawData(v)
	return _u
}

// ClearRawData clears the value of the "raw_data" field.
func (_u *TriggerEventUpdateOne) ClearRawData() *TriggerEventUpdateOne {
	_u.mutation.ClearRawData()
	return _u
}

// SetResult sets the "result" field.
func (_u *TriggerEventUpdateOne) SetResult(v map[string]interface{}) *TriggerEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TriggerEventUpdateOne) ClearResult() *TriggerEventUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TriggerEventUpdateOne) SetSuccess(v bool) *TriggerEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableSuccess(v *bool) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetShouldExecute sets the "should_execute" field.
func (_u *TriggerEventUpdateOne) SetShouldExecute(v bool) *TriggerEventUpdateOne {
	_u.mutation.SetShouldExecute(v)
	return _u
}

// SetNillableShouldExecute sets the "should_execute" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableShouldExecute(v *bool) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetShouldExecute(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *TriggerEventUpdateOne) SetError(v string) *TriggerEventUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TriggerEventUpdateOne) SetNillableError(v *string) *TriggerEventUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TriggerEventUpdateOne) ClearError() *TriggerEventUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the TriggerEventMutation object of the builder.
func (_u *TriggerEventUpdateOne) Mutation() *TriggerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriggerEventUpdate builder.
func (_u *TriggerEventUpdateOne) Where(ps ...predicate.TriggerEvent) *TriggerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerEventUpdateOne) Select(field string, fields ...string) *TriggerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerEvent entity.
func (_u *TriggerEventUpdateOne) Save(ctx context.Context) (*TriggerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerEventUpdateOne) SaveX(ctx context.Context) *TriggerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TriggerEventUpdateOne) sqlSave(ctx context.Context) (_node *TriggerEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(triggerevent.Table, triggerevent.Columns, sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggerevent.FieldID)
		for _, f := range fields {
			if !triggerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggerevent.FieldID {
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
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(triggerevent.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.RawData(); ok {
		_spec.SetField(triggerevent.FieldRawData, field.TypeJSON, value)
	}
	if _u.mutation.RawDataCleared() {
		_spec.ClearField(triggerevent.FieldRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(triggerevent.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(triggerevent.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(triggerevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShouldExecute(); ok {
		_spec.SetField(triggerevent.FieldShouldExecute, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(triggerevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(triggerevent.FieldError, field.TypeString)
	}
	_node = &TriggerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
