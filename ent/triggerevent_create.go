// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftlabs/weft/ent/triggerevent"
)

// TriggerEventCreate is the builder for creating a TriggerEvent entity.
type TriggerEventCreate struct {
	config
	mutation *TriggerEventMutation
	hooks    []Hook
}

// SetTriggerID sets the "trigger_id" field.
func (_c *TriggerEventCreate) SetTriggerID(v string) *TriggerEventCreate {
	_c.mutation.SetTriggerID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *TriggerEventCreate) SetAgentID(v string) *TriggerEventCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableAgentID(v *string) *TriggerEventCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *TriggerEventCreate) SetTriggerType(v string) *TriggerEventCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetRawData sets the "raw_data" field.
func (_c *TriggerEventCreate) SetRawData(v map[string]interface{}) *TriggerEventCreate {
	_c.mutation.SetRawData(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *TriggerEventCreate) SetResult(v map[string]interface{}) *TriggerEventCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TriggerEventCreate) SetSuccess(v bool) *TriggerEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableSuccess(v *bool) *TriggerEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetShouldExecute sets the "should_execute" field.
func (_c *TriggerEventCreate) SetShouldExecute(v bool) *TriggerEventCreate {
	_c.mutation.SetShouldExecute(v)
	return _c
}

// SetNillableShouldExecute sets the "should_execute" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableShouldExecute(v *bool) *TriggerEventCreate {
	if v != nil {
		_c.SetShouldExecute(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *TriggerEventCreate) SetError(v string) *TriggerEventCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableError(v *string) *TriggerEventCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerEventCreate) SetCreatedAt(v time.Time) *TriggerEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerEventCreate) SetNillableCreatedAt(v *time.Time) *TriggerEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerEventCreate) SetID(v string) *TriggerEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TriggerEventMutation object of the builder.
func (_c *TriggerEventCreate) Mutation() *TriggerEventMutation {
	return _c.mutation
}

// Save creates the TriggerEvent in the database.
func (_c *TriggerEventCreate) Save(ctx context.Context) (*TriggerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerEventCreate) SaveX(ctx context.Context) *TriggerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerEventCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := triggerevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ShouldExecute(); !ok {
		v := triggerevent.DefaultShouldExecute
		_c.mutation.SetShouldExecute(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggerevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerEventCreate) check() error {
	if _, ok := _c.mutation.TriggerID(); !ok {
		return &ValidationError{Name: "trigger_id", err: errors.New(`ent: missing required field "TriggerEvent.trigger_id"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "TriggerEvent.trigger_type"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TriggerEvent.success"`)}
	}
	if _, ok := _c.mutation.ShouldExecute(); !ok {
		return &ValidationError{Name: "should_execute", err: errors.New(`ent: missing required field "TriggerEvent.should_execute"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerEvent.created_at"`)}
	}
	return nil
}

func (_c *TriggerEventCreate) sqlSave(ctx context.Context) (*TriggerEvent, error) {
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
			return nil, fmt.Errorf("unexpected TriggerEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerEventCreate) createSpec() (*TriggerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggerevent.Table, sqlgraph.NewFieldSpec(triggerevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TriggerID(); ok {
		_spec.SetField(triggerevent.FieldTriggerID, field.TypeString, value)
		_node.TriggerID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(triggerevent.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(triggerevent.FieldTriggerType, field.TypeString, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.RawData(); ok {
		_spec.SetField(triggerevent.FieldRawData, field.TypeJSON, value)
		_node.RawData = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(triggerevent.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(triggerevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ShouldExecute(); ok {
		_spec.SetField(triggerevent.FieldShouldExecute, field.TypeBool, value)
		_node.ShouldExecute = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(triggerevent.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggerevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TriggerEventCreateBulk is the builder for creating many TriggerEvent entities in bulk.
type TriggerEventCreateBulk struct {
	config
	err      error
	builders []*TriggerEventCreate
}

// Save creates the TriggerEvent entities in the database.
func (_c *TriggerEventCreateBulk) Save(ctx context.Context) ([]*TriggerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerEventMutation)
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
func (_c *TriggerEventCreateBulk) SaveX(ctx context.Context) []*TriggerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
