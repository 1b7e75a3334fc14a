// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursepilot/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *TurnEventCreate) SetAgent(v string) *TurnEventCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetUserPreview sets the "user_preview" field.
func (_c *TurnEventCreate) SetUserPreview(v string) *TurnEventCreate {
	_c.mutation.SetUserPreview(v)
	return _c
}

// SetNillableUserPreview sets the "user_preview" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableUserPreview(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetUserPreview(*v)
	}
	return _c
}

// SetMessagesAppended sets the "messages_appended" field.
func (_c *TurnEventCreate) SetMessagesAppended(v int) *TurnEventCreate {
	_c.mutation.SetMessagesAppended(v)
	return _c
}

// SetNillableMessagesAppended sets the "messages_appended" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableMessagesAppended(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetMessagesAppended(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *TurnEventCreate) SetCurrentStep(v int) *TurnEventCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableCurrentStep(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetQuizPhase sets the "quiz_phase" field.
func (_c *TurnEventCreate) SetQuizPhase(v string) *TurnEventCreate {
	_c.mutation.SetQuizPhase(v)
	return _c
}

// SetNillableQuizPhase sets the "quiz_phase" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableQuizPhase(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetQuizPhase(*v)
	}
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserPreview(); !ok {
		v := turnevent.DefaultUserPreview
		_c.mutation.SetUserPreview(v)
	}
	if _, ok := _c.mutation.MessagesAppended(); !ok {
		v := turnevent.DefaultMessagesAppended
		_c.mutation.SetMessagesAppended(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := turnevent.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.QuizPhase(); !ok {
		v := turnevent.DefaultQuizPhase
		_c.mutation.SetQuizPhase(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "TurnEvent.agent"`)}
	}
	if v, ok := _c.mutation.Agent(); ok {
		if err := turnevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserPreview(); !ok {
		return &ValidationError{Name: "user_preview", err: errors.New(`ent: missing required field "TurnEvent.user_preview"`)}
	}
	if _, ok := _c.mutation.MessagesAppended(); !ok {
		return &ValidationError{Name: "messages_appended", err: errors.New(`ent: missing required field "TurnEvent.messages_appended"`)}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "TurnEvent.current_step"`)}
	}
	if _, ok := _c.mutation.QuizPhase(); !ok {
		return &ValidationError{Name: "quiz_phase", err: errors.New(`ent: missing required field "TurnEvent.quiz_phase"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(turnevent.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.UserPreview(); ok {
		_spec.SetField(turnevent.FieldUserPreview, field.TypeString, value)
		_node.UserPreview = value
	}
	if value, ok := _c.mutation.MessagesAppended(); ok {
		_spec.SetField(turnevent.FieldMessagesAppended, field.TypeInt, value)
		_node.MessagesAppended = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(turnevent.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.QuizPhase(); ok {
		_spec.SetField(turnevent.FieldQuizPhase, field.TypeString, value)
		_node.QuizPhase = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
