// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursepilot/ent/predicate"
	"github.com/abhisek/coursepilot/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *TurnEventUpdate) SetAgent(v string) *TurnEventUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableAgent(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetUserPreview sets the "user_preview" field.
func (_u *TurnEventUpdate) SetUserPreview(v string) *TurnEventUpdate {
	_u.mutation.SetUserPreview(v)
	return _u
}

// SetNillableUserPreview sets the "user_preview" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUserPreview(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetUserPreview(*v)
	}
	return _u
}

// SetMessagesAppended sets the "messages_appended" field.
func (_u *TurnEventUpdate) SetMessagesAppended(v int) *TurnEventUpdate {
	_u.mutation.ResetMessagesAppended()
	_u.mutation.SetMessagesAppended(v)
	return _u
}

// SetNillableMessagesAppended sets the "messages_appended" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableMessagesAppended(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetMessagesAppended(*v)
	}
	return _u
}

// AddMessagesAppended adds value to the "messages_appended" field.
func (_u *TurnEventUpdate) AddMessagesAppended(v int) *TurnEventUpdate {
	_u.mutation.AddMessagesAppended(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *TurnEventUpdate) SetCurrentStep(v int) *TurnEventUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableCurrentStep(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *TurnEventUpdate) AddCurrentStep(v int) *TurnEventUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetQuizPhase sets the "quiz_phase" field.
func (_u *TurnEventUpdate) SetQuizPhase(v string) *TurnEventUpdate {
	_u.mutation.SetQuizPhase(v)
	return _u
}

// SetNillableQuizPhase sets the "quiz_phase" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableQuizPhase(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetQuizPhase(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Agent(); ok {
		if err := turnevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.agent": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(turnevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPreview(); ok {
		_spec.SetField(turnevent.FieldUserPreview, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessagesAppended(); ok {
		_spec.SetField(turnevent.FieldMessagesAppended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessagesAppended(); ok {
		_spec.AddField(turnevent.FieldMessagesAppended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(turnevent.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(turnevent.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizPhase(); ok {
		_spec.SetField(turnevent.FieldQuizPhase, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *TurnEventUpdateOne) SetAgent(v string) *TurnEventUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableAgent(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetUserPreview sets the "user_preview" field.
func (_u *TurnEventUpdateOne) SetUserPreview(v string) *TurnEventUpdateOne {
	_u.mutation.SetUserPreview(v)
	return _u
}

// SetNillableUserPreview sets the "user_preview" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUserPreview(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUserPreview(*v)
	}
	return _u
}

// SetMessagesAppended sets the "messages_appended" field.
func (_u *TurnEventUpdateOne) SetMessagesAppended(v int) *TurnEventUpdateOne {
	_u.mutation.ResetMessagesAppended()
	_u.mutation.SetMessagesAppended(v)
	return _u
}

// SetNillableMessagesAppended sets the "messages_appended" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableMessagesAppended(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetMessagesAppended(*v)
	}
	return _u
}

// AddMessagesAppended adds value to the "messages_appended" field.
func (_u *TurnEventUpdateOne) AddMessagesAppended(v int) *TurnEventUpdateOne {
	_u.mutation.AddMessagesAppended(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *TurnEventUpdateOne) SetCurrentStep(v int) *TurnEventUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableCurrentStep(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *TurnEventUpdateOne) AddCurrentStep(v int) *TurnEventUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetQuizPhase sets the "quiz_phase" field.
func (_u *TurnEventUpdateOne) SetQuizPhase(v string) *TurnEventUpdateOne {
	_u.mutation.SetQuizPhase(v)
	return _u
}

// SetNillableQuizPhase sets the "quiz_phase" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableQuizPhase(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetQuizPhase(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Agent(); ok {
		if err := turnevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.agent": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(turnevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPreview(); ok {
		_spec.SetField(turnevent.FieldUserPreview, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessagesAppended(); ok {
		_spec.SetField(turnevent.FieldMessagesAppended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessagesAppended(); ok {
		_spec.AddField(turnevent.FieldMessagesAppended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(turnevent.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(turnevent.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizPhase(); ok {
		_spec.SetField(turnevent.FieldQuizPhase, field.TypeString, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
