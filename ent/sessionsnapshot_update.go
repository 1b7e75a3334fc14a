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
	"github.com/abhisek/coursepilot/ent/predicate"
	"github.com/abhisek/coursepilot/ent/sessionsnapshot"
)

// SessionSnapshotUpdate is the builder for updating SessionSnapshot entities.
type SessionSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SessionSnapshotMutation
}

// Where appends a list predicates to the SessionSnapshotUpdate builder.
func (_u *SessionSnapshotUpdate) Where(ps ...predicate.SessionSnapshot) *SessionSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSnapshotUpdate) SetSessionID(v string) *SessionSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableSessionID(v *string) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *SessionSnapshotUpdate) SetTimestamp(v time.Time) *SessionSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableTimestamp(v *time.Time) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SessionSnapshotUpdate) SetData(v string) *SessionSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *SessionSnapshotUpdate) SetNillableData(v *string) *SessionSnapshotUpdate {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_u *SessionSnapshotUpdate) Mutation() *SessionSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSnapshotUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsnapshot.Table, sessionsnapshot.Columns, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(sessionsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionsnapshot.FieldData, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionSnapshotUpdateOne is the builder for updating a single SessionSnapshot entity.
type SessionSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSnapshotUpdateOne) SetSessionID(v string) *SessionSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableSessionID(v *string) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *SessionSnapshotUpdateOne) SetTimestamp(v time.Time) *SessionSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SessionSnapshotUpdateOne) SetData(v string) *SessionSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *SessionSnapshotUpdateOne) SetNillableData(v *string) *SessionSnapshotUpdateOne {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_u *SessionSnapshotUpdateOne) Mutation() *SessionSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionSnapshotUpdate builder.
func (_u *SessionSnapshotUpdateOne) Where(ps ...predicate.SessionSnapshot) *SessionSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionSnapshotUpdateOne) Select(field string, fields ...string) *SessionSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionSnapshot entity.
func (_u *SessionSnapshotUpdateOne) Save(ctx context.Context) (*SessionSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSnapshotUpdateOne) SaveX(ctx context.Context) *SessionSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *SessionSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsnapshot.Table, sessionsnapshot.Columns, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionsnapshot.FieldID)
		for _, f := range fields {
			if !sessionsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionsnapshot.FieldID {
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
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(sessionsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionsnapshot.FieldData, field.TypeString, value)
	}
	_node = &SessionSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
