// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursepilot/ent/sessionsnapshot"
)

// SessionSnapshotCreate is the builder for creating a SessionSnapshot entity.
type SessionSnapshotCreate struct {
	config
	mutation *SessionSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionSnapshotCreate) SetSessionID(v string) *SessionSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionSnapshotCreate) SetTimestamp(v time.Time) *SessionSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionSnapshotCreate) SetNillableTimestamp(v *time.Time) *SessionSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *SessionSnapshotCreate) SetData(v string) *SessionSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_c *SessionSnapshotCreate) Mutation() *SessionSnapshotMutation {
	return _c.mutation
}

// Save creates the SessionSnapshot in the database.
func (_c *SessionSnapshotCreate) Save(ctx context.Context) (*SessionSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionSnapshotCreate) SaveX(ctx context.Context) *SessionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionsnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionSnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionSnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SessionSnapshot.data"`)}
	}
	return nil
}

func (_c *SessionSnapshotCreate) sqlSave(ctx context.Context) (*SessionSnapshot, error) {
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

func (_c *SessionSnapshotCreate) createSpec() (*SessionSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionsnapshot.Table, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionsnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionsnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(sessionsnapshot.FieldData, field.TypeString, value)
		_node.Data = value
	}
	return _node, _spec
}

// SessionSnapshotCreateBulk is the builder for creating many SessionSnapshot entities in bulk.
type SessionSnapshotCreateBulk struct {
	config
	err      error
	builders []*SessionSnapshotCreate
}

// Save creates the SessionSnapshot entities in the database.
func (_c *SessionSnapshotCreateBulk) Save(ctx context.Context) ([]*SessionSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSnapshotMutation)
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
func (_c *SessionSnapshotCreateBulk) SaveX(ctx context.Context) []*SessionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
