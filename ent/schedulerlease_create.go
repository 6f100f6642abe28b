// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/schedulerlease"
)

// SchedulerLeaseCreate is the builder for creating a SchedulerLease entity.
type SchedulerLeaseCreate struct {
	config
	mutation *SchedulerLeaseMutation
	hooks    []Hook
}

// SetHolder sets the "holder" field.
func (_c *SchedulerLeaseCreate) SetHolder(v string) *SchedulerLeaseCreate {
	_c.mutation.SetHolder(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SchedulerLeaseCreate) SetExpiresAt(v time.Time) *SchedulerLeaseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SchedulerLeaseCreate) SetID(v string) *SchedulerLeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SchedulerLeaseMutation object of the builder.
func (_c *SchedulerLeaseCreate) Mutation() *SchedulerLeaseMutation {
	return _c.mutation
}

// Save creates the SchedulerLease in the database.
func (_c *SchedulerLeaseCreate) Save(ctx context.Context) (*SchedulerLease, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchedulerLeaseCreate) SaveX(ctx context.Context) *SchedulerLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulerLeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulerLeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchedulerLeaseCreate) check() error {
	if _, ok := _c.mutation.Holder(); !ok {
		return &ValidationError{Name: "holder", err: errors.New(`ent: missing required field "SchedulerLease.holder"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "SchedulerLease.expires_at"`)}
	}
	return nil
}

func (_c *SchedulerLeaseCreate) sqlSave(ctx context.Context) (*SchedulerLease, error) {
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
			return nil, fmt.Errorf("unexpected SchedulerLease.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchedulerLeaseCreate) createSpec() (*SchedulerLease, *sqlgraph.CreateSpec) {
	var (
		_node = &SchedulerLease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulerlease.Table, sqlgraph.NewFieldSpec(schedulerlease.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Holder(); ok {
		_spec.SetField(schedulerlease.FieldHolder, field.TypeString, value)
		_node.Holder = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(schedulerlease.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// SchedulerLeaseCreateBulk is the builder for creating many SchedulerLease entities in bulk.
type SchedulerLeaseCreateBulk struct {
	config
	err      error
	builders []*SchedulerLeaseCreate
}

// Save creates the SchedulerLease entities in the database.
func (_c *SchedulerLeaseCreateBulk) Save(ctx context.Context) ([]*SchedulerLease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchedulerLease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchedulerLeaseMutation)
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
func (_c *SchedulerLeaseCreateBulk) SaveX(ctx context.Context) []*SchedulerLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulerLeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulerLeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
