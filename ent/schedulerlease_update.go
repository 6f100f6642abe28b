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
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/schedulerlease"
)

// SchedulerLeaseUpdate is the builder for updating SchedulerLease entities.
type SchedulerLeaseUpdate struct {
	config
	hooks    []Hook
	mutation *SchedulerLeaseMutation
}

// Where appends a list predicates to the SchedulerLeaseUpdate builder.
func (_u *SchedulerLeaseUpdate) Where(ps ...predicate.SchedulerLease) *SchedulerLeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHolder sets the "holder" field.
func (_u *SchedulerLeaseUpdate) SetHolder(v string) *SchedulerLeaseUpdate {
	_u.mutation.SetHolder(v)
	return _u
}

// SetNillableHolder sets the "holder" field if the given value is not nil.
func (_u *SchedulerLeaseUpdate) SetNillableHolder(v *string) *SchedulerLeaseUpdate {
	if v != nil {
		_u.SetHolder(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SchedulerLeaseUpdate) SetExpiresAt(v time.Time) *SchedulerLeaseUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SchedulerLeaseUpdate) SetNillableExpiresAt(v *time.Time) *SchedulerLeaseUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the SchedulerLeaseMutation object of the builder.
func (_u *SchedulerLeaseUpdate) Mutation() *SchedulerLeaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchedulerLeaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulerLeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchedulerLeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulerLeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SchedulerLeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulerlease.Table, schedulerlease.Columns, sqlgraph.NewFieldSpec(schedulerlease.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Holder(); ok {
		_spec.SetField(schedulerlease.FieldHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(schedulerlease.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerlease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchedulerLeaseUpdateOne is the builder for updating a single SchedulerLease entity.
type SchedulerLeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchedulerLeaseMutation
}

// SetHolder sets the "holder" field.
func (_u *SchedulerLeaseUpdateOne) SetHolder(v string) *SchedulerLeaseUpdateOne {
	_u.mutation.SetHolder(v)
	return _u
}

// SetNillableHolder sets the "holder" field if the given value is not nil.
func (_u *SchedulerLeaseUpdateOne) SetNillableHolder(v *string) *SchedulerLeaseUpdateOne {
	if v != nil {
		_u.SetHolder(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SchedulerLeaseUpdateOne) SetExpiresAt(v time.Time) *SchedulerLeaseUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SchedulerLeaseUpdateOne) SetNillableExpiresAt(v *time.Time) *SchedulerLeaseUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the SchedulerLeaseMutation object of the builder.
func (_u *SchedulerLeaseUpdateOne) Mutation() *SchedulerLeaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchedulerLeaseUpdate builder.
func (_u *SchedulerLeaseUpdateOne) Where(ps ...predicate.SchedulerLease) *SchedulerLeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchedulerLeaseUpdateOne) Select(field string, fields ...string) *SchedulerLeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchedulerLease entity.
func (_u *SchedulerLeaseUpdateOne) Save(ctx context.Context) (*SchedulerLease, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulerLeaseUpdateOne) SaveX(ctx context.Context) *SchedulerLease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchedulerLeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulerLeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SchedulerLeaseUpdateOne) sqlSave(ctx context.Context) (_node *SchedulerLease, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulerlease.Table, schedulerlease.Columns, sqlgraph.NewFieldSpec(schedulerlease.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchedulerLease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulerlease.FieldID)
		for _, f := range fields {
			if !schedulerlease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedulerlease.FieldID {
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
	if value, ok := _u.mutation.Holder(); ok {
		_spec.SetField(schedulerlease.FieldHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(schedulerlease.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &SchedulerLease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerlease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
