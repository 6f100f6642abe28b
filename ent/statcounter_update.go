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
	"github.com/veraz-project/veraz/ent/statcounter"
)

// StatCounterUpdate is the builder for updating StatCounter entities.
type StatCounterUpdate struct {
	config
	hooks    []Hook
	mutation *StatCounterMutation
}

// Where appends a list predicates to the StatCounterUpdate builder.
func (_u *StatCounterUpdate) Where(ps ...predicate.StatCounter) *StatCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *StatCounterUpdate) SetValue(v int64) *StatCounterUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *StatCounterUpdate) SetNillableValue(v *int64) *StatCounterUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *StatCounterUpdate) AddValue(v int64) *StatCounterUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StatCounterUpdate) SetUpdatedAt(v time.Time) *StatCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StatCounterMutation object of the builder.
func (_u *StatCounterUpdate) Mutation() *StatCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StatCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := statcounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StatCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(statcounter.Table, statcounter.Columns, sqlgraph.NewFieldSpec(statcounter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(statcounter.FieldValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(statcounter.FieldValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(statcounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatCounterUpdateOne is the builder for updating a single StatCounter entity.
type StatCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatCounterMutation
}

// SetValue sets the "value" field.
func (_u *StatCounterUpdateOne) SetValue(v int64) *StatCounterUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *StatCounterUpdateOne) SetNillableValue(v *int64) *StatCounterUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *StatCounterUpdateOne) AddValue(v int64) *StatCounterUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StatCounterUpdateOne) SetUpdatedAt(v time.Time) *StatCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StatCounterMutation object of the builder.
func (_u *StatCounterUpdateOne) Mutation() *StatCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatCounterUpdate builder.
func (_u *StatCounterUpdateOne) Where(ps ...predicate.StatCounter) *StatCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatCounterUpdateOne) Select(field string, fields ...string) *StatCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StatCounter entity.
func (_u *StatCounterUpdateOne) Save(ctx context.Context) (*StatCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatCounterUpdateOne) SaveX(ctx context.Context) *StatCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StatCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := statcounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StatCounterUpdateOne) sqlSave(ctx context.Context) (_node *StatCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(statcounter.Table, statcounter.Columns, sqlgraph.NewFieldSpec(statcounter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StatCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statcounter.FieldID)
		for _, f := range fields {
			if !statcounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statcounter.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(statcounter.FieldValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(statcounter.FieldValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(statcounter.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StatCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
