// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/trendingtopic"
)

// TrendingTopicUpdate is the builder for updating TrendingTopic entities.
type TrendingTopicUpdate struct {
	config
	hooks    []Hook
	mutation *TrendingTopicMutation
}

// Where appends a list predicates to the TrendingTopicUpdate builder.
func (_u *TrendingTopicUpdate) Where(ps ...predicate.TrendingTopic) *TrendingTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSnapshotID sets the "snapshot_id" field.
func (_u *TrendingTopicUpdate) SetSnapshotID(v string) *TrendingTopicUpdate {
	_u.mutation.SetSnapshotID(v)
	return _u
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableSnapshotID(v *string) *TrendingTopicUpdate {
	if v != nil {
		_u.SetSnapshotID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TrendingTopicUpdate) SetName(v string) *TrendingTopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableName(v *string) *TrendingTopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *TrendingTopicUpdate) SetKeywords(v []string) *TrendingTopicUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *TrendingTopicUpdate) AppendKeywords(v []string) *TrendingTopicUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// SetTrendScore sets the "trend_score" field.
func (_u *TrendingTopicUpdate) SetTrendScore(v float64) *TrendingTopicUpdate {
	_u.mutation.ResetTrendScore()
	_u.mutation.SetTrendScore(v)
	return _u
}

// SetNillableTrendScore sets the "trend_score" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableTrendScore(v *float64) *TrendingTopicUpdate {
	if v != nil {
		_u.SetTrendScore(*v)
	}
	return _u
}

// AddTrendScore adds value to the "trend_score" field.
func (_u *TrendingTopicUpdate) AddTrendScore(v float64) *TrendingTopicUpdate {
	_u.mutation.AddTrendScore(v)
	return _u
}

// SetVelocity sets the "velocity" field.
func (_u *TrendingTopicUpdate) SetVelocity(v float64) *TrendingTopicUpdate {
	_u.mutation.ResetVelocity()
	_u.mutation.SetVelocity(v)
	return _u
}

// SetNillableVelocity sets the "velocity" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableVelocity(v *float64) *TrendingTopicUpdate {
	if v != nil {
		_u.SetVelocity(*v)
	}
	return _u
}

// AddVelocity adds value to the "velocity" field.
func (_u *TrendingTopicUpdate) AddVelocity(v float64) *TrendingTopicUpdate {
	_u.mutation.AddVelocity(v)
	return _u
}

// SetCorrelation sets the "correlation" field.
func (_u *TrendingTopicUpdate) SetCorrelation(v float64) *TrendingTopicUpdate {
	_u.mutation.ResetCorrelation()
	_u.mutation.SetCorrelation(v)
	return _u
}

// SetNillableCorrelation sets the "correlation" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableCorrelation(v *float64) *TrendingTopicUpdate {
	if v != nil {
		_u.SetCorrelation(*v)
	}
	return _u
}

// AddCorrelation adds value to the "correlation" field.
func (_u *TrendingTopicUpdate) AddCorrelation(v float64) *TrendingTopicUpdate {
	_u.mutation.AddCorrelation(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *TrendingTopicUpdate) SetRelevance(v float64) *TrendingTopicUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableRelevance(v *float64) *TrendingTopicUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *TrendingTopicUpdate) AddRelevance(v float64) *TrendingTopicUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetRisk sets the "risk" field.
func (_u *TrendingTopicUpdate) SetRisk(v float64) *TrendingTopicUpdate {
	_u.mutation.ResetRisk()
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillableRisk(v *float64) *TrendingTopicUpdate {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// AddRisk adds value to the "risk" field.
func (_u *TrendingTopicUpdate) AddRisk(v float64) *TrendingTopicUpdate {
	_u.mutation.AddRisk(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TrendingTopicUpdate) SetPriority(v float64) *TrendingTopicUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TrendingTopicUpdate) SetNillablePriority(v *float64) *TrendingTopicUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TrendingTopicUpdate) AddPriority(v float64) *TrendingTopicUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the TrendingTopicMutation object of the builder.
func (_u *TrendingTopicUpdate) Mutation() *TrendingTopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrendingTopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendingTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrendingTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendingTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrendingTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trendingtopic.Table, trendingtopic.Columns, sqlgraph.NewFieldSpec(trendingtopic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SnapshotID(); ok {
		_spec.SetField(trendingtopic.FieldSnapshotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trendingtopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(trendingtopic.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendingtopic.FieldKeywords, value)
		})
	}
	if value, ok := _u.mutation.TrendScore(); ok {
		_spec.SetField(trendingtopic.FieldTrendScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrendScore(); ok {
		_spec.AddField(trendingtopic.FieldTrendScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity(); ok {
		_spec.SetField(trendingtopic.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity(); ok {
		_spec.AddField(trendingtopic.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correlation(); ok {
		_spec.SetField(trendingtopic.FieldCorrelation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrelation(); ok {
		_spec.AddField(trendingtopic.FieldCorrelation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(trendingtopic.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(trendingtopic.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(trendingtopic.FieldRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRisk(); ok {
		_spec.AddField(trendingtopic.FieldRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(trendingtopic.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(trendingtopic.FieldPriority, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendingtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrendingTopicUpdateOne is the builder for updating a single TrendingTopic entity.
type TrendingTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrendingTopicMutation
}

// SetSnapshotID sets the "snapshot_id" field.
func (_u *TrendingTopicUpdateOne) SetSnapshotID(v string) *TrendingTopicUpdateOne {
	_u.mutation.SetSnapshotID(v)
	return _u
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableSnapshotID(v *string) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetSnapshotID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TrendingTopicUpdateOne) SetName(v string) *TrendingTopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableName(v *string) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *TrendingTopicUpdateOne) SetKeywords(v []string) *TrendingTopicUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *TrendingTopicUpdateOne) AppendKeywords(v []string) *TrendingTopicUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// SetTrendScore sets the "trend_score" field.
func (_u *TrendingTopicUpdateOne) SetTrendScore(v float64) *TrendingTopicUpdateOne {
	_u.mutation.ResetTrendScore()
	_u.mutation.SetTrendScore(v)
	return _u
}

// SetNillableTrendScore sets the "trend_score" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableTrendScore(v *float64) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetTrendScore(*v)
	}
	return _u
}

// AddTrendScore adds value to the "trend_score" field.
func (_u *TrendingTopicUpdateOne) AddTrendScore(v float64) *TrendingTopicUpdateOne {
	_u.mutation.AddTrendScore(v)
	return _u
}

// SetVelocity sets the "velocity" field.
func (_u *TrendingTopicUpdateOne) SetVelocity(v float64) *TrendingTopicUpdateOne {
	_u.mutation.ResetVelocity()
	_u.mutation.SetVelocity(v)
	return _u
}

// SetNillableVelocity sets the "velocity" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableVelocity(v *float64) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetVelocity(*v)
	}
	return _u
}

// AddVelocity adds value to the "velocity" field.
func (_u *TrendingTopicUpdateOne) AddVelocity(v float64) *TrendingTopicUpdateOne {
	_u.mutation.AddVelocity(v)
	return _u
}

// SetCorrelation sets the "correlation" field.
func (_u *TrendingTopicUpdateOne) SetCorrelation(v float64) *TrendingTopicUpdateOne {
	_u.mutation.ResetCorrelation()
	_u.mutation.SetCorrelation(v)
	return _u
}

// SetNillableCorrelation sets the "correlation" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableCorrelation(v *float64) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetCorrelation(*v)
	}
	return _u
}

// AddCorrelation adds value to the "correlation" field.
func (_u *TrendingTopicUpdateOne) AddCorrelation(v float64) *TrendingTopicUpdateOne {
	_u.mutation.AddCorrelation(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *TrendingTopicUpdateOne) SetRelevance(v float64) *TrendingTopicUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableRelevance(v *float64) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *TrendingTopicUpdateOne) AddRelevance(v float64) *TrendingTopicUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetRisk sets the "risk" field.
func (_u *TrendingTopicUpdateOne) SetRisk(v float64) *TrendingTopicUpdateOne {
	_u.mutation.ResetRisk()
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillableRisk(v *float64) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// AddRisk adds value to the "risk" field.
func (_u *TrendingTopicUpdateOne) AddRisk(v float64) *TrendingTopicUpdateOne {
	_u.mutation.AddRisk(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TrendingTopicUpdateOne) SetPriority(v float64) *TrendingTopicUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TrendingTopicUpdateOne) SetNillablePriority(v *float64) *TrendingTopicUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TrendingTopicUpdateOne) AddPriority(v float64) *TrendingTopicUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the TrendingTopicMutation object of the builder.
func (_u *TrendingTopicUpdateOne) Mutation() *TrendingTopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrendingTopicUpdate builder.
func (_u *TrendingTopicUpdateOne) Where(ps ...predicate.TrendingTopic) *TrendingTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrendingTopicUpdateOne) Select(field string, fields ...string) *TrendingTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrendingTopic entity.
func (_u *TrendingTopicUpdateOne) Save(ctx context.Context) (*TrendingTopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendingTopicUpdateOne) SaveX(ctx context.Context) *TrendingTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrendingTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendingTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrendingTopicUpdateOne) sqlSave(ctx context.Context) (_node *TrendingTopic, err error) {
	_spec := sqlgraph.NewUpdateSpec(trendingtopic.Table, trendingtopic.Columns, sqlgraph.NewFieldSpec(trendingtopic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrendingTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trendingtopic.FieldID)
		for _, f := range fields {
			if !trendingtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trendingtopic.FieldID {
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
	if value, ok := _u.mutation.SnapshotID(); ok {
		_spec.SetField(trendingtopic.FieldSnapshotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trendingtopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(trendingtopic.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendingtopic.FieldKeywords, value)
		})
	}
	if value, ok := _u.mutation.TrendScore(); ok {
		_spec.SetField(trendingtopic.FieldTrendScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrendScore(); ok {
		_spec.AddField(trendingtopic.FieldTrendScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity(); ok {
		_spec.SetField(trendingtopic.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity(); ok {
		_spec.AddField(trendingtopic.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correlation(); ok {
		_spec.SetField(trendingtopic.FieldCorrelation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrelation(); ok {
		_spec.AddField(trendingtopic.FieldCorrelation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(trendingtopic.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(trendingtopic.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(trendingtopic.FieldRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRisk(); ok {
		_spec.AddField(trendingtopic.FieldRisk, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(trendingtopic.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(trendingtopic.FieldPriority, field.TypeFloat64, value)
	}
	_node = &TrendingTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendingtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
