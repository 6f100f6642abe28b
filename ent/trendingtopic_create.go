// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/trendingtopic"
)

// TrendingTopicCreate is the builder for creating a TrendingTopic entity.
type TrendingTopicCreate struct {
	config
	mutation *TrendingTopicMutation
	hooks    []Hook
}

// SetSnapshotID sets the "snapshot_id" field.
func (_c *TrendingTopicCreate) SetSnapshotID(v string) *TrendingTopicCreate {
	_c.mutation.SetSnapshotID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TrendingTopicCreate) SetName(v string) *TrendingTopicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *TrendingTopicCreate) SetKeywords(v []string) *TrendingTopicCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetTrendScore sets the "trend_score" field.
func (_c *TrendingTopicCreate) SetTrendScore(v float64) *TrendingTopicCreate {
	_c.mutation.SetTrendScore(v)
	return _c
}

// SetVelocity sets the "velocity" field.
func (_c *TrendingTopicCreate) SetVelocity(v float64) *TrendingTopicCreate {
	_c.mutation.SetVelocity(v)
	return _c
}

// SetCorrelation sets the "correlation" field.
func (_c *TrendingTopicCreate) SetCorrelation(v float64) *TrendingTopicCreate {
	_c.mutation.SetCorrelation(v)
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *TrendingTopicCreate) SetRelevance(v float64) *TrendingTopicCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetRisk sets the "risk" field.
func (_c *TrendingTopicCreate) SetRisk(v float64) *TrendingTopicCreate {
	_c.mutation.SetRisk(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TrendingTopicCreate) SetPriority(v float64) *TrendingTopicCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *TrendingTopicCreate) SetDetectedAt(v time.Time) *TrendingTopicCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *TrendingTopicCreate) SetNillableDetectedAt(v *time.Time) *TrendingTopicCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrendingTopicCreate) SetID(v string) *TrendingTopicCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrendingTopicMutation object of the builder.
func (_c *TrendingTopicCreate) Mutation() *TrendingTopicMutation {
	return _c.mutation
}

// Save creates the TrendingTopic in the database.
func (_c *TrendingTopicCreate) Save(ctx context.Context) (*TrendingTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrendingTopicCreate) SaveX(ctx context.Context) *TrendingTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendingTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendingTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrendingTopicCreate) defaults() {
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := trendingtopic.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrendingTopicCreate) check() error {
	if _, ok := _c.mutation.SnapshotID(); !ok {
		return &ValidationError{Name: "snapshot_id", err: errors.New(`ent: missing required field "TrendingTopic.snapshot_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TrendingTopic.name"`)}
	}
	if _, ok := _c.mutation.Keywords(); !ok {
		return &ValidationError{Name: "keywords", err: errors.New(`ent: missing required field "TrendingTopic.keywords"`)}
	}
	if _, ok := _c.mutation.TrendScore(); !ok {
		return &ValidationError{Name: "trend_score", err: errors.New(`ent: missing required field "TrendingTopic.trend_score"`)}
	}
	if _, ok := _c.mutation.Velocity(); !ok {
		return &ValidationError{Name: "velocity", err: errors.New(`ent: missing required field "TrendingTopic.velocity"`)}
	}
	if _, ok := _c.mutation.Correlation(); !ok {
		return &ValidationError{Name: "correlation", err: errors.New(`ent: missing required field "TrendingTopic.correlation"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "TrendingTopic.relevance"`)}
	}
	if _, ok := _c.mutation.Risk(); !ok {
		return &ValidationError{Name: "risk", err: errors.New(`ent: missing required field "TrendingTopic.risk"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "TrendingTopic.priority"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "TrendingTopic.detected_at"`)}
	}
	return nil
}

func (_c *TrendingTopicCreate) sqlSave(ctx context.Context) (*TrendingTopic, error) {
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
			return nil, fmt.Errorf("unexpected TrendingTopic.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrendingTopicCreate) createSpec() (*TrendingTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &TrendingTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trendingtopic.Table, sqlgraph.NewFieldSpec(trendingtopic.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SnapshotID(); ok {
		_spec.SetField(trendingtopic.FieldSnapshotID, field.TypeString, value)
		_node.SnapshotID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(trendingtopic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(trendingtopic.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.TrendScore(); ok {
		_spec.SetField(trendingtopic.FieldTrendScore, field.TypeFloat64, value)
		_node.TrendScore = value
	}
	if value, ok := _c.mutation.Velocity(); ok {
		_spec.SetField(trendingtopic.FieldVelocity, field.TypeFloat64, value)
		_node.Velocity = value
	}
	if value, ok := _c.mutation.Correlation(); ok {
		_spec.SetField(trendingtopic.FieldCorrelation, field.TypeFloat64, value)
		_node.Correlation = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(trendingtopic.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.Risk(); ok {
		_spec.SetField(trendingtopic.FieldRisk, field.TypeFloat64, value)
		_node.Risk = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(trendingtopic.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(trendingtopic.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	return _node, _spec
}

// TrendingTopicCreateBulk is the builder for creating many TrendingTopic entities in bulk.
type TrendingTopicCreateBulk struct {
	config
	err      error
	builders []*TrendingTopicCreate
}

// Save creates the TrendingTopic entities in the database.
func (_c *TrendingTopicCreateBulk) Save(ctx context.Context) ([]*TrendingTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrendingTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrendingTopicMutation)
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
func (_c *TrendingTopicCreateBulk) SaveX(ctx context.Context) []*TrendingTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendingTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendingTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
