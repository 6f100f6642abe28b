// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predictionfactor"
)

// PredictionFactorCreate is the builder for creating a PredictionFactor entity.
type PredictionFactorCreate struct {
	config
	mutation *PredictionFactorMutation
	hooks    []Hook
}

// SetMarketID sets the "market_id" field.
func (_c *PredictionFactorCreate) SetMarketID(v string) *PredictionFactorCreate {
	_c.mutation.SetMarketID(v)
	return _c
}

// SetAssessedProb sets the "assessed_prob" field.
func (_c *PredictionFactorCreate) SetAssessedProb(v float64) *PredictionFactorCreate {
	_c.mutation.SetAssessedProb(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PredictionFactorCreate) SetConfidence(v float64) *PredictionFactorCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *PredictionFactorCreate) SetReasoning(v string) *PredictionFactorCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetDataSources sets the "data_sources" field.
func (_c *PredictionFactorCreate) SetDataSources(v map[string]interface{}) *PredictionFactorCreate {
	_c.mutation.SetDataSources(v)
	return _c
}

// SetAgentVersion sets the "agent_version" field.
func (_c *PredictionFactorCreate) SetAgentVersion(v string) *PredictionFactorCreate {
	_c.mutation.SetAgentVersion(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *PredictionFactorCreate) SetComputedAt(v time.Time) *PredictionFactorCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *PredictionFactorCreate) SetNillableComputedAt(v *time.Time) *PredictionFactorCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PredictionFactorCreate) SetID(v string) *PredictionFactorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMarket sets the "market" edge to the Market entity.
func (_c *PredictionFactorCreate) SetMarket(v *Market) *PredictionFactorCreate {
	return _c.SetMarketID(v.ID)
}

// Mutation returns the PredictionFactorMutation object of the builder.
func (_c *PredictionFactorCreate) Mutation() *PredictionFactorMutation {
	return _c.mutation
}

// Save creates the PredictionFactor in the database.
func (_c *PredictionFactorCreate) Save(ctx context.Context) (*PredictionFactor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredictionFactorCreate) SaveX(ctx context.Context) *PredictionFactor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionFactorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionFactorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredictionFactorCreate) defaults() {
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := predictionfactor.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredictionFactorCreate) check() error {
	if _, ok := _c.mutation.MarketID(); !ok {
		return &ValidationError{Name: "market_id", err: errors.New(`ent: missing required field "PredictionFactor.market_id"`)}
	}
	if _, ok := _c.mutation.AssessedProb(); !ok {
		return &ValidationError{Name: "assessed_prob", err: errors.New(`ent: missing required field "PredictionFactor.assessed_prob"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PredictionFactor.confidence"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "PredictionFactor.reasoning"`)}
	}
	if _, ok := _c.mutation.AgentVersion(); !ok {
		return &ValidationError{Name: "agent_version", err: errors.New(`ent: missing required field "PredictionFactor.agent_version"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "PredictionFactor.computed_at"`)}
	}
	if len(_c.mutation.MarketIDs()) == 0 {
		return &ValidationError{Name: "market", err: errors.New(`ent: missing required edge "PredictionFactor.market"`)}
	}
	return nil
}

func (_c *PredictionFactorCreate) sqlSave(ctx context.Context) (*PredictionFactor, error) {
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
			return nil, fmt.Errorf("unexpected PredictionFactor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PredictionFactorCreate) createSpec() (*PredictionFactor, *sqlgraph.CreateSpec) {
	var (
		_node = &PredictionFactor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(predictionfactor.Table, sqlgraph.NewFieldSpec(predictionfactor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AssessedProb(); ok {
		_spec.SetField(predictionfactor.FieldAssessedProb, field.TypeFloat64, value)
		_node.AssessedProb = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(predictionfactor.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(predictionfactor.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.DataSources(); ok {
		_spec.SetField(predictionfactor.FieldDataSources, field.TypeJSON, value)
		_node.DataSources = value
	}
	if value, ok := _c.mutation.AgentVersion(); ok {
		_spec.SetField(predictionfactor.FieldAgentVersion, field.TypeString, value)
		_node.AgentVersion = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(predictionfactor.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if nodes := _c.mutation.MarketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   predictionfactor.MarketTable,
			Columns: []string{predictionfactor.MarketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(market.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MarketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PredictionFactorCreateBulk is the builder for creating many PredictionFactor entities in bulk.
type PredictionFactorCreateBulk struct {
	config
	err      error
	builders []*PredictionFactorCreate
}

// Save creates the PredictionFactor entities in the database.
func (_c *PredictionFactorCreateBulk) Save(ctx context.Context) ([]*PredictionFactor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PredictionFactor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredictionFactorMutation)
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
func (_c *PredictionFactorCreateBulk) SaveX(ctx context.Context) []*PredictionFactor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionFactorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionFactorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
