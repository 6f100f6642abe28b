// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predictionfactor"
	"github.com/veraz-project/veraz/ent/trade"
)

// MarketCreate is the builder for creating a Market entity.
type MarketCreate struct {
	config
	mutation *MarketMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *MarketCreate) SetSlug(v string) *MarketCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *MarketCreate) SetQuestion(v string) *MarketCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *MarketCreate) SetCategory(v string) *MarketCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *MarketCreate) SetNillableCategory(v *string) *MarketCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetHighStakes sets the "high_stakes" field.
func (_c *MarketCreate) SetHighStakes(v bool) *MarketCreate {
	_c.mutation.SetHighStakes(v)
	return _c
}

// SetNillableHighStakes sets the "high_stakes" field if the given value is not nil.
func (_c *MarketCreate) SetNillableHighStakes(v *bool) *MarketCreate {
	if v != nil {
		_c.SetHighStakes(*v)
	}
	return _c
}

// SetYesProb sets the "yes_prob" field.
func (_c *MarketCreate) SetYesProb(v float64) *MarketCreate {
	_c.mutation.SetYesProb(v)
	return _c
}

// SetNillableYesProb sets the "yes_prob" field if the given value is not nil.
func (_c *MarketCreate) SetNillableYesProb(v *float64) *MarketCreate {
	if v != nil {
		_c.SetYesProb(*v)
	}
	return _c
}

// SetNoProb sets the "no_prob" field.
func (_c *MarketCreate) SetNoProb(v float64) *MarketCreate {
	_c.mutation.SetNoProb(v)
	return _c
}

// SetNillableNoProb sets the "no_prob" field if the given value is not nil.
func (_c *MarketCreate) SetNillableNoProb(v *float64) *MarketCreate {
	if v != nil {
		_c.SetNoProb(*v)
	}
	return _c
}

// SetVolume sets the "volume" field.
func (_c *MarketCreate) SetVolume(v float64) *MarketCreate {
	_c.mutation.SetVolume(v)
	return _c
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_c *MarketCreate) SetNillableVolume(v *float64) *MarketCreate {
	if v != nil {
		_c.SetVolume(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MarketCreate) SetStatus(v market.Status) *MarketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MarketCreate) SetNillableStatus(v *market.Status) *MarketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClaimID sets the "claim_id" field.
func (_c *MarketCreate) SetClaimID(v string) *MarketCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_c *MarketCreate) SetNillableClaimID(v *string) *MarketCreate {
	if v != nil {
		_c.SetClaimID(*v)
	}
	return _c
}

// SetClosesAt sets the "closes_at" field.
func (_c *MarketCreate) SetClosesAt(v time.Time) *MarketCreate {
	_c.mutation.SetClosesAt(v)
	return _c
}

// SetNillableClosesAt sets the "closes_at" field if the given value is not nil.
func (_c *MarketCreate) SetNillableClosesAt(v *time.Time) *MarketCreate {
	if v != nil {
		_c.SetClosesAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketCreate) SetCreatedAt(v time.Time) *MarketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketCreate) SetNillableCreatedAt(v *time.Time) *MarketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MarketCreate) SetID(v string) *MarketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_c *MarketCreate) SetClaim(v *Claim) *MarketCreate {
	return _c.SetClaimID(v.ID)
}

// AddTradeIDs adds the "trades" edge to the Trade entity by IDs.
func (_c *MarketCreate) AddTradeIDs(ids ...string) *MarketCreate {
	_c.mutation.AddTradeIDs(ids...)
	return _c
}

// AddTrades adds the "trades" edges to the Trade entity.
func (_c *MarketCreate) AddTrades(v ...*Trade) *MarketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTradeIDs(ids...)
}

// AddPredictionFactorIDs adds the "prediction_factors" edge to the PredictionFactor entity by IDs.
func (_c *MarketCreate) AddPredictionFactorIDs(ids ...string) *MarketCreate {
	_c.mutation.AddPredictionFactorIDs(ids...)
	return _c
}

// AddPredictionFactors adds the "prediction_factors" edges to the PredictionFactor entity.
func (_c *MarketCreate) AddPredictionFactors(v ...*PredictionFactor) *MarketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPredictionFactorIDs(ids...)
}

// Mutation returns the MarketMutation object of the builder.
func (_c *MarketCreate) Mutation() *MarketMutation {
	return _c.mutation
}

// Save creates the Market in the database.
func (_c *MarketCreate) Save(ctx context.Context) (*Market, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketCreate) SaveX(ctx context.Context) *Market {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := market.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.HighStakes(); !ok {
		v := market.DefaultHighStakes
		_c.mutation.SetHighStakes(v)
	}
	if _, ok := _c.mutation.YesProb(); !ok {
		v := market.DefaultYesProb
		_c.mutation.SetYesProb(v)
	}
	if _, ok := _c.mutation.NoProb(); !ok {
		v := market.DefaultNoProb
		_c.mutation.SetNoProb(v)
	}
	if _, ok := _c.mutation.Volume(); !ok {
		v := market.DefaultVolume
		_c.mutation.SetVolume(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := market.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := market.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Market.slug"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Market.question"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Market.category"`)}
	}
	if _, ok := _c.mutation.HighStakes(); !ok {
		return &ValidationError{Name: "high_stakes", err: errors.New(`ent: missing required field "Market.high_stakes"`)}
	}
	if _, ok := _c.mutation.YesProb(); !ok {
		return &ValidationError{Name: "yes_prob", err: errors.New(`ent: missing required field "Market.yes_prob"`)}
	}
	if _, ok := _c.mutation.NoProb(); !ok {
		return &ValidationError{Name: "no_prob", err: errors.New(`ent: missing required field "Market.no_prob"`)}
	}
	if _, ok := _c.mutation.Volume(); !ok {
		return &ValidationError{Name: "volume", err: errors.New(`ent: missing required field "Market.volume"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Market.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := market.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Market.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Market.created_at"`)}
	}
	return nil
}

func (_c *MarketCreate) sqlSave(ctx context.Context) (*Market, error) {
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
			return nil, fmt.Errorf("unexpected Market.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MarketCreate) createSpec() (*Market, *sqlgraph.CreateSpec) {
	var (
		_node = &Market{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(market.Table, sqlgraph.NewFieldSpec(market.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(market.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(market.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(market.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.HighStakes(); ok {
		_spec.SetField(market.FieldHighStakes, field.TypeBool, value)
		_node.HighStakes = value
	}
	if value, ok := _c.mutation.YesProb(); ok {
		_spec.SetField(market.FieldYesProb, field.TypeFloat64, value)
		_node.YesProb = value
	}
	if value, ok := _c.mutation.NoProb(); ok {
		_spec.SetField(market.FieldNoProb, field.TypeFloat64, value)
		_node.NoProb = value
	}
	if value, ok := _c.mutation.Volume(); ok {
		_spec.SetField(market.FieldVolume, field.TypeFloat64, value)
		_node.Volume = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(market.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClosesAt(); ok {
		_spec.SetField(market.FieldClosesAt, field.TypeTime, value)
		_node.ClosesAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(market.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   market.ClaimTable,
			Columns: []string{market.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClaimID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TradesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.TradesTable,
			Columns: []string{market.TradesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trade.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PredictionFactorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PredictionFactorsTable,
			Columns: []string{market.PredictionFactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictionfactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MarketCreateBulk is the builder for creating many Market entities in bulk.
type MarketCreateBulk struct {
	config
	err      error
	builders []*MarketCreate
}

// Save creates the Market entities in the database.
func (_c *MarketCreateBulk) Save(ctx context.Context) ([]*Market, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Market, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketMutation)
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
func (_c *MarketCreateBulk) SaveX(ctx context.Context) []*Market {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
