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
	"github.com/veraz-project/veraz/ent/trade"
)

// TradeCreate is the builder for creating a Trade entity.
type TradeCreate struct {
	config
	mutation *TradeMutation
	hooks    []Hook
}

// SetMarketID sets the "market_id" field.
func (_c *TradeCreate) SetMarketID(v string) *TradeCreate {
	_c.mutation.SetMarketID(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *TradeCreate) SetActor(v string) *TradeCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetSide sets the "side" field.
func (_c *TradeCreate) SetSide(v trade.Side) *TradeCreate {
	_c.mutation.SetSide(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *TradeCreate) SetSize(v float64) *TradeCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *TradeCreate) SetPrice(v float64) *TradeCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TradeCreate) SetCreatedAt(v time.Time) *TradeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TradeCreate) SetNillableCreatedAt(v *time.Time) *TradeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TradeCreate) SetID(v string) *TradeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMarket sets the "market" edge to the Market entity.
func (_c *TradeCreate) SetMarket(v *Market) *TradeCreate {
	return _c.SetMarketID(v.ID)
}

// Mutation returns the TradeMutation object of the builder.
func (_c *TradeCreate) Mutation() *TradeMutation {
	return _c.mutation
}

// Save creates the Trade in the database.
func (_c *TradeCreate) Save(ctx context.Context) (*Trade, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TradeCreate) SaveX(ctx context.Context) *Trade {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TradeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TradeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TradeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trade.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TradeCreate) check() error {
	if _, ok := _c.mutation.MarketID(); !ok {
		return &ValidationError{Name: "market_id", err: errors.New(`ent: missing required field "Trade.market_id"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "Trade.actor"`)}
	}
	if _, ok := _c.mutation.Side(); !ok {
		return &ValidationError{Name: "side", err: errors.New(`ent: missing required field "Trade.side"`)}
	}
	if v, ok := _c.mutation.Side(); ok {
		if err := trade.SideValidator(v); err != nil {
			return &ValidationError{Name: "side", err: fmt.Errorf(`ent: validator failed for field "Trade.side": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Trade.size"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Trade.price"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trade.created_at"`)}
	}
	if len(_c.mutation.MarketIDs()) == 0 {
		return &ValidationError{Name: "market", err: errors.New(`ent: missing required edge "Trade.market"`)}
	}
	return nil
}

func (_c *TradeCreate) sqlSave(ctx context.Context) (*Trade, error) {
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
			return nil, fmt.Errorf("unexpected Trade.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TradeCreate) createSpec() (*Trade, *sqlgraph.CreateSpec) {
	var (
		_node = &Trade{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trade.Table, sqlgraph.NewFieldSpec(trade.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(trade.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Side(); ok {
		_spec.SetField(trade.FieldSide, field.TypeEnum, value)
		_node.Side = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(trade.FieldSize, field.TypeFloat64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(trade.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trade.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MarketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trade.MarketTable,
			Columns: []string{trade.MarketColumn},
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

// TradeCreateBulk is the builder for creating many Trade entities in bulk.
type TradeCreateBulk struct {
	config
	err      error
	builders []*TradeCreate
}

// Save creates the Trade entities in the database.
func (_c *TradeCreateBulk) Save(ctx context.Context) ([]*Trade, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trade, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TradeMutation)
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
func (_c *TradeCreateBulk) SaveX(ctx context.Context) []*Trade {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TradeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TradeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
