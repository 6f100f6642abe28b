// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/trade"
)

// TradeUpdate is the builder for updating Trade entities.
type TradeUpdate struct {
	config
	hooks    []Hook
	mutation *TradeMutation
}

// Where appends a list predicates to the TradeUpdate builder.
func (_u *TradeUpdate) Where(ps ...predicate.Trade) *TradeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarketID sets the "market_id" field.
func (_u *TradeUpdate) SetMarketID(v string) *TradeUpdate {
	_u.mutation.SetMarketID(v)
	return _u
}

// SetNillableMarketID sets the "market_id" field if the given value is not nil.
func (_u *TradeUpdate) SetNillableMarketID(v *string) *TradeUpdate {
	if v != nil {
		_u.SetMarketID(*v)
	}
	return _u
}

// SetActor sets the "actor" field.
func (_u *TradeUpdate) SetActor(v string) *TradeUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TradeUpdate) SetNillableActor(v *string) *TradeUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetSide sets the "side" field.
func (_u *TradeUpdate) SetSide(v trade.Side) *TradeUpdate {
	_u.mutation.SetSide(v)
	return _u
}

// SetNillableSide sets the "side" field if the given value is not nil.
func (_u *TradeUpdate) SetNillableSide(v *trade.Side) *TradeUpdate {
	if v != nil {
		_u.SetSide(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *TradeUpdate) SetSize(v float64) *TradeUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TradeUpdate) SetNillableSize(v *float64) *TradeUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *TradeUpdate) AddSize(v float64) *TradeUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *TradeUpdate) SetPrice(v float64) *TradeUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *TradeUpdate) SetNillablePrice(v *float64) *TradeUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *TradeUpdate) AddPrice(v float64) *TradeUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetMarket sets the "market" edge to the Market entity.
func (_u *TradeUpdate) SetMarket(v *Market) *TradeUpdate {
	return _u.SetMarketID(v.ID)
}

// Mutation returns the TradeMutation object of the builder.
func (_u *TradeUpdate) Mutation() *TradeMutation {
	return _u.mutation
}

// ClearMarket clears the "market" edge to the Market entity.
func (_u *TradeUpdate) ClearMarket() *TradeUpdate {
	_u.mutation.ClearMarket()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TradeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TradeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TradeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TradeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TradeUpdate) check() error {
	if v, ok := _u.mutation.Side(); ok {
		if err := trade.SideValidator(v); err != nil {
			return &ValidationError{Name: "side", err: fmt.Errorf(`ent: validator failed for field "Trade.side": %w`, err)}
		}
	}
	if _u.mutation.MarketCleared() && len(_u.mutation.MarketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trade.market"`)
	}
	return nil
}

func (_u *TradeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trade.Table, trade.Columns, sqlgraph.NewFieldSpec(trade.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(trade.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Side(); ok {
		_spec.SetField(trade.FieldSide, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(trade.FieldSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(trade.FieldSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(trade.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(trade.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.MarketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trade.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TradeUpdateOne is the builder for updating a single Trade entity.
type TradeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TradeMutation
}

// SetMarketID sets the "market_id" field.
func (_u *TradeUpdateOne) SetMarketID(v string) *TradeUpdateOne {
	_u.mutation.SetMarketID(v)
	return _u
}

// SetNillableMarketID sets the "market_id" field if the given value is not nil.
func (_u *TradeUpdateOne) SetNillableMarketID(v *string) *TradeUpdateOne {
	if v != nil {
		_u.SetMarketID(*v)
	}
	return _u
}

// SetActor sets the "actor" field.
func (_u *TradeUpdateOne) SetActor(v string) *TradeUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TradeUpdateOne) SetNillableActor(v *string) *TradeUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetSide sets the "side" field.
func (_u *TradeUpdateOne) SetSide(v trade.Side) *TradeUpdateOne {
	_u.mutation.SetSide(v)
	return _u
}

// SetNillableSide sets the "side" field if the given value is not nil.
func (_u *TradeUpdateOne) SetNillableSide(v *trade.Side) *TradeUpdateOne {
	if v != nil {
		_u.SetSide(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *TradeUpdateOne) SetSize(v float64) *TradeUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TradeUpdateOne) SetNillableSize(v *float64) *TradeUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *TradeUpdateOne) AddSize(v float64) *TradeUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *TradeUpdateOne) SetPrice(v float64) *TradeUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *TradeUpdateOne) SetNillablePrice(v *float64) *TradeUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *TradeUpdateOne) AddPrice(v float64) *TradeUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetMarket sets the "market" edge to the Market entity.
func (_u *TradeUpdateOne) SetMarket(v *Market) *TradeUpdateOne {
	return _u.SetMarketID(v.ID)
}

// Mutation returns the TradeMutation object of the builder.
func (_u *TradeUpdateOne) Mutation() *TradeMutation {
	return _u.mutation
}

// ClearMarket clears the "market" edge to the Market entity.
func (_u *TradeUpdateOne) ClearMarket() *TradeUpdateOne {
	_u.mutation.ClearMarket()
	return _u
}

// Where appends a list predicates to the TradeUpdate builder.
func (_u *TradeUpdateOne) Where(ps ...predicate.Trade) *TradeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TradeUpdateOne) Select(field string, fields ...string) *TradeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trade entity.
func (_u *TradeUpdateOne) Save(ctx context.Context) (*Trade, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TradeUpdateOne) SaveX(ctx context.Context) *Trade {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TradeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TradeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TradeUpdateOne) check() error {
	if v, ok := _u.mutation.Side(); ok {
		if err := trade.SideValidator(v); err != nil {
			return &ValidationError{Name: "side", err: fmt.Errorf(`ent: validator failed for field "Trade.side": %w`, err)}
		}
	}
	if _u.mutation.MarketCleared() && len(_u.mutation.MarketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trade.market"`)
	}
	return nil
}

func (_u *TradeUpdateOne) sqlSave(ctx context.Context) (_node *Trade, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trade.Table, trade.Columns, sqlgraph.NewFieldSpec(trade.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trade.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trade.FieldID)
		for _, f := range fields {
			if !trade.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trade.FieldID {
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
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(trade.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Side(); ok {
		_spec.SetField(trade.FieldSide, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(trade.FieldSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(trade.FieldSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(trade.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(trade.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.MarketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Trade{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trade.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
