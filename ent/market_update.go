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
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/predictionfactor"
	"github.com/veraz-project/veraz/ent/trade"
)

// MarketUpdate is the builder for updating Market entities.
type MarketUpdate struct {
	config
	hooks    []Hook
	mutation *MarketMutation
}

// Where appends a list predicates to the MarketUpdate builder.
func (_u *MarketUpdate) Where(ps ...predicate.Market) *MarketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *MarketUpdate) SetSlug(v string) *MarketUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableSlug(v *string) *MarketUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *MarketUpdate) SetQuestion(v string) *MarketUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableQuestion(v *string) *MarketUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MarketUpdate) SetCategory(v string) *MarketUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableCategory(v *string) *MarketUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetHighStakes sets the "high_stakes" field.
func (_u *MarketUpdate) SetHighStakes(v bool) *MarketUpdate {
	_u.mutation.SetHighStakes(v)
	return _u
}

// SetNillableHighStakes sets the "high_stakes" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableHighStakes(v *bool) *MarketUpdate {
	if v != nil {
		_u.SetHighStakes(*v)
	}
	return _u
}

// SetYesProb sets the "yes_prob" field.
func (_u *MarketUpdate) SetYesProb(v float64) *MarketUpdate {
	_u.mutation.ResetYesProb()
	_u.mutation.SetYesProb(v)
	return _u
}

// SetNillableYesProb sets the "yes_prob" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableYesProb(v *float64) *MarketUpdate {
	if v != nil {
		_u.SetYesProb(*v)
	}
	return _u
}

// AddYesProb adds value to the "yes_prob" field.
func (_u *MarketUpdate) AddYesProb(v float64) *MarketUpdate {
	_u.mutation.AddYesProb(v)
	return _u
}

// SetNoProb sets the "no_prob" field.
func (_u *MarketUpdate) SetNoProb(v float64) *MarketUpdate {
	_u.mutation.ResetNoProb()
	_u.mutation.SetNoProb(v)
	return _u
}

// SetNillableNoProb sets the "no_prob" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableNoProb(v *float64) *MarketUpdate {
	if v != nil {
		_u.SetNoProb(*v)
	}
	return _u
}

// AddNoProb adds value to the "no_prob" field.
func (_u *MarketUpdate) AddNoProb(v float64) *MarketUpdate {
	_u.mutation.AddNoProb(v)
	return _u
}

// SetVolume sets the "volume" field.
func (_u *MarketUpdate) SetVolume(v float64) *MarketUpdate {
	_u.mutation.ResetVolume()
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableVolume(v *float64) *MarketUpdate {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// AddVolume adds value to the "volume" field.
func (_u *MarketUpdate) AddVolume(v float64) *MarketUpdate {
	_u.mutation.AddVolume(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MarketUpdate) SetStatus(v market.Status) *MarketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableStatus(v *market.Status) *MarketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *MarketUpdate) SetClaimID(v string) *MarketUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableClaimID(v *string) *MarketUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// ClearClaimID clears the value of the "claim_id" field.
func (_u *MarketUpdate) ClearClaimID() *MarketUpdate {
	_u.mutation.ClearClaimID()
	return _u
}

// SetClosesAt sets the "closes_at" field.
func (_u *MarketUpdate) SetClosesAt(v time.Time) *MarketUpdate {
	_u.mutation.SetClosesAt(v)
	return _u
}

// SetNillableClosesAt sets the "closes_at" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableClosesAt(v *time.Time) *MarketUpdate {
	if v != nil {
		_u.SetClosesAt(*v)
	}
	return _u
}

// ClearClosesAt clears the value of the "closes_at" field.
func (_u *MarketUpdate) ClearClosesAt() *MarketUpdate {
	_u.mutation.ClearClosesAt()
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *MarketUpdate) SetClaim(v *Claim) *MarketUpdate {
	return _u.SetClaimID(v.ID)
}

// AddTradeIDs adds the "trades" edge to the Trade entity by IDs.
func (_u *MarketUpdate) AddTradeIDs(ids ...string) *MarketUpdate {
	_u.mutation.AddTradeIDs(ids...)
	return _u
}

// AddTrades adds the "trades" edges to the Trade entity.
func (_u *MarketUpdate) AddTrades(v ...*Trade) *MarketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTradeIDs(ids...)
}

// AddPredictionFactorIDs adds the "prediction_factors" edge to the PredictionFactor entity by IDs.
func (_u *MarketUpdate) AddPredictionFactorIDs(ids ...string) *MarketUpdate {
	_u.mutation.AddPredictionFactorIDs(ids...)
	return _u
}

// AddPredictionFactors adds the "prediction_factors" edges to the PredictionFactor entity.
func (_u *MarketUpdate) AddPredictionFactors(v ...*PredictionFactor) *MarketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPredictionFactorIDs(ids...)
}

// Mutation returns the MarketMutation object of the builder.
func (_u *MarketUpdate) Mutation() *MarketMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *MarketUpdate) ClearClaim() *MarketUpdate {
	_u.mutation.ClearClaim()
	return _u
}

// ClearTrades clears all "trades" edges to the Trade entity.
func (_u *MarketUpdate) ClearTrades() *MarketUpdate {
	_u.mutation.ClearTrades()
	return _u
}

// RemoveTradeIDs removes the "trades" edge to Trade entities by IDs.
func (_u *MarketUpdate) RemoveTradeIDs(ids ...string) *MarketUpdate {
	_u.mutation.RemoveTradeIDs(ids...)
	return _u
}

// RemoveTrades removes "trades" edges to Trade entities.
func (_u *MarketUpdate) RemoveTrades(v ...*Trade) *MarketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTradeIDs(ids...)
}

// ClearPredictionFactors clears all "prediction_factors" edges to the PredictionFactor entity.
func (_u *MarketUpdate) ClearPredictionFactors() *MarketUpdate {
	_u.mutation.ClearPredictionFactors()
	return _u
}

// RemovePredictionFactorIDs removes the "prediction_factors" edge to PredictionFactor entities by IDs.
func (_u *MarketUpdate) RemovePredictionFactorIDs(ids ...string) *MarketUpdate {
	_u.mutation.RemovePredictionFactorIDs(ids...)
	return _u
}

// RemovePredictionFactors removes "prediction_factors" edges to PredictionFactor entities.
func (_u *MarketUpdate) RemovePredictionFactors(v ...*PredictionFactor) *MarketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePredictionFactorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := market.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Market.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(market.Table, market.Columns, sqlgraph.NewFieldSpec(market.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(market.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(market.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(market.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.HighStakes(); ok {
		_spec.SetField(market.FieldHighStakes, field.TypeBool, value)
	}
	if value, ok := _u.mutation.YesProb(); ok {
		_spec.SetField(market.FieldYesProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedYesProb(); ok {
		_spec.AddField(market.FieldYesProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NoProb(); ok {
		_spec.SetField(market.FieldNoProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNoProb(); ok {
		_spec.AddField(market.FieldNoProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(market.FieldVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVolume(); ok {
		_spec.AddField(market.FieldVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(market.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClosesAt(); ok {
		_spec.SetField(market.FieldClosesAt, field.TypeTime, value)
	}
	if _u.mutation.ClosesAtCleared() {
		_spec.ClearField(market.FieldClosesAt, field.TypeTime)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTradesIDs(); len(nodes) > 0 && !_u.mutation.TradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TradesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PredictionFactorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPredictionFactorsIDs(); len(nodes) > 0 && !_u.mutation.PredictionFactorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PredictionFactorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{market.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketUpdateOne is the builder for updating a single Market entity.
type MarketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketMutation
}

// SetSlug sets the "slug" field.
func (_u *MarketUpdateOne) SetSlug(v string) *MarketUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableSlug(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *MarketUpdateOne) SetQuestion(v string) *MarketUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableQuestion(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MarketUpdateOne) SetCategory(v string) *MarketUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableCategory(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetHighStakes sets the "high_stakes" field.
func (_u *MarketUpdateOne) SetHighStakes(v bool) *MarketUpdateOne {
	_u.mutation.SetHighStakes(v)
	return _u
}

// SetNillableHighStakes sets the "high_stakes" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableHighStakes(v *bool) *MarketUpdateOne {
	if v != nil {
		_u.SetHighStakes(*v)
	}
	return _u
}

// SetYesProb sets the "yes_prob" field.
func (_u *MarketUpdateOne) SetYesProb(v float64) *MarketUpdateOne {
	_u.mutation.ResetYesProb()
	_u.mutation.SetYesProb(v)
	return _u
}

// SetNillableYesProb sets the "yes_prob" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableYesProb(v *float64) *MarketUpdateOne {
	if v != nil {
		_u.SetYesProb(*v)
	}
	return _u
}

// AddYesProb adds value to the "yes_prob" field.
func (_u *MarketUpdateOne) AddYesProb(v float64) *MarketUpdateOne {
	_u.mutation.AddYesProb(v)
	return _u
}

// SetNoProb sets the "no_prob" field.
func (_u *MarketUpdateOne) SetNoProb(v float64) *MarketUpdateOne {
	_u.mutation.ResetNoProb()
	_u.mutation.SetNoProb(v)
	return _u
}

// SetNillableNoProb sets the "no_prob" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableNoProb(v *float64) *MarketUpdateOne {
	if v != nil {
		_u.SetNoProb(*v)
	}
	return _u
}

// AddNoProb adds value to the "no_prob" field.
func (_u *MarketUpdateOne) AddNoProb(v float64) *MarketUpdateOne {
	_u.mutation.AddNoProb(v)
	return _u
}

// SetVolume sets the "volume" field.
func (_u *MarketUpdateOne) SetVolume(v float64) *MarketUpdateOne {
	_u.mutation.ResetVolume()
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableVolume(v *float64) *MarketUpdateOne {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// AddVolume adds value to the "volume" field.
func (_u *MarketUpdateOne) AddVolume(v float64) *MarketUpdateOne {
	_u.mutation.AddVolume(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MarketUpdateOne) SetStatus(v market.Status) *MarketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableStatus(v *market.Status) *MarketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *MarketUpdateOne) SetClaimID(v string) *MarketUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableClaimID(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// ClearClaimID clears the value of the "claim_id" field.
func (_u *MarketUpdateOne) ClearClaimID() *MarketUpdateOne {
	_u.mutation.ClearClaimID()
	return _u
}

// SetClosesAt sets the "closes_at" field.
func (_u *MarketUpdateOne) SetClosesAt(v time.Time) *MarketUpdateOne {
	_u.mutation.SetClosesAt(v)
	return _u
}

// SetNillableClosesAt sets the "closes_at" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableClosesAt(v *time.Time) *MarketUpdateOne {
	if v != nil {
		_u.SetClosesAt(*v)
	}
	return _u
}

// ClearClosesAt clears the value of the "closes_at" field.
func (_u *MarketUpdateOne) ClearClosesAt() *MarketUpdateOne {
	_u.mutation.ClearClosesAt()
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *MarketUpdateOne) SetClaim(v *Claim) *MarketUpdateOne {
	return _u.SetClaimID(v.ID)
}

// AddTradeIDs adds the "trades" edge to the Trade entity by IDs.
func (_u *MarketUpdateOne) AddTradeIDs(ids ...string) *MarketUpdateOne {
	_u.mutation.AddTradeIDs(ids...)
	return _u
}

// AddTrades adds the "trades" edges to the Trade entity.
func (_u *MarketUpdateOne) AddTrades(v ...*Trade) *MarketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTradeIDs(ids...)
}

// AddPredictionFactorIDs adds the "prediction_factors" edge to the PredictionFactor entity by IDs.
func (_u *MarketUpdateOne) AddPredictionFactorIDs(ids ...string) *MarketUpdateOne {
	_u.mutation.AddPredictionFactorIDs(ids...)
	return _u
}

// AddPredictionFactors adds the "prediction_factors" edges to the PredictionFactor entity.
func (_u *MarketUpdateOne) AddPredictionFactors(v ...*PredictionFactor) *MarketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPredictionFactorIDs(ids...)
}

// Mutation returns the MarketMutation object of the builder.
func (_u *MarketUpdateOne) Mutation() *MarketMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *MarketUpdateOne) ClearClaim() *MarketUpdateOne {
	_u.mutation.ClearClaim()
	return _u
}

// ClearTrades clears all "trades" edges to the Trade entity.
func (_u *MarketUpdateOne) ClearTrades() *MarketUpdateOne {
	_u.mutation.ClearTrades()
	return _u
}

// RemoveTradeIDs removes the "trades" edge to Trade entities by IDs.
func (_u *MarketUpdateOne) RemoveTradeIDs(ids ...string) *MarketUpdateOne {
	_u.mutation.RemoveTradeIDs(ids...)
	return _u
}

// RemoveTrades removes "trades" edges to Trade entities.
func (_u *MarketUpdateOne) RemoveTrades(v ...*Trade) *MarketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTradeIDs(ids...)
}

// ClearPredictionFactors clears all "prediction_factors" edges to the PredictionFactor entity.
func (_u *MarketUpdateOne) ClearPredictionFactors() *MarketUpdateOne {
	_u.mutation.ClearPredictionFactors()
	return _u
}

// RemovePredictionFactorIDs removes the "prediction_factors" edge to PredictionFactor entities by IDs.
func (_u *MarketUpdateOne) RemovePredictionFactorIDs(ids ...string) *MarketUpdateOne {
	_u.mutation.RemovePredictionFactorIDs(ids...)
	return _u
}

// RemovePredictionFactors removes "prediction_factors" edges to PredictionFactor entities.
func (_u *MarketUpdateOne) RemovePredictionFactors(v ...*PredictionFactor) *MarketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePredictionFactorIDs(ids...)
}

// Where appends a list predicates to the MarketUpdate builder.
func (_u *MarketUpdateOne) Where(ps ...predicate.Market) *MarketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketUpdateOne) Select(field string, fields ...string) *MarketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Market entity.
func (_u *MarketUpdateOne) Save(ctx context.Context) (*Market, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketUpdateOne) SaveX(ctx context.Context) *Market {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := market.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Market.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketUpdateOne) sqlSave(ctx context.Context) (_node *Market, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(market.Table, market.Columns, sqlgraph.NewFieldSpec(market.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Market.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, market.FieldID)
		for _, f := range fields {
			if !market.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != market.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(market.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(market.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(market.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.HighStakes(); ok {
		_spec.SetField(market.FieldHighStakes, field.TypeBool, value)
	}
	if value, ok := _u.mutation.YesProb(); ok {
		_spec.SetField(market.FieldYesProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedYesProb(); ok {
		_spec.AddField(market.FieldYesProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NoProb(); ok {
		_spec.SetField(market.FieldNoProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNoProb(); ok {
		_spec.AddField(market.FieldNoProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(market.FieldVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVolume(); ok {
		_spec.AddField(market.FieldVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(market.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClosesAt(); ok {
		_spec.SetField(market.FieldClosesAt, field.TypeTime, value)
	}
	if _u.mutation.ClosesAtCleared() {
		_spec.ClearField(market.FieldClosesAt, field.TypeTime)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTradesIDs(); len(nodes) > 0 && !_u.mutation.TradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TradesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PredictionFactorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPredictionFactorsIDs(); len(nodes) > 0 && !_u.mutation.PredictionFactorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PredictionFactorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Market{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{market.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
