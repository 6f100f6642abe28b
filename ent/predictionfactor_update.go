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
	"github.com/veraz-project/veraz/ent/predictionfactor"
)

// PredictionFactorUpdate is the builder for updating PredictionFactor entities.
type PredictionFactorUpdate struct {
	config
	hooks    []Hook
	mutation *PredictionFactorMutation
}

// Where appends a list predicates to the PredictionFactorUpdate builder.
func (_u *PredictionFactorUpdate) Where(ps ...predicate.PredictionFactor) *PredictionFactorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarketID sets the "market_id" field.
func (_u *PredictionFactorUpdate) SetMarketID(v string) *PredictionFactorUpdate {
	_u.mutation.SetMarketID(v)
	return _u
}

// SetNillableMarketID sets the "market_id" field if the given value is not nil.
func (_u *PredictionFactorUpdate) SetNillableMarketID(v *string) *PredictionFactorUpdate {
	if v != nil {
		_u.SetMarketID(*v)
	}
	return _u
}

// SetAssessedProb sets the "assessed_prob" field.
func (_u *PredictionFactorUpdate) SetAssessedProb(v float64) *PredictionFactorUpdate {
	_u.mutation.ResetAssessedProb()
	_u.mutation.SetAssessedProb(v)
	return _u
}

// SetNillableAssessedProb sets the "assessed_prob" field if the given value is not nil.
func (_u *PredictionFactorUpdate) SetNillableAssessedProb(v *float64) *PredictionFactorUpdate {
	if v != nil {
		_u.SetAssessedProb(*v)
	}
	return _u
}

// AddAssessedProb adds value to the "assessed_prob" field.
func (_u *PredictionFactorUpdate) AddAssessedProb(v float64) *PredictionFactorUpdate {
	_u.mutation.AddAssessedProb(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionFactorUpdate) SetConfidence(v float64) *PredictionFactorUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionFactorUpdate) SetNillableConfidence(v *float64) *PredictionFactorUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionFactorUpdate) AddConfidence(v float64) *PredictionFactorUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PredictionFactorUpdate) SetReasoning(v string) *PredictionFactorUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PredictionFactorUpdate) SetNillableReasoning(v *string) *PredictionFactorUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetDataSources sets the "data_sources" field.
func (_u *PredictionFactorUpdate) SetDataSources(v map[string]interface{}) *PredictionFactorUpdate {
	_u.mutation.SetDataSources(v)
	return _u
}

// ClearDataSources clears the value of the "data_sources" field.
func (_u *PredictionFactorUpdate) ClearDataSources() *PredictionFactorUpdate {
	_u.mutation.ClearDataSources()
	return _u
}

// SetAgentVersion sets the "agent_version" field.
func (_u *PredictionFactorUpdate) SetAgentVersion(v string) *PredictionFactorUpdate {
	_u.mutation.SetAgentVersion(v)
	return _u
}

// SetNillableAgentVersion sets the "agent_version" field if the given value is not nil.
func (_u *PredictionFactorUpdate) SetNillableAgentVersion(v *string) *PredictionFactorUpdate {
	if v != nil {
		_u.SetAgentVersion(*v)
	}
	return _u
}

// SetMarket sets the "market" edge to the Market entity.
func (_u *PredictionFactorUpdate) SetMarket(v *Market) *PredictionFactorUpdate {
	return _u.SetMarketID(v.ID)
}

// Mutation returns the PredictionFactorMutation object of the builder.
func (_u *PredictionFactorUpdate) Mutation() *PredictionFactorMutation {
	return _u.mutation
}

// ClearMarket clears the "market" edge to the Market entity.
func (_u *PredictionFactorUpdate) ClearMarket() *PredictionFactorUpdate {
	_u.mutation.ClearMarket()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictionFactorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionFactorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictionFactorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionFactorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictionFactorUpdate) check() error {
	if _u.mutation.MarketCleared() && len(_u.mutation.MarketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PredictionFactor.market"`)
	}
	return nil
}

func (_u *PredictionFactorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predictionfactor.Table, predictionfactor.Columns, sqlgraph.NewFieldSpec(predictionfactor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessedProb(); ok {
		_spec.SetField(predictionfactor.FieldAssessedProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAssessedProb(); ok {
		_spec.AddField(predictionfactor.FieldAssessedProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionfactor.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionfactor.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(predictionfactor.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataSources(); ok {
		_spec.SetField(predictionfactor.FieldDataSources, field.TypeJSON, value)
	}
	if _u.mutation.DataSourcesCleared() {
		_spec.ClearField(predictionfactor.FieldDataSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentVersion(); ok {
		_spec.SetField(predictionfactor.FieldAgentVersion, field.TypeString, value)
	}
	if _u.mutation.MarketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionfactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictionFactorUpdateOne is the builder for updating a single PredictionFactor entity.
type PredictionFactorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictionFactorMutation
}

// SetMarketID sets the "market_id" field.
func (_u *PredictionFactorUpdateOne) SetMarketID(v string) *PredictionFactorUpdateOne {
	_u.mutation.SetMarketID(v)
	return _u
}

// SetNillableMarketID sets the "market_id" field if the given value is not nil.
func (_u *PredictionFactorUpdateOne) SetNillableMarketID(v *string) *PredictionFactorUpdateOne {
	if v != nil {
		_u.SetMarketID(*v)
	}
	return _u
}

// SetAssessedProb sets the "assessed_prob" field.
func (_u *PredictionFactorUpdateOne) SetAssessedProb(v float64) *PredictionFactorUpdateOne {
	_u.mutation.ResetAssessedProb()
	_u.mutation.SetAssessedProb(v)
	return _u
}

// SetNillableAssessedProb sets the "assessed_prob" field if the given value is not nil.
func (_u *PredictionFactorUpdateOne) SetNillableAssessedProb(v *float64) *PredictionFactorUpdateOne {
	if v != nil {
		_u.SetAssessedProb(*v)
	}
	return _u
}

// AddAssessedProb adds value to the "assessed_prob" field.
func (_u *PredictionFactorUpdateOne) AddAssessedProb(v float64) *PredictionFactorUpdateOne {
	_u.mutation.AddAssessedProb(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionFactorUpdateOne) SetConfidence(v float64) *PredictionFactorUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionFactorUpdateOne) SetNillableConfidence(v *float64) *PredictionFactorUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionFactorUpdateOne) AddConfidence(v float64) *PredictionFactorUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PredictionFactorUpdateOne) SetReasoning(v string) *PredictionFactorUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PredictionFactorUpdateOne) SetNillableReasoning(v *string) *PredictionFactorUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetDataSources sets the "data_sources" field.
func (_u *PredictionFactorUpdateOne) SetDataSources(v map[string]interface{}) *PredictionFactorUpdateOne {
	_u.mutation.SetDataSources(v)
	return _u
}

// ClearDataSources clears the value of the "data_sources" field.
func (_u *PredictionFactorUpdateOne) ClearDataSources() *PredictionFactorUpdateOne {
	_u.mutation.ClearDataSources()
	return _u
}

// SetAgentVersion sets the "agent_version" field.
func (_u *PredictionFactorUpdateOne) SetAgentVersion(v string) *PredictionFactorUpdateOne {
	_u.mutation.SetAgentVersion(v)
	return _u
}

// SetNillableAgentVersion sets the "agent_version" field if the given value is not nil.
func (_u *PredictionFactorUpdateOne) SetNillableAgentVersion(v *string) *PredictionFactorUpdateOne {
	if v != nil {
		_u.SetAgentVersion(*v)
	}
	return _u
}

// SetMarket sets the "market" edge to the Market entity.
func (_u *PredictionFactorUpdateOne) SetMarket(v *Market) *PredictionFactorUpdateOne {
	return _u.SetMarketID(v.ID)
}

// Mutation returns the PredictionFactorMutation object of the builder.
func (_u *PredictionFactorUpdateOne) Mutation() *PredictionFactorMutation {
	return _u.mutation
}

// ClearMarket clears the "market" edge to the Market entity.
func (_u *PredictionFactorUpdateOne) ClearMarket() *PredictionFactorUpdateOne {
	_u.mutation.ClearMarket()
	return _u
}

// Where appends a list predicates to the PredictionFactorUpdate builder.
func (_u *PredictionFactorUpdateOne) Where(ps ...predicate.PredictionFactor) *PredictionFactorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictionFactorUpdateOne) Select(field string, fields ...string) *PredictionFactorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredictionFactor entity.
func (_u *PredictionFactorUpdateOne) Save(ctx context.Context) (*PredictionFactor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionFactorUpdateOne) SaveX(ctx context.Context) *PredictionFactor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictionFactorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionFactorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictionFactorUpdateOne) check() error {
	if _u.mutation.MarketCleared() && len(_u.mutation.MarketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PredictionFactor.market"`)
	}
	return nil
}

func (_u *PredictionFactorUpdateOne) sqlSave(ctx context.Context) (_node *PredictionFactor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predictionfactor.Table, predictionfactor.Columns, sqlgraph.NewFieldSpec(predictionfactor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredictionFactor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predictionfactor.FieldID)
		for _, f := range fields {
			if !predictionfactor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predictionfactor.FieldID {
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
	if value, ok := _u.mutation.AssessedProb(); ok {
		_spec.SetField(predictionfactor.FieldAssessedProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAssessedProb(); ok {
		_spec.AddField(predictionfactor.FieldAssessedProb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionfactor.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionfactor.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(predictionfactor.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataSources(); ok {
		_spec.SetField(predictionfactor.FieldDataSources, field.TypeJSON, value)
	}
	if _u.mutation.DataSourcesCleared() {
		_spec.ClearField(predictionfactor.FieldDataSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentVersion(); ok {
		_spec.SetField(predictionfactor.FieldAgentVersion, field.TypeString, value)
	}
	if _u.mutation.MarketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PredictionFactor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionfactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
