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
	"github.com/veraz-project/veraz/ent/evidence"
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
}

// SetClaimID sets the "claim_id" field.
func (_c *EvidenceCreate) SetClaimID(v string) *EvidenceCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *EvidenceCreate) SetURL(v string) *EvidenceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *EvidenceCreate) SetDomain(v string) *EvidenceCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EvidenceCreate) SetTitle(v string) *EvidenceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableTitle(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSnippet sets the "snippet" field.
func (_c *EvidenceCreate) SetSnippet(v string) *EvidenceCreate {
	_c.mutation.SetSnippet(v)
	return _c
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableSnippet(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetSnippet(*v)
	}
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *EvidenceCreate) SetFetchedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableFetchedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *EvidenceCreate) SetRelevance(v float64) *EvidenceCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetCredibilityTier sets the "credibility_tier" field.
func (_c *EvidenceCreate) SetCredibilityTier(v int) *EvidenceCreate {
	_c.mutation.SetCredibilityTier(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *EvidenceCreate) SetPosition(v int) *EvidenceCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v string) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_c *EvidenceCreate) SetClaim(v *Claim) *EvidenceCreate {
	return _c.SetClaimID(v.ID)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := evidence.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "Evidence.claim_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Evidence.url"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Evidence.domain"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "Evidence.fetched_at"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "Evidence.relevance"`)}
	}
	if _, ok := _c.mutation.CredibilityTier(); !ok {
		return &ValidationError{Name: "credibility_tier", err: errors.New(`ent: missing required field "Evidence.credibility_tier"`)}
	}
	if v, ok := _c.mutation.CredibilityTier(); ok {
		if err := evidence.CredibilityTierValidator(v); err != nil {
			return &ValidationError{Name: "credibility_tier", err: fmt.Errorf(`ent: validator failed for field "Evidence.credibility_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Evidence.position"`)}
	}
	if len(_c.mutation.ClaimIDs()) == 0 {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required edge "Evidence.claim"`)}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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
			return nil, fmt.Errorf("unexpected Evidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(evidence.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(evidence.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(evidence.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Snippet(); ok {
		_spec.SetField(evidence.FieldSnippet, field.TypeString, value)
		_node.Snippet = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(evidence.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(evidence.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CredibilityTier(); ok {
		_spec.SetField(evidence.FieldCredibilityTier, field.TypeInt, value)
		_node.CredibilityTier = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(evidence.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidence.ClaimTable,
			Columns: []string{evidence.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClaimID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
