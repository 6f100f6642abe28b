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
	"github.com/veraz-project/veraz/ent/entity"
	"github.com/veraz-project/veraz/ent/evidence"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/ent/topic"
)

// ClaimCreate is the builder for creating a Claim entity.
type ClaimCreate struct {
	config
	mutation *ClaimMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *ClaimCreate) SetText(v string) *ClaimCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *ClaimCreate) SetOriginalText(v string) *ClaimCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *ClaimCreate) SetVerdict(v claim.Verdict) *ClaimCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ClaimCreate) SetExplanation(v string) *ClaimCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ClaimCreate) SetConfidence(v float64) *ClaimCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetEvidenceStrength sets the "evidence_strength" field.
func (_c *ClaimCreate) SetEvidenceStrength(v claim.EvidenceStrength) *ClaimCreate {
	_c.mutation.SetEvidenceStrength(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ClaimCreate) SetNeedsReview(v bool) *ClaimCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableNeedsReview(v *bool) *ClaimCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetReviewPriority sets the "review_priority" field.
func (_c *ClaimCreate) SetReviewPriority(v claim.ReviewPriority) *ClaimCreate {
	_c.mutation.SetReviewPriority(v)
	return _c
}

// SetNillableReviewPriority sets the "review_priority" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableReviewPriority(v *claim.ReviewPriority) *ClaimCreate {
	if v != nil {
		_c.SetReviewPriority(*v)
	}
	return _c
}

// SetHasEmbedding sets the "has_embedding" field.
func (_c *ClaimCreate) SetHasEmbedding(v bool) *ClaimCreate {
	_c.mutation.SetHasEmbedding(v)
	return _c
}

// SetNillableHasEmbedding sets the "has_embedding" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableHasEmbedding(v *bool) *ClaimCreate {
	if v != nil {
		_c.SetHasEmbedding(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimCreate) SetCreatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableCreatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimCreate) SetID(v string) *ClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSourceIDs adds the "sources" edge to the Source entity by IDs.
func (_c *ClaimCreate) AddSourceIDs(ids ...string) *ClaimCreate {
	_c.mutation.AddSourceIDs(ids...)
	return _c
}

// AddSources adds the "sources" edges to the Source entity.
func (_c *ClaimCreate) AddSources(v ...*Source) *ClaimCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_c *ClaimCreate) AddEvidenceIDs(ids ...string) *ClaimCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_c *ClaimCreate) AddEvidence(v ...*Evidence) *ClaimCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_c *ClaimCreate) AddEntityIDs(ids ...string) *ClaimCreate {
	_c.mutation.AddEntityIDs(ids...)
	return _c
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_c *ClaimCreate) AddEntities(v ...*Entity) *ClaimCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntityIDs(ids...)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (_c *ClaimCreate) AddTopicIDs(ids ...string) *ClaimCreate {
	_c.mutation.AddTopicIDs(ids...)
	return _c
}

// AddTopics adds the "topics" edges to the Topic entity.
func (_c *ClaimCreate) AddTopics(v ...*Topic) *ClaimCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTopicIDs(ids...)
}

// AddMarketIDs adds the "markets" edge to the Market entity by IDs.
func (_c *ClaimCreate) AddMarketIDs(ids ...string) *ClaimCreate {
	_c.mutation.AddMarketIDs(ids...)
	return _c
}

// AddMarkets adds the "markets" edges to the Market entity.
func (_c *ClaimCreate) AddMarkets(v ...*Market) *ClaimCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMarketIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_c *ClaimCreate) Mutation() *ClaimMutation {
	return _c.mutation
}

// Save creates the Claim in the database.
func (_c *ClaimCreate) Save(ctx context.Context) (*Claim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimCreate) SaveX(ctx context.Context) *Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimCreate) defaults() {
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := claim.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ReviewPriority(); !ok {
		v := claim.DefaultReviewPriority
		_c.mutation.SetReviewPriority(v)
	}
	if _, ok := _c.mutation.HasEmbedding(); !ok {
		v := claim.DefaultHasEmbedding
		_c.mutation.SetHasEmbedding(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Claim.text"`)}
	}
	if _, ok := _c.mutation.OriginalText(); !ok {
		return &ValidationError{Name: "original_text", err: errors.New(`ent: missing required field "Claim.original_text"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "Claim.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := claim.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Claim.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Claim.explanation"`)}
	}
	if v, ok := _c.mutation.Explanation(); ok {
		if err := claim.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "Claim.explanation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Claim.confidence"`)}
	}
	if _, ok := _c.mutation.EvidenceStrength(); !ok {
		return &ValidationError{Name: "evidence_strength", err: errors.New(`ent: missing required field "Claim.evidence_strength"`)}
	}
	if v, ok := _c.mutation.EvidenceStrength(); ok {
		if err := claim.EvidenceStrengthValidator(v); err != nil {
			return &ValidationError{Name: "evidence_strength", err: fmt.Errorf(`ent: validator failed for field "Claim.evidence_strength": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Claim.needs_review"`)}
	}
	if _, ok := _c.mutation.ReviewPriority(); !ok {
		return &ValidationError{Name: "review_priority", err: errors.New(`ent: missing required field "Claim.review_priority"`)}
	}
	if v, ok := _c.mutation.ReviewPriority(); ok {
		if err := claim.ReviewPriorityValidator(v); err != nil {
			return &ValidationError{Name: "review_priority", err: fmt.Errorf(`ent: validator failed for field "Claim.review_priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasEmbedding(); !ok {
		return &ValidationError{Name: "has_embedding", err: errors.New(`ent: missing required field "Claim.has_embedding"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Claim.created_at"`)}
	}
	return nil
}

func (_c *ClaimCreate) sqlSave(ctx context.Context) (*Claim, error) {
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
			return nil, fmt.Errorf("unexpected Claim.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimCreate) createSpec() (*Claim, *sqlgraph.CreateSpec) {
	var (
		_node = &Claim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claim.Table, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(claim.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(claim.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(claim.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(claim.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(claim.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EvidenceStrength(); ok {
		_spec.SetField(claim.FieldEvidenceStrength, field.TypeEnum, value)
		_node.EvidenceStrength = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(claim.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ReviewPriority(); ok {
		_spec.SetField(claim.FieldReviewPriority, field.TypeEnum, value)
		_node.ReviewPriority = value
	}
	if value, ok := _c.mutation.HasEmbedding(); ok {
		_spec.SetField(claim.FieldHasEmbedding, field.TypeBool, value)
		_node.HasEmbedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.SourcesTable,
			Columns: []string{claim.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.EvidenceTable,
			Columns: []string{claim.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   claim.EntitiesTable,
			Columns: claim.EntitiesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   claim.TopicsTable,
			Columns: claim.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MarketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.MarketsTable,
			Columns: []string{claim.MarketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(market.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClaimCreateBulk is the builder for creating many Claim entities in bulk.
type ClaimCreateBulk struct {
	config
	err      error
	builders []*ClaimCreate
}

// Save creates the Claim entities in the database.
func (_c *ClaimCreateBulk) Save(ctx context.Context) ([]*Claim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Claim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimMutation)
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
func (_c *ClaimCreateBulk) SaveX(ctx context.Context) []*Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
