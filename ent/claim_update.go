// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/entity"
	"github.com/veraz-project/veraz/ent/evidence"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/ent/topic"
)

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *ClaimUpdate) SetText(v string) *ClaimUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableText(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *ClaimUpdate) SetOriginalText(v string) *ClaimUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableOriginalText(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ClaimUpdate) SetVerdict(v claim.Verdict) *ClaimUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableVerdict(v *claim.Verdict) *ClaimUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ClaimUpdate) SetExplanation(v string) *ClaimUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableExplanation(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClaimUpdate) SetConfidence(v float64) *ClaimUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableConfidence(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClaimUpdate) AddConfidence(v float64) *ClaimUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidenceStrength sets the "evidence_strength" field.
func (_u *ClaimUpdate) SetEvidenceStrength(v claim.EvidenceStrength) *ClaimUpdate {
	_u.mutation.SetEvidenceStrength(v)
	return _u
}

// SetNillableEvidenceStrength sets the "evidence_strength" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableEvidenceStrength(v *claim.EvidenceStrength) *ClaimUpdate {
	if v != nil {
		_u.SetEvidenceStrength(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ClaimUpdate) SetNeedsReview(v bool) *ClaimUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableNeedsReview(v *bool) *ClaimUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewPriority sets the "review_priority" field.
func (_u *ClaimUpdate) SetReviewPriority(v claim.ReviewPriority) *ClaimUpdate {
	_u.mutation.SetReviewPriority(v)
	return _u
}

// SetNillableReviewPriority sets the "review_priority" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableReviewPriority(v *claim.ReviewPriority) *ClaimUpdate {
	if v != nil {
		_u.SetReviewPriority(*v)
	}
	return _u
}

// SetHasEmbedding sets the "has_embedding" field.
func (_u *ClaimUpdate) SetHasEmbedding(v bool) *ClaimUpdate {
	_u.mutation.SetHasEmbedding(v)
	return _u
}

// SetNillableHasEmbedding sets the "has_embedding" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableHasEmbedding(v *bool) *ClaimUpdate {
	if v != nil {
		_u.SetHasEmbedding(*v)
	}
	return _u
}

// AddSourceIDs adds the "sources" edge to the Source entity by IDs.
func (_u *ClaimUpdate) AddSourceIDs(ids ...string) *ClaimUpdate {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the Source entity.
func (_u *ClaimUpdate) AddSources(v ...*Source) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *ClaimUpdate) AddEvidenceIDs(ids ...string) *ClaimUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *ClaimUpdate) AddEvidence(v ...*Evidence) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_u *ClaimUpdate) AddEntityIDs(ids ...string) *ClaimUpdate {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_u *ClaimUpdate) AddEntities(v ...*Entity) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (_u *ClaimUpdate) AddTopicIDs(ids ...string) *ClaimUpdate {
	_u.mutation.AddTopicIDs(ids...)
	return _u
}

// AddTopics adds the "topics" edges to the Topic entity.
func (_u *ClaimUpdate) AddTopics(v ...*Topic) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicIDs(ids...)
}

// AddMarketIDs adds the "markets" edge to the Market entity by IDs.
func (_u *ClaimUpdate) AddMarketIDs(ids ...string) *ClaimUpdate {
	_u.mutation.AddMarketIDs(ids...)
	return _u
}

// AddMarkets adds the "markets" edges to the Market entity.
func (_u *ClaimUpdate) AddMarkets(v ...*Market) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMarketIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearSources clears all "sources" edges to the Source entity.
func (_u *ClaimUpdate) ClearSources() *ClaimUpdate {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to Source entities by IDs.
func (_u *ClaimUpdate) RemoveSourceIDs(ids ...string) *ClaimUpdate {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to Source entities.
func (_u *ClaimUpdate) RemoveSources(v ...*Source) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *ClaimUpdate) ClearEvidence() *ClaimUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *ClaimUpdate) RemoveEvidenceIDs(ids ...string) *ClaimUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *ClaimUpdate) RemoveEvidence(v ...*Evidence) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearEntities clears all "entities" edges to the Entity entity.
func (_u *ClaimUpdate) ClearEntities() *ClaimUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to Entity entities by IDs.
func (_u *ClaimUpdate) RemoveEntityIDs(ids ...string) *ClaimUpdate {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to Entity entities.
func (_u *ClaimUpdate) RemoveEntities(v ...*Entity) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// ClearTopics clears all "topics" edges to the Topic entity.
func (_u *ClaimUpdate) ClearTopics() *ClaimUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// RemoveTopicIDs removes the "topics" edge to Topic entities by IDs.
func (_u *ClaimUpdate) RemoveTopicIDs(ids ...string) *ClaimUpdate {
	_u.mutation.RemoveTopicIDs(ids...)
	return _u
}

// RemoveTopics removes "topics" edges to Topic entities.
func (_u *ClaimUpdate) RemoveTopics(v ...*Topic) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicIDs(ids...)
}

// ClearMarkets clears all "markets" edges to the Market entity.
func (_u *ClaimUpdate) ClearMarkets() *ClaimUpdate {
	_u.mutation.ClearMarkets()
	return _u
}

// RemoveMarketIDs removes the "markets" edge to Market entities by IDs.
func (_u *ClaimUpdate) RemoveMarketIDs(ids ...string) *ClaimUpdate {
	_u.mutation.RemoveMarketIDs(ids...)
	return _u
}

// RemoveMarkets removes "markets" edges to Market entities.
func (_u *ClaimUpdate) RemoveMarkets(v ...*Market) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMarketIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := claim.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Claim.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := claim.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "Claim.explanation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvidenceStrength(); ok {
		if err := claim.EvidenceStrengthValidator(v); err != nil {
			return &ValidationError{Name: "evidence_strength", err: fmt.Errorf(`ent: validator failed for field "Claim.evidence_strength": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewPriority(); ok {
		if err := claim.ReviewPriorityValidator(v); err != nil {
			return &ValidationError{Name: "review_priority", err: fmt.Errorf(`ent: validator failed for field "Claim.review_priority": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(claim.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(claim.FieldOriginalText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(claim.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(claim.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceStrength(); ok {
		_spec.SetField(claim.FieldEvidenceStrength, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(claim.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewPriority(); ok {
		_spec.SetField(claim.FieldReviewPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HasEmbedding(); ok {
		_spec.SetField(claim.FieldHasEmbedding, field.TypeBool, value)
	}
	if _u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !_u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MarketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMarketsIDs(); len(nodes) > 0 && !_u.mutation.MarketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetText sets the "text" field.
func (_u *ClaimUpdateOne) SetText(v string) *ClaimUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableText(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *ClaimUpdateOne) SetOriginalText(v string) *ClaimUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableOriginalText(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ClaimUpdateOne) SetVerdict(v claim.Verdict) *ClaimUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableVerdict(v *claim.Verdict) *ClaimUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ClaimUpdateOne) SetExplanation(v string) *ClaimUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableExplanation(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClaimUpdateOne) SetConfidence(v float64) *ClaimUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableConfidence(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClaimUpdateOne) AddConfidence(v float64) *ClaimUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidenceStrength sets the "evidence_strength" field.
func (_u *ClaimUpdateOne) SetEvidenceStrength(v claim.EvidenceStrength) *ClaimUpdateOne {
	_u.mutation.SetEvidenceStrength(v)
	return _u
}

// SetNillableEvidenceStrength sets the "evidence_strength" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableEvidenceStrength(v *claim.EvidenceStrength) *ClaimUpdateOne {
	if v != nil {
		_u.SetEvidenceStrength(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ClaimUpdateOne) SetNeedsReview(v bool) *ClaimUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableNeedsReview(v *bool) *ClaimUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewPriority sets the "review_priority" field.
func (_u *ClaimUpdateOne) SetReviewPriority(v claim.ReviewPriority) *ClaimUpdateOne {
	_u.mutation.SetReviewPriority(v)
	return _u
}

// SetNillableReviewPriority sets the "review_priority" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableReviewPriority(v *claim.ReviewPriority) *ClaimUpdateOne {
	if v != nil {
		_u.SetReviewPriority(*v)
	}
	return _u
}

// SetHasEmbedding sets the "has_embedding" field.
func (_u *ClaimUpdateOne) SetHasEmbedding(v bool) *ClaimUpdateOne {
	_u.mutation.SetHasEmbedding(v)
	return _u
}

// SetNillableHasEmbedding sets the "has_embedding" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableHasEmbedding(v *bool) *ClaimUpdateOne {
	if v != nil {
		_u.SetHasEmbedding(*v)
	}
	return _u
}

// AddSourceIDs adds the "sources" edge to the Source entity by IDs.
func (_u *ClaimUpdateOne) AddSourceIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the Source entity.
func (_u *ClaimUpdateOne) AddSources(v ...*Source) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *ClaimUpdateOne) AddEvidenceIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *ClaimUpdateOne) AddEvidence(v ...*Evidence) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_u *ClaimUpdateOne) AddEntityIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_u *ClaimUpdateOne) AddEntities(v ...*Entity) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (_u *ClaimUpdateOne) AddTopicIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.AddTopicIDs(ids...)
	return _u
}

// AddTopics adds the "topics" edges to the Topic entity.
func (_u *ClaimUpdateOne) AddTopics(v ...*Topic) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicIDs(ids...)
}

// AddMarketIDs adds the "markets" edge to the Market entity by IDs.
func (_u *ClaimUpdateOne) AddMarketIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.AddMarketIDs(ids...)
	return _u
}

// AddMarkets adds the "markets" edges to the Market entity.
func (_u *ClaimUpdateOne) AddMarkets(v ...*Market) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMarketIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearSources clears all "sources" edges to the Source entity.
func (_u *ClaimUpdateOne) ClearSources() *ClaimUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to Source entities by IDs.
func (_u *ClaimUpdateOne) RemoveSourceIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to Source entities.
func (_u *ClaimUpdateOne) RemoveSources(v ...*Source) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *ClaimUpdateOne) ClearEvidence() *ClaimUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *ClaimUpdateOne) RemoveEvidenceIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *ClaimUpdateOne) RemoveEvidence(v ...*Evidence) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearEntities clears all "entities" edges to the Entity entity.
func (_u *ClaimUpdateOne) ClearEntities() *ClaimUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to Entity entities by IDs.
func (_u *ClaimUpdateOne) RemoveEntityIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to Entity entities.
func (_u *ClaimUpdateOne) RemoveEntities(v ...*Entity) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// ClearTopics clears all "topics" edges to the Topic entity.
func (_u *ClaimUpdateOne) ClearTopics() *ClaimUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// RemoveTopicIDs removes the "topics" edge to Topic entities by IDs.
func (_u *ClaimUpdateOne) RemoveTopicIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.RemoveTopicIDs(ids...)
	return _u
}

// RemoveTopics removes "topics" edges to Topic entities.
func (_u *ClaimUpdateOne) RemoveTopics(v ...*Topic) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicIDs(ids...)
}

// ClearMarkets clears all "markets" edges to the Market entity.
func (_u *ClaimUpdateOne) ClearMarkets() *ClaimUpdateOne {
	_u.mutation.ClearMarkets()
	return _u
}

// RemoveMarketIDs removes the "markets" edge to Market entities by IDs.
func (_u *ClaimUpdateOne) RemoveMarketIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.RemoveMarketIDs(ids...)
	return _u
}

// RemoveMarkets removes "markets" edges to Market entities.
func (_u *ClaimUpdateOne) RemoveMarkets(v ...*Market) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMarketIDs(ids...)
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := claim.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Claim.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := claim.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "Claim.explanation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvidenceStrength(); ok {
		if err := claim.EvidenceStrengthValidator(v); err != nil {
			return &ValidationError{Name: "evidence_strength", err: fmt.Errorf(`ent: validator failed for field "Claim.evidence_strength": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewPriority(); ok {
		if err := claim.ReviewPriorityValidator(v); err != nil {
			return &ValidationError{Name: "review_priority", err: fmt.Errorf(`ent: validator failed for field "Claim.review_priority": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(claim.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(claim.FieldOriginalText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(claim.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(claim.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceStrength(); ok {
		_spec.SetField(claim.FieldEvidenceStrength, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(claim.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewPriority(); ok {
		_spec.SetField(claim.FieldReviewPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HasEmbedding(); ok {
		_spec.SetField(claim.FieldHasEmbedding, field.TypeBool, value)
	}
	if _u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !_u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MarketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMarketsIDs(); len(nodes) > 0 && !_u.mutation.MarketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
