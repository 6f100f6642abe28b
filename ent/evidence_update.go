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
	"github.com/veraz-project/veraz/ent/evidence"
	"github.com/veraz-project/veraz/ent/predicate"
)

// EvidenceUpdate is the builder for updating Evidence entities.
type EvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceMutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdate) Where(ps ...predicate.Evidence) *EvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *EvidenceUpdate) SetClaimID(v string) *EvidenceUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableClaimID(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *EvidenceUpdate) SetURL(v string) *EvidenceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableURL(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *EvidenceUpdate) SetDomain(v string) *EvidenceUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableDomain(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EvidenceUpdate) SetTitle(v string) *EvidenceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableTitle(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *EvidenceUpdate) ClearTitle() *EvidenceUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *EvidenceUpdate) SetSnippet(v string) *EvidenceUpdate {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableSnippet(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *EvidenceUpdate) ClearSnippet() *EvidenceUpdate {
	_u.mutation.ClearSnippet()
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *EvidenceUpdate) SetFetchedAt(v time.Time) *EvidenceUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableFetchedAt(v *time.Time) *EvidenceUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *EvidenceUpdate) SetRelevance(v float64) *EvidenceUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableRelevance(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *EvidenceUpdate) AddRelevance(v float64) *EvidenceUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetCredibilityTier sets the "credibility_tier" field.
func (_u *EvidenceUpdate) SetCredibilityTier(v int) *EvidenceUpdate {
	_u.mutation.ResetCredibilityTier()
	_u.mutation.SetCredibilityTier(v)
	return _u
}

// SetNillableCredibilityTier sets the "credibility_tier" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableCredibilityTier(v *int) *EvidenceUpdate {
	if v != nil {
		_u.SetCredibilityTier(*v)
	}
	return _u
}

// AddCredibilityTier adds value to the "credibility_tier" field.
func (_u *EvidenceUpdate) AddCredibilityTier(v int) *EvidenceUpdate {
	_u.mutation.AddCredibilityTier(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *EvidenceUpdate) SetPosition(v int) *EvidenceUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillablePosition(v *int) *EvidenceUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EvidenceUpdate) AddPosition(v int) *EvidenceUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *EvidenceUpdate) SetClaim(v *Claim) *EvidenceUpdate {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdate) Mutation() *EvidenceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *EvidenceUpdate) ClearClaim() *EvidenceUpdate {
	_u.mutation.ClearClaim()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdate) check() error {
	if v, ok := _u.mutation.CredibilityTier(); ok {
		if err := evidence.CredibilityTierValidator(v); err != nil {
			return &ValidationError{Name: "credibility_tier", err: fmt.Errorf(`ent: validator failed for field "Evidence.credibility_tier": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.claim"`)
	}
	return nil
}

func (_u *EvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(evidence.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(evidence.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(evidence.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(evidence.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(evidence.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(evidence.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(evidence.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CredibilityTier(); ok {
		_spec.SetField(evidence.FieldCredibilityTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredibilityTier(); ok {
		_spec.AddField(evidence.FieldCredibilityTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(evidence.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(evidence.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceUpdateOne is the builder for updating a single Evidence entity.
type EvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceMutation
}

// SetClaimID sets the "claim_id" field.
func (_u *EvidenceUpdateOne) SetClaimID(v string) *EvidenceUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableClaimID(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *EvidenceUpdateOne) SetURL(v string) *EvidenceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableURL(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *EvidenceUpdateOne) SetDomain(v string) *EvidenceUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableDomain(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EvidenceUpdateOne) SetTitle(v string) *EvidenceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableTitle(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *EvidenceUpdateOne) ClearTitle() *EvidenceUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *EvidenceUpdateOne) SetSnippet(v string) *EvidenceUpdateOne {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableSnippet(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *EvidenceUpdateOne) ClearSnippet() *EvidenceUpdateOne {
	_u.mutation.ClearSnippet()
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *EvidenceUpdateOne) SetFetchedAt(v time.Time) *EvidenceUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableFetchedAt(v *time.Time) *EvidenceUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *EvidenceUpdateOne) SetRelevance(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableRelevance(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *EvidenceUpdateOne) AddRelevance(v float64) *EvidenceUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetCredibilityTier sets the "credibility_tier" field.
func (_u *EvidenceUpdateOne) SetCredibilityTier(v int) *EvidenceUpdateOne {
	_u.mutation.ResetCredibilityTier()
	_u.mutation.SetCredibilityTier(v)
	return _u
}

// SetNillableCredibilityTier sets the "credibility_tier" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableCredibilityTier(v *int) *EvidenceUpdateOne {
	if v != nil {
		_u.SetCredibilityTier(*v)
	}
	return _u
}

// AddCredibilityTier adds value to the "credibility_tier" field.
func (_u *EvidenceUpdateOne) AddCredibilityTier(v int) *EvidenceUpdateOne {
	_u.mutation.AddCredibilityTier(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *EvidenceUpdateOne) SetPosition(v int) *EvidenceUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillablePosition(v *int) *EvidenceUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EvidenceUpdateOne) AddPosition(v int) *EvidenceUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *EvidenceUpdateOne) SetClaim(v *Claim) *EvidenceUpdateOne {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdateOne) Mutation() *EvidenceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *EvidenceUpdateOne) ClearClaim() *EvidenceUpdateOne {
	_u.mutation.ClearClaim()
	return _u
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdateOne) Where(ps ...predicate.Evidence) *EvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceUpdateOne) Select(field string, fields ...string) *EvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evidence entity.
func (_u *EvidenceUpdateOne) Save(ctx context.Context) (*Evidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdateOne) SaveX(ctx context.Context) *Evidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.CredibilityTier(); ok {
		if err := evidence.CredibilityTierValidator(v); err != nil {
			return &ValidationError{Name: "credibility_tier", err: fmt.Errorf(`ent: validator failed for field "Evidence.credibility_tier": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.claim"`)
	}
	return nil
}

func (_u *EvidenceUpdateOne) sqlSave(ctx context.Context) (_node *Evidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidence.FieldID)
		for _, f := range fields {
			if !evidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidence.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(evidence.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(evidence.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(evidence.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(evidence.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(evidence.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(evidence.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(evidence.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CredibilityTier(); ok {
		_spec.SetField(evidence.FieldCredibilityTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredibilityTier(); ok {
		_spec.AddField(evidence.FieldCredibilityTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(evidence.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(evidence.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Evidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
