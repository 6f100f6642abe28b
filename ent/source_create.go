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
	"github.com/veraz-project/veraz/ent/source"
)

// SourceCreate is the builder for creating a Source entity.
type SourceCreate struct {
	config
	mutation *SourceMutation
	hooks    []Hook
}

// SetPlatform sets the "platform" field.
func (_c *SourceCreate) SetPlatform(v source.Platform) *SourceCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *SourceCreate) SetExternalID(v string) *SourceCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *SourceCreate) SetAuthor(v string) *SourceCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *SourceCreate) SetNillableAuthor(v *string) *SourceCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *SourceCreate) SetURL(v string) *SourceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *SourceCreate) SetNillableURL(v *string) *SourceCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *SourceCreate) SetContent(v string) *SourceCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *SourceCreate) SetCapturedAt(v time.Time) *SourceCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCapturedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *SourceCreate) SetPublishedAt(v time.Time) *SourceCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillablePublishedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetLikes sets the "likes" field.
func (_c *SourceCreate) SetLikes(v int64) *SourceCreate {
	_c.mutation.SetLikes(v)
	return _c
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLikes(v *int64) *SourceCreate {
	if v != nil {
		_c.SetLikes(*v)
	}
	return _c
}

// SetShares sets the "shares" field.
func (_c *SourceCreate) SetShares(v int64) *SourceCreate {
	_c.mutation.SetShares(v)
	return _c
}

// SetNillableShares sets the "shares" field if the given value is not nil.
func (_c *SourceCreate) SetNillableShares(v *int64) *SourceCreate {
	if v != nil {
		_c.SetShares(*v)
	}
	return _c
}

// SetComments sets the "comments" field.
func (_c *SourceCreate) SetComments(v int64) *SourceCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_c *SourceCreate) SetNillableComments(v *int64) *SourceCreate {
	if v != nil {
		_c.SetComments(*v)
	}
	return _c
}

// SetViews sets the "views" field.
func (_c *SourceCreate) SetViews(v int64) *SourceCreate {
	_c.mutation.SetViews(v)
	return _c
}

// SetNillableViews sets the "views" field if the given value is not nil.
func (_c *SourceCreate) SetNillableViews(v *int64) *SourceCreate {
	if v != nil {
		_c.SetViews(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *SourceCreate) SetState(v source.State) *SourceCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SourceCreate) SetNillableState(v *source.State) *SourceCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *SourceCreate) SetSkipReason(v string) *SourceCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *SourceCreate) SetNillableSkipReason(v *string) *SourceCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *SourceCreate) SetFailureCount(v int) *SourceCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *SourceCreate) SetNillableFailureCount(v *int) *SourceCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SourceCreate) SetLastError(v string) *SourceCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLastError(v *string) *SourceCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetClaimID sets the "claim_id" field.
func (_c *SourceCreate) SetClaimID(v string) *SourceCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_c *SourceCreate) SetNillableClaimID(v *string) *SourceCreate {
	if v != nil {
		_c.SetClaimID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceCreate) SetID(v string) *SourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_c *SourceCreate) SetClaim(v *Claim) *SourceCreate {
	return _c.SetClaimID(v.ID)
}

// Mutation returns the SourceMutation object of the builder.
func (_c *SourceCreate) Mutation() *SourceMutation {
	return _c.mutation
}

// Save creates the Source in the database.
func (_c *SourceCreate) Save(ctx context.Context) (*Source, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCreate) SaveX(ctx context.Context) *Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCreate) defaults() {
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := source.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := source.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := source.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Source.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := source.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Source.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Source.external_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Source.content"`)}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "Source.captured_at"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Source.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := source.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Source.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "Source.failure_count"`)}
	}
	return nil
}

func (_c *SourceCreate) sqlSave(ctx context.Context) (*Source, error) {
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
			return nil, fmt.Errorf("unexpected Source.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceCreate) createSpec() (*Source, *sqlgraph.CreateSpec) {
	var (
		_node = &Source{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(source.Table, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(source.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(source.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(source.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(source.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(source.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(source.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.Likes(); ok {
		_spec.SetField(source.FieldLikes, field.TypeInt64, value)
		_node.Likes = &value
	}
	if value, ok := _c.mutation.Shares(); ok {
		_spec.SetField(source.FieldShares, field.TypeInt64, value)
		_node.Shares = &value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(source.FieldComments, field.TypeInt64, value)
		_node.Comments = &value
	}
	if value, ok := _c.mutation.Views(); ok {
		_spec.SetField(source.FieldViews, field.TypeInt64, value)
		_node.Views = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(source.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(source.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(source.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(source.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if nodes := _c.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   source.ClaimTable,
			Columns: []string{source.ClaimColumn},
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
	return _node, _spec
}

// SourceCreateBulk is the builder for creating many Source entities in bulk.
type SourceCreateBulk struct {
	config
	err      error
	builders []*SourceCreate
}

// Save creates the Source entities in the database.
func (_c *SourceCreateBulk) Save(ctx context.Context) ([]*Source, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Source, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMutation)
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
func (_c *SourceCreateBulk) SaveX(ctx context.Context) []*Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
