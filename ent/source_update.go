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
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/source"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SourceUpdate) SetPlatform(v source.Platform) *SourceUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceUpdate) SetNillablePlatform(v *source.Platform) *SourceUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *SourceUpdate) SetExternalID(v string) *SourceUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableExternalID(v *string) *SourceUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *SourceUpdate) SetAuthor(v string) *SourceUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableAuthor(v *string) *SourceUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *SourceUpdate) ClearAuthor() *SourceUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdate) SetURL(v string) *SourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableURL(v *string) *SourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *SourceUpdate) ClearURL() *SourceUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetContent sets the "content" field.
func (_u *SourceUpdate) SetContent(v string) *SourceUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableContent(v *string) *SourceUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *SourceUpdate) SetCapturedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableCapturedAt(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *SourceUpdate) SetPublishedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *SourceUpdate) SetNillablePublishedAt(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *SourceUpdate) ClearPublishedAt() *SourceUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetLikes sets the "likes" field.
func (_u *SourceUpdate) SetLikes(v int64) *SourceUpdate {
	_u.mutation.ResetLikes()
	_u.mutation.SetLikes(v)
	return _u
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLikes(v *int64) *SourceUpdate {
	if v != nil {
		_u.SetLikes(*v)
	}
	return _u
}

// AddLikes adds value to the "likes" field.
func (_u *SourceUpdate) AddLikes(v int64) *SourceUpdate {
	_u.mutation.AddLikes(v)
	return _u
}

// ClearLikes clears the value of the "likes" field.
func (_u *SourceUpdate) ClearLikes() *SourceUpdate {
	_u.mutation.ClearLikes()
	return _u
}

// SetShares sets the "shares" field.
func (_u *SourceUpdate) SetShares(v int64) *SourceUpdate {
	_u.mutation.ResetShares()
	_u.mutation.SetShares(v)
	return _u
}

// SetNillableShares sets the "shares" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableShares(v *int64) *SourceUpdate {
	if v != nil {
		_u.SetShares(*v)
	}
	return _u
}

// AddShares adds value to the "shares" field.
func (_u *SourceUpdate) AddShares(v int64) *SourceUpdate {
	_u.mutation.AddShares(v)
	return _u
}

// ClearShares clears the value of the "shares" field.
func (_u *SourceUpdate) ClearShares() *SourceUpdate {
	_u.mutation.ClearShares()
	return _u
}

// SetComments sets the "comments" field.
func (_u *SourceUpdate) SetComments(v int64) *SourceUpdate {
	_u.mutation.ResetComments()
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableComments(v *int64) *SourceUpdate {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// AddComments adds value to the "comments" field.
func (_u *SourceUpdate) AddComments(v int64) *SourceUpdate {
	_u.mutation.AddComments(v)
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *SourceUpdate) ClearComments() *SourceUpdate {
	_u.mutation.ClearComments()
	return _u
}

// SetViews sets the "views" field.
func (_u *SourceUpdate) SetViews(v int64) *SourceUpdate {
	_u.mutation.ResetViews()
	_u.mutation.SetViews(v)
	return _u
}

// SetNillableViews sets the "views" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableViews(v *int64) *SourceUpdate {
	if v != nil {
		_u.SetViews(*v)
	}
	return _u
}

// AddViews adds value to the "views" field.
func (_u *SourceUpdate) AddViews(v int64) *SourceUpdate {
	_u.mutation.AddViews(v)
	return _u
}

// ClearViews clears the value of the "views" field.
func (_u *SourceUpdate) ClearViews() *SourceUpdate {
	_u.mutation.ClearViews()
	return _u
}

// SetState sets the "state" field.
func (_u *SourceUpdate) SetState(v source.State) *SourceUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableState(v *source.State) *SourceUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *SourceUpdate) SetSkipReason(v string) *SourceUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSkipReason(v *string) *SourceUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *SourceUpdate) ClearSkipReason() *SourceUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *SourceUpdate) SetFailureCount(v int) *SourceUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableFailureCount(v *int) *SourceUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *SourceUpdate) AddFailureCount(v int) *SourceUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SourceUpdate) SetLastError(v string) *SourceUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLastError(v *string) *SourceUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SourceUpdate) ClearLastError() *SourceUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *SourceUpdate) SetClaimID(v string) *SourceUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableClaimID(v *string) *SourceUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// ClearClaimID clears the value of the "claim_id" field.
func (_u *SourceUpdate) ClearClaimID() *SourceUpdate {
	_u.mutation.ClearClaimID()
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *SourceUpdate) SetClaim(v *Claim) *SourceUpdate {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *SourceUpdate) ClearClaim() *SourceUpdate {
	_u.mutation.ClearClaim()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdate) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := source.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Source.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := source.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Source.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(source.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(source.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(source.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(source.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(source.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(source.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(source.FieldCapturedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(source.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(source.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Likes(); ok {
		_spec.SetField(source.FieldLikes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLikes(); ok {
		_spec.AddField(source.FieldLikes, field.TypeInt64, value)
	}
	if _u.mutation.LikesCleared() {
		_spec.ClearField(source.FieldLikes, field.TypeInt64)
	}
	if value, ok := _u.mutation.Shares(); ok {
		_spec.SetField(source.FieldShares, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedShares(); ok {
		_spec.AddField(source.FieldShares, field.TypeInt64, value)
	}
	if _u.mutation.SharesCleared() {
		_spec.ClearField(source.FieldShares, field.TypeInt64)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(source.FieldComments, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedComments(); ok {
		_spec.AddField(source.FieldComments, field.TypeInt64, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(source.FieldComments, field.TypeInt64)
	}
	if value, ok := _u.mutation.Views(); ok {
		_spec.SetField(source.FieldViews, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViews(); ok {
		_spec.AddField(source.FieldViews, field.TypeInt64, value)
	}
	if _u.mutation.ViewsCleared() {
		_spec.ClearField(source.FieldViews, field.TypeInt64)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(source.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(source.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(source.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(source.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(source.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(source.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(source.FieldLastError, field.TypeString)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMutation
}

// SetPlatform sets the "platform" field.
func (_u *SourceUpdateOne) SetPlatform(v source.Platform) *SourceUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillablePlatform(v *source.Platform) *SourceUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *SourceUpdateOne) SetExternalID(v string) *SourceUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableExternalID(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *SourceUpdateOne) SetAuthor(v string) *SourceUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableAuthor(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *SourceUpdateOne) ClearAuthor() *SourceUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdateOne) SetURL(v string) *SourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableURL(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *SourceUpdateOne) ClearURL() *SourceUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetContent sets the "content" field.
func (_u *SourceUpdateOne) SetContent(v string) *SourceUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableContent(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *SourceUpdateOne) SetCapturedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableCapturedAt(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *SourceUpdateOne) SetPublishedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillablePublishedAt(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *SourceUpdateOne) ClearPublishedAt() *SourceUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetLikes sets the "likes" field.
func (_u *SourceUpdateOne) SetLikes(v int64) *SourceUpdateOne {
	_u.mutation.ResetLikes()
	_u.mutation.SetLikes(v)
	return _u
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLikes(v *int64) *SourceUpdateOne {
	if v != nil {
		_u.SetLikes(*v)
	}
	return _u
}

// AddLikes adds value to the "likes" field.
func (_u *SourceUpdateOne) AddLikes(v int64) *SourceUpdateOne {
	_u.mutation.AddLikes(v)
	return _u
}

// ClearLikes clears the value of the "likes" field.
func (_u *SourceUpdateOne) ClearLikes() *SourceUpdateOne {
	_u.mutation.ClearLikes()
	return _u
}

// SetShares sets the "shares" field.
func (_u *SourceUpdateOne) SetShares(v int64) *SourceUpdateOne {
	_u.mutation.ResetShares()
	_u.mutation.SetShares(v)
	return _u
}

// SetNillableShares sets the "shares" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableShares(v *int64) *SourceUpdateOne {
	if v != nil {
		_u.SetShares(*v)
	}
	return _u
}

// AddShares adds value to the "shares" field.
func (_u *SourceUpdateOne) AddShares(v int64) *SourceUpdateOne {
	_u.mutation.AddShares(v)
	return _u
}

// ClearShares clears the value of the "shares" field.
func (_u *SourceUpdateOne) ClearShares() *SourceUpdateOne {
	_u.mutation.ClearShares()
	return _u
}

// SetComments sets the "comments" field.
func (_u *SourceUpdateOne) SetComments(v int64) *SourceUpdateOne {
	_u.mutation.ResetComments()
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableComments(v *int64) *SourceUpdateOne {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// AddComments adds value to the "comments" field.
func (_u *SourceUpdateOne) AddComments(v int64) *SourceUpdateOne {
	_u.mutation.AddComments(v)
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *SourceUpdateOne) ClearComments() *SourceUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// SetViews sets the "views" field.
func (_u *SourceUpdateOne) SetViews(v int64) *SourceUpdateOne {
	_u.mutation.ResetViews()
	_u.mutation.SetViews(v)
	return _u
}

// SetNillableViews sets the "views" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableViews(v *int64) *SourceUpdateOne {
	if v != nil {
		_u.SetViews(*v)
	}
	return _u
}

// AddViews adds value to the "views" field.
func (_u *SourceUpdateOne) AddViews(v int64) *SourceUpdateOne {
	_u.mutation.AddViews(v)
	return _u
}

// ClearViews clears the value of the "views" field.
func (_u *SourceUpdateOne) ClearViews() *SourceUpdateOne {
	_u.mutation.ClearViews()
	return _u
}

// SetState sets the "state" field.
func (_u *SourceUpdateOne) SetState(v source.State) *SourceUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableState(v *source.State) *SourceUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *SourceUpdateOne) SetSkipReason(v string) *SourceUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSkipReason(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *SourceUpdateOne) ClearSkipReason() *SourceUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *SourceUpdateOne) SetFailureCount(v int) *SourceUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableFailureCount(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *SourceUpdateOne) AddFailureCount(v int) *SourceUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SourceUpdateOne) SetLastError(v string) *SourceUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLastError(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SourceUpdateOne) ClearLastError() *SourceUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *SourceUpdateOne) SetClaimID(v string) *SourceUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableClaimID(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// ClearClaimID clears the value of the "claim_id" field.
func (_u *SourceUpdateOne) ClearClaimID() *SourceUpdateOne {
	_u.mutation.ClearClaimID()
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *SourceUpdateOne) SetClaim(v *Claim) *SourceUpdateOne {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *SourceUpdateOne) ClearClaim() *SourceUpdateOne {
	_u.mutation.ClearClaim()
	return _u
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdateOne) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := source.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Source.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := source.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Source.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(source.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(source.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(source.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(source.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(source.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(source.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(source.FieldCapturedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(source.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(source.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Likes(); ok {
		_spec.SetField(source.FieldLikes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLikes(); ok {
		_spec.AddField(source.FieldLikes, field.TypeInt64, value)
	}
	if _u.mutation.LikesCleared() {
		_spec.ClearField(source.FieldLikes, field.TypeInt64)
	}
	if value, ok := _u.mutation.Shares(); ok {
		_spec.SetField(source.FieldShares, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedShares(); ok {
		_spec.AddField(source.FieldShares, field.TypeInt64, value)
	}
	if _u.mutation.SharesCleared() {
		_spec.ClearField(source.FieldShares, field.TypeInt64)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(source.FieldComments, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedComments(); ok {
		_spec.AddField(source.FieldComments, field.TypeInt64, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(source.FieldComments, field.TypeInt64)
	}
	if value, ok := _u.mutation.Views(); ok {
		_spec.SetField(source.FieldViews, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViews(); ok {
		_spec.AddField(source.FieldViews, field.TypeInt64, value)
	}
	if _u.mutation.ViewsCleared() {
		_spec.ClearField(source.FieldViews, field.TypeInt64)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(source.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(source.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(source.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(source.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(source.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(source.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(source.FieldLastError, field.TypeString)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
