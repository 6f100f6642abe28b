// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/entity"
	"github.com/veraz-project/veraz/ent/evidence"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/notification"
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/predictionfactor"
	"github.com/veraz-project/veraz/ent/schedulerlease"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/ent/statcounter"
	"github.com/veraz-project/veraz/ent/task"
	"github.com/veraz-project/veraz/ent/topic"
	"github.com/veraz-project/veraz/ent/trade"
	"github.com/veraz-project/veraz/ent/trendingtopic"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClaim            = "Claim"
	TypeEntity           = "Entity"
	TypeEvidence         = "Evidence"
	TypeMarket           = "Market"
	TypeNotification     = "Notification"
	TypePredictionFactor = "PredictionFactor"
	TypeSchedulerLease   = "SchedulerLease"
	TypeSource           = "Source"
	TypeStatCounter      = "StatCounter"
	TypeTask             = "Task"
	TypeTopic            = "Topic"
	TypeTrade            = "Trade"
	TypeTrendingTopic    = "TrendingTopic"
)

// ClaimMutation represents an operation that mutates the Claim nodes in the graph.
type ClaimMutation struct {
	config
	op                Op
	typ               string
	id                *string
	text              *string
	original_text     *string
	verdict           *claim.Verdict
	explanation       *string
	confidence        *float64
	addconfidence     *float64
	evidence_strength *claim.EvidenceStrength
	needs_review      *bool
	review_priority   *claim.ReviewPriority
	has_embedding     *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	sources           map[string]struct{}
	removedsources    map[string]struct{}
	clearedsources    bool
	evidence          map[string]struct{}
	removedevidence   map[string]struct{}
	clearedevidence   bool
	entities          map[string]struct{}
	removedentities   map[string]struct{}
	clearedentities   bool
	topics            map[string]struct{}
	removedtopics     map[string]struct{}
	clearedtopics     bool
	markets           map[string]struct{}
	removedmarkets    map[string]struct{}
	clearedmarkets    bool
	done              bool
	oldValue          func(context.Context) (*Claim, error)
	predicates        []predicate.Claim
}

var _ ent.Mutation = (*ClaimMutation)(nil)

// claimOption allows management of the mutation configuration using functional options.
type claimOption func(*ClaimMutation)

// newClaimMutation creates new mutation for the Claim entity.
func newClaimMutation(c config, op Op, opts ...claimOption) *ClaimMutation {
	m := &ClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimID sets the ID field of the mutation.
func withClaimID(id string) claimOption {
	return func(m *ClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *Claim
		)
		m.oldValue = func(ctx context.Context) (*Claim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Claim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaim sets the old Claim of the mutation.
func withClaim(node *Claim) claimOption {
	return func(m *ClaimMutation) {
		m.oldValue = func(context.Context) (*Claim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Claim entities.
func (m *ClaimMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Claim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *ClaimMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ClaimMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ClaimMutation) ResetText() {
	m.text = nil
}

// SetOriginalText sets the "original_text" field.
func (m *ClaimMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *ClaimMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *ClaimMutation) ResetOriginalText() {
	m.original_text = nil
}

// SetVerdict sets the "verdict" field.
func (m *ClaimMutation) SetVerdict(c claim.Verdict) {
	m.verdict = &c
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *ClaimMutation) Verdict() (r claim.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldVerdict(ctx context.Context) (v claim.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *ClaimMutation) ResetVerdict() {
	m.verdict = nil
}

// SetExplanation sets the "explanation" field.
func (m *ClaimMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *ClaimMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *ClaimMutation) ResetExplanation() {
	m.explanation = nil
}

// SetConfidence sets the "confidence" field.
func (m *ClaimMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ClaimMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ClaimMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ClaimMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ClaimMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEvidenceStrength sets the "evidence_strength" field.
func (m *ClaimMutation) SetEvidenceStrength(cs claim.EvidenceStrength) {
	m.evidence_strength = &cs
}

// EvidenceStrength returns the value of the "evidence_strength" field in the mutation.
func (m *ClaimMutation) EvidenceStrength() (r claim.EvidenceStrength, exists bool) {
	v := m.evidence_strength
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceStrength returns the old "evidence_strength" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldEvidenceStrength(ctx context.Context) (v claim.EvidenceStrength, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceStrength: %w", err)
	}
	return oldValue.EvidenceStrength, nil
}

// ResetEvidenceStrength resets all changes to the "evidence_strength" field.
func (m *ClaimMutation) ResetEvidenceStrength() {
	m.evidence_strength = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ClaimMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ClaimMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ClaimMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetReviewPriority sets the "review_priority" field.
func (m *ClaimMutation) SetReviewPriority(cp claim.ReviewPriority) {
	m.review_priority = &cp
}

// ReviewPriority returns the value of the "review_priority" field in the mutation.
func (m *ClaimMutation) ReviewPriority() (r claim.ReviewPriority, exists bool) {
	v := m.review_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewPriority returns the old "review_priority" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldReviewPriority(ctx context.Context) (v claim.ReviewPriority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewPriority: %w", err)
	}
	return oldValue.ReviewPriority, nil
}

// ResetReviewPriority resets all changes to the "review_priority" field.
func (m *ClaimMutation) ResetReviewPriority() {
	m.review_priority = nil
}

// SetHasEmbedding sets the "has_embedding" field.
func (m *ClaimMutation) SetHasEmbedding(b bool) {
	m.has_embedding = &b
}

// HasEmbedding returns the value of the "has_embedding" field in the mutation.
func (m *ClaimMutation) HasEmbedding() (r bool, exists bool) {
	v := m.has_embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldHasEmbedding returns the old "has_embedding" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldHasEmbedding(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasEmbedding: %w", err)
	}
	return oldValue.HasEmbedding, nil
}

// ResetHasEmbedding resets all changes to the "has_embedding" field.
func (m *ClaimMutation) ResetHasEmbedding() {
	m.has_embedding = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSourceIDs adds the "sources" edge to the Source entity by ids.
func (m *ClaimMutation) AddSourceIDs(ids ...string) {
	if m.sources == nil {
		m.sources = make(map[string]struct{})
	}
	for i := range ids {
		m.sources[ids[i]] = struct{}{}
	}
}

// ClearSources clears the "sources" edge to the Source entity.
func (m *ClaimMutation) ClearSources() {
	m.clearedsources = true
}

// SourcesCleared reports if the "sources" edge to the Source entity was cleared.
func (m *ClaimMutation) SourcesCleared() bool {
	return m.clearedsources
}

// RemoveSourceIDs removes the "sources" edge to the Source entity by IDs.
func (m *ClaimMutation) RemoveSourceIDs(ids ...string) {
	if m.removedsources == nil {
		m.removedsources = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sources, ids[i])
		m.removedsources[ids[i]] = struct{}{}
	}
}

// RemovedSources returns the removed IDs of the "sources" edge to the Source entity.
func (m *ClaimMutation) RemovedSourcesIDs() (ids []string) {
	for id := range m.removedsources {
		ids = append(ids, id)
	}
	return
}

// SourcesIDs returns the "sources" edge IDs in the mutation.
func (m *ClaimMutation) SourcesIDs() (ids []string) {
	for id := range m.sources {
		ids = append(ids, id)
	}
	return
}

// ResetSources resets all changes to the "sources" edge.
func (m *ClaimMutation) ResetSources() {
	m.sources = nil
	m.clearedsources = false
	m.removedsources = nil
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by ids.
func (m *ClaimMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *ClaimMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *ClaimMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the Evidence entity by IDs.
func (m *ClaimMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the Evidence entity.
func (m *ClaimMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *ClaimMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *ClaimMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// AddEntityIDs adds the "entities" edge to the Entity entity by ids.
func (m *ClaimMutation) AddEntityIDs(ids ...string) {
	if m.entities == nil {
		m.entities = make(map[string]struct{})
	}
	for i := range ids {
		m.entities[ids[i]] = struct{}{}
	}
}

// ClearEntities clears the "entities" edge to the Entity entity.
func (m *ClaimMutation) ClearEntities() {
	m.clearedentities = true
}

// EntitiesCleared reports if the "entities" edge to the Entity entity was cleared.
func (m *ClaimMutation) EntitiesCleared() bool {
	return m.clearedentities
}

// RemoveEntityIDs removes the "entities" edge to the Entity entity by IDs.
func (m *ClaimMutation) RemoveEntityIDs(ids ...string) {
	if m.removedentities == nil {
		m.removedentities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.entities, ids[i])
		m.removedentities[ids[i]] = struct{}{}
	}
}

// RemovedEntities returns the removed IDs of the "entities" edge to the Entity entity.
func (m *ClaimMutation) RemovedEntitiesIDs() (ids []string) {
	for id := range m.removedentities {
		ids = append(ids, id)
	}
	return
}

// EntitiesIDs returns the "entities" edge IDs in the mutation.
func (m *ClaimMutation) EntitiesIDs() (ids []string) {
	for id := range m.entities {
		ids = append(ids, id)
	}
	return
}

// ResetEntities resets all changes to the "entities" edge.
func (m *ClaimMutation) ResetEntities() {
	m.entities = nil
	m.clearedentities = false
	m.removedentities = nil
}

// AddTopicIDs adds the "topics" edge to the Topic entity by ids.
func (m *ClaimMutation) AddTopicIDs(ids ...string) {
	if m.topics == nil {
		m.topics = make(map[string]struct{})
	}
	for i := range ids {
		m.topics[ids[i]] = struct{}{}
	}
}

// ClearTopics clears the "topics" edge to the Topic entity.
func (m *ClaimMutation) ClearTopics() {
	m.clearedtopics = true
}

// TopicsCleared reports if the "topics" edge to the Topic entity was cleared.
func (m *ClaimMutation) TopicsCleared() bool {
	return m.clearedtopics
}

// RemoveTopicIDs removes the "topics" edge to the Topic entity by IDs.
func (m *ClaimMutation) RemoveTopicIDs(ids ...string) {
	if m.removedtopics == nil {
		m.removedtopics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.topics, ids[i])
		m.removedtopics[ids[i]] = struct{}{}
	}
}

// RemovedTopics returns the removed IDs of the "topics" edge to the Topic entity.
func (m *ClaimMutation) RemovedTopicsIDs() (ids []string) {
	for id := range m.removedtopics {
		ids = append(ids, id)
	}
	return
}

// TopicsIDs returns the "topics" edge IDs in the mutation.
func (m *ClaimMutation) TopicsIDs() (ids []string) {
	for id := range m.topics {
		ids = append(ids, id)
	}
	return
}

// ResetTopics resets all changes to the "topics" edge.
func (m *ClaimMutation) ResetTopics() {
	m.topics = nil
	m.clearedtopics = false
	m.removedtopics = nil
}

// AddMarketIDs adds the "markets" edge to the Market entity by ids.
func (m *ClaimMutation) AddMarketIDs(ids ...string) {
	if m.markets == nil {
		m.markets = make(map[string]struct{})
	}
	for i := range ids {
		m.markets[ids[i]] = struct{}{}
	}
}

// ClearMarkets clears the "markets" edge to the Market entity.
func (m *ClaimMutation) ClearMarkets() {
	m.clearedmarkets = true
}

// MarketsCleared reports if the "markets" edge to the Market entity was cleared.
func (m *ClaimMutation) MarketsCleared() bool {
	return m.clearedmarkets
}

// RemoveMarketIDs removes the "markets" edge to the Market entity by IDs.
func (m *ClaimMutation) RemoveMarketIDs(ids ...string) {
	if m.removedmarkets == nil {
		m.removedmarkets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.markets, ids[i])
		m.removedmarkets[ids[i]] = struct{}{}
	}
}

// RemovedMarkets returns the removed IDs of the "markets" edge to the Market entity.
func (m *ClaimMutation) RemovedMarketsIDs() (ids []string) {
	for id := range m.removedmarkets {
		ids = append(ids, id)
	}
	return
}

// MarketsIDs returns the "markets" edge IDs in the mutation.
func (m *ClaimMutation) MarketsIDs() (ids []string) {
	for id := range m.markets {
		ids = append(ids, id)
	}
	return
}

// ResetMarkets resets all changes to the "markets" edge.
func (m *ClaimMutation) ResetMarkets() {
	m.markets = nil
	m.clearedmarkets = false
	m.removedmarkets = nil
}

// Where appends a list predicates to the ClaimMutation builder.
func (m *ClaimMutation) Where(ps ...predicate.Claim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Claim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Claim).
func (m *ClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.text != nil {
		fields = append(fields, claim.FieldText)
	}
	if m.original_text != nil {
		fields = append(fields, claim.FieldOriginalText)
	}
	if m.verdict != nil {
		fields = append(fields, claim.FieldVerdict)
	}
	if m.explanation != nil {
		fields = append(fields, claim.FieldExplanation)
	}
	if m.confidence != nil {
		fields = append(fields, claim.FieldConfidence)
	}
	if m.evidence_strength != nil {
		fields = append(fields, claim.FieldEvidenceStrength)
	}
	if m.needs_review != nil {
		fields = append(fields, claim.FieldNeedsReview)
	}
	if m.review_priority != nil {
		fields = append(fields, claim.FieldReviewPriority)
	}
	if m.has_embedding != nil {
		fields = append(fields, claim.FieldHasEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, claim.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldText:
		return m.Text()
	case claim.FieldOriginalText:
		return m.OriginalText()
	case claim.FieldVerdict:
		return m.Verdict()
	case claim.FieldExplanation:
		return m.Explanation()
	case claim.FieldConfidence:
		return m.Confidence()
	case claim.FieldEvidenceStrength:
		return m.EvidenceStrength()
	case claim.FieldNeedsReview:
		return m.NeedsReview()
	case claim.FieldReviewPriority:
		return m.ReviewPriority()
	case claim.FieldHasEmbedding:
		return m.HasEmbedding()
	case claim.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claim.FieldText:
		return m.OldText(ctx)
	case claim.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case claim.FieldVerdict:
		return m.OldVerdict(ctx)
	case claim.FieldExplanation:
		return m.OldExplanation(ctx)
	case claim.FieldConfidence:
		return m.OldConfidence(ctx)
	case claim.FieldEvidenceStrength:
		return m.OldEvidenceStrength(ctx)
	case claim.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case claim.FieldReviewPriority:
		return m.OldReviewPriority(ctx)
	case claim.FieldHasEmbedding:
		return m.OldHasEmbedding(ctx)
	case claim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Claim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claim.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case claim.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case claim.FieldVerdict:
		v, ok := value.(claim.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case claim.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case claim.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case claim.FieldEvidenceStrength:
		v, ok := value.(claim.EvidenceStrength)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceStrength(v)
		return nil
	case claim.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case claim.FieldReviewPriority:
		v, ok := value.(claim.ReviewPriority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewPriority(v)
		return nil
	case claim.FieldHasEmbedding:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasEmbedding(v)
		return nil
	case claim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, claim.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claim.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Claim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Claim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimMutation) ResetField(name string) error {
	switch name {
	case claim.FieldText:
		m.ResetText()
		return nil
	case claim.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case claim.FieldVerdict:
		m.ResetVerdict()
		return nil
	case claim.FieldExplanation:
		m.ResetExplanation()
		return nil
	case claim.FieldConfidence:
		m.ResetConfidence()
		return nil
	case claim.FieldEvidenceStrength:
		m.ResetEvidenceStrength()
		return nil
	case claim.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case claim.FieldReviewPriority:
		m.ResetReviewPriority()
		return nil
	case claim.FieldHasEmbedding:
		m.ResetHasEmbedding()
		return nil
	case claim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.sources != nil {
		edges = append(edges, claim.EdgeSources)
	}
	if m.evidence != nil {
		edges = append(edges, claim.EdgeEvidence)
	}
	if m.entities != nil {
		edges = append(edges, claim.EdgeEntities)
	}
	if m.topics != nil {
		edges = append(edges, claim.EdgeTopics)
	}
	if m.markets != nil {
		edges = append(edges, claim.EdgeMarkets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeSources:
		ids := make([]ent.Value, 0, len(m.sources))
		for id := range m.sources {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.entities))
		for id := range m.entities {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.topics))
		for id := range m.topics {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeMarkets:
		ids := make([]ent.Value, 0, len(m.markets))
		for id := range m.markets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsources != nil {
		edges = append(edges, claim.EdgeSources)
	}
	if m.removedevidence != nil {
		edges = append(edges, claim.EdgeEvidence)
	}
	if m.removedentities != nil {
		edges = append(edges, claim.EdgeEntities)
	}
	if m.removedtopics != nil {
		edges = append(edges, claim.EdgeTopics)
	}
	if m.removedmarkets != nil {
		edges = append(edges, claim.EdgeMarkets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeSources:
		ids := make([]ent.Value, 0, len(m.removedsources))
		for id := range m.removedsources {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.removedentities))
		for id := range m.removedentities {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.removedtopics))
		for id := range m.removedtopics {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeMarkets:
		ids := make([]ent.Value, 0, len(m.removedmarkets))
		for id := range m.removedmarkets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsources {
		edges = append(edges, claim.EdgeSources)
	}
	if m.clearedevidence {
		edges = append(edges, claim.EdgeEvidence)
	}
	if m.clearedentities {
		edges = append(edges, claim.EdgeEntities)
	}
	if m.clearedtopics {
		edges = append(edges, claim.EdgeTopics)
	}
	if m.clearedmarkets {
		edges = append(edges, claim.EdgeMarkets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimMutation) EdgeCleared(name string) bool {
	switch name {
	case claim.EdgeSources:
		return m.clearedsources
	case claim.EdgeEvidence:
		return m.clearedevidence
	case claim.EdgeEntities:
		return m.clearedentities
	case claim.EdgeTopics:
		return m.clearedtopics
	case claim.EdgeMarkets:
		return m.clearedmarkets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Claim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimMutation) ResetEdge(name string) error {
	switch name {
	case claim.EdgeSources:
		m.ResetSources()
		return nil
	case claim.EdgeEvidence:
		m.ResetEvidence()
		return nil
	case claim.EdgeEntities:
		m.ResetEntities()
		return nil
	case claim.EdgeTopics:
		m.ResetTopics()
		return nil
	case claim.EdgeMarkets:
		m.ResetMarkets()
		return nil
	}
	return fmt.Errorf("unknown Claim edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op             Op
	typ            string
	id             *string
	canonical_name *string
	kind           *entity.Kind
	clearedFields  map[string]struct{}
	claims         map[string]struct{}
	removedclaims  map[string]struct{}
	clearedclaims  bool
	done           bool
	oldValue       func(context.Context) (*Entity, error)
	predicates     []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCanonicalName sets the "canonical_name" field.
func (m *EntityMutation) SetCanonicalName(s string) {
	m.canonical_name = &s
}

// CanonicalName returns the value of the "canonical_name" field in the mutation.
func (m *EntityMutation) CanonicalName() (r string, exists bool) {
	v := m.canonical_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalName returns the old "canonical_name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCanonicalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalName: %w", err)
	}
	return oldValue.CanonicalName, nil
}

// ResetCanonicalName resets all changes to the "canonical_name" field.
func (m *EntityMutation) ResetCanonicalName() {
	m.canonical_name = nil
}

// SetKind sets the "kind" field.
func (m *EntityMutation) SetKind(e entity.Kind) {
	m.kind = &e
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EntityMutation) Kind() (r entity.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldKind(ctx context.Context) (v entity.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EntityMutation) ResetKind() {
	m.kind = nil
}

// AddClaimIDs adds the "claims" edge to the Claim entity by ids.
func (m *EntityMutation) AddClaimIDs(ids ...string) {
	if m.claims == nil {
		m.claims = make(map[string]struct{})
	}
	for i := range ids {
		m.claims[ids[i]] = struct{}{}
	}
}

// ClearClaims clears the "claims" edge to the Claim entity.
func (m *EntityMutation) ClearClaims() {
	m.clearedclaims = true
}

// ClaimsCleared reports if the "claims" edge to the Claim entity was cleared.
func (m *EntityMutation) ClaimsCleared() bool {
	return m.clearedclaims
}

// RemoveClaimIDs removes the "claims" edge to the Claim entity by IDs.
func (m *EntityMutation) RemoveClaimIDs(ids ...string) {
	if m.removedclaims == nil {
		m.removedclaims = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claims, ids[i])
		m.removedclaims[ids[i]] = struct{}{}
	}
}

// RemovedClaims returns the removed IDs of the "claims" edge to the Claim entity.
func (m *EntityMutation) RemovedClaimsIDs() (ids []string) {
	for id := range m.removedclaims {
		ids = append(ids, id)
	}
	return
}

// ClaimsIDs returns the "claims" edge IDs in the mutation.
func (m *EntityMutation) ClaimsIDs() (ids []string) {
	for id := range m.claims {
		ids = append(ids, id)
	}
	return
}

// ResetClaims resets all changes to the "claims" edge.
func (m *EntityMutation) ResetClaims() {
	m.claims = nil
	m.clearedclaims = false
	m.removedclaims = nil
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.canonical_name != nil {
		fields = append(fields, entity.FieldCanonicalName)
	}
	if m.kind != nil {
		fields = append(fields, entity.FieldKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldCanonicalName:
		return m.CanonicalName()
	case entity.FieldKind:
		return m.Kind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldCanonicalName:
		return m.OldCanonicalName(ctx)
	case entity.FieldKind:
		return m.OldKind(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalName(v)
		return nil
	case entity.FieldKind:
		v, ok := value.(entity.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldCanonicalName:
		m.ResetCanonicalName()
		return nil
	case entity.FieldKind:
		m.ResetKind()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claims != nil {
		edges = append(edges, entity.EdgeClaims)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeClaims:
		ids := make([]ent.Value, 0, len(m.claims))
		for id := range m.claims {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedclaims != nil {
		edges = append(edges, entity.EdgeClaims)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeClaims:
		ids := make([]ent.Value, 0, len(m.removedclaims))
		for id := range m.removedclaims {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaims {
		edges = append(edges, entity.EdgeClaims)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeClaims:
		return m.clearedclaims
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeClaims:
		m.ResetClaims()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	url                 *string
	domain              *string
	title               *string
	snippet             *string
	fetched_at          *time.Time
	relevance           *float64
	addrelevance        *float64
	credibility_tier    *int
	addcredibility_tier *int
	position            *int
	addposition         *int
	clearedFields       map[string]struct{}
	claim               *string
	clearedclaim        bool
	done                bool
	oldValue            func(context.Context) (*Evidence, error)
	predicates          []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimID sets the "claim_id" field.
func (m *EvidenceMutation) SetClaimID(s string) {
	m.claim = &s
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *EvidenceMutation) ClaimID() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldClaimID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *EvidenceMutation) ResetClaimID() {
	m.claim = nil
}

// SetURL sets the "url" field.
func (m *EvidenceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *EvidenceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *EvidenceMutation) ResetURL() {
	m.url = nil
}

// SetDomain sets the "domain" field.
func (m *EvidenceMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *EvidenceMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *EvidenceMutation) ResetDomain() {
	m.domain = nil
}

// SetTitle sets the "title" field.
func (m *EvidenceMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EvidenceMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *EvidenceMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[evidence.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *EvidenceMutation) TitleCleared() bool {
	_, ok := m.clearedFields[evidence.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *EvidenceMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, evidence.FieldTitle)
}

// SetSnippet sets the "snippet" field.
func (m *EvidenceMutation) SetSnippet(s string) {
	m.snippet = &s
}

// Snippet returns the value of the "snippet" field in the mutation.
func (m *EvidenceMutation) Snippet() (r string, exists bool) {
	v := m.snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippet returns the old "snippet" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSnippet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippet: %w", err)
	}
	return oldValue.Snippet, nil
}

// ClearSnippet clears the value of the "snippet" field.
func (m *EvidenceMutation) ClearSnippet() {
	m.snippet = nil
	m.clearedFields[evidence.FieldSnippet] = struct{}{}
}

// SnippetCleared returns if the "snippet" field was cleared in this mutation.
func (m *EvidenceMutation) SnippetCleared() bool {
	_, ok := m.clearedFields[evidence.FieldSnippet]
	return ok
}

// ResetSnippet resets all changes to the "snippet" field.
func (m *EvidenceMutation) ResetSnippet() {
	m.snippet = nil
	delete(m.clearedFields, evidence.FieldSnippet)
}

// SetFetchedAt sets the "fetched_at" field.
func (m *EvidenceMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *EvidenceMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *EvidenceMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// SetRelevance sets the "relevance" field.
func (m *EvidenceMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *EvidenceMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *EvidenceMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *EvidenceMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *EvidenceMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCredibilityTier sets the "credibility_tier" field.
func (m *EvidenceMutation) SetCredibilityTier(i int) {
	m.credibility_tier = &i
	m.addcredibility_tier = nil
}

// CredibilityTier returns the value of the "credibility_tier" field in the mutation.
func (m *EvidenceMutation) CredibilityTier() (r int, exists bool) {
	v := m.credibility_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldCredibilityTier returns the old "credibility_tier" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCredibilityTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredibilityTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredibilityTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredibilityTier: %w", err)
	}
	return oldValue.CredibilityTier, nil
}

// AddCredibilityTier adds i to the "credibility_tier" field.
func (m *EvidenceMutation) AddCredibilityTier(i int) {
	if m.addcredibility_tier != nil {
		*m.addcredibility_tier += i
	} else {
		m.addcredibility_tier = &i
	}
}

// AddedCredibilityTier returns the value that was added to the "credibility_tier" field in this mutation.
func (m *EvidenceMutation) AddedCredibilityTier() (r int, exists bool) {
	v := m.addcredibility_tier
	if v == nil {
		return
	}
	return *v, true
}

// ResetCredibilityTier resets all changes to the "credibility_tier" field.
func (m *EvidenceMutation) ResetCredibilityTier() {
	m.credibility_tier = nil
	m.addcredibility_tier = nil
}

// SetPosition sets the "position" field.
func (m *EvidenceMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *EvidenceMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *EvidenceMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *EvidenceMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *EvidenceMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *EvidenceMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[evidence.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *EvidenceMutation) ClaimCleared() bool {
	return m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *EvidenceMutation) ClaimIDs() (ids []string) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *EvidenceMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.claim != nil {
		fields = append(fields, evidence.FieldClaimID)
	}
	if m.url != nil {
		fields = append(fields, evidence.FieldURL)
	}
	if m.domain != nil {
		fields = append(fields, evidence.FieldDomain)
	}
	if m.title != nil {
		fields = append(fields, evidence.FieldTitle)
	}
	if m.snippet != nil {
		fields = append(fields, evidence.FieldSnippet)
	}
	if m.fetched_at != nil {
		fields = append(fields, evidence.FieldFetchedAt)
	}
	if m.relevance != nil {
		fields = append(fields, evidence.FieldRelevance)
	}
	if m.credibility_tier != nil {
		fields = append(fields, evidence.FieldCredibilityTier)
	}
	if m.position != nil {
		fields = append(fields, evidence.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldClaimID:
		return m.ClaimID()
	case evidence.FieldURL:
		return m.URL()
	case evidence.FieldDomain:
		return m.Domain()
	case evidence.FieldTitle:
		return m.Title()
	case evidence.FieldSnippet:
		return m.Snippet()
	case evidence.FieldFetchedAt:
		return m.FetchedAt()
	case evidence.FieldRelevance:
		return m.Relevance()
	case evidence.FieldCredibilityTier:
		return m.CredibilityTier()
	case evidence.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldClaimID:
		return m.OldClaimID(ctx)
	case evidence.FieldURL:
		return m.OldURL(ctx)
	case evidence.FieldDomain:
		return m.OldDomain(ctx)
	case evidence.FieldTitle:
		return m.OldTitle(ctx)
	case evidence.FieldSnippet:
		return m.OldSnippet(ctx)
	case evidence.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	case evidence.FieldRelevance:
		return m.OldRelevance(ctx)
	case evidence.FieldCredibilityTier:
		return m.OldCredibilityTier(ctx)
	case evidence.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldClaimID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case evidence.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case evidence.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case evidence.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case evidence.FieldSnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippet(v)
		return nil
	case evidence.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	case evidence.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case evidence.FieldCredibilityTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredibilityTier(v)
		return nil
	case evidence.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance != nil {
		fields = append(fields, evidence.FieldRelevance)
	}
	if m.addcredibility_tier != nil {
		fields = append(fields, evidence.FieldCredibilityTier)
	}
	if m.addposition != nil {
		fields = append(fields, evidence.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldRelevance:
		return m.AddedRelevance()
	case evidence.FieldCredibilityTier:
		return m.AddedCredibilityTier()
	case evidence.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	case evidence.FieldCredibilityTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCredibilityTier(v)
		return nil
	case evidence.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidence.FieldTitle) {
		fields = append(fields, evidence.FieldTitle)
	}
	if m.FieldCleared(evidence.FieldSnippet) {
		fields = append(fields, evidence.FieldSnippet)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	switch name {
	case evidence.FieldTitle:
		m.ClearTitle()
		return nil
	case evidence.FieldSnippet:
		m.ClearSnippet()
		return nil
	}
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldClaimID:
		m.ResetClaimID()
		return nil
	case evidence.FieldURL:
		m.ResetURL()
		return nil
	case evidence.FieldDomain:
		m.ResetDomain()
		return nil
	case evidence.FieldTitle:
		m.ResetTitle()
		return nil
	case evidence.FieldSnippet:
		m.ResetSnippet()
		return nil
	case evidence.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	case evidence.FieldRelevance:
		m.ResetRelevance()
		return nil
	case evidence.FieldCredibilityTier:
		m.ResetCredibilityTier()
		return nil
	case evidence.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claim != nil {
		edges = append(edges, evidence.EdgeClaim)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaim {
		edges = append(edges, evidence.EdgeClaim)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case evidence.EdgeClaim:
		return m.clearedclaim
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	switch name {
	case evidence.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	switch name {
	case evidence.EdgeClaim:
		m.ResetClaim()
		return nil
	}
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// MarketMutation represents an operation that mutates the Market nodes in the graph.
type MarketMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	slug                      *string
	question                  *string
	category                  *string
	high_stakes               *bool
	yes_prob                  *float64
	addyes_prob               *float64
	no_prob                   *float64
	addno_prob                *float64
	volume                    *float64
	addvolume                 *float64
	status                    *market.Status
	closes_at                 *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	claim                     *string
	clearedclaim              bool
	trades                    map[string]struct{}
	removedtrades             map[string]struct{}
	clearedtrades             bool
	prediction_factors        map[string]struct{}
	removedprediction_factors map[string]struct{}
	clearedprediction_factors bool
	done                      bool
	oldValue                  func(context.Context) (*Market, error)
	predicates                []predicate.Market
}

var _ ent.Mutation = (*MarketMutation)(nil)

// marketOption allows management of the mutation configuration using functional options.
type marketOption func(*MarketMutation)

// newMarketMutation creates new mutation for the Market entity.
func newMarketMutation(c config, op Op, opts ...marketOption) *MarketMutation {
	m := &MarketMutation{
		config:        c,
		op:            op,
		typ:           TypeMarket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMarketID sets the ID field of the mutation.
func withMarketID(id string) marketOption {
	return func(m *MarketMutation) {
		var (
			err   error
			once  sync.Once
			value *Market
		)
		m.oldValue = func(ctx context.Context) (*Market, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Market.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMarket sets the old Market of the mutation.
func withMarket(node *Market) marketOption {
	return func(m *MarketMutation) {
		m.oldValue = func(context.Context) (*Market, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MarketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MarketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Market entities.
func (m *MarketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MarketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MarketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Market.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *MarketMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *MarketMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *MarketMutation) ResetSlug() {
	m.slug = nil
}

// SetQuestion sets the "question" field.
func (m *MarketMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *MarketMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *MarketMutation) ResetQuestion() {
	m.question = nil
}

// SetCategory sets the "category" field.
func (m *MarketMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *MarketMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *MarketMutation) ResetCategory() {
	m.category = nil
}

// SetHighStakes sets the "high_stakes" field.
func (m *MarketMutation) SetHighStakes(b bool) {
	m.high_stakes = &b
}

// HighStakes returns the value of the "high_stakes" field in the mutation.
func (m *MarketMutation) HighStakes() (r bool, exists bool) {
	v := m.high_stakes
	if v == nil {
		return
	}
	return *v, true
}

// OldHighStakes returns the old "high_stakes" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldHighStakes(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighStakes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighStakes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighStakes: %w", err)
	}
	return oldValue.HighStakes, nil
}

// ResetHighStakes resets all changes to the "high_stakes" field.
func (m *MarketMutation) ResetHighStakes() {
	m.high_stakes = nil
}

// SetYesProb sets the "yes_prob" field.
func (m *MarketMutation) SetYesProb(f float64) {
	m.yes_prob = &f
	m.addyes_prob = nil
}

// YesProb returns the value of the "yes_prob" field in the mutation.
func (m *MarketMutation) YesProb() (r float64, exists bool) {
	v := m.yes_prob
	if v == nil {
		return
	}
	return *v, true
}

// OldYesProb returns the old "yes_prob" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldYesProb(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYesProb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYesProb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYesProb: %w", err)
	}
	return oldValue.YesProb, nil
}

// AddYesProb adds f to the "yes_prob" field.
func (m *MarketMutation) AddYesProb(f float64) {
	if m.addyes_prob != nil {
		*m.addyes_prob += f
	} else {
		m.addyes_prob = &f
	}
}

// AddedYesProb returns the value that was added to the "yes_prob" field in this mutation.
func (m *MarketMutation) AddedYesProb() (r float64, exists bool) {
	v := m.addyes_prob
	if v == nil {
		return
	}
	return *v, true
}

// ResetYesProb resets all changes to the "yes_prob" field.
func (m *MarketMutation) ResetYesProb() {
	m.yes_prob = nil
	m.addyes_prob = nil
}

// SetNoProb sets the "no_prob" field.
func (m *MarketMutation) SetNoProb(f float64) {
	m.no_prob = &f
	m.addno_prob = nil
}

// NoProb returns the value of the "no_prob" field in the mutation.
func (m *MarketMutation) NoProb() (r float64, exists bool) {
	v := m.no_prob
	if v == nil {
		return
	}
	return *v, true
}

// OldNoProb returns the old "no_prob" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldNoProb(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoProb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoProb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoProb: %w", err)
	}
	return oldValue.NoProb, nil
}

// AddNoProb adds f to the "no_prob" field.
func (m *MarketMutation) AddNoProb(f float64) {
	if m.addno_prob != nil {
		*m.addno_prob += f
	} else {
		m.addno_prob = &f
	}
}

// AddedNoProb returns the value that was added to the "no_prob" field in this mutation.
func (m *MarketMutation) AddedNoProb() (r float64, exists bool) {
	v := m.addno_prob
	if v == nil {
		return
	}
	return *v, true
}

// ResetNoProb resets all changes to the "no_prob" field.
func (m *MarketMutation) ResetNoProb() {
	m.no_prob = nil
	m.addno_prob = nil
}

// SetVolume sets the "volume" field.
func (m *MarketMutation) SetVolume(f float64) {
	m.volume = &f
	m.addvolume = nil
}

// Volume returns the value of the "volume" field in the mutation.
func (m *MarketMutation) Volume() (r float64, exists bool) {
	v := m.volume
	if v == nil {
		return
	}
	return *v, true
}

// OldVolume returns the old "volume" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldVolume(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolume: %w", err)
	}
	return oldValue.Volume, nil
}

// AddVolume adds f to the "volume" field.
func (m *MarketMutation) AddVolume(f float64) {
	if m.addvolume != nil {
		*m.addvolume += f
	} else {
		m.addvolume = &f
	}
}

// AddedVolume returns the value that was added to the "volume" field in this mutation.
func (m *MarketMutation) AddedVolume() (r float64, exists bool) {
	v := m.addvolume
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolume resets all changes to the "volume" field.
func (m *MarketMutation) ResetVolume() {
	m.volume = nil
	m.addvolume = nil
}

// SetStatus sets the "status" field.
func (m *MarketMutation) SetStatus(value market.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MarketMutation) Status() (r market.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldStatus(ctx context.Context) (v market.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MarketMutation) ResetStatus() {
	m.status = nil
}

// SetClaimID sets the "claim_id" field.
func (m *MarketMutation) SetClaimID(s string) {
	m.claim = &s
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *MarketMutation) ClaimID() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldClaimID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ClearClaimID clears the value of the "claim_id" field.
func (m *MarketMutation) ClearClaimID() {
	m.claim = nil
	m.clearedFields[market.FieldClaimID] = struct{}{}
}

// ClaimIDCleared returns if the "claim_id" field was cleared in this mutation.
func (m *MarketMutation) ClaimIDCleared() bool {
	_, ok := m.clearedFields[market.FieldClaimID]
	return ok
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *MarketMutation) ResetClaimID() {
	m.claim = nil
	delete(m.clearedFields, market.FieldClaimID)
}

// SetClosesAt sets the "closes_at" field.
func (m *MarketMutation) SetClosesAt(t time.Time) {
	m.closes_at = &t
}

// ClosesAt returns the value of the "closes_at" field in the mutation.
func (m *MarketMutation) ClosesAt() (r time.Time, exists bool) {
	v := m.closes_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosesAt returns the old "closes_at" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldClosesAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosesAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosesAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosesAt: %w", err)
	}
	return oldValue.ClosesAt, nil
}

// ClearClosesAt clears the value of the "closes_at" field.
func (m *MarketMutation) ClearClosesAt() {
	m.closes_at = nil
	m.clearedFields[market.FieldClosesAt] = struct{}{}
}

// ClosesAtCleared returns if the "closes_at" field was cleared in this mutation.
func (m *MarketMutation) ClosesAtCleared() bool {
	_, ok := m.clearedFields[market.FieldClosesAt]
	return ok
}

// ResetClosesAt resets all changes to the "closes_at" field.
func (m *MarketMutation) ResetClosesAt() {
	m.closes_at = nil
	delete(m.clearedFields, market.FieldClosesAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MarketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MarketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Market entity.
// If the Market object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MarketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *MarketMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[market.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *MarketMutation) ClaimCleared() bool {
	return m.ClaimIDCleared() || m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *MarketMutation) ClaimIDs() (ids []string) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *MarketMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// AddTradeIDs adds the "trades" edge to the Trade entity by ids.
func (m *MarketMutation) AddTradeIDs(ids ...string) {
	if m.trades == nil {
		m.trades = make(map[string]struct{})
	}
	for i := range ids {
		m.trades[ids[i]] = struct{}{}
	}
}

// ClearTrades clears the "trades" edge to the Trade entity.
func (m *MarketMutation) ClearTrades() {
	m.clearedtrades = true
}

// TradesCleared reports if the "trades" edge to the Trade entity was cleared.
func (m *MarketMutation) TradesCleared() bool {
	return m.clearedtrades
}

// RemoveTradeIDs removes the "trades" edge to the Trade entity by IDs.
func (m *MarketMutation) RemoveTradeIDs(ids ...string) {
	if m.removedtrades == nil {
		m.removedtrades = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.trades, ids[i])
		m.removedtrades[ids[i]] = struct{}{}
	}
}

// RemovedTrades returns the removed IDs of the "trades" edge to the Trade entity.
func (m *MarketMutation) RemovedTradesIDs() (ids []string) {
	for id := range m.removedtrades {
		ids = append(ids, id)
	}
	return
}

// TradesIDs returns the "trades" edge IDs in the mutation.
func (m *MarketMutation) TradesIDs() (ids []string) {
	for id := range m.trades {
		ids = append(ids, id)
	}
	return
}

// ResetTrades resets all changes to the "trades" edge.
func (m *MarketMutation) ResetTrades() {
	m.trades = nil
	m.clearedtrades = false
	m.removedtrades = nil
}

// AddPredictionFactorIDs adds the "prediction_factors" edge to the PredictionFactor entity by ids.
func (m *MarketMutation) AddPredictionFactorIDs(ids ...string) {
	if m.prediction_factors == nil {
		m.prediction_factors = make(map[string]struct{})
	}
	for i := range ids {
		m.prediction_factors[ids[i]] = struct{}{}
	}
}

// ClearPredictionFactors clears the "prediction_factors" edge to the PredictionFactor entity.
func (m *MarketMutation) ClearPredictionFactors() {
	m.clearedprediction_factors = true
}

// PredictionFactorsCleared reports if the "prediction_factors" edge to the PredictionFactor entity was cleared.
func (m *MarketMutation) PredictionFactorsCleared() bool {
	return m.clearedprediction_factors
}

// RemovePredictionFactorIDs removes the "prediction_factors" edge to the PredictionFactor entity by IDs.
func (m *MarketMutation) RemovePredictionFactorIDs(ids ...string) {
	if m.removedprediction_factors == nil {
		m.removedprediction_factors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.prediction_factors, ids[i])
		m.removedprediction_factors[ids[i]] = struct{}{}
	}
}

// RemovedPredictionFactors returns the removed IDs of the "prediction_factors" edge to the PredictionFactor entity.
func (m *MarketMutation) RemovedPredictionFactorsIDs() (ids []string) {
	for id := range m.removedprediction_factors {
		ids = append(ids, id)
	}
	return
}

// PredictionFactorsIDs returns the "prediction_factors" edge IDs in the mutation.
func (m *MarketMutation) PredictionFactorsIDs() (ids []string) {
	for id := range m.prediction_factors {
		ids = append(ids, id)
	}
	return
}

// ResetPredictionFactors resets all changes to the "prediction_factors" edge.
func (m *MarketMutation) ResetPredictionFactors() {
	m.prediction_factors = nil
	m.clearedprediction_factors = false
	m.removedprediction_factors = nil
}

// Where appends a list predicates to the MarketMutation builder.
func (m *MarketMutation) Where(ps ...predicate.Market) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MarketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MarketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Market, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MarketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MarketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Market).
func (m *MarketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MarketMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.slug != nil {
		fields = append(fields, market.FieldSlug)
	}
	if m.question != nil {
		fields = append(fields, market.FieldQuestion)
	}
	if m.category != nil {
		fields = append(fields, market.FieldCategory)
	}
	if m.high_stakes != nil {
		fields = append(fields, market.FieldHighStakes)
	}
	if m.yes_prob != nil {
		fields = append(fields, market.FieldYesProb)
	}
	if m.no_prob != nil {
		fields = append(fields, market.FieldNoProb)
	}
	if m.volume != nil {
		fields = append(fields, market.FieldVolume)
	}
	if m.status != nil {
		fields = append(fields, market.FieldStatus)
	}
	if m.claim != nil {
		fields = append(fields, market.FieldClaimID)
	}
	if m.closes_at != nil {
		fields = append(fields, market.FieldClosesAt)
	}
	if m.created_at != nil {
		fields = append(fields, market.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MarketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case market.FieldSlug:
		return m.Slug()
	case market.FieldQuestion:
		return m.Question()
	case market.FieldCategory:
		return m.Category()
	case market.FieldHighStakes:
		return m.HighStakes()
	case market.FieldYesProb:
		return m.YesProb()
	case market.FieldNoProb:
		return m.NoProb()
	case market.FieldVolume:
		return m.Volume()
	case market.FieldStatus:
		return m.Status()
	case market.FieldClaimID:
		return m.ClaimID()
	case market.FieldClosesAt:
		return m.ClosesAt()
	case market.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MarketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case market.FieldSlug:
		return m.OldSlug(ctx)
	case market.FieldQuestion:
		return m.OldQuestion(ctx)
	case market.FieldCategory:
		return m.OldCategory(ctx)
	case market.FieldHighStakes:
		return m.OldHighStakes(ctx)
	case market.FieldYesProb:
		return m.OldYesProb(ctx)
	case market.FieldNoProb:
		return m.OldNoProb(ctx)
	case market.FieldVolume:
		return m.OldVolume(ctx)
	case market.FieldStatus:
		return m.OldStatus(ctx)
	case market.FieldClaimID:
		return m.OldClaimID(ctx)
	case market.FieldClosesAt:
		return m.OldClosesAt(ctx)
	case market.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Market field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case market.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case market.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case market.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case market.FieldHighStakes:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighStakes(v)
		return nil
	case market.FieldYesProb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYesProb(v)
		return nil
	case market.FieldNoProb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoProb(v)
		return nil
	case market.FieldVolume:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolume(v)
		return nil
	case market.FieldStatus:
		v, ok := value.(market.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case market.FieldClaimID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case market.FieldClosesAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosesAt(v)
		return nil
	case market.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Market field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MarketMutation) AddedFields() []string {
	var fields []string
	if m.addyes_prob != nil {
		fields = append(fields, market.FieldYesProb)
	}
	if m.addno_prob != nil {
		fields = append(fields, market.FieldNoProb)
	}
	if m.addvolume != nil {
		fields = append(fields, market.FieldVolume)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MarketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case market.FieldYesProb:
		return m.AddedYesProb()
	case market.FieldNoProb:
		return m.AddedNoProb()
	case market.FieldVolume:
		return m.AddedVolume()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case market.FieldYesProb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYesProb(v)
		return nil
	case market.FieldNoProb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoProb(v)
		return nil
	case market.FieldVolume:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolume(v)
		return nil
	}
	return fmt.Errorf("unknown Market numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MarketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(market.FieldClaimID) {
		fields = append(fields, market.FieldClaimID)
	}
	if m.FieldCleared(market.FieldClosesAt) {
		fields = append(fields, market.FieldClosesAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MarketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MarketMutation) ClearField(name string) error {
	switch name {
	case market.FieldClaimID:
		m.ClearClaimID()
		return nil
	case market.FieldClosesAt:
		m.ClearClosesAt()
		return nil
	}
	return fmt.Errorf("unknown Market nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MarketMutation) ResetField(name string) error {
	switch name {
	case market.FieldSlug:
		m.ResetSlug()
		return nil
	case market.FieldQuestion:
		m.ResetQuestion()
		return nil
	case market.FieldCategory:
		m.ResetCategory()
		return nil
	case market.FieldHighStakes:
		m.ResetHighStakes()
		return nil
	case market.FieldYesProb:
		m.ResetYesProb()
		return nil
	case market.FieldNoProb:
		m.ResetNoProb()
		return nil
	case market.FieldVolume:
		m.ResetVolume()
		return nil
	case market.FieldStatus:
		m.ResetStatus()
		return nil
	case market.FieldClaimID:
		m.ResetClaimID()
		return nil
	case market.FieldClosesAt:
		m.ResetClosesAt()
		return nil
	case market.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Market field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MarketMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.claim != nil {
		edges = append(edges, market.EdgeClaim)
	}
	if m.trades != nil {
		edges = append(edges, market.EdgeTrades)
	}
	if m.prediction_factors != nil {
		edges = append(edges, market.EdgePredictionFactors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MarketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case market.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	case market.EdgeTrades:
		ids := make([]ent.Value, 0, len(m.trades))
		for id := range m.trades {
			ids = append(ids, id)
		}
		return ids
	case market.EdgePredictionFactors:
		ids := make([]ent.Value, 0, len(m.prediction_factors))
		for id := range m.prediction_factors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MarketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtrades != nil {
		edges = append(edges, market.EdgeTrades)
	}
	if m.removedprediction_factors != nil {
		edges = append(edges, market.EdgePredictionFactors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MarketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case market.EdgeTrades:
		ids := make([]ent.Value, 0, len(m.removedtrades))
		for id := range m.removedtrades {
			ids = append(ids, id)
		}
		return ids
	case market.EdgePredictionFactors:
		ids := make([]ent.Value, 0, len(m.removedprediction_factors))
		for id := range m.removedprediction_factors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MarketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclaim {
		edges = append(edges, market.EdgeClaim)
	}
	if m.clearedtrades {
		edges = append(edges, market.EdgeTrades)
	}
	if m.clearedprediction_factors {
		edges = append(edges, market.EdgePredictionFactors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MarketMutation) EdgeCleared(name string) bool {
	switch name {
	case market.EdgeClaim:
		return m.clearedclaim
	case market.EdgeTrades:
		return m.clearedtrades
	case market.EdgePredictionFactors:
		return m.clearedprediction_factors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MarketMutation) ClearEdge(name string) error {
	switch name {
	case market.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown Market unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MarketMutation) ResetEdge(name string) error {
	switch name {
	case market.EdgeClaim:
		m.ResetClaim()
		return nil
	case market.EdgeTrades:
		m.ResetTrades()
		return nil
	case market.EdgePredictionFactors:
		m.ResetPredictionFactors()
		return nil
	}
	return fmt.Errorf("unknown Market edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *notification.Kind
	subject       *string
	body          *string
	acknowledged  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *NotificationMutation) SetKind(n notification.Kind) {
	m.kind = &n
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationMutation) Kind() (r notification.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldKind(ctx context.Context) (v notification.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationMutation) ResetKind() {
	m.kind = nil
}

// SetSubject sets the "subject" field.
func (m *NotificationMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *NotificationMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *NotificationMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetAcknowledged sets the "acknowledged" field.
func (m *NotificationMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *NotificationMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *NotificationMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.kind != nil {
		fields = append(fields, notification.FieldKind)
	}
	if m.subject != nil {
		fields = append(fields, notification.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.acknowledged != nil {
		fields = append(fields, notification.FieldAcknowledged)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldKind:
		return m.Kind()
	case notification.FieldSubject:
		return m.Subject()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldAcknowledged:
		return m.Acknowledged()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldKind:
		return m.OldKind(ctx)
	case notification.FieldSubject:
		return m.OldSubject(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldKind:
		v, ok := value.(notification.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notification.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldKind:
		m.ResetKind()
		return nil
	case notification.FieldSubject:
		m.ResetSubject()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PredictionFactorMutation represents an operation that mutates the PredictionFactor nodes in the graph.
type PredictionFactorMutation struct {
	config
	op               Op
	typ              string
	id               *string
	assessed_prob    *float64
	addassessed_prob *float64
	confidence       *float64
	addconfidence    *float64
	reasoning        *string
	data_sources     *map[string]interface{}
	agent_version    *string
	computed_at      *time.Time
	clearedFields    map[string]struct{}
	market           *string
	clearedmarket    bool
	done             bool
	oldValue         func(context.Context) (*PredictionFactor, error)
	predicates       []predicate.PredictionFactor
}

var _ ent.Mutation = (*PredictionFactorMutation)(nil)

// predictionfactorOption allows management of the mutation configuration using functional options.
type predictionfactorOption func(*PredictionFactorMutation)

// newPredictionFactorMutation creates new mutation for the PredictionFactor entity.
func newPredictionFactorMutation(c config, op Op, opts ...predictionfactorOption) *PredictionFactorMutation {
	m := &PredictionFactorMutation{
		config:        c,
		op:            op,
		typ:           TypePredictionFactor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPredictionFactorID sets the ID field of the mutation.
func withPredictionFactorID(id string) predictionfactorOption {
	return func(m *PredictionFactorMutation) {
		var (
			err   error
			once  sync.Once
			value *PredictionFactor
		)
		m.oldValue = func(ctx context.Context) (*PredictionFactor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PredictionFactor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPredictionFactor sets the old PredictionFactor of the mutation.
func withPredictionFactor(node *PredictionFactor) predictionfactorOption {
	return func(m *PredictionFactorMutation) {
		m.oldValue = func(context.Context) (*PredictionFactor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PredictionFactorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PredictionFactorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PredictionFactor entities.
func (m *PredictionFactorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PredictionFactorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PredictionFactorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PredictionFactor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMarketID sets the "market_id" field.
func (m *PredictionFactorMutation) SetMarketID(s string) {
	m.market = &s
}

// MarketID returns the value of the "market_id" field in the mutation.
func (m *PredictionFactorMutation) MarketID() (r string, exists bool) {
	v := m.market
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketID returns the old "market_id" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldMarketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketID: %w", err)
	}
	return oldValue.MarketID, nil
}

// ResetMarketID resets all changes to the "market_id" field.
func (m *PredictionFactorMutation) ResetMarketID() {
	m.market = nil
}

// SetAssessedProb sets the "assessed_prob" field.
func (m *PredictionFactorMutation) SetAssessedProb(f float64) {
	m.assessed_prob = &f
	m.addassessed_prob = nil
}

// AssessedProb returns the value of the "assessed_prob" field in the mutation.
func (m *PredictionFactorMutation) AssessedProb() (r float64, exists bool) {
	v := m.assessed_prob
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessedProb returns the old "assessed_prob" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldAssessedProb(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessedProb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessedProb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessedProb: %w", err)
	}
	return oldValue.AssessedProb, nil
}

// AddAssessedProb adds f to the "assessed_prob" field.
func (m *PredictionFactorMutation) AddAssessedProb(f float64) {
	if m.addassessed_prob != nil {
		*m.addassessed_prob += f
	} else {
		m.addassessed_prob = &f
	}
}

// AddedAssessedProb returns the value that was added to the "assessed_prob" field in this mutation.
func (m *PredictionFactorMutation) AddedAssessedProb() (r float64, exists bool) {
	v := m.addassessed_prob
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssessedProb resets all changes to the "assessed_prob" field.
func (m *PredictionFactorMutation) ResetAssessedProb() {
	m.assessed_prob = nil
	m.addassessed_prob = nil
}

// SetConfidence sets the "confidence" field.
func (m *PredictionFactorMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PredictionFactorMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PredictionFactorMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PredictionFactorMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PredictionFactorMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReasoning sets the "reasoning" field.
func (m *PredictionFactorMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *PredictionFactorMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *PredictionFactorMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetDataSources sets the "data_sources" field.
func (m *PredictionFactorMutation) SetDataSources(value map[string]interface{}) {
	m.data_sources = &value
}

// DataSources returns the value of the "data_sources" field in the mutation.
func (m *PredictionFactorMutation) DataSources() (r map[string]interface{}, exists bool) {
	v := m.data_sources
	if v == nil {
		return
	}
	return *v, true
}

// OldDataSources returns the old "data_sources" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldDataSources(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataSources: %w", err)
	}
	return oldValue.DataSources, nil
}

// ClearDataSources clears the value of the "data_sources" field.
func (m *PredictionFactorMutation) ClearDataSources() {
	m.data_sources = nil
	m.clearedFields[predictionfactor.FieldDataSources] = struct{}{}
}

// DataSourcesCleared returns if the "data_sources" field was cleared in this mutation.
func (m *PredictionFactorMutation) DataSourcesCleared() bool {
	_, ok := m.clearedFields[predictionfactor.FieldDataSources]
	return ok
}

// ResetDataSources resets all changes to the "data_sources" field.
func (m *PredictionFactorMutation) ResetDataSources() {
	m.data_sources = nil
	delete(m.clearedFields, predictionfactor.FieldDataSources)
}

// SetAgentVersion sets the "agent_version" field.
func (m *PredictionFactorMutation) SetAgentVersion(s string) {
	m.agent_version = &s
}

// AgentVersion returns the value of the "agent_version" field in the mutation.
func (m *PredictionFactorMutation) AgentVersion() (r string, exists bool) {
	v := m.agent_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentVersion returns the old "agent_version" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldAgentVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentVersion: %w", err)
	}
	return oldValue.AgentVersion, nil
}

// ResetAgentVersion resets all changes to the "agent_version" field.
func (m *PredictionFactorMutation) ResetAgentVersion() {
	m.agent_version = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *PredictionFactorMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *PredictionFactorMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the PredictionFactor entity.
// If the PredictionFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionFactorMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *PredictionFactorMutation) ResetComputedAt() {
	m.computed_at = nil
}

// ClearMarket clears the "market" edge to the Market entity.
func (m *PredictionFactorMutation) ClearMarket() {
	m.clearedmarket = true
	m.clearedFields[predictionfactor.FieldMarketID] = struct{}{}
}

// MarketCleared reports if the "market" edge to the Market entity was cleared.
func (m *PredictionFactorMutation) MarketCleared() bool {
	return m.clearedmarket
}

// MarketIDs returns the "market" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MarketID instead. It exists only for internal usage by the builders.
func (m *PredictionFactorMutation) MarketIDs() (ids []string) {
	if id := m.market; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMarket resets all changes to the "market" edge.
func (m *PredictionFactorMutation) ResetMarket() {
	m.market = nil
	m.clearedmarket = false
}

// Where appends a list predicates to the PredictionFactorMutation builder.
func (m *PredictionFactorMutation) Where(ps ...predicate.PredictionFactor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PredictionFactorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PredictionFactorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PredictionFactor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PredictionFactorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PredictionFactorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PredictionFactor).
func (m *PredictionFactorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PredictionFactorMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.market != nil {
		fields = append(fields, predictionfactor.FieldMarketID)
	}
	if m.assessed_prob != nil {
		fields = append(fields, predictionfactor.FieldAssessedProb)
	}
	if m.confidence != nil {
		fields = append(fields, predictionfactor.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, predictionfactor.FieldReasoning)
	}
	if m.data_sources != nil {
		fields = append(fields, predictionfactor.FieldDataSources)
	}
	if m.agent_version != nil {
		fields = append(fields, predictionfactor.FieldAgentVersion)
	}
	if m.computed_at != nil {
		fields = append(fields, predictionfactor.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PredictionFactorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case predictionfactor.FieldMarketID:
		return m.MarketID()
	case predictionfactor.FieldAssessedProb:
		return m.AssessedProb()
	case predictionfactor.FieldConfidence:
		return m.Confidence()
	case predictionfactor.FieldReasoning:
		return m.Reasoning()
	case predictionfactor.FieldDataSources:
		return m.DataSources()
	case predictionfactor.FieldAgentVersion:
		return m.AgentVersion()
	case predictionfactor.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PredictionFactorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case predictionfactor.FieldMarketID:
		return m.OldMarketID(ctx)
	case predictionfactor.FieldAssessedProb:
		return m.OldAssessedProb(ctx)
	case predictionfactor.FieldConfidence:
		return m.OldConfidence(ctx)
	case predictionfactor.FieldReasoning:
		return m.OldReasoning(ctx)
	case predictionfactor.FieldDataSources:
		return m.OldDataSources(ctx)
	case predictionfactor.FieldAgentVersion:
		return m.OldAgentVersion(ctx)
	case predictionfactor.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PredictionFactor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictionFactorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case predictionfactor.FieldMarketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketID(v)
		return nil
	case predictionfactor.FieldAssessedProb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessedProb(v)
		return nil
	case predictionfactor.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case predictionfactor.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case predictionfactor.FieldDataSources:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataSources(v)
		return nil
	case predictionfactor.FieldAgentVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentVersion(v)
		return nil
	case predictionfactor.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PredictionFactor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PredictionFactorMutation) AddedFields() []string {
	var fields []string
	if m.addassessed_prob != nil {
		fields = append(fields, predictionfactor.FieldAssessedProb)
	}
	if m.addconfidence != nil {
		fields = append(fields, predictionfactor.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PredictionFactorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case predictionfactor.FieldAssessedProb:
		return m.AddedAssessedProb()
	case predictionfactor.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictionFactorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case predictionfactor.FieldAssessedProb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssessedProb(v)
		return nil
	case predictionfactor.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PredictionFactor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PredictionFactorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(predictionfactor.FieldDataSources) {
		fields = append(fields, predictionfactor.FieldDataSources)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PredictionFactorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PredictionFactorMutation) ClearField(name string) error {
	switch name {
	case predictionfactor.FieldDataSources:
		m.ClearDataSources()
		return nil
	}
	return fmt.Errorf("unknown PredictionFactor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PredictionFactorMutation) ResetField(name string) error {
	switch name {
	case predictionfactor.FieldMarketID:
		m.ResetMarketID()
		return nil
	case predictionfactor.FieldAssessedProb:
		m.ResetAssessedProb()
		return nil
	case predictionfactor.FieldConfidence:
		m.ResetConfidence()
		return nil
	case predictionfactor.FieldReasoning:
		m.ResetReasoning()
		return nil
	case predictionfactor.FieldDataSources:
		m.ResetDataSources()
		return nil
	case predictionfactor.FieldAgentVersion:
		m.ResetAgentVersion()
		return nil
	case predictionfactor.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown PredictionFactor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PredictionFactorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.market != nil {
		edges = append(edges, predictionfactor.EdgeMarket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PredictionFactorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case predictionfactor.EdgeMarket:
		if id := m.market; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PredictionFactorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PredictionFactorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PredictionFactorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmarket {
		edges = append(edges, predictionfactor.EdgeMarket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PredictionFactorMutation) EdgeCleared(name string) bool {
	switch name {
	case predictionfactor.EdgeMarket:
		return m.clearedmarket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PredictionFactorMutation) ClearEdge(name string) error {
	switch name {
	case predictionfactor.EdgeMarket:
		m.ClearMarket()
		return nil
	}
	return fmt.Errorf("unknown PredictionFactor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PredictionFactorMutation) ResetEdge(name string) error {
	switch name {
	case predictionfactor.EdgeMarket:
		m.ResetMarket()
		return nil
	}
	return fmt.Errorf("unknown PredictionFactor edge %s", name)
}

// SchedulerLeaseMutation represents an operation that mutates the SchedulerLease nodes in the graph.
type SchedulerLeaseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	holder        *string
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SchedulerLease, error)
	predicates    []predicate.SchedulerLease
}

var _ ent.Mutation = (*SchedulerLeaseMutation)(nil)

// schedulerleaseOption allows management of the mutation configuration using functional options.
type schedulerleaseOption func(*SchedulerLeaseMutation)

// newSchedulerLeaseMutation creates new mutation for the SchedulerLease entity.
func newSchedulerLeaseMutation(c config, op Op, opts ...schedulerleaseOption) *SchedulerLeaseMutation {
	m := &SchedulerLeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedulerLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchedulerLeaseID sets the ID field of the mutation.
func withSchedulerLeaseID(id string) schedulerleaseOption {
	return func(m *SchedulerLeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *SchedulerLease
		)
		m.oldValue = func(ctx context.Context) (*SchedulerLease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchedulerLease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedulerLease sets the old SchedulerLease of the mutation.
func withSchedulerLease(node *SchedulerLease) schedulerleaseOption {
	return func(m *SchedulerLeaseMutation) {
		m.oldValue = func(context.Context) (*SchedulerLease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchedulerLeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchedulerLeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchedulerLease entities.
func (m *SchedulerLeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchedulerLeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchedulerLeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchedulerLease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHolder sets the "holder" field.
func (m *SchedulerLeaseMutation) SetHolder(s string) {
	m.holder = &s
}

// Holder returns the value of the "holder" field in the mutation.
func (m *SchedulerLeaseMutation) Holder() (r string, exists bool) {
	v := m.holder
	if v == nil {
		return
	}
	return *v, true
}

// OldHolder returns the old "holder" field's value of the SchedulerLease entity.
// If the SchedulerLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLeaseMutation) OldHolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolder: %w", err)
	}
	return oldValue.Holder, nil
}

// ResetHolder resets all changes to the "holder" field.
func (m *SchedulerLeaseMutation) ResetHolder() {
	m.holder = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SchedulerLeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SchedulerLeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SchedulerLease entity.
// If the SchedulerLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SchedulerLeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the SchedulerLeaseMutation builder.
func (m *SchedulerLeaseMutation) Where(ps ...predicate.SchedulerLease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchedulerLeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchedulerLeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchedulerLease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchedulerLeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchedulerLeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchedulerLease).
func (m *SchedulerLeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchedulerLeaseMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.holder != nil {
		fields = append(fields, schedulerlease.FieldHolder)
	}
	if m.expires_at != nil {
		fields = append(fields, schedulerlease.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchedulerLeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulerlease.FieldHolder:
		return m.Holder()
	case schedulerlease.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchedulerLeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulerlease.FieldHolder:
		return m.OldHolder(ctx)
	case schedulerlease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchedulerLease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulerLeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulerlease.FieldHolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolder(v)
		return nil
	case schedulerlease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchedulerLease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchedulerLeaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchedulerLeaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulerLeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SchedulerLease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchedulerLeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchedulerLeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchedulerLeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SchedulerLease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchedulerLeaseMutation) ResetField(name string) error {
	switch name {
	case schedulerlease.FieldHolder:
		m.ResetHolder()
		return nil
	case schedulerlease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown SchedulerLease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchedulerLeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchedulerLeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchedulerLeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchedulerLeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchedulerLeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchedulerLeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchedulerLeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SchedulerLease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchedulerLeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SchedulerLease edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op               Op
	typ              string
	id               *string
	platform         *source.Platform
	external_id      *string
	author           *string
	url              *string
	content          *string
	captured_at      *time.Time
	published_at     *time.Time
	likes            *int64
	addlikes         *int64
	shares           *int64
	addshares        *int64
	comments         *int64
	addcomments      *int64
	views            *int64
	addviews         *int64
	state            *source.State
	skip_reason      *string
	failure_count    *int
	addfailure_count *int
	last_error       *string
	clearedFields    map[string]struct{}
	claim            *string
	clearedclaim     bool
	done             bool
	oldValue         func(context.Context) (*Source, error)
	predicates       []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id string) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Source entities.
func (m *SourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *SourceMutation) SetPlatform(s source.Platform) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *SourceMutation) Platform() (r source.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldPlatform(ctx context.Context) (v source.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *SourceMutation) ResetPlatform() {
	m.platform = nil
}

// SetExternalID sets the "external_id" field.
func (m *SourceMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *SourceMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *SourceMutation) ResetExternalID() {
	m.external_id = nil
}

// SetAuthor sets the "author" field.
func (m *SourceMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *SourceMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *SourceMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[source.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *SourceMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[source.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *SourceMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, source.FieldAuthor)
}

// SetURL sets the "url" field.
func (m *SourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *SourceMutation) ClearURL() {
	m.url = nil
	m.clearedFields[source.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *SourceMutation) URLCleared() bool {
	_, ok := m.clearedFields[source.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *SourceMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, source.FieldURL)
}

// SetContent sets the "content" field.
func (m *SourceMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SourceMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SourceMutation) ResetContent() {
	m.content = nil
}

// SetCapturedAt sets the "captured_at" field.
func (m *SourceMutation) SetCapturedAt(t time.Time) {
	m.captured_at = &t
}

// CapturedAt returns the value of the "captured_at" field in the mutation.
func (m *SourceMutation) CapturedAt() (r time.Time, exists bool) {
	v := m.captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCapturedAt returns the old "captured_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCapturedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapturedAt: %w", err)
	}
	return oldValue.CapturedAt, nil
}

// ResetCapturedAt resets all changes to the "captured_at" field.
func (m *SourceMutation) ResetCapturedAt() {
	m.captured_at = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *SourceMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *SourceMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *SourceMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[source.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *SourceMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[source.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *SourceMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, source.FieldPublishedAt)
}

// SetLikes sets the "likes" field.
func (m *SourceMutation) SetLikes(i int64) {
	m.likes = &i
	m.addlikes = nil
}

// Likes returns the value of the "likes" field in the mutation.
func (m *SourceMutation) Likes() (r int64, exists bool) {
	v := m.likes
	if v == nil {
		return
	}
	return *v, true
}

// OldLikes returns the old "likes" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLikes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikes: %w", err)
	}
	return oldValue.Likes, nil
}

// AddLikes adds i to the "likes" field.
func (m *SourceMutation) AddLikes(i int64) {
	if m.addlikes != nil {
		*m.addlikes += i
	} else {
		m.addlikes = &i
	}
}

// AddedLikes returns the value that was added to the "likes" field in this mutation.
func (m *SourceMutation) AddedLikes() (r int64, exists bool) {
	v := m.addlikes
	if v == nil {
		return
	}
	return *v, true
}

// ClearLikes clears the value of the "likes" field.
func (m *SourceMutation) ClearLikes() {
	m.likes = nil
	m.addlikes = nil
	m.clearedFields[source.FieldLikes] = struct{}{}
}

// LikesCleared returns if the "likes" field was cleared in this mutation.
func (m *SourceMutation) LikesCleared() bool {
	_, ok := m.clearedFields[source.FieldLikes]
	return ok
}

// ResetLikes resets all changes to the "likes" field.
func (m *SourceMutation) ResetLikes() {
	m.likes = nil
	m.addlikes = nil
	delete(m.clearedFields, source.FieldLikes)
}

// SetShares sets the "shares" field.
func (m *SourceMutation) SetShares(i int64) {
	m.shares = &i
	m.addshares = nil
}

// Shares returns the value of the "shares" field in the mutation.
func (m *SourceMutation) Shares() (r int64, exists bool) {
	v := m.shares
	if v == nil {
		return
	}
	return *v, true
}

// OldShares returns the old "shares" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldShares(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShares is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShares requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShares: %w", err)
	}
	return oldValue.Shares, nil
}

// AddShares adds i to the "shares" field.
func (m *SourceMutation) AddShares(i int64) {
	if m.addshares != nil {
		*m.addshares += i
	} else {
		m.addshares = &i
	}
}

// AddedShares returns the value that was added to the "shares" field in this mutation.
func (m *SourceMutation) AddedShares() (r int64, exists bool) {
	v := m.addshares
	if v == nil {
		return
	}
	return *v, true
}

// ClearShares clears the value of the "shares" field.
func (m *SourceMutation) ClearShares() {
	m.shares = nil
	m.addshares = nil
	m.clearedFields[source.FieldShares] = struct{}{}
}

// SharesCleared returns if the "shares" field was cleared in this mutation.
func (m *SourceMutation) SharesCleared() bool {
	_, ok := m.clearedFields[source.FieldShares]
	return ok
}

// ResetShares resets all changes to the "shares" field.
func (m *SourceMutation) ResetShares() {
	m.shares = nil
	m.addshares = nil
	delete(m.clearedFields, source.FieldShares)
}

// SetComments sets the "comments" field.
func (m *SourceMutation) SetComments(i int64) {
	m.comments = &i
	m.addcomments = nil
}

// Comments returns the value of the "comments" field in the mutation.
func (m *SourceMutation) Comments() (r int64, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldComments(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// AddComments adds i to the "comments" field.
func (m *SourceMutation) AddComments(i int64) {
	if m.addcomments != nil {
		*m.addcomments += i
	} else {
		m.addcomments = &i
	}
}

// AddedComments returns the value that was added to the "comments" field in this mutation.
func (m *SourceMutation) AddedComments() (r int64, exists bool) {
	v := m.addcomments
	if v == nil {
		return
	}
	return *v, true
}

// ClearComments clears the value of the "comments" field.
func (m *SourceMutation) ClearComments() {
	m.comments = nil
	m.addcomments = nil
	m.clearedFields[source.FieldComments] = struct{}{}
}

// CommentsCleared returns if the "comments" field was cleared in this mutation.
func (m *SourceMutation) CommentsCleared() bool {
	_, ok := m.clearedFields[source.FieldComments]
	return ok
}

// ResetComments resets all changes to the "comments" field.
func (m *SourceMutation) ResetComments() {
	m.comments = nil
	m.addcomments = nil
	delete(m.clearedFields, source.FieldComments)
}

// SetViews sets the "views" field.
func (m *SourceMutation) SetViews(i int64) {
	m.views = &i
	m.addviews = nil
}

// Views returns the value of the "views" field in the mutation.
func (m *SourceMutation) Views() (r int64, exists bool) {
	v := m.views
	if v == nil {
		return
	}
	return *v, true
}

// OldViews returns the old "views" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldViews(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViews: %w", err)
	}
	return oldValue.Views, nil
}

// AddViews adds i to the "views" field.
func (m *SourceMutation) AddViews(i int64) {
	if m.addviews != nil {
		*m.addviews += i
	} else {
		m.addviews = &i
	}
}

// AddedViews returns the value that was added to the "views" field in this mutation.
func (m *SourceMutation) AddedViews() (r int64, exists bool) {
	v := m.addviews
	if v == nil {
		return
	}
	return *v, true
}

// ClearViews clears the value of the "views" field.
func (m *SourceMutation) ClearViews() {
	m.views = nil
	m.addviews = nil
	m.clearedFields[source.FieldViews] = struct{}{}
}

// ViewsCleared returns if the "views" field was cleared in this mutation.
func (m *SourceMutation) ViewsCleared() bool {
	_, ok := m.clearedFields[source.FieldViews]
	return ok
}

// ResetViews resets all changes to the "views" field.
func (m *SourceMutation) ResetViews() {
	m.views = nil
	m.addviews = nil
	delete(m.clearedFields, source.FieldViews)
}

// SetState sets the "state" field.
func (m *SourceMutation) SetState(s source.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SourceMutation) State() (r source.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldState(ctx context.Context) (v source.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SourceMutation) ResetState() {
	m.state = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *SourceMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *SourceMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *SourceMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[source.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *SourceMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[source.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *SourceMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, source.FieldSkipReason)
}

// SetFailureCount sets the "failure_count" field.
func (m *SourceMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *SourceMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *SourceMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *SourceMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *SourceMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetLastError sets the "last_error" field.
func (m *SourceMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *SourceMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *SourceMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[source.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *SourceMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[source.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *SourceMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, source.FieldLastError)
}

// SetClaimID sets the "claim_id" field.
func (m *SourceMutation) SetClaimID(s string) {
	m.claim = &s
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *SourceMutation) ClaimID() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldClaimID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ClearClaimID clears the value of the "claim_id" field.
func (m *SourceMutation) ClearClaimID() {
	m.claim = nil
	m.clearedFields[source.FieldClaimID] = struct{}{}
}

// ClaimIDCleared returns if the "claim_id" field was cleared in this mutation.
func (m *SourceMutation) ClaimIDCleared() bool {
	_, ok := m.clearedFields[source.FieldClaimID]
	return ok
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *SourceMutation) ResetClaimID() {
	m.claim = nil
	delete(m.clearedFields, source.FieldClaimID)
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *SourceMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[source.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *SourceMutation) ClaimCleared() bool {
	return m.ClaimIDCleared() || m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *SourceMutation) ClaimIDs() (ids []string) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *SourceMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.platform != nil {
		fields = append(fields, source.FieldPlatform)
	}
	if m.external_id != nil {
		fields = append(fields, source.FieldExternalID)
	}
	if m.author != nil {
		fields = append(fields, source.FieldAuthor)
	}
	if m.url != nil {
		fields = append(fields, source.FieldURL)
	}
	if m.content != nil {
		fields = append(fields, source.FieldContent)
	}
	if m.captured_at != nil {
		fields = append(fields, source.FieldCapturedAt)
	}
	if m.published_at != nil {
		fields = append(fields, source.FieldPublishedAt)
	}
	if m.likes != nil {
		fields = append(fields, source.FieldLikes)
	}
	if m.shares != nil {
		fields = append(fields, source.FieldShares)
	}
	if m.comments != nil {
		fields = append(fields, source.FieldComments)
	}
	if m.views != nil {
		fields = append(fields, source.FieldViews)
	}
	if m.state != nil {
		fields = append(fields, source.FieldState)
	}
	if m.skip_reason != nil {
		fields = append(fields, source.FieldSkipReason)
	}
	if m.failure_count != nil {
		fields = append(fields, source.FieldFailureCount)
	}
	if m.last_error != nil {
		fields = append(fields, source.FieldLastError)
	}
	if m.claim != nil {
		fields = append(fields, source.FieldClaimID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldPlatform:
		return m.Platform()
	case source.FieldExternalID:
		return m.ExternalID()
	case source.FieldAuthor:
		return m.Author()
	case source.FieldURL:
		return m.URL()
	case source.FieldContent:
		return m.Content()
	case source.FieldCapturedAt:
		return m.CapturedAt()
	case source.FieldPublishedAt:
		return m.PublishedAt()
	case source.FieldLikes:
		return m.Likes()
	case source.FieldShares:
		return m.Shares()
	case source.FieldComments:
		return m.Comments()
	case source.FieldViews:
		return m.Views()
	case source.FieldState:
		return m.State()
	case source.FieldSkipReason:
		return m.SkipReason()
	case source.FieldFailureCount:
		return m.FailureCount()
	case source.FieldLastError:
		return m.LastError()
	case source.FieldClaimID:
		return m.ClaimID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldPlatform:
		return m.OldPlatform(ctx)
	case source.FieldExternalID:
		return m.OldExternalID(ctx)
	case source.FieldAuthor:
		return m.OldAuthor(ctx)
	case source.FieldURL:
		return m.OldURL(ctx)
	case source.FieldContent:
		return m.OldContent(ctx)
	case source.FieldCapturedAt:
		return m.OldCapturedAt(ctx)
	case source.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case source.FieldLikes:
		return m.OldLikes(ctx)
	case source.FieldShares:
		return m.OldShares(ctx)
	case source.FieldComments:
		return m.OldComments(ctx)
	case source.FieldViews:
		return m.OldViews(ctx)
	case source.FieldState:
		return m.OldState(ctx)
	case source.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case source.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case source.FieldLastError:
		return m.OldLastError(ctx)
	case source.FieldClaimID:
		return m.OldClaimID(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldPlatform:
		v, ok := value.(source.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case source.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case source.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case source.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case source.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case source.FieldCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapturedAt(v)
		return nil
	case source.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case source.FieldLikes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikes(v)
		return nil
	case source.FieldShares:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShares(v)
		return nil
	case source.FieldComments:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case source.FieldViews:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViews(v)
		return nil
	case source.FieldState:
		v, ok := value.(source.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case source.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case source.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case source.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case source.FieldClaimID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addlikes != nil {
		fields = append(fields, source.FieldLikes)
	}
	if m.addshares != nil {
		fields = append(fields, source.FieldShares)
	}
	if m.addcomments != nil {
		fields = append(fields, source.FieldComments)
	}
	if m.addviews != nil {
		fields = append(fields, source.FieldViews)
	}
	if m.addfailure_count != nil {
		fields = append(fields, source.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldLikes:
		return m.AddedLikes()
	case source.FieldShares:
		return m.AddedShares()
	case source.FieldComments:
		return m.AddedComments()
	case source.FieldViews:
		return m.AddedViews()
	case source.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldLikes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikes(v)
		return nil
	case source.FieldShares:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShares(v)
		return nil
	case source.FieldComments:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComments(v)
		return nil
	case source.FieldViews:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViews(v)
		return nil
	case source.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldAuthor) {
		fields = append(fields, source.FieldAuthor)
	}
	if m.FieldCleared(source.FieldURL) {
		fields = append(fields, source.FieldURL)
	}
	if m.FieldCleared(source.FieldPublishedAt) {
		fields = append(fields, source.FieldPublishedAt)
	}
	if m.FieldCleared(source.FieldLikes) {
		fields = append(fields, source.FieldLikes)
	}
	if m.FieldCleared(source.FieldShares) {
		fields = append(fields, source.FieldShares)
	}
	if m.FieldCleared(source.FieldComments) {
		fields = append(fields, source.FieldComments)
	}
	if m.FieldCleared(source.FieldViews) {
		fields = append(fields, source.FieldViews)
	}
	if m.FieldCleared(source.FieldSkipReason) {
		fields = append(fields, source.FieldSkipReason)
	}
	if m.FieldCleared(source.FieldLastError) {
		fields = append(fields, source.FieldLastError)
	}
	if m.FieldCleared(source.FieldClaimID) {
		fields = append(fields, source.FieldClaimID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldAuthor:
		m.ClearAuthor()
		return nil
	case source.FieldURL:
		m.ClearURL()
		return nil
	case source.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case source.FieldLikes:
		m.ClearLikes()
		return nil
	case source.FieldShares:
		m.ClearShares()
		return nil
	case source.FieldComments:
		m.ClearComments()
		return nil
	case source.FieldViews:
		m.ClearViews()
		return nil
	case source.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case source.FieldLastError:
		m.ClearLastError()
		return nil
	case source.FieldClaimID:
		m.ClearClaimID()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldPlatform:
		m.ResetPlatform()
		return nil
	case source.FieldExternalID:
		m.ResetExternalID()
		return nil
	case source.FieldAuthor:
		m.ResetAuthor()
		return nil
	case source.FieldURL:
		m.ResetURL()
		return nil
	case source.FieldContent:
		m.ResetContent()
		return nil
	case source.FieldCapturedAt:
		m.ResetCapturedAt()
		return nil
	case source.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case source.FieldLikes:
		m.ResetLikes()
		return nil
	case source.FieldShares:
		m.ResetShares()
		return nil
	case source.FieldComments:
		m.ResetComments()
		return nil
	case source.FieldViews:
		m.ResetViews()
		return nil
	case source.FieldState:
		m.ResetState()
		return nil
	case source.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case source.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case source.FieldLastError:
		m.ResetLastError()
		return nil
	case source.FieldClaimID:
		m.ResetClaimID()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claim != nil {
		edges = append(edges, source.EdgeClaim)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaim {
		edges = append(edges, source.EdgeClaim)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	switch name {
	case source.EdgeClaim:
		return m.clearedclaim
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	switch name {
	case source.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	switch name {
	case source.EdgeClaim:
		m.ResetClaim()
		return nil
	}
	return fmt.Errorf("unknown Source edge %s", name)
}

// StatCounterMutation represents an operation that mutates the StatCounter nodes in the graph.
type StatCounterMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *int64
	addvalue      *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StatCounter, error)
	predicates    []predicate.StatCounter
}

var _ ent.Mutation = (*StatCounterMutation)(nil)

// statcounterOption allows management of the mutation configuration using functional options.
type statcounterOption func(*StatCounterMutation)

// newStatCounterMutation creates new mutation for the StatCounter entity.
func newStatCounterMutation(c config, op Op, opts ...statcounterOption) *StatCounterMutation {
	m := &StatCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeStatCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatCounterID sets the ID field of the mutation.
func withStatCounterID(id string) statcounterOption {
	return func(m *StatCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *StatCounter
		)
		m.oldValue = func(ctx context.Context) (*StatCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatCounter sets the old StatCounter of the mutation.
func withStatCounter(node *StatCounter) statcounterOption {
	return func(m *StatCounterMutation) {
		m.oldValue = func(context.Context) (*StatCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatCounter entities.
func (m *StatCounterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatCounterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatCounterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *StatCounterMutation) SetValue(i int64) {
	m.value = &i
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *StatCounterMutation) Value() (r int64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the StatCounter entity.
// If the StatCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatCounterMutation) OldValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds i to the "value" field.
func (m *StatCounterMutation) AddValue(i int64) {
	if m.addvalue != nil {
		*m.addvalue += i
	} else {
		m.addvalue = &i
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *StatCounterMutation) AddedValue() (r int64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *StatCounterMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StatCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StatCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StatCounter entity.
// If the StatCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StatCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StatCounterMutation builder.
func (m *StatCounterMutation) Where(ps ...predicate.StatCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatCounter).
func (m *StatCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatCounterMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.value != nil {
		fields = append(fields, statcounter.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, statcounter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statcounter.FieldValue:
		return m.Value()
	case statcounter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statcounter.FieldValue:
		return m.OldValue(ctx)
	case statcounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StatCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statcounter.FieldValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case statcounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StatCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatCounterMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, statcounter.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statcounter.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statcounter.FieldValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown StatCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StatCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatCounterMutation) ResetField(name string) error {
	switch name {
	case statcounter.FieldValue:
		m.ResetValue()
		return nil
	case statcounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StatCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StatCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StatCounter edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	payload         *string
	unique_key      *string
	priority        *int
	addpriority     *int
	attempt         *int
	addattempt      *int
	max_attempts    *int
	addmax_attempts *int
	status          *task.Status
	enqueue_at      *time.Time
	available_at    *time.Time
	claimed_by      *string
	claimed_at      *time.Time
	heartbeat_at    *time.Time
	last_error      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Task, error)
	predicates      []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetPayload sets the "payload" field.
func (m *TaskMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskMutation) ResetPayload() {
	m.payload = nil
}

// SetUniqueKey sets the "unique_key" field.
func (m *TaskMutation) SetUniqueKey(s string) {
	m.unique_key = &s
}

// UniqueKey returns the value of the "unique_key" field in the mutation.
func (m *TaskMutation) UniqueKey() (r string, exists bool) {
	v := m.unique_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueKey returns the old "unique_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUniqueKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueKey: %w", err)
	}
	return oldValue.UniqueKey, nil
}

// ClearUniqueKey clears the value of the "unique_key" field.
func (m *TaskMutation) ClearUniqueKey() {
	m.unique_key = nil
	m.clearedFields[task.FieldUniqueKey] = struct{}{}
}

// UniqueKeyCleared returns if the "unique_key" field was cleared in this mutation.
func (m *TaskMutation) UniqueKeyCleared() bool {
	_, ok := m.clearedFields[task.FieldUniqueKey]
	return ok
}

// ResetUniqueKey resets all changes to the "unique_key" field.
func (m *TaskMutation) ResetUniqueKey() {
	m.unique_key = nil
	delete(m.clearedFields, task.FieldUniqueKey)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempt sets the "attempt" field.
func (m *TaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *TaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *TaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetEnqueueAt sets the "enqueue_at" field.
func (m *TaskMutation) SetEnqueueAt(t time.Time) {
	m.enqueue_at = &t
}

// EnqueueAt returns the value of the "enqueue_at" field in the mutation.
func (m *TaskMutation) EnqueueAt() (r time.Time, exists bool) {
	v := m.enqueue_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueueAt returns the old "enqueue_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEnqueueAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueueAt: %w", err)
	}
	return oldValue.EnqueueAt, nil
}

// ResetEnqueueAt resets all changes to the "enqueue_at" field.
func (m *TaskMutation) ResetEnqueueAt() {
	m.enqueue_at = nil
}

// SetAvailableAt sets the "available_at" field.
func (m *TaskMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *TaskMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAvailableAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *TaskMutation) ResetAvailableAt() {
	m.available_at = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *TaskMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *TaskMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *TaskMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[task.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *TaskMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *TaskMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, task.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[task.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, task.FieldClaimedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *TaskMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *TaskMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *TaskMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[task.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *TaskMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, task.FieldHeartbeatAt)
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.payload != nil {
		fields = append(fields, task.FieldPayload)
	}
	if m.unique_key != nil {
		fields = append(fields, task.FieldUniqueKey)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.attempt != nil {
		fields = append(fields, task.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.enqueue_at != nil {
		fields = append(fields, task.FieldEnqueueAt)
	}
	if m.available_at != nil {
		fields = append(fields, task.FieldAvailableAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, task.FieldHeartbeatAt)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldName:
		return m.Name()
	case task.FieldPayload:
		return m.Payload()
	case task.FieldUniqueKey:
		return m.UniqueKey()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldAttempt:
		return m.Attempt()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldStatus:
		return m.Status()
	case task.FieldEnqueueAt:
		return m.EnqueueAt()
	case task.FieldAvailableAt:
		return m.AvailableAt()
	case task.FieldClaimedBy:
		return m.ClaimedBy()
	case task.FieldClaimedAt:
		return m.ClaimedAt()
	case task.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case task.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldPayload:
		return m.OldPayload(ctx)
	case task.FieldUniqueKey:
		return m.OldUniqueKey(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldAttempt:
		return m.OldAttempt(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldEnqueueAt:
		return m.OldEnqueueAt(ctx)
	case task.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case task.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case task.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case task.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case task.FieldUniqueKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueKey(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldEnqueueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueueAt(v)
		return nil
	case task.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case task.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case task.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case task.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.addattempt != nil {
		fields = append(fields, task.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	case task.FieldAttempt:
		return m.AddedAttempt()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case task.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldUniqueKey) {
		fields = append(fields, task.FieldUniqueKey)
	}
	if m.FieldCleared(task.FieldClaimedBy) {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.FieldCleared(task.FieldClaimedAt) {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.FieldCleared(task.FieldHeartbeatAt) {
		fields = append(fields, task.FieldHeartbeatAt)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldUniqueKey:
		m.ClearUniqueKey()
		return nil
	case task.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case task.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case task.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldPayload:
		m.ResetPayload()
		return nil
	case task.FieldUniqueKey:
		m.ResetUniqueKey()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldAttempt:
		m.ResetAttempt()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldEnqueueAt:
		m.ResetEnqueueAt()
		return nil
	case task.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case task.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case task.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case task.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	taxonomy_slug *string
	clearedFields map[string]struct{}
	claims        map[string]struct{}
	removedclaims map[string]struct{}
	clearedclaims bool
	done          bool
	oldValue      func(context.Context) (*Topic, error)
	predicates    []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id string) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Topic entities.
func (m *TopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetTaxonomySlug sets the "taxonomy_slug" field.
func (m *TopicMutation) SetTaxonomySlug(s string) {
	m.taxonomy_slug = &s
}

// TaxonomySlug returns the value of the "taxonomy_slug" field in the mutation.
func (m *TopicMutation) TaxonomySlug() (r string, exists bool) {
	v := m.taxonomy_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxonomySlug returns the old "taxonomy_slug" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTaxonomySlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxonomySlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxonomySlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxonomySlug: %w", err)
	}
	return oldValue.TaxonomySlug, nil
}

// ResetTaxonomySlug resets all changes to the "taxonomy_slug" field.
func (m *TopicMutation) ResetTaxonomySlug() {
	m.taxonomy_slug = nil
}

// AddClaimIDs adds the "claims" edge to the Claim entity by ids.
func (m *TopicMutation) AddClaimIDs(ids ...string) {
	if m.claims == nil {
		m.claims = make(map[string]struct{})
	}
	for i := range ids {
		m.claims[ids[i]] = struct{}{}
	}
}

// ClearClaims clears the "claims" edge to the Claim entity.
func (m *TopicMutation) ClearClaims() {
	m.clearedclaims = true
}

// ClaimsCleared reports if the "claims" edge to the Claim entity was cleared.
func (m *TopicMutation) ClaimsCleared() bool {
	return m.clearedclaims
}

// RemoveClaimIDs removes the "claims" edge to the Claim entity by IDs.
func (m *TopicMutation) RemoveClaimIDs(ids ...string) {
	if m.removedclaims == nil {
		m.removedclaims = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claims, ids[i])
		m.removedclaims[ids[i]] = struct{}{}
	}
}

// RemovedClaims returns the removed IDs of the "claims" edge to the Claim entity.
func (m *TopicMutation) RemovedClaimsIDs() (ids []string) {
	for id := range m.removedclaims {
		ids = append(ids, id)
	}
	return
}

// ClaimsIDs returns the "claims" edge IDs in the mutation.
func (m *TopicMutation) ClaimsIDs() (ids []string) {
	for id := range m.claims {
		ids = append(ids, id)
	}
	return
}

// ResetClaims resets all changes to the "claims" edge.
func (m *TopicMutation) ResetClaims() {
	m.claims = nil
	m.clearedclaims = false
	m.removedclaims = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.taxonomy_slug != nil {
		fields = append(fields, topic.FieldTaxonomySlug)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldName:
		return m.Name()
	case topic.FieldTaxonomySlug:
		return m.TaxonomySlug()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldTaxonomySlug:
		return m.OldTaxonomySlug(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldTaxonomySlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxonomySlug(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldTaxonomySlug:
		m.ResetTaxonomySlug()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claims != nil {
		edges = append(edges, topic.EdgeClaims)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeClaims:
		ids := make([]ent.Value, 0, len(m.claims))
		for id := range m.claims {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedclaims != nil {
		edges = append(edges, topic.EdgeClaims)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeClaims:
		ids := make([]ent.Value, 0, len(m.removedclaims))
		for id := range m.removedclaims {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaims {
		edges = append(edges, topic.EdgeClaims)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeClaims:
		return m.clearedclaims
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeClaims:
		m.ResetClaims()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TradeMutation represents an operation that mutates the Trade nodes in the graph.
type TradeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	actor         *string
	side          *trade.Side
	size          *float64
	addsize       *float64
	price         *float64
	addprice      *float64
	created_at    *time.Time
	clearedFields map[string]struct{}
	market        *string
	clearedmarket bool
	done          bool
	oldValue      func(context.Context) (*Trade, error)
	predicates    []predicate.Trade
}

var _ ent.Mutation = (*TradeMutation)(nil)

// tradeOption allows management of the mutation configuration using functional options.
type tradeOption func(*TradeMutation)

// newTradeMutation creates new mutation for the Trade entity.
func newTradeMutation(c config, op Op, opts ...tradeOption) *TradeMutation {
	m := &TradeMutation{
		config:        c,
		op:            op,
		typ:           TypeTrade,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTradeID sets the ID field of the mutation.
func withTradeID(id string) tradeOption {
	return func(m *TradeMutation) {
		var (
			err   error
			once  sync.Once
			value *Trade
		)
		m.oldValue = func(ctx context.Context) (*Trade, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trade.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrade sets the old Trade of the mutation.
func withTrade(node *Trade) tradeOption {
	return func(m *TradeMutation) {
		m.oldValue = func(context.Context) (*Trade, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TradeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TradeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trade entities.
func (m *TradeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TradeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TradeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trade.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMarketID sets the "market_id" field.
func (m *TradeMutation) SetMarketID(s string) {
	m.market = &s
}

// MarketID returns the value of the "market_id" field in the mutation.
func (m *TradeMutation) MarketID() (r string, exists bool) {
	v := m.market
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketID returns the old "market_id" field's value of the Trade entity.
// If the Trade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TradeMutation) OldMarketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketID: %w", err)
	}
	return oldValue.MarketID, nil
}

// ResetMarketID resets all changes to the "market_id" field.
func (m *TradeMutation) ResetMarketID() {
	m.market = nil
}

// SetActor sets the "actor" field.
func (m *TradeMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *TradeMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the Trade entity.
// If the Trade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TradeMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *TradeMutation) ResetActor() {
	m.actor = nil
}

// SetSide sets the "side" field.
func (m *TradeMutation) SetSide(t trade.Side) {
	m.side = &t
}

// Side returns the value of the "side" field in the mutation.
func (m *TradeMutation) Side() (r trade.Side, exists bool) {
	v := m.side
	if v == nil {
		return
	}
	return *v, true
}

// OldSide returns the old "side" field's value of the Trade entity.
// If the Trade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TradeMutation) OldSide(ctx context.Context) (v trade.Side, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSide: %w", err)
	}
	return oldValue.Side, nil
}

// ResetSide resets all changes to the "side" field.
func (m *TradeMutation) ResetSide() {
	m.side = nil
}

// SetSize sets the "size" field.
func (m *TradeMutation) SetSize(f float64) {
	m.size = &f
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *TradeMutation) Size() (r float64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Trade entity.
// If the Trade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TradeMutation) OldSize(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds f to the "size" field.
func (m *TradeMutation) AddSize(f float64) {
	if m.addsize != nil {
		*m.addsize += f
	} else {
		m.addsize = &f
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *TradeMutation) AddedSize() (r float64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *TradeMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetPrice sets the "price" field.
func (m *TradeMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *TradeMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Trade entity.
// If the Trade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TradeMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *TradeMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *TradeMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *TradeMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TradeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TradeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trade entity.
// If the Trade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TradeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TradeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMarket clears the "market" edge to the Market entity.
func (m *TradeMutation) ClearMarket() {
	m.clearedmarket = true
	m.clearedFields[trade.FieldMarketID] = struct{}{}
}

// MarketCleared reports if the "market" edge to the Market entity was cleared.
func (m *TradeMutation) MarketCleared() bool {
	return m.clearedmarket
}

// MarketIDs returns the "market" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MarketID instead. It exists only for internal usage by the builders.
func (m *TradeMutation) MarketIDs() (ids []string) {
	if id := m.market; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMarket resets all changes to the "market" edge.
func (m *TradeMutation) ResetMarket() {
	m.market = nil
	m.clearedmarket = false
}

// Where appends a list predicates to the TradeMutation builder.
func (m *TradeMutation) Where(ps ...predicate.Trade) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TradeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TradeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trade, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TradeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TradeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trade).
func (m *TradeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TradeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.market != nil {
		fields = append(fields, trade.FieldMarketID)
	}
	if m.actor != nil {
		fields = append(fields, trade.FieldActor)
	}
	if m.side != nil {
		fields = append(fields, trade.FieldSide)
	}
	if m.size != nil {
		fields = append(fields, trade.FieldSize)
	}
	if m.price != nil {
		fields = append(fields, trade.FieldPrice)
	}
	if m.created_at != nil {
		fields = append(fields, trade.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TradeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trade.FieldMarketID:
		return m.MarketID()
	case trade.FieldActor:
		return m.Actor()
	case trade.FieldSide:
		return m.Side()
	case trade.FieldSize:
		return m.Size()
	case trade.FieldPrice:
		return m.Price()
	case trade.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TradeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trade.FieldMarketID:
		return m.OldMarketID(ctx)
	case trade.FieldActor:
		return m.OldActor(ctx)
	case trade.FieldSide:
		return m.OldSide(ctx)
	case trade.FieldSize:
		return m.OldSize(ctx)
	case trade.FieldPrice:
		return m.OldPrice(ctx)
	case trade.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trade field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TradeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trade.FieldMarketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketID(v)
		return nil
	case trade.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case trade.FieldSide:
		v, ok := value.(trade.Side)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSide(v)
		return nil
	case trade.FieldSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case trade.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case trade.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trade field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TradeMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, trade.FieldSize)
	}
	if m.addprice != nil {
		fields = append(fields, trade.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TradeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trade.FieldSize:
		return m.AddedSize()
	case trade.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TradeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trade.FieldSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	case trade.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Trade numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TradeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TradeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TradeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Trade nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TradeMutation) ResetField(name string) error {
	switch name {
	case trade.FieldMarketID:
		m.ResetMarketID()
		return nil
	case trade.FieldActor:
		m.ResetActor()
		return nil
	case trade.FieldSide:
		m.ResetSide()
		return nil
	case trade.FieldSize:
		m.ResetSize()
		return nil
	case trade.FieldPrice:
		m.ResetPrice()
		return nil
	case trade.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trade field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TradeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.market != nil {
		edges = append(edges, trade.EdgeMarket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TradeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trade.EdgeMarket:
		if id := m.market; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TradeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TradeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TradeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmarket {
		edges = append(edges, trade.EdgeMarket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TradeMutation) EdgeCleared(name string) bool {
	switch name {
	case trade.EdgeMarket:
		return m.clearedmarket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TradeMutation) ClearEdge(name string) error {
	switch name {
	case trade.EdgeMarket:
		m.ClearMarket()
		return nil
	}
	return fmt.Errorf("unknown Trade unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TradeMutation) ResetEdge(name string) error {
	switch name {
	case trade.EdgeMarket:
		m.ResetMarket()
		return nil
	}
	return fmt.Errorf("unknown Trade edge %s", name)
}

// TrendingTopicMutation represents an operation that mutates the TrendingTopic nodes in the graph.
type TrendingTopicMutation struct {
	config
	op             Op
	typ            string
	id             *string
	snapshot_id    *string
	name           *string
	keywords       *[]string
	appendkeywords []string
	trend_score    *float64
	addtrend_score *float64
	velocity       *float64
	addvelocity    *float64
	correlation    *float64
	addcorrelation *float64
	relevance      *float64
	addrelevance   *float64
	risk           *float64
	addrisk        *float64
	priority       *float64
	addpriority    *float64
	detected_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TrendingTopic, error)
	predicates     []predicate.TrendingTopic
}

var _ ent.Mutation = (*TrendingTopicMutation)(nil)

// trendingtopicOption allows management of the mutation configuration using functional options.
type trendingtopicOption func(*TrendingTopicMutation)

// newTrendingTopicMutation creates new mutation for the TrendingTopic entity.
func newTrendingTopicMutation(c config, op Op, opts ...trendingtopicOption) *TrendingTopicMutation {
	m := &TrendingTopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTrendingTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrendingTopicID sets the ID field of the mutation.
func withTrendingTopicID(id string) trendingtopicOption {
	return func(m *TrendingTopicMutation) {
		var (
			err   error
			once  sync.Once
			value *TrendingTopic
		)
		m.oldValue = func(ctx context.Context) (*TrendingTopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrendingTopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrendingTopic sets the old TrendingTopic of the mutation.
func withTrendingTopic(node *TrendingTopic) trendingtopicOption {
	return func(m *TrendingTopicMutation) {
		m.oldValue = func(context.Context) (*TrendingTopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrendingTopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrendingTopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrendingTopic entities.
func (m *TrendingTopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrendingTopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrendingTopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrendingTopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSnapshotID sets the "snapshot_id" field.
func (m *TrendingTopicMutation) SetSnapshotID(s string) {
	m.snapshot_id = &s
}

// SnapshotID returns the value of the "snapshot_id" field in the mutation.
func (m *TrendingTopicMutation) SnapshotID() (r string, exists bool) {
	v := m.snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotID returns the old "snapshot_id" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldSnapshotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotID: %w", err)
	}
	return oldValue.SnapshotID, nil
}

// ResetSnapshotID resets all changes to the "snapshot_id" field.
func (m *TrendingTopicMutation) ResetSnapshotID() {
	m.snapshot_id = nil
}

// SetName sets the "name" field.
func (m *TrendingTopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TrendingTopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TrendingTopicMutation) ResetName() {
	m.name = nil
}

// SetKeywords sets the "keywords" field.
func (m *TrendingTopicMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *TrendingTopicMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *TrendingTopicMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *TrendingTopicMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *TrendingTopicMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
}

// SetTrendScore sets the "trend_score" field.
func (m *TrendingTopicMutation) SetTrendScore(f float64) {
	m.trend_score = &f
	m.addtrend_score = nil
}

// TrendScore returns the value of the "trend_score" field in the mutation.
func (m *TrendingTopicMutation) TrendScore() (r float64, exists bool) {
	v := m.trend_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTrendScore returns the old "trend_score" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldTrendScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrendScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrendScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrendScore: %w", err)
	}
	return oldValue.TrendScore, nil
}

// AddTrendScore adds f to the "trend_score" field.
func (m *TrendingTopicMutation) AddTrendScore(f float64) {
	if m.addtrend_score != nil {
		*m.addtrend_score += f
	} else {
		m.addtrend_score = &f
	}
}

// AddedTrendScore returns the value that was added to the "trend_score" field in this mutation.
func (m *TrendingTopicMutation) AddedTrendScore() (r float64, exists bool) {
	v := m.addtrend_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrendScore resets all changes to the "trend_score" field.
func (m *TrendingTopicMutation) ResetTrendScore() {
	m.trend_score = nil
	m.addtrend_score = nil
}

// SetVelocity sets the "velocity" field.
func (m *TrendingTopicMutation) SetVelocity(f float64) {
	m.velocity = &f
	m.addvelocity = nil
}

// Velocity returns the value of the "velocity" field in the mutation.
func (m *TrendingTopicMutation) Velocity() (r float64, exists bool) {
	v := m.velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocity returns the old "velocity" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocity: %w", err)
	}
	return oldValue.Velocity, nil
}

// AddVelocity adds f to the "velocity" field.
func (m *TrendingTopicMutation) AddVelocity(f float64) {
	if m.addvelocity != nil {
		*m.addvelocity += f
	} else {
		m.addvelocity = &f
	}
}

// AddedVelocity returns the value that was added to the "velocity" field in this mutation.
func (m *TrendingTopicMutation) AddedVelocity() (r float64, exists bool) {
	v := m.addvelocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetVelocity resets all changes to the "velocity" field.
func (m *TrendingTopicMutation) ResetVelocity() {
	m.velocity = nil
	m.addvelocity = nil
}

// SetCorrelation sets the "correlation" field.
func (m *TrendingTopicMutation) SetCorrelation(f float64) {
	m.correlation = &f
	m.addcorrelation = nil
}

// Correlation returns the value of the "correlation" field in the mutation.
func (m *TrendingTopicMutation) Correlation() (r float64, exists bool) {
	v := m.correlation
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelation returns the old "correlation" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldCorrelation(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelation: %w", err)
	}
	return oldValue.Correlation, nil
}

// AddCorrelation adds f to the "correlation" field.
func (m *TrendingTopicMutation) AddCorrelation(f float64) {
	if m.addcorrelation != nil {
		*m.addcorrelation += f
	} else {
		m.addcorrelation = &f
	}
}

// AddedCorrelation returns the value that was added to the "correlation" field in this mutation.
func (m *TrendingTopicMutation) AddedCorrelation() (r float64, exists bool) {
	v := m.addcorrelation
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrelation resets all changes to the "correlation" field.
func (m *TrendingTopicMutation) ResetCorrelation() {
	m.correlation = nil
	m.addcorrelation = nil
}

// SetRelevance sets the "relevance" field.
func (m *TrendingTopicMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *TrendingTopicMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *TrendingTopicMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *TrendingTopicMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *TrendingTopicMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetRisk sets the "risk" field.
func (m *TrendingTopicMutation) SetRisk(f float64) {
	m.risk = &f
	m.addrisk = nil
}

// Risk returns the value of the "risk" field in the mutation.
func (m *TrendingTopicMutation) Risk() (r float64, exists bool) {
	v := m.risk
	if v == nil {
		return
	}
	return *v, true
}

// OldRisk returns the old "risk" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldRisk(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisk: %w", err)
	}
	return oldValue.Risk, nil
}

// AddRisk adds f to the "risk" field.
func (m *TrendingTopicMutation) AddRisk(f float64) {
	if m.addrisk != nil {
		*m.addrisk += f
	} else {
		m.addrisk = &f
	}
}

// AddedRisk returns the value that was added to the "risk" field in this mutation.
func (m *TrendingTopicMutation) AddedRisk() (r float64, exists bool) {
	v := m.addrisk
	if v == nil {
		return
	}
	return *v, true
}

// ResetRisk resets all changes to the "risk" field.
func (m *TrendingTopicMutation) ResetRisk() {
	m.risk = nil
	m.addrisk = nil
}

// SetPriority sets the "priority" field.
func (m *TrendingTopicMutation) SetPriority(f float64) {
	m.priority = &f
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TrendingTopicMutation) Priority() (r float64, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldPriority(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds f to the "priority" field.
func (m *TrendingTopicMutation) AddPriority(f float64) {
	if m.addpriority != nil {
		*m.addpriority += f
	} else {
		m.addpriority = &f
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TrendingTopicMutation) AddedPriority() (r float64, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TrendingTopicMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDetectedAt sets the "detected_at" field.
func (m *TrendingTopicMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *TrendingTopicMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the TrendingTopic entity.
// If the TrendingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendingTopicMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *TrendingTopicMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// Where appends a list predicates to the TrendingTopicMutation builder.
func (m *TrendingTopicMutation) Where(ps ...predicate.TrendingTopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrendingTopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrendingTopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrendingTopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrendingTopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrendingTopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrendingTopic).
func (m *TrendingTopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrendingTopicMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.snapshot_id != nil {
		fields = append(fields, trendingtopic.FieldSnapshotID)
	}
	if m.name != nil {
		fields = append(fields, trendingtopic.FieldName)
	}
	if m.keywords != nil {
		fields = append(fields, trendingtopic.FieldKeywords)
	}
	if m.trend_score != nil {
		fields = append(fields, trendingtopic.FieldTrendScore)
	}
	if m.velocity != nil {
		fields = append(fields, trendingtopic.FieldVelocity)
	}
	if m.correlation != nil {
		fields = append(fields, trendingtopic.FieldCorrelation)
	}
	if m.relevance != nil {
		fields = append(fields, trendingtopic.FieldRelevance)
	}
	if m.risk != nil {
		fields = append(fields, trendingtopic.FieldRisk)
	}
	if m.priority != nil {
		fields = append(fields, trendingtopic.FieldPriority)
	}
	if m.detected_at != nil {
		fields = append(fields, trendingtopic.FieldDetectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrendingTopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trendingtopic.FieldSnapshotID:
		return m.SnapshotID()
	case trendingtopic.FieldName:
		return m.Name()
	case trendingtopic.FieldKeywords:
		return m.Keywords()
	case trendingtopic.FieldTrendScore:
		return m.TrendScore()
	case trendingtopic.FieldVelocity:
		return m.Velocity()
	case trendingtopic.FieldCorrelation:
		return m.Correlation()
	case trendingtopic.FieldRelevance:
		return m.Relevance()
	case trendingtopic.FieldRisk:
		return m.Risk()
	case trendingtopic.FieldPriority:
		return m.Priority()
	case trendingtopic.FieldDetectedAt:
		return m.DetectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrendingTopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trendingtopic.FieldSnapshotID:
		return m.OldSnapshotID(ctx)
	case trendingtopic.FieldName:
		return m.OldName(ctx)
	case trendingtopic.FieldKeywords:
		return m.OldKeywords(ctx)
	case trendingtopic.FieldTrendScore:
		return m.OldTrendScore(ctx)
	case trendingtopic.FieldVelocity:
		return m.OldVelocity(ctx)
	case trendingtopic.FieldCorrelation:
		return m.OldCorrelation(ctx)
	case trendingtopic.FieldRelevance:
		return m.OldRelevance(ctx)
	case trendingtopic.FieldRisk:
		return m.OldRisk(ctx)
	case trendingtopic.FieldPriority:
		return m.OldPriority(ctx)
	case trendingtopic.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrendingTopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendingTopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trendingtopic.FieldSnapshotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotID(v)
		return nil
	case trendingtopic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case trendingtopic.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case trendingtopic.FieldTrendScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrendScore(v)
		return nil
	case trendingtopic.FieldVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocity(v)
		return nil
	case trendingtopic.FieldCorrelation:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelation(v)
		return nil
	case trendingtopic.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case trendingtopic.FieldRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisk(v)
		return nil
	case trendingtopic.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case trendingtopic.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrendingTopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrendingTopicMutation) AddedFields() []string {
	var fields []string
	if m.addtrend_score != nil {
		fields = append(fields, trendingtopic.FieldTrendScore)
	}
	if m.addvelocity != nil {
		fields = append(fields, trendingtopic.FieldVelocity)
	}
	if m.addcorrelation != nil {
		fields = append(fields, trendingtopic.FieldCorrelation)
	}
	if m.addrelevance != nil {
		fields = append(fields, trendingtopic.FieldRelevance)
	}
	if m.addrisk != nil {
		fields = append(fields, trendingtopic.FieldRisk)
	}
	if m.addpriority != nil {
		fields = append(fields, trendingtopic.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrendingTopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trendingtopic.FieldTrendScore:
		return m.AddedTrendScore()
	case trendingtopic.FieldVelocity:
		return m.AddedVelocity()
	case trendingtopic.FieldCorrelation:
		return m.AddedCorrelation()
	case trendingtopic.FieldRelevance:
		return m.AddedRelevance()
	case trendingtopic.FieldRisk:
		return m.AddedRisk()
	case trendingtopic.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendingTopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trendingtopic.FieldTrendScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrendScore(v)
		return nil
	case trendingtopic.FieldVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVelocity(v)
		return nil
	case trendingtopic.FieldCorrelation:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrelation(v)
		return nil
	case trendingtopic.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	case trendingtopic.FieldRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRisk(v)
		return nil
	case trendingtopic.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown TrendingTopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrendingTopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrendingTopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrendingTopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrendingTopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrendingTopicMutation) ResetField(name string) error {
	switch name {
	case trendingtopic.FieldSnapshotID:
		m.ResetSnapshotID()
		return nil
	case trendingtopic.FieldName:
		m.ResetName()
		return nil
	case trendingtopic.FieldKeywords:
		m.ResetKeywords()
		return nil
	case trendingtopic.FieldTrendScore:
		m.ResetTrendScore()
		return nil
	case trendingtopic.FieldVelocity:
		m.ResetVelocity()
		return nil
	case trendingtopic.FieldCorrelation:
		m.ResetCorrelation()
		return nil
	case trendingtopic.FieldRelevance:
		m.ResetRelevance()
		return nil
	case trendingtopic.FieldRisk:
		m.ResetRisk()
		return nil
	case trendingtopic.FieldPriority:
		m.ResetPriority()
		return nil
	case trendingtopic.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	}
	return fmt.Errorf("unknown TrendingTopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrendingTopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrendingTopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrendingTopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrendingTopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrendingTopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrendingTopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrendingTopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrendingTopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrendingTopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrendingTopic edge %s", name)
}
