package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/entity"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/ent/topic"
)

// EvidenceInput is one evidence row to persist with a claim.
type EvidenceInput struct {
	URL             string
	Domain          string
	Title           string
	Snippet         string
	Relevance       float64
	CredibilityTier int
}

// EntityInput is one entity link to persist with a claim.
type EntityInput struct {
	CanonicalName string
	Kind          string
}

// PersistClaimRequest carries everything needed to store one verified claim.
type PersistClaimRequest struct {
	SourceID         string
	Text             string
	OriginalText     string
	Verdict          string
	Explanation      string
	Confidence       float64
	EvidenceStrength string
	NeedsReview      bool
	ReviewPriority   string
	Evidence         []EvidenceInput
	Entities         []EntityInput
	TopicSlugs       []string
}

// ClaimService persists and queries verified claims.
type ClaimService struct {
	client *ent.Client
}

// NewClaimService creates a new ClaimService
func NewClaimService(client *ent.Client) *ClaimService {
	return &ClaimService{client: client}
}

// PersistClaim stores a verified claim with its evidence, entity, and
// topic links, and finalizes the originating source — all in one
// transaction so a crash never leaves a claim without its source link.
func (s *ClaimService) PersistClaim(httpCtx context.Context, req PersistClaimRequest) (*ent.Claim, error) {
	if req.Text == "" {
		return nil, NewValidationError("text", "required")
	}
	if req.Verdict == "" {
		return nil, NewValidationError("verdict", "required")
	}
	if len(req.Explanation) > 280 {
		return nil, NewValidationError("explanation", "must be at most 280 characters")
	}

	// Critical write: survive the caller's deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimID := uuid.New().String()
	created, err := tx.Claim.Create().
		SetID(claimID).
		SetText(req.Text).
		SetOriginalText(req.OriginalText).
		SetVerdict(claim.Verdict(req.Verdict)).
		SetExplanation(req.Explanation).
		SetConfidence(req.Confidence).
		SetEvidenceStrength(claim.EvidenceStrength(req.EvidenceStrength)).
		SetNeedsReview(req.NeedsReview).
		SetReviewPriority(claim.ReviewPriority(req.ReviewPriority)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	if err := s.createEvidence(ctx, tx, claimID, req.Evidence); err != nil {
		return nil, err
	}
	if err := s.linkEntities(ctx, tx, claimID, req.Entities); err != nil {
		return nil, err
	}
	if err := s.linkTopics(ctx, tx, claimID, req.TopicSlugs); err != nil {
		return nil, err
	}

	if req.SourceID != "" {
		err = tx.Source.UpdateOneID(req.SourceID).
			SetState(source.StateProcessed).
			SetClaimID(claimID).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to link source to claim: %w", err)
		}
	}

	if err := incrementCounters(ctx, tx, "claims_total", "claims_"+req.Verdict); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return created, nil
}

// createEvidence stores evidence rows ordered by credibility tier then
// relevance; position records that order permanently.
func (s *ClaimService) createEvidence(ctx context.Context, tx *ent.Tx, claimID string, inputs []EvidenceInput) error {
	ordered := make([]EvidenceInput, len(inputs))
	copy(ordered, inputs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].CredibilityTier != ordered[j].CredibilityTier {
			return ordered[i].CredibilityTier < ordered[j].CredibilityTier
		}
		return ordered[i].Relevance > ordered[j].Relevance
	})

	for pos, ev := range ordered {
		err := tx.Evidence.Create().
			SetID(uuid.New().String()).
			SetClaimID(claimID).
			SetURL(ev.URL).
			SetDomain(ev.Domain).
			SetTitle(ev.Title).
			SetSnippet(ev.Snippet).
			SetRelevance(ev.Relevance).
			SetCredibilityTier(ev.CredibilityTier).
			SetPosition(pos).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create evidence row: %w", err)
		}
	}
	return nil
}

// linkEntities upserts entities by canonical name and links them.
func (s *ClaimService) linkEntities(ctx context.Context, tx *ent.Tx, claimID string, inputs []EntityInput) error {
	for _, in := range inputs {
		existing, err := tx.Entity.Query().
			Where(entity.CanonicalNameEQ(in.CanonicalName)).
			Only(ctx)
		switch {
		case err == nil:
		case ent.IsNotFound(err):
			existing, err = tx.Entity.Create().
				SetID(uuid.New().String()).
				SetCanonicalName(in.CanonicalName).
				SetKind(entity.Kind(in.Kind)).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create entity %s: %w", in.CanonicalName, err)
			}
		default:
			return fmt.Errorf("failed to query entity %s: %w", in.CanonicalName, err)
		}

		err = tx.Claim.UpdateOneID(claimID).AddEntityIDs(existing.ID).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to link entity %s: %w", in.CanonicalName, err)
		}
	}
	return nil
}

// linkTopics links the claim to existing taxonomy topic rows. Slugs
// without a row are skipped; the taxonomy upsert at startup owns them.
func (s *ClaimService) linkTopics(ctx context.Context, tx *ent.Tx, claimID string, slugs []string) error {
	for _, slug := range slugs {
		t, err := tx.Topic.Query().
			Where(topic.TaxonomySlugEQ(slug)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to query topic %s: %w", slug, err)
		}
		if err := tx.Claim.UpdateOneID(claimID).AddTopicIDs(t.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to link topic %s: %w", slug, err)
		}
	}
	return nil
}

// LinkDuplicateSource attaches a source to an existing claim instead of
// creating a new one, and finalizes the source.
func (s *ClaimService) LinkDuplicateSource(ctx context.Context, sourceID, claimID string) error {
	exists, err := s.client.Claim.Query().Where(claim.ID(claimID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check claim %s: %w", claimID, err)
	}
	if !exists {
		return ErrNotFound
	}

	err = s.client.Source.UpdateOneID(sourceID).
		SetState(source.StateProcessed).
		SetClaimID(claimID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to link duplicate source: %w", err)
	}
	return nil
}

// Get loads one claim.
func (s *ClaimService) Get(ctx context.Context, claimID string) (*ent.Claim, error) {
	c, err := s.client.Claim.Get(ctx, claimID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}
	return c, nil
}

// ListOptions paginate and filter claim listings.
type ListOptions struct {
	Skip    int
	Limit   int
	Verdict string
	// NeedsReview filters to the human review queue when true.
	NeedsReview bool
}

// List returns claims newest-first.
func (s *ClaimService) List(ctx context.Context, opts ListOptions) ([]*ent.Claim, int, error) {
	q := s.client.Claim.Query()
	if opts.Verdict != "" {
		q = q.Where(claim.VerdictEQ(claim.Verdict(opts.Verdict)))
	}
	if opts.NeedsReview {
		q = q.Where(claim.NeedsReview(true))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	claims, err := q.
		Order(ent.Desc(claim.FieldCreatedAt)).
		Offset(opts.Skip).
		Limit(limit).
		WithEvidence().
		WithSources().
		WithEntities().
		WithTopics().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, total, nil
}
