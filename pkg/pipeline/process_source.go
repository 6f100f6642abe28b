package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/pkg/classify"
	"github.com/veraz-project/veraz/pkg/extractor"
	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/ragctx"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/taskbus"
	"github.com/veraz-project/veraz/pkg/verify"
	"github.com/veraz-project/veraz/pkg/websearch"
)

// sourcePayload is the process_source task payload.
type sourcePayload struct {
	SourceID string `json:"source_id"`
}

// claimPayload is the compute_embedding task payload. The claim text is
// carried along so the handler does not need to reload the row.
type claimPayload struct {
	ClaimID string `json:"claim_id"`
	Text    string `json:"text"`
}

// marketPayload is the create_claim_market task payload.
type marketPayload struct {
	ClaimID    string `json:"claim_id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	HighStakes bool   `json:"high_stakes"`
}

// processSource runs one source through the full pipeline: extract,
// gather evidence, verify, classify, persist. Idempotent on the source
// id; re-delivery of a finalized source is a no-op skip.
func (p *Pipeline) processSource(ctx context.Context, t *ent.Task) error {
	var payload sourcePayload
	if err := json.Unmarshal([]byte(t.Payload), &payload); err != nil || payload.SourceID == "" {
		return taskbus.Skip("malformed process_source payload")
	}

	src, err := p.deps.Sources.Get(ctx, payload.SourceID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return taskbus.Skip("source not found: " + payload.SourceID)
		}
		return err
	}
	if src.State != source.StatePending {
		return taskbus.Skip(fmt.Sprintf("source already finalized (%s)", src.State))
	}

	log := slog.With("source_id", src.ID, "platform", src.Platform)

	claimText, err := p.deps.Extractor.Extract(ctx, src.Content)
	if err != nil {
		if errors.Is(err, extractor.ErrNoClaim) {
			return p.skipSource(ctx, src.ID, "no verifiable claim")
		}
		return p.failSource(t, src.ID, providerErr("claim extraction", err))
	}

	embedding := p.embed(ctx, claimText, log)

	vc, err := p.deps.Builder.Build(ctx, claimText, embedding, p.deps.Classifier.KnownEntities(claimText))
	if err != nil {
		return p.failSource(t, src.ID, providerErr("evidence gathering", err))
	}
	if vc.DuplicateOf == "" && embedding == nil {
		vc.DuplicateOf = p.textDuplicate(ctx, claimText)
	}

	if vc.DuplicateOf != "" {
		if err := p.deps.Claims.LinkDuplicateSource(ctx, src.ID, vc.DuplicateOf); err != nil {
			return p.failSource(t, src.ID, err)
		}
		log.Info("Source linked to existing claim", "claim_id", vc.DuplicateOf)
		return nil
	}

	outcome, err := p.deps.Verifier.Verify(ctx, vc)
	if err != nil {
		return p.failSource(t, src.ID, providerErr("verification", err))
	}

	classification := p.classifyClaim(ctx, claimText, log)

	created, err := p.deps.Claims.PersistClaim(ctx, buildPersistRequest(src, claimText, vc, outcome, classification))
	if err != nil {
		if services.IsValidationError(err) {
			return p.skipSource(ctx, src.ID, "unpersistable claim: "+err.Error())
		}
		return p.failSource(t, src.ID, err)
	}

	log.Info("Claim persisted",
		"claim_id", created.ID,
		"verdict", outcome.Verdict,
		"confidence", outcome.Confidence,
		"needs_review", outcome.NeedsReview)

	p.enqueueFollowups(ctx, created.ID, claimText, outcome, classification, log)
	return nil
}

// embed computes the claim embedding. A provider failure degrades to nil:
// dedup falls back to text similarity and the embedding is written later
// by the compute_embedding task.
func (p *Pipeline) embed(ctx context.Context, claimText string, log *slog.Logger) []float32 {
	vecs, err := p.deps.Embedder.Embed(ctx, []string{claimText})
	if err != nil {
		log.Warn("Embedding unavailable, falling back to text similarity", "error", err)
		return nil
	}
	if len(vecs) != 1 || len(vecs[0]) != p.deps.Config.LLM.EmbeddingDim {
		log.Warn("Embedding has unexpected shape, discarding")
		return nil
	}
	return vecs[0]
}

// textDuplicate is the dedup fallback when no embedding is available: a
// stored claim whose normalized text equals the new one is a duplicate.
func (p *Pipeline) textDuplicate(ctx context.Context, claimText string) string {
	matches, err := p.deps.DB.SearchClaimsByText(ctx, claimText, 3)
	if err != nil {
		slog.Warn("Text similarity search failed", "error", err)
		return ""
	}
	want := normalizeClaimText(claimText)
	for _, m := range matches {
		if normalizeClaimText(m.Text) == want {
			return m.ClaimID
		}
	}
	return ""
}

// skipSource finalizes the source as skipped before acking the task, so
// every acked source lands in a terminal state.
func (p *Pipeline) skipSource(ctx context.Context, sourceID, reason string) error {
	if err := p.deps.Sources.MarkSkipped(ctx, sourceID, reason); err != nil {
		return err
	}
	return taskbus.Skip(reason)
}

// failSource records the failure on the source row when the bus will not
/// offer the task again: a hold is parked for the operator and the final
// attempt dead-letters. The failed source then enters the scrape tick's
// retry sweep until its own budget runs out. The write uses a background
// context because the task deadline may already have expired.
func (p *Pipeline) failSource(t *ent.Task, sourceID string, cause error) error {
	if !sourceFailureTerminal(t, cause) {
		return cause
	}
	markCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.deps.Sources.MarkFailed(markCtx, sourceID, cause.Error()); err != nil {
		slog.Error("Failed to mark source failed", "source_id", sourceID, "error", err)
	}
	return cause
}

// sourceFailureTerminal reports whether this failure ends task processing
// for good.
func sourceFailureTerminal(t *ent.Task, err error) bool {
	if err == nil || taskbus.IsSkip(err) {
		return false
	}
	return taskbus.IsHold(err) || t.Attempt >= t.MaxAttempts
}

/// classifyClaim is tolerant: classification failure never blocks the
// verdict, it just leaves the claim without entity/topic links.
func (p *Pipeline) classifyClaim(ctx context.Context, claimText string, log *slog.Logger) *classify.Result {
	result, err := p.deps.Classifier.Classify(ctx, claimText)
	if err != nil {
		log.Warn("Classification failed, persisting without links", "error", err)
		return &classify.Result{}
	}
	return result
}

func (p *Pipeline) enqueueFollowups(ctx context.Context, claimID, claimText string, outcome *verify.Outcome, classification *classify.Result, log *slog.Logger) {
	embedBody, _ := json.Marshal(claimPayload{ClaimID: claimID, Text: claimText})
	_, err := p.deps.Bus.Enqueue(ctx, TaskComputeEmbedding, embedBody, taskbus.EnqueueOptions{
		UniqueKey: "embed:" + claimID,
		Priority:  0,
	})
	if err != nil {
		log.Error("Failed to enqueue embedding task", "claim_id", claimID, "error", err)
	}

	// Only unresolved claims spawn a market: a verified or debunked claim
	// has nothing left to predict.
	if outcome.Verdict != verify.VerdictUnverified {
		return
	}
	marketBody, _ := json.Marshal(marketPayload{
		ClaimID:    claimID,
		Question:   marketQuestion(claimText),
		Category:   primaryTopic(classification),
		HighStakes: outcome.NeedsReview && outcome.ReviewPriority == verify.PriorityHigh,
	})
	_, err = p.deps.Bus.Enqueue(ctx, TaskCreateClaimMarket, marketBody, taskbus.EnqueueOptions{
		UniqueKey: "market:" + claimID,
		Priority:  2,
	})
	if err != nil {
		log.Error("Failed to enqueue market task", "claim_id", claimID, "error", err)
	}
}

// buildPersistRequest maps the stage outputs onto the persistence request.
func buildPersistRequest(src *ent.Source, claimText string, vc *ragctx.VerificationContext, outcome *verify.Outcome, classification *classify.Result) services.PersistClaimRequest {
	req := services.PersistClaimRequest{
		SourceID:         src.ID,
		Text:             claimText,
		OriginalText:     src.Content,
		Verdict:          outcome.Verdict,
		Explanation:      outcome.Explanation,
		Confidence:       outcome.Confidence,
		EvidenceStrength: outcome.EvidenceStrength,
		NeedsReview:      outcome.NeedsReview,
		ReviewPriority:   outcome.ReviewPriority,
	}
	for _, ev := range vc.Evidence {
		req.Evidence = append(req.Evidence, services.EvidenceInput{
			URL:             ev.URL,
			Domain:          hostOf(ev.URL),
			Title:           ev.Title,
			Snippet:         ev.Snippet,
			Relevance:       1.0 / float64(1+ev.Rank),
			CredibilityTier: ev.Tier,
		})
	}
	for _, e := range classification.Entities {
		req.Entities = append(req.Entities, services.EntityInput{
			CanonicalName: e.Name,
			Kind:          e.Kind,
		})
	}
	for _, topic := range classification.Topics {
		req.TopicSlugs = append(req.TopicSlugs, topic.Slug)
	}
	return req
}

// marketQuestion phrases a claim as a yes/no market question.
func marketQuestion(claimText string) string {
	text := strings.TrimRight(strings.TrimSpace(claimText), ".?!¿¡ ")
	runes := []rune(text)
	if len(runes) > 180 {
		text = string(runes[:180])
	}
	return fmt.Sprintf("¿Se confirmará que %s?", text)
}

// primaryTopic is the first (highest confidence) topic slug, or a
// catch-all category.
func primaryTopic(classification *classify.Result) string {
	if len(classification.Topics) > 0 {
		return classification.Topics[0].Slug
	}
	return "politica"
}

// normalizeClaimText collapses case, whitespace, and edge punctuation so
// near-identical restatements compare equal.
func normalizeClaimText(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".,;:!?¡¿\"'()")
	}
	return strings.Join(fields, " ")
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// providerErr maps provider failures onto queue semantics: hard auth or
// quota failures park the task for an operator, anything else retries.
func providerErr(stage string, err error) error {
	var quota *websearch.QuotaError
	if llm.IsHardFailure(err) || errors.As(err, &quota) {
		return taskbus.Hold(fmt.Sprintf("%s: %v", stage, err))
	}
	return fmt.Errorf("%s: %w", stage, err)
}
