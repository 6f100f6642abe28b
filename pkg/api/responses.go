package api

import (
	"time"

	"github.com/veraz-project/veraz/ent"
)

// ClaimResponse is the read-API shape of one claim with its evidence,
// source summaries, and classification links.
type ClaimResponse struct {
	ID               string             `json:"id"`
	Text             string             `json:"text"`
	Verdict          string             `json:"verdict"`
	Explanation      string             `json:"explanation"`
	Confidence       float64            `json:"confidence"`
	EvidenceStrength string             `json:"evidence_strength"`
	NeedsReview      bool               `json:"needs_review"`
	ReviewPriority   string             `json:"review_priority"`
	CreatedAt        time.Time          `json:"created_at"`
	Evidence         []EvidenceResponse `json:"evidence"`
	Sources          []SourceSummary    `json:"sources"`
	Entities         []EntityResponse   `json:"entities,omitempty"`
	Topics           []string           `json:"topics,omitempty"`
}

// EvidenceResponse is one evidence link of a claim.
type EvidenceResponse struct {
	URL             string  `json:"url"`
	Domain          string  `json:"domain"`
	Title           string  `json:"title,omitempty"`
	Snippet         string  `json:"snippet,omitempty"`
	Relevance       float64 `json:"relevance"`
	CredibilityTier int     `json:"credibility_tier"`
}

// SourceSummary is the reduced view of a source attached to a claim.
type SourceSummary struct {
	ID          string     `json:"id"`
	Platform    string     `json:"platform"`
	URL         string     `json:"url,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// EntityResponse is one linked entity.
type EntityResponse struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ListClaimsResponse is a newest-first page of claims.
type ListClaimsResponse struct {
	Claims []ClaimResponse `json:"claims"`
	Total  int             `json:"total"`
	Skip   int             `json:"skip"`
	Limit  int             `json:"limit"`
}

func toClaimResponse(c *ent.Claim) ClaimResponse {
	resp := ClaimResponse{
		ID:               c.ID,
		Text:             c.Text,
		Verdict:          string(c.Verdict),
		Explanation:      c.Explanation,
		Confidence:       c.Confidence,
		EvidenceStrength: string(c.EvidenceStrength),
		NeedsReview:      c.NeedsReview,
		ReviewPriority:   string(c.ReviewPriority),
		CreatedAt:        c.CreatedAt,
	}
	for _, ev := range c.Edges.Evidence {
		resp.Evidence = append(resp.Evidence, EvidenceResponse{
			URL:             ev.URL,
			Domain:          ev.Domain,
			Title:           ev.Title,
			Snippet:         ev.Snippet,
			Relevance:       ev.Relevance,
			CredibilityTier: ev.CredibilityTier,
		})
	}
	for _, src := range c.Edges.Sources {
		resp.Sources = append(resp.Sources, SourceSummary{
			ID:          src.ID,
			Platform:    string(src.Platform),
			URL:         src.URL,
			Author:      src.Author,
			PublishedAt: src.PublishedAt,
		})
	}
	for _, e := range c.Edges.Entities {
		resp.Entities = append(resp.Entities, EntityResponse{
			Name: e.CanonicalName,
			Kind: string(e.Kind),
		})
	}
	for _, topic := range c.Edges.Topics {
		resp.Topics = append(resp.Topics, topic.TaxonomySlug)
	}
	return resp
}
