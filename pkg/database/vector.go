package database

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SimilarClaim is one row of a vector similarity search over claim embeddings.
type SimilarClaim struct {
	ClaimID    string
	Text       string
	Verdict    string
	Similarity float64
}

// VectorLiteral formats an embedding as a pgvector input literal.
func VectorLiteral(vec []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

// NormalizeVector scales vec to unit norm in place and returns it.
// A zero vector is returned unchanged.
func NormalizeVector(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}

// UpdateClaimEmbedding writes the embedding vector for a claim and flips
// has_embedding. The vector is normalized first; stored embeddings are
// always unit-norm.
func (c *Client) UpdateClaimEmbedding(ctx context.Context, claimID string, vec []float32) error {
	_, err := c.db.ExecContext(ctx,
		`UPDATE claims SET embedding = $1::vector, has_embedding = true WHERE claim_id = $2`,
		VectorLiteral(NormalizeVector(vec)), claimID)
	if err != nil {
		return fmt.Errorf("failed to update claim embedding: %w", err)
	}
	return nil
}

// SearchSimilarClaims returns up to limit claims ranked by cosine similarity
// to the query embedding. Similarity is mapped to [0,1] (1 = identical).
func (c *Client) SearchSimilarClaims(ctx context.Context, vec []float32, limit int) ([]SimilarClaim, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT claim_id, text, verdict, 1 - (embedding <=> $1::vector) AS similarity
		FROM claims
		WHERE has_embedding
		ORDER BY embedding <=> $1::vector
		LIMIT $2`,
		VectorLiteral(NormalizeVector(vec)), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar claims: %w", err)
	}
	defer rows.Close()

	var out []SimilarClaim
	for rows.Next() {
		var sc SimilarClaim
		if err := rows.Scan(&sc.ClaimID, &sc.Text, &sc.Verdict, &sc.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan similar claim: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// SearchClaimsByText is the text-similarity fallback used when the query
// claim has no embedding yet. Ranks by Spanish full-text match.
func (c *Client) SearchClaimsByText(ctx context.Context, query string, limit int) ([]SimilarClaim, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT claim_id, text, verdict,
			ts_rank(to_tsvector('spanish', text), plainto_tsquery('spanish', $1)) AS similarity
		FROM claims
		WHERE to_tsvector('spanish', text) @@ plainto_tsquery('spanish', $1)
		ORDER BY similarity DESC
		LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims by text: %w", err)
	}
	defer rows.Close()

	var out []SimilarClaim
	for rows.Next() {
		var sc SimilarClaim
		if err := rows.Scan(&sc.ClaimID, &sc.Text, &sc.Verdict, &sc.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
