package ragctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/database"
	"github.com/veraz-project/veraz/pkg/websearch"
)

type fakeVectors struct {
	results []database.SimilarClaim
	err     error
}

func (f *fakeVectors) SearchSimilarClaims(ctx context.Context, embedding []float32, limit int) ([]database.SimilarClaim, error) {
	return f.results, f.err
}

type fakeSearcher struct {
	results []websearch.Result
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, limit int) ([]websearch.Result, error) {
	return f.results, f.err
}

func testBuilder(vectors *fakeVectors, searcher *fakeSearcher) *Builder {
	ragCfg := &config.RAGConfig{
		MaxSimilarClaims:   5,
		MaxEvidenceSources: 3,
		FetchBudget:        0, // no live fetches in tests
		FetchTimeout:       time.Second,
		EvidenceTextLimit:  2048,
		PerHostConcurrency: 2,
		CacheTTL:           time.Hour,
		CacheSize:          16,
		DuplicateThreshold: 0.95,
	}
	cred := &config.CredibilityConfig{
		Official:    []string{"argentina.gob.ar"},
		VettedPress: []string{"lanacion.com.ar"},
		OtherPress:  []string{"noticias-ya.com"},
		Blacklist:   []string{"granja-de-trolls.net"},
	}
	return NewBuilder(ragCfg, cred, vectors, searcher, websearch.NewFetcher(ragCfg))
}

func TestBuilder_DuplicateShortCircuits(t *testing.T) {
	vectors := &fakeVectors{results: []database.SimilarClaim{
		{ClaimID: "claim-1", Text: "misma afirmación", Verdict: "debunked", Similarity: 0.97},
	}}
	searcher := &fakeSearcher{results: []websearch.Result{
		{Title: "nunca", URL: "https://lanacion.com.ar/x"},
	}}
	b := testBuilder(vectors, searcher)

	vc, err := b.Build(context.Background(), "una afirmación", []float32{0.1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "claim-1", vc.DuplicateOf)
	assert.Empty(t, vc.Evidence, "duplicates skip evidence gathering")
}

func TestBuilder_SimilarBelowThresholdKept(t *testing.T) {
	vectors := &fakeVectors{results: []database.SimilarClaim{
		{ClaimID: "claim-1", Text: "afirmación parecida", Verdict: "verified", Similarity: 0.82},
	}}
	b := testBuilder(vectors, &fakeSearcher{})

	vc, err := b.Build(context.Background(), "una afirmación", []float32{0.1}, nil)
	require.NoError(t, err)
	assert.Empty(t, vc.DuplicateOf)
	require.Len(t, vc.SimilarClaims, 1)
	assert.Equal(t, "verified", vc.SimilarClaims[0].Verdict)
}

func TestBuilder_NilEmbeddingSkipsVectorSearch(t *testing.T) {
	vectors := &fakeVectors{err: assert.AnError}
	b := testBuilder(vectors, &fakeSearcher{})

	vc, err := b.Build(context.Background(), "una afirmación", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, vc.SimilarClaims)
}

func TestBuilder_EvidenceOrderingAndFiltering(t *testing.T) {
	searcher := &fakeSearcher{results: []websearch.Result{
		{Title: "blog random", URL: "https://noticias-ya.com/nota"},
		{Title: "troll", URL: "https://granja-de-trolls.net/fake"},
		{Title: "diario", URL: "https://lanacion.com.ar/politica/nota"},
		{Title: "comunicado", URL: "https://www.argentina.gob.ar/noticias/x"},
	}}
	b := testBuilder(&fakeVectors{}, searcher)

	vc, err := b.Build(context.Background(), "una afirmación", nil, nil)
	require.NoError(t, err)

	require.Len(t, vc.Evidence, 3, "blacklisted source is dropped")
	assert.Equal(t, 1, vc.Evidence[0].Tier, "official source first")
	assert.Equal(t, 2, vc.Evidence[1].Tier)
	assert.Equal(t, 3, vc.Evidence[2].Tier)
}

func TestBuilder_EvidenceCappedAtMax(t *testing.T) {
	var results []websearch.Result
	for i := 0; i < 10; i++ {
		results = append(results, websearch.Result{
			Title: "nota", URL: "https://lanacion.com.ar/n", Snippet: "texto",
		})
	}
	b := testBuilder(&fakeVectors{}, &fakeSearcher{results: results})

	vc, err := b.Build(context.Background(), "una afirmación", nil, nil)
	require.NoError(t, err)
	assert.Len(t, vc.Evidence, 3)
}
