package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/pkg/classify"
	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/ragctx"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/taskbus"
	"github.com/veraz-project/veraz/pkg/verify"
	"github.com/veraz-project/veraz/pkg/websearch"
)

// fakeSourceStore records lifecycle transitions for assertions.
type fakeSourceStore struct {
	skipped map[string]string
	failed  map[string]string
	err     error
}

func newFakeSourceStore() *fakeSourceStore {
	return &fakeSourceStore{skipped: map[string]string{}, failed: map[string]string{}}
}

func (f *fakeSourceStore) Get(ctx context.Context, sourceID string) (*ent.Source, error) {
	return nil, services.ErrNotFound
}

func (f *fakeSourceStore) MarkSkipped(ctx context.Context, sourceID, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.skipped[sourceID] = reason
	return nil
}

func (f *fakeSourceStore) MarkFailed(ctx context.Context, sourceID, errMsg string) error {
	if f.err != nil {
		return f.err
	}
	f.failed[sourceID] = errMsg
	return nil
}

func (f *fakeSourceStore) RetryCandidates(ctx context.Context, limit int) ([]*ent.Source, error) {
	return nil, nil
}

func (f *fakeSourceStore) ResetForRetry(ctx context.Context, sourceID string) error {
	return nil
}

func TestMarketQuestion(t *testing.T) {
	t.Run("wraps the claim as a yes/no question", func(t *testing.T) {
		q := marketQuestion("La inflación de marzo fue del 11%.")
		assert.Equal(t, "¿Se confirmará que La inflación de marzo fue del 11%?", q)
	})

	t.Run("long claims are truncated", func(t *testing.T) {
		long := ""
		for i := 0; i < 60; i++ {
			long += "palabra "
		}
		q := marketQuestion(long)
		assert.LessOrEqual(t, len([]rune(q)), 200)
	})
}

func TestNormalizeClaimText(t *testing.T) {
	a := normalizeClaimText("  La inflación de marzo fue del 11%. ")
	b := normalizeClaimText("la inflación  de marzo fue del 11%")
	assert.Equal(t, a, b)

	assert.NotEqual(t,
		normalizeClaimText("la inflación fue del 11%"),
		normalizeClaimText("la inflación fue del 12%"))
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "lanacion.com.ar", hostOf("https://www.lanacion.com.ar/politica/nota"))
	assert.Equal(t, "indec.gob.ar", hostOf("https://indec.gob.ar/ipc"))
	assert.Equal(t, "", hostOf("::not a url::"))
}

func TestBuildPersistRequest(t *testing.T) {
	src := &ent.Source{ID: "src-1", Content: "texto original del posteo"}
	vc := &ragctx.VerificationContext{
		Evidence: []ragctx.EvidenceItem{
			{URL: "https://www.indec.gob.ar/ipc", Title: "IPC", Snippet: "datos", Tier: 1, Rank: 0},
			{URL: "https://lanacion.com.ar/nota", Title: "Nota", Snippet: "cobertura", Tier: 2, Rank: 1},
		},
	}
	outcome := &verify.Outcome{
		Verdict:          verify.VerdictVerified,
		Confidence:       0.82,
		EvidenceStrength: verify.StrengthStrong,
		Explanation:      "Coincide con los datos oficiales del INDEC.",
	}
	classification := &classify.Result{
		Entities: []classify.Entity{{Name: "INDEC", Kind: "institution"}},
		Topics:   []classify.TopicAssignment{{Slug: "economia", Confidence: 0.9}},
	}

	req := buildPersistRequest(src, "la inflación de marzo fue del 11%", vc, outcome, classification)

	assert.Equal(t, "src-1", req.SourceID)
	assert.Equal(t, "texto original del posteo", req.OriginalText)
	assert.Equal(t, verify.VerdictVerified, req.Verdict)
	assert.Len(t, req.Evidence, 2)
	assert.Equal(t, "indec.gob.ar", req.Evidence[0].Domain)
	assert.Greater(t, req.Evidence[0].Relevance, req.Evidence[1].Relevance)
	assert.Equal(t, []string{"economia"}, req.TopicSlugs)
	assert.Equal(t, "INDEC", req.Entities[0].CanonicalName)
}

func TestPrimaryTopic(t *testing.T) {
	assert.Equal(t, "politica", primaryTopic(&classify.Result{}))
	assert.Equal(t, "economia", primaryTopic(&classify.Result{
		Topics: []classify.TopicAssignment{{Slug: "economia"}},
	}))
}

func TestProviderErr(t *testing.T) {
	t.Run("auth failure becomes a hold", func(t *testing.T) {
		err := providerErr("verification", &llm.ProviderError{Provider: "primary", StatusCode: 401})
		assert.True(t, taskbus.IsHold(err))
	})

	t.Run("search quota becomes a hold", func(t *testing.T) {
		err := providerErr("evidence gathering", &websearch.QuotaError{StatusCode: 402})
		assert.True(t, taskbus.IsHold(err))
	})

	t.Run("transient failure stays retryable", func(t *testing.T) {
		err := providerErr("extraction", errors.New("connection reset"))
		assert.False(t, taskbus.IsHold(err))
		assert.False(t, taskbus.IsSkip(err))
		assert.Contains(t, err.Error(), "extraction")
	})
}

func TestSkipSource(t *testing.T) {
	t.Run("marks the source before acking", func(t *testing.T) {
		store := newFakeSourceStore()
		p := New(Deps{Sources: store})

		err := p.skipSource(context.Background(), "src-1", "no verifiable claim")
		assert.True(t, taskbus.IsSkip(err))
		assert.Equal(t, "no verifiable claim", store.skipped["src-1"])
	})

	t.Run("a failed mark keeps the task retryable", func(t *testing.T) {
		store := newFakeSourceStore()
		store.err = errors.New("conexión perdida")
		p := New(Deps{Sources: store})

		err := p.skipSource(context.Background(), "src-1", "no verifiable claim")
		require.Error(t, err)
		assert.False(t, taskbus.IsSkip(err), "the source must not stay pending behind an acked task")
	})
}

func TestFailSource(t *testing.T) {
	t.Run("a hold fails the source immediately", func(t *testing.T) {
		store := newFakeSourceStore()
		p := New(Deps{Sources: store})
		task := &ent.Task{Attempt: 1, MaxAttempts: 3}

		cause := taskbus.Hold("clave de API inválida")
		err := p.failSource(task, "src-1", cause)
		assert.Equal(t, cause, err)
		assert.Contains(t, store.failed["src-1"], "clave de API inválida")
	})

	t.Run("the exhausted attempt fails the source", func(t *testing.T) {
		store := newFakeSourceStore()
		p := New(Deps{Sources: store})
		task := &ent.Task{Attempt: 3, MaxAttempts: 3}

		cause := errors.New("proveedor caído")
		err := p.failSource(task, "src-1", cause)
		assert.Equal(t, cause, err)
		assert.Equal(t, "proveedor caído", store.failed["src-1"])
	})

	t.Run("a mid-budget failure leaves the source pending", func(t *testing.T) {
		store := newFakeSourceStore()
		p := New(Deps{Sources: store})
		task := &ent.Task{Attempt: 1, MaxAttempts: 3}

		cause := errors.New("proveedor caído")
		err := p.failSource(task, "src-1", cause)
		assert.Equal(t, cause, err)
		assert.Empty(t, store.failed, "the bus will retry, the source is not done yet")
	})
}

func TestSourceFailureTerminal(t *testing.T) {
	mid := &ent.Task{Attempt: 1, MaxAttempts: 3}
	last := &ent.Task{Attempt: 3, MaxAttempts: 3}

	assert.False(t, sourceFailureTerminal(mid, nil))
	assert.False(t, sourceFailureTerminal(last, nil))
	assert.False(t, sourceFailureTerminal(last, taskbus.Skip("duplicado")))
	assert.False(t, sourceFailureTerminal(mid, errors.New("timeout")))
	assert.True(t, sourceFailureTerminal(last, errors.New("timeout")))
	assert.True(t, sourceFailureTerminal(mid, taskbus.Hold("cuota agotada")))
}
