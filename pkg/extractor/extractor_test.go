package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/llm"
)

type fakeProvider struct {
	response string
	err      error
	lastReq  llm.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func (f *fakeProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("not implemented")
}

func TestExtractor_Extract(t *testing.T) {
	t.Run("returns the claim verbatim", func(t *testing.T) {
		provider := &fakeProvider{response: "El ministro anunció un aumento del 40% en jubilaciones."}
		e := New(provider, 20*time.Second)

		claim, err := e.Extract(context.Background(), "URGENTE!!! el ministro dijo...")
		require.NoError(t, err)
		assert.Equal(t, "El ministro anunció un aumento del 40% en jubilaciones.", claim)
	})

	t.Run("skip sentinel maps to ErrNoClaim", func(t *testing.T) {
		provider := &fakeProvider{response: "SKIP"}
		e := New(provider, 20*time.Second)

		_, err := e.Extract(context.Background(), "jajaja qué buen meme")
		assert.ErrorIs(t, err, ErrNoClaim)
	})

	t.Run("skip is case-insensitive", func(t *testing.T) {
		provider := &fakeProvider{response: "skip"}
		e := New(provider, 20*time.Second)

		_, err := e.Extract(context.Background(), "opinión pura")
		assert.ErrorIs(t, err, ErrNoClaim)
	})

	t.Run("empty content short-circuits without a provider call", func(t *testing.T) {
		provider := &fakeProvider{response: "never"}
		e := New(provider, 20*time.Second)

		_, err := e.Extract(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrNoClaim)
		assert.Empty(t, provider.lastReq.User)
	})

	t.Run("surrounding quotes are stripped", func(t *testing.T) {
		provider := &fakeProvider{response: `"La inflación de marzo fue del 11%."`}
		e := New(provider, 20*time.Second)

		claim, err := e.Extract(context.Background(), "texto")
		require.NoError(t, err)
		assert.Equal(t, "La inflación de marzo fue del 11%.", claim)
	})

	t.Run("overlong claims are truncated", func(t *testing.T) {
		provider := &fakeProvider{response: strings.Repeat("á", 600)}
		e := New(provider, 20*time.Second)

		claim, err := e.Extract(context.Background(), "texto")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(claim), MaxClaimLength)
	})

	t.Run("provider errors propagate", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("connection reset")}
		e := New(provider, 20*time.Second)

		_, err := e.Extract(context.Background(), "texto")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoClaim)
	})

	t.Run("runs at low temperature", func(t *testing.T) {
		provider := &fakeProvider{response: "Una afirmación."}
		e := New(provider, 20*time.Second)

		_, err := e.Extract(context.Background(), "texto")
		require.NoError(t, err)
		require.NotNil(t, provider.lastReq.Temperature)
		assert.LessOrEqual(t, *provider.lastReq.Temperature, 0.3)
	})
}
