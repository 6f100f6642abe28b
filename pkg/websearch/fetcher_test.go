package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/config"
)

func testRAGConfig() *config.RAGConfig {
	return &config.RAGConfig{
		MaxSimilarClaims:   5,
		MaxEvidenceSources: 5,
		FetchBudget:        6,
		FetchTimeout:       3 * time.Second,
		EvidenceTextLimit:  2 * 1024,
		PerHostConcurrency: 2,
		CacheTTL:           time.Hour,
		CacheSize:          16,
	}
}

func TestExtractText(t *testing.T) {
	t.Run("keeps article text, drops boilerplate", func(t *testing.T) {
		html := `<html><body>
			<nav>Inicio | Política | Economía</nav>
			<article>
				<h1>El BCRA anunció nuevas medidas</h1>
				<p>El banco central confirmó la decisión este martes.</p>
				<script>trackPageview();</script>
			</article>
			<footer>Todos los derechos reservados</footer>
		</body></html>`

		text, err := ExtractText(strings.NewReader(html), 0)
		require.NoError(t, err)
		assert.Contains(t, text, "El BCRA anunció nuevas medidas")
		assert.Contains(t, text, "confirmó la decisión")
		assert.NotContains(t, text, "trackPageview")
		assert.NotContains(t, text, "derechos reservados")
	})

	t.Run("falls back to paragraphs without article tag", func(t *testing.T) {
		html := `<html><body><div><p>Primer párrafo.</p><p>Segundo párrafo.</p></div></body></html>`
		text, err := ExtractText(strings.NewReader(html), 0)
		require.NoError(t, err)
		assert.Contains(t, text, "Primer párrafo.")
		assert.Contains(t, text, "Segundo párrafo.")
	})

	t.Run("truncates to limit on word boundary", func(t *testing.T) {
		html := `<p>` + strings.Repeat("palabra ", 100) + `</p>`
		text, err := ExtractText(strings.NewReader(html), 50)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(text), 50)
		assert.False(t, strings.HasSuffix(text, " "))
	})
}

func TestFetcher_CachesByURL(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<article><p>Contenido de la nota.</p></article>`))
	}))
	defer server.Close()

	fetcher := NewFetcher(testRAGConfig())
	ctx := context.Background()

	first, err := fetcher.FetchText(ctx, server.URL+"/nota")
	require.NoError(t, err)
	assert.Contains(t, first, "Contenido de la nota.")

	second, err := fetcher.FetchText(ctx, server.URL+"/nota")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load(), "second fetch must be served from cache")
}

func TestFetcher_RejectsNonHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	fetcher := NewFetcher(testRAGConfig())
	_, err := fetcher.FetchText(context.Background(), server.URL+"/informe.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(testRAGConfig())
	_, err := fetcher.FetchText(context.Background(), server.URL+"/gone")
	assert.Error(t, err)
}
