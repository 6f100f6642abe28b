package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/config"
)

func TestClient_EmbedRequestsConfiguredDimensions(t *testing.T) {
	var got embeddingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/embeddings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		// Honor the requested width, like the real endpoint does.
		resp := map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": make([]float32, got.Dimensions)},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(&config.LLMProviderConfig{
		Name:       "embedding",
		BaseURL:    srv.URL,
		Model:      "text-embedding-3-small",
		Timeout:    5 * time.Second,
		Dimensions: 768,
	})

	vecs, err := c.Embed(context.Background(), []string{"la inflación de marzo"})
	require.NoError(t, err)
	require.Len(t, vecs, 1)
	assert.Len(t, vecs[0], 768)
	assert.Equal(t, 768, got.Dimensions)
	assert.Equal(t, "text-embedding-3-small", got.Model)
}

func TestClient_EmbedOmitsDimensionsWhenUnset(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		resp := map[string]any{
			"data": []map[string]any{{"index": 0, "embedding": []float32{0.1}}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(&config.LLMProviderConfig{
		Name:    "embedding",
		BaseURL: srv.URL,
		Model:   "nomic-embed-text",
		Timeout: 5 * time.Second,
	})

	_, err := c.Embed(context.Background(), []string{"texto"})
	require.NoError(t, err)
	_, present := raw["dimensions"]
	assert.False(t, present, "native-width models get no dimensions override")
}
