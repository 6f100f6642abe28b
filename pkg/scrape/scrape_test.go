package scrape

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/config"
)

func TestTruncateContent(t *testing.T) {
	t.Run("short content unchanged", func(t *testing.T) {
		assert.Equal(t, "hola", TruncateContent("hola"))
	})

	t.Run("long content capped", func(t *testing.T) {
		long := strings.Repeat("a", MaxContentBytes+100)
		got := TruncateContent(long)
		assert.Len(t, got, MaxContentBytes)
	})

	t.Run("never splits a multibyte rune", func(t *testing.T) {
		// 'ó' is two bytes; build content so the cap lands mid-rune.
		long := strings.Repeat("a", MaxContentBytes-1) + "óóó"
		got := TruncateContent(long)
		assert.LessOrEqual(t, len(got), MaxContentBytes)
		for _, r := range got {
			assert.NotEqual(t, '�', r)
		}
	})
}

func TestMatchesKeywords(t *testing.T) {
	keywords := []string{"inflación", "BCRA"}

	assert.True(t, matchesKeywords("La inflación subió otra vez", keywords))
	assert.True(t, matchesKeywords("el bcra intervino", keywords), "match is case-insensitive")
	assert.False(t, matchesKeywords("Resultados del partido de anoche", keywords))
	assert.True(t, matchesKeywords("cualquier cosa", nil), "empty keyword list matches all")
}

func TestHTTPAdapter_Fetch(t *testing.T) {
	published := time.Now().Add(-10 * time.Minute)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.URL.Query().Get("since"))

		_ = json.NewEncoder(w).Encode(apiResponse{Posts: []apiPost{
			{ID: "p1", Author: "@cuenta", Text: "el gobierno anunció", PublishedAt: &published},
			{ID: "p1", Author: "@cuenta", Text: "duplicado"},
			{ID: "p2", Author: "@otra", Text: "otra noticia"},
		}})
	}))
	defer server.Close()

	adapter := NewSocialAdapter(&config.AdapterConfig{
		Enabled:  true,
		Endpoint: server.URL,
	})

	items, err := adapter.Fetch(context.Background(), []string{"gobierno"}, time.Hour)
	require.NoError(t, err)
	require.Len(t, items, 2, "duplicate post ids are merged")
	assert.Equal(t, "social_short", items[0].Platform)
	assert.Equal(t, "p1", items[0].ExternalID)
}

func TestHTTPAdapter_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := NewForumAdapter(&config.AdapterConfig{Enabled: true, Endpoint: server.URL})

	_, err := adapter.Fetch(context.Background(), []string{"elecciones"}, time.Hour)
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "forum", authErr.Platform)
}
