package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/veraz-project/veraz/ent"
)

func TestToClaimResponse(t *testing.T) {
	now := time.Now()
	cl := &ent.Claim{
		ID:               "claim-1",
		Text:             "la inflación de marzo fue del 11%",
		Verdict:          "verified",
		Explanation:      "Coincide con los datos del INDEC.",
		Confidence:       0.82,
		EvidenceStrength: "strong",
		ReviewPriority:   "none",
		CreatedAt:        now,
	}
	cl.Edges.Evidence = []*ent.Evidence{
		{URL: "https://indec.gob.ar/ipc", Domain: "indec.gob.ar", Relevance: 1.0, CredibilityTier: 1},
	}
	cl.Edges.Sources = []*ent.Source{
		{ID: "src-1", Platform: "news_rss", URL: "https://lanacion.com.ar/nota"},
	}
	cl.Edges.Entities = []*ent.Entity{
		{CanonicalName: "INDEC", Kind: "institution"},
	}
	cl.Edges.Topics = []*ent.Topic{
		{TaxonomySlug: "economia"},
	}

	resp := toClaimResponse(cl)
	assert.Equal(t, "claim-1", resp.ID)
	assert.Equal(t, "verified", resp.Verdict)
	assert.Len(t, resp.Evidence, 1)
	assert.Equal(t, 1, resp.Evidence[0].CredibilityTier)
	assert.Equal(t, "news_rss", resp.Sources[0].Platform)
	assert.Equal(t, []string{"economia"}, resp.Topics)
	assert.Equal(t, "INDEC", resp.Entities[0].Name)
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(rawQuery string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
		return c
	}

	assert.Equal(t, 20, queryInt(get(""), "limit", 20))
	assert.Equal(t, 5, queryInt(get("limit=5"), "limit", 20))
	assert.Equal(t, 20, queryInt(get("limit=abc"), "limit", 20))
	assert.Equal(t, 20, queryInt(get("limit=-3"), "limit", 20))
}
