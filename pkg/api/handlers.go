package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/pkg/database"
	"github.com/veraz-project/veraz/pkg/services"
)

// listClaims handles GET /api/v1/claims.
func (s *Server) listClaims(c *gin.Context) {
	opts := services.ListOptions{
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", 20),
	}
	if v := c.Query("verdict"); v != "" {
		if err := claim.VerdictValidator(claim.Verdict(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verdict: " + v})
			return
		}
		opts.Verdict = v
	}
	if v := c.Query("needs_review"); v == "true" {
		opts.NeedsReview = true
	}

	claims, total, err := s.claims.List(c.Request.Context(), opts)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	resp := ListClaimsResponse{
		Claims: make([]ClaimResponse, 0, len(claims)),
		Total:  total,
		Skip:   opts.Skip,
		Limit:  opts.Limit,
	}
	for _, cl := range claims {
		resp.Claims = append(resp.Claims, toClaimResponse(cl))
	}
	c.JSON(http.StatusOK, resp)
}

// getClaim handles GET /api/v1/claims/:id.
func (s *Server) getClaim(c *gin.Context) {
	cl, err := s.claims.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClaimResponse(cl))
}

// searchClaims handles GET /api/v1/claims/search?query=.
func (s *Server) searchClaims(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	limit := queryInt(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	matches, err := s.db.SearchClaimsByText(c.Request.Context(), query, limit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": matches})
}

// getStats handles GET /api/v1/stats.
func (s *Server) getStats(c *gin.Context) {
	snap, err := s.stats.GetSnapshot(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// listTrendingTopics handles GET /api/v1/trending/topics.
func (s *Server) listTrendingTopics(c *gin.Context) {
	topics, err := s.trending.Current(c.Request.Context(), queryInt(c, "limit", 20))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// listDeadLetters handles GET /api/v1/queue/dead-letters.
func (s *Server) listDeadLetters(c *gin.Context) {
	tasks, err := s.bus.DeadLetters(c.Request.Context(), queryInt(c, "limit", 50))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// listNotifications handles GET /api/v1/notifications.
func (s *Server) listNotifications(c *gin.Context) {
	notes, err := s.notifications.Unacknowledged(c.Request.Context(), queryInt(c, "limit", 50))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notes})
}

// ackNotification handles POST /api/v1/notifications/:id/ack.
func (s *Server) ackNotification(c *gin.Context) {
	if err := s.notifications.Acknowledge(c.Request.Context(), c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// health handles GET /health: database reachability plus worker pool state.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	poolHealth := s.pool.Health()

	status := http.StatusOK
	overall := "healthy"
	if err != nil || !poolHealth.IsHealthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	body := gin.H{
		"status":   overall,
		"database": dbHealth,
		"pool":     poolHealth,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
