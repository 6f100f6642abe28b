// Package api serves the read-only HTTP surface: claims, stats,
// trending topics, queue introspection, and health.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/veraz-project/veraz/pkg/database"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/taskbus"
)

// Server holds the handler dependencies.
type Server struct {
	db            *database.Client
	claims        *services.ClaimService
	stats         *services.StatsService
	trending      *services.TrendingService
	notifications *services.NotificationService
	bus           *taskbus.Bus
	pool          *taskbus.WorkerPool
}

// NewServer creates a new API server
func NewServer(db *database.Client, claims *services.ClaimService, stats *services.StatsService, trending *services.TrendingService, notifications *services.NotificationService, bus *taskbus.Bus, pool *taskbus.WorkerPool) *Server {
	return &Server{
		db:            db,
		claims:        claims,
		stats:         stats,
		trending:      trending,
		notifications: notifications,
		bus:           bus,
		pool:          pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/claims", s.listClaims)
		v1.GET("/claims/search", s.searchClaims)
		v1.GET("/claims/:id", s.getClaim)
		v1.GET("/stats", s.getStats)
		v1.GET("/trending/topics", s.listTrendingTopics)
		v1.GET("/queue/dead-letters", s.listDeadLetters)
		v1.GET("/notifications", s.listNotifications)
		v1.POST("/notifications/:id/ack", s.ackNotification)
	}
	r.GET("/health", s.health)

	return r
}
