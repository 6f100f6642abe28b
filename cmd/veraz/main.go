// Veraz worker — runs the fact-checking pipeline: scrapers, task queue
// workers, the leader-elected scheduler, and the read-only HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/veraz-project/veraz/pkg/api"
	"github.com/veraz-project/veraz/pkg/classify"
	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/database"
	"github.com/veraz-project/veraz/pkg/extractor"
	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/market"
	"github.com/veraz-project/veraz/pkg/pipeline"
	"github.com/veraz-project/veraz/pkg/ragctx"
	"github.com/veraz-project/veraz/pkg/scheduler"
	"github.com/veraz-project/veraz/pkg/scrape"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/taskbus"
	"github.com/veraz-project/veraz/pkg/trending"
	"github.com/veraz-project/veraz/pkg/verify"
	"github.com/veraz-project/veraz/pkg/websearch"
)

// searchRatePerMinute caps search provider calls across the process.
const searchRatePerMinute = 30

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting veraz",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	if err := services.SyncTaxonomy(ctx, dbClient.Client, cfg.Taxonomy); err != nil {
		slog.Error("Failed to sync topic taxonomy", "error", err)
		os.Exit(1)
	}

	// 3. One-time reclaim of tasks this pod abandoned in a previous life
	if err := taskbus.ReclaimStartupTasks(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to reclaim startup tasks", "error", err)
		// Non-fatal — the reaper sweeps them after the visibility timeout
	}

	// 4. LLM providers: primary→fallback completion pair, plus embeddings
	var provider llm.Provider = llm.NewClient(cfg.LLM.Primary)
	if cfg.LLM.Fallback != nil {
		provider = llm.NewFallbackProvider(provider, llm.NewClient(cfg.LLM.Fallback))
	}
	embedder := llm.NewClient(cfg.LLM.Embedding)

	// 5. Domain services
	sourceService := services.NewSourceService(dbClient.Client)
	claimService := services.NewClaimService(dbClient.Client)
	statsService := services.NewStatsService(dbClient.Client)
	marketService := services.NewMarketService(dbClient.Client)
	trendingService := services.NewTrendingService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Pipeline stages
	searcher := websearch.NewHTTPSearcher(cfg.RAG.SearchSiteTLD, searchRatePerMinute)
	fetcher := websearch.NewFetcher(cfg.RAG)
	builder := ragctx.NewBuilder(cfg.RAG, cfg.Credibility, dbClient, searcher, fetcher)
	claimExtractor := extractor.New(provider, cfg.LLM.Primary.Timeout)
	classifier := classify.New(provider, cfg.Taxonomy, cfg.LLM.Primary.Timeout)
	verifier := verify.NewOrchestrator(cfg.Verify,
		verify.NewCredibilityAgent(),
		verify.NewHistoricalAgent(),
		verify.NewConsistencyAgent(provider),
		verify.NewEvidenceAgent(provider),
	)

	adapters := buildAdapters(cfg.Scrapers)
	driver := scrape.NewDriver(dbClient.Client, cfg.Scrapers, adapters, notificationService)

	marketAgent := market.NewAgent(marketService, statsService, statsService,
		provider, cfg.LLM.Primary.StrongModel, searcher, cfg.Market)
	detector := trending.NewDetector(dbClient.Client, trendingService, cfg.Taxonomy, cfg.Trending)

	// 7. Task bus, handlers, worker pool
	registry := taskbus.NewRegistry()
	bus := taskbus.NewBus(dbClient.Client, registry)

	pipe := pipeline.New(pipeline.Deps{
		Config:     cfg,
		DB:         dbClient,
		Bus:        bus,
		Driver:     driver,
		Extractor:  claimExtractor,
		Builder:    builder,
		Verifier:   verifier,
		Classifier: classifier,
		Embedder:   embedder,
		Sources:    sourceService,
		Claims:     claimService,
		Markets:    marketService,
		Stats:      statsService,
		Agent:      marketAgent,
		Detector:   detector,
	})
	pipe.Register(registry)

	pool := taskbus.NewWorkerPool(podID, dbClient.Client, bus, cfg.Queue, registry)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Leader-elected scheduler
	lease := scheduler.NewLease(dbClient.Client, cfg.Scheduler.LeaseName, podID, cfg.Scheduler.LeaseTTL)
	sched, err := scheduler.New(bus, lease, cfg.Scheduler, scheduler.DefaultSchedules())
	if err != nil {
		slog.Error("Failed to build scheduler", "error", err)
		os.Exit(1)
	}
	sched.Start(ctx)

	// 9. HTTP server
	server := api.NewServer(dbClient, claimService, statsService, trendingService, notificationService, bus, pool)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Veraz started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop scheduling first, then drain workers,
	// then close the HTTP surface.
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Veraz shutdown complete")
}

// buildAdapters constructs the enabled platform adapters.
func buildAdapters(cfg *config.ScraperConfig) []scrape.Scraper {
	var adapters []scrape.Scraper
	if cfg.RSS.Enabled {
		adapters = append(adapters, scrape.NewRSSAdapter(&cfg.RSS))
	}
	if cfg.Social.Enabled {
		adapters = append(adapters, scrape.NewSocialAdapter(&cfg.Social))
	}
	if cfg.Video.Enabled {
		adapters = append(adapters, scrape.NewVideoAdapter(&cfg.Video))
	}
	if cfg.Forum.Enabled {
		adapters = append(adapters, scrape.NewForumAdapter(&cfg.Forum))
	}
	return adapters
}
