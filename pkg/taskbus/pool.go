package taskbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/task"
	"github.com/veraz-project/veraz/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the stale-task reaper.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	bus      *Bus
	config   *config.QueueConfig
	registry *Registry
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Reaper state
	reaper reaperState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, bus *Bus, cfg *config.QueueConfig, registry *Registry) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		bus:      bus,
		config:   cfg,
		registry: registry,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns worker goroutines and the reaper background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.bus, p.config, p.registry)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current tasks before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	running, errR := p.client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running tasks for health check",
			"pod_id", p.podID, "error", errR)
	}

	dead, errD := p.client.Task.Query().
		Where(task.StatusEQ(task.StatusDead)).
		Count(ctx)
	if errD != nil {
		slog.Error("Failed to query dead letters for health check",
			"pod_id", p.podID, "error", errD)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil && errD == nil
	isHealthy := len(p.workers) > 0 && running <= p.config.MaxInFlight && dbHealthy

	p.reaper.mu.Lock()
	lastReaperScan := p.reaper.lastScan
	tasksReclaimed := p.reaper.reclaimed
	p.reaper.mu.Unlock()

	var dbError string
	if !dbHealthy {
		switch {
		case errQ != nil:
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		case errR != nil:
			dbError = fmt.Sprintf("running tasks query failed: %v", errR)
		case errD != nil:
			dbError = fmt.Sprintf("dead letters query failed: %v", errD)
		}
	}

	return &PoolHealth{
		IsHealthy:      isHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		PodID:          p.podID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		RunningTasks:   running,
		MaxInFlight:    p.config.MaxInFlight,
		QueueDepth:     queueDepth,
		DeadLetters:    dead,
		WorkerStats:    workerStats,
		LastReaperScan: lastReaperScan,
		TasksReclaimed: tasksReclaimed,
	}
}
