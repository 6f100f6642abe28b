package taskbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/task"
	"github.com/veraz-project/veraz/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	bus      *Bus
	config   *config.QueueConfig
	registry *Registry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, bus *Bus, cfg *config.QueueConfig, registry *Registry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		bus:          bus,
		config:       cfg,
		registry:     registry,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	runningCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running tasks: %w", err)
	}
	if runningCount >= w.config.MaxInFlight {
		return ErrAtCapacity
	}

	tasks, err := w.bus.Dequeue(ctx, w.id, 1)
	if err != nil {
		return err
	}
	t := tasks[0]

	log := slog.With("task_id", t.ID, "task_name", t.Name, "worker_id", w.id)
	log.Info("Task claimed", "attempt", t.Attempt)

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Task context with deadline; cancellation propagates to all spawned
	// sub-operations (sub-agents, evidence fetches).
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, t.ID)

	handler, ok := w.registry.Handler(t.Name)
	var execErr error
	if !ok {
		execErr = fmt.Errorf("%w: %s", ErrUnknownTask, t.Name)
	} else {
		execErr = handler(taskCtx, t)
	}

	cancelHeartbeat()

	// Terminal status update uses a background context — the task context
	// may already be cancelled.
	finishCtx, cancelFinish := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelFinish()

	switch {
	case execErr == nil:
		if err := w.bus.Ack(finishCtx, t.ID); err != nil {
			log.Error("Failed to ack task", "error", err)
			return err
		}
	case IsSkip(execErr):
		// Terminal non-error outcome: finalize without retry.
		log.Info("Task skipped", "reason", execErr.Error())
		if err := w.bus.Ack(finishCtx, t.ID); err != nil {
			log.Error("Failed to ack skipped task", "error", err)
			return err
		}
	case IsHold(execErr):
		log.Warn("Task held for operator", "reason", execErr.Error())
		if err := w.bus.Hold(finishCtx, t.ID, execErr.Error()); err != nil {
			log.Error("Failed to hold task", "error", err)
			return err
		}
	default:
		reason := execErr.Error()
		if errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
			reason = fmt.Sprintf("deadline exceeded after %v: %s", w.config.TaskTimeout, reason)
		}
		if err := w.bus.Nack(finishCtx, t.ID, reason); err != nil {
			log.Error("Failed to nack task", "error", err)
			return err
		}
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "success", execErr == nil)
	return nil
}

// runHeartbeat periodically renews the task's visibility.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.bus.Heartbeat(ctx, taskID); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
