package taskbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/task"
)

// reaperState tracks reaper metrics (thread-safe).
type reaperState struct {
	mu        sync.Mutex
	lastScan  time.Time
	reclaimed int
}

// runReaper periodically re-offers running tasks whose heartbeat went stale
// (visibility timeout). All pods run this independently — the operation is
// idempotent.
func (p *WorkerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reclaimStaleTasks(ctx); err != nil {
				slog.Error("Task reaper scan failed", "error", err)
			}
		}
	}
}

// reclaimStaleTasks finds running tasks with stale heartbeats and either
// re-offers them (attempts remain) or dead-letters them.
func (p *WorkerPool) reclaimStaleTasks(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.VisibilityTimeout)

	stale, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.HeartbeatAtNotNil(),
			task.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale tasks: %w", err)
	}

	if len(stale) == 0 {
		p.reaper.mu.Lock()
		p.reaper.lastScan = time.Now()
		p.reaper.mu.Unlock()
		return nil
	}

	slog.Warn("Detected stale running tasks", "count", len(stale))

	reclaimed := 0
	for _, t := range stale {
		if err := p.reclaimTask(ctx, t); err != nil {
			slog.Error("Failed to reclaim stale task", "task_id", t.ID, "error", err)
			continue
		}
		reclaimed++
	}

	p.reaper.mu.Lock()
	p.reaper.lastScan = time.Now()
	p.reaper.reclaimed += reclaimed
	p.reaper.mu.Unlock()

	return nil
}

// reclaimTask re-offers one stale task, or dead-letters it when attempts
// are exhausted.
func (p *WorkerPool) reclaimTask(ctx context.Context, t *ent.Task) error {
	claimedBy := "unknown"
	if t.ClaimedBy != nil {
		claimedBy = *t.ClaimedBy
	}
	reason := fmt.Sprintf("visibility timeout: no heartbeat from %s", claimedBy)

	if t.Attempt >= t.MaxAttempts {
		err := t.Update().
			SetStatus(task.StatusDead).
			SetLastError(reason).
			ClearHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to dead-letter stale task: %w", err)
		}
		slog.Warn("Stale task dead-lettered", "task_id", t.ID, "name", t.Name)
		return nil
	}

	err := t.Update().
		SetStatus(task.StatusPending).
		SetAvailableAt(time.Now()).
		SetLastError(reason).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-offer stale task: %w", err)
	}
	slog.Info("Stale task re-offered", "task_id", t.ID, "name", t.Name, "claimed_by", claimedBy)
	return nil
}

// ReclaimStartupTasks re-offers running tasks claimed by this pod before a
// previous crash. Called once during startup, before workers begin polling.
func ReclaimStartupTasks(ctx context.Context, client *ent.Client, podID string) error {
	stale, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.ClaimedByHasPrefix(podID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup tasks: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Warn("Found tasks from previous run", "pod_id", podID, "count", len(stale))

	for _, t := range stale {
		err := t.Update().
			SetStatus(task.StatusPending).
			SetAvailableAt(time.Now()).
			SetLastError(fmt.Sprintf("pod %s restarted while task was running", podID)).
			ClearClaimedBy().
			ClearClaimedAt().
			ClearHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to re-offer startup task", "task_id", t.ID, "error", err)
			continue
		}
		slog.Info("Startup task re-offered", "task_id", t.ID, "name", t.Name)
	}

	return nil
}
