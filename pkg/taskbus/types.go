// Package taskbus provides the durable task queue and its worker pool.
// Delivery is at-least-once; handlers must be idempotent keyed on the
// payload's primary id.
package taskbus

import (
	"context"
	"errors"
	"time"

	"github.com/veraz-project/veraz/ent"
)

// Sentinel errors for bus operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global in-flight limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrUnknownTask indicates a task name with no registered handler.
	ErrUnknownTask = errors.New("no handler registered for task")
)

// SkipError marks a task outcome that is terminal but not a failure
// (content-policy skip, duplicate source). The task is Acked, not retried.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return "skipped: " + e.Reason }

// Skip returns a SkipError with the given reason.
func Skip(reason string) error { return &SkipError{Reason: reason} }

// IsSkip reports whether err is a SkipError.
func IsSkip(err error) bool {
	var se *SkipError
	return errors.As(err, &se)
}

// HoldError marks a provider hard failure (auth, quota). The task is parked
// as failed for operator intervention instead of burning retry attempts.
type HoldError struct {
	Reason string
}

func (e *HoldError) Error() string { return "held for operator: " + e.Reason }

// Hold returns a HoldError with the given reason.
func Hold(reason string) error { return &HoldError{Reason: reason} }

// IsHold reports whether err is a HoldError.
func IsHold(err error) bool {
	var he *HoldError
	return errors.As(err, &he)
}

// Handler processes one task. The context carries the task deadline;
// cancellation must propagate to all spawned sub-operations.
type Handler func(ctx context.Context, task *ent.Task) error

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	RunningTasks   int            `json:"running_tasks"`
	MaxInFlight    int            `json:"max_in_flight"`
	QueueDepth     int            `json:"queue_depth"`
	DeadLetters    int            `json:"dead_letters"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastReaperScan time.Time      `json:"last_reaper_scan"`
	TasksReclaimed int            `json:"tasks_reclaimed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
