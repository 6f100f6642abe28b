package taskbus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/task"
)

// Bus is the durable FIFO task queue backed by the tasks table.
// At-least-once: a dequeued task that is never Acked reappears after the
// visibility timeout (see reaper.go).
type Bus struct {
	client   *ent.Client
	registry *Registry
}

// NewBus creates a bus over the given ent client. registry supplies the
// per-kind retry policies applied on Nack.
func NewBus(client *ent.Client, registry *Registry) *Bus {
	return &Bus{client: client, registry: registry}
}

// EnqueueOptions tune a single enqueue.
type EnqueueOptions struct {
	// Delay postpones availability.
	Delay time.Duration
	// UniqueKey deduplicates: if an unfinished task with the same key
	// exists, Enqueue is a no-op returning its id.
	UniqueKey string
	// Priority: higher dequeues first among available tasks.
	Priority int
}

// Enqueue adds a task to the queue and returns its id. Payload bytes are
// preserved verbatim through Dequeue.
func (b *Bus) Enqueue(ctx context.Context, name string, payload []byte, opts EnqueueOptions) (string, error) {
	if opts.UniqueKey != "" {
		existing, err := b.client.Task.Query().
			Where(
				task.UniqueKeyEQ(opts.UniqueKey),
				task.StatusIn(task.StatusPending, task.StatusRunning),
			).
			Only(ctx)
		if err == nil {
			return existing.ID, nil
		}
		if !ent.IsNotFound(err) {
			return "", fmt.Errorf("failed to check unique key: %w", err)
		}
	}

	policy := b.registry.Policy(name)
	now := time.Now()
	builder := b.client.Task.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetPayload(string(payload)).
		SetPriority(opts.Priority).
		SetMaxAttempts(policy.MaxAttempts).
		SetEnqueueAt(now).
		SetAvailableAt(now.Add(opts.Delay))
	if opts.UniqueKey != "" {
		builder.SetUniqueKey(opts.UniqueKey)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// Concurrent enqueue with the same unique key: the partial unique
		// index rejected us. Return the winner's id.
		if opts.UniqueKey != "" && ent.IsConstraintError(err) {
			existing, qerr := b.client.Task.Query().
				Where(
					task.UniqueKeyEQ(opts.UniqueKey),
					task.StatusIn(task.StatusPending, task.StatusRunning),
				).
				Only(ctx)
			if qerr == nil {
				return existing.ID, nil
			}
		}
		return "", fmt.Errorf("failed to enqueue task %s: %w", name, err)
	}
	return created.ID, nil
}

// Dequeue atomically claims up to max available tasks for workerID using
// FOR UPDATE SKIP LOCKED and hides them behind the visibility timeout.
// Ordering is priority desc, then FIFO by availability.
func (b *Bus) Dequeue(ctx context.Context, workerID string, max int) ([]*ent.Task, error) {
	tx, err := b.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	candidates, err := tx.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.AvailableAtLTE(now),
		).
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldAvailableAt), ent.Asc(task.FieldEnqueueAt)).
		Limit(max).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoTasksAvailable
	}

	claimed := make([]*ent.Task, 0, len(candidates))
	for _, t := range candidates {
		updated, err := t.Update().
			SetStatus(task.StatusRunning).
			SetAttempt(t.Attempt + 1).
			SetClaimedBy(workerID).
			SetClaimedAt(now).
			SetHeartbeatAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task %s: %w", t.ID, err)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Ack finalizes a task as succeeded.
func (b *Bus) Ack(ctx context.Context, taskID string) error {
	err := b.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusSucceeded).
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ack task %s: %w", taskID, err)
	}
	return nil
}

// Heartbeat renews the visibility of a running task.
func (b *Bus) Heartbeat(ctx context.Context, taskID string) error {
	return b.client.Task.UpdateOneID(taskID).
		SetHeartbeatAt(time.Now()).
		Exec(ctx)
}

// Nack records a failure and reschedules per the task kind's retry policy.
// When attempts are exhausted the task moves to the dead-letter stream.
func (b *Bus) Nack(ctx context.Context, taskID string, reason string) error {
	t, err := b.client.Task.Get(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to load task %s: %w", taskID, err)
	}

	policy := b.registry.Policy(t.Name)
	if t.Attempt >= t.MaxAttempts {
		return b.deadLetter(ctx, t, reason)
	}

	backoff := policy.Backoff(t.Attempt)
	err = t.Update().
		SetStatus(task.StatusPending).
		SetAvailableAt(time.Now().Add(backoff)).
		SetLastError(reason).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to nack task %s: %w", taskID, err)
	}
	slog.Info("Task rescheduled",
		"task_id", t.ID, "name", t.Name, "attempt", t.Attempt, "backoff", backoff)
	return nil
}

// Hold parks a task as failed for operator intervention (provider hard
// failure). It does not count against the retry budget and is not re-offered.
func (b *Bus) Hold(ctx context.Context, taskID string, reason string) error {
	err := b.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusFailed).
		SetLastError(reason).
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to hold task %s: %w", taskID, err)
	}
	return nil
}

// deadLetter moves an exhausted task to the dead stream.
func (b *Bus) deadLetter(ctx context.Context, t *ent.Task, reason string) error {
	err := t.Update().
		SetStatus(task.StatusDead).
		SetLastError(reason).
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to dead-letter task %s: %w", t.ID, err)
	}
	slog.Warn("Task dead-lettered",
		"task_id", t.ID, "name", t.Name, "attempts", t.Attempt, "reason", reason)
	return nil
}

// LatestByKeyPrefix returns the most recently enqueued task whose unique
// key starts with prefix, regardless of status, or nil when none exists.
func (b *Bus) LatestByKeyPrefix(ctx context.Context, prefix string) (*ent.Task, error) {
	t, err := b.client.Task.Query().
		Where(task.UniqueKeyHasPrefix(prefix)).
		Order(ent.Desc(task.FieldEnqueueAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query tasks by key prefix: %w", err)
	}
	return t, nil
}

// QueueDepth returns the number of tasks waiting for a worker.
func (b *Bus) QueueDepth(ctx context.Context) (int, error) {
	return b.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Count(ctx)
}

// DeadLetters returns the dead-letter stream, newest first, for operators.
func (b *Bus) DeadLetters(ctx context.Context, limit int) ([]*ent.Task, error) {
	return b.client.Task.Query().
		Where(task.StatusEQ(task.StatusDead)).
		Order(ent.Desc(task.FieldEnqueueAt)).
		Limit(limit).
		All(ctx)
}
