package taskbus

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/task"
	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/test/util"
)

// newTestBus wires a bus over a real Postgres schema. The policy retries
// once with zero backoff so exhaustion is reachable without sleeping.
func newTestBus(t *testing.T) (*Bus, *ent.Client, *Registry) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	client, _ := util.SetupTestDatabase(t)

	reg := NewRegistry()
	noop := func(ctx context.Context, t *ent.Task) error { return nil }
	reg.Register("process_source", noop, RetryPolicy{MaxAttempts: 2, Multiplier: 2.0})
	return NewBus(client, reg), client, reg
}

func TestBus_PayloadRoundTrip(t *testing.T) {
	bus, _, _ := newTestBus(t)
	ctx := context.Background()

	payload := []byte(`{"source_id":"src-1","texto":"la inflación fue del 11%, según el ñandú"}`)
	id, err := bus.Enqueue(ctx, "process_source", payload, EnqueueOptions{Priority: 4})
	require.NoError(t, err)

	claimed, err := bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	got := claimed[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "process_source", got.Name)
	assert.Equal(t, string(payload), got.Payload, "payload bytes survive the round trip")
	assert.Equal(t, 1, got.Attempt)
	assert.Equal(t, task.StatusRunning, got.Status)
}

func TestBus_UniqueKeyDedup(t *testing.T) {
	bus, client, _ := newTestBus(t)
	ctx := context.Background()

	first, err := bus.Enqueue(ctx, "process_source", []byte(`{}`), EnqueueOptions{UniqueKey: "source:src-1"})
	require.NoError(t, err)
	again, err := bus.Enqueue(ctx, "process_source", []byte(`{}`), EnqueueOptions{UniqueKey: "source:src-1"})
	require.NoError(t, err)
	assert.Equal(t, first, again, "an unfinished task with the same key wins")

	depth, err := bus.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	// The partial unique index backs the race path: two unfinished rows
	// with the same key cannot coexist even when inserted directly.
	_, err = client.Task.Create().
		SetID(uuid.New().String()).
		SetName("process_source").
		SetPayload(`{}`).
		SetUniqueKey("source:src-1").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// A finished task releases the key.
	claimed, err := bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	require.NoError(t, bus.Ack(ctx, claimed[0].ID))

	fresh, err := bus.Enqueue(ctx, "process_source", []byte(`{}`), EnqueueOptions{UniqueKey: "source:src-1"})
	require.NoError(t, err)
	assert.NotEqual(t, first, fresh)
}

func TestBus_DequeueClaimsOnceByPriority(t *testing.T) {
	bus, _, _ := newTestBus(t)
	ctx := context.Background()

	low, err := bus.Enqueue(ctx, "process_source", []byte(`{"n":1}`), EnqueueOptions{Priority: 1})
	require.NoError(t, err)
	high, err := bus.Enqueue(ctx, "process_source", []byte(`{"n":2}`), EnqueueOptions{Priority: 5})
	require.NoError(t, err)

	first, err := bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	assert.Equal(t, high, first[0].ID, "higher priority dequeues first")

	second, err := bus.Dequeue(ctx, "pod-worker-1", 1)
	require.NoError(t, err)
	assert.Equal(t, low, second[0].ID)

	_, err = bus.Dequeue(ctx, "pod-worker-2", 1)
	assert.ErrorIs(t, err, ErrNoTasksAvailable, "a claimed task is never offered twice")
}

func TestBus_NackRetriesThenDeadLetters(t *testing.T) {
	bus, client, _ := newTestBus(t)
	ctx := context.Background()

	id, err := bus.Enqueue(ctx, "process_source", []byte(`{}`), EnqueueOptions{})
	require.NoError(t, err)

	claimed, err := bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	require.NoError(t, bus.Nack(ctx, claimed[0].ID, "proveedor caído"))

	pending, err := client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, pending.Status)
	require.NotNil(t, pending.LastError)
	assert.Equal(t, "proveedor caído", *pending.LastError)

	// Second (and last) attempt.
	claimed, err = bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, claimed[0].Attempt)
	require.NoError(t, bus.Nack(ctx, claimed[0].ID, "proveedor sigue caído"))

	dead, err := client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDead, dead.Status)

	letters, err := bus.DeadLetters(ctx, 10)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, id, letters[0].ID)
}

func TestBus_HoldParksTask(t *testing.T) {
	bus, client, _ := newTestBus(t)
	ctx := context.Background()

	id, err := bus.Enqueue(ctx, "process_source", []byte(`{}`), EnqueueOptions{})
	require.NoError(t, err)

	claimed, err := bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	require.NoError(t, bus.Hold(ctx, claimed[0].ID, "clave de API inválida"))

	held, err := client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, held.Status)

	_, err = bus.Dequeue(ctx, "pod-worker-1", 1)
	assert.ErrorIs(t, err, ErrNoTasksAvailable, "held tasks are not re-offered")
}

func TestReaper_ReclaimsStaleHeartbeat(t *testing.T) {
	bus, client, reg := newTestBus(t)
	ctx := context.Background()

	cfg := &config.QueueConfig{
		WorkerCount:       1,
		MaxInFlight:       4,
		VisibilityTimeout: time.Minute,
		ReaperInterval:    time.Minute,
	}
	pool := NewWorkerPool("pod", client, bus, cfg, reg)

	id, err := bus.Enqueue(ctx, "process_source", []byte(`{}`), EnqueueOptions{})
	require.NoError(t, err)
	_, err = bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)

	// A fresh heartbeat keeps the task invisible.
	require.NoError(t, pool.reclaimStaleTasks(ctx))
	running, err := client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, running.Status)

	// A lapsed heartbeat re-offers it with the attempt preserved.
	require.NoError(t, client.Task.UpdateOneID(id).
		SetHeartbeatAt(time.Now().Add(-5*time.Minute)).
		Exec(ctx))
	require.NoError(t, pool.reclaimStaleTasks(ctx))

	reclaimed, err := client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, reclaimed.Status)
	assert.Equal(t, 1, reclaimed.Attempt)
	require.NotNil(t, reclaimed.LastError)
	assert.Contains(t, *reclaimed.LastError, "visibility timeout")

	// On the final attempt a stale task dead-letters instead.
	_, err = bus.Dequeue(ctx, "pod-worker-0", 1)
	require.NoError(t, err)
	require.NoError(t, client.Task.UpdateOneID(id).
		SetHeartbeatAt(time.Now().Add(-5*time.Minute)).
		Exec(ctx))
	require.NoError(t, pool.reclaimStaleTasks(ctx))

	dead, err := client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDead, dead.Status)
}
