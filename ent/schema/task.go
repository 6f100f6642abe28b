package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the durable task bus. Delivery is
// at-least-once: a running task whose heartbeat goes stale is re-offered.
// The unique-key dedup index is partial (status in pending/running) and is
// created via raw SQL in pkg/database since ent cannot express it.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("payload").
			Comment("JSON payload, preserved byte-for-byte"),
		field.String("unique_key").
			Optional().
			Nillable(),
		field.Int("priority").
			Default(0).
			Comment("Higher dequeues first within available tasks"),
		field.Int("attempt").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Enum("status").
			Values("pending", "running", "succeeded", "failed", "dead").
			Default("pending"),
		field.Time("enqueue_at").
			Default(time.Now).
			Immutable(),
		field.Time("available_at").
			Default(time.Now),
		field.String("claimed_by").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("Visibility timeout: stale heartbeat re-offers the task"),
		field.String("last_error").
			Optional().
			Nillable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "available_at"),
		index.Fields("name", "status"),
		index.Fields("status", "heartbeat_at"),
	}
}
