package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StatCounter holds the schema definition for an incrementally maintained
// aggregate count (total claims, per-verdict counts, rolling-window metrics
// written by the 5-minute rollup task).
type StatCounter struct {
	ent.Schema
}

// Fields of the StatCounter.
func (StatCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("counter_name").
			Unique().
			Immutable(),
		field.Int64("value").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
