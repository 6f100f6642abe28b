package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SchedulerLease holds the schema definition for the scheduler leader lease.
// One row per lease name; the holder renews expires_at while alive.
type SchedulerLease struct {
	ent.Schema
}

// Fields of the SchedulerLease.
func (SchedulerLease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lease_name").
			Unique().
			Immutable(),
		field.String("holder"),
		field.Time("expires_at"),
	}
}
