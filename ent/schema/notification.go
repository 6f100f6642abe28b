package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for operator alerts
// (provider hard failures, scraper auth failures, dead-lettered tasks).
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("provider_failure", "scraper_auth", "dead_letter"),
		field.String("subject"),
		field.Text("body").
			Optional(),
		field.Bool("acknowledged").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("acknowledged", "created_at"),
	}
}
