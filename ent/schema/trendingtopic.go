package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrendingTopic holds the schema definition for one row of a trending
// snapshot. Each detector run replaces the previous snapshot atomically.
type TrendingTopic struct {
	ent.Schema
}

// Fields of the TrendingTopic.
func (TrendingTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trending_id").
			Unique().
			Immutable(),
		field.String("snapshot_id").
			Comment("All rows of one detector run share a snapshot_id"),
		field.String("name"),
		field.JSON("keywords", []string{}),
		field.Float("trend_score"),
		field.Float("velocity"),
		field.Float("correlation"),
		field.Float("relevance"),
		field.Float("risk"),
		field.Float("priority"),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TrendingTopic.
func (TrendingTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("snapshot_id"),
		index.Fields("snapshot_id", "priority"),
	}
}
