package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trade holds the schema definition for a single market trade.
// Agent trades are attributed to the reserved system actor so leaderboards
// can filter them.
type Trade struct {
	ent.Schema
}

// Fields of the Trade.
func (Trade) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trade_id").
			Unique().
			Immutable(),
		field.String("market_id"),
		field.String("actor").
			Comment("User ID or the reserved system actor"),
		field.Enum("side").
			Values("yes", "no"),
		field.Float("size").
			Comment("Credits committed"),
		field.Float("price").
			Comment("yes_prob at execution time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Trade.
func (Trade) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("market", Market.Type).
			Ref("trades").
			Field("market_id").
			Unique().
			Required(),
	}
}

// Indexes of the Trade.
func (Trade) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("market_id", "created_at"),
		index.Fields("actor"),
	}
}
