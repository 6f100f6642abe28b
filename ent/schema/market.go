package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Market holds the schema definition for a prediction market tied to a claim.
// Invariant: yes_prob + no_prob = 1.0 within 1e-9, maintained by MarketService.
type Market struct {
	ent.Schema
}

// Fields of the Market.
func (Market) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("market_id").
			Unique().
			Immutable(),
		field.String("slug").
			Unique(),
		field.Text("question"),
		field.String("category").
			Default("general"),
		field.Bool("high_stakes").
			Default(false).
			Comment("High-stakes categories get the stronger model for seeding"),
		field.Float("yes_prob").
			Default(0.5),
		field.Float("no_prob").
			Default(0.5),
		field.Float("volume").
			Default(0),
		field.Enum("status").
			Values("open", "resolved", "cancelled").
			Default("open"),
		field.String("claim_id").
			Optional().
			Nillable(),
		field.Time("closes_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Market.
func (Market) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claim", Claim.Type).
			Ref("markets").
			Field("claim_id").
			Unique(),
		edge.To("trades", Trade.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("prediction_factors", PredictionFactor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Market.
func (Market) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("category"),
	}
}
