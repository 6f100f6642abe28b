package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictionFactor holds the schema definition for an agent assessment of a
// market. Append-only per market; the latest row wins.
type PredictionFactor struct {
	ent.Schema
}

// Fields of the PredictionFactor.
func (PredictionFactor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("factor_id").
			Unique().
			Immutable(),
		field.String("market_id"),
		field.Float("assessed_prob"),
		field.Float("confidence"),
		field.Text("reasoning"),
		field.JSON("data_sources", map[string]interface{}{}).
			Optional().
			Comment("Sentiment/news aggregate inputs"),
		field.String("agent_version"),
		field.Time("computed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PredictionFactor.
func (PredictionFactor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("market", Market.Type).
			Ref("prediction_factors").
			Field("market_id").
			Unique().
			Required(),
	}
}

// Indexes of the PredictionFactor.
func (PredictionFactor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("market_id", "computed_at"),
	}
}
