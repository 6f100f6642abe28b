package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for a fetched external document
// supporting or refuting a claim. Rows live and die with their claim.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("claim_id"),
		field.String("url"),
		field.String("domain"),
		field.String("title").
			Optional(),
		field.Text("snippet").
			Optional(),
		field.Time("fetched_at").
			Default(time.Now),
		field.Float("relevance").
			Comment("0..1"),
		field.Int("credibility_tier").
			Min(1).
			Max(4).
			Comment("1 official, 2 vetted press, 3 other press, 4 unknown"),
		field.Int("position").
			Comment("Stable order: (credibility_tier asc, relevance desc) at insert time"),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claim", Claim.Type).
			Ref("evidence").
			Field("claim_id").
			Unique().
			Required(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id", "position"),
		index.Fields("domain"),
	}
}
