package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Claim holds the schema definition for a verified factual claim.
// Claims are immutable after insert except the review flags; the embedding
// column (pgvector) is managed by raw SQL in pkg/database.
type Claim struct {
	ent.Schema
}

// Fields of the Claim.
func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("claim_id").
			Unique().
			Immutable(),
		field.Text("text").
			Comment("Normalized factual claim in neutral formal Spanish (full-text searchable)"),
		field.Text("original_text").
			Comment("Raw source content the claim was extracted from"),
		field.Enum("verdict").
			Values("verified", "debunked", "misleading", "unverified"),
		field.String("explanation").
			MaxLen(280),
		field.Float("confidence").
			Comment("0..1 calibrated confidence"),
		field.Enum("evidence_strength").
			Values("strong", "moderate", "weak", "insufficient"),
		field.Bool("needs_review").
			Default(false),
		field.Enum("review_priority").
			Values("high", "medium", "low", "none").
			Default("none"),
		field.Bool("has_embedding").
			Default(false).
			Comment("Set by the embedding task once the vector column is populated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Claim.
func (Claim) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sources", Source.Type),
		edge.To("evidence", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("entities", Entity.Type),
		edge.To("topics", Topic.Type),
		edge.To("markets", Market.Type),
	}
}

// Indexes of the Claim.
func (Claim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("verdict"),
		index.Fields("verdict", "created_at"),
		index.Fields("needs_review").
			Annotations(entsql.IndexWhere("needs_review")),
	}
}
