package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for a scraped content item.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.Enum("platform").
			Values("social_short", "news_rss", "video", "forum", "web"),
		field.String("external_id").
			Comment("Platform-native identifier, unique per platform"),
		field.String("author").
			Optional(),
		field.String("url").
			Optional(),
		field.Text("content").
			Comment("Primary text to fact-check, truncated at 8 KiB on insert"),
		field.Time("captured_at").
			Default(time.Now).
			Comment("Ingestion time; publication time is published_at"),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Int64("likes").Optional().Nillable(),
		field.Int64("shares").Optional().Nillable(),
		field.Int64("comments").Optional().Nillable(),
		field.Int64("views").Optional().Nillable(),
		field.Enum("state").
			Values("pending", "processed", "skipped", "failed").
			Default("pending"),
		field.String("skip_reason").
			Optional().
			Nillable(),
		field.Int("failure_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("claim_id").
			Optional().
			Nillable().
			Comment("Resolved claim after processing (many sources may share one)"),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claim", Claim.Type).
			Ref("sources").
			Field("claim_id").
			Unique(),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "external_id").
			Unique(),
		index.Fields("state"),
		index.Fields("captured_at"),
		index.Fields("state", "captured_at"),
		// Failed sources eligible for retry scan
		index.Fields("state", "failure_count").
			Annotations(entsql.IndexWhere("state = 'failed'")),
	}
}
