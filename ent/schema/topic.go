package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Topic holds the schema definition for a taxonomy topic. The taxonomy is
// fixed and loaded at startup; rows are upserted from the YAML file.
type Topic struct {
	ent.Schema
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("topic_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("taxonomy_slug").
			Unique(),
	}
}

// Edges of the Topic.
func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claims", Claim.Type).
			Ref("topics"),
	}
}
