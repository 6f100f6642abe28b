package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Entity holds the schema definition for a canonicalized named entity
// shared across claims.
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("canonical_name").
			Unique(),
		field.Enum("kind").
			Values("person", "institution", "location", "organization"),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claims", Claim.Type).
			Ref("entities"),
	}
}
