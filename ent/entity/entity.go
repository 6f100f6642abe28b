// Code generated by ent, DO NOT EDIT.

package entity

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entity type in the database.
	Label = "entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_id"
	// FieldCanonicalName holds the string denoting the canonical_name field in the database.
	FieldCanonicalName = "canonical_name"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// EdgeClaims holds the string denoting the claims edge name in mutations.
	EdgeClaims = "claims"
	// ClaimFieldID holds the string denoting the ID field of the Claim.
	ClaimFieldID = "claim_id"
	// Table holds the table name of the entity in the database.
	Table = "entities"
	// ClaimsTable is the table that holds the claims relation/edge. The primary key declared below.
	ClaimsTable = "claim_entities"
	// ClaimsInverseTable is the table name for the Claim entity.
	// It exists in this package in order to avoid circular dependency with the "claim" package.
	ClaimsInverseTable = "claims"
)

// Columns holds all SQL columns for entity fields.
var Columns = []string{
	FieldID,
	FieldCanonicalName,
	FieldKind,
}

var (
	// ClaimsPrimaryKey and ClaimsColumn2 are the table columns denoting the
	// primary key for the claims relation (M2M).
	ClaimsPrimaryKey = []string{"claim_id", "entity_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindPerson       Kind = "person"
	KindInstitution  Kind = "institution"
	KindLocation     Kind = "location"
	KindOrganization Kind = "organization"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindPerson, KindInstitution, KindLocation, KindOrganization:
		return nil
	default:
		return fmt.Errorf("entity: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Entity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCanonicalName orders the results by the canonical_name field.
func ByCanonicalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalName, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByClaimsCount orders the results by claims count.
func ByClaimsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClaimsStep(), opts...)
	}
}

// ByClaims orders the results by claims terms.
func ByClaims(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClaimsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimsInverseTable, ClaimFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, ClaimsTable, ClaimsPrimaryKey...),
	)
}
