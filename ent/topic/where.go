// Code generated by ent, DO NOT EDIT.

package topic

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Topic {
	return predicate.Topic(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Topic {
	return predicate.Topic(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldName, v))
}

// TaxonomySlug applies equality check predicate on the "taxonomy_slug" field. It's identical to TaxonomySlugEQ.
func TaxonomySlug(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldTaxonomySlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContainsFold(FieldName, v))
}

// TaxonomySlugEQ applies the EQ predicate on the "taxonomy_slug" field.
func TaxonomySlugEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldTaxonomySlug, v))
}

// TaxonomySlugNEQ applies the NEQ predicate on the "taxonomy_slug" field.
func TaxonomySlugNEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldTaxonomySlug, v))
}

// TaxonomySlugIn applies the In predicate on the "taxonomy_slug" field.
func TaxonomySlugIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldTaxonomySlug, vs...))
}

// TaxonomySlugNotIn applies the NotIn predicate on the "taxonomy_slug" field.
func TaxonomySlugNotIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldTaxonomySlug, vs...))
}

// TaxonomySlugGT applies the GT predicate on the "taxonomy_slug" field.
func TaxonomySlugGT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldTaxonomySlug, v))
}

// TaxonomySlugGTE applies the GTE predicate on the "taxonomy_slug" field.
func TaxonomySlugGTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldTaxonomySlug, v))
}

// TaxonomySlugLT applies the LT predicate on the "taxonomy_slug" field.
func TaxonomySlugLT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldTaxonomySlug, v))
}

// TaxonomySlugLTE applies the LTE predicate on the "taxonomy_slug" field.
func TaxonomySlugLTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldTaxonomySlug, v))
}

// TaxonomySlugContains applies the Contains predicate on the "taxonomy_slug" field.
func TaxonomySlugContains(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContains(FieldTaxonomySlug, v))
}

// TaxonomySlugHasPrefix applies the HasPrefix predicate on the "taxonomy_slug" field.
func TaxonomySlugHasPrefix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasPrefix(FieldTaxonomySlug, v))
}

// TaxonomySlugHasSuffix applies the HasSuffix predicate on the "taxonomy_slug" field.
func TaxonomySlugHasSuffix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasSuffix(FieldTaxonomySlug, v))
}

// TaxonomySlugEqualFold applies the EqualFold predicate on the "taxonomy_slug" field.
func TaxonomySlugEqualFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEqualFold(FieldTaxonomySlug, v))
}

// TaxonomySlugContainsFold applies the ContainsFold predicate on the "taxonomy_slug" field.
func TaxonomySlugContainsFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContainsFold(FieldTaxonomySlug, v))
}

// HasClaims applies the HasEdge predicate on the "claims" edge.
func HasClaims() predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, ClaimsTable, ClaimsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimsWith applies the HasEdge predicate on the "claims" edge with a given conditions (other predicates).
func HasClaimsWith(preds ...predicate.Claim) predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := newClaimsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.NotPredicates(p))
}
