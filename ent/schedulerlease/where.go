// Code generated by ent, DO NOT EDIT.

package schedulerlease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldContainsFold(FieldID, id))
}

// Holder applies equality check predicate on the "holder" field. It's identical to HolderEQ.
func Holder(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEQ(FieldHolder, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEQ(FieldExpiresAt, v))
}

// HolderEQ applies the EQ predicate on the "holder" field.
func HolderEQ(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEQ(FieldHolder, v))
}

// HolderNEQ applies the NEQ predicate on the "holder" field.
func HolderNEQ(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldNEQ(FieldHolder, v))
}

// HolderIn applies the In predicate on the "holder" field.
func HolderIn(vs ...string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldIn(FieldHolder, vs...))
}

// HolderNotIn applies the NotIn predicate on the "holder" field.
func HolderNotIn(vs ...string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldNotIn(FieldHolder, vs...))
}

// HolderGT applies the GT predicate on the "holder" field.
func HolderGT(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldGT(FieldHolder, v))
}

// HolderGTE applies the GTE predicate on the "holder" field.
func HolderGTE(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldGTE(FieldHolder, v))
}

// HolderLT applies the LT predicate on the "holder" field.
func HolderLT(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldLT(FieldHolder, v))
}

// HolderLTE applies the LTE predicate on the "holder" field.
func HolderLTE(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldLTE(FieldHolder, v))
}

// HolderContains applies the Contains predicate on the "holder" field.
func HolderContains(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldContains(FieldHolder, v))
}

// HolderHasPrefix applies the HasPrefix predicate on the "holder" field.
func HolderHasPrefix(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldHasPrefix(FieldHolder, v))
}

// HolderHasSuffix applies the HasSuffix predicate on the "holder" field.
func HolderHasSuffix(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldHasSuffix(FieldHolder, v))
}

// HolderEqualFold applies the EqualFold predicate on the "holder" field.
func HolderEqualFold(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEqualFold(FieldHolder, v))
}

// HolderContainsFold applies the ContainsFold predicate on the "holder" field.
func HolderContainsFold(v string) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldContainsFold(FieldHolder, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchedulerLease) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchedulerLease) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchedulerLease) predicate.SchedulerLease {
	return predicate.SchedulerLease(sql.NotPredicates(p))
}
