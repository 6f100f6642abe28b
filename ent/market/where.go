// Code generated by ent, DO NOT EDIT.

package market

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Market {
	return predicate.Market(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Market {
	return predicate.Market(sql.FieldContainsFold(FieldID, id))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldSlug, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldQuestion, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldCategory, v))
}

// HighStakes applies equality check predicate on the "high_stakes" field. It's identical to HighStakesEQ.
func HighStakes(v bool) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldHighStakes, v))
}

// YesProb applies equality check predicate on the "yes_prob" field. It's identical to YesProbEQ.
func YesProb(v float64) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldYesProb, v))
}

// NoProb applies equality check predicate on the "no_prob" field. It's identical to NoProbEQ.
func NoProb(v float64) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldNoProb, v))
}

// Volume applies equality check predicate on the "volume" field. It's identical to VolumeEQ.
func Volume(v float64) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldVolume, v))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldClaimID, v))
}

// ClosesAt applies equality check predicate on the "closes_at" field. It's identical to ClosesAtEQ.
func ClosesAt(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldClosesAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldCreatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Market {
	return predicate.Market(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Market {
	return predicate.Market(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Market {
	return predicate.Market(sql.FieldContainsFold(FieldSlug, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Market {
	return predicate.Market(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Market {
	return predicate.Market(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Market {
	return predicate.Market(sql.FieldContainsFold(FieldQuestion, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Market {
	return predicate.Market(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Market {
	return predicate.Market(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Market {
	return predicate.Market(sql.FieldContainsFold(FieldCategory, v))
}

// HighStakesEQ applies the EQ predicate on the "high_stakes" field.
func HighStakesEQ(v bool) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldHighStakes, v))
}

// HighStakesNEQ applies the NEQ predicate on the "high_stakes" field.
func HighStakesNEQ(v bool) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldHighStakes, v))
}

// YesProbEQ applies the EQ predicate on the "yes_prob" field.
func YesProbEQ(v float64) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldYesProb, v))
}

// YesProbNEQ applies the NEQ predicate on the "yes_prob" field.
func YesProbNEQ(v float64) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldYesProb, v))
}

// YesProbIn applies the In predicate on the "yes_prob" field.
func YesProbIn(vs ...float64) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldYesProb, vs...))
}

// YesProbNotIn applies the NotIn predicate on the "yes_prob" field.
func YesProbNotIn(vs ...float64) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldYesProb, vs...))
}

// YesProbGT applies the GT predicate on the "yes_prob" field.
func YesProbGT(v float64) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldYesProb, v))
}

// YesProbGTE applies the GTE predicate on the "yes_prob" field.
func YesProbGTE(v float64) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldYesProb, v))
}

// YesProbLT applies the LT predicate on the "yes_prob" field.
func YesProbLT(v float64) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldYesProb, v))
}

// YesProbLTE applies the LTE predicate on the "yes_prob" field.
func YesProbLTE(v float64) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldYesProb, v))
}

// NoProbEQ applies the EQ predicate on the "no_prob" field.
func NoProbEQ(v float64) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldNoProb, v))
}

// NoProbNEQ applies the NEQ predicate on the "no_prob" field.
func NoProbNEQ(v float64) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldNoProb, v))
}

// NoProbIn applies the In predicate on the "no_prob" field.
func NoProbIn(vs ...float64) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldNoProb, vs...))
}

// NoProbNotIn applies the NotIn predicate on the "no_prob" field.
func NoProbNotIn(vs ...float64) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldNoProb, vs...))
}

// NoProbGT applies the GT predicate on the "no_prob" field.
func NoProbGT(v float64) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldNoProb, v))
}

// NoProbGTE applies the GTE predicate on the "no_prob" field.
func NoProbGTE(v float64) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldNoProb, v))
}

// NoProbLT applies the LT predicate on the "no_prob" field.
func NoProbLT(v float64) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldNoProb, v))
}

// NoProbLTE applies the LTE predicate on the "no_prob" field.
func NoProbLTE(v float64) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldNoProb, v))
}

// VolumeEQ applies the EQ predicate on the "volume" field.
func VolumeEQ(v float64) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldVolume, v))
}

// VolumeNEQ applies the NEQ predicate on the "volume" field.
func VolumeNEQ(v float64) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldVolume, v))
}

// VolumeIn applies the In predicate on the "volume" field.
func VolumeIn(vs ...float64) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldVolume, vs...))
}

// VolumeNotIn applies the NotIn predicate on the "volume" field.
func VolumeNotIn(vs ...float64) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldVolume, vs...))
}

// VolumeGT applies the GT predicate on the "volume" field.
func VolumeGT(v float64) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldVolume, v))
}

// VolumeGTE applies the GTE predicate on the "volume" field.
func VolumeGTE(v float64) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldVolume, v))
}

// VolumeLT applies the LT predicate on the "volume" field.
func VolumeLT(v float64) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldVolume, v))
}

// VolumeLTE applies the LTE predicate on the "volume" field.
func VolumeLTE(v float64) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldVolume, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldStatus, vs...))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v string) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...string) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldClaimID, vs...))
}

// ClaimIDGT applies the GT predicate on the "claim_id" field.
func ClaimIDGT(v string) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldClaimID, v))
}

// ClaimIDGTE applies the GTE predicate on the "claim_id" field.
func ClaimIDGTE(v string) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldClaimID, v))
}

// ClaimIDLT applies the LT predicate on the "claim_id" field.
func ClaimIDLT(v string) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldClaimID, v))
}

// ClaimIDLTE applies the LTE predicate on the "claim_id" field.
func ClaimIDLTE(v string) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldClaimID, v))
}

// ClaimIDContains applies the Contains predicate on the "claim_id" field.
func ClaimIDContains(v string) predicate.Market {
	return predicate.Market(sql.FieldContains(FieldClaimID, v))
}

// ClaimIDHasPrefix applies the HasPrefix predicate on the "claim_id" field.
func ClaimIDHasPrefix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasPrefix(FieldClaimID, v))
}

// ClaimIDHasSuffix applies the HasSuffix predicate on the "claim_id" field.
func ClaimIDHasSuffix(v string) predicate.Market {
	return predicate.Market(sql.FieldHasSuffix(FieldClaimID, v))
}

// ClaimIDIsNil applies the IsNil predicate on the "claim_id" field.
func ClaimIDIsNil() predicate.Market {
	return predicate.Market(sql.FieldIsNull(FieldClaimID))
}

// ClaimIDNotNil applies the NotNil predicate on the "claim_id" field.
func ClaimIDNotNil() predicate.Market {
	return predicate.Market(sql.FieldNotNull(FieldClaimID))
}

// ClaimIDEqualFold applies the EqualFold predicate on the "claim_id" field.
func ClaimIDEqualFold(v string) predicate.Market {
	return predicate.Market(sql.FieldEqualFold(FieldClaimID, v))
}

// ClaimIDContainsFold applies the ContainsFold predicate on the "claim_id" field.
func ClaimIDContainsFold(v string) predicate.Market {
	return predicate.Market(sql.FieldContainsFold(FieldClaimID, v))
}

// ClosesAtEQ applies the EQ predicate on the "closes_at" field.
func ClosesAtEQ(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldClosesAt, v))
}

// ClosesAtNEQ applies the NEQ predicate on the "closes_at" field.
func ClosesAtNEQ(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldClosesAt, v))
}

// ClosesAtIn applies the In predicate on the "closes_at" field.
func ClosesAtIn(vs ...time.Time) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldClosesAt, vs...))
}

// ClosesAtNotIn applies the NotIn predicate on the "closes_at" field.
func ClosesAtNotIn(vs ...time.Time) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldClosesAt, vs...))
}

// ClosesAtGT applies the GT predicate on the "closes_at" field.
func ClosesAtGT(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldClosesAt, v))
}

// ClosesAtGTE applies the GTE predicate on the "closes_at" field.
func ClosesAtGTE(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldClosesAt, v))
}

// ClosesAtLT applies the LT predicate on the "closes_at" field.
func ClosesAtLT(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldClosesAt, v))
}

// ClosesAtLTE applies the LTE predicate on the "closes_at" field.
func ClosesAtLTE(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldClosesAt, v))
}

// ClosesAtIsNil applies the IsNil predicate on the "closes_at" field.
func ClosesAtIsNil() predicate.Market {
	return predicate.Market(sql.FieldIsNull(FieldClosesAt))
}

// ClosesAtNotNil applies the NotNil predicate on the "closes_at" field.
func ClosesAtNotNil() predicate.Market {
	return predicate.Market(sql.FieldNotNull(FieldClosesAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Market {
	return predicate.Market(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Market {
	return predicate.Market(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Market {
	return predicate.Market(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClaim applies the HasEdge predicate on the "claim" edge.
func HasClaim() predicate.Market {
	return predicate.Market(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimWith applies the HasEdge predicate on the "claim" edge with a given conditions (other predicates).
func HasClaimWith(preds ...predicate.Claim) predicate.Market {
	return predicate.Market(func(s *sql.Selector) {
		step := newClaimStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrades applies the HasEdge predicate on the "trades" edge.
func HasTrades() predicate.Market {
	return predicate.Market(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TradesTable, TradesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTradesWith applies the HasEdge predicate on the "trades" edge with a given conditions (other predicates).
func HasTradesWith(preds ...predicate.Trade) predicate.Market {
	return predicate.Market(func(s *sql.Selector) {
		step := newTradesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPredictionFactors applies the HasEdge predicate on the "prediction_factors" edge.
func HasPredictionFactors() predicate.Market {
	return predicate.Market(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PredictionFactorsTable, PredictionFactorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPredictionFactorsWith applies the HasEdge predicate on the "prediction_factors" edge with a given conditions (other predicates).
func HasPredictionFactorsWith(preds ...predicate.PredictionFactor) predicate.Market {
	return predicate.Market(func(s *sql.Selector) {
		step := newPredictionFactorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Market) predicate.Market {
	return predicate.Market(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Market) predicate.Market {
	return predicate.Market(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Market) predicate.Market {
	return predicate.Market(sql.NotPredicates(p))
}
