// Code generated by ent, DO NOT EDIT.

package trendingtopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldContainsFold(FieldID, id))
}

// SnapshotID applies equality check predicate on the "snapshot_id" field. It's identical to SnapshotIDEQ.
func SnapshotID(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldSnapshotID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldName, v))
}

// TrendScore applies equality check predicate on the "trend_score" field. It's identical to TrendScoreEQ.
func TrendScore(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldTrendScore, v))
}

// Velocity applies equality check predicate on the "velocity" field. It's identical to VelocityEQ.
func Velocity(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldVelocity, v))
}

// Correlation applies equality check predicate on the "correlation" field. It's identical to CorrelationEQ.
func Correlation(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldCorrelation, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldRelevance, v))
}

// Risk applies equality check predicate on the "risk" field. It's identical to RiskEQ.
func Risk(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldRisk, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldPriority, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldDetectedAt, v))
}

// SnapshotIDEQ applies the EQ predicate on the "snapshot_id" field.
func SnapshotIDEQ(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldSnapshotID, v))
}

// SnapshotIDNEQ applies the NEQ predicate on the "snapshot_id" field.
func SnapshotIDNEQ(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldSnapshotID, v))
}

// SnapshotIDIn applies the In predicate on the "snapshot_id" field.
func SnapshotIDIn(vs ...string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldSnapshotID, vs...))
}

// SnapshotIDNotIn applies the NotIn predicate on the "snapshot_id" field.
func SnapshotIDNotIn(vs ...string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldSnapshotID, vs...))
}

// SnapshotIDGT applies the GT predicate on the "snapshot_id" field.
func SnapshotIDGT(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldSnapshotID, v))
}

// SnapshotIDGTE applies the GTE predicate on the "snapshot_id" field.
func SnapshotIDGTE(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldSnapshotID, v))
}

// SnapshotIDLT applies the LT predicate on the "snapshot_id" field.
func SnapshotIDLT(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldSnapshotID, v))
}

// SnapshotIDLTE applies the LTE predicate on the "snapshot_id" field.
func SnapshotIDLTE(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldSnapshotID, v))
}

// SnapshotIDContains applies the Contains predicate on the "snapshot_id" field.
func SnapshotIDContains(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldContains(FieldSnapshotID, v))
}

// SnapshotIDHasPrefix applies the HasPrefix predicate on the "snapshot_id" field.
func SnapshotIDHasPrefix(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldHasPrefix(FieldSnapshotID, v))
}

// SnapshotIDHasSuffix applies the HasSuffix predicate on the "snapshot_id" field.
func SnapshotIDHasSuffix(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldHasSuffix(FieldSnapshotID, v))
}

// SnapshotIDEqualFold applies the EqualFold predicate on the "snapshot_id" field.
func SnapshotIDEqualFold(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEqualFold(FieldSnapshotID, v))
}

// SnapshotIDContainsFold applies the ContainsFold predicate on the "snapshot_id" field.
func SnapshotIDContainsFold(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldContainsFold(FieldSnapshotID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldContainsFold(FieldName, v))
}

// TrendScoreEQ applies the EQ predicate on the "trend_score" field.
func TrendScoreEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldTrendScore, v))
}

// TrendScoreNEQ applies the NEQ predicate on the "trend_score" field.
func TrendScoreNEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldTrendScore, v))
}

// TrendScoreIn applies the In predicate on the "trend_score" field.
func TrendScoreIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldTrendScore, vs...))
}

// TrendScoreNotIn applies the NotIn predicate on the "trend_score" field.
func TrendScoreNotIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldTrendScore, vs...))
}

// TrendScoreGT applies the GT predicate on the "trend_score" field.
func TrendScoreGT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldTrendScore, v))
}

// TrendScoreGTE applies the GTE predicate on the "trend_score" field.
func TrendScoreGTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldTrendScore, v))
}

// TrendScoreLT applies the LT predicate on the "trend_score" field.
func TrendScoreLT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldTrendScore, v))
}

// TrendScoreLTE applies the LTE predicate on the "trend_score" field.
func TrendScoreLTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldTrendScore, v))
}

// VelocityEQ applies the EQ predicate on the "velocity" field.
func VelocityEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldVelocity, v))
}

// VelocityNEQ applies the NEQ predicate on the "velocity" field.
func VelocityNEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldVelocity, v))
}

// VelocityIn applies the In predicate on the "velocity" field.
func VelocityIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldVelocity, vs...))
}

// VelocityNotIn applies the NotIn predicate on the "velocity" field.
func VelocityNotIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldVelocity, vs...))
}

// VelocityGT applies the GT predicate on the "velocity" field.
func VelocityGT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldVelocity, v))
}

// VelocityGTE applies the GTE predicate on the "velocity" field.
func VelocityGTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldVelocity, v))
}

// VelocityLT applies the LT predicate on the "velocity" field.
func VelocityLT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldVelocity, v))
}

// VelocityLTE applies the LTE predicate on the "velocity" field.
func VelocityLTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldVelocity, v))
}

// CorrelationEQ applies the EQ predicate on the "correlation" field.
func CorrelationEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldCorrelation, v))
}

// CorrelationNEQ applies the NEQ predicate on the "correlation" field.
func CorrelationNEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldCorrelation, v))
}

// CorrelationIn applies the In predicate on the "correlation" field.
func CorrelationIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldCorrelation, vs...))
}

// CorrelationNotIn applies the NotIn predicate on the "correlation" field.
func CorrelationNotIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldCorrelation, vs...))
}

// CorrelationGT applies the GT predicate on the "correlation" field.
func CorrelationGT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldCorrelation, v))
}

// CorrelationGTE applies the GTE predicate on the "correlation" field.
func CorrelationGTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldCorrelation, v))
}

// CorrelationLT applies the LT predicate on the "correlation" field.
func CorrelationLT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldCorrelation, v))
}

// CorrelationLTE applies the LTE predicate on the "correlation" field.
func CorrelationLTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldCorrelation, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldRelevance, v))
}

// RiskEQ applies the EQ predicate on the "risk" field.
func RiskEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldRisk, v))
}

// RiskNEQ applies the NEQ predicate on the "risk" field.
func RiskNEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldRisk, v))
}

// RiskIn applies the In predicate on the "risk" field.
func RiskIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldRisk, vs...))
}

// RiskNotIn applies the NotIn predicate on the "risk" field.
func RiskNotIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldRisk, vs...))
}

// RiskGT applies the GT predicate on the "risk" field.
func RiskGT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldRisk, v))
}

// RiskGTE applies the GTE predicate on the "risk" field.
func RiskGTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldRisk, v))
}

// RiskLT applies the LT predicate on the "risk" field.
func RiskLT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldRisk, v))
}

// RiskLTE applies the LTE predicate on the "risk" field.
func RiskLTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldRisk, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v float64) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldPriority, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.FieldLTE(FieldDetectedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrendingTopic) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrendingTopic) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrendingTopic) predicate.TrendingTopic {
	return predicate.TrendingTopic(sql.NotPredicates(p))
}
