// Code generated by ent, DO NOT EDIT.

package predictionfactor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContainsFold(FieldID, id))
}

// MarketID applies equality check predicate on the "market_id" field. It's identical to MarketIDEQ.
func MarketID(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldMarketID, v))
}

// AssessedProb applies equality check predicate on the "assessed_prob" field. It's identical to AssessedProbEQ.
func AssessedProb(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldAssessedProb, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldReasoning, v))
}

// AgentVersion applies equality check predicate on the "agent_version" field. It's identical to AgentVersionEQ.
func AgentVersion(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldAgentVersion, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldComputedAt, v))
}

// MarketIDEQ applies the EQ predicate on the "market_id" field.
func MarketIDEQ(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldMarketID, v))
}

// MarketIDNEQ applies the NEQ predicate on the "market_id" field.
func MarketIDNEQ(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldMarketID, v))
}

// MarketIDIn applies the In predicate on the "market_id" field.
func MarketIDIn(vs ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldMarketID, vs...))
}

// MarketIDNotIn applies the NotIn predicate on the "market_id" field.
func MarketIDNotIn(vs ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldMarketID, vs...))
}

// MarketIDGT applies the GT predicate on the "market_id" field.
func MarketIDGT(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldMarketID, v))
}

// MarketIDGTE applies the GTE predicate on the "market_id" field.
func MarketIDGTE(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldMarketID, v))
}

// MarketIDLT applies the LT predicate on the "market_id" field.
func MarketIDLT(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldMarketID, v))
}

// MarketIDLTE applies the LTE predicate on the "market_id" field.
func MarketIDLTE(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldMarketID, v))
}

// MarketIDContains applies the Contains predicate on the "market_id" field.
func MarketIDContains(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContains(FieldMarketID, v))
}

// MarketIDHasPrefix applies the HasPrefix predicate on the "market_id" field.
func MarketIDHasPrefix(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldHasPrefix(FieldMarketID, v))
}

// MarketIDHasSuffix applies the HasSuffix predicate on the "market_id" field.
func MarketIDHasSuffix(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldHasSuffix(FieldMarketID, v))
}

// MarketIDEqualFold applies the EqualFold predicate on the "market_id" field.
func MarketIDEqualFold(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEqualFold(FieldMarketID, v))
}

// MarketIDContainsFold applies the ContainsFold predicate on the "market_id" field.
func MarketIDContainsFold(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContainsFold(FieldMarketID, v))
}

// AssessedProbEQ applies the EQ predicate on the "assessed_prob" field.
func AssessedProbEQ(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldAssessedProb, v))
}

// AssessedProbNEQ applies the NEQ predicate on the "assessed_prob" field.
func AssessedProbNEQ(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldAssessedProb, v))
}

// AssessedProbIn applies the In predicate on the "assessed_prob" field.
func AssessedProbIn(vs ...float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldAssessedProb, vs...))
}

// AssessedProbNotIn applies the NotIn predicate on the "assessed_prob" field.
func AssessedProbNotIn(vs ...float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldAssessedProb, vs...))
}

// AssessedProbGT applies the GT predicate on the "assessed_prob" field.
func AssessedProbGT(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldAssessedProb, v))
}

// AssessedProbGTE applies the GTE predicate on the "assessed_prob" field.
func AssessedProbGTE(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldAssessedProb, v))
}

// AssessedProbLT applies the LT predicate on the "assessed_prob" field.
func AssessedProbLT(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldAssessedProb, v))
}

// AssessedProbLTE applies the LTE predicate on the "assessed_prob" field.
func AssessedProbLTE(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldAssessedProb, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContainsFold(FieldReasoning, v))
}

// DataSourcesIsNil applies the IsNil predicate on the "data_sources" field.
func DataSourcesIsNil() predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIsNull(FieldDataSources))
}

// DataSourcesNotNil applies the NotNil predicate on the "data_sources" field.
func DataSourcesNotNil() predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotNull(FieldDataSources))
}

// AgentVersionEQ applies the EQ predicate on the "agent_version" field.
func AgentVersionEQ(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldAgentVersion, v))
}

// AgentVersionNEQ applies the NEQ predicate on the "agent_version" field.
func AgentVersionNEQ(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldAgentVersion, v))
}

// AgentVersionIn applies the In predicate on the "agent_version" field.
func AgentVersionIn(vs ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldAgentVersion, vs...))
}

// AgentVersionNotIn applies the NotIn predicate on the "agent_version" field.
func AgentVersionNotIn(vs ...string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldAgentVersion, vs...))
}

// AgentVersionGT applies the GT predicate on the "agent_version" field.
func AgentVersionGT(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldAgentVersion, v))
}

// AgentVersionGTE applies the GTE predicate on the "agent_version" field.
func AgentVersionGTE(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldAgentVersion, v))
}

// AgentVersionLT applies the LT predicate on the "agent_version" field.
func AgentVersionLT(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldAgentVersion, v))
}

// AgentVersionLTE applies the LTE predicate on the "agent_version" field.
func AgentVersionLTE(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldAgentVersion, v))
}

// AgentVersionContains applies the Contains predicate on the "agent_version" field.
func AgentVersionContains(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContains(FieldAgentVersion, v))
}

// AgentVersionHasPrefix applies the HasPrefix predicate on the "agent_version" field.
func AgentVersionHasPrefix(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldHasPrefix(FieldAgentVersion, v))
}

// AgentVersionHasSuffix applies the HasSuffix predicate on the "agent_version" field.
func AgentVersionHasSuffix(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldHasSuffix(FieldAgentVersion, v))
}

// AgentVersionEqualFold applies the EqualFold predicate on the "agent_version" field.
func AgentVersionEqualFold(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEqualFold(FieldAgentVersion, v))
}

// AgentVersionContainsFold applies the ContainsFold predicate on the "agent_version" field.
func AgentVersionContainsFold(v string) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldContainsFold(FieldAgentVersion, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.FieldLTE(FieldComputedAt, v))
}

// HasMarket applies the HasEdge predicate on the "market" edge.
func HasMarket() predicate.PredictionFactor {
	return predicate.PredictionFactor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MarketTable, MarketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMarketWith applies the HasEdge predicate on the "market" edge with a given conditions (other predicates).
func HasMarketWith(preds ...predicate.Market) predicate.PredictionFactor {
	return predicate.PredictionFactor(func(s *sql.Selector) {
		step := newMarketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PredictionFactor) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PredictionFactor) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PredictionFactor) predicate.PredictionFactor {
	return predicate.PredictionFactor(sql.NotPredicates(p))
}
