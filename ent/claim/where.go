// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldID, id))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldText, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOriginalText, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldExplanation, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldNeedsReview, v))
}

// HasEmbedding applies equality check predicate on the "has_embedding" field. It's identical to HasEmbeddingEQ.
func HasEmbedding(v bool) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldHasEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldText, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldOriginalText, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldVerdict, vs...))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldExplanation, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldConfidence, v))
}

// EvidenceStrengthEQ applies the EQ predicate on the "evidence_strength" field.
func EvidenceStrengthEQ(v EvidenceStrength) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldEvidenceStrength, v))
}

// EvidenceStrengthNEQ applies the NEQ predicate on the "evidence_strength" field.
func EvidenceStrengthNEQ(v EvidenceStrength) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldEvidenceStrength, v))
}

// EvidenceStrengthIn applies the In predicate on the "evidence_strength" field.
func EvidenceStrengthIn(vs ...EvidenceStrength) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldEvidenceStrength, vs...))
}

// EvidenceStrengthNotIn applies the NotIn predicate on the "evidence_strength" field.
func EvidenceStrengthNotIn(vs ...EvidenceStrength) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldEvidenceStrength, vs...))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldNeedsReview, v))
}

// ReviewPriorityEQ applies the EQ predicate on the "review_priority" field.
func ReviewPriorityEQ(v ReviewPriority) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldReviewPriority, v))
}

// ReviewPriorityNEQ applies the NEQ predicate on the "review_priority" field.
func ReviewPriorityNEQ(v ReviewPriority) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldReviewPriority, v))
}

// ReviewPriorityIn applies the In predicate on the "review_priority" field.
func ReviewPriorityIn(vs ...ReviewPriority) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldReviewPriority, vs...))
}

// ReviewPriorityNotIn applies the NotIn predicate on the "review_priority" field.
func ReviewPriorityNotIn(vs ...ReviewPriority) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldReviewPriority, vs...))
}

// HasEmbeddingEQ applies the EQ predicate on the "has_embedding" field.
func HasEmbeddingEQ(v bool) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldHasEmbedding, v))
}

// HasEmbeddingNEQ applies the NEQ predicate on the "has_embedding" field.
func HasEmbeddingNEQ(v bool) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldHasEmbedding, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSources applies the HasEdge predicate on the "sources" edge.
func HasSources() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourcesWith applies the HasEdge predicate on the "sources" edge with a given conditions (other predicates).
func HasSourcesWith(preds ...predicate.Source) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newSourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.Evidence) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntities applies the HasEdge predicate on the "entities" edge.
func HasEntities() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, EntitiesTable, EntitiesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitiesWith applies the HasEdge predicate on the "entities" edge with a given conditions (other predicates).
func HasEntitiesWith(preds ...predicate.Entity) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newEntitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTopics applies the HasEdge predicate on the "topics" edge.
func HasTopics() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, TopicsTable, TopicsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicsWith applies the HasEdge predicate on the "topics" edge with a given conditions (other predicates).
func HasTopicsWith(preds ...predicate.Topic) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newTopicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMarkets applies the HasEdge predicate on the "markets" edge.
func HasMarkets() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MarketsTable, MarketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMarketsWith applies the HasEdge predicate on the "markets" edge with a given conditions (other predicates).
func HasMarketsWith(preds ...predicate.Market) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newMarketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.NotPredicates(p))
}
