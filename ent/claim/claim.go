// Code generated by ent, DO NOT EDIT.

package claim

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the claim type in the database.
	Label = "claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "claim_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEvidenceStrength holds the string denoting the evidence_strength field in the database.
	FieldEvidenceStrength = "evidence_strength"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldReviewPriority holds the string denoting the review_priority field in the database.
	FieldReviewPriority = "review_priority"
	// FieldHasEmbedding holds the string denoting the has_embedding field in the database.
	FieldHasEmbedding = "has_embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSources holds the string denoting the sources edge name in mutations.
	EdgeSources = "sources"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EdgeEntities holds the string denoting the entities edge name in mutations.
	EdgeEntities = "entities"
	// EdgeTopics holds the string denoting the topics edge name in mutations.
	EdgeTopics = "topics"
	// EdgeMarkets holds the string denoting the markets edge name in mutations.
	EdgeMarkets = "markets"
	// SourceFieldID holds the string denoting the ID field of the Source.
	SourceFieldID = "source_id"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// EntityFieldID holds the string denoting the ID field of the Entity.
	EntityFieldID = "entity_id"
	// TopicFieldID holds the string denoting the ID field of the Topic.
	TopicFieldID = "topic_id"
	// MarketFieldID holds the string denoting the ID field of the Market.
	MarketFieldID = "market_id"
	// Table holds the table name of the claim in the database.
	Table = "claims"
	// SourcesTable is the table that holds the sources relation/edge.
	SourcesTable = "sources"
	// SourcesInverseTable is the table name for the Source entity.
	// It exists in this package in order to avoid circular dependency with the "source" package.
	SourcesInverseTable = "sources"
	// SourcesColumn is the table column denoting the sources relation/edge.
	SourcesColumn = "claim_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "evidences"
	// EvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	EvidenceInverseTable = "evidences"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "claim_id"
	// EntitiesTable is the table that holds the entities relation/edge. The primary key declared below.
	EntitiesTable = "claim_entities"
	// EntitiesInverseTable is the table name for the Entity entity.
	// It exists in this package in order to avoid circular dependency with the "entity" package.
	EntitiesInverseTable = "entities"
	// TopicsTable is the table that holds the topics relation/edge. The primary key declared below.
	TopicsTable = "claim_topics"
	// TopicsInverseTable is the table name for the Topic entity.
	// It exists in this package in order to avoid circular dependency with the "topic" package.
	TopicsInverseTable = "topics"
	// MarketsTable is the table that holds the markets relation/edge.
	MarketsTable = "markets"
	// MarketsInverseTable is the table name for the Market entity.
	// It exists in this package in order to avoid circular dependency with the "market" package.
	MarketsInverseTable = "markets"
	// MarketsColumn is the table column denoting the markets relation/edge.
	MarketsColumn = "claim_id"
)

// Columns holds all SQL columns for claim fields.
var Columns = []string{
	FieldID,
	FieldText,
	FieldOriginalText,
	FieldVerdict,
	FieldExplanation,
	FieldConfidence,
	FieldEvidenceStrength,
	FieldNeedsReview,
	FieldReviewPriority,
	FieldHasEmbedding,
	FieldCreatedAt,
}

var (
	// EntitiesPrimaryKey and EntitiesColumn2 are the table columns denoting the
	// primary key for the entities relation (M2M).
	EntitiesPrimaryKey = []string{"claim_id", "entity_id"}
	// TopicsPrimaryKey and TopicsColumn2 are the table columns denoting the
	// primary key for the topics relation (M2M).
	TopicsPrimaryKey = []string{"claim_id", "topic_id"}
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

var (
	// ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	ExplanationValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultHasEmbedding holds the default value on creation for the "has_embedding" field.
	DefaultHasEmbedding bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictVerified   Verdict = "verified"
	VerdictDebunked   Verdict = "debunked"
	VerdictMisleading Verdict = "misleading"
	VerdictUnverified Verdict = "unverified"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictVerified, VerdictDebunked, VerdictMisleading, VerdictUnverified:
		return nil
	default:
		return fmt.Errorf("claim: invalid enum value for verdict field: %q", v)
	}
}

// EvidenceStrength defines the type for the "evidence_strength" enum field.
type EvidenceStrength string

// EvidenceStrength values.
const (
	EvidenceStrengthStrong       EvidenceStrength = "strong"
	EvidenceStrengthModerate     EvidenceStrength = "moderate"
	EvidenceStrengthWeak         EvidenceStrength = "weak"
	EvidenceStrengthInsufficient EvidenceStrength = "insufficient"
)

func (es EvidenceStrength) String() string {
	return string(es)
}

// EvidenceStrengthValidator is a validator for the "evidence_strength" field enum values. It is called by the builders before save.
func EvidenceStrengthValidator(es EvidenceStrength) error {
	switch es {
	case EvidenceStrengthStrong, EvidenceStrengthModerate, EvidenceStrengthWeak, EvidenceStrengthInsufficient:
		return nil
	default:
		return fmt.Errorf("claim: invalid enum value for evidence_strength field: %q", es)
	}
}

// ReviewPriority defines the type for the "review_priority" enum field.
type ReviewPriority string

// ReviewPriorityNone is the default value of the ReviewPriority enum.
const DefaultReviewPriority = ReviewPriorityNone

// ReviewPriority values.
const (
	ReviewPriorityHigh   ReviewPriority = "high"
	ReviewPriorityMedium ReviewPriority = "medium"
	ReviewPriorityLow    ReviewPriority = "low"
	ReviewPriorityNone   ReviewPriority = "none"
)

func (rp ReviewPriority) String() string {
	return string(rp)
}

// ReviewPriorityValidator is a validator for the "review_priority" field enum values. It is called by the builders before save.
func ReviewPriorityValidator(rp ReviewPriority) error {
	switch rp {
	case ReviewPriorityHigh, ReviewPriorityMedium, ReviewPriorityLow, ReviewPriorityNone:
		return nil
	default:
		return fmt.Errorf("claim: invalid enum value for review_priority field: %q", rp)
	}
}

// OrderOption defines the ordering options for the Claim queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEvidenceStrength orders the results by the evidence_strength field.
func ByEvidenceStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceStrength, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByReviewPriority orders the results by the review_priority field.
func ByReviewPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewPriority, opts...).ToFunc()
}

// ByHasEmbedding orders the results by the has_embedding field.
func ByHasEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasEmbedding, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySourcesCount orders the results by sources count.
func BySourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourcesStep(), opts...)
	}
}

// BySources orders the results by sources terms.
func BySources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEntitiesCount orders the results by entities count.
func ByEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntitiesStep(), opts...)
	}
}

// ByEntities orders the results by entities terms.
func ByEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTopicsCount orders the results by topics count.
func ByTopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTopicsStep(), opts...)
	}
}

// ByTopics orders the results by topics terms.
func ByTopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMarketsCount orders the results by markets count.
func ByMarketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMarketsStep(), opts...)
	}
}

// ByMarkets orders the results by markets terms.
func ByMarkets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMarketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourcesInverseTable, SourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
func newEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitiesInverseTable, EntityFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, EntitiesTable, EntitiesPrimaryKey...),
	)
}
func newTopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicsInverseTable, TopicFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, TopicsTable, TopicsPrimaryKey...),
	)
}
func newMarketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MarketsInverseTable, MarketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MarketsTable, MarketsColumn),
	)
}
