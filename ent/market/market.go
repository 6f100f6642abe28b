// Code generated by ent, DO NOT EDIT.

package market

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the market type in the database.
	Label = "market"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "market_id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldHighStakes holds the string denoting the high_stakes field in the database.
	FieldHighStakes = "high_stakes"
	// FieldYesProb holds the string denoting the yes_prob field in the database.
	FieldYesProb = "yes_prob"
	// FieldNoProb holds the string denoting the no_prob field in the database.
	FieldNoProb = "no_prob"
	// FieldVolume holds the string denoting the volume field in the database.
	FieldVolume = "volume"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClaimID holds the string denoting the claim_id field in the database.
	FieldClaimID = "claim_id"
	// FieldClosesAt holds the string denoting the closes_at field in the database.
	FieldClosesAt = "closes_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClaim holds the string denoting the claim edge name in mutations.
	EdgeClaim = "claim"
	// EdgeTrades holds the string denoting the trades edge name in mutations.
	EdgeTrades = "trades"
	// EdgePredictionFactors holds the string denoting the prediction_factors edge name in mutations.
	EdgePredictionFactors = "prediction_factors"
	// ClaimFieldID holds the string denoting the ID field of the Claim.
	ClaimFieldID = "claim_id"
	// TradeFieldID holds the string denoting the ID field of the Trade.
	TradeFieldID = "trade_id"
	// PredictionFactorFieldID holds the string denoting the ID field of the PredictionFactor.
	PredictionFactorFieldID = "factor_id"
	// Table holds the table name of the market in the database.
	Table = "markets"
	// ClaimTable is the table that holds the claim relation/edge.
	ClaimTable = "markets"
	// ClaimInverseTable is the table name for the Claim entity.
	// It exists in this package in order to avoid circular dependency with the "claim" package.
	ClaimInverseTable = "claims"
	// ClaimColumn is the table column denoting the claim relation/edge.
	ClaimColumn = "claim_id"
	// TradesTable is the table that holds the trades relation/edge.
	TradesTable = "trades"
	// TradesInverseTable is the table name for the Trade entity.
	// It exists in this package in order to avoid circular dependency with the "trade" package.
	TradesInverseTable = "trades"
	// TradesColumn is the table column denoting the trades relation/edge.
	TradesColumn = "market_id"
	// PredictionFactorsTable is the table that holds the prediction_factors relation/edge.
	PredictionFactorsTable = "prediction_factors"
	// PredictionFactorsInverseTable is the table name for the PredictionFactor entity.
	// It exists in this package in order to avoid circular dependency with the "predictionfactor" package.
	PredictionFactorsInverseTable = "prediction_factors"
	// PredictionFactorsColumn is the table column denoting the prediction_factors relation/edge.
	PredictionFactorsColumn = "market_id"
)

// Columns holds all SQL columns for market fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldQuestion,
	FieldCategory,
	FieldHighStakes,
	FieldYesProb,
	FieldNoProb,
	FieldVolume,
	FieldStatus,
	FieldClaimID,
	FieldClosesAt,
	FieldCreatedAt,
}

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
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultHighStakes holds the default value on creation for the "high_stakes" field.
	DefaultHighStakes bool
	// DefaultYesProb holds the default value on creation for the "yes_prob" field.
	DefaultYesProb float64
	// DefaultNoProb holds the default value on creation for the "no_prob" field.
	DefaultNoProb float64
	// DefaultVolume holds the default value on creation for the "volume" field.
	DefaultVolume float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen      Status = "open"
	StatusResolved  Status = "resolved"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusResolved, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("market: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Market queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByHighStakes orders the results by the high_stakes field.
func ByHighStakes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighStakes, opts...).ToFunc()
}

// ByYesProb orders the results by the yes_prob field.
func ByYesProb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYesProb, opts...).ToFunc()
}

// ByNoProb orders the results by the no_prob field.
func ByNoProb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoProb, opts...).ToFunc()
}

// ByVolume orders the results by the volume field.
func ByVolume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolume, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClaimID orders the results by the claim_id field.
func ByClaimID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimID, opts...).ToFunc()
}

// ByClosesAt orders the results by the closes_at field.
func ByClosesAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosesAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClaimField orders the results by claim field.
func ByClaimField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimStep(), sql.OrderByField(field, opts...))
	}
}

// ByTradesCount orders the results by trades count.
func ByTradesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTradesStep(), opts...)
	}
}

// ByTrades orders the results by trades terms.
func ByTrades(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTradesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPredictionFactorsCount orders the results by prediction_factors count.
func ByPredictionFactorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPredictionFactorsStep(), opts...)
	}
}

// ByPredictionFactors orders the results by prediction_factors terms.
func ByPredictionFactors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPredictionFactorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClaimStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimInverseTable, ClaimFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
	)
}
func newTradesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TradesInverseTable, TradeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TradesTable, TradesColumn),
	)
}
func newPredictionFactorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PredictionFactorsInverseTable, PredictionFactorFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PredictionFactorsTable, PredictionFactorsColumn),
	)
}
