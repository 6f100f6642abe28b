// Code generated by ent, DO NOT EDIT.

package predictionfactor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the predictionfactor type in the database.
	Label = "prediction_factor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "factor_id"
	// FieldMarketID holds the string denoting the market_id field in the database.
	FieldMarketID = "market_id"
	// FieldAssessedProb holds the string denoting the assessed_prob field in the database.
	FieldAssessedProb = "assessed_prob"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldDataSources holds the string denoting the data_sources field in the database.
	FieldDataSources = "data_sources"
	// FieldAgentVersion holds the string denoting the agent_version field in the database.
	FieldAgentVersion = "agent_version"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// EdgeMarket holds the string denoting the market edge name in mutations.
	EdgeMarket = "market"
	// MarketFieldID holds the string denoting the ID field of the Market.
	MarketFieldID = "market_id"
	// Table holds the table name of the predictionfactor in the database.
	Table = "prediction_factors"
	// MarketTable is the table that holds the market relation/edge.
	MarketTable = "prediction_factors"
	// MarketInverseTable is the table name for the Market entity.
	// It exists in this package in order to avoid circular dependency with the "market" package.
	MarketInverseTable = "markets"
	// MarketColumn is the table column denoting the market relation/edge.
	MarketColumn = "market_id"
)

// Columns holds all SQL columns for predictionfactor fields.
var Columns = []string{
	FieldID,
	FieldMarketID,
	FieldAssessedProb,
	FieldConfidence,
	FieldReasoning,
	FieldDataSources,
	FieldAgentVersion,
	FieldComputedAt,
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
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
)

// OrderOption defines the ordering options for the PredictionFactor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMarketID orders the results by the market_id field.
func ByMarketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketID, opts...).ToFunc()
}

// ByAssessedProb orders the results by the assessed_prob field.
func ByAssessedProb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessedProb, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByAgentVersion orders the results by the agent_version field.
func ByAgentVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentVersion, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByMarketField orders the results by market field.
func ByMarketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMarketStep(), sql.OrderByField(field, opts...))
	}
}
func newMarketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MarketInverseTable, MarketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MarketTable, MarketColumn),
	)
}
