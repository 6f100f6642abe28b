// Code generated by ent, DO NOT EDIT.

package trade

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trade type in the database.
	Label = "trade"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trade_id"
	// FieldMarketID holds the string denoting the market_id field in the database.
	FieldMarketID = "market_id"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldSide holds the string denoting the side field in the database.
	FieldSide = "side"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMarket holds the string denoting the market edge name in mutations.
	EdgeMarket = "market"
	// MarketFieldID holds the string denoting the ID field of the Market.
	MarketFieldID = "market_id"
	// Table holds the table name of the trade in the database.
	Table = "trades"
	// MarketTable is the table that holds the market relation/edge.
	MarketTable = "trades"
	// MarketInverseTable is the table name for the Market entity.
	// It exists in this package in order to avoid circular dependency with the "market" package.
	MarketInverseTable = "markets"
	// MarketColumn is the table column denoting the market relation/edge.
	MarketColumn = "market_id"
)

// Columns holds all SQL columns for trade fields.
var Columns = []string{
	FieldID,
	FieldMarketID,
	FieldActor,
	FieldSide,
	FieldSize,
	FieldPrice,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Side defines the type for the "side" enum field.
type Side string

// Side values.
const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

func (s Side) String() string {
	return string(s)
}

// SideValidator is a validator for the "side" field enum values. It is called by the builders before save.
func SideValidator(s Side) error {
	switch s {
	case SideYes, SideNo:
		return nil
	default:
		return fmt.Errorf("trade: invalid enum value for side field: %q", s)
	}
}

// OrderOption defines the ordering options for the Trade queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMarketID orders the results by the market_id field.
func ByMarketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketID, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// BySide orders the results by the side field.
func BySide(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSide, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
