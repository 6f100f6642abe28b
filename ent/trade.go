// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/trade"
)

// Trade is the model entity for the Trade schema.
type Trade struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MarketID holds the value of the "market_id" field.
	MarketID string `json:"market_id,omitempty"`
	// User ID or the reserved system actor
	Actor string `json:"actor,omitempty"`
	// Side holds the value of the "side" field.
	Side trade.Side `json:"side,omitempty"`
	// Credits committed
	Size float64 `json:"size,omitempty"`
	// yes_prob at execution time
	Price float64 `json:"price,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TradeQuery when eager-loading is set.
	Edges        TradeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TradeEdges holds the relations/edges for other nodes in the graph.
type TradeEdges struct {
	// Market holds the value of the market edge.
	Market *Market `json:"market,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MarketOrErr returns the Market value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TradeEdges) MarketOrErr() (*Market, error) {
	if e.Market != nil {
		return e.Market, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: market.Label}
	}
	return nil, &NotLoadedError{edge: "market"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trade) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trade.FieldSize, trade.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case trade.FieldID, trade.FieldMarketID, trade.FieldActor, trade.FieldSide:
			values[i] = new(sql.NullString)
		case trade.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trade fields.
func (_m *Trade) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trade.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trade.FieldMarketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market_id", values[i])
			} else if value.Valid {
				_m.MarketID = value.String
			}
		case trade.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case trade.FieldSide:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field side", values[i])
			} else if value.Valid {
				_m.Side = trade.Side(value.String)
			}
		case trade.FieldSize:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.Float64
			}
		case trade.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case trade.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trade.
// This includes values selected through modifiers, order, etc.
func (_m *Trade) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMarket queries the "market" edge of the Trade entity.
func (_m *Trade) QueryMarket() *MarketQuery {
	return NewTradeClient(_m.config).QueryMarket(_m)
}

// Update returns a builder for updating this Trade.
// Note that you need to call Trade.Unwrap() before calling this method if this Trade
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trade) Update() *TradeUpdateOne {
	return NewTradeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trade entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trade) Unwrap() *Trade {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trade is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trade) String() string {
	var builder strings.Builder
	builder.WriteString("Trade(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("market_id=")
	builder.WriteString(_m.MarketID)
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("side=")
	builder.WriteString(fmt.Sprintf("%v", _m.Side))
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Trades is a parsable slice of Trade.
type Trades []*Trade
