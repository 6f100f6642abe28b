// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/market"
)

// Market is the model entity for the Market schema.
type Market struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// High-stakes categories get the stronger model for seeding
	HighStakes bool `json:"high_stakes,omitempty"`
	// YesProb holds the value of the "yes_prob" field.
	YesProb float64 `json:"yes_prob,omitempty"`
	// NoProb holds the value of the "no_prob" field.
	NoProb float64 `json:"no_prob,omitempty"`
	// Volume holds the value of the "volume" field.
	Volume float64 `json:"volume,omitempty"`
	// Status holds the value of the "status" field.
	Status market.Status `json:"status,omitempty"`
	// ClaimID holds the value of the "claim_id" field.
	ClaimID *string `json:"claim_id,omitempty"`
	// ClosesAt holds the value of the "closes_at" field.
	ClosesAt *time.Time `json:"closes_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MarketQuery when eager-loading is set.
	Edges        MarketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MarketEdges holds the relations/edges for other nodes in the graph.
type MarketEdges struct {
	// Claim holds the value of the claim edge.
	Claim *Claim `json:"claim,omitempty"`
	// Trades holds the value of the trades edge.
	Trades []*Trade `json:"trades,omitempty"`
	// PredictionFactors holds the value of the prediction_factors edge.
	PredictionFactors []*PredictionFactor `json:"prediction_factors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClaimOrErr returns the Claim value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MarketEdges) ClaimOrErr() (*Claim, error) {
	if e.Claim != nil {
		return e.Claim, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: claim.Label}
	}
	return nil, &NotLoadedError{edge: "claim"}
}

// TradesOrErr returns the Trades value or an error if the edge
// was not loaded in eager-loading.
func (e MarketEdges) TradesOrErr() ([]*Trade, error) {
	if e.loadedTypes[1] {
		return e.Trades, nil
	}
	return nil, &NotLoadedError{edge: "trades"}
}

// PredictionFactorsOrErr returns the PredictionFactors value or an error if the edge
// was not loaded in eager-loading.
func (e MarketEdges) PredictionFactorsOrErr() ([]*PredictionFactor, error) {
	if e.loadedTypes[2] {
		return e.PredictionFactors, nil
	}
	return nil, &NotLoadedError{edge: "prediction_factors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Market) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case market.FieldHighStakes:
			values[i] = new(sql.NullBool)
		case market.FieldYesProb, market.FieldNoProb, market.FieldVolume:
			values[i] = new(sql.NullFloat64)
		case market.FieldID, market.FieldSlug, market.FieldQuestion, market.FieldCategory, market.FieldStatus, market.FieldClaimID:
			values[i] = new(sql.NullString)
		case market.FieldClosesAt, market.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Market fields.
func (_m *Market) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case market.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case market.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case market.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case market.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case market.FieldHighStakes:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field high_stakes", values[i])
			} else if value.Valid {
				_m.HighStakes = value.Bool
			}
		case market.FieldYesProb:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field yes_prob", values[i])
			} else if value.Valid {
				_m.YesProb = value.Float64
			}
		case market.FieldNoProb:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field no_prob", values[i])
			} else if value.Valid {
				_m.NoProb = value.Float64
			}
		case market.FieldVolume:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field volume", values[i])
			} else if value.Valid {
				_m.Volume = value.Float64
			}
		case market.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = market.Status(value.String)
			}
		case market.FieldClaimID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_id", values[i])
			} else if value.Valid {
				_m.ClaimID = new(string)
				*_m.ClaimID = value.String
			}
		case market.FieldClosesAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closes_at", values[i])
			} else if value.Valid {
				_m.ClosesAt = new(time.Time)
				*_m.ClosesAt = value.Time
			}
		case market.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Market.
// This includes values selected through modifiers, order, etc.
func (_m *Market) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClaim queries the "claim" edge of the Market entity.
func (_m *Market) QueryClaim() *ClaimQuery {
	return NewMarketClient(_m.config).QueryClaim(_m)
}

// QueryTrades queries the "trades" edge of the Market entity.
func (_m *Market) QueryTrades() *TradeQuery {
	return NewMarketClient(_m.config).QueryTrades(_m)
}

// QueryPredictionFactors queries the "prediction_factors" edge of the Market entity.
func (_m *Market) QueryPredictionFactors() *PredictionFactorQuery {
	return NewMarketClient(_m.config).QueryPredictionFactors(_m)
}

// Update returns a builder for updating this Market.
// Note that you need to call Market.Unwrap() before calling this method if this Market
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Market) Update() *MarketUpdateOne {
	return NewMarketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Market entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Market) Unwrap() *Market {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Market is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Market) String() string {
	var builder strings.Builder
	builder.WriteString("Market(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("high_stakes=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighStakes))
	builder.WriteString(", ")
	builder.WriteString("yes_prob=")
	builder.WriteString(fmt.Sprintf("%v", _m.YesProb))
	builder.WriteString(", ")
	builder.WriteString("no_prob=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoProb))
	builder.WriteString(", ")
	builder.WriteString("volume=")
	builder.WriteString(fmt.Sprintf("%v", _m.Volume))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ClaimID; v != nil {
		builder.WriteString("claim_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClosesAt; v != nil {
		builder.WriteString("closes_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Markets is a parsable slice of Market.
type Markets []*Market
