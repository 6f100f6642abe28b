// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predictionfactor"
)

// PredictionFactor is the model entity for the PredictionFactor schema.
type PredictionFactor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MarketID holds the value of the "market_id" field.
	MarketID string `json:"market_id,omitempty"`
	// AssessedProb holds the value of the "assessed_prob" field.
	AssessedProb float64 `json:"assessed_prob,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Sentiment/news aggregate inputs
	DataSources map[string]interface{} `json:"data_sources,omitempty"`
	// AgentVersion holds the value of the "agent_version" field.
	AgentVersion string `json:"agent_version,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PredictionFactorQuery when eager-loading is set.
	Edges        PredictionFactorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PredictionFactorEdges holds the relations/edges for other nodes in the graph.
type PredictionFactorEdges struct {
	// Market holds the value of the market edge.
	Market *Market `json:"market,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MarketOrErr returns the Market value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PredictionFactorEdges) MarketOrErr() (*Market, error) {
	if e.Market != nil {
		return e.Market, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: market.Label}
	}
	return nil, &NotLoadedError{edge: "market"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PredictionFactor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case predictionfactor.FieldDataSources:
			values[i] = new([]byte)
		case predictionfactor.FieldAssessedProb, predictionfactor.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case predictionfactor.FieldID, predictionfactor.FieldMarketID, predictionfactor.FieldReasoning, predictionfactor.FieldAgentVersion:
			values[i] = new(sql.NullString)
		case predictionfactor.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PredictionFactor fields.
func (_m *PredictionFactor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case predictionfactor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case predictionfactor.FieldMarketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market_id", values[i])
			} else if value.Valid {
				_m.MarketID = value.String
			}
		case predictionfactor.FieldAssessedProb:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field assessed_prob", values[i])
			} else if value.Valid {
				_m.AssessedProb = value.Float64
			}
		case predictionfactor.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case predictionfactor.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case predictionfactor.FieldDataSources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data_sources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DataSources); err != nil {
					return fmt.Errorf("unmarshal field data_sources: %w", err)
				}
			}
		case predictionfactor.FieldAgentVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_version", values[i])
			} else if value.Valid {
				_m.AgentVersion = value.String
			}
		case predictionfactor.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PredictionFactor.
// This includes values selected through modifiers, order, etc.
func (_m *PredictionFactor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMarket queries the "market" edge of the PredictionFactor entity.
func (_m *PredictionFactor) QueryMarket() *MarketQuery {
	return NewPredictionFactorClient(_m.config).QueryMarket(_m)
}

// Update returns a builder for updating this PredictionFactor.
// Note that you need to call PredictionFactor.Unwrap() before calling this method if this PredictionFactor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PredictionFactor) Update() *PredictionFactorUpdateOne {
	return NewPredictionFactorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PredictionFactor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PredictionFactor) Unwrap() *PredictionFactor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PredictionFactor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PredictionFactor) String() string {
	var builder strings.Builder
	builder.WriteString("PredictionFactor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("market_id=")
	builder.WriteString(_m.MarketID)
	builder.WriteString(", ")
	builder.WriteString("assessed_prob=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssessedProb))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("data_sources=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataSources))
	builder.WriteString(", ")
	builder.WriteString("agent_version=")
	builder.WriteString(_m.AgentVersion)
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PredictionFactors is a parsable slice of PredictionFactor.
type PredictionFactors []*PredictionFactor
