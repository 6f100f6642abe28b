// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/trendingtopic"
)

// TrendingTopic is the model entity for the TrendingTopic schema.
type TrendingTopic struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// All rows of one detector run share a snapshot_id
	SnapshotID string `json:"snapshot_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords []string `json:"keywords,omitempty"`
	// TrendScore holds the value of the "trend_score" field.
	TrendScore float64 `json:"trend_score,omitempty"`
	// Velocity holds the value of the "velocity" field.
	Velocity float64 `json:"velocity,omitempty"`
	// Correlation holds the value of the "correlation" field.
	Correlation float64 `json:"correlation,omitempty"`
	// Relevance holds the value of the "relevance" field.
	Relevance float64 `json:"relevance,omitempty"`
	// Risk holds the value of the "risk" field.
	Risk float64 `json:"risk,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority float64 `json:"priority,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt   time.Time `json:"detected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrendingTopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trendingtopic.FieldKeywords:
			values[i] = new([]byte)
		case trendingtopic.FieldTrendScore, trendingtopic.FieldVelocity, trendingtopic.FieldCorrelation, trendingtopic.FieldRelevance, trendingtopic.FieldRisk, trendingtopic.FieldPriority:
			values[i] = new(sql.NullFloat64)
		case trendingtopic.FieldID, trendingtopic.FieldSnapshotID, trendingtopic.FieldName:
			values[i] = new(sql.NullString)
		case trendingtopic.FieldDetectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrendingTopic fields.
func (_m *TrendingTopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trendingtopic.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trendingtopic.FieldSnapshotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_id", values[i])
			} else if value.Valid {
				_m.SnapshotID = value.String
			}
		case trendingtopic.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case trendingtopic.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case trendingtopic.FieldTrendScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trend_score", values[i])
			} else if value.Valid {
				_m.TrendScore = value.Float64
			}
		case trendingtopic.FieldVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field velocity", values[i])
			} else if value.Valid {
				_m.Velocity = value.Float64
			}
		case trendingtopic.FieldCorrelation:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field correlation", values[i])
			} else if value.Valid {
				_m.Correlation = value.Float64
			}
		case trendingtopic.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case trendingtopic.FieldRisk:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk", values[i])
			} else if value.Valid {
				_m.Risk = value.Float64
			}
		case trendingtopic.FieldPriority:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.Float64
			}
		case trendingtopic.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrendingTopic.
// This includes values selected through modifiers, order, etc.
func (_m *TrendingTopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrendingTopic.
// Note that you need to call TrendingTopic.Unwrap() before calling this method if this TrendingTopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrendingTopic) Update() *TrendingTopicUpdateOne {
	return NewTrendingTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrendingTopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrendingTopic) Unwrap() *TrendingTopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrendingTopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrendingTopic) String() string {
	var builder strings.Builder
	builder.WriteString("TrendingTopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("snapshot_id=")
	builder.WriteString(_m.SnapshotID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	builder.WriteString("trend_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrendScore))
	builder.WriteString(", ")
	builder.WriteString("velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Velocity))
	builder.WriteString(", ")
	builder.WriteString("correlation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correlation))
	builder.WriteString(", ")
	builder.WriteString("relevance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relevance))
	builder.WriteString(", ")
	builder.WriteString("risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.Risk))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrendingTopics is a parsable slice of TrendingTopic.
type TrendingTopics []*TrendingTopic
