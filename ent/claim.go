// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/claim"
)

// Claim is the model entity for the Claim schema.
type Claim struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Normalized factual claim in neutral formal Spanish (full-text searchable)
	Text string `json:"text,omitempty"`
	// Raw source content the claim was extracted from
	OriginalText string `json:"original_text,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict claim.Verdict `json:"verdict,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// 0..1 calibrated confidence
	Confidence float64 `json:"confidence,omitempty"`
	// EvidenceStrength holds the value of the "evidence_strength" field.
	EvidenceStrength claim.EvidenceStrength `json:"evidence_strength,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ReviewPriority holds the value of the "review_priority" field.
	ReviewPriority claim.ReviewPriority `json:"review_priority,omitempty"`
	// Set by the embedding task once the vector column is populated
	HasEmbedding bool `json:"has_embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClaimQuery when eager-loading is set.
	Edges        ClaimEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClaimEdges holds the relations/edges for other nodes in the graph.
type ClaimEdges struct {
	// Sources holds the value of the sources edge.
	Sources []*Source `json:"sources,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence []*Evidence `json:"evidence,omitempty"`
	// Entities holds the value of the entities edge.
	Entities []*Entity `json:"entities,omitempty"`
	// Topics holds the value of the topics edge.
	Topics []*Topic `json:"topics,omitempty"`
	// Markets holds the value of the markets edge.
	Markets []*Market `json:"markets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SourcesOrErr returns the Sources value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) SourcesOrErr() ([]*Source, error) {
	if e.loadedTypes[0] {
		return e.Sources, nil
	}
	return nil, &NotLoadedError{edge: "sources"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) EvidenceOrErr() ([]*Evidence, error) {
	if e.loadedTypes[1] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// EntitiesOrErr returns the Entities value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) EntitiesOrErr() ([]*Entity, error) {
	if e.loadedTypes[2] {
		return e.Entities, nil
	}
	return nil, &NotLoadedError{edge: "entities"}
}

// TopicsOrErr returns the Topics value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) TopicsOrErr() ([]*Topic, error) {
	if e.loadedTypes[3] {
		return e.Topics, nil
	}
	return nil, &NotLoadedError{edge: "topics"}
}

// MarketsOrErr returns the Markets value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) MarketsOrErr() ([]*Market, error) {
	if e.loadedTypes[4] {
		return e.Markets, nil
	}
	return nil, &NotLoadedError{edge: "markets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Claim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claim.FieldNeedsReview, claim.FieldHasEmbedding:
			values[i] = new(sql.NullBool)
		case claim.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case claim.FieldID, claim.FieldText, claim.FieldOriginalText, claim.FieldVerdict, claim.FieldExplanation, claim.FieldEvidenceStrength, claim.FieldReviewPriority:
			values[i] = new(sql.NullString)
		case claim.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Claim fields.
func (_m *Claim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claim.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case claim.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case claim.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = value.String
			}
		case claim.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = claim.Verdict(value.String)
			}
		case claim.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case claim.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case claim.FieldEvidenceStrength:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_strength", values[i])
			} else if value.Valid {
				_m.EvidenceStrength = claim.EvidenceStrength(value.String)
			}
		case claim.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case claim.FieldReviewPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_priority", values[i])
			} else if value.Valid {
				_m.ReviewPriority = claim.ReviewPriority(value.String)
			}
		case claim.FieldHasEmbedding:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_embedding", values[i])
			} else if value.Valid {
				_m.HasEmbedding = value.Bool
			}
		case claim.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Claim.
// This includes values selected through modifiers, order, etc.
func (_m *Claim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySources queries the "sources" edge of the Claim entity.
func (_m *Claim) QuerySources() *SourceQuery {
	return NewClaimClient(_m.config).QuerySources(_m)
}

// QueryEvidence queries the "evidence" edge of the Claim entity.
func (_m *Claim) QueryEvidence() *EvidenceQuery {
	return NewClaimClient(_m.config).QueryEvidence(_m)
}

// QueryEntities queries the "entities" edge of the Claim entity.
func (_m *Claim) QueryEntities() *EntityQuery {
	return NewClaimClient(_m.config).QueryEntities(_m)
}

// QueryTopics queries the "topics" edge of the Claim entity.
func (_m *Claim) QueryTopics() *TopicQuery {
	return NewClaimClient(_m.config).QueryTopics(_m)
}

// QueryMarkets queries the "markets" edge of the Claim entity.
func (_m *Claim) QueryMarkets() *MarketQuery {
	return NewClaimClient(_m.config).QueryMarkets(_m)
}

// Update returns a builder for updating this Claim.
// Note that you need to call Claim.Unwrap() before calling this method if this Claim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Claim) Update() *ClaimUpdateOne {
	return NewClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Claim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Claim) Unwrap() *Claim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Claim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Claim) String() string {
	var builder strings.Builder
	builder.WriteString("Claim(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("original_text=")
	builder.WriteString(_m.OriginalText)
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("evidence_strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceStrength))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("review_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewPriority))
	builder.WriteString(", ")
	builder.WriteString("has_embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasEmbedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Claims is a parsable slice of Claim.
type Claims []*Claim
