// Code generated by ent, DO NOT EDIT.

package trade

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/veraz-project/veraz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trade {
	return predicate.Trade(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trade {
	return predicate.Trade(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trade {
	return predicate.Trade(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trade {
	return predicate.Trade(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trade {
	return predicate.Trade(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trade {
	return predicate.Trade(sql.FieldContainsFold(FieldID, id))
}

// MarketID applies equality check predicate on the "market_id" field. It's identical to MarketIDEQ.
func MarketID(v string) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldMarketID, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldActor, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldSize, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldPrice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldCreatedAt, v))
}

// MarketIDEQ applies the EQ predicate on the "market_id" field.
func MarketIDEQ(v string) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldMarketID, v))
}

// MarketIDNEQ applies the NEQ predicate on the "market_id" field.
func MarketIDNEQ(v string) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldMarketID, v))
}

// MarketIDIn applies the In predicate on the "market_id" field.
func MarketIDIn(vs ...string) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldMarketID, vs...))
}

// MarketIDNotIn applies the NotIn predicate on the "market_id" field.
func MarketIDNotIn(vs ...string) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldMarketID, vs...))
}

// MarketIDGT applies the GT predicate on the "market_id" field.
func MarketIDGT(v string) predicate.Trade {
	return predicate.Trade(sql.FieldGT(FieldMarketID, v))
}

// MarketIDGTE applies the GTE predicate on the "market_id" field.
func MarketIDGTE(v string) predicate.Trade {
	return predicate.Trade(sql.FieldGTE(FieldMarketID, v))
}

// MarketIDLT applies the LT predicate on the "market_id" field.
func MarketIDLT(v string) predicate.Trade {
	return predicate.Trade(sql.FieldLT(FieldMarketID, v))
}

// MarketIDLTE applies the LTE predicate on the "market_id" field.
func MarketIDLTE(v string) predicate.Trade {
	return predicate.Trade(sql.FieldLTE(FieldMarketID, v))
}

// MarketIDContains applies the Contains predicate on the "market_id" field.
func MarketIDContains(v string) predicate.Trade {
	return predicate.Trade(sql.FieldContains(FieldMarketID, v))
}

// MarketIDHasPrefix applies the HasPrefix predicate on the "market_id" field.
func MarketIDHasPrefix(v string) predicate.Trade {
	return predicate.Trade(sql.FieldHasPrefix(FieldMarketID, v))
}

// MarketIDHasSuffix applies the HasSuffix predicate on the "market_id" field.
func MarketIDHasSuffix(v string) predicate.Trade {
	return predicate.Trade(sql.FieldHasSuffix(FieldMarketID, v))
}

// MarketIDEqualFold applies the EqualFold predicate on the "market_id" field.
func MarketIDEqualFold(v string) predicate.Trade {
	return predicate.Trade(sql.FieldEqualFold(FieldMarketID, v))
}

// MarketIDContainsFold applies the ContainsFold predicate on the "market_id" field.
func MarketIDContainsFold(v string) predicate.Trade {
	return predicate.Trade(sql.FieldContainsFold(FieldMarketID, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.Trade {
	return predicate.Trade(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.Trade {
	return predicate.Trade(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.Trade {
	return predicate.Trade(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.Trade {
	return predicate.Trade(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.Trade {
	return predicate.Trade(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.Trade {
	return predicate.Trade(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.Trade {
	return predicate.Trade(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.Trade {
	return predicate.Trade(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.Trade {
	return predicate.Trade(sql.FieldContainsFold(FieldActor, v))
}

// SideEQ applies the EQ predicate on the "side" field.
func SideEQ(v Side) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldSide, v))
}

// SideNEQ applies the NEQ predicate on the "side" field.
func SideNEQ(v Side) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldSide, v))
}

// SideIn applies the In predicate on the "side" field.
func SideIn(vs ...Side) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldSide, vs...))
}

// SideNotIn applies the NotIn predicate on the "side" field.
func SideNotIn(vs ...Side) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldSide, vs...))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...float64) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...float64) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldLTE(FieldSize, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Trade {
	return predicate.Trade(sql.FieldLTE(FieldPrice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trade {
	return predicate.Trade(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMarket applies the HasEdge predicate on the "market" edge.
func HasMarket() predicate.Trade {
	return predicate.Trade(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MarketTable, MarketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMarketWith applies the HasEdge predicate on the "market" edge with a given conditions (other predicates).
func HasMarketWith(preds ...predicate.Market) predicate.Trade {
	return predicate.Trade(func(s *sql.Selector) {
		step := newMarketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trade) predicate.Trade {
	return predicate.Trade(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trade) predicate.Trade {
	return predicate.Trade(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trade) predicate.Trade {
	return predicate.Trade(sql.NotPredicates(p))
}
