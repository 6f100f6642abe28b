// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// Market is the predicate function for market builders.
type Market func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PredictionFactor is the predicate function for predictionfactor builders.
type PredictionFactor func(*sql.Selector)

// SchedulerLease is the predicate function for schedulerlease builders.
type SchedulerLease func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// StatCounter is the predicate function for statcounter builders.
type StatCounter func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// Trade is the predicate function for trade builders.
type Trade func(*sql.Selector)

// TrendingTopic is the predicate function for trendingtopic builders.
type TrendingTopic func(*sql.Selector)
