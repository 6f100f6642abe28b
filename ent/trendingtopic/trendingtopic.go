// Code generated by ent, DO NOT EDIT.

package trendingtopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trendingtopic type in the database.
	Label = "trending_topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trending_id"
	// FieldSnapshotID holds the string denoting the snapshot_id field in the database.
	FieldSnapshotID = "snapshot_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldTrendScore holds the string denoting the trend_score field in the database.
	FieldTrendScore = "trend_score"
	// FieldVelocity holds the string denoting the velocity field in the database.
	FieldVelocity = "velocity"
	// FieldCorrelation holds the string denoting the correlation field in the database.
	FieldCorrelation = "correlation"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldRisk holds the string denoting the risk field in the database.
	FieldRisk = "risk"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// Table holds the table name of the trendingtopic in the database.
	Table = "trending_topics"
)

// Columns holds all SQL columns for trendingtopic fields.
var Columns = []string{
	FieldID,
	FieldSnapshotID,
	FieldName,
	FieldKeywords,
	FieldTrendScore,
	FieldVelocity,
	FieldCorrelation,
	FieldRelevance,
	FieldRisk,
	FieldPriority,
	FieldDetectedAt,
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
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
)

// OrderOption defines the ordering options for the TrendingTopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySnapshotID orders the results by the snapshot_id field.
func BySnapshotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTrendScore orders the results by the trend_score field.
func ByTrendScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrendScore, opts...).ToFunc()
}

// ByVelocity orders the results by the velocity field.
func ByVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocity, opts...).ToFunc()
}

// ByCorrelation orders the results by the correlation field.
func ByCorrelation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelation, opts...).ToFunc()
}

// ByRelevance orders the results by the relevance field.
func ByRelevance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevance, opts...).ToFunc()
}

// ByRisk orders the results by the risk field.
func ByRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRisk, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}
