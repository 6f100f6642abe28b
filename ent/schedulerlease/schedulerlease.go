// Code generated by ent, DO NOT EDIT.

package schedulerlease

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedulerlease type in the database.
	Label = "scheduler_lease"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lease_name"
	// FieldHolder holds the string denoting the holder field in the database.
	FieldHolder = "holder"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the schedulerlease in the database.
	Table = "scheduler_leases"
)

// Columns holds all SQL columns for schedulerlease fields.
var Columns = []string{
	FieldID,
	FieldHolder,
	FieldExpiresAt,
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

// OrderOption defines the ordering options for the SchedulerLease queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHolder orders the results by the holder field.
func ByHolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHolder, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
