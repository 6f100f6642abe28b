// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/veraz-project/veraz/ent/schedulerlease"
)

// SchedulerLease is the model entity for the SchedulerLease schema.
type SchedulerLease struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Holder holds the value of the "holder" field.
	Holder string `json:"holder,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchedulerLease) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedulerlease.FieldID, schedulerlease.FieldHolder:
			values[i] = new(sql.NullString)
		case schedulerlease.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchedulerLease fields.
func (_m *SchedulerLease) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedulerlease.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schedulerlease.FieldHolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field holder", values[i])
			} else if value.Valid {
				_m.Holder = value.String
			}
		case schedulerlease.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchedulerLease.
// This includes values selected through modifiers, order, etc.
func (_m *SchedulerLease) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchedulerLease.
// Note that you need to call SchedulerLease.Unwrap() before calling this method if this SchedulerLease
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchedulerLease) Update() *SchedulerLeaseUpdateOne {
	return NewSchedulerLeaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchedulerLease entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchedulerLease) Unwrap() *SchedulerLease {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchedulerLease is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchedulerLease) String() string {
	var builder strings.Builder
	builder.WriteString("SchedulerLease(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("holder=")
	builder.WriteString(_m.Holder)
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchedulerLeases is a parsable slice of SchedulerLease.
type SchedulerLeases []*SchedulerLease
