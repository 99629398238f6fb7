// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaisuddinahmed/mymath/ent/solverfaultevent"
)

// SolverFaultEvent is the model entity for the SolverFaultEvent schema.
type SolverFaultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared by all event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Name of the rule module that panicked
	SolverName string `json:"solver_name,omitempty"`
	// Input that triggered the fault
	Question string `json:"question,omitempty"`
	// Recovered panic value, stringified
	PanicText    string `json:"panic_text,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolverFaultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solverfaultevent.FieldID, solverfaultevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case solverfaultevent.FieldSolverName, solverfaultevent.FieldQuestion, solverfaultevent.FieldPanicText:
			values[i] = new(sql.NullString)
		case solverfaultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolverFaultEvent fields.
func (_m *SolverFaultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solverfaultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solverfaultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case solverfaultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case solverfaultevent.FieldSolverName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solver_name", values[i])
			} else if value.Valid {
				_m.SolverName = value.String
			}
		case solverfaultevent.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case solverfaultevent.FieldPanicText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field panic_text", values[i])
			} else if value.Valid {
				_m.PanicText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolverFaultEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SolverFaultEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SolverFaultEvent.
// Note that you need to call SolverFaultEvent.Unwrap() before calling this method if this SolverFaultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolverFaultEvent) Update() *SolverFaultEventUpdateOne {
	return NewSolverFaultEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolverFaultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolverFaultEvent) Unwrap() *SolverFaultEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolverFaultEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolverFaultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SolverFaultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("solver_name=")
	builder.WriteString(_m.SolverName)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("panic_text=")
	builder.WriteString(_m.PanicText)
	builder.WriteByte(')')
	return builder.String()
}

// SolverFaultEvents is a parsable slice of SolverFaultEvent.
type SolverFaultEvents []*SolverFaultEvent
