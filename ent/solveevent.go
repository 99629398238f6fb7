// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaisuddinahmed/mymath/ent/solveevent"
)

// SolveEvent is the model entity for the SolveEvent schema.
type SolveEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared by all event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID for this resolution request
	RequestID string `json:"request_id,omitempty"`
	// The question as asked
	Question string `json:"question,omitempty"`
	// Learner grade the question was asked for, 1-5
	Grade int `json:"grade,omitempty"`
	// Topic the engine settled on
	Topic string `json:"topic,omitempty"`
	// Formatted answer string
	Answer string `json:"answer,omitempty"`
	// deterministic, word_problem, or unsupported
	SolverUsed string `json:"solver_used,omitempty"`
	// Topic usually taught above the asked grade
	IsAboveGrade bool `json:"is_above_grade,omitempty"`
	// Resolution wall-clock time
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolveEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solveevent.FieldIsAboveGrade:
			values[i] = new(sql.NullBool)
		case solveevent.FieldID, solveevent.FieldSequence, solveevent.FieldGrade, solveevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case solveevent.FieldRequestID, solveevent.FieldQuestion, solveevent.FieldTopic, solveevent.FieldAnswer, solveevent.FieldSolverUsed:
			values[i] = new(sql.NullString)
		case solveevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolveEvent fields.
func (_m *SolveEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solveevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solveevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case solveevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case solveevent.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case solveevent.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case solveevent.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case solveevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case solveevent.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case solveevent.FieldSolverUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solver_used", values[i])
			} else if value.Valid {
				_m.SolverUsed = value.String
			}
		case solveevent.FieldIsAboveGrade:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_above_grade", values[i])
			} else if value.Valid {
				_m.IsAboveGrade = value.Bool
			}
		case solveevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolveEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SolveEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SolveEvent.
// Note that you need to call SolveEvent.Unwrap() before calling this method if this SolveEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolveEvent) Update() *SolveEventUpdateOne {
	return NewSolveEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolveEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolveEvent) Unwrap() *SolveEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolveEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolveEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SolveEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("solver_used=")
	builder.WriteString(_m.SolverUsed)
	builder.WriteString(", ")
	builder.WriteString("is_above_grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAboveGrade))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// SolveEvents is a parsable slice of SolveEvent.
type SolveEvents []*SolveEvent
