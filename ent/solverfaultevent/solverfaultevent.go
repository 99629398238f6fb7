// Code generated by ent, DO NOT EDIT.

package solverfaultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the solverfaultevent type in the database.
	Label = "solver_fault_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSolverName holds the string denoting the solver_name field in the database.
	FieldSolverName = "solver_name"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldPanicText holds the string denoting the panic_text field in the database.
	FieldPanicText = "panic_text"
	// Table holds the table name of the solverfaultevent in the database.
	Table = "solver_fault_events"
)

// Columns holds all SQL columns for solverfaultevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSolverName,
	FieldQuestion,
	FieldPanicText,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SolverNameValidator is a validator for the "solver_name" field. It is called by the builders before save.
	SolverNameValidator func(string) error
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// DefaultPanicText holds the default value on creation for the "panic_text" field.
	DefaultPanicText string
)

// OrderOption defines the ordering options for the SolverFaultEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySolverName orders the results by the solver_name field.
func BySolverName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolverName, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByPanicText orders the results by the panic_text field.
func ByPanicText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPanicText, opts...).ToFunc()
}
