// Code generated by ent, DO NOT EDIT.

package solverfaultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kaisuddinahmed/mymath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SolverName applies equality check predicate on the "solver_name" field. It's identical to SolverNameEQ.
func SolverName(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldSolverName, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldQuestion, v))
}

// PanicText applies equality check predicate on the "panic_text" field. It's identical to PanicTextEQ.
func PanicText(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldPanicText, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SolverNameEQ applies the EQ predicate on the "solver_name" field.
func SolverNameEQ(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldSolverName, v))
}

// SolverNameNEQ applies the NEQ predicate on the "solver_name" field.
func SolverNameNEQ(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNEQ(FieldSolverName, v))
}

// SolverNameIn applies the In predicate on the "solver_name" field.
func SolverNameIn(vs ...string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldIn(FieldSolverName, vs...))
}

// SolverNameNotIn applies the NotIn predicate on the "solver_name" field.
func SolverNameNotIn(vs ...string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNotIn(FieldSolverName, vs...))
}

// SolverNameGT applies the GT predicate on the "solver_name" field.
func SolverNameGT(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGT(FieldSolverName, v))
}

// SolverNameGTE applies the GTE predicate on the "solver_name" field.
func SolverNameGTE(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGTE(FieldSolverName, v))
}

// SolverNameLT applies the LT predicate on the "solver_name" field.
func SolverNameLT(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLT(FieldSolverName, v))
}

// SolverNameLTE applies the LTE predicate on the "solver_name" field.
func SolverNameLTE(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLTE(FieldSolverName, v))
}

// SolverNameContains applies the Contains predicate on the "solver_name" field.
func SolverNameContains(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldContains(FieldSolverName, v))
}

// SolverNameHasPrefix applies the HasPrefix predicate on the "solver_name" field.
func SolverNameHasPrefix(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldHasPrefix(FieldSolverName, v))
}

// SolverNameHasSuffix applies the HasSuffix predicate on the "solver_name" field.
func SolverNameHasSuffix(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldHasSuffix(FieldSolverName, v))
}

// SolverNameEqualFold applies the EqualFold predicate on the "solver_name" field.
func SolverNameEqualFold(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEqualFold(FieldSolverName, v))
}

// SolverNameContainsFold applies the ContainsFold predicate on the "solver_name" field.
func SolverNameContainsFold(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldContainsFold(FieldSolverName, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// PanicTextEQ applies the EQ predicate on the "panic_text" field.
func PanicTextEQ(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEQ(FieldPanicText, v))
}

// PanicTextNEQ applies the NEQ predicate on the "panic_text" field.
func PanicTextNEQ(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNEQ(FieldPanicText, v))
}

// PanicTextIn applies the In predicate on the "panic_text" field.
func PanicTextIn(vs ...string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldIn(FieldPanicText, vs...))
}

// PanicTextNotIn applies the NotIn predicate on the "panic_text" field.
func PanicTextNotIn(vs ...string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldNotIn(FieldPanicText, vs...))
}

// PanicTextGT applies the GT predicate on the "panic_text" field.
func PanicTextGT(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGT(FieldPanicText, v))
}

// PanicTextGTE applies the GTE predicate on the "panic_text" field.
func PanicTextGTE(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldGTE(FieldPanicText, v))
}

// PanicTextLT applies the LT predicate on the "panic_text" field.
func PanicTextLT(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLT(FieldPanicText, v))
}

// PanicTextLTE applies the LTE predicate on the "panic_text" field.
func PanicTextLTE(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldLTE(FieldPanicText, v))
}

// PanicTextContains applies the Contains predicate on the "panic_text" field.
func PanicTextContains(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldContains(FieldPanicText, v))
}

// PanicTextHasPrefix applies the HasPrefix predicate on the "panic_text" field.
func PanicTextHasPrefix(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldHasPrefix(FieldPanicText, v))
}

// PanicTextHasSuffix applies the HasSuffix predicate on the "panic_text" field.
func PanicTextHasSuffix(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldHasSuffix(FieldPanicText, v))
}

// PanicTextEqualFold applies the EqualFold predicate on the "panic_text" field.
func PanicTextEqualFold(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldEqualFold(FieldPanicText, v))
}

// PanicTextContainsFold applies the ContainsFold predicate on the "panic_text" field.
func PanicTextContainsFold(v string) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.FieldContainsFold(FieldPanicText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolverFaultEvent) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolverFaultEvent) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolverFaultEvent) predicate.SolverFaultEvent {
	return predicate.SolverFaultEvent(sql.NotPredicates(p))
}
