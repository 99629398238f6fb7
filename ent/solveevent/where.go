// Code generated by ent, DO NOT EDIT.

package solveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kaisuddinahmed/mymath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldRequestID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldQuestion, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldGrade, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTopic, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldAnswer, v))
}

// SolverUsed applies equality check predicate on the "solver_used" field. It's identical to SolverUsedEQ.
func SolverUsed(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSolverUsed, v))
}

// IsAboveGrade applies equality check predicate on the "is_above_grade" field. It's identical to IsAboveGradeEQ.
func IsAboveGrade(v bool) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldIsAboveGrade, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldRequestID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldGrade, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldTopic, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// SolverUsedEQ applies the EQ predicate on the "solver_used" field.
func SolverUsedEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldSolverUsed, v))
}

// SolverUsedNEQ applies the NEQ predicate on the "solver_used" field.
func SolverUsedNEQ(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldSolverUsed, v))
}

// SolverUsedIn applies the In predicate on the "solver_used" field.
func SolverUsedIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldSolverUsed, vs...))
}

// SolverUsedNotIn applies the NotIn predicate on the "solver_used" field.
func SolverUsedNotIn(vs ...string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldSolverUsed, vs...))
}

// SolverUsedGT applies the GT predicate on the "solver_used" field.
func SolverUsedGT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldSolverUsed, v))
}

// SolverUsedGTE applies the GTE predicate on the "solver_used" field.
func SolverUsedGTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldSolverUsed, v))
}

// SolverUsedLT applies the LT predicate on the "solver_used" field.
func SolverUsedLT(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldSolverUsed, v))
}

// SolverUsedLTE applies the LTE predicate on the "solver_used" field.
func SolverUsedLTE(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldSolverUsed, v))
}

// SolverUsedContains applies the Contains predicate on the "solver_used" field.
func SolverUsedContains(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContains(FieldSolverUsed, v))
}

// SolverUsedHasPrefix applies the HasPrefix predicate on the "solver_used" field.
func SolverUsedHasPrefix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasPrefix(FieldSolverUsed, v))
}

// SolverUsedHasSuffix applies the HasSuffix predicate on the "solver_used" field.
func SolverUsedHasSuffix(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldHasSuffix(FieldSolverUsed, v))
}

// SolverUsedEqualFold applies the EqualFold predicate on the "solver_used" field.
func SolverUsedEqualFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEqualFold(FieldSolverUsed, v))
}

// SolverUsedContainsFold applies the ContainsFold predicate on the "solver_used" field.
func SolverUsedContainsFold(v string) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldContainsFold(FieldSolverUsed, v))
}

// IsAboveGradeEQ applies the EQ predicate on the "is_above_grade" field.
func IsAboveGradeEQ(v bool) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldIsAboveGrade, v))
}

// IsAboveGradeNEQ applies the NEQ predicate on the "is_above_grade" field.
func IsAboveGradeNEQ(v bool) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldIsAboveGrade, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.SolveEvent {
	return predicate.SolveEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolveEvent) predicate.SolveEvent {
	return predicate.SolveEvent(sql.NotPredicates(p))
}
