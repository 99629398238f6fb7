// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kaisuddinahmed/mymath/ent/llmrequestevent"
	"github.com/kaisuddinahmed/mymath/ent/schema"
	"github.com/kaisuddinahmed/mymath/ent/snapshot"
	"github.com/kaisuddinahmed/mymath/ent/solveevent"
	"github.com/kaisuddinahmed/mymath/ent/solverfaultevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescRequestID is the schema descriptor for request_id field.
	llmrequesteventDescRequestID := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultRequestID holds the default value on creation for the request_id field.
	llmrequestevent.DefaultRequestID = llmrequesteventDescRequestID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescKind is the schema descriptor for kind field.
	snapshotDescKind := snapshotFields[0].Descriptor()
	// snapshot.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	snapshot.KindValidator = snapshotDescKind.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	solveeventMixin := schema.SolveEvent{}.Mixin()
	solveeventMixinFields0 := solveeventMixin[0].Fields()
	_ = solveeventMixinFields0
	solveeventFields := schema.SolveEvent{}.Fields()
	_ = solveeventFields
	// solveeventDescTimestamp is the schema descriptor for timestamp field.
	solveeventDescTimestamp := solveeventMixinFields0[1].Descriptor()
	// solveevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	solveevent.DefaultTimestamp = solveeventDescTimestamp.Default.(func() time.Time)
	// solveeventDescRequestID is the schema descriptor for request_id field.
	solveeventDescRequestID := solveeventFields[0].Descriptor()
	// solveevent.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	solveevent.RequestIDValidator = solveeventDescRequestID.Validators[0].(func(string) error)
	// solveeventDescQuestion is the schema descriptor for question field.
	solveeventDescQuestion := solveeventFields[1].Descriptor()
	// solveevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	solveevent.QuestionValidator = solveeventDescQuestion.Validators[0].(func(string) error)
	// solveeventDescTopic is the schema descriptor for topic field.
	solveeventDescTopic := solveeventFields[3].Descriptor()
	// solveevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	solveevent.TopicValidator = solveeventDescTopic.Validators[0].(func(string) error)
	// solveeventDescSolverUsed is the schema descriptor for solver_used field.
	solveeventDescSolverUsed := solveeventFields[5].Descriptor()
	// solveevent.SolverUsedValidator is a validator for the "solver_used" field. It is called by the builders before save.
	solveevent.SolverUsedValidator = solveeventDescSolverUsed.Validators[0].(func(string) error)
	// solveeventDescIsAboveGrade is the schema descriptor for is_above_grade field.
	solveeventDescIsAboveGrade := solveeventFields[6].Descriptor()
	// solveevent.DefaultIsAboveGrade holds the default value on creation for the is_above_grade field.
	solveevent.DefaultIsAboveGrade = solveeventDescIsAboveGrade.Default.(bool)
	// solveeventDescDurationMs is the schema descriptor for duration_ms field.
	solveeventDescDurationMs := solveeventFields[7].Descriptor()
	// solveevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	solveevent.DefaultDurationMs = solveeventDescDurationMs.Default.(int64)
	solverfaulteventMixin := schema.SolverFaultEvent{}.Mixin()
	solverfaulteventMixinFields0 := solverfaulteventMixin[0].Fields()
	_ = solverfaulteventMixinFields0
	solverfaulteventFields := schema.SolverFaultEvent{}.Fields()
	_ = solverfaulteventFields
	// solverfaulteventDescTimestamp is the schema descriptor for timestamp field.
	solverfaulteventDescTimestamp := solverfaulteventMixinFields0[1].Descriptor()
	// solverfaultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	solverfaultevent.DefaultTimestamp = solverfaulteventDescTimestamp.Default.(func() time.Time)
	// solverfaulteventDescSolverName is the schema descriptor for solver_name field.
	solverfaulteventDescSolverName := solverfaulteventFields[0].Descriptor()
	// solverfaultevent.SolverNameValidator is a validator for the "solver_name" field. It is called by the builders before save.
	solverfaultevent.SolverNameValidator = solverfaulteventDescSolverName.Validators[0].(func(string) error)
	// solverfaulteventDescQuestion is the schema descriptor for question field.
	solverfaulteventDescQuestion := solverfaulteventFields[1].Descriptor()
	// solverfaultevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	solverfaultevent.QuestionValidator = solverfaulteventDescQuestion.Validators[0].(func(string) error)
	// solverfaulteventDescPanicText is the schema descriptor for panic_text field.
	solverfaulteventDescPanicText := solverfaulteventFields[2].Descriptor()
	// solverfaultevent.DefaultPanicText holds the default value on creation for the panic_text field.
	solverfaultevent.DefaultPanicText = solverfaulteventDescPanicText.Default.(string)
}
