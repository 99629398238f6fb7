// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Default: ""},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_kind_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// SolveEventsColumns holds the columns for the "solve_events" table.
	SolveEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "solver_used", Type: field.TypeString},
		{Name: "is_above_grade", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// SolveEventsTable holds the schema information for the "solve_events" table.
	SolveEventsTable = &schema.Table{
		Name:       "solve_events",
		Columns:    SolveEventsColumns,
		PrimaryKey: []*schema.Column{SolveEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "solveevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[1]},
			},
			{
				Name:    "solveevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[2]},
			},
			{
				Name:    "solveevent_topic",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[6]},
			},
			{
				Name:    "solveevent_solver_used",
				Unique:  false,
				Columns: []*schema.Column{SolveEventsColumns[8]},
			},
		},
	}
	// SolverFaultEventsColumns holds the columns for the "solver_fault_events" table.
	SolverFaultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "solver_name", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "panic_text", Type: field.TypeString, Default: ""},
	}
	// SolverFaultEventsTable holds the schema information for the "solver_fault_events" table.
	SolverFaultEventsTable = &schema.Table{
		Name:       "solver_fault_events",
		Columns:    SolverFaultEventsColumns,
		PrimaryKey: []*schema.Column{SolverFaultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "solverfaultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SolverFaultEventsColumns[1]},
			},
			{
				Name:    "solverfaultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SolverFaultEventsColumns[2]},
			},
			{
				Name:    "solverfaultevent_solver_name",
				Unique:  false,
				Columns: []*schema.Column{SolverFaultEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SnapshotsTable,
		SolveEventsTable,
		SolverFaultEventsTable,
	}
)

func init() {
}
