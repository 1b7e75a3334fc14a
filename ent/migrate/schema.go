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
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SessionSnapshotsColumns holds the columns for the "session_snapshots" table.
	SessionSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
	}
	// SessionSnapshotsTable holds the schema information for the "session_snapshots" table.
	SessionSnapshotsTable = &schema.Table{
		Name:       "session_snapshots",
		Columns:    SessionSnapshotsColumns,
		PrimaryKey: []*schema.Column{SessionSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsnapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionSnapshotsColumns[1]},
			},
			{
				Name:    "sessionsnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionSnapshotsColumns[2]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "user_preview", Type: field.TypeString, Default: ""},
		{Name: "messages_appended", Type: field.TypeInt, Default: 0},
		{Name: "current_step", Type: field.TypeInt, Default: 0},
		{Name: "quiz_phase", Type: field.TypeString, Default: ""},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
			{
				Name:    "turnevent_agent",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SessionSnapshotsTable,
		TurnEventsTable,
	}
)

func init() {
}
