package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions. Columns are indexed by position in the *Columns slices,
// so keep the order stable when adding fields.
var (
	// ResultsColumns holds the columns for the "assessment_results" table.
	ResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "saved_at", Type: field.TypeTime},
		{Name: "industry", Type: field.TypeString, Default: ""},
		{Name: "company_name", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString, Default: ""},
		{Name: "overall_score", Type: field.TypeInt},
		{Name: "max_possible_score", Type: field.TypeInt},
		{Name: "competencies", Type: field.TypeJSON},
	}
	// ResultsTable holds the schema information for the "assessment_results" table.
	ResultsTable = &schema.Table{
		Name:       "assessment_results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresult_completed_at",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[3]},
			},
		},
	}

	// LLMRequestEventsColumns holds the columns for the "llm_request_events" table.
	LLMRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LLMRequestEventsTable holds the schema information for the "llm_request_events" table.
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LLMRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LLMRequestEventsColumns[5]},
			},
		},
	}

	// SequenceColumns holds the columns for the single-row "global_sequence" table.
	SequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// SequenceTable holds the next value of the sequence shared by all tables.
	SequenceTable = &schema.Table{
		Name:       "global_sequence",
		Columns:    SequenceColumns,
		PrimaryKey: []*schema.Column{SequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResultsTable,
		LLMRequestEventsTable,
		SequenceTable,
	}
)
