// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_call", "call_queued", "call_in_progress", "call_completed", "call_failed", "scoring", "qualified", "awaiting_cv", "cv_followup_1", "cv_followup_2", "cv_overdue", "cv_received", "not_qualified", "awaiting_cv_rejected", "cv_received_rejected", "callback_scheduled", "needs_human", "closed"}, Default: "pending_call"},
		{Name: "qualified", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "score_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cv_received_at", Type: field.TypeTime, Nullable: true},
		{Name: "callback_scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "needs_human_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeInt},
		{Name: "position_id", Type: field.TypeInt},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "applications_candidates_applications",
				Columns:    []*schema.Column{ApplicationsColumns[10]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "applications_positions_applications",
				Columns:    []*schema.Column{ApplicationsColumns[11]},
				RefColumns: []*schema.Column{PositionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[1]},
			},
			{
				Name:    "application_qualified",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[2]},
			},
			{
				Name:    "application_callback_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[6]},
			},
			{
				Name:    "application_candidate_id_position_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationsColumns[10], ApplicationsColumns[11]},
			},
		},
	}
	// CvUploadsColumns holds the columns for the "cv_uploads" table.
	CvUploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"email", "whatsapp", "manual"}, Default: "email"},
		{Name: "match_method", Type: field.TypeEnum, Enums: []string{"exact_email", "exact_phone", "subject_id", "fuzzy_name", "cv_content", "manual"}},
		{Name: "match_confidence", Type: field.TypeEnum, Enums: []string{"high", "medium"}, Default: "high"},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeInt},
		{Name: "candidate_id", Type: field.TypeInt},
	}
	// CvUploadsTable holds the schema information for the "cv_uploads" table.
	CvUploadsTable = &schema.Table{
		Name:       "cv_uploads",
		Columns:    CvUploadsColumns,
		PrimaryKey: []*schema.Column{CvUploadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cv_uploads_applications_cv_uploads",
				Columns:    []*schema.Column{CvUploadsColumns[8]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "cv_uploads_candidates_cv_uploads",
				Columns:    []*schema.Column{CvUploadsColumns[9]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cvupload_application_id",
				Unique:  false,
				Columns: []*schema.Column{CvUploadsColumns[8]},
			},
			{
				Name:    "cvupload_needs_review",
				Unique:  false,
				Columns: []*schema.Column{CvUploadsColumns[6]},
			},
		},
	}
	// CallsColumns holds the columns for the "calls" table.
	CallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "external_conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "external_batch_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"initiated", "in_progress", "completed", "failed", "no_answer", "busy"}, Default: "initiated"},
		{Name: "transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_title", Type: field.TypeString, Nullable: true},
		{Name: "recording_url", Type: field.TypeString, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "initiated_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeInt},
	}
	// CallsTable holds the schema information for the "calls" table.
	CallsTable = &schema.Table{
		Name:       "calls",
		Columns:    CallsColumns,
		PrimaryKey: []*schema.Column{CallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "calls_applications_calls",
				Columns:    []*schema.Column{CallsColumns[15]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "call_application_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[15], CallsColumns[13]},
			},
			{
				Name:    "call_status",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[4]},
			},
			{
				Name:    "call_external_conversation_id",
				Unique:  true,
				Columns: []*schema.Column{CallsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "external_conversation_id IS NOT NULL",
				},
			},
			{
				Name:    "call_external_batch_id",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[3]},
			},
		},
	}
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "whatsapp_number", Type: field.TypeString, Nullable: true},
		{Name: "lead_source_id", Type: field.TypeString, Nullable: true},
		{Name: "form_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "candidate_email",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[3]},
			},
			{
				Name:    "candidate_phone",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[4]},
			},
			{
				Name:    "candidate_lead_source_id",
				Unique:  true,
				Columns: []*schema.Column{CandidatesColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "lead_source_id IS NOT NULL",
				},
			},
		},
	}
	// CandidateRepliesColumns holds the columns for the "candidate_replies" table.
	CandidateRepliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"whatsapp", "email"}},
		{Name: "sender", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeInt, Nullable: true},
		{Name: "candidate_id", Type: field.TypeInt, Nullable: true},
	}
	// CandidateRepliesTable holds the schema information for the "candidate_replies" table.
	CandidateRepliesTable = &schema.Table{
		Name:       "candidate_replies",
		Columns:    CandidateRepliesColumns,
		PrimaryKey: []*schema.Column{CandidateRepliesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidate_replies_applications_replies",
				Columns:    []*schema.Column{CandidateRepliesColumns[8]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "candidate_replies_candidates_replies",
				Columns:    []*schema.Column{CandidateRepliesColumns[9]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "candidatereply_is_read",
				Unique:  false,
				Columns: []*schema.Column{CandidateRepliesColumns[6]},
			},
			{
				Name:    "candidatereply_received_at",
				Unique:  false,
				Columns: []*schema.Column{CandidateRepliesColumns[7]},
			},
			{
				Name:    "candidatereply_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{CandidateRepliesColumns[9]},
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"qualified", "not_qualified", "callback_requested", "needs_human"}},
		{Name: "qualified", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "disqualifying_factor", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "callback_requested", Type: field.TypeBool, Default: false},
		{Name: "callback_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "callback_at", Type: field.TypeTime, Nullable: true},
		{Name: "needs_human", Type: field.TypeBool, Default: false},
		{Name: "needs_human_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeInt},
		{Name: "call_id", Type: field.TypeInt, Unique: true},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_applications_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[15]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "evaluations_calls_evaluation",
				Columns:    []*schema.Column{EvaluationsColumns[16]},
				RefColumns: []*schema.Column{CallsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_application_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[15]},
			},
			{
				Name:    "evaluation_outcome",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "whatsapp"}},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"cv_request", "cv_request_rejected", "cv_followup_1", "cv_followup_2", "rejection", "other"}, Default: "other"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "delivered", "failed"}, Default: "pending"},
		{Name: "recipient", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "error_detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeInt},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_applications_messages",
				Columns:    []*schema.Column{MessagesColumns[10]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_application_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[10], MessagesColumns[8]},
			},
			{
				Name:    "message_status",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3]},
			},
			{
				Name:    "message_message_type",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2]},
			},
		},
	}
	// MessageTemplatesColumns holds the columns for the "message_templates" table.
	MessageTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"cv_request", "cv_request_rejected", "cv_followup_1", "cv_followup_2", "rejection", "other"}},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "whatsapp"}},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MessageTemplatesTable holds the schema information for the "message_templates" table.
	MessageTemplatesTable = &schema.Table{
		Name:       "message_templates",
		Columns:    MessageTemplatesColumns,
		PrimaryKey: []*schema.Column{MessageTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messagetemplate_message_type_channel",
				Unique:  true,
				Columns: []*schema.Column{MessageTemplatesColumns[1], MessageTemplatesColumns[2]},
			},
		},
	}
	// PositionsColumns holds the columns for the "positions" table.
	PositionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "paused", "closed"}, Default: "open"},
		{Name: "agent_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_first_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "qualification_criteria", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "calling_hours_start", Type: field.TypeInt, Default: 9},
		{Name: "calling_hours_end", Type: field.TypeInt, Default: 18},
		{Name: "call_retry_max", Type: field.TypeInt, Default: 3},
		{Name: "call_retry_interval_minutes", Type: field.TypeInt, Default: 60},
		{Name: "follow_up_interval_hours", Type: field.TypeInt, Default: 24},
		{Name: "rejected_cv_timeout_days", Type: field.TypeInt, Default: 14},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PositionsTable holds the schema information for the "positions" table.
	PositionsTable = &schema.Table{
		Name:       "positions",
		Columns:    PositionsColumns,
		PrimaryKey: []*schema.Column{PositionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "position_status",
				Unique:  false,
				Columns: []*schema.Column{PositionsColumns[3]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// StatusChangesColumns holds the columns for the "status_changes" table.
	StatusChangesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "changed_by", Type: field.TypeString, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeInt},
	}
	// StatusChangesTable holds the schema information for the "status_changes" table.
	StatusChangesTable = &schema.Table{
		Name:       "status_changes",
		Columns:    StatusChangesColumns,
		PrimaryKey: []*schema.Column{StatusChangesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "status_changes_applications_status_changes",
				Columns:    []*schema.Column{StatusChangesColumns[6]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "statuschange_application_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StatusChangesColumns[6], StatusChangesColumns[5]},
			},
			{
				Name:    "statuschange_to_status",
				Unique:  false,
				Columns: []*schema.Column{StatusChangesColumns[2]},
			},
		},
	}
	// UnmatchedInboundsColumns holds the columns for the "unmatched_inbounds" table.
	UnmatchedInboundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "whatsapp"}, Default: "email"},
		{Name: "sender", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body_snippet", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "original_filename", Type: field.TypeString, Nullable: true},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_application_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// UnmatchedInboundsTable holds the schema information for the "unmatched_inbounds" table.
	UnmatchedInboundsTable = &schema.Table{
		Name:       "unmatched_inbounds",
		Columns:    UnmatchedInboundsColumns,
		PrimaryKey: []*schema.Column{UnmatchedInboundsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unmatchedinbound_resolved",
				Unique:  false,
				Columns: []*schema.Column{UnmatchedInboundsColumns[8]},
			},
			{
				Name:    "unmatchedinbound_created_at",
				Unique:  false,
				Columns: []*schema.Column{UnmatchedInboundsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		CvUploadsTable,
		CallsTable,
		CandidatesTable,
		CandidateRepliesTable,
		EvaluationsTable,
		MessagesTable,
		MessageTemplatesTable,
		PositionsTable,
		SettingsTable,
		StatusChangesTable,
		UnmatchedInboundsTable,
	}
)

func init() {
	ApplicationsTable.ForeignKeys[0].RefTable = CandidatesTable
	ApplicationsTable.ForeignKeys[1].RefTable = PositionsTable
	CvUploadsTable.ForeignKeys[0].RefTable = ApplicationsTable
	CvUploadsTable.ForeignKeys[1].RefTable = CandidatesTable
	CallsTable.ForeignKeys[0].RefTable = ApplicationsTable
	CandidateRepliesTable.ForeignKeys[0].RefTable = ApplicationsTable
	CandidateRepliesTable.ForeignKeys[1].RefTable = CandidatesTable
	EvaluationsTable.ForeignKeys[0].RefTable = ApplicationsTable
	EvaluationsTable.ForeignKeys[1].RefTable = CallsTable
	MessagesTable.ForeignKeys[0].RefTable = ApplicationsTable
	StatusChangesTable.ForeignKeys[0].RefTable = ApplicationsTable
}
