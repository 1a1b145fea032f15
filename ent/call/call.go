// Code generated by ent, DO NOT EDIT.

package call

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the call type in the database.
	Label = "call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldExternalConversationID holds the string denoting the external_conversation_id field in the database.
	FieldExternalConversationID = "external_conversation_id"
	// FieldExternalBatchID holds the string denoting the external_batch_id field in the database.
	FieldExternalBatchID = "external_batch_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSummaryTitle holds the string denoting the summary_title field in the database.
	FieldSummaryTitle = "summary_title"
	// FieldRecordingURL holds the string denoting the recording_url field in the database.
	FieldRecordingURL = "recording_url"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// FieldInitiatedAt holds the string denoting the initiated_at field in the database.
	FieldInitiatedAt = "initiated_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplication holds the string denoting the application edge name in mutations.
	EdgeApplication = "application"
	// EdgeEvaluation holds the string denoting the evaluation edge name in mutations.
	EdgeEvaluation = "evaluation"
	// Table holds the table name of the call in the database.
	Table = "calls"
	// ApplicationTable is the table that holds the application relation/edge.
	ApplicationTable = "calls"
	// ApplicationInverseTable is the table name for the Application entity.
	// It exists in this package in order to avoid circular dependency with the "application" package.
	ApplicationInverseTable = "applications"
	// ApplicationColumn is the table column denoting the application relation/edge.
	ApplicationColumn = "application_id"
	// EvaluationTable is the table that holds the evaluation relation/edge.
	EvaluationTable = "evaluations"
	// EvaluationInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationInverseTable = "evaluations"
	// EvaluationColumn is the table column denoting the evaluation relation/edge.
	EvaluationColumn = "call_id"
)

// Columns holds all SQL columns for call fields.
var Columns = []string{
	FieldID,
	FieldApplicationID,
	FieldAttemptNumber,
	FieldExternalConversationID,
	FieldExternalBatchID,
	FieldStatus,
	FieldTranscript,
	FieldSummary,
	FieldSummaryTitle,
	FieldRecordingURL,
	FieldDurationSeconds,
	FieldRawPayload,
	FieldInitiatedAt,
	FieldEndedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultAttemptNumber holds the default value on creation for the "attempt_number" field.
	DefaultAttemptNumber int
	// DefaultInitiatedAt holds the default value on creation for the "initiated_at" field.
	DefaultInitiatedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInitiated is the default value of the Status enum.
const DefaultStatus = StatusInitiated

// Status values.
const (
	StatusInitiated  Status = "initiated"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusNoAnswer   Status = "no_answer"
	StatusBusy       Status = "busy"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInitiated, StatusInProgress, StatusCompleted, StatusFailed, StatusNoAnswer, StatusBusy:
		return nil
	default:
		return fmt.Errorf("call: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Call queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByExternalConversationID orders the results by the external_conversation_id field.
func ByExternalConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalConversationID, opts...).ToFunc()
}

// ByExternalBatchID orders the results by the external_batch_id field.
func ByExternalBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalBatchID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTranscript orders the results by the transcript field.
func ByTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscript, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySummaryTitle orders the results by the summary_title field.
func BySummaryTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryTitle, opts...).ToFunc()
}

// ByRecordingURL orders the results by the recording_url field.
func ByRecordingURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingURL, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByInitiatedAt orders the results by the initiated_at field.
func ByInitiatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiatedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByApplicationField orders the results by application field.
func ByApplicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationField orders the results by evaluation field.
func ByEvaluationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
	)
}
func newEvaluationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EvaluationTable, EvaluationColumn),
	)
}
