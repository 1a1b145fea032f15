// Code generated by ent, DO NOT EDIT.

package application

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldPositionID holds the string denoting the position_id field in the database.
	FieldPositionID = "position_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldQualified holds the string denoting the qualified field in the database.
	FieldQualified = "qualified"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldScoreNotes holds the string denoting the score_notes field in the database.
	FieldScoreNotes = "score_notes"
	// FieldCvReceivedAt holds the string denoting the cv_received_at field in the database.
	FieldCvReceivedAt = "cv_received_at"
	// FieldCallbackScheduledAt holds the string denoting the callback_scheduled_at field in the database.
	FieldCallbackScheduledAt = "callback_scheduled_at"
	// FieldNeedsHumanReason holds the string denoting the needs_human_reason field in the database.
	FieldNeedsHumanReason = "needs_human_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCandidate holds the string denoting the candidate edge name in mutations.
	EdgeCandidate = "candidate"
	// EdgePosition holds the string denoting the position edge name in mutations.
	EdgePosition = "position"
	// EdgeStatusChanges holds the string denoting the status_changes edge name in mutations.
	EdgeStatusChanges = "status_changes"
	// EdgeCalls holds the string denoting the calls edge name in mutations.
	EdgeCalls = "calls"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// EdgeCvUploads holds the string denoting the cv_uploads edge name in mutations.
	EdgeCvUploads = "cv_uploads"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeReplies holds the string denoting the replies edge name in mutations.
	EdgeReplies = "replies"
	// Table holds the table name of the application in the database.
	Table = "applications"
	// CandidateTable is the table that holds the candidate relation/edge.
	CandidateTable = "applications"
	// CandidateInverseTable is the table name for the Candidate entity.
	// It exists in this package in order to avoid circular dependency with the "candidate" package.
	CandidateInverseTable = "candidates"
	// CandidateColumn is the table column denoting the candidate relation/edge.
	CandidateColumn = "candidate_id"
	// PositionTable is the table that holds the position relation/edge.
	PositionTable = "applications"
	// PositionInverseTable is the table name for the Position entity.
	// It exists in this package in order to avoid circular dependency with the "position" package.
	PositionInverseTable = "positions"
	// PositionColumn is the table column denoting the position relation/edge.
	PositionColumn = "position_id"
	// StatusChangesTable is the table that holds the status_changes relation/edge.
	StatusChangesTable = "status_changes"
	// StatusChangesInverseTable is the table name for the StatusChange entity.
	// It exists in this package in order to avoid circular dependency with the "statuschange" package.
	StatusChangesInverseTable = "status_changes"
	// StatusChangesColumn is the table column denoting the status_changes relation/edge.
	StatusChangesColumn = "application_id"
	// CallsTable is the table that holds the calls relation/edge.
	CallsTable = "calls"
	// CallsInverseTable is the table name for the Call entity.
	// It exists in this package in order to avoid circular dependency with the "call" package.
	CallsInverseTable = "calls"
	// CallsColumn is the table column denoting the calls relation/edge.
	CallsColumn = "application_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "evaluations"
	// EvaluationsInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationsInverseTable = "evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "application_id"
	// CvUploadsTable is the table that holds the cv_uploads relation/edge.
	CvUploadsTable = "cv_uploads"
	// CvUploadsInverseTable is the table name for the CVUpload entity.
	// It exists in this package in order to avoid circular dependency with the "cvupload" package.
	CvUploadsInverseTable = "cv_uploads"
	// CvUploadsColumn is the table column denoting the cv_uploads relation/edge.
	CvUploadsColumn = "application_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "application_id"
	// RepliesTable is the table that holds the replies relation/edge.
	RepliesTable = "candidate_replies"
	// RepliesInverseTable is the table name for the CandidateReply entity.
	// It exists in this package in order to avoid circular dependency with the "candidatereply" package.
	RepliesInverseTable = "candidate_replies"
	// RepliesColumn is the table column denoting the replies relation/edge.
	RepliesColumn = "application_id"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldCandidateID,
	FieldPositionID,
	FieldStatus,
	FieldQualified,
	FieldScore,
	FieldScoreNotes,
	FieldCvReceivedAt,
	FieldCallbackScheduledAt,
	FieldNeedsHumanReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingCall is the default value of the Status enum.
const DefaultStatus = StatusPendingCall

// Status values.
const (
	StatusPendingCall        Status = "pending_call"
	StatusCallQueued         Status = "call_queued"
	StatusCallInProgress     Status = "call_in_progress"
	StatusCallCompleted      Status = "call_completed"
	StatusCallFailed         Status = "call_failed"
	StatusScoring            Status = "scoring"
	StatusQualified          Status = "qualified"
	StatusAwaitingCv         Status = "awaiting_cv"
	StatusCvFollowup1        Status = "cv_followup_1"
	StatusCvFollowup2        Status = "cv_followup_2"
	StatusCvOverdue          Status = "cv_overdue"
	StatusCvReceived         Status = "cv_received"
	StatusNotQualified       Status = "not_qualified"
	StatusAwaitingCvRejected Status = "awaiting_cv_rejected"
	StatusCvReceivedRejected Status = "cv_received_rejected"
	StatusCallbackScheduled  Status = "callback_scheduled"
	StatusNeedsHuman         Status = "needs_human"
	StatusClosed             Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingCall, StatusCallQueued, StatusCallInProgress, StatusCallCompleted, StatusCallFailed, StatusScoring, StatusQualified, StatusAwaitingCv, StatusCvFollowup1, StatusCvFollowup2, StatusCvOverdue, StatusCvReceived, StatusNotQualified, StatusAwaitingCvRejected, StatusCvReceivedRejected, StatusCallbackScheduled, StatusNeedsHuman, StatusClosed:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByPositionID orders the results by the position_id field.
func ByPositionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQualified orders the results by the qualified field.
func ByQualified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualified, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByScoreNotes orders the results by the score_notes field.
func ByScoreNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreNotes, opts...).ToFunc()
}

// ByCvReceivedAt orders the results by the cv_received_at field.
func ByCvReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvReceivedAt, opts...).ToFunc()
}

// ByCallbackScheduledAt orders the results by the callback_scheduled_at field.
func ByCallbackScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallbackScheduledAt, opts...).ToFunc()
}

// ByNeedsHumanReason orders the results by the needs_human_reason field.
func ByNeedsHumanReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsHumanReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCandidateField orders the results by candidate field.
func ByCandidateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCandidateStep(), sql.OrderByField(field, opts...))
	}
}

// ByPositionField orders the results by position field.
func ByPositionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPositionStep(), sql.OrderByField(field, opts...))
	}
}

// ByStatusChangesCount orders the results by status_changes count.
func ByStatusChangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusChangesStep(), opts...)
	}
}

// ByStatusChanges orders the results by status_changes terms.
func ByStatusChanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusChangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCallsCount orders the results by calls count.
func ByCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCallsStep(), opts...)
	}
}

// ByCalls orders the results by calls terms.
func ByCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvaluationsCount orders the results by evaluations count.
func ByEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationsStep(), opts...)
	}
}

// ByEvaluations orders the results by evaluations terms.
func ByEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCvUploadsCount orders the results by cv_uploads count.
func ByCvUploadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCvUploadsStep(), opts...)
	}
}

// ByCvUploads orders the results by cv_uploads terms.
func ByCvUploads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCvUploadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRepliesCount orders the results by replies count.
func ByRepliesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRepliesStep(), opts...)
	}
}

// ByReplies orders the results by replies terms.
func ByReplies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRepliesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCandidateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CandidateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
	)
}
func newPositionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PositionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PositionTable, PositionColumn),
	)
}
func newStatusChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusChangesTable, StatusChangesColumn),
	)
}
func newCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CallsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CallsTable, CallsColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}
func newCvUploadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CvUploadsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CvUploadsTable, CvUploadsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newRepliesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RepliesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
	)
}
