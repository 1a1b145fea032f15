// Code generated by ent, DO NOT EDIT.

package position

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the position type in the database.
	Label = "position"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAgentPrompt holds the string denoting the agent_prompt field in the database.
	FieldAgentPrompt = "agent_prompt"
	// FieldAgentFirstMessage holds the string denoting the agent_first_message field in the database.
	FieldAgentFirstMessage = "agent_first_message"
	// FieldQualificationCriteria holds the string denoting the qualification_criteria field in the database.
	FieldQualificationCriteria = "qualification_criteria"
	// FieldCallingHoursStart holds the string denoting the calling_hours_start field in the database.
	FieldCallingHoursStart = "calling_hours_start"
	// FieldCallingHoursEnd holds the string denoting the calling_hours_end field in the database.
	FieldCallingHoursEnd = "calling_hours_end"
	// FieldCallRetryMax holds the string denoting the call_retry_max field in the database.
	FieldCallRetryMax = "call_retry_max"
	// FieldCallRetryIntervalMinutes holds the string denoting the call_retry_interval_minutes field in the database.
	FieldCallRetryIntervalMinutes = "call_retry_interval_minutes"
	// FieldFollowUpIntervalHours holds the string denoting the follow_up_interval_hours field in the database.
	FieldFollowUpIntervalHours = "follow_up_interval_hours"
	// FieldRejectedCvTimeoutDays holds the string denoting the rejected_cv_timeout_days field in the database.
	FieldRejectedCvTimeoutDays = "rejected_cv_timeout_days"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplications holds the string denoting the applications edge name in mutations.
	EdgeApplications = "applications"
	// Table holds the table name of the position in the database.
	Table = "positions"
	// ApplicationsTable is the table that holds the applications relation/edge.
	ApplicationsTable = "applications"
	// ApplicationsInverseTable is the table name for the Application entity.
	// It exists in this package in order to avoid circular dependency with the "application" package.
	ApplicationsInverseTable = "applications"
	// ApplicationsColumn is the table column denoting the applications relation/edge.
	ApplicationsColumn = "position_id"
)

// Columns holds all SQL columns for position fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldAgentPrompt,
	FieldAgentFirstMessage,
	FieldQualificationCriteria,
	FieldCallingHoursStart,
	FieldCallingHoursEnd,
	FieldCallRetryMax,
	FieldCallRetryIntervalMinutes,
	FieldFollowUpIntervalHours,
	FieldRejectedCvTimeoutDays,
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
	// DefaultCallingHoursStart holds the default value on creation for the "calling_hours_start" field.
	DefaultCallingHoursStart int
	// DefaultCallingHoursEnd holds the default value on creation for the "calling_hours_end" field.
	DefaultCallingHoursEnd int
	// DefaultCallRetryMax holds the default value on creation for the "call_retry_max" field.
	DefaultCallRetryMax int
	// DefaultCallRetryIntervalMinutes holds the default value on creation for the "call_retry_interval_minutes" field.
	DefaultCallRetryIntervalMinutes int
	// DefaultFollowUpIntervalHours holds the default value on creation for the "follow_up_interval_hours" field.
	DefaultFollowUpIntervalHours int
	// DefaultRejectedCvTimeoutDays holds the default value on creation for the "rejected_cv_timeout_days" field.
	DefaultRejectedCvTimeoutDays int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen   Status = "open"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusPaused, StatusClosed:
		return nil
	default:
		return fmt.Errorf("position: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Position queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAgentPrompt orders the results by the agent_prompt field.
func ByAgentPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentPrompt, opts...).ToFunc()
}

// ByAgentFirstMessage orders the results by the agent_first_message field.
func ByAgentFirstMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentFirstMessage, opts...).ToFunc()
}

// ByQualificationCriteria orders the results by the qualification_criteria field.
func ByQualificationCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualificationCriteria, opts...).ToFunc()
}

// ByCallingHoursStart orders the results by the calling_hours_start field.
func ByCallingHoursStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallingHoursStart, opts...).ToFunc()
}

// ByCallingHoursEnd orders the results by the calling_hours_end field.
func ByCallingHoursEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallingHoursEnd, opts...).ToFunc()
}

// ByCallRetryMax orders the results by the call_retry_max field.
func ByCallRetryMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallRetryMax, opts...).ToFunc()
}

// ByCallRetryIntervalMinutes orders the results by the call_retry_interval_minutes field.
func ByCallRetryIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallRetryIntervalMinutes, opts...).ToFunc()
}

// ByFollowUpIntervalHours orders the results by the follow_up_interval_hours field.
func ByFollowUpIntervalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpIntervalHours, opts...).ToFunc()
}

// ByRejectedCvTimeoutDays orders the results by the rejected_cv_timeout_days field.
func ByRejectedCvTimeoutDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedCvTimeoutDays, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByApplicationsCount orders the results by applications count.
func ByApplicationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApplicationsStep(), opts...)
	}
}

// ByApplications orders the results by applications terms.
func ByApplications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newApplicationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
	)
}
