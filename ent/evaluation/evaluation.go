// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluation type in the database.
	Label = "evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldQualified holds the string denoting the qualified field in the database.
	FieldQualified = "qualified"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldCriteria holds the string denoting the criteria field in the database.
	FieldCriteria = "criteria"
	// FieldDisqualifyingFactor holds the string denoting the disqualifying_factor field in the database.
	FieldDisqualifyingFactor = "disqualifying_factor"
	// FieldCallbackRequested holds the string denoting the callback_requested field in the database.
	FieldCallbackRequested = "callback_requested"
	// FieldCallbackNotes holds the string denoting the callback_notes field in the database.
	FieldCallbackNotes = "callback_notes"
	// FieldCallbackAt holds the string denoting the callback_at field in the database.
	FieldCallbackAt = "callback_at"
	// FieldNeedsHuman holds the string denoting the needs_human field in the database.
	FieldNeedsHuman = "needs_human"
	// FieldNeedsHumanNotes holds the string denoting the needs_human_notes field in the database.
	FieldNeedsHumanNotes = "needs_human_notes"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeApplication holds the string denoting the application edge name in mutations.
	EdgeApplication = "application"
	// EdgeCall holds the string denoting the call edge name in mutations.
	EdgeCall = "call"
	// Table holds the table name of the evaluation in the database.
	Table = "evaluations"
	// ApplicationTable is the table that holds the application relation/edge.
	ApplicationTable = "evaluations"
	// ApplicationInverseTable is the table name for the Application entity.
	// It exists in this package in order to avoid circular dependency with the "application" package.
	ApplicationInverseTable = "applications"
	// ApplicationColumn is the table column denoting the application relation/edge.
	ApplicationColumn = "application_id"
	// CallTable is the table that holds the call relation/edge.
	CallTable = "evaluations"
	// CallInverseTable is the table name for the Call entity.
	// It exists in this package in order to avoid circular dependency with the "call" package.
	CallInverseTable = "calls"
	// CallColumn is the table column denoting the call relation/edge.
	CallColumn = "call_id"
)

// Columns holds all SQL columns for evaluation fields.
var Columns = []string{
	FieldID,
	FieldApplicationID,
	FieldCallID,
	FieldOutcome,
	FieldQualified,
	FieldScore,
	FieldReasoning,
	FieldCriteria,
	FieldDisqualifyingFactor,
	FieldCallbackRequested,
	FieldCallbackNotes,
	FieldCallbackAt,
	FieldNeedsHuman,
	FieldNeedsHumanNotes,
	FieldRawResponse,
	FieldModel,
	FieldCreatedAt,
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
	// DefaultCallbackRequested holds the default value on creation for the "callback_requested" field.
	DefaultCallbackRequested bool
	// DefaultNeedsHuman holds the default value on creation for the "needs_human" field.
	DefaultNeedsHuman bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// Outcome values.
const (
	OutcomeQualified         Outcome = "qualified"
	OutcomeNotQualified      Outcome = "not_qualified"
	OutcomeCallbackRequested Outcome = "callback_requested"
	OutcomeNeedsHuman        Outcome = "needs_human"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeQualified, OutcomeNotQualified, OutcomeCallbackRequested, OutcomeNeedsHuman:
		return nil
	default:
		return fmt.Errorf("evaluation: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the Evaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByQualified orders the results by the qualified field.
func ByQualified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualified, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByDisqualifyingFactor orders the results by the disqualifying_factor field.
func ByDisqualifyingFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisqualifyingFactor, opts...).ToFunc()
}

// ByCallbackRequested orders the results by the callback_requested field.
func ByCallbackRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallbackRequested, opts...).ToFunc()
}

// ByCallbackNotes orders the results by the callback_notes field.
func ByCallbackNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallbackNotes, opts...).ToFunc()
}

// ByCallbackAt orders the results by the callback_at field.
func ByCallbackAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallbackAt, opts...).ToFunc()
}

// ByNeedsHuman orders the results by the needs_human field.
func ByNeedsHuman(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsHuman, opts...).ToFunc()
}

// ByNeedsHumanNotes orders the results by the needs_human_notes field.
func ByNeedsHumanNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsHumanNotes, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByApplicationField orders the results by application field.
func ByApplicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationStep(), sql.OrderByField(field, opts...))
	}
}

// ByCallField orders the results by call field.
func ByCallField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCallStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
	)
}
func newCallStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CallInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, CallTable, CallColumn),
	)
}
