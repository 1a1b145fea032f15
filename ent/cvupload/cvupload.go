// Code generated by ent, DO NOT EDIT.

package cvupload

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cvupload type in the database.
	Label = "cv_upload"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldMatchMethod holds the string denoting the match_method field in the database.
	FieldMatchMethod = "match_method"
	// FieldMatchConfidence holds the string denoting the match_confidence field in the database.
	FieldMatchConfidence = "match_confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCandidate holds the string denoting the candidate edge name in mutations.
	EdgeCandidate = "candidate"
	// EdgeApplication holds the string denoting the application edge name in mutations.
	EdgeApplication = "application"
	// Table holds the table name of the cvupload in the database.
	Table = "cv_uploads"
	// CandidateTable is the table that holds the candidate relation/edge.
	CandidateTable = "cv_uploads"
	// CandidateInverseTable is the table name for the Candidate entity.
	// It exists in this package in order to avoid circular dependency with the "candidate" package.
	CandidateInverseTable = "candidates"
	// CandidateColumn is the table column denoting the candidate relation/edge.
	CandidateColumn = "candidate_id"
	// ApplicationTable is the table that holds the application relation/edge.
	ApplicationTable = "cv_uploads"
	// ApplicationInverseTable is the table name for the Application entity.
	// It exists in this package in order to avoid circular dependency with the "application" package.
	ApplicationInverseTable = "applications"
	// ApplicationColumn is the table column denoting the application relation/edge.
	ApplicationColumn = "application_id"
)

// Columns holds all SQL columns for cvupload fields.
var Columns = []string{
	FieldID,
	FieldCandidateID,
	FieldApplicationID,
	FieldFilePath,
	FieldOriginalFilename,
	FieldSource,
	FieldMatchMethod,
	FieldMatchConfidence,
	FieldNeedsReview,
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
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceEmail is the default value of the Source enum.
const DefaultSource = SourceEmail

// Source values.
const (
	SourceEmail    Source = "email"
	SourceWhatsapp Source = "whatsapp"
	SourceManual   Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceEmail, SourceWhatsapp, SourceManual:
		return nil
	default:
		return fmt.Errorf("cvupload: invalid enum value for source field: %q", s)
	}
}

// MatchMethod defines the type for the "match_method" enum field.
type MatchMethod string

// MatchMethod values.
const (
	MatchMethodExactEmail MatchMethod = "exact_email"
	MatchMethodExactPhone MatchMethod = "exact_phone"
	MatchMethodSubjectID  MatchMethod = "subject_id"
	MatchMethodFuzzyName  MatchMethod = "fuzzy_name"
	MatchMethodCvContent  MatchMethod = "cv_content"
	MatchMethodManual     MatchMethod = "manual"
)

func (mm MatchMethod) String() string {
	return string(mm)
}

// MatchMethodValidator is a validator for the "match_method" field enum values. It is called by the builders before save.
func MatchMethodValidator(mm MatchMethod) error {
	switch mm {
	case MatchMethodExactEmail, MatchMethodExactPhone, MatchMethodSubjectID, MatchMethodFuzzyName, MatchMethodCvContent, MatchMethodManual:
		return nil
	default:
		return fmt.Errorf("cvupload: invalid enum value for match_method field: %q", mm)
	}
}

// MatchConfidence defines the type for the "match_confidence" enum field.
type MatchConfidence string

// MatchConfidenceHigh is the default value of the MatchConfidence enum.
const DefaultMatchConfidence = MatchConfidenceHigh

// MatchConfidence values.
const (
	MatchConfidenceHigh   MatchConfidence = "high"
	MatchConfidenceMedium MatchConfidence = "medium"
)

func (mc MatchConfidence) String() string {
	return string(mc)
}

// MatchConfidenceValidator is a validator for the "match_confidence" field enum values. It is called by the builders before save.
func MatchConfidenceValidator(mc MatchConfidence) error {
	switch mc {
	case MatchConfidenceHigh, MatchConfidenceMedium:
		return nil
	default:
		return fmt.Errorf("cvupload: invalid enum value for match_confidence field: %q", mc)
	}
}

// OrderOption defines the ordering options for the CVUpload queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByMatchMethod orders the results by the match_method field.
func ByMatchMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchMethod, opts...).ToFunc()
}

// ByMatchConfidence orders the results by the match_confidence field.
func ByMatchConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCandidateField orders the results by candidate field.
func ByCandidateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCandidateStep(), sql.OrderByField(field, opts...))
	}
}

// ByApplicationField orders the results by application field.
func ByApplicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationStep(), sql.OrderByField(field, opts...))
	}
}
func newCandidateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CandidateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
	)
}
func newApplicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
	)
}
