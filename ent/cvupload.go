// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/cvupload"
)

// CVUpload is the model entity for the CVUpload schema.
type CVUpload struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID int `json:"candidate_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID int `json:"application_id,omitempty"`
	// Stored name: <uuid-hex>_<sanitized original name>
	FilePath string `json:"file_path,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// Source holds the value of the "source" field.
	Source cvupload.Source `json:"source,omitempty"`
	// MatchMethod holds the value of the "match_method" field.
	MatchMethod cvupload.MatchMethod `json:"match_method,omitempty"`
	// MatchConfidence holds the value of the "match_confidence" field.
	MatchConfidence cvupload.MatchConfidence `json:"match_confidence,omitempty"`
	// True for fuzzy_name and cv_content matches
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CVUploadQuery when eager-loading is set.
	Edges        CVUploadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CVUploadEdges holds the relations/edges for other nodes in the graph.
type CVUploadEdges struct {
	// Candidate holds the value of the candidate edge.
	Candidate *Candidate `json:"candidate,omitempty"`
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CandidateOrErr returns the Candidate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CVUploadEdges) CandidateOrErr() (*Candidate, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: candidate.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CVUploadEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CVUpload) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cvupload.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case cvupload.FieldID, cvupload.FieldCandidateID, cvupload.FieldApplicationID:
			values[i] = new(sql.NullInt64)
		case cvupload.FieldFilePath, cvupload.FieldOriginalFilename, cvupload.FieldSource, cvupload.FieldMatchMethod, cvupload.FieldMatchConfidence:
			values[i] = new(sql.NullString)
		case cvupload.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CVUpload fields.
func (_m *CVUpload) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cvupload.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cvupload.FieldCandidateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = int(value.Int64)
			}
		case cvupload.FieldApplicationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = int(value.Int64)
			}
		case cvupload.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case cvupload.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case cvupload.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = cvupload.Source(value.String)
			}
		case cvupload.FieldMatchMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_method", values[i])
			} else if value.Valid {
				_m.MatchMethod = cvupload.MatchMethod(value.String)
			}
		case cvupload.FieldMatchConfidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_confidence", values[i])
			} else if value.Valid {
				_m.MatchConfidence = cvupload.MatchConfidence(value.String)
			}
		case cvupload.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case cvupload.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CVUpload.
// This includes values selected through modifiers, order, etc.
func (_m *CVUpload) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the CVUpload entity.
func (_m *CVUpload) QueryCandidate() *CandidateQuery {
	return NewCVUploadClient(_m.config).QueryCandidate(_m)
}

// QueryApplication queries the "application" edge of the CVUpload entity.
func (_m *CVUpload) QueryApplication() *ApplicationQuery {
	return NewCVUploadClient(_m.config).QueryApplication(_m)
}

// Update returns a builder for updating this CVUpload.
// Note that you need to call CVUpload.Unwrap() before calling this method if this CVUpload
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CVUpload) Update() *CVUploadUpdateOne {
	return NewCVUploadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CVUpload entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CVUpload) Unwrap() *CVUpload {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CVUpload is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CVUpload) String() string {
	var builder strings.Builder
	builder.WriteString("CVUpload(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("candidate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidateID))
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("match_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchMethod))
	builder.WriteString(", ")
	builder.WriteString("match_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchConfidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CVUploads is a parsable slice of CVUpload.
type CVUploads []*CVUpload
