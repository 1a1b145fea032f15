// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/candidate"
)

// Candidate is the model entity for the Candidate schema.
type Candidate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// Lowercased on write; matched case-insensitively
	Email string `json:"email,omitempty"`
	// Digits with optional leading +
	Phone string `json:"phone,omitempty"`
	// When it differs from phone
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
	// External identifier from the advertising platform
	LeadSourceID *string `json:"lead_source_id,omitempty"`
	// Pre-screening question/answer pairs from lead import
	FormAnswers map[string]interface{} `json:"form_answers,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CandidateQuery when eager-loading is set.
	Edges        CandidateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CandidateEdges holds the relations/edges for other nodes in the graph.
type CandidateEdges struct {
	// Applications holds the value of the applications edge.
	Applications []*Application `json:"applications,omitempty"`
	// Replies holds the value of the replies edge.
	Replies []*CandidateReply `json:"replies,omitempty"`
	// CvUploads holds the value of the cv_uploads edge.
	CvUploads []*CVUpload `json:"cv_uploads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) ApplicationsOrErr() ([]*Application, error) {
	if e.loadedTypes[0] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// RepliesOrErr returns the Replies value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) RepliesOrErr() ([]*CandidateReply, error) {
	if e.loadedTypes[1] {
		return e.Replies, nil
	}
	return nil, &NotLoadedError{edge: "replies"}
}

// CvUploadsOrErr returns the CvUploads value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) CvUploadsOrErr() ([]*CVUpload, error) {
	if e.loadedTypes[2] {
		return e.CvUploads, nil
	}
	return nil, &NotLoadedError{edge: "cv_uploads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Candidate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case candidate.FieldFormAnswers:
			values[i] = new([]byte)
		case candidate.FieldID:
			values[i] = new(sql.NullInt64)
		case candidate.FieldFirstName, candidate.FieldLastName, candidate.FieldEmail, candidate.FieldPhone, candidate.FieldWhatsappNumber, candidate.FieldLeadSourceID, candidate.FieldNotes:
			values[i] = new(sql.NullString)
		case candidate.FieldCreatedAt, candidate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Candidate fields.
func (_m *Candidate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case candidate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case candidate.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case candidate.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case candidate.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case candidate.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case candidate.FieldWhatsappNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field whatsapp_number", values[i])
			} else if value.Valid {
				_m.WhatsappNumber = value.String
			}
		case candidate.FieldLeadSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_source_id", values[i])
			} else if value.Valid {
				_m.LeadSourceID = new(string)
				*_m.LeadSourceID = value.String
			}
		case candidate.FieldFormAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field form_answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FormAnswers); err != nil {
					return fmt.Errorf("unmarshal field form_answers: %w", err)
				}
			}
		case candidate.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case candidate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case candidate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Candidate.
// This includes values selected through modifiers, order, etc.
func (_m *Candidate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplications queries the "applications" edge of the Candidate entity.
func (_m *Candidate) QueryApplications() *ApplicationQuery {
	return NewCandidateClient(_m.config).QueryApplications(_m)
}

// QueryReplies queries the "replies" edge of the Candidate entity.
func (_m *Candidate) QueryReplies() *CandidateReplyQuery {
	return NewCandidateClient(_m.config).QueryReplies(_m)
}

// QueryCvUploads queries the "cv_uploads" edge of the Candidate entity.
func (_m *Candidate) QueryCvUploads() *CVUploadQuery {
	return NewCandidateClient(_m.config).QueryCvUploads(_m)
}

// Update returns a builder for updating this Candidate.
// Note that you need to call Candidate.Unwrap() before calling this method if this Candidate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Candidate) Update() *CandidateUpdateOne {
	return NewCandidateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Candidate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Candidate) Unwrap() *Candidate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Candidate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Candidate) String() string {
	var builder strings.Builder
	builder.WriteString("Candidate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("whatsapp_number=")
	builder.WriteString(_m.WhatsappNumber)
	builder.WriteString(", ")
	if v := _m.LeadSourceID; v != nil {
		builder.WriteString("lead_source_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("form_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.FormAnswers))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Candidates is a parsable slice of Candidate.
type Candidates []*Candidate
