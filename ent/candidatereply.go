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
	"github.com/recruitflow/recruitflow/ent/candidatereply"
)

// CandidateReply is the model entity for the CandidateReply schema.
type CandidateReply struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Nil when the sender could not be resolved
	CandidateID *int `json:"candidate_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID *int `json:"application_id,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel candidatereply.Channel `json:"channel,omitempty"`
	// Sender holds the value of the "sender" field.
	Sender string `json:"sender,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Provider message id, when the channel supplies one
	ExternalID string `json:"external_id,omitempty"`
	// IsRead holds the value of the "is_read" field.
	IsRead bool `json:"is_read,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CandidateReplyQuery when eager-loading is set.
	Edges        CandidateReplyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CandidateReplyEdges holds the relations/edges for other nodes in the graph.
type CandidateReplyEdges struct {
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
func (e CandidateReplyEdges) CandidateOrErr() (*Candidate, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: candidate.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CandidateReplyEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CandidateReply) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case candidatereply.FieldIsRead:
			values[i] = new(sql.NullBool)
		case candidatereply.FieldID, candidatereply.FieldCandidateID, candidatereply.FieldApplicationID:
			values[i] = new(sql.NullInt64)
		case candidatereply.FieldChannel, candidatereply.FieldSender, candidatereply.FieldSubject, candidatereply.FieldBody, candidatereply.FieldExternalID:
			values[i] = new(sql.NullString)
		case candidatereply.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CandidateReply fields.
func (_m *CandidateReply) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case candidatereply.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case candidatereply.FieldCandidateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = new(int)
				*_m.CandidateID = int(value.Int64)
			}
		case candidatereply.FieldApplicationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = new(int)
				*_m.ApplicationID = int(value.Int64)
			}
		case candidatereply.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = candidatereply.Channel(value.String)
			}
		case candidatereply.FieldSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender", values[i])
			} else if value.Valid {
				_m.Sender = value.String
			}
		case candidatereply.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case candidatereply.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case candidatereply.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case candidatereply.FieldIsRead:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_read", values[i])
			} else if value.Valid {
				_m.IsRead = value.Bool
			}
		case candidatereply.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CandidateReply.
// This includes values selected through modifiers, order, etc.
func (_m *CandidateReply) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the CandidateReply entity.
func (_m *CandidateReply) QueryCandidate() *CandidateQuery {
	return NewCandidateReplyClient(_m.config).QueryCandidate(_m)
}

// QueryApplication queries the "application" edge of the CandidateReply entity.
func (_m *CandidateReply) QueryApplication() *ApplicationQuery {
	return NewCandidateReplyClient(_m.config).QueryApplication(_m)
}

// Update returns a builder for updating this CandidateReply.
// Note that you need to call CandidateReply.Unwrap() before calling this method if this CandidateReply
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CandidateReply) Update() *CandidateReplyUpdateOne {
	return NewCandidateReplyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CandidateReply entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CandidateReply) Unwrap() *CandidateReply {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CandidateReply is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CandidateReply) String() string {
	var builder strings.Builder
	builder.WriteString("CandidateReply(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.CandidateID; v != nil {
		builder.WriteString("candidate_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ApplicationID; v != nil {
		builder.WriteString("application_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("sender=")
	builder.WriteString(_m.Sender)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("is_read=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRead))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CandidateReplies is a parsable slice of CandidateReply.
type CandidateReplies []*CandidateReply
