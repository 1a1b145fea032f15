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
	"github.com/recruitflow/recruitflow/ent/position"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID int `json:"candidate_id,omitempty"`
	// PositionID holds the value of the "position_id" field.
	PositionID int `json:"position_id,omitempty"`
	// Status holds the value of the "status" field.
	Status application.Status `json:"status,omitempty"`
	// Nil until scored
	Qualified *bool `json:"qualified,omitempty"`
	// Score holds the value of the "score" field.
	Score *float64 `json:"score,omitempty"`
	// ScoreNotes holds the value of the "score_notes" field.
	ScoreNotes string `json:"score_notes,omitempty"`
	// CvReceivedAt holds the value of the "cv_received_at" field.
	CvReceivedAt *time.Time `json:"cv_received_at,omitempty"`
	// CallbackScheduledAt holds the value of the "callback_scheduled_at" field.
	CallbackScheduledAt *time.Time `json:"callback_scheduled_at,omitempty"`
	// NeedsHumanReason holds the value of the "needs_human_reason" field.
	NeedsHumanReason string `json:"needs_human_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// Candidate holds the value of the candidate edge.
	Candidate *Candidate `json:"candidate,omitempty"`
	// Position holds the value of the position edge.
	Position *Position `json:"position,omitempty"`
	// StatusChanges holds the value of the status_changes edge.
	StatusChanges []*StatusChange `json:"status_changes,omitempty"`
	// Calls holds the value of the calls edge.
	Calls []*Call `json:"calls,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// CvUploads holds the value of the cv_uploads edge.
	CvUploads []*CVUpload `json:"cv_uploads,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Replies holds the value of the replies edge.
	Replies []*CandidateReply `json:"replies,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// CandidateOrErr returns the Candidate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) CandidateOrErr() (*Candidate, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: candidate.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// PositionOrErr returns the Position value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) PositionOrErr() (*Position, error) {
	if e.Position != nil {
		return e.Position, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: position.Label}
	}
	return nil, &NotLoadedError{edge: "position"}
}

// StatusChangesOrErr returns the StatusChanges value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) StatusChangesOrErr() ([]*StatusChange, error) {
	if e.loadedTypes[2] {
		return e.StatusChanges, nil
	}
	return nil, &NotLoadedError{edge: "status_changes"}
}

// CallsOrErr returns the Calls value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) CallsOrErr() ([]*Call, error) {
	if e.loadedTypes[3] {
		return e.Calls, nil
	}
	return nil, &NotLoadedError{edge: "calls"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[4] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// CvUploadsOrErr returns the CvUploads value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) CvUploadsOrErr() ([]*CVUpload, error) {
	if e.loadedTypes[5] {
		return e.CvUploads, nil
	}
	return nil, &NotLoadedError{edge: "cv_uploads"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[6] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// RepliesOrErr returns the Replies value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) RepliesOrErr() ([]*CandidateReply, error) {
	if e.loadedTypes[7] {
		return e.Replies, nil
	}
	return nil, &NotLoadedError{edge: "replies"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldQualified:
			values[i] = new(sql.NullBool)
		case application.FieldScore:
			values[i] = new(sql.NullFloat64)
		case application.FieldID, application.FieldCandidateID, application.FieldPositionID:
			values[i] = new(sql.NullInt64)
		case application.FieldStatus, application.FieldScoreNotes, application.FieldNeedsHumanReason:
			values[i] = new(sql.NullString)
		case application.FieldCvReceivedAt, application.FieldCallbackScheduledAt, application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case application.FieldCandidateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = int(value.Int64)
			}
		case application.FieldPositionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position_id", values[i])
			} else if value.Valid {
				_m.PositionID = int(value.Int64)
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = application.Status(value.String)
			}
		case application.FieldQualified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field qualified", values[i])
			} else if value.Valid {
				_m.Qualified = new(bool)
				*_m.Qualified = value.Bool
			}
		case application.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		case application.FieldScoreNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field score_notes", values[i])
			} else if value.Valid {
				_m.ScoreNotes = value.String
			}
		case application.FieldCvReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cv_received_at", values[i])
			} else if value.Valid {
				_m.CvReceivedAt = new(time.Time)
				*_m.CvReceivedAt = value.Time
			}
		case application.FieldCallbackScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field callback_scheduled_at", values[i])
			} else if value.Valid {
				_m.CallbackScheduledAt = new(time.Time)
				*_m.CallbackScheduledAt = value.Time
			}
		case application.FieldNeedsHumanReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field needs_human_reason", values[i])
			} else if value.Valid {
				_m.NeedsHumanReason = value.String
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the Application entity.
func (_m *Application) QueryCandidate() *CandidateQuery {
	return NewApplicationClient(_m.config).QueryCandidate(_m)
}

// QueryPosition queries the "position" edge of the Application entity.
func (_m *Application) QueryPosition() *PositionQuery {
	return NewApplicationClient(_m.config).QueryPosition(_m)
}

// QueryStatusChanges queries the "status_changes" edge of the Application entity.
func (_m *Application) QueryStatusChanges() *StatusChangeQuery {
	return NewApplicationClient(_m.config).QueryStatusChanges(_m)
}

// QueryCalls queries the "calls" edge of the Application entity.
func (_m *Application) QueryCalls() *CallQuery {
	return NewApplicationClient(_m.config).QueryCalls(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Application entity.
func (_m *Application) QueryEvaluations() *EvaluationQuery {
	return NewApplicationClient(_m.config).QueryEvaluations(_m)
}

// QueryCvUploads queries the "cv_uploads" edge of the Application entity.
func (_m *Application) QueryCvUploads() *CVUploadQuery {
	return NewApplicationClient(_m.config).QueryCvUploads(_m)
}

// QueryMessages queries the "messages" edge of the Application entity.
func (_m *Application) QueryMessages() *MessageQuery {
	return NewApplicationClient(_m.config).QueryMessages(_m)
}

// QueryReplies queries the "replies" edge of the Application entity.
func (_m *Application) QueryReplies() *CandidateReplyQuery {
	return NewApplicationClient(_m.config).QueryReplies(_m)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("candidate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidateID))
	builder.WriteString(", ")
	builder.WriteString("position_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositionID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Qualified; v != nil {
		builder.WriteString("qualified=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("score_notes=")
	builder.WriteString(_m.ScoreNotes)
	builder.WriteString(", ")
	if v := _m.CvReceivedAt; v != nil {
		builder.WriteString("cv_received_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CallbackScheduledAt; v != nil {
		builder.WriteString("callback_scheduled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_human_reason=")
	builder.WriteString(_m.NeedsHumanReason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
