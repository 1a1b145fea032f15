// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/evaluation"
)

// Call is the model entity for the Call schema.
type Call struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID int `json:"application_id,omitempty"`
	// Sequential per application, starting at 1
	AttemptNumber int `json:"attempt_number,omitempty"`
	// ExternalConversationID holds the value of the "external_conversation_id" field.
	ExternalConversationID *string `json:"external_conversation_id,omitempty"`
	// ExternalBatchID holds the value of the "external_batch_id" field.
	ExternalBatchID *string `json:"external_batch_id,omitempty"`
	// Status holds the value of the "status" field.
	Status call.Status `json:"status,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript string `json:"transcript,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// SummaryTitle holds the value of the "summary_title" field.
	SummaryTitle string `json:"summary_title,omitempty"`
	// RecordingURL holds the value of the "recording_url" field.
	RecordingURL string `json:"recording_url,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *int `json:"duration_seconds,omitempty"`
	// Last webhook/poll payload applied to this call
	RawPayload map[string]interface{} `json:"raw_payload,omitempty"`
	// InitiatedAt holds the value of the "initiated_at" field.
	InitiatedAt time.Time `json:"initiated_at,omitempty"`
	// Non-nil iff status is terminal
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CallQuery when eager-loading is set.
	Edges        CallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CallEdges holds the relations/edges for other nodes in the graph.
type CallEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// Evaluation holds the value of the evaluation edge.
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallEdges) EvaluationOrErr() (*Evaluation, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: evaluation.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Call) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case call.FieldRawPayload:
			values[i] = new([]byte)
		case call.FieldID, call.FieldApplicationID, call.FieldAttemptNumber, call.FieldDurationSeconds:
			values[i] = new(sql.NullInt64)
		case call.FieldExternalConversationID, call.FieldExternalBatchID, call.FieldStatus, call.FieldTranscript, call.FieldSummary, call.FieldSummaryTitle, call.FieldRecordingURL:
			values[i] = new(sql.NullString)
		case call.FieldInitiatedAt, call.FieldEndedAt, call.FieldCreatedAt, call.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Call fields.
func (_m *Call) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case call.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case call.FieldApplicationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = int(value.Int64)
			}
		case call.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case call.FieldExternalConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_conversation_id", values[i])
			} else if value.Valid {
				_m.ExternalConversationID = new(string)
				*_m.ExternalConversationID = value.String
			}
		case call.FieldExternalBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_batch_id", values[i])
			} else if value.Valid {
				_m.ExternalBatchID = new(string)
				*_m.ExternalBatchID = value.String
			}
		case call.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = call.Status(value.String)
			}
		case call.FieldTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value.Valid {
				_m.Transcript = value.String
			}
		case call.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case call.FieldSummaryTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_title", values[i])
			} else if value.Valid {
				_m.SummaryTitle = value.String
			}
		case call.FieldRecordingURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_url", values[i])
			} else if value.Valid {
				_m.RecordingURL = value.String
			}
		case call.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(int)
				*_m.DurationSeconds = int(value.Int64)
			}
		case call.FieldRawPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawPayload); err != nil {
					return fmt.Errorf("unmarshal field raw_payload: %w", err)
				}
			}
		case call.FieldInitiatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field initiated_at", values[i])
			} else if value.Valid {
				_m.InitiatedAt = value.Time
			}
		case call.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case call.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case call.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Call.
// This includes values selected through modifiers, order, etc.
func (_m *Call) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the Call entity.
func (_m *Call) QueryApplication() *ApplicationQuery {
	return NewCallClient(_m.config).QueryApplication(_m)
}

// QueryEvaluation queries the "evaluation" edge of the Call entity.
func (_m *Call) QueryEvaluation() *EvaluationQuery {
	return NewCallClient(_m.config).QueryEvaluation(_m)
}

// Update returns a builder for updating this Call.
// Note that you need to call Call.Unwrap() before calling this method if this Call
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Call) Update() *CallUpdateOne {
	return NewCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Call entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Call) Unwrap() *Call {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Call is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Call) String() string {
	var builder strings.Builder
	builder.WriteString("Call(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	if v := _m.ExternalConversationID; v != nil {
		builder.WriteString("external_conversation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExternalBatchID; v != nil {
		builder.WriteString("external_batch_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(_m.Transcript)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("summary_title=")
	builder.WriteString(_m.SummaryTitle)
	builder.WriteString(", ")
	builder.WriteString("recording_url=")
	builder.WriteString(_m.RecordingURL)
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPayload))
	builder.WriteString(", ")
	builder.WriteString("initiated_at=")
	builder.WriteString(_m.InitiatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Calls is a parsable slice of Call.
type Calls []*Call
