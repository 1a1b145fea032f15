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

// Evaluation is the model entity for the Evaluation schema.
type Evaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID int `json:"application_id,omitempty"`
	// CallID holds the value of the "call_id" field.
	CallID int `json:"call_id,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome evaluation.Outcome `json:"outcome,omitempty"`
	// Qualified holds the value of the "qualified" field.
	Qualified bool `json:"qualified,omitempty"`
	// 0-100
	Score float64 `json:"score,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Per-criterion verdicts as returned by the model
	Criteria []map[string]interface{} `json:"criteria,omitempty"`
	// DisqualifyingFactor holds the value of the "disqualifying_factor" field.
	DisqualifyingFactor string `json:"disqualifying_factor,omitempty"`
	// CallbackRequested holds the value of the "callback_requested" field.
	CallbackRequested bool `json:"callback_requested,omitempty"`
	// CallbackNotes holds the value of the "callback_notes" field.
	CallbackNotes string `json:"callback_notes,omitempty"`
	// CallbackAt holds the value of the "callback_at" field.
	CallbackAt *time.Time `json:"callback_at,omitempty"`
	// NeedsHuman holds the value of the "needs_human" field.
	NeedsHuman bool `json:"needs_human,omitempty"`
	// NeedsHumanNotes holds the value of the "needs_human_notes" field.
	NeedsHumanNotes string `json:"needs_human_notes,omitempty"`
	// Model output as received, before repair
	RawResponse string `json:"raw_response,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationQuery when eager-loading is set.
	Edges        EvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationEdges holds the relations/edges for other nodes in the graph.
type EvaluationEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// Call holds the value of the call edge.
	Call *Call `json:"call,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// CallOrErr returns the Call value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) CallOrErr() (*Call, error) {
	if e.Call != nil {
		return e.Call, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: call.Label}
	}
	return nil, &NotLoadedError{edge: "call"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldCriteria:
			values[i] = new([]byte)
		case evaluation.FieldQualified, evaluation.FieldCallbackRequested, evaluation.FieldNeedsHuman:
			values[i] = new(sql.NullBool)
		case evaluation.FieldScore:
			values[i] = new(sql.NullFloat64)
		case evaluation.FieldID, evaluation.FieldApplicationID, evaluation.FieldCallID:
			values[i] = new(sql.NullInt64)
		case evaluation.FieldOutcome, evaluation.FieldReasoning, evaluation.FieldDisqualifyingFactor, evaluation.FieldCallbackNotes, evaluation.FieldNeedsHumanNotes, evaluation.FieldRawResponse, evaluation.FieldModel:
			values[i] = new(sql.NullString)
		case evaluation.FieldCallbackAt, evaluation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evaluation fields.
func (_m *Evaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluation.FieldApplicationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = int(value.Int64)
			}
		case evaluation.FieldCallID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = int(value.Int64)
			}
		case evaluation.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = evaluation.Outcome(value.String)
			}
		case evaluation.FieldQualified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field qualified", values[i])
			} else if value.Valid {
				_m.Qualified = value.Bool
			}
		case evaluation.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case evaluation.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case evaluation.FieldCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Criteria); err != nil {
					return fmt.Errorf("unmarshal field criteria: %w", err)
				}
			}
		case evaluation.FieldDisqualifyingFactor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disqualifying_factor", values[i])
			} else if value.Valid {
				_m.DisqualifyingFactor = value.String
			}
		case evaluation.FieldCallbackRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field callback_requested", values[i])
			} else if value.Valid {
				_m.CallbackRequested = value.Bool
			}
		case evaluation.FieldCallbackNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field callback_notes", values[i])
			} else if value.Valid {
				_m.CallbackNotes = value.String
			}
		case evaluation.FieldCallbackAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field callback_at", values[i])
			} else if value.Valid {
				_m.CallbackAt = new(time.Time)
				*_m.CallbackAt = value.Time
			}
		case evaluation.FieldNeedsHuman:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_human", values[i])
			} else if value.Valid {
				_m.NeedsHuman = value.Bool
			}
		case evaluation.FieldNeedsHumanNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field needs_human_notes", values[i])
			} else if value.Valid {
				_m.NeedsHumanNotes = value.String
			}
		case evaluation.FieldRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_response", values[i])
			} else if value.Valid {
				_m.RawResponse = value.String
			}
		case evaluation.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case evaluation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Evaluation.
// This includes values selected through modifiers, order, etc.
func (_m *Evaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the Evaluation entity.
func (_m *Evaluation) QueryApplication() *ApplicationQuery {
	return NewEvaluationClient(_m.config).QueryApplication(_m)
}

// QueryCall queries the "call" edge of the Evaluation entity.
func (_m *Evaluation) QueryCall() *CallQuery {
	return NewEvaluationClient(_m.config).QueryCall(_m)
}

// Update returns a builder for updating this Evaluation.
// Note that you need to call Evaluation.Unwrap() before calling this method if this Evaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evaluation) Update() *EvaluationUpdateOne {
	return NewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evaluation) Unwrap() *Evaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evaluation) String() string {
	var builder strings.Builder
	builder.WriteString("Evaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("call_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallID))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("qualified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Qualified))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.Criteria))
	builder.WriteString(", ")
	builder.WriteString("disqualifying_factor=")
	builder.WriteString(_m.DisqualifyingFactor)
	builder.WriteString(", ")
	builder.WriteString("callback_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallbackRequested))
	builder.WriteString(", ")
	builder.WriteString("callback_notes=")
	builder.WriteString(_m.CallbackNotes)
	builder.WriteString(", ")
	if v := _m.CallbackAt; v != nil {
		builder.WriteString("callback_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_human=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsHuman))
	builder.WriteString(", ")
	builder.WriteString("needs_human_notes=")
	builder.WriteString(_m.NeedsHumanNotes)
	builder.WriteString(", ")
	builder.WriteString("raw_response=")
	builder.WriteString(_m.RawResponse)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evaluations is a parsable slice of Evaluation.
type Evaluations []*Evaluation
