// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/position"
)

// Position is the model entity for the Position schema.
type Position struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status position.Status `json:"status,omitempty"`
	// Voice agent system prompt template (supports placeholders)
	AgentPrompt string `json:"agent_prompt,omitempty"`
	// Voice agent opening line template
	AgentFirstMessage string `json:"agent_first_message,omitempty"`
	// Free-form criteria injected into the evaluation prompt
	QualificationCriteria string `json:"qualification_criteria,omitempty"`
	// Inclusive hour (0-23) in the scheduler timezone
	CallingHoursStart int `json:"calling_hours_start,omitempty"`
	// Exclusive hour (0-23); start >= end means misconfigured
	CallingHoursEnd int `json:"calling_hours_end,omitempty"`
	// CallRetryMax holds the value of the "call_retry_max" field.
	CallRetryMax int `json:"call_retry_max,omitempty"`
	// CallRetryIntervalMinutes holds the value of the "call_retry_interval_minutes" field.
	CallRetryIntervalMinutes int `json:"call_retry_interval_minutes,omitempty"`
	// FollowUpIntervalHours holds the value of the "follow_up_interval_hours" field.
	FollowUpIntervalHours int `json:"follow_up_interval_hours,omitempty"`
	// RejectedCvTimeoutDays holds the value of the "rejected_cv_timeout_days" field.
	RejectedCvTimeoutDays int `json:"rejected_cv_timeout_days,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PositionQuery when eager-loading is set.
	Edges        PositionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PositionEdges holds the relations/edges for other nodes in the graph.
type PositionEdges struct {
	// Applications holds the value of the applications edge.
	Applications []*Application `json:"applications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e PositionEdges) ApplicationsOrErr() ([]*Application, error) {
	if e.loadedTypes[0] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Position) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case position.FieldID, position.FieldCallingHoursStart, position.FieldCallingHoursEnd, position.FieldCallRetryMax, position.FieldCallRetryIntervalMinutes, position.FieldFollowUpIntervalHours, position.FieldRejectedCvTimeoutDays:
			values[i] = new(sql.NullInt64)
		case position.FieldTitle, position.FieldDescription, position.FieldStatus, position.FieldAgentPrompt, position.FieldAgentFirstMessage, position.FieldQualificationCriteria:
			values[i] = new(sql.NullString)
		case position.FieldCreatedAt, position.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Position fields.
func (_m *Position) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case position.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case position.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case position.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case position.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = position.Status(value.String)
			}
		case position.FieldAgentPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_prompt", values[i])
			} else if value.Valid {
				_m.AgentPrompt = value.String
			}
		case position.FieldAgentFirstMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_first_message", values[i])
			} else if value.Valid {
				_m.AgentFirstMessage = value.String
			}
		case position.FieldQualificationCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field qualification_criteria", values[i])
			} else if value.Valid {
				_m.QualificationCriteria = value.String
			}
		case position.FieldCallingHoursStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calling_hours_start", values[i])
			} else if value.Valid {
				_m.CallingHoursStart = int(value.Int64)
			}
		case position.FieldCallingHoursEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calling_hours_end", values[i])
			} else if value.Valid {
				_m.CallingHoursEnd = int(value.Int64)
			}
		case position.FieldCallRetryMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field call_retry_max", values[i])
			} else if value.Valid {
				_m.CallRetryMax = int(value.Int64)
			}
		case position.FieldCallRetryIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field call_retry_interval_minutes", values[i])
			} else if value.Valid {
				_m.CallRetryIntervalMinutes = int(value.Int64)
			}
		case position.FieldFollowUpIntervalHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_interval_hours", values[i])
			} else if value.Valid {
				_m.FollowUpIntervalHours = int(value.Int64)
			}
		case position.FieldRejectedCvTimeoutDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_cv_timeout_days", values[i])
			} else if value.Valid {
				_m.RejectedCvTimeoutDays = int(value.Int64)
			}
		case position.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case position.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Position.
// This includes values selected through modifiers, order, etc.
func (_m *Position) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplications queries the "applications" edge of the Position entity.
func (_m *Position) QueryApplications() *ApplicationQuery {
	return NewPositionClient(_m.config).QueryApplications(_m)
}

// Update returns a builder for updating this Position.
// Note that you need to call Position.Unwrap() before calling this method if this Position
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Position) Update() *PositionUpdateOne {
	return NewPositionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Position entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Position) Unwrap() *Position {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Position is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Position) String() string {
	var builder strings.Builder
	builder.WriteString("Position(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("agent_prompt=")
	builder.WriteString(_m.AgentPrompt)
	builder.WriteString(", ")
	builder.WriteString("agent_first_message=")
	builder.WriteString(_m.AgentFirstMessage)
	builder.WriteString(", ")
	builder.WriteString("qualification_criteria=")
	builder.WriteString(_m.QualificationCriteria)
	builder.WriteString(", ")
	builder.WriteString("calling_hours_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallingHoursStart))
	builder.WriteString(", ")
	builder.WriteString("calling_hours_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallingHoursEnd))
	builder.WriteString(", ")
	builder.WriteString("call_retry_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallRetryMax))
	builder.WriteString(", ")
	builder.WriteString("call_retry_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallRetryIntervalMinutes))
	builder.WriteString(", ")
	builder.WriteString("follow_up_interval_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpIntervalHours))
	builder.WriteString(", ")
	builder.WriteString("rejected_cv_timeout_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectedCvTimeoutDays))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Positions is a parsable slice of Position.
type Positions []*Position
