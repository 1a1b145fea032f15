// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/statuschange"
)

// StatusChange is the model entity for the StatusChange schema.
type StatusChange struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID int `json:"application_id,omitempty"`
	// FromStatus holds the value of the "from_status" field.
	FromStatus string `json:"from_status,omitempty"`
	// ToStatus holds the value of the "to_status" field.
	ToStatus string `json:"to_status,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy string `json:"changed_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StatusChangeQuery when eager-loading is set.
	Edges        StatusChangeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StatusChangeEdges holds the relations/edges for other nodes in the graph.
type StatusChangeEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StatusChangeEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StatusChange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case statuschange.FieldID, statuschange.FieldApplicationID:
			values[i] = new(sql.NullInt64)
		case statuschange.FieldFromStatus, statuschange.FieldToStatus, statuschange.FieldNote, statuschange.FieldChangedBy:
			values[i] = new(sql.NullString)
		case statuschange.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StatusChange fields.
func (_m *StatusChange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case statuschange.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case statuschange.FieldApplicationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = int(value.Int64)
			}
		case statuschange.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				_m.FromStatus = value.String
			}
		case statuschange.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				_m.ToStatus = value.String
			}
		case statuschange.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case statuschange.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = value.String
			}
		case statuschange.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StatusChange.
// This includes values selected through modifiers, order, etc.
func (_m *StatusChange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the StatusChange entity.
func (_m *StatusChange) QueryApplication() *ApplicationQuery {
	return NewStatusChangeClient(_m.config).QueryApplication(_m)
}

// Update returns a builder for updating this StatusChange.
// Note that you need to call StatusChange.Unwrap() before calling this method if this StatusChange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StatusChange) Update() *StatusChangeUpdateOne {
	return NewStatusChangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StatusChange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StatusChange) Unwrap() *StatusChange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StatusChange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StatusChange) String() string {
	var builder strings.Builder
	builder.WriteString("StatusChange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("from_status=")
	builder.WriteString(_m.FromStatus)
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(_m.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(_m.ChangedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StatusChanges is a parsable slice of StatusChange.
type StatusChanges []*StatusChange
