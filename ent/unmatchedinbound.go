// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

// UnmatchedInbound is the model entity for the UnmatchedInbound schema.
type UnmatchedInbound struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel unmatchedinbound.Channel `json:"channel,omitempty"`
	// Raw From header or WhatsApp sender id
	Sender string `json:"sender,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// First 500 characters of the message body
	BodySnippet string `json:"body_snippet,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// RawPayload holds the value of the "raw_payload" field.
	RawPayload map[string]interface{} `json:"raw_payload,omitempty"`
	// Resolved holds the value of the "resolved" field.
	Resolved bool `json:"resolved,omitempty"`
	// ResolvedApplicationID holds the value of the "resolved_application_id" field.
	ResolvedApplicationID *int `json:"resolved_application_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnmatchedInbound) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unmatchedinbound.FieldRawPayload:
			values[i] = new([]byte)
		case unmatchedinbound.FieldResolved:
			values[i] = new(sql.NullBool)
		case unmatchedinbound.FieldID, unmatchedinbound.FieldResolvedApplicationID:
			values[i] = new(sql.NullInt64)
		case unmatchedinbound.FieldChannel, unmatchedinbound.FieldSender, unmatchedinbound.FieldSubject, unmatchedinbound.FieldBodySnippet, unmatchedinbound.FieldFilePath, unmatchedinbound.FieldOriginalFilename:
			values[i] = new(sql.NullString)
		case unmatchedinbound.FieldCreatedAt, unmatchedinbound.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnmatchedInbound fields.
func (_m *UnmatchedInbound) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unmatchedinbound.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case unmatchedinbound.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = unmatchedinbound.Channel(value.String)
			}
		case unmatchedinbound.FieldSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender", values[i])
			} else if value.Valid {
				_m.Sender = value.String
			}
		case unmatchedinbound.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case unmatchedinbound.FieldBodySnippet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_snippet", values[i])
			} else if value.Valid {
				_m.BodySnippet = value.String
			}
		case unmatchedinbound.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case unmatchedinbound.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case unmatchedinbound.FieldRawPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawPayload); err != nil {
					return fmt.Errorf("unmarshal field raw_payload: %w", err)
				}
			}
		case unmatchedinbound.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		case unmatchedinbound.FieldResolvedApplicationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_application_id", values[i])
			} else if value.Valid {
				_m.ResolvedApplicationID = new(int)
				*_m.ResolvedApplicationID = int(value.Int64)
			}
		case unmatchedinbound.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case unmatchedinbound.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnmatchedInbound.
// This includes values selected through modifiers, order, etc.
func (_m *UnmatchedInbound) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnmatchedInbound.
// Note that you need to call UnmatchedInbound.Unwrap() before calling this method if this UnmatchedInbound
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnmatchedInbound) Update() *UnmatchedInboundUpdateOne {
	return NewUnmatchedInboundClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnmatchedInbound entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnmatchedInbound) Unwrap() *UnmatchedInbound {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnmatchedInbound is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnmatchedInbound) String() string {
	var builder strings.Builder
	builder.WriteString("UnmatchedInbound(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("sender=")
	builder.WriteString(_m.Sender)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body_snippet=")
	builder.WriteString(_m.BodySnippet)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPayload))
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteString(", ")
	if v := _m.ResolvedApplicationID; v != nil {
		builder.WriteString("resolved_application_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UnmatchedInbounds is a parsable slice of UnmatchedInbound.
type UnmatchedInbounds []*UnmatchedInbound
