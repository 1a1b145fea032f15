// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
)

// MessageTemplate is the model entity for the MessageTemplate schema.
type MessageTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MessageType holds the value of the "message_type" field.
	MessageType messagetemplate.MessageType `json:"message_type,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel messagetemplate.Channel `json:"channel,omitempty"`
	// Email only
	Subject string `json:"subject,omitempty"`
	// Supports the documented {placeholder} tokens
	Body string `json:"body,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagetemplate.FieldID:
			values[i] = new(sql.NullInt64)
		case messagetemplate.FieldMessageType, messagetemplate.FieldChannel, messagetemplate.FieldSubject, messagetemplate.FieldBody:
			values[i] = new(sql.NullString)
		case messagetemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageTemplate fields.
func (_m *MessageTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagetemplate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case messagetemplate.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = messagetemplate.MessageType(value.String)
			}
		case messagetemplate.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = messagetemplate.Channel(value.String)
			}
		case messagetemplate.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case messagetemplate.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case messagetemplate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MessageTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *MessageTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MessageTemplate.
// Note that you need to call MessageTemplate.Unwrap() before calling this method if this MessageTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageTemplate) Update() *MessageTemplateUpdateOne {
	return NewMessageTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageTemplate) Unwrap() *MessageTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("MessageTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageTemplates is a parsable slice of MessageTemplate.
type MessageTemplates []*MessageTemplate
