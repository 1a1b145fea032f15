// Code generated by ent, DO NOT EDIT.

package messagetemplate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the messagetemplate type in the database.
	Label = "message_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the messagetemplate in the database.
	Table = "message_templates"
)

// Columns holds all SQL columns for messagetemplate fields.
var Columns = []string{
	FieldID,
	FieldMessageType,
	FieldChannel,
	FieldSubject,
	FieldBody,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// MessageType defines the type for the "message_type" enum field.
type MessageType string

// MessageType values.
const (
	MessageTypeCvRequest         MessageType = "cv_request"
	MessageTypeCvRequestRejected MessageType = "cv_request_rejected"
	MessageTypeCvFollowup1       MessageType = "cv_followup_1"
	MessageTypeCvFollowup2       MessageType = "cv_followup_2"
	MessageTypeRejection         MessageType = "rejection"
	MessageTypeOther             MessageType = "other"
)

func (mt MessageType) String() string {
	return string(mt)
}

// MessageTypeValidator is a validator for the "message_type" field enum values. It is called by the builders before save.
func MessageTypeValidator(mt MessageType) error {
	switch mt {
	case MessageTypeCvRequest, MessageTypeCvRequestRejected, MessageTypeCvFollowup1, MessageTypeCvFollowup2, MessageTypeRejection, MessageTypeOther:
		return nil
	default:
		return fmt.Errorf("messagetemplate: invalid enum value for message_type field: %q", mt)
	}
}

// Channel defines the type for the "channel" enum field.
type Channel string

// Channel values.
const (
	ChannelEmail    Channel = "email"
	ChannelWhatsapp Channel = "whatsapp"
)

func (c Channel) String() string {
	return string(c)
}

// ChannelValidator is a validator for the "channel" field enum values. It is called by the builders before save.
func ChannelValidator(c Channel) error {
	switch c {
	case ChannelEmail, ChannelWhatsapp:
		return nil
	default:
		return fmt.Errorf("messagetemplate: invalid enum value for channel field: %q", c)
	}
}

// OrderOption defines the ordering options for the MessageTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
