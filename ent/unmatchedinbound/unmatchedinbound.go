// Code generated by ent, DO NOT EDIT.

package unmatchedinbound

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unmatchedinbound type in the database.
	Label = "unmatched_inbound"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldSender holds the string denoting the sender field in the database.
	FieldSender = "sender"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBodySnippet holds the string denoting the body_snippet field in the database.
	FieldBodySnippet = "body_snippet"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldResolvedApplicationID holds the string denoting the resolved_application_id field in the database.
	FieldResolvedApplicationID = "resolved_application_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the unmatchedinbound in the database.
	Table = "unmatched_inbounds"
)

// Columns holds all SQL columns for unmatchedinbound fields.
var Columns = []string{
	FieldID,
	FieldChannel,
	FieldSender,
	FieldSubject,
	FieldBodySnippet,
	FieldFilePath,
	FieldOriginalFilename,
	FieldRawPayload,
	FieldResolved,
	FieldResolvedApplicationID,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Channel defines the type for the "channel" enum field.
type Channel string

// ChannelEmail is the default value of the Channel enum.
const DefaultChannel = ChannelEmail

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
		return fmt.Errorf("unmatchedinbound: invalid enum value for channel field: %q", c)
	}
}

// OrderOption defines the ordering options for the UnmatchedInbound queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// BySender orders the results by the sender field.
func BySender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSender, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBodySnippet orders the results by the body_snippet field.
func ByBodySnippet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodySnippet, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByResolvedApplicationID orders the results by the resolved_application_id field.
func ByResolvedApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedApplicationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
