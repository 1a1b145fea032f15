// Code generated by ent, DO NOT EDIT.

package unmatchedinbound

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldID, id))
}

// Sender applies equality check predicate on the "sender" field. It's identical to SenderEQ.
func Sender(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldSender, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldSubject, v))
}

// BodySnippet applies equality check predicate on the "body_snippet" field. It's identical to BodySnippetEQ.
func BodySnippet(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldBodySnippet, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldFilePath, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldOriginalFilename, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldResolved, v))
}

// ResolvedApplicationID applies equality check predicate on the "resolved_application_id" field. It's identical to ResolvedApplicationIDEQ.
func ResolvedApplicationID(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldResolvedApplicationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldResolvedAt, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldChannel, vs...))
}

// SenderEQ applies the EQ predicate on the "sender" field.
func SenderEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldSender, v))
}

// SenderNEQ applies the NEQ predicate on the "sender" field.
func SenderNEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldSender, v))
}

// SenderIn applies the In predicate on the "sender" field.
func SenderIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldSender, vs...))
}

// SenderNotIn applies the NotIn predicate on the "sender" field.
func SenderNotIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldSender, vs...))
}

// SenderGT applies the GT predicate on the "sender" field.
func SenderGT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldSender, v))
}

// SenderGTE applies the GTE predicate on the "sender" field.
func SenderGTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldSender, v))
}

// SenderLT applies the LT predicate on the "sender" field.
func SenderLT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldSender, v))
}

// SenderLTE applies the LTE predicate on the "sender" field.
func SenderLTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldSender, v))
}

// SenderContains applies the Contains predicate on the "sender" field.
func SenderContains(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContains(FieldSender, v))
}

// SenderHasPrefix applies the HasPrefix predicate on the "sender" field.
func SenderHasPrefix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasPrefix(FieldSender, v))
}

// SenderHasSuffix applies the HasSuffix predicate on the "sender" field.
func SenderHasSuffix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasSuffix(FieldSender, v))
}

// SenderEqualFold applies the EqualFold predicate on the "sender" field.
func SenderEqualFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEqualFold(FieldSender, v))
}

// SenderContainsFold applies the ContainsFold predicate on the "sender" field.
func SenderContainsFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContainsFold(FieldSender, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContainsFold(FieldSubject, v))
}

// BodySnippetEQ applies the EQ predicate on the "body_snippet" field.
func BodySnippetEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldBodySnippet, v))
}

// BodySnippetNEQ applies the NEQ predicate on the "body_snippet" field.
func BodySnippetNEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldBodySnippet, v))
}

// BodySnippetIn applies the In predicate on the "body_snippet" field.
func BodySnippetIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldBodySnippet, vs...))
}

// BodySnippetNotIn applies the NotIn predicate on the "body_snippet" field.
func BodySnippetNotIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldBodySnippet, vs...))
}

// BodySnippetGT applies the GT predicate on the "body_snippet" field.
func BodySnippetGT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldBodySnippet, v))
}

// BodySnippetGTE applies the GTE predicate on the "body_snippet" field.
func BodySnippetGTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldBodySnippet, v))
}

// BodySnippetLT applies the LT predicate on the "body_snippet" field.
func BodySnippetLT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldBodySnippet, v))
}

// BodySnippetLTE applies the LTE predicate on the "body_snippet" field.
func BodySnippetLTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldBodySnippet, v))
}

// BodySnippetContains applies the Contains predicate on the "body_snippet" field.
func BodySnippetContains(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContains(FieldBodySnippet, v))
}

// BodySnippetHasPrefix applies the HasPrefix predicate on the "body_snippet" field.
func BodySnippetHasPrefix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasPrefix(FieldBodySnippet, v))
}

// BodySnippetHasSuffix applies the HasSuffix predicate on the "body_snippet" field.
func BodySnippetHasSuffix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasSuffix(FieldBodySnippet, v))
}

// BodySnippetIsNil applies the IsNil predicate on the "body_snippet" field.
func BodySnippetIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldBodySnippet))
}

// BodySnippetNotNil applies the NotNil predicate on the "body_snippet" field.
func BodySnippetNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldBodySnippet))
}

// BodySnippetEqualFold applies the EqualFold predicate on the "body_snippet" field.
func BodySnippetEqualFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEqualFold(FieldBodySnippet, v))
}

// BodySnippetContainsFold applies the ContainsFold predicate on the "body_snippet" field.
func BodySnippetContainsFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContainsFold(FieldBodySnippet, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathIsNil applies the IsNil predicate on the "file_path" field.
func FilePathIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldFilePath))
}

// FilePathNotNil applies the NotNil predicate on the "file_path" field.
func FilePathNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldFilePath))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContainsFold(FieldFilePath, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameIsNil applies the IsNil predicate on the "original_filename" field.
func OriginalFilenameIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldOriginalFilename))
}

// OriginalFilenameNotNil applies the NotNil predicate on the "original_filename" field.
func OriginalFilenameNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldOriginalFilename))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// RawPayloadIsNil applies the IsNil predicate on the "raw_payload" field.
func RawPayloadIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldRawPayload))
}

// RawPayloadNotNil applies the NotNil predicate on the "raw_payload" field.
func RawPayloadNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldRawPayload))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldResolved, v))
}

// ResolvedApplicationIDEQ applies the EQ predicate on the "resolved_application_id" field.
func ResolvedApplicationIDEQ(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldResolvedApplicationID, v))
}

// ResolvedApplicationIDNEQ applies the NEQ predicate on the "resolved_application_id" field.
func ResolvedApplicationIDNEQ(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldResolvedApplicationID, v))
}

// ResolvedApplicationIDIn applies the In predicate on the "resolved_application_id" field.
func ResolvedApplicationIDIn(vs ...int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldResolvedApplicationID, vs...))
}

// ResolvedApplicationIDNotIn applies the NotIn predicate on the "resolved_application_id" field.
func ResolvedApplicationIDNotIn(vs ...int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldResolvedApplicationID, vs...))
}

// ResolvedApplicationIDGT applies the GT predicate on the "resolved_application_id" field.
func ResolvedApplicationIDGT(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldResolvedApplicationID, v))
}

// ResolvedApplicationIDGTE applies the GTE predicate on the "resolved_application_id" field.
func ResolvedApplicationIDGTE(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldResolvedApplicationID, v))
}

// ResolvedApplicationIDLT applies the LT predicate on the "resolved_application_id" field.
func ResolvedApplicationIDLT(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldResolvedApplicationID, v))
}

// ResolvedApplicationIDLTE applies the LTE predicate on the "resolved_application_id" field.
func ResolvedApplicationIDLTE(v int) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldResolvedApplicationID, v))
}

// ResolvedApplicationIDIsNil applies the IsNil predicate on the "resolved_application_id" field.
func ResolvedApplicationIDIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldResolvedApplicationID))
}

// ResolvedApplicationIDNotNil applies the NotNil predicate on the "resolved_application_id" field.
func ResolvedApplicationIDNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldResolvedApplicationID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnmatchedInbound) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnmatchedInbound) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnmatchedInbound) predicate.UnmatchedInbound {
	return predicate.UnmatchedInbound(sql.NotPredicates(p))
}
