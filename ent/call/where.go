// Code generated by ent, DO NOT EDIT.

package call

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldApplicationID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAttemptNumber, v))
}

// ExternalConversationID applies equality check predicate on the "external_conversation_id" field. It's identical to ExternalConversationIDEQ.
func ExternalConversationID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldExternalConversationID, v))
}

// ExternalBatchID applies equality check predicate on the "external_batch_id" field. It's identical to ExternalBatchIDEQ.
func ExternalBatchID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldExternalBatchID, v))
}

// Transcript applies equality check predicate on the "transcript" field. It's identical to TranscriptEQ.
func Transcript(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldTranscript, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldSummary, v))
}

// SummaryTitle applies equality check predicate on the "summary_title" field. It's identical to SummaryTitleEQ.
func SummaryTitle(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldSummaryTitle, v))
}

// RecordingURL applies equality check predicate on the "recording_url" field. It's identical to RecordingURLEQ.
func RecordingURL(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldRecordingURL, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDurationSeconds, v))
}

// InitiatedAt applies equality check predicate on the "initiated_at" field. It's identical to InitiatedAtEQ.
func InitiatedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldInitiatedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldApplicationID, vs...))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldAttemptNumber, v))
}

// ExternalConversationIDEQ applies the EQ predicate on the "external_conversation_id" field.
func ExternalConversationIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldExternalConversationID, v))
}

// ExternalConversationIDNEQ applies the NEQ predicate on the "external_conversation_id" field.
func ExternalConversationIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldExternalConversationID, v))
}

// ExternalConversationIDIn applies the In predicate on the "external_conversation_id" field.
func ExternalConversationIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldExternalConversationID, vs...))
}

// ExternalConversationIDNotIn applies the NotIn predicate on the "external_conversation_id" field.
func ExternalConversationIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldExternalConversationID, vs...))
}

// ExternalConversationIDGT applies the GT predicate on the "external_conversation_id" field.
func ExternalConversationIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldExternalConversationID, v))
}

// ExternalConversationIDGTE applies the GTE predicate on the "external_conversation_id" field.
func ExternalConversationIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldExternalConversationID, v))
}

// ExternalConversationIDLT applies the LT predicate on the "external_conversation_id" field.
func ExternalConversationIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldExternalConversationID, v))
}

// ExternalConversationIDLTE applies the LTE predicate on the "external_conversation_id" field.
func ExternalConversationIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldExternalConversationID, v))
}

// ExternalConversationIDContains applies the Contains predicate on the "external_conversation_id" field.
func ExternalConversationIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldExternalConversationID, v))
}

// ExternalConversationIDHasPrefix applies the HasPrefix predicate on the "external_conversation_id" field.
func ExternalConversationIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldExternalConversationID, v))
}

// ExternalConversationIDHasSuffix applies the HasSuffix predicate on the "external_conversation_id" field.
func ExternalConversationIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldExternalConversationID, v))
}

// ExternalConversationIDIsNil applies the IsNil predicate on the "external_conversation_id" field.
func ExternalConversationIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldExternalConversationID))
}

// ExternalConversationIDNotNil applies the NotNil predicate on the "external_conversation_id" field.
func ExternalConversationIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldExternalConversationID))
}

// ExternalConversationIDEqualFold applies the EqualFold predicate on the "external_conversation_id" field.
func ExternalConversationIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldExternalConversationID, v))
}

// ExternalConversationIDContainsFold applies the ContainsFold predicate on the "external_conversation_id" field.
func ExternalConversationIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldExternalConversationID, v))
}

// ExternalBatchIDEQ applies the EQ predicate on the "external_batch_id" field.
func ExternalBatchIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldExternalBatchID, v))
}

// ExternalBatchIDNEQ applies the NEQ predicate on the "external_batch_id" field.
func ExternalBatchIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldExternalBatchID, v))
}

// ExternalBatchIDIn applies the In predicate on the "external_batch_id" field.
func ExternalBatchIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldExternalBatchID, vs...))
}

// ExternalBatchIDNotIn applies the NotIn predicate on the "external_batch_id" field.
func ExternalBatchIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldExternalBatchID, vs...))
}

// ExternalBatchIDGT applies the GT predicate on the "external_batch_id" field.
func ExternalBatchIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldExternalBatchID, v))
}

// ExternalBatchIDGTE applies the GTE predicate on the "external_batch_id" field.
func ExternalBatchIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldExternalBatchID, v))
}

// ExternalBatchIDLT applies the LT predicate on the "external_batch_id" field.
func ExternalBatchIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldExternalBatchID, v))
}

// ExternalBatchIDLTE applies the LTE predicate on the "external_batch_id" field.
func ExternalBatchIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldExternalBatchID, v))
}

// ExternalBatchIDContains applies the Contains predicate on the "external_batch_id" field.
func ExternalBatchIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldExternalBatchID, v))
}

// ExternalBatchIDHasPrefix applies the HasPrefix predicate on the "external_batch_id" field.
func ExternalBatchIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldExternalBatchID, v))
}

// ExternalBatchIDHasSuffix applies the HasSuffix predicate on the "external_batch_id" field.
func ExternalBatchIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldExternalBatchID, v))
}

// ExternalBatchIDIsNil applies the IsNil predicate on the "external_batch_id" field.
func ExternalBatchIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldExternalBatchID))
}

// ExternalBatchIDNotNil applies the NotNil predicate on the "external_batch_id" field.
func ExternalBatchIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldExternalBatchID))
}

// ExternalBatchIDEqualFold applies the EqualFold predicate on the "external_batch_id" field.
func ExternalBatchIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldExternalBatchID, v))
}

// ExternalBatchIDContainsFold applies the ContainsFold predicate on the "external_batch_id" field.
func ExternalBatchIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldExternalBatchID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldStatus, vs...))
}

// TranscriptEQ applies the EQ predicate on the "transcript" field.
func TranscriptEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptNEQ applies the NEQ predicate on the "transcript" field.
func TranscriptNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldTranscript, v))
}

// TranscriptIn applies the In predicate on the "transcript" field.
func TranscriptIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldTranscript, vs...))
}

// TranscriptNotIn applies the NotIn predicate on the "transcript" field.
func TranscriptNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldTranscript, vs...))
}

// TranscriptGT applies the GT predicate on the "transcript" field.
func TranscriptGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldTranscript, v))
}

// TranscriptGTE applies the GTE predicate on the "transcript" field.
func TranscriptGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldTranscript, v))
}

// TranscriptLT applies the LT predicate on the "transcript" field.
func TranscriptLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldTranscript, v))
}

// TranscriptLTE applies the LTE predicate on the "transcript" field.
func TranscriptLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldTranscript, v))
}

// TranscriptContains applies the Contains predicate on the "transcript" field.
func TranscriptContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldTranscript, v))
}

// TranscriptHasPrefix applies the HasPrefix predicate on the "transcript" field.
func TranscriptHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldTranscript, v))
}

// TranscriptHasSuffix applies the HasSuffix predicate on the "transcript" field.
func TranscriptHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldTranscript, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldTranscript))
}

// TranscriptEqualFold applies the EqualFold predicate on the "transcript" field.
func TranscriptEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldTranscript, v))
}

// TranscriptContainsFold applies the ContainsFold predicate on the "transcript" field.
func TranscriptContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldTranscript, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldSummary, v))
}

// SummaryTitleEQ applies the EQ predicate on the "summary_title" field.
func SummaryTitleEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldSummaryTitle, v))
}

// SummaryTitleNEQ applies the NEQ predicate on the "summary_title" field.
func SummaryTitleNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldSummaryTitle, v))
}

// SummaryTitleIn applies the In predicate on the "summary_title" field.
func SummaryTitleIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldSummaryTitle, vs...))
}

// SummaryTitleNotIn applies the NotIn predicate on the "summary_title" field.
func SummaryTitleNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldSummaryTitle, vs...))
}

// SummaryTitleGT applies the GT predicate on the "summary_title" field.
func SummaryTitleGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldSummaryTitle, v))
}

// SummaryTitleGTE applies the GTE predicate on the "summary_title" field.
func SummaryTitleGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldSummaryTitle, v))
}

// SummaryTitleLT applies the LT predicate on the "summary_title" field.
func SummaryTitleLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldSummaryTitle, v))
}

// SummaryTitleLTE applies the LTE predicate on the "summary_title" field.
func SummaryTitleLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldSummaryTitle, v))
}

// SummaryTitleContains applies the Contains predicate on the "summary_title" field.
func SummaryTitleContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldSummaryTitle, v))
}

// SummaryTitleHasPrefix applies the HasPrefix predicate on the "summary_title" field.
func SummaryTitleHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldSummaryTitle, v))
}

// SummaryTitleHasSuffix applies the HasSuffix predicate on the "summary_title" field.
func SummaryTitleHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldSummaryTitle, v))
}

// SummaryTitleIsNil applies the IsNil predicate on the "summary_title" field.
func SummaryTitleIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldSummaryTitle))
}

// SummaryTitleNotNil applies the NotNil predicate on the "summary_title" field.
func SummaryTitleNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldSummaryTitle))
}

// SummaryTitleEqualFold applies the EqualFold predicate on the "summary_title" field.
func SummaryTitleEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldSummaryTitle, v))
}

// SummaryTitleContainsFold applies the ContainsFold predicate on the "summary_title" field.
func SummaryTitleContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldSummaryTitle, v))
}

// RecordingURLEQ applies the EQ predicate on the "recording_url" field.
func RecordingURLEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldRecordingURL, v))
}

// RecordingURLNEQ applies the NEQ predicate on the "recording_url" field.
func RecordingURLNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldRecordingURL, v))
}

// RecordingURLIn applies the In predicate on the "recording_url" field.
func RecordingURLIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldRecordingURL, vs...))
}

// RecordingURLNotIn applies the NotIn predicate on the "recording_url" field.
func RecordingURLNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldRecordingURL, vs...))
}

// RecordingURLGT applies the GT predicate on the "recording_url" field.
func RecordingURLGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldRecordingURL, v))
}

// RecordingURLGTE applies the GTE predicate on the "recording_url" field.
func RecordingURLGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldRecordingURL, v))
}

// RecordingURLLT applies the LT predicate on the "recording_url" field.
func RecordingURLLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldRecordingURL, v))
}

// RecordingURLLTE applies the LTE predicate on the "recording_url" field.
func RecordingURLLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldRecordingURL, v))
}

// RecordingURLContains applies the Contains predicate on the "recording_url" field.
func RecordingURLContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldRecordingURL, v))
}

// RecordingURLHasPrefix applies the HasPrefix predicate on the "recording_url" field.
func RecordingURLHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldRecordingURL, v))
}

// RecordingURLHasSuffix applies the HasSuffix predicate on the "recording_url" field.
func RecordingURLHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldRecordingURL, v))
}

// RecordingURLIsNil applies the IsNil predicate on the "recording_url" field.
func RecordingURLIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldRecordingURL))
}

// RecordingURLNotNil applies the NotNil predicate on the "recording_url" field.
func RecordingURLNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldRecordingURL))
}

// RecordingURLEqualFold applies the EqualFold predicate on the "recording_url" field.
func RecordingURLEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldRecordingURL, v))
}

// RecordingURLContainsFold applies the ContainsFold predicate on the "recording_url" field.
func RecordingURLContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldRecordingURL, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldDurationSeconds))
}

// RawPayloadIsNil applies the IsNil predicate on the "raw_payload" field.
func RawPayloadIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldRawPayload))
}

// RawPayloadNotNil applies the NotNil predicate on the "raw_payload" field.
func RawPayloadNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldRawPayload))
}

// InitiatedAtEQ applies the EQ predicate on the "initiated_at" field.
func InitiatedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldInitiatedAt, v))
}

// InitiatedAtNEQ applies the NEQ predicate on the "initiated_at" field.
func InitiatedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldInitiatedAt, v))
}

// InitiatedAtIn applies the In predicate on the "initiated_at" field.
func InitiatedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldInitiatedAt, vs...))
}

// InitiatedAtNotIn applies the NotIn predicate on the "initiated_at" field.
func InitiatedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldInitiatedAt, vs...))
}

// InitiatedAtGT applies the GT predicate on the "initiated_at" field.
func InitiatedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldInitiatedAt, v))
}

// InitiatedAtGTE applies the GTE predicate on the "initiated_at" field.
func InitiatedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldInitiatedAt, v))
}

// InitiatedAtLT applies the LT predicate on the "initiated_at" field.
func InitiatedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldInitiatedAt, v))
}

// InitiatedAtLTE applies the LTE predicate on the "initiated_at" field.
func InitiatedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldInitiatedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldEndedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.Call {
	return predicate.Call(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.Call {
	return predicate.Call(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluation applies the HasEdge predicate on the "evaluation" edge.
func HasEvaluation() predicate.Call {
	return predicate.Call(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EvaluationTable, EvaluationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationWith applies the HasEdge predicate on the "evaluation" edge with a given conditions (other predicates).
func HasEvaluationWith(preds ...predicate.Evaluation) predicate.Call {
	return predicate.Call(func(s *sql.Selector) {
		step := newEvaluationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Call) predicate.Call {
	return predicate.Call(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Call) predicate.Call {
	return predicate.Call(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Call) predicate.Call {
	return predicate.Call(sql.NotPredicates(p))
}
