// Code generated by ent, DO NOT EDIT.

package position

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldDescription, v))
}

// AgentPrompt applies equality check predicate on the "agent_prompt" field. It's identical to AgentPromptEQ.
func AgentPrompt(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldAgentPrompt, v))
}

// AgentFirstMessage applies equality check predicate on the "agent_first_message" field. It's identical to AgentFirstMessageEQ.
func AgentFirstMessage(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldAgentFirstMessage, v))
}

// QualificationCriteria applies equality check predicate on the "qualification_criteria" field. It's identical to QualificationCriteriaEQ.
func QualificationCriteria(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldQualificationCriteria, v))
}

// CallingHoursStart applies equality check predicate on the "calling_hours_start" field. It's identical to CallingHoursStartEQ.
func CallingHoursStart(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallingHoursStart, v))
}

// CallingHoursEnd applies equality check predicate on the "calling_hours_end" field. It's identical to CallingHoursEndEQ.
func CallingHoursEnd(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallingHoursEnd, v))
}

// CallRetryMax applies equality check predicate on the "call_retry_max" field. It's identical to CallRetryMaxEQ.
func CallRetryMax(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallRetryMax, v))
}

// CallRetryIntervalMinutes applies equality check predicate on the "call_retry_interval_minutes" field. It's identical to CallRetryIntervalMinutesEQ.
func CallRetryIntervalMinutes(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallRetryIntervalMinutes, v))
}

// FollowUpIntervalHours applies equality check predicate on the "follow_up_interval_hours" field. It's identical to FollowUpIntervalHoursEQ.
func FollowUpIntervalHours(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldFollowUpIntervalHours, v))
}

// RejectedCvTimeoutDays applies equality check predicate on the "rejected_cv_timeout_days" field. It's identical to RejectedCvTimeoutDaysEQ.
func RejectedCvTimeoutDays(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldRejectedCvTimeoutDays, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Position {
	return predicate.Position(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Position {
	return predicate.Position(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Position {
	return predicate.Position(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Position {
	return predicate.Position(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Position {
	return predicate.Position(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Position {
	return predicate.Position(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Position {
	return predicate.Position(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Position {
	return predicate.Position(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldStatus, vs...))
}

// AgentPromptEQ applies the EQ predicate on the "agent_prompt" field.
func AgentPromptEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldAgentPrompt, v))
}

// AgentPromptNEQ applies the NEQ predicate on the "agent_prompt" field.
func AgentPromptNEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldAgentPrompt, v))
}

// AgentPromptIn applies the In predicate on the "agent_prompt" field.
func AgentPromptIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldAgentPrompt, vs...))
}

// AgentPromptNotIn applies the NotIn predicate on the "agent_prompt" field.
func AgentPromptNotIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldAgentPrompt, vs...))
}

// AgentPromptGT applies the GT predicate on the "agent_prompt" field.
func AgentPromptGT(v string) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldAgentPrompt, v))
}

// AgentPromptGTE applies the GTE predicate on the "agent_prompt" field.
func AgentPromptGTE(v string) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldAgentPrompt, v))
}

// AgentPromptLT applies the LT predicate on the "agent_prompt" field.
func AgentPromptLT(v string) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldAgentPrompt, v))
}

// AgentPromptLTE applies the LTE predicate on the "agent_prompt" field.
func AgentPromptLTE(v string) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldAgentPrompt, v))
}

// AgentPromptContains applies the Contains predicate on the "agent_prompt" field.
func AgentPromptContains(v string) predicate.Position {
	return predicate.Position(sql.FieldContains(FieldAgentPrompt, v))
}

// AgentPromptHasPrefix applies the HasPrefix predicate on the "agent_prompt" field.
func AgentPromptHasPrefix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasPrefix(FieldAgentPrompt, v))
}

// AgentPromptHasSuffix applies the HasSuffix predicate on the "agent_prompt" field.
func AgentPromptHasSuffix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasSuffix(FieldAgentPrompt, v))
}

// AgentPromptIsNil applies the IsNil predicate on the "agent_prompt" field.
func AgentPromptIsNil() predicate.Position {
	return predicate.Position(sql.FieldIsNull(FieldAgentPrompt))
}

// AgentPromptNotNil applies the NotNil predicate on the "agent_prompt" field.
func AgentPromptNotNil() predicate.Position {
	return predicate.Position(sql.FieldNotNull(FieldAgentPrompt))
}

// AgentPromptEqualFold applies the EqualFold predicate on the "agent_prompt" field.
func AgentPromptEqualFold(v string) predicate.Position {
	return predicate.Position(sql.FieldEqualFold(FieldAgentPrompt, v))
}

// AgentPromptContainsFold applies the ContainsFold predicate on the "agent_prompt" field.
func AgentPromptContainsFold(v string) predicate.Position {
	return predicate.Position(sql.FieldContainsFold(FieldAgentPrompt, v))
}

// AgentFirstMessageEQ applies the EQ predicate on the "agent_first_message" field.
func AgentFirstMessageEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldAgentFirstMessage, v))
}

// AgentFirstMessageNEQ applies the NEQ predicate on the "agent_first_message" field.
func AgentFirstMessageNEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldAgentFirstMessage, v))
}

// AgentFirstMessageIn applies the In predicate on the "agent_first_message" field.
func AgentFirstMessageIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldAgentFirstMessage, vs...))
}

// AgentFirstMessageNotIn applies the NotIn predicate on the "agent_first_message" field.
func AgentFirstMessageNotIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldAgentFirstMessage, vs...))
}

// AgentFirstMessageGT applies the GT predicate on the "agent_first_message" field.
func AgentFirstMessageGT(v string) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldAgentFirstMessage, v))
}

// AgentFirstMessageGTE applies the GTE predicate on the "agent_first_message" field.
func AgentFirstMessageGTE(v string) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldAgentFirstMessage, v))
}

// AgentFirstMessageLT applies the LT predicate on the "agent_first_message" field.
func AgentFirstMessageLT(v string) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldAgentFirstMessage, v))
}

// AgentFirstMessageLTE applies the LTE predicate on the "agent_first_message" field.
func AgentFirstMessageLTE(v string) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldAgentFirstMessage, v))
}

// AgentFirstMessageContains applies the Contains predicate on the "agent_first_message" field.
func AgentFirstMessageContains(v string) predicate.Position {
	return predicate.Position(sql.FieldContains(FieldAgentFirstMessage, v))
}

// AgentFirstMessageHasPrefix applies the HasPrefix predicate on the "agent_first_message" field.
func AgentFirstMessageHasPrefix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasPrefix(FieldAgentFirstMessage, v))
}

// AgentFirstMessageHasSuffix applies the HasSuffix predicate on the "agent_first_message" field.
func AgentFirstMessageHasSuffix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasSuffix(FieldAgentFirstMessage, v))
}

// AgentFirstMessageIsNil applies the IsNil predicate on the "agent_first_message" field.
func AgentFirstMessageIsNil() predicate.Position {
	return predicate.Position(sql.FieldIsNull(FieldAgentFirstMessage))
}

// AgentFirstMessageNotNil applies the NotNil predicate on the "agent_first_message" field.
func AgentFirstMessageNotNil() predicate.Position {
	return predicate.Position(sql.FieldNotNull(FieldAgentFirstMessage))
}

// AgentFirstMessageEqualFold applies the EqualFold predicate on the "agent_first_message" field.
func AgentFirstMessageEqualFold(v string) predicate.Position {
	return predicate.Position(sql.FieldEqualFold(FieldAgentFirstMessage, v))
}

// AgentFirstMessageContainsFold applies the ContainsFold predicate on the "agent_first_message" field.
func AgentFirstMessageContainsFold(v string) predicate.Position {
	return predicate.Position(sql.FieldContainsFold(FieldAgentFirstMessage, v))
}

// QualificationCriteriaEQ applies the EQ predicate on the "qualification_criteria" field.
func QualificationCriteriaEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldQualificationCriteria, v))
}

// QualificationCriteriaNEQ applies the NEQ predicate on the "qualification_criteria" field.
func QualificationCriteriaNEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldQualificationCriteria, v))
}

// QualificationCriteriaIn applies the In predicate on the "qualification_criteria" field.
func QualificationCriteriaIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldQualificationCriteria, vs...))
}

// QualificationCriteriaNotIn applies the NotIn predicate on the "qualification_criteria" field.
func QualificationCriteriaNotIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldQualificationCriteria, vs...))
}

// QualificationCriteriaGT applies the GT predicate on the "qualification_criteria" field.
func QualificationCriteriaGT(v string) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldQualificationCriteria, v))
}

// QualificationCriteriaGTE applies the GTE predicate on the "qualification_criteria" field.
func QualificationCriteriaGTE(v string) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldQualificationCriteria, v))
}

// QualificationCriteriaLT applies the LT predicate on the "qualification_criteria" field.
func QualificationCriteriaLT(v string) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldQualificationCriteria, v))
}

// QualificationCriteriaLTE applies the LTE predicate on the "qualification_criteria" field.
func QualificationCriteriaLTE(v string) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldQualificationCriteria, v))
}

// QualificationCriteriaContains applies the Contains predicate on the "qualification_criteria" field.
func QualificationCriteriaContains(v string) predicate.Position {
	return predicate.Position(sql.FieldContains(FieldQualificationCriteria, v))
}

// QualificationCriteriaHasPrefix applies the HasPrefix predicate on the "qualification_criteria" field.
func QualificationCriteriaHasPrefix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasPrefix(FieldQualificationCriteria, v))
}

// QualificationCriteriaHasSuffix applies the HasSuffix predicate on the "qualification_criteria" field.
func QualificationCriteriaHasSuffix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasSuffix(FieldQualificationCriteria, v))
}

// QualificationCriteriaIsNil applies the IsNil predicate on the "qualification_criteria" field.
func QualificationCriteriaIsNil() predicate.Position {
	return predicate.Position(sql.FieldIsNull(FieldQualificationCriteria))
}

// QualificationCriteriaNotNil applies the NotNil predicate on the "qualification_criteria" field.
func QualificationCriteriaNotNil() predicate.Position {
	return predicate.Position(sql.FieldNotNull(FieldQualificationCriteria))
}

// QualificationCriteriaEqualFold applies the EqualFold predicate on the "qualification_criteria" field.
func QualificationCriteriaEqualFold(v string) predicate.Position {
	return predicate.Position(sql.FieldEqualFold(FieldQualificationCriteria, v))
}

// QualificationCriteriaContainsFold applies the ContainsFold predicate on the "qualification_criteria" field.
func QualificationCriteriaContainsFold(v string) predicate.Position {
	return predicate.Position(sql.FieldContainsFold(FieldQualificationCriteria, v))
}

// CallingHoursStartEQ applies the EQ predicate on the "calling_hours_start" field.
func CallingHoursStartEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallingHoursStart, v))
}

// CallingHoursStartNEQ applies the NEQ predicate on the "calling_hours_start" field.
func CallingHoursStartNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldCallingHoursStart, v))
}

// CallingHoursStartIn applies the In predicate on the "calling_hours_start" field.
func CallingHoursStartIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldCallingHoursStart, vs...))
}

// CallingHoursStartNotIn applies the NotIn predicate on the "calling_hours_start" field.
func CallingHoursStartNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldCallingHoursStart, vs...))
}

// CallingHoursStartGT applies the GT predicate on the "calling_hours_start" field.
func CallingHoursStartGT(v int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldCallingHoursStart, v))
}

// CallingHoursStartGTE applies the GTE predicate on the "calling_hours_start" field.
func CallingHoursStartGTE(v int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldCallingHoursStart, v))
}

// CallingHoursStartLT applies the LT predicate on the "calling_hours_start" field.
func CallingHoursStartLT(v int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldCallingHoursStart, v))
}

// CallingHoursStartLTE applies the LTE predicate on the "calling_hours_start" field.
func CallingHoursStartLTE(v int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldCallingHoursStart, v))
}

// CallingHoursEndEQ applies the EQ predicate on the "calling_hours_end" field.
func CallingHoursEndEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallingHoursEnd, v))
}

// CallingHoursEndNEQ applies the NEQ predicate on the "calling_hours_end" field.
func CallingHoursEndNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldCallingHoursEnd, v))
}

// CallingHoursEndIn applies the In predicate on the "calling_hours_end" field.
func CallingHoursEndIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldCallingHoursEnd, vs...))
}

// CallingHoursEndNotIn applies the NotIn predicate on the "calling_hours_end" field.
func CallingHoursEndNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldCallingHoursEnd, vs...))
}

// CallingHoursEndGT applies the GT predicate on the "calling_hours_end" field.
func CallingHoursEndGT(v int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldCallingHoursEnd, v))
}

// CallingHoursEndGTE applies the GTE predicate on the "calling_hours_end" field.
func CallingHoursEndGTE(v int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldCallingHoursEnd, v))
}

// CallingHoursEndLT applies the LT predicate on the "calling_hours_end" field.
func CallingHoursEndLT(v int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldCallingHoursEnd, v))
}

// CallingHoursEndLTE applies the LTE predicate on the "calling_hours_end" field.
func CallingHoursEndLTE(v int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldCallingHoursEnd, v))
}

// CallRetryMaxEQ applies the EQ predicate on the "call_retry_max" field.
func CallRetryMaxEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallRetryMax, v))
}

// CallRetryMaxNEQ applies the NEQ predicate on the "call_retry_max" field.
func CallRetryMaxNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldCallRetryMax, v))
}

// CallRetryMaxIn applies the In predicate on the "call_retry_max" field.
func CallRetryMaxIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldCallRetryMax, vs...))
}

// CallRetryMaxNotIn applies the NotIn predicate on the "call_retry_max" field.
func CallRetryMaxNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldCallRetryMax, vs...))
}

// CallRetryMaxGT applies the GT predicate on the "call_retry_max" field.
func CallRetryMaxGT(v int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldCallRetryMax, v))
}

// CallRetryMaxGTE applies the GTE predicate on the "call_retry_max" field.
func CallRetryMaxGTE(v int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldCallRetryMax, v))
}

// CallRetryMaxLT applies the LT predicate on the "call_retry_max" field.
func CallRetryMaxLT(v int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldCallRetryMax, v))
}

// CallRetryMaxLTE applies the LTE predicate on the "call_retry_max" field.
func CallRetryMaxLTE(v int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldCallRetryMax, v))
}

// CallRetryIntervalMinutesEQ applies the EQ predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCallRetryIntervalMinutes, v))
}

// CallRetryIntervalMinutesNEQ applies the NEQ predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldCallRetryIntervalMinutes, v))
}

// CallRetryIntervalMinutesIn applies the In predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldCallRetryIntervalMinutes, vs...))
}

// CallRetryIntervalMinutesNotIn applies the NotIn predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldCallRetryIntervalMinutes, vs...))
}

// CallRetryIntervalMinutesGT applies the GT predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesGT(v int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldCallRetryIntervalMinutes, v))
}

// CallRetryIntervalMinutesGTE applies the GTE predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesGTE(v int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldCallRetryIntervalMinutes, v))
}

// CallRetryIntervalMinutesLT applies the LT predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesLT(v int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldCallRetryIntervalMinutes, v))
}

// CallRetryIntervalMinutesLTE applies the LTE predicate on the "call_retry_interval_minutes" field.
func CallRetryIntervalMinutesLTE(v int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldCallRetryIntervalMinutes, v))
}

// FollowUpIntervalHoursEQ applies the EQ predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldFollowUpIntervalHours, v))
}

// FollowUpIntervalHoursNEQ applies the NEQ predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldFollowUpIntervalHours, v))
}

// FollowUpIntervalHoursIn applies the In predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldFollowUpIntervalHours, vs...))
}

// FollowUpIntervalHoursNotIn applies the NotIn predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldFollowUpIntervalHours, vs...))
}

// FollowUpIntervalHoursGT applies the GT predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursGT(v int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldFollowUpIntervalHours, v))
}

// FollowUpIntervalHoursGTE applies the GTE predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursGTE(v int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldFollowUpIntervalHours, v))
}

// FollowUpIntervalHoursLT applies the LT predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursLT(v int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldFollowUpIntervalHours, v))
}

// FollowUpIntervalHoursLTE applies the LTE predicate on the "follow_up_interval_hours" field.
func FollowUpIntervalHoursLTE(v int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldFollowUpIntervalHours, v))
}

// RejectedCvTimeoutDaysEQ applies the EQ predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldRejectedCvTimeoutDays, v))
}

// RejectedCvTimeoutDaysNEQ applies the NEQ predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldRejectedCvTimeoutDays, v))
}

// RejectedCvTimeoutDaysIn applies the In predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldRejectedCvTimeoutDays, vs...))
}

// RejectedCvTimeoutDaysNotIn applies the NotIn predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldRejectedCvTimeoutDays, vs...))
}

// RejectedCvTimeoutDaysGT applies the GT predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysGT(v int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldRejectedCvTimeoutDays, v))
}

// RejectedCvTimeoutDaysGTE applies the GTE predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysGTE(v int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldRejectedCvTimeoutDays, v))
}

// RejectedCvTimeoutDaysLT applies the LT predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysLT(v int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldRejectedCvTimeoutDays, v))
}

// RejectedCvTimeoutDaysLTE applies the LTE predicate on the "rejected_cv_timeout_days" field.
func RejectedCvTimeoutDaysLTE(v int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldRejectedCvTimeoutDays, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.Application) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Position) predicate.Position {
	return predicate.Position(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Position) predicate.Position {
	return predicate.Position(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Position) predicate.Position {
	return predicate.Position(sql.NotPredicates(p))
}
