// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldApplicationID, v))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallID, v))
}

// Qualified applies equality check predicate on the "qualified" field. It's identical to QualifiedEQ.
func Qualified(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQualified, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldScore, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldReasoning, v))
}

// DisqualifyingFactor applies equality check predicate on the "disqualifying_factor" field. It's identical to DisqualifyingFactorEQ.
func DisqualifyingFactor(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDisqualifyingFactor, v))
}

// CallbackRequested applies equality check predicate on the "callback_requested" field. It's identical to CallbackRequestedEQ.
func CallbackRequested(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallbackRequested, v))
}

// CallbackNotes applies equality check predicate on the "callback_notes" field. It's identical to CallbackNotesEQ.
func CallbackNotes(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallbackNotes, v))
}

// CallbackAt applies equality check predicate on the "callback_at" field. It's identical to CallbackAtEQ.
func CallbackAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallbackAt, v))
}

// NeedsHuman applies equality check predicate on the "needs_human" field. It's identical to NeedsHumanEQ.
func NeedsHuman(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldNeedsHuman, v))
}

// NeedsHumanNotes applies equality check predicate on the "needs_human_notes" field. It's identical to NeedsHumanNotesEQ.
func NeedsHumanNotes(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldNeedsHumanNotes, v))
}

// RawResponse applies equality check predicate on the "raw_response" field. It's identical to RawResponseEQ.
func RawResponse(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRawResponse, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldApplicationID, vs...))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCallID, vs...))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldOutcome, vs...))
}

// QualifiedEQ applies the EQ predicate on the "qualified" field.
func QualifiedEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQualified, v))
}

// QualifiedNEQ applies the NEQ predicate on the "qualified" field.
func QualifiedNEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldQualified, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldScore, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldReasoning, v))
}

// CriteriaIsNil applies the IsNil predicate on the "criteria" field.
func CriteriaIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldCriteria))
}

// CriteriaNotNil applies the NotNil predicate on the "criteria" field.
func CriteriaNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldCriteria))
}

// DisqualifyingFactorEQ applies the EQ predicate on the "disqualifying_factor" field.
func DisqualifyingFactorEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorNEQ applies the NEQ predicate on the "disqualifying_factor" field.
func DisqualifyingFactorNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorIn applies the In predicate on the "disqualifying_factor" field.
func DisqualifyingFactorIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldDisqualifyingFactor, vs...))
}

// DisqualifyingFactorNotIn applies the NotIn predicate on the "disqualifying_factor" field.
func DisqualifyingFactorNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldDisqualifyingFactor, vs...))
}

// DisqualifyingFactorGT applies the GT predicate on the "disqualifying_factor" field.
func DisqualifyingFactorGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorGTE applies the GTE predicate on the "disqualifying_factor" field.
func DisqualifyingFactorGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorLT applies the LT predicate on the "disqualifying_factor" field.
func DisqualifyingFactorLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorLTE applies the LTE predicate on the "disqualifying_factor" field.
func DisqualifyingFactorLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorContains applies the Contains predicate on the "disqualifying_factor" field.
func DisqualifyingFactorContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorHasPrefix applies the HasPrefix predicate on the "disqualifying_factor" field.
func DisqualifyingFactorHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorHasSuffix applies the HasSuffix predicate on the "disqualifying_factor" field.
func DisqualifyingFactorHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorIsNil applies the IsNil predicate on the "disqualifying_factor" field.
func DisqualifyingFactorIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldDisqualifyingFactor))
}

// DisqualifyingFactorNotNil applies the NotNil predicate on the "disqualifying_factor" field.
func DisqualifyingFactorNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldDisqualifyingFactor))
}

// DisqualifyingFactorEqualFold applies the EqualFold predicate on the "disqualifying_factor" field.
func DisqualifyingFactorEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldDisqualifyingFactor, v))
}

// DisqualifyingFactorContainsFold applies the ContainsFold predicate on the "disqualifying_factor" field.
func DisqualifyingFactorContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldDisqualifyingFactor, v))
}

// CallbackRequestedEQ applies the EQ predicate on the "callback_requested" field.
func CallbackRequestedEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallbackRequested, v))
}

// CallbackRequestedNEQ applies the NEQ predicate on the "callback_requested" field.
func CallbackRequestedNEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCallbackRequested, v))
}

// CallbackNotesEQ applies the EQ predicate on the "callback_notes" field.
func CallbackNotesEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallbackNotes, v))
}

// CallbackNotesNEQ applies the NEQ predicate on the "callback_notes" field.
func CallbackNotesNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCallbackNotes, v))
}

// CallbackNotesIn applies the In predicate on the "callback_notes" field.
func CallbackNotesIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCallbackNotes, vs...))
}

// CallbackNotesNotIn applies the NotIn predicate on the "callback_notes" field.
func CallbackNotesNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCallbackNotes, vs...))
}

// CallbackNotesGT applies the GT predicate on the "callback_notes" field.
func CallbackNotesGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCallbackNotes, v))
}

// CallbackNotesGTE applies the GTE predicate on the "callback_notes" field.
func CallbackNotesGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCallbackNotes, v))
}

// CallbackNotesLT applies the LT predicate on the "callback_notes" field.
func CallbackNotesLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCallbackNotes, v))
}

// CallbackNotesLTE applies the LTE predicate on the "callback_notes" field.
func CallbackNotesLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCallbackNotes, v))
}

// CallbackNotesContains applies the Contains predicate on the "callback_notes" field.
func CallbackNotesContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldCallbackNotes, v))
}

// CallbackNotesHasPrefix applies the HasPrefix predicate on the "callback_notes" field.
func CallbackNotesHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldCallbackNotes, v))
}

// CallbackNotesHasSuffix applies the HasSuffix predicate on the "callback_notes" field.
func CallbackNotesHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldCallbackNotes, v))
}

// CallbackNotesIsNil applies the IsNil predicate on the "callback_notes" field.
func CallbackNotesIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldCallbackNotes))
}

// CallbackNotesNotNil applies the NotNil predicate on the "callback_notes" field.
func CallbackNotesNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldCallbackNotes))
}

// CallbackNotesEqualFold applies the EqualFold predicate on the "callback_notes" field.
func CallbackNotesEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldCallbackNotes, v))
}

// CallbackNotesContainsFold applies the ContainsFold predicate on the "callback_notes" field.
func CallbackNotesContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldCallbackNotes, v))
}

// CallbackAtEQ applies the EQ predicate on the "callback_at" field.
func CallbackAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCallbackAt, v))
}

// CallbackAtNEQ applies the NEQ predicate on the "callback_at" field.
func CallbackAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCallbackAt, v))
}

// CallbackAtIn applies the In predicate on the "callback_at" field.
func CallbackAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCallbackAt, vs...))
}

// CallbackAtNotIn applies the NotIn predicate on the "callback_at" field.
func CallbackAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCallbackAt, vs...))
}

// CallbackAtGT applies the GT predicate on the "callback_at" field.
func CallbackAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCallbackAt, v))
}

// CallbackAtGTE applies the GTE predicate on the "callback_at" field.
func CallbackAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCallbackAt, v))
}

// CallbackAtLT applies the LT predicate on the "callback_at" field.
func CallbackAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCallbackAt, v))
}

// CallbackAtLTE applies the LTE predicate on the "callback_at" field.
func CallbackAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCallbackAt, v))
}

// CallbackAtIsNil applies the IsNil predicate on the "callback_at" field.
func CallbackAtIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldCallbackAt))
}

// CallbackAtNotNil applies the NotNil predicate on the "callback_at" field.
func CallbackAtNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldCallbackAt))
}

// NeedsHumanEQ applies the EQ predicate on the "needs_human" field.
func NeedsHumanEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldNeedsHuman, v))
}

// NeedsHumanNEQ applies the NEQ predicate on the "needs_human" field.
func NeedsHumanNEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldNeedsHuman, v))
}

// NeedsHumanNotesEQ applies the EQ predicate on the "needs_human_notes" field.
func NeedsHumanNotesEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesNEQ applies the NEQ predicate on the "needs_human_notes" field.
func NeedsHumanNotesNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesIn applies the In predicate on the "needs_human_notes" field.
func NeedsHumanNotesIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldNeedsHumanNotes, vs...))
}

// NeedsHumanNotesNotIn applies the NotIn predicate on the "needs_human_notes" field.
func NeedsHumanNotesNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldNeedsHumanNotes, vs...))
}

// NeedsHumanNotesGT applies the GT predicate on the "needs_human_notes" field.
func NeedsHumanNotesGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesGTE applies the GTE predicate on the "needs_human_notes" field.
func NeedsHumanNotesGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesLT applies the LT predicate on the "needs_human_notes" field.
func NeedsHumanNotesLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesLTE applies the LTE predicate on the "needs_human_notes" field.
func NeedsHumanNotesLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesContains applies the Contains predicate on the "needs_human_notes" field.
func NeedsHumanNotesContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesHasPrefix applies the HasPrefix predicate on the "needs_human_notes" field.
func NeedsHumanNotesHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesHasSuffix applies the HasSuffix predicate on the "needs_human_notes" field.
func NeedsHumanNotesHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesIsNil applies the IsNil predicate on the "needs_human_notes" field.
func NeedsHumanNotesIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldNeedsHumanNotes))
}

// NeedsHumanNotesNotNil applies the NotNil predicate on the "needs_human_notes" field.
func NeedsHumanNotesNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldNeedsHumanNotes))
}

// NeedsHumanNotesEqualFold applies the EqualFold predicate on the "needs_human_notes" field.
func NeedsHumanNotesEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldNeedsHumanNotes, v))
}

// NeedsHumanNotesContainsFold applies the ContainsFold predicate on the "needs_human_notes" field.
func NeedsHumanNotesContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldNeedsHumanNotes, v))
}

// RawResponseEQ applies the EQ predicate on the "raw_response" field.
func RawResponseEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRawResponse, v))
}

// RawResponseNEQ applies the NEQ predicate on the "raw_response" field.
func RawResponseNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldRawResponse, v))
}

// RawResponseIn applies the In predicate on the "raw_response" field.
func RawResponseIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldRawResponse, vs...))
}

// RawResponseNotIn applies the NotIn predicate on the "raw_response" field.
func RawResponseNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldRawResponse, vs...))
}

// RawResponseGT applies the GT predicate on the "raw_response" field.
func RawResponseGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldRawResponse, v))
}

// RawResponseGTE applies the GTE predicate on the "raw_response" field.
func RawResponseGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldRawResponse, v))
}

// RawResponseLT applies the LT predicate on the "raw_response" field.
func RawResponseLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldRawResponse, v))
}

// RawResponseLTE applies the LTE predicate on the "raw_response" field.
func RawResponseLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldRawResponse, v))
}

// RawResponseContains applies the Contains predicate on the "raw_response" field.
func RawResponseContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldRawResponse, v))
}

// RawResponseHasPrefix applies the HasPrefix predicate on the "raw_response" field.
func RawResponseHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldRawResponse, v))
}

// RawResponseHasSuffix applies the HasSuffix predicate on the "raw_response" field.
func RawResponseHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldRawResponse, v))
}

// RawResponseIsNil applies the IsNil predicate on the "raw_response" field.
func RawResponseIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldRawResponse))
}

// RawResponseNotNil applies the NotNil predicate on the "raw_response" field.
func RawResponseNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldRawResponse))
}

// RawResponseEqualFold applies the EqualFold predicate on the "raw_response" field.
func RawResponseEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldRawResponse, v))
}

// RawResponseContainsFold applies the ContainsFold predicate on the "raw_response" field.
func RawResponseContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldRawResponse, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCall applies the HasEdge predicate on the "call" edge.
func HasCall() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CallTable, CallColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCallWith applies the HasEdge predicate on the "call" edge with a given conditions (other predicates).
func HasCallWith(preds ...predicate.Call) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newCallStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.NotPredicates(p))
}
