// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCandidateID, v))
}

// PositionID applies equality check predicate on the "position_id" field. It's identical to PositionIDEQ.
func PositionID(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPositionID, v))
}

// Qualified applies equality check predicate on the "qualified" field. It's identical to QualifiedEQ.
func Qualified(v bool) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldQualified, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldScore, v))
}

// ScoreNotes applies equality check predicate on the "score_notes" field. It's identical to ScoreNotesEQ.
func ScoreNotes(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldScoreNotes, v))
}

// CvReceivedAt applies equality check predicate on the "cv_received_at" field. It's identical to CvReceivedAtEQ.
func CvReceivedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCvReceivedAt, v))
}

// CallbackScheduledAt applies equality check predicate on the "callback_scheduled_at" field. It's identical to CallbackScheduledAtEQ.
func CallbackScheduledAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCallbackScheduledAt, v))
}

// NeedsHumanReason applies equality check predicate on the "needs_human_reason" field. It's identical to NeedsHumanReasonEQ.
func NeedsHumanReason(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNeedsHumanReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCandidateID, vs...))
}

// PositionIDEQ applies the EQ predicate on the "position_id" field.
func PositionIDEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPositionID, v))
}

// PositionIDNEQ applies the NEQ predicate on the "position_id" field.
func PositionIDNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldPositionID, v))
}

// PositionIDIn applies the In predicate on the "position_id" field.
func PositionIDIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldPositionID, vs...))
}

// PositionIDNotIn applies the NotIn predicate on the "position_id" field.
func PositionIDNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldPositionID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// QualifiedEQ applies the EQ predicate on the "qualified" field.
func QualifiedEQ(v bool) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldQualified, v))
}

// QualifiedNEQ applies the NEQ predicate on the "qualified" field.
func QualifiedNEQ(v bool) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldQualified, v))
}

// QualifiedIsNil applies the IsNil predicate on the "qualified" field.
func QualifiedIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldQualified))
}

// QualifiedNotNil applies the NotNil predicate on the "qualified" field.
func QualifiedNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldQualified))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldScore))
}

// ScoreNotesEQ applies the EQ predicate on the "score_notes" field.
func ScoreNotesEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldScoreNotes, v))
}

// ScoreNotesNEQ applies the NEQ predicate on the "score_notes" field.
func ScoreNotesNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldScoreNotes, v))
}

// ScoreNotesIn applies the In predicate on the "score_notes" field.
func ScoreNotesIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldScoreNotes, vs...))
}

// ScoreNotesNotIn applies the NotIn predicate on the "score_notes" field.
func ScoreNotesNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldScoreNotes, vs...))
}

// ScoreNotesGT applies the GT predicate on the "score_notes" field.
func ScoreNotesGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldScoreNotes, v))
}

// ScoreNotesGTE applies the GTE predicate on the "score_notes" field.
func ScoreNotesGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldScoreNotes, v))
}

// ScoreNotesLT applies the LT predicate on the "score_notes" field.
func ScoreNotesLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldScoreNotes, v))
}

// ScoreNotesLTE applies the LTE predicate on the "score_notes" field.
func ScoreNotesLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldScoreNotes, v))
}

// ScoreNotesContains applies the Contains predicate on the "score_notes" field.
func ScoreNotesContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldScoreNotes, v))
}

// ScoreNotesHasPrefix applies the HasPrefix predicate on the "score_notes" field.
func ScoreNotesHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldScoreNotes, v))
}

// ScoreNotesHasSuffix applies the HasSuffix predicate on the "score_notes" field.
func ScoreNotesHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldScoreNotes, v))
}

// ScoreNotesIsNil applies the IsNil predicate on the "score_notes" field.
func ScoreNotesIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldScoreNotes))
}

// ScoreNotesNotNil applies the NotNil predicate on the "score_notes" field.
func ScoreNotesNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldScoreNotes))
}

// ScoreNotesEqualFold applies the EqualFold predicate on the "score_notes" field.
func ScoreNotesEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldScoreNotes, v))
}

// ScoreNotesContainsFold applies the ContainsFold predicate on the "score_notes" field.
func ScoreNotesContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldScoreNotes, v))
}

// CvReceivedAtEQ applies the EQ predicate on the "cv_received_at" field.
func CvReceivedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCvReceivedAt, v))
}

// CvReceivedAtNEQ applies the NEQ predicate on the "cv_received_at" field.
func CvReceivedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCvReceivedAt, v))
}

// CvReceivedAtIn applies the In predicate on the "cv_received_at" field.
func CvReceivedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCvReceivedAt, vs...))
}

// CvReceivedAtNotIn applies the NotIn predicate on the "cv_received_at" field.
func CvReceivedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCvReceivedAt, vs...))
}

// CvReceivedAtGT applies the GT predicate on the "cv_received_at" field.
func CvReceivedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCvReceivedAt, v))
}

// CvReceivedAtGTE applies the GTE predicate on the "cv_received_at" field.
func CvReceivedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCvReceivedAt, v))
}

// CvReceivedAtLT applies the LT predicate on the "cv_received_at" field.
func CvReceivedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCvReceivedAt, v))
}

// CvReceivedAtLTE applies the LTE predicate on the "cv_received_at" field.
func CvReceivedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCvReceivedAt, v))
}

// CvReceivedAtIsNil applies the IsNil predicate on the "cv_received_at" field.
func CvReceivedAtIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldCvReceivedAt))
}

// CvReceivedAtNotNil applies the NotNil predicate on the "cv_received_at" field.
func CvReceivedAtNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldCvReceivedAt))
}

// CallbackScheduledAtEQ applies the EQ predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCallbackScheduledAt, v))
}

// CallbackScheduledAtNEQ applies the NEQ predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCallbackScheduledAt, v))
}

// CallbackScheduledAtIn applies the In predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCallbackScheduledAt, vs...))
}

// CallbackScheduledAtNotIn applies the NotIn predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCallbackScheduledAt, vs...))
}

// CallbackScheduledAtGT applies the GT predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCallbackScheduledAt, v))
}

// CallbackScheduledAtGTE applies the GTE predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCallbackScheduledAt, v))
}

// CallbackScheduledAtLT applies the LT predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCallbackScheduledAt, v))
}

// CallbackScheduledAtLTE applies the LTE predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCallbackScheduledAt, v))
}

// CallbackScheduledAtIsNil applies the IsNil predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldCallbackScheduledAt))
}

// CallbackScheduledAtNotNil applies the NotNil predicate on the "callback_scheduled_at" field.
func CallbackScheduledAtNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldCallbackScheduledAt))
}

// NeedsHumanReasonEQ applies the EQ predicate on the "needs_human_reason" field.
func NeedsHumanReasonEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonNEQ applies the NEQ predicate on the "needs_human_reason" field.
func NeedsHumanReasonNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonIn applies the In predicate on the "needs_human_reason" field.
func NeedsHumanReasonIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldNeedsHumanReason, vs...))
}

// NeedsHumanReasonNotIn applies the NotIn predicate on the "needs_human_reason" field.
func NeedsHumanReasonNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldNeedsHumanReason, vs...))
}

// NeedsHumanReasonGT applies the GT predicate on the "needs_human_reason" field.
func NeedsHumanReasonGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonGTE applies the GTE predicate on the "needs_human_reason" field.
func NeedsHumanReasonGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonLT applies the LT predicate on the "needs_human_reason" field.
func NeedsHumanReasonLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonLTE applies the LTE predicate on the "needs_human_reason" field.
func NeedsHumanReasonLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonContains applies the Contains predicate on the "needs_human_reason" field.
func NeedsHumanReasonContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonHasPrefix applies the HasPrefix predicate on the "needs_human_reason" field.
func NeedsHumanReasonHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonHasSuffix applies the HasSuffix predicate on the "needs_human_reason" field.
func NeedsHumanReasonHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonIsNil applies the IsNil predicate on the "needs_human_reason" field.
func NeedsHumanReasonIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldNeedsHumanReason))
}

// NeedsHumanReasonNotNil applies the NotNil predicate on the "needs_human_reason" field.
func NeedsHumanReasonNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldNeedsHumanReason))
}

// NeedsHumanReasonEqualFold applies the EqualFold predicate on the "needs_human_reason" field.
func NeedsHumanReasonEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldNeedsHumanReason, v))
}

// NeedsHumanReasonContainsFold applies the ContainsFold predicate on the "needs_human_reason" field.
func NeedsHumanReasonContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldNeedsHumanReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCandidate applies the HasEdge predicate on the "candidate" edge.
func HasCandidate() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCandidateWith applies the HasEdge predicate on the "candidate" edge with a given conditions (other predicates).
func HasCandidateWith(preds ...predicate.Candidate) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newCandidateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPosition applies the HasEdge predicate on the "position" edge.
func HasPosition() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PositionTable, PositionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPositionWith applies the HasEdge predicate on the "position" edge with a given conditions (other predicates).
func HasPositionWith(preds ...predicate.Position) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newPositionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusChanges applies the HasEdge predicate on the "status_changes" edge.
func HasStatusChanges() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusChangesTable, StatusChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusChangesWith applies the HasEdge predicate on the "status_changes" edge with a given conditions (other predicates).
func HasStatusChangesWith(preds ...predicate.StatusChange) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newStatusChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCalls applies the HasEdge predicate on the "calls" edge.
func HasCalls() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CallsTable, CallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCallsWith applies the HasEdge predicate on the "calls" edge with a given conditions (other predicates).
func HasCallsWith(preds ...predicate.Call) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCvUploads applies the HasEdge predicate on the "cv_uploads" edge.
func HasCvUploads() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CvUploadsTable, CvUploadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCvUploadsWith applies the HasEdge predicate on the "cv_uploads" edge with a given conditions (other predicates).
func HasCvUploadsWith(preds ...predicate.CVUpload) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newCvUploadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReplies applies the HasEdge predicate on the "replies" edge.
func HasReplies() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepliesWith applies the HasEdge predicate on the "replies" edge with a given conditions (other predicates).
func HasRepliesWith(preds ...predicate.CandidateReply) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newRepliesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
