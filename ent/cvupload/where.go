// Code generated by ent, DO NOT EDIT.

package cvupload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLTE(FieldID, id))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldCandidateID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldApplicationID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldFilePath, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldOriginalFilename, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldCreatedAt, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldCandidateID, vs...))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...int) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldApplicationID, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldContainsFold(FieldFilePath, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldSource, vs...))
}

// MatchMethodEQ applies the EQ predicate on the "match_method" field.
func MatchMethodEQ(v MatchMethod) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldMatchMethod, v))
}

// MatchMethodNEQ applies the NEQ predicate on the "match_method" field.
func MatchMethodNEQ(v MatchMethod) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldMatchMethod, v))
}

// MatchMethodIn applies the In predicate on the "match_method" field.
func MatchMethodIn(vs ...MatchMethod) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldMatchMethod, vs...))
}

// MatchMethodNotIn applies the NotIn predicate on the "match_method" field.
func MatchMethodNotIn(vs ...MatchMethod) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldMatchMethod, vs...))
}

// MatchConfidenceEQ applies the EQ predicate on the "match_confidence" field.
func MatchConfidenceEQ(v MatchConfidence) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldMatchConfidence, v))
}

// MatchConfidenceNEQ applies the NEQ predicate on the "match_confidence" field.
func MatchConfidenceNEQ(v MatchConfidence) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldMatchConfidence, v))
}

// MatchConfidenceIn applies the In predicate on the "match_confidence" field.
func MatchConfidenceIn(vs ...MatchConfidence) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldMatchConfidence, vs...))
}

// MatchConfidenceNotIn applies the NotIn predicate on the "match_confidence" field.
func MatchConfidenceNotIn(vs ...MatchConfidence) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldMatchConfidence, vs...))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CVUpload {
	return predicate.CVUpload(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCandidate applies the HasEdge predicate on the "candidate" edge.
func HasCandidate() predicate.CVUpload {
	return predicate.CVUpload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCandidateWith applies the HasEdge predicate on the "candidate" edge with a given conditions (other predicates).
func HasCandidateWith(preds ...predicate.Candidate) predicate.CVUpload {
	return predicate.CVUpload(func(s *sql.Selector) {
		step := newCandidateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.CVUpload {
	return predicate.CVUpload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.CVUpload {
	return predicate.CVUpload(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CVUpload) predicate.CVUpload {
	return predicate.CVUpload(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CVUpload) predicate.CVUpload {
	return predicate.CVUpload(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CVUpload) predicate.CVUpload {
	return predicate.CVUpload(sql.NotPredicates(p))
}
