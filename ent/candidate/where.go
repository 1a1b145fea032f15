// Code generated by ent, DO NOT EDIT.

package candidate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldID, id))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLastName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldPhone, v))
}

// WhatsappNumber applies equality check predicate on the "whatsapp_number" field. It's identical to WhatsappNumberEQ.
func WhatsappNumber(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldWhatsappNumber, v))
}

// LeadSourceID applies equality check predicate on the "lead_source_id" field. It's identical to LeadSourceIDEQ.
func LeadSourceID(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLeadSourceID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldLastName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldPhone, v))
}

// WhatsappNumberEQ applies the EQ predicate on the "whatsapp_number" field.
func WhatsappNumberEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldWhatsappNumber, v))
}

// WhatsappNumberNEQ applies the NEQ predicate on the "whatsapp_number" field.
func WhatsappNumberNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldWhatsappNumber, v))
}

// WhatsappNumberIn applies the In predicate on the "whatsapp_number" field.
func WhatsappNumberIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldWhatsappNumber, vs...))
}

// WhatsappNumberNotIn applies the NotIn predicate on the "whatsapp_number" field.
func WhatsappNumberNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldWhatsappNumber, vs...))
}

// WhatsappNumberGT applies the GT predicate on the "whatsapp_number" field.
func WhatsappNumberGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldWhatsappNumber, v))
}

// WhatsappNumberGTE applies the GTE predicate on the "whatsapp_number" field.
func WhatsappNumberGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldWhatsappNumber, v))
}

// WhatsappNumberLT applies the LT predicate on the "whatsapp_number" field.
func WhatsappNumberLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldWhatsappNumber, v))
}

// WhatsappNumberLTE applies the LTE predicate on the "whatsapp_number" field.
func WhatsappNumberLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldWhatsappNumber, v))
}

// WhatsappNumberContains applies the Contains predicate on the "whatsapp_number" field.
func WhatsappNumberContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldWhatsappNumber, v))
}

// WhatsappNumberHasPrefix applies the HasPrefix predicate on the "whatsapp_number" field.
func WhatsappNumberHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldWhatsappNumber, v))
}

// WhatsappNumberHasSuffix applies the HasSuffix predicate on the "whatsapp_number" field.
func WhatsappNumberHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldWhatsappNumber, v))
}

// WhatsappNumberIsNil applies the IsNil predicate on the "whatsapp_number" field.
func WhatsappNumberIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldWhatsappNumber))
}

// WhatsappNumberNotNil applies the NotNil predicate on the "whatsapp_number" field.
func WhatsappNumberNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldWhatsappNumber))
}

// WhatsappNumberEqualFold applies the EqualFold predicate on the "whatsapp_number" field.
func WhatsappNumberEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldWhatsappNumber, v))
}

// WhatsappNumberContainsFold applies the ContainsFold predicate on the "whatsapp_number" field.
func WhatsappNumberContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldWhatsappNumber, v))
}

// LeadSourceIDEQ applies the EQ predicate on the "lead_source_id" field.
func LeadSourceIDEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLeadSourceID, v))
}

// LeadSourceIDNEQ applies the NEQ predicate on the "lead_source_id" field.
func LeadSourceIDNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldLeadSourceID, v))
}

// LeadSourceIDIn applies the In predicate on the "lead_source_id" field.
func LeadSourceIDIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldLeadSourceID, vs...))
}

// LeadSourceIDNotIn applies the NotIn predicate on the "lead_source_id" field.
func LeadSourceIDNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldLeadSourceID, vs...))
}

// LeadSourceIDGT applies the GT predicate on the "lead_source_id" field.
func LeadSourceIDGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldLeadSourceID, v))
}

// LeadSourceIDGTE applies the GTE predicate on the "lead_source_id" field.
func LeadSourceIDGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldLeadSourceID, v))
}

// LeadSourceIDLT applies the LT predicate on the "lead_source_id" field.
func LeadSourceIDLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldLeadSourceID, v))
}

// LeadSourceIDLTE applies the LTE predicate on the "lead_source_id" field.
func LeadSourceIDLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldLeadSourceID, v))
}

// LeadSourceIDContains applies the Contains predicate on the "lead_source_id" field.
func LeadSourceIDContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldLeadSourceID, v))
}

// LeadSourceIDHasPrefix applies the HasPrefix predicate on the "lead_source_id" field.
func LeadSourceIDHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldLeadSourceID, v))
}

// LeadSourceIDHasSuffix applies the HasSuffix predicate on the "lead_source_id" field.
func LeadSourceIDHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldLeadSourceID, v))
}

// LeadSourceIDIsNil applies the IsNil predicate on the "lead_source_id" field.
func LeadSourceIDIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldLeadSourceID))
}

// LeadSourceIDNotNil applies the NotNil predicate on the "lead_source_id" field.
func LeadSourceIDNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldLeadSourceID))
}

// LeadSourceIDEqualFold applies the EqualFold predicate on the "lead_source_id" field.
func LeadSourceIDEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldLeadSourceID, v))
}

// LeadSourceIDContainsFold applies the ContainsFold predicate on the "lead_source_id" field.
func LeadSourceIDContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldLeadSourceID, v))
}

// FormAnswersIsNil applies the IsNil predicate on the "form_answers" field.
func FormAnswersIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldFormAnswers))
}

// FormAnswersNotNil applies the NotNil predicate on the "form_answers" field.
func FormAnswersNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldFormAnswers))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.Application) predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReplies applies the HasEdge predicate on the "replies" edge.
func HasReplies() predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepliesWith applies the HasEdge predicate on the "replies" edge with a given conditions (other predicates).
func HasRepliesWith(preds ...predicate.CandidateReply) predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := newRepliesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCvUploads applies the HasEdge predicate on the "cv_uploads" edge.
func HasCvUploads() predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CvUploadsTable, CvUploadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCvUploadsWith applies the HasEdge predicate on the "cv_uploads" edge with a given conditions (other predicates).
func HasCvUploadsWith(preds ...predicate.CVUpload) predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := newCvUploadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.NotPredicates(p))
}
