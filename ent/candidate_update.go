// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/predicate"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CandidateUpdate) SetFirstName(v string) *CandidateUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableFirstName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CandidateUpdate) SetLastName(v string) *CandidateUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableLastName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CandidateUpdate) ClearLastName() *CandidateUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdate) SetEmail(v string) *CandidateUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEmail(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CandidateUpdate) ClearEmail() *CandidateUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdate) SetPhone(v string) *CandidateUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePhone(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdate) ClearPhone() *CandidateUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (_u *CandidateUpdate) SetWhatsappNumber(v string) *CandidateUpdate {
	_u.mutation.SetWhatsappNumber(v)
	return _u
}

// SetNillableWhatsappNumber sets the "whatsapp_number" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableWhatsappNumber(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetWhatsappNumber(*v)
	}
	return _u
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (_u *CandidateUpdate) ClearWhatsappNumber() *CandidateUpdate {
	_u.mutation.ClearWhatsappNumber()
	return _u
}

// SetLeadSourceID sets the "lead_source_id" field.
func (_u *CandidateUpdate) SetLeadSourceID(v string) *CandidateUpdate {
	_u.mutation.SetLeadSourceID(v)
	return _u
}

// SetNillableLeadSourceID sets the "lead_source_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableLeadSourceID(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetLeadSourceID(*v)
	}
	return _u
}

// ClearLeadSourceID clears the value of the "lead_source_id" field.
func (_u *CandidateUpdate) ClearLeadSourceID() *CandidateUpdate {
	_u.mutation.ClearLeadSourceID()
	return _u
}

// SetFormAnswers sets the "form_answers" field.
func (_u *CandidateUpdate) SetFormAnswers(v map[string]interface{}) *CandidateUpdate {
	_u.mutation.SetFormAnswers(v)
	return _u
}

// ClearFormAnswers clears the value of the "form_answers" field.
func (_u *CandidateUpdate) ClearFormAnswers() *CandidateUpdate {
	_u.mutation.ClearFormAnswers()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CandidateUpdate) SetNotes(v string) *CandidateUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableNotes(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CandidateUpdate) ClearNotes() *CandidateUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdate) SetUpdatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *CandidateUpdate) AddApplicationIDs(ids ...int) *CandidateUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *CandidateUpdate) AddApplications(v ...*Application) *CandidateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by IDs.
func (_u *CandidateUpdate) AddReplyIDs(ids ...int) *CandidateUpdate {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the CandidateReply entity.
func (_u *CandidateUpdate) AddReplies(v ...*CandidateReply) *CandidateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by IDs.
func (_u *CandidateUpdate) AddCvUploadIDs(ids ...int) *CandidateUpdate {
	_u.mutation.AddCvUploadIDs(ids...)
	return _u
}

// AddCvUploads adds the "cv_uploads" edges to the CVUpload entity.
func (_u *CandidateUpdate) AddCvUploads(v ...*CVUpload) *CandidateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCvUploadIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *CandidateUpdate) ClearApplications() *CandidateUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *CandidateUpdate) RemoveApplicationIDs(ids ...int) *CandidateUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *CandidateUpdate) RemoveApplications(v ...*Application) *CandidateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// ClearReplies clears all "replies" edges to the CandidateReply entity.
func (_u *CandidateUpdate) ClearReplies() *CandidateUpdate {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to CandidateReply entities by IDs.
func (_u *CandidateUpdate) RemoveReplyIDs(ids ...int) *CandidateUpdate {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to CandidateReply entities.
func (_u *CandidateUpdate) RemoveReplies(v ...*CandidateReply) *CandidateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// ClearCvUploads clears all "cv_uploads" edges to the CVUpload entity.
func (_u *CandidateUpdate) ClearCvUploads() *CandidateUpdate {
	_u.mutation.ClearCvUploads()
	return _u
}

// RemoveCvUploadIDs removes the "cv_uploads" edge to CVUpload entities by IDs.
func (_u *CandidateUpdate) RemoveCvUploadIDs(ids ...int) *CandidateUpdate {
	_u.mutation.RemoveCvUploadIDs(ids...)
	return _u
}

// RemoveCvUploads removes "cv_uploads" edges to CVUpload entities.
func (_u *CandidateUpdate) RemoveCvUploads(v ...*CVUpload) *CandidateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCvUploadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(candidate.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(candidate.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(candidate.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(candidate.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.WhatsappNumber(); ok {
		_spec.SetField(candidate.FieldWhatsappNumber, field.TypeString, value)
	}
	if _u.mutation.WhatsappNumberCleared() {
		_spec.ClearField(candidate.FieldWhatsappNumber, field.TypeString)
	}
	if value, ok := _u.mutation.LeadSourceID(); ok {
		_spec.SetField(candidate.FieldLeadSourceID, field.TypeString, value)
	}
	if _u.mutation.LeadSourceIDCleared() {
		_spec.ClearField(candidate.FieldLeadSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.FormAnswers(); ok {
		_spec.SetField(candidate.FieldFormAnswers, field.TypeJSON, value)
	}
	if _u.mutation.FormAnswersCleared() {
		_spec.ClearField(candidate.FieldFormAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(candidate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(candidate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ApplicationsTable,
			Columns: []string{candidate.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ApplicationsTable,
			Columns: []string{candidate.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ApplicationsTable,
			Columns: []string{candidate.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.RepliesTable,
			Columns: []string{candidate.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.RepliesTable,
			Columns: []string{candidate.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.RepliesTable,
			Columns: []string{candidate.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CvUploadsTable,
			Columns: []string{candidate.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCvUploadsIDs(); len(nodes) > 0 && !_u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CvUploadsTable,
			Columns: []string{candidate.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CvUploadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CvUploadsTable,
			Columns: []string{candidate.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetFirstName sets the "first_name" field.
func (_u *CandidateUpdateOne) SetFirstName(v string) *CandidateUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableFirstName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CandidateUpdateOne) SetLastName(v string) *CandidateUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableLastName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CandidateUpdateOne) ClearLastName() *CandidateUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdateOne) SetEmail(v string) *CandidateUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEmail(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CandidateUpdateOne) ClearEmail() *CandidateUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdateOne) SetPhone(v string) *CandidateUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePhone(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdateOne) ClearPhone() *CandidateUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (_u *CandidateUpdateOne) SetWhatsappNumber(v string) *CandidateUpdateOne {
	_u.mutation.SetWhatsappNumber(v)
	return _u
}

// SetNillableWhatsappNumber sets the "whatsapp_number" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableWhatsappNumber(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetWhatsappNumber(*v)
	}
	return _u
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (_u *CandidateUpdateOne) ClearWhatsappNumber() *CandidateUpdateOne {
	_u.mutation.ClearWhatsappNumber()
	return _u
}

// SetLeadSourceID sets the "lead_source_id" field.
func (_u *CandidateUpdateOne) SetLeadSourceID(v string) *CandidateUpdateOne {
	_u.mutation.SetLeadSourceID(v)
	return _u
}

// SetNillableLeadSourceID sets the "lead_source_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableLeadSourceID(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetLeadSourceID(*v)
	}
	return _u
}

// ClearLeadSourceID clears the value of the "lead_source_id" field.
func (_u *CandidateUpdateOne) ClearLeadSourceID() *CandidateUpdateOne {
	_u.mutation.ClearLeadSourceID()
	return _u
}

// SetFormAnswers sets the "form_answers" field.
func (_u *CandidateUpdateOne) SetFormAnswers(v map[string]interface{}) *CandidateUpdateOne {
	_u.mutation.SetFormAnswers(v)
	return _u
}

// ClearFormAnswers clears the value of the "form_answers" field.
func (_u *CandidateUpdateOne) ClearFormAnswers() *CandidateUpdateOne {
	_u.mutation.ClearFormAnswers()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CandidateUpdateOne) SetNotes(v string) *CandidateUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableNotes(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CandidateUpdateOne) ClearNotes() *CandidateUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdateOne) SetUpdatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *CandidateUpdateOne) AddApplicationIDs(ids ...int) *CandidateUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *CandidateUpdateOne) AddApplications(v ...*Application) *CandidateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by IDs.
func (_u *CandidateUpdateOne) AddReplyIDs(ids ...int) *CandidateUpdateOne {
	_u.mutation.AddReplyIDs(ids...)
	return _u
}

// AddReplies adds the "replies" edges to the CandidateReply entity.
func (_u *CandidateUpdateOne) AddReplies(v ...*CandidateReply) *CandidateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReplyIDs(ids...)
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by IDs.
func (_u *CandidateUpdateOne) AddCvUploadIDs(ids ...int) *CandidateUpdateOne {
	_u.mutation.AddCvUploadIDs(ids...)
	return _u
}

// AddCvUploads adds the "cv_uploads" edges to the CVUpload entity.
func (_u *CandidateUpdateOne) AddCvUploads(v ...*CVUpload) *CandidateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCvUploadIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *CandidateUpdateOne) ClearApplications() *CandidateUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *CandidateUpdateOne) RemoveApplicationIDs(ids ...int) *CandidateUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *CandidateUpdateOne) RemoveApplications(v ...*Application) *CandidateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// ClearReplies clears all "replies" edges to the CandidateReply entity.
func (_u *CandidateUpdateOne) ClearReplies() *CandidateUpdateOne {
	_u.mutation.ClearReplies()
	return _u
}

// RemoveReplyIDs removes the "replies" edge to CandidateReply entities by IDs.
func (_u *CandidateUpdateOne) RemoveReplyIDs(ids ...int) *CandidateUpdateOne {
	_u.mutation.RemoveReplyIDs(ids...)
	return _u
}

// RemoveReplies removes "replies" edges to CandidateReply entities.
func (_u *CandidateUpdateOne) RemoveReplies(v ...*CandidateReply) *CandidateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReplyIDs(ids...)
}

// ClearCvUploads clears all "cv_uploads" edges to the CVUpload entity.
func (_u *CandidateUpdateOne) ClearCvUploads() *CandidateUpdateOne {
	_u.mutation.ClearCvUploads()
	return _u
}

// RemoveCvUploadIDs removes the "cv_uploads" edge to CVUpload entities by IDs.
func (_u *CandidateUpdateOne) RemoveCvUploadIDs(ids ...int) *CandidateUpdateOne {
	_u.mutation.RemoveCvUploadIDs(ids...)
	return _u
}

// RemoveCvUploads removes "cv_uploads" edges to CVUpload entities.
func (_u *CandidateUpdateOne) RemoveCvUploads(v ...*CVUpload) *CandidateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCvUploadIDs(ids...)
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(candidate.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(candidate.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(candidate.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(candidate.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.WhatsappNumber(); ok {
		_spec.SetField(candidate.FieldWhatsappNumber, field.TypeString, value)
	}
	if _u.mutation.WhatsappNumberCleared() {
		_spec.ClearField(candidate.FieldWhatsappNumber, field.TypeString)
	}
	if value, ok := _u.mutation.LeadSourceID(); ok {
		_spec.SetField(candidate.FieldLeadSourceID, field.TypeString, value)
	}
	if _u.mutation.LeadSourceIDCleared() {
		_spec.ClearField(candidate.FieldLeadSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.FormAnswers(); ok {
		_spec.SetField(candidate.FieldFormAnswers, field.TypeJSON, value)
	}
	if _u.mutation.FormAnswersCleared() {
		_spec.ClearField(candidate.FieldFormAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(candidate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(candidate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ApplicationsTable,
			Columns: []string{candidate.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ApplicationsTable,
			Columns: []string{candidate.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ApplicationsTable,
			Columns: []string{candidate.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.RepliesTable,
			Columns: []string{candidate.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepliesIDs(); len(nodes) > 0 && !_u.mutation.RepliesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.RepliesTable,
			Columns: []string{candidate.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.RepliesTable,
			Columns: []string{candidate.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatereply.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CvUploadsTable,
			Columns: []string{candidate.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCvUploadsIDs(); len(nodes) > 0 && !_u.mutation.CvUploadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CvUploadsTable,
			Columns: []string{candidate.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CvUploadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CvUploadsTable,
			Columns: []string{candidate.CvUploadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvupload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
