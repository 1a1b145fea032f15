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
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFirstName sets the "first_name" field.
func (_c *CandidateCreate) SetFirstName(v string) *CandidateCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *CandidateCreate) SetLastName(v string) *CandidateCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableLastName(v *string) *CandidateCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *CandidateCreate) SetEmail(v string) *CandidateCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableEmail(v *string) *CandidateCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CandidateCreate) SetPhone(v string) *CandidateCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CandidateCreate) SetNillablePhone(v *string) *CandidateCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (_c *CandidateCreate) SetWhatsappNumber(v string) *CandidateCreate {
	_c.mutation.SetWhatsappNumber(v)
	return _c
}

// SetNillableWhatsappNumber sets the "whatsapp_number" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableWhatsappNumber(v *string) *CandidateCreate {
	if v != nil {
		_c.SetWhatsappNumber(*v)
	}
	return _c
}

// SetLeadSourceID sets the "lead_source_id" field.
func (_c *CandidateCreate) SetLeadSourceID(v string) *CandidateCreate {
	_c.mutation.SetLeadSourceID(v)
	return _c
}

// SetNillableLeadSourceID sets the "lead_source_id" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableLeadSourceID(v *string) *CandidateCreate {
	if v != nil {
		_c.SetLeadSourceID(*v)
	}
	return _c
}

// SetFormAnswers sets the "form_answers" field.
func (_c *CandidateCreate) SetFormAnswers(v map[string]interface{}) *CandidateCreate {
	_c.mutation.SetFormAnswers(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CandidateCreate) SetNotes(v string) *CandidateCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableNotes(v *string) *CandidateCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateCreate) SetCreatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableCreatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CandidateCreate) SetUpdatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableUpdatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_c *CandidateCreate) AddApplicationIDs(ids ...int) *CandidateCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the Application entity.
func (_c *CandidateCreate) AddApplications(v ...*Application) *CandidateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by IDs.
func (_c *CandidateCreate) AddReplyIDs(ids ...int) *CandidateCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the CandidateReply entity.
func (_c *CandidateCreate) AddReplies(v ...*CandidateReply) *CandidateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by IDs.
func (_c *CandidateCreate) AddCvUploadIDs(ids ...int) *CandidateCreate {
	_c.mutation.AddCvUploadIDs(ids...)
	return _c
}

// AddCvUploads adds the "cv_uploads" edges to the CVUpload entity.
func (_c *CandidateCreate) AddCvUploads(v ...*CVUpload) *CandidateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCvUploadIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := candidate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Candidate.first_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Candidate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Candidate.updated_at"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(candidate.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(candidate.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.WhatsappNumber(); ok {
		_spec.SetField(candidate.FieldWhatsappNumber, field.TypeString, value)
		_node.WhatsappNumber = value
	}
	if value, ok := _c.mutation.LeadSourceID(); ok {
		_spec.SetField(candidate.FieldLeadSourceID, field.TypeString, value)
		_node.LeadSourceID = &value
	}
	if value, ok := _c.mutation.FormAnswers(); ok {
		_spec.SetField(candidate.FieldFormAnswers, field.TypeJSON, value)
		_node.FormAnswers = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(candidate.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RepliesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CvUploadsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.Create().
//		SetFirstName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetFirstName(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertOne {
	_c.conflict = opts
	return &CandidateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflictColumns(columns ...string) *CandidateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertOne{
		create: _c,
	}
}

type (
	// CandidateUpsertOne is the builder for "upsert"-ing
	//  one Candidate node.
	CandidateUpsertOne struct {
		create *CandidateCreate
	}

	// CandidateUpsert is the "OnConflict" setter.
	CandidateUpsert struct {
		*sql.UpdateSet
	}
)

// SetFirstName sets the "first_name" field.
func (u *CandidateUpsert) SetFirstName(v string) *CandidateUpsert {
	u.Set(candidate.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateFirstName() *CandidateUpsert {
	u.SetExcluded(candidate.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *CandidateUpsert) SetLastName(v string) *CandidateUpsert {
	u.Set(candidate.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLastName() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLastName)
	return u
}

// ClearLastName clears the value of the "last_name" field.
func (u *CandidateUpsert) ClearLastName() *CandidateUpsert {
	u.SetNull(candidate.FieldLastName)
	return u
}

// SetEmail sets the "email" field.
func (u *CandidateUpsert) SetEmail(v string) *CandidateUpsert {
	u.Set(candidate.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateEmail() *CandidateUpsert {
	u.SetExcluded(candidate.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *CandidateUpsert) ClearEmail() *CandidateUpsert {
	u.SetNull(candidate.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *CandidateUpsert) SetPhone(v string) *CandidateUpsert {
	u.Set(candidate.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CandidateUpsert) UpdatePhone() *CandidateUpsert {
	u.SetExcluded(candidate.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *CandidateUpsert) ClearPhone() *CandidateUpsert {
	u.SetNull(candidate.FieldPhone)
	return u
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (u *CandidateUpsert) SetWhatsappNumber(v string) *CandidateUpsert {
	u.Set(candidate.FieldWhatsappNumber, v)
	return u
}

// UpdateWhatsappNumber sets the "whatsapp_number" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateWhatsappNumber() *CandidateUpsert {
	u.SetExcluded(candidate.FieldWhatsappNumber)
	return u
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (u *CandidateUpsert) ClearWhatsappNumber() *CandidateUpsert {
	u.SetNull(candidate.FieldWhatsappNumber)
	return u
}

// SetLeadSourceID sets the "lead_source_id" field.
func (u *CandidateUpsert) SetLeadSourceID(v string) *CandidateUpsert {
	u.Set(candidate.FieldLeadSourceID, v)
	return u
}

// UpdateLeadSourceID sets the "lead_source_id" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLeadSourceID() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLeadSourceID)
	return u
}

// ClearLeadSourceID clears the value of the "lead_source_id" field.
func (u *CandidateUpsert) ClearLeadSourceID() *CandidateUpsert {
	u.SetNull(candidate.FieldLeadSourceID)
	return u
}

// SetFormAnswers sets the "form_answers" field.
func (u *CandidateUpsert) SetFormAnswers(v map[string]interface{}) *CandidateUpsert {
	u.Set(candidate.FieldFormAnswers, v)
	return u
}

// UpdateFormAnswers sets the "form_answers" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateFormAnswers() *CandidateUpsert {
	u.SetExcluded(candidate.FieldFormAnswers)
	return u
}

// ClearFormAnswers clears the value of the "form_answers" field.
func (u *CandidateUpsert) ClearFormAnswers() *CandidateUpsert {
	u.SetNull(candidate.FieldFormAnswers)
	return u
}

// SetNotes sets the "notes" field.
func (u *CandidateUpsert) SetNotes(v string) *CandidateUpsert {
	u.Set(candidate.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateNotes() *CandidateUpsert {
	u.SetExcluded(candidate.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *CandidateUpsert) ClearNotes() *CandidateUpsert {
	u.SetNull(candidate.FieldNotes)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsert) SetUpdatedAt(v time.Time) *CandidateUpsert {
	u.Set(candidate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateUpdatedAt() *CandidateUpsert {
	u.SetExcluded(candidate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CandidateUpsertOne) UpdateNewValues() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(candidate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CandidateUpsertOne) Ignore() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertOne) DoNothing() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreate.OnConflict
// documentation for more info.
func (u *CandidateUpsertOne) Update(set func(*CandidateUpsert)) *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetFirstName sets the "first_name" field.
func (u *CandidateUpsertOne) SetFirstName(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateFirstName() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *CandidateUpsertOne) SetLastName(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLastName() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *CandidateUpsertOne) ClearLastName() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLastName()
	})
}

// SetEmail sets the "email" field.
func (u *CandidateUpsertOne) SetEmail(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateEmail() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *CandidateUpsertOne) ClearEmail() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *CandidateUpsertOne) SetPhone(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdatePhone() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CandidateUpsertOne) ClearPhone() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearPhone()
	})
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (u *CandidateUpsertOne) SetWhatsappNumber(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetWhatsappNumber(v)
	})
}

// UpdateWhatsappNumber sets the "whatsapp_number" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateWhatsappNumber() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateWhatsappNumber()
	})
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (u *CandidateUpsertOne) ClearWhatsappNumber() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearWhatsappNumber()
	})
}

// SetLeadSourceID sets the "lead_source_id" field.
func (u *CandidateUpsertOne) SetLeadSourceID(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLeadSourceID(v)
	})
}

// UpdateLeadSourceID sets the "lead_source_id" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLeadSourceID() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLeadSourceID()
	})
}

// ClearLeadSourceID clears the value of the "lead_source_id" field.
func (u *CandidateUpsertOne) ClearLeadSourceID() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLeadSourceID()
	})
}

// SetFormAnswers sets the "form_answers" field.
func (u *CandidateUpsertOne) SetFormAnswers(v map[string]interface{}) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFormAnswers(v)
	})
}

// UpdateFormAnswers sets the "form_answers" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateFormAnswers() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFormAnswers()
	})
}

// ClearFormAnswers clears the value of the "form_answers" field.
func (u *CandidateUpsertOne) ClearFormAnswers() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearFormAnswers()
	})
}

// SetNotes sets the "notes" field.
func (u *CandidateUpsertOne) SetNotes(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateNotes() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *CandidateUpsertOne) ClearNotes() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearNotes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertOne) SetUpdatedAt(v time.Time) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateUpdatedAt() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CandidateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CandidateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
	conflict []sql.ConflictOption
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetFirstName(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertBulk {
	_c.conflict = opts
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflictColumns(columns ...string) *CandidateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// CandidateUpsertBulk is the builder for "upsert"-ing
// a bulk of Candidate nodes.
type CandidateUpsertBulk struct {
	create *CandidateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CandidateUpsertBulk) UpdateNewValues() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(candidate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CandidateUpsertBulk) Ignore() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertBulk) DoNothing() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreateBulk.OnConflict
// documentation for more info.
func (u *CandidateUpsertBulk) Update(set func(*CandidateUpsert)) *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetFirstName sets the "first_name" field.
func (u *CandidateUpsertBulk) SetFirstName(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateFirstName() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *CandidateUpsertBulk) SetLastName(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLastName() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *CandidateUpsertBulk) ClearLastName() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLastName()
	})
}

// SetEmail sets the "email" field.
func (u *CandidateUpsertBulk) SetEmail(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateEmail() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *CandidateUpsertBulk) ClearEmail() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *CandidateUpsertBulk) SetPhone(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdatePhone() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CandidateUpsertBulk) ClearPhone() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearPhone()
	})
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (u *CandidateUpsertBulk) SetWhatsappNumber(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetWhatsappNumber(v)
	})
}

// UpdateWhatsappNumber sets the "whatsapp_number" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateWhatsappNumber() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateWhatsappNumber()
	})
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (u *CandidateUpsertBulk) ClearWhatsappNumber() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearWhatsappNumber()
	})
}

// SetLeadSourceID sets the "lead_source_id" field.
func (u *CandidateUpsertBulk) SetLeadSourceID(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLeadSourceID(v)
	})
}

// UpdateLeadSourceID sets the "lead_source_id" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLeadSourceID() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLeadSourceID()
	})
}

// ClearLeadSourceID clears the value of the "lead_source_id" field.
func (u *CandidateUpsertBulk) ClearLeadSourceID() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLeadSourceID()
	})
}

// SetFormAnswers sets the "form_answers" field.
func (u *CandidateUpsertBulk) SetFormAnswers(v map[string]interface{}) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFormAnswers(v)
	})
}

// UpdateFormAnswers sets the "form_answers" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateFormAnswers() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFormAnswers()
	})
}

// ClearFormAnswers clears the value of the "form_answers" field.
func (u *CandidateUpsertBulk) ClearFormAnswers() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearFormAnswers()
	})
}

// SetNotes sets the "notes" field.
func (u *CandidateUpsertBulk) SetNotes(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateNotes() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *CandidateUpsertBulk) ClearNotes() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearNotes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertBulk) SetUpdatedAt(v time.Time) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateUpdatedAt() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CandidateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
