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
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/ent/statuschange"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCandidateID sets the "candidate_id" field.
func (_c *ApplicationCreate) SetCandidateID(v int) *ApplicationCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetPositionID sets the "position_id" field.
func (_c *ApplicationCreate) SetPositionID(v int) *ApplicationCreate {
	_c.mutation.SetPositionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v application.Status) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *application.Status) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQualified sets the "qualified" field.
func (_c *ApplicationCreate) SetQualified(v bool) *ApplicationCreate {
	_c.mutation.SetQualified(v)
	return _c
}

// SetNillableQualified sets the "qualified" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableQualified(v *bool) *ApplicationCreate {
	if v != nil {
		_c.SetQualified(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ApplicationCreate) SetScore(v float64) *ApplicationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableScore(v *float64) *ApplicationCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetScoreNotes sets the "score_notes" field.
func (_c *ApplicationCreate) SetScoreNotes(v string) *ApplicationCreate {
	_c.mutation.SetScoreNotes(v)
	return _c
}

// SetNillableScoreNotes sets the "score_notes" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableScoreNotes(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetScoreNotes(*v)
	}
	return _c
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (_c *ApplicationCreate) SetCvReceivedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCvReceivedAt(v)
	return _c
}

// SetNillableCvReceivedAt sets the "cv_received_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCvReceivedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCvReceivedAt(*v)
	}
	return _c
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (_c *ApplicationCreate) SetCallbackScheduledAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCallbackScheduledAt(v)
	return _c
}

// SetNillableCallbackScheduledAt sets the "callback_scheduled_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCallbackScheduledAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCallbackScheduledAt(*v)
	}
	return _c
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (_c *ApplicationCreate) SetNeedsHumanReason(v string) *ApplicationCreate {
	_c.mutation.SetNeedsHumanReason(v)
	return _c
}

// SetNillableNeedsHumanReason sets the "needs_human_reason" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableNeedsHumanReason(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetNeedsHumanReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_c *ApplicationCreate) SetCandidate(v *Candidate) *ApplicationCreate {
	return _c.SetCandidateID(v.ID)
}

// SetPosition sets the "position" edge to the Position entity.
func (_c *ApplicationCreate) SetPosition(v *Position) *ApplicationCreate {
	return _c.SetPositionID(v.ID)
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by IDs.
func (_c *ApplicationCreate) AddStatusChangeIDs(ids ...int) *ApplicationCreate {
	_c.mutation.AddStatusChangeIDs(ids...)
	return _c
}

// AddStatusChanges adds the "status_changes" edges to the StatusChange entity.
func (_c *ApplicationCreate) AddStatusChanges(v ...*StatusChange) *ApplicationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusChangeIDs(ids...)
}

// AddCallIDs adds the "calls" edge to the Call entity by IDs.
func (_c *ApplicationCreate) AddCallIDs(ids ...int) *ApplicationCreate {
	_c.mutation.AddCallIDs(ids...)
	return _c
}

// AddCalls adds the "calls" edges to the Call entity.
func (_c *ApplicationCreate) AddCalls(v ...*Call) *ApplicationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCallIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *ApplicationCreate) AddEvaluationIDs(ids ...int) *ApplicationCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *ApplicationCreate) AddEvaluations(v ...*Evaluation) *ApplicationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// AddCvUploadIDs adds the "cv_uploads" edge to the CVUpload entity by IDs.
func (_c *ApplicationCreate) AddCvUploadIDs(ids ...int) *ApplicationCreate {
	_c.mutation.AddCvUploadIDs(ids...)
	return _c
}

// AddCvUploads adds the "cv_uploads" edges to the CVUpload entity.
func (_c *ApplicationCreate) AddCvUploads(v ...*CVUpload) *ApplicationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCvUploadIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ApplicationCreate) AddMessageIDs(ids ...int) *ApplicationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ApplicationCreate) AddMessages(v ...*Message) *ApplicationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddReplyIDs adds the "replies" edge to the CandidateReply entity by IDs.
func (_c *ApplicationCreate) AddReplyIDs(ids ...int) *ApplicationCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the CandidateReply entity.
func (_c *ApplicationCreate) AddReplies(v ...*CandidateReply) *ApplicationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "Application.candidate_id"`)}
	}
	if _, ok := _c.mutation.PositionID(); !ok {
		return &ValidationError{Name: "position_id", err: errors.New(`ent: missing required field "Application.position_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if len(_c.mutation.CandidateIDs()) == 0 {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required edge "Application.candidate"`)}
	}
	if len(_c.mutation.PositionIDs()) == 0 {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required edge "Application.position"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
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

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Qualified(); ok {
		_spec.SetField(application.FieldQualified, field.TypeBool, value)
		_node.Qualified = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(application.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.ScoreNotes(); ok {
		_spec.SetField(application.FieldScoreNotes, field.TypeString, value)
		_node.ScoreNotes = value
	}
	if value, ok := _c.mutation.CvReceivedAt(); ok {
		_spec.SetField(application.FieldCvReceivedAt, field.TypeTime, value)
		_node.CvReceivedAt = &value
	}
	if value, ok := _c.mutation.CallbackScheduledAt(); ok {
		_spec.SetField(application.FieldCallbackScheduledAt, field.TypeTime, value)
		_node.CallbackScheduledAt = &value
	}
	if value, ok := _c.mutation.NeedsHumanReason(); ok {
		_spec.SetField(application.FieldNeedsHumanReason, field.TypeString, value)
		_node.NeedsHumanReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CandidateTable,
			Columns: []string{application.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CandidateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PositionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.PositionTable,
			Columns: []string{application.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PositionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.StatusChangesTable,
			Columns: []string{application.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.CallsTable,
			Columns: []string{application.CallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(call.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.EvaluationsTable,
			Columns: []string{application.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt),
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
			Table:   application.CvUploadsTable,
			Columns: []string{application.CvUploadsColumn},
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
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.MessagesTable,
			Columns: []string{application.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
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
			Table:   application.RepliesTable,
			Columns: []string{application.RepliesColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Application.Create().
//		SetCandidateID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationCreate) OnConflict(opts ...sql.ConflictOption) *ApplicationUpsertOne {
	_c.conflict = opts
	return &ApplicationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationCreate) OnConflictColumns(columns ...string) *ApplicationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationUpsertOne{
		create: _c,
	}
}

type (
	// ApplicationUpsertOne is the builder for "upsert"-ing
	//  one Application node.
	ApplicationUpsertOne struct {
		create *ApplicationCreate
	}

	// ApplicationUpsert is the "OnConflict" setter.
	ApplicationUpsert struct {
		*sql.UpdateSet
	}
)

// SetCandidateID sets the "candidate_id" field.
func (u *ApplicationUpsert) SetCandidateID(v int) *ApplicationUpsert {
	u.Set(application.FieldCandidateID, v)
	return u
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateCandidateID() *ApplicationUpsert {
	u.SetExcluded(application.FieldCandidateID)
	return u
}

// SetPositionID sets the "position_id" field.
func (u *ApplicationUpsert) SetPositionID(v int) *ApplicationUpsert {
	u.Set(application.FieldPositionID, v)
	return u
}

// UpdatePositionID sets the "position_id" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdatePositionID() *ApplicationUpsert {
	u.SetExcluded(application.FieldPositionID)
	return u
}

// SetStatus sets the "status" field.
func (u *ApplicationUpsert) SetStatus(v application.Status) *ApplicationUpsert {
	u.Set(application.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateStatus() *ApplicationUpsert {
	u.SetExcluded(application.FieldStatus)
	return u
}

// SetQualified sets the "qualified" field.
func (u *ApplicationUpsert) SetQualified(v bool) *ApplicationUpsert {
	u.Set(application.FieldQualified, v)
	return u
}

// UpdateQualified sets the "qualified" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateQualified() *ApplicationUpsert {
	u.SetExcluded(application.FieldQualified)
	return u
}

// ClearQualified clears the value of the "qualified" field.
func (u *ApplicationUpsert) ClearQualified() *ApplicationUpsert {
	u.SetNull(application.FieldQualified)
	return u
}

// SetScore sets the "score" field.
func (u *ApplicationUpsert) SetScore(v float64) *ApplicationUpsert {
	u.Set(application.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateScore() *ApplicationUpsert {
	u.SetExcluded(application.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *ApplicationUpsert) AddScore(v float64) *ApplicationUpsert {
	u.Add(application.FieldScore, v)
	return u
}

// ClearScore clears the value of the "score" field.
func (u *ApplicationUpsert) ClearScore() *ApplicationUpsert {
	u.SetNull(application.FieldScore)
	return u
}

// SetScoreNotes sets the "score_notes" field.
func (u *ApplicationUpsert) SetScoreNotes(v string) *ApplicationUpsert {
	u.Set(application.FieldScoreNotes, v)
	return u
}

// UpdateScoreNotes sets the "score_notes" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateScoreNotes() *ApplicationUpsert {
	u.SetExcluded(application.FieldScoreNotes)
	return u
}

// ClearScoreNotes clears the value of the "score_notes" field.
func (u *ApplicationUpsert) ClearScoreNotes() *ApplicationUpsert {
	u.SetNull(application.FieldScoreNotes)
	return u
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (u *ApplicationUpsert) SetCvReceivedAt(v time.Time) *ApplicationUpsert {
	u.Set(application.FieldCvReceivedAt, v)
	return u
}

// UpdateCvReceivedAt sets the "cv_received_at" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateCvReceivedAt() *ApplicationUpsert {
	u.SetExcluded(application.FieldCvReceivedAt)
	return u
}

// ClearCvReceivedAt clears the value of the "cv_received_at" field.
func (u *ApplicationUpsert) ClearCvReceivedAt() *ApplicationUpsert {
	u.SetNull(application.FieldCvReceivedAt)
	return u
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (u *ApplicationUpsert) SetCallbackScheduledAt(v time.Time) *ApplicationUpsert {
	u.Set(application.FieldCallbackScheduledAt, v)
	return u
}

// UpdateCallbackScheduledAt sets the "callback_scheduled_at" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateCallbackScheduledAt() *ApplicationUpsert {
	u.SetExcluded(application.FieldCallbackScheduledAt)
	return u
}

// ClearCallbackScheduledAt clears the value of the "callback_scheduled_at" field.
func (u *ApplicationUpsert) ClearCallbackScheduledAt() *ApplicationUpsert {
	u.SetNull(application.FieldCallbackScheduledAt)
	return u
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (u *ApplicationUpsert) SetNeedsHumanReason(v string) *ApplicationUpsert {
	u.Set(application.FieldNeedsHumanReason, v)
	return u
}

// UpdateNeedsHumanReason sets the "needs_human_reason" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateNeedsHumanReason() *ApplicationUpsert {
	u.SetExcluded(application.FieldNeedsHumanReason)
	return u
}

// ClearNeedsHumanReason clears the value of the "needs_human_reason" field.
func (u *ApplicationUpsert) ClearNeedsHumanReason() *ApplicationUpsert {
	u.SetNull(application.FieldNeedsHumanReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationUpsert) SetUpdatedAt(v time.Time) *ApplicationUpsert {
	u.Set(application.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateUpdatedAt() *ApplicationUpsert {
	u.SetExcluded(application.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ApplicationUpsertOne) UpdateNewValues() *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(application.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Application.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApplicationUpsertOne) Ignore() *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationUpsertOne) DoNothing() *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationCreate.OnConflict
// documentation for more info.
func (u *ApplicationUpsertOne) Update(set func(*ApplicationUpsert)) *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *ApplicationUpsertOne) SetCandidateID(v int) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateCandidateID() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateCandidateID()
	})
}

// SetPositionID sets the "position_id" field.
func (u *ApplicationUpsertOne) SetPositionID(v int) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetPositionID(v)
	})
}

// UpdatePositionID sets the "position_id" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdatePositionID() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdatePositionID()
	})
}

// SetStatus sets the "status" field.
func (u *ApplicationUpsertOne) SetStatus(v application.Status) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateStatus() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateStatus()
	})
}

// SetQualified sets the "qualified" field.
func (u *ApplicationUpsertOne) SetQualified(v bool) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetQualified(v)
	})
}

// UpdateQualified sets the "qualified" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateQualified() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateQualified()
	})
}

// ClearQualified clears the value of the "qualified" field.
func (u *ApplicationUpsertOne) ClearQualified() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearQualified()
	})
}

// SetScore sets the "score" field.
func (u *ApplicationUpsertOne) SetScore(v float64) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ApplicationUpsertOne) AddScore(v float64) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateScore() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *ApplicationUpsertOne) ClearScore() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearScore()
	})
}

// SetScoreNotes sets the "score_notes" field.
func (u *ApplicationUpsertOne) SetScoreNotes(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetScoreNotes(v)
	})
}

// UpdateScoreNotes sets the "score_notes" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateScoreNotes() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateScoreNotes()
	})
}

// ClearScoreNotes clears the value of the "score_notes" field.
func (u *ApplicationUpsertOne) ClearScoreNotes() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearScoreNotes()
	})
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (u *ApplicationUpsertOne) SetCvReceivedAt(v time.Time) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetCvReceivedAt(v)
	})
}

// UpdateCvReceivedAt sets the "cv_received_at" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateCvReceivedAt() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateCvReceivedAt()
	})
}

// ClearCvReceivedAt clears the value of the "cv_received_at" field.
func (u *ApplicationUpsertOne) ClearCvReceivedAt() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearCvReceivedAt()
	})
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (u *ApplicationUpsertOne) SetCallbackScheduledAt(v time.Time) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetCallbackScheduledAt(v)
	})
}

// UpdateCallbackScheduledAt sets the "callback_scheduled_at" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateCallbackScheduledAt() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateCallbackScheduledAt()
	})
}

// ClearCallbackScheduledAt clears the value of the "callback_scheduled_at" field.
func (u *ApplicationUpsertOne) ClearCallbackScheduledAt() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearCallbackScheduledAt()
	})
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (u *ApplicationUpsertOne) SetNeedsHumanReason(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetNeedsHumanReason(v)
	})
}

// UpdateNeedsHumanReason sets the "needs_human_reason" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateNeedsHumanReason() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateNeedsHumanReason()
	})
}

// ClearNeedsHumanReason clears the value of the "needs_human_reason" field.
func (u *ApplicationUpsertOne) ClearNeedsHumanReason() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearNeedsHumanReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationUpsertOne) SetUpdatedAt(v time.Time) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateUpdatedAt() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ApplicationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApplicationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApplicationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
	conflict []sql.ConflictOption
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Application.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationUpsert) {
//			SetCandidateID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApplicationUpsertBulk {
	_c.conflict = opts
	return &ApplicationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationCreateBulk) OnConflictColumns(columns ...string) *ApplicationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationUpsertBulk{
		create: _c,
	}
}

// ApplicationUpsertBulk is the builder for "upsert"-ing
// a bulk of Application nodes.
type ApplicationUpsertBulk struct {
	create *ApplicationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ApplicationUpsertBulk) UpdateNewValues() *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(application.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApplicationUpsertBulk) Ignore() *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationUpsertBulk) DoNothing() *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationCreateBulk.OnConflict
// documentation for more info.
func (u *ApplicationUpsertBulk) Update(set func(*ApplicationUpsert)) *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *ApplicationUpsertBulk) SetCandidateID(v int) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateCandidateID() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateCandidateID()
	})
}

// SetPositionID sets the "position_id" field.
func (u *ApplicationUpsertBulk) SetPositionID(v int) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetPositionID(v)
	})
}

// UpdatePositionID sets the "position_id" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdatePositionID() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdatePositionID()
	})
}

// SetStatus sets the "status" field.
func (u *ApplicationUpsertBulk) SetStatus(v application.Status) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateStatus() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateStatus()
	})
}

// SetQualified sets the "qualified" field.
func (u *ApplicationUpsertBulk) SetQualified(v bool) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetQualified(v)
	})
}

// UpdateQualified sets the "qualified" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateQualified() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateQualified()
	})
}

// ClearQualified clears the value of the "qualified" field.
func (u *ApplicationUpsertBulk) ClearQualified() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearQualified()
	})
}

// SetScore sets the "score" field.
func (u *ApplicationUpsertBulk) SetScore(v float64) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ApplicationUpsertBulk) AddScore(v float64) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateScore() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *ApplicationUpsertBulk) ClearScore() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearScore()
	})
}

// SetScoreNotes sets the "score_notes" field.
func (u *ApplicationUpsertBulk) SetScoreNotes(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetScoreNotes(v)
	})
}

// UpdateScoreNotes sets the "score_notes" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateScoreNotes() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateScoreNotes()
	})
}

// ClearScoreNotes clears the value of the "score_notes" field.
func (u *ApplicationUpsertBulk) ClearScoreNotes() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearScoreNotes()
	})
}

// SetCvReceivedAt sets the "cv_received_at" field.
func (u *ApplicationUpsertBulk) SetCvReceivedAt(v time.Time) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetCvReceivedAt(v)
	})
}

// UpdateCvReceivedAt sets the "cv_received_at" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateCvReceivedAt() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateCvReceivedAt()
	})
}

// ClearCvReceivedAt clears the value of the "cv_received_at" field.
func (u *ApplicationUpsertBulk) ClearCvReceivedAt() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearCvReceivedAt()
	})
}

// SetCallbackScheduledAt sets the "callback_scheduled_at" field.
func (u *ApplicationUpsertBulk) SetCallbackScheduledAt(v time.Time) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetCallbackScheduledAt(v)
	})
}

// UpdateCallbackScheduledAt sets the "callback_scheduled_at" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateCallbackScheduledAt() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateCallbackScheduledAt()
	})
}

// ClearCallbackScheduledAt clears the value of the "callback_scheduled_at" field.
func (u *ApplicationUpsertBulk) ClearCallbackScheduledAt() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearCallbackScheduledAt()
	})
}

// SetNeedsHumanReason sets the "needs_human_reason" field.
func (u *ApplicationUpsertBulk) SetNeedsHumanReason(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetNeedsHumanReason(v)
	})
}

// UpdateNeedsHumanReason sets the "needs_human_reason" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateNeedsHumanReason() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateNeedsHumanReason()
	})
}

// ClearNeedsHumanReason clears the value of the "needs_human_reason" field.
func (u *ApplicationUpsertBulk) ClearNeedsHumanReason() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearNeedsHumanReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationUpsertBulk) SetUpdatedAt(v time.Time) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateUpdatedAt() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ApplicationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApplicationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
