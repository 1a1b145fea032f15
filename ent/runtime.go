// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/ent/schema"
	"github.com/recruitflow/recruitflow/ent/setting"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[9].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[10].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	cvuploadFields := schema.CVUpload{}.Fields()
	_ = cvuploadFields
	// cvuploadDescNeedsReview is the schema descriptor for needs_review field.
	cvuploadDescNeedsReview := cvuploadFields[7].Descriptor()
	// cvupload.DefaultNeedsReview holds the default value on creation for the needs_review field.
	cvupload.DefaultNeedsReview = cvuploadDescNeedsReview.Default.(bool)
	// cvuploadDescCreatedAt is the schema descriptor for created_at field.
	cvuploadDescCreatedAt := cvuploadFields[8].Descriptor()
	// cvupload.DefaultCreatedAt holds the default value on creation for the created_at field.
	cvupload.DefaultCreatedAt = cvuploadDescCreatedAt.Default.(func() time.Time)
	callFields := schema.Call{}.Fields()
	_ = callFields
	// callDescAttemptNumber is the schema descriptor for attempt_number field.
	callDescAttemptNumber := callFields[1].Descriptor()
	// call.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	call.DefaultAttemptNumber = callDescAttemptNumber.Default.(int)
	// callDescInitiatedAt is the schema descriptor for initiated_at field.
	callDescInitiatedAt := callFields[11].Descriptor()
	// call.DefaultInitiatedAt holds the default value on creation for the initiated_at field.
	call.DefaultInitiatedAt = callDescInitiatedAt.Default.(func() time.Time)
	// callDescCreatedAt is the schema descriptor for created_at field.
	callDescCreatedAt := callFields[13].Descriptor()
	// call.DefaultCreatedAt holds the default value on creation for the created_at field.
	call.DefaultCreatedAt = callDescCreatedAt.Default.(func() time.Time)
	// callDescUpdatedAt is the schema descriptor for updated_at field.
	callDescUpdatedAt := callFields[14].Descriptor()
	// call.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	call.DefaultUpdatedAt = callDescUpdatedAt.Default.(func() time.Time)
	// call.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	call.UpdateDefaultUpdatedAt = callDescUpdatedAt.UpdateDefault.(func() time.Time)
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[8].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[9].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	candidatereplyFields := schema.CandidateReply{}.Fields()
	_ = candidatereplyFields
	// candidatereplyDescIsRead is the schema descriptor for is_read field.
	candidatereplyDescIsRead := candidatereplyFields[7].Descriptor()
	// candidatereply.DefaultIsRead holds the default value on creation for the is_read field.
	candidatereply.DefaultIsRead = candidatereplyDescIsRead.Default.(bool)
	// candidatereplyDescReceivedAt is the schema descriptor for received_at field.
	candidatereplyDescReceivedAt := candidatereplyFields[8].Descriptor()
	// candidatereply.DefaultReceivedAt holds the default value on creation for the received_at field.
	candidatereply.DefaultReceivedAt = candidatereplyDescReceivedAt.Default.(func() time.Time)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescCallbackRequested is the schema descriptor for callback_requested field.
	evaluationDescCallbackRequested := evaluationFields[8].Descriptor()
	// evaluation.DefaultCallbackRequested holds the default value on creation for the callback_requested field.
	evaluation.DefaultCallbackRequested = evaluationDescCallbackRequested.Default.(bool)
	// evaluationDescNeedsHuman is the schema descriptor for needs_human field.
	evaluationDescNeedsHuman := evaluationFields[11].Descriptor()
	// evaluation.DefaultNeedsHuman holds the default value on creation for the needs_human field.
	evaluation.DefaultNeedsHuman = evaluationDescNeedsHuman.Default.(bool)
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[15].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[9].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	messagetemplateFields := schema.MessageTemplate{}.Fields()
	_ = messagetemplateFields
	// messagetemplateDescUpdatedAt is the schema descriptor for updated_at field.
	messagetemplateDescUpdatedAt := messagetemplateFields[4].Descriptor()
	// messagetemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	messagetemplate.DefaultUpdatedAt = messagetemplateDescUpdatedAt.Default.(func() time.Time)
	// messagetemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	messagetemplate.UpdateDefaultUpdatedAt = messagetemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	positionFields := schema.Position{}.Fields()
	_ = positionFields
	// positionDescCallingHoursStart is the schema descriptor for calling_hours_start field.
	positionDescCallingHoursStart := positionFields[6].Descriptor()
	// position.DefaultCallingHoursStart holds the default value on creation for the calling_hours_start field.
	position.DefaultCallingHoursStart = positionDescCallingHoursStart.Default.(int)
	// positionDescCallingHoursEnd is the schema descriptor for calling_hours_end field.
	positionDescCallingHoursEnd := positionFields[7].Descriptor()
	// position.DefaultCallingHoursEnd holds the default value on creation for the calling_hours_end field.
	position.DefaultCallingHoursEnd = positionDescCallingHoursEnd.Default.(int)
	// positionDescCallRetryMax is the schema descriptor for call_retry_max field.
	positionDescCallRetryMax := positionFields[8].Descriptor()
	// position.DefaultCallRetryMax holds the default value on creation for the call_retry_max field.
	position.DefaultCallRetryMax = positionDescCallRetryMax.Default.(int)
	// positionDescCallRetryIntervalMinutes is the schema descriptor for call_retry_interval_minutes field.
	positionDescCallRetryIntervalMinutes := positionFields[9].Descriptor()
	// position.DefaultCallRetryIntervalMinutes holds the default value on creation for the call_retry_interval_minutes field.
	position.DefaultCallRetryIntervalMinutes = positionDescCallRetryIntervalMinutes.Default.(int)
	// positionDescFollowUpIntervalHours is the schema descriptor for follow_up_interval_hours field.
	positionDescFollowUpIntervalHours := positionFields[10].Descriptor()
	// position.DefaultFollowUpIntervalHours holds the default value on creation for the follow_up_interval_hours field.
	position.DefaultFollowUpIntervalHours = positionDescFollowUpIntervalHours.Default.(int)
	// positionDescRejectedCvTimeoutDays is the schema descriptor for rejected_cv_timeout_days field.
	positionDescRejectedCvTimeoutDays := positionFields[11].Descriptor()
	// position.DefaultRejectedCvTimeoutDays holds the default value on creation for the rejected_cv_timeout_days field.
	position.DefaultRejectedCvTimeoutDays = positionDescRejectedCvTimeoutDays.Default.(int)
	// positionDescCreatedAt is the schema descriptor for created_at field.
	positionDescCreatedAt := positionFields[12].Descriptor()
	// position.DefaultCreatedAt holds the default value on creation for the created_at field.
	position.DefaultCreatedAt = positionDescCreatedAt.Default.(func() time.Time)
	// positionDescUpdatedAt is the schema descriptor for updated_at field.
	positionDescUpdatedAt := positionFields[13].Descriptor()
	// position.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	position.DefaultUpdatedAt = positionDescUpdatedAt.Default.(func() time.Time)
	// position.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	position.UpdateDefaultUpdatedAt = positionDescUpdatedAt.UpdateDefault.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	statuschangeFields := schema.StatusChange{}.Fields()
	_ = statuschangeFields
	// statuschangeDescChangedBy is the schema descriptor for changed_by field.
	statuschangeDescChangedBy := statuschangeFields[4].Descriptor()
	// statuschange.DefaultChangedBy holds the default value on creation for the changed_by field.
	statuschange.DefaultChangedBy = statuschangeDescChangedBy.Default.(string)
	// statuschangeDescCreatedAt is the schema descriptor for created_at field.
	statuschangeDescCreatedAt := statuschangeFields[5].Descriptor()
	// statuschange.DefaultCreatedAt holds the default value on creation for the created_at field.
	statuschange.DefaultCreatedAt = statuschangeDescCreatedAt.Default.(func() time.Time)
	unmatchedinboundFields := schema.UnmatchedInbound{}.Fields()
	_ = unmatchedinboundFields
	// unmatchedinboundDescResolved is the schema descriptor for resolved field.
	unmatchedinboundDescResolved := unmatchedinboundFields[7].Descriptor()
	// unmatchedinbound.DefaultResolved holds the default value on creation for the resolved field.
	unmatchedinbound.DefaultResolved = unmatchedinboundDescResolved.Default.(bool)
	// unmatchedinboundDescCreatedAt is the schema descriptor for created_at field.
	unmatchedinboundDescCreatedAt := unmatchedinboundFields[9].Descriptor()
	// unmatchedinbound.DefaultCreatedAt holds the default value on creation for the created_at field.
	unmatchedinbound.DefaultCreatedAt = unmatchedinboundDescCreatedAt.Default.(func() time.Time)
}
