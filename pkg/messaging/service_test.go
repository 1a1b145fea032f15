package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/test/util"
)

type fakeWhatsApp struct {
	sent []string
	to   []string
	err  error
}

func (f *fakeWhatsApp) SendText(_ context.Context, phone, body string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.to = append(f.to, phone)
	f.sent = append(f.sent, body)
	return "wamid.1", nil
}

func (f *fakeWhatsApp) Configured() bool { return true }

type fakeEmail struct {
	subjects []string
	bodies   []string
	to       []string
}

func (f *fakeEmail) Send(_ context.Context, to, subject, body string) (string, error) {
	f.to = append(f.to, to)
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	return "gmail-1", nil
}

func (f *fakeEmail) Configured() bool { return true }

func seedApp(t *testing.T, client *ent.Client, status application.Status) *ent.Application {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetPhone("+491512345678").
		SetEmail("ada@example.com").
		Save(ctx)
	require.NoError(t, err)

	pos, err := client.Position.Create().
		SetTitle("Backend Engineer").
		Save(ctx)
	require.NoError(t, err)

	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return app
}

func TestSendCVRequest_Qualified(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	wa := &fakeWhatsApp{}
	em := &fakeEmail{}
	svc := NewMessageService(client, services.NewApplicationService(client, nil), wa, em)

	app := seedApp(t, client, application.StatusQualified)

	require.NoError(t, svc.SendCVRequest(ctx, app.ID, false))

	// Both channels went out, each carrying the application reference.
	require.Len(t, wa.sent, 1)
	assert.Contains(t, wa.sent[0], "Backend Engineer")
	assert.Contains(t, wa.sent[0], fmt.Sprintf("#%d", app.ID))
	require.Len(t, em.bodies, 1)
	assert.Contains(t, em.subjects[0], "Backend Engineer")
	assert.Equal(t, "ada@example.com", em.to[0])

	rows, err := client.Message.Query().
		Where(message.ApplicationIDEQ(app.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, message.StatusSent, row.Status)
		assert.Equal(t, message.MessageTypeCvRequest, row.MessageType)
		assert.NotEmpty(t, row.ExternalID)
		assert.NotNil(t, row.SentAt)
	}

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAwaitingCv, refreshed.Status)
}

func TestSendCVRequest_RejectedPathIsWhatsAppOnly(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	wa := &fakeWhatsApp{}
	em := &fakeEmail{}
	svc := NewMessageService(client, services.NewApplicationService(client, nil), wa, em)

	app := seedApp(t, client, application.StatusNotQualified)

	require.NoError(t, svc.SendCVRequest(ctx, app.ID, true))

	assert.Len(t, wa.sent, 1)
	assert.Empty(t, em.bodies)

	rows, err := client.Message.Query().Where(message.ApplicationIDEQ(app.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, message.MessageTypeCvRequestRejected, rows[0].MessageType)

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAwaitingCvRejected, refreshed.Status)
}

func TestSendCVRequest_SendFailureStillTransitions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	wa := &fakeWhatsApp{err: fmt.Errorf("gateway down")}
	svc := NewMessageService(client, services.NewApplicationService(client, nil), wa, nil)

	app := seedApp(t, client, application.StatusQualified)

	require.NoError(t, svc.SendCVRequest(ctx, app.ID, false))

	rows, err := client.Message.Query().Where(message.ApplicationIDEQ(app.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, message.StatusFailed, rows[0].Status)
	assert.Contains(t, rows[0].ErrorDetail, "gateway down")

	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAwaitingCv, refreshed.Status)

	audit, err := client.StatusChange.Query().
		Where(statuschange.ApplicationIDEQ(app.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CV request sent", audit.Note)
}

func TestSendCVRequest_DBTemplateOverride(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	_, err := client.MessageTemplate.Create().
		SetMessageType(messagetemplate.MessageTypeCvRequest).
		SetChannel(messagetemplate.ChannelWhatsapp).
		SetBody("Custom: {candidate_name} / {position_title} / #{application_pk}").
		Save(ctx)
	require.NoError(t, err)

	wa := &fakeWhatsApp{}
	svc := NewMessageService(client, services.NewApplicationService(client, nil), wa, nil)

	app := seedApp(t, client, application.StatusQualified)

	require.NoError(t, svc.SendCVRequest(ctx, app.ID, false))
	require.Len(t, wa.sent, 1)
	assert.Equal(t, fmt.Sprintf("Custom: Ada Lovelace / Backend Engineer / #%d", app.ID), wa.sent[0])
}

func TestSendFollowup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	wa := &fakeWhatsApp{}
	em := &fakeEmail{}
	svc := NewMessageService(client, services.NewApplicationService(client, nil), wa, em)

	app := seedApp(t, client, application.StatusAwaitingCv)

	require.NoError(t, svc.SendFollowup(ctx, app.ID, message.MessageTypeCvFollowup1))

	assert.Len(t, wa.sent, 1)
	assert.Len(t, em.bodies, 1)

	// No status transition from a follow-up send.
	refreshed, err := client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAwaitingCv, refreshed.Status)
}

func TestLatestSentAt(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	wa := &fakeWhatsApp{}
	svc := NewMessageService(client, services.NewApplicationService(client, nil), wa, nil)

	app := seedApp(t, client, application.StatusAwaitingCv)

	got, err := svc.LatestSentAt(ctx, app.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, svc.SendFollowup(ctx, app.ID, message.MessageTypeCvFollowup1))

	got, err = svc.LatestSentAt(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestSendCVRequest_UnknownApplication(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewMessageService(client, services.NewApplicationService(client, nil), &fakeWhatsApp{}, nil)

	err := svc.SendCVRequest(context.Background(), 99999, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
