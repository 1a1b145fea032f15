package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/test/util"
)

func TestReplyRecord_ResolvesSenderByPhone(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewReplyService(client)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusAwaitingCv)

	// Sender carries the country code the stored number also has, but with
	// WhatsApp formatting.
	reply, err := svc.Record(ctx, InboundReply{
		Channel: candidatereply.ChannelWhatsapp,
		Sender:  "491512345678@s.whatsapp.net",
		Body:    "I will send my CV tonight",
	})
	require.NoError(t, err)

	require.NotNil(t, reply.CandidateID)
	assert.Equal(t, app.CandidateID, *reply.CandidateID)
	require.NotNil(t, reply.ApplicationID)
	assert.Equal(t, app.ID, *reply.ApplicationID)
	assert.False(t, reply.IsRead)
}

func TestReplyRecord_UnknownSenderStillPersisted(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewReplyService(client)
	ctx := context.Background()

	reply, err := svc.Record(ctx, InboundReply{
		Channel: candidatereply.ChannelWhatsapp,
		Sender:  "448888999000",
		Body:    "hello?",
	})
	require.NoError(t, err)
	assert.Nil(t, reply.CandidateID)
	assert.Nil(t, reply.ApplicationID)
}

func TestReplyRecord_EmailResolution(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewReplyService(client)
	ctx := context.Background()

	app := seedApplication(t, client, application.StatusAwaitingCv)

	reply, err := svc.Record(ctx, InboundReply{
		Channel: candidatereply.ChannelEmail,
		Sender:  "ADA@example.com",
		Subject: "my cv",
		Body:    "attached",
	})
	require.NoError(t, err)
	require.NotNil(t, reply.CandidateID)
	assert.Equal(t, app.CandidateID, *reply.CandidateID)
}

func TestReplyRecord_EmptyBodyRejected(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewReplyService(client)

	_, err := svc.Record(context.Background(), InboundReply{
		Channel: candidatereply.ChannelWhatsapp,
		Sender:  "491512345678",
	})
	assert.True(t, IsValidationError(err))
}

func TestReplyMarkRead(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewReplyService(client)
	ctx := context.Background()

	reply, err := svc.Record(ctx, InboundReply{
		Channel: candidatereply.ChannelWhatsapp,
		Sender:  "4917612345670",
		Body:    "ok",
	})
	require.NoError(t, err)

	n, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, svc.MarkRead(ctx, reply.ID))

	n, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, svc.MarkRead(ctx, 99999), ErrNotFound)
}
