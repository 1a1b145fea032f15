package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
	"github.com/recruitflow/recruitflow/pkg/services"
)

// WhatsAppSender sends one text message. Implemented by *WhapiClient.
type WhatsAppSender interface {
	SendText(ctx context.Context, phone, body string) (string, error)
	Configured() bool
}

// EmailSender sends one plain-text email. Implemented by *GmailSender.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
	Configured() bool
}

// MessageService sends templated outbound messages and records each attempt
// as a Message row. Senders may be nil when a channel is not configured;
// that channel is then skipped with a warning.
type MessageService struct {
	client    *ent.Client
	apps      *services.ApplicationService
	whatsapp  WhatsAppSender
	email     EmailSender
	templates *TemplateService
	logger    *slog.Logger
}

// NewMessageService creates a MessageService.
func NewMessageService(client *ent.Client, apps *services.ApplicationService, whatsapp WhatsAppSender, email EmailSender) *MessageService {
	return &MessageService{
		client:    client,
		apps:      apps,
		whatsapp:  whatsapp,
		email:     email,
		templates: NewTemplateService(client),
		logger:    slog.Default().With("service", "messaging"),
	}
}

// SendCVRequest asks the candidate for a CV after the verdict. The qualified
// path goes out on WhatsApp and email and moves the application to
// AWAITING_CV; the rejected path is WhatsApp-only and moves it to
// AWAITING_CV_REJECTED. The transition happens even when every send fails:
// the follow-up job retries contact, and failed sends stay visible as
// Message rows.
func (s *MessageService) SendCVRequest(ctx context.Context, applicationID int, rejected bool) error {
	app, err := s.loadApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	cand := app.Edges.Candidate
	pos := app.Edges.Position
	vars := services.PlaceholderVars(app, cand, pos)

	target := application.StatusAwaitingCv
	note := "CV request sent"
	if rejected {
		target = application.StatusAwaitingCvRejected
		note = "CV request sent (rejected path)"
		s.sendWhatsApp(ctx, app, cand, message.MessageTypeCvRequestRejected, vars)
	} else {
		s.sendWhatsApp(ctx, app, cand, message.MessageTypeCvRequest, vars)
		s.sendEmail(ctx, app, cand, message.MessageTypeCvRequest, vars)
	}

	_, err = s.apps.Transition(ctx, app.ID, target, services.TransitionOptions{Note: note})
	return err
}

// SendFollowup sends a CV follow-up on both channels. The status transition
// is the follow-up job's concern, not this method's.
func (s *MessageService) SendFollowup(ctx context.Context, applicationID int, msgType message.MessageType) error {
	app, err := s.loadApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	cand := app.Edges.Candidate
	vars := services.PlaceholderVars(app, cand, app.Edges.Position)

	s.sendWhatsApp(ctx, app, cand, msgType, vars)
	s.sendEmail(ctx, app, cand, msgType, vars)
	return nil
}

// LatestSentAt returns the send time of the most recent successfully sent
// message for an application, or nil when none exists.
func (s *MessageService) LatestSentAt(ctx context.Context, applicationID int) (*time.Time, error) {
	row, err := s.client.Message.Query().
		Where(
			message.ApplicationIDEQ(applicationID),
			message.StatusEQ(message.StatusSent),
		).
		Order(ent.Desc(message.FieldSentAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	return row.SentAt, nil
}

func (s *MessageService) loadApplication(ctx context.Context, applicationID int) (*ent.Application, error) {
	app, err := s.client.Application.Query().
		Where(application.IDEQ(applicationID)).
		WithCandidate().
		WithPosition().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load application %d: %w", applicationID, err)
	}
	return app, nil
}

func (s *MessageService) sendWhatsApp(ctx context.Context, app *ent.Application, cand *ent.Candidate, msgType message.MessageType, vars map[string]string) {
	if s.whatsapp == nil || !s.whatsapp.Configured() {
		s.logger.Warn("whatsapp not configured, skipping send", "application_id", app.ID)
		return
	}
	phone := cand.WhatsappNumber
	if phone == "" {
		phone = cand.Phone
	}
	if phone == "" {
		s.logger.Warn("candidate has no phone, skipping whatsapp send", "application_id", app.ID)
		return
	}

	tpl, err := s.templates.Resolve(ctx, messagetemplate.MessageType(msgType), messagetemplate.ChannelWhatsapp, vars)
	if err != nil {
		s.logger.Error("template resolution failed", "application_id", app.ID, "type", msgType, "error", err)
		return
	}

	s.record(ctx, app.ID, message.ChannelWhatsapp, msgType, phone, tpl.Body, func() (string, error) {
		return s.whatsapp.SendText(ctx, phone, tpl.Body)
	})
}

func (s *MessageService) sendEmail(ctx context.Context, app *ent.Application, cand *ent.Candidate, msgType message.MessageType, vars map[string]string) {
	if s.email == nil || !s.email.Configured() {
		s.logger.Warn("email not configured, skipping send", "application_id", app.ID)
		return
	}
	if cand.Email == "" {
		s.logger.Warn("candidate has no email, skipping email send", "application_id", app.ID)
		return
	}

	tpl, err := s.templates.Resolve(ctx, messagetemplate.MessageType(msgType), messagetemplate.ChannelEmail, vars)
	if err != nil {
		s.logger.Error("template resolution failed", "application_id", app.ID, "type", msgType, "error", err)
		return
	}

	s.record(ctx, app.ID, message.ChannelEmail, msgType, cand.Email, tpl.Body, func() (string, error) {
		return s.email.Send(ctx, cand.Email, tpl.Subject, tpl.Body)
	})
}

// record persists the attempt around the actual send: a pending row first,
// then sent with the provider id or failed with the error detail.
func (s *MessageService) record(ctx context.Context, applicationID int, channel message.Channel, msgType message.MessageType, recipient, body string, send func() (string, error)) {
	row, err := s.client.Message.Create().
		SetApplicationID(applicationID).
		SetChannel(channel).
		SetMessageType(msgType).
		SetRecipient(recipient).
		SetBody(body).
		Save(ctx)
	if err != nil {
		s.logger.Error("failed to record message", "application_id", applicationID, "error", err)
		return
	}

	externalID, err := send()
	if err != nil {
		s.logger.Error("send failed",
			"application_id", applicationID,
			"channel", channel,
			"type", msgType,
			"error", err,
		)
		if _, uerr := row.Update().
			SetStatus(message.StatusFailed).
			SetErrorDetail(err.Error()).
			Save(ctx); uerr != nil {
			s.logger.Error("failed to mark message failed", "message_id", row.ID, "error", uerr)
		}
		return
	}

	update := row.Update().
		SetStatus(message.StatusSent).
		SetSentAt(time.Now().UTC())
	if externalID != "" {
		update.SetExternalID(externalID)
	}
	if _, err := update.Save(ctx); err != nil {
		s.logger.Error("failed to mark message sent", "message_id", row.ID, "error", err)
	}
}
