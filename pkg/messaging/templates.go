package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

// Template is a resolved outbound message body. Subject is empty on
// WhatsApp.
type Template struct {
	Subject string
	Body    string
}

// Built-in fallbacks, used when no MessageTemplate row overrides the pair.
// The CV request embeds the application reference so inbound replies can be
// matched by id.
var defaultTemplates = map[string]Template{
	"cv_request/whatsapp": {
		Body: "Hi {candidate_first_name}! Good news: you made it to the next step for {position_title}. Please reply with your CV as a PDF or Word document. Your reference: #{application_pk}",
	},
	"cv_request/email": {
		Subject: "Next step for {position_title}: please send your CV",
		Body:    "Hi {candidate_first_name},\n\nGood news: you made it to the next step for {position_title}. Please reply to this email with your CV attached.\n\nYour reference: #{application_pk}\n\nBest regards,\nThe recruiting team",
	},
	"cv_request_rejected/whatsapp": {
		Body: "Hi {candidate_first_name}, thank you for taking the time to talk about {position_title}. To complete your file for future openings, please send us your CV. Reference: #{application_pk}",
	},
	"cv_followup_1/whatsapp": {
		Body: "Hi {candidate_first_name}, a quick reminder: we are still waiting for your CV for {position_title}. Reference: #{application_pk}",
	},
	"cv_followup_1/email": {
		Subject: "Reminder: your CV for {position_title}",
		Body:    "Hi {candidate_first_name},\n\nA quick reminder that we are still waiting for your CV for {position_title}.\n\nYour reference: #{application_pk}\n\nBest regards,\nThe recruiting team",
	},
	"cv_followup_2/whatsapp": {
		Body: "Hi {candidate_first_name}, last reminder: please send your CV for {position_title} so we can move forward. Reference: #{application_pk}",
	},
	"cv_followup_2/email": {
		Subject: "Last reminder: your CV for {position_title}",
		Body:    "Hi {candidate_first_name},\n\nThis is our last reminder: please send your CV for {position_title} so we can move forward with your application.\n\nYour reference: #{application_pk}\n\nBest regards,\nThe recruiting team",
	},
}

// TemplateService resolves message templates, preferring DB overrides over
// the built-in defaults.
type TemplateService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewTemplateService creates a TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{
		client: client,
		logger: slog.Default().With("service", "templates"),
	}
}

// Resolve returns the template for a (message type, channel) pair with the
// placeholder vars substituted.
func (s *TemplateService) Resolve(ctx context.Context, msgType messagetemplate.MessageType, channel messagetemplate.Channel, vars map[string]string) (Template, error) {
	tpl, err := s.lookup(ctx, msgType, channel)
	if err != nil {
		return Template{}, err
	}
	return Template{
		Subject: textutil.RenderTemplate(tpl.Subject, vars),
		Body:    textutil.RenderTemplate(tpl.Body, vars),
	}, nil
}

func (s *TemplateService) lookup(ctx context.Context, msgType messagetemplate.MessageType, channel messagetemplate.Channel) (Template, error) {
	row, err := s.client.MessageTemplate.Query().
		Where(
			messagetemplate.MessageTypeEQ(msgType),
			messagetemplate.ChannelEQ(channel),
		).
		Only(ctx)
	if err == nil {
		return Template{Subject: row.Subject, Body: row.Body}, nil
	}
	if !ent.IsNotFound(err) {
		return Template{}, fmt.Errorf("failed to query template: %w", err)
	}

	if tpl, ok := defaultTemplates[string(msgType)+"/"+string(channel)]; ok {
		return tpl, nil
	}
	return Template{}, fmt.Errorf("no template for %s/%s", msgType, channel)
}
