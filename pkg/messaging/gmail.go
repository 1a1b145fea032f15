package messaging

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/recruitflow/recruitflow/pkg/config"
)

// GmailSender sends outbound mail and polls the CV inbox over the Gmail API
// with a long-lived OAuth refresh token.
type GmailSender struct {
	svc              *gmail.Service
	cfg              config.GmailConfig
	processedLabelID string
	logger           *slog.Logger
}

// EmailAttachment is one file attached to an inbound email.
type EmailAttachment struct {
	Filename string
	Data     []byte
}

// InboundEmail is one unread message from the CV inbox.
type InboundEmail struct {
	ID          string
	From        string
	Subject     string
	Body        string
	Attachments []EmailAttachment
}

// NewGmailSender builds the Gmail service. Returns nil without error when
// the mail credentials are absent; callers treat a nil sender as disabled.
func NewGmailSender(ctx context.Context, cfg config.GmailConfig) (*GmailSender, error) {
	if !cfg.Configured() {
		return nil, nil
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailModifyScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to build gmail service: %w", err)
	}
	return &GmailSender{
		svc:    svc,
		cfg:    cfg,
		logger: slog.Default().With("component", "gmail"),
	}, nil
}

// Configured reports whether the sender is usable.
func (s *GmailSender) Configured() bool {
	return s != nil && s.svc != nil
}

// Send delivers one plain-text email and returns the Gmail message id.
func (s *GmailSender) Send(ctx context.Context, to, subject, body string) (string, error) {
	var mime strings.Builder
	fmt.Fprintf(&mime, "From: %s\r\n", s.cfg.Sender)
	fmt.Fprintf(&mime, "To: %s\r\n", to)
	fmt.Fprintf(&mime, "Subject: %s\r\n", subject)
	mime.WriteString("MIME-Version: 1.0\r\n")
	mime.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	mime.WriteString("\r\n")
	mime.WriteString(body)

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(mime.String()))}
	sent, err := s.svc.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail send: %w", err)
	}
	return sent.Id, nil
}

// ListUnread fetches every unread message in the configured inbox label,
// with bodies decoded and attachments downloaded.
func (s *GmailSender) ListUnread(ctx context.Context) ([]InboundEmail, error) {
	call := s.svc.Users.Messages.List("me").Q("is:unread").Context(ctx)
	if s.cfg.InboxLabel != "" {
		call = call.LabelIds(s.cfg.InboxLabel)
	}
	listed, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("gmail list: %w", err)
	}

	emails := make([]InboundEmail, 0, len(listed.Messages))
	for _, ref := range listed.Messages {
		email, err := s.fetch(ctx, ref.Id)
		if err != nil {
			s.logger.Error("failed to fetch message", "message_id", ref.Id, "error", err)
			continue
		}
		emails = append(emails, *email)
	}
	return emails, nil
}

func (s *GmailSender) fetch(ctx context.Context, id string) (*InboundEmail, error) {
	msg, err := s.svc.Users.Messages.Get("me", id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gmail get: %w", err)
	}

	email := &InboundEmail{ID: id}
	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "From":
			email.From = h.Value
		case "Subject":
			email.Subject = h.Value
		}
	}

	s.walkParts(ctx, id, msg.Payload, email)
	return email, nil
}

// walkParts collects the first text/plain body and every named attachment.
func (s *GmailSender) walkParts(ctx context.Context, messageID string, part *gmail.MessagePart, email *InboundEmail) {
	if part == nil {
		return
	}

	if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
		att, err := s.svc.Users.Messages.Attachments.Get("me", messageID, part.Body.AttachmentId).Context(ctx).Do()
		if err != nil {
			s.logger.Error("failed to fetch attachment", "message_id", messageID, "filename", part.Filename, "error", err)
		} else if data, err := decodeBase64URL(att.Data); err == nil {
			email.Attachments = append(email.Attachments, EmailAttachment{Filename: part.Filename, Data: data})
		}
	}

	if email.Body == "" && strings.HasPrefix(part.MimeType, "text/plain") && part.Body != nil && part.Body.Data != "" {
		if data, err := decodeBase64URL(part.Body.Data); err == nil {
			email.Body = string(data)
		}
	}

	for _, child := range part.Parts {
		s.walkParts(ctx, messageID, child, email)
	}
}

// MarkProcessed clears UNREAD and applies the processed label so the next
// poll skips the message.
func (s *GmailSender) MarkProcessed(ctx context.Context, messageID string) error {
	labelID, err := s.ensureProcessedLabel(ctx)
	if err != nil {
		return err
	}

	mod := &gmail.ModifyMessageRequest{RemoveLabelIds: []string{"UNREAD"}}
	if labelID != "" {
		mod.AddLabelIds = []string{labelID}
	}
	if _, err := s.svc.Users.Messages.Modify("me", messageID, mod).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail modify: %w", err)
	}
	return nil
}

func (s *GmailSender) ensureProcessedLabel(ctx context.Context) (string, error) {
	if s.cfg.ProcessedLabel == "" {
		return "", nil
	}
	if s.processedLabelID != "" {
		return s.processedLabelID, nil
	}

	labels, err := s.svc.Users.Labels.List("me").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail labels: %w", err)
	}
	for _, l := range labels.Labels {
		if l.Name == s.cfg.ProcessedLabel {
			s.processedLabelID = l.Id
			return l.Id, nil
		}
	}

	created, err := s.svc.Users.Labels.Create("me", &gmail.Label{Name: s.cfg.ProcessedLabel}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail create label: %w", err)
	}
	s.processedLabelID = created.Id
	return created.Id, nil
}

// decodeBase64URL tolerates both padded and unpadded gmail body encodings.
func decodeBase64URL(s string) ([]byte, error) {
	if data, err := base64.URLEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.RawURLEncoding.DecodeString(s)
}
