package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

// InboundReply is one inbound text message before persistence.
type InboundReply struct {
	Channel    candidatereply.Channel
	Sender     string // phone/WhatsApp id or email address
	Subject    string
	Body       string
	ExternalID string
}

// ReplyService persists inbound candidate messages and threads them onto
// the sender's most recent application.
type ReplyService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewReplyService creates a new ReplyService.
func NewReplyService(client *ent.Client) *ReplyService {
	return &ReplyService{
		client: client,
		logger: slog.Default().With("service", "replies"),
	}
}

// Record stores an inbound message. The sender is resolved to a candidate
// (by phone digits for WhatsApp, by email otherwise); when resolution
// succeeds the reply also links to the candidate's most recent application.
// An unresolvable sender still produces a row so nothing inbound is lost.
func (s *ReplyService) Record(ctx context.Context, in InboundReply) (*ent.CandidateReply, error) {
	if in.Body == "" {
		return nil, NewValidationError("body", "required")
	}

	create := s.client.CandidateReply.Create().
		SetChannel(in.Channel).
		SetSender(in.Sender).
		SetSubject(in.Subject).
		SetBody(in.Body).
		SetExternalID(in.ExternalID)

	cand, err := s.resolveSender(ctx, in.Channel, in.Sender)
	if err != nil {
		return nil, err
	}
	if cand != nil {
		create.SetCandidateID(cand.ID)
		app, err := s.client.Application.Query().
			Where(application.CandidateIDEQ(cand.ID)).
			Order(ent.Desc(application.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to find latest application: %w", err)
		}
		if app != nil {
			create.SetApplicationID(app.ID)
		}
	} else {
		s.logger.Info("inbound reply from unknown sender", "channel", in.Channel, "sender", in.Sender)
	}

	reply, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save reply: %w", err)
	}
	return reply, nil
}

// MarkRead flags a reply as read.
func (s *ReplyService) MarkRead(ctx context.Context, replyID int) error {
	err := s.client.CandidateReply.UpdateOneID(replyID).
		SetIsRead(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark reply read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread replies.
func (s *ReplyService) UnreadCount(ctx context.Context) (int, error) {
	return s.client.CandidateReply.Query().
		Where(candidatereply.IsRead(false)).
		Count(ctx)
}

// ResolveByPhone finds the candidate whose phone or WhatsApp number matches
// the sender, using digit normalization with bidirectional suffix matching.
func (s *ReplyService) ResolveByPhone(ctx context.Context, sender string) (*ent.Candidate, error) {
	digits := textutil.PhoneDigits(sender)
	if len(digits) < 7 {
		return nil, nil
	}

	// Candidate volumes are modest; suffix matching with country-code
	// variants does not map onto an index anyway.
	cands, err := s.client.Candidate.Query().
		Where(candidate.Or(
			candidate.PhoneNEQ(""),
			candidate.WhatsappNumberNEQ(""),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	for _, c := range cands {
		if textutil.PhoneMatch(sender, c.Phone) || textutil.PhoneMatch(sender, c.WhatsappNumber) {
			return c, nil
		}
	}
	return nil, nil
}

func (s *ReplyService) resolveSender(ctx context.Context, channel candidatereply.Channel, sender string) (*ent.Candidate, error) {
	if channel == candidatereply.ChannelWhatsapp {
		return s.ResolveByPhone(ctx, sender)
	}

	email := strings.ToLower(strings.TrimSpace(sender))
	if email == "" {
		return nil, nil
	}
	cand, err := s.client.Candidate.Query().
		Where(candidate.EmailEqualFold(email)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query candidate by email: %w", err)
	}
	return cand, nil
}
