package cvmatch

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
	"github.com/recruitflow/recruitflow/pkg/llm"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

const (
	fuzzyThreshold  = 0.80
	minFuzzyNameLen = 3
	snippetLen      = 500
)

// referencePattern finds an application id quoted back to us in a subject or
// body ("ref 123", "application #123", "id: 123").
var referencePattern = regexp.MustCompile(`(?i)(?:app(?:lication)?[\s#\-]*(?:id)?|ref(?:erence)?|#|id)\s*[:#\-]?\s*(\d+)`)

// displayNamePattern captures the display name in `"Ada Lovelace" <ada@x>`.
var displayNamePattern = regexp.MustCompile(`^([^<@\n]+?)\s*<[^>]+>`)

// PhoneResolver matches a raw sender to a candidate by phone digits.
// Implemented by *services.ReplyService.
type PhoneResolver interface {
	ResolveByPhone(ctx context.Context, sender string) (*ent.Candidate, error)
}

// ContactExtractor pulls contact details out of CV text. Implemented by
// *llm.Client; nil disables content matching.
type ContactExtractor interface {
	ExtractContact(ctx context.Context, cvText string) (*llm.Contact, error)
}

// Inbound is one document arriving from any channel.
type Inbound struct {
	Channel    unmatchedinbound.Channel
	Sender     string
	Subject    string
	Body       string
	Filename   string
	Data       []byte
	RawPayload map[string]interface{}
}

// MatchResult reports what the cascade did with a document.
type MatchResult struct {
	Matched   bool
	Candidate *ent.Candidate
	Uploads   []*ent.CVUpload
	Method    cvupload.MatchMethod
	Unmatched *ent.UnmatchedInbound
	FilePath  string
}

// Matcher runs the cascade.
type Matcher struct {
	client    *ent.Client
	apps      *services.ApplicationService
	phones    PhoneResolver
	extractor ContactExtractor
	store     *FileStore
	logger    *slog.Logger
}

// NewMatcher creates a Matcher. extractor may be nil when no LLM is
// configured; the content-matching priority is then skipped.
func NewMatcher(client *ent.Client, apps *services.ApplicationService, phones PhoneResolver, extractor ContactExtractor, store *FileStore) *Matcher {
	return &Matcher{
		client:    client,
		apps:      apps,
		phones:    phones,
		extractor: extractor,
		store:     store,
		logger:    slog.Default().With("component", "cvmatch"),
	}
}

// ProcessInbound stores the document and attaches it to every awaiting
// application of the matched candidate, or files it as unmatched. Each
// priority only wins when the matched candidate actually has awaiting
// applications; a candidate match with nothing to advance falls through.
func (m *Matcher) ProcessInbound(ctx context.Context, in Inbound) (*MatchResult, error) {
	path, err := m.store.Save(in.Filename, in.Data)
	if err != nil {
		return nil, err
	}

	type attempt struct {
		method cvupload.MatchMethod
		find   func() (*ent.Candidate, error)
	}
	attempts := []attempt{
		{cvupload.MatchMethodExactEmail, func() (*ent.Candidate, error) { return m.byEmail(ctx, in.Sender) }},
		{cvupload.MatchMethodExactPhone, func() (*ent.Candidate, error) { return m.phones.ResolveByPhone(ctx, in.Sender) }},
		{cvupload.MatchMethodSubjectID, func() (*ent.Candidate, error) { return m.byReference(ctx, in.Subject, in.Body) }},
		{cvupload.MatchMethodFuzzyName, func() (*ent.Candidate, error) { return m.byFuzzyName(ctx, in.Sender) }},
		{cvupload.MatchMethodCvContent, func() (*ent.Candidate, error) { return m.byContent(ctx, in.Filename, in.Data) }},
	}

	for _, a := range attempts {
		cand, err := a.find()
		if err != nil {
			m.logger.Error("match attempt failed", "method", a.method, "error", err)
			continue
		}
		if cand == nil {
			continue
		}
		apps, err := m.awaitingApps(ctx, cand.ID)
		if err != nil {
			return nil, err
		}
		if len(apps) == 0 {
			// Candidate matched but has nothing to advance.
			continue
		}

		uploads, err := m.attach(ctx, cand, apps, in, path, a.method)
		if err != nil {
			return nil, err
		}
		m.logger.Info("CV matched",
			"candidate_id", cand.ID,
			"method", a.method,
			"applications", len(apps),
		)
		return &MatchResult{
			Matched:   true,
			Candidate: cand,
			Uploads:   uploads,
			Method:    a.method,
			FilePath:  path,
		}, nil
	}

	unmatched, err := m.fileUnmatched(ctx, in, path)
	if err != nil {
		return nil, err
	}
	return &MatchResult{Unmatched: unmatched, FilePath: path}, nil
}

func (m *Matcher) byEmail(ctx context.Context, sender string) (*ent.Candidate, error) {
	addr := senderAddress(sender)
	if addr == "" {
		return nil, nil
	}
	cand, err := m.client.Candidate.Query().
		Where(
			candidate.EmailNEQ(""),
			candidate.EmailEqualFold(addr),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query candidate by email: %w", err)
	}
	return cand, nil
}

func (m *Matcher) byReference(ctx context.Context, subject, body string) (*ent.Candidate, error) {
	for _, text := range []string{subject, body} {
		match := referencePattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		id, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		app, err := m.client.Application.Query().
			Where(application.IDEQ(id)).
			WithCandidate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load referenced application: %w", err)
		}
		return app.Edges.Candidate, nil
	}
	return nil, nil
}

func (m *Matcher) byFuzzyName(ctx context.Context, sender string) (*ent.Candidate, error) {
	match := displayNamePattern.FindStringSubmatch(sender)
	if match == nil {
		return nil, nil
	}
	name := strings.Trim(strings.TrimSpace(match[1]), `"'`)
	if len([]rune(name)) < minFuzzyNameLen {
		return nil, nil
	}

	pool, err := m.awaitingPool(ctx)
	if err != nil {
		return nil, err
	}
	return bestNameMatch(name, pool), nil
}

func (m *Matcher) byContent(ctx context.Context, filename string, data []byte) (*ent.Candidate, error) {
	if m.extractor == nil {
		return nil, nil
	}
	text, err := ExtractText(filename, data)
	if err != nil || strings.TrimSpace(text) == "" {
		return nil, err
	}
	contact, err := m.extractor.ExtractContact(ctx, text)
	if err != nil {
		return nil, err
	}

	pool, err := m.awaitingPool(ctx)
	if err != nil {
		return nil, err
	}

	if contact.Email != "" {
		for _, c := range pool {
			if strings.EqualFold(c.Email, contact.Email) {
				return c, nil
			}
		}
	}
	if contact.Phone != "" {
		for _, c := range pool {
			if textutil.PhoneMatch(contact.Phone, c.Phone) || textutil.PhoneMatch(contact.Phone, c.WhatsappNumber) {
				return c, nil
			}
		}
	}
	name := strings.TrimSpace(textutil.FullName(contact.FirstName, contact.LastName))
	if len([]rune(name)) >= minFuzzyNameLen {
		return bestNameMatch(name, pool), nil
	}
	return nil, nil
}

// bestNameMatch picks the single best candidate strictly above the fuzzy
// threshold.
func bestNameMatch(name string, pool []*ent.Candidate) *ent.Candidate {
	var best *ent.Candidate
	bestRatio := fuzzyThreshold
	for _, c := range pool {
		ratio := textutil.NameSimilarity(name, textutil.FullName(c.FirstName, c.LastName))
		if ratio > bestRatio {
			best = c
			bestRatio = ratio
		}
	}
	return best
}

// awaitingPool returns every candidate with at least one awaiting-CV
// application.
func (m *Matcher) awaitingPool(ctx context.Context) ([]*ent.Candidate, error) {
	pool, err := m.client.Candidate.Query().
		Where(candidate.HasApplicationsWith(
			application.StatusIn(services.AwaitingCVStatuses...),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query awaiting pool: %w", err)
	}
	return pool, nil
}

func (m *Matcher) awaitingApps(ctx context.Context, candidateID int) ([]*ent.Application, error) {
	apps, err := m.client.Application.Query().
		Where(
			application.CandidateIDEQ(candidateID),
			application.StatusIn(services.AwaitingCVStatuses...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query awaiting applications: %w", err)
	}
	return apps, nil
}

// attach fans the stored file out to every awaiting application in one
// transaction: a CVUpload per application, all sharing the path, plus the
// CV-received transition with a single shared timestamp.
func (m *Matcher) attach(ctx context.Context, cand *ent.Candidate, apps []*ent.Application, in Inbound, path string, method cvupload.MatchMethod) ([]*ent.CVUpload, error) {
	confidence := cvupload.MatchConfidenceHigh
	needsReview := false
	if method == cvupload.MatchMethodFuzzyName || method == cvupload.MatchMethodCvContent {
		confidence = cvupload.MatchConfidenceMedium
		needsReview = true
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	uploads := make([]*ent.CVUpload, 0, len(apps))
	for _, app := range apps {
		locked, err := tx.Application.Query().
			Where(application.IDEQ(app.ID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to lock application %d: %w", app.ID, err)
		}

		upload, err := tx.CVUpload.Create().
			SetCandidateID(cand.ID).
			SetApplicationID(app.ID).
			SetFilePath(path).
			SetOriginalFilename(in.Filename).
			SetSource(cvupload.Source(in.Channel)).
			SetMatchMethod(method).
			SetMatchConfidence(confidence).
			SetNeedsReview(needsReview).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create CV upload: %w", err)
		}
		uploads = append(uploads, upload)

		if _, err := m.apps.TransitionTx(ctx, tx, locked, services.CVReceivedTarget(locked.Status), services.TransitionOptions{
			Note: fmt.Sprintf("CV received via %s (%s)", in.Channel, method),
			Mutate: func(u *ent.ApplicationUpdateOne) {
				u.SetCvReceivedAt(now)
			},
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	m.apps.InvalidateCounts(ctx)
	return uploads, nil
}

func (m *Matcher) fileUnmatched(ctx context.Context, in Inbound, path string) (*ent.UnmatchedInbound, error) {
	create := m.client.UnmatchedInbound.Create().
		SetChannel(in.Channel).
		SetSender(in.Sender).
		SetSubject(in.Subject).
		SetBodySnippet(textutil.Truncate(in.Body, snippetLen)).
		SetFilePath(path).
		SetOriginalFilename(in.Filename)
	if in.RawPayload != nil {
		create.SetRawPayload(in.RawPayload)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to file unmatched inbound: %w", err)
	}
	m.logger.Info("CV filed as unmatched", "unmatched_id", row.ID, "sender", in.Sender)
	return row, nil
}

// senderAddress extracts the bare address from a From header; a raw address
// passes through unchanged.
func senderAddress(sender string) string {
	if parsed, err := mail.ParseAddress(sender); err == nil {
		return parsed.Address
	}
	if strings.Contains(sender, "@") && !strings.ContainsAny(sender, "<> ") {
		return sender
	}
	return ""
}
