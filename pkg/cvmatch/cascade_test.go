package cvmatch

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
	"github.com/recruitflow/recruitflow/pkg/llm"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/test/util"
)

type fakeExtractor struct {
	contact *llm.Contact
	err     error
	calls   int
}

func (f *fakeExtractor) ExtractContact(_ context.Context, _ string) (*llm.Contact, error) {
	f.calls++
	return f.contact, f.err
}

func testMatcher(t *testing.T, client *ent.Client, extractor ContactExtractor) *Matcher {
	t.Helper()
	apps := services.NewApplicationService(client, nil)
	return NewMatcher(client, apps, services.NewReplyService(client), extractor, NewFileStore(t.TempDir()))
}

// seedAwaiting creates a candidate with n applications in the given status.
func seedAwaiting(t *testing.T, client *ent.Client, email, phone string, status application.Status, n int) (*ent.Candidate, []*ent.Application) {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Ana").
		SetLastName("Martinez").
		SetEmail(email).
		SetPhone(phone).
		Save(ctx)
	require.NoError(t, err)

	apps := make([]*ent.Application, 0, n)
	for i := 0; i < n; i++ {
		pos, err := client.Position.Create().
			SetTitle(fmt.Sprintf("Role %d", i+1)).
			Save(ctx)
		require.NoError(t, err)

		app, err := client.Application.Create().
			SetCandidateID(cand.ID).
			SetPositionID(pos.ID).
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
		apps = append(apps, app)
	}
	return cand, apps
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cv.pdf", "cv.pdf"},
		{"my résumé (final).pdf", "my_r_sum___final_.pdf"},
		{"../../etc/passwd", "passwd"},
		{"", "upload"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in))
	}
}

func TestProcessInbound_ExactEmailFanOut(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	cand, apps := seedAwaiting(t, client, "ana@example.com", "+34600111222", application.StatusAwaitingCv, 2)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   `"Ana Martinez" <ana@example.com>`,
		Subject:  "My CV",
		Filename: "ana-cv.pdf",
		Data:     []byte("plain text cv"),
	})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, cand.ID, res.Candidate.ID)
	assert.Equal(t, cvupload.MatchMethodExactEmail, res.Method)
	require.Len(t, res.Uploads, 2)

	// One upload per application, all sharing the stored file.
	assert.Equal(t, res.Uploads[0].FilePath, res.Uploads[1].FilePath)
	for _, up := range res.Uploads {
		assert.Equal(t, cvupload.MatchConfidenceHigh, up.MatchConfidence)
		assert.False(t, up.NeedsReview)
	}

	// Both applications advanced with the same received timestamp.
	a0, err := client.Application.Get(ctx, apps[0].ID)
	require.NoError(t, err)
	a1, err := client.Application.Get(ctx, apps[1].ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvReceived, a0.Status)
	assert.Equal(t, application.StatusCvReceived, a1.Status)
	require.NotNil(t, a0.CvReceivedAt)
	require.NotNil(t, a1.CvReceivedAt)
	assert.Equal(t, a0.CvReceivedAt.UnixNano(), a1.CvReceivedAt.UnixNano())

	// The file really exists on disk.
	_, err = os.Stat(res.FilePath)
	assert.NoError(t, err)
}

func TestProcessInbound_RejectedBranch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	_, apps := seedAwaiting(t, client, "ana@example.com", "", application.StatusAwaitingCvRejected, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   "ana@example.com",
		Filename: "cv.pdf",
		Data:     []byte("cv"),
	})
	require.NoError(t, err)
	require.True(t, res.Matched)

	refreshed, err := client.Application.Get(ctx, apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvReceivedRejected, refreshed.Status)
}

func TestProcessInbound_PhoneSuffix(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	cand, _ := seedAwaiting(t, client, "", "+34600111222", application.StatusCvFollowup1, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelWhatsapp,
		Sender:   "34600111222@s.whatsapp.net",
		Filename: "cv.pdf",
		Data:     []byte("cv"),
	})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, cand.ID, res.Candidate.ID)
	assert.Equal(t, cvupload.MatchMethodExactPhone, res.Method)
	assert.Equal(t, cvupload.SourceWhatsapp, res.Uploads[0].Source)
}

func TestProcessInbound_ReferenceInSubject(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	cand, apps := seedAwaiting(t, client, "private@example.com", "", application.StatusCvOverdue, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   "someone-else@example.com",
		Subject:  fmt.Sprintf("CV for application #%d", apps[0].ID),
		Filename: "cv.pdf",
		Data:     []byte("cv"),
	})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, cand.ID, res.Candidate.ID)
	assert.Equal(t, cvupload.MatchMethodSubjectID, res.Method)
}

func TestProcessInbound_FuzzyName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	cand, _ := seedAwaiting(t, client, "work@example.com", "", application.StatusAwaitingCv, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   `"Ana Martinez" <personal@gmail.example>`,
		Filename: "cv.pdf",
		Data:     []byte("cv"),
	})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, cand.ID, res.Candidate.ID)
	assert.Equal(t, cvupload.MatchMethodFuzzyName, res.Method)
	assert.Equal(t, cvupload.MatchConfidenceMedium, res.Uploads[0].MatchConfidence)
	assert.True(t, res.Uploads[0].NeedsReview)
}

func TestProcessInbound_ContentExtraction(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	extractor := &fakeExtractor{contact: &llm.Contact{Email: "ana@example.com"}}
	m := testMatcher(t, client, extractor)
	cand, _ := seedAwaiting(t, client, "ana@example.com", "", application.StatusAwaitingCv, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   "forwarded-by@agency.example",
		Filename: "cv.txt",
		Data:     []byte("Ana Martinez, ana@example.com, 5 years of Go"),
	})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, cand.ID, res.Candidate.ID)
	assert.Equal(t, cvupload.MatchMethodCvContent, res.Method)
	assert.True(t, res.Uploads[0].NeedsReview)
	assert.Equal(t, 1, extractor.calls)
}

func TestProcessInbound_MatchWithoutAwaitingAppsFallsThrough(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	// Candidate matches by email but has no awaiting application.
	seedAwaiting(t, client, "ana@example.com", "", application.StatusQualified, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   "ana@example.com",
		Subject:  "My CV",
		Body:     "Please find my CV attached.",
		Filename: "cv.pdf",
		Data:     []byte("cv"),
	})
	require.NoError(t, err)
	assert.False(t, res.Matched)
	require.NotNil(t, res.Unmatched)
	assert.Equal(t, "ana@example.com", res.Unmatched.Sender)
	assert.Equal(t, "Please find my CV attached.", res.Unmatched.BodySnippet)

	n, err := client.CVUpload.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestManualAttach(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	_, apps := seedAwaiting(t, client, "ana@example.com", "", application.StatusAwaitingCv, 1)

	upload, err := m.ManualAttach(ctx, apps[0].ID, "cv.pdf", []byte("cv"))
	require.NoError(t, err)
	assert.Equal(t, cvupload.MatchMethodManual, upload.MatchMethod)
	assert.Equal(t, cvupload.SourceManual, upload.Source)
	assert.False(t, upload.NeedsReview)

	refreshed, err := client.Application.Get(ctx, apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvReceived, refreshed.Status)
}

func TestManualAttach_FansOutToAwaitingSiblings(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	_, apps := seedAwaiting(t, client, "ana@example.com", "", application.StatusAwaitingCv, 2)
	sibling := apps[1]

	// The anchor application has already left the pipeline.
	anchor, err := client.Application.UpdateOneID(apps[0].ID).
		SetStatus(application.StatusClosed).
		Save(ctx)
	require.NoError(t, err)

	upload, err := m.ManualAttach(ctx, anchor.ID, "cv.pdf", []byte("cv"))
	require.NoError(t, err)
	assert.Equal(t, anchor.ID, upload.ApplicationID)

	// The anchor keeps its status but still carries the upload row.
	refreshed, err := client.Application.Get(ctx, anchor.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusClosed, refreshed.Status)
	assert.Nil(t, refreshed.CvReceivedAt)

	// The awaiting sibling advances like an inbound match.
	advanced, err := client.Application.Get(ctx, sibling.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvReceived, advanced.Status)
	require.NotNil(t, advanced.CvReceivedAt)

	n, err := client.CVUpload.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestManualAttach_NoAwaitingAppsKeepsStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	_, apps := seedAwaiting(t, client, "ana@example.com", "", application.StatusQualified, 1)

	upload, err := m.ManualAttach(ctx, apps[0].ID, "cv.pdf", []byte("cv"))
	require.NoError(t, err)
	assert.Equal(t, apps[0].ID, upload.ApplicationID)

	refreshed, err := client.Application.Get(ctx, apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusQualified, refreshed.Status)
	assert.Nil(t, refreshed.CvReceivedAt)
}

func TestResolveUnmatched(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	m := testMatcher(t, client, nil)
	_, apps := seedAwaiting(t, client, "", "", application.StatusAwaitingCv, 1)

	res, err := m.ProcessInbound(ctx, Inbound{
		Channel:  unmatchedinbound.ChannelEmail,
		Sender:   "mystery@example.com",
		Filename: "cv.pdf",
		Data:     []byte("cv"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Unmatched)

	upload, err := m.ResolveUnmatched(ctx, res.Unmatched.ID, apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, res.FilePath, upload.FilePath)

	row, err := client.UnmatchedInbound.Get(ctx, res.Unmatched.ID)
	require.NoError(t, err)
	assert.True(t, row.Resolved)
	require.NotNil(t, row.ResolvedApplicationID)
	assert.Equal(t, apps[0].ID, *row.ResolvedApplicationID)

	// Resolving twice fails: the entry is closed.
	_, err = m.ResolveUnmatched(ctx, res.Unmatched.ID, apps[0].ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
