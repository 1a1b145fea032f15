package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/cvmatch"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
	testdb "github.com/recruitflow/recruitflow/test/database"
)

const testWhapiToken = "whapi_test_token"

type fakeDownloader struct {
	data []byte
	urls []string
}

func (f *fakeDownloader) DownloadMedia(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.data, nil
}

type whatsappFixture struct {
	router     *gin.Engine
	client     *ent.Client
	downloader *fakeDownloader
}

func newWhatsAppFixture(t *testing.T) *whatsappFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbc := testdb.NewTestClient(t)
	client := dbc.Client
	apps := services.NewApplicationService(client, nil)
	replies := services.NewReplyService(client)
	matcher := cvmatch.NewMatcher(client, apps, replies, nil, cvmatch.NewFileStore(t.TempDir()))
	downloader := &fakeDownloader{data: []byte("cv bytes")}

	cfg := &config.Config{
		Environment: "development",
		Whapi:       config.WhapiConfig{WebhookToken: testWhapiToken},
	}
	srv := NewServer(
		dbc,
		cfg,
		voiceagent.NewReducer(client, apps),
		nil,
		matcher,
		replies,
		downloader,
	)
	return &whatsappFixture{router: srv.Routes(), client: client, downloader: downloader}
}

func postWhatsApp(router *gin.Engine, payload map[string]interface{}, header, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set(header, token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedWhatsAppCandidate(t *testing.T, client *ent.Client, status application.Status) *ent.Application {
	t.Helper()
	ctx := context.Background()

	cand, err := client.Candidate.Create().
		SetFirstName("Grace").
		SetLastName("Hopper").
		SetPhone("+4915110000001").
		Save(ctx)
	require.NoError(t, err)
	pos, err := client.Position.Create().SetTitle("Platform Engineer").Save(ctx)
	require.NoError(t, err)
	app, err := client.Application.Create().
		SetCandidateID(cand.ID).
		SetPositionID(pos.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return app
}

func textMessage(sender, body string) map[string]interface{} {
	return map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{
				"id":   "wamid.in.1",
				"from": sender,
				"type": "text",
				"text": map[string]interface{}{"body": body},
			},
		},
	}
}

func TestWhatsAppWebhook_TokenCheck(t *testing.T) {
	f := newWhatsAppFixture(t)
	payload := textMessage("4915110000001@s.whatsapp.net", "hello")

	w := postWhatsApp(f.router, payload, "X-Whapi-Token", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postWhatsApp(f.router, payload, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Both header forms are accepted.
	w = postWhatsApp(f.router, payload, "X-Whapi-Token", testWhapiToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w = postWhatsApp(f.router, payload, "Authorization", "Bearer "+testWhapiToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWhatsAppWebhook_TextBecomesReply(t *testing.T) {
	f := newWhatsAppFixture(t)
	app := seedWhatsAppCandidate(t, f.client, application.StatusAwaitingCv)

	w := postWhatsApp(f.router, textMessage("4915110000001@s.whatsapp.net", "Sending my CV tonight"),
		"X-Whapi-Token", testWhapiToken)
	require.Equal(t, http.StatusOK, w.Code)

	reply, err := f.client.CandidateReply.Query().
		Where(candidatereply.ExternalID("wamid.in.1")).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sending my CV tonight", reply.Body)
	require.NotNil(t, reply.ApplicationID)
	assert.Equal(t, app.ID, *reply.ApplicationID)
}

func TestWhatsAppWebhook_SelfEchoSkipped(t *testing.T) {
	f := newWhatsAppFixture(t)
	seedWhatsAppCandidate(t, f.client, application.StatusAwaitingCv)

	payload := map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{
				"id":      "wamid.out.1",
				"from":    "4915110000001@s.whatsapp.net",
				"from_me": true,
				"type":    "text",
				"text":    map[string]interface{}{"body": "our own outbound"},
			},
		},
	}
	w := postWhatsApp(f.router, payload, "X-Whapi-Token", testWhapiToken)
	require.Equal(t, http.StatusOK, w.Code)

	n, err := f.client.CandidateReply.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWhatsAppWebhook_DocumentFeedsCascade(t *testing.T) {
	f := newWhatsAppFixture(t)
	app := seedWhatsAppCandidate(t, f.client, application.StatusAwaitingCv)

	payload := map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{
				"id":   "wamid.doc.1",
				"from": "4915110000001@s.whatsapp.net",
				"type": "document",
				"document": map[string]interface{}{
					"url":       "https://media.example.com/cv.pdf",
					"file_name": "grace-cv.pdf",
					"caption":   "Here is my CV",
				},
			},
		},
	}
	w := postWhatsApp(f.router, payload, "X-Whapi-Token", testWhapiToken)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"https://media.example.com/cv.pdf"}, f.downloader.urls)

	ctx := context.Background()
	upload, err := f.client.CVUpload.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, cvupload.SourceWhatsapp, upload.Source)
	assert.Equal(t, cvupload.MatchMethodExactPhone, upload.MatchMethod)
	assert.Equal(t, "grace-cv.pdf", upload.OriginalFilename)

	refreshed, err := f.client.Application.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCvReceived, refreshed.Status)

	// The caption is threaded as a reply alongside the document.
	reply, err := f.client.CandidateReply.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Here is my CV", reply.Body)
}

func TestWhatsAppWebhook_RejectsInsecureMediaURL(t *testing.T) {
	f := newWhatsAppFixture(t)
	seedWhatsAppCandidate(t, f.client, application.StatusAwaitingCv)

	payload := map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{
				"id":   "wamid.doc.2",
				"from": "4915110000001@s.whatsapp.net",
				"type": "document",
				"document": map[string]interface{}{
					"url":       "http://media.example.com/cv.pdf",
					"file_name": "cv.pdf",
				},
			},
		},
	}
	w := postWhatsApp(f.router, payload, "X-Whapi-Token", testWhapiToken)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, f.downloader.urls)
	n, err := f.client.CVUpload.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
