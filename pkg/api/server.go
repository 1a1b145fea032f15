// Package api is the HTTP ingress: the voice-agent post-call webhook, the
// WhatsApp inbound webhook, and the health endpoint. Both webhooks
// authenticate inline against raw request bytes, so neither goes through
// body-consuming middleware.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/pkg/config"
	"github.com/recruitflow/recruitflow/pkg/cvmatch"
	"github.com/recruitflow/recruitflow/pkg/database"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
)

// Evaluator scores a completed call. Implemented by *evaluation.Adapter.
type Evaluator interface {
	EvaluateCall(ctx context.Context, callID int) (*ent.Evaluation, error)
}

// MediaDownloader fetches inbound media bytes. Implemented by
// *messaging.WhapiClient.
type MediaDownloader interface {
	DownloadMedia(ctx context.Context, url string) ([]byte, error)
}

// Server holds the webhook handler dependencies.
type Server struct {
	db        *database.Client
	cfg       *config.Config
	reducer   *voiceagent.Reducer
	evaluator Evaluator
	matcher   *cvmatch.Matcher
	replies   *services.ReplyService
	media     MediaDownloader
	logger    *slog.Logger
}

// NewServer creates the API server. evaluator and media may be nil when the
// corresponding integration is not configured.
func NewServer(
	db *database.Client,
	cfg *config.Config,
	reducer *voiceagent.Reducer,
	evaluator Evaluator,
	matcher *cvmatch.Matcher,
	replies *services.ReplyService,
	media MediaDownloader,
) *Server {
	return &Server{
		db:        db,
		cfg:       cfg,
		reducer:   reducer,
		evaluator: evaluator,
		matcher:   matcher,
		replies:   replies,
		media:     media,
		logger:    slog.Default().With("component", "api"),
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	if s.cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)
	r.POST("/webhooks/voice", s.handleVoiceWebhook)
	r.POST("/webhooks/whatsapp", s.handleWhatsAppWebhook)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
