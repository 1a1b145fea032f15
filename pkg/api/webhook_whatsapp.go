package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
	"github.com/recruitflow/recruitflow/pkg/cvmatch"
	"github.com/recruitflow/recruitflow/pkg/services"
)

// mediaTypes are the message types carrying a downloadable attachment.
var mediaTypes = map[string]bool{
	"image":    true,
	"document": true,
	"audio":    true,
	"video":    true,
	"sticker":  true,
	"file":     true,
}

type whatsappWebhookBody struct {
	Messages []map[string]interface{} `json:"messages"`
}

// handleWhatsAppWebhook ingests gateway events: media attachments feed the
// CV cascade, text bodies become candidate replies. Always answers 200
// after the token check; per-message failures are logged and skipped.
func (s *Server) handleWhatsAppWebhook(c *gin.Context) {
	token := s.cfg.Whapi.WebhookToken
	switch {
	case token == "" && s.cfg.Production():
		s.logger.Error("whatsapp webhook token not configured in production")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook token not configured"})
		return
	case token == "":
		s.logger.Warn("whatsapp webhook token check skipped, no token configured")
	default:
		if !validWebhookToken(token, c.Request) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
	}

	var body whatsappWebhookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON body"})
		return
	}

	for _, msg := range body.Messages {
		s.processWhatsAppMessage(c.Request.Context(), msg)
	}
	c.JSON(http.StatusOK, gin.H{"status": "processed", "messages": len(body.Messages)})
}

func (s *Server) processWhatsAppMessage(ctx context.Context, msg map[string]interface{}) {
	if boolField(msg, "from_me") || boolField(msg, "fromMe") {
		return
	}

	sender := stringField(msg, "from")
	if sender == "" {
		sender = stringField(msg, "chat_id")
	}
	msgID := stringField(msg, "id")
	msgType := stringField(msg, "type")

	if mediaTypes[msgType] {
		s.ingestMedia(ctx, msg, msgType, sender)
		if caption := mediaCaption(msg, msgType); caption != "" {
			s.recordReply(ctx, sender, caption, msgID)
		}
		return
	}

	if text, ok := msg["text"].(map[string]interface{}); ok {
		if body := stringField(text, "body"); body != "" {
			s.recordReply(ctx, sender, body, msgID)
			return
		}
	}
	if body := stringField(msg, "body"); body != "" {
		s.recordReply(ctx, sender, body, msgID)
	}
}

func (s *Server) ingestMedia(ctx context.Context, msg map[string]interface{}, msgType, sender string) {
	media, _ := msg[msgType].(map[string]interface{})
	if media == nil {
		media, _ = msg["media"].(map[string]interface{})
	}
	if media == nil {
		s.logger.Warn("media message without media block", "type", msgType, "sender", sender)
		return
	}

	url := stringField(media, "url")
	if url == "" {
		url = stringField(media, "link")
	}
	if !strings.HasPrefix(url, "https://") {
		s.logger.Warn("rejected media url", "sender", sender, "url", url)
		return
	}
	if s.media == nil {
		s.logger.Warn("media download skipped, gateway not configured", "sender", sender)
		return
	}

	data, err := s.media.DownloadMedia(ctx, url)
	if err != nil {
		s.logger.Error("failed to download media", "sender", sender, "error", err)
		return
	}

	filename := stringField(media, "file_name")
	if filename == "" {
		filename = stringField(media, "filename")
	}
	if filename == "" {
		filename = "whatsapp-upload"
	}

	if _, err := s.matcher.ProcessInbound(ctx, cvmatch.Inbound{
		Channel:  unmatchedinbound.ChannelWhatsapp,
		Sender:   sender,
		Body:     mediaCaption(msg, msgType),
		Filename: filename,
		Data:     data,
	}); err != nil {
		s.logger.Error("failed to process inbound media", "sender", sender, "error", err)
	}
}

func (s *Server) recordReply(ctx context.Context, sender, body, externalID string) {
	if _, err := s.replies.Record(ctx, services.InboundReply{
		Channel:    candidatereply.ChannelWhatsapp,
		Sender:     sender,
		Body:       body,
		ExternalID: externalID,
	}); err != nil {
		s.logger.Error("failed to record reply", "sender", sender, "error", err)
	}
}

// validWebhookToken accepts the shared token from either the X-Whapi-Token
// header or an Authorization bearer, compared in constant time.
func validWebhookToken(token string, r *http.Request) bool {
	presented := r.Header.Get("X-Whapi-Token")
	if presented == "" {
		presented = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(presented)) == 1
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func boolField(m map[string]interface{}, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func mediaCaption(msg map[string]interface{}, msgType string) string {
	if media, ok := msg[msgType].(map[string]interface{}); ok {
		if caption := stringField(media, "caption"); caption != "" {
			return caption
		}
	}
	return stringField(msg, "caption")
}
