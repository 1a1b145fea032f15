package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/pkg/services"
	"github.com/recruitflow/recruitflow/pkg/voiceagent"
)

// signatureHeader is the provider's signed-token header.
const signatureHeader = "ElevenLabs-Signature"

// signatureTolerance bounds the age of a signed timestamp.
const signatureTolerance = 300 * time.Second

// handleVoiceWebhook ingests post-call events. After the signature passes,
// every outcome except a reducer failure answers 200 so the provider stops
// retrying; evaluation errors are swallowed with logging for the same
// reason.
func (s *Server) handleVoiceWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	secret := s.cfg.VoiceAgent.WebhookSecret
	switch {
	case secret == "" && s.cfg.Production():
		s.logger.Error("voice webhook secret not configured in production")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook secret not configured"})
		return
	case secret == "":
		s.logger.Warn("voice webhook signature check skipped, no secret configured")
	default:
		if !validVoiceSignature(secret, c.GetHeader(signatureHeader), raw, time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON body"})
		return
	}

	conversationID := voiceagent.ExtractConversationID(payload)
	if conversationID == "" {
		s.logger.Warn("voice webhook without conversation id")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	ctx := c.Request.Context()
	call, err := s.reducer.FindCallByConversationID(ctx, conversationID)
	if errors.Is(err, services.ErrNotFound) {
		call, err = s.lateBind(c, payload, conversationID)
		if call == nil {
			return // response already written
		}
	}
	if err != nil {
		s.logger.Error("failed to resolve call for webhook", "conversation_id", conversationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "call lookup failed"})
		return
	}

	res, err := s.reducer.Apply(ctx, call.ID, payload)
	if err != nil {
		s.logger.Error("failed to apply webhook payload", "call_id", call.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	if res.Completed && s.evaluator != nil {
		if _, err := s.evaluator.EvaluateCall(ctx, call.ID); err != nil {
			s.logger.Error("evaluation failed", "call_id", call.ID, "error", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

// lateBind attaches the conversation to an unbound batch call via the
// embedded application id. Writes the response itself when no call can be
// found; callers treat a nil return as handled.
func (s *Server) lateBind(c *gin.Context, payload map[string]interface{}, conversationID string) (*ent.Call, error) {
	appID, ok := voiceagent.ExtractUserID(payload)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "call_not_found"})
		return nil, nil
	}

	call, err := s.reducer.LateBind(c.Request.Context(), appID, conversationID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"status": "call_not_found"})
		return nil, nil
	}
	if err != nil {
		s.logger.Error("late-binding failed", "application_id", appID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "late-binding failed"})
		return nil, nil
	}
	return call, nil
}

// validVoiceSignature checks the t={unix},v0={hex} token: HMAC-SHA256 over
// "{t}.{raw_body}", constant-time compare, timestamp within tolerance.
func validVoiceSignature(secret, header string, body []byte, now time.Time) bool {
	var ts, sig string
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "t="):
			ts = strings.TrimPrefix(part, "t=")
		case strings.HasPrefix(part, "v0="):
			sig = strings.TrimPrefix(part, "v0=")
		}
	}
	if ts == "" || sig == "" {
		return false
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return false
	}
	age := now.Sub(time.Unix(unix, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(sig))
}
