package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseplatform-backend/internal/domains/course/service"
	"courseplatform-backend/internal/infrastructure/video"
	"courseplatform-backend/internal/shared/response"
	"courseplatform-backend/pkg/logger"
)

// Event types delivered by the video provider that we act on. Everything
// else is acknowledged and dropped.
const (
	eventAssetReady   = "video.asset.ready"
	eventAssetErrored = "video.asset.errored"
)

type muxEvent struct {
	Type string `json:"type"`
	Data struct {
		ID          string             `json:"id"`
		UploadID    string             `json:"upload_id"`
		PlaybackIDs []video.PlaybackID `json:"playback_ids"`
	} `json:"data"`
}

// MuxWebhookHandler receives asset lifecycle notifications. Deliveries are
// at-least-once and unordered, so handling must stay idempotent.
type MuxWebhookHandler struct {
	courses       service.CourseService
	webhookSecret string
}

func NewMuxWebhookHandler(courses service.CourseService, webhookSecret string) *MuxWebhookHandler {
	return &MuxWebhookHandler{courses: courses, webhookSecret: webhookSecret}
}

// HandleMux handles POST /api/webhooks/mux
func (h *MuxWebhookHandler) HandleMux(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Cannot read request body")
		return
	}

	// Signature verification is skipped when no secret is configured, which
	// keeps local development working without provider credentials.
	if h.webhookSecret != "" {
		sig := c.GetHeader("Mux-Signature")
		if err := video.VerifyWebhookSignature(body, sig, h.webhookSecret); err != nil {
			logger.Warn("Webhook signature rejected", map[string]interface{}{
				"error": err.Error(),
			})
			response.Unauthorized(c, "Invalid webhook signature")
			return
		}
	}

	var event muxEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.BadRequest(c, "Invalid webhook payload")
		return
	}

	switch event.Type {
	case eventAssetReady:
		playbackID := ""
		if len(event.Data.PlaybackIDs) > 0 {
			playbackID = event.Data.PlaybackIDs[0].ID
		}
		err = h.courses.MarkVideoReady(c.Request.Context(), event.Data.UploadID, event.Data.ID, playbackID)
	case eventAssetErrored:
		err = h.courses.MarkVideoFailed(c.Request.Context(), event.Data.UploadID)
	default:
		logger.Debug("Ignoring webhook event", map[string]interface{}{
			"type": event.Type,
		})
	}
	if err != nil {
		logger.Error("Webhook processing failed", err)
		response.InternalServerError(c, "Webhook processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
