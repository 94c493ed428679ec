package job

import (
	"context"

	"github.com/hibiken/asynq"

	"courseplatform-backend/internal/domains/course/service"
	"courseplatform-backend/pkg/logger"
)

// VideoReconcileHandler periodically polls the video provider for courses
// whose transcoding status never arrived via webhook.
type VideoReconcileHandler struct {
	courses service.CourseService
}

func NewVideoReconcileHandler(courses service.CourseService) *VideoReconcileHandler {
	return &VideoReconcileHandler{courses: courses}
}

func (h *VideoReconcileHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	resolved, err := h.courses.ReconcileProcessingVideos(ctx)
	if err != nil {
		logger.Error("Video reconciliation failed", err)
		return err
	}
	if resolved > 0 {
		logger.Info("Video reconciliation resolved courses", map[string]interface{}{
			"resolved": resolved,
		})
	}
	return nil
}
