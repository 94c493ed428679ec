package main

import (
	"github.com/hibiken/asynq"

	courseJob "courseplatform-backend/internal/domains/course/job"
	"courseplatform-backend/internal/shared"
	"courseplatform-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	videoReconcile *courseJob.VideoReconcileHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		videoReconcile: courseJob.NewVideoReconcileHandler(c.CourseService),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeVideoReconcile, h.videoReconcile.ProcessTask)
}
