package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courseplatform-backend/internal/shared/middleware"
	"courseplatform-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	api := router.Group("/api")
	{
		setupCourseRoutes(api, c)
		setupWebhookRoutes(api, c)
	}

	return router
}

// ========================================
// COURSE ROUTES
// ========================================
func setupCourseRoutes(api *gin.RouterGroup, c *container.Container) {
	courses := api.Group("/courses")
	{
		// Public reads
		courses.GET("/categories", c.CategoryHandler.GetAll)
		courses.GET("/:id", c.CourseHandler.GetByID)

		// Course management requires an authenticated teacher
		authed := courses.Group("")
		authed.Use(
			middleware.AuthMiddleware(c.Config.JWT.Secret),
			middleware.RequireTeacher(),
		)
		{
			authed.POST("", c.CourseHandler.Create)
			authed.PATCH("/:id", c.CourseHandler.Update)
			authed.POST("/:id/attachments", c.CourseHandler.AttachFiles)
			authed.POST("/:id/video", c.CourseHandler.InitVideoUpload)
			authed.POST("/:id/publish", c.CourseHandler.Publish)
		}
	}
}

// ========================================
// WEBHOOK ROUTES
// ========================================
// Webhooks authenticate via payload signature, not JWT.
func setupWebhookRoutes(api *gin.RouterGroup, c *container.Container) {
	webhooks := api.Group("/webhooks")
	{
		webhooks.POST("/mux", c.WebhookHandler.HandleMux)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"database": "up", "redis": "up"}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			checks["redis"] = "down"
			status = http.StatusServiceUnavailable
		}

		overall := "UP"
		if status != http.StatusOK {
			overall = "DEGRADED"
		}
		ctx.JSON(status, gin.H{
			"status":  overall,
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
