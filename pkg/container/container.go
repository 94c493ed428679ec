package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"courseplatform-backend/internal/config"
	infraCache "courseplatform-backend/internal/infrastructure/cache"
	"courseplatform-backend/internal/infrastructure/database"
	"courseplatform-backend/internal/infrastructure/storage"
	"courseplatform-backend/internal/infrastructure/video"
	"courseplatform-backend/pkg/cache"
	"courseplatform-backend/pkg/jwt"

	"courseplatform-backend/internal/domains/category"
	categoryHandler "courseplatform-backend/internal/domains/category/handler"
	categoryRepo "courseplatform-backend/internal/domains/category/repository"
	categoryService "courseplatform-backend/internal/domains/category/service"
	courseHandler "courseplatform-backend/internal/domains/course/handler"
	courseRepo "courseplatform-backend/internal/domains/course/repository"
	courseService "courseplatform-backend/internal/domains/course/service"
	webhookHandler "courseplatform-backend/internal/domains/webhook/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is a
// singleton built once at startup, in dependency order.
type Container struct {
	// Infrastructure, shared across all domains.
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Redis      *infraCache.RedisCache
	Storage    *storage.MinIOStorage
	Images     *storage.ImageProcessor
	Video      *video.Client
	JWTManager *jwt.Manager

	// Repositories.
	CategoryRepo category.CategoryRepository
	CourseRepo   courseRepo.CourseRepository
	DraftStore   courseRepo.DraftStore

	// Services.
	CategoryService category.CategoryService
	CourseService   courseService.CourseService

	// HTTP handlers.
	CategoryHandler *categoryHandler.CategoryHandler
	CourseHandler   *courseHandler.CourseHandler
	WebhookHandler  *webhookHandler.MuxWebhookHandler
}

// NewContainer builds the whole dependency graph.
//
// Initialization order matters:
// 1. Config
// 2. Infrastructure (DB, Redis, MinIO, video client)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	log.Println("[Container] Initializing...")

	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[Container] Config loaded (environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("[Container] Database connected")

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Drafts live in Redis, so this is fatal unlike a plain cache.
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisCache
	c.Cache = redisCache
	log.Println("[Container] Redis connected")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	c.Images = storage.NewImageProcessor()
	c.Video = video.NewClient(cfg.Mux)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool)
	c.CourseRepo = courseRepo.NewCourseRepository(c.DB.Pool)
	c.DraftStore = courseRepo.NewDraftStore(c.Cache, cfg.Draft.TTL)

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.CourseService = courseService.NewCourseService(
		c.CourseRepo,
		c.DraftStore,
		c.CategoryRepo,
		c.Storage,
		c.Video,
		c.Images,
	)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.CourseHandler = courseHandler.NewCourseHandler(c.CourseService)
	c.WebhookHandler = webhookHandler.NewMuxWebhookHandler(c.CourseService, cfg.Mux.WebhookSecret)

	log.Println("[Container] Initialized successfully")
	return c, nil
}

// Cleanup releases all held connections. Call on shutdown.
func (c *Container) Cleanup() {
	log.Println("[Container] Cleaning up...")

	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[Container] Redis close failed: %v", err)
		}
	}

	log.Println("[Container] Cleanup complete")
}
