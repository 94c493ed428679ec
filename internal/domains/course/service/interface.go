package service

import (
	"context"

	"github.com/google/uuid"

	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/infrastructure/video"
)

// CourseService owns the draft lifecycle: staging, incremental edits, media
// coordination, and the one-shot publish into the relational store.
type CourseService interface {
	CreateDraft(ctx context.Context, ownerID uuid.UUID, req *model.CreateCourseReq) (*model.Draft, error)
	UpdateDraft(ctx context.Context, id, ownerID uuid.UUID, req *model.UpdateDraftReq) (*model.Draft, error)
	AttachFiles(ctx context.Context, id, ownerID uuid.UUID, files []model.FileUpload) ([]model.DraftAttachment, error)
	InitVideoUpload(ctx context.Context, id, ownerID uuid.UUID) (*model.VideoUploadInit, error)
	Publish(ctx context.Context, id, ownerID uuid.UUID) (*model.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*model.CourseView, error)

	// Webhook and reconciliation entry points. Both are idempotent and
	// tolerate events for courses that were never published.
	MarkVideoReady(ctx context.Context, uploadID, assetID, playbackID string) error
	MarkVideoFailed(ctx context.Context, uploadID string) error
	ReconcileProcessingVideos(ctx context.Context) (int, error)
}

// FileStorage uploads raw bytes and returns a public URL. Delete removes a
// previously uploaded object, used to clean up orphans when a draft write
// fails after its files were already stored.
type FileStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// VideoProvider is the slice of the video platform API the service needs.
type VideoProvider interface {
	CreateDirectUpload(ctx context.Context) (*video.DirectUpload, error)
	GetAsset(ctx context.Context, assetID string) (*video.Asset, error)
}

// ImageProcessor validates and normalizes thumbnail images before upload.
type ImageProcessor interface {
	ValidateImage(data []byte) error
	ProcessThumbnail(data []byte) ([]byte, error)
}
