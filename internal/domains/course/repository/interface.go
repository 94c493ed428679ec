package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"courseplatform-backend/internal/domains/course/model"
)

// CourseRepository is the relational side: courses only exist here once
// they have been published.
type CourseRepository interface {
	// CreateWithAttachments inserts the course and all attachment rows in a
	// single transaction. A unique violation on the course id surfaces as
	// model.ErrDuplicateCourse.
	CreateWithAttachments(ctx context.Context, course *model.Course, attachments []model.Attachment) (*model.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)

	// MarkVideoReady and MarkVideoFailed update by upload id and report how
	// many rows matched. Zero matches is a valid outcome, not an error.
	MarkVideoReady(ctx context.Context, uploadID, assetID, playbackID string) (int64, error)
	MarkVideoFailed(ctx context.Context, uploadID string) (int64, error)

	// ListProcessingVideos returns published courses whose video has been
	// stuck in PROCESSING since before the cutoff.
	ListProcessingVideos(ctx context.Context, olderThan time.Duration, limit int) ([]model.Course, error)
}

// DraftStore holds ephemeral drafts. Every Save resets the expiry window.
type DraftStore interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Draft, error)
	Save(ctx context.Context, draft *model.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}
