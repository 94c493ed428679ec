package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourseStatus is the lifecycle state of a persisted course.
type CourseStatus string

const (
	StatusDraft     CourseStatus = "DRAFT"
	StatusReady     CourseStatus = "READY"
	StatusPublished CourseStatus = "PUBLISHED"
)

// VideoStatus tracks the transcoding state reported by the video provider.
type VideoStatus string

const (
	VideoProcessing VideoStatus = "PROCESSING"
	VideoReady      VideoStatus = "READY"
	VideoFailed     VideoStatus = "FAILED"
)

// Course is the permanent, relational representation. A row is created
// exactly once, at publish time, together with all of its attachments.
type Course struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Desc          *string         `json:"desc"`
	Price         decimal.Decimal `json:"price"`
	Thumbnail     *string         `json:"thumbnail"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	MuxUploadID   *string         `json:"muxUploadId"`
	MuxPlaybackID *string         `json:"muxPlaybackId"`
	MuxAssetID    *string         `json:"muxAssetId"`
	VideoStatus   *VideoStatus    `json:"videoStatus"`
	CourseStatus  CourseStatus    `json:"courseStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Attachments   []Attachment    `json:"attachments"`
}

// Attachment is owned by exactly one course. Rows are created as part of
// the publish transaction.
type Attachment struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CourseID  uuid.UUID `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CourseView is what the read path returns: the permanent course when it
// exists, otherwise the still-ephemeral draft flagged as such.
type CourseView struct {
	Course  *Course
	Draft   *Draft
	IsDraft bool
}

// VideoUploadInit is the result of opening an upload session.
type VideoUploadInit struct {
	UploadURL string
	Draft     *Draft
}
