package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftSchemaVersion is bumped whenever the stored draft shape changes in
// a way old readers cannot handle. Records with a different version are
// rejected as corrupt instead of being half-decoded.
const DraftSchemaVersion = 1

// DraftAttachment is a file already uploaded to object storage and waiting
// to become a proper Attachment row at publish time.
type DraftAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Draft is the ephemeral course record staged in Redis while a teacher is
// assembling it. Version counts writes and backs optimistic concurrency;
// SchemaVersion guards the stored encoding.
type Draft struct {
	SchemaVersion int               `json:"schemaVersion"`
	Version       int64             `json:"version"`
	ID            uuid.UUID         `json:"id"`
	OwnerID       uuid.UUID         `json:"ownerId"`
	Status        CourseStatus      `json:"status"`
	Name          string            `json:"name"`
	Desc          *string           `json:"desc"`
	Price         *decimal.Decimal  `json:"price"`
	CategoryID    *uuid.UUID        `json:"categoryId"`
	ThumbnailURL  *string           `json:"thumbnail"`
	MuxUploadID   *string           `json:"muxUploadId"`
	MuxPlaybackID *string           `json:"muxPlaybackId"`
	MuxAssetID    *string           `json:"muxAssetId"`
	VideoStatus   *VideoStatus      `json:"videoStatus"`
	Attachments   []DraftAttachment `json:"attachments"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// NewDraft builds a fresh draft for the given owner.
func NewDraft(id, ownerID uuid.UUID, name string, now time.Time) *Draft {
	return &Draft{
		SchemaVersion: DraftSchemaVersion,
		Version:       1,
		ID:            id,
		OwnerID:       ownerID,
		Status:        StatusDraft,
		Name:          name,
		Attachments:   []DraftAttachment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ValidateRecord checks a draft decoded from the store. Any mismatch means
// the record cannot be trusted and must surface as corrupt rather than be
// silently repaired.
func (d *Draft) ValidateRecord() error {
	if d.SchemaVersion != DraftSchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %d", ErrDraftCorrupt, d.SchemaVersion)
	}
	if d.ID == uuid.Nil || d.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: missing identity fields", ErrDraftCorrupt)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: missing course name", ErrDraftCorrupt)
	}
	return nil
}

// ToCourse converts the draft into the permanent course plus its attachment
// rows, ready for the publish transaction. Attachment ids are minted here.
func (d *Draft) ToCourse(idGen func() uuid.UUID, now time.Time) (*Course, []Attachment) {
	price := decimal.Zero
	if d.Price != nil {
		price = *d.Price
	}

	course := &Course{
		ID:            d.ID,
		Name:          d.Name,
		Desc:          d.Desc,
		Price:         price,
		Thumbnail:     d.ThumbnailURL,
		CategoryID:    d.CategoryID,
		OwnerID:       d.OwnerID,
		MuxUploadID:   d.MuxUploadID,
		MuxPlaybackID: d.MuxPlaybackID,
		MuxAssetID:    d.MuxAssetID,
		VideoStatus:   d.VideoStatus,
		CourseStatus:  StatusPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	attachments := make([]Attachment, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		attachments = append(attachments, Attachment{
			ID:        idGen(),
			Name:      a.Name,
			URL:       a.URL,
			CourseID:  d.ID,
			CreatedAt: now,
		})
	}
	return course, attachments
}
