package service

import (
	"context"
	"fmt"
	"path"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"courseplatform-backend/internal/domains/category"
	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/domains/course/repository"
	"courseplatform-backend/pkg/logger"
)

type courseServiceImpl struct {
	repo       repository.CourseRepository
	drafts     repository.DraftStore
	categories category.CategoryRepository
	storage    FileStorage
	video      VideoProvider
	images     ImageProcessor

	// How long a published course may sit in PROCESSING before the
	// reconciler polls the provider directly.
	stuckAfter time.Duration

	// Injectable for tests.
	now   func() time.Time
	newID func() uuid.UUID
}

func NewCourseService(
	repo repository.CourseRepository,
	drafts repository.DraftStore,
	categories category.CategoryRepository,
	storage FileStorage,
	videoProvider VideoProvider,
	images ImageProcessor,
) CourseService {
	return &courseServiceImpl{
		repo:       repo,
		drafts:     drafts,
		categories: categories,
		storage:    storage,
		video:      videoProvider,
		images:     images,
		stuckAfter: 30 * time.Minute,
		now:        time.Now,
		newID:      uuid.New,
	}
}

func (s *courseServiceImpl) CreateDraft(ctx context.Context, ownerID uuid.UUID, req *model.CreateCourseReq) (*model.Draft, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	draft := model.NewDraft(s.newID(), ownerID, req.Name, s.now())
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save new draft: %w", err)
	}

	logger.Info("Course draft created", map[string]interface{}{
		"course_id": draft.ID.String(),
		"owner_id":  ownerID.String(),
	})
	return draft, nil
}

// loadOwnedDraft fetches the draft and enforces ownership. Every mutating
// operation goes through here before touching storage or external services.
func (s *courseServiceImpl) loadOwnedDraft(ctx context.Context, id, ownerID uuid.UUID) (*model.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.OwnerID != ownerID {
		return nil, model.ErrNotCourseOwner
	}
	return draft, nil
}

func (s *courseServiceImpl) UpdateDraft(ctx context.Context, id, ownerID uuid.UUID, req *model.UpdateDraftReq) (*model.Draft, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.loadOwnedDraft(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.ExpectedVersion != nil && *req.ExpectedVersion != draft.Version {
		return nil, model.ErrStaleDraftVersion
	}

	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Desc != nil {
		if *req.Desc == "" {
			draft.Desc = nil
		} else {
			draft.Desc = req.Desc
		}
	}
	if req.Price != nil {
		price := *req.Price
		draft.Price = &price
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			draft.CategoryID = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, category.ErrCategoryNotFound
			}
			exists, err := s.categories.ExistsByID(ctx, categoryID)
			if err != nil {
				return nil, fmt.Errorf("check category %s: %w", categoryID, err)
			}
			if !exists {
				return nil, category.ErrCategoryNotFound
			}
			draft.CategoryID = &categoryID
		}
	}

	if req.Thumbnail != nil {
		url, err := s.uploadThumbnail(ctx, draft.ID, req.Thumbnail)
		if err != nil {
			return nil, err
		}
		draft.ThumbnailURL = &url
	}

	draft.Version++
	draft.UpdatedAt = s.now()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft %s: %w", id, err)
	}
	return draft, nil
}

func (s *courseServiceImpl) uploadThumbnail(ctx context.Context, courseID uuid.UUID, file *model.FileUpload) (string, error) {
	if err := s.images.ValidateImage(file.Data); err != nil {
		return "", validation.NewError("validation_thumbnail", err.Error())
	}
	processed, err := s.images.ProcessThumbnail(file.Data)
	if err != nil {
		return "", fmt.Errorf("process thumbnail: %w", err)
	}

	key := fmt.Sprintf("courses/%s/thumbnail.jpg", courseID)
	url, err := s.storage.Upload(ctx, key, processed, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("upload thumbnail: %w", err)
	}
	return url, nil
}

func (s *courseServiceImpl) AttachFiles(ctx context.Context, id, ownerID uuid.UUID, files []model.FileUpload) ([]model.DraftAttachment, error) {
	if len(files) == 0 {
		return nil, model.ErrNoFilesProvided
	}

	draft, err := s.loadOwnedDraft(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	// Best effort per file. The operation only fails outright if nothing
	// could be stored at all.
	added := make([]model.DraftAttachment, 0, len(files))
	keys := make([]string, 0, len(files))
	for _, file := range files {
		key := fmt.Sprintf("courses/%s/attachments/%s_%s", id, s.newID(), path.Base(file.Name))
		url, err := s.storage.Upload(ctx, key, file.Data, file.ContentType)
		if err != nil {
			logger.Error("Attachment upload failed", err)
			continue
		}
		added = append(added, model.DraftAttachment{Name: file.Name, URL: url})
		keys = append(keys, key)
	}
	if len(added) == 0 {
		return nil, model.ErrUploadFailed
	}

	draft.Attachments = append(draft.Attachments, added...)
	draft.Version++
	draft.UpdatedAt = s.now()
	if err := s.drafts.Save(ctx, draft); err != nil {
		// The uploads are orphans now, remove what we can.
		for _, key := range keys {
			if delErr := s.storage.Delete(ctx, key); delErr != nil {
				logger.Error("Orphaned attachment cleanup failed", delErr)
			}
		}
		return nil, fmt.Errorf("save draft %s: %w", id, err)
	}
	return added, nil
}

func (s *courseServiceImpl) InitVideoUpload(ctx context.Context, id, ownerID uuid.UUID) (*model.VideoUploadInit, error) {
	draft, err := s.loadOwnedDraft(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	upload, err := s.video.CreateDirectUpload(ctx)
	if err != nil {
		logger.Error("Direct upload creation failed", err)
		return nil, fmt.Errorf("%w: %v", model.ErrVideoServiceUnavailable, err)
	}

	status := model.VideoProcessing
	draft.MuxUploadID = &upload.ID
	draft.MuxPlaybackID = &upload.ID
	draft.VideoStatus = &status
	if upload.AssetID != "" {
		draft.MuxAssetID = &upload.AssetID
	}
	draft.Version++
	draft.UpdatedAt = s.now()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft %s: %w", id, err)
	}

	return &model.VideoUploadInit{UploadURL: upload.URL, Draft: draft}, nil
}
