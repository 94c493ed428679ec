package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/infrastructure/video"
	"courseplatform-backend/pkg/logger"
)

// Publish moves the draft into Postgres atomically. The draft key is only
// removed after the transaction commits; a failed cleanup is tolerated and
// left to the TTL.
func (s *courseServiceImpl) Publish(ctx context.Context, id, ownerID uuid.UUID) (*model.Course, error) {
	draft, err := s.loadOwnedDraft(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	course, attachments := draft.ToCourse(s.newID, s.now())
	created, err := s.repo.CreateWithAttachments(ctx, course, attachments)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, id); err != nil {
		logger.Warn("Draft cleanup after publish failed", map[string]interface{}{
			"course_id": id.String(),
			"error":     err.Error(),
		})
	}

	logger.Info("Course published", map[string]interface{}{
		"course_id":   created.ID.String(),
		"owner_id":    ownerID.String(),
		"attachments": len(created.Attachments),
	})
	return created, nil
}

// GetCourse reads the permanent record first and falls back to the draft,
// so a course stays visible to its owner across the whole lifecycle.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id uuid.UUID) (*model.CourseView, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return &model.CourseView{Course: course}, nil
	}
	if !errors.Is(err, model.ErrCourseNotFound) {
		return nil, err
	}

	draft, err := s.drafts.Get(ctx, id)
	if errors.Is(err, model.ErrDraftNotFound) {
		return nil, model.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model.CourseView{Draft: draft, IsDraft: true}, nil
}

func (s *courseServiceImpl) MarkVideoReady(ctx context.Context, uploadID, assetID, playbackID string) error {
	if uploadID == "" {
		return nil
	}
	matched, err := s.repo.MarkVideoReady(ctx, uploadID, assetID, playbackID)
	if err != nil {
		return err
	}
	if matched == 0 {
		// Draft was never published, or the event raced ahead of publish.
		// The event is acknowledged either way.
		logger.Debug("Video ready event matched no course", map[string]interface{}{
			"upload_id": uploadID,
		})
	}
	return nil
}

func (s *courseServiceImpl) MarkVideoFailed(ctx context.Context, uploadID string) error {
	if uploadID == "" {
		return nil
	}
	matched, err := s.repo.MarkVideoFailed(ctx, uploadID)
	if err != nil {
		return err
	}
	if matched == 0 {
		logger.Debug("Video errored event matched no course", map[string]interface{}{
			"upload_id": uploadID,
		})
	}
	return nil
}

// ReconcileProcessingVideos polls the provider for courses whose video has
// been stuck in PROCESSING, covering webhook deliveries that never arrived.
// Returns how many courses were moved to a terminal state.
func (s *courseServiceImpl) ReconcileProcessingVideos(ctx context.Context) (int, error) {
	stuck, err := s.repo.ListProcessingVideos(ctx, s.stuckAfter, 100)
	if err != nil {
		return 0, fmt.Errorf("list stuck videos: %w", err)
	}

	resolved := 0
	for _, course := range stuck {
		if course.MuxAssetID == nil || course.MuxUploadID == nil {
			continue
		}
		asset, err := s.video.GetAsset(ctx, *course.MuxAssetID)
		if err != nil {
			logger.Error("Asset poll failed", err)
			continue
		}

		switch asset.Status {
		case video.AssetStatusReady:
			playbackID := ""
			if len(asset.PlaybackIDs) > 0 {
				playbackID = asset.PlaybackIDs[0].ID
			}
			if err := s.MarkVideoReady(ctx, *course.MuxUploadID, asset.ID, playbackID); err != nil {
				logger.Error("Reconcile mark ready failed", err)
				continue
			}
			resolved++
		case video.AssetStatusErrored:
			if err := s.MarkVideoFailed(ctx, *course.MuxUploadID); err != nil {
				logger.Error("Reconcile mark errored failed", err)
				continue
			}
			resolved++
		}
	}

	if len(stuck) > 0 {
		logger.Info("Video reconciliation pass finished", map[string]interface{}{
			"checked":  len(stuck),
			"resolved": resolved,
		})
	}
	return resolved, nil
}
