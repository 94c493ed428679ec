package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"courseplatform-backend/internal/domains/category"
	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &postgresRepository{pool: pool}
}

const courseColumns = `id, name, description, price, thumbnail, category_id, owner_id,
	mux_upload_id, mux_playback_id, mux_asset_id, video_status, course_status,
	created_at, updated_at`

func (r *postgresRepository) CreateWithAttachments(ctx context.Context, course *model.Course, attachments []model.Attachment) (*model.Course, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Course, error) {
		_, err := tx.Exec(ctx, `
			INSERT INTO courses (id, name, description, price, thumbnail, category_id, owner_id,
				mux_upload_id, mux_playback_id, mux_asset_id, video_status, course_status,
				created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			course.ID, course.Name, course.Desc, course.Price, course.Thumbnail,
			course.CategoryID, course.OwnerID, course.MuxUploadID, course.MuxPlaybackID,
			course.MuxAssetID, course.VideoStatus, course.CourseStatus,
			course.CreatedAt, course.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(attachments) > 0 {
			batch := &pgx.Batch{}
			for _, a := range attachments {
				batch.Queue(`
					INSERT INTO attachments (id, name, url, course_id, created_at)
					VALUES ($1, $2, $3, $4, $5)`,
					a.ID, a.Name, a.URL, a.CourseID, a.CreatedAt,
				)
			}
			results := tx.SendBatch(ctx, batch)
			for range attachments {
				if _, err := results.Exec(); err != nil {
					results.Close()
					return nil, err
				}
			}
			if err := results.Close(); err != nil {
				return nil, err
			}
		}

		persisted := *course
		persisted.Attachments = attachments
		return &persisted, nil
	})
	if err != nil {
		return nil, classifyPublishError(err)
	}
	return created, nil
}

// classifyPublishError turns constraint violations into domain errors. A
// duplicate primary key means the course was already published. The only
// foreign key the insert can trip is category_id, so a 23503 means the
// category vanished between the draft edit and the publish. Everything else
// inside the transaction is a generic publish failure.
func classifyPublishError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return model.ErrDuplicateCourse
		case "23503":
			return category.ErrCategoryNotFound
		}
	}
	return fmt.Errorf("%w: %v", model.ErrPublishFailed, err)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)

	var course model.Course
	err := row.Scan(
		&course.ID, &course.Name, &course.Desc, &course.Price, &course.Thumbnail,
		&course.CategoryID, &course.OwnerID, &course.MuxUploadID, &course.MuxPlaybackID,
		&course.MuxAssetID, &course.VideoStatus, &course.CourseStatus,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query course %s: %w", id, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, url, course_id, created_at
		FROM attachments
		WHERE course_id = $1
		ORDER BY created_at ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("query attachments for course %s: %w", id, err)
	}
	defer rows.Close()

	course.Attachments = []model.Attachment{}
	for rows.Next() {
		var a model.Attachment
		if err := rows.Scan(&a.ID, &a.Name, &a.URL, &a.CourseID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		course.Attachments = append(course.Attachments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attachments: %w", err)
	}
	return &course, nil
}

func (r *postgresRepository) MarkVideoReady(ctx context.Context, uploadID, assetID, playbackID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET video_status = $1, mux_asset_id = $2, mux_playback_id = $3, updated_at = NOW()
		WHERE mux_upload_id = $4`,
		model.VideoReady, assetID, playbackID, uploadID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark video ready for upload %s: %w", uploadID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) MarkVideoFailed(ctx context.Context, uploadID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET video_status = $1, updated_at = NOW()
		WHERE mux_upload_id = $2`,
		model.VideoFailed, uploadID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark video failed for upload %s: %w", uploadID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) ListProcessingVideos(ctx context.Context, olderThan time.Duration, limit int) ([]model.Course, error) {
	cutoff := time.Now().Add(-olderThan)
	rows, err := r.pool.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE video_status = $1 AND updated_at < $2
		ORDER BY updated_at ASC
		LIMIT $3`,
		model.VideoProcessing, cutoff, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list processing videos: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var course model.Course
		err := rows.Scan(
			&course.ID, &course.Name, &course.Desc, &course.Price, &course.Thumbnail,
			&course.CategoryID, &course.OwnerID, &course.MuxUploadID, &course.MuxPlaybackID,
			&course.MuxAssetID, &course.VideoStatus, &course.CourseStatus,
			&course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}
