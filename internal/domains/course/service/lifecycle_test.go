package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/domains/course/repository"
	"courseplatform-backend/pkg/cache"
)

// memCache backs a real DraftStore so the lifecycle test exercises the
// actual key layout and serialization, not a mocked one.
type memCache struct {
	values map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("%w: %v", cache.ErrBadValue, err)
	}
	return true, nil
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *memCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.values[key]
	return ok, nil
}

func (m *memCache) TTL(_ context.Context, _ string) (time.Duration, error) {
	return 0, nil
}

func (m *memCache) Ping(_ context.Context) error { return nil }

// memCourseRepo keeps published courses in a map so the read path after
// publish returns exactly what the publish transaction inserted.
type memCourseRepo struct {
	courses map[uuid.UUID]*model.Course
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{courses: make(map[uuid.UUID]*model.Course)}
}

func (r *memCourseRepo) CreateWithAttachments(_ context.Context, course *model.Course, attachments []model.Attachment) (*model.Course, error) {
	if _, exists := r.courses[course.ID]; exists {
		return nil, model.ErrDuplicateCourse
	}
	persisted := *course
	persisted.Attachments = attachments
	r.courses[course.ID] = &persisted
	return &persisted, nil
}

func (r *memCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, model.ErrCourseNotFound
	}
	return course, nil
}

func (r *memCourseRepo) MarkVideoReady(_ context.Context, uploadID, assetID, playbackID string) (int64, error) {
	var matched int64
	for _, course := range r.courses {
		if course.MuxUploadID != nil && *course.MuxUploadID == uploadID {
			status := model.VideoReady
			course.VideoStatus = &status
			course.MuxAssetID = &assetID
			course.MuxPlaybackID = &playbackID
			matched++
		}
	}
	return matched, nil
}

func (r *memCourseRepo) MarkVideoFailed(_ context.Context, uploadID string) (int64, error) {
	var matched int64
	for _, course := range r.courses {
		if course.MuxUploadID != nil && *course.MuxUploadID == uploadID {
			status := model.VideoFailed
			course.VideoStatus = &status
			matched++
		}
	}
	return matched, nil
}

func (r *memCourseRepo) ListProcessingVideos(_ context.Context, _ time.Duration, _ int) ([]model.Course, error) {
	return nil, nil
}

// TestDraftLifecycle drives one draft through the whole flow: create, edit
// price and category, attach a file, publish, then read it back as a
// published course.
func TestDraftLifecycle(t *testing.T) {
	repo := newMemCourseRepo()
	drafts := repository.NewDraftStore(newMemCache(), 24*time.Hour)
	categories := new(categoryRepoMock)
	storage := new(storageMock)
	videoProvider := new(videoProviderMock)
	images := new(imageProcessorMock)

	svc := NewCourseService(repo, drafts, categories, storage, videoProvider, images).(*courseServiceImpl)
	svc.now = func() time.Time { return testTime }
	var seq int
	svc.newID = func() uuid.UUID {
		seq++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", seq))
	}

	ctx := context.Background()
	categoryID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	categories.On("ExistsByID", mock.Anything, categoryID).Return(true, nil)
	storage.On("Upload", mock.Anything, mock.Anything, []byte("pdf-bytes"), "application/pdf").
		Return("http://storage/courses/syllabus.pdf", nil)

	draft, err := svc.CreateDraft(ctx, testOwnerID, &model.CreateCourseReq{Name: "Distributed Systems"})
	require.NoError(t, err)

	price := decimal.NewFromInt(49)
	categoryStr := categoryID.String()
	updated, err := svc.UpdateDraft(ctx, draft.ID, testOwnerID, &model.UpdateDraftReq{
		Price:      &price,
		CategoryID: &categoryStr,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	added, err := svc.AttachFiles(ctx, draft.ID, testOwnerID, []model.FileUpload{
		{Name: "syllabus.pdf", ContentType: "application/pdf", Data: []byte("pdf-bytes")},
	})
	require.NoError(t, err)
	require.Len(t, added, 1)

	course, err := svc.Publish(ctx, draft.ID, testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, course.CourseStatus)

	view, err := svc.GetCourse(ctx, draft.ID)
	require.NoError(t, err)
	require.False(t, view.IsDraft)
	require.NotNil(t, view.Course)
	assert.Equal(t, model.StatusPublished, view.Course.CourseStatus)
	assert.Equal(t, "Distributed Systems", view.Course.Name)
	assert.True(t, price.Equal(view.Course.Price))
	require.NotNil(t, view.Course.CategoryID)
	assert.Equal(t, categoryID, *view.Course.CategoryID)
	require.Len(t, view.Course.Attachments, 1)
	assert.Equal(t, "syllabus.pdf", view.Course.Attachments[0].Name)
	assert.Equal(t, "http://storage/courses/syllabus.pdf", view.Course.Attachments[0].URL)

	// Publish removed the staged draft.
	_, err = drafts.Get(ctx, draft.ID)
	require.ErrorIs(t, err, model.ErrDraftNotFound)
}
