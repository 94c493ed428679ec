package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	categoryModel "courseplatform-backend/internal/domains/category/model"
	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/infrastructure/video"
)

type courseRepoMock struct {
	mock.Mock
}

func (m *courseRepoMock) CreateWithAttachments(ctx context.Context, course *model.Course, attachments []model.Attachment) (*model.Course, error) {
	args := m.Called(ctx, course, attachments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *courseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *courseRepoMock) MarkVideoReady(ctx context.Context, uploadID, assetID, playbackID string) (int64, error) {
	args := m.Called(ctx, uploadID, assetID, playbackID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *courseRepoMock) MarkVideoFailed(ctx context.Context, uploadID string) (int64, error) {
	args := m.Called(ctx, uploadID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *courseRepoMock) ListProcessingVideos(ctx context.Context, olderThan time.Duration, limit int) ([]model.Course, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

type draftStoreMock struct {
	mock.Mock
}

func (m *draftStoreMock) Get(ctx context.Context, id uuid.UUID) (*model.Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *draftStoreMock) Save(ctx context.Context, draft *model.Draft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *draftStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type categoryRepoMock struct {
	mock.Mock
}

func (m *categoryRepoMock) List(ctx context.Context) ([]categoryModel.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]categoryModel.Category), args.Error(1)
}

func (m *categoryRepoMock) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type storageMock struct {
	mock.Mock
}

func (m *storageMock) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *storageMock) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type videoProviderMock struct {
	mock.Mock
}

func (m *videoProviderMock) CreateDirectUpload(ctx context.Context) (*video.DirectUpload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.DirectUpload), args.Error(1)
}

func (m *videoProviderMock) GetAsset(ctx context.Context, assetID string) (*video.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Asset), args.Error(1)
}

type imageProcessorMock struct {
	mock.Mock
}

func (m *imageProcessorMock) ValidateImage(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *imageProcessorMock) ProcessThumbnail(data []byte) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
