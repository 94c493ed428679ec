package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/infrastructure/video"
)

type courseServiceMock struct {
	mock.Mock
}

func (m *courseServiceMock) CreateDraft(ctx context.Context, ownerID uuid.UUID, req *model.CreateCourseReq) (*model.Draft, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *courseServiceMock) UpdateDraft(ctx context.Context, id, ownerID uuid.UUID, req *model.UpdateDraftReq) (*model.Draft, error) {
	args := m.Called(ctx, id, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *courseServiceMock) AttachFiles(ctx context.Context, id, ownerID uuid.UUID, files []model.FileUpload) ([]model.DraftAttachment, error) {
	args := m.Called(ctx, id, ownerID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DraftAttachment), args.Error(1)
}

func (m *courseServiceMock) InitVideoUpload(ctx context.Context, id, ownerID uuid.UUID) (*model.VideoUploadInit, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoUploadInit), args.Error(1)
}

func (m *courseServiceMock) Publish(ctx context.Context, id, ownerID uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *courseServiceMock) GetCourse(ctx context.Context, id uuid.UUID) (*model.CourseView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseView), args.Error(1)
}

func (m *courseServiceMock) MarkVideoReady(ctx context.Context, uploadID, assetID, playbackID string) error {
	args := m.Called(ctx, uploadID, assetID, playbackID)
	return args.Error(0)
}

func (m *courseServiceMock) MarkVideoFailed(ctx context.Context, uploadID string) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

func (m *courseServiceMock) ReconcileProcessingVideos(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func setupWebhookRouter(svc *courseServiceMock, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/webhooks/mux", NewMuxWebhookHandler(svc, secret).HandleMux)
	return router
}

func postWebhook(router *gin.Engine, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/mux", bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func readyEvent() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"type": "video.asset.ready",
		"data": map[string]interface{}{
			"id":        "asset-456",
			"upload_id": "upload-123",
			"playback_ids": []map[string]string{
				{"id": "playback-789", "policy": "public"},
			},
		},
	})
	return body
}

func TestHandleMux(t *testing.T) {
	t.Run("asset ready updates the course and acks", func(t *testing.T) {
		svc := &courseServiceMock{}
		svc.On("MarkVideoReady", mock.Anything, "upload-123", "asset-456", "playback-789").Return(nil)

		w := postWebhook(setupWebhookRouter(svc, ""), readyEvent(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("asset errored marks failure", func(t *testing.T) {
		svc := &courseServiceMock{}
		svc.On("MarkVideoFailed", mock.Anything, "upload-123").Return(nil)

		body, _ := json.Marshal(map[string]interface{}{
			"type": "video.asset.errored",
			"data": map[string]interface{}{"id": "asset-456", "upload_id": "upload-123"},
		})
		w := postWebhook(setupWebhookRouter(svc, ""), body, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown event types are acknowledged untouched", func(t *testing.T) {
		svc := &courseServiceMock{}

		body, _ := json.Marshal(map[string]interface{}{
			"type": "video.upload.created",
			"data": map[string]interface{}{"id": "upload-123"},
		})
		w := postWebhook(setupWebhookRouter(svc, ""), body, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
		svc.AssertNotCalled(t, "MarkVideoReady")
		svc.AssertNotCalled(t, "MarkVideoFailed")
	})

	t.Run("processing failure returns 500", func(t *testing.T) {
		svc := &courseServiceMock{}
		svc.On("MarkVideoReady", mock.Anything, "upload-123", "asset-456", "playback-789").
			Return(errors.New("db down"))

		w := postWebhook(setupWebhookRouter(svc, ""), readyEvent(), nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		svc := &courseServiceMock{}

		w := postWebhook(setupWebhookRouter(svc, ""), []byte("{not json"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid signature is accepted", func(t *testing.T) {
		svc := &courseServiceMock{}
		svc.On("MarkVideoReady", mock.Anything, "upload-123", "asset-456", "playback-789").Return(nil)

		body := readyEvent()
		sig := video.SignPayload(body, "webhook-secret", time.Now())
		w := postWebhook(setupWebhookRouter(svc, "webhook-secret"), body, map[string]string{
			"Mux-Signature": sig,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		svc := &courseServiceMock{}

		body := readyEvent()
		w := postWebhook(setupWebhookRouter(svc, "webhook-secret"), body, map[string]string{
			"Mux-Signature": "t=123,v1=deadbeef",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "MarkVideoReady")
	})

	t.Run("missing signature is rejected when secret configured", func(t *testing.T) {
		svc := &courseServiceMock{}

		w := postWebhook(setupWebhookRouter(svc, "webhook-secret"), readyEvent(), nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
