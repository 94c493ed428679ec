package video

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseplatform-backend/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.MuxConfig{
		TokenID:     "token-id",
		TokenSecret: "token-secret",
		BaseURL:     baseURL,
		CORSOrigin:  "*",
	})
}

func TestCreateDirectUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/video/v1/uploads", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "token-id", user)
		assert.Equal(t, "token-secret", pass)

		var req createUploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"public"}, req.NewAssetSettings.PlaybackPolicies)
		require.Len(t, req.NewAssetSettings.Inputs, 1)
		require.Len(t, req.NewAssetSettings.Inputs[0].GeneratedSubtitles, 1)
		assert.Equal(t, "en", req.NewAssetSettings.Inputs[0].GeneratedSubtitles[0].LanguageCode)
		assert.Equal(t, "*", req.CORSOrigin)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(uploadResponse{Data: uploadData{
			ID:     "upload-123",
			URL:    "https://storage.mux.test/upload-123",
			Status: "waiting",
		}})
	}))
	defer srv.Close()

	upload, err := testClient(srv.URL).CreateDirectUpload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "upload-123", upload.ID)
	assert.Equal(t, "https://storage.mux.test/upload-123", upload.URL)
}

func TestCreateDirectUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreateDirectUpload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGetAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/video/v1/assets/asset-456", r.URL.Path)

		json.NewEncoder(w).Encode(assetResponse{Data: Asset{
			ID:          "asset-456",
			Status:      AssetStatusReady,
			UploadID:    "upload-123",
			PlaybackIDs: []PlaybackID{{ID: "playback-789", Policy: "public"}},
		}})
	}))
	defer srv.Close()

	asset, err := testClient(srv.URL).GetAsset(context.Background(), "asset-456")

	require.NoError(t, err)
	assert.Equal(t, AssetStatusReady, asset.Status)
	assert.Equal(t, "upload-123", asset.UploadID)
	require.Len(t, asset.PlaybackIDs, 1)
	assert.Equal(t, "playback-789", asset.PlaybackIDs[0].ID)
}

func TestGetAssetEmptyID(t *testing.T) {
	_, err := testClient("http://unused").GetAsset(context.Background(), "")
	require.Error(t, err)
}
