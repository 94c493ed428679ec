package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"courseplatform-backend/internal/config"
)

// Client talks to the Mux-compatible video API over HTTP basic auth.
type Client struct {
	config     config.MuxConfig
	httpClient *http.Client
}

func NewClient(cfg config.MuxConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateDirectUpload opens a new upload session configured for public
// playback and auto-generated English subtitles. The returned URL is
// handed to the browser, which uploads the raw video directly.
func (c *Client) CreateDirectUpload(ctx context.Context) (*DirectUpload, error) {
	reqBody := createUploadRequest{
		NewAssetSettings: assetSettings{
			PlaybackPolicies: []string{"public"},
			Inputs: []assetInput{
				{
					GeneratedSubtitles: []generatedSubtitle{
						{LanguageCode: "en", Name: "English"},
					},
				},
			},
		},
		CORSOrigin: c.config.CORSOrigin,
	}

	var resp uploadResponse
	if err := c.do(ctx, http.MethodPost, "/video/v1/uploads", reqBody, &resp); err != nil {
		return nil, err
	}

	return &DirectUpload{
		ID:      resp.Data.ID,
		URL:     resp.Data.URL,
		AssetID: resp.Data.AssetID,
		Status:  resp.Data.Status,
	}, nil
}

// GetAsset fetches the current provider-side state of an asset. Used by
// the reconciliation worker for courses whose webhook never arrived.
func (c *Client) GetAsset(ctx context.Context, assetID string) (*Asset, error) {
	if assetID == "" {
		return nil, fmt.Errorf("asset id is empty")
	}

	var resp assetResponse
	path := fmt.Sprintf("/video/v1/assets/%s", assetID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyJSON)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.SetBasicAuth(c.config.TokenID, c.config.TokenSecret)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call video API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read video API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("video API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode video API response: %w", err)
		}
	}

	return nil
}
